package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, 720, cfg.Window.Height)
	assert.Equal(t, "Rotating Cubes", cfg.Window.Title)
	assert.Equal(t, "default.vert", cfg.Shaders.Vertex)
	assert.Equal(t, "default.frag", cfg.Shaders.Fragment)
	assert.Equal(t, time.Second/60, cfg.EffectiveUpdateInterval())
	assert.NoError(t, cfg.Validate())
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
[shaders]
vertex = "shaders/cube.vert"
watch = true

[loop]
update_interval = "10ms"
fps_limit = 144
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "shaders/cube.vert", cfg.Shaders.Vertex)
	assert.Equal(t, "default.frag", cfg.Shaders.Fragment)
	assert.True(t, cfg.Shaders.Watch)
	assert.Equal(t, 10*time.Millisecond, time.Duration(cfg.Loop.UpdateInterval))
	assert.Equal(t, 144, cfg.Loop.FPSLimit)
	assert.Equal(t, 1280, cfg.Window.Width)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeConfig(t, "[loop]\nupdate_interval = \"soon\"\n"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "[loop]\nfps_limt = 30\n"))
	var strict *toml.StrictMissingError
	require.ErrorAs(t, err, &strict)
	assert.ErrorContains(t, err, "fps_limt")
}

func TestLoadLeavesValidationToCaller(t *testing.T) {
	cfg, err := Load(writeConfig(t, "[window]\nwidth = 0\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Window.Width)
	assert.ErrorContains(t, cfg.Validate(), "must be positive")
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Window.Height = -1
	cfg.Shaders.Fragment = ""
	cfg.Loop.UpdateInterval = Duration(-time.Second)
	cfg.Loop.FPSLimit = -5

	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorContains(t, err, "window size")
	assert.ErrorContains(t, err, "shader paths")
	assert.ErrorContains(t, err, "update interval")
	assert.ErrorContains(t, err, "fps limit")
}

func TestLegacyGateDisablesInterval(t *testing.T) {
	cfg := Default()
	cfg.Loop.LegacyGate = true
	assert.Zero(t, cfg.EffectiveUpdateInterval())
}

func TestEncodeLoadsBack(t *testing.T) {
	cfg := Default()
	cfg.Loop.UpdateInterval = Duration(25 * time.Millisecond)
	out, err := cfg.Encode()
	require.NoError(t, err)
	assert.Contains(t, string(out), "25ms")

	loaded, err := Load(writeConfig(t, string(out)))
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestExampleConfigMatchesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "config.example.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
