package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config holds every tunable of the program. The zero value is not usable;
// start from Default.
type Config struct {
	Window  Window  `toml:"window"`
	Shaders Shaders `toml:"shaders"`
	Loop    Loop    `toml:"loop"`
}

// Window describes the single fixed-size window.
type Window struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
	VSync  bool   `toml:"vsync"`
}

// Shaders points at the vertex and fragment sources.
type Shaders struct {
	Vertex   string `toml:"vertex"`
	Fragment string `toml:"fragment"`
	// Watch relinks the program whenever either file changes.
	Watch bool `toml:"watch"`
}

// Loop controls the frame loop cadence.
type Loop struct {
	// UpdateInterval is the minimum time between rotation updates.
	UpdateInterval Duration `toml:"update_interval"`
	// LegacyGate advances the rotation on every frame regardless of
	// UpdateInterval, making the speed depend on the frame rate.
	LegacyGate bool `toml:"legacy_gate"`
	// FPSLimit caps the frame rate; 0 disables the limiter.
	FPSLimit int  `toml:"fps_limit"`
	LogFPS   bool `toml:"log_fps"`
}

// Duration is a time.Duration written as a Go duration string ("16ms").
type Duration time.Duration

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Window: Window{
			Width:  1280,
			Height: 720,
			Title:  "Rotating Cubes",
			VSync:  true,
		},
		Shaders: Shaders{
			Vertex:   "default.vert",
			Fragment: "default.frag",
		},
		Loop: Loop{
			UpdateInterval: Duration(time.Second / 60),
		},
	}
}

// Load overlays the TOML file at path onto the defaults. Keys missing from
// the file keep their default values; unknown keys are an error. The result
// is not validated, so callers can apply further overrides first.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return cfg, fmt.Errorf("parse config %s: %w\n%s", path, err, strict.String())
		}
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Encode renders cfg as TOML.
func (c Config) Encode() ([]byte, error) {
	return toml.Marshal(c)
}

// Validate rejects settings the program cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Shaders.Vertex == "" || c.Shaders.Fragment == "" {
		errs = append(errs, errors.New("shader paths must not be empty"))
	}
	if c.Loop.UpdateInterval < 0 {
		errs = append(errs, fmt.Errorf("update interval %v must not be negative", time.Duration(c.Loop.UpdateInterval)))
	}
	if c.Loop.FPSLimit < 0 {
		errs = append(errs, fmt.Errorf("fps limit %d must not be negative", c.Loop.FPSLimit))
	}
	return errors.Join(errs...)
}

// EffectiveUpdateInterval is the interval the update gate should use.
func (c Config) EffectiveUpdateInterval() time.Duration {
	if c.Loop.LegacyGate {
		return 0
	}
	return time.Duration(c.Loop.UpdateInterval)
}
