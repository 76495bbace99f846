package main

import (
	"rotating-cubes/internal/config"

	"github.com/spf13/pflag"
)

// options is the parsed command line.
type options struct {
	cfg         config.Config
	printConfig bool
}

// parseFlags builds the effective configuration: defaults, then the optional
// TOML file, then any flag given explicitly on the command line.
func parseFlags(args []string) (options, error) {
	fs := pflag.NewFlagSet("rotating-cubes", pflag.ContinueOnError)
	configPath := fs.StringP("config", "c", "", "TOML config file")
	vert := fs.String("vert", "", "vertex shader source (default \"default.vert\")")
	frag := fs.String("frag", "", "fragment shader source (default \"default.frag\")")
	watch := fs.Bool("watch-shaders", false, "relink the shader program when a source file changes")
	interval := fs.Duration("update-interval", 0, "minimum time between rotation updates (default 1/60s)")
	legacy := fs.Bool("legacy-gate", false, "advance the rotation on every frame, so speed follows the frame rate")
	fpsLimit := fs.Int("fps-limit", 0, "frame rate cap; 0 disables the limiter")
	logFPS := fs.Bool("log-fps", false, "log the frame rate every second and slow frames")
	vsync := fs.Bool("vsync", true, "synchronize buffer swaps with the display")
	printConfig := fs.Bool("print-config", false, "print the effective config as TOML and exit")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return options{}, err
		}
	}

	if fs.Changed("vert") {
		cfg.Shaders.Vertex = *vert
	}
	if fs.Changed("frag") {
		cfg.Shaders.Fragment = *frag
	}
	if fs.Changed("watch-shaders") {
		cfg.Shaders.Watch = *watch
	}
	if fs.Changed("update-interval") {
		cfg.Loop.UpdateInterval = config.Duration(*interval)
	}
	if fs.Changed("legacy-gate") {
		cfg.Loop.LegacyGate = *legacy
	}
	if fs.Changed("fps-limit") {
		cfg.Loop.FPSLimit = *fpsLimit
	}
	if fs.Changed("log-fps") {
		cfg.Loop.LogFPS = *logFPS
	}
	if fs.Changed("vsync") {
		cfg.Window.VSync = *vsync
	}

	if err := cfg.Validate(); err != nil {
		return options{}, err
	}
	return options{cfg: cfg, printConfig: *printConfig}, nil
}
