package main

import (
	"errors"
	"log"
	"os"
	"runtime"

	"rotating-cubes/internal/game"
	"rotating-cubes/internal/gpu/glcore"
	"rotating-cubes/internal/graphics/renderables/cubes"
	renderer "rotating-cubes/internal/graphics/renderer"
	"rotating-cubes/internal/shaderwatch"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/spf13/pflag"
)

// Exit codes.
const (
	exitOK     = 0
	exitError  = 1
	exitWindow = -1
)

func init() {
	// GLFW and GL calls must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	opts, err := parseFlags(args)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		log.Println(err)
		return exitError
	}
	cfg := opts.cfg

	if opts.printConfig {
		out, err := cfg.Encode()
		if err != nil {
			log.Println(err)
			return exitError
		}
		os.Stdout.Write(out)
		return exitOK
	}

	if err := glfw.Init(); err != nil {
		log.Printf("Failed to initialize GLFW: %v", err)
		return exitWindow
	}
	defer glfw.Terminate()

	window, err := game.SetupWindow(cfg.Window)
	if err != nil {
		log.Printf("Failed to create GLFW window: %v", err)
		return exitWindow
	}
	defer window.Destroy()

	dev, err := glcore.New()
	if err != nil {
		log.Printf("Failed to load OpenGL: %v", err)
		return exitWindow
	}
	log.Printf("OpenGL %s", dev.Version())

	cubesRenderer := cubes.NewCubes(dev, cfg.Shaders.Vertex, cfg.Shaders.Fragment)
	r, err := renderer.NewRenderer(dev, cfg.Window.Width, cfg.Window.Height, cubesRenderer)
	if err != nil {
		log.Println(err)
		return exitError
	}
	defer r.Dispose()

	app := game.NewApp(window, game.GLFWPlatform{}, r, game.Options{
		UpdateInterval: cfg.EffectiveUpdateInterval(),
		FPSLimit:       cfg.Loop.FPSLimit,
		LogFPS:         cfg.Loop.LogFPS,
	})

	var watcher game.Poller
	if cfg.Shaders.Watch {
		w, err := shaderwatch.New(cfg.Shaders.Vertex, cfg.Shaders.Fragment)
		if err != nil {
			log.Printf("Shader watching disabled: %v", err)
		} else {
			defer w.Close()
			watcher = w
		}
	}
	app.SetReloader(cubesRenderer, watcher)

	app.Run()
	return exitOK
}
