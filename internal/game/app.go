package game

import (
	"fmt"
	"log"
	"time"

	renderer "rotating-cubes/internal/graphics/renderer"
	"rotating-cubes/internal/input"
	"rotating-cubes/internal/profiling"
	"rotating-cubes/internal/scene"
)

// slowFrame is the processing time above which a frame is logged.
const slowFrame = 16 * time.Millisecond

// Window is the part of a GLFW window the loop drives.
type Window interface {
	input.KeySource
	ShouldClose() bool
	SetShouldClose(value bool)
	SwapBuffers()
}

// Platform supplies event pumping and the monotonic clock (glfw.PollEvents
// and glfw.GetTime in production).
type Platform interface {
	PollEvents()
	Time() float64
}

// Reloader rebuilds the shader program from disk.
type Reloader interface {
	Reload() error
}

// Poller reports whether a watched resource changed. It must not block.
type Poller interface {
	Poll() bool
}

// Options tune the loop.
type Options struct {
	// UpdateInterval is the minimum spacing of rotation updates. Zero
	// updates on every frame.
	UpdateInterval time.Duration
	// FPSLimit caps the frame rate; 0 leaves pacing to vsync.
	FPSLimit int
	// LogFPS logs the frame rate once per second and slow frames.
	LogFPS bool
}

// App owns the frame loop and the rotation state.
type App struct {
	window   Window
	platform Platform
	renderer *renderer.Renderer
	input    *input.InputManager

	reloader Reloader
	watcher  Poller

	state scene.State
	gate  *scene.UpdateGate

	fpsLimiter *FPSLimiter
	logFPS     bool

	frames    int
	updates   int
	fpsFrames int
	lastFPS   time.Time
}

// NewApp wires the loop. The update gate starts measuring from now.
func NewApp(window Window, platform Platform, r *renderer.Renderer, opts Options) *App {
	now := platform.Time()
	return &App{
		window:     window,
		platform:   platform,
		renderer:   r,
		input:      input.NewInputManager(),
		gate:       scene.NewUpdateGate(opts.UpdateInterval, now),
		fpsLimiter: NewFPSLimiter(opts.FPSLimit),
		logFPS:     opts.LogFPS,
		lastFPS:    time.Now(),
	}
}

// SetReloader enables shader reloads, triggered by F5 and, when watcher is
// non-nil, by file changes.
func (a *App) SetReloader(r Reloader, watcher Poller) {
	a.reloader = r
	a.watcher = watcher
}

// Run ticks until the window is asked to close.
func (a *App) Run() {
	for !a.window.ShouldClose() {
		a.tick()
	}
}

// State returns the current rotation state.
func (a *App) State() scene.State { return a.state }

// Frames returns how many frames have been rendered.
func (a *App) Frames() int { return a.frames }

// Updates returns how many times the rotation state advanced.
func (a *App) Updates() int { return a.updates }

func (a *App) tick() {
	profile := a.renderer.Profile()
	profile.Reset()
	startTick := time.Now()

	now := a.platform.Time()

	a.input.Poll(a.window)
	if a.input.IsActive(input.ActionQuit) {
		// Checked by Run before the next frame.
		a.window.SetShouldClose(true)
	}
	a.maybeReload()

	if a.gate.Open(now) {
		a.state = scene.Step(a.state)
		a.updates++
	}
	profile.Add("game.Update", time.Since(startTick))

	a.renderer.Render(a.state)

	func() { defer profile.Track("glfw.SwapBuffers")(); a.window.SwapBuffers() }()
	func() { defer profile.Track("glfw.PollEvents")(); a.platform.PollEvents() }()
	a.frames++

	if a.logFPS {
		a.report(time.Since(startTick))
	}
	a.fpsLimiter.Wait()
}

func (a *App) maybeReload() {
	if a.reloader == nil {
		return
	}
	requested := a.input.JustPressed(input.ActionReloadShaders)
	if a.watcher != nil && a.watcher.Poll() {
		requested = true
	}
	if !requested {
		return
	}
	if err := a.reloader.Reload(); err != nil {
		log.Printf("Shader reload failed, keeping previous program: %v", err)
		return
	}
	log.Println("Shaders reloaded")
}

func (a *App) report(processing time.Duration) {
	if processing > slowFrame {
		log.Print(slowFrameLine(processing, a.renderer.Profile()))
	}
	a.fpsFrames++
	if time.Since(a.lastFPS) >= time.Second {
		log.Printf("FPS: %d (%s)", a.fpsFrames, a.state.Scene)
		a.fpsFrames = 0
		a.lastFPS = time.Now()
	}
}

// slowFrameLine breaks a slow frame down into update, render and GLFW time,
// followed by the slowest individual phases.
func slowFrameLine(processing time.Duration, p *profiling.Frame) string {
	return fmt.Sprintf("Slow frame: %v (update %v, render %v, glfw %v). Top tasks: %s",
		processing,
		p.SumWithPrefix("game."),
		p.SumWithPrefix("renderer."),
		p.SumWithPrefix("glfw."),
		p.TopN(5))
}
