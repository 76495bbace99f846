package game

import (
	"rotating-cubes/internal/config"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// SetupWindow creates the fixed-size window and makes its context current.
// glfw.Init must have succeeded.
func SetupWindow(cfg config.Window) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, err
	}
	window.MakeContextCurrent()

	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		// Pacing is left to the FPS limiter
		glfw.SwapInterval(0)
	}

	return window, nil
}

// GLFWPlatform is the production Platform.
type GLFWPlatform struct{}

func (GLFWPlatform) PollEvents()   { glfw.PollEvents() }
func (GLFWPlatform) Time() float64 { return glfw.GetTime() }
