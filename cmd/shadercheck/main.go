// Command shadercheck compiles and links a vertex/fragment pair in a hidden
// window and prints the driver diagnostics. It exits 0 when the pair links.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"rotating-cubes/internal/gpu"
	"rotating-cubes/internal/gpu/glcore"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/spf13/pflag"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	fs := pflag.NewFlagSet("shadercheck", pflag.ContinueOnError)
	vert := fs.String("vert", "default.vert", "vertex shader source")
	frag := fs.String("frag", "default.frag", "fragment shader source")
	if err := fs.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		os.Exit(2)
	}

	dev, cleanup, err := hiddenContext()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(-1)
	}

	code := check(os.Stdout, dev, *vert, *frag)
	cleanup()
	os.Exit(code)
}

// hiddenContext creates an invisible 1x1 window so a GL context exists.
func hiddenContext() (gpu.Device, func(), error) {
	if err := glfw.Init(); err != nil {
		return nil, nil, fmt.Errorf("init glfw: %w", err)
	}
	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	window, err := glfw.CreateWindow(1, 1, "shadercheck", nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	dev, err := glcore.New()
	if err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, nil, err
	}

	cleanup := func() {
		window.Destroy()
		glfw.Terminate()
	}
	return dev, cleanup, nil
}

// check builds the program, reports the outcome to w and returns the exit
// code: 0 linked, 1 compile or link error, 2 unreadable source.
func check(w io.Writer, dev gpu.Device, vert, frag string) int {
	p, err := gpu.NewProgram(dev, vert, frag)
	if err == nil {
		fmt.Fprintf(w, "ok: %s + %s\n", vert, frag)
		p.Delete()
		return 0
	}

	var se *gpu.ShaderError
	if !errors.As(err, &se) {
		fmt.Fprintln(w, err)
		return 1
	}
	switch se.Kind {
	case gpu.ErrFileNotFound, gpu.ErrRead:
		fmt.Fprintf(w, "%s: %s: %v\n", se.Kind, se.Path, se.Err)
		return 2
	case gpu.ErrCompile:
		fmt.Fprintf(w, "%s shader %s failed to compile:\n%s\n", se.Stage, se.Path, se.Log)
	default:
		fmt.Fprintf(w, "program failed to link:\n%s\n", se.Log)
	}
	return 1
}
