package renderer

import (
	"fmt"

	"rotating-cubes/internal/gpu"
	"rotating-cubes/internal/profiling"
	"rotating-cubes/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

// ClearColor is the background color.
var ClearColor = mgl32.Vec4{0.07, 0.13, 0.17, 1.0}

// Renderer orchestrates rendering via renderable features
type Renderer struct {
	dev         gpu.Device
	renderables []Renderable
	profile     *profiling.Frame

	width, height int
}

// NewRenderer configures global GL state and initializes rs in order. If one
// fails, the ones already initialized are disposed before returning.
func NewRenderer(dev gpu.Device, width, height int, rs ...Renderable) (*Renderer, error) {
	dev.Enable(gpu.DepthTest)

	r := &Renderer{
		dev:     dev,
		profile: profiling.NewFrame(),
	}
	r.UpdateViewport(width, height)

	for i, rb := range rs {
		if err := rb.Init(); err != nil {
			for j := i - 1; j >= 0; j-- {
				rs[j].Dispose()
			}
			return nil, fmt.Errorf("init renderable %d: %w", i, err)
		}
		rb.SetViewport(width, height)
	}
	r.renderables = rs

	return r, nil
}

// Render clears the frame and draws every renderable for state s. Each
// renderable tracks its own "renderer." phase in the profile.
func (r *Renderer) Render(s scene.State) {
	r.dev.ClearColor(ClearColor[0], ClearColor[1], ClearColor[2], ClearColor[3])
	r.dev.Clear(gpu.ColorBufferBit | gpu.DepthBufferBit)

	ctx := RenderContext{
		State:   s,
		Frame:   scene.Compose(s, r.width, r.height),
		Profile: r.profile,
	}
	for _, renderable := range r.renderables {
		renderable.Render(ctx)
	}
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
	r.renderables = nil
}

// Profile returns the per-frame profile the renderer records into.
func (r *Renderer) Profile() *profiling.Frame {
	return r.profile
}

// UpdateViewport updates the viewport and the projection aspect ratio.
func (r *Renderer) UpdateViewport(width, height int) {
	r.width, r.height = width, height
	r.dev.Viewport(0, 0, int32(width), int32(height))
	for _, rb := range r.renderables {
		rb.SetViewport(width, height)
	}
}
