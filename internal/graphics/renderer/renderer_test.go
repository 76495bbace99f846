package renderer

import (
	"errors"
	"testing"

	"rotating-cubes/internal/gpu"
	"rotating-cubes/internal/gpu/gputest"
	"rotating-cubes/internal/scene"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	name    string
	initErr error
	log     *[]string
	last    RenderContext
	width   int
}

func (r *recorder) Init() error {
	*r.log = append(*r.log, "init "+r.name)
	return r.initErr
}

func (r *recorder) Render(ctx RenderContext) {
	*r.log = append(*r.log, "render "+r.name)
	r.last = ctx
}

func (r *recorder) Dispose() { *r.log = append(*r.log, "dispose "+r.name) }

func (r *recorder) SetViewport(width, height int) { r.width = width }

func TestNewRendererConfiguresState(t *testing.T) {
	dev := gputest.New()
	var log []string
	a := &recorder{name: "a", log: &log}

	r, err := NewRenderer(dev, 1280, 720, a)
	require.NoError(t, err)
	assert.True(t, dev.Enabled[gpu.DepthTest])
	assert.Equal(t, [4]int32{0, 0, 1280, 720}, dev.ViewportRect)
	assert.Equal(t, 1280, a.width)
	assert.Equal(t, []string{"init a"}, log)
	assert.NotNil(t, r.Profile())
}

func TestNewRendererDisposesOnInitFailure(t *testing.T) {
	dev := gputest.New()
	var log []string
	a := &recorder{name: "a", log: &log}
	b := &recorder{name: "b", log: &log}
	boom := errors.New("boom")
	c := &recorder{name: "c", log: &log, initErr: boom}

	_, err := NewRenderer(dev, 800, 600, a, b, c)
	require.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"init a", "init b", "init c", "dispose b", "dispose a"}, log)
}

func TestRenderClearsAndComposes(t *testing.T) {
	dev := gputest.New()
	var log []string
	a := &recorder{name: "a", log: &log}
	b := &recorder{name: "b", log: &log}
	r, err := NewRenderer(dev, 1280, 720, a, b)
	require.NoError(t, err)

	s := scene.Advance(scene.State{}, 10)
	r.Render(s)

	assert.Equal(t, 1, dev.Clears)
	assert.Equal(t, [4]float32{0.07, 0.13, 0.17, 1.0}, dev.ClearRGBA)
	assert.Equal(t, s, a.last.State)
	assert.Equal(t, scene.Compose(s, 1280, 720), a.last.Frame)
	assert.Same(t, r.Profile(), b.last.Profile)
	// Render adds no span of its own around the renderables' phases.
	assert.Zero(t, r.Profile().SumWithPrefix("renderer."))

	r.Dispose()
	assert.Equal(t, []string{"init a", "init b", "render a", "render b", "dispose b", "dispose a"}, log)
}

func TestUpdateViewport(t *testing.T) {
	dev := gputest.New()
	var log []string
	a := &recorder{name: "a", log: &log}
	r, err := NewRenderer(dev, 1280, 720, a)
	require.NoError(t, err)

	r.UpdateViewport(640, 480)
	assert.Equal(t, [4]int32{0, 0, 640, 480}, dev.ViewportRect)
	assert.Equal(t, 640, a.width)

	r.Render(scene.State{})
	assert.Equal(t, scene.Projection(640, 480), a.last.Frame.Proj)
}
