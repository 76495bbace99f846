package renderer

import (
	"rotating-cubes/internal/profiling"
	"rotating-cubes/internal/scene"
)

// RenderContext provides shared per-frame context for all renderables
type RenderContext struct {
	State   scene.State
	Frame   scene.Frame
	Profile *profiling.Frame
}

// Renderable interface defines the lifecycle for renderable features
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
	SetViewport(width, height int)
}
