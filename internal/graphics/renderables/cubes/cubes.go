package cubes

import (
	"errors"
	"log"

	"rotating-cubes/internal/gpu"
	renderer "rotating-cubes/internal/graphics/renderer"
	"rotating-cubes/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

// PositionSlot is the vertex attribute location of the position input.
const PositionSlot = 0

// Uniform names expected by the shader pair.
const (
	UniformModel = "model"
	UniformView  = "view"
	UniformProj  = "proj"
	UniformColor = "color"
)

// mesh is one cube's own copy of the geometry.
type mesh struct {
	vao *gpu.VertexArray
	vbo *gpu.VertexBuffer
	ebo *gpu.IndexBuffer
}

// Cubes draws the two spinning cubes.
type Cubes struct {
	dev          gpu.Device
	vertexPath   string
	fragmentPath string

	program *gpu.Program
	meshes  [2]mesh
	res     gpu.Releaser
}

// NewCubes creates the renderable; GPU resources are acquired in Init.
func NewCubes(dev gpu.Device, vertexPath, fragmentPath string) *Cubes {
	return &Cubes{dev: dev, vertexPath: vertexPath, fragmentPath: fragmentPath}
}

// Init builds the shader program and both meshes. Missing or unreadable
// shader files are fatal. A program that fails to compile or link is logged
// and replaced by an empty one, so the loop keeps running and draws nothing
// until Reload succeeds.
func (c *Cubes) Init() error {
	program, err := gpu.NewProgram(c.dev, c.vertexPath, c.fragmentPath)
	if err != nil {
		var se *gpu.ShaderError
		if !errors.As(err, &se) || se.Kind == gpu.ErrFileNotFound || se.Kind == gpu.ErrRead {
			return err
		}
		log.Printf("cubes: %v; continuing with an empty program", err)
		program = gpu.EmptyProgram(c.dev)
	}
	c.program = gpu.Hold(&c.res, program)

	for i := range c.meshes {
		c.meshes[i] = c.newMesh()
	}
	return nil
}

func (c *Cubes) newMesh() mesh {
	var m mesh
	m.vao = gpu.Hold(&c.res, gpu.NewVertexArray(c.dev))
	m.vao.Bind()
	m.vbo = gpu.Hold(&c.res, gpu.NewVertexBuffer(c.dev, scene.VertexBytes()))
	m.ebo = gpu.Hold(&c.res, gpu.NewIndexBuffer(c.dev, scene.IndexBytes()))
	m.vao.LinkVBO(m.vbo, PositionSlot)
	m.vao.Unbind()
	m.vbo.Unbind()
	m.ebo.Unbind()
	return m
}

// Render uploads the shared matrices once, then each cube's model and color,
// and issues one indexed draw per cube.
func (c *Cubes) Render(ctx renderer.RenderContext) {
	if ctx.Profile != nil {
		defer ctx.Profile.Track("renderer.cubes")()
	}

	c.program.Activate()
	c.program.SetMat4(UniformView, ctx.Frame.View)
	c.program.SetMat4(UniformProj, ctx.Frame.Proj)

	models := [2]mgl32.Mat4{ctx.Frame.ModelA, ctx.Frame.ModelB}
	colors := [2]mgl32.Vec3{scene.CubeA.Color, scene.CubeB.Color}
	for i, m := range c.meshes {
		c.program.SetMat4(UniformModel, models[i])
		c.program.SetVec3(UniformColor, colors[i])
		m.vao.Bind()
		c.dev.DrawElements(gpu.Triangles, int32(scene.IndexCount), gpu.UnsignedInt, 0)
	}
}

// Reload relinks the program from disk. On failure the previous program
// stays in use.
func (c *Cubes) Reload() error {
	return c.program.Relink(c.vertexPath, c.fragmentPath)
}

// Program exposes the shader program, mainly for tests.
func (c *Cubes) Program() *gpu.Program { return c.program }

// Dispose releases every GPU handle in reverse acquisition order.
func (c *Cubes) Dispose() {
	c.res.Release()
}

// SetViewport is a no-op; the projection is part of the render context.
func (c *Cubes) SetViewport(width, height int) {}
