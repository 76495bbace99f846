// Package glcore implements gpu.Device on top of the OpenGL 4.1 core bindings.
package glcore

import (
	"fmt"
	"strings"
	"unsafe"

	"rotating-cubes/internal/gpu"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Device forwards every call to the current GL context.
type Device struct{}

var _ gpu.Device = (*Device)(nil)

// New loads the GL function pointers for the current context. The context
// must already be current on the calling thread.
func New() (*Device, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("init gl: %w", err)
	}
	return &Device{}, nil
}

// Version reports the driver's GL version string.
func (d *Device) Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

func (d *Device) GenBuffer() uint32 {
	var id uint32
	gl.GenBuffers(1, &id)
	return id
}

func (d *Device) BindBuffer(target, id uint32) { gl.BindBuffer(target, id) }

func (d *Device) BufferData(target uint32, data []byte, usage uint32) {
	var ptr unsafe.Pointer
	if len(data) > 0 {
		ptr = gl.Ptr(data)
	}
	gl.BufferData(target, len(data), ptr, usage)
}

func (d *Device) DeleteBuffer(id uint32)      { gl.DeleteBuffers(1, &id) }
func (d *Device) IsBuffer(id uint32) bool     { return gl.IsBuffer(id) }
func (d *Device) BindVertexArray(id uint32)   { gl.BindVertexArray(id) }
func (d *Device) DeleteVertexArray(id uint32) { gl.DeleteVertexArrays(1, &id) }

func (d *Device) GenVertexArray() uint32 {
	var id uint32
	gl.GenVertexArrays(1, &id)
	return id
}

func (d *Device) IsVertexArray(id uint32) bool { return gl.IsVertexArray(id) }

func (d *Device) VertexAttribPointer(slot uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr) {
	gl.VertexAttribPointerWithOffset(slot, size, xtype, normalized, stride, offset)
}

func (d *Device) EnableVertexAttribArray(slot uint32) { gl.EnableVertexAttribArray(slot) }

func (d *Device) CreateShader(stage uint32) uint32 { return gl.CreateShader(stage) }

func (d *Device) CompileShader(id uint32, source string) (bool, string) {
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(id, 1, csources, nil)
	free()
	gl.CompileShader(id)

	var status int32
	gl.GetShaderiv(id, gl.COMPILE_STATUS, &status)
	if status == gl.TRUE {
		return true, ""
	}
	var logLength int32
	gl.GetShaderiv(id, gl.INFO_LOG_LENGTH, &logLength)
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(id, logLength, nil, gl.Str(log))
	return false, strings.TrimRight(log, "\x00")
}

func (d *Device) DeleteShader(id uint32) { gl.DeleteShader(id) }

func (d *Device) CreateProgram() uint32 { return gl.CreateProgram() }

func (d *Device) LinkProgram(id uint32, shaders ...uint32) (bool, string) {
	for _, s := range shaders {
		gl.AttachShader(id, s)
	}
	gl.LinkProgram(id)

	var status int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &status)
	if status == gl.TRUE {
		return true, ""
	}
	var logLength int32
	gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &logLength)
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(id, logLength, nil, gl.Str(log))
	return false, strings.TrimRight(log, "\x00")
}

func (d *Device) UseProgram(id uint32)     { gl.UseProgram(id) }
func (d *Device) DeleteProgram(id uint32)  { gl.DeleteProgram(id) }
func (d *Device) IsProgram(id uint32) bool { return gl.IsProgram(id) }

func (d *Device) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (d *Device) UniformMatrix4fv(location int32, m *[16]float32) {
	gl.UniformMatrix4fv(location, 1, false, &m[0])
}

func (d *Device) Uniform3f(location int32, x, y, z float32) { gl.Uniform3f(location, x, y, z) }

func (d *Device) Enable(capability uint32)           { gl.Enable(capability) }
func (d *Device) Viewport(x, y, width, height int32) { gl.Viewport(x, y, width, height) }
func (d *Device) ClearColor(r, g, b, a float32)      { gl.ClearColor(r, g, b, a) }
func (d *Device) Clear(mask uint32)                  { gl.Clear(mask) }

func (d *Device) DrawElements(mode uint32, count int32, xtype uint32, offset uintptr) {
	gl.DrawElements(mode, count, xtype, gl.PtrOffset(int(offset)))
}
