// Package gputest provides an in-memory gpu.Device that records state
// instead of talking to a driver.
package gputest

import (
	"regexp"
	"strings"

	"rotating-cubes/internal/gpu"
)

// Buffer is the recorded state of one buffer object.
type Buffer struct {
	Target uint32
	Data   []byte
	Usage  uint32
}

// Attrib is one configured vertex attribute slot.
type Attrib struct {
	Buffer     uint32
	Size       int32
	Type       uint32
	Normalized bool
	Stride     int32
	Offset     uintptr
	Enabled    bool
}

// VertexArray is the recorded state of one vertex array object.
type VertexArray struct {
	Attribs       map[uint32]*Attrib
	ElementBuffer uint32
}

// Program is the recorded state of one program object.
type Program struct {
	Linked   bool
	Uniforms map[string]int32
	Mat4     map[int32][16]float32
	Vec3     map[int32][3]float32
}

// DrawCall captures the bound state at the time of a DrawElements call.
type DrawCall struct {
	Mode          uint32
	Count         int32
	Type          uint32
	Program       uint32
	VertexArray   uint32
	ElementBuffer uint32
	Mat4          map[string][16]float32
	Vec3          map[string][3]float32
}

type shader struct {
	stage    uint32
	source   string
	compiled bool
}

// Device implements gpu.Device in memory. It is not safe for concurrent use,
// the same as a GL context.
type Device struct {
	next uint32

	Buffers      map[uint32]*Buffer
	VertexArrays map[uint32]*VertexArray
	Programs     map[uint32]*Program
	shaders      map[uint32]*shader

	BoundBuffers     map[uint32]uint32
	BoundVertexArray uint32
	CurrentProgram   uint32

	Enabled      map[uint32]bool
	ViewportRect [4]int32
	ClearRGBA    [4]float32
	Clears       int
	Draws        []DrawCall
	Lookups      int
	Errors       []string
	ShaderLive   int

	// LinkFailure, when set, makes every LinkProgram fail with this log.
	LinkFailure string
}

var _ gpu.Device = (*Device)(nil)

// New returns an empty device.
func New() *Device {
	return &Device{
		Buffers:      make(map[uint32]*Buffer),
		VertexArrays: make(map[uint32]*VertexArray),
		Programs:     make(map[uint32]*Program),
		shaders:      make(map[uint32]*shader),
		BoundBuffers: make(map[uint32]uint32),
		Enabled:      make(map[uint32]bool),
	}
}

func (d *Device) id() uint32 {
	d.next++
	return d.next
}

func (d *Device) recordError(msg string) { d.Errors = append(d.Errors, msg) }

func (d *Device) GenBuffer() uint32 {
	id := d.id()
	d.Buffers[id] = &Buffer{}
	return id
}

func (d *Device) BindBuffer(target, id uint32) {
	if id != 0 {
		b, ok := d.Buffers[id]
		if !ok {
			d.recordError("BindBuffer: unknown buffer")
			return
		}
		b.Target = target
	}
	d.BoundBuffers[target] = id
	if target == gpu.ElementArrayBuffer && d.BoundVertexArray != 0 {
		d.VertexArrays[d.BoundVertexArray].ElementBuffer = id
	}
}

func (d *Device) BufferData(target uint32, data []byte, usage uint32) {
	b, ok := d.Buffers[d.BoundBuffers[target]]
	if !ok {
		d.recordError("BufferData: no buffer bound")
		return
	}
	b.Data = append([]byte(nil), data...)
	b.Usage = usage
}

func (d *Device) DeleteBuffer(id uint32) {
	delete(d.Buffers, id)
	for target, bound := range d.BoundBuffers {
		if bound == id {
			d.BoundBuffers[target] = 0
		}
	}
}

func (d *Device) IsBuffer(id uint32) bool {
	_, ok := d.Buffers[id]
	return ok
}

func (d *Device) GenVertexArray() uint32 {
	id := d.id()
	d.VertexArrays[id] = &VertexArray{Attribs: make(map[uint32]*Attrib)}
	return id
}

func (d *Device) BindVertexArray(id uint32) {
	if id != 0 {
		if _, ok := d.VertexArrays[id]; !ok {
			d.recordError("BindVertexArray: unknown vertex array")
			return
		}
	}
	d.BoundVertexArray = id
}

func (d *Device) DeleteVertexArray(id uint32) {
	delete(d.VertexArrays, id)
	if d.BoundVertexArray == id {
		d.BoundVertexArray = 0
	}
}

func (d *Device) IsVertexArray(id uint32) bool {
	_, ok := d.VertexArrays[id]
	return ok
}

func (d *Device) attrib(slot uint32) *Attrib {
	va, ok := d.VertexArrays[d.BoundVertexArray]
	if !ok {
		return nil
	}
	a, ok := va.Attribs[slot]
	if !ok {
		a = &Attrib{}
		va.Attribs[slot] = a
	}
	return a
}

func (d *Device) VertexAttribPointer(slot uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr) {
	a := d.attrib(slot)
	if a == nil {
		d.recordError("VertexAttribPointer: no vertex array bound")
		return
	}
	buf := d.BoundBuffers[gpu.ArrayBuffer]
	if buf == 0 {
		d.recordError("VertexAttribPointer: no array buffer bound")
		return
	}
	a.Buffer, a.Size, a.Type, a.Normalized, a.Stride, a.Offset = buf, size, xtype, normalized, stride, offset
}

func (d *Device) EnableVertexAttribArray(slot uint32) {
	a := d.attrib(slot)
	if a == nil {
		d.recordError("EnableVertexAttribArray: no vertex array bound")
		return
	}
	a.Enabled = true
}

func (d *Device) CreateShader(stage uint32) uint32 {
	id := d.id()
	d.shaders[id] = &shader{stage: stage}
	d.ShaderLive++
	return id
}

// CompileShader accepts any source with a #version line and a main function
// that contains no "#error" directive.
func (d *Device) CompileShader(id uint32, source string) (bool, string) {
	s, ok := d.shaders[id]
	if !ok {
		return false, "invalid shader"
	}
	s.source = source
	switch {
	case !strings.Contains(source, "#version"):
		return false, "ERROR: 0:1: '' : #version required and missing."
	case strings.Contains(source, "#error"):
		return false, "ERROR: 0:1: '#error' : user error"
	case !strings.Contains(source, "void main"):
		return false, "ERROR: 0:1: 'main' : function not defined"
	}
	s.compiled = true
	return true, ""
}

func (d *Device) DeleteShader(id uint32) {
	if _, ok := d.shaders[id]; ok {
		delete(d.shaders, id)
		d.ShaderLive--
	}
}

func (d *Device) CreateProgram() uint32 {
	id := d.id()
	d.Programs[id] = &Program{
		Uniforms: make(map[string]int32),
		Mat4:     make(map[int32][16]float32),
		Vec3:     make(map[int32][3]float32),
	}
	return id
}

var uniformDecl = regexp.MustCompile(`uniform\s+\w+\s+(\w+)\s*;`)

// LinkProgram needs exactly one compiled vertex and one compiled fragment
// shader. Uniform locations are assigned in declaration order.
func (d *Device) LinkProgram(id uint32, shaders ...uint32) (bool, string) {
	p, ok := d.Programs[id]
	if !ok {
		return false, "invalid program"
	}
	var haveVertex, haveFragment bool
	var next int32
	for _, sid := range shaders {
		s, ok := d.shaders[sid]
		if !ok || !s.compiled {
			return false, "ERROR: one or more attached shaders not successfully compiled"
		}
		switch s.stage {
		case gpu.VertexShader:
			haveVertex = true
		case gpu.FragmentShader:
			haveFragment = true
		}
		for _, m := range uniformDecl.FindAllStringSubmatch(s.source, -1) {
			if _, dup := p.Uniforms[m[1]]; !dup {
				p.Uniforms[m[1]] = next
				next++
			}
		}
	}
	if !haveVertex || !haveFragment {
		return false, "ERROR: program needs a vertex and a fragment shader"
	}
	if d.LinkFailure != "" {
		return false, d.LinkFailure
	}
	p.Linked = true
	return true, ""
}

func (d *Device) UseProgram(id uint32) {
	if id != 0 {
		if p, ok := d.Programs[id]; !ok || !p.Linked {
			d.recordError("UseProgram: program not linked")
			return
		}
	}
	d.CurrentProgram = id
}

func (d *Device) DeleteProgram(id uint32) {
	delete(d.Programs, id)
	if d.CurrentProgram == id {
		d.CurrentProgram = 0
	}
}

func (d *Device) IsProgram(id uint32) bool {
	_, ok := d.Programs[id]
	return ok
}

func (d *Device) UniformLocation(program uint32, name string) int32 {
	d.Lookups++
	p, ok := d.Programs[program]
	if !ok || !p.Linked {
		return -1
	}
	if loc, ok := p.Uniforms[name]; ok {
		return loc
	}
	return -1
}

func (d *Device) current() *Program {
	p, ok := d.Programs[d.CurrentProgram]
	if !ok {
		d.recordError("uniform upload without a program in use")
		return nil
	}
	return p
}

func (d *Device) UniformMatrix4fv(location int32, m *[16]float32) {
	if location < 0 {
		return
	}
	if p := d.current(); p != nil {
		p.Mat4[location] = *m
	}
}

func (d *Device) Uniform3f(location int32, x, y, z float32) {
	if location < 0 {
		return
	}
	if p := d.current(); p != nil {
		p.Vec3[location] = [3]float32{x, y, z}
	}
}

func (d *Device) Enable(capability uint32) { d.Enabled[capability] = true }

func (d *Device) Viewport(x, y, width, height int32) {
	d.ViewportRect = [4]int32{x, y, width, height}
}

func (d *Device) ClearColor(r, g, b, a float32) { d.ClearRGBA = [4]float32{r, g, b, a} }
func (d *Device) Clear(mask uint32)             { d.Clears++ }

// DrawElements snapshots the current program's uniforms by name.
func (d *Device) DrawElements(mode uint32, count int32, xtype uint32, offset uintptr) {
	call := DrawCall{
		Mode:        mode,
		Count:       count,
		Type:        xtype,
		Program:     d.CurrentProgram,
		VertexArray: d.BoundVertexArray,
		Mat4:        make(map[string][16]float32),
		Vec3:        make(map[string][3]float32),
	}
	if va, ok := d.VertexArrays[d.BoundVertexArray]; ok {
		call.ElementBuffer = va.ElementBuffer
	}
	if p, ok := d.Programs[d.CurrentProgram]; ok {
		for name, loc := range p.Uniforms {
			if m, ok := p.Mat4[loc]; ok {
				call.Mat4[name] = m
			}
			if v, ok := p.Vec3[loc]; ok {
				call.Vec3[name] = v
			}
		}
	}
	d.Draws = append(d.Draws, call)
}

// Live reports the number of buffers, vertex arrays and programs still allocated.
func (d *Device) Live() int {
	return len(d.Buffers) + len(d.VertexArrays) + len(d.Programs)
}
