package gpu

// GL enum values used by the wrappers. They match the values in the
// OpenGL headers so a Device implementation can pass them through unchanged.
const (
	ArrayBuffer        uint32 = 0x8892
	ElementArrayBuffer uint32 = 0x8893
	StaticDraw         uint32 = 0x88E4

	Float       uint32 = 0x1406
	UnsignedInt uint32 = 0x1405
	Triangles   uint32 = 0x0004

	VertexShader   uint32 = 0x8B31
	FragmentShader uint32 = 0x8B30

	ColorBufferBit uint32 = 0x00004000
	DepthBufferBit uint32 = 0x00000100
	DepthTest      uint32 = 0x0B71
)

// Device is the subset of the OpenGL API the wrappers need. All calls must be
// made from the thread that owns the GL context.
type Device interface {
	GenBuffer() uint32
	BindBuffer(target, id uint32)
	BufferData(target uint32, data []byte, usage uint32)
	DeleteBuffer(id uint32)
	IsBuffer(id uint32) bool

	GenVertexArray() uint32
	BindVertexArray(id uint32)
	DeleteVertexArray(id uint32)
	IsVertexArray(id uint32) bool
	VertexAttribPointer(slot uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr)
	EnableVertexAttribArray(slot uint32)

	CreateShader(stage uint32) uint32
	CompileShader(id uint32, source string) (ok bool, infoLog string)
	DeleteShader(id uint32)

	CreateProgram() uint32
	LinkProgram(id uint32, shaders ...uint32) (ok bool, infoLog string)
	UseProgram(id uint32)
	DeleteProgram(id uint32)
	IsProgram(id uint32) bool
	UniformLocation(program uint32, name string) int32
	UniformMatrix4fv(location int32, m *[16]float32)
	Uniform3f(location int32, x, y, z float32)

	Enable(capability uint32)
	Viewport(x, y, width, height int32)
	ClearColor(r, g, b, a float32)
	Clear(mask uint32)
	DrawElements(mode uint32, count int32, xtype uint32, offset uintptr)
}
