package gpu

// buffer is a single GPU buffer bound to a fixed target.
type buffer struct {
	dev    Device
	id     uint32
	target uint32
}

func newBuffer(dev Device, target uint32, data []byte) buffer {
	b := buffer{dev: dev, id: dev.GenBuffer(), target: target}
	dev.BindBuffer(target, b.id)
	dev.BufferData(target, data, StaticDraw)
	return b
}

func (b *buffer) ID() uint32 { return b.id }
func (b *buffer) Bind()      { b.dev.BindBuffer(b.target, b.id) }
func (b *buffer) Unbind()    { b.dev.BindBuffer(b.target, 0) }

// Delete releases the handle. Calling it twice is harmless.
func (b *buffer) Delete() {
	if b.id == 0 {
		return
	}
	b.dev.DeleteBuffer(b.id)
	b.id = 0
}

// VertexBuffer holds per-vertex data uploaded once as static draw data.
type VertexBuffer struct {
	buffer
}

// NewVertexBuffer allocates an ARRAY_BUFFER and uploads data into it.
// The buffer is left bound.
func NewVertexBuffer(dev Device, data []byte) *VertexBuffer {
	return &VertexBuffer{buffer: newBuffer(dev, ArrayBuffer, data)}
}

// IndexBuffer holds triangle indices. It is left bound after construction so
// that a bound vertex array records it.
type IndexBuffer struct {
	buffer
}

// NewIndexBuffer allocates an ELEMENT_ARRAY_BUFFER and uploads data into it.
func NewIndexBuffer(dev Device, data []byte) *IndexBuffer {
	return &IndexBuffer{buffer: newBuffer(dev, ElementArrayBuffer, data)}
}
