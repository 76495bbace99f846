package gpu

// positionComponents is the only attribute layout: tightly packed vec3 floats.
const positionComponents = 3

// VertexArray records how vertex buffer data maps to shader inputs.
type VertexArray struct {
	dev Device
	id  uint32
}

// NewVertexArray allocates a vertex array handle immediately.
func NewVertexArray(dev Device) *VertexArray {
	return &VertexArray{dev: dev, id: dev.GenVertexArray()}
}

func (va *VertexArray) ID() uint32 { return va.id }
func (va *VertexArray) Bind()      { va.dev.BindVertexArray(va.id) }
func (va *VertexArray) Unbind()    { va.dev.BindVertexArray(0) }

// LinkVBO points attribute slot at vbo's positions and enables the slot.
// The vertex array must be bound; vbo is bound as a side effect and stays bound.
func (va *VertexArray) LinkVBO(vbo *VertexBuffer, slot uint32) {
	vbo.Bind()
	va.dev.VertexAttribPointer(slot, positionComponents, Float, false, 0, 0)
	va.dev.EnableVertexAttribArray(slot)
}

// Delete releases the handle. Calling it twice is harmless.
func (va *VertexArray) Delete() {
	if va.id == 0 {
		return
	}
	va.dev.DeleteVertexArray(va.id)
	va.id = 0
}
