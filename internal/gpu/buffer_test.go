package gpu_test

import (
	"testing"

	"rotating-cubes/internal/gpu"
	"rotating-cubes/internal/gpu/gputest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVertexBufferUploadsStaticData(t *testing.T) {
	dev := gputest.New()
	data := []byte{1, 2, 3, 4, 5, 6, 7, 8}

	vbo := gpu.NewVertexBuffer(dev, data)
	require.NotZero(t, vbo.ID())

	buf := dev.Buffers[vbo.ID()]
	require.NotNil(t, buf)
	assert.Equal(t, gpu.ArrayBuffer, buf.Target)
	assert.Equal(t, gpu.StaticDraw, buf.Usage)
	assert.Equal(t, data, buf.Data)

	// The upload is a copy.
	data[0] = 99
	assert.Equal(t, byte(1), buf.Data[0])
}

func TestBufferBindUnbind(t *testing.T) {
	dev := gputest.New()
	ebo := gpu.NewIndexBuffer(dev, []byte{0, 0, 0, 0})
	assert.Equal(t, ebo.ID(), dev.BoundBuffers[gpu.ElementArrayBuffer])

	ebo.Unbind()
	assert.Zero(t, dev.BoundBuffers[gpu.ElementArrayBuffer])

	ebo.Bind()
	assert.Equal(t, ebo.ID(), dev.BoundBuffers[gpu.ElementArrayBuffer])
}

func TestBufferDeleteRemovesHandle(t *testing.T) {
	dev := gputest.New()
	vbo := gpu.NewVertexBuffer(dev, []byte{1})
	ebo := gpu.NewIndexBuffer(dev, []byte{2})
	vboID, eboID := vbo.ID(), ebo.ID()

	vbo.Delete()
	ebo.Delete()

	assert.False(t, dev.IsBuffer(vboID))
	assert.False(t, dev.IsBuffer(eboID))
	assert.Zero(t, vbo.ID())

	// A second delete must not touch a handle the driver may have reused.
	reused := dev.GenBuffer()
	vbo.Delete()
	assert.True(t, dev.IsBuffer(reused))
	assert.Empty(t, dev.Errors)
}
