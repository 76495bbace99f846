package scene

import (
	"encoding/binary"
	"math"
)

// CubeVertices are the eight corners of a unit cube centred on the origin,
// three floats per vertex.
var CubeVertices = [...]float32{
	-0.5, -0.5, -0.5,
	0.5, -0.5, -0.5,
	0.5, 0.5, -0.5,
	-0.5, 0.5, -0.5,
	-0.5, -0.5, 0.5,
	0.5, -0.5, 0.5,
	0.5, 0.5, 0.5,
	-0.5, 0.5, 0.5,
}

// CubeIndices are two triangles per face, six faces.
var CubeIndices = [...]uint32{
	0, 1, 2, 0, 2, 3,
	4, 5, 6, 4, 6, 7,
	0, 1, 5, 0, 5, 4,
	2, 3, 7, 2, 7, 6,
	0, 3, 7, 0, 7, 4,
	1, 2, 6, 1, 6, 5,
}

const (
	VertexCount = len(CubeVertices) / 3
	IndexCount  = len(CubeIndices)
)

// VertexBytes returns a fresh copy of CubeVertices in host byte order, ready
// for upload.
func VertexBytes() []byte {
	out := make([]byte, 0, len(CubeVertices)*4)
	for _, v := range CubeVertices {
		out = binary.NativeEndian.AppendUint32(out, math.Float32bits(v))
	}
	return out
}

// IndexBytes returns a fresh copy of CubeIndices in host byte order.
func IndexBytes() []byte {
	out := make([]byte, 0, len(CubeIndices)*4)
	for _, i := range CubeIndices {
		out = binary.NativeEndian.AppendUint32(out, i)
	}
	return out
}
