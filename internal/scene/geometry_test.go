package scene

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCubeIndicesInRange(t *testing.T) {
	require.Equal(t, 36, IndexCount)
	require.Equal(t, 8, VertexCount)
	for i, idx := range CubeIndices {
		assert.Less(t, idx, uint32(VertexCount), "index %d", i)
	}
}

func TestCubeTrianglesAreNonDegenerate(t *testing.T) {
	for tri := 0; tri < IndexCount/3; tri++ {
		a, b, c := CubeIndices[tri*3], CubeIndices[tri*3+1], CubeIndices[tri*3+2]
		assert.True(t, a != b && b != c && a != c, "triangle %d uses %d %d %d", tri, a, b, c)
	}
}

func TestCubeVerticesAreUnitCorners(t *testing.T) {
	seen := make(map[[3]float32]bool)
	for v := 0; v < VertexCount; v++ {
		p := [3]float32{CubeVertices[v*3], CubeVertices[v*3+1], CubeVertices[v*3+2]}
		for _, c := range p {
			assert.Equal(t, float32(0.5), float32(math.Abs(float64(c))))
		}
		seen[p] = true
	}
	assert.Len(t, seen, 8)
}

func TestGeometryBytes(t *testing.T) {
	vb := VertexBytes()
	ib := IndexBytes()
	require.Len(t, vb, len(CubeVertices)*4)
	require.Len(t, ib, len(CubeIndices)*4)

	assert.Equal(t, float32(-0.5), math.Float32frombits(binary.NativeEndian.Uint32(vb[0:4])))
	assert.Equal(t, uint32(6), binary.NativeEndian.Uint32(ib[len(ib)-8:len(ib)-4]))

	// Each call returns an independent copy.
	vb[0] = 0xFF
	assert.NotEqual(t, vb[0], VertexBytes()[0])
}
