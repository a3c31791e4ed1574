// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meshtools

import (
	"testing"

	"github.com/cogentcore/meshtools/mesh"
	"github.com/stretchr/testify/assert"
)

func index16(vals ...uint16) mesh.Buffer {
	data := make([]byte, 2*len(vals))
	for i, v := range vals {
		mesh.PutIndex(data, mesh.IndexUint16, i, uint32(v))
	}
	return mesh.OwnedBuffer(data)
}

func TestPrimitiveCount(t *testing.T) {
	assert.Equal(t, 5, PrimitiveCount(mesh.Points, 5))
	assert.Equal(t, 3, PrimitiveCount(mesh.Lines, 6))
	assert.Equal(t, 4, PrimitiveCount(mesh.LineStrip, 5))
	assert.Equal(t, 0, PrimitiveCount(mesh.LineStrip, 0))
	assert.Equal(t, 5, PrimitiveCount(mesh.LineLoop, 5))
	assert.Equal(t, 2, PrimitiveCount(mesh.Triangles, 6))
	assert.Equal(t, 3, PrimitiveCount(mesh.TriangleStrip, 5))
	assert.Equal(t, 3, PrimitiveCount(mesh.TriangleFan, 5))
	assert.Equal(t, 0, PrimitiveCount(mesh.TriangleStrip, 2))
}

func TestGenerateTrivialIndices(t *testing.T) {
	assert.Equal(t, []uint32{100, 101, 102, 103, 104, 105, 106}, GenerateTrivialIndices(7, 100))
	assert.Equal(t, []uint32{0, 1, 2}, GenerateTrivialIndices(3, 0))
	assert.Empty(t, GenerateTrivialIndices(0, 5))
}

func TestGenerateLineStripIndices(t *testing.T) {
	assert.Equal(t, []uint32{0, 1, 1, 2, 2, 3, 3, 4}, GenerateLineStripIndices(5, 0))
	assert.Equal(t, []uint32{10, 11, 11, 12}, GenerateLineStripIndices(3, 10))
	assert.Empty(t, GenerateLineStripIndices(0, 0))
	assert.Equal(t, []uint32{0, 1}, GenerateLineStripIndices(2, 0))
}

func TestGenerateLineStripIndicesIndexed(t *testing.T) {
	iv := mesh.IndexView{Data: index16(7, 2, 5).Data, Type: mesh.IndexUint16}
	assert.Equal(t, []uint32{7, 2, 2, 5}, GenerateLineStripIndicesIndexed(iv, 0))
	assert.Equal(t, []uint32{107, 102, 102, 105}, GenerateLineStripIndicesIndexed(iv, 100))
}

func TestGenerateLineLoopIndices(t *testing.T) {
	assert.Equal(t, []uint32{0, 1, 1, 2, 2, 3, 3, 4, 4, 0}, GenerateLineLoopIndices(5, 0))
	assert.Equal(t, []uint32{10, 11, 11, 10}, GenerateLineLoopIndices(2, 10))
	assert.Empty(t, GenerateLineLoopIndices(0, 0))
}

func TestGenerateLineLoopIndicesIndexed(t *testing.T) {
	iv := mesh.IndexView{Data: index16(7, 2, 5).Data, Type: mesh.IndexUint16}
	assert.Equal(t, []uint32{7, 2, 2, 5, 5, 7}, GenerateLineLoopIndicesIndexed(iv, 0))
}

func TestGenerateTriangleStripIndices(t *testing.T) {
	// odd triangles get their first two indices swapped to keep winding
	assert.Equal(t, []uint32{0, 1, 2, 2, 1, 3, 2, 3, 4, 4, 3, 5, 4, 5, 6},
		GenerateTriangleStripIndices(7, 0))
	assert.Equal(t, []uint32{5, 6, 7}, GenerateTriangleStripIndices(3, 5))
	assert.Empty(t, GenerateTriangleStripIndices(0, 0))
}

func TestGenerateTriangleStripIndicesIndexed(t *testing.T) {
	iv := mesh.IndexView{Data: index16(10, 20, 30, 40).Data, Type: mesh.IndexUint16}
	assert.Equal(t, []uint32{10, 20, 30, 30, 20, 40}, GenerateTriangleStripIndicesIndexed(iv, 0))
}

func TestGenerateTriangleFanIndices(t *testing.T) {
	assert.Equal(t, []uint32{0, 1, 2, 0, 2, 3, 0, 3, 4}, GenerateTriangleFanIndices(5, 0))
	fan := GenerateTriangleFanIndices(6, 9)
	for i := 0; i < len(fan); i += 3 {
		assert.Equal(t, uint32(9), fan[i])
	}
	assert.Empty(t, GenerateTriangleFanIndices(0, 0))
}

func TestGenerateTriangleFanIndicesIndexed(t *testing.T) {
	iv := mesh.IndexView{Data: index16(3, 1, 4, 1, 5).Data, Type: mesh.IndexUint16}
	assert.Equal(t, []uint32{3, 1, 4, 3, 4, 1, 3, 1, 5}, GenerateTriangleFanIndicesIndexed(iv, 0))
}

func TestGenerateIndicesFan(t *testing.T) {
	m := mesh.New(mesh.TriangleFan, 5)
	out := GenerateIndices(m)
	assert.Equal(t, mesh.Triangles, out.Primitive)
	assert.True(t, out.IsIndexed())
	assert.Equal(t, mesh.IndexUint32, out.IndexType)
	assert.Equal(t, []uint32{0, 1, 2, 0, 2, 3, 0, 3, 4}, out.Indices32())
	assert.Equal(t, 5, out.NumVertex)
}

func TestGenerateIndicesStripIndexed(t *testing.T) {
	m := mesh.New(mesh.TriangleStrip, 4)
	m.IndexType = mesh.IndexUint16
	m.IndexData = index16(3, 2, 1, 0)
	out := GenerateIndices(m)
	assert.Equal(t, mesh.Triangles, out.Primitive)
	assert.Equal(t, []uint32{3, 2, 1, 1, 2, 0}, out.Indices32())
}

func TestGenerateIndicesLineLoop(t *testing.T) {
	m := mesh.New(mesh.LineLoop, 3)
	out := GenerateIndices(m)
	assert.Equal(t, mesh.Lines, out.Primitive)
	assert.Equal(t, []uint32{0, 1, 1, 2, 2, 0}, out.Indices32())
}

func TestGenerateIndicesTrivial(t *testing.T) {
	m := mesh.New(mesh.Triangles, 3)
	out := GenerateIndices(m)
	assert.Equal(t, mesh.Triangles, out.Primitive)
	assert.True(t, out.IsIndexed())
	assert.Equal(t, []uint32{0, 1, 2}, out.Indices32())
}

func TestGenerateIndicesPassthrough(t *testing.T) {
	m := mesh.New(mesh.Triangles, 3)
	m.IndexType = mesh.IndexUint16
	m.IndexData = index16(2, 1, 0)
	out := GenerateIndices(m)
	assert.Equal(t, mesh.IndexUint32, out.IndexType)
	assert.Equal(t, []uint32{2, 1, 0}, out.Indices32())
	// the input is untouched
	assert.Equal(t, mesh.IndexUint16, m.IndexType)

	// running it again changes nothing further
	again := GenerateIndices(out)
	assert.Equal(t, out.Indices32(), again.Indices32())
	assert.Equal(t, out.Primitive, again.Primitive)
}

func TestGenerateIndicesTake(t *testing.T) {
	m := mesh.New(mesh.Triangles, 3)
	m.IndexType = mesh.IndexUint32
	m.IndexData = mesh.IndexBuffer32([]uint32{2, 1, 0})
	backing := m.IndexData.Data
	m.VertexData = mesh.OwnedBuffer([]byte{1, 2, 3})

	out := GenerateIndicesTake(&m)
	assert.Equal(t, []uint32{2, 1, 0}, out.Indices32())
	// owned 32-bit buffers are transferred, not copied
	assert.Same(t, &backing[0], &out.IndexData.Data[0])
	assert.Equal(t, []byte{1, 2, 3}, out.VertexData.Data)
}

func TestGenerateIndicesVertexDataCopied(t *testing.T) {
	m := mesh.New(mesh.TriangleFan, 3)
	m.VertexData = mesh.ViewBuffer([]byte{5, 6, 7})
	m.Attributes = []mesh.Attribute{{Name: mesh.Position, Format: mesh.Uint8, Stride: 1}}
	out := GenerateIndices(m)
	assert.Equal(t, []byte{5, 6, 7}, out.VertexData.Data)
	out.VertexData.Data[0] = 9
	assert.Equal(t, byte(5), m.VertexData.Data[0])
	assert.True(t, out.VertexData.IsOwned())
}
