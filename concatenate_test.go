// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meshtools

import (
	"testing"

	"github.com/cogentcore/meshtools/mesh"
	"github.com/stretchr/testify/assert"
)

// patternMesh builds a tightly interleaved mesh whose vertex bytes
// follow a per-mesh recognizable pattern: byte j of vertex row v is
// seed + v*16 + j.
func patternMesh(primitive mesh.Primitive, numVertex int, seed byte, attrs ...mesh.Attribute) mesh.Mesh {
	stride := 0
	for i := range attrs {
		attrs[i].Offset = stride
		stride += attrs[i].Bytes()
	}
	for i := range attrs {
		attrs[i].Stride = stride
	}
	data := make([]byte, numVertex*stride)
	for v := 0; v < numVertex; v++ {
		for j := 0; j < stride; j++ {
			data[v*stride+j] = seed + byte(v*16+j)
		}
	}
	m := mesh.New(primitive, numVertex)
	m.VertexData = mesh.OwnedBuffer(data)
	m.Attributes = attrs
	return m
}

func TestConcatenateIndexVertexCount(t *testing.T) {
	nonIndexed := mesh.New(mesh.Triangles, 3)
	indexed := mesh.New(mesh.Triangles, 4)
	indexed.IndexType = mesh.IndexUint16
	indexed.IndexData = index16(0, 1, 2, 3, 2, 1)

	ic, vc := concatenateIndexVertexCount([]mesh.Mesh{nonIndexed, nonIndexed})
	assert.Equal(t, 0, ic)
	assert.Equal(t, 6, vc)

	// the first indexed mesh retroactively counts all earlier vertices
	ic, vc = concatenateIndexVertexCount([]mesh.Mesh{nonIndexed, indexed, nonIndexed})
	assert.Equal(t, 3+6+3, ic)
	assert.Equal(t, 10, vc)

	// once triggered, every later non-indexed mesh counts too
	ic, _ = concatenateIndexVertexCount([]mesh.Mesh{indexed, nonIndexed, indexed})
	assert.Equal(t, 6+3+6, ic)
}

func TestConcatenate(t *testing.T) {
	custom := mesh.CustomAttribute(7)

	a := patternMesh(mesh.Triangles, 2, 0,
		mesh.Attribute{Name: mesh.Position, Format: mesh.Float32Vector3},
		mesh.Attribute{Name: mesh.TextureCoordinates, Format: mesh.Float32Vector2},
		mesh.Attribute{Name: mesh.TextureCoordinates, Format: mesh.Float32Vector2},
		mesh.Attribute{Name: custom, Format: mesh.Uint8, ArraySize: 2},
	)
	b := patternMesh(mesh.Triangles, 4, 100,
		mesh.Attribute{Name: mesh.Color, Format: mesh.Float32Vector4},
		mesh.Attribute{Name: custom, Format: mesh.Uint8, ArraySize: 2},
		mesh.Attribute{Name: mesh.TextureCoordinates, Format: mesh.Float32Vector2},
	)
	b.IndexType = mesh.IndexUint16
	b.IndexData = index16(1, 0, 3, 2)
	c := patternMesh(mesh.Triangles, 3, 200,
		mesh.Attribute{Name: mesh.TextureCoordinates, Format: mesh.Float32Vector2},
		mesh.Attribute{Name: mesh.Position, Format: mesh.Float32Vector3},
		mesh.Attribute{Name: mesh.TextureCoordinates, Format: mesh.Float32Vector2},
		mesh.Attribute{Name: mesh.TextureCoordinates, Format: mesh.Float32Vector2},
	)

	out := Concatenate([]mesh.Mesh{a, b, c}, PreserveInterleavedAttributes)

	assert.Equal(t, mesh.Triangles, out.Primitive)
	assert.Equal(t, 9, out.NumVertex)

	// the layout is exactly the first mesh's four attributes; Color and
	// the third texture coordinate set are dropped
	assert.Len(t, out.Attributes, 4)
	assert.Equal(t, mesh.Position, out.Attributes[0].Name)
	assert.Equal(t, mesh.TextureCoordinates, out.Attributes[1].Name)
	assert.Equal(t, mesh.TextureCoordinates, out.Attributes[2].Name)
	assert.Equal(t, custom, out.Attributes[3].Name)

	// A's trivial run, B's indices rebased by 2, C's trivial run after B
	assert.True(t, out.IsIndexed())
	assert.Equal(t, mesh.IndexUint32, out.IndexType)
	assert.Equal(t, []uint32{0, 1, 3, 2, 5, 4, 6, 7, 8}, out.Indices32())

	// A's rows arrive unchanged
	for v := 0; v < 2; v++ {
		for ai := range a.Attributes {
			assert.Equal(t, a.AttributeBytes(ai, v), out.AttributeBytes(ai, v))
		}
	}
	// B contributes texture coordinates (set 0) and the custom array;
	// Position and the second set stay zero-filled
	zero12 := make([]byte, 12)
	zero8 := make([]byte, 8)
	for v := 0; v < 4; v++ {
		assert.Equal(t, b.AttributeBytes(2, v), out.AttributeBytes(1, 2+v))
		assert.Equal(t, b.AttributeBytes(1, v), out.AttributeBytes(3, 2+v))
		assert.Equal(t, zero12, out.AttributeBytes(0, 2+v))
		assert.Equal(t, zero8, out.AttributeBytes(2, 2+v))
	}
	// C contributes position and both texture coordinate sets; the
	// custom array stays zero-filled
	for v := 0; v < 3; v++ {
		assert.Equal(t, c.AttributeBytes(1, v), out.AttributeBytes(0, 6+v))
		assert.Equal(t, c.AttributeBytes(0, v), out.AttributeBytes(1, 6+v))
		assert.Equal(t, c.AttributeBytes(2, v), out.AttributeBytes(2, 6+v))
		assert.Equal(t, []byte{0, 0}, out.AttributeBytes(3, 6+v))
	}
}

func TestConcatenateSingleton(t *testing.T) {
	m := patternMesh(mesh.Triangles, 3, 0,
		mesh.Attribute{Name: mesh.Position, Format: mesh.Float32Vector3},
		mesh.Attribute{Name: mesh.Normal, Format: mesh.Float32Vector3},
	)
	m.IndexType = mesh.IndexUint16
	m.IndexData = index16(2, 1, 0)

	out := Concatenate([]mesh.Mesh{m}, PreserveInterleavedAttributes)
	assert.Equal(t, m.NumVertex, out.NumVertex)
	assert.Equal(t, []uint32{2, 1, 0}, out.Indices32())
	assert.Equal(t, m.VertexData.Data, out.VertexData.Data)
	assert.True(t, out.VertexData.IsOwned())
	assert.True(t, out.VertexData.IsMutable())
}

func TestConcatenateNonIndexed(t *testing.T) {
	m := patternMesh(mesh.Points, 2, 0,
		mesh.Attribute{Name: mesh.Position, Format: mesh.Float32Vector3})
	out := Concatenate([]mesh.Mesh{m, m}, 0)
	assert.False(t, out.IsIndexed())
	assert.Equal(t, 4, out.NumVertex)
	assert.Equal(t, append(append([]byte(nil), m.VertexData.Data...), m.VertexData.Data...), out.VertexData.Data)
}

func TestConcatenateAttributeless(t *testing.T) {
	a := mesh.New(mesh.Triangles, 3)
	b := mesh.New(mesh.Triangles, 3)
	b.IndexType = mesh.IndexUint8
	b.IndexData = mesh.OwnedBuffer([]byte{2, 0, 1})
	out := Concatenate([]mesh.Mesh{a, b}, 0)
	assert.Equal(t, 6, out.NumVertex)
	assert.Empty(t, out.Attributes)
	assert.Equal(t, []uint32{0, 1, 2, 5, 3, 4}, out.Indices32())
}

func TestConcatenateInto(t *testing.T) {
	a := patternMesh(mesh.Triangles, 2, 10,
		mesh.Attribute{Name: mesh.Position, Format: mesh.Float32Vector3},
		mesh.Attribute{Name: mesh.Normal, Format: mesh.Float32Vector3},
	)
	b := patternMesh(mesh.Triangles, 3, 60,
		mesh.Attribute{Name: mesh.Normal, Format: mesh.Float32Vector3},
		mesh.Attribute{Name: mesh.Position, Format: mesh.Float32Vector3},
	)
	b.IndexType = mesh.IndexUint8
	b.IndexData = mesh.OwnedBuffer([]byte{2, 1, 0})

	// destination dictates the layout: position only
	dst := patternMesh(mesh.Triangles, 1, 0,
		mesh.Attribute{Name: mesh.Position, Format: mesh.Float32Vector3})
	ConcatenateInto(&dst, []mesh.Mesh{a, b}, PreserveInterleavedAttributes)

	assert.Equal(t, 5, dst.NumVertex)
	assert.Len(t, dst.Attributes, 1)
	assert.Equal(t, []uint32{0, 1, 4, 3, 2}, dst.Indices32())
	for v := 0; v < 2; v++ {
		assert.Equal(t, a.AttributeBytes(0, v), dst.AttributeBytes(0, v))
	}
	for v := 0; v < 3; v++ {
		assert.Equal(t, b.AttributeBytes(1, v), dst.AttributeBytes(0, 2+v))
	}
}

func TestConcatenateIntoReleasesIndices(t *testing.T) {
	dst := patternMesh(mesh.Triangles, 1, 0,
		mesh.Attribute{Name: mesh.Position, Format: mesh.Float32Vector3})
	dst.IndexType = mesh.IndexUint16
	dst.IndexData = index16(0, 0, 0)

	src := patternMesh(mesh.Triangles, 3, 40,
		mesh.Attribute{Name: mesh.Position, Format: mesh.Float32Vector3})
	ConcatenateInto(&dst, []mesh.Mesh{src}, 0)
	assert.False(t, dst.IsIndexed())
	assert.Equal(t, 3, dst.NumVertex)
	assert.Equal(t, src.VertexData.Data, dst.VertexData.Data)
}

func TestConcatenateIntoGrow(t *testing.T) {
	dst := patternMesh(mesh.Triangles, 1, 0,
		mesh.Attribute{Name: mesh.Position, Format: mesh.Float32Vector3})
	src := patternMesh(mesh.Triangles, 2, 40,
		mesh.Attribute{Name: mesh.Position, Format: mesh.Float32Vector3})

	calls := 0
	grow := func(data []byte, n int) []byte {
		calls++
		if cap(data) >= n {
			return data[:n]
		}
		out := make([]byte, n)
		copy(out, data)
		return out
	}
	ConcatenateInto(&dst, []mesh.Mesh{src}, 0, grow)
	assert.Equal(t, 1, calls)
	assert.Equal(t, src.VertexData.Data, dst.VertexData.Data)
}

func TestConcatenateChecks(t *testing.T) {
	strip := mesh.New(mesh.TriangleStrip, 4)
	catStrip := Concatenate([]mesh.Mesh{strip}, 0)
	assert.False(t, catStrip.IsIndexed())
	assert.Equal(t, 0, Concatenate([]mesh.Mesh{strip}, 0).NumVertex)
	assert.Equal(t, 0, Concatenate(nil, 0).NumVertex)

	tri := mesh.New(mesh.Triangles, 3)
	pts := mesh.New(mesh.Points, 3)
	assert.Equal(t, 0, Concatenate([]mesh.Mesh{tri, pts}, 0).NumVertex)

	opaque := mesh.New(mesh.Triangles, 3)
	opaque.IndexType = mesh.WrapIndexType(1)
	opaque.IndexData = mesh.OwnedBuffer([]byte{0})
	assert.Equal(t, 0, Concatenate([]mesh.Mesh{opaque}, 0).NumVertex)
}
