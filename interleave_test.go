// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meshtools

import (
	"testing"

	"github.com/cogentcore/meshtools/mesh"
	"github.com/stretchr/testify/assert"
)

func TestIsInterleaved(t *testing.T) {
	none := mesh.New(mesh.Triangles, 3)
	assert.True(t, IsInterleaved(&none))

	interleaved := mesh.Mesh{Attributes: []mesh.Attribute{
		{Name: mesh.Position, Format: mesh.Float32Vector3, Offset: 0, Stride: 20},
		{Name: mesh.TextureCoordinates, Format: mesh.Float32Vector2, Offset: 12, Stride: 20},
	}}
	assert.True(t, IsInterleaved(&interleaved))

	// separate tightly packed arrays: differing strides
	planar := mesh.Mesh{Attributes: []mesh.Attribute{
		{Name: mesh.Position, Format: mesh.Float32Vector3, Offset: 0, Stride: 12},
		{Name: mesh.TextureCoordinates, Format: mesh.Float32Vector2, Offset: 120, Stride: 8},
	}}
	assert.False(t, IsInterleaved(&planar))

	// same stride but offsets spanning more than one stride window
	spread := mesh.Mesh{Attributes: []mesh.Attribute{
		{Name: mesh.Position, Format: mesh.Float32Vector3, Offset: 0, Stride: 16},
		{Name: mesh.TextureCoordinates, Format: mesh.Float32Vector2, Offset: 120, Stride: 16},
	}}
	assert.False(t, IsInterleaved(&spread))
}

func TestInterleavedLayoutRepack(t *testing.T) {
	m := mesh.Mesh{Primitive: mesh.Triangles, NumVertex: 5, Attributes: []mesh.Attribute{
		{Name: mesh.Position, Format: mesh.Float32Vector3, Offset: 0, Stride: 12},
		{Name: mesh.TextureCoordinates, Format: mesh.Float32Vector2, Offset: 60, Stride: 8},
	}}
	out := InterleavedLayout(&m, 10, nil, 0)
	assert.Equal(t, 10, out.NumVertex)
	assert.Len(t, out.Attributes, 2)
	assert.Equal(t, 0, out.Attributes[0].Offset)
	assert.Equal(t, 12, out.Attributes[1].Offset)
	assert.Equal(t, 20, out.Attributes[0].Stride)
	assert.Equal(t, 20, out.Attributes[1].Stride)
	assert.Equal(t, 200, len(out.VertexData.Data))
	assert.False(t, out.IsIndexed())
}

func TestInterleavedLayoutPreserve(t *testing.T) {
	// interleaved with 4 bytes padding after the position and a base
	// offset of 8 that gets dropped
	m := mesh.Mesh{Primitive: mesh.Triangles, NumVertex: 2, Attributes: []mesh.Attribute{
		{Name: mesh.Position, Format: mesh.Float32Vector3, Offset: 8, Stride: 24},
		{Name: mesh.TextureCoordinates, Format: mesh.Float32Vector2, Offset: 24, Stride: 24},
	}}
	out := InterleavedLayout(&m, 4, nil, PreserveInterleavedAttributes)
	assert.Equal(t, 0, out.Attributes[0].Offset)
	assert.Equal(t, 16, out.Attributes[1].Offset)
	assert.Equal(t, 24, out.Attributes[0].Stride)
	assert.Equal(t, 96, len(out.VertexData.Data))

	// without the flag the padding is packed away
	tight := InterleavedLayout(&m, 4, nil, 0)
	assert.Equal(t, 12, tight.Attributes[1].Offset)
	assert.Equal(t, 20, tight.Attributes[0].Stride)
}

func TestInterleavedLayoutExtra(t *testing.T) {
	m := mesh.Mesh{Primitive: mesh.Triangles, Attributes: []mesh.Attribute{
		{Name: mesh.Position, Format: mesh.Float32Vector3, Offset: 0, Stride: 12},
	}}
	extra := []mesh.Attribute{
		{Format: mesh.FormatUnknown, Stride: 4}, // padding
		{Name: mesh.Normal, Format: mesh.Float32Vector3},
	}
	out := InterleavedLayout(&m, 3, extra, 0)
	assert.Len(t, out.Attributes, 2)
	assert.Equal(t, 28, out.Attributes[0].Stride)
	assert.Equal(t, 0, out.Attributes[0].Offset)
	assert.Equal(t, mesh.Normal, out.Attributes[1].Name)
	assert.Equal(t, 16, out.Attributes[1].Offset)
	assert.Equal(t, 84, len(out.VertexData.Data))
}

func TestInterleavedLayoutNegativePadding(t *testing.T) {
	m := mesh.Mesh{Primitive: mesh.Triangles, Attributes: []mesh.Attribute{
		{Name: mesh.Position, Format: mesh.Float32Vector3, Offset: 0, Stride: 12},
	}}
	// too large a negative padding is a contract violation
	extra := []mesh.Attribute{{Format: mesh.FormatUnknown, Stride: -16}}
	out := InterleavedLayout(&m, 3, extra, 0)
	assert.Empty(t, out.Attributes)
}

func TestInterleave(t *testing.T) {
	m := patternMesh(mesh.Triangles, 3, 0,
		mesh.Attribute{Name: mesh.Position, Format: mesh.Float32Vector3},
		mesh.Attribute{Name: mesh.TextureCoordinates, Format: mesh.Float32Vector2},
	)
	m.IndexType = mesh.IndexUint16
	m.IndexData = index16(2, 1, 0)

	out := Interleave(&m, nil, PreserveInterleavedAttributes)
	assert.Equal(t, m.NumVertex, out.NumVertex)
	assert.Equal(t, m.VertexData.Data, out.VertexData.Data)
	assert.Equal(t, []uint32{2, 1, 0}, out.Indices32())

	// appending a zero-filled normal channel
	extra := []mesh.Attribute{{Name: mesh.Normal, Format: mesh.Float32Vector3}}
	withNormals := Interleave(&m, extra, PreserveInterleavedAttributes)
	assert.Len(t, withNormals.Attributes, 3)
	assert.Equal(t, 32, withNormals.Stride())
	for v := 0; v < 3; v++ {
		assert.Equal(t, m.AttributeBytes(0, v), withNormals.AttributeBytes(0, v))
		assert.Equal(t, m.AttributeBytes(1, v), withNormals.AttributeBytes(1, v))
		assert.Equal(t, make([]byte, 12), withNormals.AttributeBytes(2, v))
	}
}

func TestInterleaveFromPlanar(t *testing.T) {
	// two separate arrays, positions then texture coordinates
	data := make([]byte, 3*12+3*8)
	for i := range data {
		data[i] = byte(i)
	}
	m := mesh.Mesh{Primitive: mesh.Triangles, NumVertex: 3,
		VertexData: mesh.ViewBuffer(data),
		Attributes: []mesh.Attribute{
			{Name: mesh.Position, Format: mesh.Float32Vector3, Offset: 0, Stride: 12},
			{Name: mesh.TextureCoordinates, Format: mesh.Float32Vector2, Offset: 36, Stride: 8},
		}}
	out := Interleave(&m, nil, PreserveInterleavedAttributes)
	assert.True(t, IsInterleaved(&out))
	assert.Equal(t, 20, out.Stride())
	for v := 0; v < 3; v++ {
		assert.Equal(t, m.AttributeBytes(0, v), out.AttributeBytes(0, v))
		assert.Equal(t, m.AttributeBytes(1, v), out.AttributeBytes(1, v))
	}
}
