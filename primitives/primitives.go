// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package primitives generates [mesh.Mesh] values for basic shapes:
// plane, box and torus. All generators produce indexed triangle meshes
// with an interleaved position / normal / texture-coordinate vertex
// layout, ready for the meshtools algorithms or for upload.
package primitives

import (
	"encoding/binary"
	"math"

	"cogentcore.org/core/math32"

	"github.com/cogentcore/meshtools/mesh"
)

// the shared vertex layout of all generated meshes
const (
	// Stride is the interleaved vertex byte size.
	Stride = 32

	positionOffset = 0
	normalOffset   = 12
	textureOffset  = 24
)

// Attributes returns the attribute layout all generators produce:
// position, normal and texture coordinates interleaved at [Stride].
func Attributes() []mesh.Attribute {
	return []mesh.Attribute{
		{Name: mesh.Position, Format: mesh.Float32Vector3, Offset: positionOffset, Stride: Stride},
		{Name: mesh.Normal, Format: mesh.Float32Vector3, Offset: normalOffset, Stride: Stride},
		{Name: mesh.TextureCoordinates, Format: mesh.Float32Vector2, Offset: textureOffset, Stride: Stride},
	}
}

// geom accumulates interleaved vertex data and triangle indices for one
// shape. Positions are kept separately as well, for the generators that
// post-process them (quad triangulation in the torus).
type geom struct {
	data      []byte
	positions []math32.Vector3
	index     []uint32
}

func newGeom(numVertex, numIndex int) *geom {
	return &geom{
		data:      make([]byte, 0, numVertex*Stride),
		positions: make([]math32.Vector3, 0, numVertex),
		index:     make([]uint32, 0, numIndex),
	}
}

func putF32(data []byte, v float32) []byte {
	return binary.LittleEndian.AppendUint32(data, math.Float32bits(v))
}

// vertex appends one interleaved vertex row.
func (g *geom) vertex(pos, norm math32.Vector3, tc math32.Vector2) {
	g.data = putF32(g.data, pos.X)
	g.data = putF32(g.data, pos.Y)
	g.data = putF32(g.data, pos.Z)
	g.data = putF32(g.data, norm.X)
	g.data = putF32(g.data, norm.Y)
	g.data = putF32(g.data, norm.Z)
	g.data = putF32(g.data, tc.X)
	g.data = putF32(g.data, tc.Y)
	g.positions = append(g.positions, pos)
}

func (g *geom) triangle(a, b, c uint32) {
	g.index = append(g.index, a, b, c)
}

// mesh wraps the accumulated data as an indexed triangle mesh.
func (g *geom) mesh() mesh.Mesh {
	return mesh.Mesh{
		Primitive:  mesh.Triangles,
		NumVertex:  len(g.positions),
		VertexData: mesh.OwnedBuffer(g.data),
		Attributes: Attributes(),
		IndexType:  mesh.IndexUint32,
		IndexData:  mesh.IndexBuffer32(g.index),
	}
}

// otherAxes returns the width and height axes spanning the plane
// perpendicular to the given normal axis.
func otherAxes(norm math32.Dims) (w, h math32.Dims) {
	switch norm {
	case math32.X:
		return math32.Z, math32.Y
	case math32.Y:
		return math32.X, math32.Z
	default:
		return math32.X, math32.Y
	}
}
