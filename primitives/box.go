// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package primitives

import (
	"cogentcore.org/core/math32"

	"github.com/cogentcore/meshtools"
	"github.com/cogentcore/meshtools/mesh"
)

// Box is a rectangular solid (cuboid), centered on the origin.
type Box struct {
	// Size along each dimension.
	Size math32.Vector3

	// Segs is the number of segments to divide each face into per axis
	// (min 1).
	Segs math32.Vector3i
}

// NewBox returns a Box of the given size.
func NewBox(width, height, depth float32) *Box {
	bx := &Box{}
	bx.Defaults()
	bx.Size.Set(width, height, depth)
	return bx
}

func (bx *Box) Defaults() {
	bx.Size.Set(1, 1, 1)
	bx.Segs.Set(1, 1, 1)
}

// N returns the number of vertices and indices the mesh will have.
func (bx *Box) N() (numVertex, numIndex int) {
	nv, ni := planeN(int(bx.Segs.X), int(bx.Segs.Y))
	numVertex += 2 * nv
	numIndex += 2 * ni
	nv, ni = planeN(int(bx.Segs.X), int(bx.Segs.Z))
	numVertex += 2 * nv
	numIndex += 2 * ni
	nv, ni = planeN(int(bx.Segs.Z), int(bx.Segs.Y))
	numVertex += 2 * nv
	numIndex += 2 * ni
	return numVertex, numIndex
}

// Mesh generates the box as six face planes merged into one mesh.
func (bx *Box) Mesh() mesh.Mesh {
	h := bx.Size.DivScalar(2)
	faces := []Plane{
		{Size: math32.Vec2(bx.Size.X, bx.Size.Y), Segs: math32.Vector2i{X: bx.Segs.X, Y: bx.Segs.Y}, NormAxis: math32.Z, NormNeg: true, Offset: -h.Z},
		{Size: math32.Vec2(bx.Size.X, bx.Size.Z), Segs: math32.Vector2i{X: bx.Segs.X, Y: bx.Segs.Z}, NormAxis: math32.Y, NormNeg: true, Offset: -h.Y},
		{Size: math32.Vec2(bx.Size.Z, bx.Size.Y), Segs: math32.Vector2i{X: bx.Segs.Z, Y: bx.Segs.Y}, NormAxis: math32.X, Offset: h.X},
		{Size: math32.Vec2(bx.Size.Z, bx.Size.Y), Segs: math32.Vector2i{X: bx.Segs.Z, Y: bx.Segs.Y}, NormAxis: math32.X, NormNeg: true, Offset: -h.X},
		{Size: math32.Vec2(bx.Size.X, bx.Size.Z), Segs: math32.Vector2i{X: bx.Segs.X, Y: bx.Segs.Z}, NormAxis: math32.Y, Offset: h.Y},
		{Size: math32.Vec2(bx.Size.X, bx.Size.Y), Segs: math32.Vector2i{X: bx.Segs.X, Y: bx.Segs.Y}, NormAxis: math32.Z, Offset: h.Z},
	}
	meshes := make([]mesh.Mesh, len(faces))
	for i := range faces {
		meshes[i] = faces[i].Mesh()
	}
	return meshtools.Concatenate(meshes, meshtools.PreserveInterleavedAttributes)
}
