// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package primitives

import (
	"cogentcore.org/core/math32"

	"github.com/cogentcore/meshtools/mesh"
)

// Plane is a flat rectangle, subdivided into a grid of segments.
type Plane struct {
	// Size along the width and height axes.
	Size math32.Vector2

	// Segs is the number of segments to divide each axis into (min 1).
	// Subdividing a plane can increase lighting and texture quality.
	Segs math32.Vector2i

	// NormAxis is the axis the plane normal points along.
	NormAxis math32.Dims

	// NormNeg flips the normal to the negative direction of NormAxis.
	NormNeg bool

	// Offset is the position of the plane along NormAxis.
	Offset float32
}

// NewPlane returns a Plane of the given size, facing positive Z.
func NewPlane(width, height float32) *Plane {
	pl := &Plane{}
	pl.Defaults()
	pl.Size.Set(width, height)
	return pl
}

func (pl *Plane) Defaults() {
	pl.Size.Set(1, 1)
	pl.Segs.Set(1, 1)
	pl.NormAxis = math32.Z
}

// N returns the number of vertices and indices the mesh will have.
func (pl *Plane) N() (numVertex, numIndex int) {
	return planeN(int(pl.Segs.X), int(pl.Segs.Y))
}

// Mesh generates the plane mesh.
func (pl *Plane) Mesh() mesh.Mesh {
	waxis, haxis := otherAxes(pl.NormAxis)
	wdir, hdir := planeDirs(pl.NormAxis, pl.NormNeg)
	nv, ni := pl.N()
	g := newGeom(nv, ni)
	addPlane(g, waxis, haxis, wdir, hdir, pl.Size.X, pl.Size.Y, pl.Offset, pl.NormNeg, int(pl.Segs.X), int(pl.Segs.Y))
	return g.mesh()
}

// planeDirs returns the width and height direction signs that make the
// standard grid winding come out counterclockwise when viewed from the
// facing side.
func planeDirs(norm math32.Dims, neg bool) (wdir, hdir float32) {
	switch {
	case norm == math32.X && !neg:
		return -1, -1
	case norm == math32.X:
		return 1, -1
	case norm == math32.Y && !neg:
		return 1, 1
	case norm == math32.Y:
		return 1, -1
	case !neg: // Z
		return 1, -1
	default:
		return -1, -1
	}
}

func planeN(wsegs, hsegs int) (numVertex, numIndex int) {
	wsegs = max(wsegs, 1)
	hsegs = max(hsegs, 1)
	return (wsegs + 1) * (hsegs + 1), wsegs * hsegs * 6
}

// addPlane appends a segmented rectangle spanning the waxis and haxis
// dimensions at zoff along the remaining one. wdir and hdir mirror the
// respective axis, controlling winding and texture orientation.
func addPlane(g *geom, waxis, haxis math32.Dims, wdir, hdir float32, width, height, zoff float32, normNeg bool, wsegs, hsegs int) {
	wsegs = max(wsegs, 1)
	hsegs = max(hsegs, 1)
	sw := width / float32(wsegs)
	sh := height / float32(hsegs)
	w2 := width / 2
	h2 := height / 2

	naxis := math32.Dims(3) - waxis - haxis
	var norm math32.Vector3
	if normNeg {
		norm.SetDim(naxis, -1)
	} else {
		norm.SetDim(naxis, 1)
	}

	voff := uint32(len(g.positions))
	for iy := 0; iy <= hsegs; iy++ {
		for ix := 0; ix <= wsegs; ix++ {
			var pt math32.Vector3
			pt.SetDim(waxis, wdir*(-w2+float32(ix)*sw))
			pt.SetDim(haxis, hdir*(-h2+float32(iy)*sh))
			pt.SetDim(naxis, zoff)
			tc := math32.Vec2(float32(ix)/float32(wsegs), float32(iy)/float32(hsegs))
			g.vertex(pt, norm, tc)
		}
	}
	for iy := 0; iy < hsegs; iy++ {
		for ix := 0; ix < wsegs; ix++ {
			a := uint32(ix + (wsegs+1)*iy)
			b := uint32(ix + (wsegs+1)*(iy+1))
			c := uint32(ix + 1 + (wsegs+1)*(iy+1))
			d := uint32(ix + 1 + (wsegs+1)*iy)
			g.triangle(voff+a, voff+b, voff+d)
			g.triangle(voff+b, voff+c, voff+d)
		}
	}
}
