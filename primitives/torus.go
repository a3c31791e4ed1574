// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package primitives

import (
	"cogentcore.org/core/math32"

	"github.com/cogentcore/meshtools"
	"github.com/cogentcore/meshtools/mesh"
)

// Torus is a torus mesh, defined by the radius of the solid tube and the
// larger radius of the ring, centered on the origin in the XY plane.
type Torus struct {
	// Radius is the larger radius of the torus ring.
	Radius float32

	// TubeRadius is the radius of the solid tube.
	TubeRadius float32

	// RadialSegs is the number of segments around the ring
	// (32 is a reasonable default).
	RadialSegs int `min:"3"`

	// TubeSegs is the number of segments around the tube itself
	// (32 is a reasonable default).
	TubeSegs int `min:"3"`
}

// NewTorus returns a Torus with the specified outer ring radius, solid
// tube radius, and number of segments (resolution).
func NewTorus(radius, tubeRadius float32, segs int) *Torus {
	tr := &Torus{}
	tr.Defaults()
	tr.Radius = radius
	tr.TubeRadius = tubeRadius
	tr.RadialSegs = segs
	tr.TubeSegs = segs
	return tr
}

func (tr *Torus) Defaults() {
	tr.Radius = 1
	tr.TubeRadius = 0.1
	tr.RadialSegs = 32
	tr.TubeSegs = 32
}

// N returns the number of vertices and indices the mesh will have.
func (tr *Torus) N() (numVertex, numIndex int) {
	return (tr.RadialSegs + 1) * (tr.TubeSegs + 1), tr.RadialSegs * tr.TubeSegs * 6
}

// Mesh generates the torus mesh. The surface is built as a grid of
// curved quads which are then triangulated along their better diagonal
// via [meshtools.GenerateQuadIndices].
func (tr *Torus) Mesh() mesh.Mesh {
	radialSegs := max(tr.RadialSegs, 3)
	tubeSegs := max(tr.TubeSegs, 3)
	g := newGeom((radialSegs+1)*(tubeSegs+1), 0)

	for j := 0; j <= radialSegs; j++ {
		for i := 0; i <= tubeSegs; i++ {
			u := float32(i) / float32(tubeSegs) * 2 * math32.Pi
			v := float32(j) / float32(radialSegs) * 2 * math32.Pi

			center := math32.Vec3(tr.Radius*math32.Cos(u), tr.Radius*math32.Sin(u), 0)
			pt := math32.Vec3(
				(tr.Radius+tr.TubeRadius*math32.Cos(v))*math32.Cos(u),
				(tr.Radius+tr.TubeRadius*math32.Cos(v))*math32.Sin(u),
				tr.TubeRadius*math32.Sin(v),
			)
			tc := math32.Vec2(float32(i)/float32(tubeSegs), float32(j)/float32(radialSegs))
			g.vertex(pt, pt.Sub(center).Normal(), tc)
		}
	}

	quads := make([]uint32, 0, radialSegs*tubeSegs*4)
	for j := 1; j <= radialSegs; j++ {
		for i := 1; i <= tubeSegs; i++ {
			a := uint32((tubeSegs+1)*j + i - 1)
			b := uint32((tubeSegs+1)*(j-1) + i - 1)
			c := uint32((tubeSegs+1)*(j-1) + i)
			d := uint32((tubeSegs+1)*j + i)
			quads = append(quads, a, b, c, d)
		}
	}
	g.index = meshtools.GenerateQuadIndices(g.positions, quads, 0)
	return g.mesh()
}
