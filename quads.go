// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meshtools

import (
	"cogentcore.org/core/math32"
)

// splits of a quad a,b,c,d into two triangles along either diagonal
var (
	splitAbcAcd = [6]int{0, 1, 2, 0, 2, 3}
	splitDabDbc = [6]int{3, 0, 1, 3, 1, 2}
)

// GenerateQuadIndicesInto writes indices triangulating the given quads,
// two triangles per quad, with offset added to every emitted value.
// quads holds four position indices per quad; into must hold exactly
// len(quads)*6/4 elements. See [GenerateQuadIndices] for how the
// diagonal is chosen.
func GenerateQuadIndicesInto(positions []math32.Vector3, quads []uint32, into []uint32, offset uint32) {
	if !checkf(len(quads)%4 == 0, "meshtools.GenerateQuadIndicesInto: quad index count %d not divisible by 4", len(quads)) {
		return
	}
	if !checkf(len(quads)*6/4 == len(into), "meshtools.GenerateQuadIndicesInto: bad output size, expected %d but got %d", len(quads)*6/4, len(into)) {
		return
	}
	for i := 0; i < len(quads)/4; i++ {
		q := quads[4*i : 4*i+4]
		for _, index := range q {
			if !checkf(int(index) < len(positions), "meshtools.GenerateQuadIndicesInto: index %d out of bounds for %d elements", index, len(positions)) {
				return
			}
		}
		a := positions[q[0]]
		b := positions[q[1]]
		c := positions[q[2]]
		d := positions[q[3]]

		// A non-planar or concave quad has to be split along the diagonal
		// that keeps both triangle normals on the same side; splitting
		// along the other one folds the quad over itself.
		abcAcdOpposite := c.Sub(b).Cross(a.Sub(b)).Dot(d.Sub(c).Cross(a.Sub(c))) < 0
		dabDbcOpposite := d.Sub(b).Cross(a.Sub(b)).Dot(c.Sub(b).Cross(d.Sub(b))) < 0

		var split *[6]int
		if abcAcdOpposite != dabDbcOpposite {
			if abcAcdOpposite {
				split = &splitDabDbc
			} else {
				split = &splitAbcAcd
			}
		} else if b.Sub(d).LengthSquared() < c.Sub(a).LengthSquared() {
			// both diagonals work (or neither does); prefer the shorter
			// one, falling back to the a-c split on a tie
			split = &splitDabDbc
		} else {
			split = &splitAbcAcd
		}

		for j, s := range split {
			into[6*i+j] = q[s] + offset
		}
	}
}

// GenerateQuadIndices returns indices triangulating the given quads, two
// triangles per quad, with offset added to every emitted value. quads
// holds four position indices per quad, in counterclockwise order
// a, b, c, d. Each quad is split along one of its diagonals: the one
// that keeps both triangle normals pointing the same way, or the
// shorter one when both (or neither) would.
func GenerateQuadIndices(positions []math32.Vector3, quads []uint32, offset uint32) []uint32 {
	if !checkf(len(quads)%4 == 0, "meshtools.GenerateQuadIndices: quad index count %d not divisible by 4", len(quads)) {
		return nil
	}
	out := make([]uint32, len(quads)*6/4)
	GenerateQuadIndicesInto(positions, quads, out, offset)
	return out
}
