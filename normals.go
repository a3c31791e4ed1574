// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meshtools

import (
	"cogentcore.org/core/math32"

	"github.com/cogentcore/meshtools/mesh"
)

// GenerateFlatNormalsInto fills normals with per-face normals for
// non-indexed triangle positions (counterclockwise winding assumed):
// all three vertices of a face get the same normal. normals must have
// the same length as positions, which must be divisible by 3.
func GenerateFlatNormalsInto(positions, normals []math32.Vector3) {
	if !checkf(len(positions)%3 == 0, "meshtools.GenerateFlatNormalsInto: position count %d not divisible by 3", len(positions)) {
		return
	}
	if !checkf(len(normals) == len(positions), "meshtools.GenerateFlatNormalsInto: bad output size, expected %d but got %d", len(positions), len(normals)) {
		return
	}
	for i := 0; i < len(positions); i += 3 {
		n := positions[i+2].Sub(positions[i+1]).Cross(positions[i].Sub(positions[i+1])).Normal()
		normals[i] = n
		normals[i+1] = n
		normals[i+2] = n
	}
}

// GenerateFlatNormals returns per-face normals for non-indexed triangle
// positions, one per vertex. The result has duplicate values; use
// [RemoveDuplicates] afterwards to deduplicate the mesh if needed.
func GenerateFlatNormals(positions []math32.Vector3) []math32.Vector3 {
	if !checkf(len(positions)%3 == 0, "meshtools.GenerateFlatNormals: position count %d not divisible by 3", len(positions)) {
		return nil
	}
	out := make([]math32.Vector3, len(positions))
	GenerateFlatNormalsInto(positions, out)
	return out
}

// unitAngle returns the angle between two unit vectors, clamping the dot
// product so accumulated float error can't escape Acos's domain.
func unitAngle(a, b math32.Vector3) float32 {
	return math32.Acos(math32.Clamp(a.Dot(b), -1, 1))
}

// GenerateSmoothNormalsInto fills normals with per-vertex smooth normals
// for indexed triangle positions: every vertex gets the area-weighted,
// angle-weighted average of the normals of all faces sharing it. normals
// must have the same length as positions; the index count must be
// divisible by 3 and every index must be in bounds for positions.
func GenerateSmoothNormalsInto(indices mesh.IndexView, positions, normals []math32.Vector3) {
	if !checkIndexWidth(indices, "meshtools.GenerateSmoothNormalsInto") {
		return
	}
	ni := indices.Len()
	if !checkf(ni%3 == 0, "meshtools.GenerateSmoothNormalsInto: index count %d not divisible by 3", ni) {
		return
	}
	if !checkf(len(normals) == len(positions), "meshtools.GenerateSmoothNormalsInto: bad output size, expected %d but got %d", len(positions), len(normals)) {
		return
	}
	if ni == 0 {
		for i := range normals {
			normals[i] = math32.Vector3{}
		}
		return
	}

	// per-vertex triangle counts, then turned into a running offset
	// array: triangles sharing vertex v are triangleIDs[offsets[v]:offsets[v+1]]
	counts := make([]int, len(positions))
	for i := 0; i < ni; i++ {
		index := indices.At(i)
		if !checkf(int(index) < len(positions), "meshtools.GenerateSmoothNormalsInto: index %d out of bounds for %d elements", index, len(positions)) {
			return
		}
		counts[index]++
	}
	offsets := make([]int, len(positions)+1)
	for i, c := range counts {
		offsets[i+1] = offsets[i] + c
	}
	triangleIDs := make([]int, ni)
	for i := 0; i < ni; i++ {
		v := indices.At(i)
		left := counts[v]
		counts[v]--
		triangleIDs[offsets[v+1]-left] = i / 3
	}

	// cross product and interior angles per face, precalculated so the
	// accumulation loop below doesn't redo them for every shared vertex
	crosses := make([]math32.Vector3, ni/3)
	angles := make([][3]float32, ni/3)
	for t := range crosses {
		v0 := positions[indices.At(t*3+0)]
		v1 := positions[indices.At(t*3+1)]
		v2 := positions[indices.At(t*3+2)]
		crosses[t] = v2.Sub(v1).Cross(v0.Sub(v1))

		// a degenerate or NaN edge would make the angles NaN; such a
		// face contributes zero weight instead
		v10 := v1.Sub(v0)
		v20 := v2.Sub(v0)
		v21 := v2.Sub(v1)
		l10 := v10.Length()
		l20 := v20.Length()
		l21 := v21.Length()
		if l10 == 0 || l20 == 0 || l21 == 0 ||
			math32.IsNaN(l10) || math32.IsNaN(l20) || math32.IsNaN(l21) {
			continue
		}
		v10n := v10.DivScalar(l10)
		v20n := v20.DivScalar(l20)
		v21n := v21.DivScalar(l21)
		angles[t][0] = unitAngle(v10n, v20n)
		angles[t][1] = unitAngle(v10n.Negate(), v21n)
		angles[t][2] = math32.Pi - angles[t][0] - angles[t][1]
	}

	for v := range positions {
		// the cross product length already carries the face area weight,
		// and the final normalization absorbs constant factors, so the
		// sum is just cross * angle per face
		sum := math32.Vector3{}
		for _, t := range triangleIDs[offsets[v]:offsets[v+1]] {
			var angle float32
			switch uint32(v) {
			case indices.At(t*3 + 0):
				angle = angles[t][0]
			case indices.At(t*3 + 1):
				angle = angles[t][1]
			default:
				angle = angles[t][2]
			}
			sum.SetAdd(crosses[t].MulScalar(angle))
		}
		normals[v] = sum.Normal()
	}
}

// GenerateSmoothNormals returns per-vertex smooth normals for indexed
// triangle positions, weighting each face's contribution by its area and
// by its interior angle at the vertex.
func GenerateSmoothNormals(indices mesh.IndexView, positions []math32.Vector3) []math32.Vector3 {
	out := make([]math32.Vector3, len(positions))
	GenerateSmoothNormalsInto(indices, positions, out)
	return out
}
