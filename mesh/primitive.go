// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

// Primitive is the topology formed by the elements of a mesh.
type Primitive int32 //enums:enum

const (
	// Points are individual points.
	Points Primitive = iota

	// Lines are individual line segments, two elements each.
	Lines

	// LineLoop is a run of connected line segments, closed back to the
	// first element.
	LineLoop

	// LineStrip is a run of connected line segments.
	LineStrip

	// Triangles are individual triangles, three elements each.
	Triangles

	// TriangleStrip is a run of triangles, each sharing an edge with the
	// previous one.
	TriangleStrip

	// TriangleFan is a run of triangles all sharing the first element.
	TriangleFan
)

// IsStripLoopFan reports whether the primitive is one of the connected
// kinds that have to be flattened to [Lines] or [Triangles] (via
// generateIndices) before meshes can be merged.
func (p Primitive) IsStripLoopFan() bool {
	switch p {
	case LineStrip, LineLoop, TriangleStrip, TriangleFan:
		return true
	}
	return false
}
