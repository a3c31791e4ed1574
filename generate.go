// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meshtools

import (
	"slices"

	"github.com/cogentcore/meshtools/mesh"
)

// PrimitiveCount returns the number of primitives (points, lines or
// triangles) formed by elementCount elements of the given topology.
// Strip and fan counts are 0 below their minimum element count; a line
// loop of one element is a degenerate line, which still counts.
func PrimitiveCount(primitive mesh.Primitive, elementCount int) int {
	switch primitive {
	case mesh.Points:
		return elementCount
	case mesh.Lines:
		if !checkf(elementCount%2 == 0, "meshtools.PrimitiveCount: expected element count to be divisible by 2, got %d", elementCount) {
			return 0
		}
		return elementCount / 2
	case mesh.LineStrip:
		if elementCount < 1 {
			return 0
		}
		return elementCount - 1
	case mesh.LineLoop:
		return elementCount
	case mesh.Triangles:
		if !checkf(elementCount%3 == 0, "meshtools.PrimitiveCount: expected element count to be divisible by 3, got %d", elementCount) {
			return 0
		}
		return elementCount / 3
	case mesh.TriangleStrip, mesh.TriangleFan:
		if elementCount < 2 {
			return 0
		}
		return elementCount - 2
	}
	checkf(false, "meshtools.PrimitiveCount: invalid primitive %v", primitive)
	return 0
}

// GenerateTrivialIndicesInto fills into with the identity index sequence
// offset, offset+1, ..., making a non-indexed mesh addressable as if
// indexed.
func GenerateTrivialIndicesInto(into []uint32, offset uint32) {
	for i := range into {
		into[i] = uint32(i) + offset
	}
}

// GenerateTrivialIndices returns the identity index sequence
// offset, offset+1, ..., offset+numVertex-1.
func GenerateTrivialIndices(numVertex int, offset uint32) []uint32 {
	out := make([]uint32, numVertex)
	GenerateTrivialIndicesInto(out, offset)
	return out
}

// lineStripCount returns the output index count for a line strip over v
// vertices: 2*(v-1), or 0 for an empty strip.
func lineStripCount(v int) int {
	if v < 2 {
		return 0
	}
	return 2 * (v - 1)
}

// GenerateLineStripIndicesInto writes indices converting a line strip of
// numVertex vertices into individual line segments, with offset added to
// every value. into must hold exactly 2*(numVertex-1) elements
// (0 for an empty strip).
func GenerateLineStripIndicesInto(numVertex int, into []uint32, offset uint32) {
	if !checkf(numVertex == 0 || numVertex >= 2, "meshtools.GenerateLineStripIndicesInto: expected either zero or at least two vertices, got %d", numVertex) {
		return
	}
	if !checkf(len(into) == lineStripCount(numVertex), "meshtools.GenerateLineStripIndicesInto: bad output size, expected %d but got %d", lineStripCount(numVertex), len(into)) {
		return
	}
	for i := 0; i < numVertex-1; i++ {
		into[i*2+0] = uint32(i) + offset
		into[i*2+1] = uint32(i+1) + offset
	}
}

// GenerateLineStripIndices returns indices converting a line strip of
// numVertex vertices into individual line segments, with offset added to
// every value.
func GenerateLineStripIndices(numVertex int, offset uint32) []uint32 {
	if !checkf(numVertex == 0 || numVertex >= 2, "meshtools.GenerateLineStripIndices: expected either zero or at least two vertices, got %d", numVertex) {
		return nil
	}
	out := make([]uint32, lineStripCount(numVertex))
	GenerateLineStripIndicesInto(numVertex, out, offset)
	return out
}

// GenerateLineStripIndicesIndexedInto is [GenerateLineStripIndicesInto]
// for an indexed line strip: endpoint values are looked up through the
// given index view (1, 2 or 4-byte elements) before offset is added.
func GenerateLineStripIndicesIndexedInto(indices mesh.IndexView, into []uint32, offset uint32) {
	if !checkIndexWidth(indices, "meshtools.GenerateLineStripIndicesIndexedInto") {
		return
	}
	v := indices.Len()
	if !checkf(v == 0 || v >= 2, "meshtools.GenerateLineStripIndicesIndexedInto: expected either zero or at least two indices, got %d", v) {
		return
	}
	if !checkf(len(into) == lineStripCount(v), "meshtools.GenerateLineStripIndicesIndexedInto: bad output size, expected %d but got %d", lineStripCount(v), len(into)) {
		return
	}
	for i := 0; i < v-1; i++ {
		into[i*2+0] = indices.At(i) + offset
		into[i*2+1] = indices.At(i+1) + offset
	}
}

// GenerateLineStripIndicesIndexed is [GenerateLineStripIndices] for an
// indexed line strip.
func GenerateLineStripIndicesIndexed(indices mesh.IndexView, offset uint32) []uint32 {
	if !checkIndexWidth(indices, "meshtools.GenerateLineStripIndicesIndexed") {
		return nil
	}
	v := indices.Len()
	if !checkf(v == 0 || v >= 2, "meshtools.GenerateLineStripIndicesIndexed: expected either zero or at least two indices, got %d", v) {
		return nil
	}
	out := make([]uint32, lineStripCount(v))
	GenerateLineStripIndicesIndexedInto(indices, out, offset)
	return out
}

// lineLoopCount returns the output index count for a line loop over v
// vertices: 2*v, or 0 for an empty loop.
func lineLoopCount(v int) int {
	if v < 2 {
		return 0
	}
	return 2 * v
}

// GenerateLineLoopIndicesInto writes indices converting a line loop of
// numVertex vertices into individual line segments: the same as a line
// strip plus one segment closing the loop. into must hold exactly
// 2*numVertex elements (0 for an empty loop).
func GenerateLineLoopIndicesInto(numVertex int, into []uint32, offset uint32) {
	if !checkf(numVertex == 0 || numVertex >= 2, "meshtools.GenerateLineLoopIndicesInto: expected either zero or at least two vertices, got %d", numVertex) {
		return
	}
	if !checkf(len(into) == lineLoopCount(numVertex), "meshtools.GenerateLineLoopIndicesInto: bad output size, expected %d but got %d", lineLoopCount(numVertex), len(into)) {
		return
	}
	for i := 0; i < numVertex-1; i++ {
		into[i*2+0] = uint32(i) + offset
		into[i*2+1] = uint32(i+1) + offset
	}
	if numVertex >= 2 {
		into[2*numVertex-2] = uint32(numVertex-1) + offset
		into[2*numVertex-1] = offset
	}
}

// GenerateLineLoopIndices returns indices converting a line loop of
// numVertex vertices into individual line segments.
func GenerateLineLoopIndices(numVertex int, offset uint32) []uint32 {
	if !checkf(numVertex == 0 || numVertex >= 2, "meshtools.GenerateLineLoopIndices: expected either zero or at least two vertices, got %d", numVertex) {
		return nil
	}
	out := make([]uint32, lineLoopCount(numVertex))
	GenerateLineLoopIndicesInto(numVertex, out, offset)
	return out
}

// GenerateLineLoopIndicesIndexedInto is [GenerateLineLoopIndicesInto]
// for an indexed line loop.
func GenerateLineLoopIndicesIndexedInto(indices mesh.IndexView, into []uint32, offset uint32) {
	if !checkIndexWidth(indices, "meshtools.GenerateLineLoopIndicesIndexedInto") {
		return
	}
	v := indices.Len()
	if !checkf(v == 0 || v >= 2, "meshtools.GenerateLineLoopIndicesIndexedInto: expected either zero or at least two indices, got %d", v) {
		return
	}
	if !checkf(len(into) == lineLoopCount(v), "meshtools.GenerateLineLoopIndicesIndexedInto: bad output size, expected %d but got %d", lineLoopCount(v), len(into)) {
		return
	}
	for i := 0; i < v-1; i++ {
		into[i*2+0] = indices.At(i) + offset
		into[i*2+1] = indices.At(i+1) + offset
	}
	if v >= 2 {
		into[2*v-2] = indices.At(v-1) + offset
		into[2*v-1] = indices.At(0) + offset
	}
}

// GenerateLineLoopIndicesIndexed is [GenerateLineLoopIndices] for an
// indexed line loop.
func GenerateLineLoopIndicesIndexed(indices mesh.IndexView, offset uint32) []uint32 {
	if !checkIndexWidth(indices, "meshtools.GenerateLineLoopIndicesIndexed") {
		return nil
	}
	v := indices.Len()
	if !checkf(v == 0 || v >= 2, "meshtools.GenerateLineLoopIndicesIndexed: expected either zero or at least two indices, got %d", v) {
		return nil
	}
	out := make([]uint32, lineLoopCount(v))
	GenerateLineLoopIndicesIndexedInto(indices, out, offset)
	return out
}

// triangleCount returns the output index count for a triangle strip or
// fan over v vertices: 3*(v-2), or 0 below three vertices.
func triangleCount(v int) int {
	if v < 3 {
		return 0
	}
	return 3 * (v - 2)
}

// GenerateTriangleStripIndicesInto writes indices converting a triangle
// strip of numVertex vertices into individual triangles. Triangles
// starting at odd vertices have their first two indices swapped to
// preserve consistent winding across the strip. into must hold exactly
// 3*(numVertex-2) elements (0 for an empty strip).
func GenerateTriangleStripIndicesInto(numVertex int, into []uint32, offset uint32) {
	if !checkf(numVertex == 0 || numVertex >= 3, "meshtools.GenerateTriangleStripIndicesInto: expected either zero or at least three vertices, got %d", numVertex) {
		return
	}
	if !checkf(len(into) == triangleCount(numVertex), "meshtools.GenerateTriangleStripIndicesInto: bad output size, expected %d but got %d", triangleCount(numVertex), len(into)) {
		return
	}
	for i := 0; i < numVertex-2; i++ {
		if i%2 == 1 {
			into[i*3+0] = uint32(i+1) + offset
			into[i*3+1] = uint32(i) + offset
		} else {
			into[i*3+0] = uint32(i) + offset
			into[i*3+1] = uint32(i+1) + offset
		}
		into[i*3+2] = uint32(i+2) + offset
	}
}

// GenerateTriangleStripIndices returns indices converting a triangle
// strip of numVertex vertices into individual triangles.
func GenerateTriangleStripIndices(numVertex int, offset uint32) []uint32 {
	if !checkf(numVertex == 0 || numVertex >= 3, "meshtools.GenerateTriangleStripIndices: expected either zero or at least three vertices, got %d", numVertex) {
		return nil
	}
	out := make([]uint32, triangleCount(numVertex))
	GenerateTriangleStripIndicesInto(numVertex, out, offset)
	return out
}

// GenerateTriangleStripIndicesIndexedInto is
// [GenerateTriangleStripIndicesInto] for an indexed triangle strip.
func GenerateTriangleStripIndicesIndexedInto(indices mesh.IndexView, into []uint32, offset uint32) {
	if !checkIndexWidth(indices, "meshtools.GenerateTriangleStripIndicesIndexedInto") {
		return
	}
	v := indices.Len()
	if !checkf(v == 0 || v >= 3, "meshtools.GenerateTriangleStripIndicesIndexedInto: expected either zero or at least three indices, got %d", v) {
		return
	}
	if !checkf(len(into) == triangleCount(v), "meshtools.GenerateTriangleStripIndicesIndexedInto: bad output size, expected %d but got %d", triangleCount(v), len(into)) {
		return
	}
	for i := 0; i < v-2; i++ {
		if i%2 == 1 {
			into[i*3+0] = indices.At(i+1) + offset
			into[i*3+1] = indices.At(i) + offset
		} else {
			into[i*3+0] = indices.At(i) + offset
			into[i*3+1] = indices.At(i+1) + offset
		}
		into[i*3+2] = indices.At(i+2) + offset
	}
}

// GenerateTriangleStripIndicesIndexed is [GenerateTriangleStripIndices]
// for an indexed triangle strip.
func GenerateTriangleStripIndicesIndexed(indices mesh.IndexView, offset uint32) []uint32 {
	if !checkIndexWidth(indices, "meshtools.GenerateTriangleStripIndicesIndexed") {
		return nil
	}
	v := indices.Len()
	if !checkf(v == 0 || v >= 3, "meshtools.GenerateTriangleStripIndicesIndexed: expected either zero or at least three indices, got %d", v) {
		return nil
	}
	out := make([]uint32, triangleCount(v))
	GenerateTriangleStripIndicesIndexedInto(indices, out, offset)
	return out
}

// GenerateTriangleFanIndicesInto writes indices converting a triangle
// fan of numVertex vertices into individual triangles, all sharing the
// first vertex. into must hold exactly 3*(numVertex-2) elements
// (0 for an empty fan).
func GenerateTriangleFanIndicesInto(numVertex int, into []uint32, offset uint32) {
	if !checkf(numVertex == 0 || numVertex >= 3, "meshtools.GenerateTriangleFanIndicesInto: expected either zero or at least three vertices, got %d", numVertex) {
		return
	}
	if !checkf(len(into) == triangleCount(numVertex), "meshtools.GenerateTriangleFanIndicesInto: bad output size, expected %d but got %d", triangleCount(numVertex), len(into)) {
		return
	}
	for i := 0; i < numVertex-2; i++ {
		into[i*3+0] = offset
		into[i*3+1] = uint32(i+1) + offset
		into[i*3+2] = uint32(i+2) + offset
	}
}

// GenerateTriangleFanIndices returns indices converting a triangle fan
// of numVertex vertices into individual triangles.
func GenerateTriangleFanIndices(numVertex int, offset uint32) []uint32 {
	if !checkf(numVertex == 0 || numVertex >= 3, "meshtools.GenerateTriangleFanIndices: expected either zero or at least three vertices, got %d", numVertex) {
		return nil
	}
	out := make([]uint32, triangleCount(numVertex))
	GenerateTriangleFanIndicesInto(numVertex, out, offset)
	return out
}

// GenerateTriangleFanIndicesIndexedInto is
// [GenerateTriangleFanIndicesInto] for an indexed triangle fan.
func GenerateTriangleFanIndicesIndexedInto(indices mesh.IndexView, into []uint32, offset uint32) {
	if !checkIndexWidth(indices, "meshtools.GenerateTriangleFanIndicesIndexedInto") {
		return
	}
	v := indices.Len()
	if !checkf(v == 0 || v >= 3, "meshtools.GenerateTriangleFanIndicesIndexedInto: expected either zero or at least three indices, got %d", v) {
		return
	}
	if !checkf(len(into) == triangleCount(v), "meshtools.GenerateTriangleFanIndicesIndexedInto: bad output size, expected %d but got %d", triangleCount(v), len(into)) {
		return
	}
	for i := 0; i < v-2; i++ {
		into[i*3+0] = indices.At(0) + offset
		into[i*3+1] = indices.At(i+1) + offset
		into[i*3+2] = indices.At(i+2) + offset
	}
}

// GenerateTriangleFanIndicesIndexed is [GenerateTriangleFanIndices] for
// an indexed triangle fan.
func GenerateTriangleFanIndicesIndexed(indices mesh.IndexView, offset uint32) []uint32 {
	if !checkIndexWidth(indices, "meshtools.GenerateTriangleFanIndicesIndexed") {
		return nil
	}
	v := indices.Len()
	if !checkf(v == 0 || v >= 3, "meshtools.GenerateTriangleFanIndicesIndexed: expected either zero or at least three indices, got %d", v) {
		return nil
	}
	out := make([]uint32, triangleCount(v))
	GenerateTriangleFanIndicesIndexedInto(indices, out, offset)
	return out
}

// checkIndexWidth guards the type-erased index view overloads: the
// element byte width must be exactly 1, 2 or 4.
func checkIndexWidth(indices mesh.IndexView, caller string) bool {
	eb := indices.Type.Bytes()
	return checkf(eb == 1 || eb == 2 || eb == 4, "%s: expected a 1, 2 or 4-byte index type, got %v", caller, indices.Type)
}

// GenerateIndices returns a canonical flat version of the given mesh:
// line strips, line loops, triangle strips and triangle fans become
// indexed [mesh.Lines] / [mesh.Triangles] meshes; any other primitive is
// passed through, with a trivial index buffer synthesized when the mesh
// was not indexed. The output index type is always [mesh.IndexUint32]
// (use [CompressIndices] afterwards to narrow it) and its buffers are
// owned and mutable; vertex data is copied, m is left untouched.
func GenerateIndices(m mesh.Mesh) mesh.Mesh {
	return generateIndices(m, false)
}

// GenerateIndicesTake is [GenerateIndices] reusing owned buffers instead
// of copying: the vertex buffer is transferred when owned, and an
// already 32-bit owned index buffer of a pass-through primitive is
// transferred as well. m must not be used afterwards.
func GenerateIndicesTake(m *mesh.Mesh) mesh.Mesh {
	return generateIndices(*m, true)
}

func generateIndices(m mesh.Mesh, take bool) mesh.Mesh {
	if m.IsIndexed() && !checkf(!m.IndexType.IsImplementationSpecific(),
		"meshtools.GenerateIndices: mesh has an implementation-specific index type 0x%x", m.IndexType.Unwrap()) {
		return mesh.Mesh{}
	}

	// element count the topology checks apply to: indices when indexed,
	// vertices otherwise
	n := m.NumVertex
	if m.IsIndexed() {
		n = m.NumIndex()
	}
	switch m.Primitive {
	case mesh.LineStrip, mesh.LineLoop:
		if !checkf(n == 0 || n >= 2, "meshtools.GenerateIndices: expected either zero or at least two elements for %v, got %d", m.Primitive, n) {
			return mesh.Mesh{}
		}
	case mesh.TriangleStrip, mesh.TriangleFan:
		if !checkf(n == 0 || n >= 3, "meshtools.GenerateIndices: expected either zero or at least three elements for %v, got %d", m.Primitive, n) {
			return mesh.Mesh{}
		}
	}

	primitive := m.Primitive
	var out []uint32
	reuseIndex := false
	switch m.Primitive {
	case mesh.LineStrip:
		primitive = mesh.Lines
		if m.IsIndexed() {
			out = GenerateLineStripIndicesIndexed(m.Indices(), 0)
		} else {
			out = GenerateLineStripIndices(n, 0)
		}
	case mesh.LineLoop:
		primitive = mesh.Lines
		if m.IsIndexed() {
			out = GenerateLineLoopIndicesIndexed(m.Indices(), 0)
		} else {
			out = GenerateLineLoopIndices(n, 0)
		}
	case mesh.TriangleStrip:
		primitive = mesh.Triangles
		if m.IsIndexed() {
			out = GenerateTriangleStripIndicesIndexed(m.Indices(), 0)
		} else {
			out = GenerateTriangleStripIndices(n, 0)
		}
	case mesh.TriangleFan:
		primitive = mesh.Triangles
		if m.IsIndexed() {
			out = GenerateTriangleFanIndicesIndexed(m.Indices(), 0)
		} else {
			out = GenerateTriangleFanIndices(n, 0)
		}
	default:
		if m.IsIndexed() {
			if take && m.IndexType == mesh.IndexUint32 && m.IndexData.IsOwned() {
				reuseIndex = true
			} else {
				out = m.Indices32()
			}
		} else {
			out = GenerateTrivialIndices(m.NumVertex, 0)
		}
	}

	var vertexData []byte
	if take {
		vertexData = m.VertexData.Take()
	} else if m.VertexData.Data != nil {
		vertexData = slices.Clone(m.VertexData.Data)
	}

	result := mesh.Mesh{
		Primitive:  primitive,
		NumVertex:  m.NumVertex,
		VertexData: mesh.OwnedBuffer(vertexData),
		Attributes: slices.Clone(m.Attributes),
		IndexType:  mesh.IndexUint32,
	}
	if reuseIndex {
		result.IndexData = mesh.OwnedBuffer(m.IndexData.Take())
	} else {
		result.IndexData = mesh.IndexBuffer32(out)
	}
	return result
}
