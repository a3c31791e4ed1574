// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meshtools

import (
	"github.com/cogentcore/meshtools/mesh"
)

// RemoveDuplicatesInPlace compacts exactly duplicated stride-sized rows
// of data in place, keeping the first occurrence of each. It returns the
// remap table (old row index to new row index) and the unique row count;
// rows past the unique count are left in an unspecified state. Rows are
// compared byte-exactly, so float values that differ only in the sign of
// zero or in NaN payload count as distinct.
func RemoveDuplicatesInPlace(data []byte, count, stride int) (remap []uint32, unique int) {
	if !checkf(len(data) >= count*stride, "meshtools.RemoveDuplicatesInPlace: %d rows of %d bytes need %d bytes but the data only has %d", count, stride, count*stride, len(data)) {
		return nil, 0
	}
	remap = make([]uint32, count)
	seen := make(map[string]uint32, count)
	for i := 0; i < count; i++ {
		row := data[i*stride : (i+1)*stride]
		if j, ok := seen[string(row)]; ok {
			remap[i] = j
			continue
		}
		j := uint32(unique)
		// the map key copies the row, safe against the compaction below
		seen[string(row)] = j
		copy(data[unique*stride:], row)
		remap[i] = j
		unique++
	}
	return remap, unique
}

// RemoveDuplicates returns a copy of the mesh with exactly duplicated
// vertices removed and an index buffer referencing the deduplicated
// vertex rows. Vertices compare as their raw interleaved bytes, so the
// mesh must be interleaved, and all attributes of a vertex must match
// for it to be dropped. An already indexed mesh gets its indices
// remapped; a non-indexed one becomes indexed. The output index type is
// always [mesh.IndexUint32]; use [CompressIndices] afterwards to narrow
// it.
func RemoveDuplicates(m *mesh.Mesh) mesh.Mesh {
	if !checkf(IsInterleaved(m), "meshtools.RemoveDuplicates: the mesh is not interleaved") {
		return mesh.Mesh{}
	}
	if m.IsIndexed() && !checkf(!m.IndexType.IsImplementationSpecific(),
		"meshtools.RemoveDuplicates: mesh has an implementation-specific index type 0x%x", m.IndexType.Unwrap()) {
		return mesh.Mesh{}
	}

	out := mesh.Mesh{
		Primitive:  m.Primitive,
		Attributes: append([]mesh.Attribute(nil), m.Attributes...),
		IndexType:  mesh.IndexUint32,
	}
	if len(m.Attributes) == 0 {
		// no attributes: every vertex is identical, one row remains
		out.NumVertex = min(m.NumVertex, 1)
		if m.IsIndexed() {
			out.IndexData = mesh.IndexBuffer32(make([]uint32, m.NumIndex()))
		} else {
			out.IndexData = mesh.IndexBuffer32(make([]uint32, m.NumVertex))
		}
		return out
	}

	// an interleaved layout may have a base offset before the first
	// attribute; rows are the occupied span, rebased to offset 0 in the
	// output with the stride (and any inter-attribute padding) kept
	stride := m.Stride()
	minOffset, maxOffset, _ := attributeSpan(m.Attributes)
	rowLen := maxOffset - minOffset
	for i := range out.Attributes {
		out.Attributes[i].Offset -= minOffset
	}

	remap := make([]uint32, m.NumVertex)
	seen := make(map[string]uint32, m.NumVertex)
	data := make([]byte, 0, m.NumVertex*stride)
	pad := make([]byte, stride-rowLen)
	unique := 0
	for v := 0; v < m.NumVertex; v++ {
		start := minOffset + v*stride
		row := m.VertexData.Data[start : start+rowLen]
		if j, ok := seen[string(row)]; ok {
			remap[v] = j
			continue
		}
		seen[string(row)] = uint32(unique)
		remap[v] = uint32(unique)
		data = append(data, row...)
		data = append(data, pad...)
		unique++
	}

	out.NumVertex = unique
	out.VertexData = mesh.OwnedBuffer(data)

	if m.IsIndexed() {
		iv := m.Indices()
		indices := make([]uint32, iv.Len())
		for i := range indices {
			indices[i] = remap[iv.At(i)]
		}
		out.IndexData = mesh.IndexBuffer32(indices)
	} else {
		out.IndexData = mesh.IndexBuffer32(remap)
	}
	return out
}
