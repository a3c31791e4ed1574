// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meshtools

import (
	"slices"

	"github.com/cogentcore/meshtools/mesh"
)

// compressIndexData packs the indices into the smallest index type that
// fits their largest value, but no smaller than atLeast.
func compressIndexData(iv mesh.IndexView, atLeast mesh.IndexType) ([]byte, mesh.IndexType) {
	var maxVal uint32
	n := iv.Len()
	for i := 0; i < n; i++ {
		if v := iv.At(i); v > maxVal {
			maxVal = v
		}
	}
	typ := atLeast
	switch {
	case maxVal > 0xffff:
		typ = mesh.IndexUint32
	case maxVal > 0xff && typ < mesh.IndexUint16:
		typ = mesh.IndexUint16
	}
	out := make([]byte, n*typ.Bytes())
	for i := 0; i < n; i++ {
		mesh.PutIndex(out, typ, i, iv.At(i))
	}
	return out, typ
}

// CompressIndices returns a copy of the indexed mesh with its index
// buffer repacked into the smallest of the 8, 16 and 32-bit index types
// that fits the largest index value, but no smaller than atLeast.
// atLeast defaults to [mesh.IndexUint16], which is also the narrowest
// type WebGPU can consume; pass [mesh.IndexUint8] explicitly to allow
// full compression. Vertex data and attributes are copied unchanged.
func CompressIndices(m *mesh.Mesh, atLeast ...mesh.IndexType) mesh.Mesh {
	if !checkf(m.IsIndexed(), "meshtools.CompressIndices: the mesh is not indexed") {
		return mesh.Mesh{}
	}
	if !checkf(!m.IndexType.IsImplementationSpecific(),
		"meshtools.CompressIndices: mesh has an implementation-specific index type 0x%x", m.IndexType.Unwrap()) {
		return mesh.Mesh{}
	}
	floor := mesh.IndexUint16
	if len(atLeast) > 0 {
		floor = atLeast[0]
	}

	indexData, typ := compressIndexData(m.Indices(), floor)
	return mesh.Mesh{
		Primitive:  m.Primitive,
		NumVertex:  m.NumVertex,
		VertexData: mesh.OwnedBuffer(slices.Clone(m.VertexData.Data)),
		Attributes: slices.Clone(m.Attributes),
		IndexType:  typ,
		IndexData:  mesh.OwnedBuffer(indexData),
	}
}
