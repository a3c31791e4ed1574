// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meshtools

import (
	"cogentcore.org/core/base/slicesx"

	"github.com/cogentcore/meshtools/mesh"
)

// concatenateIndexVertexCount sums the element counts of the meshes to
// merge. vertexCount is the plain sum of vertex counts. indexCount stays
// 0 while no mesh is indexed; the first indexed mesh retroactively
// counts all vertices accumulated before it (the earlier non-indexed
// meshes get trivial index runs synthesized for them), and from then on
// every non-indexed mesh contributes its vertex count too.
func concatenateIndexVertexCount(meshes []mesh.Mesh) (indexCount, vertexCount int) {
	for i := range meshes {
		m := &meshes[i]
		if m.IsIndexed() {
			if indexCount == 0 {
				indexCount += vertexCount
			}
			indexCount += m.NumIndex()
		} else if indexCount != 0 {
			indexCount += m.NumVertex
		}
		vertexCount += m.NumVertex
	}
	return indexCount, vertexCount
}

// concatenateCheck validates the contract shared by [Concatenate] and
// [ConcatenateInto]: a non-empty mesh list, uniform flat primitives and
// no opaque index types or vertex formats in play.
func concatenateCheck(caller string, meshes []mesh.Mesh) bool {
	if !checkf(len(meshes) > 0, "%s: expected at least one mesh", caller) {
		return false
	}
	if !checkf(!meshes[0].Primitive.IsStripLoopFan(),
		"%s: %v is not supported, turn it into a plain indexed mesh first with GenerateIndices", caller, meshes[0].Primitive) {
		return false
	}
	for i := range meshes {
		m := &meshes[i]
		if !checkf(m.Primitive == meshes[0].Primitive,
			"%s: expected all meshes to have the same primitive but got %v instead of %v for mesh %d", caller, m.Primitive, meshes[0].Primitive, i) {
			return false
		}
		if m.IsIndexed() && !checkf(!m.IndexType.IsImplementationSpecific(),
			"%s: mesh %d has an implementation-specific index type 0x%x", caller, i, m.IndexType.Unwrap()) {
			return false
		}
	}
	for i := range meshes[0].Attributes {
		a := &meshes[0].Attributes[i]
		if !checkf(!a.Format.IsImplementationSpecific(),
			"%s: attribute %d (%v) of the first mesh has an implementation-specific format 0x%x", caller, i, a.Name, a.Format.Unwrap()) {
			return false
		}
	}
	return true
}

// concatenate is the merge core: out already carries the destination
// primitive, attribute layout, a zero-filled vertex buffer for its
// NumVertex vertices, and (when indexed) a 32-bit index buffer that this
// walk fully overwrites. Sources are copied in order, with each mesh's
// indices rebased by the number of vertices before it.
func concatenate(caller string, out *mesh.Mesh, meshes []mesh.Mesh) bool {
	if !remapAttributes(out.Attributes, out.NumVertex, out.VertexData.Data) {
		return false
	}

	indexOffset := 0
	vertexOffset := 0
	for mi := range meshes {
		m := &meshes[mi]

		if m.IsIndexed() {
			iv := m.Indices()
			for i, n := 0, iv.Len(); i < n; i++ {
				mesh.PutIndex(out.IndexData.Data, mesh.IndexUint32, indexOffset+i, iv.At(i)+uint32(vertexOffset))
			}
			indexOffset += iv.Len()
		} else if out.IsIndexed() {
			// non-indexed source in an indexed output gets a trivial run
			for i := 0; i < m.NumVertex; i++ {
				mesh.PutIndex(out.IndexData.Data, mesh.IndexUint32, indexOffset+i, uint32(vertexOffset+i))
			}
			indexOffset += m.NumVertex
		}

		for si := range m.Attributes {
			src := &m.Attributes[si]
			di := out.FindAttribute(src.Name, m.AttributeSetIndex(si), src.MorphTarget)
			if di < 0 {
				// attributes the destination layout doesn't have are dropped
				continue
			}
			dst := &out.Attributes[di]
			if !checkf(src.Format == dst.Format,
				"%s: expected %v format for attribute %d (%v) of mesh %d but got %v", caller, dst.Format, si, src.Name, mi, src.Format) {
				return false
			}
			if !checkf((src.ArraySize > 0) == (dst.ArraySize > 0),
				"%s: attribute %d (%v) of mesh %d is%s an array attribute but the destination attribute is%s", caller,
				si, src.Name, mi, arrayNot(src.ArraySize > 0), arrayNot(dst.ArraySize > 0)) {
				return false
			}
			if !checkf(src.ArraySize <= dst.ArraySize,
				"%s: expected array size at most %d for attribute %d (%v) of mesh %d but got %d", caller, dst.ArraySize, si, src.Name, mi, src.ArraySize) {
				return false
			}
			// copies only the source's array slots; extra destination
			// slots keep the zero fill
			copyAttribute(out, di, m, si, vertexOffset)
		}

		vertexOffset += m.NumVertex
	}
	return true
}

func arrayNot(is bool) string {
	if is {
		return ""
	}
	return " not"
}

// Concatenate merges the meshes into one: vertex data of all meshes is
// concatenated into a single interleaved vertex buffer laid out after
// the first mesh (honoring flags, see [InterleavedLayout]), and indices
// are rebased and merged into a single 32-bit index buffer. The output
// is indexed if and only if at least one input is; non-indexed inputs
// then get trivial index runs synthesized for them. Attributes are
// matched across meshes by name, set index and morph target; attributes
// a source mesh lacks stay zero-filled in its vertex range, and source
// attributes the first mesh lacks are dropped. All meshes must share the
// first mesh's primitive, which must not be a strip, loop or fan
// (flatten those first via [GenerateIndices]).
func Concatenate(meshes []mesh.Mesh, flags InterleaveFlags) mesh.Mesh {
	if !concatenateCheck("meshtools.Concatenate", meshes) {
		return mesh.Mesh{}
	}

	indexCount, vertexCount := concatenateIndexVertexCount(meshes)

	// the first mesh dictates the layout; an attribute-less one yields an
	// attribute-less output with just the merged counts
	out := InterleavedLayout(&meshes[0], vertexCount, nil, flags)

	if indexCount > 0 {
		out.IndexType = mesh.IndexUint32
		out.IndexData = mesh.OwnedBuffer(make([]byte, 4*indexCount))
	}
	if !concatenate("meshtools.Concatenate", &out, meshes) {
		return mesh.Mesh{}
	}
	return out
}

// GrowFunc is a resizing strategy for the buffers [ConcatenateInto]
// reuses: it returns a slice of length n sharing data's storage when
// capacity allows. The default is [slicesx.SetLength].
type GrowFunc func(data []byte, n int) []byte

// ConcatenateInto is [Concatenate] writing into an existing mesh,
// reusing its attribute layout and buffer storage: dst's attribute
// layout (which must be interleaved) defines the output layout instead
// of the first source mesh, and its vertex and index buffers are resized
// in place, via grow if given. dst's previous vertex and index data is
// discarded; the vertex buffer is zero-filled. When the merged result is
// non-indexed, dst's index buffer is released even if dst was indexed
// before.
func ConcatenateInto(dst *mesh.Mesh, meshes []mesh.Mesh, flags InterleaveFlags, grow ...GrowFunc) {
	if !concatenateCheck("meshtools.ConcatenateInto", meshes) {
		return
	}
	if !checkf(IsInterleaved(dst), "meshtools.ConcatenateInto: the destination mesh is not interleaved") {
		return
	}
	gf := GrowFunc(slicesx.SetLength[byte])
	if len(grow) > 0 {
		gf = grow[0]
	}

	indexCount, vertexCount := concatenateIndexVertexCount(meshes)

	if indexCount > 0 {
		// every index byte gets written below, so no zero fill needed
		idx := gf(dst.IndexData.Take(), 4*indexCount)
		dst.IndexType = mesh.IndexUint32
		dst.IndexData = mesh.OwnedBuffer(idx)
	} else {
		dst.IndexData = mesh.Buffer{}
	}

	vd := gf(dst.VertexData.Take(), dst.Stride()*vertexCount)
	clear(vd)
	dst.VertexData = mesh.OwnedBuffer(vd)
	dst.NumVertex = vertexCount
	dst.Primitive = meshes[0].Primitive

	concatenate("meshtools.ConcatenateInto", dst, meshes)
}
