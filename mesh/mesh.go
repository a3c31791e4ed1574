// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh provides the CPU-side mesh data model used by the
// meshtools algorithms: a primitive topology, a vertex byte buffer
// described by a list of typed attributes, and an optional index buffer
// with 8, 16 or 32 bit elements. Nothing here touches a GPU: buffers are
// plain byte slices with explicit ownership and mutability flags, and the
// [VertexFormat] and [IndexType] enums carry WebGPU format mappings for
// the point where a mesh finally gets uploaded.
package mesh

// Mesh is one piece of renderable geometry: vertex data described by
// attributes, an optional index buffer, and the primitive topology the
// elements form. A Mesh is a value: copying the struct shares the
// underlying buffers, so treat constructed meshes as immutable unless a
// buffer is explicitly taken via [Buffer.Take].
type Mesh struct {
	// Primitive is the topology formed by the mesh elements.
	Primitive Primitive

	// NumVertex is the number of vertices. It is defined even when the
	// mesh has no vertex buffer (an index-only or layout-only mesh).
	NumVertex int

	// VertexData is the raw vertex buffer. May be empty when the mesh
	// has no attributes.
	VertexData Buffer

	// Attributes describe the per-vertex data channels within VertexData.
	// Order is significant: when meshes are merged, the first mesh's
	// declaration order defines the output layout, and repeated names
	// form successive sets of the same logical attribute.
	Attributes []Attribute

	// IndexType is the element type of IndexData. Only meaningful when
	// the mesh is indexed.
	IndexType IndexType

	// IndexData is the raw index buffer. A mesh is indexed if and only
	// if IndexData holds data; an empty buffer means non-indexed, not
	// "indexed with zero indices".
	IndexData Buffer
}

// New returns an attribute-less mesh with the given primitive and vertex
// count, owning no data.
func New(primitive Primitive, numVertex int) Mesh {
	return Mesh{Primitive: primitive, NumVertex: numVertex}
}

// IsIndexed reports whether the mesh has an index buffer.
func (m *Mesh) IsIndexed() bool {
	return m.IndexData.Data != nil
}

// NumIndex returns the number of indices, 0 for a non-indexed mesh.
func (m *Mesh) NumIndex() int {
	if !m.IsIndexed() || m.IndexType.Bytes() == 0 {
		return 0
	}
	return len(m.IndexData.Data) / m.IndexType.Bytes()
}

// Indices returns a read-only view over the index buffer that yields
// every element widened to uint32, regardless of the stored [IndexType].
func (m *Mesh) Indices() IndexView {
	return IndexView{Data: m.IndexData.Data, Type: m.IndexType}
}

// Indices32 returns a newly allocated copy of the index buffer with every
// element widened to uint32. It returns nil for a non-indexed mesh.
func (m *Mesh) Indices32() []uint32 {
	if !m.IsIndexed() {
		return nil
	}
	iv := m.Indices()
	out := make([]uint32, iv.Len())
	iv.CopyInto(out, 0)
	return out
}

// Stride returns the vertex buffer stride implied by the attribute
// layout: the stride of the first attribute, or 0 with no attributes.
func (m *Mesh) Stride() int {
	if len(m.Attributes) == 0 {
		return 0
	}
	return m.Attributes[0].Stride
}

// AttributeSetIndex returns the set index of attribute i: the number of
// earlier attributes in this mesh with the same name and morph target.
// Repeated names (e.g. two texture coordinate sets) are distinguished by
// this index when matching attributes across meshes.
func (m *Mesh) AttributeSetIndex(i int) int {
	a := &m.Attributes[i]
	set := 0
	for j := 0; j < i; j++ {
		if m.Attributes[j].Name == a.Name && m.Attributes[j].MorphTarget == a.MorphTarget {
			set++
		}
	}
	return set
}

// FindAttribute returns the index of the attribute with the given
// identity (name, set index among attributes of the same name and morph
// target, morph target), or -1 if there is none. This is a deliberate
// linear scan: meshes realistically carry well under 16 attributes, where
// scanning beats building and probing a map.
func (m *Mesh) FindAttribute(name AttributeName, set int, morph int) int {
	n := 0
	for i := range m.Attributes {
		a := &m.Attributes[i]
		if a.Name != name || a.MorphTarget != morph {
			continue
		}
		if n == set {
			return i
		}
		n++
	}
	return -1
}

// AttributeBytes returns the raw bytes of attribute ai for the given
// vertex row: a slice of length [Attribute.Bytes] into VertexData.
func (m *Mesh) AttributeBytes(ai, vertex int) []byte {
	a := &m.Attributes[ai]
	off := a.Offset + vertex*a.Stride
	return m.VertexData.Data[off : off+a.Bytes()]
}
