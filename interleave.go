// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meshtools

import (
	"github.com/cogentcore/meshtools/mesh"
)

// InterleaveFlags control how [InterleavedLayout] derives the output
// vertex layout from its input.
type InterleaveFlags int32

const (
	// PreserveInterleavedAttributes keeps the relative attribute offsets
	// and stride of an already interleaved input, including any padding
	// between attributes. Without it (or when the input is not
	// interleaved to begin with), attributes are repacked tightly in
	// declaration order.
	PreserveInterleavedAttributes InterleaveFlags = 1 << iota
)

// attributeSpan returns the byte span [min, max) that the attributes
// occupy within one stride-sized vertex row, relative to the buffer
// start, and whether every attribute shares the first one's stride.
// Implementation-specific formats have unknown size and conservatively
// claim everything up to the end of the stride.
func attributeSpan(attrs []mesh.Attribute) (minOffset, maxOffset int, sameStride bool) {
	stride := attrs[0].Stride
	minOffset = int(^uint(0) >> 1)
	hasImplementationSpecific := false
	for i := range attrs {
		a := &attrs[i]
		if a.Stride != stride {
			return 0, 0, false
		}
		if a.Offset < minOffset {
			minOffset = a.Offset
		}
		size := a.Bytes()
		if a.Format.IsImplementationSpecific() {
			hasImplementationSpecific = true
			size = 1
		}
		if a.Offset+size > maxOffset {
			maxOffset = a.Offset + size
		}
	}
	if hasImplementationSpecific && minOffset+stride > maxOffset {
		maxOffset = minOffset + stride
	}
	return minOffset, maxOffset, true
}

// IsInterleaved reports whether the mesh vertex layout is interleaved:
// all attributes share a common stride and their offsets fit within one
// stride-sized window. A mesh with no attributes counts as interleaved.
// Attributes in an interleaved mesh may still have padding between them
// or alias each other.
func IsInterleaved(m *mesh.Mesh) bool {
	if len(m.Attributes) == 0 {
		return true
	}
	minOffset, maxOffset, sameStride := attributeSpan(m.Attributes)
	return sameStride && maxOffset-minOffset <= m.Attributes[0].Stride
}

// interleavedLayoutAttributes computes the attribute descriptors of an
// interleaved layout combining m's attributes with extra ones, without
// binding them to a buffer. An extra attribute with FormatUnknown is
// padding: its Stride (possibly negative) is added to the output stride
// and to the running offset without producing an attribute.
func interleavedLayoutAttributes(m *mesh.Mesh, extra []mesh.Attribute, flags InterleaveFlags) []mesh.Attribute {
	if len(m.Attributes) == 0 && len(extra) == 0 {
		return nil
	}

	preserve := flags&PreserveInterleavedAttributes != 0 && IsInterleaved(m)

	// already interleaved: keep the original stride with all its padding,
	// only dropping the initial offset. Otherwise pack tightly.
	var stride, minOffset int
	if preserve && len(m.Attributes) > 0 {
		stride = m.Attributes[0].Stride
		minOffset = m.Attributes[0].Offset
		for i := range m.Attributes {
			if m.Attributes[i].Offset < minOffset {
				minOffset = m.Attributes[i].Offset
			}
		}
	} else {
		for i := range m.Attributes {
			stride += m.Attributes[i].Bytes()
		}
	}

	extraCount := 0
	for i := range extra {
		if extra[i].Format == mesh.FormatUnknown {
			if !checkf(extra[i].Stride > 0 || stride >= -extra[i].Stride,
				"meshtools.InterleavedLayout: negative padding %d in extra attribute %d too large for stride %d", extra[i].Stride, i, stride) {
				return nil
			}
			stride += extra[i].Stride
		} else {
			stride += extra[i].Bytes()
			extraCount++
		}
	}

	out := make([]mesh.Attribute, 0, len(m.Attributes)+extraCount)

	offset := 0
	for i := range m.Attributes {
		a := m.Attributes[i]
		if preserve {
			offset = a.Offset - minOffset
		}
		a.Offset = offset
		a.Stride = stride
		out = append(out, a)
		if !preserve {
			offset += a.Bytes()
		}
	}

	// with a preserved layout, extras start past the original stride so
	// trailing padding survives too
	if preserve && len(m.Attributes) > 0 {
		offset = m.Attributes[0].Stride
	}
	for i := range extra {
		if extra[i].Format == mesh.FormatUnknown {
			offset += extra[i].Stride
			continue
		}
		a := extra[i]
		a.Offset = offset
		a.Stride = stride
		out = append(out, a)
		offset += a.Bytes()
	}
	return out
}

// InterleavedLayout returns a mesh with an interleaved vertex layout
// combining m's attributes with the extra ones, and a zeroed vertex
// buffer sized for numVertex vertices. Only the layout of m is used; no
// vertex data is copied and m's index buffer is ignored. With
// [PreserveInterleavedAttributes] set and m already interleaved, m's
// relative offsets, stride and padding are kept verbatim; otherwise the
// attributes are repacked tightly. An extra attribute with a zero Format
// inserts padding of its Stride bytes (negative to remove trailing
// padding of a preserved layout).
func InterleavedLayout(m *mesh.Mesh, numVertex int, extra []mesh.Attribute, flags InterleaveFlags) mesh.Mesh {
	attrs := interleavedLayoutAttributes(m, extra, flags)
	out := mesh.New(m.Primitive, numVertex)
	if len(attrs) == 0 {
		return out
	}
	out.VertexData = mesh.OwnedBuffer(make([]byte, attrs[0].Stride*numVertex))
	out.Attributes = attrs
	return out
}

// remapAttributes binds a planned attribute layout to concrete vertex
// storage, validating that every attribute's rows for numVertex vertices
// fall within the buffer.
func remapAttributes(attrs []mesh.Attribute, numVertex int, data []byte) bool {
	for i := range attrs {
		a := &attrs[i]
		if numVertex == 0 {
			continue
		}
		end := a.Offset + (numVertex-1)*a.Stride + a.Bytes()
		if !checkf(end <= len(data), "meshtools: attribute %d (%v) spans %d bytes but the vertex buffer only has %d", i, a.Name, end, len(data)) {
			return false
		}
	}
	return true
}

// Interleave returns a copy of the mesh with all attributes interleaved
// into a single tightly packed (or, with [PreserveInterleavedAttributes],
// layout-preserving) vertex buffer, with the extra attributes appended
// zero-filled. The index buffer is carried over unchanged.
func Interleave(m *mesh.Mesh, extra []mesh.Attribute, flags InterleaveFlags) mesh.Mesh {
	for i := range m.Attributes {
		if !checkf(!m.Attributes[i].Format.IsImplementationSpecific() || flags&PreserveInterleavedAttributes != 0 && IsInterleaved(m),
			"meshtools.Interleave: attribute %d (%v) has an implementation-specific format 0x%x, which can only be carried through a preserved interleaved layout",
			i, m.Attributes[i].Name, m.Attributes[i].Format.Unwrap()) {
			return mesh.Mesh{}
		}
	}

	out := InterleavedLayout(m, m.NumVertex, extra, flags)
	if !remapAttributes(out.Attributes, out.NumVertex, out.VertexData.Data) {
		return mesh.Mesh{}
	}

	// source attribute i maps to output attribute i; extras follow and
	// stay zeroed
	if flags&PreserveInterleavedAttributes != 0 && IsInterleaved(m) && len(m.Attributes) > 0 {
		// one memcpy per vertex row instead of per attribute
		minOffset, maxOffset, _ := attributeSpan(m.Attributes)
		rowLen := maxOffset - minOffset
		srcStride := m.Attributes[0].Stride
		for v := 0; v < m.NumVertex; v++ {
			src := m.VertexData.Data[minOffset+v*srcStride : minOffset+v*srcStride+rowLen]
			copy(out.VertexData.Data[v*out.Stride():], src)
		}
	} else {
		for i := range m.Attributes {
			copyAttribute(&out, i, m, i, 0)
		}
	}

	if m.IsIndexed() {
		out.IndexType = m.IndexType
		out.IndexData = mesh.OwnedBuffer(append([]byte(nil), m.IndexData.Data...))
	}
	return out
}

// copyAttribute copies all vertex rows of src attribute si into dst
// attribute di starting at dst vertex row vertexOffset.
func copyAttribute(dst *mesh.Mesh, di int, src *mesh.Mesh, si int, vertexOffset int) {
	for v := 0; v < src.NumVertex; v++ {
		copy(dst.AttributeBytes(di, vertexOffset+v), src.AttributeBytes(si, v))
	}
}
