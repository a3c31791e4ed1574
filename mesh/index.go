// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"encoding/binary"

	"github.com/cogentcore/webgpu/wgpu"
)

// IndexType is the element type of a mesh index buffer. The high bit
// marks implementation-specific types wrapped via [WrapIndexType], which
// the meshtools algorithms refuse to interpret.
type IndexType uint32 //enums:enum

const (
	// IndexUint8 is an 8-bit unsigned index element.
	IndexUint8 IndexType = iota

	// IndexUint16 is a 16-bit unsigned index element.
	IndexUint16

	// IndexUint32 is a 32-bit unsigned index element.
	IndexUint32
)

// indexImplementationSpecific marks index types carrying an opaque,
// driver-specific value in the low bits.
const indexImplementationSpecific IndexType = 1 << 31

// WrapIndexType wraps an opaque, implementation-specific index type
// identifier as an IndexType.
func WrapIndexType(id uint32) IndexType {
	return indexImplementationSpecific | IndexType(id&0x7fffffff)
}

// IsImplementationSpecific reports whether the index type is a wrapped
// opaque identifier rather than one of the concrete types.
func (it IndexType) IsImplementationSpecific() bool {
	return it&indexImplementationSpecific != 0
}

// Unwrap returns the opaque identifier wrapped via [WrapIndexType].
func (it IndexType) Unwrap() uint32 {
	return uint32(it &^ indexImplementationSpecific)
}

// Bytes returns the byte size of one index element: 1, 2 or 4, or 0 for
// implementation-specific types.
func (it IndexType) Bytes() int {
	switch it {
	case IndexUint8:
		return 1
	case IndexUint16:
		return 2
	case IndexUint32:
		return 4
	}
	return 0
}

// WGPU returns the WebGPU index format for this type. WebGPU has no
// 8-bit index format, so [IndexUint8] buffers must be widened (e.g. via
// meshtools CompressIndices with a 16-bit floor) before upload; this
// follows the gpu package convention of defaulting to 32-bit.
func (it IndexType) WGPU() wgpu.IndexFormat {
	if it == IndexUint16 {
		return wgpu.IndexFormatUint16
	}
	return wgpu.IndexFormatUint32
}

// IndexView is a read-only view over a raw index buffer that yields
// every element widened to uint32. The width dispatch happens at
// runtime, keeping the index generators width-agnostic.
type IndexView struct {
	// Data is the raw index buffer.
	Data []byte

	// Type is the element type of Data.
	Type IndexType
}

// Len returns the number of index elements in the view.
func (v IndexView) Len() int {
	eb := v.Type.Bytes()
	if eb == 0 {
		return 0
	}
	return len(v.Data) / eb
}

// At returns index element i widened to uint32.
func (v IndexView) At(i int) uint32 {
	switch v.Type {
	case IndexUint8:
		return uint32(v.Data[i])
	case IndexUint16:
		return uint32(binary.LittleEndian.Uint16(v.Data[2*i:]))
	default:
		return binary.LittleEndian.Uint32(v.Data[4*i:])
	}
}

// CopyInto widens all elements into dst, adding offset to each.
// dst must have length [IndexView.Len].
func (v IndexView) CopyInto(dst []uint32, offset uint32) {
	n := v.Len()
	for i := 0; i < n; i++ {
		dst[i] = v.At(i) + offset
	}
}

// IndexBuffer32 returns an owned, mutable index buffer holding the given
// indices as [IndexUint32] elements. The buffer is non-nil even for zero
// indices, so the resulting mesh counts as indexed.
func IndexBuffer32(vals []uint32) Buffer {
	data := make([]byte, 4*len(vals))
	for i, v := range vals {
		binary.LittleEndian.PutUint32(data[4*i:], v)
	}
	return OwnedBuffer(data)
}

// PutIndex writes val as element i of a raw index buffer of the given
// element type, truncating to the element width.
func PutIndex(data []byte, typ IndexType, i int, val uint32) {
	switch typ {
	case IndexUint8:
		data[i] = byte(val)
	case IndexUint16:
		binary.LittleEndian.PutUint16(data[2*i:], uint16(val))
	default:
		binary.LittleEndian.PutUint32(data[4*i:], val)
	}
}
