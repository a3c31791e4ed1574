// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import "github.com/cogentcore/webgpu/wgpu"

// VertexFormat is the element type of vertex attribute data: a scalar or
// vector of a concrete component type, optionally normalized. The high
// bit marks implementation-specific formats wrapped via [WrapFormat],
// which the meshtools algorithms refuse to interpret.
type VertexFormat uint32 //enums:enum

const (
	// FormatUnknown is the zero, invalid format.
	FormatUnknown VertexFormat = iota

	Float32
	Float32Vector2
	Float32Vector3
	Float32Vector4

	Uint32
	Uint32Vector2
	Uint32Vector3
	Uint32Vector4

	Int32
	Int32Vector2
	Int32Vector3
	Int32Vector4

	Uint16
	Uint16Vector2
	Uint16Vector4
	Uint16Norm
	Uint16Vector2Norm
	Uint16Vector4Norm

	Int16
	Int16Vector2
	Int16Vector4
	Int16Norm
	Int16Vector2Norm
	Int16Vector4Norm

	Uint8
	Uint8Vector2
	Uint8Vector4
	Uint8Norm
	Uint8Vector2Norm
	Uint8Vector4Norm

	Int8
	Int8Vector2
	Int8Vector4
	Int8Norm
	Int8Vector2Norm
	Int8Vector4Norm
)

// formatImplementationSpecific marks formats carrying an opaque,
// driver-specific value in the low bits.
const formatImplementationSpecific VertexFormat = 1 << 31

// WrapFormat wraps an opaque, implementation-specific format identifier
// as a VertexFormat. Such formats can be carried through mesh values but
// are rejected by any algorithm that has to interpret the data.
func WrapFormat(id uint32) VertexFormat {
	return formatImplementationSpecific | VertexFormat(id&0x7fffffff)
}

// IsImplementationSpecific reports whether the format is a wrapped
// opaque identifier rather than one of the concrete formats.
func (f VertexFormat) IsImplementationSpecific() bool {
	return f&formatImplementationSpecific != 0
}

// Unwrap returns the opaque identifier of an implementation-specific
// format. Only meaningful when [VertexFormat.IsImplementationSpecific].
func (f VertexFormat) Unwrap() uint32 {
	return uint32(f &^ formatImplementationSpecific)
}

// FormatComponents is the number of components of each concrete format.
var FormatComponents = map[VertexFormat]int{
	Float32: 1, Float32Vector2: 2, Float32Vector3: 3, Float32Vector4: 4,
	Uint32: 1, Uint32Vector2: 2, Uint32Vector3: 3, Uint32Vector4: 4,
	Int32: 1, Int32Vector2: 2, Int32Vector3: 3, Int32Vector4: 4,
	Uint16: 1, Uint16Vector2: 2, Uint16Vector4: 4,
	Uint16Norm: 1, Uint16Vector2Norm: 2, Uint16Vector4Norm: 4,
	Int16: 1, Int16Vector2: 2, Int16Vector4: 4,
	Int16Norm: 1, Int16Vector2Norm: 2, Int16Vector4Norm: 4,
	Uint8: 1, Uint8Vector2: 2, Uint8Vector4: 4,
	Uint8Norm: 1, Uint8Vector2Norm: 2, Uint8Vector4Norm: 4,
	Int8: 1, Int8Vector2: 2, Int8Vector4: 4,
	Int8Norm: 1, Int8Vector2Norm: 2, Int8Vector4Norm: 4,
}

// formatComponentBytes is the byte size of one component of each
// concrete format.
var formatComponentBytes = map[VertexFormat]int{
	Float32: 4, Float32Vector2: 4, Float32Vector3: 4, Float32Vector4: 4,
	Uint32: 4, Uint32Vector2: 4, Uint32Vector3: 4, Uint32Vector4: 4,
	Int32: 4, Int32Vector2: 4, Int32Vector3: 4, Int32Vector4: 4,
	Uint16: 2, Uint16Vector2: 2, Uint16Vector4: 2,
	Uint16Norm: 2, Uint16Vector2Norm: 2, Uint16Vector4Norm: 2,
	Int16: 2, Int16Vector2: 2, Int16Vector4: 2,
	Int16Norm: 2, Int16Vector2Norm: 2, Int16Vector4Norm: 2,
	Uint8: 1, Uint8Vector2: 1, Uint8Vector4: 1,
	Uint8Norm: 1, Uint8Vector2Norm: 1, Uint8Vector4Norm: 1,
	Int8: 1, Int8Vector2: 1, Int8Vector4: 1,
	Int8Norm: 1, Int8Vector2Norm: 1, Int8Vector4Norm: 1,
}

// Bytes returns the total byte size of one element of this format,
// or 0 for unknown and implementation-specific formats.
func (f VertexFormat) Bytes() int {
	return FormatComponents[f] * formatComponentBytes[f]
}

// Components returns the number of components of this format,
// or 0 for unknown and implementation-specific formats.
func (f VertexFormat) Components() int {
	return FormatComponents[f]
}

// FormatToVertexFormat maps concrete formats to the corresponding WebGPU
// vertex format, for the point where a mesh gets uploaded. Formats with
// no WebGPU equivalent (scalar and 2-component byte and short forms not
// in the WebGPU spec, 3-component non-32-bit forms) are absent and map
// to [wgpu.VertexFormatUndefined].
var FormatToVertexFormat = map[VertexFormat]wgpu.VertexFormat{
	Float32:        wgpu.VertexFormatFloat32,
	Float32Vector2: wgpu.VertexFormatFloat32x2,
	Float32Vector3: wgpu.VertexFormatFloat32x3,
	Float32Vector4: wgpu.VertexFormatFloat32x4,

	Uint32:        wgpu.VertexFormatUint32,
	Uint32Vector2: wgpu.VertexFormatUint32x2,
	Uint32Vector3: wgpu.VertexFormatUint32x3,
	Uint32Vector4: wgpu.VertexFormatUint32x4,

	Int32:        wgpu.VertexFormatSint32,
	Int32Vector2: wgpu.VertexFormatSint32x2,
	Int32Vector3: wgpu.VertexFormatSint32x3,
	Int32Vector4: wgpu.VertexFormatSint32x4,

	Uint16Vector2: wgpu.VertexFormatUint16x2,
	Uint16Vector4: wgpu.VertexFormatUint16x4,

	Uint16Vector2Norm: wgpu.VertexFormatUnorm16x2,
	Uint16Vector4Norm: wgpu.VertexFormatUnorm16x4,

	Int16Vector2: wgpu.VertexFormatSint16x2,
	Int16Vector4: wgpu.VertexFormatSint16x4,

	Int16Vector2Norm: wgpu.VertexFormatSnorm16x2,
	Int16Vector4Norm: wgpu.VertexFormatSnorm16x4,

	Uint8Vector2: wgpu.VertexFormatUint8x2,
	Uint8Vector4: wgpu.VertexFormatUint8x4,

	Uint8Vector2Norm: wgpu.VertexFormatUnorm8x2,
	Uint8Vector4Norm: wgpu.VertexFormatUnorm8x4,

	Int8Vector2: wgpu.VertexFormatSint8x2,
	Int8Vector4: wgpu.VertexFormatSint8x4,

	Int8Vector2Norm: wgpu.VertexFormatSnorm8x2,
	Int8Vector4Norm: wgpu.VertexFormatSnorm8x4,
}

// WGPU returns the WebGPU vertex format for this format, or
// [wgpu.VertexFormatUndefined] when there is no equivalent.
func (f VertexFormat) WGPU() wgpu.VertexFormat {
	return FormatToVertexFormat[f]
}
