// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

// AttributeName identifies a per-vertex data channel. Besides the
// built-in names, custom numeric tags can be wrapped via
// [CustomAttribute]. The same name may appear multiple times in one mesh
// (e.g. several texture coordinate sets); occurrences are then told apart
// by their set index, see [Mesh.AttributeSetIndex].
type AttributeName uint32 //enums:enum

const (
	// AttributeUnknown is the zero, invalid attribute name.
	AttributeUnknown AttributeName = iota

	// Position is a 2D or 3D vertex position.
	Position

	// Tangent is a tangent direction, optionally with a bitangent sign
	// in the fourth component.
	Tangent

	// Bitangent is a bitangent direction.
	Bitangent

	// Normal is a normal direction.
	Normal

	// TextureCoordinates is a 2D texture coordinate set.
	TextureCoordinates

	// Color is a per-vertex color.
	Color

	// JointIDs are skinning joint identifiers, usually an array attribute.
	JointIDs

	// Weights are skinning joint weights, usually an array attribute.
	Weights

	// ObjectID is a per-vertex object identifier.
	ObjectID
)

// attributeCustom is the bit marking custom attribute names; the low 15
// bits then carry the caller-chosen tag.
const attributeCustom AttributeName = 1 << 15

// CustomAttribute wraps a caller-chosen numeric tag as an attribute name.
// Tags of different callers are distinguished only by the tag value.
func CustomAttribute(id uint16) AttributeName {
	return attributeCustom | AttributeName(id&0x7fff)
}

// IsCustom reports whether the name is a wrapped custom tag.
func (an AttributeName) IsCustom() bool {
	return an&attributeCustom != 0
}

// CustomID returns the numeric tag of a custom attribute name.
// Only meaningful when [AttributeName.IsCustom] is true.
func (an AttributeName) CustomID() uint16 {
	return uint16(an &^ attributeCustom)
}

// Attribute describes one per-vertex data channel within a mesh's vertex
// buffer. Offset and Stride are byte values relative to the start of the
// buffer the attribute belongs to; a layout produced by planning refers
// to a buffer that does not exist yet and must be bound to concrete
// storage before use.
type Attribute struct {
	// Name identifies the channel. See [AttributeName].
	Name AttributeName

	// Format is the element type of the channel data.
	Format VertexFormat

	// Offset is the byte offset of the first element.
	Offset int

	// Stride is the byte distance between consecutive elements.
	Stride int

	// ArraySize is 0 for a plain attribute, or the fixed per-vertex
	// array length for array attributes such as joint weights.
	ArraySize int

	// MorphTarget is the morph target identifier this channel belongs
	// to, 0 for the base mesh.
	MorphTarget int
}

// Bytes returns the per-vertex byte size of the attribute: the format
// size times the array size (at least 1).
func (a *Attribute) Bytes() int {
	n := a.ArraySize
	if n < 1 {
		n = 1
	}
	return a.Format.Bytes() * n
}

// SameIdentity reports whether two attributes refer to the same logical
// channel by the (name, morph target) part of the identity triple; the
// set index part is positional and handled by the callers.
func (a *Attribute) SameIdentity(b *Attribute) bool {
	return a.Name == b.Name && a.MorphTarget == b.MorphTarget
}
