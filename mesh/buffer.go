// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

// DataFlags describe the ownership and mutability of a [Buffer].
type DataFlags uint32

const (
	// DataOwned means the buffer storage lifetime is bound to the mesh:
	// algorithms may resize or transfer it.
	DataOwned DataFlags = 1 << iota

	// DataMutable means the buffer contents may be written through this
	// handle. A borrowed view without this flag is read-only.
	DataMutable
)

// Buffer is a byte buffer handle with ownership and mutability flags.
// Outputs of the meshtools algorithms are always owned and mutable;
// inputs may be borrowed read-only views into caller-managed memory,
// which the algorithms never resize or free.
type Buffer struct {
	// Data is the underlying storage. A nil Data means no buffer at all,
	// which for index buffers means "non-indexed".
	Data []byte

	// Flags are the ownership and mutability flags.
	Flags DataFlags
}

// OwnedBuffer returns an owned, mutable buffer around the given storage.
func OwnedBuffer(data []byte) Buffer {
	return Buffer{Data: data, Flags: DataOwned | DataMutable}
}

// ViewBuffer returns a borrowed, read-only view of the given storage.
func ViewBuffer(data []byte) Buffer {
	return Buffer{Data: data}
}

// IsOwned reports whether the buffer owns its storage.
func (b *Buffer) IsOwned() bool {
	return b.Flags&DataOwned != 0
}

// IsMutable reports whether the buffer contents may be written.
func (b *Buffer) IsMutable() bool {
	return b.Flags&DataMutable != 0
}

// Take returns storage holding the buffer contents that the caller may
// keep: the underlying slice itself when the buffer is owned (detaching
// it from b), or a fresh copy otherwise. A nil buffer yields nil.
func (b *Buffer) Take() []byte {
	if b.Data == nil {
		return nil
	}
	if b.IsOwned() {
		data := b.Data
		b.Data = nil
		b.Flags = 0
		return data
	}
	data := make([]byte, len(b.Data))
	copy(data, b.Data)
	return data
}
