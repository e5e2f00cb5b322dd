// Copyright 2026 The Lightrender Authors. All rights reserved.

package render

import (
	"lightrender/lr/lrerr"
)

// Buffer is a backend-agnostic GPU buffer.
// Its size is fixed at creation; a size mismatch on update is a
// caller error and is never resolved by implicit resizing.
type Buffer struct {
	resource
	kind    BufferKind
	size    int
	usage   Usage
	index   IndexFmt
	binding int
	layout  VertexLayout
	mapped  bool
}

// Kind returns the buffer variant.
func (b *Buffer) Kind() BufferKind { return b.kind }

// Size returns the allocated byte size.
func (b *Buffer) Size() int { return b.size }

// Usage returns the usage hint.
func (b *Buffer) Usage() Usage { return b.usage }

// IndexFormat returns the element width of an index buffer.
func (b *Buffer) IndexFormat() IndexFmt { return b.index }

// Binding returns the binding point of a uniform buffer.
func (b *Buffer) Binding() int { return b.binding }

// VertexLayout returns the layout set by SetVertexLayout.
func (b *Buffer) VertexLayout() VertexLayout { return b.layout }

func (b *Buffer) impl() BufferImpl { return b.resource.impl.(BufferImpl) }

// UpdateData copies len(data) bytes into the buffer starting at byte
// offset. The caller must ensure offset+len(data) does not exceed
// Size; ranges the backend can check fail with BufferTooSmall.
func (b *Buffer) UpdateData(data []byte, offset int) error {
	if !b.IsValid() {
		return lrerr.New(lrerr.ResourceInvalid, lrerr.SeverityError, "buffer not valid")
	}
	if offset < 0 || offset+len(data) > b.size {
		return lrerr.Errorf(lrerr.BufferTooSmall, lrerr.SeverityError,
			"update of %d bytes at offset %d exceeds buffer size %d", len(data), offset, b.size)
	}
	return b.impl().UpdateData(data, offset)
}

// Map exposes the buffer's driver-managed memory for CPU access.
// The returned slice is valid only until the matching Unmap and must
// not be retained afterwards.
func (b *Buffer) Map(access MapAccess) ([]byte, error) {
	if !b.IsValid() {
		return nil, lrerr.New(lrerr.ResourceInvalid, lrerr.SeverityError, "buffer not valid")
	}
	if b.mapped {
		return nil, lrerr.New(lrerr.InvalidOperation, lrerr.SeverityError, "buffer already mapped")
	}
	p, err := b.impl().Map(access)
	if err != nil {
		return nil, err
	}
	b.mapped = true
	return p, nil
}

// Unmap invalidates the mapping established by Map.
func (b *Buffer) Unmap() error {
	if !b.mapped {
		return lrerr.New(lrerr.InvalidOperation, lrerr.SeverityError, "buffer not mapped")
	}
	b.mapped = false
	return b.impl().Unmap()
}

// SetVertexLayout describes how the buffer's raw bytes are
// interpreted as typed attributes. Meaningful only on vertex
// buffers.
func (b *Buffer) SetVertexLayout(layout VertexLayout) error {
	if b.kind != VertexBufferKind {
		return lrerr.New(lrerr.InvalidOperation, lrerr.SeverityError,
			"vertex layout on non-vertex buffer")
	}
	if err := b.impl().SetVertexLayout(layout); err != nil {
		return err
	}
	b.layout = layout
	return nil
}
