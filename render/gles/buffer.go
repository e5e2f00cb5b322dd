// Copyright 2026 The Lightrender Authors. All rights reserved.

package gles

import (
	"unsafe"

	gl "github.com/go-gl/gl/v3.1/gles2"

	"lightrender/lr/lrerr"
	"lightrender/lr/render"
)

// buffer implements render.BufferImpl.
type buffer struct {
	name   uint32
	target uint32
	size   int
	// vao is the input-layout object of a vertex buffer, created
	// when a layout is set.
	vao uint32
	// mapped is the live Map window, sliced from driver memory.
	mapped []byte
}

func (c *context) NewBuffer(desc render.BufferDesc) (render.BufferImpl, error) {
	b := &buffer{
		target: convTarget(desc.Kind),
		size:   desc.Size,
	}
	gl.GenBuffers(1, &b.name)
	gl.BindBuffer(b.target, b.name)
	gl.BufferData(b.target, desc.Size, nil, convUsage(desc.Usage))
	if err := checkError("BufferData"); err != nil {
		gl.DeleteBuffers(1, &b.name)
		return nil, err
	}
	return b, nil
}

func (b *buffer) NativeHandle() render.Handle { return render.GLHandle(b.name) }

func (b *buffer) Destroy() {
	if b.vao != 0 {
		gl.DeleteVertexArrays(1, &b.vao)
		b.vao = 0
	}
	if b.name != 0 {
		gl.DeleteBuffers(1, &b.name)
		b.name = 0
	}
}

func (b *buffer) UpdateData(data []byte, offset int) error {
	gl.BindBuffer(b.target, b.name)
	gl.BufferSubData(b.target, offset, len(data), gl.Ptr(data))
	return checkError("BufferSubData")
}

func (b *buffer) Map(access render.MapAccess) ([]byte, error) {
	var bits uint32
	switch access {
	case render.MapRead:
		bits = gl.MAP_READ_BIT
	case render.MapWrite:
		bits = gl.MAP_WRITE_BIT
	default:
		bits = gl.MAP_READ_BIT | gl.MAP_WRITE_BIT
	}
	gl.BindBuffer(b.target, b.name)
	p := gl.MapBufferRange(b.target, 0, b.size, bits)
	if p == nil {
		if err := checkError("MapBufferRange"); err != nil {
			return nil, err
		}
		return nil, lrerr.New(lrerr.BufferMapFailed, lrerr.SeverityError, "gles: map failed")
	}
	b.mapped = unsafe.Slice((*byte)(p), b.size)
	return b.mapped, nil
}

func (b *buffer) Unmap() error {
	b.mapped = nil
	gl.BindBuffer(b.target, b.name)
	if !gl.UnmapBuffer(b.target) {
		// The driver lost the data store; contents are undefined.
		return lrerr.New(lrerr.BufferMapFailed, lrerr.SeverityError, "gles: unmap corrupted store")
	}
	return checkError("UnmapBuffer")
}

// SetVertexLayout builds the buffer's vertex array object. The VAO
// records attribute pointers against this buffer; binding the VAO is
// what makes a later draw interpret the raw bytes as typed
// attributes.
func (b *buffer) SetVertexLayout(layout render.VertexLayout) error {
	if b.vao == 0 {
		gl.GenVertexArrays(1, &b.vao)
	}
	gl.BindVertexArray(b.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.name)
	for _, a := range layout.Attrs {
		xtype, comps, normalized, integer := convVertexFmt(a.Format)
		gl.EnableVertexAttribArray(uint32(a.Location))
		if integer {
			gl.VertexAttribIPointer(uint32(a.Location), comps, xtype,
				int32(layout.Stride), gl.PtrOffset(a.Offset))
		} else {
			gl.VertexAttribPointer(uint32(a.Location), comps, xtype, normalized,
				int32(layout.Stride), gl.PtrOffset(a.Offset))
		}
	}
	gl.BindVertexArray(0)
	return checkError("SetVertexLayout")
}
