// Copyright 2026 The Lightrender Authors. All rights reserved.

package gles

import (
	gl "github.com/go-gl/gl/v3.1/gles2"

	"lightrender/lr/render"
)

// framebuffer implements render.FramebufferImpl.
type framebuffer struct {
	name   uint32
	width  int
	height int
	// colorSet marks populated color attachment slots, in index
	// order, for DrawBuffers.
	colorSet [render.MaxColorAttachments]bool
}

func (c *context) NewFramebuffer(width, height int) (render.FramebufferImpl, error) {
	f := &framebuffer{width: width, height: height}
	gl.GenFramebuffers(1, &f.name)
	if err := checkError("GenFramebuffers"); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *framebuffer) NativeHandle() render.Handle { return render.GLHandle(f.name) }

func (f *framebuffer) Destroy() {
	if f.name != 0 {
		gl.DeleteFramebuffers(1, &f.name)
		f.name = 0
	}
}

// rebind runs op with the framebuffer bound, restoring the previous
// binding afterwards so attachment edits do not disturb an open
// pass on another target.
func (f *framebuffer) rebind(op func()) {
	var prev int32
	gl.GetIntegerv(gl.FRAMEBUFFER_BINDING, &prev)
	gl.BindFramebuffer(gl.FRAMEBUFFER, f.name)
	op()
	gl.BindFramebuffer(gl.FRAMEBUFFER, uint32(prev))
}

func (f *framebuffer) AttachColor(index int, tex render.TextureImpl) error {
	t := tex.(*texture)
	f.rebind(func() {
		gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0+uint32(index),
			t.target, t.name, 0)
	})
	f.colorSet[index] = true
	return checkError("AttachColor")
}

func (f *framebuffer) AttachDepth(tex render.TextureImpl) error {
	t := tex.(*texture)
	attachment := uint32(gl.DEPTH_ATTACHMENT)
	if t.format.HasStencil() {
		attachment = gl.DEPTH_STENCIL_ATTACHMENT
	}
	f.rebind(func() {
		gl.FramebufferTexture2D(gl.FRAMEBUFFER, attachment, t.target, t.name, 0)
	})
	return checkError("AttachDepth")
}

func (f *framebuffer) AttachStencil(tex render.TextureImpl) error {
	t := tex.(*texture)
	f.rebind(func() {
		gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.STENCIL_ATTACHMENT, t.target, t.name, 0)
	})
	return checkError("AttachStencil")
}

func (f *framebuffer) IsComplete() bool {
	var status uint32
	f.rebind(func() {
		status = gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	})
	return status == gl.FRAMEBUFFER_COMPLETE
}

// applyDrawBuffers routes fragment outputs to the populated color
// attachments. Called when a pass binds this framebuffer.
func (f *framebuffer) applyDrawBuffers() {
	var bufs []uint32
	for i, set := range f.colorSet {
		if set {
			bufs = append(bufs, gl.COLOR_ATTACHMENT0+uint32(i))
		}
	}
	if len(bufs) > 0 {
		gl.DrawBuffers(int32(len(bufs)), &bufs[0])
	}
}
