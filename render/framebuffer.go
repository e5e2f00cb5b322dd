// Copyright 2026 The Lightrender Authors. All rights reserved.

package render

import (
	"lightrender/lr/lrerr"
)

// FrameBuffer is an offscreen render target: an index-addressable
// list of color attachments plus optional depth and stencil
// attachments.
//
// Unlike pipeline states, framebuffers are mutable: attachments may
// change after construction. The object does not auto-validate on
// attach; IsComplete must be re-queried after every attachment
// change and before the framebuffer is used in a render pass.
type FrameBuffer struct {
	resource
	width   int
	height  int
	color   [MaxColorAttachments]*Texture
	depth   *Texture
	stencil *Texture
}

// Width returns the framebuffer width.
func (f *FrameBuffer) Width() int { return f.width }

// Height returns the framebuffer height.
func (f *FrameBuffer) Height() int { return f.height }

func (f *FrameBuffer) impl() FramebufferImpl { return f.resource.impl.(FramebufferImpl) }

// AttachColorTexture sets the color attachment at index.
// Index is bounds-checked against MaxColorAttachments; out-of-range
// requests fail rather than clamp. The framebuffer shares ownership
// of the texture while attached.
func (f *FrameBuffer) AttachColorTexture(tex *Texture, index int) error {
	if index < 0 || index >= MaxColorAttachments {
		return lrerr.Errorf(lrerr.FramebufferAttachment, lrerr.SeverityError,
			"color attachment index %d out of range [0,%d)", index, MaxColorAttachments)
	}
	if tex == nil || !tex.IsValid() {
		return lrerr.New(lrerr.FramebufferAttachment, lrerr.SeverityError,
			"color attachment texture not valid")
	}
	if err := f.impl().AttachColor(index, tex.impl()); err != nil {
		return err
	}
	tex.AddRef()
	if old := f.color[index]; old != nil {
		old.Release()
	}
	f.color[index] = tex
	return nil
}

// AttachDepthTexture sets the depth attachment.
func (f *FrameBuffer) AttachDepthTexture(tex *Texture) error {
	if tex == nil || !tex.IsValid() {
		return lrerr.New(lrerr.FramebufferAttachment, lrerr.SeverityError,
			"depth attachment texture not valid")
	}
	if !tex.Format().IsDepth() {
		return lrerr.Errorf(lrerr.FramebufferAttachment, lrerr.SeverityError,
			"format %d has no depth aspect", tex.Format())
	}
	if err := f.impl().AttachDepth(tex.impl()); err != nil {
		return err
	}
	tex.AddRef()
	if f.depth != nil {
		f.depth.Release()
	}
	f.depth = tex
	return nil
}

// AttachStencilTexture sets the stencil attachment.
func (f *FrameBuffer) AttachStencilTexture(tex *Texture) error {
	if tex == nil || !tex.IsValid() {
		return lrerr.New(lrerr.FramebufferAttachment, lrerr.SeverityError,
			"stencil attachment texture not valid")
	}
	if !tex.Format().HasStencil() {
		return lrerr.Errorf(lrerr.FramebufferAttachment, lrerr.SeverityError,
			"format %d has no stencil aspect", tex.Format())
	}
	if err := f.impl().AttachStencil(tex.impl()); err != nil {
		return err
	}
	tex.AddRef()
	if f.stencil != nil {
		f.stencil.Release()
	}
	f.stencil = tex
	return nil
}

// ColorTexture returns the color attachment at index, or nil.
func (f *FrameBuffer) ColorTexture(index int) *Texture {
	if index < 0 || index >= MaxColorAttachments {
		return nil
	}
	return f.color[index]
}

// DepthTexture returns the depth attachment, or nil.
func (f *FrameBuffer) DepthTexture() *Texture { return f.depth }

// StencilTexture returns the stencil attachment, or nil.
func (f *FrameBuffer) StencilTexture() *Texture { return f.stencil }

// IsComplete asks the backend to validate attachment compatibility.
// A freshly created framebuffer with no attachments is incomplete.
func (f *FrameBuffer) IsComplete() bool {
	if !f.IsValid() {
		return false
	}
	return f.impl().IsComplete()
}

// releaseAttachments drops the framebuffer's shares of its
// attachments. Called from the destroy hook.
func (f *FrameBuffer) releaseAttachments() {
	for i, t := range f.color {
		if t != nil {
			t.Release()
			f.color[i] = nil
		}
	}
	if f.depth != nil {
		f.depth.Release()
		f.depth = nil
	}
	if f.stencil != nil {
		f.stencil.Release()
		f.stencil = nil
	}
}

// Release decrements the reference count, dropping attachment shares
// when the framebuffer is destroyed.
func (f *FrameBuffer) Release() int32 {
	n := f.refs.Add(-1)
	if n == 0 {
		f.releaseAttachments()
		f.destroy()
	}
	return n
}
