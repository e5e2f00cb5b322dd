// Copyright 2026 The Lightrender Authors. All rights reserved.

package render_test

import (
	"testing"

	"lightrender/lr/render"
)

func newTex2D(t *testing.T, w, h int, f render.PixelFmt) *render.Texture {
	t.Helper()
	tex, err := ctx.CreateTexture(render.TextureDesc{
		Kind:   render.Tex2D,
		Width:  w,
		Height: h,
		Format: f,
	})
	if err != nil {
		t.Fatalf("Context.CreateTexture failed:\n%#v", err)
	}
	return tex
}

func TestFramebufferCompleteness(t *testing.T) {
	fb, err := ctx.CreateFrameBuffer(128, 128)
	if err != nil {
		t.Fatalf("Context.CreateFrameBuffer failed:\n%#v", err)
	}
	defer fb.Release()

	// No attachments: incomplete.
	if fb.IsComplete() {
		t.Error("FrameBuffer.IsComplete: complete with no attachments")
	}

	color := newTex2D(t, 128, 128, render.RGBA8)
	defer color.Release()
	if err := fb.AttachColorTexture(color, 0); err != nil {
		t.Fatalf("FrameBuffer.AttachColorTexture failed:\n%#v", err)
	}
	if !fb.IsComplete() {
		t.Error("FrameBuffer.IsComplete: incomplete with a matching color attachment")
	}

	// A mismatched attachment makes it incomplete again; completeness
	// is re-evaluated on every query.
	small := newTex2D(t, 64, 64, render.RGBA8)
	defer small.Release()
	if err := fb.AttachColorTexture(small, 1); err != nil {
		t.Fatalf("FrameBuffer.AttachColorTexture failed:\n%#v", err)
	}
	if fb.IsComplete() {
		t.Error("FrameBuffer.IsComplete: complete with mismatched attachment sizes")
	}
}

func TestFramebufferAttachmentRules(t *testing.T) {
	fb, err := ctx.CreateFrameBuffer(64, 64)
	if err != nil {
		t.Fatalf("Context.CreateFrameBuffer failed:\n%#v", err)
	}
	defer fb.Release()

	color := newTex2D(t, 64, 64, render.RGBA8)
	defer color.Release()
	depth := newTex2D(t, 64, 64, render.D24S8)
	defer depth.Release()

	// Out-of-range color index fails rather than clamps.
	if err := fb.AttachColorTexture(color, render.MaxColorAttachments); err == nil {
		t.Error("FrameBuffer.AttachColorTexture: unexpected success out of range")
	}
	if err := fb.AttachColorTexture(color, -1); err == nil {
		t.Error("FrameBuffer.AttachColorTexture: unexpected success with negative index")
	}

	// Depth attachment requires a depth aspect.
	if err := fb.AttachDepthTexture(color); err == nil {
		t.Error("FrameBuffer.AttachDepthTexture: unexpected success with color format")
	}
	if err := fb.AttachDepthTexture(depth); err != nil {
		t.Errorf("FrameBuffer.AttachDepthTexture failed:\n%#v", err)
	}
	// Stencil attachment requires a stencil aspect.
	if err := fb.AttachStencilTexture(color); err == nil {
		t.Error("FrameBuffer.AttachStencilTexture: unexpected success with color format")
	}
	if err := fb.AttachStencilTexture(depth); err != nil {
		t.Errorf("FrameBuffer.AttachStencilTexture failed:\n%#v", err)
	}
	if fb.DepthTexture() != depth || fb.StencilTexture() != depth {
		t.Error("FrameBuffer: attachment accessors mismatch")
	}
}

func TestFramebufferAttachmentRefs(t *testing.T) {
	fb, err := ctx.CreateFrameBuffer(32, 32)
	if err != nil {
		t.Fatalf("Context.CreateFrameBuffer failed:\n%#v", err)
	}
	tex := newTex2D(t, 32, 32, render.RGBA8)

	if err := fb.AttachColorTexture(tex, 0); err != nil {
		t.Fatalf("FrameBuffer.AttachColorTexture failed:\n%#v", err)
	}
	if n := tex.RefCount(); n != 2 {
		t.Errorf("FrameBuffer.AttachColorTexture: have count %d, want 2", n)
	}
	if fb.ColorTexture(0) != tex {
		t.Error("FrameBuffer.ColorTexture: attachment mismatch")
	}

	// Replacing the attachment releases the old share.
	tex2 := newTex2D(t, 32, 32, render.RGBA8)
	defer tex2.Release()
	if err := fb.AttachColorTexture(tex2, 0); err != nil {
		t.Fatalf("FrameBuffer.AttachColorTexture failed:\n%#v", err)
	}
	if n := tex.RefCount(); n != 1 {
		t.Errorf("FrameBuffer.AttachColorTexture: have count %d after replace, want 1", n)
	}

	// The caller's release leaves the texture alive through the
	// framebuffer's share; destroying the framebuffer drops it.
	tex.Release()
	if n := tex2.RefCount(); n != 2 {
		t.Errorf("have count %d, want 2", n)
	}
	fb.Release()
	if n := tex2.RefCount(); n != 1 {
		t.Errorf("FrameBuffer.Release: have count %d, want 1", n)
	}
	if !tex2.IsValid() {
		t.Error("FrameBuffer.Release: destroyed a texture the caller still owns")
	}
}
