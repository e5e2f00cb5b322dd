// Copyright 2026 The Lightrender Authors. All rights reserved.

package render_test

import (
	"testing"

	"lightrender/lr/render"
)

func TestResourceRefCount(t *testing.T) {
	buf, err := ctx.CreateVertexBuffer(64, render.UsageStatic)
	if err != nil {
		t.Fatalf("Context.CreateVertexBuffer failed:\n%#v", err)
	}
	if n := buf.RefCount(); n != 1 {
		t.Errorf("Resource.RefCount: have %d, want 1", n)
	}
	if n := buf.AddRef(); n != 2 {
		t.Errorf("Resource.AddRef: have %d, want 2", n)
	}
	if n := buf.Release(); n != 1 {
		t.Errorf("Resource.Release: have %d, want 1", n)
	}
	if !buf.IsValid() {
		t.Error("Resource.IsValid: invalid while references remain")
	}
	if n := buf.Release(); n != 0 {
		t.Errorf("Resource.Release: have %d, want 0", n)
	}
	if buf.IsValid() {
		t.Error("Resource.IsValid: valid after final Release")
	}
}

func TestResourceBaseState(t *testing.T) {
	// Every factory must hand out a resource whose base was seeded
	// in place: refcount 1, a fresh ID, the right type tag.
	buf, err := ctx.CreateVertexBuffer(16, render.UsageStatic)
	if err != nil {
		t.Fatalf("Context.CreateVertexBuffer failed:\n%#v", err)
	}
	tex, err := ctx.CreateTexture(render.TextureDesc{Kind: render.Tex2D, Width: 4, Height: 4})
	if err != nil {
		t.Fatalf("Context.CreateTexture failed:\n%#v", err)
	}
	fb, err := ctx.CreateFrameBuffer(4, 4)
	if err != nil {
		t.Fatalf("Context.CreateFrameBuffer failed:\n%#v", err)
	}
	fence, err := ctx.CreateFence()
	if err != nil {
		t.Fatalf("Context.CreateFence failed:\n%#v", err)
	}
	all := []struct {
		r   render.Resource
		typ render.ResourceType
	}{
		{buf, render.ResBuffer},
		{tex, render.ResTexture},
		{fb, render.ResFrameBuffer},
		{fence, render.ResFence},
	}
	seen := make(map[uint64]bool)
	for _, x := range all {
		if n := x.r.RefCount(); n != 1 {
			t.Errorf("%s: have refcount %d, want 1", x.typ, n)
		}
		if x.r.Type() != x.typ {
			t.Errorf("Resource.Type: have %s, want %s", x.r.Type(), x.typ)
		}
		if id := x.r.ID(); id == 0 || seen[id] {
			t.Errorf("%s: ID %d not unique and non-zero", x.typ, id)
		} else {
			seen[id] = true
		}
		if !x.r.IsValid() {
			t.Errorf("%s: invalid after creation", x.typ)
		}
	}
	for _, x := range all {
		if n := x.r.Release(); n != 0 {
			t.Errorf("%s: have %d references after release, want 0", x.typ, n)
		}
	}
}

func TestResourceID(t *testing.T) {
	a, err := ctx.CreateVertexBuffer(16, render.UsageStatic)
	if err != nil {
		t.Fatalf("Context.CreateVertexBuffer failed:\n%#v", err)
	}
	defer a.Release()
	b, err := ctx.CreateVertexBuffer(16, render.UsageStatic)
	if err != nil {
		t.Fatalf("Context.CreateVertexBuffer failed:\n%#v", err)
	}
	defer b.Release()
	if a.ID() == 0 || b.ID() == 0 {
		t.Error("Resource.ID: zero ID assigned")
	}
	if a.ID() >= b.ID() {
		t.Error("Resource.ID: IDs are not monotonic")
	}
	if a.Type() != render.ResBuffer {
		t.Error("Resource.Type: unexpected type")
	}
}

func TestResourceName(t *testing.T) {
	buf, err := ctx.CreateVertexBuffer(16, render.UsageStatic)
	if err != nil {
		t.Fatalf("Context.CreateVertexBuffer failed:\n%#v", err)
	}
	defer buf.Release()
	if buf.Name() != "" {
		t.Error("Resource.Name: non-empty default name")
	}
	buf.SetName("staging")
	if buf.Name() != "staging" {
		t.Error("Resource.Name: name mismatch after SetName")
	}
}

func TestRefOwnShare(t *testing.T) {
	buf, err := ctx.CreateVertexBuffer(16, render.UsageStatic)
	if err != nil {
		t.Fatalf("Context.CreateVertexBuffer failed:\n%#v", err)
	}

	// Own adopts the caller's reference without inflating the count.
	owned := render.Own(buf)
	if !owned.Valid() {
		t.Fatal("Own: Ref not valid")
	}
	if n := buf.RefCount(); n != 1 {
		t.Errorf("Own: have count %d, want 1", n)
	}

	// Share takes an additional reference.
	shared := render.Share(buf)
	if n := buf.RefCount(); n != 2 {
		t.Errorf("Share: have count %d, want 2", n)
	}

	// Clone takes another.
	clone := shared.Clone()
	if n := buf.RefCount(); n != 3 {
		t.Errorf("Ref.Clone: have count %d, want 3", n)
	}
	if clone.Get() != buf {
		t.Error("Ref.Get: resource mismatch")
	}

	clone.Release()
	shared.Release()
	if n := buf.RefCount(); n != 1 {
		t.Errorf("Ref.Release: have count %d, want 1", n)
	}
	if !buf.IsValid() {
		t.Error("Ref.Release: resource destroyed while owned")
	}
	owned.Release()
	if buf.IsValid() {
		t.Error("Ref.Release: resource valid after last reference")
	}

	// Releasing an empty Ref is a no-op.
	owned.Release()
}
