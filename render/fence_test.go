// Copyright 2026 The Lightrender Authors. All rights reserved.

package render_test

import (
	"testing"
	"time"

	"lightrender/lr/render"
)

func TestFenceCycle(t *testing.T) {
	f, err := ctx.CreateFence()
	if err != nil {
		t.Fatalf("Context.CreateFence failed:\n%#v", err)
	}
	defer f.Release()

	// A fence signals and resets any number of times.
	for i := 0; i < 3; i++ {
		st, err := f.Status()
		if err != nil {
			t.Fatalf("Fence.Status failed:\n%#v", err)
		}
		if st != render.Unsignaled {
			t.Fatal("Fence.Status: signaled before Signal")
		}
		if err := f.Signal(); err != nil {
			t.Fatalf("Fence.Signal failed:\n%#v", err)
		}
		st, err = f.Status()
		if err != nil {
			t.Fatalf("Fence.Status failed:\n%#v", err)
		}
		if st != render.Signaled {
			t.Fatal("Fence.Status: unsignaled after Signal")
		}
		if err := f.Reset(); err != nil {
			t.Fatalf("Fence.Reset failed:\n%#v", err)
		}
	}
}

func TestFenceWait(t *testing.T) {
	f, err := ctx.CreateFence()
	if err != nil {
		t.Fatalf("Context.CreateFence failed:\n%#v", err)
	}
	defer f.Release()

	// Waiting on an unsignaled fence times out.
	ok, err := f.Wait(time.Millisecond)
	if err != nil {
		t.Fatalf("Fence.Wait failed:\n%#v", err)
	}
	if ok {
		t.Error("Fence.Wait: reached an unsignaled marker")
	}

	if err := f.Signal(); err != nil {
		t.Fatalf("Fence.Signal failed:\n%#v", err)
	}
	ok, err = f.Wait(time.Second)
	if err != nil {
		t.Fatalf("Fence.Wait failed:\n%#v", err)
	}
	if !ok {
		t.Error("Fence.Wait: timed out on a signaled marker")
	}
	// A signaled fence satisfies an unbounded wait immediately.
	ok, err = f.Wait(-1)
	if err != nil {
		t.Fatalf("Fence.Wait failed:\n%#v", err)
	}
	if !ok {
		t.Error("Fence.Wait: unbounded wait not satisfied")
	}

	ok, err = ctx.WaitFence(f, time.Second)
	if err != nil {
		t.Fatalf("Context.WaitFence failed:\n%#v", err)
	}
	if !ok {
		t.Error("Context.WaitFence: timed out on a signaled marker")
	}
}

func TestFenceInvalid(t *testing.T) {
	f, err := ctx.CreateFence()
	if err != nil {
		t.Fatalf("Context.CreateFence failed:\n%#v", err)
	}
	f.Release()

	if err := f.Signal(); err == nil {
		t.Error("Fence.Signal: unexpected success on released fence")
	}
	if _, err := f.Wait(0); err == nil {
		t.Error("Fence.Wait: unexpected success on released fence")
	}
	if err := f.Reset(); err == nil {
		t.Error("Fence.Reset: unexpected success on released fence")
	}
}
