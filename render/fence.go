// Copyright 2026 The Lightrender Authors. All rights reserved.

package render

import (
	"time"

	"lightrender/lr/lrerr"
)

// Fence is a binary GPU-to-CPU signal:
// Unsignaled -> (GPU reaches the marker) -> Signaled -> (Reset) ->
// Unsignaled, for any number of cycles.
type Fence struct {
	resource
}

func (f *Fence) impl() FenceImpl { return f.resource.impl.(FenceImpl) }

// Signal inserts a GPU-side marker at the current point in the
// command stream. It does not block.
func (f *Fence) Signal() error {
	if !f.IsValid() {
		return lrerr.New(lrerr.ResourceInvalid, lrerr.SeverityError, "fence not valid")
	}
	return f.impl().Signal()
}

// Wait blocks the calling goroutine until the most recently inserted
// marker is reached by the GPU or timeout elapses, reporting whether
// the marker was reached. A negative timeout waits forever.
func (f *Fence) Wait(timeout time.Duration) (bool, error) {
	if !f.IsValid() {
		return false, lrerr.New(lrerr.ResourceInvalid, lrerr.SeverityError, "fence not valid")
	}
	return f.impl().Wait(timeout)
}

// Status polls the fence without blocking.
func (f *Fence) Status() (FenceStatus, error) {
	if !f.IsValid() {
		return Unsignaled, lrerr.New(lrerr.ResourceInvalid, lrerr.SeverityError, "fence not valid")
	}
	return f.impl().Status()
}

// Reset returns the fence to Unsignaled. On backends whose native
// primitive cannot be reset in place the underlying handle is
// destroyed and recreated; callers see an opaque reset either way.
func (f *Fence) Reset() error {
	if !f.IsValid() {
		return lrerr.New(lrerr.ResourceInvalid, lrerr.SeverityError, "fence not valid")
	}
	return f.impl().Reset()
}
