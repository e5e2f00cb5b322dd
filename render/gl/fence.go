// Copyright 2026 The Lightrender Authors. All rights reserved.

package gl

import (
	"time"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"lightrender/lr/lrerr"
	"lightrender/lr/render"
)

// fence implements render.FenceImpl on GL sync objects.
// The native sync is created by Signal, not at construction; a GL
// fence marks a point in the command stream and has no unsignaled
// native form.
type fence struct {
	sync uintptr
}

func (c *context) NewFence() (render.FenceImpl, error) {
	return &fence{}, nil
}

// NativeHandle identifies the fence itself rather than the sync
// object, which does not exist until the first Signal.
func (f *fence) NativeHandle() render.Handle {
	return render.PtrHandle(unsafe.Pointer(f))
}

func (f *fence) Destroy() {
	if f.sync != 0 {
		gl.DeleteSync(f.sync)
		f.sync = 0
	}
}

func (f *fence) Signal() error {
	if f.sync != 0 {
		gl.DeleteSync(f.sync)
	}
	f.sync = gl.FenceSync(gl.SYNC_GPU_COMMANDS_COMPLETE, 0)
	if f.sync == 0 {
		return lrerr.New(lrerr.FenceError, lrerr.SeverityError,
			"gl: FenceSync failed")
	}
	return checkError("Signal")
}

func (f *fence) Wait(timeout time.Duration) (bool, error) {
	if f.sync == 0 {
		return false, nil
	}
	ns := uint64(gl.TIMEOUT_IGNORED)
	if timeout >= 0 {
		ns = uint64(timeout.Nanoseconds())
	}
	switch gl.ClientWaitSync(f.sync, gl.SYNC_FLUSH_COMMANDS_BIT, ns) {
	case gl.ALREADY_SIGNALED, gl.CONDITION_SATISFIED:
		return true, nil
	case gl.TIMEOUT_EXPIRED:
		return false, nil
	}
	return false, lrerr.New(lrerr.FenceError, lrerr.SeverityError,
		"gl: ClientWaitSync failed")
}

func (f *fence) Status() (render.FenceStatus, error) {
	if f.sync == 0 {
		return render.Unsignaled, nil
	}
	var status, n int32
	gl.GetSynciv(f.sync, gl.SYNC_STATUS, 1, &n, &status)
	if err := checkError("Status"); err != nil {
		return render.Unsignaled, err
	}
	if status == gl.SIGNALED {
		return render.Signaled, nil
	}
	return render.Unsignaled, nil
}

// Reset discards the sync object; the next Signal creates a new one.
func (f *fence) Reset() error {
	if f.sync != 0 {
		gl.DeleteSync(f.sync)
		f.sync = 0
	}
	return nil
}
