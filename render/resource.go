// Copyright 2026 The Lightrender Authors. All rights reserved.

package render

import (
	"sync/atomic"
)

// ResourceType tags the concrete kind of a resource.
type ResourceType int

// Resource types.
const (
	ResBuffer ResourceType = iota
	ResTexture
	ResShader
	ResShaderProgram
	ResFrameBuffer
	ResPipelineState
	ResFence
)

// String returns the resource type name.
func (t ResourceType) String() string {
	switch t {
	case ResBuffer:
		return "buffer"
	case ResTexture:
		return "texture"
	case ResShader:
		return "shader"
	case ResShaderProgram:
		return "shader-program"
	case ResFrameBuffer:
		return "framebuffer"
	case ResPipelineState:
		return "pipeline-state"
	case ResFence:
		return "fence"
	}
	return "invalid"
}

// Resource is the base contract of every GPU-backed object.
// Resources are created only by a Context's factory methods, never
// directly. The reference count starts at 1, representing the
// caller's ownership; the object destroys itself, releasing its
// backend implementation first, when the count reaches zero.
type Resource interface {
	// ID returns the process-unique resource ID.
	// IDs are monotonic and never reused within a process.
	ID() uint64

	// Type returns the resource type tag.
	Type() ResourceType

	// Name returns the debug name.
	Name() string

	// SetName sets the debug name.
	SetName(name string)

	// AddRef atomically increments the reference count and
	// returns the new count.
	AddRef() int32

	// Release atomically decrements the reference count and
	// returns the new count. On the transition to zero the
	// backend implementation is destroyed and the resource
	// becomes invalid.
	Release() int32

	// RefCount reads the current count. Advisory only; it is not
	// a synchronization point.
	RefCount() int32

	// IsValid reports whether the backend implementation was
	// successfully created and its native handle is non-zero.
	IsValid() bool
}

// Process-wide ID counter. The first assigned ID is 1.
var lastID atomic.Uint64

func nextID() uint64 { return lastID.Add(1) }

// resource is the embedded base of every front-end resource.
// Only the reference count is safe for concurrent use; everything
// else follows the API's single-threaded contract.
type resource struct {
	id    uint64
	typ   ResourceType
	name  string
	refs  atomic.Int32
	valid bool
	impl  Impl
}

// init seeds the embedded base in place with a fresh ID, the type
// tag and refcount 1. In place because the atomic count must never
// be copied. The resource is not valid until complete is called.
func (r *resource) init(typ ResourceType) {
	r.id = nextID()
	r.typ = typ
	r.refs.Store(1)
}

// complete installs the successfully created backend implementation
// and marks the resource valid.
func (r *resource) complete(impl Impl) {
	r.impl = impl
	r.valid = true
}

// destroy releases the backend implementation and invalidates the
// resource. Backend first, front end second.
func (r *resource) destroy() {
	if r.impl != nil {
		r.impl.Destroy()
		r.impl = nil
	}
	r.valid = false
}

func (r *resource) ID() uint64         { return r.id }
func (r *resource) Type() ResourceType { return r.typ }
func (r *resource) Name() string       { return r.name }
func (r *resource) SetName(name string) {
	r.name = name
}

func (r *resource) AddRef() int32 { return r.refs.Add(1) }

func (r *resource) Release() int32 {
	n := r.refs.Add(-1)
	if n == 0 {
		r.destroy()
	}
	return n
}

func (r *resource) RefCount() int32 { return r.refs.Load() }

func (r *resource) IsValid() bool {
	return r.valid && r.impl != nil && !r.impl.NativeHandle().IsZero()
}

// Ref is a shared, non-owning handle to a resource.
// The Own/Share asymmetry is deliberate: adopting a freshly created
// resource must not inflate its count, while sharing one must.
type Ref[T Resource] struct {
	p  T
	ok bool
}

// Own adopts p without incrementing its reference count.
// The Ref assumes the ownership the caller already holds.
func Own[T Resource](p T) Ref[T] {
	return Ref[T]{p: p, ok: any(p) != nil}
}

// Share wraps p and increments its reference count.
func Share[T Resource](p T) Ref[T] {
	r := Ref[T]{p: p, ok: any(p) != nil}
	if r.ok {
		p.AddRef()
	}
	return r
}

// Get returns the held resource.
func (r Ref[T]) Get() T { return r.p }

// Valid reports whether the Ref holds a resource.
func (r Ref[T]) Valid() bool { return r.ok }

// Clone returns a new Ref sharing the resource, incrementing the
// reference count.
func (r Ref[T]) Clone() Ref[T] {
	if r.ok {
		r.p.AddRef()
	}
	return r
}

// Release drops the Ref's share of the resource and empties the Ref.
// Releasing an empty Ref has no effect.
func (r *Ref[T]) Release() {
	if r.ok {
		r.p.Release()
		var zero T
		r.p = zero
		r.ok = false
	}
}
