// Copyright 2026 The Lightrender Authors. All rights reserved.

package render

import (
	"time"
	"unsafe"
)

// HandleKind tags the shape of a native handle.
type HandleKind int

// Handle kinds.
const (
	// HandleNone means no native object.
	HandleNone HandleKind = iota
	// HandleGL is an integer object name (OpenGL/OpenGL ES).
	HandleGL
	// HandlePtr is an opaque pointer (Metal objects, sync handles).
	HandlePtr
)

// Handle identifies a native backend object.
// It is a tagged union over the handle shapes backends actually use;
// each backend constructs only the variant it understands.
type Handle struct {
	kind HandleKind
	id   uint32
	ptr  unsafe.Pointer
}

// GLHandle wraps an integer object name.
func GLHandle(id uint32) Handle {
	return Handle{kind: HandleGL, id: id}
}

// PtrHandle wraps an opaque pointer.
func PtrHandle(p unsafe.Pointer) Handle {
	return Handle{kind: HandlePtr, ptr: p}
}

// Kind returns the handle's shape.
func (h Handle) Kind() HandleKind { return h.kind }

// GL returns the integer object name of a HandleGL handle.
func (h Handle) GL() uint32 { return h.id }

// Ptr returns the pointer of a HandlePtr handle.
func (h Handle) Ptr() unsafe.Pointer { return h.ptr }

// IsZero reports whether h refers to no native object.
// A HandleGL handle with name 0 and a HandlePtr handle with a nil
// pointer are both zero.
func (h Handle) IsZero() bool {
	switch h.kind {
	case HandleGL:
		return h.id == 0
	case HandlePtr:
		return h.ptr == nil
	}
	return true
}

// Impl is the contract shared by every backend sub-implementation.
// A front-end resource exclusively owns exactly one Impl; they are
// destroyed together.
type Impl interface {
	// NativeHandle returns the backend object's handle.
	NativeHandle() Handle

	// Destroy releases the native object.
	// The Impl must not be used afterwards.
	Destroy()
}

// BufferImpl is the backend contract for buffers.
type BufferImpl interface {
	Impl

	// UpdateData copies len(data) bytes into the buffer starting
	// at byte offset. The caller must ensure the range does not
	// exceed the buffer's allocated size; behavior otherwise is
	// driver-dependent.
	UpdateData(data []byte, offset int) error

	// Map exposes the buffer's driver-managed memory.
	// The returned slice is valid only until Unmap.
	Map(access MapAccess) ([]byte, error)

	// Unmap invalidates the mapping established by Map.
	Unmap() error

	// SetVertexLayout associates a vertex layout with the buffer.
	// Meaningful only for vertex buffers.
	SetVertexLayout(layout VertexLayout) error
}

// TextureImpl is the backend contract for textures.
type TextureImpl interface {
	Impl

	// UpdateData replaces texel data. A nil region replaces the
	// entire top mip level.
	UpdateData(data []byte, region *Region) error

	// GenerateMipmaps derives all levels below 0 from level 0's
	// current contents.
	GenerateMipmaps() error

	// Bind attaches the texture to a sampling unit.
	Bind(slot int) error

	// Unbind detaches the texture from a sampling unit.
	Unbind(slot int) error

	// Readback copies level 0 into host memory.
	// into must hold width*height*format.Size() bytes.
	Readback(into []byte) error
}

// ShaderImpl is the backend contract for single shader stages.
type ShaderImpl interface {
	Impl

	// Stage returns the stage the shader was created for.
	Stage() ShaderStage

	// Compile compiles source text. One-shot.
	Compile(source string) error

	// CompileLog returns the diagnostic text of the last compile.
	CompileLog() string
}

// ShaderProgramImpl is the backend contract for linked programs.
type ShaderProgramImpl interface {
	Impl

	// Link links the shaders attached at creation. One-shot.
	Link() error

	// LinkLog returns the diagnostic text of the last link.
	LinkLog() string

	// UniformLocation resolves a uniform name.
	// It returns a negative location when the name does not
	// resolve.
	UniformLocation(name string) int

	// Use makes the program current.
	Use() error

	// Uniform setters by value shape. Behavior with a negative
	// location is a no-op.
	SetInt(loc int, v int32) error
	SetFloat(loc int, v float32) error
	SetVec2(loc int, v [2]float32) error
	SetVec3(loc int, v [3]float32) error
	SetVec4(loc int, v [4]float32) error
	SetMat3(loc int, v [9]float32, transpose bool) error
	SetMat4(loc int, v [16]float32, transpose bool) error
}

// FramebufferImpl is the backend contract for framebuffers.
type FramebufferImpl interface {
	Impl

	// AttachColor sets the color attachment at index.
	AttachColor(index int, tex TextureImpl) error

	// AttachDepth sets the depth attachment.
	AttachDepth(tex TextureImpl) error

	// AttachStencil sets the stencil attachment.
	AttachStencil(tex TextureImpl) error

	// IsComplete validates attachment compatibility.
	IsComplete() bool
}

// PipelineStateImpl is the backend contract for pipeline states.
type PipelineStateImpl interface {
	Impl

	// Apply pushes the pipeline's fixed-function state to the
	// backend. Within the depth group, the depth write mask must
	// be applied before depth test enable.
	Apply() error
}

// FenceStatus is the state of a fence.
type FenceStatus int

// Fence states.
const (
	Unsignaled FenceStatus = iota
	Signaled
)

// FenceImpl is the backend contract for fences.
type FenceImpl interface {
	Impl

	// Signal inserts a marker at the current point in the
	// command stream. It does not block.
	Signal() error

	// Wait blocks until the most recently inserted marker is
	// reached or timeout elapses. A negative timeout waits
	// forever. It reports whether the marker was reached.
	Wait(timeout time.Duration) (bool, error)

	// Status polls without blocking.
	Status() (FenceStatus, error)

	// Reset returns the fence to Unsignaled. Backends whose
	// native primitive cannot be reset in place recreate it
	// transparently.
	Reset() error
}

// ContextImpl is the backend contract for render contexts.
// It is the sole factory for every other sub-implementation of its
// backend, and carries the frame, pass, bind, draw and sync
// operations the front-end Context dispatches to.
type ContextImpl interface {
	// Backend returns the backend tag.
	Backend() Backend

	// Limits returns the implementation limits.
	// They are immutable for the lifetime of the context.
	Limits() Limits

	// Sub-implementation factories.
	NewBuffer(desc BufferDesc) (BufferImpl, error)
	NewTexture(desc TextureDesc) (TextureImpl, error)
	NewShader(stage ShaderStage) (ShaderImpl, error)
	NewProgram(shaders []ShaderImpl) (ShaderProgramImpl, error)
	NewFramebuffer(width, height int) (FramebufferImpl, error)
	NewPipelineState(desc PipelineDesc, prog ShaderProgramImpl) (PipelineStateImpl, error)
	NewFence() (FenceImpl, error)

	// Frame and pass sequencing.
	BeginFrame() error
	EndFrame() error
	// BeginRenderPass binds fb as the render target.
	// A nil fb selects the default (on-screen) target.
	BeginRenderPass(fb FramebufferImpl) error
	// EndRenderPass restores the target that was bound before the
	// matching BeginRenderPass.
	EndRenderPass() error

	// Binds.
	SetPipelineState(ps PipelineStateImpl) error
	SetVertexBuffer(buf BufferImpl) error
	SetIndexBuffer(buf BufferImpl, format IndexFmt) error
	SetUniformBuffer(buf BufferImpl, binding int) error
	SetTexture(tex TextureImpl, slot int) error

	// Draws. Counts and offsets are taken as given; out-of-range
	// values relative to bound buffers are driver-detected.
	Draw(first, count int) error
	DrawIndexed(count, offset int) error
	DrawInstanced(first, count, instances int) error
	DrawIndexedInstanced(count, offset, instances int) error

	// Flush ensures submitted work reaches the driver.
	Flush() error

	// WaitIdle blocks until all submitted GPU work completes.
	// It is strictly stronger than Flush.
	WaitIdle() error

	// Destroy releases the native context.
	Destroy()
}
