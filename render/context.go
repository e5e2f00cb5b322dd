// Copyright 2026 The Lightrender Authors. All rights reserved.

package render

import (
	"time"

	"lightrender/lr/log"
	"lightrender/lr/lrerr"
)

var ctxLog = log.New("render")

// Context is the façade over one backend implementation.
// It creates and destroys all resources and sequences frame, pass,
// bind and draw commands. A Context and everything created from it
// must be used from the goroutine that owns the native graphics
// context.
type Context struct {
	backend Backend
	width   int
	height  int
	impl    ContextImpl

	// Current bindings, tracked for redundant-bind elision and
	// pass-restore bookkeeping.
	curPipeline *PipelineState
	curTarget   *FrameBuffer
	// prevTarget is the target that was bound when the current
	// pass began; EndRenderPass restores it (it is not always the
	// default target).
	prevTarget *FrameBuffer
	inPass     bool
	inFrame    bool

	lastErr error
	closed  bool
}

// New creates a context for the requested backend.
// BackendAuto probes registered drivers in priority order. If no
// matching driver is available the call fails cleanly with a
// BackendUnavailable error.
func New(cfg Config) (*Context, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, lrerr.Errorf(lrerr.InvalidArgument, lrerr.SeverityError,
			"surface dimensions %dx%d", cfg.Width, cfg.Height)
	}
	impl, err := open(cfg)
	if err != nil {
		return nil, err
	}
	ctxLog.Infof("context created: backend %s, %dx%d", impl.Backend(), cfg.Width, cfg.Height)
	return &Context{
		backend: impl.Backend(),
		width:   cfg.Width,
		height:  cfg.Height,
		impl:    impl,
	}, nil
}

// Backend returns the active backend tag.
func (c *Context) Backend() Backend { return c.backend }

// Width returns the surface width.
func (c *Context) Width() int { return c.width }

// Height returns the surface height.
func (c *Context) Height() int { return c.height }

// Limits returns the active backend's implementation limits.
func (c *Context) Limits() Limits { return c.impl.Limits() }

// LastError returns the error of the most recent failed operation on
// this context, or nil. The API is single-threaded by contract, so
// per-context state is the analogue of per-thread last-error.
func (c *Context) LastError() error { return c.lastErr }

// HasError reports whether any operation has failed since the last
// ClearError.
func (c *Context) HasError() bool { return c.lastErr != nil }

// ClearError resets the last-error state.
func (c *Context) ClearError() { c.lastErr = nil }

// fail records and returns err.
func (c *Context) fail(err error) error {
	if err != nil {
		c.lastErr = err
	}
	return err
}

// Shutdown destroys the native context and stops all future
// submission. It is idempotent: calling it on an already-shut-down
// context has no effect.
func (c *Context) Shutdown() {
	if c.closed {
		return
	}
	c.closed = true
	c.curPipeline = nil
	c.curTarget = nil
	c.prevTarget = nil
	if c.impl != nil {
		c.impl.Destroy()
		c.impl = nil
	}
	ctxLog.Infof("context shut down: backend %s", c.backend)
}

func (c *Context) live() error {
	if c.closed || c.impl == nil {
		return lrerr.New(lrerr.NotInitialized, lrerr.SeverityError, "context is shut down")
	}
	return nil
}

// Resource creation. Each factory asks the active ContextImpl for a
// backend sub-implementation, wraps it in the front-end type and
// returns the wrapper with refcount 1 owned by the caller. On any
// failure the sub-implementation is destroyed before the error
// propagates; no half-valid resource is ever returned.

// CreateBuffer creates a buffer of any kind from a descriptor.
func (c *Context) CreateBuffer(desc BufferDesc) (*Buffer, error) {
	if err := c.live(); err != nil {
		return nil, c.fail(err)
	}
	if desc.Size <= 0 {
		return nil, c.fail(lrerr.Errorf(lrerr.InvalidArgument, lrerr.SeverityError,
			"buffer size %d", desc.Size))
	}
	if desc.Kind == IndexBufferKind && desc.Index != Index16 && desc.Index != Index32 {
		return nil, c.fail(lrerr.New(lrerr.InvalidArgument, lrerr.SeverityError,
			"index buffer needs a 16- or 32-bit element width"))
	}
	impl, err := c.impl.NewBuffer(desc)
	if err != nil {
		return nil, c.fail(lrerr.Wrap(lrerr.ResourceCreationFailed, lrerr.SeverityError, err,
			"buffer creation failed"))
	}
	b := &Buffer{
		kind:    desc.Kind,
		size:    desc.Size,
		usage:   desc.Usage,
		index:   desc.Index,
		binding: desc.Binding,
	}
	b.init(ResBuffer)
	b.complete(impl)
	return b, nil
}

// CreateVertexBuffer creates a vertex buffer.
func (c *Context) CreateVertexBuffer(size int, usage Usage) (*Buffer, error) {
	return c.CreateBuffer(BufferDesc{Kind: VertexBufferKind, Size: size, Usage: usage})
}

// CreateIndexBuffer creates an index buffer.
func (c *Context) CreateIndexBuffer(size int, usage Usage, format IndexFmt) (*Buffer, error) {
	return c.CreateBuffer(BufferDesc{Kind: IndexBufferKind, Size: size, Usage: usage, Index: format})
}

// CreateUniformBuffer creates a uniform buffer bound at binding.
func (c *Context) CreateUniformBuffer(size int, usage Usage, binding int) (*Buffer, error) {
	return c.CreateBuffer(BufferDesc{Kind: UniformBufferKind, Size: size, Usage: usage, Binding: binding})
}

// CreateTexture creates a texture from a descriptor.
func (c *Context) CreateTexture(desc TextureDesc) (*Texture, error) {
	if err := c.live(); err != nil {
		return nil, c.fail(err)
	}
	if desc.Width <= 0 || desc.Height <= 0 {
		return nil, c.fail(lrerr.Errorf(lrerr.InvalidArgument, lrerr.SeverityError,
			"texture dimensions %dx%d", desc.Width, desc.Height))
	}
	if max := c.impl.Limits().MaxTextureSize; max > 0 && (desc.Width > max || desc.Height > max) {
		return nil, c.fail(lrerr.Errorf(lrerr.TextureSizeExceeded, lrerr.SeverityError,
			"texture dimensions %dx%d exceed limit %d", desc.Width, desc.Height, max))
	}
	if desc.Depth <= 0 {
		desc.Depth = 1
	}
	if desc.MipLevels <= 0 {
		desc.MipLevels = 1
	}
	if desc.Samples <= 0 {
		desc.Samples = 1
	}
	impl, err := c.impl.NewTexture(desc)
	if err != nil {
		return nil, c.fail(lrerr.Wrap(lrerr.TextureCreationFailed, lrerr.SeverityError, err,
			"texture creation failed"))
	}
	t := &Texture{
		kind:      desc.Kind,
		width:     desc.Width,
		height:    desc.Height,
		depth:     desc.Depth,
		format:    desc.Format,
		mipLevels: desc.MipLevels,
		samples:   desc.Samples,
	}
	t.init(ResTexture)
	t.complete(impl)
	return t, nil
}

// CreateShader creates an uncompiled shader for one stage.
func (c *Context) CreateShader(stage ShaderStage) (*Shader, error) {
	if err := c.live(); err != nil {
		return nil, c.fail(err)
	}
	impl, err := c.impl.NewShader(stage)
	if err != nil {
		return nil, c.fail(lrerr.Wrap(lrerr.ResourceCreationFailed, lrerr.SeverityError, err,
			stage.String()+" shader creation failed"))
	}
	s := &Shader{stage: stage}
	s.init(ResShader)
	s.complete(impl)
	return s, nil
}

// CreateShaderProgram creates an unlinked program from 2-3 compiled
// shaders (vertex + fragment, optionally geometry where the backend
// supports it).
func (c *Context) CreateShaderProgram(shaders ...*Shader) (*ShaderProgram, error) {
	if err := c.live(); err != nil {
		return nil, c.fail(err)
	}
	if len(shaders) < 2 || len(shaders) > 3 {
		return nil, c.fail(lrerr.Errorf(lrerr.InvalidArgument, lrerr.SeverityError,
			"program needs 2-3 shaders, got %d", len(shaders)))
	}
	impls := make([]ShaderImpl, len(shaders))
	for i, s := range shaders {
		if s == nil || !s.IsCompiled() {
			return nil, c.fail(lrerr.New(lrerr.ShaderNotCompiled, lrerr.SeverityError,
				"program requires compiled shaders"))
		}
		impls[i] = s.impl()
	}
	impl, err := c.impl.NewProgram(impls)
	if err != nil {
		return nil, c.fail(lrerr.Wrap(lrerr.ResourceCreationFailed, lrerr.SeverityError, err,
			"program creation failed"))
	}
	p := &ShaderProgram{}
	p.init(ResShaderProgram)
	p.complete(impl)
	return p, nil
}

// CreateFrameBuffer creates an offscreen render target with no
// attachments. It is incomplete until compatible attachments are
// set.
func (c *Context) CreateFrameBuffer(width, height int) (*FrameBuffer, error) {
	if err := c.live(); err != nil {
		return nil, c.fail(err)
	}
	if width <= 0 || height <= 0 {
		return nil, c.fail(lrerr.Errorf(lrerr.InvalidArgument, lrerr.SeverityError,
			"framebuffer dimensions %dx%d", width, height))
	}
	impl, err := c.impl.NewFramebuffer(width, height)
	if err != nil {
		return nil, c.fail(lrerr.Wrap(lrerr.ResourceCreationFailed, lrerr.SeverityError, err,
			"framebuffer creation failed"))
	}
	f := &FrameBuffer{
		width:  width,
		height: height,
	}
	f.init(ResFrameBuffer)
	f.complete(impl)
	return f, nil
}

// CreatePipelineState creates an immutable pipeline state binding
// prog. The pipeline shares ownership of the program.
func (c *Context) CreatePipelineState(desc PipelineDesc, prog *ShaderProgram) (*PipelineState, error) {
	if err := c.live(); err != nil {
		return nil, c.fail(err)
	}
	if prog == nil || !prog.IsLinked() {
		return nil, c.fail(lrerr.New(lrerr.PipelineStateInvalid, lrerr.SeverityError,
			"pipeline requires a linked program"))
	}
	impl, err := c.impl.NewPipelineState(desc, prog.impl())
	if err != nil {
		return nil, c.fail(lrerr.Wrap(lrerr.PipelineCreationFailed, lrerr.SeverityError, err,
			"pipeline creation failed"))
	}
	prog.AddRef()
	p := &PipelineState{
		desc:    desc,
		program: prog,
	}
	p.init(ResPipelineState)
	p.complete(impl)
	return p, nil
}

// CreateFence creates an unsignaled fence.
func (c *Context) CreateFence() (*Fence, error) {
	if err := c.live(); err != nil {
		return nil, c.fail(err)
	}
	impl, err := c.impl.NewFence()
	if err != nil {
		return nil, c.fail(lrerr.Wrap(lrerr.ResourceCreationFailed, lrerr.SeverityError, err,
			"fence creation failed"))
	}
	f := &Fence{}
	f.init(ResFence)
	f.complete(impl)
	return f, nil
}

// Frame and pass sequencing.

// BeginFrame starts the per-frame cycle.
func (c *Context) BeginFrame() error {
	if err := c.live(); err != nil {
		return c.fail(err)
	}
	if c.inFrame {
		return c.fail(lrerr.New(lrerr.InvalidOperation, lrerr.SeverityError,
			"BeginFrame inside an open frame"))
	}
	if err := c.impl.BeginFrame(); err != nil {
		return c.fail(err)
	}
	c.inFrame = true
	return nil
}

// EndFrame presents the frame.
func (c *Context) EndFrame() error {
	if err := c.live(); err != nil {
		return c.fail(err)
	}
	if !c.inFrame {
		return c.fail(lrerr.New(lrerr.InvalidOperation, lrerr.SeverityError,
			"EndFrame without BeginFrame"))
	}
	if c.inPass {
		return c.fail(lrerr.New(lrerr.InvalidOperation, lrerr.SeverityError,
			"EndFrame inside an open render pass"))
	}
	c.inFrame = false
	if err := c.impl.EndFrame(); err != nil {
		return c.fail(err)
	}
	return nil
}

// Present is a synonym for EndFrame.
func (c *Context) Present() error { return c.EndFrame() }

// BeginRenderPass binds fb as the render target for subsequent
// draws. A nil fb selects the default (on-screen) target. Passes
// must be balanced: starting a second pass before ending the first
// is a caller error.
func (c *Context) BeginRenderPass(fb *FrameBuffer) error {
	if err := c.live(); err != nil {
		return c.fail(err)
	}
	if c.inPass {
		return c.fail(lrerr.New(lrerr.InvalidOperation, lrerr.SeverityError,
			"render pass already open"))
	}
	var impl FramebufferImpl
	if fb != nil {
		if !fb.IsComplete() {
			return c.fail(lrerr.New(lrerr.FramebufferIncomplete, lrerr.SeverityError,
				"render pass target is incomplete"))
		}
		impl = fb.impl()
	}
	if err := c.impl.BeginRenderPass(impl); err != nil {
		return c.fail(err)
	}
	c.prevTarget = c.curTarget
	c.curTarget = fb
	c.inPass = true
	return nil
}

// EndRenderPass ends the open pass and restores the target that was
// bound before the matching BeginRenderPass. The restored target is
// whatever was bound before, not unconditionally the default one;
// the default target is not always handle zero.
func (c *Context) EndRenderPass() error {
	if err := c.live(); err != nil {
		return c.fail(err)
	}
	if !c.inPass {
		return c.fail(lrerr.New(lrerr.InvalidOperation, lrerr.SeverityError,
			"EndRenderPass without BeginRenderPass"))
	}
	if err := c.impl.EndRenderPass(); err != nil {
		return c.fail(err)
	}
	c.curTarget = c.prevTarget
	c.prevTarget = nil
	c.inPass = false
	return nil
}

// Binds.

// SetPipelineState makes ps the current pipeline and applies its
// fixed-function state. Binding a pipeline implies binding its
// shader program; callers must not separately call Use.
func (c *Context) SetPipelineState(ps *PipelineState) error {
	if err := c.live(); err != nil {
		return c.fail(err)
	}
	if ps == nil || !ps.IsValid() {
		return c.fail(lrerr.New(lrerr.PipelineStateInvalid, lrerr.SeverityError,
			"pipeline state not valid"))
	}
	if ps == c.curPipeline {
		return nil
	}
	if err := c.impl.SetPipelineState(ps.impl()); err != nil {
		return c.fail(err)
	}
	if err := ps.Program().impl().Use(); err != nil {
		return c.fail(err)
	}
	c.curPipeline = ps
	return nil
}

// CurrentPipelineState returns the presently bound pipeline, or nil.
func (c *Context) CurrentPipelineState() *PipelineState { return c.curPipeline }

// CurrentTarget returns the presently bound framebuffer, or nil for
// the default target.
func (c *Context) CurrentTarget() *FrameBuffer { return c.curTarget }

// SetVertexBuffer binds buf as the vertex source.
func (c *Context) SetVertexBuffer(buf *Buffer) error {
	return c.bindBuffer(buf, VertexBufferKind, func(impl BufferImpl) error {
		return c.impl.SetVertexBuffer(impl)
	})
}

// SetIndexBuffer binds buf as the index source.
func (c *Context) SetIndexBuffer(buf *Buffer) error {
	return c.bindBuffer(buf, IndexBufferKind, func(impl BufferImpl) error {
		return c.impl.SetIndexBuffer(impl, buf.IndexFormat())
	})
}

// SetUniformBuffer binds buf at its binding point.
func (c *Context) SetUniformBuffer(buf *Buffer) error {
	return c.bindBuffer(buf, UniformBufferKind, func(impl BufferImpl) error {
		return c.impl.SetUniformBuffer(impl, buf.Binding())
	})
}

func (c *Context) bindBuffer(buf *Buffer, kind BufferKind, bind func(BufferImpl) error) error {
	if err := c.live(); err != nil {
		return c.fail(err)
	}
	if buf == nil || !buf.IsValid() {
		return c.fail(lrerr.New(lrerr.ResourceInvalid, lrerr.SeverityError, "buffer not valid"))
	}
	if buf.Kind() != kind {
		return c.fail(lrerr.Errorf(lrerr.InvalidArgument, lrerr.SeverityError,
			"cannot bind %d buffer here", buf.Kind()))
	}
	if err := bind(buf.impl()); err != nil {
		return c.fail(err)
	}
	return nil
}

// SetTexture binds tex to a sampling unit.
func (c *Context) SetTexture(tex *Texture, slot int) error {
	if err := c.live(); err != nil {
		return c.fail(err)
	}
	if tex == nil || !tex.IsValid() {
		return c.fail(lrerr.New(lrerr.ResourceInvalid, lrerr.SeverityError, "texture not valid"))
	}
	if err := c.impl.SetTexture(tex.impl(), slot); err != nil {
		return c.fail(err)
	}
	tex.boundSlot = slot
	return nil
}

// Draws. Vertex/index counts and instance counts are taken as given;
// out-of-range offsets relative to bound buffer sizes are detected
// by the backend/driver, not validated here.

// Draw draws count vertices starting at first.
func (c *Context) Draw(first, count int) error {
	if err := c.drawCheck(); err != nil {
		return c.fail(err)
	}
	if err := c.impl.Draw(first, count); err != nil {
		return c.fail(err)
	}
	return nil
}

// DrawIndexed draws count indices starting at byte offset into the
// bound index buffer.
func (c *Context) DrawIndexed(count, offset int) error {
	if err := c.drawCheck(); err != nil {
		return c.fail(err)
	}
	if err := c.impl.DrawIndexed(count, offset); err != nil {
		return c.fail(err)
	}
	return nil
}

// DrawInstanced draws instances copies of count vertices.
func (c *Context) DrawInstanced(first, count, instances int) error {
	if err := c.drawCheck(); err != nil {
		return c.fail(err)
	}
	if err := c.impl.DrawInstanced(first, count, instances); err != nil {
		return c.fail(err)
	}
	return nil
}

// DrawIndexedInstanced draws instances copies of count indices.
func (c *Context) DrawIndexedInstanced(count, offset, instances int) error {
	if err := c.drawCheck(); err != nil {
		return c.fail(err)
	}
	if err := c.impl.DrawIndexedInstanced(count, offset, instances); err != nil {
		return c.fail(err)
	}
	return nil
}

func (c *Context) drawCheck() error {
	if err := c.live(); err != nil {
		return err
	}
	if !c.inPass {
		return lrerr.New(lrerr.InvalidOperation, lrerr.SeverityError,
			"draw outside a render pass")
	}
	if c.curPipeline == nil {
		return lrerr.New(lrerr.InvalidState, lrerr.SeverityError,
			"draw with no pipeline bound")
	}
	return nil
}

// Flush ensures submitted work is flushed to the driver.
func (c *Context) Flush() error {
	if err := c.live(); err != nil {
		return c.fail(err)
	}
	return c.fail(c.impl.Flush())
}

// WaitIdle blocks until all submitted GPU work completes.
// It is strictly stronger than Flush and is unbounded.
func (c *Context) WaitIdle() error {
	if err := c.live(); err != nil {
		return c.fail(err)
	}
	return c.fail(c.impl.WaitIdle())
}

// WaitFence is a convenience that waits on f with a timeout.
func (c *Context) WaitFence(f *Fence, timeout time.Duration) (bool, error) {
	if err := c.live(); err != nil {
		return false, c.fail(err)
	}
	return f.Wait(timeout)
}
