// Copyright 2026 The Lightrender Authors. All rights reserved.

// Package null implements a headless render backend.
// It carries the full front-end contract in host memory, with no GPU
// behind it: buffer and texture stores are byte slices, fences
// signal immediately and draws are counted rather than rasterized.
// It exists for tests and for consumers that need the resource model
// without a display.
package null

import (
	"sync/atomic"

	"lightrender/lr/lrerr"
	"lightrender/lr/render"
)

// DriverName is the registered driver name.
const DriverName = "null"

func init() {
	render.Register(&driver{})
}

// driver implements render.Driver.
type driver struct{}

func (*driver) Name() string            { return DriverName }
func (*driver) Backend() render.Backend { return render.BackendNull }
func (*driver) Close()                  {}

// Open creates a headless context. It is always available.
func (*driver) Open(cfg render.Config) (render.ContextImpl, error) {
	return &context{
		width:  cfg.Width,
		height: cfg.Height,
	}, nil
}

// Fake native object names, handed out like GL object names so that
// front-end validity checks see non-zero handles.
var lastName atomic.Uint32

func nextName() render.Handle {
	return render.GLHandle(lastName.Add(1))
}

// context implements render.ContextImpl.
type context struct {
	width  int
	height int

	inFrame bool
	inPass  bool
	// cur and prev track the bound target for pass restore.
	cur  *framebuffer
	prev *framebuffer

	pipeline *pipelineState
	vertex   *buffer
	index    *buffer
	indexFmt render.IndexFmt

	// Draw and frame counters, observable by tests.
	frames int
	draws  int

	destroyed bool
}

func (c *context) Backend() render.Backend { return render.BackendNull }

func (c *context) Limits() render.Limits {
	return render.Limits{
		MaxTextureSize:     16384,
		MaxTextureLayers:   2048,
		MaxTextureUnits:    32,
		MaxColorTargets:    render.MaxColorAttachments,
		MaxUniformBindings: 36,
		MaxSamples:         8,
		MaxVertexAttrs:     16,
	}
}

func (c *context) Destroy() {
	c.destroyed = true
	c.cur = nil
	c.prev = nil
	c.pipeline = nil
	c.vertex = nil
	c.index = nil
}

func (c *context) BeginFrame() error {
	c.inFrame = true
	return nil
}

func (c *context) EndFrame() error {
	c.inFrame = false
	c.frames++
	return nil
}

func (c *context) BeginRenderPass(fb render.FramebufferImpl) error {
	if c.inPass {
		return lrerr.New(lrerr.InvalidOperation, lrerr.SeverityError,
			"null: unbalanced BeginRenderPass")
	}
	c.inPass = true
	c.prev = c.cur
	if fb == nil {
		c.cur = nil
	} else {
		c.cur = fb.(*framebuffer)
	}
	return nil
}

func (c *context) EndRenderPass() error {
	if !c.inPass {
		return lrerr.New(lrerr.InvalidOperation, lrerr.SeverityError,
			"null: unbalanced EndRenderPass")
	}
	c.inPass = false
	c.cur = c.prev
	c.prev = nil
	return nil
}

func (c *context) SetPipelineState(ps render.PipelineStateImpl) error {
	p := ps.(*pipelineState)
	if err := p.Apply(); err != nil {
		return err
	}
	c.pipeline = p
	return nil
}

func (c *context) SetVertexBuffer(buf render.BufferImpl) error {
	c.vertex = buf.(*buffer)
	return nil
}

func (c *context) SetIndexBuffer(buf render.BufferImpl, format render.IndexFmt) error {
	c.index = buf.(*buffer)
	c.indexFmt = format
	return nil
}

func (c *context) SetUniformBuffer(buf render.BufferImpl, binding int) error {
	if binding < 0 || binding >= c.Limits().MaxUniformBindings {
		return lrerr.Errorf(lrerr.InvalidArgument, lrerr.SeverityError,
			"null: uniform binding %d", binding)
	}
	return nil
}

func (c *context) SetTexture(tex render.TextureImpl, slot int) error {
	if slot < 0 || slot >= c.Limits().MaxTextureUnits {
		return lrerr.Errorf(lrerr.InvalidArgument, lrerr.SeverityError,
			"null: texture unit %d", slot)
	}
	tex.(*texture).bound[slot] = true
	return nil
}

func (c *context) draw() error {
	if !c.inPass {
		return lrerr.New(lrerr.InvalidOperation, lrerr.SeverityError,
			"null: draw outside a render pass")
	}
	c.draws++
	return nil
}

func (c *context) Draw(first, count int) error { return c.draw() }

func (c *context) DrawIndexed(count, offset int) error { return c.draw() }

func (c *context) DrawInstanced(first, count, instances int) error {
	return c.draw()
}

func (c *context) DrawIndexedInstanced(count, offset, instances int) error {
	return c.draw()
}

// Flush has nothing to push; recorded work completes immediately.
func (c *context) Flush() error { return nil }

// WaitIdle has nothing to wait for.
func (c *context) WaitIdle() error { return nil }
