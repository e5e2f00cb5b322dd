// Copyright 2026 The Lightrender Authors. All rights reserved.

package gles

import (
	gl "github.com/go-gl/gl/v3.1/gles2"
	"github.com/go-gl/glfw/v3.3/glfw"

	"lightrender/lr/lrerr"
	"lightrender/lr/render"
)

// context implements render.ContextImpl.
type context struct {
	drv    *driver
	win    *glfw.Window
	width  int
	height int
	limits render.Limits

	// defaultFB is the on-screen target handed out by EGL; it is
	// not necessarily framebuffer 0.
	defaultFB uint32
	// boundFB and prevFB track the pass target for restore.
	boundFB uint32
	prevFB  uint32

	pipeline *pipelineState
	vertex   *buffer
	indexFmt render.IndexFmt
}

func (c *context) Backend() render.Backend { return render.BackendGLES }

func (c *context) Limits() render.Limits { return c.limits }

func (c *context) Destroy() {
	if c.win != nil {
		c.win.Destroy()
		c.win = nil
	}
	c.drv.Close()
}

func (c *context) BeginFrame() error {
	glfw.PollEvents()
	gl.Viewport(0, 0, int32(c.width), int32(c.height))
	return nil
}

func (c *context) EndFrame() error {
	c.win.SwapBuffers()
	return nil
}

func (c *context) BeginRenderPass(fb render.FramebufferImpl) error {
	c.prevFB = c.boundFB
	target := c.defaultFB
	if fb != nil {
		f := fb.(*framebuffer)
		target = f.name
		gl.BindFramebuffer(gl.FRAMEBUFFER, target)
		f.applyDrawBuffers()
		gl.Viewport(0, 0, int32(f.width), int32(f.height))
	} else {
		gl.BindFramebuffer(gl.FRAMEBUFFER, target)
		gl.Viewport(0, 0, int32(c.width), int32(c.height))
	}
	c.boundFB = target
	return checkError("BeginRenderPass")
}

// EndRenderPass rebinds the target that was bound before the
// matching BeginRenderPass; the previous target is not assumed to be
// the default framebuffer.
func (c *context) EndRenderPass() error {
	gl.BindFramebuffer(gl.FRAMEBUFFER, c.prevFB)
	c.boundFB = c.prevFB
	return checkError("EndRenderPass")
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
	b := buf.(*buffer)
	if b.vao == 0 {
		return lrerr.New(lrerr.InvalidState, lrerr.SeverityError,
			"gles: vertex buffer bound without a vertex layout")
	}
	gl.BindVertexArray(b.vao)
	c.vertex = b
	return checkError("SetVertexBuffer")
}

func (c *context) SetIndexBuffer(buf render.BufferImpl, format render.IndexFmt) error {
	b := buf.(*buffer)
	// Element buffer binding lives in VAO state; the vertex buffer
	// must be bound first.
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.name)
	c.indexFmt = format
	return checkError("SetIndexBuffer")
}

func (c *context) SetUniformBuffer(buf render.BufferImpl, binding int) error {
	b := buf.(*buffer)
	gl.BindBufferBase(gl.UNIFORM_BUFFER, uint32(binding), b.name)
	return checkError("SetUniformBuffer")
}

func (c *context) SetTexture(tex render.TextureImpl, slot int) error {
	return tex.(*texture).Bind(slot)
}

func (c *context) topology() uint32 {
	if c.pipeline != nil {
		return convTopology(c.pipeline.desc.Topology)
	}
	return gl.TRIANGLES
}

func (c *context) Draw(first, count int) error {
	gl.DrawArrays(c.topology(), int32(first), int32(count))
	return checkError("Draw")
}

func (c *context) DrawIndexed(count, offset int) error {
	gl.DrawElements(c.topology(), int32(count), convIndexType(c.indexFmt), gl.PtrOffset(offset))
	return checkError("DrawIndexed")
}

func (c *context) DrawInstanced(first, count, instances int) error {
	gl.DrawArraysInstanced(c.topology(), int32(first), int32(count), int32(instances))
	return checkError("DrawInstanced")
}

func (c *context) DrawIndexedInstanced(count, offset, instances int) error {
	gl.DrawElementsInstanced(c.topology(), int32(count), convIndexType(c.indexFmt),
		gl.PtrOffset(offset), int32(instances))
	return checkError("DrawIndexedInstanced")
}

func (c *context) Flush() error {
	gl.Flush()
	return nil
}

func (c *context) WaitIdle() error {
	gl.Finish()
	return nil
}
