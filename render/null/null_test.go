// Copyright 2026 The Lightrender Authors. All rights reserved.

package null

import (
	"testing"
	"time"

	"lightrender/lr/render"
)

func newCtx(t *testing.T) *context {
	t.Helper()
	impl, err := (&driver{}).Open(render.Config{Width: 64, Height: 64})
	if err != nil {
		t.Fatalf("driver.Open failed:\n%#v", err)
	}
	return impl.(*context)
}

func TestDriverRegistration(t *testing.T) {
	d := render.For(render.BackendNull)
	if d == nil {
		t.Fatal("render.For: null driver not registered")
	}
	if d.Name() != DriverName {
		t.Errorf("Driver.Name: have %q, want %q", d.Name(), DriverName)
	}
}

func TestPassBookkeeping(t *testing.T) {
	c := newCtx(t)
	defer c.Destroy()

	if err := c.EndRenderPass(); err == nil {
		t.Error("context.EndRenderPass: unexpected success with no open pass")
	}
	fbi, err := c.NewFramebuffer(64, 64)
	if err != nil {
		t.Fatalf("context.NewFramebuffer failed:\n%#v", err)
	}
	fb := fbi.(*framebuffer)

	if err := c.BeginRenderPass(nil); err != nil {
		t.Fatalf("context.BeginRenderPass failed:\n%#v", err)
	}
	if err := c.BeginRenderPass(fb); err == nil {
		t.Error("context.BeginRenderPass: unexpected success inside an open pass")
	}
	if err := c.EndRenderPass(); err != nil {
		t.Fatalf("context.EndRenderPass failed:\n%#v", err)
	}
	if c.cur != nil {
		t.Error("context: target not restored after pass")
	}
}

func TestDrawCounter(t *testing.T) {
	c := newCtx(t)
	defer c.Destroy()

	if err := c.Draw(0, 3); err == nil {
		t.Error("context.Draw: unexpected success outside a render pass")
	}
	if err := c.BeginRenderPass(nil); err != nil {
		t.Fatalf("context.BeginRenderPass failed:\n%#v", err)
	}
	if err := c.Draw(0, 3); err != nil {
		t.Fatalf("context.Draw failed:\n%#v", err)
	}
	if err := c.DrawIndexed(3, 0); err != nil {
		t.Fatalf("context.DrawIndexed failed:\n%#v", err)
	}
	if err := c.DrawInstanced(0, 3, 2); err != nil {
		t.Fatalf("context.DrawInstanced failed:\n%#v", err)
	}
	if err := c.DrawIndexedInstanced(3, 0, 2); err != nil {
		t.Fatalf("context.DrawIndexedInstanced failed:\n%#v", err)
	}
	if err := c.EndRenderPass(); err != nil {
		t.Fatalf("context.EndRenderPass failed:\n%#v", err)
	}
	if c.draws != 4 {
		t.Errorf("context: have %d draws, want 4", c.draws)
	}

	if err := c.BeginFrame(); err != nil {
		t.Fatalf("context.BeginFrame failed:\n%#v", err)
	}
	if err := c.EndFrame(); err != nil {
		t.Fatalf("context.EndFrame failed:\n%#v", err)
	}
	if c.frames != 1 {
		t.Errorf("context: have %d frames, want 1", c.frames)
	}
}

func TestUniformResolution(t *testing.T) {
	c := newCtx(t)
	defer c.Destroy()

	vs, err := c.NewShader(render.StageVertex)
	if err != nil {
		t.Fatalf("context.NewShader failed:\n%#v", err)
	}
	if err := vs.Compile("uniform mat4 transform; void main() {}"); err != nil {
		t.Fatalf("shader.Compile failed:\n%#v", err)
	}
	fs, err := c.NewShader(render.StageFragment)
	if err != nil {
		t.Fatalf("context.NewShader failed:\n%#v", err)
	}
	if err := fs.Compile("uniform float gain; void main() {}"); err != nil {
		t.Fatalf("shader.Compile failed:\n%#v", err)
	}

	pi, err := c.NewProgram([]render.ShaderImpl{vs, fs})
	if err != nil {
		t.Fatalf("context.NewProgram failed:\n%#v", err)
	}
	p := pi.(*program)
	if err := p.Link(); err != nil {
		t.Fatalf("program.Link failed:\n%#v", err)
	}

	// Names from any attached stage resolve to stable locations.
	locT := p.UniformLocation("transform")
	locG := p.UniformLocation("gain")
	if locT < 0 || locG < 0 {
		t.Fatal("program.UniformLocation: known uniform did not resolve")
	}
	if locT == locG {
		t.Error("program.UniformLocation: distinct uniforms share a location")
	}
	if p.UniformLocation("transform") != locT {
		t.Error("program.UniformLocation: location not stable")
	}
	if p.UniformLocation("missing") >= 0 {
		t.Error("program.UniformLocation: unknown uniform resolved")
	}

	if err := p.SetFloat(locG, 2); err != nil {
		t.Fatalf("program.SetFloat failed:\n%#v", err)
	}
	if v, ok := p.uniform[locG].(float32); !ok || v != 2 {
		t.Error("program.SetFloat: value not recorded")
	}
}

func TestApplyOrder(t *testing.T) {
	c := newCtx(t)
	defer c.Destroy()

	pi, err := c.NewPipelineState(render.PipelineDesc{}, &program{})
	if err != nil {
		t.Fatalf("context.NewPipelineState failed:\n%#v", err)
	}
	p := pi.(*pipelineState)
	if err := p.Apply(); err != nil {
		t.Fatalf("pipelineState.Apply failed:\n%#v", err)
	}
	// The depth write mask must be applied before the depth test
	// toggle.
	mask, test := -1, -1
	for i, step := range p.applied {
		switch step {
		case "depth-mask":
			mask = i
		case "depth-test":
			test = i
		}
	}
	if mask < 0 || test < 0 || mask >= test {
		t.Errorf("pipelineState.Apply: depth order %v", p.applied)
	}
}

func TestFenceImmediate(t *testing.T) {
	c := newCtx(t)
	defer c.Destroy()

	fi, err := c.NewFence()
	if err != nil {
		t.Fatalf("context.NewFence failed:\n%#v", err)
	}
	f := fi.(*fence)

	if ok, _ := f.Wait(time.Millisecond); ok {
		t.Error("fence.Wait: reached an unsignaled marker")
	}
	if err := f.Signal(); err != nil {
		t.Fatalf("fence.Signal failed:\n%#v", err)
	}
	// Signaling again is a no-op, not a double close.
	if err := f.Signal(); err != nil {
		t.Fatalf("fence.Signal failed:\n%#v", err)
	}
	if ok, _ := f.Wait(-1); !ok {
		t.Error("fence.Wait: unbounded wait not satisfied")
	}
	if err := f.Reset(); err != nil {
		t.Fatalf("fence.Reset failed:\n%#v", err)
	}
	if st, _ := f.Status(); st != render.Unsignaled {
		t.Error("fence.Reset: fence still signaled")
	}
}

func TestBindingLimits(t *testing.T) {
	c := newCtx(t)
	defer c.Destroy()

	bi, err := c.NewBuffer(render.BufferDesc{Kind: render.UniformBufferKind, Size: 16})
	if err != nil {
		t.Fatalf("context.NewBuffer failed:\n%#v", err)
	}
	if err := c.SetUniformBuffer(bi, c.Limits().MaxUniformBindings); err == nil {
		t.Error("context.SetUniformBuffer: unexpected success past binding limit")
	}
	ti, err := c.NewTexture(render.TextureDesc{Kind: render.Tex2D, Width: 4, Height: 4})
	if err != nil {
		t.Fatalf("context.NewTexture failed:\n%#v", err)
	}
	if err := c.SetTexture(ti, -1); err == nil {
		t.Error("context.SetTexture: unexpected success with negative unit")
	}
	if err := c.SetTexture(ti, 0); err != nil {
		t.Errorf("context.SetTexture failed:\n%#v", err)
	}
}
