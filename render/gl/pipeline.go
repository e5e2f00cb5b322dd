// Copyright 2026 The Lightrender Authors. All rights reserved.

package gl

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"lightrender/lr/render"
)

// pipelineState implements render.PipelineStateImpl.
// GL has no pipeline objects in 4.1 core; the immutable descriptor
// is replayed into the state machine on Apply.
type pipelineState struct {
	desc render.PipelineDesc
	prog *program
}

func (c *context) NewPipelineState(desc render.PipelineDesc, prog render.ShaderProgramImpl) (render.PipelineStateImpl, error) {
	return &pipelineState{
		desc: desc,
		prog: prog.(*program),
	}, nil
}

// NativeHandle returns the program name; the fixed-function portion
// has no native object of its own.
func (p *pipelineState) NativeHandle() render.Handle { return render.GLHandle(p.prog.name) }

func (p *pipelineState) Destroy() {
	p.prog = nil
}

func (p *pipelineState) Apply() error {
	p.applyBlend()
	p.applyDepthStencil()
	p.applyRaster()
	return checkError("Apply")
}

func (p *pipelineState) applyBlend() {
	b := &p.desc.Blend
	if b.Enabled {
		gl.Enable(gl.BLEND)
		gl.BlendFuncSeparate(convBlendFac(b.SrcColor), convBlendFac(b.DstColor),
			convBlendFac(b.SrcAlpha), convBlendFac(b.DstAlpha))
		gl.BlendEquationSeparate(convBlendOp(b.OpColor), convBlendOp(b.OpAlpha))
	} else {
		gl.Disable(gl.BLEND)
	}
	mask := b.WriteMask
	if mask == 0 {
		mask = render.CAll
	}
	gl.ColorMask(mask&render.CRed != 0, mask&render.CGreen != 0,
		mask&render.CBlue != 0, mask&render.CAlpha != 0)
}

func (p *pipelineState) applyDepthStencil() {
	ds := &p.desc.DepthStencil
	// The write mask must be set before the test toggle: clearing
	// the depth buffer on the next frame needs the mask already
	// true, and drivers differ on whether a mask set after the
	// toggle lands before that clear.
	gl.DepthMask(ds.DepthWrite)
	if ds.DepthTest {
		gl.Enable(gl.DEPTH_TEST)
		gl.DepthFunc(convCmp(ds.DepthCmp))
	} else {
		gl.Disable(gl.DEPTH_TEST)
	}
	if ds.StencilTest {
		gl.Enable(gl.STENCIL_TEST)
		applyStencilFace(gl.FRONT, &ds.Front)
		applyStencilFace(gl.BACK, &ds.Back)
	} else {
		gl.Disable(gl.STENCIL_TEST)
	}
}

func applyStencilFace(face uint32, s *render.StencilFace) {
	gl.StencilFuncSeparate(face, convCmp(s.Cmp), int32(s.Ref), s.ReadMask)
	gl.StencilOpSeparate(face, convStencilOp(s.Fail), convStencilOp(s.DepthFail),
		convStencilOp(s.Pass))
	gl.StencilMaskSeparate(face, s.WriteMask)
}

func (p *pipelineState) applyRaster() {
	r := &p.desc.Raster
	switch r.Cull {
	case render.CNone:
		gl.Disable(gl.CULL_FACE)
	case render.CFront:
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.FRONT)
	case render.CBack:
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.BACK)
	}
	if r.Clockwise {
		gl.FrontFace(gl.CW)
	} else {
		gl.FrontFace(gl.CCW)
	}
	if r.Fill == render.FLines {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
	if r.ScissorTest {
		gl.Enable(gl.SCISSOR_TEST)
	} else {
		gl.Disable(gl.SCISSOR_TEST)
	}
}
