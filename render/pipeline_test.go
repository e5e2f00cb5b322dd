// Copyright 2026 The Lightrender Authors. All rights reserved.

package render_test

import (
	"testing"

	"lightrender/lr/render"
)

func triPipelineDesc() render.PipelineDesc {
	return render.PipelineDesc{
		Layout: render.VertexLayout{
			Attrs: []render.VertexAttr{
				{Location: 0, Format: render.Float32x3, Offset: 0},
				{Location: 1, Format: render.Float32x4, Offset: 12},
			},
			Stride: 28,
		},
		DepthStencil: render.DepthStencilState{
			DepthTest:  true,
			DepthWrite: true,
			DepthCmp:   render.CLessEqual,
		},
		Raster: render.RasterState{
			Cull: render.CBack,
		},
		Topology: render.TTriangle,
	}
}

func TestPipelineImmutability(t *testing.T) {
	prog, err := newProgram()
	if err != nil {
		t.Fatalf("newProgram failed:\n%#v", err)
	}
	defer prog.Release()

	desc := triPipelineDesc()
	ps, err := ctx.CreatePipelineState(desc, prog)
	if err != nil {
		t.Fatalf("Context.CreatePipelineState failed:\n%#v", err)
	}
	defer ps.Release()

	// Mutating the descriptor after creation must not leak into the
	// pipeline; the bundle is copied and immutable.
	desc.DepthStencil.DepthTest = false
	desc.Raster.Cull = render.CNone
	desc.Topology = render.TPoint
	if ds := ps.DepthStencil(); !ds.DepthTest || !ds.DepthWrite || ds.DepthCmp != render.CLessEqual {
		t.Error("PipelineState.DepthStencil: state changed after creation")
	}
	if ps.Raster().Cull != render.CBack {
		t.Error("PipelineState.Raster: state changed after creation")
	}
	if ps.Topology() != render.TTriangle {
		t.Error("PipelineState.Topology: state changed after creation")
	}
	if len(ps.VertexLayout().Attrs) != 2 {
		t.Error("PipelineState.VertexLayout: layout mismatch")
	}
	if ps.Program() != prog {
		t.Error("PipelineState.Program: program mismatch")
	}
}

func TestPipelineProgramOwnership(t *testing.T) {
	prog, err := newProgram()
	if err != nil {
		t.Fatalf("newProgram failed:\n%#v", err)
	}
	ps, err := ctx.CreatePipelineState(triPipelineDesc(), prog)
	if err != nil {
		t.Fatalf("Context.CreatePipelineState failed:\n%#v", err)
	}
	if n := prog.RefCount(); n != 2 {
		t.Errorf("Context.CreatePipelineState: have program count %d, want 2", n)
	}

	// The program stays alive through the pipeline's share.
	prog.Release()
	if !prog.IsValid() {
		t.Fatal("program destroyed while pipeline holds a share")
	}
	ps.Release()
	if prog.IsValid() {
		t.Error("PipelineState.Release: program valid after last reference")
	}
}

func TestPipelineRequiresLinkedProgram(t *testing.T) {
	vs, err := ctx.CreateShader(render.StageVertex)
	if err != nil {
		t.Fatalf("Context.CreateShader failed:\n%#v", err)
	}
	defer vs.Release()
	if err := vs.Compile(vertSrc); err != nil {
		t.Fatalf("Shader.Compile failed:\n%#v", err)
	}
	fs, err := ctx.CreateShader(render.StageFragment)
	if err != nil {
		t.Fatalf("Context.CreateShader failed:\n%#v", err)
	}
	defer fs.Release()
	if err := fs.Compile(fragSrc); err != nil {
		t.Fatalf("Shader.Compile failed:\n%#v", err)
	}
	prog, err := ctx.CreateShaderProgram(vs, fs)
	if err != nil {
		t.Fatalf("Context.CreateShaderProgram failed:\n%#v", err)
	}
	defer prog.Release()

	if _, err := ctx.CreatePipelineState(triPipelineDesc(), prog); err == nil {
		t.Error("Context.CreatePipelineState: unexpected success with unlinked program")
	}
	if _, err := ctx.CreatePipelineState(triPipelineDesc(), nil); err == nil {
		t.Error("Context.CreatePipelineState: unexpected success with nil program")
	}
	ctx.ClearError()
}
