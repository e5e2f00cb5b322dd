// Copyright 2026 The Lightrender Authors. All rights reserved.

package render

// PipelineState is an immutable bundle of shader binding and
// fixed-function configuration. None of its fields can change after
// creation; changing rendering state requires constructing a new
// PipelineState. The immutability is what lets a backend validate
// the bundle once rather than on every draw.
type PipelineState struct {
	resource
	desc    PipelineDesc
	program *ShaderProgram
}

// Program returns the shader program the pipeline binds.
func (p *PipelineState) Program() *ShaderProgram { return p.program }

// VertexLayout returns the construction-time vertex layout.
func (p *PipelineState) VertexLayout() VertexLayout { return p.desc.Layout }

// Blend returns the construction-time blend state.
func (p *PipelineState) Blend() BlendState { return p.desc.Blend }

// DepthStencil returns the construction-time depth/stencil state.
func (p *PipelineState) DepthStencil() DepthStencilState { return p.desc.DepthStencil }

// Raster returns the construction-time rasterizer state.
func (p *PipelineState) Raster() RasterState { return p.desc.Raster }

// Topology returns the construction-time primitive topology.
func (p *PipelineState) Topology() Topology { return p.desc.Topology }

func (p *PipelineState) impl() PipelineStateImpl { return p.resource.impl.(PipelineStateImpl) }

// Release decrements the reference count, dropping the program share
// when the pipeline is destroyed.
func (p *PipelineState) Release() int32 {
	n := p.refs.Add(-1)
	if n == 0 {
		if p.program != nil {
			p.program.Release()
			p.program = nil
		}
		p.destroy()
	}
	return n
}
