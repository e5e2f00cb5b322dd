// Copyright 2026 The Lightrender Authors. All rights reserved.

package gles

import (
	gl "github.com/go-gl/gl/v3.1/gles2"

	"lightrender/lr/render"
)

// convUsage converts a usage hint.
func convUsage(u render.Usage) uint32 {
	switch u {
	case render.UsageDynamic:
		return gl.DYNAMIC_DRAW
	case render.UsageStream:
		return gl.STREAM_DRAW
	}
	return gl.STATIC_DRAW
}

// convTarget converts a buffer kind to its bind target.
func convTarget(k render.BufferKind) uint32 {
	switch k {
	case render.IndexBufferKind:
		return gl.ELEMENT_ARRAY_BUFFER
	case render.UniformBufferKind:
		return gl.UNIFORM_BUFFER
	}
	return gl.ARRAY_BUFFER
}

// convPixelFmt converts a pixel format.
// ES core has no BGRA component ordering.
func convPixelFmt(f render.PixelFmt) (internal int32, format, xtype uint32, ok bool) {
	switch f {
	case render.RGBA8:
		return gl.RGBA8, gl.RGBA, gl.UNSIGNED_BYTE, true
	case render.RGB8:
		return gl.RGB8, gl.RGB, gl.UNSIGNED_BYTE, true
	case render.RG8:
		return gl.RG8, gl.RG, gl.UNSIGNED_BYTE, true
	case render.R8:
		return gl.R8, gl.RED, gl.UNSIGNED_BYTE, true
	case render.RGBA16F:
		return gl.RGBA16F, gl.RGBA, gl.HALF_FLOAT, true
	case render.RGBA32F:
		return gl.RGBA32F, gl.RGBA, gl.FLOAT, true
	case render.D16:
		return gl.DEPTH_COMPONENT16, gl.DEPTH_COMPONENT, gl.UNSIGNED_SHORT, true
	case render.D32F:
		return gl.DEPTH_COMPONENT32F, gl.DEPTH_COMPONENT, gl.FLOAT, true
	case render.D24S8:
		return gl.DEPTH24_STENCIL8, gl.DEPTH_STENCIL, gl.UNSIGNED_INT_24_8, true
	}
	return 0, 0, 0, false
}

// convTexKind converts a texture kind to its bind target.
func convTexKind(k render.TextureKind) (uint32, bool) {
	switch k {
	case render.Tex2D:
		return gl.TEXTURE_2D, true
	case render.Tex3D:
		return gl.TEXTURE_3D, true
	case render.TexCube:
		return gl.TEXTURE_CUBE_MAP, true
	case render.Tex2DArray:
		return gl.TEXTURE_2D_ARRAY, true
	case render.Tex2DMS:
		return gl.TEXTURE_2D_MULTISAMPLE, true
	}
	return 0, false
}

// convStage converts a shader stage.
// ES 3.1 has compute but no geometry stage.
func convStage(s render.ShaderStage) (uint32, bool) {
	switch s {
	case render.StageVertex:
		return gl.VERTEX_SHADER, true
	case render.StageFragment:
		return gl.FRAGMENT_SHADER, true
	case render.StageCompute:
		return gl.COMPUTE_SHADER, true
	}
	return 0, false
}

// convTopology converts a primitive topology.
func convTopology(t render.Topology) uint32 {
	switch t {
	case render.TPoint:
		return gl.POINTS
	case render.TLine:
		return gl.LINES
	case render.TLnStrip:
		return gl.LINE_STRIP
	case render.TTriStrip:
		return gl.TRIANGLE_STRIP
	}
	return gl.TRIANGLES
}

// convIndexType converts an index format to a component type.
func convIndexType(f render.IndexFmt) uint32 {
	if f == render.Index16 {
		return gl.UNSIGNED_SHORT
	}
	return gl.UNSIGNED_INT
}

// convCmp converts a comparison function.
func convCmp(c render.CmpFunc) uint32 {
	switch c {
	case render.CNever:
		return gl.NEVER
	case render.CLess:
		return gl.LESS
	case render.CEqual:
		return gl.EQUAL
	case render.CLessEqual:
		return gl.LEQUAL
	case render.CGreater:
		return gl.GREATER
	case render.CNotEqual:
		return gl.NOTEQUAL
	case render.CGreaterEqual:
		return gl.GEQUAL
	}
	return gl.ALWAYS
}

// convStencilOp converts a stencil operation.
func convStencilOp(o render.StencilOp) uint32 {
	switch o {
	case render.SZero:
		return gl.ZERO
	case render.SReplace:
		return gl.REPLACE
	case render.SIncClamp:
		return gl.INCR
	case render.SDecClamp:
		return gl.DECR
	case render.SInvert:
		return gl.INVERT
	case render.SIncWrap:
		return gl.INCR_WRAP
	case render.SDecWrap:
		return gl.DECR_WRAP
	}
	return gl.KEEP
}

// convBlendOp converts a blend operation.
func convBlendOp(o render.BlendOp) uint32 {
	switch o {
	case render.BSubtract:
		return gl.FUNC_SUBTRACT
	case render.BRevSubtract:
		return gl.FUNC_REVERSE_SUBTRACT
	case render.BMin:
		return gl.MIN
	case render.BMax:
		return gl.MAX
	}
	return gl.FUNC_ADD
}

// convBlendFac converts a blend factor.
func convBlendFac(f render.BlendFac) uint32 {
	switch f {
	case render.BOne:
		return gl.ONE
	case render.BSrcColor:
		return gl.SRC_COLOR
	case render.BInvSrcColor:
		return gl.ONE_MINUS_SRC_COLOR
	case render.BSrcAlpha:
		return gl.SRC_ALPHA
	case render.BInvSrcAlpha:
		return gl.ONE_MINUS_SRC_ALPHA
	case render.BDstColor:
		return gl.DST_COLOR
	case render.BInvDstColor:
		return gl.ONE_MINUS_DST_COLOR
	case render.BDstAlpha:
		return gl.DST_ALPHA
	case render.BInvDstAlpha:
		return gl.ONE_MINUS_DST_ALPHA
	}
	return gl.ZERO
}

// convVertexFmt converts a vertex format to component type, count
// and flags.
func convVertexFmt(f render.VertexFmt) (xtype uint32, comps int32, normalized, integer bool) {
	switch f {
	case render.Int32, render.Int32x2, render.Int32x3, render.Int32x4:
		return gl.INT, int32(f.Components()), false, true
	case render.UInt8x4Norm:
		return gl.UNSIGNED_BYTE, 4, true, false
	}
	return gl.FLOAT, int32(f.Components()), false, false
}
