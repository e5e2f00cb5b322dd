// Copyright 2026 The Lightrender Authors. All rights reserved.

package render

// BufferKind distinguishes the buffer variants.
type BufferKind int

// Buffer kinds.
const (
	VertexBufferKind BufferKind = iota
	IndexBufferKind
	UniformBufferKind
)

// Usage is a hint describing how often buffer contents change.
type Usage int

// Usage hints.
const (
	UsageStatic Usage = iota
	UsageDynamic
	UsageStream
)

// MapAccess selects the access mode of a buffer mapping.
type MapAccess int

// Map access modes.
const (
	MapRead MapAccess = iota
	MapWrite
	MapReadWrite
)

// IndexFmt describes the format of index buffer data.
// The value is the element width in bytes.
type IndexFmt int

// Index formats.
const (
	Index16 IndexFmt = 2
	Index32 IndexFmt = 4
)

// VertexFmt describes the format of a vertex attribute.
type VertexFmt int

// Vertex formats.
const (
	// Single precision floating-point, 1-4 components.
	Float32 VertexFmt = iota
	Float32x2
	Float32x3
	Float32x4
	// Signed 32-bit integer, 1-4 components.
	Int32
	Int32x2
	Int32x3
	Int32x4
	// Normalized unsigned 8-bit integer, 4 components.
	UInt8x4Norm
)

// Size returns the byte size of one attribute of format f.
func (f VertexFmt) Size() int {
	switch f {
	case Float32, Int32, UInt8x4Norm:
		return 4
	case Float32x2, Int32x2:
		return 8
	case Float32x3, Int32x3:
		return 12
	case Float32x4, Int32x4:
		return 16
	}
	return 0
}

// Components returns the component count of format f.
func (f VertexFmt) Components() int {
	switch f {
	case Float32, Int32:
		return 1
	case Float32x2, Int32x2:
		return 2
	case Float32x3, Int32x3:
		return 3
	case Float32x4, Int32x4, UInt8x4Norm:
		return 4
	}
	return 0
}

// VertexAttr describes one attribute within a vertex buffer.
type VertexAttr struct {
	// Location is the shader-side attribute location.
	Location int
	Format   VertexFmt
	// Offset is the byte offset of the attribute within a vertex.
	Offset int
}

// VertexLayout describes how raw vertex buffer bytes are interpreted
// as typed attributes. All attributes share a single stride.
type VertexLayout struct {
	Attrs  []VertexAttr
	Stride int
}

// TextureKind is the dimensionality of a texture.
type TextureKind int

// Texture kinds.
const (
	Tex2D TextureKind = iota
	Tex3D
	TexCube
	Tex2DArray
	Tex2DMS
)

// PixelFmt describes the format of a texel.
type PixelFmt int

// Pixel formats.
const (
	RGBA8 PixelFmt = iota
	BGRA8
	RGB8
	RG8
	R8
	RGBA16F
	RGBA32F
	D16
	D32F
	D24S8
	S8
)

// Size returns the byte size of one texel of format f.
func (f PixelFmt) Size() int {
	switch f {
	case R8, S8:
		return 1
	case RG8, D16:
		return 2
	case RGB8:
		return 3
	case RGBA8, BGRA8, D32F, D24S8:
		return 4
	case RGBA16F:
		return 8
	case RGBA32F:
		return 16
	}
	return 0
}

// IsDepth reports whether f has a depth aspect.
func (f PixelFmt) IsDepth() bool {
	switch f {
	case D16, D32F, D24S8:
		return true
	}
	return false
}

// HasStencil reports whether f has a stencil aspect.
func (f PixelFmt) HasStencil() bool {
	switch f {
	case D24S8, S8:
		return true
	}
	return false
}

// Region describes a sub-rectangle of a texture's level 0.
type Region struct {
	X, Y          int
	Width, Height int
}

// Topology determines how vertex data is assembled into primitives.
type Topology int

// Primitive topologies.
const (
	TPoint Topology = iota
	TLine
	TLnStrip
	TTriangle
	TTriStrip
)

// CmpFunc is the type of comparison functions.
type CmpFunc int

// Comparison functions.
const (
	CNever CmpFunc = iota
	CLess
	CEqual
	CLessEqual
	CGreater
	CNotEqual
	CGreaterEqual
	CAlways
)

// StencilOp is the type of stencil operations.
type StencilOp int

// Stencil operations.
const (
	SKeep StencilOp = iota
	SZero
	SReplace
	SIncClamp
	SDecClamp
	SInvert
	SIncWrap
	SDecWrap
)

// StencilFace defines stencil test parameters for one face.
type StencilFace struct {
	Fail      StencilOp
	DepthFail StencilOp
	Pass      StencilOp
	Cmp       CmpFunc
	ReadMask  uint32
	WriteMask uint32
	Ref       uint32
}

// DepthStencilState defines the depth/stencil state of a pipeline.
type DepthStencilState struct {
	// DepthTest enables the depth test.
	DepthTest bool
	// DepthWrite enables depth writes.
	DepthWrite bool
	DepthCmp   CmpFunc
	// StencilTest enables the stencil test.
	StencilTest bool
	Front       StencilFace
	Back        StencilFace
}

// BlendOp is the type of blend operations.
type BlendOp int

// Blend operations.
const (
	BAdd BlendOp = iota
	BSubtract
	BRevSubtract
	BMin
	BMax
)

// BlendFac is the type of blend factors.
type BlendFac int

// Blend factors.
const (
	BZero BlendFac = iota
	BOne
	BSrcColor
	BInvSrcColor
	BSrcAlpha
	BInvSrcAlpha
	BDstColor
	BInvDstColor
	BDstAlpha
	BInvDstAlpha
)

// ColorMask is the type of a color write mask.
type ColorMask int

// Color write masks.
const (
	CRed ColorMask = 1 << iota
	CGreen
	CBlue
	CAlpha
	// Write to all channels.
	CAll ColorMask = 1<<iota - 1
)

// BlendState defines the color blend state of a pipeline.
type BlendState struct {
	// Enabled enables blending.
	Enabled bool
	// WriteMask specifies which color channels to write.
	WriteMask ColorMask
	SrcColor  BlendFac
	DstColor  BlendFac
	SrcAlpha  BlendFac
	DstAlpha  BlendFac
	OpColor   BlendOp
	OpAlpha   BlendOp
}

// CullMode determines primitive culling based on facing direction.
type CullMode int

// Cull modes.
const (
	CNone CullMode = iota
	CFront
	CBack
)

// FillMode determines the final rasterization of triangles.
type FillMode int

// Triangle fill modes.
const (
	FFill FillMode = iota
	FLines
)

// RasterState defines the rasterization state of a pipeline.
type RasterState struct {
	// Winding order is either clockwise or counter-clockwise.
	Clockwise bool
	Cull      CullMode
	Fill      FillMode
	// ScissorTest enables the scissor test.
	ScissorTest bool
}

// ShaderStage identifies one programmable stage.
type ShaderStage int

// Shader stages. The supported subset is backend-dependent.
const (
	StageVertex ShaderStage = iota
	StageFragment
	StageGeometry
	StageCompute
)

// String returns the stage name.
func (s ShaderStage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	case StageGeometry:
		return "geometry"
	case StageCompute:
		return "compute"
	}
	return "invalid"
}

// MaxColorAttachments is the color attachment index space of a
// framebuffer.
const MaxColorAttachments = 8

// Limits describes implementation limits.
// These may vary across drivers and devices.
type Limits struct {
	// Maximum width and height of 2D textures.
	MaxTextureSize int
	// Maximum number of layers in an array texture.
	MaxTextureLayers int
	// Maximum number of bound texture units.
	MaxTextureUnits int
	// Maximum number of color render targets in a pass.
	MaxColorTargets int
	// Maximum number of uniform buffer binding points.
	MaxUniformBindings int
	// Maximum sample count for multisample textures.
	MaxSamples int
	// Maximum number of vertex attributes.
	MaxVertexAttrs int
}

// BufferDesc describes a buffer to create.
type BufferDesc struct {
	Kind  BufferKind
	Size  int
	Usage Usage
	// Index is the element width of an index buffer.
	Index IndexFmt
	// Binding is the binding point of a uniform buffer.
	Binding int
}

// TextureDesc describes a texture to create.
type TextureDesc struct {
	Kind   TextureKind
	Width  int
	Height int
	// Depth is the depth or array layer count.
	Depth     int
	Format    PixelFmt
	MipLevels int
	Samples   int
}

// PipelineDesc describes the immutable state bundle of a pipeline.
type PipelineDesc struct {
	Layout       VertexLayout
	Blend        BlendState
	DepthStencil DepthStencilState
	Raster       RasterState
	Topology     Topology
}
