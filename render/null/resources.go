// Copyright 2026 The Lightrender Authors. All rights reserved.

package null

import (
	"strings"
	"time"

	"lightrender/lr/lrerr"
	"lightrender/lr/render"
)

// buffer implements render.BufferImpl over a host byte slice.
type buffer struct {
	handle render.Handle
	data   []byte
	usage  render.Usage
	layout render.VertexLayout
	mapped bool
}

func (c *context) NewBuffer(desc render.BufferDesc) (render.BufferImpl, error) {
	return &buffer{
		handle: nextName(),
		data:   make([]byte, desc.Size),
		usage:  desc.Usage,
	}, nil
}

func (b *buffer) NativeHandle() render.Handle { return b.handle }

func (b *buffer) Destroy() {
	b.data = nil
	b.handle = render.Handle{}
}

func (b *buffer) UpdateData(data []byte, offset int) error {
	if offset+len(data) > len(b.data) {
		return lrerr.New(lrerr.BufferTooSmall, lrerr.SeverityError, "null: buffer overrun")
	}
	copy(b.data[offset:], data)
	return nil
}

// Map returns the store itself; host memory is the driver memory.
func (b *buffer) Map(access render.MapAccess) ([]byte, error) {
	if b.mapped {
		return nil, lrerr.New(lrerr.BufferMapFailed, lrerr.SeverityError, "null: already mapped")
	}
	b.mapped = true
	return b.data, nil
}

func (b *buffer) Unmap() error {
	b.mapped = false
	return nil
}

func (b *buffer) SetVertexLayout(layout render.VertexLayout) error {
	b.layout = layout
	return nil
}

// texture implements render.TextureImpl with one level-0 store.
type texture struct {
	handle render.Handle
	width  int
	height int
	format render.PixelFmt
	data   []byte
	// bound marks the sampling units the texture occupies.
	bound map[int]bool
	// mipped records whether GenerateMipmaps ran since the last
	// data update.
	mipped bool
}

func (c *context) NewTexture(desc render.TextureDesc) (render.TextureImpl, error) {
	return &texture{
		handle: nextName(),
		width:  desc.Width,
		height: desc.Height,
		format: desc.Format,
		data:   make([]byte, desc.Width*desc.Height*desc.Format.Size()),
		bound:  make(map[int]bool),
	}, nil
}

func (t *texture) NativeHandle() render.Handle { return t.handle }

func (t *texture) Destroy() {
	t.data = nil
	t.handle = render.Handle{}
}

func (t *texture) UpdateData(data []byte, region *render.Region) error {
	texel := t.format.Size()
	if region == nil {
		if len(data) < len(t.data) {
			return lrerr.New(lrerr.InvalidArgument, lrerr.SeverityError,
				"null: short texture update")
		}
		copy(t.data, data)
		t.mipped = false
		return nil
	}
	row := region.Width * texel
	if len(data) < row*region.Height {
		return lrerr.New(lrerr.InvalidArgument, lrerr.SeverityError,
			"null: short texture region update")
	}
	for y := 0; y < region.Height; y++ {
		dst := ((region.Y+y)*t.width + region.X) * texel
		copy(t.data[dst:dst+row], data[y*row:(y+1)*row])
	}
	t.mipped = false
	return nil
}

func (t *texture) GenerateMipmaps() error {
	t.mipped = true
	return nil
}

func (t *texture) Bind(slot int) error {
	t.bound[slot] = true
	return nil
}

func (t *texture) Unbind(slot int) error {
	delete(t.bound, slot)
	return nil
}

func (t *texture) Readback(into []byte) error {
	copy(into, t.data)
	return nil
}

// shader implements render.ShaderImpl.
// Compilation accepts any non-empty source and records it so that
// program-level uniform lookups can resolve names.
type shader struct {
	handle render.Handle
	stage  render.ShaderStage
	source string
}

func (c *context) NewShader(stage render.ShaderStage) (render.ShaderImpl, error) {
	if stage == render.StageGeometry {
		return nil, lrerr.New(lrerr.NotSupported, lrerr.SeverityError,
			"null: geometry stage not supported")
	}
	return &shader{handle: nextName(), stage: stage}, nil
}

func (s *shader) NativeHandle() render.Handle { return s.handle }

func (s *shader) Destroy() {
	s.handle = render.Handle{}
}

func (s *shader) Stage() render.ShaderStage { return s.stage }

func (s *shader) Compile(source string) error {
	s.source = source
	return nil
}

func (s *shader) CompileLog() string { return "" }

// program implements render.ShaderProgramImpl.
// A uniform name resolves if it appears in any attached source;
// locations are assigned on first lookup.
type program struct {
	handle  render.Handle
	sources string
	locs    map[string]int
	uniform map[int]any
}

func (c *context) NewProgram(shaders []render.ShaderImpl) (render.ShaderProgramImpl, error) {
	var b strings.Builder
	for _, s := range shaders {
		b.WriteString(s.(*shader).source)
		b.WriteByte('\n')
	}
	return &program{
		handle:  nextName(),
		sources: b.String(),
		locs:    make(map[string]int),
		uniform: make(map[int]any),
	}, nil
}

func (p *program) NativeHandle() render.Handle { return p.handle }

func (p *program) Destroy() {
	p.handle = render.Handle{}
	p.locs = nil
	p.uniform = nil
}

func (p *program) Link() error { return nil }

func (p *program) LinkLog() string { return "" }

func (p *program) UniformLocation(name string) int {
	if loc, ok := p.locs[name]; ok {
		return loc
	}
	if !strings.Contains(p.sources, name) {
		return -1
	}
	loc := len(p.locs)
	p.locs[name] = loc
	return loc
}

func (p *program) Use() error { return nil }

func (p *program) set(loc int, v any) error {
	if loc >= 0 {
		p.uniform[loc] = v
	}
	return nil
}

func (p *program) SetInt(loc int, v int32) error { return p.set(loc, v) }

func (p *program) SetFloat(loc int, v float32) error { return p.set(loc, v) }

func (p *program) SetVec2(loc int, v [2]float32) error { return p.set(loc, v) }

func (p *program) SetVec3(loc int, v [3]float32) error { return p.set(loc, v) }

func (p *program) SetVec4(loc int, v [4]float32) error { return p.set(loc, v) }

func (p *program) SetMat3(loc int, v [9]float32, transpose bool) error {
	return p.set(loc, v)
}

func (p *program) SetMat4(loc int, v [16]float32, transpose bool) error {
	return p.set(loc, v)
}

// framebuffer implements render.FramebufferImpl.
// Completeness requires at least one attachment and every attachment
// matching the framebuffer's dimensions.
type framebuffer struct {
	handle  render.Handle
	width   int
	height  int
	color   [render.MaxColorAttachments]*texture
	depth   *texture
	stencil *texture
}

func (c *context) NewFramebuffer(width, height int) (render.FramebufferImpl, error) {
	return &framebuffer{handle: nextName(), width: width, height: height}, nil
}

func (f *framebuffer) NativeHandle() render.Handle { return f.handle }

func (f *framebuffer) Destroy() {
	f.handle = render.Handle{}
}

func (f *framebuffer) AttachColor(index int, tex render.TextureImpl) error {
	f.color[index] = tex.(*texture)
	return nil
}

func (f *framebuffer) AttachDepth(tex render.TextureImpl) error {
	f.depth = tex.(*texture)
	return nil
}

func (f *framebuffer) AttachStencil(tex render.TextureImpl) error {
	f.stencil = tex.(*texture)
	return nil
}

func (f *framebuffer) IsComplete() bool {
	n := 0
	check := func(t *texture) bool {
		if t == nil {
			return true
		}
		n++
		return t.width == f.width && t.height == f.height
	}
	for _, t := range f.color {
		if !check(t) {
			return false
		}
	}
	if !check(f.depth) || !check(f.stencil) {
		return false
	}
	return n > 0
}

// pipelineState implements render.PipelineStateImpl.
type pipelineState struct {
	handle render.Handle
	desc   render.PipelineDesc
	prog   *program
	// applied records the fixed-function application order of the
	// depth group; the write mask must precede test enable.
	applied []string
}

func (c *context) NewPipelineState(desc render.PipelineDesc, prog render.ShaderProgramImpl) (render.PipelineStateImpl, error) {
	return &pipelineState{
		handle: nextName(),
		desc:   desc,
		prog:   prog.(*program),
	}, nil
}

func (p *pipelineState) NativeHandle() render.Handle { return p.handle }

func (p *pipelineState) Destroy() {
	p.handle = render.Handle{}
}

func (p *pipelineState) Apply() error {
	p.applied = append(p.applied[:0], "blend")
	// Depth group: mask before test enable.
	p.applied = append(p.applied, "depth-mask", "depth-test", "stencil", "raster")
	return nil
}

// fence implements render.FenceImpl.
// With no GPU the marker is reached the moment it is inserted.
type fence struct {
	handle render.Handle
	done   chan struct{}
	status render.FenceStatus
}

func (c *context) NewFence() (render.FenceImpl, error) {
	return &fence{
		handle: nextName(),
		done:   make(chan struct{}),
	}, nil
}

func (f *fence) NativeHandle() render.Handle { return f.handle }

func (f *fence) Destroy() {
	f.handle = render.Handle{}
}

func (f *fence) Signal() error {
	if f.status == render.Unsignaled {
		f.status = render.Signaled
		close(f.done)
	}
	return nil
}

func (f *fence) Wait(timeout time.Duration) (bool, error) {
	if timeout < 0 {
		<-f.done
		return true, nil
	}
	select {
	case <-f.done:
		return true, nil
	case <-time.After(timeout):
		return false, nil
	}
}

func (f *fence) Status() (render.FenceStatus, error) {
	return f.status, nil
}

func (f *fence) Reset() error {
	if f.status == render.Signaled {
		f.status = render.Unsignaled
		f.done = make(chan struct{})
	}
	return nil
}
