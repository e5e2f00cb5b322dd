// Copyright 2026 The Lightrender Authors. All rights reserved.

package gles

import (
	gl "github.com/go-gl/gl/v3.1/gles2"

	"lightrender/lr/lrerr"
	"lightrender/lr/render"
)

// texture implements render.TextureImpl.
type texture struct {
	name     uint32
	target   uint32
	width    int
	height   int
	format   render.PixelFmt
	internal int32
	extFmt   uint32
	xtype    uint32
	levels   int
}

func (c *context) NewTexture(desc render.TextureDesc) (render.TextureImpl, error) {
	target, ok := convTexKind(desc.Kind)
	if !ok {
		return nil, lrerr.Errorf(lrerr.NotSupported, lrerr.SeverityError,
			"gles: texture kind %d", desc.Kind)
	}
	internal, extFmt, xtype, ok := convPixelFmt(desc.Format)
	if !ok {
		return nil, lrerr.Errorf(lrerr.TextureFormatUnsupported, lrerr.SeverityError,
			"gles: pixel format %d", desc.Format)
	}
	t := &texture{
		target:   target,
		width:    desc.Width,
		height:   desc.Height,
		format:   desc.Format,
		internal: internal,
		extFmt:   extFmt,
		xtype:    xtype,
		levels:   desc.MipLevels,
	}
	gl.GenTextures(1, &t.name)
	gl.BindTexture(target, t.name)
	switch target {
	case gl.TEXTURE_2D_MULTISAMPLE:
		// ES multisample textures are immutable storage only.
		gl.TexStorage2DMultisample(target, int32(desc.Samples), uint32(internal),
			int32(desc.Width), int32(desc.Height), true)
	case gl.TEXTURE_3D, gl.TEXTURE_2D_ARRAY:
		gl.TexImage3D(target, 0, internal, int32(desc.Width), int32(desc.Height),
			int32(desc.Depth), 0, extFmt, xtype, nil)
	case gl.TEXTURE_CUBE_MAP:
		for face := 0; face < 6; face++ {
			gl.TexImage2D(gl.TEXTURE_CUBE_MAP_POSITIVE_X+uint32(face), 0, internal,
				int32(desc.Width), int32(desc.Height), 0, extFmt, xtype, nil)
		}
	default:
		gl.TexImage2D(target, 0, internal, int32(desc.Width), int32(desc.Height),
			0, extFmt, xtype, nil)
	}
	if target != gl.TEXTURE_2D_MULTISAMPLE {
		gl.TexParameteri(target, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
		gl.TexParameteri(target, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
		gl.TexParameteri(target, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
		gl.TexParameteri(target, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
		gl.TexParameteri(target, gl.TEXTURE_MAX_LEVEL, int32(desc.MipLevels-1))
	}
	if err := checkError("TexImage"); err != nil {
		gl.DeleteTextures(1, &t.name)
		return nil, err
	}
	return t, nil
}

func (t *texture) NativeHandle() render.Handle { return render.GLHandle(t.name) }

func (t *texture) Destroy() {
	if t.name != 0 {
		gl.DeleteTextures(1, &t.name)
		t.name = 0
	}
}

func (t *texture) UpdateData(data []byte, region *render.Region) error {
	gl.BindTexture(t.target, t.name)
	// Plane rows are tightly packed; single-channel widths are not
	// 4-byte aligned in general.
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	if region == nil {
		gl.TexSubImage2D(t.target, 0, 0, 0, int32(t.width), int32(t.height),
			t.extFmt, t.xtype, gl.Ptr(data))
	} else {
		gl.TexSubImage2D(t.target, 0, int32(region.X), int32(region.Y),
			int32(region.Width), int32(region.Height), t.extFmt, t.xtype, gl.Ptr(data))
	}
	return checkError("TexSubImage2D")
}

func (t *texture) GenerateMipmaps() error {
	gl.BindTexture(t.target, t.name)
	gl.GenerateMipmap(t.target)
	return checkError("GenerateMipmap")
}

func (t *texture) Bind(slot int) error {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(slot))
	gl.BindTexture(t.target, t.name)
	return checkError("BindTexture")
}

func (t *texture) Unbind(slot int) error {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(slot))
	gl.BindTexture(t.target, 0)
	return checkError("UnbindTexture")
}

// Readback copies level 0 out through a scratch framebuffer, since
// ES has no GetTexImage. Depth formats cannot take this path;
// ReadPixels reads color only.
func (t *texture) Readback(into []byte) error {
	if t.format.IsDepth() || t.format == render.S8 {
		return lrerr.New(lrerr.NotSupported, lrerr.SeverityError,
			"gles: depth/stencil readback not supported")
	}
	if t.target != gl.TEXTURE_2D {
		return lrerr.New(lrerr.NotSupported, lrerr.SeverityError,
			"gles: readback supported for 2D textures only")
	}
	var prev int32
	gl.GetIntegerv(gl.READ_FRAMEBUFFER_BINDING, &prev)
	var fb uint32
	gl.GenFramebuffers(1, &fb)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, fb)
	gl.FramebufferTexture2D(gl.READ_FRAMEBUFFER, gl.COLOR_ATTACHMENT0,
		gl.TEXTURE_2D, t.name, 0)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(t.width), int32(t.height), t.extFmt, t.xtype, gl.Ptr(into))
	err := checkError("ReadPixels")
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, uint32(prev))
	gl.DeleteFramebuffers(1, &fb)
	return err
}
