// Copyright 2026 The Lightrender Authors. All rights reserved.

package gl

import (
	"github.com/go-gl/gl/v4.1-core/gl"

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
			"gl: texture kind %d", desc.Kind)
	}
	internal, extFmt, xtype, ok := convPixelFmt(desc.Format)
	if !ok {
		return nil, lrerr.Errorf(lrerr.TextureFormatUnsupported, lrerr.SeverityError,
			"gl: pixel format %d", desc.Format)
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
		gl.TexImage2DMultisample(target, int32(desc.Samples), uint32(internal),
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

func (t *texture) Readback(into []byte) error {
	gl.BindTexture(t.target, t.name)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.GetTexImage(t.target, 0, t.extFmt, t.xtype, gl.Ptr(into))
	return checkError("GetTexImage")
}
