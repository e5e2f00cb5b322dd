// Copyright 2026 The Lightrender Authors. All rights reserved.

package render

import (
	"lightrender/lr/lrerr"
)

// PlanarTexture is a composite of 1-3 ordinary Textures representing
// the planes of a multi-plane image format. Plane sizing and
// per-plane pixel format are derived from the composite's
// width/height/format at construction and never change afterwards.
type PlanarTexture struct {
	width  int
	height int
	format ImageFormat
	planes []*Texture
}

// CreatePlanarTexture creates the backing plane textures for an
// image of the given format. Packed formats get one plane; NV12/NV21
// get a full-size luma plane and a half-size interleaved chroma
// plane; YUV420P gets a luma plane and two half-size chroma planes.
func (c *Context) CreatePlanarTexture(width, height int, format ImageFormat) (*PlanarTexture, error) {
	if width <= 0 || height <= 0 {
		return nil, c.fail(lrerr.Errorf(lrerr.InvalidArgument, lrerr.SeverityError,
			"planar texture dimensions %dx%d", width, height))
	}
	p := &PlanarTexture{
		width:  width,
		height: height,
		format: format,
	}
	n := format.PlaneCount()
	for i := 0; i < n; i++ {
		w, h := planeDims(format, i, width, height)
		tex, err := c.CreateTexture(TextureDesc{
			Kind:      Tex2D,
			Width:     w,
			Height:    h,
			Depth:     1,
			Format:    planeFormat(format, i),
			MipLevels: 1,
			Samples:   1,
		})
		if err != nil {
			p.Release()
			return nil, err
		}
		p.planes = append(p.planes, tex)
	}
	return p, nil
}

// Width returns the composite width.
func (p *PlanarTexture) Width() int { return p.width }

// Height returns the composite height.
func (p *PlanarTexture) Height() int { return p.height }

// Format returns the composite image format.
func (p *PlanarTexture) Format() ImageFormat { return p.format }

// PlaneCount returns the number of backing textures.
func (p *PlanarTexture) PlaneCount() int { return len(p.planes) }

// Plane returns the backing texture of plane i.
func (p *PlanarTexture) Plane(i int) *Texture {
	if i < 0 || i >= len(p.planes) {
		return nil
	}
	return p.planes[i]
}

// Release drops the composite's ownership of every plane texture.
func (p *PlanarTexture) Release() {
	for _, t := range p.planes {
		if t != nil {
			t.Release()
		}
	}
	p.planes = nil
}

// UpdateFromImage copies each plane of img into its backing texture.
// The image's plane count is validated against the composite's
// format before any copy: a mismatch fails without partial writes.
func (p *PlanarTexture) UpdateFromImage(img *ImageData) error {
	if img == nil {
		return lrerr.New(lrerr.InvalidArgument, lrerr.SeverityError, "nil image")
	}
	if img.Format != p.format {
		return lrerr.Errorf(lrerr.TextureFormatUnsupported, lrerr.SeverityError,
			"image format %s does not match planar texture format %s", img.Format, p.format)
	}
	if len(img.Planes) < len(p.planes) {
		return lrerr.Errorf(lrerr.InvalidArgument, lrerr.SeverityError,
			"format %s requires %d planes, image has %d", p.format, len(p.planes), len(img.Planes))
	}
	// Pack every plane before touching the GPU so a bad stride or
	// short buffer on a later plane cannot leave earlier planes
	// already updated.
	packed := make([][]byte, len(p.planes))
	for i := range p.planes {
		data, err := packPlane(img, i, p.format)
		if err != nil {
			return err
		}
		packed[i] = data
	}
	for i, tex := range p.planes {
		if err := tex.UpdateData(packed[i], nil); err != nil {
			return err
		}
	}
	return nil
}

// packPlane returns plane i of img as tightly packed rows, copying
// only when the source stride carries padding.
func packPlane(img *ImageData, i int, f ImageFormat) ([]byte, error) {
	pl := img.Planes[i]
	w, h := planeDims(f, i, img.Width, img.Height)
	row := planeRowBytes(f, i, img.Width)
	if pl.Stride < row || len(pl.Data) < pl.Stride*(h-1)+row {
		return nil, lrerr.Errorf(lrerr.InvalidArgument, lrerr.SeverityError,
			"plane %d: stride %d, %d bytes for %dx%d", i, pl.Stride, len(pl.Data), w, h)
	}
	if pl.Stride == row {
		return pl.Data[:row*h], nil
	}
	packed := make([]byte, row*h)
	for y := 0; y < h; y++ {
		copy(packed[y*row:(y+1)*row], pl.Data[y*pl.Stride:y*pl.Stride+row])
	}
	return packed, nil
}

// BindAll binds plane i to unit baseSlot+i, in plane order
// (Y, then U or interleaved UV, then V). Shader-side sampler arrays
// rely on this ordering.
func (p *PlanarTexture) BindAll(baseSlot int) error {
	for i, tex := range p.planes {
		if err := tex.Bind(baseSlot + i); err != nil {
			return err
		}
	}
	return nil
}

// UnbindAll detaches every plane from the unit it was bound to.
func (p *PlanarTexture) UnbindAll() error {
	for _, tex := range p.planes {
		if err := tex.Unbind(); err != nil {
			return err
		}
	}
	return nil
}

// ReadbackImage copies GPU contents of every plane back into a
// host-memory image with tightly packed planes.
func (p *PlanarTexture) ReadbackImage() (*ImageData, error) {
	img, err := AllocImage(p.width, p.height, p.format)
	if err != nil {
		return nil, err
	}
	for i, tex := range p.planes {
		if err := tex.Readback(img.Planes[i].Data); err != nil {
			return nil, err
		}
	}
	return img, nil
}
