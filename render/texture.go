// Copyright 2026 The Lightrender Authors. All rights reserved.

package render

import (
	"lightrender/lr/lrerr"
)

// Texture is a backend-agnostic GPU texture.
type Texture struct {
	resource
	kind      TextureKind
	width     int
	height    int
	depth     int
	format    PixelFmt
	mipLevels int
	samples   int
	// boundSlot remembers the unit of the last Bind so the
	// no-argument Unbind knows which slot to clear.
	boundSlot int
}

// Kind returns the texture kind.
func (t *Texture) Kind() TextureKind { return t.kind }

// Width returns the level-0 width in pixels.
func (t *Texture) Width() int { return t.width }

// Height returns the level-0 height in pixels.
func (t *Texture) Height() int { return t.height }

// Depth returns the depth or array layer count.
func (t *Texture) Depth() int { return t.depth }

// Format returns the pixel format.
func (t *Texture) Format() PixelFmt { return t.format }

// MipLevels returns the mip level count.
func (t *Texture) MipLevels() int { return t.mipLevels }

// Samples returns the sample count.
func (t *Texture) Samples() int { return t.samples }

func (t *Texture) impl() TextureImpl { return t.resource.impl.(TextureImpl) }

// UpdateData replaces texel data. A nil region replaces the entire
// top mip level; a non-nil region updates a sub-rectangle of it.
func (t *Texture) UpdateData(data []byte, region *Region) error {
	if !t.IsValid() {
		return lrerr.New(lrerr.ResourceInvalid, lrerr.SeverityError, "texture not valid")
	}
	if region != nil {
		if region.X < 0 || region.Y < 0 || region.Width <= 0 || region.Height <= 0 ||
			region.X+region.Width > t.width || region.Y+region.Height > t.height {
			return lrerr.Errorf(lrerr.InvalidArgument, lrerr.SeverityError,
				"region %+v outside %dx%d texture", *region, t.width, t.height)
		}
	}
	return t.impl().UpdateData(data, region)
}

// GenerateMipmaps derives all mip levels below 0 from level 0's
// current contents. Calling it again after further updates
// regenerates from the new contents.
func (t *Texture) GenerateMipmaps() error {
	if !t.IsValid() {
		return lrerr.New(lrerr.ResourceInvalid, lrerr.SeverityError, "texture not valid")
	}
	return t.impl().GenerateMipmaps()
}

// Bind attaches the texture to a numbered sampling unit.
func (t *Texture) Bind(slot int) error {
	if !t.IsValid() {
		return lrerr.New(lrerr.ResourceInvalid, lrerr.SeverityError, "texture not valid")
	}
	if slot < 0 {
		return lrerr.Errorf(lrerr.InvalidArgument, lrerr.SeverityError, "texture unit %d", slot)
	}
	if err := t.impl().Bind(slot); err != nil {
		return err
	}
	t.boundSlot = slot
	return nil
}

// Unbind detaches the texture from the unit it was last bound to.
func (t *Texture) Unbind() error {
	if !t.IsValid() {
		return lrerr.New(lrerr.ResourceInvalid, lrerr.SeverityError, "texture not valid")
	}
	return t.impl().Unbind(t.boundSlot)
}

// Readback copies the texture's level-0 GPU contents into into,
// which must hold Width*Height*Format.Size() bytes.
func (t *Texture) Readback(into []byte) error {
	if !t.IsValid() {
		return lrerr.New(lrerr.ResourceInvalid, lrerr.SeverityError, "texture not valid")
	}
	need := t.width * t.height * t.format.Size()
	if len(into) < need {
		return lrerr.Errorf(lrerr.InvalidArgument, lrerr.SeverityError,
			"readback buffer holds %d bytes, need %d", len(into), need)
	}
	return t.impl().Readback(into)
}
