// Copyright 2026 The Lightrender Authors. All rights reserved.

package render_test

import (
	"bytes"
	"testing"

	"lightrender/lr/render"
)

func TestPlanarTexturePlanes(t *testing.T) {
	cases := []struct {
		format  render.ImageFormat
		w, h    int
		widths  []int
		heights []int
		formats []render.PixelFmt
	}{
		{render.ImageRGBA8, 33, 17, []int{33}, []int{17}, []render.PixelFmt{render.RGBA8}},
		{render.ImageNV12, 33, 17, []int{33, 16}, []int{17, 8},
			[]render.PixelFmt{render.R8, render.RG8}},
		{render.ImageYUV420P, 33, 17, []int{33, 16, 16}, []int{17, 8, 8},
			[]render.PixelFmt{render.R8, render.R8, render.R8}},
	}
	for _, c := range cases {
		pt, err := ctx.CreatePlanarTexture(c.w, c.h, c.format)
		if err != nil {
			t.Fatalf("Context.CreatePlanarTexture(%s) failed:\n%#v", c.format, err)
		}
		if pt.PlaneCount() != len(c.widths) {
			t.Fatalf("PlanarTexture.PlaneCount(%s): have %d, want %d",
				c.format, pt.PlaneCount(), len(c.widths))
		}
		for i := 0; i < pt.PlaneCount(); i++ {
			pl := pt.Plane(i)
			if pl == nil {
				t.Fatalf("PlanarTexture.Plane(%d): nil plane", i)
			}
			if pl.Width() != c.widths[i] || pl.Height() != c.heights[i] {
				t.Errorf("%s plane %d: have %dx%d, want %dx%d",
					c.format, i, pl.Width(), pl.Height(), c.widths[i], c.heights[i])
			}
			if pl.Format() != c.formats[i] {
				t.Errorf("%s plane %d: have format %d, want %d",
					c.format, i, pl.Format(), c.formats[i])
			}
		}
		if pt.Plane(pt.PlaneCount()) != nil {
			t.Error("PlanarTexture.Plane: non-nil plane out of range")
		}
		pt.Release()
	}
}

func TestPlanarTextureRoundTrip(t *testing.T) {
	pt, err := ctx.CreatePlanarTexture(16, 8, render.ImageNV12)
	if err != nil {
		t.Fatalf("Context.CreatePlanarTexture failed:\n%#v", err)
	}
	defer pt.Release()

	img, err := render.AllocImage(16, 8, render.ImageNV12)
	if err != nil {
		t.Fatalf("render.AllocImage failed:\n%#v", err)
	}
	for i, pl := range img.Planes {
		for j := range pl.Data {
			pl.Data[j] = byte(i*64 + j)
		}
	}
	if err := pt.UpdateFromImage(img); err != nil {
		t.Fatalf("PlanarTexture.UpdateFromImage failed:\n%#v", err)
	}

	back, err := pt.ReadbackImage()
	if err != nil {
		t.Fatalf("PlanarTexture.ReadbackImage failed:\n%#v", err)
	}
	if back.Format != render.ImageNV12 || back.Width != 16 || back.Height != 8 {
		t.Error("PlanarTexture.ReadbackImage: image header mismatch")
	}
	for i := range img.Planes {
		if !bytes.Equal(back.Planes[i].Data, img.Planes[i].Data) {
			t.Errorf("plane %d: contents differ after round trip", i)
		}
	}
}

func TestPlanarTexturePaddedStride(t *testing.T) {
	pt, err := ctx.CreatePlanarTexture(8, 4, render.ImageGray8)
	if err != nil {
		t.Fatalf("Context.CreatePlanarTexture failed:\n%#v", err)
	}
	defer pt.Release()

	// Rows padded to 16 bytes; only the first 8 of each row are
	// pixel data.
	img := &render.ImageData{
		Width:  8,
		Height: 4,
		Format: render.ImageGray8,
		Planes: []render.Plane{{
			Data:   make([]byte, 16*4),
			Stride: 16,
		}},
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			img.Planes[0].Data[y*16+x] = byte(y*8 + x)
		}
	}
	if err := pt.UpdateFromImage(img); err != nil {
		t.Fatalf("PlanarTexture.UpdateFromImage failed:\n%#v", err)
	}

	back, err := pt.ReadbackImage()
	if err != nil {
		t.Fatalf("PlanarTexture.ReadbackImage failed:\n%#v", err)
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			if back.Planes[0].Data[y*8+x] != byte(y*8+x) {
				t.Fatal("padded-stride update: pixel data mismatch")
			}
		}
	}
}

func TestPlanarTextureMismatch(t *testing.T) {
	pt, err := ctx.CreatePlanarTexture(8, 8, render.ImageYUV420P)
	if err != nil {
		t.Fatalf("Context.CreatePlanarTexture failed:\n%#v", err)
	}
	defer pt.Release()

	if err := pt.UpdateFromImage(nil); err == nil {
		t.Error("PlanarTexture.UpdateFromImage: unexpected success with nil image")
	}
	rgba, err := render.AllocImage(8, 8, render.ImageRGBA8)
	if err != nil {
		t.Fatalf("render.AllocImage failed:\n%#v", err)
	}
	if err := pt.UpdateFromImage(rgba); err == nil {
		t.Error("PlanarTexture.UpdateFromImage: unexpected success with format mismatch")
	}

	// Too few planes must fail before any copy.
	short, err := render.AllocImage(8, 8, render.ImageYUV420P)
	if err != nil {
		t.Fatalf("render.AllocImage failed:\n%#v", err)
	}
	short.Planes = short.Planes[:2]
	if err := pt.UpdateFromImage(short); err == nil {
		t.Error("PlanarTexture.UpdateFromImage: unexpected success with missing plane")
	}
}

func TestPlanarTextureUpdateAtomic(t *testing.T) {
	pt, err := ctx.CreatePlanarTexture(16, 8, render.ImageNV12)
	if err != nil {
		t.Fatalf("Context.CreatePlanarTexture failed:\n%#v", err)
	}
	defer pt.Release()

	img, err := render.AllocImage(16, 8, render.ImageNV12)
	if err != nil {
		t.Fatalf("render.AllocImage failed:\n%#v", err)
	}
	for i, pl := range img.Planes {
		for j := range pl.Data {
			pl.Data[j] = byte(i*64 + j)
		}
	}
	if err := pt.UpdateFromImage(img); err != nil {
		t.Fatalf("PlanarTexture.UpdateFromImage failed:\n%#v", err)
	}

	// A bad image whose luma plane is fine but whose chroma plane
	// is truncated must fail without touching either texture.
	bad, err := render.AllocImage(16, 8, render.ImageNV12)
	if err != nil {
		t.Fatalf("render.AllocImage failed:\n%#v", err)
	}
	for j := range bad.Planes[0].Data {
		bad.Planes[0].Data[j] = 0xff
	}
	bad.Planes[1].Data = bad.Planes[1].Data[:3]
	if err := pt.UpdateFromImage(bad); err == nil {
		t.Fatal("PlanarTexture.UpdateFromImage: unexpected success with truncated plane")
	}

	back, err := pt.ReadbackImage()
	if err != nil {
		t.Fatalf("PlanarTexture.ReadbackImage failed:\n%#v", err)
	}
	for i := range img.Planes {
		if !bytes.Equal(back.Planes[i].Data, img.Planes[i].Data) {
			t.Errorf("plane %d: modified by a rejected update", i)
		}
	}
}

func TestPlanarTextureBind(t *testing.T) {
	pt, err := ctx.CreatePlanarTexture(8, 8, render.ImageNV12)
	if err != nil {
		t.Fatalf("Context.CreatePlanarTexture failed:\n%#v", err)
	}
	defer pt.Release()
	if err := pt.BindAll(2); err != nil {
		t.Fatalf("PlanarTexture.BindAll failed:\n%#v", err)
	}
	if err := pt.UnbindAll(); err != nil {
		t.Fatalf("PlanarTexture.UnbindAll failed:\n%#v", err)
	}
}
