// Copyright 2026 The Lightrender Authors. All rights reserved.

package render

import (
	"lightrender/lr/lrerr"
)

// ImageFormat describes CPU-side pixel data crossing the API
// boundary, including the multi-plane YUV family.
type ImageFormat int

// Image formats.
const (
	ImageRGBA8 ImageFormat = iota
	ImageBGRA8
	ImageRGB8
	ImageGray8
	ImageNV12
	ImageNV21
	ImageYUV420P
)

// String returns the format name.
func (f ImageFormat) String() string {
	switch f {
	case ImageRGBA8:
		return "rgba8"
	case ImageBGRA8:
		return "bgra8"
	case ImageRGB8:
		return "rgb8"
	case ImageGray8:
		return "gray8"
	case ImageNV12:
		return "nv12"
	case ImageNV21:
		return "nv21"
	case ImageYUV420P:
		return "yuv420p"
	}
	return "invalid"
}

// PlaneCount returns the number of planes of format f.
func (f ImageFormat) PlaneCount() int {
	switch f {
	case ImageNV12, ImageNV21:
		return 2
	case ImageYUV420P:
		return 3
	}
	return 1
}

// ColorSpace tags the YUV matrix coefficients of an image.
type ColorSpace int

// Color spaces.
const (
	BT601 ColorSpace = iota
	BT709
)

// ColorRange tags the quantization range of an image.
type ColorRange int

// Color ranges.
const (
	RangeLimited ColorRange = iota
	RangeFull
)

// Plane is one contiguous sub-image of a multi-plane format.
type Plane struct {
	Data []byte
	// Stride is the byte distance between rows.
	Stride int
}

// ImageData hands CPU-side pixel data into UpdateFromImage and
// receives it back from ReadbackImage. It is the stable contract
// between the rendering core and CPU-side image processing.
type ImageData struct {
	Width  int
	Height int
	Format ImageFormat
	Space  ColorSpace
	Range  ColorRange
	Planes []Plane
}

// planeDims returns the pixel dimensions of plane i of an image of
// format f sized width x height. Chroma planes of 4:2:0 layouts are
// exactly half width and half height, rounded down.
func planeDims(f ImageFormat, i, width, height int) (w, h int) {
	switch f {
	case ImageNV12, ImageNV21:
		if i == 1 {
			return width / 2, height / 2
		}
	case ImageYUV420P:
		if i > 0 {
			return width / 2, height / 2
		}
	}
	return width, height
}

// planeFormat returns the backing texture format of plane i of an
// image of format f.
func planeFormat(f ImageFormat, i int) PixelFmt {
	switch f {
	case ImageRGBA8:
		return RGBA8
	case ImageBGRA8:
		return BGRA8
	case ImageRGB8:
		return RGB8
	case ImageGray8:
		return R8
	case ImageNV12, ImageNV21:
		if i == 1 {
			// Interleaved chroma.
			return RG8
		}
		return R8
	case ImageYUV420P:
		return R8
	}
	return RGBA8
}

// planeRowBytes returns the tightly packed row size of plane i.
func planeRowBytes(f ImageFormat, i, width int) int {
	w, _ := planeDims(f, i, width, 0)
	return w * planeFormat(f, i).Size()
}

// AllocImage allocates a host-memory image with tightly packed
// planes.
func AllocImage(width, height int, f ImageFormat) (*ImageData, error) {
	if width <= 0 || height <= 0 {
		return nil, lrerr.Errorf(lrerr.InvalidArgument, lrerr.SeverityError,
			"image dimensions %dx%d", width, height)
	}
	img := &ImageData{
		Width:  width,
		Height: height,
		Format: f,
		Planes: make([]Plane, f.PlaneCount()),
	}
	for i := range img.Planes {
		_, h := planeDims(f, i, width, height)
		stride := planeRowBytes(f, i, width)
		img.Planes[i] = Plane{
			Data:   make([]byte, stride*h),
			Stride: stride,
		}
	}
	return img, nil
}
