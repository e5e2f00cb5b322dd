// Copyright 2026 The Lightrender Authors. All rights reserved.

// Package gles implements the render backend contracts on OpenGL ES
// (3.1).
//
// The package mirrors the desktop GL backend with the ES differences
// folded in: no BGRA ordering, no geometry stage, no polygon fill
// modes, and texture readback through a framebuffer attachment since
// ES has no GetTexImage. The threading contract is the same: the
// opening goroutine is locked to its OS thread and owns all context
// and resource operations.
package gles

import (
	"runtime"

	gl "github.com/go-gl/gl/v3.1/gles2"
	"github.com/go-gl/glfw/v3.3/glfw"

	"lightrender/lr/log"
	"lightrender/lr/lrerr"
	"lightrender/lr/render"
)

// DriverName is the registered driver name.
const DriverName = "opengl-es"

var esLog = log.New("render/gles")

func init() {
	render.Register(&driver{})
}

// driver implements render.Driver.
type driver struct {
	opened bool
}

func (*driver) Name() string            { return DriverName }
func (*driver) Backend() render.Backend { return render.BackendGLES }

// Open initializes GLFW with an ES client API, creates a hidden
// window to own the context and loads the ES entry points. Context
// creation goes through EGL; GLX cannot produce ES contexts on most
// desktop drivers.
func (d *driver) Open(cfg render.Config) (render.ContextImpl, error) {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return nil, lrerr.Wrap(lrerr.BackendUnavailable, lrerr.SeverityError, err,
			"glfw initialization failed")
	}
	glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLESAPI)
	glfw.WindowHint(glfw.ContextCreationAPI, glfw.EGLContextAPI)
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.Visible, glfw.False)
	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, "lr", nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, lrerr.Wrap(lrerr.ContextCreationFailed, lrerr.SeverityError, err,
			"window surface creation failed")
	}
	win.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, lrerr.Wrap(lrerr.BackendUnavailable, lrerr.SeverityError, err,
			"loading GLES entry points failed")
	}
	d.opened = true

	// EGL surfaces routinely hand out a non-zero default target.
	var defFB int32
	gl.GetIntegerv(gl.DRAW_FRAMEBUFFER_BINDING, &defFB)

	c := &context{
		drv:       d,
		win:       win,
		width:     cfg.Width,
		height:    cfg.Height,
		defaultFB: uint32(defFB),
		boundFB:   uint32(defFB),
		limits:    queryLimits(),
	}
	esLog.Infof("opened %s on %s", gl.GoStr(gl.GetString(gl.VERSION)),
		gl.GoStr(gl.GetString(gl.RENDERER)))
	return c, nil
}

func (d *driver) Close() {
	if d.opened {
		d.opened = false
		glfw.Terminate()
	}
}

func queryLimits() render.Limits {
	geti := func(name uint32) int {
		var v int32
		gl.GetIntegerv(name, &v)
		return int(v)
	}
	return render.Limits{
		MaxTextureSize:     geti(gl.MAX_TEXTURE_SIZE),
		MaxTextureLayers:   geti(gl.MAX_ARRAY_TEXTURE_LAYERS),
		MaxTextureUnits:    geti(gl.MAX_COMBINED_TEXTURE_IMAGE_UNITS),
		MaxColorTargets:    min(geti(gl.MAX_COLOR_ATTACHMENTS), render.MaxColorAttachments),
		MaxUniformBindings: geti(gl.MAX_UNIFORM_BUFFER_BINDINGS),
		MaxSamples:         geti(gl.MAX_SAMPLES),
		MaxVertexAttrs:     geti(gl.MAX_VERTEX_ATTRIBS),
	}
}

// checkError drains the error queue and converts the first error to a
// coded failure.
func checkError(op string) error {
	code := gl.GetError()
	if code == gl.NO_ERROR {
		return nil
	}
	for gl.GetError() != gl.NO_ERROR {
	}
	var c lrerr.Code
	switch code {
	case gl.INVALID_ENUM, gl.INVALID_VALUE:
		c = lrerr.InvalidArgument
	case gl.INVALID_OPERATION, gl.INVALID_FRAMEBUFFER_OPERATION:
		c = lrerr.InvalidOperation
	case gl.OUT_OF_MEMORY:
		c = lrerr.OutOfMemory
	default:
		c = lrerr.InvalidState
	}
	return lrerr.Errorf(c, lrerr.SeverityError, "gles: %s failed (0x%04x)", op, code)
}
