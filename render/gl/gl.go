// Copyright 2026 The Lightrender Authors. All rights reserved.

// Package gl implements the render backend contracts on desktop
// OpenGL (4.1 core profile).
//
// OpenGL is a global state machine owned by one thread: the driver
// locks the opening goroutine to its OS thread and every context and
// resource operation must happen on that goroutine. Object binds
// performed internally (uploads, attachment changes) restore the
// previous binding so front-end state tracking stays truthful.
package gl

import (
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"lightrender/lr/log"
	"lightrender/lr/lrerr"
	"lightrender/lr/render"
)

// DriverName is the registered driver name.
const DriverName = "opengl"

var glLog = log.New("render/gl")

func init() {
	render.Register(&driver{})
}

// driver implements render.Driver.
type driver struct {
	opened bool
}

func (*driver) Name() string            { return DriverName }
func (*driver) Backend() render.Backend { return render.BackendGL }

// Open initializes GLFW, creates a hidden window to own the GL
// context, makes it current and loads the GL entry points. The
// window stays invisible; presentation targets it all the same, and
// platform embedders can retarget through the usual GLFW surfaces.
func (d *driver) Open(cfg render.Config) (render.ContextImpl, error) {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return nil, lrerr.Wrap(lrerr.BackendUnavailable, lrerr.SeverityError, err,
			"glfw initialization failed")
	}
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
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
			"loading GL entry points failed")
	}
	d.opened = true

	// The default render target is whatever the platform gave us,
	// not necessarily framebuffer 0.
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
	glLog.Infof("opened %s on %s", gl.GoStr(gl.GetString(gl.VERSION)),
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

// checkError drains the GL error queue and converts the first error
// to a coded failure.
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
	return lrerr.Errorf(c, lrerr.SeverityError, "gl: %s failed (0x%04x)", op, code)
}
