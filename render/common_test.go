// Copyright 2026 The Lightrender Authors. All rights reserved.

package render_test

import (
	"log"

	"lightrender/lr/render"
	_ "lightrender/lr/render/null"
)

var (
	drv render.Driver
	ctx *render.Context
)

func init() {
	// Select a driver to use. The null driver is headless and
	// always available.
	drivers := render.Drivers()
drvLoop:
	for i := range drivers {
		switch drivers[i].Name() {
		case "null":
			drv = drivers[i]
			break drvLoop
		}
	}
	if drv == nil {
		log.Fatal("render.Drivers(): driver not found")
	}
	var err error
	ctx, err = render.New(render.Config{
		Backend: render.BackendNull,
		Width:   256,
		Height:  256,
	})
	if err != nil {
		log.Fatal(err)
	}
	// Ideally, we should call ctx.Shutdown somewhere.
}

const (
	vertSrc = `#version 410 core
layout(location = 0) in vec3 position;
layout(location = 1) in vec4 color;
uniform mat4 modelViewProjection;
out vec4 vColor;
void main() {
	vColor = color;
	gl_Position = modelViewProjection * vec4(position, 1.0);
}`
	fragSrc = `#version 410 core
in vec4 vColor;
uniform float exposure;
out vec4 fragColor;
void main() {
	fragColor = vColor * exposure;
}`
)

var (
	// Vertex positions (CCW).
	triPos = [9]float32{
		0, -1, 0,
		-1, 1, 0,
		1, 1, 0,
	}
	// Vertex colors.
	triCol = [12]float32{
		0, 1, 1, 1,
		1, 0, 1, 1,
		1, 1, 0, 1,
	}
	// Input assembly indices.
	triIdx = [3]uint16{0, 1, 2}
)

// newProgram compiles and links the test shaders.
func newProgram() (*render.ShaderProgram, error) {
	vs, err := ctx.CreateShader(render.StageVertex)
	if err != nil {
		return nil, err
	}
	defer vs.Release()
	if err := vs.Compile(vertSrc); err != nil {
		return nil, err
	}
	fs, err := ctx.CreateShader(render.StageFragment)
	if err != nil {
		return nil, err
	}
	defer fs.Release()
	if err := fs.Compile(fragSrc); err != nil {
		return nil, err
	}
	prog, err := ctx.CreateShaderProgram(vs, fs)
	if err != nil {
		return nil, err
	}
	if err := prog.Link(); err != nil {
		prog.Release()
		return nil, err
	}
	return prog, nil
}
