// Copyright 2026 The Lightrender Authors. All rights reserved.

package gles

import (
	"strings"

	gl "github.com/go-gl/gl/v3.1/gles2"

	"lightrender/lr/lrerr"
	"lightrender/lr/render"
)

// shader implements render.ShaderImpl.
type shader struct {
	name  uint32
	stage render.ShaderStage
	diag  string
}

func (c *context) NewShader(stage render.ShaderStage) (render.ShaderImpl, error) {
	xstage, ok := convStage(stage)
	if !ok {
		return nil, lrerr.Errorf(lrerr.NotSupported, lrerr.SeverityError,
			"gles: %s stage not supported", stage)
	}
	name := gl.CreateShader(xstage)
	if name == 0 {
		if err := checkError("CreateShader"); err != nil {
			return nil, err
		}
		return nil, lrerr.New(lrerr.ResourceCreationFailed, lrerr.SeverityError,
			"gles: CreateShader returned 0")
	}
	return &shader{name: name, stage: stage}, nil
}

func (s *shader) NativeHandle() render.Handle { return render.GLHandle(s.name) }

func (s *shader) Destroy() {
	if s.name != 0 {
		gl.DeleteShader(s.name)
		s.name = 0
	}
}

func (s *shader) Stage() render.ShaderStage { return s.stage }

func (s *shader) Compile(source string) error {
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(s.name, 1, csources, nil)
	free()
	gl.CompileShader(s.name)

	var status int32
	gl.GetShaderiv(s.name, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var n int32
		gl.GetShaderiv(s.name, gl.INFO_LOG_LENGTH, &n)
		diag := strings.Repeat("\x00", int(n)+1)
		gl.GetShaderInfoLog(s.name, n, nil, gl.Str(diag))
		s.diag = strings.TrimRight(diag, "\x00")
		return lrerr.Errorf(lrerr.ShaderCompileFailed, lrerr.SeverityError,
			"gles: %s shader: %s", s.stage, s.diag)
	}
	return nil
}

func (s *shader) CompileLog() string { return s.diag }

// program implements render.ShaderProgramImpl.
type program struct {
	name    uint32
	shaders []uint32
	diag    string
}

func (c *context) NewProgram(shaders []render.ShaderImpl) (render.ShaderProgramImpl, error) {
	name := gl.CreateProgram()
	if name == 0 {
		if err := checkError("CreateProgram"); err != nil {
			return nil, err
		}
		return nil, lrerr.New(lrerr.ResourceCreationFailed, lrerr.SeverityError,
			"gles: CreateProgram returned 0")
	}
	p := &program{name: name}
	for _, s := range shaders {
		sh := s.(*shader)
		gl.AttachShader(name, sh.name)
		p.shaders = append(p.shaders, sh.name)
	}
	return p, nil
}

func (p *program) NativeHandle() render.Handle { return render.GLHandle(p.name) }

func (p *program) Destroy() {
	if p.name != 0 {
		for _, s := range p.shaders {
			gl.DetachShader(p.name, s)
		}
		gl.DeleteProgram(p.name)
		p.name = 0
	}
}

func (p *program) Link() error {
	gl.LinkProgram(p.name)

	var status int32
	gl.GetProgramiv(p.name, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var n int32
		gl.GetProgramiv(p.name, gl.INFO_LOG_LENGTH, &n)
		diag := strings.Repeat("\x00", int(n)+1)
		gl.GetProgramInfoLog(p.name, n, nil, gl.Str(diag))
		p.diag = strings.TrimRight(diag, "\x00")
		return lrerr.Errorf(lrerr.ShaderLinkFailed, lrerr.SeverityError,
			"gles: link: %s", p.diag)
	}
	return nil
}

func (p *program) LinkLog() string { return p.diag }

func (p *program) UniformLocation(name string) int {
	return int(gl.GetUniformLocation(p.name, gl.Str(name+"\x00")))
}

func (p *program) Use() error {
	gl.UseProgram(p.name)
	return checkError("UseProgram")
}

func (p *program) SetInt(loc int, v int32) error {
	gl.Uniform1i(int32(loc), v)
	return nil
}

func (p *program) SetFloat(loc int, v float32) error {
	gl.Uniform1f(int32(loc), v)
	return nil
}

func (p *program) SetVec2(loc int, v [2]float32) error {
	gl.Uniform2fv(int32(loc), 1, &v[0])
	return nil
}

func (p *program) SetVec3(loc int, v [3]float32) error {
	gl.Uniform3fv(int32(loc), 1, &v[0])
	return nil
}

func (p *program) SetVec4(loc int, v [4]float32) error {
	gl.Uniform4fv(int32(loc), 1, &v[0])
	return nil
}

func (p *program) SetMat3(loc int, v [9]float32, transpose bool) error {
	gl.UniformMatrix3fv(int32(loc), 1, transpose, &v[0])
	return nil
}

func (p *program) SetMat4(loc int, v [16]float32, transpose bool) error {
	gl.UniformMatrix4fv(int32(loc), 1, transpose, &v[0])
	return nil
}
