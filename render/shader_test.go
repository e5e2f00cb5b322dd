// Copyright 2026 The Lightrender Authors. All rights reserved.

package render_test

import (
	"testing"

	"lightrender/lr/lrerr"
	"lightrender/lr/render"
)

func TestShaderCompile(t *testing.T) {
	s, err := ctx.CreateShader(render.StageVertex)
	if err != nil {
		t.Fatalf("Context.CreateShader failed:\n%#v", err)
	}
	defer s.Release()
	if s.Stage() != render.StageVertex {
		t.Error("Shader.Stage: stage mismatch")
	}
	if s.IsCompiled() {
		t.Error("Shader.IsCompiled: compiled before Compile")
	}
	if err := s.Compile(vertSrc); err != nil {
		t.Fatalf("Shader.Compile failed:\n%#v", err)
	}
	if !s.IsCompiled() {
		t.Error("Shader.IsCompiled: not compiled after successful Compile")
	}
	// Compilation is one-shot.
	if err := s.Compile(vertSrc); err == nil {
		t.Error("Shader.Compile: unexpected success on second call")
	}
}

func TestShaderEmptySource(t *testing.T) {
	s, err := ctx.CreateShader(render.StageFragment)
	if err != nil {
		t.Fatalf("Context.CreateShader failed:\n%#v", err)
	}
	defer s.Release()
	err = s.Compile("")
	if err == nil {
		t.Fatal("Shader.Compile: unexpected success with empty source")
	}
	if lrerr.CodeOf(err) != lrerr.InvalidArgument {
		t.Errorf("Shader.Compile: have code %d, want InvalidArgument", lrerr.CodeOf(err))
	}
}

func TestProgramLink(t *testing.T) {
	prog, err := newProgram()
	if err != nil {
		t.Fatalf("newProgram failed:\n%#v", err)
	}
	defer prog.Release()
	if !prog.IsLinked() {
		t.Error("ShaderProgram.IsLinked: not linked after successful Link")
	}
	// Linking is one-shot too.
	if err := prog.Link(); err == nil {
		t.Error("ShaderProgram.Link: unexpected success on second call")
	}
}

func TestProgramRequiresCompiledShaders(t *testing.T) {
	vs, err := ctx.CreateShader(render.StageVertex)
	if err != nil {
		t.Fatalf("Context.CreateShader failed:\n%#v", err)
	}
	defer vs.Release()
	fs, err := ctx.CreateShader(render.StageFragment)
	if err != nil {
		t.Fatalf("Context.CreateShader failed:\n%#v", err)
	}
	defer fs.Release()

	if _, err := ctx.CreateShaderProgram(vs, fs); err == nil {
		t.Error("Context.CreateShaderProgram: unexpected success with uncompiled shaders")
	}
	if _, err := ctx.CreateShaderProgram(vs); err == nil {
		t.Error("Context.CreateShaderProgram: unexpected success with one shader")
	}
	if _, err := ctx.CreateShaderProgram(); err == nil {
		t.Error("Context.CreateShaderProgram: unexpected success with no shaders")
	}
}

func TestUniformLocationCache(t *testing.T) {
	prog, err := newProgram()
	if err != nil {
		t.Fatalf("newProgram failed:\n%#v", err)
	}
	defer prog.Release()

	loc := prog.UniformLocation("modelViewProjection")
	if loc < 0 {
		t.Fatal("ShaderProgram.UniformLocation: known uniform did not resolve")
	}
	// The cache never invalidates; a second lookup returns the same
	// location.
	if loc2 := prog.UniformLocation("modelViewProjection"); loc2 != loc {
		t.Errorf("ShaderProgram.UniformLocation: have %d, want %d", loc2, loc)
	}
	if prog.UniformLocation("exposure") < 0 {
		t.Error("ShaderProgram.UniformLocation: fragment uniform did not resolve")
	}
	if prog.UniformLocation("noSuchUniform") >= 0 {
		t.Error("ShaderProgram.UniformLocation: unknown uniform resolved")
	}

	// Setters on unresolved names are silent no-ops.
	if err := prog.SetFloat("noSuchUniform", 1); err != nil {
		t.Errorf("ShaderProgram.SetFloat failed:\n%#v", err)
	}
	if err := prog.SetMat4("modelViewProjection", [16]float32{}, false); err != nil {
		t.Errorf("ShaderProgram.SetMat4 failed:\n%#v", err)
	}
	if err := prog.SetFloat("exposure", 1.5); err != nil {
		t.Errorf("ShaderProgram.SetFloat failed:\n%#v", err)
	}
}

func TestGeometryStageUnsupported(t *testing.T) {
	// The headless backend mirrors ES-class hardware here.
	if _, err := ctx.CreateShader(render.StageGeometry); err == nil {
		t.Skip("geometry stage available on this backend")
	}
	if !ctx.HasError() {
		t.Error("Context.HasError: failed creation did not record an error")
	}
	ctx.ClearError()
}
