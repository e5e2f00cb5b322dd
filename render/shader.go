// Copyright 2026 The Lightrender Authors. All rights reserved.

package render

import (
	"lightrender/lr/lrerr"
)

// Shader is one compiled shader stage.
// Compilation is one-shot: a shader that fails to compile keeps its
// diagnostic text and reports IsCompiled false permanently.
type Shader struct {
	resource
	stage    ShaderStage
	compiled bool
	tried    bool
	diag     string
}

// Stage returns the shader's stage.
func (s *Shader) Stage() ShaderStage { return s.stage }

// IsCompiled reports whether Compile succeeded.
func (s *Shader) IsCompiled() bool { return s.compiled }

// CompileError returns the diagnostic text of a failed compile.
func (s *Shader) CompileError() string { return s.diag }

func (s *Shader) impl() ShaderImpl { return s.resource.impl.(ShaderImpl) }

// Compile compiles source text. Shader source is passed through as
// an opaque string; no parsing or validation happens at this layer.
func (s *Shader) Compile(source string) error {
	if !s.IsValid() {
		return lrerr.New(lrerr.ResourceInvalid, lrerr.SeverityError, "shader not valid")
	}
	if s.tried {
		return lrerr.New(lrerr.InvalidOperation, lrerr.SeverityError,
			"shader already compiled; there is no recompile-in-place")
	}
	if source == "" {
		return lrerr.New(lrerr.InvalidArgument, lrerr.SeverityError, "empty shader source")
	}
	s.tried = true
	if err := s.impl().Compile(source); err != nil {
		s.diag = s.impl().CompileLog()
		return lrerr.Wrap(lrerr.ShaderCompileFailed, lrerr.SeverityError, err,
			s.stage.String()+" shader compilation failed")
	}
	s.compiled = true
	return nil
}

// ShaderProgram links shaders into one executable unit.
// Linking is one-shot and programs are immutable once linked; that
// immutability is what makes the uniform location cache safe to keep
// for the program's lifetime. A backend that allowed re-linking
// would have to clear the cache.
type ShaderProgram struct {
	resource
	linked bool
	tried  bool
	diag   string
	// Uniform name to location, populated lazily and never
	// invalidated.
	locs map[string]int
}

// IsLinked reports whether Link succeeded.
func (p *ShaderProgram) IsLinked() bool { return p.linked }

// LinkError returns the diagnostic text of a failed link.
func (p *ShaderProgram) LinkError() string { return p.diag }

func (p *ShaderProgram) impl() ShaderProgramImpl { return p.resource.impl.(ShaderProgramImpl) }

// Link links the shaders the program was created with. One-shot.
func (p *ShaderProgram) Link() error {
	if !p.IsValid() {
		return lrerr.New(lrerr.ResourceInvalid, lrerr.SeverityError, "program not valid")
	}
	if p.tried {
		return lrerr.New(lrerr.InvalidOperation, lrerr.SeverityError, "program already linked")
	}
	p.tried = true
	if err := p.impl().Link(); err != nil {
		p.diag = p.impl().LinkLog()
		return lrerr.Wrap(lrerr.ShaderLinkFailed, lrerr.SeverityError, err,
			"program link failed")
	}
	p.linked = true
	return nil
}

// Use makes the program current. Callers that bind through
// Context.SetPipelineState must not also call Use; binding a
// pipeline implies binding its program.
func (p *ShaderProgram) Use() error {
	if !p.linked {
		return lrerr.New(lrerr.ShaderNotCompiled, lrerr.SeverityError, "program not linked")
	}
	return p.impl().Use()
}

// UniformLocation resolves a uniform name, caching the result for
// the program's lifetime. A name that does not resolve yields a
// negative location (also cached).
func (p *ShaderProgram) UniformLocation(name string) int {
	if loc, ok := p.locs[name]; ok {
		return loc
	}
	loc := -1
	if p.linked {
		loc = p.impl().UniformLocation(name)
	}
	if p.locs == nil {
		p.locs = make(map[string]int)
	}
	p.locs[name] = loc
	return loc
}

// Uniform setters. Each silently no-ops when name does not resolve
// to a valid location.

// SetInt sets a scalar int uniform.
func (p *ShaderProgram) SetInt(name string, v int32) error {
	loc := p.UniformLocation(name)
	if loc < 0 {
		return nil
	}
	return p.impl().SetInt(loc, v)
}

// SetFloat sets a scalar float uniform.
func (p *ShaderProgram) SetFloat(name string, v float32) error {
	loc := p.UniformLocation(name)
	if loc < 0 {
		return nil
	}
	return p.impl().SetFloat(loc, v)
}

// SetVec2 sets a 2-component vector uniform.
func (p *ShaderProgram) SetVec2(name string, v [2]float32) error {
	loc := p.UniformLocation(name)
	if loc < 0 {
		return nil
	}
	return p.impl().SetVec2(loc, v)
}

// SetVec3 sets a 3-component vector uniform.
func (p *ShaderProgram) SetVec3(name string, v [3]float32) error {
	loc := p.UniformLocation(name)
	if loc < 0 {
		return nil
	}
	return p.impl().SetVec3(loc, v)
}

// SetVec4 sets a 4-component vector uniform.
func (p *ShaderProgram) SetVec4(name string, v [4]float32) error {
	loc := p.UniformLocation(name)
	if loc < 0 {
		return nil
	}
	return p.impl().SetVec4(loc, v)
}

// SetMat3 sets a 3x3 matrix uniform.
func (p *ShaderProgram) SetMat3(name string, v [9]float32, transpose bool) error {
	loc := p.UniformLocation(name)
	if loc < 0 {
		return nil
	}
	return p.impl().SetMat3(loc, v, transpose)
}

// SetMat4 sets a 4x4 matrix uniform.
func (p *ShaderProgram) SetMat4(name string, v [16]float32, transpose bool) error {
	loc := p.UniformLocation(name)
	if loc < 0 {
		return nil
	}
	return p.impl().SetMat4(loc, v, transpose)
}
