// Copyright 2026 The Lightrender Authors. All rights reserved.

// Package lrerr defines the error taxonomy of the rendering core.
//
// Every fallible operation in the core returns an error that wraps an
// *Error carrying a stable numeric code, a severity, a human-readable
// message and the source location of the failure site. Nothing in the
// core panics across its public surface; Fatal severity is reported
// through the same channel as all others and escalation is the
// caller's decision.
package lrerr

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
)

// Code is a stable numeric error code.
// Codes are grouped by hundreds; the group of a code is retrievable
// through Category.
type Code int

// Generic codes.
const (
	Success Code = iota
	InvalidArgument
	InvalidOperation
	InvalidState
	NotInitialized
	AlreadyInitialized
	OutOfMemory
	NotSupported
	NotImplemented
)

// Device and context codes.
const (
	ContextCreationFailed Code = 100 + iota
	DeviceLost
	BackendUnavailable
)

// Resource codes.
const (
	ResourceCreationFailed Code = 200 + iota
	ResourceNotFound
	ResourceInUse
	ResourceInvalid
	BufferMapFailed
	BufferTooSmall
)

// Shader codes.
const (
	ShaderCompileFailed Code = 300 + iota
	ShaderLinkFailed
	ShaderNotCompiled
	UniformNotFound
	AttributeNotFound
)

// Texture codes.
const (
	TextureCreationFailed Code = 400 + iota
	TextureFormatUnsupported
	TextureSizeExceeded
)

// Framebuffer codes.
const (
	FramebufferIncomplete Code = 500 + iota
	FramebufferAttachment
)

// Pipeline codes.
const (
	PipelineCreationFailed Code = 600 + iota
	PipelineStateInvalid
)

// Fence codes.
const (
	FenceTimeout Code = 700 + iota
	FenceError
)

// File I/O codes.
const (
	FileNotFound Code = 800 + iota
	FileReadFailed
	FileWriteFailed
)

// Category is the group a code belongs to.
type Category int

// Categories.
const (
	CatGeneric Category = iota
	CatDevice
	CatResource
	CatShader
	CatTexture
	CatFramebuffer
	CatPipeline
	CatFence
	CatFile
)

// Category returns the group of c.
func (c Code) Category() Category {
	switch {
	case c < 100:
		return CatGeneric
	case c < 200:
		return CatDevice
	case c < 300:
		return CatResource
	case c < 400:
		return CatShader
	case c < 500:
		return CatTexture
	case c < 600:
		return CatFramebuffer
	case c < 700:
		return CatPipeline
	case c < 800:
		return CatFence
	}
	return CatFile
}

// Severity indicates how serious a reported error is.
type Severity int

// Severities.
const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
	SeverityFatal
)

// String returns the severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityFatal:
		return "fatal"
	}
	return "unknown"
}

// Error is a structured core error.
type Error struct {
	Code     Code
	Severity Severity
	Msg      string
	File     string
	Line     int
	Cause    error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("lr: %s (code %d): %v", e.Msg, e.Code, e.Cause)
	}
	return fmt.Sprintf("lr: %s (code %d)", e.Msg, e.Code)
}

// Unwrap returns the wrapped cause, if any.
func (e *Error) Unwrap() error { return e.Cause }

// Is reports whether target carries the same code.
// It allows errors.Is comparisons against code-only sentinels.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return t.Code == e.Code
	}
	return false
}

// Callback receives every constructed Error of severity Warning or
// higher, synchronously, on whichever goroutine constructed it.
type Callback func(*Error)

var (
	cbMu sync.Mutex
	cb   Callback
)

// SetCallback registers a global error callback.
// Passing nil unregisters. Registration may happen from any
// goroutine; the callback itself runs on the failing goroutine.
func SetCallback(f Callback) {
	cbMu.Lock()
	cb = f
	cbMu.Unlock()
}

func notify(e *Error) {
	if e.Severity < SeverityWarning {
		return
	}
	cbMu.Lock()
	f := cb
	cbMu.Unlock()
	if f != nil {
		f(e)
	}
}

// New creates an Error at the caller's source location.
func New(code Code, sev Severity, msg string) *Error {
	return newAt(2, code, sev, msg, nil)
}

// Errorf creates a formatted Error at the caller's source location.
func Errorf(code Code, sev Severity, format string, args ...any) *Error {
	return newAt(2, code, sev, fmt.Sprintf(format, args...), nil)
}

// Wrap creates an Error that wraps cause.
func Wrap(code Code, sev Severity, cause error, msg string) *Error {
	return newAt(2, code, sev, msg, cause)
}

func newAt(skip int, code Code, sev Severity, msg string, cause error) *Error {
	e := &Error{
		Code:     code,
		Severity: sev,
		Msg:      msg,
		Cause:    cause,
	}
	if _, file, line, ok := runtime.Caller(skip); ok {
		e.File = file
		e.Line = line
	}
	notify(e)
	return e
}

// CodeOf extracts the code carried by err, or Success when err is nil.
// Errors that do not wrap an *Error report InvalidState.
func CodeOf(err error) Code {
	if err == nil {
		return Success
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return InvalidState
}
