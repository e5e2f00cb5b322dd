// Copyright 2026 The Lightrender Authors. All rights reserved.

// Package render presents a single object-oriented API over multiple
// native graphics backends.
// It defines the front-end resource types (Context, Buffer, Texture,
// Shader, ShaderProgram, FrameBuffer, PipelineState, Fence), the
// backend implementation contracts they dispatch to, and the driver
// registry from which a backend is selected at context creation.
//
// The API is single-threaded by contract: a Context and every
// resource created from it must be used from the goroutine that owns
// the native graphics context. The only internally synchronized state
// is the resource reference count and the registration points for
// drivers and callbacks.
package render

import (
	"sync"

	"lightrender/lr/log"
	"lightrender/lr/lrerr"
)

// Backend identifies one native graphics API.
type Backend int

// Backends.
const (
	// BackendAuto selects the first available backend in
	// priority order.
	BackendAuto Backend = iota
	BackendGL
	BackendGLES
	BackendMetal
	BackendVulkan
	// BackendNull is a headless backend with full front-end
	// semantics and no GPU behind it.
	BackendNull
)

// String returns the backend name.
func (b Backend) String() string {
	switch b {
	case BackendAuto:
		return "auto"
	case BackendGL:
		return "opengl"
	case BackendGLES:
		return "opengl-es"
	case BackendMetal:
		return "metal"
	case BackendVulkan:
		return "vulkan"
	case BackendNull:
		return "null"
	}
	return "invalid"
}

// Config describes the context to create.
type Config struct {
	Backend Backend
	// Surface dimensions, in pixels.
	Width, Height int
	// Debug enables additional backend validation where the
	// native API offers it.
	Debug bool
}

// Driver is the entry point of one backend implementation.
// A driver's sole responsibility is constructing a ContextImpl of the
// matching concrete type; the ContextImpl is then solely responsible
// for constructing every other backend-specific sub-implementation.
type Driver interface {
	// Name returns the driver name.
	// It must not cause the driver to be opened.
	Name() string

	// Backend returns the backend this driver implements.
	Backend() Backend

	// Open initializes the backend and creates a context
	// implementation. Callers should assume that Open is not
	// safe for parallel execution.
	Open(cfg Config) (ContextImpl, error)

	// Close deinitializes the driver.
	// Closing a driver that is not open has no effect.
	Close()
}

// Variables used for driver registration.
var (
	regMu   sync.Mutex
	drivers = make([]Driver, 0, 2)
	regLog  = log.New("render")
)

// Register registers a Driver.
// Driver implementations are expected to call Register exactly once,
// from an init function. If a driver for the same backend has already
// been registered, it will be replaced by drv.
func Register(drv Driver) {
	regMu.Lock()
	defer regMu.Unlock()
	for i := range drivers {
		if drivers[i].Backend() == drv.Backend() {
			drivers[i] = drv
			regLog.Warningf("driver %q replaced", drv.Name())
			return
		}
	}
	drivers = append(drivers, drv)
	regLog.Debugf("driver %q registered", drv.Name())
}

// Drivers returns the registered drivers.
// Client code imports specific backend packages, which register
// themselves on init; backends that were not compiled in are never
// considered for selection.
func Drivers() []Driver {
	regMu.Lock()
	defer regMu.Unlock()
	drv := make([]Driver, len(drivers))
	copy(drv, drivers)
	return drv
}

// For returns the registered driver for a backend, or nil if no such
// driver was compiled in.
func For(b Backend) Driver {
	regMu.Lock()
	defer regMu.Unlock()
	for i := range drivers {
		if drivers[i].Backend() == b {
			return drivers[i]
		}
	}
	return nil
}

// Priority order for BackendAuto selection (first available wins).
// The Vulkan stub and Metal never win automatic selection.
var autoPriority = []Backend{BackendGL, BackendGLES, BackendNull}

// open resolves cfg.Backend to a driver and opens it.
// The driver itself stays registered; contexts never own it.
func open(cfg Config) (ContextImpl, error) {
	if cfg.Backend != BackendAuto {
		drv := For(cfg.Backend)
		if drv == nil {
			return nil, lrerr.Errorf(lrerr.BackendUnavailable, lrerr.SeverityError,
				"backend %s not available", cfg.Backend)
		}
		return drv.Open(cfg)
	}
	for _, b := range autoPriority {
		drv := For(b)
		if drv == nil {
			continue
		}
		impl, err := drv.Open(cfg)
		if err != nil {
			regLog.Noticef("driver %q unavailable: %v", drv.Name(), err)
			continue
		}
		return impl, nil
	}
	return nil, lrerr.New(lrerr.BackendUnavailable, lrerr.SeverityError,
		"no backend available")
}
