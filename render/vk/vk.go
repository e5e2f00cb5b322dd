// Copyright 2026 The Lightrender Authors. All rights reserved.

// Package vk registers the Vulkan backend driver.
//
// The backend is a placeholder: it participates in driver selection
// so callers can probe for it uniformly, but Open always fails until
// the Vulkan context implementation lands. It never wins automatic
// selection.
package vk

import (
	"lightrender/lr/lrerr"
	"lightrender/lr/render"
)

// DriverName is the registered driver name.
const DriverName = "vulkan"

func init() {
	render.Register(&driver{})
}

// driver implements render.Driver.
type driver struct{}

func (*driver) Name() string            { return DriverName }
func (*driver) Backend() render.Backend { return render.BackendVulkan }

func (*driver) Open(cfg render.Config) (render.ContextImpl, error) {
	return nil, lrerr.New(lrerr.BackendUnavailable, lrerr.SeverityError,
		"vk: backend not implemented")
}

func (*driver) Close() {}
