// Copyright 2026 The Lightrender Authors. All rights reserved.

package main

import (
	"strings"

	"github.com/BurntSushi/toml"

	"lightrender/lr/lrerr"
	"lightrender/lr/render"
)

// fileConfig is the TOML representation of a context configuration.
type fileConfig struct {
	Backend string `toml:"backend"`
	Width   int    `toml:"width"`
	Height  int    `toml:"height"`
	Debug   bool   `toml:"debug"`
}

// defaultConfig is used when no config file is given.
var defaultConfig = fileConfig{
	Backend: "auto",
	Width:   640,
	Height:  480,
}

// loadConfig reads a TOML config file and resolves it to a render
// configuration. An empty path yields the defaults.
func loadConfig(path string) (render.Config, error) {
	fc := defaultConfig
	if path != "" {
		if _, err := toml.DecodeFile(path, &fc); err != nil {
			return render.Config{}, lrerr.Wrap(lrerr.FileReadFailed, lrerr.SeverityError, err,
				"reading config file")
		}
	}
	b, err := parseBackend(fc.Backend)
	if err != nil {
		return render.Config{}, err
	}
	return render.Config{
		Backend: b,
		Width:   fc.Width,
		Height:  fc.Height,
		Debug:   fc.Debug,
	}, nil
}

// parseBackend resolves a backend name.
func parseBackend(name string) (render.Backend, error) {
	switch strings.ToLower(name) {
	case "", "auto":
		return render.BackendAuto, nil
	case "opengl", "gl":
		return render.BackendGL, nil
	case "opengl-es", "gles":
		return render.BackendGLES, nil
	case "vulkan", "vk":
		return render.BackendVulkan, nil
	case "null":
		return render.BackendNull, nil
	}
	return 0, lrerr.Errorf(lrerr.InvalidArgument, lrerr.SeverityError,
		"unknown backend %q", name)
}
