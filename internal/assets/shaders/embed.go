// Package shaders provides the embedded default shader source.
package shaders

import _ "embed"

// Basic is the default combined vertex/fragment source, used when no
// shader file is configured.
//
//go:embed basic.shader
var Basic string
