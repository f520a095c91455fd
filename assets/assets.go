// Package assets embeds the WGSL sources the game draws with.
package assets

import _ "embed"

// SolidVertexShader passes a vec2<f32> position at location 0 straight through as clip space.
//
//go:embed solid-vert.wgsl
var SolidVertexShader string

// SolidFragmentShader writes opaque white.
//
//go:embed solid-frag.wgsl
var SolidFragmentShader string
