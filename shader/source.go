package shader

import _ "embed"

// VertexSource is the wave-displacement vertex stage (GLSL 330).
//
//go:embed glsl/wave.vs
var VertexSource string

// FragmentSource shades the displaced note with its atlas texture.
//
//go:embed glsl/wave.fs
var FragmentSource string

// Lighting uniforms set by the renderer each frame.
const (
	UniformViewPos        = "uViewPos"
	UniformLightPos       = "uLightPos"
	UniformLightColor     = "uLightColor"
	UniformLightIntensity = "uLightIntensity"
)
