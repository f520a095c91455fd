package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmbeddedShaders(t *testing.T) {
	assert.Contains(t, SolidVertexShader, "@location(0) position: vec2<f32>")
	assert.Contains(t, SolidVertexShader, "@vertex")
	assert.Contains(t, SolidFragmentShader, "@fragment")
	assert.Contains(t, SolidFragmentShader, "vec4<f32>(1.0, 1.0, 1.0, 1.0)")
}
