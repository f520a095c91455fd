package pipeline

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-pong/engine/renderer/shader"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const vertSource = `
struct VertexInput {
    @location(0) position: vec2<f32>,
}

@vertex
fn vs_main(in: VertexInput) -> @builtin(position) vec4<f32> {
    return vec4<f32>(in.position, 0.0, 1.0);
}
`

const fragSource = `
@fragment
fn fs_main() -> @location(0) vec4<f32> {
    return vec4<f32>(1.0);
}
`

func testShaders(t *testing.T) (shader.Shader, shader.Shader) {
	t.Helper()
	vs, err := shader.NewShader("vert", shader.ShaderTypeVertex, vertSource)
	require.NoError(t, err)
	fs, err := shader.NewShader("frag", shader.ShaderTypeFragment, fragSource)
	require.NoError(t, err)
	return vs, fs
}

func TestNewPipeline_Defaults(t *testing.T) {
	p := NewPipeline("solid")

	assert.Equal(t, "solid", p.PipelineKey())
	assert.Equal(t, wgpu.PrimitiveTopologyTriangleList, p.Topology())
	assert.Equal(t, wgpu.CullModeNone, p.CullMode())
	assert.Equal(t, wgpu.FrontFaceCCW, p.FrontFace())
	assert.Equal(t, wgpu.ColorWriteMaskAll, p.WriteMask())
	assert.False(t, p.BlendEnabled())
	assert.Nil(t, p.BlendState())
	assert.Nil(t, p.RenderPipeline())
}

func TestPipeline_Validate(t *testing.T) {
	vs, fs := testShaders(t)

	assert.ErrorIs(t, NewPipeline("none").Validate(), ErrMissingShader)
	assert.ErrorIs(t, NewPipeline("vert-only", WithVertexShader(vs)).Validate(), ErrMissingShader)
	assert.ErrorIs(t, NewPipeline("frag-only", WithFragmentShader(fs)).Validate(), ErrMissingShader)

	p := NewPipeline("solid", WithShaders(vs, fs))
	require.NoError(t, p.Validate())
	assert.Same(t, vs, p.Shader(shader.ShaderTypeVertex))
	assert.Same(t, fs, p.Shader(shader.ShaderTypeFragment))
	assert.Nil(t, p.Shader(shader.ShaderType(9)))
}

func TestPipeline_Options(t *testing.T) {
	blend := &wgpu.BlendState{}
	p := NewPipeline("custom",
		WithCullMode(wgpu.CullModeBack),
		WithTopology(wgpu.PrimitiveTopologyLineList),
		WithFrontFace(wgpu.FrontFaceCW),
		WithWriteMask(wgpu.ColorWriteMaskRed),
		WithBlendState(blend),
	)

	assert.Equal(t, wgpu.CullModeBack, p.CullMode())
	assert.Equal(t, wgpu.PrimitiveTopologyLineList, p.Topology())
	assert.Equal(t, wgpu.FrontFaceCW, p.FrontFace())
	assert.Equal(t, wgpu.ColorWriteMaskRed, p.WriteMask())
	assert.True(t, p.BlendEnabled())
	assert.Same(t, blend, p.BlendState())

	p = NewPipeline("unblended", WithBlendState(blend), WithBlendState(nil))
	assert.False(t, p.BlendEnabled())
}
