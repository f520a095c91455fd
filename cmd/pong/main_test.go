package main

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-pong/engine/renderer/shader"
	"github.com/Carmen-Shannon/oxy-pong/pong"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolidPipeline(t *testing.T) {
	p, err := solidPipeline()
	require.NoError(t, err)
	require.NoError(t, p.Validate())

	assert.Equal(t, pong.DefaultPipelineKey, p.PipelineKey())
	assert.Equal(t, wgpu.PrimitiveTopologyTriangleList, p.Topology())
	assert.Equal(t, wgpu.CullModeNone, p.CullMode())
	assert.Equal(t, wgpu.FrontFaceCCW, p.FrontFace())
	assert.Equal(t, wgpu.ColorWriteMaskAll, p.WriteMask())
	assert.False(t, p.BlendEnabled())
	assert.Nil(t, p.BlendState())

	vs := p.Shader(shader.ShaderTypeVertex)
	require.NotNil(t, vs)
	layout := vs.VertexLayout(0)
	require.Len(t, layout, 1)
	assert.Equal(t, uint64(8), layout[0].ArrayStride)
	require.Len(t, layout[0].Attributes, 1)
	assert.Equal(t, wgpu.VertexFormatFloat32x2, layout[0].Attributes[0].Format)
	assert.Equal(t, uint32(0), layout[0].Attributes[0].ShaderLocation)
}
