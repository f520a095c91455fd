package game_object

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-pong/common"
	"github.com/Carmen-Shannon/oxy-pong/engine/renderer/mesh_provider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGameObject(t *testing.T) {
	a := NewGameObject("ball", WithPosition(3, 4))
	b := NewGameObject("paddle")

	assert.NotEqual(t, a.ID(), b.ID())
	assert.Equal(t, "ball", a.Label())
	assert.True(t, a.Enabled())
	x, y := a.Position()
	assert.Equal(t, float32(3), x)
	assert.Equal(t, float32(4), y)
	require.NotNil(t, a.Mesh())
	assert.Equal(t, "ball", a.Mesh().Label())

	a.SetPosition(7, 8)
	a.SetEnabled(false)
	x, y = a.Position()
	assert.Equal(t, float32(7), x)
	assert.Equal(t, float32(8), y)
	assert.False(t, a.Enabled())
}

func TestNewGameObject_Options(t *testing.T) {
	mesh := mesh_provider.NewMeshProvider("shared")
	g := NewGameObject("x", WithID(42), WithEnabled(false), WithMesh(mesh))

	assert.Equal(t, uint64(42), g.ID())
	assert.False(t, g.Enabled())
	assert.Same(t, mesh, g.Mesh())
}

func TestFanIndices(t *testing.T) {
	idx := FanIndices(32)
	require.Len(t, idx, 96)
	assert.Equal(t, []uint32{0, 1, 2}, idx[:3])
	assert.Equal(t, []uint32{0, 31, 32}, idx[90:93])
	assert.Equal(t, []uint32{0, 32, 1}, idx[93:])

	assert.Equal(t, []uint32{0, 1, 2, 0, 2, 3, 0, 3, 1}, FanIndices(3))
}

func TestCircleFan(t *testing.T) {
	v := CircleFan(50, 25, 10, 4, 100, 50)
	require.Len(t, v, 10)

	// center
	assert.InDelta(t, 0.0, v[0], 1e-6)
	assert.InDelta(t, 0.0, v[1], 1e-6)
	// k=0 at angle 0: (60, 25)
	assert.InDelta(t, 0.2, v[2], 1e-6)
	assert.InDelta(t, 0.0, v[3], 1e-6)
	// k=1 at angle pi/2: (50, 35)
	assert.InDelta(t, 0.0, v[4], 1e-6)
	assert.InDelta(t, 0.4, v[5], 1e-6)
	// k=2 at angle pi: (40, 25)
	assert.InDelta(t, -0.2, v[6], 1e-6)
}

func TestCircleFan_Deterministic(t *testing.T) {
	a := CircleFan(12.5, 40.25, 3, 32, 800, 600)
	b := CircleFan(12.5, 40.25, 3, 32, 800, 600)
	assert.Equal(t, common.SliceToBytes(a), common.SliceToBytes(b))
}

func TestQuad(t *testing.T) {
	v := Quad(50, 25, 10, 20, 100, 50)
	want := []float32{
		common.ToNDC(55, 100), common.ToNDC(15, 50),
		common.ToNDC(45, 100), common.ToNDC(15, 50),
		common.ToNDC(45, 100), common.ToNDC(35, 50),
		common.ToNDC(55, 100), common.ToNDC(35, 50),
	}
	assert.Equal(t, want, v)
	assert.Equal(t, []uint32{0, 1, 2, 0, 2, 3}, QuadIndices())
}
