package game_object

import "github.com/Carmen-Shannon/oxy-pong/engine/renderer/mesh_provider"

// GameObjectBuilderOption is a functional option for configuring a GameObject.
type GameObjectBuilderOption func(*gameObject)

// WithID sets a fixed ID instead of the next generated one.
//
// Parameters:
//   - id: the object ID, 0 means generate
//
// Returns:
//   - GameObjectBuilderOption: option function to apply
func WithID(id uint64) GameObjectBuilderOption {
	return func(g *gameObject) {
		g.id = id
	}
}

// WithEnabled sets whether the object starts enabled. Objects are enabled by default.
func WithEnabled(enabled bool) GameObjectBuilderOption {
	return func(g *gameObject) {
		g.enabled.Store(enabled)
	}
}

// WithPosition sets the initial center in arena units.
//
// Parameters:
//   - x, y: the initial center
//
// Returns:
//   - GameObjectBuilderOption: option function to apply
func WithPosition(x, y float32) GameObjectBuilderOption {
	return func(g *gameObject) {
		g.x, g.y = x, y
	}
}

// WithMesh uses an existing MeshProvider instead of creating one.
func WithMesh(m mesh_provider.MeshProvider) GameObjectBuilderOption {
	return func(g *gameObject) {
		g.mesh = m
	}
}
