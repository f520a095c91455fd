package game_object

import (
	"sync/atomic"

	"github.com/Carmen-Shannon/oxy-pong/engine/renderer/mesh_provider"
)

// nextID hands out object IDs when none is given.
var nextID atomic.Uint64

// Steppable is anything the loop advances by a frame delta.
type Steppable interface {
	// Step advances the object by dt milliseconds.
	Step(dt float32)
}

// Drawable is anything that can produce its own triangle geometry.
type Drawable interface {
	// Vertices returns the current geometry as interleaved x, y pairs in normalized device
	// coordinates, for an arena of the given logical size. The result depends only on the
	// object's state and the arena, so equal inputs give byte-identical output.
	//
	// Parameters:
	//   - arenaWidth: the logical arena width
	//   - arenaHeight: the logical arena height
	//
	// Returns:
	//   - []float32: the vertex positions
	Vertices(arenaWidth, arenaHeight float32) []float32

	// Indices returns the fixed triangle list over Vertices.
	Indices() []uint32

	// Mesh returns the GPU buffers the geometry is uploaded to.
	Mesh() mesh_provider.MeshProvider
}

type gameObject struct {
	id      uint64
	label   string
	enabled atomic.Bool
	x, y    float32
	mesh    mesh_provider.MeshProvider
}

// GameObject is the shared state of an arena entity: identity, position and the mesh its
// geometry is drawn from. Entities embed one and add their own behavior.
type GameObject interface {
	// ID returns the object's unique identifier.
	//
	// Returns:
	//   - uint64: the object ID
	ID() uint64

	// Label returns the object's debug name, also used for its mesh.
	Label() string

	// Enabled returns whether this object is drawn.
	//
	// Returns:
	//   - bool: true if enabled
	Enabled() bool

	// SetEnabled toggles whether this object is drawn.
	SetEnabled(enabled bool)

	// Position returns the object's center in arena units.
	//
	// Returns:
	//   - x, y: the center, origin bottom-left, y up
	Position() (x, y float32)

	// SetPosition moves the object's center.
	//
	// Parameters:
	//   - x, y: the new center in arena units
	SetPosition(x, y float32)

	// Mesh returns the MeshProvider for this object.
	Mesh() mesh_provider.MeshProvider
}

var _ GameObject = &gameObject{}

// NewGameObject creates an enabled GameObject at the origin with its own MeshProvider.
//
// Parameters:
//   - label: the debug name for the object and its mesh
//   - options: functional options for ID, position, enabled state and mesh
//
// Returns:
//   - GameObject: the new object
func NewGameObject(label string, options ...GameObjectBuilderOption) GameObject {
	g := &gameObject{label: label}
	g.enabled.Store(true)
	for _, opt := range options {
		opt(g)
	}
	if g.id == 0 {
		g.id = nextID.Add(1)
	}
	if g.mesh == nil {
		g.mesh = mesh_provider.NewMeshProvider(label)
	}
	return g
}

func (g *gameObject) ID() uint64 {
	return g.id
}

func (g *gameObject) Label() string {
	return g.label
}

func (g *gameObject) Enabled() bool {
	return g.enabled.Load()
}

func (g *gameObject) SetEnabled(enabled bool) {
	g.enabled.Store(enabled)
}

func (g *gameObject) Position() (x, y float32) {
	return g.x, g.y
}

func (g *gameObject) SetPosition(x, y float32) {
	g.x, g.y = x, y
}

func (g *gameObject) Mesh() mesh_provider.MeshProvider {
	return g.mesh
}
