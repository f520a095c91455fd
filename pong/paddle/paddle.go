package paddle

import (
	"github.com/Carmen-Shannon/oxy-pong/engine/game_object"
)

// Speed is the vertical speed in arena units per millisecond at direction 1.
const Speed float32 = 0.4

// paddle is the implementation of the Paddle interface.
type paddle struct {
	game_object.GameObject

	width, height float32
	direction     float32

	indices []uint32
}

// Paddle is a vertical bar that moves only along y at a commanded direction.
// Its x and size never change after construction and it is not clamped to the arena.
type Paddle interface {
	game_object.GameObject
	game_object.Steppable
	game_object.Drawable

	X() float32
	Y() float32
	Width() float32
	Height() float32

	// Direction returns the commanded direction, normally -1, 0 or +1.
	Direction() float32

	// SetDirection stores d as the commanded direction without validating it.
	//
	// Parameters:
	//   - d: the new direction
	SetDirection(d float32)
}

var _ Paddle = &paddle{}

// NewPaddle creates a stationary paddle.
//
// Parameters:
//   - label: the debug name, e.g. "left-paddle"
//   - options: functional options for position and size
//
// Returns:
//   - Paddle: the new paddle
func NewPaddle(label string, options ...PaddleBuilderOption) Paddle {
	p := &paddle{
		GameObject: game_object.NewGameObject(label),
		width:      1,
		height:     1,
		indices:    game_object.QuadIndices(),
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

func (p *paddle) X() float32 {
	x, _ := p.Position()
	return x
}

func (p *paddle) Y() float32 {
	_, y := p.Position()
	return y
}

func (p *paddle) Width() float32 {
	return p.width
}

func (p *paddle) Height() float32 {
	return p.height
}

func (p *paddle) Direction() float32 {
	return p.direction
}

func (p *paddle) SetDirection(d float32) {
	p.direction = d
}

func (p *paddle) Step(dt float32) {
	x, y := p.Position()
	p.SetPosition(x, y+p.direction*Speed*dt)
}

func (p *paddle) Vertices(arenaWidth, arenaHeight float32) []float32 {
	x, y := p.Position()
	return game_object.Quad(x, y, p.width, p.height, arenaWidth, arenaHeight)
}

func (p *paddle) Indices() []uint32 {
	return p.indices
}
