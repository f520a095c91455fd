package ball

import (
	"github.com/Carmen-Shannon/oxy-pong/engine/game_object"
)

const (
	// ServeSpeed is the horizontal speed in arena units per millisecond. Bounces only flip its sign.
	ServeSpeed float32 = 0.6

	// BounceGain scales the normalized paddle offset into vertical velocity.
	BounceGain float32 = 4

	// Segments is the number of perimeter vertices of the ball's triangle fan.
	Segments = 32
)

// ball is the implementation of the Ball interface.
type ball struct {
	game_object.GameObject

	radius float32
	vx, vy float32

	indices []uint32
}

// Ball is the puck. It moves in a straight line and only changes velocity through
// Bounce, BounceY and Reset.
type Ball interface {
	game_object.GameObject
	game_object.Steppable
	game_object.Drawable

	X() float32
	Y() float32
	Radius() float32
	VelocityX() float32
	VelocityY() float32

	// Bounce reverses the horizontal direction and replaces the vertical velocity with
	// dy*BounceGain, discarding the previous vertical velocity.
	//
	// Parameters:
	//   - dy: the normalized hit offset from the paddle center
	Bounce(dy float32)

	// BounceY reverses the vertical direction.
	BounceY()

	// Reset moves the ball to (x, y) and restores the serve velocity (-ServeSpeed, 0).
	//
	// Parameters:
	//   - x, y: the new center in arena units
	Reset(x, y float32)

	// DirX returns +1 when moving right and -1 otherwise, including when stationary.
	DirX() float32

	// DirY returns +1 when moving up and -1 otherwise, including when stationary.
	DirY() float32
}

var _ Ball = &ball{}

// NewBall creates a ball at the origin with the serve velocity.
//
// Parameters:
//   - options: functional options for position, radius and velocity
//
// Returns:
//   - Ball: the new ball
func NewBall(options ...BallBuilderOption) Ball {
	b := &ball{
		GameObject: game_object.NewGameObject("ball"),
		radius:     1,
		vx:         -ServeSpeed,
		indices:    game_object.FanIndices(Segments),
	}
	for _, opt := range options {
		opt(b)
	}
	return b
}

func (b *ball) X() float32 {
	x, _ := b.Position()
	return x
}

func (b *ball) Y() float32 {
	_, y := b.Position()
	return y
}

func (b *ball) Radius() float32 {
	return b.radius
}

func (b *ball) VelocityX() float32 {
	return b.vx
}

func (b *ball) VelocityY() float32 {
	return b.vy
}

func (b *ball) Step(dt float32) {
	x, y := b.Position()
	b.SetPosition(x+b.vx*dt, y+b.vy*dt)
}

func (b *ball) Bounce(dy float32) {
	b.vx = -b.vx
	b.vy = dy * BounceGain
}

func (b *ball) BounceY() {
	b.vy = -b.vy
}

func (b *ball) Reset(x, y float32) {
	b.SetPosition(x, y)
	b.vx = -ServeSpeed
	b.vy = 0
}

func (b *ball) DirX() float32 {
	return direction(b.vx)
}

func (b *ball) DirY() float32 {
	return direction(b.vy)
}

func (b *ball) Vertices(arenaWidth, arenaHeight float32) []float32 {
	x, y := b.Position()
	return game_object.CircleFan(x, y, b.radius, Segments, arenaWidth, arenaHeight)
}

func (b *ball) Indices() []uint32 {
	return b.indices
}

func direction(v float32) float32 {
	if v <= 0 {
		return -1
	}
	return 1
}
