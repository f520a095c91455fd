package pong

import (
	"math/rand/v2"

	"github.com/Carmen-Shannon/oxy-pong/common"
	"github.com/Carmen-Shannon/oxy-pong/pong/paddle"
)

// DeadbandDivisor sets the steering deadband to paddle height / DeadbandDivisor.
const DeadbandDivisor = 50

// tracker is the implementation of the Tracker interface.
type tracker struct {
	rng    *rand.Rand
	height float32
	target float32
}

// Tracker steers a paddle so that a randomly chosen point on it follows the ball.
// The aim point is re-rolled each time the tracked paddle hits the ball.
type Tracker interface {
	// Target returns the aim offset from the paddle center, in [-height/2, height/2).
	Target() float32

	// Retarget draws a new aim offset uniformly from [-height/2, height/2).
	Retarget()

	// Steer sets p's direction towards ballY: +1 or -1 while the aim point is at least
	// height/DeadbandDivisor away from the ball, 0 inside that band.
	//
	// Parameters:
	//   - p: the paddle to steer
	//   - ballY: the ball's current y
	Steer(p paddle.Paddle, ballY float32)
}

var _ Tracker = &tracker{}

// NewTracker creates a Tracker for paddles of the given height and rolls its first target.
//
// Parameters:
//   - rng: the random source for targets
//   - height: the paddle height
//
// Returns:
//   - Tracker: the new tracker
func NewTracker(rng *rand.Rand, height float32) Tracker {
	t := &tracker{rng: rng, height: height}
	t.Retarget()
	return t
}

func (t *tracker) Target() float32 {
	return t.target
}

func (t *tracker) Retarget() {
	t.target = t.rng.Float32()*t.height - t.height/2
}

func (t *tracker) Steer(p paddle.Paddle, ballY float32) {
	aim := p.Y() + t.target
	switch {
	case common.Within(aim, ballY, p.Height()/DeadbandDivisor):
		p.SetDirection(0)
	case aim < ballY:
		p.SetDirection(1)
	default:
		p.SetDirection(-1)
	}
}
