package pong

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/Carmen-Shannon/oxy-pong/common"
	"github.com/Carmen-Shannon/oxy-pong/engine/game_object"
	"github.com/Carmen-Shannon/oxy-pong/pong/ball"
	"github.com/Carmen-Shannon/oxy-pong/pong/paddle"
)

const (
	// PaddleWidthDivisor and PaddleHeightDivisor size the paddles from the short side of the arena.
	PaddleWidthDivisor  = 50
	PaddleHeightDivisor = 5

	// CollisionReach is how far from its edge of the arena a paddle catches the ball, in paddle widths.
	CollisionReach float32 = 1.5
)

// ErrInvalidArena is returned by NewGame for a non-positive arena size.
var ErrInvalidArena = errors.New("pong: arena must have a positive size")

// Side identifies a player. The left side is the keyboard player, the right side the AI.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// game is the implementation of the Game interface.
type game struct {
	width, height float32

	ball        ball.Ball
	left, right paddle.Paddle
	scores      [2]uint32
	rallies     uint64

	rng        *rand.Rand
	rightAI    Tracker
	leftAI     Tracker
	sinks      []ScoreSink
	autopilot  bool
	pipeline   string
	graphicsOK bool
}

// Game owns the ball, both paddles and the score, and advances them one frame at a time.
// It is not safe for concurrent use; the loop, input and rendering all run on one goroutine.
type Game interface {
	// Arena returns the fixed logical arena size.
	Arena() (width, height float32)

	Ball() ball.Ball
	Left() paddle.Paddle
	Right() paddle.Paddle

	// Score returns the points scored by side.
	Score(side Side) uint32

	// Rallies returns the number of paddle hits so far.
	Rallies() uint64

	// Step advances the match by dt milliseconds: entities move, then scoring, wall bounces,
	// paddle collisions and finally the AI steering are applied in that order.
	//
	// Parameters:
	//   - dt: elapsed milliseconds, not clamped
	Step(dt float32)

	// HandleKeyDown maps Up/W to +1 and Down/S to -1 on the left paddle.
	HandleKeyDown(keyCode uint32)

	// HandleKeyUp stops the left paddle when Up, W, Down or S is released.
	HandleKeyUp(keyCode uint32)

	// InitGraphics creates one vertex and one index buffer per entity.
	//
	// Parameters:
	//   - r: the renderer to allocate buffers on
	//
	// Returns:
	//   - error: the first buffer creation error
	InitGraphics(r Renderer) error

	// Render draws one frame: a cleared target, then ball, left paddle and right paddle.
	//
	// Parameters:
	//   - r: the renderer passed to InitGraphics
	//
	// Returns:
	//   - error: ErrGraphicsNotInitialized, a BeginFrame error (frame skipped), or the first draw error
	Render(r Renderer) error
}

var _ Game = &game{}

// NewGame builds a match for an arena of the given logical size: paddles sized from the
// short side, inset half a width from each edge and vertically centered, and the ball
// served from the center.
//
// Parameters:
//   - width, height: the arena size, fixed for the session
//   - options: functional options for randomness, score sinks and autopilot
//
// Returns:
//   - Game: the new match
//   - error: ErrInvalidArena for a non-positive size
func NewGame(width, height float32, options ...GameBuilderOption) (Game, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %vx%v", ErrInvalidArena, width, height)
	}

	g := &game{
		width:    width,
		height:   height,
		pipeline: DefaultPipelineKey,
	}
	for _, opt := range options {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	short := min(width, height)
	pw := short / PaddleWidthDivisor
	ph := short / PaddleHeightDivisor

	g.left = paddle.NewPaddle("left-paddle",
		paddle.WithPosition(pw/2, height/2),
		paddle.WithSize(pw, ph),
	)
	g.right = paddle.NewPaddle("right-paddle",
		paddle.WithPosition(width-pw/2, height/2),
		paddle.WithSize(pw, ph),
	)
	g.ball = ball.NewBall(
		ball.WithPosition(width/2, height/2),
		ball.WithRadius(pw/2),
	)

	g.rightAI = NewTracker(g.rng, ph)
	if g.autopilot {
		g.leftAI = NewTracker(g.rng, ph)
	}
	return g, nil
}

func (g *game) Arena() (width, height float32) {
	return g.width, g.height
}

func (g *game) Ball() ball.Ball {
	return g.ball
}

func (g *game) Left() paddle.Paddle {
	return g.left
}

func (g *game) Right() paddle.Paddle {
	return g.right
}

func (g *game) Score(side Side) uint32 {
	if side != SideLeft && side != SideRight {
		return 0
	}
	return g.scores[side]
}

func (g *game) Rallies() uint64 {
	return g.rallies
}

func (g *game) Step(dt float32) {
	for _, s := range []game_object.Steppable{g.ball, g.left, g.right} {
		s.Step(dt)
	}
	g.checkOutOfBounds()
	g.bounceWalls()
	g.collidePaddles()
	g.steer()
}

// checkOutOfBounds awards a point when the ball has fully left past a paddle. At most one
// side scores per step since Reset always serves to the left from the center.
func (g *game) checkOutOfBounds() {
	b := g.ball
	switch {
	case b.DirX() < 0 && b.X() <= -g.left.Width()/2:
		g.award(SideRight)
	case b.DirX() > 0 && b.X() >= g.width+g.right.Width()/2:
		g.award(SideLeft)
	}
}

func (g *game) award(side Side) {
	g.ball.Reset(g.width/2, g.height/2)
	g.scores[side]++
	for _, sink := range g.sinks {
		sink.ReportScore(side, g.scores[side])
	}
}

// bounceWalls reflects the ball off the top and bottom. The margin is half a paddle width,
// which is the ball radius.
func (g *game) bounceWalls() {
	b := g.ball
	margin := g.left.Width() / 2
	if (b.DirY() < 0 && b.Y() <= margin) || (b.DirY() > 0 && b.Y() >= g.height-margin) {
		b.BounceY()
	}
}

func (g *game) collidePaddles() {
	b := g.ball
	switch {
	case b.DirX() < 0 && b.X() <= g.left.Width()*CollisionReach && common.Within(b.Y(), g.left.Y(), g.left.Height()/2):
		b.Bounce(hitOffset(b, g.left))
		g.rallies++
		if g.leftAI != nil {
			g.leftAI.Retarget()
		}
	case b.DirX() > 0 && b.X() >= g.width-g.right.Width()*CollisionReach && common.Within(b.Y(), g.right.Y(), g.right.Height()/2):
		b.Bounce(hitOffset(b, g.right))
		g.rallies++
		g.rightAI.Retarget()
	}
}

// hitOffset is the ball's offset from the paddle center divided by the paddle height and
// then by 2, so a hit at the very edge gives 0.25.
func hitOffset(b ball.Ball, p paddle.Paddle) float32 {
	return (b.Y() - p.Y()) / p.Height() / 2
}

func (g *game) steer() {
	g.rightAI.Steer(g.right, g.ball.Y())
	if g.leftAI != nil {
		g.leftAI.Steer(g.left, g.ball.Y())
	}
}
