package pong

import (
	"math/rand/v2"
	"testing"

	"github.com/Carmen-Shannon/oxy-pong/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scoreEvent struct {
	side  Side
	score uint32
}

func newTestGame(t *testing.T, options ...GameBuilderOption) (Game, *[]scoreEvent) {
	t.Helper()
	events := &[]scoreEvent{}
	options = append([]GameBuilderOption{
		WithRand(rand.New(rand.NewPCG(1, 2))),
		WithScoreSink(ScoreSinkFunc(func(side Side, score uint32) {
			*events = append(*events, scoreEvent{side, score})
		})),
	}, options...)
	g, err := NewGame(1000, 500, options...)
	require.NoError(t, err)
	return g, events
}

func TestNewGame_Layout(t *testing.T) {
	g, _ := newTestGame(t)

	w, h := g.Arena()
	assert.Equal(t, float32(1000), w)
	assert.Equal(t, float32(500), h)

	assert.Equal(t, float32(10), g.Left().Width())
	assert.Equal(t, float32(100), g.Left().Height())
	assert.Equal(t, float32(5), g.Left().X())
	assert.Equal(t, float32(250), g.Left().Y())
	assert.Equal(t, float32(995), g.Right().X())
	assert.Equal(t, float32(250), g.Right().Y())
	assert.Equal(t, "left-paddle", g.Left().Label())
	assert.Equal(t, "right-paddle", g.Right().Label())

	assert.Equal(t, float32(500), g.Ball().X())
	assert.Equal(t, float32(250), g.Ball().Y())
	assert.Equal(t, float32(5), g.Ball().Radius())
	assert.Zero(t, g.Score(SideLeft))
	assert.Zero(t, g.Score(SideRight))
}

func TestNewGame_RejectsEmptyArena(t *testing.T) {
	_, err := NewGame(0, 500)
	assert.ErrorIs(t, err, ErrInvalidArena)

	_, err = NewGame(800, -1)
	assert.ErrorIs(t, err, ErrInvalidArena)
}

func TestStep_BallPastLeftPaddleScoresRight(t *testing.T) {
	g, events := newTestGame(t)
	g.Left().SetPosition(5, 10000)

	g.Step(1000)

	assert.Equal(t, uint32(1), g.Score(SideRight))
	assert.Zero(t, g.Score(SideLeft))
	assert.Equal(t, float32(500), g.Ball().X())
	assert.Equal(t, float32(250), g.Ball().Y())
	assert.Equal(t, float32(-0.6), g.Ball().VelocityX())
	assert.Zero(t, g.Ball().VelocityY())
	assert.Equal(t, []scoreEvent{{SideRight, 1}}, *events)
}

func TestStep_BallPastRightPaddleScoresLeft(t *testing.T) {
	g, events := newTestGame(t)
	g.Right().SetPosition(995, 10000)
	g.Ball().Bounce(0)
	g.Ball().SetPosition(1004, 250)

	g.Step(10)

	assert.Equal(t, uint32(1), g.Score(SideLeft))
	assert.Zero(t, g.Score(SideRight))
	assert.Equal(t, float32(500), g.Ball().X())
	assert.Equal(t, []scoreEvent{{SideLeft, 1}}, *events)
}

func TestStep_AtMostOneScorePerStep(t *testing.T) {
	g, events := newTestGame(t)
	g.Left().SetPosition(5, 10000)
	g.Right().SetPosition(995, 10000)

	for i := 0; i < 50; i++ {
		before := g.Score(SideLeft) + g.Score(SideRight)
		g.Step(700)
		after := g.Score(SideLeft) + g.Score(SideRight)
		assert.LessOrEqual(t, after-before, uint32(1))
	}
	assert.Len(t, *events, int(g.Score(SideLeft)+g.Score(SideRight)))
}

func TestStep_LeftPaddleCenterHitReturnsFlat(t *testing.T) {
	g, _ := newTestGame(t)
	g.Ball().SetPosition(12, 250)

	g.Step(0)

	assert.Equal(t, float32(0.6), g.Ball().VelocityX())
	assert.Zero(t, g.Ball().VelocityY())
	assert.Equal(t, uint64(1), g.Rallies())
}

func TestStep_LeftPaddleEdgeHitAngles(t *testing.T) {
	g, _ := newTestGame(t)
	g.Ball().SetPosition(12, 275)

	g.Step(0)

	// (275-250)/100/2 = 0.125, times the bounce gain of 4
	assert.Equal(t, float32(0.6), g.Ball().VelocityX())
	assert.InDelta(t, 0.5, g.Ball().VelocityY(), 1e-6)
}

func TestStep_MissOutsidePaddleSpan(t *testing.T) {
	g, _ := newTestGame(t)
	g.Ball().SetPosition(12, 300)

	g.Step(0)

	assert.Equal(t, float32(-0.6), g.Ball().VelocityX())
	assert.Zero(t, g.Rallies())
}

func TestStep_RightPaddleHitRetargets(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	g, err := NewGame(1000, 500, WithRand(rng))
	require.NoError(t, err)
	impl := g.(*game)
	before := impl.rightAI.Target()

	g.Ball().Bounce(0)
	g.Ball().SetPosition(990, 250)
	g.Step(0)

	assert.Equal(t, float32(-0.6), g.Ball().VelocityX())
	assert.Equal(t, uint64(1), g.Rallies())
	assert.NotEqual(t, before, impl.rightAI.Target())
}

func TestStep_WallBounce(t *testing.T) {
	tests := []struct {
		name   string
		y      float32
		dy     float32
		wantUp bool
	}{
		{name: "bottom", y: 3, dy: -0.1, wantUp: true},
		{name: "top", y: 497, dy: 0.1, wantUp: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _ := newTestGame(t)
			g.Ball().Bounce(tt.dy)
			g.Ball().SetPosition(500, tt.y)

			g.Step(0)

			if tt.wantUp {
				assert.Greater(t, g.Ball().VelocityY(), float32(0))
			} else {
				assert.Less(t, g.Ball().VelocityY(), float32(0))
			}
		})
	}
}

func TestStep_NoWallBounceWhenMovingAway(t *testing.T) {
	g, _ := newTestGame(t)
	g.Ball().Bounce(0.1)
	g.Ball().SetPosition(500, 3)

	g.Step(0)

	assert.Greater(t, g.Ball().VelocityY(), float32(0))
}

func TestStep_PlayerPaddleMovesWithInput(t *testing.T) {
	g, _ := newTestGame(t)

	g.HandleKeyDown(common.KeyUp)
	g.Step(10)

	assert.Equal(t, float32(254), g.Left().Y())
	assert.InDelta(t, 494, g.Ball().X(), 1e-3)
}

func TestStep_RightPaddleTracksBall(t *testing.T) {
	g, _ := newTestGame(t)
	g.Ball().Bounce(0)
	g.Ball().SetPosition(500, 450)

	g.Step(0)

	assert.Equal(t, float32(1), g.Right().Direction())
}

func TestInput_KeyMapping(t *testing.T) {
	tests := []struct {
		name string
		key  uint32
		want float32
	}{
		{name: "up arrow", key: common.KeyUp, want: 1},
		{name: "w", key: common.KeyW, want: 1},
		{name: "down arrow", key: common.KeyDown, want: -1},
		{name: "s", key: common.KeyS, want: -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _ := newTestGame(t)

			g.HandleKeyDown(tt.key)
			assert.Equal(t, tt.want, g.Left().Direction())

			g.HandleKeyUp(tt.key)
			assert.Zero(t, g.Left().Direction())
		})
	}
}

func TestInput_OtherKeysIgnored(t *testing.T) {
	g, _ := newTestGame(t)
	g.HandleKeyDown(common.KeyUp)

	g.HandleKeyDown(common.KeySpace)
	g.HandleKeyUp(common.KeyLeft)

	assert.Equal(t, float32(1), g.Left().Direction())
	assert.Zero(t, g.Right().Direction())
}

func TestInput_ReleaseOfEitherKeyStops(t *testing.T) {
	g, _ := newTestGame(t)

	g.HandleKeyDown(common.KeyUp)
	g.HandleKeyUp(common.KeyDown)

	assert.Zero(t, g.Left().Direction())
}

func TestAutopilot_IgnoresKeyboard(t *testing.T) {
	g, _ := newTestGame(t, WithAutopilot(true))
	g.Ball().SetPosition(500, 450)

	g.HandleKeyDown(common.KeyDown)
	assert.Zero(t, g.Left().Direction())

	g.Step(0)
	assert.Equal(t, float32(1), g.Left().Direction())
}

func TestSide_String(t *testing.T) {
	assert.Equal(t, "left", SideLeft.String())
	assert.Equal(t, "right", SideRight.String())
	assert.Equal(t, "Side(5)", Side(5).String())
}

func TestScore_UnknownSide(t *testing.T) {
	g, _ := newTestGame(t)
	assert.Zero(t, g.Score(Side(3)))
}
