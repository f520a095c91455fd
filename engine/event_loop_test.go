package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEventLoop(idle time.Duration) (*eventLoop, *time.Time, *[]time.Duration) {
	now := time.Unix(0, 0)
	var slept []time.Duration
	l := NewEventLoop(idle).(*eventLoop)
	l.now = func() time.Time { return now }
	l.sleep = func(d time.Duration) { slept = append(slept, d) }
	return l, &now, &slept
}

func TestEventLoop_TimersFireInDeadlineOrder(t *testing.T) {
	l, now, _ := newTestEventLoop(0)

	var order []string
	require.NoError(t, l.SetTimeout(func() { order = append(order, "late") }, 10*time.Millisecond))
	require.NoError(t, l.SetTimeout(func() { order = append(order, "early") }, 2*time.Millisecond))
	require.NoError(t, l.SetTimeout(func() { order = append(order, "early-2") }, 2*time.Millisecond))

	assert.Zero(t, l.Pump())

	*now = now.Add(5 * time.Millisecond)
	assert.Equal(t, 2, l.Pump())
	assert.Equal(t, []string{"early", "early-2"}, order)

	*now = now.Add(5 * time.Millisecond)
	assert.Equal(t, 1, l.Pump())
	assert.Equal(t, []string{"early", "early-2", "late"}, order)
	assert.Zero(t, l.Pending())
}

func TestEventLoop_FramesRequestedDuringPumpWait(t *testing.T) {
	l, _, _ := newTestEventLoop(0)

	count := 0
	var frame func()
	frame = func() {
		count++
		_ = l.RequestAnimationFrame(frame)
	}
	require.NoError(t, l.RequestAnimationFrame(frame))

	assert.Equal(t, 1, l.Pump())
	assert.Equal(t, 1, count)
	assert.Equal(t, 1, l.Pending())

	assert.Equal(t, 1, l.Pump())
	assert.Equal(t, 2, count)
}

func TestEventLoop_TimersBeforeFrames(t *testing.T) {
	l, _, _ := newTestEventLoop(0)

	var order []string
	require.NoError(t, l.RequestAnimationFrame(func() { order = append(order, "frame") }))
	require.NoError(t, l.SetTimeout(func() { order = append(order, "timer") }, 0))

	assert.Equal(t, 2, l.Pump())
	assert.Equal(t, []string{"timer", "frame"}, order)
}

func TestEventLoop_IdleSleep(t *testing.T) {
	l, _, slept := newTestEventLoop(time.Millisecond)

	l.Pump()
	require.NoError(t, l.SetTimeout(func() {}, 300*time.Microsecond))
	l.Pump()

	assert.Equal(t, []time.Duration{time.Millisecond, 300 * time.Microsecond}, *slept)
}

func TestEventLoop_Quit(t *testing.T) {
	l, _, _ := newTestEventLoop(0)

	ran := false
	require.NoError(t, l.SetTimeout(func() { ran = true }, 0))
	require.NoError(t, l.RequestAnimationFrame(func() { ran = true }))
	l.Quit()

	assert.Zero(t, l.Pending())
	assert.Zero(t, l.Pump())
	assert.False(t, ran)
	assert.ErrorIs(t, l.SetTimeout(func() {}, 0), ErrSchedulerStopped)
	assert.ErrorIs(t, l.RequestAnimationFrame(func() {}), ErrSchedulerStopped)
}

func TestEventLoop_QuitDuringPump(t *testing.T) {
	l, _, _ := newTestEventLoop(0)

	second := false
	require.NoError(t, l.RequestAnimationFrame(func() { l.Quit() }))
	require.NoError(t, l.RequestAnimationFrame(func() { second = true }))

	assert.Equal(t, 1, l.Pump())
	assert.False(t, second)
}

func TestMonotonicClock(t *testing.T) {
	c := NewClock()
	a := c.Now()
	time.Sleep(2 * time.Millisecond)
	b := c.Now()
	assert.GreaterOrEqual(t, b-a, 2.0)
}
