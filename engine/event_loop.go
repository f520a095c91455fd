package engine

import (
	"errors"
	"slices"
	"time"
)

// ErrSchedulerStopped is returned when work is scheduled on an event loop after Quit.
var ErrSchedulerStopped = errors.New("engine: scheduler stopped")

// Scheduler defers callbacks onto the loop thread.
type Scheduler interface {
	// SetTimeout runs fn once, no earlier than delay from now.
	//
	// Parameters:
	//   - fn: the callback
	//   - delay: the minimum delay; values <= 0 run on the next pump
	//
	// Returns:
	//   - error: ErrSchedulerStopped once the loop has quit
	SetTimeout(fn func(), delay time.Duration) error

	// RequestAnimationFrame runs fn once at the next frame opportunity.
	//
	// Parameters:
	//   - fn: the frame callback
	//
	// Returns:
	//   - error: ErrSchedulerStopped once the loop has quit
	RequestAnimationFrame(fn func()) error
}

// EventLoop is a Scheduler driven by an external pump, normally the window message loop.
// Everything it runs runs on the goroutine calling Pump, one callback at a time.
type EventLoop interface {
	Scheduler

	// Pump runs every timer that is due, then every frame callback requested before this
	// call. When nothing ran it sleeps until the next timer is due, capped at the idle wait.
	//
	// Returns:
	//   - int: the number of callbacks run
	Pump() int

	// Pending returns the number of queued timers and frame callbacks.
	Pending() int

	// Quit drops all queued callbacks and refuses new ones.
	Quit()
}

type timer struct {
	deadline time.Time
	seq      uint64
	fn       func()
}

// eventLoop is the implementation of the EventLoop interface.
type eventLoop struct {
	timers   []timer
	frames   []func()
	seq      uint64
	stopped  bool
	idleWait time.Duration

	now   func() time.Time
	sleep func(time.Duration)
}

var _ EventLoop = &eventLoop{}

// NewEventLoop creates an EventLoop that waits at most idleWait per idle Pump.
// An idleWait <= 0 disables idle sleeping.
//
// Parameters:
//   - idleWait: the longest a Pump with nothing to run may sleep
//
// Returns:
//   - EventLoop: an empty, running event loop
func NewEventLoop(idleWait time.Duration) EventLoop {
	return &eventLoop{
		idleWait: idleWait,
		now:      time.Now,
		sleep:    time.Sleep,
	}
}

func (l *eventLoop) SetTimeout(fn func(), delay time.Duration) error {
	if l.stopped {
		return ErrSchedulerStopped
	}
	l.seq++
	t := timer{deadline: l.now().Add(max(delay, 0)), seq: l.seq, fn: fn}
	// timers stay sorted by deadline, ties in scheduling order
	i, _ := slices.BinarySearchFunc(l.timers, t, func(a, b timer) int {
		if c := a.deadline.Compare(b.deadline); c != 0 {
			return c
		}
		return int(a.seq) - int(b.seq)
	})
	l.timers = slices.Insert(l.timers, i, t)
	return nil
}

func (l *eventLoop) RequestAnimationFrame(fn func()) error {
	if l.stopped {
		return ErrSchedulerStopped
	}
	l.frames = append(l.frames, fn)
	return nil
}

func (l *eventLoop) Pump() int {
	ran := 0

	now := l.now()
	due := 0
	for due < len(l.timers) && !l.timers[due].deadline.After(now) {
		due++
	}
	fired := slices.Clone(l.timers[:due])
	l.timers = slices.Delete(l.timers, 0, due)
	for _, t := range fired {
		if l.stopped {
			return ran
		}
		t.fn()
		ran++
	}

	frames := l.frames
	l.frames = nil
	for _, fn := range frames {
		if l.stopped {
			return ran
		}
		fn()
		ran++
	}

	if ran == 0 && l.idleWait > 0 {
		wait := l.idleWait
		if len(l.timers) > 0 {
			wait = min(wait, l.timers[0].deadline.Sub(l.now()))
		}
		if wait > 0 {
			l.sleep(wait)
		}
	}
	return ran
}

func (l *eventLoop) Pending() int {
	return len(l.timers) + len(l.frames)
}

func (l *eventLoop) Quit() {
	l.stopped = true
	l.timers = nil
	l.frames = nil
}
