package engine

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Carmen-Shannon/oxy-pong/engine/profiler"
)

// DefaultFrameRate is the cap on frames per second the loop schedules when no limit is set.
const DefaultFrameRate = 240

var (
	// ErrNoHost is returned by Run when the engine was built without a host window.
	ErrNoHost = errors.New("engine: no host to run")

	// ErrNotIdle is returned by Start when the loop has already been started or halted.
	ErrNotIdle = errors.New("engine: loop is not idle")
)

// LoopState is the lifecycle state of the frame loop.
type LoopState int

const (
	// LoopStateIdle is the state before Start.
	LoopStateIdle LoopState = iota

	// LoopStateRunning means a frame is always either requested or pending on a timer.
	LoopStateRunning

	// LoopStateHalted is terminal. Entered when scheduling fails, the host closes, or Quit is called.
	LoopStateHalted
)

func (s LoopState) String() string {
	switch s {
	case LoopStateIdle:
		return "idle"
	case LoopStateRunning:
		return "running"
	case LoopStateHalted:
		return "halted"
	default:
		return fmt.Sprintf("LoopState(%d)", int(s))
	}
}

// Host is the window side of the loop: it owns the message pump the event loop rides on.
type Host interface {
	SetUpdateCallback(callback func())
	SetResizeCallback(callback func(width, height int))
	ProcessMessages()
	IsRunning() bool
}

// Resizer receives framebuffer size changes from the host.
type Resizer interface {
	Resize(width, height int)
}

// loopState is the state carried from one frame to the next.
type loopState struct {
	prevTime float64
	frames   uint64
}

// advance samples the clock and returns the next state with the elapsed milliseconds.
func (s loopState) advance(now float64) (loopState, float32) {
	return loopState{prevTime: now, frames: s.frames + 1}, float32(now - s.prevTime)
}

// engine implements the Engine interface.
type engine struct {
	host      Host
	events    EventLoop
	scheduler Scheduler
	clock     Clock
	resizer   Resizer

	state LoopState
	loop  loopState
	err   error

	frameInterval time.Duration

	profiler         *profiler.Profiler
	profilingEnabled bool

	tickCallback   func(deltaTime float32)
	renderCallback func(deltaTime float32) error
}

// Engine drives the frame loop: each frame samples the clock, runs the tick callback and
// then the render callback with the elapsed milliseconds, and schedules the next frame
// request after the frame interval. All callbacks run on the goroutine that runs the host.
type Engine interface {
	// SetTickCallback registers the simulation step, called first in every frame.
	//
	// Parameters:
	//   - callback: function receiving the elapsed time since the previous frame in milliseconds
	SetTickCallback(callback func(deltaTime float32))

	// SetRenderCallback registers the draw step, called after the tick callback in every frame.
	// A returned error marks the frame as skipped; the loop keeps running.
	//
	// Parameters:
	//   - callback: function receiving the same delta as the tick callback
	SetRenderCallback(callback func(deltaTime float32) error)

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// Start moves the loop from idle to running: it samples the clock and requests the first frame.
	//
	// Returns:
	//   - error: ErrNotIdle, or the scheduler's error, in which case the loop halts
	Start() error

	// Run starts the loop and blocks in the host message pump until the host closes.
	//
	// Returns:
	//   - error: ErrNoHost, a Start error, or the error that halted the loop
	Run() error

	// Quit halts the loop. Safe to call multiple times.
	Quit()

	// State returns the current loop state.
	State() LoopState

	// Frames returns the number of frames run so far.
	Frames() uint64

	// Err returns the scheduling error that halted the loop, if any.
	Err() error
}

var _ Engine = &engine{}

// NewEngine creates a new Engine instance with the provided options.
// With a host and no explicit scheduler, the engine installs an EventLoop pumped by the host's
// update callback.
//
// Parameters:
//   - options: functional options for engine configuration (host, clock, frame limit, etc.)
//
// Returns:
//   - Engine: the newly created, idle engine
//   - error: an error if neither a host nor a scheduler was provided
func NewEngine(options ...EngineBuilderOption) (Engine, error) {
	e := &engine{
		state:         LoopStateIdle,
		frameInterval: time.Second / DefaultFrameRate,
		profiler:      profiler.NewProfiler(time.Second),
	}

	for _, opt := range options {
		opt(e)
	}

	if e.clock == nil {
		e.clock = NewClock()
	}
	if e.scheduler == nil {
		if e.host == nil {
			return nil, errors.New("engine: a host or a scheduler is required")
		}
		e.events = NewEventLoop(time.Millisecond)
		e.scheduler = e.events
	}

	if e.host != nil {
		if e.events != nil {
			e.host.SetUpdateCallback(func() { e.events.Pump() })
		}
		if e.resizer != nil {
			e.host.SetResizeCallback(e.resizer.Resize)
		}
	}

	return e, nil
}

func (e *engine) SetTickCallback(callback func(deltaTime float32)) {
	e.tickCallback = callback
}

func (e *engine) SetRenderCallback(callback func(deltaTime float32) error) {
	e.renderCallback = callback
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

func (e *engine) Start() error {
	if e.state != LoopStateIdle {
		return ErrNotIdle
	}
	e.state = LoopStateRunning
	e.loop = loopState{prevTime: e.clock.Now()}
	if err := e.scheduler.RequestAnimationFrame(e.frame); err != nil {
		e.halt(err)
		return err
	}
	return nil
}

func (e *engine) Run() error {
	if e.host == nil {
		return ErrNoHost
	}
	if err := e.Start(); err != nil {
		return err
	}
	e.host.ProcessMessages()
	e.Quit()
	return e.err
}

func (e *engine) Quit() {
	if e.state == LoopStateHalted {
		return
	}
	e.state = LoopStateHalted
	if e.events != nil {
		e.events.Quit()
	}
}

func (e *engine) State() LoopState {
	return e.state
}

func (e *engine) Frames() uint64 {
	return e.loop.frames
}

func (e *engine) Err() error {
	return e.err
}

// frame runs one tick and render, then schedules the next frame request.
func (e *engine) frame() {
	if e.state != LoopStateRunning {
		return
	}

	var dt float32
	e.loop, dt = e.loop.advance(e.clock.Now())

	if e.tickCallback != nil {
		e.tickCallback(dt)
	}
	if e.renderCallback != nil {
		if err := e.renderCallback(dt); err != nil && e.profilingEnabled {
			e.profiler.SkipFrame()
		}
	}
	if e.profilingEnabled {
		e.profiler.Tick(dt)
	}

	if err := e.scheduler.SetTimeout(e.requestFrame, e.frameInterval); err != nil {
		e.halt(err)
	}
}

// requestFrame is the timer callback that asks for the next frame.
func (e *engine) requestFrame() {
	if e.state != LoopStateRunning {
		return
	}
	if err := e.scheduler.RequestAnimationFrame(e.frame); err != nil {
		e.halt(err)
	}
}

// halt records the first scheduling failure and stops the loop.
func (e *engine) halt(err error) {
	if e.state == LoopStateHalted {
		return
	}
	e.err = err
	log.Printf("[Engine] frame loop halted after %d frames: %v", e.loop.frames, err)
	e.Quit()
}
