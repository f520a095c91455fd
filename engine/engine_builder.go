package engine

import "time"

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithFrameLimit caps how often frames are requested. The next frame is requested no earlier
// than 1/fps after the previous frame finished. Values <= 0 are treated as DefaultFrameRate.
//
// Parameters:
//   - fps: maximum frames per second (default 240)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithFrameLimit(fps float64) EngineBuilderOption {
	return func(e *engine) {
		if fps <= 0 {
			fps = DefaultFrameRate
		}
		e.frameInterval = time.Duration(float64(time.Second) / fps)
	}
}

// WithHost sets the window whose message pump runs the loop.
//
// Parameters:
//   - h: the host, typically a window.Window
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithHost(h Host) EngineBuilderOption {
	return func(e *engine) {
		e.host = h
	}
}

// WithScheduler replaces the host-driven event loop, e.g. with a fake in tests.
func WithScheduler(s Scheduler) EngineBuilderOption {
	return func(e *engine) {
		e.scheduler = s
	}
}

// WithClock replaces the monotonic clock.
func WithClock(c Clock) EngineBuilderOption {
	return func(e *engine) {
		e.clock = c
	}
}

// WithResizer forwards host framebuffer resizes to r, typically the renderer.
//
// Parameters:
//   - r: the receiver of resize events
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithResizer(r Resizer) EngineBuilderOption {
	return func(e *engine) {
		e.resizer = r
	}
}
