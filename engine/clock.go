package engine

import "time"

// Clock is a monotonic time source in milliseconds. Only differences between readings matter.
type Clock interface {
	Now() float64
}

// monotonicClock reads milliseconds elapsed since it was created. time.Since uses the
// monotonic reading, so wall clock adjustments never produce a negative delta.
type monotonicClock struct {
	start time.Time
}

var _ Clock = &monotonicClock{}

// NewClock returns a Clock that starts at zero now.
//
// Returns:
//   - Clock: a monotonic millisecond clock
func NewClock() Clock {
	return &monotonicClock{start: time.Now()}
}

func (c *monotonicClock) Now() float64 {
	return float64(time.Since(c.start)) / float64(time.Millisecond)
}
