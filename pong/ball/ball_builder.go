package ball

// BallBuilderOption is a functional option for configuring a Ball.
type BallBuilderOption func(b *ball)

// WithPosition sets the initial center.
//
// Parameters:
//   - x, y: the center in arena units
//
// Returns:
//   - BallBuilderOption: option function to apply
func WithPosition(x, y float32) BallBuilderOption {
	return func(b *ball) {
		b.SetPosition(x, y)
	}
}

// WithRadius sets the radius in arena units.
func WithRadius(radius float32) BallBuilderOption {
	return func(b *ball) {
		b.radius = radius
	}
}

// WithVelocity overrides the serve velocity, in arena units per millisecond.
//
// Parameters:
//   - vx, vy: the initial velocity
//
// Returns:
//   - BallBuilderOption: option function to apply
func WithVelocity(vx, vy float32) BallBuilderOption {
	return func(b *ball) {
		b.vx, b.vy = vx, vy
	}
}
