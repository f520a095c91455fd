package paddle

// PaddleBuilderOption is a functional option for configuring a Paddle.
type PaddleBuilderOption func(p *paddle)

// WithPosition sets the initial center.
//
// Parameters:
//   - x, y: the center in arena units
//
// Returns:
//   - PaddleBuilderOption: option function to apply
func WithPosition(x, y float32) PaddleBuilderOption {
	return func(p *paddle) {
		p.SetPosition(x, y)
	}
}

// WithSize sets the fixed width and height in arena units.
//
// Parameters:
//   - width, height: the paddle size
//
// Returns:
//   - PaddleBuilderOption: option function to apply
func WithSize(width, height float32) PaddleBuilderOption {
	return func(p *paddle) {
		p.width, p.height = width, height
	}
}
