package pong

import "math/rand/v2"

// GameBuilderOption is a functional option for configuring a Game.
type GameBuilderOption func(g *game)

// WithRand sets the random source for AI targets. Use a seeded source for reproducible matches.
//
// Parameters:
//   - rng: the random source
//
// Returns:
//   - GameBuilderOption: option function to apply
func WithRand(rng *rand.Rand) GameBuilderOption {
	return func(g *game) {
		g.rng = rng
	}
}

// WithScoreSink adds a sink that is told about every point.
//
// Parameters:
//   - sink: the sink to add
//
// Returns:
//   - GameBuilderOption: option function to apply
func WithScoreSink(sink ScoreSink) GameBuilderOption {
	return func(g *game) {
		g.sinks = append(g.sinks, sink)
	}
}

// WithAutopilot hands the left paddle to a Tracker as well. Keyboard input is ignored.
func WithAutopilot(enabled bool) GameBuilderOption {
	return func(g *game) {
		g.autopilot = enabled
	}
}

// WithPipelineKey draws with the pipeline registered under key instead of DefaultPipelineKey.
func WithPipelineKey(key string) GameBuilderOption {
	return func(g *game) {
		g.pipeline = key
	}
}
