package pong

// MatchResult summarizes a headless match.
type MatchResult struct {
	Left, Right uint32
	Rallies     uint64
	Steps       int
	// Finished is false when the step budget ran out before either side reached the target.
	Finished bool
}

// Winner returns the side with more points. A tie goes to the right.
func (m MatchResult) Winner() Side {
	if m.Left > m.Right {
		return SideLeft
	}
	return SideRight
}

// PlayMatch steps g with a fixed dt until one side has points points or maxSteps steps have run.
// Nothing is drawn, so g does not need graphics.
//
// Parameters:
//   - g: the match to drive, normally built WithAutopilot(true)
//   - points: the score that ends the match
//   - dt: the fixed step in milliseconds
//   - maxSteps: the step budget
//
// Returns:
//   - MatchResult: the final scores and rally count
func PlayMatch(g Game, points uint32, dt float32, maxSteps int) MatchResult {
	var res MatchResult
	for res.Steps < maxSteps {
		g.Step(dt)
		res.Steps++
		if g.Score(SideLeft) >= points || g.Score(SideRight) >= points {
			res.Finished = true
			break
		}
	}
	res.Left = g.Score(SideLeft)
	res.Right = g.Score(SideRight)
	res.Rallies = g.Rallies()
	return res
}
