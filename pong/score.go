package pong

import (
	"fmt"
	"log"
)

// ScoreSink is told about every point as it is scored.
type ScoreSink interface {
	// ReportScore is called once per point with the scoring side and its new total.
	ReportScore(side Side, score uint32)
}

// ScoreSinkFunc adapts a function to ScoreSink.
type ScoreSinkFunc func(side Side, score uint32)

func (f ScoreSinkFunc) ReportScore(side Side, score uint32) {
	f(side, score)
}

// TitleSetter is anything with a title bar, such as window.Window.
type TitleSetter interface {
	SetTitle(title string)
}

// titleSink keeps both totals and rewrites the title on every point.
type titleSink struct {
	target TitleSetter
	prefix string
	scores [2]uint32
}

// NewTitleSink returns a ScoreSink that shows "<prefix>  <left> : <right>" in a title bar
// and writes the 0 : 0 title right away.
//
// Parameters:
//   - target: the title bar to write to
//   - prefix: the text before the score
//
// Returns:
//   - ScoreSink: the sink
func NewTitleSink(target TitleSetter, prefix string) ScoreSink {
	s := &titleSink{target: target, prefix: prefix}
	s.render()
	return s
}

func (s *titleSink) ReportScore(side Side, score uint32) {
	if side != SideLeft && side != SideRight {
		return
	}
	s.scores[side] = score
	s.render()
}

func (s *titleSink) render() {
	s.target.SetTitle(fmt.Sprintf("%s  %d : %d", s.prefix, s.scores[SideLeft], s.scores[SideRight]))
}

// NewLogSink returns a ScoreSink that logs each point.
func NewLogSink() ScoreSink {
	return ScoreSinkFunc(func(side Side, score uint32) {
		log.Printf("[Pong] %s scores: %d", side, score)
	})
}
