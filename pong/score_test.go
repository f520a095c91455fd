package pong

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeTitle struct {
	titles []string
}

func (f *fakeTitle) SetTitle(title string) {
	f.titles = append(f.titles, title)
}

func TestTitleSink(t *testing.T) {
	target := &fakeTitle{}
	sink := NewTitleSink(target, "Pong")
	assert.Equal(t, []string{"Pong  0 : 0"}, target.titles)

	sink.ReportScore(SideRight, 1)
	sink.ReportScore(SideLeft, 1)
	sink.ReportScore(SideRight, 2)
	sink.ReportScore(Side(9), 4)

	assert.Equal(t, []string{"Pong  0 : 0", "Pong  0 : 1", "Pong  1 : 1", "Pong  1 : 2"}, target.titles)
}

func TestTitleSink_WiredIntoGame(t *testing.T) {
	target := &fakeTitle{}
	g, _ := newTestGame(t, WithScoreSink(NewTitleSink(target, "Pong")))
	g.Left().SetPosition(5, 10000)

	g.Step(1000)

	assert.Equal(t, "Pong  0 : 1", target.titles[len(target.titles)-1])
}

func TestScoreSinkFunc(t *testing.T) {
	var got []Side
	var sink ScoreSink = ScoreSinkFunc(func(side Side, score uint32) {
		got = append(got, side)
	})

	sink.ReportScore(SideLeft, 1)
	assert.Equal(t, []Side{SideLeft}, got)

	assert.NotPanics(t, func() { NewLogSink().ReportScore(SideLeft, 3) })
}
