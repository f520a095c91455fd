package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnspawnedWindow(t *testing.T) {
	w := &engineWindow{title: "Pong"}

	assert.False(t, w.IsRunning())
	assert.Nil(t, w.SurfaceDescriptor())
	assert.Error(t, w.Close())

	w.SetTitle("Pong | 1 - 0")
	assert.Equal(t, "Pong | 1 - 0", w.Title())

	// no platform window, so the loop exits immediately
	calls := 0
	w.SetUpdateCallback(func() { calls++ })
	w.ProcessMessages()
	assert.Zero(t, calls)
}

func TestCallbackFanOut(t *testing.T) {
	w := &engineWindow{}

	var down, up []uint32
	var sizes [][2]int
	w.keyDown(1)
	w.keyUp(1)
	w.resize(10, 20)
	assert.Equal(t, 10, w.Width())
	assert.Equal(t, 20, w.Height())

	w.SetKeyDownCallback(func(k uint32) { down = append(down, k) })
	w.SetKeyUpCallback(func(k uint32) { up = append(up, k) })
	w.SetResizeCallback(func(width, height int) { sizes = append(sizes, [2]int{width, height}) })

	w.keyDown(265)
	w.keyUp(265)
	w.resize(800, 600)

	assert.Equal(t, []uint32{265}, down)
	assert.Equal(t, []uint32{265}, up)
	assert.Equal(t, [][2]int{{800, 600}}, sizes)
	assert.Equal(t, 800, w.Width())
}

func TestBuilderOptions(t *testing.T) {
	w := &engineWindow{}
	for _, opt := range []WindowBuilderOption{
		WithTitle("t"),
		WithSize(640, 480),
		WithMinSize(100, 50),
		WithMaxSize(1920, 1080),
		WithWorkArea(),
	} {
		opt(w)
	}

	assert.Equal(t, "t", w.title)
	assert.Equal(t, 640, w.width)
	assert.Equal(t, 480, w.height)
	assert.Equal(t, 100, w.minWidth)
	assert.Equal(t, 50, w.minHeight)
	assert.Equal(t, 1920, w.maxWidth)
	assert.Equal(t, 1080, w.maxHeight)
	assert.True(t, w.fitWorkArea)
}
