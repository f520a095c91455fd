package pong

import "github.com/Carmen-Shannon/oxy-pong/common"

// keyDirection maps a movement key to the direction it commands.
func keyDirection(keyCode uint32) (float32, bool) {
	switch keyCode {
	case common.KeyUp, common.KeyW:
		return 1, true
	case common.KeyDown, common.KeyS:
		return -1, true
	default:
		return 0, false
	}
}

func (g *game) HandleKeyDown(keyCode uint32) {
	if g.leftAI != nil {
		return
	}
	if d, ok := keyDirection(keyCode); ok {
		g.left.SetDirection(d)
	}
}

func (g *game) HandleKeyUp(keyCode uint32) {
	if g.leftAI != nil {
		return
	}
	if _, ok := keyDirection(keyCode); ok {
		g.left.SetDirection(0)
	}
}
