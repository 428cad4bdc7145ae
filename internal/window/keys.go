package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/diegok/pong/internal/config"
)

var namedKeys = map[string]ebiten.Key{
	config.KeyUp:    ebiten.KeyArrowUp,
	config.KeyDown:  ebiten.KeyArrowDown,
	config.KeyLeft:  ebiten.KeyArrowLeft,
	config.KeyRight: ebiten.KeyArrowRight,

	"a": ebiten.KeyA, "b": ebiten.KeyB, "c": ebiten.KeyC, "d": ebiten.KeyD,
	"e": ebiten.KeyE, "f": ebiten.KeyF, "g": ebiten.KeyG, "h": ebiten.KeyH,
	"i": ebiten.KeyI, "j": ebiten.KeyJ, "k": ebiten.KeyK, "l": ebiten.KeyL,
	"m": ebiten.KeyM, "n": ebiten.KeyN, "o": ebiten.KeyO, "p": ebiten.KeyP,
	"q": ebiten.KeyQ, "r": ebiten.KeyR, "s": ebiten.KeyS, "t": ebiten.KeyT,
	"u": ebiten.KeyU, "v": ebiten.KeyV, "w": ebiten.KeyW, "x": ebiten.KeyX,
	"y": ebiten.KeyY, "z": ebiten.KeyZ,

	"0": ebiten.KeyDigit0, "1": ebiten.KeyDigit1, "2": ebiten.KeyDigit2,
	"3": ebiten.KeyDigit3, "4": ebiten.KeyDigit4, "5": ebiten.KeyDigit5,
	"6": ebiten.KeyDigit6, "7": ebiten.KeyDigit7, "8": ebiten.KeyDigit8,
	"9": ebiten.KeyDigit9,
}

// bindings holds the ebiten keys for the four paddle controls
type bindings struct {
	leftUp, leftDown   ebiten.Key
	rightUp, rightDown ebiten.Key
}

// newBindings expects names already checked by config.Keys.Normalize
func newBindings(k config.Keys) bindings {
	return bindings{
		leftUp:    namedKeys[k.LeftUp],
		leftDown:  namedKeys[k.LeftDown],
		rightUp:   namedKeys[k.RightUp],
		rightDown: namedKeys[k.RightDown],
	}
}
