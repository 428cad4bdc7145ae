package ui

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/pong/internal/config"
	"github.com/diegok/pong/internal/game"
)

// HoldTicks is how long a key counts as held after its last press event
// (~300ms at 60Hz). Terminals only report presses and auto-repeats,
// never releases.
const HoldTicks = 18

// KeyName converts a key event to a binding name, or "" if it has none
func KeyName(key tcell.Key, r rune) string {
	switch key {
	case tcell.KeyUp:
		return config.KeyUp
	case tcell.KeyDown:
		return config.KeyDown
	case tcell.KeyLeft:
		return config.KeyLeft
	case tcell.KeyRight:
		return config.KeyRight
	case tcell.KeyRune:
		name := string(unicode.ToLower(r))
		if config.ValidKeyName(name) {
			return name
		}
	}
	return ""
}

// IsQuitKey returns true if the key should quit the application
func IsQuitKey(key tcell.Key, r rune) bool {
	if key == tcell.KeyEscape || key == tcell.KeyCtrlC {
		return true
	}
	return key == tcell.KeyRune && KeyName(key, r) == config.QuitKey
}

type control int

const (
	leftUp control = iota
	leftDown
	rightUp
	rightDown
	controlCount
)

// opposite is the other direction of the same paddle
func (c control) opposite() control {
	return c ^ 1
}

// HeldKeys turns press events into held state for the four controls
type HeldKeys struct {
	bindings map[string]control
	ticks    [controlCount]int
}

func NewHeldKeys(keys config.Keys) *HeldKeys {
	return &HeldKeys{
		bindings: map[string]control{
			keys.LeftUp:    leftUp,
			keys.LeftDown:  leftDown,
			keys.RightUp:   rightUp,
			keys.RightDown: rightDown,
		},
	}
}

// Press marks the bound control held and releases the opposite direction,
// since auto-repeat only ever repeats the most recent key.
// Returns false if name is not bound.
func (h *HeldKeys) Press(name string) bool {
	c, ok := h.bindings[name]
	if !ok {
		return false
	}
	h.ticks[c] = HoldTicks
	h.ticks[c.opposite()] = 0
	return true
}

// HandleKey feeds a key event into Press
func (h *HeldKeys) HandleKey(ev *tcell.EventKey) bool {
	return h.Press(KeyName(ev.Key(), ev.Rune()))
}

// Input returns the current held state
func (h *HeldKeys) Input() game.Input {
	return game.Input{
		LeftUp:    h.ticks[leftUp] > 0,
		LeftDown:  h.ticks[leftDown] > 0,
		RightUp:   h.ticks[rightUp] > 0,
		RightDown: h.ticks[rightDown] > 0,
	}
}

// Tick ages every held control by one frame
func (h *HeldKeys) Tick() {
	for i := range h.ticks {
		if h.ticks[i] > 0 {
			h.ticks[i]--
		}
	}
}
