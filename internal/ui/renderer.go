package ui

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/pong/internal/config"
	"github.com/diegok/pong/internal/game"
	"github.com/diegok/pong/internal/scene"
)

// A terminal cell covers this many field units, so 80x24 cells is an 800x600 field
const (
	UnitsPerColumn = 10.0
	UnitsPerRow    = 25.0
)

const (
	BlockChar   = '█'
	DividerChar = '│'
)

// FieldSize converts a terminal size in cells to a field size in units
func FieldSize(cols, rows int) game.Size {
	return game.Size{W: float64(cols) * UnitsPerColumn, H: float64(rows) * UnitsPerRow}
}

// Renderer draws scene primitives onto the terminal
type Renderer struct {
	screen *Screen
	bg     tcell.Style
	fg     tcell.Style
}

// NewRenderer creates a new renderer with the given screen and palette
func NewRenderer(screen *Screen, palette config.Palette) *Renderer {
	bg := tcell.StyleDefault.Background(RGB(palette.Background))
	return &Renderer{
		screen: screen,
		bg:     bg,
		fg:     bg.Foreground(RGB(palette.Foreground)),
	}
}

// RenderFrame clears to the background, draws prims in order and shows the result
func (r *Renderer) RenderFrame(prims []scene.Primitive) {
	w, h := r.screen.Size()
	r.screen.FillRect(0, 0, w, h, r.bg, ' ')

	for _, p := range prims {
		switch p.Kind {
		case scene.KindRect:
			r.drawRect(p, w, h)
		case scene.KindText:
			r.drawText(p, w, h)
		}
	}

	r.screen.Show()
}

func (r *Renderer) drawRect(p scene.Primitive, screenW, screenH int) {
	ch := BlockChar
	if p.Role == scene.RoleDivider {
		ch = DividerChar
	}

	x0, x1 := cellSpan(p.Rect.X, p.Rect.W, UnitsPerColumn)
	y0, y1 := cellSpan(p.Rect.Y, p.Rect.H, UnitsPerRow)
	for y := max(y0, 0); y <= min(y1, screenH-1); y++ {
		for x := max(x0, 0); x <= min(x1, screenW-1); x++ {
			r.screen.SetCell(x, y, r.fg, ch)
		}
	}
}

func (r *Renderer) drawText(p scene.Primitive, screenW, screenH int) {
	row := int(p.Anchor.Y / UnitsPerRow)
	if row < 0 || row >= screenH {
		return
	}
	col := int(p.Anchor.X/UnitsPerColumn) - TextWidth(p.Text)/2
	r.screen.DrawText(col, row, p.Text, r.fg.Bold(true))
}

// cellSpan returns the first and last cell whose center lies in
// [start, start+length). Spans narrower than a cell keep the cell
// under their midpoint so thin shapes stay visible.
func cellSpan(start, length, unit float64) (int, int) {
	first := int(math.Ceil(start/unit - 0.5))
	last := int(math.Ceil((start+length)/unit-0.5)) - 1
	if last < first {
		c := int(math.Floor((start + length/2) / unit))
		return c, c
	}
	return first, last
}
