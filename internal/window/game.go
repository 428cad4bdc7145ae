// Package window hosts a match in a desktop window using ebiten.
package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/diegok/pong/internal/config"
	"github.com/diegok/pong/internal/game"
	"github.com/diegok/pong/internal/scene"
)

// Game implements ebiten.Game around a single match.
type Game struct {
	sim     *game.Simulation
	keys    bindings
	palette config.Palette
	face    text.Face
	title   string

	match   game.MatchState
	field   game.Size
	started bool
}

func New(sim *game.Simulation, keys config.Keys, palette config.Palette, title string, field game.Size) *Game {
	return &Game{
		sim:     sim,
		keys:    newBindings(keys),
		palette: palette,
		face:    text.NewGoXFace(basicfont.Face7x13),
		title:   title,
		field:   field,
	}
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if !g.started {
		g.match = g.sim.NewMatch(g.field)
		g.started = true
	}

	// Update runs at a fixed TPS, so a tick is always 1/TPS seconds
	dt := 1 / float64(ebiten.TPS())
	if ev := g.sim.Step(&g.match, dt, g.input(), g.field); ev.Scored() {
		ebiten.SetWindowTitle(scene.ScoreTitle(g.title, g.match.LeftScore, g.match.RightScore))
	}
	return nil
}

func (g *Game) input() game.Input {
	return game.Input{
		LeftUp:    ebiten.IsKeyPressed(g.keys.leftUp),
		LeftDown:  ebiten.IsKeyPressed(g.keys.leftDown),
		RightUp:   ebiten.IsKeyPressed(g.keys.rightUp),
		RightDown: ebiten.IsKeyPressed(g.keys.rightDown),
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.palette.Background)
	if !g.started {
		return
	}

	for _, p := range scene.Build(&g.match, g.sim.Params, g.field) {
		switch p.Kind {
		case scene.KindRect:
			vector.DrawFilledRect(screen, float32(p.Rect.X), float32(p.Rect.Y),
				float32(p.Rect.W), float32(p.Rect.H), g.palette.Foreground, false)
		case scene.KindText:
			g.drawText(screen, p, g.palette.Foreground)
		}
	}
}

// drawText places the label so its top-center sits on the anchor
func (g *Game) drawText(screen *ebiten.Image, p scene.Primitive, c color.Color) {
	w, _ := text.Measure(p.Text, g.face, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate(p.Anchor.X-w/2, p.Anchor.Y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, p.Text, g.face, op)
}

// Layout makes the field follow the window size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.field = game.Size{W: float64(outsideWidth), H: float64(outsideHeight)}
	return outsideWidth, outsideHeight
}

// Run opens the window and plays until it is closed
func Run(cfg *config.Config, sim *game.Simulation) error {
	palette, err := cfg.Colors.Palette()
	if err != nil {
		return err
	}

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	field := game.Size{W: float64(cfg.Window.Width), H: float64(cfg.Window.Height)}
	err = ebiten.RunGame(New(sim, cfg.Keys, palette, cfg.Window.Title, field))
	if err == ebiten.Termination {
		return nil
	}
	return err
}
