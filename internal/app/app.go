package app

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/pong/internal/config"
	"github.com/diegok/pong/internal/game"
	"github.com/diegok/pong/internal/scene"
	"github.com/diegok/pong/internal/ui"
)

// FrameInterval paces the terminal loop at ~60fps
const FrameInterval = 16 * time.Millisecond

// App runs a match in the terminal.
type App struct {
	cfg      *config.Config
	sim      *game.Simulation
	screen   *ui.Screen
	renderer *ui.Renderer
	keys     *ui.HeldKeys

	match game.MatchState
	field game.Size

	quit     chan struct{}
	quitOnce sync.Once
	sigChan  chan os.Signal
}

// NewApp creates a new App instance with the given configuration.
func NewApp(cfg *config.Config, sim *game.Simulation) *App {
	return &App{
		cfg:  cfg,
		sim:  sim,
		keys: ui.NewHeldKeys(cfg.Keys),
		quit: make(chan struct{}),
	}
}

// Run initializes the terminal, sets up signal handling and plays until
// the player quits.
func (a *App) Run() error {
	screen, err := ui.InitScreen()
	if err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}

	a.sigChan = make(chan os.Signal, 1)
	signal.Notify(a.sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(a.sigChan)

	go func() {
		select {
		case <-a.sigChan:
			a.Stop()
		case <-a.quit:
		}
	}()

	return a.RunOn(screen)
}

// RunOn plays on an already initialized screen and finalizes it on return.
func (a *App) RunOn(screen *ui.Screen) error {
	defer a.cleanup()
	if err := a.attach(screen); err != nil {
		return err
	}
	return a.mainLoop()
}

// attach binds the screen and starts a fresh match sized to it
func (a *App) attach(screen *ui.Screen) error {
	a.screen = screen

	palette, err := a.cfg.Colors.Palette()
	if err != nil {
		return err
	}
	a.renderer = ui.NewRenderer(screen, palette)

	a.field = ui.FieldSize(screen.Size())
	a.match = a.sim.NewMatch(a.field)
	return nil
}

// Stop ends the main loop. Safe to call more than once.
func (a *App) Stop() {
	a.quitOnce.Do(func() { close(a.quit) })
}

// Match returns a copy of the current match
func (a *App) Match() game.MatchState {
	return a.match
}

// mainLoop polls events on a goroutine and steps the match on every frame.
func (a *App) mainLoop() error {
	events := make(chan tcell.Event)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-a.quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()

	last := time.Now()
	a.render()

	for {
		select {
		case <-a.quit:
			return nil

		case ev := <-events:
			if a.handleEvent(ev) {
				a.Stop()
				return nil
			}

		case <-ticker.C:
			now := time.Now()
			a.tick(now.Sub(last).Seconds())
			last = now
		}
	}
}

// tick advances the match by dt seconds and redraws it
func (a *App) tick(dt float64) game.Events {
	ev := a.sim.Step(&a.match, dt, a.keys.Input(), a.field)
	a.keys.Tick()
	a.render()
	return ev
}

// handleEvent processes keyboard and resize events.
// Returns true if the application should quit.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ui.IsQuitKey(ev.Key(), ev.Rune()) {
			return true
		}
		a.keys.HandleKey(ev)

	case *tcell.EventResize:
		a.field = ui.FieldSize(ev.Size())
		a.screen.Clear()
		a.render()
	}

	return false
}

func (a *App) render() {
	a.renderer.RenderFrame(scene.Build(&a.match, a.sim.Params, a.field))
}

// cleanup shuts down all resources.
func (a *App) cleanup() {
	a.Stop()
	if a.screen != nil {
		a.screen.Fini()
	}
}
