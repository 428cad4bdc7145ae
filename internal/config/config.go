package config

import (
	"flag"
	"strings"

	"github.com/pkg/errors"

	"github.com/diegok/pong/internal/game"
)

// Default values for configuration
const (
	DefaultTitle      = "Pong"
	DefaultWidth      = 800
	DefaultHeight     = 600
	DefaultBackground = "#000000"
	DefaultForeground = "#ffffff"
)

// Config holds the application configuration
type Config struct {
	Terminal   bool
	ConfigPath string
	Seed       int64
	Tuning
}

// Tuning is everything a config file may override
type Tuning struct {
	Window Window `yaml:"window" toml:"window"`
	Game   Game   `yaml:"game" toml:"game"`
	Keys   Keys   `yaml:"keys" toml:"keys"`
	Colors Colors `yaml:"colors" toml:"colors"`
}

type Window struct {
	Title  string `yaml:"title" toml:"title"`
	Width  int    `yaml:"width" toml:"width"`
	Height int    `yaml:"height" toml:"height"`
}

// Game mirrors game.Params in file form
type Game struct {
	PaddleSpeed  float64 `yaml:"paddle_speed" toml:"paddle_speed"`
	BallSpeed    float64 `yaml:"ball_speed" toml:"ball_speed"`
	PaddleWidth  float64 `yaml:"paddle_width" toml:"paddle_width"`
	PaddleHeight float64 `yaml:"paddle_height" toml:"paddle_height"`
	BallSize     float64 `yaml:"ball_size" toml:"ball_size"`
	Padding      float64 `yaml:"padding" toml:"padding"`
	DividerWidth float64 `yaml:"divider_width" toml:"divider_width"`
}

func (g Game) Params() game.Params {
	return game.Params{
		PaddleSpeed:  g.PaddleSpeed,
		BallSpeed:    g.BallSpeed,
		PaddleWidth:  g.PaddleWidth,
		PaddleHeight: g.PaddleHeight,
		BallSize:     g.BallSize,
		Padding:      g.Padding,
		DividerWidth: g.DividerWidth,
	}
}

// DefaultTuning returns the built-in settings
func DefaultTuning() Tuning {
	p := game.DefaultParams()
	return Tuning{
		Window: Window{Title: DefaultTitle, Width: DefaultWidth, Height: DefaultHeight},
		Game: Game{
			PaddleSpeed:  p.PaddleSpeed,
			BallSpeed:    p.BallSpeed,
			PaddleWidth:  p.PaddleWidth,
			PaddleHeight: p.PaddleHeight,
			BallSize:     p.BallSize,
			Padding:      p.Padding,
			DividerWidth: p.DividerWidth,
		},
		Keys:   DefaultKeys(),
		Colors: Colors{Background: DefaultBackground, Foreground: DefaultForeground},
	}
}

// ParseArgs parses command line arguments and returns a Config.
// A config file is applied first, explicit flags win over it.
func ParseArgs(args []string) (*Config, error) {
	fs := flag.NewFlagSet("pong", flag.ContinueOnError)

	terminal := fs.Bool("terminal", false, "play in the terminal instead of a window")
	path := fs.String("config", "", "tuning file (.yaml, .yml or .toml)")
	width := fs.Int("width", DefaultWidth, "initial window width")
	height := fs.Int("height", DefaultHeight, "initial window height")
	title := fs.String("title", DefaultTitle, "window title")
	seed := fs.Int64("seed", 0, "serve RNG seed (0 = time based)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if fs.NArg() > 0 {
		return nil, errors.Errorf("unexpected argument %q", fs.Arg(0))
	}

	cfg := &Config{
		Terminal:   *terminal,
		ConfigPath: *path,
		Seed:       *seed,
		Tuning:     DefaultTuning(),
	}

	if cfg.ConfigPath != "" {
		if err := LoadFile(cfg.ConfigPath, &cfg.Tuning); err != nil {
			return nil, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Window.Width = *width
		case "height":
			cfg.Window.Height = *height
		case "title":
			cfg.Window.Title = *title
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the settings and normalizes key names
func (c *Config) Validate() error {
	if c.Window.Width < 1 || c.Window.Height < 1 {
		return errors.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if strings.TrimSpace(c.Window.Title) == "" {
		return errors.New("window title must not be empty")
	}

	g := c.Game
	positive := []struct {
		name  string
		value float64
	}{
		{"paddle_speed", g.PaddleSpeed},
		{"ball_speed", g.BallSpeed},
		{"paddle_width", g.PaddleWidth},
		{"paddle_height", g.PaddleHeight},
		{"ball_size", g.BallSize},
		{"divider_width", g.DividerWidth},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return errors.Errorf("%s must be positive, got %v", p.name, p.value)
		}
	}
	if g.Padding < 0 {
		return errors.Errorf("padding must not be negative, got %v", g.Padding)
	}

	keys, err := c.Keys.Normalize()
	if err != nil {
		return err
	}
	c.Keys = keys

	if _, err := c.Colors.Palette(); err != nil {
		return err
	}

	return nil
}
