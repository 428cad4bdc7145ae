package config

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/diegok/pong/internal/game"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestParseArgs_Defaults(t *testing.T) {
	cfg, err := ParseArgs(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Terminal {
		t.Error("expected window mode by default")
	}
	if cfg.Window.Width != DefaultWidth || cfg.Window.Height != DefaultHeight {
		t.Errorf("expected %dx%d, got %dx%d", DefaultWidth, DefaultHeight, cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.Title != DefaultTitle {
		t.Errorf("expected title %q, got %q", DefaultTitle, cfg.Window.Title)
	}
	if cfg.Keys != DefaultKeys() {
		t.Errorf("expected default keys, got %+v", cfg.Keys)
	}
	if cfg.Game.Params() != game.DefaultParams() {
		t.Errorf("expected default params, got %+v", cfg.Game.Params())
	}
	if cfg.Seed != 0 {
		t.Errorf("expected seed 0, got %d", cfg.Seed)
	}
}

func TestParseArgs_CustomOptions(t *testing.T) {
	args := []string{"--terminal", "--width", "1024", "--height", "768", "--title", "Table Tennis", "--seed", "42"}
	cfg, err := ParseArgs(args)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.Terminal {
		t.Error("expected Terminal to be true")
	}
	if cfg.Window.Width != 1024 || cfg.Window.Height != 768 {
		t.Errorf("expected 1024x768, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.Title != "Table Tennis" {
		t.Errorf("expected title 'Table Tennis', got '%s'", cfg.Window.Title)
	}
	if cfg.Seed != 42 {
		t.Errorf("expected seed 42, got %d", cfg.Seed)
	}
}

func TestParseArgs_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"zero width", []string{"--width", "0"}},
		{"negative height", []string{"--height", "-5"}},
		{"empty title", []string{"--title", "  "}},
		{"unknown flag", []string{"--server"}},
		{"positional arg", []string{"extra"}},
		{"bad width value", []string{"--width", "wide"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseArgs(tt.args); err == nil {
				t.Errorf("expected error for %v", tt.args)
			}
		})
	}
}

func TestParseArgs_YAMLFile(t *testing.T) {
	path := writeFile(t, "pong.yaml", `
window:
  title: Arcade
  width: 1280
game:
  ball_speed: 450
  paddle_height: 120
keys:
  right_up: Up
  right_down: down
colors:
  background: "#101820"
`)

	cfg, err := ParseArgs([]string{"--config", path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ConfigPath != path {
		t.Errorf("expected ConfigPath %s, got %s", path, cfg.ConfigPath)
	}
	if cfg.Window.Title != "Arcade" || cfg.Window.Width != 1280 {
		t.Errorf("expected Arcade 1280 wide, got %q %d", cfg.Window.Title, cfg.Window.Width)
	}
	if cfg.Window.Height != DefaultHeight {
		t.Errorf("expected height to keep default %d, got %d", DefaultHeight, cfg.Window.Height)
	}
	if cfg.Game.BallSpeed != 450 || cfg.Game.PaddleHeight != 120 {
		t.Errorf("expected ball_speed 450 and paddle_height 120, got %+v", cfg.Game)
	}
	if cfg.Game.PaddleSpeed != game.DefaultPaddleSpeed {
		t.Errorf("expected paddle_speed default, got %f", cfg.Game.PaddleSpeed)
	}
	if cfg.Keys.RightUp != "up" || cfg.Keys.RightDown != "down" {
		t.Errorf("expected right keys up/down, got %+v", cfg.Keys)
	}
	if cfg.Keys.LeftUp != "w" {
		t.Errorf("expected left_up to keep 'w', got %q", cfg.Keys.LeftUp)
	}

	pal, err := cfg.Colors.Palette()
	if err != nil {
		t.Fatalf("unexpected palette error: %v", err)
	}
	if pal.Background != (color.RGBA{R: 0x10, G: 0x18, B: 0x20, A: 0xff}) {
		t.Errorf("unexpected background %v", pal.Background)
	}
}

func TestParseArgs_TOMLFile(t *testing.T) {
	path := writeFile(t, "pong.toml", `
[game]
paddle_speed = 900.0
padding = 10.0

[keys]
left_up = "a"
left_down = "z"
`)

	cfg, err := ParseArgs([]string{"--config", path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Game.PaddleSpeed != 900 || cfg.Game.Padding != 10 {
		t.Errorf("expected paddle_speed 900 and padding 10, got %+v", cfg.Game)
	}
	if cfg.Keys.LeftUp != "a" || cfg.Keys.LeftDown != "z" {
		t.Errorf("expected left keys a/z, got %+v", cfg.Keys)
	}
}

func TestParseArgs_FlagsOverrideFile(t *testing.T) {
	path := writeFile(t, "pong.yml", "window:\n  width: 1280\n  height: 720\n")

	cfg, err := ParseArgs([]string{"--config", path, "--width", "640"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Window.Width != 640 {
		t.Errorf("expected flag width 640, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 720 {
		t.Errorf("expected file height 720, got %d", cfg.Window.Height)
	}
}

func TestParseArgs_BadFiles(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantErr string
	}{
		{"unknown yaml field", "a.yaml", "game:\n  gravity: 9.8\n", "parse config"},
		{"unknown toml key", "a.toml", "[game]\ngravity = 9.8\n", "unknown settings"},
		{"bad yaml", "a.yaml", "game: [", "parse config"},
		{"bad toml", "a.toml", "[game\n", "parse config"},
		{"unsupported format", "a.json", "{}", "unsupported config format"},
		{"negative speed", "a.yaml", "game:\n  ball_speed: -1\n", "ball_speed must be positive"},
		{"duplicate key", "a.yaml", "keys:\n  right_up: w\n", "bound to both"},
		{"quit key bound", "a.yaml", "keys:\n  left_up: q\n", "reserved for quit"},
		{"bad colour", "a.toml", "[colors]\nforeground = \"white\"\n", "invalid foreground colour"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)
			_, err := ParseArgs([]string{"--config", path})
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %q", tt.wantErr, err.Error())
			}
		})
	}
}

func TestParseArgs_MissingFile(t *testing.T) {
	_, err := ParseArgs([]string{"--config", filepath.Join(t.TempDir(), "nope.yaml")})
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "read config") {
		t.Errorf("expected read error, got %v", err)
	}
}

func TestLoadFile_EmptyYAMLKeepsDefaults(t *testing.T) {
	path := writeFile(t, "empty.yaml", "")
	tuning := DefaultTuning()

	if err := LoadFile(path, &tuning); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tuning != DefaultTuning() {
		t.Errorf("expected defaults to survive an empty file, got %+v", tuning)
	}
}
