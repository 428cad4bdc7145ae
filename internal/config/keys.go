package config

import (
	"strings"

	"github.com/pkg/errors"
)

// Key names shared by both hosts
const (
	KeyUp    = "up"
	KeyDown  = "down"
	KeyLeft  = "left"
	KeyRight = "right"

	// QuitKey quits the terminal game and cannot drive a paddle
	QuitKey = "q"
)

// Keys binds the four paddle controls to key names.
// A name is a single letter or digit, or one of the arrow names.
type Keys struct {
	LeftUp    string `yaml:"left_up" toml:"left_up"`
	LeftDown  string `yaml:"left_down" toml:"left_down"`
	RightUp   string `yaml:"right_up" toml:"right_up"`
	RightDown string `yaml:"right_down" toml:"right_down"`
}

// DefaultKeys puts the left player on W/S and the right player on I/K
func DefaultKeys() Keys {
	return Keys{LeftUp: "w", LeftDown: "s", RightUp: "i", RightDown: "k"}
}

// ValidKeyName reports whether name can be bound
func ValidKeyName(name string) bool {
	switch name {
	case KeyUp, KeyDown, KeyLeft, KeyRight:
		return true
	}
	if len(name) != 1 {
		return false
	}
	c := name[0]
	return (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9')
}

// Normalize lowercases the names and rejects unknown, reserved or repeated keys
func (k Keys) Normalize() (Keys, error) {
	out := Keys{
		LeftUp:    strings.ToLower(strings.TrimSpace(k.LeftUp)),
		LeftDown:  strings.ToLower(strings.TrimSpace(k.LeftDown)),
		RightUp:   strings.ToLower(strings.TrimSpace(k.RightUp)),
		RightDown: strings.ToLower(strings.TrimSpace(k.RightDown)),
	}

	seen := make(map[string]string, 4)
	for _, b := range []struct{ control, name string }{
		{"left_up", out.LeftUp},
		{"left_down", out.LeftDown},
		{"right_up", out.RightUp},
		{"right_down", out.RightDown},
	} {
		if !ValidKeyName(b.name) {
			return Keys{}, errors.Errorf("invalid key %q for %s", b.name, b.control)
		}
		if b.name == QuitKey {
			return Keys{}, errors.Errorf("key %q for %s is reserved for quit", b.name, b.control)
		}
		if other, dup := seen[b.name]; dup {
			return Keys{}, errors.Errorf("key %q bound to both %s and %s", b.name, other, b.control)
		}
		seen[b.name] = b.control
	}

	return out, nil
}
