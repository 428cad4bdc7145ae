package config

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// Colors are hex strings such as "#1e1e1e"
type Colors struct {
	Background string `yaml:"background" toml:"background"`
	Foreground string `yaml:"foreground" toml:"foreground"`
}

// Palette is the parsed form of Colors
type Palette struct {
	Background color.RGBA
	Foreground color.RGBA
}

func (c Colors) Palette() (Palette, error) {
	bg, err := parseHex("background", c.Background)
	if err != nil {
		return Palette{}, err
	}
	fg, err := parseHex("foreground", c.Foreground)
	if err != nil {
		return Palette{}, err
	}
	return Palette{Background: bg, Foreground: fg}, nil
}

func parseHex(name, s string) (color.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, errors.Wrapf(err, "invalid %s colour", name)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}
