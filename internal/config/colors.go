package config

import (
	"fmt"
	"slices"

	"github.com/thenoetrevino/projboard/internal/config/colors"
)

// ColorScheme is the configurable palette, see package colors
type ColorScheme = colors.ColorScheme

// DefaultColorScheme returns the default color scheme (purple theme)
func DefaultColorScheme() colors.ColorScheme {
	return *colors.Default()
}

// MonochromeColorScheme returns a black and white color scheme
func MonochromeColorScheme() colors.ColorScheme {
	return *colors.Monochrome()
}

// UsePreset replaces the color scheme with the named preset, dropping any
// custom colors from the config file
func (c *Config) UsePreset(name string) error {
	if !slices.Contains(colors.Presets(), name) {
		return fmt.Errorf("%w: %q (choose one of %v)", colors.ErrUnknownPreset, name, colors.Presets())
	}
	c.ColorScheme = *colors.GetPreset(name)
	return nil
}
