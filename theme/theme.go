// Package theme holds the color palettes the felt styles revert to.
// Switching palettes repaints nothing by itself; callers revert the
// styles afterward so every widget picks up the change.
package theme

import (
	"github.com/feltk/felt/draw"
)

type Palette struct {
	Background    draw.Color
	Text          draw.Color
	Label         draw.Color
	Selection     draw.Color
	SelectionText draw.Color
	Highlight     draw.Color
	HighlightText draw.Color
}

var (
	darkMode bool
	current  = lightPalette
)

var lightPalette = Palette{
	Background:    draw.DefaultBackground,
	Text:          draw.Black,
	Label:         draw.Black,
	Selection:     draw.WindowsBlue,
	SelectionText: draw.White,
	Highlight:     draw.NoColor,
	HighlightText: draw.NoColor,
}

var darkPalette = Palette{
	Background:    0x2E2E2EFF,
	Text:          0xEEEEEEFF,
	Label:         0xEEEEEEFF,
	Selection:     0x224488FF,
	SelectionText: 0xEEEEEEFF,
	Highlight:     draw.NoColor,
	HighlightText: draw.NoColor,
}

// SetDarkMode selects between the light and dark palettes.
func SetDarkMode(enabled bool) {
	darkMode = enabled
	if enabled {
		current = darkPalette
	} else {
		current = lightPalette
	}
}

// IsDarkMode reports the current mode.
func IsDarkMode() bool { return darkMode }

// Current returns the active colour palette.
func Current() Palette { return current }
