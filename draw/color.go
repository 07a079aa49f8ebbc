package draw

import (
	"fmt"
	"math"

	"github.com/feltk/felt/util"
)

// Color is a 32-bit RGBA color with red in the most significant byte,
// the layout the display backends use. The zero value is reserved as
// the "unset" sentinel in styles and never names a drawable color;
// fully transparent black is unrepresentable by design.
type Color uint32

const (
	NoColor Color = 0

	Black Color = 0x000000FF
	White Color = 0xFFFFFFFF

	// WindowsBlue is the classic selection background.
	WindowsBlue Color = 0x000080FF

	// DefaultBackground is the theme gray the shade ramp passes
	// through until SetBackground installs another one.
	DefaultBackground Color = 0xC0C0C0FF
)

// RGB returns the opaque color with the given components.
func RGB(r, g, b uint8) Color {
	return Color(r)<<24 | Color(g)<<16 | Color(b)<<8 | 0xFF
}

func (c Color) String() string {
	return fmt.Sprintf("#%08x", uint32(c))
}

// WithAlpha returns c scaled to alpha a, in the premultiplied color
// model of the display backends.
func (c Color) WithAlpha(a uint8) Color {
	r := uint32(c >> 24)
	g := uint32(c>>16) & 0xFF
	b := uint32(c>>8) & 0xFF
	r = (r * uint32(a)) / 255
	g = (g * uint32(a)) / 255
	b = (b * uint32(a)) / 255
	return Color(r<<24 | g<<16 | b<<8 | uint32(a))
}

// Lerp returns the color a fraction t of the way from a to b, per
// channel. t outside [0, 1] is clamped.
func Lerp(a, b Color, t float64) Color {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	mix := func(x, y Color) Color {
		return Color(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	var c Color
	for shift := uint(0); shift < 32; shift += 8 {
		c |= mix(a>>shift&0xFF, b>>shift&0xFF) << shift
	}
	return c
}

// luma is the CIE-weighted brightness of c, 0 to 255.
func luma(c Color) int {
	r := int(c >> 24 & 0xFF)
	g := int(c >> 16 & 0xFF)
	b := int(c >> 8 & 0xFF)
	return (299*r + 587*g + 114*b) / 1000
}

// Contrast returns fg if its brightness differs enough from bg to be
// readable, otherwise black or white, whichever stands out more
// against bg.
func Contrast(fg, bg Color) Color {
	if util.Abs(luma(fg)-luma(bg)) > 99 {
		return fg
	}
	if luma(bg) > 127 {
		return Black
	}
	return White
}

// Inactive returns c dimmed two thirds of the way toward the theme
// background, the shade used for inactive widget parts.
func Inactive(c Color) Color {
	return Lerp(c, Background(), 2.0/3.0)
}

// The bezel shade ramp: 24 grays addressed by pattern characters 'A'
// (black) through 'X' (white). SetBackground recurves the ramp, so
// shade 'R' always reads back the current theme background.
const (
	rampLen         = 24
	backgroundShade = 'R' - 'A'
)

var grayRamp [rampLen]Color

func init() {
	SetBackground(DefaultBackground)
}

// SetBackground replaces the gray ramp with one that passes through c
// at shade 'R', black at 'A' and white at 'X'. Each channel follows a
// power curve fitted through those points, so bezels keep their
// relative depth under any theme background. Like all ramp access it
// must be called from the UI goroutine only.
func SetBackground(c Color) {
	exp := func(v uint32) float64 {
		v = uint32(util.Clamp(int(v), 1, 254))
		return math.Log(float64(v)/255) / math.Log(backgroundShade/float64(rampLen-1))
	}
	er := exp(uint32(c >> 24 & 0xFF))
	eg := exp(uint32(c >> 16 & 0xFF))
	eb := exp(uint32(c >> 8 & 0xFF))
	for i := range grayRamp {
		gray := float64(i) / (rampLen - 1)
		r := uint32(math.Pow(gray, er)*255 + 0.5)
		g := uint32(math.Pow(gray, eg)*255 + 0.5)
		b := uint32(math.Pow(gray, eb)*255 + 0.5)
		grayRamp[i] = Color(r<<24 | g<<16 | b<<8 | 0xFF)
	}
}

// Background returns the current theme background gray, the color
// shade 'R' resolves to.
func Background() Color {
	return grayRamp[backgroundShade]
}

// GrayShade returns the ramp color for a bezel shade character.
// Characters outside 'A'..'X' clamp to the nearest end.
func GrayShade(ch byte) Color {
	return grayRamp[util.Clamp(int(ch)-'A', 0, rampLen-1)]
}
