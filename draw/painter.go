// Package draw defines the rendering contract between the felt widget
// toolkit and its display backends. The toolkit core emits calls on a
// Painter; DisplayPainter translates them onto a draw device screen,
// and the felttest package provides recording and software painters
// for tests.
package draw

import "image"

// LineStyle selects how Line and StrokeRect render strokes.
type LineStyle int

const (
	Solid LineStyle = iota

	// Dotted draws every other pixel, alternating by the parity of
	// x+y so that adjacent dotted edges stay in phase.
	Dotted
)

// Painter is the immediate-mode surface boxes, labels and glyphs are
// drawn on. All coordinates are absolute pixels on the destination.
// Painters are not safe for concurrent use; the toolkit issues every
// call from the single UI goroutine.
type Painter interface {
	// SetColor sets the color used by subsequent fill, stroke, line
	// and text calls.
	SetColor(c Color)

	// SetLineStyle switches Line and StrokeRect between solid and
	// dotted strokes. Fills are unaffected.
	SetLineStyle(s LineStyle)

	// FillRect fills r with the current color. Empty rectangles are
	// a no-op.
	FillRect(r image.Rectangle)

	// StrokeRect outlines r one pixel wide, just inside r.
	StrokeRect(r image.Rectangle)

	// Line draws a one pixel wide line from p0 to p1, inclusive of
	// both endpoints.
	Line(p0, p1 image.Point)

	// Text draws s in the current color with the top left corner of
	// its bounding box at pt, and returns the position following the
	// last character. A nil font or empty string draws nothing.
	Text(pt image.Point, f Font, s string) image.Point

	// DrawImage copies src onto the surface with its top left corner
	// at pt.
	DrawImage(pt image.Point, src image.Image)

	// Flush makes everything drawn so far visible on backends that
	// buffer.
	Flush() error
}

// Font measures text. All metrics are in pixels.
type Font interface {
	Name() string
	Height() int
	BytesWidth(b []byte) int
	RunesWidth(r []rune) int
	StringWidth(s string) int
}
