// Package felttest contains test doubles for exercising the toolkit
// without a window system: a draw op recording painter, fixed metric
// fonts, and a software raster painter.
package felttest

import (
	"fmt"
	"image"
	"unicode/utf8"

	"github.com/feltk/felt/draw"
)

// GettableDrawOps painter implementations can provide a list of the
// executed draw ops.
type GettableDrawOps interface {
	DrawOps() []string
	Clear()
}

var _ = draw.Painter((*recordingPainter)(nil))
var _ = GettableDrawOps((*recordingPainter)(nil))

// recordingPainter implements draw.Painter by recording one op
// string per emitted primitive. State changes (color, line style)
// are folded into the ops they affect, which keeps recorded
// sequences aligned with what lands on the screen.
type recordingPainter struct {
	color   draw.Color
	style   draw.LineStyle
	ops     []string
	flushed int
}

// NewPainter returns a draw.Painter that records its ops.
func NewPainter() draw.Painter {
	return &recordingPainter{color: draw.Black}
}

func (p *recordingPainter) DrawOps() []string { return p.ops }
func (p *recordingPainter) Clear()            { p.ops = nil }

// Flushed reports how many times Flush has been called.
func Flushed(pp draw.Painter) int {
	if rp, ok := pp.(*recordingPainter); ok {
		return rp.flushed
	}
	return 0
}

func (p *recordingPainter) SetColor(c draw.Color) { p.color = c }

func (p *recordingPainter) SetLineStyle(s draw.LineStyle) { p.style = s }

func (p *recordingPainter) dotted() string {
	if p.style == draw.Dotted {
		return " dotted"
	}
	return ""
}

func (p *recordingPainter) FillRect(r image.Rectangle) {
	p.ops = append(p.ops, fmt.Sprintf("fill %v %v", r, p.color))
}

func (p *recordingPainter) StrokeRect(r image.Rectangle) {
	p.ops = append(p.ops, fmt.Sprintf("stroke %v %v%s", r, p.color, p.dotted()))
}

func (p *recordingPainter) Line(p0, p1 image.Point) {
	p.ops = append(p.ops, fmt.Sprintf("line %v %v %v%s", p0, p1, p.color, p.dotted()))
}

func (p *recordingPainter) Text(pt image.Point, f draw.Font, s string) image.Point {
	if f == nil || s == "" {
		return pt
	}
	p.ops = append(p.ops, fmt.Sprintf("string %q at %v %v", s, pt, p.color))
	return pt.Add(image.Pt(f.StringWidth(s), 0))
}

func (p *recordingPainter) DrawImage(pt image.Point, src image.Image) {
	r := image.Rectangle{Min: pt, Max: pt.Add(src.Bounds().Size())}
	p.ops = append(p.ops, fmt.Sprintf("image %v", r))
}

func (p *recordingPainter) Flush() error {
	p.flushed++
	return nil
}

var _ = draw.Font((*fixedFont)(nil))

// fixedFont implements draw.Font as a fixed width font, so tests can
// predict label metrics exactly.
type fixedFont struct {
	width, height int
}

// NewFont returns a draw.Font with fixed glyph metrics.
func NewFont(width, height int) draw.Font {
	return &fixedFont{width: width, height: height}
}

func (f *fixedFont) Name() string             { return fmt.Sprintf("fixed-%dx%d", f.width, f.height) }
func (f *fixedFont) Height() int              { return f.height }
func (f *fixedFont) BytesWidth(b []byte) int  { return f.width * utf8.RuneCount(b) }
func (f *fixedFont) RunesWidth(r []rune) int  { return f.width * len(r) }
func (f *fixedFont) StringWidth(s string) int { return f.width * utf8.RuneCountInString(s) }
