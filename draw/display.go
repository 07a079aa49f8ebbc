package draw

import (
	"image"

	"github.com/feltk/felt/internal/logger"
	"github.com/feltk/felt/util"
)

// DisplayPainter renders toolkit draw calls onto a draw device
// screen. Solid colors become cached one pixel replicated images,
// the device idiom for fills. Backend errors are sticky and reported
// by the next Flush.
type DisplayPainter struct {
	display Display
	screen  Image
	color   Color
	style   LineStyle
	tiles   map[Color]Image
	err     error
}

var _ = Painter((*DisplayPainter)(nil))

func NewDisplayPainter(d Display) *DisplayPainter {
	return &DisplayPainter{
		display: d,
		screen:  d.ScreenImage(),
		color:   Black,
		tiles:   make(map[Color]Image),
	}
}

// Screen returns the image draw calls land on.
func (p *DisplayPainter) Screen() Image { return p.screen }

// Attach reconnects to the screen after a window system resize.
func (p *DisplayPainter) Attach() error {
	if err := p.display.Attach(Refnone); err != nil {
		return err
	}
	p.screen = p.display.ScreenImage()
	logger.Log().Debug().Stringer("screen", p.screen.R()).Msg("display reattached")
	return nil
}

func (p *DisplayPainter) setErr(err error) {
	if p.err == nil {
		p.err = err
	}
}

func (p *DisplayPainter) tileFor(c Color) (Image, error) {
	if t, ok := p.tiles[c]; ok {
		return t, nil
	}
	t, err := p.display.AllocImage(image.Rect(0, 0, 1, 1), p.screen.Pix(), true, c)
	if err != nil {
		return nil, err
	}
	p.tiles[c] = t
	return t, nil
}

func (p *DisplayPainter) tile() Image {
	t, err := p.tileFor(p.color)
	if err != nil {
		p.setErr(err)
		return nil
	}
	return t
}

func (p *DisplayPainter) SetColor(c Color) { p.color = c }

func (p *DisplayPainter) SetLineStyle(s LineStyle) { p.style = s }

func (p *DisplayPainter) FillRect(r image.Rectangle) {
	if r.Empty() {
		return
	}
	if t := p.tile(); t != nil {
		p.screen.Draw(r, t, nil, image.ZP)
	}
}

func (p *DisplayPainter) StrokeRect(r image.Rectangle) {
	if r.Empty() {
		return
	}
	if p.style == Dotted {
		p.Line(image.Pt(r.Min.X, r.Min.Y), image.Pt(r.Max.X-1, r.Min.Y))
		p.Line(image.Pt(r.Min.X, r.Max.Y-1), image.Pt(r.Max.X-1, r.Max.Y-1))
		p.Line(image.Pt(r.Min.X, r.Min.Y), image.Pt(r.Min.X, r.Max.Y-1))
		p.Line(image.Pt(r.Max.X-1, r.Min.Y), image.Pt(r.Max.X-1, r.Max.Y-1))
		return
	}
	if t := p.tile(); t != nil {
		p.screen.Border(r, 1, t, image.ZP)
	}
}

func (p *DisplayPainter) Line(p0, p1 image.Point) {
	t := p.tile()
	if t == nil {
		return
	}
	if p.style == Solid {
		if p0.Y == p1.Y {
			x0, x1 := util.Min(p0.X, p1.X), util.Max(p0.X, p1.X)
			p.screen.Draw(image.Rect(x0, p0.Y, x1+1, p0.Y+1), t, nil, image.ZP)
			return
		}
		if p0.X == p1.X {
			y0, y1 := util.Min(p0.Y, p1.Y), util.Max(p0.Y, p1.Y)
			p.screen.Draw(image.Rect(p0.X, y0, p0.X+1, y1+1), t, nil, image.ZP)
			return
		}
	}
	WalkLine(p0, p1, func(pt image.Point) {
		if p.style == Dotted && (pt.X+pt.Y)&1 != 0 {
			return
		}
		p.screen.Draw(image.Rectangle{Min: pt, Max: pt.Add(image.Pt(1, 1))}, t, nil, image.ZP)
	})
}

func (p *DisplayPainter) Text(pt image.Point, f Font, s string) image.Point {
	if f == nil || s == "" {
		return pt
	}
	t := p.tile()
	if t == nil {
		return pt
	}
	return p.screen.Bytes(pt, t, image.ZP, f, []byte(s))
}

func (p *DisplayPainter) DrawImage(pt image.Point, src image.Image) {
	if src.Bounds().Empty() {
		return
	}
	p.drawSrcImage(pt, src)
}

func (p *DisplayPainter) Flush() error {
	if err := p.err; err != nil {
		p.err = nil
		return err
	}
	return p.display.Flush()
}

// WalkLine visits every pixel of the line from p0 to p1 inclusive,
// in Bresenham order. Painter implementations share it so dotted
// strokes land on the same pixels everywhere.
func WalkLine(p0, p1 image.Point, visit func(image.Point)) {
	dx := util.Abs(p1.X - p0.X)
	dy := -util.Abs(p1.Y - p0.Y)
	sx, sy := 1, 1
	if p0.X > p1.X {
		sx = -1
	}
	if p0.Y > p1.Y {
		sy = -1
	}
	e := dx + dy
	for pt := p0; ; {
		visit(pt)
		if pt == p1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			pt.X += sx
		}
		if e2 <= dx {
			e += dx
			pt.Y += sy
		}
	}
}
