package felttest

import (
	"image"
	"image/color"
	stddraw "image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/feltk/felt/draw"
)

var _ = draw.Painter((*ImagePainter)(nil))

// ImagePainter implements draw.Painter by rasterizing into an
// in-memory RGBA image, for tests that assert on actual pixels
// rather than op sequences.
type ImagePainter struct {
	img   *image.RGBA
	color draw.Color
	style draw.LineStyle
}

// NewImagePainter returns a painter rasterizing into a fresh image
// with bounds r.
func NewImagePainter(r image.Rectangle) *ImagePainter {
	return &ImagePainter{
		img:   image.NewRGBA(r),
		color: draw.Black,
	}
}

// Image returns the raster every draw call so far has landed on.
func (p *ImagePainter) Image() *image.RGBA { return p.img }

// At returns the color drawn at (x, y), or zero where nothing was
// drawn.
func (p *ImagePainter) At(x, y int) draw.Color {
	c := p.img.RGBAAt(x, y)
	return draw.Color(c.R)<<24 | draw.Color(c.G)<<16 | draw.Color(c.B)<<8 | draw.Color(c.A)
}

func rgba(c draw.Color) color.RGBA {
	return color.RGBA{
		R: uint8(c >> 24),
		G: uint8(c >> 16),
		B: uint8(c >> 8),
		A: uint8(c),
	}
}

func (p *ImagePainter) SetColor(c draw.Color) { p.color = c }

func (p *ImagePainter) SetLineStyle(s draw.LineStyle) { p.style = s }

func (p *ImagePainter) FillRect(r image.Rectangle) {
	stddraw.Draw(p.img, r, &image.Uniform{rgba(p.color)}, image.ZP, stddraw.Src)
}

func (p *ImagePainter) StrokeRect(r image.Rectangle) {
	if r.Empty() {
		return
	}
	p.Line(image.Pt(r.Min.X, r.Min.Y), image.Pt(r.Max.X-1, r.Min.Y))
	p.Line(image.Pt(r.Min.X, r.Max.Y-1), image.Pt(r.Max.X-1, r.Max.Y-1))
	p.Line(image.Pt(r.Min.X, r.Min.Y), image.Pt(r.Min.X, r.Max.Y-1))
	p.Line(image.Pt(r.Max.X-1, r.Min.Y), image.Pt(r.Max.X-1, r.Max.Y-1))
}

func (p *ImagePainter) Line(p0, p1 image.Point) {
	c := rgba(p.color)
	draw.WalkLine(p0, p1, func(pt image.Point) {
		if p.style == draw.Dotted && (pt.X+pt.Y)&1 != 0 {
			return
		}
		p.img.SetRGBA(pt.X, pt.Y, c)
	})
}

// Text renders s in the 7x13 basic face. The advance returned comes
// from f, so op level and raster level tests agree on label metrics.
func (p *ImagePainter) Text(pt image.Point, f draw.Font, s string) image.Point {
	if f == nil || s == "" {
		return pt
	}
	d := font.Drawer{
		Dst:  p.img,
		Src:  &image.Uniform{rgba(p.color)},
		Face: basicfont.Face7x13,
		Dot:  fixed.P(pt.X, pt.Y+basicfont.Face7x13.Ascent),
	}
	d.DrawString(s)
	return pt.Add(image.Pt(f.StringWidth(s), 0))
}

func (p *ImagePainter) DrawImage(pt image.Point, src image.Image) {
	r := image.Rectangle{Min: pt, Max: pt.Add(src.Bounds().Size())}
	stddraw.Draw(p.img, r, src, src.Bounds().Min, stddraw.Over)
}

func (p *ImagePainter) Flush() error { return nil }

// BasicFont returns a draw.Font with the metrics of the face
// ImagePainter renders text in.
func BasicFont() draw.Font {
	return NewFont(basicfont.Face7x13.Advance, basicfont.Face7x13.Height)
}
