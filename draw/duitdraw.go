//go:build duitdraw || windows
// +build duitdraw windows

package draw

import (
	"image"

	draw "github.com/ktye/duitdraw"
)

const Refnone = draw.Refnone

type (
	Keyboardctl = draw.Keyboardctl
	Mouse       = draw.Mouse
	Mousectl    = draw.Mousectl
	Pix         = draw.Pix

	backendColor = draw.Color
	drawDisplay  = draw.Display
	drawFont     = draw.Font
	drawImage    = draw.Image
)

var Init = draw.Init

// Main hands the main goroutine to the duitdraw event loop, which
// needs it for its shiny screen.
func Main(f func(*Device)) {
	draw.Main(func(dd *draw.Device) {
		f(&Device{dd})
	})
}

type Device struct {
	dev *draw.Device
}

func (dev *Device) NewDisplay(errch chan<- error, fontname, label, winsize string) (Display, error) {
	d, err := dev.dev.NewDisplay(errch, fontname, label, winsize)
	if err != nil {
		return nil, err
	}
	return &displayImpl{d}, nil
}

// drawSrcImage paints src pixel runs as replicated fills. duitdraw
// has no image upload path, so runs of equal color are coalesced per
// row instead. Translucent pixels are painted opaque; fully
// transparent ones are skipped.
func (p *DisplayPainter) drawSrcImage(pt image.Point, src image.Image) {
	b := src.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; {
			c, n := runAt(src, x, y)
			if c&0xFF != 0 { // skip transparent runs
				t, err := p.tileFor(c | 0xFF)
				if err != nil {
					p.setErr(err)
					return
				}
				dy := y - b.Min.Y + pt.Y
				dx := x - b.Min.X + pt.X
				p.screen.Draw(image.Rect(dx, dy, dx+n, dy+1), t, nil, image.ZP)
			}
			x += n
		}
	}
}

// runAt returns the color at (x, y) and how many consecutive pixels
// on the row share it.
func runAt(src image.Image, x, y int) (Color, int) {
	c := colorAt(src, x, y)
	n := 1
	for x+n < src.Bounds().Max.X && colorAt(src, x+n, y) == c {
		n++
	}
	return c, n
}

func colorAt(src image.Image, x, y int) Color {
	r, g, b, a := src.At(x, y).RGBA()
	return Color(r>>8)<<24 | Color(g>>8)<<16 | Color(b>>8)<<8 | Color(a>>8)
}
