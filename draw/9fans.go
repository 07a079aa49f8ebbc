//go:build !duitdraw && !windows
// +build !duitdraw,!windows

package draw

import (
	"fmt"
	"image"

	draw "9fans.net/go/draw"
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

func Main(f func(*Device)) {
	f(new(Device))
}

type Device struct{}

func (dev *Device) NewDisplay(errch chan<- error, fontname, label, winsize string) (Display, error) {
	d, err := Init(errch, fontname, label, winsize)
	if err != nil {
		return nil, err
	}
	return &displayImpl{d}, nil
}

// drawSrcImage uploads src as a device image and blits it in one
// operation.
func (p *DisplayPainter) drawSrcImage(pt image.Point, src image.Image) {
	img, err := loadImage(p.display, src)
	if err != nil {
		p.setErr(err)
		return
	}
	defer img.Free()
	r := image.Rectangle{Min: pt, Max: pt.Add(src.Bounds().Size())}
	p.screen.Draw(r, img, nil, image.ZP)
}

// loadImage uploads src as a device image. The caller frees it.
func loadImage(d Display, src image.Image) (Image, error) {
	b := src.Bounds()
	img, err := d.AllocImage(image.Rectangle{image.ZP, b.Size()}, draw.RGBA32, false, 0)
	if err != nil {
		return nil, err
	}
	// RGBA32 rows are little-endian r8g8b8a8, so each pixel is
	// stored a, b, g, r.
	data := make([]byte, 4*b.Dx()*b.Dy())
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, a := src.At(x, y).RGBA()
			data[i] = byte(a >> 8)
			data[i+1] = byte(bl >> 8)
			data[i+2] = byte(g >> 8)
			data[i+3] = byte(r >> 8)
			i += 4
		}
	}
	if _, err := img.(*imageImpl).drawImage.Load(img.R(), data); err != nil {
		img.Free()
		return nil, fmt.Errorf("load image: %w", err)
	}
	return img, nil
}
