// Package xpm implements a decoder for the X PixMap (XPM3) image
// format, the text-based format the classic toolkits inline into
// source files for small icons. Decode accepts the raw C-source form
// and skips everything outside the quoted strings, so an .xpm file
// can be embedded and decoded as is.
//
// Registering with the image package means image.Decode recognizes
// the "/* XPM */" magic.
//
// Monochrome pixmaps whose first color is the space symbol defined
// as white decode as glyphs: black pixels with an alpha channel,
// white transparent, grays in between. Such glyphs can be recolored
// by the drawing code, which is how toolkit icons stay legible under
// theme changes.
package xpm

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"strconv"
	"strings"
)

// ErrBadHeader reports that the first pixmap string is not a valid
// "width height ncolors chars-per-pixel" header.
var ErrBadHeader = errors.New("xpm: invalid header")

func init() {
	image.RegisterFormat("xpm", "/* XPM */", Decode, DecodeConfig)
}

// Decode reads an XPM image from r.
func Decode(r io.Reader) (image.Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return DecodeStrings(quotedStrings(data))
}

// DecodeConfig returns the dimensions of an XPM image without
// decoding the pixels.
func DecodeConfig(r io.Reader) (image.Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return image.Config{}, err
	}
	ss := quotedStrings(data)
	if len(ss) == 0 {
		return image.Config{}, ErrBadHeader
	}
	hdr, err := parseHeader(ss[0])
	if err != nil {
		return image.Config{}, err
	}
	return image.Config{
		ColorModel: color.NRGBAModel,
		Width:      hdr.w,
		Height:     hdr.h,
	}, nil
}

// DecodeStrings decodes pixmap data already split into strings, the
// form inline data takes: the header, then one string per color,
// then one string per pixel row.
func DecodeStrings(data []string) (image.Image, error) {
	if len(data) == 0 {
		return nil, ErrBadHeader
	}
	hdr, err := parseHeader(data[0])
	if err != nil {
		return nil, err
	}
	if len(data) < 1+hdr.ncolors+hdr.h {
		return nil, fmt.Errorf("xpm: have %d strings, need %d", len(data), 1+hdr.ncolors+hdr.h)
	}

	colors := make(map[string]color.NRGBA, hdr.ncolors)
	glyph := false
	for i := 0; i < hdr.ncolors; i++ {
		sym, c, err := parseColor(data[1+i], hdr.cpp)
		if err != nil {
			return nil, err
		}
		colors[sym] = c
		if i == 0 {
			glyph = sym == strings.Repeat(" ", hdr.cpp) && c == color.NRGBA{0xFF, 0xFF, 0xFF, 0xFF}
		}
	}
	if glyph {
		for sym, c := range colors {
			colors[sym] = glyphColor(c)
		}
	}

	m := image.NewNRGBA(image.Rect(0, 0, hdr.w, hdr.h))
	for y := 0; y < hdr.h; y++ {
		row := data[1+hdr.ncolors+y]
		if len(row) < hdr.w*hdr.cpp {
			return nil, fmt.Errorf("xpm: pixel row %d is %d chars, need %d", y, len(row), hdr.w*hdr.cpp)
		}
		for x := 0; x < hdr.w; x++ {
			sym := row[x*hdr.cpp : (x+1)*hdr.cpp]
			c, ok := colors[sym]
			if !ok {
				return nil, fmt.Errorf("xpm: undefined symbol %q in row %d", sym, y)
			}
			m.SetNRGBA(x, y, c)
		}
	}
	return m, nil
}

type header struct {
	w, h    int
	ncolors int
	cpp     int
}

// parseHeader reads "width height ncolors chars-per-pixel"; trailing
// fields such as a hotspot are ignored.
func parseHeader(s string) (header, error) {
	f := strings.Fields(s)
	if len(f) < 4 {
		return header{}, ErrBadHeader
	}
	var hdr header
	var err error
	if hdr.w, err = strconv.Atoi(f[0]); err != nil {
		return header{}, ErrBadHeader
	}
	if hdr.h, err = strconv.Atoi(f[1]); err != nil {
		return header{}, ErrBadHeader
	}
	if hdr.ncolors, err = strconv.Atoi(f[2]); err != nil {
		return header{}, ErrBadHeader
	}
	if hdr.cpp, err = strconv.Atoi(f[3]); err != nil {
		return header{}, ErrBadHeader
	}
	if hdr.w < 0 || hdr.h < 0 || hdr.ncolors < 1 || hdr.cpp < 1 {
		return header{}, ErrBadHeader
	}
	return hdr, nil
}

// parseColor reads one color table string: cpp symbol characters,
// then key/value pairs. The color key "c" wins over the grayscale
// and monochrome fallbacks; symbolic names under "s" are skipped.
func parseColor(s string, cpp int) (string, color.NRGBA, error) {
	if len(s) < cpp {
		return "", color.NRGBA{}, fmt.Errorf("xpm: short color entry %q", s)
	}
	sym := s[:cpp]
	f := strings.Fields(s[cpp:])

	best := -1
	var bestVal string
	for i := 0; i < len(f); {
		rank, known := colorKeys[f[i]]
		if !known {
			i++
			continue
		}
		j := i + 1
		for j < len(f) {
			if _, k := colorKeys[f[j]]; k {
				break
			}
			j++
		}
		if rank > best {
			best = rank
			bestVal = strings.Join(f[i+1:j], " ")
		}
		i = j
	}
	if best < 0 || bestVal == "" {
		return "", color.NRGBA{}, fmt.Errorf("xpm: color entry %q has no color", s)
	}
	c, err := parseColorValue(bestVal)
	if err != nil {
		return "", color.NRGBA{}, err
	}
	return sym, c, nil
}

// colorKeys ranks the visual keys a color entry may carry; higher
// wins. "s" names a symbol and carries no color.
var colorKeys = map[string]int{
	"m":  0,
	"g4": 1,
	"g":  2,
	"c":  3,
	"s":  -1,
}

var namedColors = map[string]color.NRGBA{
	"black":   {0x00, 0x00, 0x00, 0xFF},
	"white":   {0xFF, 0xFF, 0xFF, 0xFF},
	"red":     {0xFF, 0x00, 0x00, 0xFF},
	"green":   {0x00, 0xFF, 0x00, 0xFF},
	"blue":    {0x00, 0x00, 0xFF, 0xFF},
	"yellow":  {0xFF, 0xFF, 0x00, 0xFF},
	"cyan":    {0x00, 0xFF, 0xFF, 0xFF},
	"magenta": {0xFF, 0x00, 0xFF, 0xFF},
	"gray":    {0xBE, 0xBE, 0xBE, 0xFF},
	"grey":    {0xBE, 0xBE, 0xBE, 0xFF},
}

// parseColorValue reads "#hex" with 1, 2 or 4 hex digits per channel,
// the transparent name None, or a known color name.
func parseColorValue(v string) (color.NRGBA, error) {
	if strings.EqualFold(v, "none") {
		return color.NRGBA{}, nil
	}
	if !strings.HasPrefix(v, "#") {
		if c, ok := namedColors[strings.ToLower(v)]; ok {
			return c, nil
		}
		return color.NRGBA{}, fmt.Errorf("xpm: unknown color %q", v)
	}
	hex := v[1:]
	if n := len(hex); n == 0 || n%3 != 0 || n > 12 {
		return color.NRGBA{}, fmt.Errorf("xpm: bad hex color %q", v)
	}
	d := len(hex) / 3
	ch := func(i int) (uint8, error) {
		u, err := strconv.ParseUint(hex[i*d:(i+1)*d], 16, 64)
		if err != nil {
			return 0, fmt.Errorf("xpm: bad hex color %q", v)
		}
		switch d {
		case 1:
			return uint8(u * 0x11), nil
		case 2:
			return uint8(u), nil
		default:
			// Wider channels keep their top byte.
			return uint8(u >> (4 * (d - 2))), nil
		}
	}
	var c color.NRGBA
	var err error
	if c.R, err = ch(0); err != nil {
		return color.NRGBA{}, err
	}
	if c.G, err = ch(1); err != nil {
		return color.NRGBA{}, err
	}
	if c.B, err = ch(2); err != nil {
		return color.NRGBA{}, err
	}
	c.A = 0xFF
	return c, nil
}

// glyphColor turns a gray into the glyph form: black at an opacity
// that rises as the gray darkens, so white vanishes and black covers.
func glyphColor(c color.NRGBA) color.NRGBA {
	if c.A == 0 {
		return color.NRGBA{}
	}
	level := (int(c.R) + int(c.G) + int(c.B)) / 3
	return color.NRGBA{0, 0, 0, uint8(255 - level)}
}

// quotedStrings extracts the double-quoted strings from C source
// text, ignoring everything between them. Pixmap data contains no
// escaped quotes, so none are interpreted.
func quotedStrings(data []byte) []string {
	var ss []string
	for i := 0; i < len(data); {
		if data[i] != '"' {
			i++
			continue
		}
		j := i + 1
		for j < len(data) && data[j] != '"' {
			j++
		}
		if j >= len(data) {
			break
		}
		ss = append(ss, string(data[i+1:j]))
		i = j + 1
	}
	return ss
}
