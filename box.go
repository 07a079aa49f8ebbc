package felt

import (
	"image"
	"strconv"
	"strings"

	"github.com/feltk/felt/draw"
)

// BoxInfo describes the border geometry of a Box: the content offset
// from the top left corner, the total thickness the border consumes
// on each axis, and how much of the rectangle the box paints.
type BoxInfo struct {
	Dx, Dy int // content offset from the top left corner
	Dw, Dh int // total border width and height

	// Fills encodes opacity. 0 means the box may leave pixels
	// untouched, 3 means it covers the whole rectangle. Intermediate
	// values mark partially opaque borders.
	Fills int
}

// A Box is a named, immutable drawing strategy for a widget frame and
// background. Boxes are process-wide singletons shared by any number
// of widgets; all drawing happens on the UI goroutine.
type Box interface {
	Name() string

	// Draw renders the box into r. The style resolves colors and
	// flags select the visual state. Degenerate rectangles draw
	// nothing.
	Draw(p draw.Painter, r image.Rectangle, style *Style, flags Flags)

	// Info returns the border geometry. It is pure and callable
	// without a draw context.
	Info() BoxInfo
}

// Inset returns the content rectangle left inside r after b's border.
func Inset(b Box, r image.Rectangle) image.Rectangle {
	bi := b.Info()
	r.Min.X += bi.Dx
	r.Min.Y += bi.Dy
	r.Max.X -= bi.Dw - bi.Dx
	r.Max.Y -= bi.Dh - bi.Dy
	return r
}

// Boxes register themselves at construction so the inspection file
// system and tests can look them up by name.
var boxRegistry = make(map[string]Box)

func registerBox(b Box) Box {
	boxRegistry[b.Name()] = b
	return b
}

// BoxByName returns the registered box with the given name, or nil.
func BoxByName(name string) Box { return boxRegistry[name] }

// drawFlat fills r with the style background unless the Invisible
// flag or a degenerate rectangle suppresses it. FlatBox and the idle
// state of HighlightBox share it.
func drawFlat(p draw.Painter, r image.Rectangle, style *Style, flags Flags) {
	if flags&Invisible != 0 || r.Empty() {
		return
	}
	bg, _ := style.BoxColors(flags)
	p.SetColor(bg)
	p.FillRect(r)
}

// noBox draws nothing. Widgets use it to leave their rectangle fully
// transparent; some check for it specifically and skip background
// work.
type noBox struct{}

func (noBox) Name() string                                      { return "none" }
func (noBox) Info() BoxInfo                                     { return BoxInfo{} }
func (noBox) Draw(draw.Painter, image.Rectangle, *Style, Flags) {}

// flatBox fills the rectangle with the style background and has no
// border.
type flatBox struct{}

func (flatBox) Name() string  { return "flat" }
func (flatBox) Info() BoxInfo { return BoxInfo{Fills: 3} }

func (flatBox) Draw(p draw.Painter, r image.Rectangle, style *Style, flags Flags) {
	drawFlat(p, r, style, flags)
}

// FrameBox draws a bezel from a short pattern string. Each character
// names a gray shade for one edge, 'A' black through 'X' white, with
// 'R' the theme background. The edges trace inward like a spiral in
// the order bottom, right, top, left; a leading '2' starts at the top
// edge instead, which flips exactly which pixels land in the corners.
// After the pattern runs out the remaining interior is filled with
// the style background.
//
// The standard up bezel is "AAWWHHTT" and the down bezel "WWHHPPAA".
// The Value flag substitutes the down variant's pattern, so a pushed
// button gets a different bezel. The Invisible flag skips the
// interior fill, which spares the fill when opaque content is about
// to cover it.
type FrameBox struct {
	name string
	data string
	down *FrameBox
	info BoxInfo
}

// NewFrameBox builds and registers a bezel box. down is the box whose
// pattern replaces this one under the Value flag; nil makes the box
// its own down variant. The pattern after any leading '2' must be
// non-empty with even length, or the border insets are ill-defined;
// NewFrameBox panics on such patterns.
func NewFrameBox(name, pattern string, down *FrameBox) *FrameBox {
	if s := strings.TrimPrefix(pattern, "2"); len(s) == 0 || len(s)%2 != 0 {
		panic("felt: bad bezel pattern " + strconv.Quote(pattern))
	}
	b := &FrameBox{name: name, data: pattern}
	b.down = b
	if down != nil {
		b.down = down
	}
	i := len(pattern) / 2
	b.info = BoxInfo{Dx: i / 2, Dy: i / 2, Dw: i, Dh: i, Fills: 3}
	registerBox(b)
	return b
}

func (b *FrameBox) Name() string  { return b.name }
func (b *FrameBox) Info() BoxInfo { return b.info }

// Pattern returns the bezel pattern, including any leading mode
// character.
func (b *FrameBox) Pattern() string { return b.data }

func (b *FrameBox) Draw(p draw.Painter, r image.Rectangle, style *Style, flags Flags) {
	if r.Empty() {
		return
	}
	pat := b.data
	if flags&Value != 0 {
		pat = b.down.data
	}
	if flags&Inactive != 0 && style.DrawBoxesInactive() {
		pat = inactivePattern(pat)
	}
	edge := 0
	if pat[0] == '2' {
		pat = pat[1:]
		edge = 2
	}
	for i := 0; i < len(pat); i++ {
		p.SetColor(draw.GrayShade(pat[i]))
		switch edge & 3 {
		case 0: // bottom
			p.Line(image.Pt(r.Min.X, r.Max.Y-1), image.Pt(r.Max.X-1, r.Max.Y-1))
			r.Max.Y--
			if r.Dy() <= 0 {
				return
			}
		case 1: // right
			p.Line(image.Pt(r.Max.X-1, r.Min.Y), image.Pt(r.Max.X-1, r.Max.Y-1))
			r.Max.X--
			if r.Dx() <= 0 {
				return
			}
		case 2: // top
			p.Line(image.Pt(r.Min.X, r.Min.Y), image.Pt(r.Max.X-1, r.Min.Y))
			r.Min.Y++
			if r.Dy() <= 0 {
				return
			}
		case 3: // left
			p.Line(image.Pt(r.Min.X, r.Min.Y), image.Pt(r.Min.X, r.Max.Y-1))
			r.Min.X++
			if r.Dx() <= 0 {
				return
			}
		}
		edge++
	}
	if flags&Invisible == 0 {
		bg, _ := style.BoxColors(flags)
		p.SetColor(bg)
		p.FillRect(r)
	}
}

// inactivePattern compresses every shade of a bezel pattern into the
// middle grays, the washed-out rendition of an inactive widget. A
// leading mode character passes through unchanged.
func inactivePattern(s string) string {
	b := []byte(s)
	i := 0
	if b[0] == '2' {
		i = 1
	}
	for ; i < len(b); i++ {
		b[i] = 'M' + (b[i]-'A')/3
	}
	return string(b)
}

// borderFrame strokes the outline in the style text color and leaves
// the interior alone. Kept for layouts that expect an outline-only
// box.
type borderFrame struct{}

func (borderFrame) Name() string  { return "border_frame" }
func (borderFrame) Info() BoxInfo { return BoxInfo{Dx: 1, Dy: 1, Dw: 2, Dh: 2} }

func (borderFrame) Draw(p draw.Painter, r image.Rectangle, style *Style, flags Flags) {
	if r.Empty() {
		return
	}
	p.SetColor(style.TextColor())
	p.StrokeRect(r)
}

// dottedFrame is the default focus box. It draws nothing without the
// Focused flag; with it, a dotted outline one pixel inside the
// rectangle. Rectangles without room for the inset shrink it, and
// ones smaller than four pixels draw nothing at all.
type dottedFrame struct{}

func (dottedFrame) Name() string  { return "dotted_frame" }
func (dottedFrame) Info() BoxInfo { return BoxInfo{} }

func (dottedFrame) Draw(p draw.Painter, r image.Rectangle, style *Style, flags Flags) {
	if flags&Focused == 0 {
		return
	}
	switch {
	case r.Dx() > 4:
		r.Min.X++
		r.Max.X--
	case r.Dx() > 3:
		r.Max.X--
	default:
		return
	}
	switch {
	case r.Dy() > 4:
		r.Min.Y++
		r.Max.Y--
	case r.Dy() > 3:
		r.Max.Y--
	default:
		return
	}
	_, fg := style.BoxColors(flags)
	p.SetColor(fg)
	p.SetLineStyle(draw.Dotted)
	p.StrokeRect(r)
	p.SetLineStyle(draw.Solid)
}

// HighlightBox draws as FlatBox until the Highlight, Selected, Value
// or Pushed flag turns on, then as its active box. It makes a frame
// appear when the mouse points at a widget or the widget is on.
type HighlightBox struct {
	name   string
	active Box
}

// NewHighlightBox builds and registers a box that shows active only
// in the highlighted states.
func NewHighlightBox(name string, active Box) *HighlightBox {
	b := &HighlightBox{name: name, active: active}
	registerBox(b)
	return b
}

func (b *HighlightBox) Name() string { return b.name }

// Info reports the active box geometry, so content fits whichever
// variant gets drawn.
func (b *HighlightBox) Info() BoxInfo { return b.active.Info() }

func (b *HighlightBox) Draw(p draw.Painter, r image.Rectangle, style *Style, flags Flags) {
	if flags&(Highlight|Selected|Value|Pushed) != 0 {
		b.active.Draw(p, r, style, flags)
		return
	}
	drawFlat(p, r, style, flags)
}

// The stock boxes. FrameBox patterns follow the classic theme; the
// thin variants are single-pixel bezels for status strips and slider
// troughs.
var (
	NoBox       = registerBox(noBox{})
	FlatBox     = registerBox(flatBox{})
	BorderFrame = registerBox(borderFrame{})
	DottedFrame = registerBox(dottedFrame{})

	DownBox     = NewFrameBox("down", "WWHHPPAA", nil)
	UpBox       = NewFrameBox("up", "AAWWHHTT", DownBox)
	ThinDownBox = NewFrameBox("thin_down", "WWHH", nil)
	ThinUpBox   = NewFrameBox("thin_up", "HHWW", ThinDownBox)
	EngravedBox = NewFrameBox("engraved", "2HHWWWWHH", DownBox)
	EmbossedBox = NewFrameBox("embossed", "2WWHHHHWW", DownBox)
	BorderBox   = NewFrameBox("border", "HHHH", DownBox)

	HighlightUpBox   = NewHighlightBox("highlight_up", ThinUpBox)
	HighlightDownBox = NewHighlightBox("highlight_down", ThinDownBox)
)
