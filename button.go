package felt

import (
	"image"

	"github.com/feltk/felt/draw"
)

// Button is a push button. The event glue sets Pushed and Highlight
// on it as the mouse moves; Click runs the action on release.
type Button struct {
	WidgetBase
	OnClick func()
}

var buttonStyle = NewNamedStyle("Button", nil, nil)

// NewButton returns a button occupying r.
func NewButton(r image.Rectangle, label string) *Button {
	b := &Button{}
	b.r = r
	b.label = label
	b.style = &buttonStyle.Style
	return b
}

func (b *Button) Kind() string { return "button" }

// Value reports the on state.
func (b *Button) Value() bool { return b.flags&Value != 0 }

// SetValue sets the on state and repaints.
func (b *Button) SetValue(v bool) {
	if v == b.Value() {
		return
	}
	b.flags ^= Value
	b.Redraw()
}

// Click runs the button action.
func (b *Button) Click() {
	if b.OnClick != nil {
		b.OnClick()
	}
}

func (b *Button) Draw(p draw.Painter, r image.Rectangle) {
	b.drawButton(p, r, 0)
}

// drawButton paints the frame, label and focus ring shared by the
// button variants and returns the content rectangle. glyphWidth
// reserves that much of the content's left edge for a glyph the
// caller draws.
func (b *Button) drawButton(p draw.Painter, r image.Rectangle, glyphWidth int) image.Rectangle {
	flags := b.flags

	// Resolve the button roles into a throwaway style copy, so the
	// box and label code below see them as the plain roles.
	style := *b.Style()
	if style.color == draw.NoColor {
		style.color = style.ButtonColor()
	}
	if style.box == nil {
		style.box = style.ButtonBox()
	}
	if style.textColor == draw.NoColor {
		style.textColor = style.LabelColor()
	}

	box := style.Box()
	box.Draw(p, r, &style, flags)
	content := Inset(box, r)

	lr := content
	lr.Min.X += glyphWidth
	b.DrawLabel(p, lr, flags)

	fr := content
	fr.Min.X++
	fr.Min.Y++
	fr.Max.X--
	fr.Max.Y--
	style.FocusBox().Draw(p, fr, &style, flags)
	return content
}

// CheckButton is a toggle button showing its value as a check mark in
// a glyph box left of the label. The button frame itself is invisible
// by default; only the glyph and label show.
type CheckButton struct {
	Button
}

var checkButtonStyle = NewNamedStyle("CheckButton", func(s *Style) {
	s.buttonBox = NoBox
}, nil)

// NewCheckButton returns a check button occupying r.
func NewCheckButton(r image.Rectangle, label string) *CheckButton {
	cb := &CheckButton{}
	cb.r = r
	cb.label = label
	cb.style = &checkButtonStyle.Style
	cb.SetAlign(AlignLeft | AlignInside)
	return cb
}

func (cb *CheckButton) Kind() string { return "checkbutton" }

// Toggle flips the value, the action a click performs.
func (cb *CheckButton) Toggle() { cb.SetValue(!cb.Value()) }

func (cb *CheckButton) Draw(p draw.Painter, r image.Rectangle) {
	gw := cb.Style().LabelSize() + 2
	content := cb.drawButton(p, r, gw)
	gy := content.Min.Y + (content.Dy()-gw)/2
	gr := image.Rect(content.Min.X, gy, content.Min.X+gw, gy+gw)
	// The glyph box comes from the widget's own style, not the
	// patched button roles, so it stays the down bezel.
	drawCheckGlyph(p, gr, cb.Style(), cb.flags|Output)
}

// drawCheckGlyph draws the glyph box and, when Value is on, the check
// mark inside it.
func drawCheckGlyph(p draw.Painter, r image.Rectangle, style *Style, flags Flags) {
	box := style.Box()
	box.Draw(p, r, style, flags)
	r = Inset(box, r)
	if flags&Value == 0 {
		return
	}
	fg := style.TextColor()
	if flags&Inactive != 0 {
		fg = draw.Inactive(fg)
	}
	p.SetColor(fg)
	x, y, w, h := r.Min.X, r.Min.Y, r.Dx(), r.Dy()
	if h < 4 {
		p.FillRect(image.Rect(x+w/2-1, y+h/2-1, x+w/2+1, y+h/2+1))
		return
	}
	x++
	w = h - 2
	d1 := w / 3
	d2 := w - d1
	y += (h+d2)/2 - d1 - 2
	for n := 0; n < 3; n++ {
		p.Line(image.Pt(x, y), image.Pt(x+d1, y+d1))
		p.Line(image.Pt(x+d1, y+d1), image.Pt(x+w-1, y+d1-d2+1))
		y++
	}
}
