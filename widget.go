package felt

import (
	"image"

	"github.com/feltk/felt/draw"
)

// Damage records which parts of a widget need repainting. Bits
// accumulate on the widget until the next window update draws and
// clears them.
type Damage uint8

const (
	// DamageChild means a descendant needs repainting, not the widget
	// itself.
	DamageChild Damage = 0x01

	// DamageExpose asks for the background too, after something
	// uncovered it.
	DamageExpose Damage = 0x04

	// DamageValue marks the display of the widget's value stale.
	DamageValue Damage = 0x08

	// DamageAll repaints the whole widget.
	DamageAll Damage = 0x80
)

// Widget is one node of the tree: a rectangle in parent-relative
// pixels, a style, state flags, and the layout and damage bookkeeping
// the update pass consumes. Implementations embed WidgetBase and
// override Kind, Draw and Layout as needed.
type Widget interface {
	// Kind names the widget type, as published by the inspection file
	// system.
	Kind() string

	Parent() Widget
	setParent(Widget)

	// Rect returns the widget rectangle relative to its parent's
	// origin.
	Rect() image.Rectangle

	// Resize moves the widget to r and reports whether anything
	// changed. A change marks layout damage on the widget and its
	// ancestors.
	Resize(r image.Rectangle) bool

	Flags() Flags
	SetFlags(Flags)
	// SetFlag turns the given bits on.
	SetFlag(Flags)
	// ClearFlag turns the given bits off.
	ClearFlag(Flags)

	Label() string
	SetLabel(string)

	Style() *Style

	// Layout consumes the widget's pending layout damage.
	Layout()
	LayoutPending() LayoutFlags
	addLayout(LayoutFlags)
	Relayout()

	Damage() Damage
	Redraw()
	addDamage(Damage)
	clearDamage()

	// Draw paints the widget into r, its own rectangle in absolute
	// screen coordinates.
	Draw(p draw.Painter, r image.Rectangle)
}

// Container is the subset of widgets that hold children.
type Container interface {
	Widget
	Children() []Widget
}

// WidgetBase supplies the common widget state.
type WidgetBase struct {
	parent Widget
	r      image.Rectangle
	flags  Flags
	label  string
	img    image.Image

	style    *Style
	ownStyle bool

	layoutPending LayoutFlags
	damage        Damage
}

func (w *WidgetBase) Kind() string { return "widget" }

func (w *WidgetBase) Parent() Widget     { return w.parent }
func (w *WidgetBase) setParent(p Widget) { w.parent = p }

func (w *WidgetBase) Rect() image.Rectangle { return w.r }

func (w *WidgetBase) Resize(r image.Rectangle) bool {
	var f LayoutFlags
	if r.Min.X != w.r.Min.X {
		f |= LayoutX
	}
	if r.Min.Y != w.r.Min.Y {
		f |= LayoutY
	}
	if r.Dx() != w.r.Dx() {
		f |= LayoutW
	}
	if r.Dy() != w.r.Dy() {
		f |= LayoutH
	}
	if f == 0 {
		return false
	}
	w.r = r
	w.layoutPending |= f
	w.markAncestors()
	return true
}

func (w *WidgetBase) addLayout(f LayoutFlags) { w.layoutPending |= f }

// markAncestors flags the parent chain so the next layout pass
// descends to this widget.
func (w *WidgetBase) markAncestors() {
	for p := w.parent; p != nil; p = p.Parent() {
		p.addLayout(LayoutChild)
	}
}

// Relayout schedules a full fresh Layout for the widget on the next
// update pass.
func (w *WidgetBase) Relayout() {
	w.layoutPending |= LayoutDamage
	w.markAncestors()
}

// Layout consumes the pending layout damage. The base widget has no
// geometry of its own to recompute.
func (w *WidgetBase) Layout() { w.layoutPending = 0 }

func (w *WidgetBase) LayoutPending() LayoutFlags { return w.layoutPending }

func (w *WidgetBase) Damage() Damage     { return w.damage }
func (w *WidgetBase) addDamage(d Damage) { w.damage |= d }
func (w *WidgetBase) clearDamage()       { w.damage = 0 }

// Redraw marks the widget for a full repaint on the next update.
func (w *WidgetBase) Redraw() {
	w.damage |= DamageAll
	for p := w.parent; p != nil; p = p.Parent() {
		p.addDamage(DamageChild)
	}
}

func (w *WidgetBase) Flags() Flags     { return w.flags }
func (w *WidgetBase) SetFlags(f Flags) { w.flags = f }

// SetFlag turns the given bits on.
func (w *WidgetBase) SetFlag(f Flags) { w.flags |= f }

// ClearFlag turns the given bits off.
func (w *WidgetBase) ClearFlag(f Flags) { w.flags &^= f }

// SetAlign replaces the label alignment bits.
func (w *WidgetBase) SetAlign(a Flags) { w.flags = w.flags&^AlignMask | a&AlignMask }

func (w *WidgetBase) Label() string { return w.label }

// SetLabel replaces the label and schedules a repaint.
func (w *WidgetBase) SetLabel(s string) {
	if s == w.label {
		return
	}
	w.label = s
	w.Redraw()
}

// Image returns the picture drawn with the label, usually nil.
func (w *WidgetBase) Image() image.Image { return w.img }

// SetImage attaches a picture drawn above the label.
func (w *WidgetBase) SetImage(m image.Image) {
	w.img = m
	w.Redraw()
}

// Style returns the widget's style, the base style when none was
// assigned.
func (w *WidgetBase) Style() *Style {
	if w.style == nil {
		return &baseStyle.Style
	}
	return w.style
}

// SetStyle points the widget at a shared style.
func (w *WidgetBase) SetStyle(s *Style) {
	w.style = s
	w.ownStyle = false
}

// editStyle returns a style private to the widget, inserting a
// copy-on-write layer over the shared style on first use.
func (w *WidgetBase) editStyle() *Style {
	if !w.ownStyle {
		w.style = &Style{parent: w.Style()}
		w.ownStyle = true
	}
	return w.style
}

// Box returns the widget's resolved frame.
func (w *WidgetBase) Box() Box { return w.Style().Box() }

// SetBox overrides the widget's frame without touching the shared
// style.
func (w *WidgetBase) SetBox(b Box) { w.editStyle().box = b }

func (w *WidgetBase) SetColor(c draw.Color)      { w.editStyle().color = c }
func (w *WidgetBase) SetTextColor(c draw.Color)  { w.editStyle().textColor = c }
func (w *WidgetBase) SetLabelColor(c draw.Color) { w.editStyle().labelColor = c }
func (w *WidgetBase) SetLabelFont(f draw.Font)   { w.editStyle().labelFont = f }
func (w *WidgetBase) SetLabelSize(n int)         { w.editStyle().labelSize = n }

// Draw paints the style box across r and the label inside it.
func (w *WidgetBase) Draw(p draw.Painter, r image.Rectangle) {
	s := w.Style()
	b := s.Box()
	b.Draw(p, r, s, w.flags)
	w.DrawLabel(p, Inset(b, r), w.flags)
}

// DrawLabel paints the widget's image and label text into r, honoring
// the alignment bits in flags. An image stacks above the text.
func (w *WidgetBase) DrawLabel(p draw.Painter, r image.Rectangle, flags Flags) {
	if r.Empty() {
		return
	}
	s := w.Style()
	f := s.LabelFont()
	var tw, th int
	if w.label != "" && f != nil {
		tw, th = f.StringWidth(w.label), f.Height()
	}
	var iw, ih int
	if w.img != nil {
		sz := w.img.Bounds().Size()
		iw, ih = sz.X, sz.Y
	}
	cw, ch := tw, th+ih
	if iw > cw {
		cw = iw
	}
	if cw == 0 || ch == 0 {
		return
	}
	x := r.Min.X
	switch {
	case flags&AlignLeft != 0:
	case flags&AlignRight != 0:
		x = r.Max.X - cw
	default:
		x = r.Min.X + (r.Dx()-cw)/2
	}
	y := r.Min.Y
	switch {
	case flags&AlignTop != 0:
	case flags&AlignBottom != 0:
		y = r.Max.Y - ch
	default:
		y = r.Min.Y + (r.Dy()-ch)/2
	}
	if w.img != nil {
		p.DrawImage(image.Pt(x+(cw-iw)/2, y), w.img)
		y += ih
	}
	if tw > 0 {
		fg := s.LabelColor()
		if flags&Inactive != 0 {
			fg = draw.Inactive(fg)
		}
		p.SetColor(fg)
		p.Text(image.Pt(x+(cw-tw)/2, y), f, w.label)
	}
}

// MeasureLabel returns the pixel extent of w's label text in its
// style's label font, zero when there is no label or no font yet.
func MeasureLabel(w Widget) image.Point {
	f := w.Style().LabelFont()
	if f == nil || w.Label() == "" {
		return image.Point{}
	}
	return image.Pt(f.StringWidth(w.Label()), f.Height())
}

// ScreenRect returns w's rectangle in absolute screen coordinates by
// accumulating the parent offsets.
func ScreenRect(w Widget) image.Rectangle {
	r := w.Rect()
	for p := w.Parent(); p != nil; p = p.Parent() {
		r = r.Add(p.Rect().Min)
	}
	return r
}
