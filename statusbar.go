package felt

import (
	"fmt"
	"image"

	"github.com/feltk/felt/draw"
	"github.com/feltk/felt/util"
)

// statusBarBorder pads the label slots away from the bar's bezel.
const statusBarBorder = 2

// Position addresses one of the three label slots of a StatusBar.
type Position int

const (
	Left Position = iota
	Center
	Right
)

func (p Position) String() string {
	switch p {
	case Left:
		return "left"
	case Center:
		return "center"
	case Right:
		return "right"
	}
	return fmt.Sprintf("Position(%d)", int(p))
}

// StatusBar is a strip anchored to the bottom of its parent's content
// area. Only its height matters at construction; every layout pass
// recomputes the position and width from the parent, shortens any
// sibling that would paint over the strip, and refits the label
// slots. Text goes in through Set and Setf, addressed by Position.
type StatusBar struct {
	Group
	slots   [3]*InvisibleBox
	slotBox [3]Box
}

var statusBarStyle = NewNamedStyle("StatusBar", func(s *Style) {
	s.box = ThinUpBox
	s.color = draw.Background()
	s.labelSize = 10
}, nil)

// NewStatusBar returns a status bar of height h.
func NewStatusBar(h int) *StatusBar {
	sb := &StatusBar{}
	sb.r = image.Rect(0, 0, 0, h)
	sb.slotBox = [3]Box{FlatBox, FlatBox, FlatBox}
	sb.style = &statusBarStyle.Style
	sb.SetAlign(AlignInside)
	sb.SetBox(ThinDownBox)
	sb.resizeFromParent()
	return sb
}

func (sb *StatusBar) Kind() string { return "statusbar" }

// Layout runs the group pass, then re-anchors the bar. Anchoring last
// keeps a parent-driven resize from clobbering the bar's geometry.
func (sb *StatusBar) Layout() {
	sb.Group.Layout()
	sb.resizeFromParent()
}

// resizeFromParent pins the bar to the bottom of the parent's content
// area at full content width, shortens any sibling that would overlap
// it, and refits the label slots. Siblings are only ever shortened,
// never moved; a shortened sibling container is flagged so its own
// children re-lay on the next pass. Only direct siblings are checked,
// not their descendants.
func (sb *StatusBar) resizeFromParent() {
	parent := sb.Parent()
	if parent == nil {
		return
	}
	pb := parent.Style().Box().Info()
	h := sb.r.Dy()
	x := pb.Dx
	y := parent.Rect().Dy() - pb.Dh - h
	sb.r = image.Rect(x, y, x+parent.Rect().Dx()-pb.Dw, y+h)
	if c, ok := parent.(Container); ok {
		for _, sib := range c.Children() {
			if sib == Widget(sb) {
				continue
			}
			delta := sib.Rect().Max.Y - sb.r.Min.Y
			if delta <= 0 {
				continue
			}
			r := sib.Rect()
			r.Max.Y = r.Min.Y + util.Max(r.Dy()-delta, 0)
			sib.Resize(r)
			if _, ok := sib.(Container); ok {
				sib.addLayout(LayoutDamage)
			}
		}
	}
	for i, slot := range sb.slots {
		sb.updateBox(slot, Position(i))
	}
}

// Set places text in the slot at pos, creating the slot widget on
// first use. Empty text destroys the slot.
func (sb *StatusBar) Set(text string, pos Position) {
	if text == "" {
		if sb.slots[pos] != nil {
			sb.Remove(sb.slots[pos])
			sb.slots[pos] = nil
			sb.Redraw()
		}
		return
	}
	slot := sb.slots[pos]
	if slot == nil {
		bi := sb.Style().Box().Info()
		x, y := bi.Dx, bi.Dh+statusBarBorder
		slot = NewInvisibleBox(sb.slotBox[pos], image.Rect(x, y, x+10, y+10), "")
		slot.SetAlign(AlignLeft | AlignInside)
		sb.Add(slot)
		sb.slots[pos] = slot
	}
	slot.SetLabel(text)
	sb.updateBox(slot, pos)
	sb.Redraw()
}

// Setf formats into the slot at pos with fmt.Sprintf semantics.
func (sb *StatusBar) Setf(pos Position, format string, args ...interface{}) {
	sb.Set(fmt.Sprintf(format, args...), pos)
}

// SetChildBox sets the box drawn behind the slot at pos, applying
// immediately if the slot exists.
func (sb *StatusBar) SetChildBox(pos Position, b Box) {
	sb.slotBox[pos] = b
	if sb.slots[pos] != nil {
		sb.slots[pos].SetBox(b)
	}
}

// SetChildBoxAll sets the box for all three slots.
func (sb *StatusBar) SetChildBoxAll(b Box) {
	for i := range sb.slotBox {
		sb.SetChildBox(Position(i), b)
	}
}

// updateBox refits a slot around its measured label: width from the
// text extent plus padding scaled by the slot's own box, height from
// the bar's content height, x from the position. The center slot
// centers against the bar's full right edge rather than the content
// edge, which the other positions respect; layouts built against
// that quirk depend on it.
func (sb *StatusBar) updateBox(slot *InvisibleBox, pos Position) {
	if slot == nil {
		return
	}
	width := MeasureLabel(slot).X + (sb.slotBox[pos].Info().Dw+1)*2
	bi := sb.Style().Box().Info()
	height := sb.r.Dy() - (bi.Dh+statusBarBorder)*2
	var x int
	switch pos {
	case Left:
		x = bi.Dx
	case Center:
		x = (sb.r.Max.X - width) / 2
	case Right:
		x = sb.r.Max.X - width - bi.Dw - statusBarBorder
	}
	y := slot.Rect().Min.Y
	slot.Resize(image.Rect(x, y, x+width, y+height))
	slot.Redraw()
}
