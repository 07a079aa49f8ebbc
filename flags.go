// Package felt is a small cross-platform widget toolkit: styled box
// drawing primitives, a shared style model with named defaults and
// theme reverts, and a widget tree with lazy layout propagation. The
// toolkit core draws through the draw.Painter contract so the same
// widgets render on a plan9port draw device, on duitdraw, or on the
// software painters in felttest.
package felt

import (
	"fmt"
	"strings"
)

// Flags carry the visual state of one draw request: the boolean
// facets of the widget (pushed, focused, selected, ...) together with
// its label alignment. They are passed by value into every Box and
// label draw call and never stored by the callee.
type Flags uint32

const (
	// Alignment of the label relative to the widget rectangle. With
	// none of these set the label is centered inside the widget.
	AlignTop    Flags = 0x00000001
	AlignBottom Flags = 0x00000002
	AlignLeft   Flags = 0x00000004
	AlignRight  Flags = 0x00000008
	AlignCenter Flags = 0x00000010
	AlignInside Flags = 0x00000020
	AlignClip   Flags = 0x00000040
	AlignWrap   Flags = 0x00000080
	AlignMask   Flags = 0x000000FF

	Inactive  Flags = 0x00000100 // draw grayed out, ignore events
	Output    Flags = 0x00000200 // displays data but takes no input
	Value     Flags = 0x00000400 // on, checked, or otherwise true
	Selected  Flags = 0x00000800 // chosen in a browser or menu
	Invisible Flags = 0x00001000 // draw box edges only, no interior
	Highlight Flags = 0x00002000 // under the mouse
	Changed   Flags = 0x00004000 // value changed since last callback
	Focused   Flags = 0x00200000 // receiving keyboard input
	Pushed    Flags = 0x00400000 // mouse held down on the widget
)

// Align returns only the alignment bits of f.
func (f Flags) Align() Flags { return f & AlignMask }

var flagNames = []struct {
	bit  Flags
	name string
}{
	{Inactive, "inactive"},
	{Output, "output"},
	{Value, "value"},
	{Selected, "selected"},
	{Invisible, "invisible"},
	{Highlight, "highlight"},
	{Changed, "changed"},
	{Focused, "focused"},
	{Pushed, "pushed"},
	{AlignTop, "top"},
	{AlignBottom, "bottom"},
	{AlignLeft, "left"},
	{AlignRight, "right"},
	{AlignCenter, "center"},
	{AlignInside, "inside"},
	{AlignClip, "clip"},
	{AlignWrap, "wrap"},
}

// String names the set bits of f separated by '|', or "none". Bits
// without a name print as a hex value.
func (f Flags) String() string {
	if f == 0 {
		return "none"
	}
	var b strings.Builder
	rest := f
	for _, fn := range flagNames {
		if f&fn.bit == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('|')
		}
		b.WriteString(fn.name)
		rest &^= fn.bit
	}
	if rest != 0 {
		if b.Len() > 0 {
			b.WriteByte('|')
		}
		fmt.Fprintf(&b, "%#x", uint32(rest))
	}
	return b.String()
}

// LayoutFlags record which geometry of a widget is out of date. They
// accumulate on the widget until its next Layout call consumes them.
type LayoutFlags uint8

const (
	LayoutX  LayoutFlags = 0x01 // x moved
	LayoutY  LayoutFlags = 0x02 // y moved
	LayoutXY LayoutFlags = LayoutX | LayoutY
	LayoutW  LayoutFlags = 0x04 // width changed
	LayoutH  LayoutFlags = 0x08 // height changed
	LayoutWH LayoutFlags = LayoutW | LayoutH

	LayoutXYWH LayoutFlags = LayoutXY | LayoutWH

	// LayoutChild means some descendant needs its Layout called, not
	// necessarily this widget itself.
	LayoutChild LayoutFlags = 0x10

	// LayoutUser marks a resize that came from outside the toolkit,
	// such as the window system, rather than internal layout code.
	LayoutUser LayoutFlags = 0x20

	// LayoutDamage is set by Relayout to force a full Layout pass even
	// when no geometry bit is set.
	LayoutDamage LayoutFlags = 0x80
)
