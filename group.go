package felt

import (
	"image"

	"github.com/feltk/felt/draw"
)

// Group is the container widget: an ordered list of children, drawn
// and laid out in insertion order. Child rectangles are relative to
// the group origin, so moving a group moves everything in it.
type Group struct {
	WidgetBase
	children []Widget
}

// NewGroup returns an empty group occupying r.
func NewGroup(r image.Rectangle) *Group {
	g := &Group{}
	g.r = r
	return g
}

func (g *Group) Kind() string { return "group" }

func (g *Group) Children() []Widget { return g.children }

// Add appends child to the group, reparenting it. The next layout
// pass picks it up.
func (g *Group) Add(child Widget) {
	child.setParent(g)
	g.children = append(g.children, child)
	g.Relayout()
}

// Remove detaches child from the group. The child keeps its geometry
// but no longer draws.
func (g *Group) Remove(child Widget) {
	for i, c := range g.children {
		if c == child {
			g.children = append(g.children[:i], g.children[i+1:]...)
			child.setParent(nil)
			g.Relayout()
			return
		}
	}
}

// Layout consumes the group's pending damage, then lays out children.
// A size change or a forced pass relays every child; otherwise only
// the children that asked for it. The group's own bits clear first so
// a child's layout may re-flag the group for another pass.
func (g *Group) Layout() {
	pending := g.layoutPending
	g.WidgetBase.Layout()
	force := pending&(LayoutWH|LayoutDamage) != 0
	for _, c := range g.children {
		if force {
			c.addLayout(LayoutDamage)
		}
		if c.LayoutPending() != 0 {
			c.Layout()
		}
	}
}

// Draw paints the group box and label, then every visible child
// offset by the group's screen position.
func (g *Group) Draw(p draw.Painter, r image.Rectangle) {
	s := g.Style()
	b := s.Box()
	b.Draw(p, r, s, g.flags)
	g.DrawLabel(p, Inset(b, r), g.flags)
	for _, c := range g.children {
		if c.Flags()&Invisible != 0 {
			continue
		}
		c.Draw(p, c.Rect().Add(r.Min))
	}
}
