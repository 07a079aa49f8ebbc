package felt

import (
	"image"

	"github.com/feltk/felt/draw"
	"github.com/feltk/felt/internal/logger"
)

// Window owns the root group of a widget tree and pushes frames to a
// painter. Update is the one entry point: it runs the pending layout
// work, repaints what the damage bits name, and flushes.
type Window struct {
	root *Group
	p    draw.Painter
}

// NewWindow makes a window covering r on p. The first Update paints
// everything.
func NewWindow(p draw.Painter, r image.Rectangle) *Window {
	w := &Window{root: NewGroup(r), p: p}
	w.root.Redraw()
	return w
}

// Root returns the root group widgets attach to.
func (w *Window) Root() *Group { return w.root }

// Resize moves the window to r and schedules a full layout and
// repaint.
func (w *Window) Resize(r image.Rectangle) {
	w.root.Resize(r)
	w.root.Relayout()
	w.root.Redraw()
}

// Update runs pending layout, repaints every damaged widget, and
// flushes the painter.
func (w *Window) Update() error {
	if pending := w.root.LayoutPending(); pending != 0 {
		logger.Log().Debug().Uint8("pending", uint8(pending)).Msg("layout pass")
		w.root.Layout()
	}
	w.paint(w.root, w.root.Rect())
	return w.p.Flush()
}

// paint walks the damaged part of the subtree at n, whose absolute
// rectangle is r. Anything beyond child damage repaints the node
// whole, which repaints its subtree with it.
func (w *Window) paint(n Widget, r image.Rectangle) {
	d := n.Damage()
	if d == 0 {
		return
	}
	if d != DamageChild {
		n.Draw(w.p, r)
		clearDamage(n)
		return
	}
	n.clearDamage()
	if c, ok := n.(Container); ok {
		for _, child := range c.Children() {
			if child.Flags()&Invisible != 0 {
				continue
			}
			w.paint(child, child.Rect().Add(r.Min))
		}
	}
}

// clearDamage clears the damage bits of a whole subtree.
func clearDamage(n Widget) {
	n.clearDamage()
	if c, ok := n.(Container); ok {
		for _, child := range c.Children() {
			clearDamage(child)
		}
	}
}

// WidgetAt returns the deepest visible widget containing the absolute
// point pt, or nil when pt is outside the window.
func (w *Window) WidgetAt(pt image.Point) Widget {
	if !pt.In(w.root.Rect()) {
		return nil
	}
	return widgetAt(w.root, pt.Sub(w.root.Rect().Min))
}

// widgetAt descends from n looking for the topmost child under pt,
// which is relative to n's origin. Later children draw on top, so the
// scan runs back to front.
func widgetAt(n Widget, pt image.Point) Widget {
	if c, ok := n.(Container); ok {
		kids := c.Children()
		for i := len(kids) - 1; i >= 0; i-- {
			child := kids[i]
			if child.Flags()&Invisible != 0 {
				continue
			}
			if pt.In(child.Rect()) {
				return widgetAt(child, pt.Sub(child.Rect().Min))
			}
		}
	}
	return n
}
