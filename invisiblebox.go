package felt

import "image"

// InvisibleBox is the passive widget: it draws its box and label and
// does nothing else. With its default NoBox it is pure label; handed
// a real box it becomes a styled panel. Status bar slots are
// invisible boxes.
type InvisibleBox struct {
	WidgetBase
}

var invisibleBoxStyle = NewNamedStyle("InvisibleBox", func(s *Style) {
	s.box = NoBox
}, nil)

// NewInvisibleBox returns a box widget at r. A nil b keeps the shared
// default.
func NewInvisibleBox(b Box, r image.Rectangle, label string) *InvisibleBox {
	ib := &InvisibleBox{}
	ib.r = r
	ib.label = label
	ib.style = &invisibleBoxStyle.Style
	if b != nil {
		ib.SetBox(b)
	}
	return ib
}

func (ib *InvisibleBox) Kind() string { return "invisiblebox" }
