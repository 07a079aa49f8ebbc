package felt

import (
	"github.com/feltk/felt/draw"
	"github.com/feltk/felt/theme"
)

// Style resolves the visual attributes of a widget. A field left at
// its zero value falls through to the parent style, ending at the
// process-wide base style whose revert callback fills every field, so
// most widgets carry nothing of their own. Styles are read and
// written on the UI goroutine only.
type Style struct {
	parent *Style

	box       Box
	buttonBox Box
	focusBox  Box

	color              draw.Color
	textColor          draw.Color
	labelColor         draw.Color
	selectionColor     draw.Color
	selectionTextColor draw.Color
	buttonColor        draw.Color
	highlightColor     draw.Color
	highlightTextColor draw.Color

	labelFont draw.Font
	labelSize int

	// 0 unset, 1 on, -1 off
	drawBoxesInactive int8
}

// NewStyle returns an empty style inheriting every field from parent.
func NewStyle(parent *Style) *Style { return &Style{parent: parent} }

// Box returns the frame drawn behind the widget.
func (s *Style) Box() Box {
	for t := s; t != nil; t = t.parent {
		if t.box != nil {
			return t.box
		}
	}
	return DownBox
}

// ButtonBox returns the frame for button-like widgets.
func (s *Style) ButtonBox() Box {
	for t := s; t != nil; t = t.parent {
		if t.buttonBox != nil {
			return t.buttonBox
		}
	}
	return UpBox
}

// FocusBox returns the indicator drawn when the widget has keyboard
// focus.
func (s *Style) FocusBox() Box {
	for t := s; t != nil; t = t.parent {
		if t.focusBox != nil {
			return t.focusBox
		}
	}
	return DottedFrame
}

// Color returns the background color.
func (s *Style) Color() draw.Color {
	for t := s; t != nil; t = t.parent {
		if t.color != draw.NoColor {
			return t.color
		}
	}
	return draw.Background()
}

// TextColor returns the color of text drawn in the widget interior.
func (s *Style) TextColor() draw.Color {
	for t := s; t != nil; t = t.parent {
		if t.textColor != draw.NoColor {
			return t.textColor
		}
	}
	return theme.Current().Text
}

// LabelColor returns the color of the widget label.
func (s *Style) LabelColor() draw.Color {
	for t := s; t != nil; t = t.parent {
		if t.labelColor != draw.NoColor {
			return t.labelColor
		}
	}
	return theme.Current().Label
}

// SelectionColor returns the background of selected content.
func (s *Style) SelectionColor() draw.Color {
	for t := s; t != nil; t = t.parent {
		if t.selectionColor != draw.NoColor {
			return t.selectionColor
		}
	}
	return theme.Current().Selection
}

// SelectionTextColor returns the foreground of selected content.
func (s *Style) SelectionTextColor() draw.Color {
	for t := s; t != nil; t = t.parent {
		if t.selectionTextColor != draw.NoColor {
			return t.selectionTextColor
		}
	}
	return theme.Current().SelectionText
}

// ButtonColor returns the background of button-like widgets.
func (s *Style) ButtonColor() draw.Color {
	for t := s; t != nil; t = t.parent {
		if t.buttonColor != draw.NoColor {
			return t.buttonColor
		}
	}
	return draw.Background()
}

// HighlightColor returns the mouse-over background, or NoColor when
// the style draws no highlight.
func (s *Style) HighlightColor() draw.Color {
	for t := s; t != nil; t = t.parent {
		if t.highlightColor != draw.NoColor {
			return t.highlightColor
		}
	}
	return theme.Current().Highlight
}

// HighlightTextColor returns the mouse-over foreground, or NoColor to
// keep the text color.
func (s *Style) HighlightTextColor() draw.Color {
	for t := s; t != nil; t = t.parent {
		if t.highlightTextColor != draw.NoColor {
			return t.highlightTextColor
		}
	}
	return theme.Current().HighlightText
}

// LabelFont returns the font labels are measured and drawn with. It
// is nil until a display exists and SetDefaultFont runs, and label
// drawing quietly skips until then.
func (s *Style) LabelFont() draw.Font {
	for t := s; t != nil; t = t.parent {
		if t.labelFont != nil {
			return t.labelFont
		}
	}
	return defaultFont
}

// LabelSize returns the nominal label size in pixels. Backends load
// fonts at fixed sizes, so the size steers derived geometry such as
// glyph boxes rather than rasterization.
func (s *Style) LabelSize() int {
	for t := s; t != nil; t = t.parent {
		if t.labelSize != 0 {
			return t.labelSize
		}
	}
	return 12
}

// DrawBoxesInactive reports whether bezels dim when a widget is
// inactive.
func (s *Style) DrawBoxesInactive() bool {
	for t := s; t != nil; t = t.parent {
		if t.drawBoxesInactive != 0 {
			return t.drawBoxesInactive > 0
		}
	}
	return true
}

func (s *Style) SetBox(b Box)                       { s.box = b }
func (s *Style) SetButtonBox(b Box)                 { s.buttonBox = b }
func (s *Style) SetFocusBox(b Box)                  { s.focusBox = b }
func (s *Style) SetColor(c draw.Color)              { s.color = c }
func (s *Style) SetTextColor(c draw.Color)          { s.textColor = c }
func (s *Style) SetLabelColor(c draw.Color)         { s.labelColor = c }
func (s *Style) SetSelectionColor(c draw.Color)     { s.selectionColor = c }
func (s *Style) SetSelectionTextColor(c draw.Color) { s.selectionTextColor = c }
func (s *Style) SetButtonColor(c draw.Color)        { s.buttonColor = c }
func (s *Style) SetHighlightColor(c draw.Color)     { s.highlightColor = c }
func (s *Style) SetHighlightTextColor(c draw.Color) { s.highlightTextColor = c }
func (s *Style) SetLabelFont(f draw.Font)           { s.labelFont = f }
func (s *Style) SetLabelSize(n int)                 { s.labelSize = n }

func (s *Style) SetDrawBoxesInactive(on bool) {
	if on {
		s.drawBoxesInactive = 1
	} else {
		s.drawBoxesInactive = -1
	}
}

// BoxColors resolves the background and foreground a box draws with
// for the given flags: the selection pair when Selected is on, the
// highlight pair when Highlight is on and the style has a highlight
// color, the plain pair otherwise. Inactive dims the foreground.
func (s *Style) BoxColors(flags Flags) (bg, fg draw.Color) {
	switch {
	case flags&Selected != 0:
		bg, fg = s.SelectionColor(), s.SelectionTextColor()
	case flags&Highlight != 0 && s.HighlightColor() != draw.NoColor:
		bg = s.HighlightColor()
		fg = s.HighlightTextColor()
		if fg == draw.NoColor {
			fg = s.TextColor()
		}
	default:
		bg, fg = s.Color(), s.TextColor()
	}
	if flags&Inactive != 0 {
		fg = draw.Inactive(fg)
	}
	return bg, fg
}

// NamedStyle is a process-wide shared style with a revert callback
// that restores its theme defaults. Widgets point at named styles;
// editing a widget copies its style on write, so the shared defaults
// stay intact.
type NamedStyle struct {
	Style
	name   string
	revert func(*Style)
}

var (
	namedStyles   []*NamedStyle
	styleRegistry = make(map[string]*NamedStyle)
)

// NewNamedStyle registers a shared style under name. revert fills in
// the style's defaults; it runs once now and again on every
// RevertStyles call. A nil parent inherits from the base style.
func NewNamedStyle(name string, revert func(*Style), parent *NamedStyle) *NamedStyle {
	ns := &NamedStyle{name: name, revert: revert}
	if parent != nil {
		ns.parent = &parent.Style
	} else if baseStyle != nil {
		ns.parent = &baseStyle.Style
	}
	if revert != nil {
		revert(&ns.Style)
	}
	namedStyles = append(namedStyles, ns)
	styleRegistry[name] = ns
	return ns
}

func (ns *NamedStyle) Name() string { return ns.name }

// StyleByName returns the named style registered under name, or nil.
func StyleByName(name string) *NamedStyle { return styleRegistry[name] }

// The root of the style inheritance chain. Its revert reads the
// active theme palette, so reverting after a palette change restyles
// everything. Constructed inline, not via NewNamedStyle, so the
// initializer does not reference baseStyle and trip Go's
// initialization-cycle check; the steps mirror NewNamedStyle with a
// nil parent and no base style registered yet.
var baseStyle = func() *NamedStyle {
	ns := &NamedStyle{name: "default", revert: revertBase}
	revertBase(&ns.Style)
	namedStyles = append(namedStyles, ns)
	styleRegistry[ns.name] = ns
	return ns
}()

// BaseStyle returns the style every widget and named style ultimately
// inherits from.
func BaseStyle() *NamedStyle { return baseStyle }

func revertBase(s *Style) {
	pal := theme.Current()
	s.box = DownBox
	s.buttonBox = UpBox
	s.focusBox = DottedFrame
	s.color = draw.Background()
	s.textColor = pal.Text
	s.labelColor = pal.Label
	s.selectionColor = pal.Selection
	s.selectionTextColor = pal.SelectionText
	s.buttonColor = draw.Background()
	s.highlightColor = pal.Highlight
	s.highlightTextColor = pal.HighlightText
	s.labelSize = 12
	s.drawBoxesInactive = 1
}

// RevertStyles restores every named style to its revert defaults, in
// registration order. Run it after a theme change so derived colors
// recompute.
func RevertStyles() {
	for _, ns := range namedStyles {
		ns.Style = Style{parent: ns.parent}
		if ns.revert != nil {
			ns.revert(&ns.Style)
		}
	}
}

// SetTheme installs bg as the theme background and recomputes every
// named style from it.
func SetTheme(bg draw.Color) {
	draw.SetBackground(bg)
	RevertStyles()
}

// SetDarkMode switches between the light and dark palettes and
// reverts all styles.
func SetDarkMode(enabled bool) {
	theme.SetDarkMode(enabled)
	SetTheme(theme.Current().Background)
}

var defaultFont draw.Font

// SetDefaultFont installs the font styles fall back to when no label
// font is set. Fonts come from a display, which cannot exist at
// package initialization, so main wires this after draw init.
func SetDefaultFont(f draw.Font) { defaultFont = f }

// DefaultFont returns the fallback label font, nil before
// SetDefaultFont.
func DefaultFont() draw.Font { return defaultFont }
