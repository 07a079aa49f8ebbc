package felt

import (
	"fmt"
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/feltk/felt/draw"
	"github.com/feltk/felt/felttest"
)

func ops(p draw.Painter) []string {
	return p.(felttest.GettableDrawOps).DrawOps()
}

func TestFlatBoxFillsRectangle(t *testing.T) {
	p := felttest.NewPainter()
	s := NewStyle(nil)
	r := image.Rect(0, 0, 10, 5)

	FlatBox.Draw(p, r, s, 0)

	want := []string{
		fmt.Sprintf("fill (0,0)-(10,5) %v", draw.Background()),
	}
	if diff := cmp.Diff(want, ops(p)); diff != "" {
		t.Errorf("FlatBox ops mismatch (-want +got):\n%s", diff)
	}
}

func TestFlatBoxDegenerateDrawsNothing(t *testing.T) {
	tt := []struct {
		name  string
		r     image.Rectangle
		flags Flags
	}{
		{"invisible", image.Rect(0, 0, 10, 5), Invisible},
		{"empty", image.Rect(0, 0, 0, 5), 0},
		{"inverted", image.Rectangle{Min: image.Pt(10, 10), Max: image.Pt(3, 3)}, 0},
	}
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			p := felttest.NewPainter()
			FlatBox.Draw(p, tc.r, NewStyle(nil), tc.flags)
			if got := ops(p); len(got) != 0 {
				t.Errorf("FlatBox drew %v; expected nothing", got)
			}
		})
	}
}

func TestFrameBoxSpiral(t *testing.T) {
	p := felttest.NewPainter()
	s := NewStyle(nil)

	// Thin down bezel, one character per edge: bottom, right, top,
	// left, then the interior fill.
	ThinDownBox.Draw(p, image.Rect(0, 0, 10, 10), s, 0)

	w := draw.GrayShade('W')
	h := draw.GrayShade('H')
	want := []string{
		fmt.Sprintf("line (0,9) (9,9) %v", w),
		fmt.Sprintf("line (9,0) (9,8) %v", w),
		fmt.Sprintf("line (0,0) (8,0) %v", h),
		fmt.Sprintf("line (0,1) (0,8) %v", h),
		fmt.Sprintf("fill (1,1)-(9,9) %v", draw.Background()),
	}
	if diff := cmp.Diff(want, ops(p)); diff != "" {
		t.Errorf("ThinDownBox ops mismatch (-want +got):\n%s", diff)
	}
}

func TestFrameBoxStopsWhenRectangleRunsOut(t *testing.T) {
	p := felttest.NewPainter()
	s := NewStyle(nil)

	// Four pixel tall rectangle: the fourth concentric step leaves no
	// height, so drawing stops mid-pattern with no interior fill.
	DownBox.Draw(p, image.Rect(0, 0, 10, 4), s, 0)

	w := draw.GrayShade('W')
	h := draw.GrayShade('H')
	pp := draw.GrayShade('P')
	a := draw.GrayShade('A')
	want := []string{
		fmt.Sprintf("line (0,3) (9,3) %v", w),
		fmt.Sprintf("line (9,0) (9,2) %v", w),
		fmt.Sprintf("line (0,0) (8,0) %v", h),
		fmt.Sprintf("line (0,1) (0,2) %v", h),
		fmt.Sprintf("line (1,2) (8,2) %v", pp),
		fmt.Sprintf("line (8,1) (8,1) %v", pp),
		fmt.Sprintf("line (1,1) (7,1) %v", a),
	}
	if diff := cmp.Diff(want, ops(p)); diff != "" {
		t.Errorf("short rectangle ops mismatch (-want +got):\n%s", diff)
	}
}

func TestFrameBoxModePrefixStartsAtTop(t *testing.T) {
	p := felttest.NewPainter()
	s := NewStyle(nil)

	EngravedBox.Draw(p, image.Rect(0, 0, 10, 10), s, 0)

	got := ops(p)
	if len(got) != 9 {
		t.Fatalf("engraved box emitted %d ops; expected 9: %v", len(got), got)
	}
	h := draw.GrayShade('H')
	// First two edges are top then left.
	if want := fmt.Sprintf("line (0,0) (9,0) %v", h); got[0] != want {
		t.Errorf("first edge = %q; expected %q", got[0], want)
	}
	if want := fmt.Sprintf("line (0,1) (0,9) %v", h); got[1] != want {
		t.Errorf("second edge = %q; expected %q", got[1], want)
	}
	if want := fmt.Sprintf("fill (2,2)-(8,8) %v", draw.Background()); got[8] != want {
		t.Errorf("interior = %q; expected %q", got[8], want)
	}
}

func TestFrameBoxValueUsesDownPattern(t *testing.T) {
	r := image.Rect(0, 0, 20, 12)
	s := NewStyle(nil)

	up := felttest.NewPainter()
	UpBox.Draw(up, r, s, Value)
	down := felttest.NewPainter()
	DownBox.Draw(down, r, s, 0)

	if diff := cmp.Diff(ops(down), ops(up)); diff != "" {
		t.Errorf("UpBox with Value should draw the down bezel (-down +up):\n%s", diff)
	}
}

func TestFrameBoxInvisibleSkipsInterior(t *testing.T) {
	p := felttest.NewPainter()
	ThinUpBox.Draw(p, image.Rect(0, 0, 10, 10), NewStyle(nil), Invisible)

	got := ops(p)
	if len(got) != 4 {
		t.Fatalf("invisible bezel emitted %d ops; expected 4 edges: %v", len(got), got)
	}
	for _, op := range got {
		if op[:4] != "line" {
			t.Errorf("unexpected op %q; expected edges only", op)
		}
	}
}

func TestInactivePattern(t *testing.T) {
	tt := []struct {
		pattern, want string
	}{
		{"WWHHPPAA", "TTOORRMM"},
		{"AAWWHHTT", "MMTTOOSS"},
		{"HHWW", "OOTT"},
		{"2HHWWWWHH", "2OOTTTTOO"},
		{"R", "R"},
	}
	for _, tc := range tt {
		if got := inactivePattern(tc.pattern); got != tc.want {
			t.Errorf("inactivePattern(%q) = %q; expected %q", tc.pattern, got, tc.want)
		}
	}
}

func TestFrameBoxInactiveDimsShades(t *testing.T) {
	s := NewStyle(nil)
	p := felttest.NewPainter()
	ThinUpBox.Draw(p, image.Rect(0, 0, 10, 10), s, Inactive)

	// "HHWW" compresses to "OOTT".
	if want := fmt.Sprintf("line (0,9) (9,9) %v", draw.GrayShade('O')); ops(p)[0] != want {
		t.Errorf("first inactive edge = %q; expected %q", ops(p)[0], want)
	}

	// Styles can keep the full shades for inactive widgets.
	s2 := NewStyle(nil)
	s2.SetDrawBoxesInactive(false)
	p2 := felttest.NewPainter()
	ThinUpBox.Draw(p2, image.Rect(0, 0, 10, 10), s2, Inactive)
	if want := fmt.Sprintf("line (0,9) (9,9) %v", draw.GrayShade('H')); ops(p2)[0] != want {
		t.Errorf("undimmed inactive edge = %q; expected %q", ops(p2)[0], want)
	}
}

func TestBoxInfo(t *testing.T) {
	tt := []struct {
		box  Box
		want BoxInfo
	}{
		{NoBox, BoxInfo{}},
		{FlatBox, BoxInfo{Fills: 3}},
		{DownBox, BoxInfo{Dx: 2, Dy: 2, Dw: 4, Dh: 4, Fills: 3}},
		{UpBox, BoxInfo{Dx: 2, Dy: 2, Dw: 4, Dh: 4, Fills: 3}},
		{ThinDownBox, BoxInfo{Dx: 1, Dy: 1, Dw: 2, Dh: 2, Fills: 3}},
		{ThinUpBox, BoxInfo{Dx: 1, Dy: 1, Dw: 2, Dh: 2, Fills: 3}},
		{EngravedBox, BoxInfo{Dx: 2, Dy: 2, Dw: 4, Dh: 4, Fills: 3}},
		{EmbossedBox, BoxInfo{Dx: 2, Dy: 2, Dw: 4, Dh: 4, Fills: 3}},
		{BorderBox, BoxInfo{Dx: 1, Dy: 1, Dw: 2, Dh: 2, Fills: 3}},
		{BorderFrame, BoxInfo{Dx: 1, Dy: 1, Dw: 2, Dh: 2}},
		{DottedFrame, BoxInfo{}},
		{HighlightUpBox, BoxInfo{Dx: 1, Dy: 1, Dw: 2, Dh: 2, Fills: 3}},
		{HighlightDownBox, BoxInfo{Dx: 1, Dy: 1, Dw: 2, Dh: 2, Fills: 3}},
	}
	for _, tc := range tt {
		if got := tc.box.Info(); got != tc.want {
			t.Errorf("%s info = %+v; expected %+v", tc.box.Name(), got, tc.want)
		}
	}
}

func TestInset(t *testing.T) {
	r := image.Rect(10, 10, 110, 60)
	tt := []struct {
		box  Box
		want image.Rectangle
	}{
		{NoBox, image.Rect(10, 10, 110, 60)},
		{ThinUpBox, image.Rect(11, 11, 109, 59)},
		{UpBox, image.Rect(12, 12, 108, 58)},
		{BorderFrame, image.Rect(11, 11, 109, 59)},
	}
	for _, tc := range tt {
		if got := Inset(tc.box, r); got != tc.want {
			t.Errorf("Inset(%s, %v) = %v; expected %v", tc.box.Name(), r, got, tc.want)
		}
	}
}

func TestNewFrameBoxRejectsBadPatterns(t *testing.T) {
	tt := []string{"", "2", "A", "ABC", "2ABC"}
	for _, pattern := range tt {
		t.Run(fmt.Sprintf("%q", pattern), func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("NewFrameBox(%q) did not panic", pattern)
				}
			}()
			NewFrameBox("bad", pattern, nil)
		})
	}
}

func TestNewFrameBoxSelfDown(t *testing.T) {
	b := NewFrameBox("test_selfdown", "HHWW", nil)
	if b.down != b {
		t.Errorf("nil down should reference the box itself")
	}
	if BoxByName("test_selfdown") != Box(b) {
		t.Errorf("constructed box not registered under its name")
	}
}

func TestHighlightBoxDelegates(t *testing.T) {
	r := image.Rect(0, 0, 30, 14)
	s := NewStyle(nil)

	for _, flags := range []Flags{Highlight, Selected, Value, Pushed, Highlight | Pushed} {
		hp := felttest.NewPainter()
		HighlightUpBox.Draw(hp, r, s, flags)
		ap := felttest.NewPainter()
		ThinUpBox.Draw(ap, r, s, flags)
		if diff := cmp.Diff(ops(ap), ops(hp)); diff != "" {
			t.Errorf("flags %#x: highlight box differs from active box (-active +highlight):\n%s", uint32(flags), diff)
		}
	}

	hp := felttest.NewPainter()
	HighlightUpBox.Draw(hp, r, s, 0)
	fp := felttest.NewPainter()
	FlatBox.Draw(fp, r, s, 0)
	if diff := cmp.Diff(ops(fp), ops(hp)); diff != "" {
		t.Errorf("idle highlight box differs from flat box (-flat +highlight):\n%s", diff)
	}
}

func TestBorderFrame(t *testing.T) {
	p := felttest.NewPainter()
	s := NewStyle(nil)
	BorderFrame.Draw(p, image.Rect(0, 0, 10, 10), s, 0)

	want := []string{
		fmt.Sprintf("stroke (0,0)-(10,10) %v", s.TextColor()),
	}
	if diff := cmp.Diff(want, ops(p)); diff != "" {
		t.Errorf("BorderFrame ops mismatch (-want +got):\n%s", diff)
	}
}

func TestDottedFrame(t *testing.T) {
	s := NewStyle(nil)
	fg := s.TextColor()

	tt := []struct {
		name  string
		r     image.Rectangle
		flags Flags
		want  []string
	}{
		{"unfocused", image.Rect(0, 0, 10, 10), 0, nil},
		{
			"focused", image.Rect(0, 0, 10, 10), Focused,
			[]string{fmt.Sprintf("stroke (1,1)-(9,9) %v dotted", fg)},
		},
		{
			"narrow", image.Rect(0, 0, 4, 10), Focused,
			[]string{fmt.Sprintf("stroke (0,1)-(3,9) %v dotted", fg)},
		},
		{"too small", image.Rect(0, 0, 3, 10), Focused, nil},
		{"too short", image.Rect(0, 0, 10, 3), Focused, nil},
	}
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			p := felttest.NewPainter()
			DottedFrame.Draw(p, tc.r, s, tc.flags)
			if diff := cmp.Diff(tc.want, ops(p)); diff != "" {
				t.Errorf("ops mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
