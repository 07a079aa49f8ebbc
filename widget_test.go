package felt

import (
	"fmt"
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/feltk/felt/draw"
	"github.com/feltk/felt/felttest"
)

// countingWidget records how often Layout runs.
type countingWidget struct {
	WidgetBase
	layouts int
}

func (w *countingWidget) Layout() {
	w.layouts++
	w.WidgetBase.Layout()
}

func TestResizeReportsChange(t *testing.T) {
	parent := NewGroup(image.Rect(0, 0, 100, 100))
	w := &countingWidget{}
	w.r = image.Rect(10, 10, 30, 20)
	parent.Add(w)
	parent.Layout()

	if w.Resize(image.Rect(10, 10, 30, 20)) {
		t.Errorf("Resize to the same rectangle reported a change")
	}
	if got := w.LayoutPending(); got != 0 {
		t.Errorf("layout pending %#x after no-op resize; expected none", got)
	}

	if !w.Resize(image.Rect(15, 10, 35, 20)) {
		t.Errorf("Resize with a move reported no change")
	}
	if got := w.LayoutPending(); got != LayoutX {
		t.Errorf("layout pending %#x after move; expected LayoutX", got)
	}
	if parent.LayoutPending()&LayoutChild == 0 {
		t.Errorf("parent not flagged for child layout after move")
	}
	parent.Layout()

	w.Resize(image.Rect(15, 10, 40, 26))
	if got := w.LayoutPending(); got != LayoutWH {
		t.Errorf("layout pending %#x after grow; expected LayoutWH", got)
	}
}

func TestDamagePropagation(t *testing.T) {
	root := NewGroup(image.Rect(0, 0, 100, 100))
	inner := NewGroup(image.Rect(10, 10, 90, 90))
	leaf := NewInvisibleBox(FlatBox, image.Rect(5, 5, 20, 20), "")
	root.Add(inner)
	inner.Add(leaf)
	root.Layout()
	clearDamage(root)

	leaf.Redraw()

	if got := leaf.Damage(); got != DamageAll {
		t.Errorf("leaf damage %#x; expected DamageAll", got)
	}
	if got := inner.Damage(); got != DamageChild {
		t.Errorf("inner damage %#x; expected DamageChild", got)
	}
	if got := root.Damage(); got != DamageChild {
		t.Errorf("root damage %#x; expected DamageChild", got)
	}

	leaf.Relayout()
	if got := leaf.LayoutPending(); got&LayoutDamage == 0 {
		t.Errorf("leaf layout pending %#x; expected LayoutDamage", got)
	}
	if got := root.LayoutPending(); got&LayoutChild == 0 {
		t.Errorf("root layout pending %#x; expected LayoutChild", got)
	}
}

func TestSetLabel(t *testing.T) {
	w := NewInvisibleBox(nil, image.Rect(0, 0, 10, 10), "old")
	w.clearDamage()

	w.SetLabel("old")
	if got := w.Damage(); got != 0 {
		t.Errorf("damage %#x after setting the same label; expected none", got)
	}

	w.SetLabel("new")
	if got := w.Label(); got != "new" {
		t.Errorf("Label() is %q; expected %q", got, "new")
	}
	if got := w.Damage(); got != DamageAll {
		t.Errorf("damage %#x after label change; expected DamageAll", got)
	}
}

func TestStyleCopyOnWrite(t *testing.T) {
	w := NewInvisibleBox(nil, image.Rect(0, 0, 10, 10), "")
	shared := StyleByName("InvisibleBox")
	if w.Style() != &shared.Style {
		t.Fatalf("fresh widget does not share the InvisibleBox style")
	}

	w.SetColor(draw.RGB(1, 2, 3))

	if w.Style() == &shared.Style {
		t.Errorf("widget still shares the named style after an edit")
	}
	if got := w.Style().Color(); got != draw.RGB(1, 2, 3) {
		t.Errorf("widget Color() is %v; expected the edit", got)
	}
	if shared.color != draw.NoColor {
		t.Errorf("edit leaked into the shared style: %v", shared.color)
	}
	if got := w.Box(); got != NoBox {
		t.Errorf("Box() is %v after edit; expected to keep inheriting NoBox", got.Name())
	}

	// A second edit reuses the private layer.
	own := w.Style()
	w.SetLabelSize(7)
	if w.Style() != own {
		t.Errorf("second edit created another style layer")
	}
}

func TestDrawLabelAlignment(t *testing.T) {
	r := image.Rect(0, 0, 100, 40)
	testCases := []struct {
		name  string
		flags Flags
		at    image.Point
	}{
		{"center", 0, image.Pt(43, 13)},
		{"left", AlignLeft, image.Pt(0, 13)},
		{"right", AlignRight, image.Pt(86, 13)},
		{"top", AlignTop, image.Pt(43, 0)},
		{"bottom", AlignBottom, image.Pt(43, 27)},
		{"top left", AlignTop | AlignLeft, image.Pt(0, 0)},
		{"bottom right", AlignBottom | AlignRight, image.Pt(86, 27)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := NewInvisibleBox(nil, r, "ab")
			w.SetLabelFont(felttest.NewFont(7, 13))
			p := felttest.NewPainter()

			w.DrawLabel(p, r, tc.flags)

			want := []string{
				fmt.Sprintf("string %q at %v %v", "ab", tc.at, draw.Black),
			}
			if diff := cmp.Diff(want, ops(p)); diff != "" {
				t.Errorf("ops mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDrawLabelInactive(t *testing.T) {
	w := NewInvisibleBox(nil, image.Rect(0, 0, 100, 40), "ab")
	w.SetLabelFont(felttest.NewFont(7, 13))
	p := felttest.NewPainter()

	w.DrawLabel(p, image.Rect(0, 0, 100, 40), Inactive)

	want := fmt.Sprintf("string %q at (43,13) %v", "ab", draw.Inactive(draw.Black))
	if diff := cmp.Diff([]string{want}, ops(p)); diff != "" {
		t.Errorf("ops mismatch (-want +got):\n%s", diff)
	}
}

func TestDrawLabelWithImage(t *testing.T) {
	w := NewInvisibleBox(nil, image.Rect(0, 0, 100, 40), "ab")
	w.SetLabelFont(felttest.NewFont(7, 13))
	w.SetImage(image.NewRGBA(image.Rect(0, 0, 10, 8)))
	p := felttest.NewPainter()

	// Text is 14x13, image 10x8; the image stacks above the text and
	// both center within the 14x21 block.
	w.DrawLabel(p, image.Rect(0, 0, 100, 40), 0)

	want := []string{
		"image (45,9)-(55,17)",
		fmt.Sprintf("string %q at (43,17) %v", "ab", draw.Black),
	}
	if diff := cmp.Diff(want, ops(p)); diff != "" {
		t.Errorf("ops mismatch (-want +got):\n%s", diff)
	}
}

func TestDrawLabelNothingToDraw(t *testing.T) {
	w := NewInvisibleBox(nil, image.Rect(0, 0, 100, 40), "")
	w.SetLabelFont(felttest.NewFont(7, 13))
	p := felttest.NewPainter()
	w.DrawLabel(p, image.Rect(0, 0, 100, 40), 0)
	if got := ops(p); len(got) != 0 {
		t.Errorf("empty label drew %v; expected nothing", got)
	}

	// No font: drawing quietly skips.
	w2 := NewInvisibleBox(nil, image.Rect(0, 0, 100, 40), "ab")
	p2 := felttest.NewPainter()
	w2.DrawLabel(p2, image.Rect(0, 0, 100, 40), 0)
	if got := ops(p2); len(got) != 0 {
		t.Errorf("fontless label drew %v; expected nothing", got)
	}
}

func TestMeasureLabel(t *testing.T) {
	w := NewInvisibleBox(nil, image.Rect(0, 0, 10, 10), "abc")
	if got := MeasureLabel(w); got != (image.Point{}) {
		t.Errorf("MeasureLabel without a font is %v; expected zero", got)
	}

	w.SetLabelFont(felttest.NewFont(7, 13))
	if got, want := MeasureLabel(w), image.Pt(21, 13); got != want {
		t.Errorf("MeasureLabel is %v; expected %v", got, want)
	}

	w.SetLabel("")
	if got := MeasureLabel(w); got != (image.Point{}) {
		t.Errorf("MeasureLabel of empty label is %v; expected zero", got)
	}
}

func TestSetAlign(t *testing.T) {
	w := NewInvisibleBox(nil, image.Rect(0, 0, 10, 10), "")
	w.SetFlags(Inactive | AlignLeft)

	w.SetAlign(AlignRight | AlignInside)

	if got := w.Flags().Align(); got != AlignRight|AlignInside {
		t.Errorf("alignment is %#x; expected right inside", uint32(got))
	}
	if w.Flags()&Inactive == 0 {
		t.Errorf("SetAlign cleared the Inactive flag")
	}
}

func TestScreenRect(t *testing.T) {
	root := NewGroup(image.Rect(10, 20, 110, 120))
	inner := NewGroup(image.Rect(5, 5, 50, 50))
	leaf := NewInvisibleBox(nil, image.Rect(2, 3, 12, 13), "")
	root.Add(inner)
	inner.Add(leaf)

	if got, want := ScreenRect(leaf), image.Rect(17, 28, 27, 38); got != want {
		t.Errorf("ScreenRect is %v; expected %v", got, want)
	}
	if got, want := ScreenRect(root), image.Rect(10, 20, 110, 120); got != want {
		t.Errorf("root ScreenRect is %v; expected %v", got, want)
	}
}

func TestGroupAddRemove(t *testing.T) {
	g := NewGroup(image.Rect(0, 0, 100, 100))
	a := NewInvisibleBox(nil, image.Rect(0, 0, 10, 10), "a")
	b := NewInvisibleBox(nil, image.Rect(10, 0, 20, 10), "b")

	g.Add(a)
	g.Add(b)
	if got := len(g.Children()); got != 2 {
		t.Fatalf("group has %d children; expected 2", got)
	}
	if a.Parent() != Widget(g) {
		t.Errorf("child not reparented on Add")
	}

	g.Remove(a)
	if got := len(g.Children()); got != 1 || g.Children()[0] != Widget(b) {
		t.Errorf("children after Remove are %v; expected just b", g.Children())
	}
	if a.Parent() != nil {
		t.Errorf("removed child keeps its parent")
	}

	g.Remove(a) // not present; no effect
	if got := len(g.Children()); got != 1 {
		t.Errorf("group has %d children after removing a stranger; expected 1", got)
	}
}

func TestGroupLayoutSelective(t *testing.T) {
	g := NewGroup(image.Rect(0, 0, 100, 100))
	a := &countingWidget{}
	a.r = image.Rect(0, 0, 10, 10)
	b := &countingWidget{}
	b.r = image.Rect(10, 0, 20, 10)
	g.Add(a)
	g.Add(b)
	g.Layout()
	a.layouts, b.layouts = 0, 0

	// Only a asked for layout; b stays untouched.
	a.Relayout()
	g.Layout()
	if a.layouts != 1 || b.layouts != 0 {
		t.Errorf("layouts a=%d b=%d after selective pass; expected 1, 0", a.layouts, b.layouts)
	}

	// A group size change forces every child.
	g.Resize(image.Rect(0, 0, 200, 100))
	g.Layout()
	if a.layouts != 2 || b.layouts != 1 {
		t.Errorf("layouts a=%d b=%d after forced pass; expected 2, 1", a.layouts, b.layouts)
	}
	if g.LayoutPending() != 0 {
		t.Errorf("group layout pending %#x after pass; expected none", g.LayoutPending())
	}
}

func TestGroupDrawOffsetsChildren(t *testing.T) {
	g := NewGroup(image.Rect(10, 20, 110, 80))
	g.SetBox(NoBox)
	child := NewInvisibleBox(FlatBox, image.Rect(5, 5, 25, 15), "")
	hidden := NewInvisibleBox(FlatBox, image.Rect(30, 5, 50, 15), "")
	hidden.SetFlag(Invisible)
	g.Add(child)
	g.Add(hidden)

	p := felttest.NewPainter()
	g.Draw(p, g.Rect())

	want := []string{
		fmt.Sprintf("fill (15,25)-(35,35) %v", draw.Background()),
	}
	if diff := cmp.Diff(want, ops(p)); diff != "" {
		t.Errorf("ops mismatch (-want +got):\n%s", diff)
	}
}
