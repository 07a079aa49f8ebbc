package felt

import "testing"

func TestFlagsString(t *testing.T) {
	tt := []struct {
		f    Flags
		want string
	}{
		{0, "none"},
		{Value, "value"},
		{Value | Pushed, "value|pushed"},
		{Inactive | AlignLeft, "inactive|left"},
		{AlignTop | AlignLeft, "top|left"},
		{1 << 30, "0x40000000"},
		{Focused | 1<<30, "focused|0x40000000"},
	}
	for _, tc := range tt {
		if got := tc.f.String(); got != tc.want {
			t.Errorf("Flags(%#x).String() is %q; expected %q", uint32(tc.f), got, tc.want)
		}
	}
}

func TestFlagsAlign(t *testing.T) {
	f := AlignLeft | AlignInside | Pushed | Value
	if got := f.Align(); got != AlignLeft|AlignInside {
		t.Errorf("Align() is %#x; expected %#x", uint32(got), uint32(AlignLeft|AlignInside))
	}
}
