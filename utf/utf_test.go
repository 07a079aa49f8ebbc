package utf

import (
	"bytes"
	"testing"
)

func TestDecodeRune(t *testing.T) {
	tt := []struct {
		name string
		in   []byte
		r    rune
		size int
	}{
		{"ascii", []byte("a"), 'a', 1},
		{"ascii high", []byte{0x7f}, 0x7f, 1},
		{"cp1252 euro", []byte{0x80}, 0x20ac, 1},
		{"cp1252 hole", []byte{0x81}, 0x0081, 1},
		{"cp1252 tm", []byte{0x99}, 0x2122, 1},
		{"cp1252 top", []byte{0x9f}, 0x0178, 1},
		{"latin1 nbsp", []byte{0xa0}, 0xa0, 1},
		{"overlong lead", []byte{0xc1, 0xbf}, 0xc1, 1},
		{"two byte", []byte{0xc2, 0xa2}, 0xa2, 2},
		{"two byte top", []byte{0xdf, 0xbf}, 0x7ff, 2},
		{"truncated two", []byte{0xc2}, 0xc2, 1},
		{"bad continuation", []byte{0xc2, 0x41}, 0xc2, 1},
		{"three byte", []byte{0xe2, 0x82, 0xac}, 0x20ac, 3},
		{"three byte low", []byte{0xe0, 0xa0, 0x80}, 0x800, 3},
		{"overlong three", []byte{0xe0, 0x9f, 0xbf}, 0xe0, 1},
		{"surrogate passes", []byte{0xed, 0xa0, 0x80}, 0xd800, 3},
		{"ffff passes", []byte{0xef, 0xbf, 0xbf}, 0xffff, 3},
		{"truncated three", []byte{0xe2, 0x82}, 0xe2, 1},
		{"four byte", []byte{0xf0, 0x9f, 0x98, 0x80}, 0x1f600, 4},
		{"overlong four", []byte{0xf0, 0x8f, 0xbf, 0xbf}, 0xf0, 1},
		{"last code point", []byte{0xf4, 0x8f, 0xbf, 0xbf}, 0x10ffff, 4},
		{"beyond limit", []byte{0xf4, 0x90, 0x80, 0x80}, 0xf4, 1},
		{"truncated four", []byte{0xf0, 0x9f, 0x98}, 0xf0, 1},
		{"f5 lead", []byte{0xf5, 0x80, 0x80, 0x80}, 0xf5, 1},
		{"ff", []byte{0xff}, 0xff, 1},
	}
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			r, size := DecodeRune(tc.in)
			if r != tc.r || size != tc.size {
				t.Errorf("DecodeRune(% x) is %#x, %d; expected %#x, %d",
					tc.in, r, size, tc.r, tc.size)
			}
		})
	}
}

func TestDecodeRuneEmpty(t *testing.T) {
	r, size := DecodeRune(nil)
	if r != RuneError || size != 0 {
		t.Errorf("DecodeRune(nil) is %#x, %d; expected RuneError, 0", r, size)
	}
}

func TestEncodeRune(t *testing.T) {
	tt := []struct {
		r    rune
		want []byte
	}{
		{'a', []byte("a")},
		{0xa2, []byte{0xc2, 0xa2}},
		{0x7ff, []byte{0xdf, 0xbf}},
		{0x800, []byte{0xe0, 0xa0, 0x80}},
		{0xd800, []byte{0xed, 0xa0, 0x80}},
		{0xffff, []byte{0xef, 0xbf, 0xbf}},
		{0x10000, []byte{0xf0, 0x90, 0x80, 0x80}},
		{0x1f600, []byte{0xf0, 0x9f, 0x98, 0x80}},
		{0x10fffe, []byte{0xf4, 0x8f, 0xbf, 0xbe}},
		{0x10ffff, []byte{0xef, 0xbf, 0xbd}},
		{0x110000, []byte{0xef, 0xbf, 0xbd}},
		{-1, []byte{0xef, 0xbf, 0xbd}},
	}
	var buf [4]byte
	for _, tc := range tt {
		n := EncodeRune(buf[:], tc.r)
		if !bytes.Equal(buf[:n], tc.want) {
			t.Errorf("EncodeRune(%#x) wrote % x; expected % x", tc.r, buf[:n], tc.want)
		}
		if got := RuneLen(tc.r); got != len(tc.want) {
			t.Errorf("RuneLen(%#x) is %d; expected %d", tc.r, got, len(tc.want))
		}
	}
}

func TestEncodeDecodeIdentity(t *testing.T) {
	// Every code below 0x10ffff round-trips, surrogates included.
	runes := []rune{0, 'a', 0x7f, 0x80, 0xa2, 0x7ff, 0x800, 0xd800, 0xdfff,
		0xfffd, 0xfffe, 0xffff, 0x10000, 0x10fffe}
	var buf [4]byte
	for _, r := range runes {
		n := EncodeRune(buf[:], r)
		got, size := DecodeRune(buf[:n])
		if got != r || size != n {
			t.Errorf("round trip of %#x gave %#x with size %d of %d", r, got, size, n)
		}
	}
}

func TestSeqLen(t *testing.T) {
	tt := []struct {
		b    byte
		want int
	}{
		{0x00, 1}, {0x41, 1}, {0x7f, 1}, {0x80, 1}, {0xa0, 1},
		{0xc0, 1}, {0xc1, 1},
		{0xc2, 2}, {0xdf, 2},
		{0xe0, 3}, {0xef, 3},
		{0xf0, 4}, {0xf4, 4},
		{0xf5, 1}, {0xff, 1},
	}
	for _, tc := range tt {
		if got := SeqLen(tc.b); got != tc.want {
			t.Errorf("SeqLen(%#x) is %d; expected %d", tc.b, got, tc.want)
		}
	}
}

func TestRuneCount(t *testing.T) {
	tt := []struct {
		in   []byte
		want int
	}{
		{nil, 0},
		{[]byte("abc"), 3},
		{[]byte("caf\xc3\xa9"), 4},
		{[]byte("\xe2\x82\xac"), 1},
		{[]byte{0x80, 0x41}, 2},
		{[]byte{0xe2, 0x82}, 2},
		{[]byte("\xf0\x9f\x98\x80!"), 2},
	}
	for _, tc := range tt {
		if got := RuneCount(tc.in); got != tc.want {
			t.Errorf("RuneCount(% x) is %d; expected %d", tc.in, got, tc.want)
		}
	}
}

func TestRunes(t *testing.T) {
	got := Runes([]byte{'a', 0x80, 0xc3, 0xa9})
	want := []rune{'a', 0x20ac, 0xe9}
	if len(got) != len(want) {
		t.Fatalf("Runes returned %d runes; expected %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("rune %d is %#x; expected %#x", i, got[i], want[i])
		}
	}
}

func TestForward(t *testing.T) {
	s := []byte("a\xc3\xa9\xe2\x82\xacx")
	tt := []struct {
		name string
		s    []byte
		i    int
		want int
	}{
		{"boundary ascii", s, 0, 0},
		{"inside two byte", s, 2, 3},
		{"boundary three byte", s, 3, 3},
		{"inside three byte", s, 4, 6},
		{"last continuation", s, 5, 6},
		{"lone continuations", []byte{0x80, 0x80}, 1, 1},
		{"continuation after ascii", []byte{'a', 0x80}, 1, 1},
		{"after bad lead", []byte{0xc1, 0x80}, 1, 1},
		{"at end", s, 7, 7},
	}
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			if got := Forward(tc.s, tc.i); got != tc.want {
				t.Errorf("Forward(% x, %d) is %d; expected %d", tc.s, tc.i, got, tc.want)
			}
		})
	}
}

func TestBackward(t *testing.T) {
	s := []byte("a\xc3\xa9\xe2\x82\xacx")
	tt := []struct {
		name string
		s    []byte
		i    int
		want int
	}{
		{"boundary ascii", s, 6, 6},
		{"inside two byte", s, 2, 1},
		{"inside three byte", s, 4, 3},
		{"last continuation", s, 5, 3},
		{"lone continuations", []byte{0x80, 0x80}, 1, 1},
		{"after bad lead", []byte{0xc1, 0x80}, 1, 1},
	}
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			if got := Backward(tc.s, tc.i); got != tc.want {
				t.Errorf("Backward(% x, %d) is %d; expected %d", tc.s, tc.i, got, tc.want)
			}
		})
	}
}

func TestProbe(t *testing.T) {
	tt := []struct {
		name string
		in   []byte
		want int
	}{
		{"empty", nil, 1},
		{"ascii", []byte("hello"), 1},
		{"two byte", []byte("caf\xc3\xa9"), 2},
		{"three byte", []byte("\xe2\x82\xac euro"), 3},
		{"four byte", []byte("a\xf0\x9f\x98\x80"), 4},
		{"widest wins", []byte("\xc3\xa9\xf0\x9f\x98\x80"), 4},
		{"latin1", []byte{'a', 0xe9, 'b'}, 0},
		{"truncated", []byte{'a', 0xc2}, 0},
		{"ffff ok", []byte{0xef, 0xbf, 0xbf}, 3},
	}
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			if got := Probe(tc.in); got != tc.want {
				t.Errorf("Probe(% x) is %d; expected %d", tc.in, got, tc.want)
			}
		})
	}
}

func TestFromLatin1(t *testing.T) {
	tt := []struct {
		in   []byte
		want []byte
	}{
		{[]byte("abc"), []byte("abc")},
		{[]byte{'a', 0xe9}, []byte{'a', 0xc3, 0xa9}},
		{[]byte{0x80}, []byte{0xc2, 0x80}},
		{[]byte{0xff}, []byte{0xc3, 0xbf}},
	}
	for _, tc := range tt {
		if got := FromLatin1(tc.in); !bytes.Equal(got, tc.want) {
			t.Errorf("FromLatin1(% x) is % x; expected % x", tc.in, got, tc.want)
		}
	}
}

func TestToLatin1(t *testing.T) {
	tt := []struct {
		in   []byte
		want []byte
	}{
		{[]byte("abc"), []byte("abc")},
		{[]byte{'a', 0xc3, 0xa9}, []byte{'a', 0xe9}},
		{[]byte{0xe2, 0x82, 0xac}, []byte{'?'}},
		{[]byte{0xe9}, []byte{0xe9}},
		{[]byte{0xc2, 0xa2}, []byte{0xa2}},
	}
	for _, tc := range tt {
		if got := ToLatin1(tc.in); !bytes.Equal(got, tc.want) {
			t.Errorf("ToLatin1(% x) is % x; expected % x", tc.in, got, tc.want)
		}
	}
}
