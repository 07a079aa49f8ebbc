// Package utf implements the permissive UTF-8 codec used throughout
// the toolkit. Unlike unicode/utf8 it never reports an error rune for
// bad input: a byte that is not part of a legal encoding decodes as
// itself, with bytes 0x80..0x9f translated through the Microsoft
// CP1252 table. Text that is really ISO-8859-1 or CP1252 therefore
// comes out readable instead of as replacement characters.
//
// Surrogate halves and other codes RFC 3629 forbids inside the
// 0..0x10ffff range are passed through both ways, so DecodeRune is
// the inverse of EncodeRune for all of them.
package utf

// RuneError is the replacement character written for runes that do
// not fit UTF-8 at all.
const RuneError = 0xFFFD

// Bytes 0x80..0x9f of the Microsoft CP1252 character set.
var cp1252 = [32]rune{
	0x20ac, 0x0081, 0x201a, 0x0192, 0x201e, 0x2026, 0x2020, 0x2021,
	0x02c6, 0x2030, 0x0160, 0x2039, 0x0152, 0x008d, 0x017d, 0x008f,
	0x0090, 0x2018, 0x2019, 0x201c, 0x201d, 0x2022, 0x2013, 0x2014,
	0x02dc, 0x2122, 0x0161, 0x203a, 0x0153, 0x009d, 0x017e, 0x0178,
}

// DecodeRune decodes the first character in s and returns it with the
// number of bytes it occupies. Illegal encodings, including truncated,
// overlong and beyond-0x10ffff sequences, decode as a single byte:
// 0x80..0x9f through the CP1252 table, everything else as the byte
// value itself. The size is 1 whenever the leading byte is outside
// 0xc2..0xf4. An empty s returns RuneError with size 0.
func DecodeRune(s []byte) (r rune, size int) {
	if len(s) == 0 {
		return RuneError, 0
	}
	c := s[0]
	switch {
	case c < 0x80:
		return rune(c), 1
	case c < 0xa0:
		return cp1252[c-0x80], 1
	case c < 0xc2:
		return rune(c), 1
	}
	if len(s) < 2 || s[1]&0xc0 != 0x80 {
		return rune(c), 1
	}
	switch {
	case c < 0xe0:
		return rune(c&0x1f)<<6 | rune(s[1]&0x3f), 2
	case c < 0xf0:
		if c == 0xe0 && s[1] < 0xa0 {
			return rune(c), 1
		}
		if len(s) < 3 || s[2]&0xc0 != 0x80 {
			return rune(c), 1
		}
		return rune(c&0x0f)<<12 | rune(s[1]&0x3f)<<6 | rune(s[2]&0x3f), 3
	case c < 0xf5:
		if c == 0xf0 && s[1] < 0x90 || c == 0xf4 && s[1] > 0x8f {
			return rune(c), 1
		}
		if len(s) < 4 || s[2]&0xc0 != 0x80 || s[3]&0xc0 != 0x80 {
			return rune(c), 1
		}
		return rune(c&0x07)<<18 | rune(s[1]&0x3f)<<12 | rune(s[2]&0x3f)<<6 | rune(s[3]&0x3f), 4
	}
	return rune(c), 1
}

// EncodeRune writes the UTF-8 encoding of r into buf, which must hold
// at least RuneLen(r) bytes, and returns the number of bytes written.
// Runes from 0x10ffff up encode as the replacement character.
func EncodeRune(buf []byte, r rune) int {
	u := uint32(r)
	switch {
	case u < 0x80:
		buf[0] = byte(u)
		return 1
	case u < 0x800:
		buf[0] = 0xc0 | byte(u>>6)
		buf[1] = 0x80 | byte(u)&0x3f
		return 2
	case u < 0x10000:
		buf[0] = 0xe0 | byte(u>>12)
		buf[1] = 0x80 | byte(u>>6)&0x3f
		buf[2] = 0x80 | byte(u)&0x3f
		return 3
	case u < 0x10ffff:
		buf[0] = 0xf0 | byte(u>>18)
		buf[1] = 0x80 | byte(u>>12)&0x3f
		buf[2] = 0x80 | byte(u>>6)&0x3f
		buf[3] = 0x80 | byte(u)&0x3f
		return 4
	}
	buf[0] = 0xef
	buf[1] = 0xbf
	buf[2] = 0xbd
	return 3
}

// RuneLen returns the number of bytes EncodeRune uses for r.
func RuneLen(r rune) int {
	u := uint32(r)
	switch {
	case u < 0x80:
		return 1
	case u < 0x800:
		return 2
	case u < 0x10000:
		return 3
	case u < 0x10ffff:
		return 4
	}
	return 3
}

// SeqLen returns the length of a legal UTF-8 encoding that starts
// with byte b, and 1 for bytes that cannot start one. It can disagree
// with DecodeRune on illegal sequences, which DecodeRune steps over
// one byte at a time.
func SeqLen(b byte) int {
	switch {
	case b < 0xc2:
		return 1
	case b < 0xe0:
		return 2
	case b < 0xf0:
		return 3
	case b < 0xf5:
		return 4
	}
	return 1
}

// RuneCount returns the number of characters DecodeRune finds in s.
func RuneCount(s []byte) int {
	n := 0
	for i := 0; i < len(s); n++ {
		if s[i] < 0x80 {
			i++
			continue
		}
		_, size := DecodeRune(s[i:])
		i += size
	}
	return n
}

// Runes decodes all of s. Every byte of bad input becomes one rune,
// so the result always round-trips byte counts through RuneCount.
func Runes(s []byte) []rune {
	rs := make([]rune, 0, RuneCount(s))
	for i := 0; i < len(s); {
		r, size := DecodeRune(s[i:])
		rs = append(rs, r)
		i += size
	}
	return rs
}

// Forward returns the index just past the character that i points
// into, or i itself when i already sits on a character boundary or no
// legal character spans it.
func Forward(s []byte, i int) int {
	if i <= 0 || i >= len(s) || s[i]&0xc0 != 0x80 {
		return i
	}
	a := leadIndex(s, i)
	if a < 0 {
		return i
	}
	_, size := DecodeRune(s[a:])
	if a+size > i {
		return a + size
	}
	return i
}

// Backward returns the index of the character that i points into, or
// i itself when i already sits on a character boundary or no legal
// character spans it.
func Backward(s []byte, i int) int {
	if i <= 0 || i >= len(s) || s[i]&0xc0 != 0x80 {
		return i
	}
	a := leadIndex(s, i)
	if a < 0 {
		return i
	}
	_, size := DecodeRune(s[a:])
	if a+size > i {
		return a
	}
	return i
}

// leadIndex scans backwards from the continuation byte at i for the
// lead byte of its character, -1 when an ASCII byte or the slice
// start cuts the search off.
func leadIndex(s []byte, i int) int {
	for a := i - 1; a >= 0; a-- {
		if s[a]&0x80 == 0 {
			return -1
		}
		if s[a]&0x40 != 0 {
			return a
		}
	}
	return -1
}

// Probe examines s and reports a verdict on its encoding: 0 when any
// illegal UTF-8 sequence occurs, 1 for pure ASCII (or empty s), and
// otherwise the widest encoding present, 2 to 4. Since almost no
// legacy text survives as legal multibyte UTF-8, a nonzero result is
// a strong signal that s really is UTF-8.
func Probe(s []byte) int {
	verdict := 1
	for i := 0; i < len(s); {
		if s[i]&0x80 == 0 {
			i++
			continue
		}
		_, size := DecodeRune(s[i:])
		if size < 2 {
			return 0
		}
		if size > verdict {
			verdict = size
		}
		i += size
	}
	return verdict
}

// FromLatin1 converts ISO-8859-1 bytes to UTF-8. Pure ASCII input
// comes back unchanged.
func FromLatin1(s []byte) []byte {
	n := len(s)
	for _, c := range s {
		if c >= 0x80 {
			n++
		}
	}
	if n == len(s) {
		return s
	}
	out := make([]byte, 0, n)
	for _, c := range s {
		if c < 0x80 {
			out = append(out, c)
			continue
		}
		out = append(out, 0xc0|c>>6, 0x80|c&0x3f)
	}
	return out
}

// ToLatin1 converts UTF-8 to ISO-8859-1 bytes. Characters past 0xff
// become '?'. Bytes that do not start a legal multibyte sequence pass
// through unchanged, so text that already is ISO-8859-1 survives.
func ToLatin1(s []byte) []byte {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); {
		c := s[i]
		if c < 0xc2 {
			out = append(out, c)
			i++
			continue
		}
		r, size := DecodeRune(s[i:])
		i += size
		if r < 0x100 {
			out = append(out, byte(r))
			continue
		}
		out = append(out, '?')
	}
	return out
}
