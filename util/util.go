package util

import (
	"log"
)

func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Clamp limits v to the range [lo, hi]. It assumes lo <= hi.
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// FeltError reports an unrecoverable programming error, such as a
// malformed bezel pattern supplied at box construction time.
func FeltError(s string, err error) {
	log.Panicf("felt: %s: %v\n", s, err)
}
