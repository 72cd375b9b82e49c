// Package ioalign provides overflow-safe size arithmetic for buffer
// growth and allocation sizing.
package ioalign

import (
	"math"
	"math/bits"
)

// AddNoOverflow adds a and b, returning ok = false when the result would
// overflow int. Growth paths use this before comparing against capacity
// limits so a hostile minBytes cannot wrap around.
func AddNoOverflow(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// NextPow2 returns the smallest power of two >= n. It returns 0 when the
// result would not fit in an int. NextPow2(0) = 1.
func NextPow2(n int) int {
	if n <= 1 {
		return 1
	}
	shift := bits.Len(uint(n - 1))
	if shift >= bits.UintSize-1 {
		return 0
	}
	return 1 << shift
}

// IsPow2 reports whether n is a positive power of two.
func IsPow2(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// PageCeil returns n rounded up to the next multiple of page. page must be
// a positive power of two. Returns 0 on overflow.
func PageCeil(n, page int) int {
	out, ok := AddNoOverflow(n, page-1)
	if !ok {
		return 0
	}
	return out &^ (page - 1)
}
