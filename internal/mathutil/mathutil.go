// Package mathutil contains bit-level helpers shared by the arithmetic cores.
package mathutil

import (
	"math/bits"
)

// ShiftRightSticky shifts v right by n, OR-ing every bit shifted out into
// the returned sticky word. n may exceed 63.
func ShiftRightSticky(v uint64, n uint) (shifted, sticky uint64) {
	if n == 0 {
		return v, 0
	}
	if n > 63 {
		return 0, v
	}
	return v >> n, v & (1<<n - 1)
}

// CollapseMul128 folds a 128-bit product (hi, lo) into a 64-bit significand
// plus a sticky word. The significand keeps the top 64 bits of the product;
// expAdjust is the number of low-order bits that moved into sticky.
func CollapseMul128(hi, lo uint64) (mant, sticky uint64, expAdjust int) {
	if hi == 0 {
		return lo, 0, 0
	}
	n := uint(bits.Len64(hi))
	return hi<<(64-n) | lo>>n, lo << (64 - n), int(n)
}

// QuoRemScaled divides num<<shift by den using a 128/64-bit division.
// The caller must guarantee num>>(64-shift) < den.
func QuoRemScaled(num, den uint64, shift uint) (quo, rem uint64) {
	var hi uint64
	if shift > 0 {
		hi = num >> (64 - shift)
	}
	return bits.Div64(hi, num<<shift, den)
}

// NormalizeTo shifts v left so that its most significant set bit lands at
// position top, returning the shifted value and the shift amount.
// v must be nonzero and have no bits above top.
func NormalizeTo(v uint64, top uint) (uint64, uint) {
	shift := top + 1 - uint(bits.Len64(v))
	return v << shift, shift
}
