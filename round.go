// Copyright 2020 Aleksandr Demakin. All rights reserved.

package softfloat

import (
	"math/bits"

	mu "github.com/avdva/softfloat/internal/mathutil"
)

// roundPack is the shared normalizer and rounder behind every arithmetic
// core. The exact magnitude of the input is mant * 2^exp, plus an unknown
// nonzero tail below the lowest bit of mant when sticky != 0.
//
// The significand is first normalized so that its leading one sits just
// above the mantissa field, leaving one guard bit; bits shifted past the
// boundary are OR-ed into sticky, never discarded. Exponents at or above
// the maximum collapse to a signed infinity with Overflow, exponents at or
// below zero are shifted into the subnormal range with Underflow raised on
// any information loss. Finally the retained mantissa is rounded per mode,
// re-normalizing once more if rounding carries out.
func (f Format) roundPack(neg bool, exp int, mant, sticky uint64, mode RoundingMode) (uint64, Flags) {
	if mant == 0 && sticky == 0 {
		return f.Zero(neg), 0
	}
	var fl Flags
	top := f.mantBits + 1 // leading-one position: mantissa width plus guard
	be := 0               // biased exponent of the would-be result
	if mant != 0 {
		n := uint(bits.Len64(mant)) - 1
		if n > top {
			var lost uint64
			mant, lost = mu.ShiftRightSticky(mant, n-top)
			sticky |= lost
			exp += int(n - top)
		} else if n < top {
			mant <<= top - n
			exp -= int(top - n)
		}
		be = exp + f.Bias() + int(f.mantBits) + 1
	}
	if be >= int(f.expMax()) {
		return f.Inf(neg), FlagOverflow | FlagInexact
	}
	subnormal := be <= 0
	if subnormal && mant != 0 {
		var lost uint64
		mant, lost = mu.ShiftRightSticky(mant, uint(1-be))
		sticky |= lost
	}
	if subnormal {
		be = 0
	}

	guard := mant & 1
	inexact := guard != 0 || sticky != 0
	res := mant >> 1
	if roundUp(mode, neg, res&1, guard, sticky) {
		res++
		if res == 1<<(f.mantBits+1) {
			res >>= 1
			be++
			if be >= int(f.expMax()) {
				return f.Inf(neg), FlagOverflow | FlagInexact
			}
		}
	}
	if inexact {
		fl |= FlagInexact
		if subnormal {
			fl |= FlagUnderflow
		}
	}

	var b uint64
	if res >= 1<<f.mantBits {
		if be == 0 {
			// the subnormal rounded up into the smallest normal
			be = 1
		}
		b = uint64(be)<<f.mantBits | res&f.mantMask()
	} else {
		b = res
	}
	if neg {
		b |= f.signMask()
	}
	return b, fl
}

func roundUp(mode RoundingMode, neg bool, lsb, guard, sticky uint64) bool {
	switch mode {
	case ToNearestEven:
		return guard != 0 && (sticky != 0 || lsb != 0)
	case TowardPositive:
		return !neg && guard|sticky != 0
	case TowardNegative:
		return neg && guard|sticky != 0
	}
	return false // TowardZero truncates
}
