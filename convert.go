// Copyright 2020 Aleksandr Demakin. All rights reserved.

package softfloat

import (
	"math"
	"math/bits"

	mu "github.com/avdva/softfloat/internal/mathutil"
)

// Convert re-encodes bits from one format into another, rounding per mode.
// Widening (more exponent and mantissa bits) is always exact. Narrowing may
// overflow to a signed infinity or underflow into the subnormal range of
// the target. NaNs convert to the target's canonical quiet NaN, with
// Invalid raised for signaling inputs.
func Convert(b uint64, from, to Format, mode RoundingMode) (uint64, Flags) {
	v := from.Decode(b)
	switch v.Kind {
	case KindQuietNaN:
		return to.NaN(), 0
	case KindSignalingNaN:
		return to.NaN(), FlagInvalid
	case KindInf:
		return to.Inf(v.Neg), 0
	case KindZero:
		return to.Zero(v.Neg), 0
	}
	sig, e := from.sigExp(v)
	return to.roundPack(v.Neg, e, sig, 0, mode)
}

// FromInt64 returns the correctly rounded encoding of v.
func (f Format) FromInt64(v int64, mode RoundingMode) (uint64, Flags) {
	if v == 0 {
		return f.Zero(false), 0
	}
	neg := v < 0
	mag := uint64(v)
	if neg {
		mag = -mag
	}
	return f.roundPack(neg, 0, mag, 0, mode)
}

// FromUint64 returns the correctly rounded encoding of v.
func (f Format) FromUint64(v uint64, mode RoundingMode) (uint64, Flags) {
	if v == 0 {
		return f.Zero(false), 0
	}
	return f.roundPack(false, 0, v, 0, mode)
}

// ToInt64 converts b to a signed integer, rounding the fractional part per
// mode. NaN, infinities and values outside the int64 range raise Invalid
// and saturate: 0 for NaN, MinInt64/MaxInt64 otherwise.
func (f Format) ToInt64(b uint64, mode RoundingMode) (int64, Flags) {
	v := f.Decode(b)
	switch v.Kind {
	case KindQuietNaN, KindSignalingNaN:
		return 0, FlagInvalid
	case KindInf:
		if v.Neg {
			return math.MinInt64, FlagInvalid
		}
		return math.MaxInt64, FlagInvalid
	case KindZero:
		return 0, 0
	}
	mag, inexact, overflow := f.integerMag(v, mode)
	if overflow || !v.Neg && mag > math.MaxInt64 || v.Neg && mag > 1<<63 {
		if v.Neg {
			return math.MinInt64, FlagInvalid
		}
		return math.MaxInt64, FlagInvalid
	}
	var fl Flags
	if inexact {
		fl = FlagInexact
	}
	if v.Neg {
		return int64(-mag), fl
	}
	return int64(mag), fl
}

// ToUint64 converts b to an unsigned integer, rounding the fractional part
// per mode. NaN, infinities, out-of-range values and negative values that
// do not round to zero raise Invalid and saturate: 0 for NaN and negative
// inputs, MaxUint64 otherwise.
func (f Format) ToUint64(b uint64, mode RoundingMode) (uint64, Flags) {
	v := f.Decode(b)
	switch v.Kind {
	case KindQuietNaN, KindSignalingNaN:
		return 0, FlagInvalid
	case KindInf:
		if v.Neg {
			return 0, FlagInvalid
		}
		return math.MaxUint64, FlagInvalid
	case KindZero:
		return 0, 0
	}
	mag, inexact, overflow := f.integerMag(v, mode)
	if overflow {
		return math.MaxUint64, FlagInvalid
	}
	if v.Neg && mag > 0 {
		return 0, FlagInvalid
	}
	var fl Flags
	if inexact {
		fl = FlagInexact
	}
	return mag, fl
}

// integerMag rounds the magnitude of a finite nonzero value to an integer
// per mode. overflow is set when the magnitude cannot fit 64 bits.
func (f Format) integerMag(v Value, mode RoundingMode) (mag uint64, inexact, overflow bool) {
	sig, e := f.sigExp(v)
	if e >= 0 {
		if bits.Len64(sig)+e > 64 {
			return 0, false, true
		}
		return sig << uint(e), false, false
	}
	n := uint(-e)
	shifted, lost := mu.ShiftRightSticky(sig, n)
	if lost == 0 {
		return shifted, false, false
	}
	var guard, sticky uint64
	if n-1 > 63 {
		sticky = lost
	} else {
		guard = sig >> (n - 1) & 1
		sticky = sig & (1<<(n-1) - 1)
	}
	if roundUp(mode, v.Neg, shifted&1, guard, sticky) {
		shifted++
	}
	return shifted, true, false
}
