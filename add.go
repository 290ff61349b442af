// Copyright 2020 Aleksandr Demakin. All rights reserved.

package softfloat

import (
	mu "github.com/avdva/softfloat/internal/mathutil"
)

// Add returns the correctly rounded sum of the two operands.
//
// Special cases, checked in order: a NaN operand yields the canonical quiet
// NaN (Invalid for signaling inputs); opposite infinities yield a quiet NaN
// with Invalid; a single infinity wins; the sum of two zeros keeps the
// common sign, opposite-signed zeros give +0 (or -0 under TowardNegative);
// a single zero returns the other operand unchanged.
func (f Format) Add(a, b uint64, mode RoundingMode) (uint64, Flags) {
	a &= f.mask()
	b &= f.mask()
	va, vb := f.Decode(a), f.Decode(b)
	if va.Kind.nan() || vb.Kind.nan() {
		return f.propagateNaN(va, vb)
	}
	switch {
	case va.Kind == KindInf && vb.Kind == KindInf:
		if va.Neg == vb.Neg {
			return a, 0
		}
		return f.NaN(), FlagInvalid
	case va.Kind == KindInf:
		return a, 0
	case vb.Kind == KindInf:
		return b, 0
	case va.Kind == KindZero && vb.Kind == KindZero:
		if va.Neg == vb.Neg {
			return a, 0
		}
		return f.Zero(mode == TowardNegative), 0
	case va.Kind == KindZero:
		return b, 0
	case vb.Kind == KindZero:
		return a, 0
	}

	// order the operands so that va has the larger magnitude
	if a&^f.signMask() < b&^f.signMask() {
		va, vb = vb, va
	}
	am, ae := f.sigExp(va)
	bm, be := f.sigExp(vb)

	// two extra low-order bits: a guard and an anchor for the sticky tail
	diff := uint(ae - be)
	am <<= 2
	bm <<= 2
	ae -= 2
	bm, sticky := mu.ShiftRightSticky(bm, diff)

	if va.Neg == vb.Neg {
		am += bm
	} else {
		am -= bm
		if sticky != 0 {
			// the shifted-out tail of bm borrows one from the difference
			am--
		}
		if am == 0 && sticky == 0 {
			// exact cancellation
			return f.Zero(mode == TowardNegative), 0
		}
	}
	return f.roundPack(va.Neg, ae, am, sticky, mode)
}

// Sub returns a - b, computed as a + (-b).
func (f Format) Sub(a, b uint64, mode RoundingMode) (uint64, Flags) {
	return f.Add(a, f.Neg(b), mode)
}
