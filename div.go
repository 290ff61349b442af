// Copyright 2020 Aleksandr Demakin. All rights reserved.

package softfloat

import (
	mu "github.com/avdva/softfloat/internal/mathutil"
)

// Div returns the correctly rounded quotient of the two operands. 0/0 and
// Inf/Inf are invalid and yield a quiet NaN; a nonzero finite dividend over
// zero raises DivByZero and yields a signed infinity; zero over finite and
// finite over infinity yield signed zeros; infinity over finite yields a
// signed infinity.
func (f Format) Div(a, b uint64, mode RoundingMode) (uint64, Flags) {
	va, vb := f.Decode(a), f.Decode(b)
	if va.Kind.nan() || vb.Kind.nan() {
		return f.propagateNaN(va, vb)
	}
	neg := va.Neg != vb.Neg
	switch {
	case va.Kind == KindInf && vb.Kind == KindInf,
		va.Kind == KindZero && vb.Kind == KindZero:
		return f.NaN(), FlagInvalid
	case va.Kind == KindInf:
		return f.Inf(neg), 0
	case vb.Kind == KindInf:
		return f.Zero(neg), 0
	case va.Kind == KindZero:
		return f.Zero(neg), 0
	case vb.Kind == KindZero:
		return f.Inf(neg), FlagDivByZero
	}

	am, ae := f.sigExp(va)
	bm, be := f.sigExp(vb)
	// bring both significands to exactly mantBits+1 bits, so the quotient
	// lands within one position of its target and the 128/64 division below
	// cannot overflow
	var sh uint
	am, sh = mu.NormalizeTo(am, f.mantBits)
	ae -= int(sh)
	bm, sh = mu.NormalizeTo(bm, f.mantBits)
	be -= int(sh)

	// pad the dividend so the quotient keeps a guard bit past the mantissa;
	// the remainder is the sticky tail
	shift := f.mantBits + 2
	quo, rem := mu.QuoRemScaled(am, bm, shift)
	return f.roundPack(neg, ae-be-int(shift), quo, rem, mode)
}
