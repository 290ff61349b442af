// Copyright 2020 Aleksandr Demakin. All rights reserved.

package softfloat

import (
	"math/bits"

	mu "github.com/avdva/softfloat/internal/mathutil"
)

// Mul returns the correctly rounded product of the two operands. The result
// sign is the XOR of the operand signs. Infinity times zero is invalid and
// yields a quiet NaN; infinity times anything else finite keeps the sign
// rule, as does zero times a finite value.
func (f Format) Mul(a, b uint64, mode RoundingMode) (uint64, Flags) {
	va, vb := f.Decode(a), f.Decode(b)
	if va.Kind.nan() || vb.Kind.nan() {
		return f.propagateNaN(va, vb)
	}
	neg := va.Neg != vb.Neg
	switch {
	case va.Kind == KindInf || vb.Kind == KindInf:
		if va.Kind == KindZero || vb.Kind == KindZero {
			return f.NaN(), FlagInvalid
		}
		return f.Inf(neg), 0
	case va.Kind == KindZero || vb.Kind == KindZero:
		return f.Zero(neg), 0
	}

	am, ae := f.sigExp(va)
	bm, be := f.sigExp(vb)
	hi, lo := bits.Mul64(am, bm)
	mant, sticky, adjust := mu.CollapseMul128(hi, lo)
	return f.roundPack(neg, ae+be+adjust, mant, sticky, mode)
}
