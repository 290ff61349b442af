// Copyright 2020 Aleksandr Demakin. All rights reserved.

package softfloat

// Compare evaluates the IEEE equality and ordering predicates over raw
// bits. A NaN operand makes the comparison unordered: all three predicates
// are false, and Invalid is raised if the NaN is signaling. +0 and -0
// compare equal. Otherwise ordering is by sign first, then by
// (exponent, mantissa), with the direction flipped for negative operands.
func (f Format) Compare(a, b uint64) (eq, lt, le bool, fl Flags) {
	a &= f.mask()
	b &= f.mask()
	va, vb := f.Decode(a), f.Decode(b)
	if va.Kind.nan() || vb.Kind.nan() {
		if va.Kind == KindSignalingNaN || vb.Kind == KindSignalingNaN {
			fl = FlagInvalid
		}
		return false, false, false, fl
	}
	if va.Kind == KindZero && vb.Kind == KindZero {
		return true, false, true, 0
	}
	var c int
	if va.Neg != vb.Neg {
		c = 1
		if va.Neg {
			c = -1
		}
	} else {
		ma, mb := a&^f.signMask(), b&^f.signMask()
		switch {
		case ma < mb:
			c = -1
		case ma > mb:
			c = 1
		}
		if va.Neg {
			c = -c
		}
	}
	return c == 0, c < 0, c <= 0, 0
}

// Eq reports whether a == b.
func (f Format) Eq(a, b uint64) (bool, Flags) {
	eq, _, _, fl := f.Compare(a, b)
	return eq, fl
}

// Lt reports whether a < b.
func (f Format) Lt(a, b uint64) (bool, Flags) {
	_, lt, _, fl := f.Compare(a, b)
	return lt, fl
}

// Le reports whether a <= b.
func (f Format) Le(a, b uint64) (bool, Flags) {
	_, _, le, fl := f.Compare(a, b)
	return le, fl
}
