// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package softfloat implements IEEE 754 binary floating-point arithmetic in
// software, parameterized over the exponent and mantissa widths.
// Operands and results are raw bit patterns laid out as
//   sign(1) | exponent(expBits) | mantissa(mantBits)
// in the low bits of a uint64. Exceptional conditions never abort an
// operation; they are reported as Flags returned alongside the result.
package softfloat

import (
	"fmt"
)

var (
	// Binary16 is the IEEE 754 half-precision interchange format (1/5/10).
	Binary16 = MustFormat(16, 5, 10)
	// Binary32 is the IEEE 754 single-precision interchange format (1/8/23).
	Binary32 = MustFormat(32, 8, 23)
	// Binary64 is the IEEE 754 double-precision interchange format (1/11/52).
	Binary64 = MustFormat(64, 11, 52)
)

// Format describes a binary interchange format. It is constructed once per
// precision and shared read-only by every operation using it.
type Format struct {
	width    uint
	expBits  uint
	mantBits uint
}

// NewFormat returns a format with the given total, exponent and mantissa
// field widths. The widths must satisfy width == 1 + expBits + mantBits,
// fit in 64 bits, and leave room for the arithmetic cores' guard bits.
func NewFormat(width, expBits, mantBits uint) (Format, error) {
	if width != 1+expBits+mantBits {
		return Format{}, fmt.Errorf("inconsistent format: total width %d != 1+%d+%d", width, expBits, mantBits)
	}
	if width > 64 {
		return Format{}, fmt.Errorf("format does not fit 64 bits: total width %d", width)
	}
	if expBits < 2 || expBits > 15 {
		return Format{}, fmt.Errorf("unsupported exponent width: %d bits", expBits)
	}
	if mantBits < 1 || mantBits > 60 {
		return Format{}, fmt.Errorf("unsupported mantissa width: %d bits", mantBits)
	}
	return Format{width: width, expBits: expBits, mantBits: mantBits}, nil
}

// MustFormat is like NewFormat, but panics on an invalid width triple.
func MustFormat(width, expBits, mantBits uint) Format {
	f, err := NewFormat(width, expBits, mantBits)
	if err != nil {
		panic(err)
	}
	return f
}

// Width returns the total width of the format in bits.
func (f Format) Width() uint { return f.width }

// ExpBits returns the width of the exponent field.
func (f Format) ExpBits() uint { return f.expBits }

// MantBits returns the width of the mantissa field.
func (f Format) MantBits() uint { return f.mantBits }

// Bias returns the exponent bias, 2^(expBits-1) - 1.
func (f Format) Bias() int { return 1<<(f.expBits-1) - 1 }

func (f Format) expMax() uint64 { return 1<<f.expBits - 1 }

func (f Format) expMask() uint64 { return 1<<f.expBits - 1 }

func (f Format) mantMask() uint64 { return 1<<f.mantBits - 1 }

func (f Format) signMask() uint64 { return 1 << (f.width - 1) }

func (f Format) mask() uint64 {
	return f.signMask() | (f.signMask() - 1)
}

// quietBit is the most significant mantissa bit, set in every quiet NaN.
func (f Format) quietBit() uint64 { return 1 << (f.mantBits - 1) }

// NaN returns the canonical quiet NaN: sign 0, exponent all ones,
// mantissa MSB set, remaining mantissa bits 0.
func (f Format) NaN() uint64 {
	return f.expMax()<<f.mantBits | f.quietBit()
}

// Inf returns the infinity of the given sign.
func (f Format) Inf(neg bool) uint64 {
	b := f.expMax() << f.mantBits
	if neg {
		b |= f.signMask()
	}
	return b
}

// Zero returns the zero of the given sign.
func (f Format) Zero(neg bool) uint64 {
	if neg {
		return f.signMask()
	}
	return 0
}

// MaxFinite returns the largest finite value of the given sign.
func (f Format) MaxFinite(neg bool) uint64 {
	b := (f.expMax()-1)<<f.mantBits | f.mantMask()
	if neg {
		b |= f.signMask()
	}
	return b
}

// SmallestSubnormal returns the smallest nonzero magnitude of the given sign.
func (f Format) SmallestSubnormal(neg bool) uint64 {
	if neg {
		return f.signMask() | 1
	}
	return 1
}

// Neg flips the sign bit. Per IEEE 754 sign operations are quiet: no flags,
// NaNs included.
func (f Format) Neg(b uint64) uint64 {
	return b&f.mask() ^ f.signMask()
}

// Abs clears the sign bit.
func (f Format) Abs(b uint64) uint64 {
	return b & f.mask() &^ f.signMask()
}

// IsNaN reports whether b encodes a NaN of either kind.
func (f Format) IsNaN(b uint64) bool {
	k := f.Decode(b).Kind
	return k == KindQuietNaN || k == KindSignalingNaN
}
