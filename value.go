// Copyright 2020 Aleksandr Demakin. All rights reserved.

package softfloat

// Kind classifies a decoded bit pattern.
type Kind int

const (
	KindZero Kind = iota
	KindSubnormal
	KindNormal
	KindInf
	KindQuietNaN
	KindSignalingNaN
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindZero:
		return "Zero"
	case KindSubnormal:
		return "Subnormal"
	case KindNormal:
		return "Normal"
	case KindInf:
		return "Inf"
	case KindQuietNaN:
		return "QuietNaN"
	case KindSignalingNaN:
		return "SignalingNaN"
	}
	return "Unknown"
}

func (k Kind) nan() bool {
	return k == KindQuietNaN || k == KindSignalingNaN
}

// Value is the decoded form of a bit pattern: raw fields plus the
// classification they imply. Values are never mutated in place.
type Value struct {
	Neg  bool
	Exp  uint64 // biased exponent field
	Mant uint64 // mantissa field, implicit bit not included
	Kind Kind
}

// Decode splits b into sign, exponent and mantissa and classifies the
// result. It is total: every bit pattern of the configured width decodes.
func (f Format) Decode(b uint64) Value {
	b &= f.mask()
	v := Value{
		Neg:  b&f.signMask() != 0,
		Exp:  b >> f.mantBits & f.expMask(),
		Mant: b & f.mantMask(),
	}
	switch {
	case v.Exp == 0 && v.Mant == 0:
		v.Kind = KindZero
	case v.Exp == 0:
		v.Kind = KindSubnormal
	case v.Exp != f.expMax():
		v.Kind = KindNormal
	case v.Mant == 0:
		v.Kind = KindInf
	case v.Mant&f.quietBit() != 0:
		v.Kind = KindQuietNaN
	default:
		v.Kind = KindSignalingNaN
	}
	return v
}

// Encode packs v back into a bit pattern. It is the exact inverse of Decode
// for every decoded value.
func (f Format) Encode(v Value) uint64 {
	b := v.Exp&f.expMask()<<f.mantBits | v.Mant&f.mantMask()
	if v.Neg {
		b |= f.signMask()
	}
	return b
}

// sigExp returns the significand with its implicit bit restored and the
// unbiased exponent e such that the magnitude of v equals sig * 2^e.
// Meaningful for finite nonzero values only.
func (f Format) sigExp(v Value) (sig uint64, e int) {
	if v.Kind == KindNormal {
		return v.Mant | 1<<f.mantBits, int(v.Exp) - f.Bias() - int(f.mantBits)
	}
	return v.Mant, 1 - f.Bias() - int(f.mantBits)
}

func (f Format) propagateNaN(va, vb Value) (uint64, Flags) {
	var fl Flags
	if va.Kind == KindSignalingNaN || vb.Kind == KindSignalingNaN {
		fl = FlagInvalid
	}
	return f.NaN(), fl
}
