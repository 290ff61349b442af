// Copyright 2020 Aleksandr Demakin. All rights reserved.

package softfloat

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// FromDecimal converts d into the correctly rounded binary encoding. The
// conversion is exact up to the final rounding step: the decimal
// coefficient is scaled with arbitrary-precision integers, so results are
// bit-for-bit faithful for every mode, with Inexact, Overflow and
// Underflow reported as usual.
func (f Format) FromDecimal(d decimal.Decimal, mode RoundingMode) (uint64, Flags) {
	c := d.Coefficient()
	if c.Sign() == 0 {
		return f.Zero(false), 0
	}
	neg := c.Sign() < 0
	exp10 := int(d.Exponent())

	// decimal orders of magnitude representable by the format, with slack
	limit := (f.Bias()+int(f.mantBits)+2)*30103/100000 + 4
	mag10 := exp10 + c.BitLen()*30103/100000 + 1
	if mag10 > limit {
		return f.Inf(neg), FlagOverflow | FlagInexact
	}
	if mag10 < -limit {
		// far below the smallest subnormal: a bare sticky tail
		return f.roundPack(neg, 0, 0, 1, mode)
	}

	num := new(big.Int).Abs(c)
	den := big.NewInt(1)
	ten := big.NewInt(10)
	if exp10 > 0 {
		num.Mul(num, new(big.Int).Exp(ten, big.NewInt(int64(exp10)), nil))
	} else if exp10 < 0 {
		den.Exp(ten, big.NewInt(int64(-exp10)), nil)
	}
	// scale so the integer quotient keeps a couple of bits past the guard
	prec := int(f.mantBits) + 3
	k := prec + den.BitLen() - num.BitLen()
	if k > 0 {
		num.Lsh(num, uint(k))
	} else if k < 0 {
		den.Lsh(den, uint(-k))
	}
	quo, rem := new(big.Int).QuoRem(num, den, new(big.Int))
	var sticky uint64
	if rem.Sign() != 0 {
		sticky = 1
	}
	return f.roundPack(neg, -k, quo.Uint64(), sticky, mode)
}

// ToDecimal returns the exact decimal expansion of a finite value. Every
// finite binary value has one: mant * 2^e equals mant * 5^-e * 10^e for
// negative e. NaNs and infinities have no decimal form and return an error.
func (f Format) ToDecimal(b uint64) (decimal.Decimal, error) {
	v := f.Decode(b)
	switch v.Kind {
	case KindInf, KindQuietNaN, KindSignalingNaN:
		return decimal.Decimal{}, fmt.Errorf("no decimal form for %v", v.Kind)
	case KindZero:
		return decimal.New(0, 0), nil
	}
	sig, e := f.sigExp(v)
	m := new(big.Int).SetUint64(sig)
	if v.Neg {
		m.Neg(m)
	}
	if e >= 0 {
		return decimal.NewFromBigInt(m.Lsh(m, uint(e)), 0), nil
	}
	m.Mul(m, new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(-e)), nil))
	// strip factors of ten the significand contributed, e.g. 0.250 -> 0.25
	ten, rem := big.NewInt(10), new(big.Int)
	for e < 0 {
		q, r := new(big.Int).QuoRem(m, ten, rem)
		if r.Sign() != 0 {
			break
		}
		m, e = q, e+1
	}
	return decimal.NewFromBigInt(m, int32(e)), nil
}

// ParseFloat parses a decimal string into the correctly rounded encoding.
// Besides anything decimal.NewFromString accepts, the spellings Inf, -Inf,
// Infinity and NaN (case-insensitive) are recognized.
func (f Format) ParseFloat(s string, mode RoundingMode) (uint64, Flags, error) {
	trimmed := strings.TrimSpace(s)
	switch strings.ToLower(trimmed) {
	case "inf", "+inf", "infinity", "+infinity":
		return f.Inf(false), 0, nil
	case "-inf", "-infinity":
		return f.Inf(true), 0, nil
	case "nan", "+nan", "-nan":
		return f.NaN(), 0, nil
	}
	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return 0, 0, fmt.Errorf("parsing failed: %w", err)
	}
	b, fl := f.FromDecimal(d, mode)
	if d.Sign() == 0 && strings.HasPrefix(trimmed, "-") {
		b = f.Zero(true)
	}
	return b, fl, nil
}

// FormatFloat renders b as its exact decimal string, or one of NaN, +Inf,
// -Inf, 0, -0.
func (f Format) FormatFloat(b uint64) string {
	v := f.Decode(b)
	switch v.Kind {
	case KindQuietNaN, KindSignalingNaN:
		return "NaN"
	case KindInf:
		if v.Neg {
			return "-Inf"
		}
		return "+Inf"
	case KindZero:
		if v.Neg {
			return "-0"
		}
		return "0"
	}
	d, _ := f.ToDecimal(b)
	return d.String()
}
