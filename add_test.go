// Copyright 2020 Aleksandr Demakin. All rights reserved.

package softfloat

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdd16(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		x, y  uint64
		mode  RoundingMode
		want  uint64
		flags Flags
	}{
		{0x3c00, 0x3c00, ToNearestEven, 0x4000, 0},              // 1 + 1 = 2
		{0x3c00, 0xbc00, ToNearestEven, 0x0000, 0},              // 1 + -1 = +0
		{0x3c00, 0xbc00, TowardNegative, 0x8000, 0},             // exact cancellation rounds down to -0
		{0x7c00, 0x3c00, ToNearestEven, 0x7c00, 0},              // Inf + 1
		{0x3c00, 0xfc00, ToNearestEven, 0xfc00, 0},              // 1 + -Inf
		{0x7c00, 0xfc00, ToNearestEven, 0x7e00, FlagInvalid},    // Inf + -Inf
		{0x7c00, 0x7c00, ToNearestEven, 0x7c00, 0},              // Inf + Inf
		{0x7e00, 0x3c00, ToNearestEven, 0x7e00, 0},              // quiet NaN propagates
		{0x7c01, 0x3c00, ToNearestEven, 0x7e00, FlagInvalid},    // signaling NaN
		{0x0000, 0x8000, ToNearestEven, 0x0000, 0},              // +0 + -0 = +0
		{0x0000, 0x8000, TowardNegative, 0x8000, 0},             // +0 + -0 rounds down to -0
		{0x8000, 0x8000, ToNearestEven, 0x8000, 0},              // -0 + -0 = -0
		{0x0000, 0x4200, ToNearestEven, 0x4200, 0},              // 0 + x = x
		{0x4200, 0xc200, ToNearestEven, 0x0000, 0},              // 3 + -3 = +0
		{0x7bff, 0x7bff, ToNearestEven, 0x7c00, FlagOverflow | FlagInexact},
		{0x7bff, 0x7bff, TowardZero, 0x7c00, FlagOverflow | FlagInexact},
		{0x3c00, 0x0001, ToNearestEven, 0x3c00, FlagInexact},    // 1 + tiny
		{0x0001, 0x0001, ToNearestEven, 0x0002, 0},              // subnormal + subnormal
		{0x03ff, 0x0001, ToNearestEven, 0x0400, 0},              // carries into normal range
		{0x3c00, 0x3c01, ToNearestEven, 0x4000, FlagInexact},    // round to even
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			got, fl := Binary16.Add(test.x, test.y, test.mode)
			a.Equal(test.want, got, "bits")
			a.Equal(test.flags, fl, "flags")
		})
	}
}

func TestAddCommutative16(t *testing.T) {
	a := assert.New(t)
	rnd := rand.New(rand.NewSource(1))
	for i := 0; i < 20000; i++ {
		x, y := rnd.Uint64()&0xffff, rnd.Uint64()&0xffff
		if Binary16.IsNaN(x) || Binary16.IsNaN(y) {
			continue
		}
		r1, f1 := Binary16.Add(x, y, ToNearestEven)
		r2, f2 := Binary16.Add(y, x, ToNearestEven)
		if !a.Equal(r1, r2, "%#04x + %#04x", x, y) || !a.Equal(f1, f2) {
			return
		}
	}
}

func TestAddConformance64(t *testing.T) {
	a := assert.New(t)
	rnd := rand.New(rand.NewSource(2))
	for i := 0; i < 100000; i++ {
		xb, yb := randBits64(rnd), randBits64(rnd)
		x, y := math.Float64frombits(xb), math.Float64frombits(yb)
		if math.IsNaN(x) || math.IsNaN(y) {
			continue
		}
		want := math.Float64bits(x + y)
		got, _ := Binary64.Add(xb, yb, ToNearestEven)
		if math.IsNaN(x + y) {
			if !a.True(Binary64.IsNaN(got), "%#016x + %#016x", xb, yb) {
				return
			}
			continue
		}
		if !a.Equal(want, got, "%#016x + %#016x", xb, yb) {
			return
		}
	}
}

func TestSubConformance32(t *testing.T) {
	a := assert.New(t)
	rnd := rand.New(rand.NewSource(3))
	for i := 0; i < 100000; i++ {
		xb, yb := randBits32(rnd), randBits32(rnd)
		x, y := math.Float32frombits(uint32(xb)), math.Float32frombits(uint32(yb))
		if x != x || y != y {
			continue
		}
		d := x - y
		got, _ := Binary32.Sub(xb, yb, ToNearestEven)
		if d != d {
			if !a.True(Binary32.IsNaN(got), "%#08x - %#08x", xb, yb) {
				return
			}
			continue
		}
		if !a.Equal(uint64(math.Float32bits(d)), got, "%#08x - %#08x", xb, yb) {
			return
		}
	}
}

func TestAddDirected16(t *testing.T) {
	a := assert.New(t)
	// 1 + 2^-11 is exactly halfway between representable neighbors.
	const x, y = 0x3c00, 0x1000 // 1, 2^-11
	got, fl := Binary16.Add(x, y, ToNearestEven)
	a.Equal(uint64(0x3c00), got)
	a.Equal(FlagInexact, fl)
	got, _ = Binary16.Add(x, y, TowardPositive)
	a.Equal(uint64(0x3c01), got)
	got, _ = Binary16.Add(x, y, TowardNegative)
	a.Equal(uint64(0x3c00), got)
	got, _ = Binary16.Add(x, y, TowardZero)
	a.Equal(uint64(0x3c00), got)
	got, _ = Binary16.Add(Binary16.Neg(x), Binary16.Neg(y), TowardNegative)
	a.Equal(uint64(0xbc01), got)
}

func BenchmarkAdd64(b *testing.B) {
	rnd := rand.New(rand.NewSource(4))
	xs := make([]uint64, 1024)
	ys := make([]uint64, 1024)
	for i := range xs {
		xs[i], ys[i] = randBits64(rnd), randBits64(rnd)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Binary64.Add(xs[i&1023], ys[i&1023], ToNearestEven)
	}
}
