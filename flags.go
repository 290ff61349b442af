// Copyright 2020 Aleksandr Demakin. All rights reserved.

package softfloat

import "strings"

// RoundingMode selects how an inexact result is rounded to the nearest
// representable value. It is threaded explicitly through every call.
type RoundingMode int

const (
	// ToNearestEven rounds to the nearest value, ties to the even mantissa.
	ToNearestEven RoundingMode = iota
	// TowardZero truncates.
	TowardZero
	// TowardPositive rounds toward positive infinity.
	TowardPositive
	// TowardNegative rounds toward negative infinity.
	TowardNegative
)

// String returns a human-readable mode name.
func (m RoundingMode) String() string {
	switch m {
	case ToNearestEven:
		return "ToNearestEven"
	case TowardZero:
		return "TowardZero"
	case TowardPositive:
		return "TowardPositive"
	case TowardNegative:
		return "TowardNegative"
	}
	return "Unknown"
}

// Flags is a set of IEEE 754 exception flags. Operations return the flags
// they raised; they never abort on any data input.
type Flags uint8

const (
	FlagInvalid Flags = 1 << iota
	FlagDivByZero
	FlagOverflow
	FlagUnderflow
	FlagInexact
)

var flagNames = []struct {
	flag Flags
	name string
}{
	{FlagInvalid, "Invalid"},
	{FlagDivByZero, "DivByZero"},
	{FlagOverflow, "Overflow"},
	{FlagUnderflow, "Underflow"},
	{FlagInexact, "Inexact"},
}

// Has reports whether all flags in other are set.
func (fl Flags) Has(other Flags) bool {
	return fl&other == other
}

// String returns the set flags joined with '|', or "None".
func (fl Flags) String() string {
	if fl == 0 {
		return "None"
	}
	var names []string
	for _, fn := range flagNames {
		if fl&fn.flag != 0 {
			names = append(names, fn.name)
		}
	}
	return strings.Join(names, "|")
}

// Accumulator collects sticky flags across successive calls, mirroring a
// hardware status register. It is owned entirely by the caller: the engine
// never keeps one implicitly, and a single accumulator must not be shared
// by concurrent writers.
type Accumulator struct {
	flags Flags
}

// Collect ORs fl into the accumulated set.
func (a *Accumulator) Collect(fl Flags) {
	a.flags |= fl
}

// Flags returns the accumulated set.
func (a *Accumulator) Flags() Flags {
	return a.flags
}

// Clear resets the accumulated set.
func (a *Accumulator) Clear() {
	a.flags = 0
}
