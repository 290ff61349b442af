// Copyright 2020 Aleksandr Demakin. All rights reserved.

package softfloat

import "fmt"

// Op selects an arithmetic core.
type Op int

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
)

// String returns a human-readable opcode name.
func (op Op) String() string {
	switch op {
	case OpAdd:
		return "Add"
	case OpSub:
		return "Sub"
	case OpMul:
		return "Mul"
	case OpDiv:
		return "Div"
	}
	return "Unknown"
}

// Engine dispatches operations over a single format. All operations are
// pure functions of their inputs and the format, so one engine may be used
// from any number of goroutines concurrently.
type Engine struct {
	format Format
}

// New returns an engine over the given format.
func New(format Format) *Engine {
	return &Engine{format: format}
}

// Format returns the engine's format.
func (e *Engine) Format() Format {
	return e.format
}

// Evaluate routes op to its core and returns the result bits together with
// the flags raised by this call only. Callers that want hardware-like
// sticky semantics collect the returned flags into an Accumulator they own.
// Passing an opcode outside the Op constants is a programming error and
// panics.
func (e *Engine) Evaluate(op Op, a, b uint64, mode RoundingMode) (uint64, Flags) {
	switch op {
	case OpAdd:
		return e.format.Add(a, b, mode)
	case OpSub:
		return e.format.Sub(a, b, mode)
	case OpMul:
		return e.format.Mul(a, b, mode)
	case OpDiv:
		return e.format.Div(a, b, mode)
	}
	panic(fmt.Sprintf("softfloat: unknown opcode %d", int(op)))
}
