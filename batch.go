// Copyright 2020 Aleksandr Demakin. All rights reserved.

package softfloat

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// EvaluateBatch applies op lane-wise over a and b into dst, splitting the
// lanes across at most parallel goroutines (1 disables parallelism,
// values below 1 default to a small fan-out). Every lane is independent
// and deterministic, so the result never depends on the degree of
// parallelism. Each worker collects flags into its own accumulator; the
// merged sticky set is returned. The only error is a slice length
// mismatch.
func (e *Engine) EvaluateBatch(op Op, dst, a, b []uint64, mode RoundingMode, parallel int) (Flags, error) {
	if len(a) != len(b) || len(dst) != len(a) {
		return 0, fmt.Errorf("length mismatch: dst=%d, a=%d, b=%d", len(dst), len(a), len(b))
	}
	if len(a) == 0 {
		return 0, nil
	}
	if parallel < 1 {
		parallel = 8
	}
	if parallel > len(a) {
		parallel = len(a)
	}
	chunk := (len(a) + parallel - 1) / parallel
	accs := make([]Accumulator, (len(a)+chunk-1)/chunk)

	var g errgroup.Group
	g.SetLimit(parallel)
	for idx, start := 0, 0; start < len(a); idx, start = idx+1, start+chunk {
		acc := &accs[idx]
		lo, hi := start, start+chunk
		if hi > len(a) {
			hi = len(a)
		}
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				res, fl := e.Evaluate(op, a[i], b[i], mode)
				dst[i] = res
				acc.Collect(fl)
			}
			return nil
		})
	}
	_ = g.Wait() // workers never fail
	var fl Flags
	for i := range accs {
		fl |= accs[i].Flags()
	}
	return fl, nil
}
