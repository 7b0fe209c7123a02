/*
SPDX-License-Identifier: Apache-2.0

Copyright 2024 The Taxinomia Authors
*/

package recursive

import (
	"fmt"

	"github.com/google/complexitron/costir"
)

// IterationResult is the solved closed form for the telescoping shape
// T(n) = T(n-C) + f(n).
type IterationResult struct {
	Bound       costir.Expr
	Explanation string
}

// SolveIteration handles the single-self-call decrement recurrence
// T(n) = T(n-C) + f(n) by telescoping: unrolled, T(n) sums f over the
// n/C steps between n and the base case, so its growth is f(n)'s
// polynomial degree plus one. This is the "iteration method", distinct
// from the two-distinct-shift linear recurrence SolveCharacteristic
// solves by its characteristic polynomial.
func SolveIteration(r *Recurrence) (*IterationResult, bool) {
	if len(r.Calls) != 1 || r.Calls[0].Kind != "subtract" || r.Calls[0].C <= 0 {
		return nil, false
	}
	c := r.Calls[0].C
	deg, ok := polynomialDegree(r.NonRecursiveCost)
	if !ok {
		deg = 0
	}
	newDeg := int64(deg) + 1
	bound := costir.PowN(costir.Sym{Name: "n"}, int(newDeg))
	return &IterationResult{
		Bound: bound,
		Explanation: fmt.Sprintf(
			"T(n) = T(n-%d) + f(n) telescopes to the sum of f over n/%d terms, raising f(n)'s degree %d to %d: T(n) = Theta(n^%d)",
			c, c, int(deg), newDeg, newDeg),
	}, true
}
