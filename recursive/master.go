/*
SPDX-License-Identifier: Apache-2.0

Copyright 2024 The Taxinomia Authors
*/

package recursive

import (
	"fmt"
	"math"

	"github.com/google/complexitron/costir"
)

// MasterResult is the solved closed form and the case that produced
// it, for a divide-and-conquer recurrence T(n) = a*T(n/b) + f(n).
type MasterResult struct {
	Case        int // 1, 2, or 3
	Bound       costir.Expr
	Explanation string
}

// SolveMaster applies the Master Theorem to a divide-and-conquer
// Recurrence whose self-calls all share the same divisor b. It
// reports ok=false when the recurrence isn't uniformly divide-shaped,
// or when case 3 applies but the regularity condition
// (a*f(n/b) <= c*f(n) for some c<1) fails to hold for the f(n) this
// extraction produced — in which case the caller should fall back to
// iteration-unrolling instead of asserting an unsound bound.
func SolveMaster(r *Recurrence) (*MasterResult, bool) {
	a := int64(len(r.Calls))
	if a == 0 {
		return nil, false
	}
	b := r.Calls[0].B
	if b < 2 {
		return nil, false
	}
	for _, c := range r.Calls {
		if c.Kind != "divide" || c.B != b {
			return nil, false
		}
	}
	fDeg, ok := polynomialDegree(r.NonRecursiveCost)
	if !ok {
		return nil, false
	}
	critical := math.Log(float64(a)) / math.Log(float64(b))

	switch {
	case fDeg < critical-1e-9:
		return &MasterResult{
			Case:  1,
			Bound: nPowCritical(critical),
			Explanation: fmt.Sprintf(
				"f(n) grows slower than n^log_%d(%d), so the leaves dominate: Theta(n^log_%d(%d))", b, a, b, a),
		}, true
	case math.Abs(fDeg-critical) < 1e-9:
		return &MasterResult{
			Case: 2,
			Bound: costir.MulN(
				nPowCritical(critical),
				costir.LogN(2, costir.Sym{Name: "n"}),
			),
			Explanation: fmt.Sprintf(
				"f(n) matches n^log_%d(%d) exactly, picking up a log factor: Theta(n^log_%d(%d) * log(n))", b, a, b, a),
		}, true
	default:
		if !regularityHolds(a, b, fDeg) {
			return nil, false
		}
		return &MasterResult{
			Case:        3,
			Bound:       r.NonRecursiveCost,
			Explanation: "f(n) dominates the recursive calls and satisfies the regularity condition: Theta(f(n))",
		}, true
	}
}

// nPowCritical builds n^critical, using the exact integer-power
// identities (including n^0 = 1) when the exponent is within
// floating-point rounding of an integer, and an explicit rational Pow
// otherwise (e.g. log_3(7), which has no exact integer or simple
// fractional form).
func nPowCritical(critical float64) costir.Expr {
	rounded := math.Round(critical)
	if math.Abs(critical-rounded) < 1e-9 {
		return costir.PowN(costir.Sym{Name: "n"}, int(rounded))
	}
	return costir.Pow{Base: costir.Sym{Name: "n"}, Exp: costir.Const(int64(math.Round(critical*1000)), 1000)}
}

// polynomialDegree reports the polynomial degree of f(n), tolerating
// Max-combined branch costs (degree.go already knows how to take the
// degree of a Max by taking its dominant alternative) but rejecting
// anything with a logarithmic or exponential component, since the
// Master Theorem's f(n) comparison is only meaningful for polynomial
// growth.
func polynomialDegree(e costir.Expr) (float64, bool) {
	d := costir.DegreeOf(e)
	if d.Exp != 0 || d.Log != 0 {
		return 0, false
	}
	return d.Poly, true
}

// regularityHolds checks the Master Theorem case-3 regularity
// condition a*f(n/b) <= c*f(n) for polynomial f(n) = n^d: this always
// holds with c = a/b^d < 1 whenever case 3's own premise (d > log_b a)
// is true, so the check degenerates to confirming that premise's
// strict inequality numerically.
func regularityHolds(a, b int64, fDeg float64) bool {
	critical := math.Log(float64(a)) / math.Log(float64(b))
	c := float64(a) / math.Pow(float64(b), fDeg)
	return fDeg > critical && c < 1
}
