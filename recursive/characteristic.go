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

// CharacteristicResult is the solved closed form for a linear
// subtract-shaped recurrence (T(n) = T(n-1) + ... or the
// two-term Fibonacci shape T(n) = T(n-1) + T(n-2) + f(n)).
type CharacteristicResult struct {
	Bound       costir.Expr
	Explanation string
}

// SolveCharacteristic handles the "subtract" recurrences SolveMaster
// and SolveIteration don't: a-fold repeated T(n-1) calls (growth
// a^n), and the two-distinct-shift Fibonacci shape T(n-1)+T(n-2)
// (golden ratio growth, reported as the bound phi^n; the looser 2^n
// bound appears only in the explanation text). A single T(n-1) call is telescoping, not a
// linear recurrence with a characteristic polynomial, and is left to
// SolveIteration.
func SolveCharacteristic(r *Recurrence) (*CharacteristicResult, bool) {
	if len(r.Calls) == 0 {
		return nil, false
	}
	shifts := map[int64]int{}
	for _, c := range r.Calls {
		if c.Kind != "subtract" || c.C <= 0 {
			return nil, false
		}
		shifts[c.C]++
	}

	if len(shifts) == 1 {
		var c int64
		var count int
		for k, v := range shifts {
			c, count = k, v
		}
		if c != 1 || count == 1 {
			return nil, false
		}
		base := costir.Sym{Name: fmt.Sprintf("%d", count)}
		return &CharacteristicResult{
			Bound: costir.Pow{Base: base, Exp: costir.Sym{Name: "n"}},
			Explanation: fmt.Sprintf(
				"%d independent calls each shrinking n by 1 give the characteristic equation x = %d, so T(n) = Theta(%d^n)",
				count, count, count),
		}, true
	}

	if len(shifts) == 2 && shifts[1] == 1 && shifts[2] == 1 {
		phi := (1 + math.Sqrt(5)) / 2
		return &CharacteristicResult{
			Bound: costir.Pow{Base: costir.Sym{Name: "phi"}, Exp: costir.Sym{Name: "n"}},
			Explanation: fmt.Sprintf(
				"characteristic equation x^2 = x + 1 has dominant root phi = %.6f, so T(n) = Theta(phi^n), loosely bounded by Theta(2^n)",
				phi),
		}, true
	}

	return nil, false
}
