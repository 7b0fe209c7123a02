/*
SPDX-License-Identifier: Apache-2.0

Copyright 2024 The Taxinomia Authors
*/

package iterative

import (
	"github.com/google/complexitron/ast"
	"github.com/google/complexitron/costir"
)

// tripCount computes the For loop's iteration count per the literal
// formula N = ((end-start)/step) + (1 if inclusive), folding
// start/end into linear IR expressions where possible and falling
// back to the conservative Sym("n") when the bound isn't a simple
// number/variable/+-combination (e.g. a triangular bound driven by an
// enclosing loop's own symbolic limit, or an unrecognizable shape).
// ForTripCount is tripCount's exported form, for callers outside this
// package (the recursive extractor's non-recursive-cost walk) that
// need a loop's symbolic trip count without threading an env through.
func ForTripCount(f *ast.For) costir.Expr {
	return tripCount(f, env{})
}

func tripCount(f *ast.For, en env) costir.Expr {
	start, ok1 := astToLinear(f.Start, en)
	end, ok2 := astToLinear(f.End, en)
	if !ok1 || !ok2 {
		return costir.N
	}
	step := costir.Int(1)
	if f.Step != nil {
		if n, ok := f.Step.(*ast.Num); ok && n.Value != 0 {
			step = costir.Const(int64(n.Value), 1)
		}
	}
	diff := costir.AddN(end, costir.Negate(start))
	scaled := costir.ScaleSum(diff, costir.Const(1, step.Num))
	if f.Inclusive {
		return costir.AddN(scaled, costir.Int(1))
	}
	return scaled
}
