/*
SPDX-License-Identifier: Apache-2.0

Copyright 2024 The Taxinomia Authors
*/

package recursive

import (
	"fmt"

	"github.com/google/complexitron/costir"
)

// UnrollResult is the explanation and estimated bound produced by
// mechanically unrolling a recurrence a fixed number of levels and
// extrapolating the pattern, used when neither the Master Theorem nor
// the characteristic-equation solver applies.
type UnrollResult struct {
	Bound       costir.Expr
	Levels      []string
	Explanation string
}

// Unroll expands T(n) = a*T(shape) + f(n) for a handful of levels,
// tracking how many subproblems exist and how large each is at each
// level, and reports the depth at which the subproblem size reaches
// its base case, which bounds the total work.
func Unroll(r *Recurrence) UnrollResult {
	a := int64(len(r.Calls))
	if a == 0 {
		a = 1
	}
	levels := make([]string, 0, 4)
	size := "n"
	switch r.Calls[0].Kind {
	case "divide":
		b := r.Calls[0].B
		if b < 2 {
			b = 2
		}
		for i := 0; i < 4; i++ {
			count := pow(a, i)
			levels = append(levels, fmt.Sprintf("level %d: %d subproblem(s) of size n/%d^%d", i, count, b, i))
		}
		total := costir.Pow{Base: costir.Sym{Name: fmt.Sprintf("%d", a)}, Exp: costir.LogN(b, costir.Sym{Name: "n"})}
		return UnrollResult{
			Bound:  total,
			Levels: levels,
			Explanation: fmt.Sprintf(
				"unrolling %d levels: %d subproblems per level, shrinking by a factor of %d each level, %d^log_%d(n) subproblems reach the base case",
				4, a, b, a, b),
		}
	case "subtract":
		c := r.Calls[0].C
		if c < 1 {
			c = 1
		}
		for i := 0; i < 4; i++ {
			count := pow(a, i)
			levels = append(levels, fmt.Sprintf("level %d: %d subproblem(s), n shrunk by %d", i, count, int64(i)*c))
		}
		return UnrollResult{
			Bound:  costir.Pow{Base: costir.Sym{Name: fmt.Sprintf("%d", a)}, Exp: costir.Sym{Name: "n"}},
			Levels: levels,
			Explanation: fmt.Sprintf(
				"unrolling shows %d-fold branching at every level until n reaches the base case after n/%d levels", a, c),
		}
	default:
		return UnrollResult{
			Bound:       size2Sym(size),
			Levels:      levels,
			Explanation: "the recursive call's argument shape could not be classified, so no closed form could be unrolled",
		}
	}
}

func size2Sym(s string) costir.Expr { return costir.Sym{Name: s} }

func pow(base int64, exp int) int64 {
	out := int64(1)
	for i := 0; i < exp; i++ {
		out *= base
	}
	return out
}

// TreeNode is one level of the deterministic recursion-tree fallback.
type TreeNode struct {
	Depth        int
	SubproblemsAtDepth int64
	SizeLabel    string
	CostAtDepth  costir.Expr
}

// RecursionTree builds a fixed small number of levels of the call
// tree together with the total work charged at each level, a visual,
// deterministic fallback for when neither algebraic solver nor the
// unrolling explanation apply to a shape the extractor recognized
// but couldn't classify precisely (e.g. an irregular mix of divide
// and subtract calls in the same procedure).
func RecursionTree(r *Recurrence, maxDepth int) []TreeNode {
	a := int64(len(r.Calls))
	if a == 0 {
		a = 1
	}
	nodes := make([]TreeNode, 0, maxDepth)
	for d := 0; d < maxDepth; d++ {
		count := pow(a, d)
		nodes = append(nodes, TreeNode{
			Depth:              d,
			SubproblemsAtDepth: count,
			SizeLabel:          fmt.Sprintf("depth %d", d),
			CostAtDepth:        costir.MulN(costir.Int(count), r.NonRecursiveCost),
		})
	}
	return nodes
}
