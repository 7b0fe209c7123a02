/*
SPDX-License-Identifier: Apache-2.0

Copyright 2024 The Taxinomia Authors
*/

package iterative

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/google/complexitron/ast"
)

// tracePrinter groups a trace's total-iteration count the same way
// summation.Build groups a bound's leading coefficient, so a nested
// loop's 25 and a binary search's larger synthetic n read consistently
// across the report.
var tracePrinter = message.NewPrinter(language.English)

// TraceStep is one emitted row of a concrete execution trace: a fixed
// n is substituted for the governing symbol and the loop is actually
// unrolled, so a learner can see the abstract trip-count formula next
// to the literal iteration count it produces.
type TraceStep struct {
	Iteration int
	Note      string
}

// ExecutionTrace is the walked-out iteration record for one loop,
// concretized at a caller-supplied default n, threaded in via
// analysis.Options: 5 for simple and nested loops, 16 for binary
// search and halving-while loops.
type ExecutionTrace struct {
	Kind            string
	N               int
	Steps           []TraceStep
	TotalIterations int
}

// simpleLoopTrace unrolls a single For loop at the given n.
func simpleLoopTrace(f *ast.For, n int) ExecutionTrace {
	steps := make([]TraceStep, 0, n)
	for i := 1; i <= n; i++ {
		steps = append(steps, TraceStep{Iteration: i, Note: fmt.Sprintf("%s = %d", f.Var, i)})
	}
	return ExecutionTrace{Kind: "simple_loop", N: n, Steps: steps, TotalIterations: n}
}

// nestedLoopTrace unrolls an outer/inner For pair at n each, giving
// total_iterations = n*n.
func nestedLoopTrace(outer, inner *ast.For, n int) ExecutionTrace {
	steps := make([]TraceStep, 0, n*n)
	total := 0
	for i := 1; i <= n; i++ {
		for j := 1; j <= n; j++ {
			total++
			steps = append(steps, TraceStep{
				Iteration: total,
				Note:      fmt.Sprintf("%s = %d, %s = %d", outer.Var, i, inner.Var, j),
			})
		}
	}
	return ExecutionTrace{Kind: "nested_loop", N: n, Steps: steps, TotalIterations: total}
}

// binarySearchTrace unrolls the two-pointer halving-interval search at
// the given n, producing one step per halving of the [lo, hi] window.
func binarySearchTrace(n int) ExecutionTrace {
	steps := []TraceStep{}
	lo, hi := 0, n-1
	total := 0
	for lo <= hi {
		mid := (lo + hi) / 2
		total++
		steps = append(steps, TraceStep{
			Iteration: total,
			Note:      fmt.Sprintf("lo=%d, hi=%d, mid=%d", lo, hi, mid),
		})
		hi = mid - 1
	}
	return ExecutionTrace{Kind: "binary_search", N: n, Steps: steps, TotalIterations: total}
}

// halvingWhileTrace unrolls a single-variable halving while loop
// (the "i<-n; while (i>1) do i<-i div k" shape, detected by
// detectWhilePattern's "halving" kind) at the given n, one step per
// division, stopping once the tracked variable reaches 1.
func halvingWhileTrace(varName string, k int64, n int) ExecutionTrace {
	if k < 2 {
		k = 2
	}
	steps := make([]TraceStep, 0)
	total := 0
	v := int64(n)
	for v > 1 {
		v /= k
		total++
		steps = append(steps, TraceStep{Iteration: total, Note: fmt.Sprintf("%s = %d", varName, v)})
	}
	return ExecutionTrace{Kind: "halving_loop", N: n, Steps: steps, TotalIterations: total}
}

// fallbackTrace is emitted when no recognizable loop shape is found:
// it records that no concrete unrolling was attempted rather than
// guessing at a misleading one.
func fallbackTrace() ExecutionTrace {
	return ExecutionTrace{Kind: "unknown", Steps: nil, TotalIterations: 0}
}

// Summary renders the trace's total iteration count with grouped
// digits, e.g. "25 iterations".
func (t ExecutionTrace) Summary() string {
	return tracePrinter.Sprintf("%d iterations", t.TotalIterations)
}

// BuildExecutionTrace inspects a procedure body's top-level statement
// shape and dispatches to the matching concrete trace generator. n is
// the default size used to unroll a simple or nested For loop;
// binarySearchN is the (typically larger) default used for the
// log(n)-shaped While loops: the two-pointer binary-search shape and
// the single-variable halving shape.
func BuildExecutionTrace(body *ast.Block, n, binarySearchN int) ExecutionTrace {
	var firstFor *ast.For
	var firstWhile *ast.While
	for _, s := range body.Stmts {
		switch v := s.(type) {
		case *ast.For:
			if firstFor == nil {
				firstFor = v
			}
			for _, inner := range v.Body.Stmts {
				if innerFor, ok := inner.(*ast.For); ok {
					return nestedLoopTrace(v, innerFor, n)
				}
			}
		case *ast.While:
			if firstWhile == nil {
				firstWhile = v
			}
		}
	}
	if firstWhile != nil {
		pat := detectWhilePattern(firstWhile.Cond, firstWhile.Body)
		switch pat.kind {
		case "binary_search":
			return binarySearchTrace(binarySearchN)
		case "halving":
			return halvingWhileTrace(pat.varName, pat.k, binarySearchN)
		}
	}
	if firstFor != nil {
		return simpleLoopTrace(firstFor, n)
	}
	return fallbackTrace()
}
