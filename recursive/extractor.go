/*
SPDX-License-Identifier: Apache-2.0

Copyright 2024 The Taxinomia Authors
*/

// Package recursive analyzes self-recursive procedures: it extracts
// the recurrence relation a call site implies, solves it via the
// Master Theorem or a characteristic-equation fallback, and falls
// back further to iteration-unrolling prose or a recursion-tree
// estimate when neither solver applies.
package recursive

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/complexitron/ast"
	"github.com/google/complexitron/costir"
	"github.com/google/complexitron/iterative"
)

// CallShape classifies one self-recursive call site's argument shape
// relative to the enclosing procedure's size parameter.
type CallShape struct {
	Kind string // "divide" (n/B), "subtract" (n-C), "unknown"
	B    int64
	C    int64
}

// Recurrence is the extracted shape of a self-recursive procedure:
// how many self-calls it makes per invocation, what each call's
// argument reduction looks like, and the symbolic cost of everything
// in the body that isn't itself a recursive call — the f(n) term of
// T(n) = a*T(shape) + f(n).
type Recurrence struct {
	ProcName         string
	Param            string
	Calls            []CallShape
	NonRecursiveCost costir.Expr
}

// Extract walks proc's body and builds its Recurrence, reporting
// ok=false if proc contains no self-recursive call at all.
//
// The size symbol is not always the first declared parameter: a
// divide-and-conquer procedure over an array commonly threads its
// size through a pair of inclusive bounds (lo, hi) instead, recording
// the split point in a local midpoint variable (e.g. m <- (lo+hi) div
// 2) rather than passing a literal "n/2" argument. detectRangeHalving
// recognizes that shape across any pair of the procedure's
// parameters, so MergeSort(A, lo, hi) classifies its two self-calls
// as a divide-by-2 recurrence the same way a single scalar parameter
// n would.
func Extract(proc *ast.Proc) (*Recurrence, bool) {
	param := ""
	if len(proc.Params) > 0 {
		param = proc.Params[0].Name
	}
	rng, hasRange := detectRangeHalving(proc)
	if hasRange {
		param = rng.lo + ".." + rng.hi
	}
	r := &Recurrence{ProcName: proc.Name, Param: param}
	shape := func(args []ast.Expr) CallShape {
		if hasRange {
			return classifyRangeShape(args, proc.Params, rng)
		}
		if len(args) == 0 {
			return CallShape{Kind: "unknown"}
		}
		return classifyShape(args[0], param)
	}
	cost := walkNonRecursive(proc.Body.Stmts, proc.Name, shape, rng, hasRange)
	r.NonRecursiveCost = cost
	collectAllCalls(proc.Body.Stmts, proc.Name, shape, r)
	return r, len(r.Calls) > 0
}

// walkNonRecursive sums the K(1)-per-statement glue cost of a
// procedure body, worst-casing If branches via Max. A bare
// self-recursive Call statement contributes no glue cost of its own:
// its cost is entirely represented by the extracted Recurrence, per
// the self-calls-as-K(0) cost-walk this extraction is grounded on. A
// call to a *different* helper procedure that spans the same [lo, hi]
// range the enclosing recursion splits (e.g. CALL Merge(A, lo, m, hi))
// is charged a linear cost in that range rather than the flat K(1)
// glue cost an ordinary helper call gets, matching the "Merge is
// linear" contract a merge-sort-shaped recurrence depends on for its
// Theta(n) term.
func walkNonRecursive(stmts []ast.Stmt, procName string, shape func([]ast.Expr) CallShape, rng rangeShape, hasRange bool) costir.Expr {
	var total costir.Expr = costir.Zero
	for _, s := range stmts {
		switch v := s.(type) {
		case *ast.Assign:
			total = costir.AddN(total, costir.One)
		case *ast.Return:
			if call, ok := v.ExprV.(*ast.Call); ok && call.Name == procName {
				continue
			}
			total = costir.AddN(total, costir.One)
		case *ast.Call:
			if v.Name == procName {
				continue
			}
			if hasRange && callSpansRange(v, rng) {
				total = costir.AddN(total, costir.N)
				continue
			}
			total = costir.AddN(total, costir.One)
		case *ast.ExprStmt:
			// carries no cost.
		case *ast.If:
			cmp := costir.One
			thenCost := walkNonRecursive(v.Then.Stmts, procName, shape, rng, hasRange)
			var elseCost costir.Expr = costir.Zero
			if v.Else != nil {
				elseCost = walkNonRecursive(v.Else.Stmts, procName, shape, rng, hasRange)
			}
			total = costir.AddN(total, cmp, costir.Max{Alts: []costir.Expr{thenCost, elseCost}})
		case *ast.Block:
			total = costir.AddN(total, walkNonRecursive(v.Stmts, procName, shape, rng, hasRange))
		case *ast.For:
			bodyCost := walkNonRecursive(v.Body.Stmts, procName, shape, rng, hasRange)
			total = costir.AddN(total, costir.MulN(iterative.ForTripCount(v), bodyCost))
		case *ast.While, *ast.Repeat:
			total = costir.AddN(total, costir.N)
		}
	}
	return total
}

// collectAllCalls walks stmts a second time purely to record every
// self-recursive call site's classified shape onto r, independent of
// the glue-cost walk above.
func collectAllCalls(stmts []ast.Stmt, procName string, shape func([]ast.Expr) CallShape, r *Recurrence) {
	for _, s := range stmts {
		switch v := s.(type) {
		case *ast.Assign:
			collectCalls(v.ExprV, procName, shape, r)
		case *ast.Return:
			if v.ExprV != nil {
				collectCalls(v.ExprV, procName, shape, r)
			}
		case *ast.Call:
			if v.Name == procName {
				r.Calls = append(r.Calls, shape(v.Args))
				continue
			}
			for _, a := range v.Args {
				collectCalls(a, procName, shape, r)
			}
		case *ast.ExprStmt:
			collectCalls(v.ExprV, procName, shape, r)
		case *ast.If:
			collectAllCalls(v.Then.Stmts, procName, shape, r)
			if v.Else != nil {
				collectAllCalls(v.Else.Stmts, procName, shape, r)
			}
		case *ast.Block:
			collectAllCalls(v.Stmts, procName, shape, r)
		case *ast.For:
			collectAllCalls(v.Body.Stmts, procName, shape, r)
		case *ast.While:
			collectAllCalls(v.Body.Stmts, procName, shape, r)
		case *ast.Repeat:
			collectAllCalls(v.Body, procName, shape, r)
		}
	}
}

// collectCalls finds every Call to procName nested anywhere inside e
// and records its argument shape.
func collectCalls(e ast.Expr, procName string, shape func([]ast.Expr) CallShape, r *Recurrence) {
	switch v := e.(type) {
	case *ast.Call:
		if v.Name == procName {
			r.Calls = append(r.Calls, shape(v.Args))
			return
		}
		for _, a := range v.Args {
			collectCalls(a, procName, shape, r)
		}
	case *ast.Bin:
		collectCalls(v.Left, procName, shape, r)
		collectCalls(v.Right, procName, shape, r)
	case *ast.Unary:
		collectCalls(v.ExprV, procName, shape, r)
	case *ast.Ceil:
		collectCalls(v.ExprV, procName, shape, r)
	case *ast.Floor:
		collectCalls(v.ExprV, procName, shape, r)
	}
}

// classifyShape reads a call argument such as "n/2", "n div 2", or
// "n-1" and reports whether it divides or subtracts from param.
func classifyShape(arg ast.Expr, param string) CallShape {
	bin, ok := arg.(*ast.Bin)
	if !ok {
		return CallShape{Kind: "unknown"}
	}
	left, ok := bin.Left.(*ast.Var)
	if !ok || left.Name != param {
		return CallShape{Kind: "unknown"}
	}
	num, ok := bin.Right.(*ast.Num)
	if !ok {
		return CallShape{Kind: "unknown"}
	}
	switch bin.Op {
	case ast.OpDiv, ast.OpDivInt:
		return CallShape{Kind: "divide", B: int64(num.Value)}
	case ast.OpSub:
		return CallShape{Kind: "subtract", C: int64(num.Value)}
	}
	return CallShape{Kind: "unknown"}
}

// rangeShape is the slice-bounds/midpoint size-symbol shape: a pair of
// procedure parameters acting as inclusive bounds [lo, hi], and the
// name of the local variable holding their midpoint.
type rangeShape struct {
	lo, hi, mid string
}

// detectRangeHalving looks for the slice-bounds/midpoint recursion
// shape divide-and-conquer procedures over an array use: two
// parameters acting as inclusive bounds [lo, hi] and a local midpoint
// m <- (lo+hi) div 2 (either operand order, div or / form)
// assigned somewhere in the body — the same structural signature
// iterative/while_pattern.go's detectBinarySearch uses for the
// two-pointer search shape, adapted here to a pair of procedure
// parameters instead of loop-local variables.
func detectRangeHalving(proc *ast.Proc) (rangeShape, bool) {
	for i := 0; i < len(proc.Params); i++ {
		for j := i + 1; j < len(proc.Params); j++ {
			p, q := proc.Params[i].Name, proc.Params[j].Name
			if mid, ok := findMidpointAssign(proc.Body.Stmts, p, q); ok {
				return rangeShape{lo: p, hi: q, mid: mid}, true
			}
		}
	}
	return rangeShape{}, false
}

// findMidpointAssign searches stmts (descending into If/For/While/
// Block bodies) for an assignment "m <- (p+q) div 2" naming exactly p
// and q, in either order, and returns m's name.
func findMidpointAssign(stmts []ast.Stmt, p, q string) (string, bool) {
	for _, s := range stmts {
		switch v := s.(type) {
		case *ast.Assign:
			target, ok := v.Target.(*ast.Var)
			if !ok {
				continue
			}
			bin, ok := v.ExprV.(*ast.Bin)
			if !ok || (bin.Op != ast.OpDivInt && bin.Op != ast.OpDiv) {
				continue
			}
			sum, ok := bin.Left.(*ast.Bin)
			if !ok || sum.Op != ast.OpAdd {
				continue
			}
			names := map[string]bool{}
			if v2, ok := sum.Left.(*ast.Var); ok {
				names[v2.Name] = true
			}
			if v2, ok := sum.Right.(*ast.Var); ok {
				names[v2.Name] = true
			}
			if names[p] && names[q] {
				return target.Name, true
			}
		case *ast.If:
			if m, ok := findMidpointAssign(v.Then.Stmts, p, q); ok {
				return m, true
			}
			if v.Else != nil {
				if m, ok := findMidpointAssign(v.Else.Stmts, p, q); ok {
					return m, true
				}
			}
		case *ast.Block:
			if m, ok := findMidpointAssign(v.Stmts, p, q); ok {
				return m, true
			}
		case *ast.For:
			if m, ok := findMidpointAssign(v.Body.Stmts, p, q); ok {
				return m, true
			}
		case *ast.While:
			if m, ok := findMidpointAssign(v.Body.Stmts, p, q); ok {
				return m, true
			}
		}
	}
	return "", false
}

// classifyRangeShape classifies a self-call's argument list against
// the detected [lo, hi]/mid shape: a call keeping lo fixed and moving
// hi to mid (or mid-1) covers the left half, and a call moving lo to
// mid (or mid+1) while keeping hi fixed covers the right half. Either
// half is a divide-by-2 step.
func classifyRangeShape(args []ast.Expr, params []ast.Param, rng rangeShape) CallShape {
	idxLo, idxHi := -1, -1
	for i, p := range params {
		if p.Name == rng.lo {
			idxLo = i
		}
		if p.Name == rng.hi {
			idxHi = i
		}
	}
	if idxLo < 0 || idxHi < 0 || idxLo >= len(args) || idxHi >= len(args) {
		return CallShape{Kind: "unknown"}
	}
	loArg, hiArg := args[idxLo], args[idxHi]
	if isVarNamed(loArg, rng.lo) && isMidOrMidMinus(hiArg, rng.mid) {
		return CallShape{Kind: "divide", B: 2}
	}
	if isMidOrMidPlus(loArg, rng.mid) && isVarNamed(hiArg, rng.hi) {
		return CallShape{Kind: "divide", B: 2}
	}
	return CallShape{Kind: "unknown"}
}

// callSpansRange reports whether call passes both of rng's bound
// parameters (lo and hi) as arguments, the signature of a helper that
// processes the whole current range rather than a constant-size slice
// of it.
func callSpansRange(call *ast.Call, rng rangeShape) bool {
	sawLo, sawHi := false, false
	for _, a := range call.Args {
		if isVarNamed(a, rng.lo) {
			sawLo = true
		}
		if isVarNamed(a, rng.hi) {
			sawHi = true
		}
	}
	return sawLo && sawHi
}

func isVarNamed(e ast.Expr, name string) bool {
	v, ok := e.(*ast.Var)
	return ok && v.Name == name
}

func isMidOrMidMinus(e ast.Expr, mid string) bool {
	if isVarNamed(e, mid) {
		return true
	}
	b, ok := e.(*ast.Bin)
	return ok && b.Op == ast.OpSub && isVarNamed(b.Left, mid)
}

func isMidOrMidPlus(e ast.Expr, mid string) bool {
	if isVarNamed(e, mid) {
		return true
	}
	b, ok := e.(*ast.Bin)
	return ok && b.Op == ast.OpAdd && isVarNamed(b.Left, mid)
}

// recurrenceEquationString renders r as a human-readable recurrence
// such as "T(n) = 2T(n/2) + Θ(n)" or "T(n) = T(n-1) + T(n-2) + Θ(1)".
func recurrenceEquationString(r *Recurrence) string {
	if len(r.Calls) == 0 {
		return ""
	}
	theta := costir.BigOString(r.NonRecursiveCost)
	switch r.Calls[0].Kind {
	case "divide":
		b := r.Calls[0].B
		a := len(r.Calls)
		return fmt.Sprintf("T(n) = %dT(n/%d) + Θ(%s)", a, b, theta)
	case "subtract":
		shifts := map[int64]int{}
		for _, c := range r.Calls {
			shifts[c.C]++
		}
		cs := make([]int64, 0, len(shifts))
		for c := range shifts {
			cs = append(cs, c)
		}
		sort.Slice(cs, func(i, j int) bool { return cs[i] < cs[j] })
		terms := make([]string, 0, len(r.Calls))
		for _, c := range cs {
			for i := 0; i < shifts[c]; i++ {
				terms = append(terms, fmt.Sprintf("T(n-%d)", c))
			}
		}
		return fmt.Sprintf("T(n) = %s + Θ(%s)", strings.Join(terms, " + "), theta)
	}
	return ""
}
