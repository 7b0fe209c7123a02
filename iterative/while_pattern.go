/*
SPDX-License-Identifier: Apache-2.0

Copyright 2024 The Taxinomia Authors
*/

package iterative

import "github.com/google/complexitron/ast"

// condVar extracts the governing variable name from a simple relational
// condition var OP const/sym, checking either operand position.
func condVar(cond ast.Expr) (string, bool) {
	b, ok := cond.(*ast.Bin)
	if !ok {
		return "", false
	}
	switch b.Op {
	case ast.OpGt, ast.OpGe, ast.OpLt, ast.OpLe, ast.OpNe, ast.OpEq:
	default:
		return "", false
	}
	if v, ok := b.Left.(*ast.Var); ok {
		return v.Name, true
	}
	if v, ok := b.Right.(*ast.Var); ok {
		return v.Name, true
	}
	return "", false
}

// findAssignConst locates a top-level "name <- name OP const"
// assignment to varName inside body, returning the constant operand.
func findAssignConst(body *ast.Block, varName string, ops ...ast.BinOp) (int64, bool) {
	for _, s := range body.Stmts {
		a, ok := s.(*ast.Assign)
		if !ok {
			continue
		}
		target, ok := a.Target.(*ast.Var)
		if !ok || target.Name != varName {
			continue
		}
		bin, ok := a.ExprV.(*ast.Bin)
		if !ok {
			continue
		}
		matches := false
		for _, op := range ops {
			if bin.Op == op {
				matches = true
			}
		}
		if !matches {
			continue
		}
		lv, ok := bin.Left.(*ast.Var)
		if !ok || lv.Name != varName {
			continue
		}
		num, ok := bin.Right.(*ast.Num)
		if !ok {
			continue
		}
		return int64(num.Value), true
	}
	return 0, false
}

// whilePattern classifies a recognizable while-loop shape.
type whilePattern struct {
	kind    string // "halving", "decrement", "binary_search", "unknown"
	varName string
	k       int64
}

// detectWhilePattern mirrors the dominant heuristics of
// patterns_while.py, kept to the handful of shapes actually named:
// halving (var <- var/k, var div k, floor(var/k)),
// linear step (var <- var - c, or var <- var + c, both classified as
// "decrement"), and the halving-on-two-pointers
// binary-search shape. Anything else is reported "unknown" and the
// caller falls back to a conservative Sym trip count.
func detectWhilePattern(cond ast.Expr, body *ast.Block) whilePattern {
	if sizeVar, ok := detectBinarySearch(cond, body); ok {
		return whilePattern{kind: "binary_search", varName: sizeVar}
	}
	gv, ok := condVar(cond)
	if !ok {
		return whilePattern{kind: "unknown"}
	}
	if k, ok := findAssignConst(body, gv, ast.OpDiv, ast.OpDivInt); ok && k >= 2 {
		return whilePattern{kind: "halving", varName: gv, k: k}
	}
	if k, ok := findAssignConst(body, gv, ast.OpSub); ok && k >= 1 {
		return whilePattern{kind: "decrement", varName: gv, k: k}
	}
	if k, ok := findAssignConst(body, gv, ast.OpAdd); ok && k >= 1 {
		return whilePattern{kind: "decrement", varName: gv, k: k}
	}
	return whilePattern{kind: "unknown", varName: gv}
}

// detectBinarySearch recognizes the two-pointer halving shape: a
// condition over two distinct variables l, r, a midpoint assignment
// mid <- (l+r) div 2 (either operand order), and at least two
// assignments that move l or r to (a function of) mid inside the body
// — the signature of binary search over a symbolic range.
func detectBinarySearch(cond ast.Expr, body *ast.Block) (string, bool) {
	b, ok := cond.(*ast.Bin)
	if !ok {
		return "", false
	}
	switch b.Op {
	case ast.OpLt, ast.OpLe, ast.OpGt, ast.OpGe:
	default:
		return "", false
	}
	lv, ok1 := b.Left.(*ast.Var)
	rv, ok2 := b.Right.(*ast.Var)
	if !ok1 || !ok2 {
		return "", false
	}
	mid, ok := findMidpointVar(body, lv.Name, rv.Name)
	if !ok {
		return "", false
	}
	if countPointerUpdates(body.Stmts, lv.Name, rv.Name, mid) < 2 {
		return "", false
	}
	return lv.Name, true
}

func findMidpointVar(body *ast.Block, l, r string) (string, bool) {
	for _, s := range body.Stmts {
		a, ok := s.(*ast.Assign)
		if !ok {
			continue
		}
		target, ok := a.Target.(*ast.Var)
		if !ok {
			continue
		}
		bin, ok := a.ExprV.(*ast.Bin)
		if !ok || bin.Op != ast.OpDivInt {
			continue
		}
		sum, ok := bin.Left.(*ast.Bin)
		if !ok || sum.Op != ast.OpAdd {
			continue
		}
		names := map[string]bool{}
		if v, ok := sum.Left.(*ast.Var); ok {
			names[v.Name] = true
		}
		if v, ok := sum.Right.(*ast.Var); ok {
			names[v.Name] = true
		}
		if names[l] && names[r] {
			return target.Name, true
		}
	}
	return "", false
}

// countPointerUpdates recursively counts assignments that set l or r
// to mid (optionally +/- a constant), descending into if-branches.
func countPointerUpdates(stmts []ast.Stmt, l, r, mid string) int {
	count := 0
	for _, s := range stmts {
		switch v := s.(type) {
		case *ast.Assign:
			target, ok := v.Target.(*ast.Var)
			if !ok || (target.Name != l && target.Name != r) {
				continue
			}
			if isMidBased(v.ExprV, mid) {
				count++
			}
		case *ast.If:
			count += countPointerUpdates(v.Then.Stmts, l, r, mid)
			if v.Else != nil {
				count += countPointerUpdates(v.Else.Stmts, l, r, mid)
			}
		case *ast.Block:
			count += countPointerUpdates(v.Stmts, l, r, mid)
		}
	}
	return count
}

func isMidBased(e ast.Expr, mid string) bool {
	switch v := e.(type) {
	case *ast.Var:
		return v.Name == mid
	case *ast.Bin:
		if v.Op == ast.OpAdd || v.Op == ast.OpSub {
			if mv, ok := v.Left.(*ast.Var); ok && mv.Name == mid {
				return true
			}
		}
	}
	return false
}
