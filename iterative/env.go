/*
SPDX-License-Identifier: Apache-2.0

Copyright 2024 The Taxinomia Authors
*/

package iterative

import (
	"github.com/google/complexitron/ast"
	"github.com/google/complexitron/costir"
)

// binding records what a variable is known to hold after a top-level
// assignment, so a later nested loop's bound can be resolved symbolically
// (e.g. "m <- n" then "for j <- 1 to m do").
type binding struct {
	isSym bool
	sym   string
	num   float64
}

type env map[string]binding

func (e env) clone() env {
	out := make(env, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}

// recordAssign updates env after a top-level Assign to a bare Var,
// mirroring env_record_assign in the source this walk is grounded on:
// only simple Var<-Var or Var<-Num assignments are tracked; anything
// else clears the prior binding.
func (e env) recordAssign(a *ast.Assign) {
	v, ok := a.Target.(*ast.Var)
	if !ok {
		return
	}
	switch rhs := a.ExprV.(type) {
	case *ast.Var:
		e[v.Name] = binding{isSym: true, sym: rhs.Name}
	case *ast.Num:
		e[v.Name] = binding{num: rhs.Value}
	default:
		delete(e, v.Name)
	}
}

// astToLinear converts a simple ast.Expr — a number, a variable (or an
// env-resolved alias of one), or a +/- combination of those — into a
// costir.Expr. It reports ok=false for anything else (multiplication,
// division, function calls), which callers treat conservatively.
func astToLinear(e ast.Expr, en env) (costir.Expr, bool) {
	switch v := e.(type) {
	case *ast.Num:
		return costir.Int(int64(v.Value)), true
	case *ast.Var:
		if b, ok := en[v.Name]; ok {
			if b.isSym {
				return costir.Sym{Name: b.sym}, true
			}
			return costir.Int(int64(b.num)), true
		}
		return costir.Sym{Name: v.Name}, true
	case *ast.Bin:
		l, ok1 := astToLinear(v.Left, en)
		r, ok2 := astToLinear(v.Right, en)
		if !ok1 || !ok2 {
			return nil, false
		}
		switch v.Op {
		case ast.OpAdd:
			return costir.AddN(l, r), true
		case ast.OpSub:
			return costir.AddN(l, costir.Negate(r)), true
		}
		return nil, false
	case *ast.Unary:
		if v.Op == "-" {
			inner, ok := astToLinear(v.ExprV, en)
			if !ok {
				return nil, false
			}
			return costir.Negate(inner), true
		}
		return nil, false
	default:
		return nil, false
	}
}

// upperBoundSymbol reports the single symbol a for-loop bound is
// expressed in terms of, if any: a bare Var, or Var±const.
func upperBoundSymbol(e ast.Expr, en env) (string, bool) {
	switch v := e.(type) {
	case *ast.Var:
		if b, ok := en[v.Name]; ok && b.isSym {
			return b.sym, true
		}
		return v.Name, true
	case *ast.Bin:
		if v.Op == ast.OpAdd || v.Op == ast.OpSub {
			if name, ok := upperBoundSymbol(v.Left, en); ok {
				return name, true
			}
		}
	}
	return "", false
}
