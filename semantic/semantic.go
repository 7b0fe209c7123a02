/*
SPDX-License-Identifier: Apache-2.0

Copyright 2024 The Taxinomia Authors
*/

// Package semantic runs the single normalization pass between parsing
// and cost analysis: filling defaults (For.step), flagging suspicious
// but not malformed constructs, and nothing else. It never rejects a
// well-formed AST.
package semantic

import "github.com/google/complexitron/ast"

// Issue is a non-fatal observation surfaced to the caller; analysis
// continues regardless of Severity.
type Issue struct {
	Severity string // "warning" or "error"
	Message  string
	Where    string
}

// Run normalizes a copy of prog, leaving prog itself unchanged, and
// returns the copy alongside any issues collected along the way.
// The only mutation performed is defaulting For.Step to Num(1); every
// other field is left exactly as the parser produced it.
func Run(prog *ast.Program) (*ast.Program, []Issue) {
	var issues []Issue
	out := &ast.Program{Body: make([]ast.Item, len(prog.Body))}
	for i, item := range prog.Body {
		switch v := item.(type) {
		case *ast.Proc:
			np := *v
			np.Body = visitBlock(v.Body, &issues)
			out.Body[i] = &np
		default:
			if s, ok := ast.UnwrapItem(item); ok {
				out.Body[i] = ast.AsItem(visitStmt(s, &issues))
				continue
			}
			out.Body[i] = item
		}
	}
	return out, issues
}

func visitBlock(b *ast.Block, issues *[]Issue) *ast.Block {
	if b == nil {
		return nil
	}
	nb := &ast.Block{L: b.L, Stmts: make([]ast.Stmt, len(b.Stmts))}
	for i, s := range b.Stmts {
		nb.Stmts[i] = visitStmt(s, issues)
	}
	return nb
}

func visitStmt(s ast.Stmt, issues *[]Issue) ast.Stmt {
	switch v := s.(type) {
	case *ast.For:
		nf := *v
		if nf.Step == nil {
			nf.Step = &ast.Num{Value: 1}
		} else if n, ok := nf.Step.(*ast.Num); ok && n.Value == 0 {
			*issues = append(*issues, Issue{
				Severity: "error",
				Message:  "for loop step is zero; trip count is undefined",
				Where:    "for",
			})
		}
		nf.Body = visitBlock(v.Body, issues)
		return &nf
	case *ast.While:
		nw := *v
		if !looksBoolean(v.Cond) {
			*issues = append(*issues, Issue{
				Severity: "warning",
				Message:  "while condition does not look boolean-typed at surface level",
				Where:    "while",
			})
		}
		nw.Body = visitBlock(v.Body, issues)
		return &nw
	case *ast.If:
		ni := *v
		if !looksBoolean(v.Cond) {
			*issues = append(*issues, Issue{
				Severity: "warning",
				Message:  "if condition does not look boolean-typed at surface level",
				Where:    "if",
			})
		}
		ni.Then = visitBlock(v.Then, issues)
		if v.Else != nil {
			ni.Else = visitBlock(v.Else, issues)
		}
		if len(ni.Then.Stmts) == 0 {
			*issues = append(*issues, Issue{
				Severity: "warning",
				Message:  "if has an empty then-branch",
				Where:    "if",
			})
		}
		return &ni
	case *ast.Repeat:
		nr := *v
		if !looksBoolean(v.Until) {
			*issues = append(*issues, Issue{
				Severity: "warning",
				Message:  "repeat until-condition does not look boolean-typed at surface level",
				Where:    "repeat",
			})
		}
		nr.Body = make([]ast.Stmt, len(v.Body))
		for i, st := range v.Body {
			nr.Body[i] = visitStmt(st, issues)
		}
		return &nr
	case *ast.Block:
		return visitBlock(v, issues)
	default:
		return s
	}
}

// looksBoolean is a conservative surface-level heuristic: it accepts
// boolean literals, "not" applications, relational comparisons, and
// and/or combinations in which at least one operand looks boolean; anything else
// (bare variables, arithmetic) is flagged.
func looksBoolean(e ast.Expr) bool {
	switch v := e.(type) {
	case *ast.Bool:
		return true
	case *ast.Unary:
		if v.Op == "not" {
			return looksBoolean(v.ExprV)
		}
		return false
	case *ast.Bin:
		switch v.Op {
		case ast.OpEq, ast.OpNe, ast.OpLt, ast.OpLe, ast.OpGt, ast.OpGe:
			return true
		case ast.OpAnd, ast.OpOr:
			return looksBoolean(v.Left) || looksBoolean(v.Right)
		}
	}
	return false
}
