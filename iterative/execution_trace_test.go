/*
SPDX-License-Identifier: Apache-2.0

Copyright 2024 The Taxinomia Authors
*/

package iterative

import (
	"testing"

	"github.com/google/complexitron/ast"
)

func TestBuildExecutionTraceHalvingWhileLogarithmic(t *testing.T) {
	// i<-n; while (i>1) do begin i<-i div 2 end
	body := &ast.Block{Stmts: []ast.Stmt{
		&ast.Assign{Target: &ast.Var{Name: "i"}, ExprV: numExpr(16)},
		&ast.While{
			Cond: &ast.Bin{Op: ast.OpGt, Left: &ast.Var{Name: "i"}, Right: numExpr(1)},
			Body: &ast.Block{Stmts: []ast.Stmt{
				&ast.Assign{
					Target: &ast.Var{Name: "i"},
					ExprV:  &ast.Bin{Op: ast.OpDivInt, Left: &ast.Var{Name: "i"}, Right: numExpr(2)},
				},
			}},
		},
	}}
	trace := BuildExecutionTrace(body, 5, 16)
	if trace.Kind != "halving_loop" {
		t.Fatalf("expected halving_loop kind, got %s", trace.Kind)
	}
	if trace.TotalIterations != 4 {
		t.Fatalf("expected 4 halvings of 16, got %d", trace.TotalIterations)
	}
}

func TestBuildExecutionTraceRespectsCustomN(t *testing.T) {
	body := &ast.Block{Stmts: []ast.Stmt{
		&ast.For{
			Var: "i", Start: numExpr(1), End: &ast.Var{Name: "n"}, Inclusive: true,
			Body: &ast.Block{Stmts: []ast.Stmt{
				&ast.Assign{Target: &ast.Var{Name: "x"}, ExprV: numExpr(1)},
			}},
		},
	}}
	trace := BuildExecutionTrace(body, 9, 16)
	if trace.TotalIterations != 9 {
		t.Fatalf("expected custom n=9 to drive total_iterations, got %d", trace.TotalIterations)
	}
}

func TestBuildExecutionTraceUnrecognizedWhileFallsBack(t *testing.T) {
	body := &ast.Block{Stmts: []ast.Stmt{
		&ast.While{
			Cond: &ast.Bin{Op: ast.OpGt, Left: &ast.Var{Name: "x"}, Right: &ast.Var{Name: "y"}},
			Body: &ast.Block{Stmts: []ast.Stmt{
				&ast.Assign{Target: &ast.Var{Name: "x"}, ExprV: &ast.Var{Name: "y"}},
			}},
		},
	}}
	trace := BuildExecutionTrace(body, 5, 16)
	if trace.Kind != "unknown" || trace.TotalIterations != 0 {
		t.Fatalf("expected fallback trace, got %+v", trace)
	}
}
