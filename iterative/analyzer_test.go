/*
SPDX-License-Identifier: Apache-2.0

Copyright 2024 The Taxinomia Authors
*/

package iterative

import (
	"testing"

	"github.com/google/complexitron/ast"
	"github.com/google/complexitron/costir"
	"github.com/google/complexitron/costmodel"
)

func numExpr(v float64) ast.Expr { return &ast.Num{Value: v} }

func TestAnalyzeBlockSimpleLoopIsLinear(t *testing.T) {
	body := &ast.Block{Stmts: []ast.Stmt{
		&ast.For{
			Var: "i", Start: numExpr(1), End: &ast.Var{Name: "n"}, Inclusive: true,
			Body: &ast.Block{Stmts: []ast.Stmt{
				&ast.Assign{Target: &ast.Var{Name: "x"}, ExprV: numExpr(1)},
			}},
		},
	}}
	result := AnalyzeBlock(body, costmodel.Default(), nil)
	if got := costir.BigOString(result.IRWorst); got != "n" {
		t.Fatalf("expected O(n), got %s", got)
	}
}

func TestAnalyzeBlockNestedLoopIsQuadratic(t *testing.T) {
	inner := &ast.For{
		Var: "j", Start: numExpr(1), End: &ast.Var{Name: "n"}, Inclusive: true,
		Body: &ast.Block{Stmts: []ast.Stmt{
			&ast.Assign{Target: &ast.Var{Name: "x"}, ExprV: numExpr(1)},
		}},
	}
	outer := &ast.For{
		Var: "i", Start: numExpr(1), End: &ast.Var{Name: "n"}, Inclusive: true,
		Body: &ast.Block{Stmts: []ast.Stmt{inner}},
	}
	body := &ast.Block{Stmts: []ast.Stmt{outer}}
	result := AnalyzeBlock(body, costmodel.Default(), nil)
	if got := costir.BigOString(result.IRWorst); got != "n^2" {
		t.Fatalf("expected O(n^2), got %s", got)
	}
}

func TestAnalyzeBlockHalvingWhileIsLogarithmic(t *testing.T) {
	body := &ast.Block{Stmts: []ast.Stmt{
		&ast.While{
			Cond: &ast.Bin{Op: ast.OpGt, Left: &ast.Var{Name: "n"}, Right: numExpr(1)},
			Body: &ast.Block{Stmts: []ast.Stmt{
				&ast.Assign{
					Target: &ast.Var{Name: "n"},
					ExprV:  &ast.Bin{Op: ast.OpDivInt, Left: &ast.Var{Name: "n"}, Right: numExpr(2)},
				},
			}},
		},
	}}
	result := AnalyzeBlock(body, costmodel.Default(), nil)
	if got := costir.BigOString(result.IRWorst); got != "log(n)" {
		t.Fatalf("expected O(log(n)), got %s", got)
	}
}

func TestAnalyzeBlockIfAverageIsArithmeticMean(t *testing.T) {
	body := &ast.Block{Stmts: []ast.Stmt{
		&ast.If{
			Cond: &ast.Bool{Value: true},
			Then: &ast.Block{Stmts: []ast.Stmt{
				&ast.Assign{Target: &ast.Var{Name: "x"}, ExprV: numExpr(1)},
				&ast.Assign{Target: &ast.Var{Name: "x"}, ExprV: numExpr(1)},
				&ast.Assign{Target: &ast.Var{Name: "x"}, ExprV: numExpr(1)},
			}},
		},
	}}
	result := AnalyzeBlock(body, costmodel.Default(), nil)
	// compare(1) + then(3)/2 = 1 + 1.5 = 5/2
	if got := result.IRAvg.String(); got != "5/2" {
		t.Fatalf("expected avg 5/2, got %s", got)
	}
}
