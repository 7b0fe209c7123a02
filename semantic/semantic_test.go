/*
SPDX-License-Identifier: Apache-2.0

Copyright 2024 The Taxinomia Authors
*/

package semantic

import (
	"testing"

	"github.com/google/complexitron/ast"
)

func hasIssueWhere(issues []Issue, where string) bool {
	for _, i := range issues {
		if i.Where == where {
			return true
		}
	}
	return false
}

func TestRunDefaultsMissingForStep(t *testing.T) {
	f := &ast.For{
		Var:   "i",
		Start: &ast.Num{Value: 1},
		End:   &ast.Var{Name: "n"},
		Body:  &ast.Block{},
	}
	prog := &ast.Program{Body: []ast.Item{ast.AsItem(f)}}

	out, issues := Run(prog)
	if len(issues) != 0 {
		t.Fatalf("expected no issues, got %+v", issues)
	}
	stmt, _ := ast.UnwrapItem(out.Body[0])
	got := stmt.(*ast.For)
	if got.Step == nil {
		t.Fatal("expected Step to be defaulted")
	}
	n, ok := got.Step.(*ast.Num)
	if !ok || n.Value != 1 {
		t.Errorf("expected Step = Num(1), got %+v", got.Step)
	}
}

func TestRunFlagsZeroStepAsError(t *testing.T) {
	f := &ast.For{
		Var:   "i",
		Start: &ast.Num{Value: 1},
		End:   &ast.Var{Name: "n"},
		Step:  &ast.Num{Value: 0},
		Body:  &ast.Block{},
	}
	prog := &ast.Program{Body: []ast.Item{ast.AsItem(f)}}

	_, issues := Run(prog)
	if !hasIssueWhere(issues, "for") {
		t.Fatalf("expected a 'for' issue, got %+v", issues)
	}
	if issues[0].Severity != "error" {
		t.Errorf("expected severity 'error', got %q", issues[0].Severity)
	}
}

func TestRunFlagsNonBooleanWhileCondition(t *testing.T) {
	w := &ast.While{
		Cond: &ast.Var{Name: "n"}, // arithmetic-looking, not a comparison
		Body: &ast.Block{},
	}
	prog := &ast.Program{Body: []ast.Item{ast.AsItem(w)}}

	_, issues := Run(prog)
	if !hasIssueWhere(issues, "while") {
		t.Fatalf("expected a 'while' issue, got %+v", issues)
	}
}

func TestRunAcceptsComparisonConditionsSilently(t *testing.T) {
	w := &ast.While{
		Cond: &ast.Bin{Op: ast.OpGt, Left: &ast.Var{Name: "n"}, Right: &ast.Num{Value: 1}},
		Body: &ast.Block{},
	}
	prog := &ast.Program{Body: []ast.Item{ast.AsItem(w)}}

	_, issues := Run(prog)
	if hasIssueWhere(issues, "while") {
		t.Fatalf("did not expect a 'while' issue for a relational condition, got %+v", issues)
	}
}

func TestRunFlagsEmptyThenBranch(t *testing.T) {
	i := &ast.If{
		Cond: &ast.Bin{Op: ast.OpEq, Left: &ast.Var{Name: "x"}, Right: &ast.Num{Value: 1}},
		Then: &ast.Block{},
	}
	prog := &ast.Program{Body: []ast.Item{ast.AsItem(i)}}

	_, issues := Run(prog)
	if !hasIssueWhere(issues, "if") {
		t.Fatalf("expected an 'if' issue for the empty then-branch, got %+v", issues)
	}
}

func TestRunRecursesIntoProcBodies(t *testing.T) {
	proc := &ast.Proc{
		Name: "loopy",
		Body: &ast.Block{Stmts: []ast.Stmt{
			&ast.For{Var: "i", Start: &ast.Num{Value: 1}, End: &ast.Var{Name: "n"}, Body: &ast.Block{}},
		}},
	}
	prog := &ast.Program{Body: []ast.Item{proc}}

	out, issues := Run(prog)
	if len(issues) != 0 {
		t.Fatalf("expected no issues, got %+v", issues)
	}
	gotProc := out.Body[0].(*ast.Proc)
	gotFor := gotProc.Body.Stmts[0].(*ast.For)
	if gotFor.Step == nil {
		t.Fatal("expected the nested for loop's Step to be defaulted")
	}
}
