/*
SPDX-License-Identifier: Apache-2.0

Copyright 2024 The Taxinomia Authors
*/

package parser

import (
	"testing"

	"github.com/google/complexitron/ast"
)

func TestParseProcDeclWithSliceParam(t *testing.T) {
	src := `
find(arr[1..n], target)
begin
    for i <- 1 to n do
    begin
        if (arr[i] = target) then
            return i
    end
end
`
	prog, errs := Parse(src)
	if len(errs) > 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(prog.Body) != 1 {
		t.Fatalf("expected 1 top-level item, got %d", len(prog.Body))
	}
	proc, ok := prog.Body[0].(*ast.Proc)
	if !ok {
		t.Fatalf("expected *ast.Proc, got %T", prog.Body[0])
	}
	if proc.Name != "find" {
		t.Errorf("expected proc name 'find', got %q", proc.Name)
	}
	if len(proc.Params) != 2 {
		t.Fatalf("expected 2 params, got %d", len(proc.Params))
	}
	if !proc.Params[0].IsSlice {
		t.Error("expected arr to be a slice param")
	}
	if proc.Params[1].IsSlice {
		t.Error("expected target to be a scalar param")
	}
}

func TestParseWhileAndIfRequireParenthesizedConditions(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr bool
	}{
		{"while with parens", "while (n > 1) do\n  n <- n div 2\n", false},
		{"while without parens", "while n > 1 do\n  n <- n div 2\n", true},
		{"if with parens", "if (n > 1) then\n  n <- n - 1\n", false},
		{"if without parens", "if n > 1 then\n  n <- n - 1\n", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errs := Parse(tt.src)
			if tt.wantErr && len(errs) == 0 {
				t.Fatal("expected a parse error, got none")
			}
			if !tt.wantErr && len(errs) > 0 {
				t.Fatalf("unexpected errors: %v", errs)
			}
		})
	}
}

func TestParseForDoesNotRequireParenthesizedRange(t *testing.T) {
	_, errs := Parse("for i <- 1 to n do\n  i <- i\n")
	if len(errs) > 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestParseRepeatUntil(t *testing.T) {
	src := `
repeat
    n <- n div 2
until (n <= 1)
`
	prog, errs := Parse(src)
	if len(errs) > 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	stmt, ok := ast.UnwrapItem(prog.Body[0])
	if !ok {
		t.Fatalf("expected a wrapped top-level statement, got %T", prog.Body[0])
	}
	rep, ok := stmt.(*ast.Repeat)
	if !ok {
		t.Fatalf("expected *ast.Repeat, got %T", stmt)
	}
	if len(rep.Body) != 1 {
		t.Errorf("expected 1 statement in repeat body, got %d", len(rep.Body))
	}
}

func TestParseOperatorPrecedence(t *testing.T) {
	src := "x <- 1 + 2 * 3\n"
	prog, errs := Parse(src)
	if len(errs) > 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	stmt, ok := ast.UnwrapItem(prog.Body[0])
	if !ok {
		t.Fatalf("expected a wrapped top-level statement, got %T", prog.Body[0])
	}
	assign, ok := stmt.(*ast.Assign)
	if !ok {
		t.Fatalf("expected *ast.Assign, got %T", stmt)
	}
	bin, ok := assign.ExprV.(*ast.Bin)
	if !ok {
		t.Fatalf("expected *ast.Bin at top level, got %T", assign.ExprV)
	}
	if bin.Op != ast.OpAdd {
		t.Fatalf("expected '+' at the top (loosest precedence), got %v", bin.Op)
	}
	right, ok := bin.Right.(*ast.Bin)
	if !ok || right.Op != ast.OpMul {
		t.Fatalf("expected '*' nested on the right, got %+v", bin.Right)
	}
}

func TestParseReportsErrorOnUnterminatedParamList(t *testing.T) {
	_, errs := Parse("broken(\n")
	if len(errs) == 0 {
		t.Fatal("expected at least one parse error")
	}
}

func TestParseObjectDeclAndCallStatement(t *testing.T) {
	src := `
class Node
begin
    value, next
end

Node head
CALL process(head)
`
	prog, errs := Parse(src)
	if len(errs) > 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(prog.Body) != 3 {
		t.Fatalf("expected 3 top-level items, got %d", len(prog.Body))
	}
	declStmt, ok := ast.UnwrapItem(prog.Body[1])
	if !ok {
		t.Fatalf("expected a wrapped top-level statement, got %T", prog.Body[1])
	}
	decl, ok := declStmt.(*ast.ObjectDecl)
	if !ok {
		t.Fatalf("expected *ast.ObjectDecl, got %T", declStmt)
	}
	if decl.ClassName != "Node" || decl.VarName != "head" {
		t.Errorf("unexpected object decl: %+v", decl)
	}
	callStmt, ok := ast.UnwrapItem(prog.Body[2])
	if !ok {
		t.Fatalf("expected a wrapped top-level statement, got %T", prog.Body[2])
	}
	call, ok := callStmt.(*ast.Call)
	if !ok {
		t.Fatalf("expected *ast.Call, got %T", callStmt)
	}
	if call.Name != "process" || len(call.Args) != 1 {
		t.Errorf("unexpected call: %+v", call)
	}
}
