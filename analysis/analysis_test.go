/*
SPDX-License-Identifier: Apache-2.0

Copyright 2024 The Taxinomia Authors
*/

package analysis

import "testing"

const linearScanSource = `
find(arr[1..n], target)
begin
    for i <- 1 to n do
    begin
        if (arr[i] = target) then
            return i
    end
end
`

const fibSource = `
fib(n)
begin
    if (n <= 1) then
        return n
    else
        return fib(n - 1) + fib(n - 2)
end
`

func TestAnalyzeFullLinearScan(t *testing.T) {
	result, err := AnalyzeFull(linearScanSource, DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if len(result.Procs) != 1 {
		t.Fatalf("expected 1 proc, got %d", len(result.Procs))
	}
	p := result.Procs[0]
	if p.IsRecursive {
		t.Fatalf("find should not be classified recursive")
	}
	if p.Iterative == nil || p.Iterative.BigO != "n" {
		t.Fatalf("expected O(n), got %+v", p.Iterative)
	}
}

func TestAnalyzeFullFibonacci(t *testing.T) {
	result, err := AnalyzeFull(fibSource, DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	p := result.Procs[0]
	if !p.IsRecursive {
		t.Fatalf("fib should be classified recursive")
	}
	if p.Recursive == nil || p.Recursive.Method != "characteristic_equation" {
		t.Fatalf("expected characteristic equation method, got %+v", p.Recursive)
	}
}

func TestAnalyzeFullReportsParseErrors(t *testing.T) {
	_, err := AnalyzeFull("broken(\n", DefaultOptions())
	if err == nil {
		t.Fatal("expected a parse error")
	}
}
