/*
SPDX-License-Identifier: Apache-2.0

Copyright 2024 The Taxinomia Authors
*/

package report

import (
	"strings"
	"testing"

	"github.com/google/complexitron/analysis"
)

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

func TestRenderProducesHTMLWithBoundsAndLines(t *testing.T) {
	result, err := analysis.AnalyzeFull(linearScanSource, analysis.DefaultOptions())
	if err != nil {
		t.Fatalf("AnalyzeFull: %v", err)
	}

	renderer, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var buf strings.Builder
	if err := renderer.Render(&buf, "find", result); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "find") {
		t.Errorf("expected output to mention the procedure name, got:\n%s", out)
	}
	if !strings.Contains(out, "O(n)") {
		t.Errorf("expected output to show the O(n) worst case, got:\n%s", out)
	}
}

func TestBuildViewModelProjectsIterativeLines(t *testing.T) {
	result, err := analysis.AnalyzeFull(linearScanSource, analysis.DefaultOptions())
	if err != nil {
		t.Fatalf("AnalyzeFull: %v", err)
	}
	vm := BuildViewModel("find", result)
	if len(vm.Procs) != 1 {
		t.Fatalf("expected 1 proc view, got %d", len(vm.Procs))
	}
	pv := vm.Procs[0]
	if pv.BigO != "n" {
		t.Errorf("expected BigO %q, got %q", "n", pv.BigO)
	}
	if len(pv.Lines) == 0 {
		t.Error("expected at least one line-cost row")
	}
}
