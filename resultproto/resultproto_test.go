/*
SPDX-License-Identifier: Apache-2.0

Copyright 2024 The Taxinomia Authors
*/

package resultproto

import (
	"strings"
	"testing"

	"github.com/google/complexitron/analysis"
	"github.com/google/complexitron/costir"
	"github.com/google/complexitron/iterative"
	"github.com/google/complexitron/recursive"
)

func TestMarshalUnmarshalIterativeProc(t *testing.T) {
	p := analysis.ProcResult{
		Name: "find",
		Iterative: &iterative.ProgramCost{
			BigO:  "n",
			BigOm: "1",
		},
	}

	text, err := MarshalText(p)
	if err != nil {
		t.Fatalf("MarshalText: %v", err)
	}
	if !strings.Contains(text, `name: "find"`) {
		t.Fatalf("expected textproto to contain the proc name, got:\n%s", text)
	}

	summary, err := UnmarshalText([]byte(text))
	if err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if summary.Name != "find" || summary.BigO != "n" || summary.BigOmega != "1" {
		t.Fatalf("unexpected round-trip: %+v", summary)
	}
	if summary.Method != "iterative" {
		t.Fatalf("expected default method %q, got %q", "iterative", summary.Method)
	}
}

func TestMarshalUnmarshalRecursiveProc(t *testing.T) {
	p := analysis.ProcResult{
		Name: "binarySearch",
		Recursive: &recursive.Result{
			ProcName:           "binarySearch",
			Method:             recursive.MethodMaster,
			BigO:               "log(n)",
			Theta:              "log(n)",
			RecurrenceEquation: "T(n) = T(n/2) + Θ(1)",
			Explanation:        "the leaves dominate",
			BestCase:           costir.One,
		},
	}

	text, err := MarshalText(p)
	if err != nil {
		t.Fatalf("MarshalText: %v", err)
	}

	summary, err := UnmarshalText([]byte(text))
	if err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if summary.Method != string(recursive.MethodMaster) {
		t.Fatalf("expected method %q, got %q", recursive.MethodMaster, summary.Method)
	}
	if summary.BigO != "log(n)" {
		t.Fatalf("expected BigO log(n), got %q", summary.BigO)
	}
	if summary.BigOmega != "1" {
		t.Fatalf("expected best case 1, got %q", summary.BigOmega)
	}
	if summary.Theta != "log(n)" {
		t.Fatalf("expected theta log(n), got %q", summary.Theta)
	}
	if summary.RecurrenceEquation != "T(n) = T(n/2) + Θ(1)" {
		t.Fatalf("expected recurrence equation round-trip, got %q", summary.RecurrenceEquation)
	}
}
