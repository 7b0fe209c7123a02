/*
SPDX-License-Identifier: Apache-2.0

Copyright 2024 The Taxinomia Authors
*/

package summation

import (
	"testing"

	"github.com/google/complexitron/costir"
)

func TestBuildRendersPolynomialAndBigO(t *testing.T) {
	// n^2 + n, the cost shape a nested loop plus a linear pass produces.
	e := costir.AddN(
		costir.Pow{Base: costir.Sym{Name: "n"}, Exp: costir.Int(2)},
		costir.Sym{Name: "n"},
	)
	b := Build(e)
	if b.BigO != "n^2" {
		t.Errorf("expected BigO %q, got %q", "n^2", b.BigO)
	}
	if b.Polynomial == nil {
		t.Fatal("expected a polynomial closed form")
	}
	if b.Raw.Text == "" {
		t.Error("expected a non-empty raw text rendering")
	}
}

func TestBuildLeadingCoefficientOmittedForUnitCoefficient(t *testing.T) {
	e := costir.Sym{Name: "n"}
	b := Build(e)
	if b.LeadingCoefficient != "" {
		t.Errorf("expected no leading coefficient for a bare n, got %q", b.LeadingCoefficient)
	}
}

func TestBuildLeadingCoefficientGroupsLargeConstants(t *testing.T) {
	e := costir.MulN(costir.Int(1024), costir.Sym{Name: "n"})
	b := Build(e)
	if b.LeadingCoefficient != "1,024" {
		t.Errorf("expected grouped leading coefficient %q, got %q", "1,024", b.LeadingCoefficient)
	}
}

func TestToLaTeXRendersLogAndMax(t *testing.T) {
	logExpr := costir.LogN(2, costir.Sym{Name: "n"})
	if got := toLaTeX(logExpr); got != `\log(n)` {
		t.Errorf("expected %q, got %q", `\log(n)`, got)
	}

	maxExpr := costir.Max{Alts: []costir.Expr{costir.Int(1), costir.Sym{Name: "n"}}}
	if got := toLaTeX(maxExpr); got != `\max(1, n)` {
		t.Errorf("expected %q, got %q", `\max(1, n)`, got)
	}
}
