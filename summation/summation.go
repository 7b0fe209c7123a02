/*
SPDX-License-Identifier: Apache-2.0

Copyright 2024 The Taxinomia Authors
*/

// Package summation renders a walked cost-IR expression as the closed
// forms a learner expects to see next to a loop: the raw symbolic
// formula with its LaTeX rendering, and (where recognizable) its
// polynomial closed form.
package summation

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/google/complexitron/costir"
)

// printer formats leading coefficients with locale-stable grouping
// (e.g. "1,024" rather than "1024") so a large constant factor reads
// cleanly next to a polynomial's degree term.
var printer = message.NewPrinter(language.English)

// Rendering is the {latex,text} pair attached to a worst/best/avg
// bound.
type Rendering struct {
	Text  string
	LaTeX string
}

// Bound bundles the three renderings analysis.AnalysisResult exposes
// per line or per program, plus the supplemented simplified/polynomial
// intermediates. Build sets Simplified to the same rendering as Raw; it
// applies no simplification beyond the polynomial closed form.
type Bound struct {
	Raw        Rendering
	Simplified Rendering
	Polynomial *string
	BigO       string
	// LeadingCoefficient is the dominant term's coefficient, rendered
	// with thousands separators; empty when e has no polynomial shape
	// or its leading coefficient is 1.
	LeadingCoefficient string
}

// Build renders e into a Bound, computing a polynomial closed form
// when e reduces to one.
func Build(e costir.Expr) Bound {
	raw := Rendering{Text: e.String(), LaTeX: toLaTeX(e)}
	simplified := raw
	var poly *string
	var leading string
	if p, ok := costir.AsPolynomial(e); ok {
		f := p.Formula
		poly = &f
		if len(p.Coeffs) > 0 {
			leading = formatCoefficient(p.Coeffs[0])
		}
	}
	return Bound{Raw: raw, Simplified: simplified, Polynomial: poly, BigO: costir.BigOString(e), LeadingCoefficient: leading}
}

// formatCoefficient renders a rational coefficient with grouped
// integer digits, skipping the common and visually noisy case of a
// bare 1 or 0 coefficient.
func formatCoefficient(k costir.K) string {
	if k.Num == 0 || (k.Num == 1 && k.Den == 1) {
		return ""
	}
	if k.Den == 1 {
		return printer.Sprintf("%d", k.Num)
	}
	return printer.Sprintf("%d/%d", k.Num, k.Den)
}

// toLaTeX renders the common IR shapes in LaTeX; any node this
// function doesn't recognize falls back to its plain String form,
// which is still valid LaTeX for sums of named symbols and integers.
func toLaTeX(e costir.Expr) string {
	switch v := e.(type) {
	case costir.K:
		return v.String()
	case costir.Sym:
		return v.Name
	case costir.Sum:
		out := ""
		for i, t := range v.Terms {
			if i > 0 {
				out += " + "
			}
			out += toLaTeX(t)
		}
		return out
	case costir.Prod:
		out := ""
		for i, f := range v.Factors {
			if i > 0 {
				out += " \\cdot "
			}
			out += toLaTeX(f)
		}
		return out
	case costir.Pow:
		return fmt.Sprintf("%s^{%s}", toLaTeX(v.Base), toLaTeX(v.Exp))
	case costir.Log:
		if v.Base == 2 {
			return fmt.Sprintf("\\log(%s)", toLaTeX(v.Arg))
		}
		return fmt.Sprintf("\\log_{%d}(%s)", v.Base, toLaTeX(v.Arg))
	case costir.Max:
		return fmt.Sprintf("\\max(%s)", joinLaTeX(v.Alts))
	case costir.Min:
		return fmt.Sprintf("\\min(%s)", joinLaTeX(v.Alts))
	default:
		return e.String()
	}
}

func joinLaTeX(es []costir.Expr) string {
	out := ""
	for i, e := range es {
		if i > 0 {
			out += ", "
		}
		out += toLaTeX(e)
	}
	return out
}
