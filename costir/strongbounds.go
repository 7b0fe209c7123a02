/*
SPDX-License-Identifier: Apache-2.0

Copyright 2024 The Taxinomia Authors
*/

package costir

import (
	"fmt"
	"sort"
)

// Polynomial is the "polynomial-with-constants" form required for
// strong_bounds: explicit rational coefficients indexed from the
// highest degree down to the constant term.
type Polynomial struct {
	Degree    int
	Coeffs    []K // Coeffs[0] is the leading (degree) coefficient, Coeffs[len-1] the constant.
	Dominant  Expr
	Formula   string
	Constant  K
}

// AsPolynomial attempts to express e as a single-variable polynomial
// in n with determinable rational coefficients. It fails (ok=false)
// for anything containing a logarithm, an exponential term, or more
// than one free symbol — those cases omit strong_bounds entirely.
func AsPolynomial(e Expr) (Polynomial, bool) {
	e = CanonicalizeForBigO(e)
	terms := flattenSum(e)
	coeffByDegree := map[int]K{}
	maxDeg := 0
	for _, t := range terms {
		deg, coef, ok := monomialDegreeAndCoeff(t)
		if !ok {
			return Polynomial{}, false
		}
		coeffByDegree[deg] = addK(coeffByDegree[deg], coef)
		if deg > maxDeg {
			maxDeg = deg
		}
	}
	var coeffs []K
	for d := maxDeg; d >= 0; d-- {
		c, ok := coeffByDegree[d]
		if !ok {
			c = Zero
		}
		coeffs = append(coeffs, c)
	}
	poly := Polynomial{
		Degree:   maxDeg,
		Coeffs:   coeffs,
		Constant: coeffs[len(coeffs)-1],
	}
	poly.Dominant = PowN(N, maxDeg)
	if !coeffByDegree[maxDeg].IsOne() {
		poly.Dominant = MulN(coeffByDegree[maxDeg], poly.Dominant)
	}
	poly.Formula = formatPolynomial(coeffs)
	return poly, true
}

func flattenSum(e Expr) []Expr {
	if s, ok := e.(Sum); ok {
		return s.Terms
	}
	return []Expr{e}
}

// monomialDegreeAndCoeff recognizes c, c*n, c*n^d shapes (d a
// non-negative integer) and returns (d, c, true); anything else
// (logs, exponentials, other symbols) returns ok=false.
func monomialDegreeAndCoeff(e Expr) (int, K, bool) {
	switch v := e.(type) {
	case K:
		return 0, v, true
	case Sym:
		if v.Name == "n" {
			return 1, One, true
		}
		return 0, Zero, false
	case Pow:
		s, ok := v.Base.(Sym)
		if !ok || s.Name != "n" {
			return 0, Zero, false
		}
		k, ok := v.Exp.(K)
		if !ok || k.Den != 1 || k.Num < 0 {
			return 0, Zero, false
		}
		return int(k.Num), One, true
	case Prod:
		coef := One
		deg := 0
		sawSym := false
		for _, f := range v.Factors {
			switch fv := f.(type) {
			case K:
				coef = Const(coef.Num*fv.Num, coef.Den*fv.Den)
			case Sym, Pow:
				d, c, ok := monomialDegreeAndCoeff(fv.(Expr))
				if !ok {
					return 0, Zero, false
				}
				deg += d
				coef = Const(coef.Num*c.Num, coef.Den*c.Den)
				sawSym = true
			default:
				return 0, Zero, false
			}
		}
		if !sawSym {
			return 0, coef, true
		}
		return deg, coef, true
	default:
		return 0, Zero, false
	}
}

func formatPolynomial(coeffs []K) string {
	maxDeg := len(coeffs) - 1
	out := ""
	for i, c := range coeffs {
		if c.IsZero() {
			continue
		}
		deg := maxDeg - i
		term := ""
		switch deg {
		case 0:
			term = c.String()
		case 1:
			if c.IsOne() {
				term = "n"
			} else {
				term = c.String() + "n"
			}
		default:
			if c.IsOne() {
				term = fmt.Sprintf("n^%d", deg)
			} else {
				term = fmt.Sprintf("%sn^%d", c.String(), deg)
			}
		}
		if out == "" {
			out = term
		} else {
			out += " + " + term
		}
	}
	if out == "" {
		return "0"
	}
	return out
}

// Terms describes each surviving monomial for the strong_bounds.terms
// field, ordered from highest to lowest degree.
func (p Polynomial) Terms() []struct {
	Expr   string
	Degree int
} {
	var out []struct {
		Expr   string
		Degree int
	}
	maxDeg := len(p.Coeffs) - 1
	for i, c := range p.Coeffs {
		if c.IsZero() {
			continue
		}
		deg := maxDeg - i
		out = append(out, struct {
			Expr   string
			Degree int
		}{Expr: formatPolynomial(onlyDegree(p.Coeffs, i)), Degree: deg})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Degree > out[j].Degree })
	return out
}

func onlyDegree(coeffs []K, idx int) []K {
	out := make([]K, len(coeffs))
	for i := range out {
		out[i] = Zero
	}
	out[idx] = coeffs[idx]
	return out
}
