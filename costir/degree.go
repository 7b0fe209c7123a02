/*
SPDX-License-Identifier: Apache-2.0

Copyright 2024 The Taxinomia Authors
*/

package costir

import "fmt"

// Degree is the asymptotic rank of an IR value, compared lexically as
// (Exp, Poly, Log): exponential growth always dominates any polynomial
// degree, which in turn always dominates any power of a logarithm
// factor at the same polynomial degree.
type Degree struct {
	Exp  float64
	Poly float64
	Log  float64
}

// Less reports whether d is asymptotically dominated by o.
func (d Degree) Less(o Degree) bool {
	if d.Exp != o.Exp {
		return d.Exp < o.Exp
	}
	if d.Poly != o.Poly {
		return d.Poly < o.Poly
	}
	return d.Log < o.Log
}

// Equal reports whether d and o rank the same.
func (d Degree) Equal(o Degree) bool {
	return d.Exp == o.Exp && d.Poly == o.Poly && d.Log == o.Log
}

// DegreeOf computes the asymptotic rank of e, descending through
// Sum/Max by taking the highest-ranked component, Min by taking the
// lowest, and Prod by adding its factors' ranks.
func DegreeOf(e Expr) Degree {
	switch v := e.(type) {
	case K:
		return Degree{}
	case Sym:
		return Degree{Poly: 1}
	case Pow:
		if _, ok := v.Exp.(Sym); ok {
			// base^n: exponential growth, represented by Exp=1.
			return Degree{Exp: 1}
		}
		if k, ok := v.Exp.(K); ok {
			bd := DegreeOf(v.Base)
			return Degree{Exp: bd.Exp, Poly: bd.Poly * k.Float(), Log: bd.Log * k.Float()}
		}
		return Degree{Poly: 1}
	case Log:
		return Degree{Log: 1}
	case Sum:
		return maxDegree(v.Terms)
	case Prod:
		d := Degree{}
		for _, f := range v.Factors {
			fd := DegreeOf(f)
			d = Degree{Exp: d.Exp + fd.Exp, Poly: d.Poly + fd.Poly, Log: d.Log + fd.Log}
		}
		return d
	case Max:
		return maxDegree(v.Alts)
	case Min:
		return minDegree(v.Alts)
	default:
		return Degree{}
	}
}

func maxDegree(es []Expr) Degree {
	var best Degree
	for i, e := range es {
		d := DegreeOf(e)
		if i == 0 || best.Less(d) {
			best = d
		}
	}
	return best
}

func minDegree(es []Expr) Degree {
	var best Degree
	for i, e := range es {
		d := DegreeOf(e)
		if i == 0 || d.Less(best) {
			best = d
		}
	}
	return best
}

// Cmp is the asymptotic comparator: -1 if a is dominated by b, 0 if
// equal rank, 1 if a dominates b.
func Cmp(a, b Expr) int {
	da, db := DegreeOf(a), DegreeOf(b)
	if da.Equal(db) {
		return 0
	}
	if da.Less(db) {
		return -1
	}
	return 1
}

// Dominant returns the unique maximum-degree term of a Sum under Cmp,
// or a canonical Sum of co-dominant terms if several tie. Non-Sum
// inputs are returned unchanged.
func Dominant(e Expr) Expr {
	sum, ok := e.(Sum)
	if !ok {
		return e
	}
	if len(sum.Terms) == 0 {
		return Zero
	}
	best := maxDegree(sum.Terms)
	var winners []Expr
	for _, t := range sum.Terms {
		if DegreeOf(t).Equal(best) {
			winners = append(winners, t)
		}
	}
	if len(winners) == 1 {
		return winners[0]
	}
	return AddN(winners...)
}

// localIndexVars are the loop-index names the iterative analyzer
// conventionally uses; canonicalization maps them onto Sym("n") so
// big-O strings always read in terms of the single size parameter.
var localIndexVars = map[string]bool{
	"i": true, "j": true, "k": true, "p": true, "q": true, "l": true, "h": true, "t": true,
}

// CanonicalizeForBigO maps local loop-index symbols onto Sym("n"),
// mirroring how a governing loop bound is itself expressed in terms
// of the program's size parameter.
func CanonicalizeForBigO(e Expr) Expr {
	switch v := e.(type) {
	case Sym:
		if localIndexVars[v.Name] {
			return N
		}
		return v
	case Sum:
		terms := make([]Expr, len(v.Terms))
		for i, t := range v.Terms {
			terms[i] = CanonicalizeForBigO(t)
		}
		return AddN(terms...)
	case Prod:
		factors := make([]Expr, len(v.Factors))
		for i, f := range v.Factors {
			factors[i] = CanonicalizeForBigO(f)
		}
		return MulN(factors...)
	case Pow:
		return Pow{Base: CanonicalizeForBigO(v.Base), Exp: CanonicalizeForBigO(v.Exp)}
	case Log:
		return Log{Base: v.Base, Arg: CanonicalizeForBigO(v.Arg)}
	case Max:
		alts := make([]Expr, len(v.Alts))
		for i, a := range v.Alts {
			alts[i] = CanonicalizeForBigO(a)
		}
		return Max{Alts: alts}
	case Min:
		alts := make([]Expr, len(v.Alts))
		for i, a := range v.Alts {
			alts[i] = CanonicalizeForBigO(a)
		}
		return Min{Alts: alts}
	default:
		return e
	}
}

// bigOExpr extracts the asymptotically relevant shape: the dominant
// term of a Sum, with constant factors stripped from Prod, and the
// max-degree option of a Max/Alt-like node. It does not render; see
// BigOString.
func bigOExpr(e Expr) Expr {
	switch v := e.(type) {
	case Sum:
		d := Dominant(v)
		if s, ok := d.(Sum); ok {
			// Co-dominant terms share one rank; the first gives the shape.
			return bigOExpr(s.Terms[0])
		}
		return bigOExpr(d)
	case Prod:
		var rest []Expr
		for _, f := range v.Factors {
			if _, ok := f.(K); ok {
				continue
			}
			rest = append(rest, bigOExpr(f))
		}
		if len(rest) == 0 {
			return One
		}
		if len(rest) == 1 {
			return rest[0]
		}
		return Prod{Factors: rest}
	case Max:
		return bigOExpr(maxOf(v.Alts))
	default:
		return v
	}
}

// bigOmegaExpr is bigOExpr's best-case counterpart: where Max picks the
// highest-degree alternative, big-Ω picks the lowest, modeling the
// best-case branch of an If.
func bigOmegaExpr(e Expr) Expr {
	switch v := e.(type) {
	case Sum:
		d := Dominant(v)
		if s, ok := d.(Sum); ok {
			// Co-dominant terms share one rank; the first gives the shape.
			return bigOmegaExpr(s.Terms[0])
		}
		return bigOmegaExpr(d)
	case Prod:
		var rest []Expr
		for _, f := range v.Factors {
			if _, ok := f.(K); ok {
				continue
			}
			rest = append(rest, bigOmegaExpr(f))
		}
		if len(rest) == 0 {
			return One
		}
		if len(rest) == 1 {
			return rest[0]
		}
		return Prod{Factors: rest}
	case Min:
		return bigOmegaExpr(minOf(v.Alts))
	case Max:
		return bigOmegaExpr(minOf(v.Alts))
	default:
		return v
	}
}

func maxOf(es []Expr) Expr {
	best := es[0]
	for _, e := range es[1:] {
		if Cmp(e, best) > 0 {
			best = e
		}
	}
	return best
}

func minOf(es []Expr) Expr {
	best := es[0]
	for _, e := range es[1:] {
		if Cmp(e, best) < 0 {
			best = e
		}
	}
	return best
}

// BigOString renders e's big-O display form: canonicalize local index
// vars to n, extract the dominant asymptotic shape, and pretty-print.
func BigOString(e Expr) string {
	return prettyAsymptotic(bigOExpr(CanonicalizeForBigO(e)))
}

// BigOmegaString is BigOString's best-case counterpart (see bigOmegaExpr).
func BigOmegaString(e Expr) string {
	return prettyAsymptotic(bigOmegaExpr(CanonicalizeForBigO(e)))
}

func prettyAsymptotic(e Expr) string {
	switch v := e.(type) {
	case K:
		if v.IsZero() {
			return "1"
		}
		return "1"
	case Sym:
		return v.Name
	case Pow:
		if s, ok := v.Exp.(Sym); ok && s.Name == "n" {
			return prettyAsymptotic(v.Base) + "^n"
		}
		if k, ok := v.Exp.(K); ok && k.Den == 1 {
			return fmt.Sprintf("%s^%d", prettyAsymptotic(v.Base), k.Num)
		}
		return v.String()
	case Log:
		return fmt.Sprintf("log(%s)", prettyAsymptotic(v.Arg))
	case Prod:
		out := ""
		for i, f := range v.Factors {
			if i > 0 {
				out += "*"
			}
			out += prettyAsymptotic(f)
		}
		if out == "" {
			return "1"
		}
		return out
	case Sum:
		out := ""
		for i, t := range v.Terms {
			if i > 0 {
				out += " + "
			}
			out += prettyAsymptotic(t)
		}
		return out
	default:
		return e.String()
	}
}
