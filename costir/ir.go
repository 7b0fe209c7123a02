/*
SPDX-License-Identifier: Apache-2.0

Copyright 2024 The Taxinomia Authors
*/

// Package costir is the symbolic cost algebra: a small closed set of
// tagged node types (rational constants, symbols, sums, products,
// powers, logarithms, max/min) with a canonicalizing simplifier and
// an asymptotic comparator. Values are immutable; every simplifier
// operation returns a new value.
package costir

import (
	"fmt"
	"sort"
)

// Expr is the marker interface for every cost-IR node.
type Expr interface {
	expr()
	// String renders the node as a human-readable formula fragment;
	// it does not simplify.
	String() string
}

// K is an exact rational constant, kept in lowest terms with a
// positive denominator.
type K struct {
	Num int64
	Den int64
}

// Const builds a reduced rational constant.
func Const(num, den int64) K {
	if den == 0 {
		den = 1
	}
	if den < 0 {
		num, den = -num, -den
	}
	if g := gcd(abs64(num), den); g > 1 {
		num, den = num/g, den/g
	}
	return K{Num: num, Den: den}
}

// Int builds an integer constant.
func Int(n int64) K { return K{Num: n, Den: 1} }

func (K) expr() {}
func (k K) String() string {
	if k.Den == 1 {
		return fmt.Sprintf("%d", k.Num)
	}
	return fmt.Sprintf("%d/%d", k.Num, k.Den)
}

// Float reports k as a float64, for comparisons and degree arithmetic.
func (k K) Float() float64 { return float64(k.Num) / float64(k.Den) }

// IsZero reports whether k is exactly zero.
func (k K) IsZero() bool { return k.Num == 0 }

// IsOne reports whether k is exactly one.
func (k K) IsOne() bool { return k.Num == k.Den }

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}
	return a
}

func abs64(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}

// Sym is a size parameter, such as "n" or "m", or a symbolic base for
// exponential growth terms (see Pow).
type Sym struct {
	Name string
}

func (Sym) expr()          {}
func (s Sym) String() string { return s.Name }

// N is the canonical size symbol.
var N = Sym{Name: "n"}

// Sum is a sum of zero or more terms; an empty Sum is zero.
type Sum struct {
	Terms []Expr
}

func (Sum) expr() {}
func (s Sum) String() string {
	if len(s.Terms) == 0 {
		return "0"
	}
	out := s.Terms[0].String()
	for _, t := range s.Terms[1:] {
		out += " + " + t.String()
	}
	return out
}

// Prod is a product of zero or more factors; an empty Prod is one.
type Prod struct {
	Factors []Expr
}

func (Prod) expr() {}
func (p Prod) String() string {
	if len(p.Factors) == 0 {
		return "1"
	}
	out := p.Factors[0].String()
	for _, f := range p.Factors[1:] {
		out += "*" + f.String()
	}
	return out
}

// Pow is base^exponent. A constant integer Exp models a polynomial
// power (Sym("n") squared, cubed, ...); a Sym-valued Exp (conventionally
// Sym("n")) models exponential growth with a symbolic base, which is
// how this module represents both the precise φ^n form and the 2^n
// display form of scenario analyses (see recursive/characteristic.go).
type Pow struct {
	Base Expr
	Exp  Expr
}

func (Pow) expr() {}
func (p Pow) String() string {
	return fmt.Sprintf("%s^%s", wrap(p.Base), wrap(p.Exp))
}

func wrap(e Expr) string {
	switch e.(type) {
	case Sum, Prod:
		return "(" + e.String() + ")"
	default:
		return e.String()
	}
}

// Log is a logarithm with a positive integer Base (conventionally 2).
type Log struct {
	Base int64
	Arg  Expr
}

func (Log) expr() {}
func (l Log) String() string {
	if l.Base == 2 {
		return fmt.Sprintf("log(%s)", l.Arg.String())
	}
	return fmt.Sprintf("log_%d(%s)", l.Base, l.Arg.String())
}

// Max models the worst-case combination of alternative branch costs.
type Max struct {
	Alts []Expr
}

func (Max) expr() {}
func (m Max) String() string {
	return fmt.Sprintf("max(%s)", joinExprs(m.Alts))
}

// Min models the best-case combination of alternative branch costs.
type Min struct {
	Alts []Expr
}

func (Min) expr() {}
func (m Min) String() string {
	return fmt.Sprintf("min(%s)", joinExprs(m.Alts))
}

func joinExprs(es []Expr) string {
	out := ""
	for i, e := range es {
		if i > 0 {
			out += ", "
		}
		out += e.String()
	}
	return out
}

// PiecewiseCase is one guarded alternative of a Piecewise value.
type PiecewiseCase struct {
	Guard string
	Value Expr
}

// Piecewise is an optional closed-form bound split by guard condition.
type Piecewise struct {
	Cases []PiecewiseCase
}

func (Piecewise) expr() {}
func (p Piecewise) String() string {
	out := ""
	for i, c := range p.Cases {
		if i > 0 {
			out += "; "
		}
		out += fmt.Sprintf("%s if %s", c.Value.String(), c.Guard)
	}
	return out
}

// --- smart constructors ---

// Zero is the additive identity.
var Zero = Int(0)

// One is the multiplicative identity.
var One = Int(1)

// AddN flattens, collects like terms, and drops zero-coefficient
// terms, returning a canonical Sum (or a bare term if only one
// survives, or Zero if none do).
func AddN(xs ...Expr) Expr {
	var flat []Expr
	var konst K = Zero
	for _, x := range xs {
		switch v := x.(type) {
		case K:
			konst = addK(konst, v)
		case Sum:
			for _, t := range v.Terms {
				if k, ok := t.(K); ok {
					konst = addK(konst, k)
				} else {
					flat = append(flat, t)
				}
			}
		default:
			flat = append(flat, x)
		}
	}
	flat = collectLikeTerms(flat)
	sort.SliceStable(flat, func(i, j int) bool { return rankKey(flat[i]) < rankKey(flat[j]) })
	if !konst.IsZero() {
		flat = append(flat, konst)
	}
	if len(flat) == 0 {
		return Zero
	}
	if len(flat) == 1 {
		return flat[0]
	}
	return Sum{Terms: flat}
}

func addK(a, b K) K {
	num := a.Num*b.Den + b.Num*a.Den
	den := a.Den * b.Den
	return Const(num, den)
}

// collectLikeTerms merges terms that are structurally identical except
// for an outer rational coefficient, summing their coefficients.
func collectLikeTerms(terms []Expr) []Expr {
	type bucket struct {
		key   string
		shape Expr
		coef  K
	}
	var buckets []*bucket
	index := map[string]*bucket{}
	for _, t := range terms {
		coef, shape := splitCoefficient(t)
		key := shape.String()
		if b, ok := index[key]; ok {
			b.coef = addK(b.coef, coef)
			continue
		}
		b := &bucket{key: key, shape: shape, coef: coef}
		index[key] = b
		buckets = append(buckets, b)
	}
	var out []Expr
	for _, b := range buckets {
		if b.coef.IsZero() {
			continue
		}
		out = append(out, rebuildWithCoefficient(b.coef, b.shape))
	}
	return out
}

func splitCoefficient(e Expr) (K, Expr) {
	if p, ok := e.(Prod); ok {
		var coef = One
		var rest []Expr
		for _, f := range p.Factors {
			if k, ok := f.(K); ok {
				coef = Const(coef.Num*k.Num, coef.Den*k.Den)
				continue
			}
			rest = append(rest, f)
		}
		if len(rest) == 0 {
			return coef, One
		}
		if len(rest) == 1 {
			return coef, rest[0]
		}
		sort.SliceStable(rest, func(i, j int) bool { return rankKey(rest[i]) < rankKey(rest[j]) })
		return coef, Prod{Factors: rest}
	}
	if k, ok := e.(K); ok {
		return k, One
	}
	return One, e
}

func rebuildWithCoefficient(coef K, shape Expr) Expr {
	if k, ok := shape.(K); ok && k.IsOne() {
		return coef
	}
	if coef.IsOne() {
		return shape
	}
	return Prod{Factors: []Expr{coef, shape}}
}

// MulN flattens, multiplies constant factors together, short-circuits
// on a zero constant factor, and accumulates symbol powers.
func MulN(xs ...Expr) Expr {
	var flat []Expr
	konst := One
	for _, x := range xs {
		switch v := x.(type) {
		case K:
			konst = Const(konst.Num*v.Num, konst.Den*v.Den)
		case Prod:
			for _, f := range v.Factors {
				if k, ok := f.(K); ok {
					konst = Const(konst.Num*k.Num, konst.Den*k.Den)
				} else {
					flat = append(flat, f)
				}
			}
		default:
			flat = append(flat, x)
		}
	}
	if konst.IsZero() {
		return Zero
	}
	flat = collectLikePowers(flat)
	sort.SliceStable(flat, func(i, j int) bool { return rankKey(flat[i]) < rankKey(flat[j]) })
	if !konst.IsOne() {
		flat = append([]Expr{konst}, flat...)
	}
	if len(flat) == 0 {
		return konst
	}
	if len(flat) == 1 {
		return flat[0]
	}
	return Prod{Factors: flat}
}

// collectLikePowers merges repeated identical factors into a single
// Pow(factor, count) entry.
func collectLikePowers(factors []Expr) []Expr {
	type bucket struct {
		base  Expr
		count int
	}
	var buckets []*bucket
	index := map[string]*bucket{}
	for _, f := range factors {
		base := f
		count := 1
		if pw, ok := f.(Pow); ok {
			if k, ok := pw.Exp.(K); ok && k.Den == 1 {
				base = pw.Base
				count = int(k.Num)
			}
		}
		key := base.String()
		if b, ok := index[key]; ok {
			b.count += count
			continue
		}
		b := &bucket{base: base, count: count}
		index[key] = b
		buckets = append(buckets, b)
	}
	var out []Expr
	for _, b := range buckets {
		out = append(out, PowN(b.base, b.count))
	}
	return out
}

// PowN builds base^n for an integer n, applying the Pow identities.
func PowN(base Expr, n int) Expr {
	if n == 0 {
		return One
	}
	if n == 1 {
		return base
	}
	return Pow{Base: base, Exp: Int(int64(n))}
}

// LogN builds log_base(arg), applying Log(b, 1) = 0 and Log(b, b^e) = e.
func LogN(base int64, arg Expr) Expr {
	if k, ok := arg.(K); ok && k.IsOne() {
		return Zero
	}
	if pw, ok := arg.(Pow); ok {
		if s, ok := pw.Base.(Sym); ok && s.Name == fmt.Sprintf("%d", base) {
			return pw.Exp
		}
	}
	return Log{Base: base, Arg: arg}
}

// Negate returns -1*e, folded into any existing rational coefficient.
func Negate(e Expr) Expr { return MulN(Int(-1), e) }

// ScaleSum multiplies e by a rational factor, distributing over a Sum
// so each term's coefficient is scaled rather than wrapping the whole
// sum in an opaque Prod — needed so AsPolynomial can still recognize
// the result.
func ScaleSum(e Expr, factor K) Expr {
	if factor.IsOne() {
		return e
	}
	if s, ok := e.(Sum); ok {
		terms := make([]Expr, len(s.Terms))
		for i, t := range s.Terms {
			terms[i] = MulN(factor, t)
		}
		return AddN(terms...)
	}
	return MulN(factor, e)
}

// rankKey orders terms/factors deterministically: constants first,
// then polynomial symbols/powers, then logarithms, then anything else,
// each bucket ordered lexicographically within itself. This keeps
// output in the conventional "n*log(n)" reading order and makes
// Sum/Prod output stable across runs (required for the golden test
// fixtures).
func rankKey(e Expr) string {
	switch v := e.(type) {
	case K:
		return "0:" + e.String()
	case Sym, Pow:
		return "1:" + e.String()
	case Log:
		return "2:" + e.String()
	default:
		_ = v
		return "3:" + e.String()
	}
}
