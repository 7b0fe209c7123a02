/*
SPDX-License-Identifier: Apache-2.0

Copyright 2024 The Taxinomia Authors
*/

package costir

import "testing"

func TestAddNCollectsLikeTerms(t *testing.T) {
	tests := []struct {
		name string
		in   []Expr
		want string
	}{
		{"drops zero", []Expr{Zero, N}, "n"},
		{"merges n + n", []Expr{N, N}, "2*n"},
		{"constants fold", []Expr{Int(2), Int(3)}, "5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AddN(tt.in...).String()
			if got != tt.want {
				t.Errorf("AddN(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestMulNIdentities(t *testing.T) {
	if got := MulN(One, N).String(); got != "n" {
		t.Errorf("MulN(1, n) = %q, want n", got)
	}
	if got := MulN(Zero, N).String(); got != "0" {
		t.Errorf("MulN(0, n) = %q, want 0", got)
	}
}

func TestBigOString(t *testing.T) {
	tests := []struct {
		name string
		in   Expr
		want string
	}{
		{"constant", Int(7), "1"},
		{"linear", AddN(MulN(Int(2), N), Int(5)), "n"},
		{"quadratic dominates linear", AddN(PowN(N, 2), N), "n^2"},
		{"nlogn", MulN(N, Log{Base: 2, Arg: N}), "n*log(n)"},
		{"log only", Log{Base: 2, Arg: N}, "log(n)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BigOString(tt.in); got != tt.want {
				t.Errorf("BigOString(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCmpOrdersByDegree(t *testing.T) {
	if Cmp(PowN(N, 2), N) <= 0 {
		t.Errorf("expected n^2 to dominate n")
	}
	if Cmp(Pow{Base: Sym{Name: "2"}, Exp: N}, PowN(N, 5)) <= 0 {
		t.Errorf("expected 2^n to dominate n^5")
	}
}

func TestAsPolynomial(t *testing.T) {
	poly, ok := AsPolynomial(AddN(MulN(Int(1), PowN(N, 2)), MulN(Int(-1), N)))
	if !ok {
		t.Fatalf("expected a polynomial form")
	}
	if poly.Degree != 2 {
		t.Errorf("Degree = %d, want 2", poly.Degree)
	}
	if _, ok := AsPolynomial(Log{Base: 2, Arg: N}); ok {
		t.Errorf("expected log(n) to not be polynomial")
	}
}
