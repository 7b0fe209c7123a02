/*
SPDX-License-Identifier: Apache-2.0

Copyright 2024 The Taxinomia Authors
*/

// Package costmodel holds the per-operation-kind base costs for
// primitive statements. The documented default is a uniform K(1) cost;
// a caller can supply a configured model through analysis.Options,
// grounded on the original service's per-kind cost table. Only the
// iterative analyzer reads the model, and only its Assign, Compare,
// Call and Return costs; the Add, Mul, Div, Mod and ArrayAccess costs
// are not charged anywhere, and the recursive analyzer charges a fixed
// K(1) per statement regardless of the model.
package costmodel

import "github.com/google/complexitron/costir"

// Model assigns a base cost to each primitive operation kind.
type Model struct {
	Assign      int64
	Compare     int64
	Add         int64
	Mul         int64
	Div         int64
	Mod         int64
	ArrayAccess int64
	Call        int64
	Return      int64
}

// Default is the uniform-K(1) model.
func Default() Model {
	return Model{Assign: 1, Compare: 1, Add: 1, Mul: 1, Div: 1, Mod: 1, ArrayAccess: 1, Call: 1, Return: 1}
}

// Assign's cost as an IR value.
func (m Model) AssignCost() costir.Expr { return costir.Int(m.Assign) }

// Compare's cost as an IR value.
func (m Model) CompareCost() costir.Expr { return costir.Int(m.Compare) }

// Call's cost as an IR value.
func (m Model) CallCost() costir.Expr { return costir.Int(m.Call) }

// Return's cost as an IR value.
func (m Model) ReturnCost() costir.Expr { return costir.Int(m.Return) }

// ArrayAccessCost as an IR value.
func (m Model) ArrayAccessCost() costir.Expr { return costir.Int(m.ArrayAccess) }
