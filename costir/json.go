/*
SPDX-License-Identifier: Apache-2.0

Copyright 2024 The Taxinomia Authors
*/

package costir

// ToJSON renders e into the canonical JSON shape: one tagged object
// per node kind.
func ToJSON(e Expr) map[string]any {
	switch v := e.(type) {
	case K:
		if v.Den == 1 {
			return map[string]any{"k": v.Num}
		}
		return map[string]any{"k": v.Float()}
	case Sym:
		return map[string]any{"name": v.Name}
	case Pow:
		return map[string]any{"pow": map[string]any{"base": ToJSON(v.Base), "exp": ToJSON(v.Exp)}}
	case Log:
		return map[string]any{"log": map[string]any{"base": v.Base, "arg": ToJSON(v.Arg)}}
	case Sum:
		terms := make([]map[string]any, len(v.Terms))
		for i, t := range v.Terms {
			terms[i] = ToJSON(t)
		}
		return map[string]any{"terms": terms}
	case Prod:
		factors := make([]map[string]any, len(v.Factors))
		for i, f := range v.Factors {
			factors[i] = ToJSON(f)
		}
		return map[string]any{"factors": factors}
	case Max:
		alts := make([]map[string]any, len(v.Alts))
		for i, a := range v.Alts {
			alts[i] = ToJSON(a)
		}
		return map[string]any{"max": alts}
	case Min:
		alts := make([]map[string]any, len(v.Alts))
		for i, a := range v.Alts {
			alts[i] = ToJSON(a)
		}
		return map[string]any{"min": alts}
	case Piecewise:
		cases := make([]map[string]any, len(v.Cases))
		for i, c := range v.Cases {
			cases[i] = map[string]any{"guard": c.Guard, "value": ToJSON(c.Value)}
		}
		return map[string]any{"piecewise": cases}
	default:
		return map[string]any{"unknown": e.String()}
	}
}
