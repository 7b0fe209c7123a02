/*
SPDX-License-Identifier: Apache-2.0

Copyright 2024 The Taxinomia Authors
*/

// Package iterative implements the line-by-line symbolic cost walk: a
// forward traversal of a procedure body that charges
// each primitive statement a base cost from a costmodel.Model,
// multiplies nested statements by their enclosing loops' trip counts,
// and combines conditional branches into worst/best/average IR values.
package iterative

import (
	"github.com/google/complexitron/ast"
	"github.com/google/complexitron/costir"
	"github.com/google/complexitron/costmodel"
	"github.com/google/complexitron/source"
)

// LineCost is the per-statement record of a single cost-walk line.
type LineCost struct {
	Line       int
	Kind       string
	Text       string
	Multiplier costir.Expr
	Worst      costir.Expr
	Best       costir.Expr
	Avg        costir.Expr
}

// ProgramCost is the result of walking one procedure body.
type ProgramCost struct {
	IRWorst costir.Expr
	IRBest  costir.Expr
	IRAvg   costir.Expr
	BigO    string
	BigOm   string
	Lines   []LineCost
}

// walker carries the shared state a recursive statement walk threads
// through: the chosen cost model, the source line mapper for display
// text, and the line records accumulated so far.
type walker struct {
	model  costmodel.Model
	src    *source.Mapper
	lines  []LineCost
	silent bool
}

// AnalyzeBlock walks a procedure's body top to bottom and returns its
// aggregate worst/best/average cost plus a line-by-line trace.
func AnalyzeBlock(body *ast.Block, model costmodel.Model, src *source.Mapper) *ProgramCost {
	w := &walker{model: model, src: src}
	en := env{}
	worst, best, avg := w.walkBlock(body, costir.One, en)
	return &ProgramCost{
		IRWorst: worst,
		IRBest:  best,
		IRAvg:   avg,
		BigO:    costir.BigOString(worst),
		BigOm:   costir.BigOmegaString(best),
		Lines:   w.lines,
	}
}

func (w *walker) walkBlock(b *ast.Block, mult costir.Expr, en env) (worst, best, avg costir.Expr) {
	worst, best, avg = costir.Zero, costir.Zero, costir.Zero
	for _, s := range b.Stmts {
		sw, sb, sa := w.walkStmt(s, mult, en)
		worst = costir.AddN(worst, sw)
		best = costir.AddN(best, sb)
		avg = costir.AddN(avg, sa)
	}
	return worst, best, avg
}

func (w *walker) record(s ast.Stmt, kind string, mult, worst, best, avg costir.Expr) {
	if w.silent {
		return
	}
	line := 0
	if loc := s.Loc(); loc != nil {
		line = loc.Line
	}
	text := ""
	if w.src != nil {
		text = w.src.LineText(line)
	}
	w.lines = append(w.lines, LineCost{
		Line: line, Kind: kind, Text: text,
		Multiplier: mult, Worst: worst, Best: best, Avg: avg,
	})
}

func (w *walker) walkStmt(s ast.Stmt, mult costir.Expr, en env) (worst, best, avg costir.Expr) {
	switch v := s.(type) {
	case *ast.Assign:
		en.recordAssign(v)
		c := costir.MulN(mult, w.model.AssignCost())
		w.record(s, "assign", mult, c, c, c)
		return c, c, c

	case *ast.Call:
		c := costir.MulN(mult, w.model.CallCost())
		w.record(s, "call", mult, c, c, c)
		return c, c, c

	case *ast.Return:
		c := costir.MulN(mult, w.model.ReturnCost())
		w.record(s, "return", mult, c, c, c)
		return c, c, c

	case *ast.ExprStmt:
		w.record(s, "expr", mult, costir.Zero, costir.Zero, costir.Zero)
		return costir.Zero, costir.Zero, costir.Zero

	case *ast.ObjectDecl:
		w.record(s, "decl", mult, costir.Zero, costir.Zero, costir.Zero)
		return costir.Zero, costir.Zero, costir.Zero

	case *ast.Block:
		return w.walkBlock(v, mult, en)

	case *ast.If:
		return w.walkIf(v, mult, en)

	case *ast.For:
		return w.walkFor(v, mult, en)

	case *ast.While:
		return w.walkWhile(v, mult, en)

	case *ast.Repeat:
		return w.walkRepeat(v, mult, en)

	default:
		return costir.Zero, costir.Zero, costir.Zero
	}
}

// walkIf combines the two branches' costs: worst takes the more
// expensive branch, best the cheaper, and avg is the true arithmetic
// mean of the two (an absent else is treated as a zero-cost branch, so
// avg = cost(then)/2).
func (w *walker) walkIf(v *ast.If, mult costir.Expr, en env) (worst, best, avg costir.Expr) {
	cmp := costir.MulN(mult, w.model.CompareCost())
	thenW, thenB, thenA := w.walkBlock(v.Then, mult, en.clone())
	var elseW, elseB, elseA costir.Expr = costir.Zero, costir.Zero, costir.Zero
	if v.Else != nil {
		elseW, elseB, elseA = w.walkBlock(v.Else, mult, en.clone())
	}
	branchWorst := costir.Max{Alts: []costir.Expr{thenW, elseW}}
	branchBest := costir.Min{Alts: []costir.Expr{thenB, elseB}}
	branchAvg := costir.MulN(costir.Const(1, 2), costir.AddN(thenA, elseA))
	worst = costir.AddN(cmp, branchWorst)
	best = costir.AddN(cmp, branchBest)
	avg = costir.AddN(cmp, branchAvg)
	w.record(v, "if", mult, worst, best, avg)
	return worst, best, avg
}

// walkFor multiplies the body's cost by the loop's symbolic trip count
// (see for_pattern.go), pushing the scaled multiplier into the nested
// walk so doubly-nested loops compound correctly.
func (w *walker) walkFor(v *ast.For, mult costir.Expr, en env) (worst, best, avg costir.Expr) {
	n := tripCount(v, en)
	nested := costir.MulN(mult, n)
	bodyEnv := en.clone()
	delete(bodyEnv, v.Var)
	bw, bb, ba := w.walkBlock(v.Body, nested, bodyEnv)
	w.record(v, "for", n, bw, bb, ba)
	return bw, bb, ba
}

// walkWhile applies the structural pattern detector to pick a
// symbolic trip count, then scales the body's cost by it exactly as
// walkFor does.
func (w *walker) walkWhile(v *ast.While, mult costir.Expr, en env) (worst, best, avg costir.Expr) {
	pat := detectWhilePattern(v.Cond, v.Body)
	worstN, bestN := whileTripCounts(pat)
	worstNested := costir.MulN(mult, worstN)
	bestNested := costir.MulN(mult, bestN)
	bw, _, ba := w.walkBlock(v.Body, worstNested, en.clone())
	w.silent = true
	_, bb, _ := w.walkBlock(v.Body, bestNested, en.clone())
	w.silent = false
	w.record(v, "while", worstN, bw, bb, ba)
	return bw, bb, ba
}

// walkRepeat is walkWhile's sibling with a floor of one guaranteed
// iteration applied to both worst and best trip counts.
func (w *walker) walkRepeat(v *ast.Repeat, mult costir.Expr, en env) (worst, best, avg costir.Expr) {
	block := &ast.Block{Stmts: v.Body, L: v.L}
	pat := detectWhilePattern(v.Until, block)
	worstN, bestN := whileTripCounts(pat)
	worstN = costir.Max{Alts: []costir.Expr{worstN, costir.One}}
	bestN = costir.Max{Alts: []costir.Expr{bestN, costir.One}}
	worstNested := costir.MulN(mult, worstN)
	bestNested := costir.MulN(mult, bestN)
	bw, _, ba := w.walkBlock(block, worstNested, en.clone())
	w.silent = true
	_, bb, _ := w.walkBlock(block, bestNested, en.clone())
	w.silent = false
	w.record(v, "repeat", worstN, bw, bb, ba)
	return bw, bb, ba
}

// whileTripCounts maps a detected pattern to (worst, best) symbolic
// trip counts. The fallback for an unrecognized shape is the
// governing symbol itself for worst case, and K(1) for best case, the
// documented default when no structural pattern fits.
func whileTripCounts(pat whilePattern) (worst, best costir.Expr) {
	switch pat.kind {
	case "halving", "binary_search":
		base := int64(2)
		if pat.k > 0 {
			base = pat.k
		}
		n := costir.LogN(base, costir.Sym{Name: guardSymbol(pat)})
		return n, costir.One
	case "decrement":
		n := costir.MulN(costir.Const(1, pat.k), costir.Sym{Name: guardSymbol(pat)})
		return n, costir.One
	default:
		return costir.Sym{Name: guardSymbol(pat)}, costir.One
	}
}

func guardSymbol(pat whilePattern) string {
	if pat.varName != "" {
		return pat.varName
	}
	return "n"
}
