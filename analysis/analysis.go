/*
SPDX-License-Identifier: Apache-2.0

Copyright 2024 The Taxinomia Authors
*/

// Package analysis wires the lexer/parser, semantic pass, and the two
// cost analyzers (iterative and recursive) into the single
// Parse/Semantic/Analyze/AnalyzeFull surface the rest of a caller —
// a CLI, an HTTP handler, a report renderer — builds on.
package analysis

import (
	"fmt"

	"github.com/google/complexitron/ast"
	"github.com/google/complexitron/costmodel"
	"github.com/google/complexitron/iterative"
	"github.com/google/complexitron/parser"
	"github.com/google/complexitron/recursive"
	"github.com/google/complexitron/semantic"
	"github.com/google/complexitron/source"
	"github.com/google/complexitron/summation"
)

// Options carries the analyzer's settings; every field has a
// documented default via DefaultOptions so a caller only needs to
// override what it cares about. ExecutionTraceN, BinarySearchTraceN and
// Model are read by Analyze. DefaultStep, MaxASTDepth and
// MaxSimplifySteps are carried but not read: a missing for-step always
// defaults to 1, and no AST depth or simplification-step limit is
// enforced.
type Options struct {
	DefaultStep        int64
	MaxASTDepth        int
	MaxSimplifySteps   int
	ExecutionTraceN    int
	BinarySearchTraceN int
	Model              costmodel.Model
}

// DefaultOptions mirrors the documented default option record.
func DefaultOptions() Options {
	return Options{
		DefaultStep:        1,
		MaxASTDepth:        64,
		MaxSimplifySteps:   10000,
		ExecutionTraceN:    5,
		BinarySearchTraceN: 16,
		Model:              costmodel.Default(),
	}
}

// ParseResult is Parse's return shape.
type ParseResult struct {
	OK     bool
	AST    *ast.Program
	Errors []parser.ParseError
}

// Parse lexes and parses pseudocode text into an AST.
func Parse(text string) ParseResult {
	prog, errs := parser.Parse(text)
	return ParseResult{OK: len(errs) == 0, AST: prog, Errors: errs}
}

// SemanticResult is Semantic's return shape.
type SemanticResult struct {
	AST    *ast.Program
	Issues []semantic.Issue
}

// Semantic runs the normalization pass over a parsed program.
func Semantic(prog *ast.Program) SemanticResult {
	out, issues := semantic.Run(prog)
	return SemanticResult{AST: out, Issues: issues}
}

// ProcResult is the per-procedure analysis outcome: either the
// iterative cost walk's ProgramCost, or the recursive solver's
// Result, depending on which shape the procedure's body has.
type ProcResult struct {
	Name        string
	IsRecursive bool
	Iterative   *iterative.ProgramCost
	Recursive   *recursive.Result
	Trace       *iterative.ExecutionTrace
	WorstBound  summation.Bound
	BestBound   summation.Bound
}

// AnalysisResult is the top-level analysis outcome: one ProcResult per
// declared procedure, plus the Text field on LineCost and the
// simplified/polynomial summation intermediates that supplement the
// worst/best bound.
type AnalysisResult struct {
	OK        bool
	ParseErrs []parser.ParseError
	Issues    []semantic.Issue
	Procs     []ProcResult
}

// Analyze runs the semantic pass's output through the appropriate
// cost analyzer for every declared procedure (and, if present, the
// program's bare top-level statements as an implicit main body).
func Analyze(prog *ast.Program, opts Options, src *source.Mapper) AnalysisResult {
	result := AnalysisResult{OK: true}
	var mainStmts []ast.Stmt
	for _, item := range prog.Body {
		switch v := item.(type) {
		case *ast.Proc:
			result.Procs = append(result.Procs, analyzeProc(v, opts, src))
		default:
			if s, ok := ast.UnwrapItem(item); ok {
				mainStmts = append(mainStmts, s)
			}
		}
	}
	if len(mainStmts) > 0 {
		body := &ast.Block{Stmts: mainStmts}
		pc := iterative.AnalyzeBlock(body, opts.Model, src)
		trace := iterative.BuildExecutionTrace(body, opts.ExecutionTraceN, opts.BinarySearchTraceN)
		result.Procs = append(result.Procs, ProcResult{
			Name:       "main",
			Iterative:  pc,
			Trace:      &trace,
			WorstBound: summation.Build(pc.IRWorst),
			BestBound:  summation.Build(pc.IRBest),
		})
	}
	return result
}

func analyzeProc(proc *ast.Proc, opts Options, src *source.Mapper) ProcResult {
	if isSelfRecursive(proc) {
		res := recursive.Analyze(proc)
		return ProcResult{Name: proc.Name, IsRecursive: true, Recursive: &res}
	}
	pc := iterative.AnalyzeBlock(proc.Body, opts.Model, src)
	trace := iterative.BuildExecutionTrace(proc.Body, opts.ExecutionTraceN, opts.BinarySearchTraceN)
	return ProcResult{
		Name:       proc.Name,
		Iterative:  pc,
		Trace:      &trace,
		WorstBound: summation.Build(pc.IRWorst),
		BestBound:  summation.Build(pc.IRBest),
	}
}

// isSelfRecursive reports whether proc's body contains any call to
// its own name, at any nesting depth.
func isSelfRecursive(proc *ast.Proc) bool {
	return blockCallsName(proc.Body, proc.Name)
}

func blockCallsName(b *ast.Block, name string) bool {
	if b == nil {
		return false
	}
	for _, s := range b.Stmts {
		if stmtCallsName(s, name) {
			return true
		}
	}
	return false
}

func stmtCallsName(s ast.Stmt, name string) bool {
	switch v := s.(type) {
	case *ast.Call:
		return v.Name == name || exprsCallName(v.Args, name)
	case *ast.Assign:
		return exprCallsName(v.ExprV, name)
	case *ast.Return:
		return v.ExprV != nil && exprCallsName(v.ExprV, name)
	case *ast.ExprStmt:
		return exprCallsName(v.ExprV, name)
	case *ast.If:
		if blockCallsName(v.Then, name) {
			return true
		}
		return blockCallsName(v.Else, name)
	case *ast.For:
		return blockCallsName(v.Body, name)
	case *ast.While:
		return blockCallsName(v.Body, name)
	case *ast.Repeat:
		for _, st := range v.Body {
			if stmtCallsName(st, name) {
				return true
			}
		}
		return false
	case *ast.Block:
		return blockCallsName(v, name)
	}
	return false
}

func exprCallsName(e ast.Expr, name string) bool {
	switch v := e.(type) {
	case *ast.Call:
		if v.Name == name {
			return true
		}
		return exprsCallName(v.Args, name)
	case *ast.Bin:
		return exprCallsName(v.Left, name) || exprCallsName(v.Right, name)
	case *ast.Unary:
		return exprCallsName(v.ExprV, name)
	case *ast.Ceil:
		return exprCallsName(v.ExprV, name)
	case *ast.Floor:
		return exprCallsName(v.ExprV, name)
	}
	return false
}

func exprsCallName(es []ast.Expr, name string) bool {
	for _, e := range es {
		if exprCallsName(e, name) {
			return true
		}
	}
	return false
}

// AnalyzeFull is the single entry point a caller typically reaches
// for: parse, run the semantic pass, and analyze every procedure,
// reporting parse failures without attempting analysis on a malformed
// program.
func AnalyzeFull(text string, opts Options) (AnalysisResult, error) {
	pr := Parse(text)
	if !pr.OK {
		return AnalysisResult{OK: false, ParseErrs: pr.Errors}, fmt.Errorf("parse failed with %d error(s)", len(pr.Errors))
	}
	sr := Semantic(pr.AST)
	src := source.New(text)
	result := Analyze(sr.AST, opts, src)
	result.Issues = sr.Issues
	return result, nil
}
