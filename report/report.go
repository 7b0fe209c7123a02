/*
SPDX-License-Identifier: Apache-2.0

Copyright 2024 The Taxinomia Authors
*/

// Package report renders an analysis.AnalysisResult to HTML, using
// the same embed.FS + safehtml/template pattern the table renderer
// this module is grounded on uses for its view models: a trusted,
// auto-escaping template over a small, typed view-model struct built
// specifically for display, never over raw IR values directly.
package report

import (
	_ "embed"
	"embed"
	"io"

	"github.com/google/safehtml/template"

	"github.com/google/complexitron/analysis"
)

//go:embed templates/*
var templateFS embed.FS

// Renderer renders AnalysisResult values to HTML.
type Renderer struct {
	tmpl *template.Template
}

// New parses the embedded report template.
func New() (*Renderer, error) {
	trustedFS := template.TrustedFSFromEmbed(templateFS)
	tmpl, err := template.New("report.html").ParseFS(trustedFS, "templates/report.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{tmpl: tmpl}, nil
}

// ViewModel is the display-only projection of an AnalysisResult the
// template renders; it carries rendered strings, not IR values,
// keeping the template itself free of cost-algebra concerns.
type ViewModel struct {
	Title string
	Procs []ProcView
}

// ProcView is one procedure's display rows.
type ProcView struct {
	Name               string
	BigO               string
	BigOmega           string
	Theta              string
	RecurrenceEquation string
	Explanation        string
	Lines              []LineView
	TraceSummary       string
}

// LineView is one line-cost row rendered for display.
type LineView struct {
	Line  int
	Kind  string
	Text  string
	Worst string
	Best  string
	Avg   string
}

// BuildViewModel projects an AnalysisResult into the template's
// display shape.
func BuildViewModel(title string, result analysis.AnalysisResult) ViewModel {
	vm := ViewModel{Title: title}
	for _, p := range result.Procs {
		pv := ProcView{Name: p.Name}
		switch {
		case p.Recursive != nil:
			pv.BigO = p.Recursive.BigO
			pv.BigOmega = costString(p.Recursive.BestCase)
			pv.Theta = p.Recursive.Theta
			pv.RecurrenceEquation = p.Recursive.RecurrenceEquation
			pv.Explanation = p.Recursive.Explanation
		case p.Iterative != nil:
			pv.BigO = p.Iterative.BigO
			pv.BigOmega = p.Iterative.BigOm
			for _, l := range p.Iterative.Lines {
				pv.Lines = append(pv.Lines, LineView{
					Line: l.Line, Kind: l.Kind, Text: l.Text,
					Worst: l.Worst.String(), Best: l.Best.String(), Avg: l.Avg.String(),
				})
			}
		}
		if p.Trace != nil {
			pv.TraceSummary = p.Trace.Summary()
		}
		vm.Procs = append(vm.Procs, pv)
	}
	return vm
}

func costString(e interface{ String() string }) string {
	if e == nil {
		return ""
	}
	return e.String()
}

// Render writes the HTML report for result to w.
func (r *Renderer) Render(w io.Writer, title string, result analysis.AnalysisResult) error {
	vm := BuildViewModel(title, result)
	return r.tmpl.Execute(w, vm)
}
