/*
SPDX-License-Identifier: Apache-2.0

Copyright 2024 The Taxinomia Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    https://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Command complexitron reads a pseudocode source file, runs it through
// the parse/semantic/analyze pipeline, and prints each procedure's
// worst- and best-case bound to stdout, optionally writing an HTML
// report and/or a textproto summary alongside it.
//
// This replaces the module's original HTTP table-serving demo: that
// server wired a query-string-driven table view onto a fixed set of
// in-memory demo tables, a surface this module's domain (analyzing
// pseudocode complexity) has no use for. A batch CLI over source files
// is the natural front door for a pipeline that takes pseudocode text
// in and produces an asymptotic bound out, matching the shape of the
// pipeline itself rather than the module's original serving surface.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/complexitron/analysis"
	"github.com/google/complexitron/report"
	"github.com/google/complexitron/resultproto"
)

func main() {
	htmlOut := flag.String("html", "", "path to write an HTML report to (optional)")
	textprotoOut := flag.String("textproto", "", "path to write a textproto summary to (optional)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: complexitron [-html out.html] [-textproto out.textproto] <source-file>")
		os.Exit(2)
	}
	path := flag.Arg(0)

	src, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("reading %s: %v", path, err)
	}

	result, err := analysis.AnalyzeFull(string(src), analysis.DefaultOptions())
	if err != nil {
		for _, pe := range result.ParseErrs {
			fmt.Fprintf(os.Stderr, "%s:%d: %s\n", path, pe.Line, pe.Message)
		}
		log.Fatalf("analysis failed: %v", err)
	}

	for _, issue := range result.Issues {
		fmt.Fprintf(os.Stderr, "%s (%s): %s: %s\n", path, issue.Where, issue.Severity, issue.Message)
	}

	for _, p := range result.Procs {
		printProc(p)
	}

	if *htmlOut != "" {
		if err := writeHTMLReport(*htmlOut, path, result); err != nil {
			log.Fatalf("writing HTML report: %v", err)
		}
	}
	if *textprotoOut != "" {
		if err := writeTextprotoSummary(*textprotoOut, result); err != nil {
			log.Fatalf("writing textproto summary: %v", err)
		}
	}
}

func printProc(p analysis.ProcResult) {
	switch {
	case p.Recursive != nil:
		fmt.Printf("%s: O(%s)  [%s]\n", p.Name, p.Recursive.BigO, p.Recursive.Method)
		if p.Recursive.Explanation != "" {
			fmt.Printf("  %s\n", p.Recursive.Explanation)
		}
	case p.Iterative != nil:
		fmt.Printf("%s: O(%s), Omega(%s)\n", p.Name, p.Iterative.BigO, p.Iterative.BigOm)
	default:
		fmt.Printf("%s: (no bound computed)\n", p.Name)
	}
}

func writeHTMLReport(outPath, title string, result analysis.AnalysisResult) error {
	renderer, err := report.New()
	if err != nil {
		return err
	}
	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()
	return renderer.Render(f, title, result)
}

func writeTextprotoSummary(outPath string, result analysis.AnalysisResult) error {
	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()
	for _, p := range result.Procs {
		text, err := resultproto.MarshalText(p)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(f, "# %s\n%s\n", p.Name, text); err != nil {
			return err
		}
	}
	return nil
}
