// Command llc is the CLI entry point for the LL(1) C-subset front end:
// it builds the grammar, computes FIRST/FOLLOW/SELECT, builds the
// predictive table, parses a source file, and prints/exports whichever
// views the flags ask for. Flag set and render helpers are ported from
// original_source/main.py's argparse driver.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/shadowCow/llc-go/internal/analysis"
	"github.com/shadowCow/llc-go/internal/ast"
	"github.com/shadowCow/llc-go/internal/cgrammar"
	"github.com/shadowCow/llc-go/internal/grammar"
	"github.com/shadowCow/llc-go/internal/lexer"
	"github.com/shadowCow/llc-go/internal/parser"
	"github.com/shadowCow/llc-go/internal/table"
	"github.com/shadowCow/llc-go/internal/xlsxout"
)

// optionalPathFlag implements flag.Value plus the unexported boolFlag
// interface Go's flag package checks for, so the flag can be given bare
// (falling back to a default path) or with an explicit "=path", mirroring
// original_source/main.py:152-174's argparse nargs="?" const=<default>
// flags (spec.md §6's "--export-xlsx [path]" bracket notation).
type optionalPathFlag struct {
	def string
	val string
}

func (o *optionalPathFlag) String() string {
	if o == nil {
		return ""
	}
	return o.val
}

func (o *optionalPathFlag) Set(s string) error {
	if s == "true" {
		o.val = o.def
	} else {
		o.val = s
	}
	return nil
}

func (o *optionalPathFlag) IsBoolFlag() bool { return true }

// Path returns the export path, or "" if the flag was never given.
func (o *optionalPathFlag) Path() string { return o.val }

type flags struct {
	showFF          bool
	showFFUsed      bool
	ffLookaheadOnly bool
	showSelectAll   bool
	showTable       bool
	showTableUsed   bool
	tableNT         string
	tableLimit      int
	trace           bool
	traceLimit      int
	traceTable      bool
	traceTableLimit int
	exportTraceXlsx *optionalPathFlag
	showTree        bool
	showAST         bool
	exportXlsx      *optionalPathFlag
	exportXlsxUsed  *optionalPathFlag
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("llc", flag.ContinueOnError)
	fs.SetOutput(stderr)

	f := flags{
		exportTraceXlsx: &optionalPathFlag{def: "trace_table.xlsx"},
		exportXlsx:      &optionalPathFlag{def: "parse_table.xlsx"},
		exportXlsxUsed:  &optionalPathFlag{def: "parse_table_used.xlsx"},
	}
	fs.BoolVar(&f.showFF, "show-ff", false, "Show FIRST/FOLLOW/SELECT and table size")
	fs.BoolVar(&f.showFFUsed, "show-ff-used", false, "Show FIRST/FOLLOW/SELECT only for nonterminals/productions used while parsing the source file")
	fs.BoolVar(&f.ffLookaheadOnly, "ff-lookahead-only", false, "With --show-ff-used: filter set elements to terminals actually seen as lookahead")
	fs.BoolVar(&f.showSelectAll, "show-select-all", false, "Show SELECT sets for all productions (can be long)")
	fs.BoolVar(&f.showTable, "show-table", false, "Print LL(1) parse table (can be very long)")
	fs.BoolVar(&f.showTableUsed, "show-table-used", false, "Print only the LL(1) table entries actually used while parsing the source file")
	fs.StringVar(&f.tableNT, "table-nt", "", "Only print one nonterminal row for --show-table (e.g. Expr)")
	fs.IntVar(&f.tableLimit, "table-limit", 200, "How many table entries to print (0 = all)")
	fs.BoolVar(&f.trace, "trace", false, "Trace parsing steps")
	fs.IntVar(&f.traceLimit, "trace-limit", 200, "How many trace lines to print (0 = all)")
	fs.BoolVar(&f.traceTable, "trace-table", false, "Print LL(1) analysis as a step-by-step table")
	fs.IntVar(&f.traceTableLimit, "trace-table-limit", 200, "How many trace-table rows to print (0 = all)")
	fs.Var(f.exportTraceXlsx, "export-trace-xlsx", "Export the LL(1) trace table to an .xlsx file (bare flag defaults to trace_table.xlsx; use --export-trace-xlsx=path for an explicit one)")
	fs.BoolVar(&f.showTree, "show-tree", false, "Print parse tree (syntax tree)")
	fs.BoolVar(&f.showAST, "show-ast", false, "Print a simplified AST (abstract syntax tree)")
	fs.Var(f.exportXlsx, "export-xlsx", "Export LL(1) parse table to an .xlsx file (bare flag defaults to parse_table.xlsx; use --export-xlsx=path for an explicit one)")
	fs.Var(f.exportXlsxUsed, "export-xlsx-used", "Export only the LL(1) table entries used while parsing the source file (bare flag defaults to parse_table_used.xlsx; use --export-xlsx-used=path for an explicit one)")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(stderr, "Usage: llc <source.c> [flags]")
		return 2
	}
	sourcePath := fs.Arg(0)

	raw, err := os.ReadFile(sourcePath)
	if err != nil {
		fmt.Fprintf(stdout, "[Error] Source file not found: %s\n", sourcePath)
		return 2
	}
	text := stripBOM(string(raw))

	g := cgrammar.Build()
	first := analysis.ComputeFirst(g)
	follow := analysis.ComputeFollow(g, first)
	sel := analysis.ComputeSelect(g, first, follow)

	tbl, err := table.Build(g, sel, false)
	if err != nil {
		fmt.Fprintf(stdout, "[Error] %s\n", err)
		return 1
	}

	if path := f.exportXlsx.Path(); path != "" {
		grid := tableGrid(g, tbl, nil, nil)
		if err := xlsxout.WriteGrid(path, "ParseTable", grid); err != nil {
			fmt.Fprintf(stdout, "[Error] %s\n", err)
			return 1
		}
		fmt.Fprintf(stdout, "[Export] LL(1) parse table saved to: %s\n", path)
	}

	if f.showFF {
		printFirstFollowSelect(stdout, g, first, follow, sel, f.showSelectAll)
	}

	if f.showTable {
		fmt.Fprintln(stdout, "=== LL(1) Parse Table ===")
		lines := renderTableLines(g, tbl, f.tableNT, f.tableLimit)
		fmt.Fprintln(stdout, strings.Join(lines, "\n"))
		fmt.Fprintln(stdout)
	}

	lx := lexer.New(text)
	tokens := lx.Tokenize()

	buildTree := f.showTree || f.showAST
	p := parser.New(g, tbl, buildTree)
	tree, parseErr := p.Parse(tokens)
	if parseErr != nil {
		fmt.Fprintf(stdout, "%s\n", parseErr)
		if f.trace {
			fmt.Fprintln(stdout, "\n-- Trace (last few steps) --")
			for _, line := range lastN(p.Trace, 25) {
				fmt.Fprintln(stdout, line)
			}
		}
		return 1
	}

	fmt.Fprintln(stdout, "[OK] parse succeeded")

	if path := f.exportXlsxUsed.Path(); path != "" {
		nts, terms := usedAxes(p.UsedTableEntries)
		grid := tableGrid(g, tbl, nts, terms)
		if err := xlsxout.WriteGrid(path, "ParseTableUsed", grid); err != nil {
			fmt.Fprintf(stdout, "[Error] %s\n", err)
			return 1
		}
		fmt.Fprintf(stdout, "[Export] Used LL(1) table entries saved to: %s\n", path)
	}

	if path := f.exportTraceXlsx.Path(); path != "" {
		rows := p.StructuredTrace
		if f.traceTableLimit != 0 && len(rows) > f.traceTableLimit {
			rows = rows[:f.traceTableLimit]
		}
		grid := [][]string{{"step", "stack", "input", "production", "action"}}
		for _, e := range rows {
			grid = append(grid, []string{fmt.Sprint(e.Step), e.Stack, e.Input, e.Production, e.Action})
		}
		if err := xlsxout.WriteGrid(path, "TraceTable", grid); err != nil {
			fmt.Fprintf(stdout, "[Error] %s\n", err)
			return 1
		}
		fmt.Fprintf(stdout, "[Export] LL(1) trace table saved to: %s\n", path)
	}

	if f.showTableUsed {
		fmt.Fprintln(stdout, "\n=== LL(1) Parse Table (used entries) ===")
		printUsedTable(stdout, p.UsedTableEntries, f.tableLimit)
	}

	if f.showFFUsed {
		printUsedFirstFollowSelect(stdout, g, first, follow, sel, p, f.ffLookaheadOnly)
	}

	if f.trace {
		fmt.Fprintln(stdout, "\n=== Trace ===")
		lines := p.Trace
		if f.traceLimit != 0 {
			lines = lastN(lines, f.traceLimit)
		}
		for _, line := range lines {
			fmt.Fprintln(stdout, line)
		}
	}

	if f.traceTable {
		fmt.Fprintln(stdout, "\n=== Trace Table ===")
		fmt.Fprintln(stdout, renderTraceTable(p.StructuredTrace, f.traceTableLimit))
	}

	if f.showTree && tree != nil {
		fmt.Fprintln(stdout, "\n=== Parse Tree ===")
		fmt.Fprintln(stdout, strings.Join(tree.Lines(), "\n"))
	}

	if f.showAST && tree != nil {
		fmt.Fprintln(stdout, "\n=== AST ===")
		simplified := ast.Simplify(tree)
		var lines []string
		renderASTLines(simplified, "", true, true, &lines)
		fmt.Fprintln(stdout, strings.Join(lines, "\n"))
	}

	return 0
}

func stripBOM(s string) string {
	return strings.TrimPrefix(s, "﻿")
}

func lastN(lines []string, n int) []string {
	if n <= 0 || n >= len(lines) {
		return lines
	}
	return lines[len(lines)-n:]
}

func sortedSymbols(m map[grammar.Symbol]bool) []grammar.Symbol {
	out := make([]grammar.Symbol, 0, len(m))
	for s := range m {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func joinSymbols(syms []grammar.Symbol) string {
	strs := make([]string, len(syms))
	for i, s := range syms {
		strs[i] = string(s)
	}
	return strings.Join(strs, ", ")
}

func printFirstFollowSelect(w io.Writer, g *grammar.Grammar, first analysis.First, follow analysis.Follow, sel analysis.Select, showAll bool) {
	fmt.Fprintln(w, "=== FIRST Sets ===")
	for _, nt := range sortedSymbols(g.Nonterminals) {
		fmt.Fprintf(w, "FIRST(%s) = { %s }\n", nt, joinSymbols(first[nt].Sorted()))
	}
	fmt.Fprintln(w, "\n=== FOLLOW Sets ===")
	for _, nt := range sortedSymbols(g.Nonterminals) {
		fmt.Fprintf(w, "FOLLOW(%s) = { %s }\n", nt, joinSymbols(follow[nt].Sorted()))
	}
	fmt.Fprintln(w, "\n=== SELECT Sets ===")
	limit := len(sel)
	if !showAll && limit > 12 {
		limit = 12
	}
	for i := 0; i < limit; i++ {
		fmt.Fprintf(w, "SELECT(%s) = { %s }\n", g.Productions[i], joinSymbols(sel[i].Sorted()))
	}
	if !showAll && len(sel) > 12 {
		fmt.Fprintln(w, "... (more omitted; use --show-select-all for full list)")
	}

	totalCells := 0
	for i := range sel {
		for t := range sel[i] {
			if t != grammar.Epsilon {
				totalCells++
			}
		}
	}
	fmt.Fprintf(w, "\n[Table] Nonterminals: %d | Terminals: %d\n", len(g.Nonterminals), len(g.Terminals))
	fmt.Fprintf(w, "[Table] Filled cells (pre-conflict): %d\n\n", totalCells)
}

func renderTableLines(g *grammar.Grammar, t *table.Table, nonterminal string, limit int) []string {
	var entries []table.Entry
	for _, e := range t.Entries() {
		if nonterminal != "" && string(e.Nonterminal) != nonterminal {
			continue
		}
		entries = append(entries, e)
	}

	var lines []string
	printed := 0
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("M[%s, %s] = %s", e.Nonterminal, e.Terminal, e.Production))
		printed++
		if limit != 0 && printed >= limit {
			remaining := len(entries) - printed
			if remaining > 0 {
				lines = append(lines, fmt.Sprintf("... omitted %d table entries (increase --table-limit or set 0 for all)", remaining))
			}
			return lines
		}
	}
	return lines
}

func tableGrid(g *grammar.Grammar, t *table.Table, nonterms, terms []grammar.Symbol) [][]string {
	if terms == nil {
		for term := range g.Terminals {
			if term != grammar.Epsilon {
				terms = append(terms, term)
			}
		}
		sort.Slice(terms, func(i, j int) bool { return terms[i] < terms[j] })
	}
	if nonterms == nil {
		nonterms = sortedSymbols(g.Nonterminals)
	}

	header := append([]string{""}, symbolsToStrings(terms)...)
	grid := [][]string{header}
	for _, nt := range nonterms {
		row := []string{string(nt)}
		for _, term := range terms {
			if prod, ok := t.Get(nt, term); ok {
				row = append(row, prod.String())
			} else {
				row = append(row, "")
			}
		}
		grid = append(grid, row)
	}
	return grid
}

func symbolsToStrings(syms []grammar.Symbol) []string {
	out := make([]string, len(syms))
	for i, s := range syms {
		out[i] = string(s)
	}
	return out
}

func usedAxes(entries []parser.TableEntry) ([]grammar.Symbol, []grammar.Symbol) {
	ntSet := make(map[grammar.Symbol]bool)
	termSet := make(map[grammar.Symbol]bool)
	for _, e := range entries {
		ntSet[e.Nonterminal] = true
		termSet[e.Terminal] = true
	}
	return sortedSymbols(ntSet), sortedSymbols(termSet)
}

func printUsedTable(w io.Writer, entries []parser.TableEntry, limit int) {
	seen := make(map[parser.TableEntry]bool)
	printed := 0
	for _, e := range entries {
		if seen[e] {
			continue
		}
		seen[e] = true
		fmt.Fprintf(w, "M[%s, %s] (used)\n", e.Nonterminal, e.Terminal)
		printed++
		if limit != 0 && printed >= limit {
			fmt.Fprintln(w, "... omitted remaining used entries (increase --table-limit or set 0 for all)")
			return
		}
	}
}

func printUsedFirstFollowSelect(w io.Writer, g *grammar.Grammar, first analysis.First, follow analysis.Follow, sel analysis.Select, p *parser.Parser, lookaheadOnly bool) {
	usedNTs := p.UsedNonterminals()
	lookaheadTerms := make(map[grammar.Symbol]bool)
	for _, e := range p.UsedTableEntries {
		lookaheadTerms[e.Terminal] = true
	}
	lookaheadTerms[grammar.EOF] = true
	lookaheadTerms[grammar.Epsilon] = true

	filter := func(set analysis.SymbolSet) []grammar.Symbol {
		syms := set.Sorted()
		if !lookaheadOnly {
			return syms
		}
		var out []grammar.Symbol
		for _, s := range syms {
			if lookaheadTerms[s] {
				out = append(out, s)
			}
		}
		return out
	}

	nts := sortedSymbols(usedNTs)

	fmt.Fprintln(w, "\n=== FIRST Sets (used) ===")
	for _, nt := range nts {
		fmt.Fprintf(w, "FIRST(%s) = { %s }\n", nt, joinSymbols(filter(first[nt])))
	}
	fmt.Fprintln(w, "\n=== FOLLOW Sets (used) ===")
	for _, nt := range nts {
		fmt.Fprintf(w, "FOLLOW(%s) = { %s }\n", nt, joinSymbols(filter(follow[nt])))
	}
	fmt.Fprintln(w, "\n=== SELECT Sets (used productions) ===")
	seen := make(map[string]bool)
	for _, prod := range p.UsedProductions {
		key := prod.String()
		if seen[key] {
			continue
		}
		seen[key] = true
		idx := indexOfProduction(g, prod)
		if idx < 0 {
			continue
		}
		fmt.Fprintf(w, "SELECT(%s) = { %s }\n", prod, joinSymbols(filter(sel[idx])))
	}
}

func indexOfProduction(g *grammar.Grammar, p grammar.Production) int {
	for i, candidate := range g.Productions {
		if candidate.Head == p.Head && len(candidate.Body) == len(p.Body) {
			match := true
			for j := range candidate.Body {
				if candidate.Body[j] != p.Body[j] {
					match = false
					break
				}
			}
			if match {
				return i
			}
		}
	}
	return -1
}

func renderTraceTable(entries []parser.TraceEntry, limit int) string {
	rows := entries
	if limit != 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	headers := []string{"step", "stack", "input", "production", "action"}
	data := make([][]string, len(rows))
	for i, e := range rows {
		data[i] = []string{fmt.Sprint(e.Step), e.Stack, e.Input, e.Production, e.Action}
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range data {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	fmtRow := func(row []string) string {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = cell + strings.Repeat(" ", widths[i]-len(cell))
		}
		return strings.Join(cells, " | ")
	}

	lines := []string{fmtRow(headers)}
	sepCells := make([]string, len(widths))
	for i, w := range widths {
		sepCells[i] = strings.Repeat("-", w)
	}
	lines = append(lines, strings.Join(sepCells, "-+-"))
	for _, row := range data {
		lines = append(lines, fmtRow(row))
	}
	return strings.Join(lines, "\n")
}

// renderASTLines renders n using the same box-drawing convention as
// internal/parsetree.Node.Lines, ported from main.py's render_ast_lines.
func renderASTLines(n *ast.Node, prefix string, isLast, isRoot bool, out *[]string) {
	label := n.Kind
	if n.HasValue {
		label = n.Kind + ": " + n.Value
	}
	if isRoot {
		*out = append(*out, label)
	} else {
		connector := "|- "
		if isLast {
			connector = "`- "
		}
		*out = append(*out, prefix+connector+label)
	}

	childPrefix := prefix
	if !isRoot {
		if isLast {
			childPrefix += "   "
		} else {
			childPrefix += "|  "
		}
	}
	for i, c := range n.Children {
		renderASTLines(c, childPrefix, i == len(n.Children)-1, false, out)
	}
}
