// Package table builds the LL(1) predictive parsing table from a
// grammar's SELECT sets, following original_source/service/parse_table.py's
// ParseTable.from_grammar and tooling/ll1/table.go's conflict bookkeeping.
package table

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shadowCow/llc-go/internal/analysis"
	"github.com/shadowCow/llc-go/internal/grammar"
)

type cellKey struct {
	nonterminal grammar.Symbol
	terminal    grammar.Symbol
}

// Conflict records two productions racing for the same table cell. The
// first one written wins; Conflict is recorded either way so callers can
// audit the grammar's LL(1)-ness.
type Conflict struct {
	Nonterminal grammar.Symbol
	Terminal    grammar.Symbol
	Kept        grammar.Production
	Lost        grammar.Production
}

func (c Conflict) String() string {
	return fmt.Sprintf("M[%s, %s]: kept %s, lost %s", c.Nonterminal, c.Terminal, c.Kept, c.Lost)
}

// Table is the predictive parsing table M[nonterminal, terminal] -> production.
type Table struct {
	cells     map[cellKey]grammar.Production
	Conflicts []Conflict
}

// Get returns the production to apply when expanding nonterminal with
// lookahead terminal, or false if no entry exists.
func (t *Table) Get(nonterminal, terminal grammar.Symbol) (grammar.Production, bool) {
	p, ok := t.cells[cellKey{nonterminal, terminal}]
	return p, ok
}

// NotLL1Error reports that strict table construction found a conflict.
type NotLL1Error struct {
	Conflicts []Conflict
}

func (e *NotLL1Error) Error() string {
	lines := make([]string, 0, len(e.Conflicts)+1)
	lines = append(lines, fmt.Sprintf("grammar is not LL(1): found %d conflict(s)", len(e.Conflicts)))
	for _, c := range e.Conflicts {
		lines = append(lines, "  "+c.String())
	}
	return strings.Join(lines, "\n")
}

// Build fills the table from g's SELECT sets. On a cell collision the
// first-written production wins and a Conflict is appended to
// Table.Conflicts. If strict is true and any conflict was recorded, Build
// returns a *NotLL1Error listing all of them instead of a table; in
// permissive mode (strict=false) it always returns a usable table.
func Build(g *grammar.Grammar, sel analysis.Select, strict bool) (*Table, error) {
	t := &Table{cells: make(map[cellKey]grammar.Production)}

	for i, p := range g.Productions {
		for terminal := range sel[i] {
			if terminal == grammar.Epsilon {
				continue
			}
			key := cellKey{p.Head, terminal}
			existing, occupied := t.cells[key]
			if !occupied {
				t.cells[key] = p
				continue
			}
			if sameProduction(existing, p) {
				continue
			}
			t.Conflicts = append(t.Conflicts, Conflict{
				Nonterminal: p.Head,
				Terminal:    terminal,
				Kept:        existing,
				Lost:        p,
			})
		}
	}

	if strict && len(t.Conflicts) > 0 {
		return nil, &NotLL1Error{Conflicts: t.Conflicts}
	}
	return t, nil
}

func sameProduction(a, b grammar.Production) bool {
	if a.Head != b.Head || len(a.Body) != len(b.Body) {
		return false
	}
	for i := range a.Body {
		if a.Body[i] != b.Body[i] {
			return false
		}
	}
	return true
}

// Entries returns every (nonterminal, terminal, production) cell, sorted
// for deterministic display/export.
func (t *Table) Entries() []Entry {
	out := make([]Entry, 0, len(t.cells))
	for k, p := range t.cells {
		out = append(out, Entry{Nonterminal: k.nonterminal, Terminal: k.terminal, Production: p})
	}
	sortEntries(out)
	return out
}

// Entry is one filled cell of the table.
type Entry struct {
	Nonterminal grammar.Symbol
	Terminal    grammar.Symbol
	Production  grammar.Production
}

func sortEntries(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Nonterminal != entries[j].Nonterminal {
			return entries[i].Nonterminal < entries[j].Nonterminal
		}
		return entries[i].Terminal < entries[j].Terminal
	})
}
