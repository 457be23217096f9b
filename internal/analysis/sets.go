// Package analysis computes FIRST, FOLLOW and SELECT sets over a
// grammar.Grammar by fixed-point iteration, following
// original_source/service/first_follow.py and restructured from
// tooling/ll1/first.go and tooling/ll1/follow.go onto flat BNF
// productions instead of an EBNF combinator tree.
package analysis

import (
	"sort"

	"github.com/shadowCow/llc-go/internal/grammar"
)

// SymbolSet is a set of terminals (plus possibly Epsilon or EOF).
type SymbolSet map[grammar.Symbol]bool

func newSet(syms ...grammar.Symbol) SymbolSet {
	s := make(SymbolSet, len(syms))
	for _, sym := range syms {
		s[sym] = true
	}
	return s
}

// union adds every member of b into a, returning true if a grew.
func (a SymbolSet) union(b SymbolSet) bool {
	grew := false
	for sym := range b {
		if !a[sym] {
			a[sym] = true
			grew = true
		}
	}
	return grew
}

// First maps every nonterminal to FIRST(nonterminal); FIRST may contain
// Epsilon if the nonterminal is nullable.
type First map[grammar.Symbol]SymbolSet

// Follow maps every nonterminal to FOLLOW(nonterminal).
type Follow map[grammar.Symbol]SymbolSet

// Select maps each production (by index into g.Productions) to its
// SELECT set. Productions don't carry a stable identity of their own
// beyond (head, body), so callers that need per-production SELECT index
// by production index, not by value.
type Select []SymbolSet

// FirstOfSequence computes FIRST(X1...Xn) for an arbitrary sequence of
// terminals/nonterminals/epsilon, given already-computed FIRST sets. It
// is total: an empty sequence is nullable (= {epsilon}).
func FirstOfSequence(seq []grammar.Symbol, g *grammar.Grammar, first First) SymbolSet {
	result := make(SymbolSet)
	nullable := true
	for _, sym := range seq {
		var symFirst SymbolSet
		if sym == grammar.Epsilon {
			symFirst = newSet(grammar.Epsilon)
		} else if g.IsTerminal(sym) {
			symFirst = newSet(sym)
		} else {
			symFirst = first[sym]
		}
		for t := range symFirst {
			if t != grammar.Epsilon {
				result[t] = true
			}
		}
		if !symFirst[grammar.Epsilon] {
			nullable = false
			break
		}
	}
	if nullable {
		result[grammar.Epsilon] = true
	}
	return result
}

// ComputeFirst computes FIRST for every nonterminal in g by iterating to
// a fixed point: for every production A -> alpha, FIRST(alpha) is folded
// into FIRST(A) until nothing changes.
func ComputeFirst(g *grammar.Grammar) First {
	first := make(First)
	for nt := range g.Nonterminals {
		first[nt] = make(SymbolSet)
	}

	changed := true
	for changed {
		changed = false
		for _, p := range g.Productions {
			alphaFirst := FirstOfSequence(p.Body, g, first)
			if first[p.Head].union(alphaFirst) {
				changed = true
			}
		}
	}
	return first
}

// ComputeFollow computes FOLLOW for every nonterminal in g, given FIRST.
// EOF is seeded into FOLLOW(g.Start) per spec.md's invariant that the end
// marker can always follow the start symbol.
func ComputeFollow(g *grammar.Grammar, first First) Follow {
	follow := make(Follow)
	for nt := range g.Nonterminals {
		follow[nt] = make(SymbolSet)
	}
	follow[g.Start][grammar.EOF] = true

	changed := true
	for changed {
		changed = false
		for _, p := range g.Productions {
			A := p.Head
			body := p.Body
			for i, B := range body {
				if !g.IsNonterminal(B) {
					continue
				}
				beta := body[i+1:]
				if len(beta) > 0 {
					firstBeta := FirstOfSequence(beta, g, first)
					for t := range firstBeta {
						if t != grammar.Epsilon && !follow[B][t] {
							follow[B][t] = true
							changed = true
						}
					}
					if firstBeta[grammar.Epsilon] {
						if follow[B].union(follow[A]) {
							changed = true
						}
					}
				} else {
					if follow[B].union(follow[A]) {
						changed = true
					}
				}
			}
		}
	}
	return follow
}

// ComputeSelect computes SELECT(p) for every production in g, in the
// same order as g.Productions:
//
//	SELECT(A -> alpha) = (FIRST(alpha) \ {epsilon}) U (FOLLOW(A) if epsilon in FIRST(alpha))
func ComputeSelect(g *grammar.Grammar, first First, follow Follow) Select {
	sel := make(Select, len(g.Productions))
	for i, p := range g.Productions {
		firstAlpha := FirstOfSequence(p.Body, g, first)
		s := make(SymbolSet)
		for t := range firstAlpha {
			if t != grammar.Epsilon {
				s[t] = true
			}
		}
		if firstAlpha[grammar.Epsilon] {
			s.union(follow[p.Head])
		}
		sel[i] = s
	}
	return sel
}

// Sorted returns the members of s as a sorted slice of symbols, useful
// for deterministic display.
func (s SymbolSet) Sorted() []grammar.Symbol {
	out := make([]grammar.Symbol, 0, len(s))
	for sym := range s {
		out = append(out, sym)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
