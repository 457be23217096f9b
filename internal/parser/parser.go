// Package parser implements the table-driven LL(1) stack machine described
// by spec.md §4.6, structured as the single stack-of-records
// {symbol, parent, role} that spec.md §9 recommends in place of three
// parallel stacks, restructured from tooling/ll1/parser.go's two-stack
// (stack + nodeStack) machine and tooling/ll1/debug.go's ParseTracer.
package parser

import (
	"fmt"

	"github.com/shadowCow/llc-go/internal/grammar"
	"github.com/shadowCow/llc-go/internal/parsetree"
	"github.com/shadowCow/llc-go/internal/table"
	"github.com/shadowCow/llc-go/internal/token"
)

// LexicalError reports that the token stream itself carries an error
// token.
type LexicalError struct {
	Lexeme string
	Line   int
	Col    int
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("lexical error: %q", e.Lexeme)
}

// TableMissError reports that a nonterminal has no table entry for the
// current lookahead.
type TableMissError struct {
	Nonterminal grammar.Symbol
	Lookahead   grammar.Symbol
	Candidates  []grammar.Symbol
	Line        int
	Col         int
}

func (e *TableMissError) Error() string {
	return fmt.Sprintf("at %s, no production for %s (candidates: %v)", e.Nonterminal, e.Lookahead, e.Candidates)
}

// TerminalMismatch reports that the popped terminal does not match the
// current lookahead.
type TerminalMismatch struct {
	Expected grammar.Symbol
	Saw      grammar.Symbol
	Line     int
	Col      int
}

func (e *TerminalMismatch) Error() string {
	return fmt.Sprintf("expected %s, saw %s", e.Expected, e.Saw)
}

// StackUnderflow is the internal invariant violation of the analysis
// stack emptying before the input is exhausted.
type StackUnderflow struct {
	Line int
	Col  int
}

func (e *StackUnderflow) Error() string {
	return "stack exhausted before input"
}

// ParseError is a unified wrapper so callers can extract (message, line,
// col) regardless of which failure mode fired, mirroring
// original_source/service/parser.py's single ParseError dataclass.
type ParseError struct {
	Message string
	Line    int
	Col     int
	Cause   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("[SyntaxError] at %d:%d: %s", e.Line, e.Col, e.Message)
}

func (e *ParseError) Unwrap() error { return e.Cause }

func wrap(err error, line, col int) *ParseError {
	return &ParseError{Message: err.Error(), Line: line, Col: col, Cause: err}
}

// role tags a stack entry's relationship to tag-name promotion: the ID
// child of a StructSpec/UnionSpec production gets roleTagName so that
// matching it feeds the dynamic type-name set.
type role int

const (
	roleNone role = iota
	roleTagName
)

type stackItem struct {
	symbol grammar.Symbol
	parent *parsetree.Node
	role   role
}

// TraceEntry is one structured row of the parse trace, mirroring
// original_source/main.py's render_trace_table columns.
type TraceEntry struct {
	Step       int
	Stack      string
	Input      string
	Production string
	Action     string
}

// TableEntry identifies one (nonterminal, terminal) cell that was
// consulted during a parse, for --show-table-used/--export-xlsx-used.
type TableEntry struct {
	Nonterminal grammar.Symbol
	Terminal    grammar.Symbol
}

// Parser is a table-driven LL(1) stack machine over a fixed grammar and
// predictive table. One Parser is not safe for concurrent reuse; its
// dynamic type-name set is mutated in place across a single Parse call.
type Parser struct {
	Grammar   *grammar.Grammar
	Table     *table.Table
	BuildTree bool

	TypeNames map[string]bool

	Trace           []string
	StructuredTrace []TraceEntry
	UsedProductions []grammar.Production
	UsedTableEntries []TableEntry

	stepNum int
}

// New creates a parser over g/t. BuildTree controls whether a concrete
// parsetree.Node is constructed; callers that only want acceptance +
// trace can set it false to skip allocation.
func New(g *grammar.Grammar, t *table.Table, buildTree bool) *Parser {
	return &Parser{
		Grammar:   g,
		Table:     t,
		BuildTree: buildTree,
		TypeNames: make(map[string]bool),
	}
}

// lookaheadSymbol is the mapped terminal plus the token it came from, so
// error paths can report position.
type lookaheadSymbol struct {
	sym grammar.Symbol
	tok token.Token
}

// tokenToSymbol implements spec.md §4.6's token_to_symbol mapping.
func (p *Parser) tokenToSymbol(tok token.Token) (grammar.Symbol, error) {
	switch tok.Kind {
	case token.KindError:
		return "", &LexicalError{Lexeme: tok.Lexeme, Line: tok.Line, Col: tok.Col}
	case token.KindEOF:
		return grammar.EOF, nil
	case token.KindIdent:
		if p.TypeNames[tok.Lexeme] {
			return "TYPE_NAME", nil
		}
		return "ID", nil
	case token.KindDecimal, token.KindOctal, token.KindHex:
		return "INT_CONST", nil
	case token.KindFloat:
		return "FLOAT_CONST", nil
	case token.KindChar:
		return "CHAR_CONST", nil
	case token.KindString:
		return "STRING_CONST", nil
	case token.KindReserved, token.KindOperator, token.KindDelim:
		return grammar.Symbol(tok.Lexeme), nil
	default:
		return grammar.Symbol(tok.Lexeme), nil
	}
}

// Parse drives the stack machine over tokens (which must not include a
// trailing EOF token; Parse synthesizes the lookahead of grammar.EOF once
// the stream is exhausted, matching original_source/service/parser.py's
// parse_tokens). It returns the parse tree root (nil if BuildTree is
// false) or a *ParseError.
func (p *Parser) Parse(tokens []token.Token) (*parsetree.Node, error) {
	lookaheads := make([]lookaheadSymbol, 0, len(tokens))
	for _, tok := range tokens {
		sym, err := p.tokenToSymbol(tok)
		if err != nil {
			return nil, wrap(err, tok.Line, tok.Col)
		}
		lookaheads = append(lookaheads, lookaheadSymbol{sym: sym, tok: tok})
	}

	stack := []stackItem{
		{symbol: grammar.EOF},
		{symbol: p.Grammar.Start},
	}

	var root *parsetree.Node
	i := 0

	currentLookahead := func() (grammar.Symbol, token.Token) {
		if i < len(lookaheads) {
			return lookaheads[i].sym, lookaheads[i].tok
		}
		var eofTok token.Token
		if len(lookaheads) > 0 {
			eofTok = lookaheads[len(lookaheads)-1].tok
		}
		return grammar.EOF, eofTok
	}

	inputPreview := func() string {
		s := ""
		end := i + 12
		if end > len(lookaheads) {
			end = len(lookaheads)
		}
		for j := i; j < end; j++ {
			if j > i {
				s += " "
			}
			s += string(lookaheads[j].sym)
		}
		return s
	}

	stackPreview := func() string {
		s := ""
		for j := len(stack) - 1; j >= 0; j-- {
			if j != len(stack)-1 {
				s += " "
			}
			s += string(stack[j].symbol)
		}
		return s
	}

	p.stepNum = 0
	logStep := func(action, production string) {
		p.stepNum++
		p.Trace = append(p.Trace, fmt.Sprintf("%-20s | stack: [%s] | input: %s", action, stackPreview(), inputPreview()))
		p.StructuredTrace = append(p.StructuredTrace, TraceEntry{
			Step:       p.stepNum,
			Stack:      stackPreview(),
			Input:      inputPreview(),
			Production: production,
			Action:     action,
		})
	}

	logStep("INIT", "")

	for {
		if len(stack) == 0 {
			_, tok := currentLookahead()
			return nil, wrap(&StackUnderflow{Line: tok.Line, Col: tok.Col}, tok.Line, tok.Col)
		}

		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		a, aTok := currentLookahead()

		if top.symbol == grammar.EOF && a == grammar.EOF {
			logStep("ACCEPT", "")
			return root, nil
		}

		if p.Grammar.IsTerminal(top.symbol) || top.symbol == grammar.EOF {
			if top.symbol != a {
				return nil, wrap(&TerminalMismatch{Expected: top.symbol, Saw: a, Line: aTok.Line, Col: aTok.Col}, aTok.Line, aTok.Col)
			}

			logStep(fmt.Sprintf("match '%s'", a), "")

			if top.role == roleTagName {
				p.TypeNames[aTok.Lexeme] = true
				for j := i + 1; j < len(lookaheads); j++ {
					if lookaheads[j].tok.Kind == token.KindIdent && lookaheads[j].tok.Lexeme == aTok.Lexeme {
						lookaheads[j].sym = "TYPE_NAME"
					}
				}
			}
			if p.BuildTree && top.parent != nil {
				top.parent.AddChild(parsetree.NewLeaf(top.symbol, aTok))
			}
			i++
			continue
		}

		prod, ok := p.Table.Get(top.symbol, a)
		if !ok {
			row := p.candidatesFor(top.symbol)
			return nil, wrap(&TableMissError{Nonterminal: top.symbol, Lookahead: a, Candidates: row, Line: aTok.Line, Col: aTok.Col}, aTok.Line, aTok.Col)
		}

		p.UsedProductions = append(p.UsedProductions, prod)
		p.UsedTableEntries = append(p.UsedTableEntries, TableEntry{Nonterminal: top.symbol, Terminal: a})

		var node *parsetree.Node
		if p.BuildTree {
			node = parsetree.NewNonterminal(top.symbol)
			if top.parent != nil {
				top.parent.AddChild(node)
			} else {
				root = node
			}
		}

		if prod.IsEpsilon() {
			logStep(fmt.Sprintf("reduce %s  (epsilon)", prod), prod.String())
			if p.BuildTree {
				node.AddChild(parsetree.NewEpsilon())
			}
			continue
		}

		logStep(fmt.Sprintf("reduce %s", prod), prod.String())

		for j := len(prod.Body) - 1; j >= 0; j-- {
			sym := prod.Body[j]
			r := roleNone
			if (prod.Head == "StructSpec" || prod.Head == "UnionSpec") && sym == "ID" {
				r = roleTagName
			}
			stack = append(stack, stackItem{symbol: sym, parent: node, role: r})
		}
	}
}

func (p *Parser) candidatesFor(nonterminal grammar.Symbol) []grammar.Symbol {
	seen := make(map[grammar.Symbol]bool)
	var out []grammar.Symbol
	for _, entry := range p.Table.Entries() {
		if entry.Nonterminal == nonterminal && !seen[entry.Terminal] {
			seen[entry.Terminal] = true
			out = append(out, entry.Terminal)
		}
	}
	return out
}

// UsedNonterminals is a convenience reduction over UsedProductions for
// --show-ff-used: the set of nonterminals that were actually expanded
// during this parse.
func (p *Parser) UsedNonterminals() map[grammar.Symbol]bool {
	out := make(map[grammar.Symbol]bool, len(p.UsedProductions))
	for _, prod := range p.UsedProductions {
		out[prod.Head] = true
	}
	return out
}
