package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shadowCow/llc-go/internal/analysis"
	"github.com/shadowCow/llc-go/internal/cgrammar"
	"github.com/shadowCow/llc-go/internal/grammar"
	"github.com/shadowCow/llc-go/internal/lexer"
	"github.com/shadowCow/llc-go/internal/parser"
	"github.com/shadowCow/llc-go/internal/parsetree"
	"github.com/shadowCow/llc-go/internal/table"
)

// leafLexemes walks a parse tree in order and collects the lexeme of
// every non-epsilon leaf, i.e. every terminal actually matched.
func leafLexemes(n *parsetree.Node, out *[]string) {
	if n.IsEpsilon() || n.Symbol == grammar.EOF {
		return
	}
	if n.IsLeaf() {
		if n.Token != nil {
			*out = append(*out, n.Token.Lexeme)
		}
		return
	}
	for _, c := range n.Children {
		leafLexemes(c, out)
	}
}

// newParser wires the full non-core pipeline (grammar -> sets -> table)
// the way cmd/llc does, so parser tests exercise the real built-in
// grammar rather than a toy fixture.
func newParser(t *testing.T, buildTree bool) (*grammar.Grammar, *table.Table, *parser.Parser) {
	t.Helper()
	g := cgrammar.Build()
	first := analysis.ComputeFirst(g)
	follow := analysis.ComputeFollow(g, first)
	sel := analysis.ComputeSelect(g, first, follow)
	tbl, err := table.Build(g, sel, false)
	require.NoError(t, err, "permissive table build of the built-in grammar must succeed")
	return g, tbl, parser.New(g, tbl, buildTree)
}

func TestBuiltinGrammarBuildsPermissiveTable(t *testing.T) {
	newParser(t, false)
}

func TestAcceptsSimpleGlobalDeclaration(t *testing.T) {
	_, _, p := newParser(t, true)
	toks := lexer.New("int a;").Tokenize()
	tree, err := p.Parse(toks)
	require.NoError(t, err)
	require.NotNil(t, tree)
	assert.Equal(t, grammar.Symbol("P"), tree.Symbol)
}

func TestAcceptsMainFunctionWithReturn(t *testing.T) {
	_, _, p := newParser(t, true)
	toks := lexer.New("int main(){ return 0; }").Tokenize()
	_, err := p.Parse(toks)
	require.NoError(t, err)
}

func TestStructTagPromotionToTypeName(t *testing.T) {
	_, _, p := newParser(t, true)
	toks := lexer.New("struct S { int x; }; S v;").Tokenize()
	_, err := p.Parse(toks)
	require.NoError(t, err)
	assert.True(t, p.TypeNames["S"], "the ID following struct must enter the dynamic type-name set")
}

func TestDanglingElseBindsToInnermostIf(t *testing.T) {
	_, _, p := newParser(t, true)
	toks := lexer.New("int f(){ if (a) if (b) c; else d; }").Tokenize()
	_, err := p.Parse(toks)
	require.NoError(t, err)
}

func TestOperatorPrecedenceParses(t *testing.T) {
	_, _, p := newParser(t, true)
	toks := lexer.New("int f(){ x = 1 + 2 * 3; }").Tokenize()
	_, err := p.Parse(toks)
	require.NoError(t, err)
}

func TestLexicalErrorAbortsParseWithPosition(t *testing.T) {
	_, _, p := newParser(t, true)
	toks := lexer.New("int 1x;").Tokenize()
	_, err := p.Parse(toks)
	require.Error(t, err)
	var perr *parser.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 1, perr.Line)
	assert.Equal(t, 5, perr.Col)
}

func TestTerminalMismatchReportsPosition(t *testing.T) {
	_, _, p := newParser(t, true)
	// An array suffix expects "]" to close, not "}".
	toks := lexer.New("int f(int a[2} { return 0; }").Tokenize()
	_, err := p.Parse(toks)
	require.Error(t, err)
	var perr *parser.ParseError
	require.ErrorAs(t, err, &perr)
	var mismatch *parser.TerminalMismatch
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, 1, perr.Line)
	assert.Equal(t, 14, perr.Col)
}

func TestDeterministicParseAndTrace(t *testing.T) {
	_, _, p1 := newParser(t, true)
	src := "int main(){ int x = 1 + 2 * 3; if (x) return x; else return 0; }"
	toks := lexer.New(src).Tokenize()
	tree1, err1 := p1.Parse(toks)
	require.NoError(t, err1)

	_, _, p2 := newParser(t, true)
	tree2, err2 := p2.Parse(toks)
	require.NoError(t, err2)

	assert.Equal(t, tree1.String(), tree2.String())
	assert.Equal(t, p1.Trace, p2.Trace)
	assert.Equal(t, len(p1.UsedProductions), len(p2.UsedProductions))
}

func TestRoundTripMatchedLexemesEqualLexerLexemes(t *testing.T) {
	_, _, p := newParser(t, true)
	src := "int main(){ return 0; }"
	toks := lexer.New(src).Tokenize()
	tree, err := p.Parse(toks)
	require.NoError(t, err)

	var lexemes []string
	leafLexemes(tree, &lexemes)

	var wantLexemes []string
	for _, tok := range toks {
		wantLexemes = append(wantLexemes, tok.Lexeme)
	}
	assert.Equal(t, wantLexemes, lexemes)
}

func TestStackUnderflowNeverOccursOnWellFormedInput(t *testing.T) {
	_, _, p := newParser(t, true)
	toks := lexer.New("int a;").Tokenize()
	_, err := p.Parse(toks)
	require.NoError(t, err)
}

func TestMissingSemicolonIsTableMissOrMismatch(t *testing.T) {
	_, _, p := newParser(t, true)
	toks := lexer.New("int a").Tokenize()
	_, err := p.Parse(toks)
	require.Error(t, err)
}
