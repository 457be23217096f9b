package parsetree_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shadowCow/llc-go/internal/grammar"
	"github.com/shadowCow/llc-go/internal/parsetree"
	"github.com/shadowCow/llc-go/internal/token"
)

func TestEpsilonLeafIsDistinguished(t *testing.T) {
	n := parsetree.NewEpsilon()
	assert.True(t, n.IsEpsilon())
	assert.True(t, n.IsLeaf())
	assert.Equal(t, "", n.Lexeme())
}

func TestLeafCarriesTokenLexeme(t *testing.T) {
	n := parsetree.NewLeaf("ID", token.Token{Kind: token.KindIdent, Lexeme: "x", Line: 1, Col: 5})
	assert.True(t, n.IsLeaf())
	assert.False(t, n.IsEpsilon())
	assert.Equal(t, "x", n.Lexeme())
}

func TestLinesUsesBoxDrawingConnectors(t *testing.T) {
	root := parsetree.NewNonterminal("Expr")
	root.AddChild(parsetree.NewLeaf(grammar.Symbol("+"), token.Token{Lexeme: "+"}))
	root.AddChild(parsetree.NewEpsilon())

	lines := root.Lines()
	assert.Equal(t, "Expr", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "|- "))
	assert.True(t, strings.HasPrefix(lines[2], "`- "))
}

func TestStringJoinsLinesWithNewlines(t *testing.T) {
	root := parsetree.NewNonterminal("P")
	assert.Equal(t, "P", root.String())
}
