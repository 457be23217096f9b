package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddEmptyBodyIsEpsilon(t *testing.T) {
	g := New("S")
	p := g.Add("A")
	require.Len(t, p.Body, 1)
	assert.Equal(t, Epsilon, p.Body[0])
	assert.True(t, p.IsEpsilon())
}

func TestFinalizeDerivesTerminalsAndNonterminals(t *testing.T) {
	g := New("S")
	g.Add("S", "a", "B")
	g.Add("B", "b")
	g.Add("B")
	g.Finalize()

	assert.True(t, g.IsNonterminal("S"))
	assert.True(t, g.IsNonterminal("B"))
	assert.True(t, g.IsTerminal("a"))
	assert.True(t, g.IsTerminal("b"))
	assert.True(t, g.IsTerminal(EOF), "EOF is always a terminal")
	assert.False(t, g.IsTerminal("S"))
}

func TestProductionsForPreservesInsertionOrder(t *testing.T) {
	g := New("S")
	first := g.Add("S", "a")
	second := g.Add("S", "b")
	g.Finalize()

	prods := g.ProductionsFor("S")
	require.Len(t, prods, 2)
	assert.Equal(t, first, prods[0])
	assert.Equal(t, second, prods[1])
}

func TestHeadsFirstSeenOrder(t *testing.T) {
	g := New("S")
	g.Add("S", "A")
	g.Add("A", "a")
	g.Add("S", "b")
	g.Finalize()

	assert.Equal(t, []Symbol{"S", "A"}, g.Heads())
}

func TestProductionString(t *testing.T) {
	p := Production{Head: "S", Body: []Symbol{"a", "B"}}
	assert.Equal(t, "S -> a B", p.String())

	eps := Production{Head: "A", Body: []Symbol{Epsilon}}
	assert.Equal(t, "A -> epsilon", eps.String())
}
