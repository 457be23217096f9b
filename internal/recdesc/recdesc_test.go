package recdesc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shadowCow/llc-go/internal/ast"
	"github.com/shadowCow/llc-go/internal/lexer"
	"github.com/shadowCow/llc-go/internal/recdesc"
)

func TestParsesWellFormedProgramWithoutErrors(t *testing.T) {
	toks := lexer.New("int main(){ return 0; }").Tokenize()
	tree, errs := recdesc.New(toks).Parse()
	require.NotNil(t, tree)
	assert.False(t, errs.HasErrors())
}

func TestRecoversFromAMissingSemicolonAndKeepsParsing(t *testing.T) {
	toks := lexer.New("int a\nint b;").Tokenize()
	tree, errs := recdesc.New(toks).Parse()
	require.NotNil(t, tree)
	assert.True(t, errs.HasErrors())
	assert.Equal(t, 1, errs.Count())
}

func TestProducesATreeAstSimplifyCanConsume(t *testing.T) {
	toks := lexer.New("int x = 1 + 2 * 3;").Tokenize()
	tree, errs := recdesc.New(toks).Parse()
	require.False(t, errs.HasErrors())
	simplified := ast.Simplify(tree)
	require.Len(t, simplified.Children, 1)
	assert.Equal(t, "GlobalDecl", simplified.Children[0].Kind)
}

func TestMultipleErrorsAreAllAccumulated(t *testing.T) {
	toks := lexer.New("int a : int b;\nint c : int d;").Tokenize()
	_, errs := recdesc.New(toks).Parse()
	assert.True(t, errs.HasErrors())
	assert.GreaterOrEqual(t, errs.Count(), 2)
	for _, e := range errs.Errors() {
		assert.NotZero(t, e.Line)
	}
}

func TestRecoveryMakesForwardProgressOnRepeatedDeclStartKeywords(t *testing.T) {
	toks := lexer.New("int int int x;").Tokenize()
	tree, errs := recdesc.New(toks).Parse()
	require.NotNil(t, tree)
	assert.True(t, errs.HasErrors())
}
