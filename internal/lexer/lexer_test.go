package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shadowCow/llc-go/internal/token"
)

func TestTokenizeBasicDeclaration(t *testing.T) {
	toks := New("int x = 5;").Tokenize()
	require.Len(t, toks, 5)
	assert.Equal(t, token.KindReserved, toks[0].Kind)
	assert.Equal(t, "int", toks[0].Lexeme)
	assert.Equal(t, token.KindIdent, toks[1].Kind)
	assert.Equal(t, "x", toks[1].Lexeme)
	assert.Equal(t, token.KindOperator, toks[2].Kind)
	assert.Equal(t, token.KindDecimal, toks[3].Kind)
	assert.Equal(t, token.KindDelim, toks[4].Kind)
}

func TestTokenizeSkipsLineAndBlockComments(t *testing.T) {
	toks := New("int /* c */ x // trailing\n;").Tokenize()
	require.Len(t, toks, 3)
	assert.Equal(t, "int", toks[0].Lexeme)
	assert.Equal(t, "x", toks[1].Lexeme)
	assert.Equal(t, ";", toks[2].Lexeme)
}

func TestUnterminatedBlockCommentIsLexicalError(t *testing.T) {
	toks := New("int /* never closed").Tokenize()
	require.Len(t, toks, 2)
	assert.Equal(t, token.KindError, toks[1].Kind)
}

func TestLongestMatchPrefersThreeCharOperator(t *testing.T) {
	toks := New(">>=").Tokenize()
	require.Len(t, toks, 1)
	assert.Equal(t, ">>=", toks[0].Lexeme)
	assert.Equal(t, token.KindOperator, toks[0].Kind)
}

func TestLoneZeroLexesAsDecimal(t *testing.T) {
	// "0" alone matches only the decimal matcher (an octal literal needs
	// at least one digit after the leading 0), so it lexes as a decimal.
	toks := New("0").Tokenize()
	require.Len(t, toks, 1)
	assert.Equal(t, token.KindDecimal, toks[0].Kind)
}

func TestBadSuffixDecimalFollowedByLetters(t *testing.T) {
	toks := New("123abc").Tokenize()
	require.Len(t, toks, 1)
	assert.Equal(t, token.KindError, toks[0].Kind)
	assert.Equal(t, "123abc", toks[0].Lexeme)
}

func TestBadSuffixBareHexPrefix(t *testing.T) {
	toks := New("0x").Tokenize()
	require.Len(t, toks, 1)
	assert.Equal(t, token.KindError, toks[0].Kind)
}

func TestBadSuffixHexWithTrailingLetter(t *testing.T) {
	toks := New("0x5BT").Tokenize()
	require.Len(t, toks, 1)
	assert.Equal(t, token.KindError, toks[0].Kind)
	assert.Equal(t, "0x5BT", toks[0].Lexeme)
}

func TestBadSuffixOctalWithTrailingLetter(t *testing.T) {
	toks := New("012t").Tokenize()
	require.Len(t, toks, 1)
	assert.Equal(t, token.KindError, toks[0].Kind)
	assert.Equal(t, "012t", toks[0].Lexeme)
}

func TestBadSuffixDecimalDigitsAfterLeadingZero(t *testing.T) {
	toks := New("09").Tokenize()
	require.Len(t, toks, 1)
	assert.Equal(t, token.KindError, toks[0].Kind)
	assert.Equal(t, "09", toks[0].Lexeme)
}

func TestStringAndCharLiterals(t *testing.T) {
	toks := New(`"hi" 'a'`).Tokenize()
	require.Len(t, toks, 2)
	assert.Equal(t, token.KindString, toks[0].Kind)
	assert.Equal(t, token.KindChar, toks[1].Kind)
}

func TestUnterminatedStringIsLexicalError(t *testing.T) {
	toks := New(`"never closed`).Tokenize()
	require.Len(t, toks, 1)
	assert.Equal(t, token.KindError, toks[0].Kind)
}

func TestPositionTrackingAcrossNewlines(t *testing.T) {
	toks := New("int\nx;").Tokenize()
	require.Len(t, toks, 3)
	assert.Equal(t, 1, toks[0].Line)
	assert.Equal(t, 2, toks[1].Line)
	assert.Equal(t, 1, toks[1].Col)
}

func TestHashDelimiterForPreprocessor(t *testing.T) {
	toks := New("#include <stdio.h>").Tokenize()
	require.NotEmpty(t, toks)
	assert.Equal(t, "#", toks[0].Lexeme)
	assert.Equal(t, token.KindDelim, toks[0].Kind)
}
