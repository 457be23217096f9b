package lexmatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrieMatchLongestPrefersLongerOperator(t *testing.T) {
	tr := NewTrie()

	lexeme, tag, ok := tr.MatchLongest(">>=x", 0)
	require.True(t, ok)
	assert.Equal(t, ">>=", lexeme)
	assert.Equal(t, TagOperator, tag)

	lexeme, _, ok = tr.MatchLongest(">=x", 0)
	require.True(t, ok)
	assert.Equal(t, ">=", lexeme)

	lexeme, _, ok = tr.MatchLongest(">x", 0)
	require.True(t, ok)
	assert.Equal(t, ">", lexeme)
}

func TestTrieMatchLongestDelimiter(t *testing.T) {
	tr := NewTrie()
	lexeme, tag, ok := tr.MatchLongest("...x", 0)
	require.True(t, ok)
	assert.Equal(t, "...", lexeme)
	assert.Equal(t, TagDelimiter, tag)
}

func TestTrieMatchLongestNoMatch(t *testing.T) {
	tr := NewTrie()
	_, _, ok := tr.MatchLongest("abc", 0)
	assert.False(t, ok)
}
