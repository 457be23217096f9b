package lexmatch

import "github.com/shadowCow/llc-go/internal/token"

// Tag distinguishes which table an operator/delimiter trie entry came
// from, so the lexer can tell operators and delimiters apart after a
// longest-match hit.
type Tag int

const (
	TagOperator Tag = iota
	TagDelimiter
)

type trieNode struct {
	next    map[byte]*trieNode
	end     bool
	tag     Tag
	lexeme  string
	hasTag  bool
}

// Trie is a prefix trie over operator and delimiter lexemes, supporting
// longest-match lookup at an arbitrary text position.
type Trie struct {
	root *trieNode
}

// NewTrie builds a trie preloaded with token.Operators and
// token.Delimiters.
func NewTrie() *Trie {
	t := &Trie{root: &trieNode{next: make(map[byte]*trieNode)}}
	for _, op := range token.Operators {
		t.add(op, TagOperator)
	}
	for _, dl := range token.Delimiters {
		t.add(dl, TagDelimiter)
	}
	return t
}

func (t *Trie) add(s string, tag Tag) {
	n := t.root
	for i := 0; i < len(s); i++ {
		ch := s[i]
		next, ok := n.next[ch]
		if !ok {
			next = &trieNode{next: make(map[byte]*trieNode)}
			n.next[ch] = next
		}
		n = next
	}
	n.end = true
	n.tag = tag
	n.hasTag = true
	n.lexeme = s
}

// MatchLongest returns the longest operator/delimiter lexeme that is a
// prefix of text at pos, and its tag. ok is false if no lexeme matches.
func (t *Trie) MatchLongest(text string, pos int) (lexeme string, tag Tag, ok bool) {
	n := t.root
	i, end := pos, len(text)
	var lastLen int
	var lastTag Tag
	found := false

	for i < end {
		next, hit := n.next[text[i]]
		if !hit {
			break
		}
		n = next
		i++
		if n.end {
			lastLen = i - pos
			lastTag = n.tag
			found = true
		}
	}

	if !found {
		return "", 0, false
	}
	return text[pos : pos+lastLen], lastTag, true
}
