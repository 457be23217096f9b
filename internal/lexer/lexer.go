// Package lexer implements the hand-written longest-match scanner
// described by spec.md §4.2, ported from
// original_source/service/lexer.py and driving the primitive matchers in
// package lexmatch.
package lexer

import (
	"github.com/shadowCow/llc-go/internal/lexmatch"
	"github.com/shadowCow/llc-go/internal/token"
)

// Lexer tokenizes source text on demand. It is single-pass and
// stateful: each call to Next advances the internal cursor.
type Lexer struct {
	text string
	pos  int
	line int
	col  int
	trie *lexmatch.Trie
}

// New creates a Lexer over text. Any UTF-8 BOM should already have been
// stripped by the caller (the CLI driver does this on read, per
// spec.md §6).
func New(text string) *Lexer {
	return &Lexer{text: text, pos: 0, line: 1, col: 1, trie: lexmatch.NewTrie()}
}

// advance moves the cursor forward by the given lexeme, tracking
// line/col character by character.
func (l *Lexer) advance(lexeme string) {
	for i := 0; i < len(lexeme); i++ {
		if lexeme[i] == '\n' {
			l.line++
			l.col = 1
		} else if lexeme[i]&0xC0 != 0x80 {
			l.col++
		}
	}
	l.pos += len(lexeme)
}

func (l *Lexer) peek(k int) string {
	end := l.pos + k
	if end > len(l.text) {
		end = len(l.text)
	}
	return l.text[l.pos:end]
}

// skipWhitespace consumes one maximal run of whitespace, returning
// whether it consumed anything.
func (l *Lexer) skipWhitespace() bool {
	n := lexmatch.MatchWhitespace(l.text, l.pos)
	if n > 0 {
		l.advance(l.text[l.pos : l.pos+n])
		return true
	}
	return false
}

// skipComments consumes one "//"-to-newline or "/*...*/" comment. It
// returns (true, nil) when a comment was skipped, (false, nil) when
// there was none, and (false, errTok) when a block comment is never
// closed.
func (l *Lexer) skipComments() (bool, *token.Token) {
	if l.peek(2) == "/*" {
		end := indexFrom(l.text, "*/", l.pos+2)
		if end == -1 {
			lexeme := l.text[l.pos:]
			tok := token.Token{Kind: token.KindError, Lexeme: lexeme, Line: l.line, Col: l.col}
			l.advance(lexeme)
			return false, &tok
		}
		l.advance(l.text[l.pos : end+2])
		return true, nil
	}
	if l.peek(2) == "//" {
		nl := indexFrom(l.text, "\n", l.pos)
		if nl == -1 {
			l.advance(l.text[l.pos:])
		} else {
			l.advance(l.text[l.pos:nl])
		}
		return true, nil
	}
	return false, nil
}

func indexFrom(s, sub string, from int) int {
	if from > len(s) {
		return -1
	}
	idx := indexOf(s[from:], sub)
	if idx == -1 {
		return -1
	}
	return from + idx
}

// indexOf is strings.Index inlined to keep this package's imports to the
// matchers it actually needs; kept trivial on purpose.
func indexOf(s, sub string) int {
	n, m := len(s), len(sub)
	if m == 0 {
		return 0
	}
	for i := 0; i+m <= n; i++ {
		if s[i:i+m] == sub {
			return i
		}
	}
	return -1
}

// tryStringOrChar attempts to match a string/char literal at the cursor.
// Returns nil if the cursor isn't at an opening quote.
func (l *Lexer) tryStringOrChar() *token.Token {
	length, quote, unterminated := lexmatch.MatchStringOrChar(l.text, l.pos)
	if length == 0 {
		return nil
	}
	lexeme := l.text[l.pos : l.pos+length]
	kind := token.KindChar
	if quote == '"' {
		kind = token.KindString
	}
	if unterminated {
		kind = token.KindError
	}
	tok := token.Token{Kind: kind, Lexeme: lexeme, Line: l.line, Col: l.col}
	l.advance(lexeme)
	return &tok
}

type candidate struct {
	length int
	kind   token.Kind
}

// priority ranks equal-length candidates per spec.md §4.2 step 6: numeric
// beats operator/delimiter beats identifier/keyword.
func priority(kind token.Kind) int {
	switch kind {
	case token.KindFloat, token.KindHex, token.KindOctal, token.KindDecimal:
		return 3
	case token.KindOperator, token.KindDelim:
		return 2
	default:
		return 1
	}
}

// Next returns the next token, advancing the cursor. It never returns an
// error: unrecognized input produces a token.KindError token instead, per
// spec.md §4.2's "the lexer does not raise."
func (l *Lexer) Next() token.Token {
	for {
		progressed := l.skipWhitespace()
		ok, errTok := l.skipComments()
		if errTok != nil {
			return *errTok
		}
		if ok {
			progressed = true
		}
		if !progressed {
			break
		}
	}

	if l.pos >= len(l.text) {
		return token.Token{Kind: token.KindEOF, Line: l.line, Col: l.col}
	}

	if tok := l.tryStringOrChar(); tok != nil {
		return *tok
	}

	if l.peek(1) == "#" {
		tok := token.Token{Kind: token.KindDelim, Lexeme: "#", Line: l.line, Col: l.col}
		l.advance("#")
		return tok
	}

	start := l.pos
	var candidates []candidate

	if n := lexmatch.MatchFloat(l.text, start); n > 0 {
		candidates = append(candidates, candidate{n, token.KindFloat})
	}
	if n := lexmatch.MatchHexInt(l.text, start); n > 0 {
		candidates = append(candidates, candidate{n, token.KindHex})
	}
	if n := lexmatch.MatchOctInt(l.text, start); n > 0 {
		candidates = append(candidates, candidate{n, token.KindOctal})
	}
	if n := lexmatch.MatchDecInt(l.text, start); n > 0 {
		candidates = append(candidates, candidate{n, token.KindDecimal})
	}
	if lexeme, tag, ok := l.trie.MatchLongest(l.text, start); ok {
		kind := token.KindOperator
		if tag == lexmatch.TagDelimiter {
			kind = token.KindDelim
		}
		candidates = append(candidates, candidate{len(lexeme), kind})
	}
	if n := lexmatch.MatchIdentifier(l.text, start); n > 0 {
		candidates = append(candidates, candidate{n, ""})
	}

	if len(candidates) == 0 {
		bad := l.text[l.pos : l.pos+1]
		tok := token.Token{Kind: token.KindError, Lexeme: bad, Line: l.line, Col: l.col}
		l.advance(bad)
		return tok
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.length > best.length || (c.length == best.length && priority(c.kind) > priority(best.kind)) {
			best = c
		}
	}
	length, kind := best.length, best.kind
	lexeme := l.text[l.pos : l.pos+length]

	// Numeric-prefix fix-ups when the decimal match is just a bare "0".
	if kind == token.KindDecimal && lexeme == "0" {
		j := l.pos + 1
		if j < len(l.text) && (l.text[j] == 'x' || l.text[j] == 'X') {
			if n := lexmatch.MatchHexInt(l.text, l.pos); n > 0 {
				length, kind = n, token.KindHex
				lexeme = l.text[l.pos : l.pos+length]
			} else {
				k := j + 1
				for k < len(l.text) && lexmatch.IsIdentContinue(l.text[k]) {
					k++
				}
				badLen := k - l.pos
				if badLen < 2 {
					badLen = 2
					if l.pos+badLen > len(l.text) {
						badLen = len(l.text) - l.pos
					}
				}
				bad := l.text[l.pos : l.pos+badLen]
				tok := token.Token{Kind: token.KindError, Lexeme: bad, Line: l.line, Col: l.col}
				l.advance(bad)
				return tok
			}
		} else if j < len(l.text) && l.text[j] >= '0' && l.text[j] <= '7' {
			if n := lexmatch.MatchOctInt(l.text, l.pos); n > 0 {
				length, kind = n, token.KindOctal
				lexeme = l.text[l.pos : l.pos+length]
			}
		} else if j < len(l.text) && (l.text[j] == '8' || l.text[j] == '9') {
			k := j + 1
			for k < len(l.text) && lexmatch.IsIdentContinue(l.text[k]) {
				k++
			}
			bad := l.text[l.pos:k]
			tok := token.Token{Kind: token.KindError, Lexeme: bad, Line: l.line, Col: l.col}
			l.advance(bad)
			return tok
		}
	}

	// Bad-suffix check: a numeric lexeme directly followed by an
	// identifier-continue character is malformed.
	switch kind {
	case token.KindFloat, token.KindHex, token.KindOctal, token.KindDecimal:
		j := l.pos + length
		if j < len(l.text) && lexmatch.IsIdentContinue(l.text[j]) {
			k := j
			for k < len(l.text) && lexmatch.IsIdentContinue(l.text[k]) {
				k++
			}
			bad := l.text[l.pos:k]
			tok := token.Token{Kind: token.KindError, Lexeme: bad, Line: l.line, Col: l.col}
			l.advance(bad)
			return tok
		}
	}

	if kind == "" {
		if token.IsKeyword(lexeme) {
			kind = token.KindReserved
		} else {
			kind = token.KindIdent
		}
	}

	tok := token.Token{Kind: kind, Lexeme: lexeme, Line: l.line, Col: l.col}
	l.advance(lexeme)
	return tok
}

// Tokenize drains the lexer into a slice, excluding EOF (the parser
// appends its own EOF marker, per spec.md §4.2).
func (l *Lexer) Tokenize() []token.Token {
	var out []token.Token
	for {
		tok := l.Next()
		if tok.Kind == token.KindEOF {
			break
		}
		out = append(out, tok)
	}
	return out
}
