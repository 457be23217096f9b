// Package lexmatch provides the primitive longest-prefix recognizers the
// lexer composes: pure functions of (text, pos) that return the length of
// the longest prefix starting at pos belonging to their class, or 0 if
// none exists. None of them advance any state or allocate a token; the
// lexer owns sequencing, priority and position tracking.
package lexmatch

// isAlpha, isDigit etc. mirror original_source/service/matcher.py's
// character predicates.
func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isOctDigit(c byte) bool {
	return c >= '0' && c <= '7'
}

func isIdentStart(c byte) bool {
	return isAlpha(c) || c == '_'
}

// IsIdentContinue reports whether c can continue an identifier or a
// numeric lexeme's bad-suffix run. Exported: the lexer needs it directly
// for the bad-suffix check of §4.2 step 8.
func IsIdentContinue(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

func matchWhile(text string, pos int, pred func(byte) bool) int {
	i, n := pos, len(text)
	for i < n && pred(text[i]) {
		i++
	}
	return i - pos
}

// MatchWhitespace matches a maximal run of space/tab/CR/LF/FF/VT.
func MatchWhitespace(text string, pos int) int {
	return matchWhile(text, pos, func(c byte) bool {
		switch c {
		case ' ', '\t', '\r', '\n', '\f', '\v':
			return true
		default:
			return false
		}
	})
}

// MatchIdentifier matches a leading letter/underscore followed by
// letters/digits/underscores.
func MatchIdentifier(text string, pos int) int {
	n := len(text)
	if pos >= n || !isIdentStart(text[pos]) {
		return 0
	}
	i := pos + 1
	for i < n && IsIdentContinue(text[i]) {
		i++
	}
	return i - pos
}

// MatchFloat matches digits '.' digits with an optional exponent. Leading-
// or trailing-dot forms are not floats: both the integer and fractional
// parts are required.
func MatchFloat(text string, pos int) int {
	n := len(text)
	i := pos

	if i >= n || !isDigit(text[i]) {
		return 0
	}
	i += matchWhile(text, i, isDigit)

	if i >= n || text[i] != '.' {
		return 0
	}
	i++

	if i >= n || !isDigit(text[i]) {
		return 0
	}
	i += matchWhile(text, i, isDigit)

	if i < n && (text[i] == 'e' || text[i] == 'E') {
		j := i + 1
		if j < n && (text[j] == '+' || text[j] == '-') {
			j++
		}
		k := j + matchWhile(text, j, isDigit)
		if k == j {
			return 0
		}
		i = k
	}

	return i - pos
}

// MatchHexInt matches "0x"/"0X" followed by one or more hex digits.
func MatchHexInt(text string, pos int) int {
	n := len(text)
	if pos+1 < n && text[pos] == '0' && (text[pos+1] == 'x' || text[pos+1] == 'X') {
		j := pos + 2
		if j < n && isHexDigit(text[j]) {
			for j < n && isHexDigit(text[j]) {
				j++
			}
			return j - pos
		}
	}
	return 0
}

// MatchOctInt matches "0" followed by one or more octal digits.
func MatchOctInt(text string, pos int) int {
	n := len(text)
	if pos < n && text[pos] == '0' {
		j := pos + 1
		if j < n && isOctDigit(text[j]) {
			for j < n && isOctDigit(text[j]) {
				j++
			}
			return j - pos
		}
	}
	return 0
}

// MatchDecInt matches a single "0", or a nonzero digit followed by digits.
func MatchDecInt(text string, pos int) int {
	n := len(text)
	if pos >= n || !isDigit(text[pos]) {
		return 0
	}
	if text[pos] == '0' {
		return 1
	}
	j := pos + 1
	j += matchWhile(text, j, isDigit)
	return j - pos
}

// MatchStringOrChar matches from an opening '"'/'\'' to its closer,
// treating any "\X" as a single unit. It returns the consumed length, the
// surrounding quote rune and whether the literal was left unterminated
// (end of input, or a bare newline inside a double-quoted string).
func MatchStringOrChar(text string, pos int) (length int, quote byte, unterminated bool) {
	n := len(text)
	if pos >= n || (text[pos] != '"' && text[pos] != '\'') {
		return 0, 0, false
	}
	quote = text[pos]
	i := pos + 1
	for i < n {
		c := text[i]
		if c == '\\' {
			i += 2
			continue
		}
		if c == quote {
			return i - pos + 1, quote, false
		}
		if c == '\n' && quote == '"' {
			break
		}
		i++
	}
	length = i - pos
	if length < 1 {
		length = 1
	}
	return length, quote, true
}
