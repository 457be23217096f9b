// Package token defines the lexical token model shared by the lexer,
// grammar and parser: token kinds, the keyword/operator/delimiter tables,
// and the Token value itself.
package token

// Kind identifies the lexical class of a token. It is a string, not an
// int enum, so trace and table output never needs a separate name lookup.
type Kind string

const (
	KindReserved Kind = "RW"
	KindIdent    Kind = "ID"
	KindDecimal  Kind = "NUM10"
	KindOctal    Kind = "NUM8"
	KindHex      Kind = "NUM16"
	KindFloat    Kind = "FLOAT"
	KindString   Kind = "STRING"
	KindChar     Kind = "CHAR"
	KindOperator Kind = "OP"
	KindDelim    Kind = "DL"
	KindComment  Kind = "COMMENT"
	KindError    Kind = "ERROR"
	KindEOF      Kind = "EOF"
)

// Token is one lexeme with its source position. Line and Col are
// 1-indexed; Col counts runes, not bytes.
type Token struct {
	Kind   Kind
	Lexeme string
	Line   int
	Col    int
}

// Keywords is the C89/C90 reserved-word set this front end recognizes.
var Keywords = map[string]bool{
	"auto": true, "double": true, "int": true, "struct": true, "break": true,
	"else": true, "long": true, "switch": true, "case": true, "enum": true,
	"register": true, "typedef": true, "char": true, "extern": true, "return": true,
	"union": true, "const": true, "float": true, "short": true, "unsigned": true,
	"continue": true, "for": true, "signed": true, "void": true, "default": true,
	"goto": true, "sizeof": true, "volatile": true, "do": true, "if": true,
	"static": true, "while": true, "printf": true, "include": true,
}

// Operators lists every operator lexeme this front end recognizes. Order
// is documentation only: the operator/delimiter trie in package lexmatch
// always picks the longest match regardless of table order.
var Operators = []string{
	">>=", "<<=", "==", "!=", ">=", "<=",
	"++", "--", "&&", "||",
	"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=",
	"<<", ">>", "->",
	".", "+", "-", "*", "/", "%", "&", "|", "^", "~", "!", "=", "<", ">", "?",
}

// Delimiters lists every delimiter lexeme this front end recognizes.
var Delimiters = []string{
	"...", "(", ")", "[", "]", "{", "}", ";", ",", ":",
}

// IsKeyword reports whether lexeme names a reserved word.
func IsKeyword(lexeme string) bool {
	return Keywords[lexeme]
}
