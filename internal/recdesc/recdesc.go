// Package recdesc is the supplementary recursive-descent parser spec.md
// §4.7 notes as present in the original but not part of the core
// table-driven pipeline: "a separate, simpler recursive-descent variant
// implements panic-mode recovery." It is grounded on
// conneroisu-gix/pkg/parser/parser.go's cur/peek lookahead window and
// pkg/parser/errors.go's ParseErrors accumulator, synchronizing after an
// error on ";" / "}" / a declaration-starting keyword instead of
// aborting on the first mismatch. It emits the same internal/parsetree
// node shapes (symbol names matching internal/cgrammar's productions) so
// internal/ast.Simplify works unchanged over its output.
package recdesc

import (
	"fmt"
	"strings"

	"github.com/shadowCow/llc-go/internal/grammar"
	"github.com/shadowCow/llc-go/internal/parsetree"
	"github.com/shadowCow/llc-go/internal/token"
)

// ParseError is one recovered-from or fatal recursive-descent failure.
type ParseError struct {
	Message string
	Line    int
	Col     int
}

func (e ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d, column %d: %s", e.Line, e.Col, e.Message)
}

// ParseErrors accumulates every error recovered from during one parse.
type ParseErrors struct {
	errors []ParseError
}

func (p *ParseErrors) add(msg string, line, col int) {
	p.errors = append(p.errors, ParseError{Message: msg, Line: line, Col: col})
}

func (p *ParseErrors) HasErrors() bool    { return len(p.errors) > 0 }
func (p *ParseErrors) Count() int         { return len(p.errors) }
func (p *ParseErrors) Errors() []ParseError { return p.errors }

func (p *ParseErrors) Error() string {
	if len(p.errors) == 0 {
		return "no errors"
	}
	if len(p.errors) == 1 {
		return p.errors[0].Error()
	}
	msgs := make([]string, len(p.errors))
	for i, e := range p.errors {
		msgs[i] = e.Error()
	}
	return fmt.Sprintf("%d parse errors:\n%s", len(p.errors), strings.Join(msgs, "\n"))
}

var declStartKeywords = map[string]bool{
	"int": true, "char": true, "float": true, "double": true, "void": true,
	"struct": true, "union": true,
}

// Parser is a two-token-lookahead recursive-descent parser producing
// parsetree.Node trees shaped like internal/cgrammar's grammar. Unlike
// internal/parser.Parser, it never fails outright on a mismatch: it
// records the error and synchronizes to the next safe boundary.
type Parser struct {
	tokens []token.Token
	pos    int
	errors *ParseErrors
}

// New creates a parser over a token stream (without a trailing EOF
// token; Parse treats running off the end as EOF).
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens, errors: &ParseErrors{}}
}

func (p *Parser) cur() token.Token {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}
	return p.eofToken()
}

func (p *Parser) peek() token.Token {
	if p.pos+1 < len(p.tokens) {
		return p.tokens[p.pos+1]
	}
	return p.eofToken()
}

func (p *Parser) eofToken() token.Token {
	line, col := 0, 0
	if len(p.tokens) > 0 {
		last := p.tokens[len(p.tokens)-1]
		line, col = last.Line, last.Col+len(last.Lexeme)
	}
	return token.Token{Kind: token.KindEOF, Line: line, Col: col}
}

func (p *Parser) atEOF() bool {
	return p.pos >= len(p.tokens)
}

func (p *Parser) advance() token.Token {
	t := p.cur()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return t
}

// lexemeIs reports whether the current token's lexeme/kind corresponds
// to grammar symbol sym (reserved words/operators/delimiters compare by
// lexeme; ID/constants compare by kind).
func (p *Parser) lexemeIs(sym string) bool {
	t := p.cur()
	switch sym {
	case "ID":
		return t.Kind == token.KindIdent
	case "INT_CONST":
		return t.Kind == token.KindDecimal || t.Kind == token.KindOctal || t.Kind == token.KindHex
	case "FLOAT_CONST":
		return t.Kind == token.KindFloat
	case "CHAR_CONST":
		return t.Kind == token.KindChar
	case "STRING_CONST":
		return t.Kind == token.KindString
	default:
		return t.Lexeme == sym && (t.Kind == token.KindReserved || t.Kind == token.KindOperator || t.Kind == token.KindDelim)
	}
}

// expectLeaf consumes the current token as a leaf labelled sym if it
// matches, else records an error and returns an error-placeholder leaf
// without advancing (so the caller's synchronize() can find a boundary).
func (p *Parser) expectLeaf(sym string) *parsetree.Node {
	if p.lexemeIs(sym) || (sym == "TYPE_NAME" && p.cur().Kind == token.KindIdent) {
		t := p.advance()
		return parsetree.NewLeaf(grammar.Symbol(sym), t)
	}
	t := p.cur()
	p.errors.add(fmt.Sprintf("expected %s, saw %q", sym, t.Lexeme), t.Line, t.Col)
	return parsetree.NewLeaf(grammar.Symbol(sym), token.Token{Kind: token.KindError, Lexeme: "", Line: t.Line, Col: t.Col})
}

// synchronize discards tokens until a statement boundary: a ";" is
// consumed, while a "}" or a declaration-starting keyword is left for the
// next parse attempt to pick up.
func (p *Parser) synchronize() {
	for !p.atEOF() {
		t := p.cur()
		if t.Lexeme == ";" {
			p.advance()
			return
		}
		if t.Lexeme == "}" {
			return
		}
		if t.Kind == token.KindReserved && declStartKeywords[t.Lexeme] {
			return
		}
		p.advance()
	}
}

// Parse parses the full token stream into a "P"-rooted parse tree,
// recovering from statement-level errors instead of aborting.
func (p *Parser) Parse() (*parsetree.Node, *ParseErrors) {
	root := parsetree.NewNonterminal("P")
	extList := parsetree.NewNonterminal("ExtList")
	root.AddChild(extList)

	cursor := extList
	for !p.atEOF() {
		before := p.pos
		def := p.parseExtDef()
		if p.pos == before {
			// An error site landed exactly on a declaration-start
			// keyword or delimiter synchronize() treats as a boundary,
			// so nothing was consumed; force one token of progress so
			// a malformed top-level construct can't spin forever.
			p.advance()
		}
		if def == nil {
			continue
		}
		next := parsetree.NewNonterminal("ExtList")
		cursor.AddChild(def)
		cursor.AddChild(next)
		cursor = next
	}
	cursor.AddChild(parsetree.NewEpsilon())
	root.AddChild(parsetree.NewLeaf(grammar.EOF, p.eofToken()))
	return root, p.errors
}

func (p *Parser) parseExtDef() *parsetree.Node {
	if p.lexemeIs("#") {
		return p.parsePreprocess()
	}

	node := parsetree.NewNonterminal("ExtDef")
	typeSpec := p.parseTypeSpec()
	if typeSpec == nil {
		t := p.cur()
		p.errors.add(fmt.Sprintf("expected a type specifier, saw %q", t.Lexeme), t.Line, t.Col)
		p.synchronize()
		return nil
	}
	node.AddChild(typeSpec)
	node.AddChild(p.parseExtAfterTypeSpec())
	return node
}

func (p *Parser) parsePreprocess() *parsetree.Node {
	node := parsetree.NewNonterminal("ExtDef")
	pp := parsetree.NewNonterminal("Preprocess")
	node.AddChild(pp)
	pp.AddChild(p.expectLeaf("#"))
	pp.AddChild(p.expectLeaf("include"))
	pp.AddChild(p.expectLeaf("<"))
	header := parsetree.NewNonterminal("Header")
	pp.AddChild(header)
	header.AddChild(p.expectLeaf("ID"))
	rest := parsetree.NewNonterminal("HeaderRest")
	header.AddChild(rest)
	if p.lexemeIs(".") {
		rest.AddChild(p.expectLeaf("."))
		rest.AddChild(p.expectLeaf("ID"))
	} else {
		rest.AddChild(parsetree.NewEpsilon())
	}
	pp.AddChild(p.expectLeaf(">"))
	return node
}

var basicTypeKeywords = []string{"int", "char", "float", "double", "void"}

func (p *Parser) parseTypeSpec() *parsetree.Node {
	for _, kw := range basicTypeKeywords {
		if p.lexemeIs(kw) {
			node := parsetree.NewNonterminal("TypeSpec")
			bt := parsetree.NewNonterminal("BasicType")
			node.AddChild(bt)
			bt.AddChild(p.expectLeaf(kw))
			return node
		}
	}
	if p.lexemeIs("struct") || p.lexemeIs("union") {
		node := parsetree.NewNonterminal("TypeSpec")
		node.AddChild(p.parseStructOrUnionSpec())
		return node
	}
	if p.cur().Kind == token.KindIdent {
		// recdesc keeps no type-name set: any identifier in
		// type-specifier position is taken as a TYPE_NAME leaf.
		node := parsetree.NewNonterminal("TypeSpec")
		node.AddChild(p.expectLeaf("TYPE_NAME"))
		return node
	}
	return nil
}

func (p *Parser) parseStructOrUnionSpec() *parsetree.Node {
	kw := "struct"
	symbol := grammar.Symbol("StructSpec")
	if p.lexemeIs("union") {
		kw = "union"
		symbol = "UnionSpec"
	}
	node := parsetree.NewNonterminal(symbol)
	node.AddChild(p.expectLeaf(kw))
	node.AddChild(p.expectLeaf("ID"))
	bodyOpt := parsetree.NewNonterminal(grammar.Symbol(strings.TrimSuffix(string(symbol), "Spec") + "BodyOpt"))
	node.AddChild(bodyOpt)
	if p.lexemeIs("{") {
		bodyOpt.AddChild(p.expectLeaf("{"))
		declListOpt := parsetree.NewNonterminal("DeclListOpt")
		bodyOpt.AddChild(declListOpt)
		p.parseDeclListInto(declListOpt)
		bodyOpt.AddChild(p.expectLeaf("}"))
	} else {
		bodyOpt.AddChild(parsetree.NewEpsilon())
	}
	return node
}

func (p *Parser) parseDeclListInto(parent *parsetree.Node) {
	cursor := parent
	for p.parseTypeSpecStartsHere() {
		before := p.pos
		declList := parsetree.NewNonterminal("DeclList")
		cursor.AddChild(declList)
		declList.AddChild(p.parseDecl())
		if p.pos == before {
			p.advance()
		}
		next := parsetree.NewNonterminal("DeclList")
		declList.AddChild(next)
		cursor = next
	}
	cursor.AddChild(parsetree.NewEpsilon())
}

func (p *Parser) parseTypeSpecStartsHere() bool {
	for _, kw := range basicTypeKeywords {
		if p.lexemeIs(kw) {
			return true
		}
	}
	return p.lexemeIs("struct") || p.lexemeIs("union")
}

func (p *Parser) parseDecl() *parsetree.Node {
	node := parsetree.NewNonterminal("Decl")
	t := p.parseTypeSpec()
	if t == nil {
		p.synchronize()
		return node
	}
	node.AddChild(t)
	node.AddChild(p.parseInitDeclList())
	node.AddChild(p.expectLeaf(";"))
	return node
}

func (p *Parser) parseInitDeclList() *parsetree.Node {
	node := parsetree.NewNonterminal("InitDeclList")
	node.AddChild(p.parseInitDecl())
	tail := parsetree.NewNonterminal("InitDeclListTail")
	node.AddChild(tail)
	cursor := tail
	for p.lexemeIs(",") {
		cursor.AddChild(p.expectLeaf(","))
		cursor.AddChild(p.parseInitDecl())
		next := parsetree.NewNonterminal("InitDeclListTail")
		cursor.AddChild(next)
		cursor = next
	}
	cursor.AddChild(parsetree.NewEpsilon())
	return node
}

func (p *Parser) parseInitDecl() *parsetree.Node {
	node := parsetree.NewNonterminal("InitDecl")
	node.AddChild(p.parsePtrOpt())
	node.AddChild(p.expectLeaf("ID"))
	node.AddChild(p.parseArraySuffixOpt())
	node.AddChild(p.parseInitOpt())
	return node
}

func (p *Parser) parsePtrOpt() *parsetree.Node {
	node := parsetree.NewNonterminal("PtrOpt")
	if p.lexemeIs("*") {
		node.AddChild(p.expectLeaf("*"))
		node.AddChild(p.parsePtrOpt())
	} else {
		node.AddChild(parsetree.NewEpsilon())
	}
	return node
}

func (p *Parser) parseArraySuffixOpt() *parsetree.Node {
	node := parsetree.NewNonterminal("ArraySuffixOpt")
	if p.lexemeIs("[") {
		node.AddChild(p.expectLeaf("["))
		node.AddChild(p.expectLeaf("INT_CONST"))
		node.AddChild(p.expectLeaf("]"))
		node.AddChild(p.parseArraySuffixOpt())
	} else {
		node.AddChild(parsetree.NewEpsilon())
	}
	return node
}

func (p *Parser) parseInitOpt() *parsetree.Node {
	node := parsetree.NewNonterminal("InitOpt")
	if p.lexemeIs("=") {
		node.AddChild(p.expectLeaf("="))
		node.AddChild(p.parseInitializer())
	} else {
		node.AddChild(parsetree.NewEpsilon())
	}
	return node
}

func (p *Parser) parseInitializer() *parsetree.Node {
	node := parsetree.NewNonterminal("Initializer")
	if p.lexemeIs("{") {
		node.AddChild(p.expectLeaf("{"))
		listOpt := parsetree.NewNonterminal("InitListOpt")
		node.AddChild(listOpt)
		if !p.lexemeIs("}") {
			list := parsetree.NewNonterminal("InitList")
			listOpt.AddChild(list)
			list.AddChild(p.parseInitializer())
			tail := parsetree.NewNonterminal("InitListTail")
			list.AddChild(tail)
			cursor := tail
			for p.lexemeIs(",") {
				cursor.AddChild(p.expectLeaf(","))
				cursor.AddChild(p.parseInitializer())
				next := parsetree.NewNonterminal("InitListTail")
				cursor.AddChild(next)
				cursor = next
			}
			cursor.AddChild(parsetree.NewEpsilon())
		} else {
			listOpt.AddChild(parsetree.NewEpsilon())
		}
		node.AddChild(p.expectLeaf("}"))
	} else {
		node.AddChild(p.parseExpr())
	}
	return node
}

// parseExtAfterTypeSpec covers both the function/global-variable path
// and the bare ";" (type-only declaration) path.
func (p *Parser) parseExtAfterTypeSpec() *parsetree.Node {
	node := parsetree.NewNonterminal("ExtAfterTypeSpec")
	if p.lexemeIs(";") {
		node.AddChild(p.expectLeaf(";"))
		return node
	}
	node.AddChild(p.parsePtrOpt())
	node.AddChild(p.expectLeaf("ID"))
	node.AddChild(p.parseExtAfterID())
	return node
}

func (p *Parser) parseExtAfterID() *parsetree.Node {
	node := parsetree.NewNonterminal("ExtAfterId")
	if p.lexemeIs("(") {
		node.AddChild(p.expectLeaf("("))
		paramsOpt := parsetree.NewNonterminal("ParamListOpt")
		node.AddChild(paramsOpt)
		if !p.lexemeIs(")") {
			paramsOpt.AddChild(p.parseParamList())
		} else {
			paramsOpt.AddChild(parsetree.NewEpsilon())
		}
		node.AddChild(p.expectLeaf(")"))
		node.AddChild(p.parseCompoundStmt())
		return node
	}
	node.AddChild(p.parseVarDeclRest())
	node.AddChild(p.expectLeaf(";"))
	return node
}

func (p *Parser) parseParamList() *parsetree.Node {
	node := parsetree.NewNonterminal("ParamList")
	node.AddChild(p.parseParam())
	tail := parsetree.NewNonterminal("ParamListTail")
	node.AddChild(tail)
	cursor := tail
	for p.lexemeIs(",") {
		cursor.AddChild(p.expectLeaf(","))
		cursor.AddChild(p.parseParam())
		next := parsetree.NewNonterminal("ParamListTail")
		cursor.AddChild(next)
		cursor = next
	}
	cursor.AddChild(parsetree.NewEpsilon())
	return node
}

func (p *Parser) parseParam() *parsetree.Node {
	node := parsetree.NewNonterminal("Param")
	t := p.parseTypeSpec()
	if t == nil {
		t = parsetree.NewNonterminal("TypeSpec")
		t.AddChild(parsetree.NewEpsilon())
	}
	node.AddChild(t)
	node.AddChild(p.parsePtrOpt())
	node.AddChild(p.expectLeaf("ID"))
	node.AddChild(p.parseArraySuffixOpt())
	return node
}

func (p *Parser) parseVarDeclRest() *parsetree.Node {
	node := parsetree.NewNonterminal("VarDeclRest")
	node.AddChild(p.parseArraySuffixOpt())
	node.AddChild(p.parseInitOpt())
	more := parsetree.NewNonterminal("VarDeclMore")
	node.AddChild(more)
	cursor := more
	for p.lexemeIs(",") {
		cursor.AddChild(p.expectLeaf(","))
		cursor.AddChild(p.parseInitDecl())
		next := parsetree.NewNonterminal("VarDeclMore")
		cursor.AddChild(next)
		cursor = next
	}
	cursor.AddChild(parsetree.NewEpsilon())
	return node
}

func (p *Parser) parseCompoundStmt() *parsetree.Node {
	node := parsetree.NewNonterminal("CompoundStmt")
	node.AddChild(p.expectLeaf("{"))
	listOpt := parsetree.NewNonterminal("StmtListOpt")
	node.AddChild(listOpt)
	if !p.lexemeIs("}") && !p.atEOF() {
		list := parsetree.NewNonterminal("StmtList")
		listOpt.AddChild(list)
		cursor := list
		for !p.lexemeIs("}") && !p.atEOF() {
			before := p.pos
			cursor.AddChild(p.parseStmt())
			if p.pos == before {
				// A malformed statement that leaves the cursor exactly
				// where it started (e.g. on "}" from a nested recovery)
				// must not spin the statement list forever.
				p.advance()
			}
			next := parsetree.NewNonterminal("StmtList")
			cursor.AddChild(next)
			cursor = next
		}
		cursor.AddChild(parsetree.NewEpsilon())
	} else {
		listOpt.AddChild(parsetree.NewEpsilon())
	}
	node.AddChild(p.expectLeaf("}"))
	return node
}

func (p *Parser) parseStmt() *parsetree.Node {
	node := parsetree.NewNonterminal("Stmt")
	switch {
	case p.lexemeIs("{"):
		node.AddChild(p.parseCompoundStmt())
	case p.lexemeIs("if"):
		node.AddChild(p.parseIfStmt())
	case p.lexemeIs("while"):
		node.AddChild(p.parseWhileStmt())
	case p.lexemeIs("for"):
		node.AddChild(p.parseForStmt())
	case p.lexemeIs("return"):
		node.AddChild(p.parseReturnStmt())
	case p.lexemeIs("break"):
		s := parsetree.NewNonterminal("BreakStmt")
		s.AddChild(p.expectLeaf("break"))
		s.AddChild(p.expectLeaf(";"))
		node.AddChild(s)
	case p.lexemeIs("continue"):
		s := parsetree.NewNonterminal("ContinueStmt")
		s.AddChild(p.expectLeaf("continue"))
		s.AddChild(p.expectLeaf(";"))
		node.AddChild(s)
	case p.parseTypeSpecStartsHere() || p.cur().Kind == token.KindIdent && p.peek().Kind == token.KindIdent:
		node.AddChild(p.parseDecl())
	default:
		node.AddChild(p.parseExprStmt())
	}
	return node
}

func (p *Parser) parseExprStmt() *parsetree.Node {
	node := parsetree.NewNonterminal("ExprStmt")
	if p.lexemeIs(";") {
		node.AddChild(p.expectLeaf(";"))
		return node
	}
	node.AddChild(p.parseExpr())
	node.AddChild(p.expectLeaf(";"))
	return node
}

func (p *Parser) parseIfStmt() *parsetree.Node {
	node := parsetree.NewNonterminal("IfStmt")
	node.AddChild(p.expectLeaf("if"))
	node.AddChild(p.expectLeaf("("))
	node.AddChild(p.parseExpr())
	node.AddChild(p.expectLeaf(")"))
	node.AddChild(p.parseStmt())
	elseOpt := parsetree.NewNonterminal("ElseOpt")
	node.AddChild(elseOpt)
	if p.lexemeIs("else") {
		elseOpt.AddChild(p.expectLeaf("else"))
		elseOpt.AddChild(p.parseStmt())
	} else {
		elseOpt.AddChild(parsetree.NewEpsilon())
	}
	return node
}

func (p *Parser) parseWhileStmt() *parsetree.Node {
	node := parsetree.NewNonterminal("WhileStmt")
	node.AddChild(p.expectLeaf("while"))
	node.AddChild(p.expectLeaf("("))
	node.AddChild(p.parseExpr())
	node.AddChild(p.expectLeaf(")"))
	node.AddChild(p.parseStmt())
	return node
}

func (p *Parser) parseForStmt() *parsetree.Node {
	node := parsetree.NewNonterminal("ForStmt")
	node.AddChild(p.expectLeaf("for"))
	node.AddChild(p.expectLeaf("("))

	initOpt := parsetree.NewNonterminal("ForInitOpt")
	node.AddChild(initOpt)
	if p.lexemeIs(";") {
		initOpt.AddChild(parsetree.NewEpsilon())
	} else if p.parseTypeSpecStartsHere() {
		declForInit := parsetree.NewNonterminal("DeclForInit")
		initOpt.AddChild(declForInit)
		declForInit.AddChild(p.parseTypeSpec())
		declForInit.AddChild(p.parseInitDeclList())
	} else {
		initOpt.AddChild(p.parseExpr())
	}
	node.AddChild(p.expectLeaf(";"))

	condOpt := parsetree.NewNonterminal("ExprOpt")
	node.AddChild(condOpt)
	if !p.lexemeIs(";") {
		condOpt.AddChild(p.parseExpr())
	} else {
		condOpt.AddChild(parsetree.NewEpsilon())
	}
	node.AddChild(p.expectLeaf(";"))

	postOpt := parsetree.NewNonterminal("ExprOpt")
	node.AddChild(postOpt)
	if !p.lexemeIs(")") {
		postOpt.AddChild(p.parseExpr())
	} else {
		postOpt.AddChild(parsetree.NewEpsilon())
	}
	node.AddChild(p.expectLeaf(")"))
	node.AddChild(p.parseStmt())
	return node
}

func (p *Parser) parseReturnStmt() *parsetree.Node {
	node := parsetree.NewNonterminal("ReturnStmt")
	node.AddChild(p.expectLeaf("return"))
	exprOpt := parsetree.NewNonterminal("ExprOpt")
	node.AddChild(exprOpt)
	if !p.lexemeIs(";") {
		exprOpt.AddChild(p.parseExpr())
	} else {
		exprOpt.AddChild(parsetree.NewEpsilon())
	}
	node.AddChild(p.expectLeaf(";"))
	return node
}

// binaryLevel describes one precedence level built from tail
// nonterminals: tailSymbol names the tail nonterminal, operators are the
// lexemes this level consumes, left-associatively.
type binaryLevel struct {
	tailSymbol string
	operators  []string
	next       func(*Parser) *parsetree.Node
}

func (p *Parser) parseExpr() *parsetree.Node {
	node := parsetree.NewNonterminal("Expr")
	node.AddChild(p.parseAssignExpr())
	return node
}

func (p *Parser) parseAssignExpr() *parsetree.Node {
	node := parsetree.NewNonterminal("AssignExpr")
	node.AddChild(p.parseOrExpr())
	tail := parsetree.NewNonterminal("AssignTail")
	node.AddChild(tail)
	if p.lexemeIs("=") {
		tail.AddChild(p.expectLeaf("="))
		tail.AddChild(p.parseAssignExpr())
	} else {
		tail.AddChild(parsetree.NewEpsilon())
	}
	return node
}

func (p *Parser) parseOrExpr() *parsetree.Node {
	return p.parseBinaryLevel(binaryLevel{"OrTail", []string{"||"}, (*Parser).parseAndExpr}, "OrExpr")
}
func (p *Parser) parseAndExpr() *parsetree.Node {
	return p.parseBinaryLevel(binaryLevel{"AndTail", []string{"&&"}, (*Parser).parseEqExpr}, "AndExpr")
}
func (p *Parser) parseEqExpr() *parsetree.Node {
	return p.parseBinaryLevel(binaryLevel{"EqTail", []string{"==", "!="}, (*Parser).parseRelExpr}, "EqExpr")
}
func (p *Parser) parseRelExpr() *parsetree.Node {
	return p.parseBinaryLevel(binaryLevel{"RelTail", []string{"<", ">", "<=", ">="}, (*Parser).parseAddExpr}, "RelExpr")
}
func (p *Parser) parseAddExpr() *parsetree.Node {
	return p.parseBinaryLevel(binaryLevel{"AddTail", []string{"+", "-"}, (*Parser).parseMulExpr}, "AddExpr")
}
func (p *Parser) parseMulExpr() *parsetree.Node {
	return p.parseBinaryLevel(binaryLevel{"MulTail", []string{"*", "/", "%"}, (*Parser).parseUnaryExpr}, "MulExpr")
}

func (p *Parser) parseBinaryLevel(level binaryLevel, headSymbol string) *parsetree.Node {
	node := parsetree.NewNonterminal(grammar.Symbol(headSymbol))
	node.AddChild(level.next(p))
	node.AddChild(p.parseTail(level))
	return node
}

func (p *Parser) parseTail(level binaryLevel) *parsetree.Node {
	node := parsetree.NewNonterminal(grammar.Symbol(level.tailSymbol))
	for _, op := range level.operators {
		if p.lexemeIs(op) {
			node.AddChild(p.expectLeaf(op))
			node.AddChild(level.next(p))
			node.AddChild(p.parseTail(level))
			return node
		}
	}
	node.AddChild(parsetree.NewEpsilon())
	return node
}

func (p *Parser) parseUnaryExpr() *parsetree.Node {
	node := parsetree.NewNonterminal("UnaryExpr")
	if p.lexemeIs("+") || p.lexemeIs("-") || p.lexemeIs("!") {
		node.AddChild(p.expectLeaf(p.cur().Lexeme))
		node.AddChild(p.parseUnaryExpr())
		return node
	}
	node.AddChild(p.parsePostfixExpr())
	return node
}

func (p *Parser) parsePostfixExpr() *parsetree.Node {
	node := parsetree.NewNonterminal("PostfixExpr")
	node.AddChild(p.parsePrimary())
	node.AddChild(p.parsePostfixTail())
	return node
}

func (p *Parser) parsePostfixTail() *parsetree.Node {
	node := parsetree.NewNonterminal("PostfixTail")
	switch {
	case p.lexemeIs("("):
		node.AddChild(p.expectLeaf("("))
		argsOpt := parsetree.NewNonterminal("ArgListOpt")
		node.AddChild(argsOpt)
		if !p.lexemeIs(")") {
			argsOpt.AddChild(p.parseArgList())
		} else {
			argsOpt.AddChild(parsetree.NewEpsilon())
		}
		node.AddChild(p.expectLeaf(")"))
		node.AddChild(p.parsePostfixTail())
	case p.lexemeIs("["):
		node.AddChild(p.expectLeaf("["))
		node.AddChild(p.parseExpr())
		node.AddChild(p.expectLeaf("]"))
		node.AddChild(p.parsePostfixTail())
	case p.lexemeIs("."):
		node.AddChild(p.expectLeaf("."))
		node.AddChild(p.expectLeaf("ID"))
		node.AddChild(p.parsePostfixTail())
	case p.lexemeIs("++"):
		node.AddChild(p.expectLeaf("++"))
		node.AddChild(p.parsePostfixTail())
	case p.lexemeIs("--"):
		node.AddChild(p.expectLeaf("--"))
		node.AddChild(p.parsePostfixTail())
	default:
		node.AddChild(parsetree.NewEpsilon())
	}
	return node
}

func (p *Parser) parseArgList() *parsetree.Node {
	node := parsetree.NewNonterminal("ArgList")
	node.AddChild(p.parseExpr())
	tail := parsetree.NewNonterminal("ArgListTail")
	node.AddChild(tail)
	cursor := tail
	for p.lexemeIs(",") {
		cursor.AddChild(p.expectLeaf(","))
		cursor.AddChild(p.parseExpr())
		next := parsetree.NewNonterminal("ArgListTail")
		cursor.AddChild(next)
		cursor = next
	}
	cursor.AddChild(parsetree.NewEpsilon())
	return node
}

func (p *Parser) parsePrimary() *parsetree.Node {
	node := parsetree.NewNonterminal("Primary")
	switch {
	case p.lexemeIs("printf"):
		node.AddChild(p.expectLeaf("printf"))
	case p.lexemeIs("("):
		node.AddChild(p.expectLeaf("("))
		node.AddChild(p.parseExpr())
		node.AddChild(p.expectLeaf(")"))
	case p.cur().Kind == token.KindIdent:
		node.AddChild(p.expectLeaf("ID"))
	case p.cur().Kind == token.KindDecimal || p.cur().Kind == token.KindOctal || p.cur().Kind == token.KindHex ||
		p.cur().Kind == token.KindFloat || p.cur().Kind == token.KindChar || p.cur().Kind == token.KindString:
		node.AddChild(p.parseConstant())
	default:
		t := p.cur()
		p.errors.add(fmt.Sprintf("unexpected token %q in expression", t.Lexeme), t.Line, t.Col)
		p.synchronize()
		node.AddChild(parsetree.NewEpsilon())
	}
	return node
}

func (p *Parser) parseConstant() *parsetree.Node {
	node := parsetree.NewNonterminal("CONSTANT")
	switch {
	case p.cur().Kind == token.KindDecimal || p.cur().Kind == token.KindOctal || p.cur().Kind == token.KindHex:
		node.AddChild(p.expectLeaf("INT_CONST"))
	case p.cur().Kind == token.KindFloat:
		node.AddChild(p.expectLeaf("FLOAT_CONST"))
	case p.cur().Kind == token.KindChar:
		node.AddChild(p.expectLeaf("CHAR_CONST"))
	default:
		node.AddChild(p.expectLeaf("STRING_CONST"))
	}
	return node
}
