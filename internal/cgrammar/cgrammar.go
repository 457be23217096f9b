// Package cgrammar assembles the built-in LL(1) grammar for the C
// subset spec.md §4.3 describes, imperatively via grammar.Grammar.Add
// calls in the style of original_source/service/grammer.py's
// build_grammar. Per spec.md's Open Questions, this is the richer
// variant: it carries StructSpec/UnionSpec/TYPE_NAME/PtrOpt and
// Initializer/InitList productions that
// original_source/service/ast_builder.py's functions expect but the
// simpler copy of build_grammar in this pack omits.
package cgrammar

import "github.com/shadowCow/llc-go/internal/grammar"

// Build returns the finalized grammar, starting at nonterminal "P".
func Build() *grammar.Grammar {
	g := grammar.New("P")

	g.Add("P", "ExtList", grammar.EOF)
	g.Add("ExtList", "ExtDef", "ExtList")
	g.Add("ExtList")

	g.Add("ExtDef", "Preprocess")
	g.Add("ExtDef", "TypeSpec", "ExtAfterTypeSpec")

	g.Add("Preprocess", "#", "include", "<", "Header", ">")
	g.Add("Header", "ID", "HeaderRest")
	g.Add("HeaderRest", ".", "ID")
	g.Add("HeaderRest")

	g.Add("TypeSpec", "BasicType")
	g.Add("TypeSpec", "StructSpec")
	g.Add("TypeSpec", "UnionSpec")
	g.Add("TypeSpec", "TYPE_NAME")
	g.Add("BasicType", "int")
	g.Add("BasicType", "char")
	g.Add("BasicType", "float")
	g.Add("BasicType", "double")
	g.Add("BasicType", "void")

	g.Add("StructSpec", "struct", "ID", "StructBodyOpt")
	g.Add("StructBodyOpt", "{", "DeclListOpt", "}")
	g.Add("StructBodyOpt")

	g.Add("UnionSpec", "union", "ID", "UnionBodyOpt")
	g.Add("UnionBodyOpt", "{", "DeclListOpt", "}")
	g.Add("UnionBodyOpt")

	g.Add("DeclListOpt", "DeclList")
	g.Add("DeclListOpt")
	g.Add("DeclList", "Decl", "DeclList")
	g.Add("DeclList")

	g.Add("ExtAfterTypeSpec", "PtrOpt", "ID", "ExtAfterId")
	g.Add("ExtAfterTypeSpec", ";")

	g.Add("PtrOpt", "*", "PtrOpt")
	g.Add("PtrOpt")

	g.Add("ExtAfterId", "(", "ParamListOpt", ")", "CompoundStmt")
	g.Add("ExtAfterId", "VarDeclRest", ";")

	g.Add("VarDeclRest", "ArraySuffixOpt", "InitOpt", "VarDeclMore")
	g.Add("VarDeclMore", ",", "InitDecl", "VarDeclMore")
	g.Add("VarDeclMore")

	g.Add("Decl", "TypeSpec", "InitDeclList", ";")
	g.Add("InitDeclList", "InitDecl", "InitDeclListTail")
	g.Add("InitDeclListTail", ",", "InitDecl", "InitDeclListTail")
	g.Add("InitDeclListTail")
	g.Add("InitDecl", "PtrOpt", "ID", "ArraySuffixOpt", "InitOpt")
	g.Add("ArraySuffixOpt", "[", "INT_CONST", "]", "ArraySuffixOpt")
	g.Add("ArraySuffixOpt")
	g.Add("InitOpt", "=", "Initializer")
	g.Add("InitOpt")

	g.Add("Initializer", "Expr")
	g.Add("Initializer", "{", "InitListOpt", "}")
	g.Add("InitListOpt", "InitList")
	g.Add("InitListOpt")
	g.Add("InitList", "Initializer", "InitListTail")
	g.Add("InitListTail", ",", "Initializer", "InitListTail")
	g.Add("InitListTail")

	g.Add("ParamListOpt", "ParamList")
	g.Add("ParamListOpt")
	g.Add("ParamList", "Param", "ParamListTail")
	g.Add("ParamListTail", ",", "Param", "ParamListTail")
	g.Add("ParamListTail")
	g.Add("Param", "TypeSpec", "PtrOpt", "ID", "ArraySuffixOpt")

	g.Add("Stmt", "ExprStmt")
	g.Add("Stmt", "CompoundStmt")
	g.Add("Stmt", "IfStmt")
	g.Add("Stmt", "WhileStmt")
	g.Add("Stmt", "ForStmt")
	g.Add("Stmt", "ReturnStmt")
	g.Add("Stmt", "BreakStmt")
	g.Add("Stmt", "ContinueStmt")
	g.Add("Stmt", "Decl")

	g.Add("CompoundStmt", "{", "StmtListOpt", "}")
	g.Add("StmtListOpt", "StmtList")
	g.Add("StmtListOpt")
	g.Add("StmtList", "Stmt", "StmtList")
	g.Add("StmtList")

	g.Add("ExprStmt", "Expr", ";")
	g.Add("ExprStmt", ";")

	g.Add("IfStmt", "if", "(", "Expr", ")", "Stmt", "ElseOpt")
	g.Add("ElseOpt", "else", "Stmt")
	g.Add("ElseOpt")

	g.Add("WhileStmt", "while", "(", "Expr", ")", "Stmt")

	g.Add("ForStmt", "for", "(", "ForInitOpt", ";", "ExprOpt", ";", "ExprOpt", ")", "Stmt")
	g.Add("ForInitOpt", "DeclForInit")
	g.Add("ForInitOpt", "Expr")
	g.Add("ForInitOpt")
	g.Add("DeclForInit", "TypeSpec", "InitDeclList")
	g.Add("ExprOpt", "Expr")
	g.Add("ExprOpt")

	g.Add("ReturnStmt", "return", "ExprOpt", ";")
	g.Add("BreakStmt", "break", ";")
	g.Add("ContinueStmt", "continue", ";")

	g.Add("Expr", "AssignExpr")
	g.Add("AssignExpr", "OrExpr", "AssignTail")
	g.Add("AssignTail", "=", "AssignExpr")
	g.Add("AssignTail")

	g.Add("OrExpr", "AndExpr", "OrTail")
	g.Add("OrTail", "||", "AndExpr", "OrTail")
	g.Add("OrTail")

	g.Add("AndExpr", "EqExpr", "AndTail")
	g.Add("AndTail", "&&", "EqExpr", "AndTail")
	g.Add("AndTail")

	g.Add("EqExpr", "RelExpr", "EqTail")
	g.Add("EqTail", "==", "RelExpr", "EqTail")
	g.Add("EqTail", "!=", "RelExpr", "EqTail")
	g.Add("EqTail")

	g.Add("RelExpr", "AddExpr", "RelTail")
	g.Add("RelTail", "<", "AddExpr", "RelTail")
	g.Add("RelTail", ">", "AddExpr", "RelTail")
	g.Add("RelTail", "<=", "AddExpr", "RelTail")
	g.Add("RelTail", ">=", "AddExpr", "RelTail")
	g.Add("RelTail")

	g.Add("AddExpr", "MulExpr", "AddTail")
	g.Add("AddTail", "+", "MulExpr", "AddTail")
	g.Add("AddTail", "-", "MulExpr", "AddTail")
	g.Add("AddTail")

	g.Add("MulExpr", "UnaryExpr", "MulTail")
	g.Add("MulTail", "*", "UnaryExpr", "MulTail")
	g.Add("MulTail", "/", "UnaryExpr", "MulTail")
	g.Add("MulTail", "%", "UnaryExpr", "MulTail")
	g.Add("MulTail")

	g.Add("UnaryExpr", "+", "UnaryExpr")
	g.Add("UnaryExpr", "-", "UnaryExpr")
	g.Add("UnaryExpr", "!", "UnaryExpr")
	g.Add("UnaryExpr", "PostfixExpr")

	g.Add("PostfixExpr", "Primary", "PostfixTail")
	g.Add("PostfixTail", "(", "ArgListOpt", ")", "PostfixTail")
	g.Add("PostfixTail", "[", "Expr", "]", "PostfixTail")
	g.Add("PostfixTail", ".", "ID", "PostfixTail")
	g.Add("PostfixTail", "++", "PostfixTail")
	g.Add("PostfixTail", "--", "PostfixTail")
	g.Add("PostfixTail")

	g.Add("Primary", "ID")
	g.Add("Primary", "printf")
	g.Add("Primary", "CONSTANT")
	g.Add("Primary", "(", "Expr", ")")

	g.Add("ArgListOpt", "ArgList")
	g.Add("ArgListOpt")
	g.Add("ArgList", "Expr", "ArgListTail")
	g.Add("ArgListTail", ",", "Expr", "ArgListTail")
	g.Add("ArgListTail")

	g.Add("CONSTANT", "INT_CONST")
	g.Add("CONSTANT", "FLOAT_CONST")
	g.Add("CONSTANT", "CHAR_CONST")
	g.Add("CONSTANT", "STRING_CONST")

	g.Finalize()
	return g
}
