package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shadowCow/llc-go/internal/analysis"
	"github.com/shadowCow/llc-go/internal/ast"
	"github.com/shadowCow/llc-go/internal/cgrammar"
	"github.com/shadowCow/llc-go/internal/lexer"
	"github.com/shadowCow/llc-go/internal/parser"
	"github.com/shadowCow/llc-go/internal/table"
)

func simplify(t *testing.T, src string) *ast.Node {
	t.Helper()
	g := cgrammar.Build()
	first := analysis.ComputeFirst(g)
	follow := analysis.ComputeFollow(g, first)
	sel := analysis.ComputeSelect(g, first, follow)
	tbl, err := table.Build(g, sel, false)
	require.NoError(t, err)

	p := parser.New(g, tbl, true)
	toks := lexer.New(src).Tokenize()
	tree, err := p.Parse(toks)
	require.NoError(t, err)
	return ast.Simplify(tree)
}

func child(t *testing.T, n *ast.Node, kind string) *ast.Node {
	t.Helper()
	for _, c := range n.Children {
		if c.Kind == kind {
			return c
		}
	}
	t.Fatalf("no child of kind %q among %d children of %q", kind, len(n.Children), n.Kind)
	return nil
}

// S1: "int a;" -> GlobalDecl with Type(int) and Decls[Var(a)].
func TestSimplifyGlobalIntDeclaration(t *testing.T) {
	prog := simplify(t, "int a;")
	require.Len(t, prog.Children, 1)
	decl := prog.Children[0]
	assert.Equal(t, "GlobalDecl", decl.Kind)

	typ := child(t, decl, "Type")
	assert.Equal(t, "int", typ.Value)

	decls := child(t, decl, "Decls")
	require.Len(t, decls.Children, 1)
	assert.Equal(t, "Var", decls.Children[0].Kind)
	assert.Equal(t, "a", decls.Children[0].Value)
}

// S2: "int main(){ return 0; }" -> FuncDef(main) with empty Params and a
// Block containing a Return of Literal(0).
func TestSimplifyMainFunctionDefinition(t *testing.T) {
	prog := simplify(t, "int main(){ return 0; }")
	require.Len(t, prog.Children, 1)
	fn := prog.Children[0]
	assert.Equal(t, "FuncDef", fn.Kind)
	assert.Equal(t, "main", fn.Value)

	params := child(t, fn, "Params")
	assert.Empty(t, params.Children)

	block := child(t, fn, "Block")
	require.Len(t, block.Children, 1)
	ret := block.Children[0]
	assert.Equal(t, "Return", ret.Kind)
	require.Len(t, ret.Children, 1)
	assert.Equal(t, "Literal", ret.Children[0].Kind)
	assert.Equal(t, "0", ret.Children[0].Value)
}

// S3: struct tag promotion surfaces as a StructDef plus a GlobalDecl whose
// Type names the struct and whose Decls holds the second variable.
func TestSimplifyStructTagDeclarationAndUse(t *testing.T) {
	prog := simplify(t, "struct S { int x; }; S v;")
	require.Len(t, prog.Children, 2)

	structDef := prog.Children[0]
	assert.Equal(t, "StructDef", structDef.Kind)
	assert.Equal(t, "S", structDef.Value)
	fields := child(t, structDef, "Fields")
	require.Len(t, fields.Children, 1)
	assert.Equal(t, "VarDecl", fields.Children[0].Kind)
	assert.Equal(t, "x", fields.Children[0].Value)

	varDecl := prog.Children[1]
	assert.Equal(t, "GlobalDecl", varDecl.Kind)
	typ := child(t, varDecl, "Type")
	assert.Equal(t, "S", typ.Value)
	decls := child(t, varDecl, "Decls")
	require.Len(t, decls.Children, 1)
	assert.Equal(t, "v", decls.Children[0].Value)
}

// S4: dangling else binds to the innermost if.
func TestSimplifyDanglingElseBindsInnermost(t *testing.T) {
	prog := simplify(t, "int f(){ if (a) if (b) c; else d; }")
	fn := prog.Children[0]
	block := child(t, fn, "Block")
	require.Len(t, block.Children, 1)
	outerIf := block.Children[0]
	assert.Equal(t, "If", outerIf.Kind)

	then := child(t, outerIf, "Then")
	require.Len(t, then.Children, 1)
	innerIf := then.Children[0]
	assert.Equal(t, "If", innerIf.Kind)

	els := child(t, innerIf, "Else")
	require.Len(t, els.Children, 1)
	assert.Equal(t, "ExprStmt", els.Children[0].Kind)

	// The outer if must carry no Else of its own.
	for _, c := range outerIf.Children {
		assert.NotEqual(t, "Else", c.Kind, "else must bind to the nearest unmatched if")
	}
}

// S5: "x = 1 + 2 * 3;" folds into Binary(+) with a Binary(*) right child,
// respecting precedence and left associativity.
func TestSimplifyOperatorPrecedence(t *testing.T) {
	prog := simplify(t, "int f(){ x = 1 + 2 * 3; }")
	fn := prog.Children[0]
	block := child(t, fn, "Block")
	require.Len(t, block.Children, 1)
	exprStmt := block.Children[0]
	assert.Equal(t, "ExprStmt", exprStmt.Kind)
	require.Len(t, exprStmt.Children, 1)

	assign := exprStmt.Children[0]
	assert.Equal(t, "Assign", assign.Kind)
	require.Len(t, assign.Children, 2)
	assert.Equal(t, "Id", assign.Children[0].Kind)
	assert.Equal(t, "x", assign.Children[0].Value)

	plus := assign.Children[1]
	assert.Equal(t, "Binary", plus.Kind)
	assert.Equal(t, "+", plus.Value)
	require.Len(t, plus.Children, 2)
	assert.Equal(t, "Literal", plus.Children[0].Kind)
	assert.Equal(t, "1", plus.Children[0].Value)

	mul := plus.Children[1]
	assert.Equal(t, "Binary", mul.Kind)
	assert.Equal(t, "*", mul.Value)
	require.Len(t, mul.Children, 2)
	assert.Equal(t, "2", mul.Children[0].Value)
	assert.Equal(t, "3", mul.Children[1].Value)
}

func TestSimplifyCallAndIndexFoldLeftToRight(t *testing.T) {
	prog := simplify(t, "int f(){ a[0](1); }")
	fn := prog.Children[0]
	block := child(t, fn, "Block")
	exprStmt := block.Children[0]
	call := exprStmt.Children[0]
	assert.Equal(t, "Call", call.Kind)
	require.Len(t, call.Children, 2)

	index := call.Children[0]
	assert.Equal(t, "Index", index.Kind)
	assert.Equal(t, "Id", index.Children[0].Kind)
	assert.Equal(t, "a", index.Children[0].Value)

	args := call.Children[1]
	assert.Equal(t, "Args", args.Kind)
	require.Len(t, args.Children, 1)
	assert.Equal(t, "1", args.Children[0].Value)
}

func TestSimplifyForLoopParts(t *testing.T) {
	prog := simplify(t, "int f(){ for (int i = 0; i; i++) c; }")
	fn := prog.Children[0]
	block := child(t, fn, "Block")
	forStmt := block.Children[0]
	assert.Equal(t, "For", forStmt.Kind)

	init := child(t, forStmt, "Init")
	require.NotEmpty(t, init.Children)
	cond := child(t, forStmt, "Cond")
	require.NotEmpty(t, cond.Children)
	post := child(t, forStmt, "Post")
	require.Len(t, post.Children, 1)
	assert.Equal(t, "PostInc", post.Children[0].Kind)
}
