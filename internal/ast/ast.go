// Package ast simplifies a concrete parsetree.Node into the compact,
// typed-by-convention tree spec.md §4.8 describes, by folding chain and
// tail-nonterminal productions into flat Binary/Unary/Call/Index/Member
// nodes. It is a direct structural port of
// original_source/service/ast_builder.py's per-production _ast_X
// functions, including its left-fold _fold_tail helper, kept as one
// function per production rather than table-driven, matching the
// original's own style.
package ast

import "github.com/shadowCow/llc-go/internal/parsetree"

// Node is a generic AST node: a kind tag, an optional string value, and
// ordered children. spec.md §9 notes a tagged sum of concrete kinds is
// preferable in a language with real variants, but accepts this generic
// shape when a rendering-only stage follows — which is exactly cmd/llc's
// renderASTLines.
type Node struct {
	Kind     string
	Value    string
	HasValue bool
	Children []*Node
}

func newNode(kind string) *Node {
	return &Node{Kind: kind}
}

func newValue(kind, value string) *Node {
	return &Node{Kind: kind, Value: value, HasValue: true}
}

func (n *Node) add(nodes ...*Node) *Node {
	for _, c := range nodes {
		if c != nil {
			n.Children = append(n.Children, c)
		}
	}
	return n
}

func kids(n *parsetree.Node) []*parsetree.Node {
	out := make([]*parsetree.Node, 0, len(n.Children))
	for _, c := range n.Children {
		if !c.IsEpsilon() {
			out = append(out, c)
		}
	}
	return out
}

func tokText(n *parsetree.Node) string {
	if n.Token != nil && n.Token.Lexeme != "" {
		return n.Token.Lexeme
	}
	return string(n.Symbol)
}

func asLeaf(n *parsetree.Node) *Node {
	return newValue(string(n.Symbol), tokText(n))
}

// Simplify builds the AST for a parse tree rooted at a "P" node.
func Simplify(root *parsetree.Node) *Node {
	if string(root.Symbol) != "P" {
		return newNode("Program").add(newValue("UnknownRoot", string(root.Symbol)))
	}
	return astP(root)
}

func astP(n *parsetree.Node) *Node {
	ks := kids(n)
	prog := newNode("Program")
	if len(ks) > 0 {
		prog.Children = append(prog.Children, astExtList(ks[0])...)
	}
	return prog
}

func astExtList(n *parsetree.Node) []*Node {
	ks := kids(n)
	if len(ks) == 0 {
		return nil
	}
	out := astExtDef(ks[0])
	if len(ks) > 1 {
		out = append(out, astExtList(ks[1])...)
	}
	return out
}

func astExtDef(n *parsetree.Node) []*Node {
	ks := kids(n)
	if len(ks) == 0 {
		return nil
	}
	if string(ks[0].Symbol) == "Preprocess" {
		return nil
	}
	t := astTypeSpec(ks[0])
	if len(ks) < 2 {
		return []*Node{newNode("External").add(t)}
	}
	return astExtAfterTypeSpec(ks[1], t)
}

func astTypeSpec(n *parsetree.Node) *Node {
	ks := kids(n)
	if len(ks) == 0 {
		return newValue("Type", "?")
	}
	head := ks[0]
	switch string(head.Symbol) {
	case "BasicType":
		bt := kids(head)
		name := "?"
		if len(bt) > 0 {
			name = tokText(bt[0])
		}
		return newValue("Type", name)
	case "StructSpec":
		return astStructSpec(head, true)
	case "UnionSpec":
		return astUnionSpec(head, true)
	case "TYPE_NAME":
		return newValue("Type", tokText(head))
	default:
		return newValue("Type", string(head.Symbol))
	}
}

func astStructSpec(n *parsetree.Node, asType bool) *Node {
	ks := kids(n)
	name := "?"
	if len(ks) >= 2 {
		name = tokText(ks[1])
	}
	fields, hasBody := structOrUnionFields(ks)
	kind := "StructDef"
	if asType {
		kind = "StructType"
	}
	node := newValue(kind, name)
	if hasBody {
		node.add(newNode("Fields").add(fields...))
	}
	return node
}

func astUnionSpec(n *parsetree.Node, asType bool) *Node {
	ks := kids(n)
	name := "?"
	if len(ks) >= 2 {
		name = tokText(ks[1])
	}
	fields, hasBody := structOrUnionFields(ks)
	kind := "UnionDef"
	if asType {
		kind = "UnionType"
	}
	node := newValue(kind, name)
	if hasBody {
		node.add(newNode("Fields").add(fields...))
	}
	return node
}

func structOrUnionFields(ks []*parsetree.Node) ([]*Node, bool) {
	if len(ks) < 3 {
		return nil, false
	}
	bodyKs := kids(ks[2])
	if len(bodyKs) == 0 || string(bodyKs[0].Symbol) != "{" {
		return nil, false
	}
	var fields []*Node
	if len(bodyKs) >= 2 {
		fields = astDeclListOpt(bodyKs[1])
	}
	return fields, true
}

func astExtAfterTypeSpec(n *parsetree.Node, t *Node) []*Node {
	ks := kids(n)
	if len(ks) == 0 {
		return []*Node{newNode("External").add(t)}
	}
	if string(ks[0].Symbol) == ";" {
		if t.Kind == "StructType" || t.Kind == "UnionType" {
			for _, c := range t.Children {
				if c.Kind == "Fields" {
					kind := "StructDef"
					if t.Kind == "UnionType" {
						kind = "UnionDef"
					}
					return []*Node{(&Node{Kind: kind, Value: t.Value, HasValue: true}).add(t.Children...)}
				}
			}
		}
		return []*Node{newNode("TypeOnly").add(t)}
	}

	ptrOpt := ks[0]
	ident := ks[1]
	var afterID *parsetree.Node
	if len(ks) > 2 {
		afterID = ks[2]
	}
	name := tokText(ident)
	ptr := astPtrOpt(ptrOpt)

	if afterID != nil {
		afterKs := kids(afterID)
		if len(afterKs) > 0 && string(afterKs[0].Symbol) == "(" {
			out := []*Node{t, ptr}
			out = append(out, astFuncAfterID(afterID)...)
			return []*Node{newValue("FuncDef", name).add(out...)}
		}
	}
	out := []*Node{t, ptr}
	if afterID != nil {
		out = append(out, astVarAfterID(afterID, name)...)
	}
	return []*Node{newNode("GlobalDecl").add(out...)}
}

func astFuncAfterID(n *parsetree.Node) []*Node {
	ks := kids(n)
	if len(ks) == 0 {
		return nil
	}
	var out []*Node
	if len(ks) >= 2 {
		out = append(out, newNode("Params").add(astParamListOpt(ks[1])...))
	}
	if len(ks) >= 4 {
		out = append(out, astCompoundStmt(ks[3]))
	}
	return out
}

func astParamListOpt(n *parsetree.Node) []*Node {
	ks := kids(n)
	if len(ks) == 0 {
		return nil
	}
	return astParamList(ks[0])
}

func astParamList(n *parsetree.Node) []*Node {
	ks := kids(n)
	if len(ks) == 0 {
		return nil
	}
	var out []*Node
	if p := astParam(ks[0]); p != nil {
		out = append(out, p)
	}
	if len(ks) >= 2 {
		out = append(out, astParamListTail(ks[1])...)
	}
	return out
}

func astParamListTail(n *parsetree.Node) []*Node {
	ks := kids(n)
	if len(ks) == 0 {
		return nil
	}
	var out []*Node
	if len(ks) >= 2 {
		if p := astParam(ks[1]); p != nil {
			out = append(out, p)
		}
	}
	if len(ks) >= 3 {
		out = append(out, astParamListTail(ks[2])...)
	}
	return out
}

func astParam(n *parsetree.Node) *Node {
	ks := kids(n)
	if len(ks) < 3 {
		return nil
	}
	t := astTypeSpec(ks[0])
	ptr := astPtrOpt(ks[1])
	name := tokText(ks[2])
	p := newValue("Param", name).add(newNode("Type").add(t), ptr)
	if len(ks) >= 4 {
		if dims := astArraySuffixOpt(ks[3]); len(dims) > 0 {
			p.add(dimsNode(dims))
		}
	}
	return p
}

func astVarAfterID(n *parsetree.Node, firstName string) []*Node {
	ks := kids(n)
	if len(ks) == 0 {
		return nil
	}
	decls := astVarDeclRest(ks[0], firstName)
	return []*Node{newNode("Decls").add(decls...)}
}

func astDeclListOpt(n *parsetree.Node) []*Node {
	ks := kids(n)
	if len(ks) == 0 {
		return nil
	}
	return astDeclList(ks[0])
}

func astDeclList(n *parsetree.Node) []*Node {
	ks := kids(n)
	if len(ks) == 0 {
		return nil
	}
	out := astDecl(ks[0])
	if len(ks) > 1 {
		out = append(out, astDeclList(ks[1])...)
	}
	return out
}

func astDecl(n *parsetree.Node) []*Node {
	ks := kids(n)
	if len(ks) < 2 {
		return []*Node{newNode("DeclUnknown")}
	}
	t := astTypeSpec(ks[0])
	return astInitDeclList(ks[1], t)
}

func astPtrOpt(n *parsetree.Node) *Node {
	ks := kids(n)
	if len(ks) == 0 {
		return nil
	}
	count := 0
	cur := n
	for {
		curKs := kids(cur)
		if len(curKs) == 0 || string(curKs[0].Symbol) != "*" {
			break
		}
		count++
		if len(curKs) > 1 {
			cur = curKs[1]
		} else {
			break
		}
	}
	star := ""
	for i := 0; i < count; i++ {
		star += "*"
	}
	return newValue("Ptr", star)
}

func astInitDeclList(n *parsetree.Node, t *Node) []*Node {
	ks := kids(n)
	if len(ks) == 0 {
		return nil
	}
	var out []*Node
	if first := astInitDecl(ks[0], t); first != nil {
		out = append(out, first)
	}
	if len(ks) > 1 {
		out = append(out, astInitDeclListTail(ks[1], t)...)
	}
	return out
}

func astInitDeclListTail(n *parsetree.Node, t *Node) []*Node {
	ks := kids(n)
	if len(ks) == 0 {
		return nil
	}
	var out []*Node
	if len(ks) >= 2 {
		if d := astInitDecl(ks[1], t); d != nil {
			out = append(out, d)
		}
	}
	if len(ks) >= 3 {
		out = append(out, astInitDeclListTail(ks[2], t)...)
	}
	return out
}

func astInitDecl(n *parsetree.Node, t *Node) *Node {
	ks := kids(n)
	if len(ks) < 2 {
		return nil
	}
	ptr := astPtrOpt(ks[0])
	name := tokText(ks[1])
	var arr []string
	if len(ks) >= 3 {
		arr = astArraySuffixOpt(ks[2])
	}
	var init *Node
	if len(ks) >= 4 {
		init = astInitOpt(ks[3])
	}
	decl := newValue("VarDecl", name).add(newNode("Type").add(t), ptr)
	if len(arr) > 0 {
		decl.add(dimsNode(arr))
	}
	if init != nil {
		decl.add(newNode("Init").add(init))
	}
	return decl
}

func astArraySuffixOpt(n *parsetree.Node) []string {
	ks := kids(n)
	if len(ks) == 0 {
		return nil
	}
	dim := "?"
	if len(ks) >= 2 {
		dim = tokText(ks[1])
	}
	out := []string{dim}
	if len(ks) >= 4 {
		out = append(out, astArraySuffixOpt(ks[3])...)
	}
	return out
}

func dimsNode(dims []string) *Node {
	n := newNode("ArrayDims")
	for _, d := range dims {
		n.add(newValue("Dim", d))
	}
	return n
}

func astInitOpt(n *parsetree.Node) *Node {
	ks := kids(n)
	if len(ks) == 0 {
		return nil
	}
	if len(ks) >= 2 && string(ks[0].Symbol) == "=" {
		return astInitializer(ks[1])
	}
	return nil
}

func astInitializer(n *parsetree.Node) *Node {
	ks := kids(n)
	if len(ks) == 0 {
		return newValue("Init", "?")
	}
	if string(ks[0].Symbol) == "{" {
		var items []*Node
		if len(ks) >= 2 {
			items = astInitListOpt(ks[1])
		}
		return newNode("InitList").add(items...)
	}
	return astExpr(ks[0])
}

func astInitListOpt(n *parsetree.Node) []*Node {
	ks := kids(n)
	if len(ks) == 0 {
		return nil
	}
	return astInitList(ks[0])
}

func astInitList(n *parsetree.Node) []*Node {
	ks := kids(n)
	if len(ks) == 0 {
		return nil
	}
	out := []*Node{astInitializer(ks[0])}
	if len(ks) > 1 {
		out = append(out, astInitListTail(ks[1])...)
	}
	return out
}

func astInitListTail(n *parsetree.Node) []*Node {
	ks := kids(n)
	if len(ks) == 0 {
		return nil
	}
	init := newValue("Init", "?")
	if len(ks) >= 2 {
		init = astInitializer(ks[1])
	}
	out := []*Node{init}
	if len(ks) >= 3 {
		out = append(out, astInitListTail(ks[2])...)
	}
	return out
}

func astCompoundStmt(n *parsetree.Node) *Node {
	ks := kids(n)
	var stmts []*Node
	if len(ks) >= 2 {
		stmts = astStmtListOpt(ks[1])
	}
	return newNode("Block").add(stmts...)
}

func astStmtListOpt(n *parsetree.Node) []*Node {
	ks := kids(n)
	if len(ks) == 0 {
		return nil
	}
	return astStmtList(ks[0])
}

func astStmtList(n *parsetree.Node) []*Node {
	ks := kids(n)
	if len(ks) == 0 {
		return nil
	}
	var out []*Node
	if s := astStmt(ks[0]); s != nil {
		out = append(out, s)
	}
	if len(ks) > 1 {
		out = append(out, astStmtList(ks[1])...)
	}
	return out
}

func astStmt(n *parsetree.Node) *Node {
	ks := kids(n)
	if len(ks) == 0 {
		return nil
	}
	head := ks[0]
	switch string(head.Symbol) {
	case "ExprStmt":
		return astExprStmt(head)
	case "CompoundStmt":
		return astCompoundStmt(head)
	case "IfStmt":
		return astIfStmt(head)
	case "WhileStmt":
		return astWhileStmt(head)
	case "ForStmt":
		return astForStmt(head)
	case "ReturnStmt":
		return astReturnStmt(head)
	case "BreakStmt":
		return newNode("Break")
	case "ContinueStmt":
		return newNode("Continue")
	case "Decl":
		return newNode("DeclStmt").add(astDecl(head)...)
	default:
		return newValue("Stmt", string(head.Symbol))
	}
}

func astExprStmt(n *parsetree.Node) *Node {
	ks := kids(n)
	if len(ks) == 0 {
		return newNode("Empty")
	}
	if len(ks) == 1 && string(ks[0].Symbol) == ";" {
		return newNode("Empty")
	}
	return newNode("ExprStmt").add(astExpr(ks[0]))
}

func astIfStmt(n *parsetree.Node) *Node {
	ks := kids(n)
	cond := newValue("Expr", "?")
	if len(ks) >= 3 {
		cond = astExpr(ks[2])
	}
	var then *Node
	if len(ks) >= 5 {
		then = astStmt(ks[4])
	}
	var els *Node
	if len(ks) >= 6 {
		els = astElseOpt(ks[5])
	}
	node := newNode("If").add(newNode("Cond").add(cond))
	if then != nil {
		node.add(newNode("Then").add(then))
	}
	if els != nil {
		node.add(newNode("Else").add(els))
	}
	return node
}

func astElseOpt(n *parsetree.Node) *Node {
	ks := kids(n)
	if len(ks) == 0 {
		return nil
	}
	if string(ks[0].Symbol) == "else" && len(ks) >= 2 {
		return astStmt(ks[1])
	}
	return nil
}

func astWhileStmt(n *parsetree.Node) *Node {
	ks := kids(n)
	cond := newValue("Expr", "?")
	if len(ks) >= 3 {
		cond = astExpr(ks[2])
	}
	var body *Node
	if len(ks) >= 5 {
		body = astStmt(ks[4])
	}
	node := newNode("While").add(newNode("Cond").add(cond))
	if body != nil {
		node.add(newNode("Body").add(body))
	}
	return node
}

func astForStmt(n *parsetree.Node) *Node {
	ks := kids(n)
	var initN, condN, postN, bodyN *Node
	if len(ks) >= 3 {
		initN = astForInitOpt(ks[2])
	}
	if len(ks) >= 5 {
		condN = astExprOpt(ks[4])
	}
	if len(ks) >= 7 {
		postN = astExprOpt(ks[6])
	}
	if len(ks) >= 9 {
		bodyN = astStmt(ks[8])
	}
	node := newNode("For")
	if initN != nil {
		node.add(newNode("Init").add(initN))
	}
	if condN != nil {
		node.add(newNode("Cond").add(condN))
	}
	if postN != nil {
		node.add(newNode("Post").add(postN))
	}
	if bodyN != nil {
		node.add(newNode("Body").add(bodyN))
	}
	return node
}

func astForInitOpt(n *parsetree.Node) *Node {
	ks := kids(n)
	if len(ks) == 0 {
		return nil
	}
	head := ks[0]
	switch string(head.Symbol) {
	case "DeclForInit":
		return astDeclForInit(head)
	case "Expr":
		return astExpr(head)
	default:
		return nil
	}
}

func astDeclForInit(n *parsetree.Node) *Node {
	ks := kids(n)
	t := newValue("Type", "?")
	if len(ks) > 0 {
		t = astTypeSpec(ks[0])
	}
	var decls []*Node
	if len(ks) >= 2 {
		decls = astInitDeclList(ks[1], t)
	}
	return newNode("DeclForInit").add(decls...)
}

func astReturnStmt(n *parsetree.Node) *Node {
	ks := kids(n)
	var expr *Node
	if len(ks) >= 2 {
		expr = astExprOpt(ks[1])
	}
	return newNode("Return").add(expr)
}

func astExprOpt(n *parsetree.Node) *Node {
	ks := kids(n)
	if len(ks) == 0 {
		return nil
	}
	return astExpr(ks[0])
}

func astExpr(n *parsetree.Node) *Node {
	ks := kids(n)
	if len(ks) == 0 {
		return newValue("Expr", "?")
	}
	return astAssignExpr(ks[0])
}

func astAssignExpr(n *parsetree.Node) *Node {
	ks := kids(n)
	left := newValue("Expr", "?")
	if len(ks) > 0 {
		left = astOrExpr(ks[0])
	}
	if len(ks) < 2 {
		return left
	}
	tks := kids(ks[1])
	if len(tks) == 0 {
		return left
	}
	if string(tks[0].Symbol) == "=" {
		right := newValue("Expr", "?")
		if len(tks) >= 2 {
			right = astAssignExpr(tks[1])
		}
		return newNode("Assign").add(left, right)
	}
	return left
}

func foldTail(left *Node, tail *parsetree.Node, opSym, nextTailSymbol string, rhsFn func(*parsetree.Node) *Node) *Node {
	cur := left
	t := tail
	for {
		tks := kids(t)
		if len(tks) == 0 || string(tks[0].Symbol) != opSym {
			break
		}
		rhs := newValue("Expr", "?")
		if len(tks) >= 2 {
			rhs = rhsFn(tks[1])
		}
		cur = newValue("Binary", opSym).add(cur, rhs)
		if len(tks) < 3 || string(tks[2].Symbol) != nextTailSymbol {
			break
		}
		t = tks[2]
	}
	return cur
}

// foldMultiOpTail handles tails whose operator varies by step (EqTail,
// RelTail, AddTail, MulTail): it loops manually instead of delegating to
// foldTail's single fixed opSym.
func foldMultiOpTail(left *Node, tail *parsetree.Node, ops map[string]bool, rhsFn func(*parsetree.Node) *Node) *Node {
	if tail == nil {
		return left
	}
	cur := left
	t := tail
	for {
		tks := kids(t)
		if len(tks) == 0 {
			break
		}
		op := string(tks[0].Symbol)
		if !ops[op] {
			break
		}
		rhs := newValue("Expr", "?")
		if len(tks) >= 2 {
			rhs = rhsFn(tks[1])
		}
		cur = newValue("Binary", op).add(cur, rhs)
		if len(tks) < 3 {
			break
		}
		t = tks[2]
	}
	return cur
}

func astOrExpr(n *parsetree.Node) *Node {
	ks := kids(n)
	left := newValue("Expr", "?")
	if len(ks) > 0 {
		left = astAndExpr(ks[0])
	}
	if len(ks) < 2 {
		return left
	}
	return foldTail(left, ks[1], "||", "OrTail", astAndExpr)
}

func astAndExpr(n *parsetree.Node) *Node {
	ks := kids(n)
	left := newValue("Expr", "?")
	if len(ks) > 0 {
		left = astEqExpr(ks[0])
	}
	if len(ks) < 2 {
		return left
	}
	return foldTail(left, ks[1], "&&", "AndTail", astEqExpr)
}

var eqOps = map[string]bool{"==": true, "!=": true}
var relOps = map[string]bool{"<": true, ">": true, "<=": true, ">=": true}
var addOps = map[string]bool{"+": true, "-": true}
var mulOps = map[string]bool{"*": true, "/": true, "%": true}

func astEqExpr(n *parsetree.Node) *Node {
	ks := kids(n)
	left := newValue("Expr", "?")
	if len(ks) > 0 {
		left = astRelExpr(ks[0])
	}
	var tail *parsetree.Node
	if len(ks) >= 2 {
		tail = ks[1]
	}
	return foldMultiOpTail(left, tail, eqOps, astRelExpr)
}

func astRelExpr(n *parsetree.Node) *Node {
	ks := kids(n)
	left := newValue("Expr", "?")
	if len(ks) > 0 {
		left = astAddExpr(ks[0])
	}
	var tail *parsetree.Node
	if len(ks) >= 2 {
		tail = ks[1]
	}
	return foldMultiOpTail(left, tail, relOps, astAddExpr)
}

func astAddExpr(n *parsetree.Node) *Node {
	ks := kids(n)
	left := newValue("Expr", "?")
	if len(ks) > 0 {
		left = astMulExpr(ks[0])
	}
	var tail *parsetree.Node
	if len(ks) >= 2 {
		tail = ks[1]
	}
	return foldMultiOpTail(left, tail, addOps, astMulExpr)
}

func astMulExpr(n *parsetree.Node) *Node {
	ks := kids(n)
	left := newValue("Expr", "?")
	if len(ks) > 0 {
		left = astUnaryExpr(ks[0])
	}
	var tail *parsetree.Node
	if len(ks) >= 2 {
		tail = ks[1]
	}
	return foldMultiOpTail(left, tail, mulOps, astUnaryExpr)
}

func astUnaryExpr(n *parsetree.Node) *Node {
	ks := kids(n)
	if len(ks) == 0 {
		return newValue("Expr", "?")
	}
	op := string(ks[0].Symbol)
	if (op == "+" || op == "-" || op == "!") && len(ks) >= 2 {
		return newValue("Unary", op).add(astUnaryExpr(ks[1]))
	}
	return astPostfixExpr(ks[0])
}

func astPostfixExpr(n *parsetree.Node) *Node {
	ks := kids(n)
	if len(ks) == 0 {
		return newValue("Expr", "?")
	}
	base := astPrimary(ks[0])
	if len(ks) < 2 {
		return base
	}
	return astPostfixTail(base, ks[1])
}

func astPostfixTail(base *Node, n *parsetree.Node) *Node {
	cur := base
	t := n
	for {
		ks := kids(t)
		if len(ks) == 0 {
			break
		}
		head := string(ks[0].Symbol)
		switch head {
		case "(":
			var args []*Node
			if len(ks) >= 2 {
				args = astArgListOpt(ks[1])
			}
			cur = newNode("Call").add(cur, newNode("Args").add(args...))
			if len(ks) < 4 {
				return cur
			}
			t = ks[3]
		case "[":
			idx := newValue("Expr", "?")
			if len(ks) >= 2 {
				idx = astExpr(ks[1])
			}
			cur = newNode("Index").add(cur, idx)
			if len(ks) < 4 {
				return cur
			}
			t = ks[3]
		case ".":
			member := "?"
			if len(ks) >= 2 {
				member = tokText(ks[1])
			}
			cur = newValue("Member", member).add(cur)
			if len(ks) < 3 {
				return cur
			}
			t = ks[2]
		case "++":
			cur = newNode("PostInc").add(cur)
			if len(ks) < 2 {
				return cur
			}
			t = ks[1]
		case "--":
			cur = newNode("PostDec").add(cur)
			if len(ks) < 2 {
				return cur
			}
			t = ks[1]
		default:
			return cur
		}
	}
}

func astPrimary(n *parsetree.Node) *Node {
	ks := kids(n)
	if len(ks) == 0 {
		return newValue("Expr", "?")
	}
	head := ks[0]
	switch string(head.Symbol) {
	case "ID", "TYPE_NAME":
		return newValue("Id", tokText(head))
	case "printf":
		return newValue("Id", "printf")
	case "CONSTANT":
		return astConstant(head)
	case "(":
		if len(ks) >= 2 {
			return astExpr(ks[1])
		}
		return newValue("Expr", "?")
	default:
		return asLeaf(head)
	}
}

func astConstant(n *parsetree.Node) *Node {
	ks := kids(n)
	if len(ks) == 0 {
		return newValue("Literal", "?")
	}
	return newValue("Literal", tokText(ks[0]))
}

func astArgListOpt(n *parsetree.Node) []*Node {
	ks := kids(n)
	if len(ks) == 0 {
		return nil
	}
	return astArgList(ks[0])
}

func astArgList(n *parsetree.Node) []*Node {
	ks := kids(n)
	if len(ks) == 0 {
		return nil
	}
	out := []*Node{astExpr(ks[0])}
	if len(ks) >= 2 {
		out = append(out, astArgListTail(ks[1])...)
	}
	return out
}

func astArgListTail(n *parsetree.Node) []*Node {
	ks := kids(n)
	if len(ks) == 0 {
		return nil
	}
	expr := newValue("Expr", "?")
	if len(ks) >= 2 {
		expr = astExpr(ks[1])
	}
	out := []*Node{expr}
	if len(ks) >= 3 {
		out = append(out, astArgListTail(ks[2])...)
	}
	return out
}

func astVarDeclRest(n *parsetree.Node, firstName string) []*Node {
	ks := kids(n)
	if len(ks) < 3 {
		return []*Node{newValue("Var", firstName)}
	}
	arr := astArraySuffixOpt(ks[0])
	init := astInitOpt(ks[1])
	first := newValue("Var", firstName)
	if len(arr) > 0 {
		first.add(dimsNode(arr))
	}
	if init != nil {
		first.add(newNode("Init").add(init))
	}
	more := astVarDeclMore(ks[2])
	return append([]*Node{first}, more...)
}

func astVarDeclMore(n *parsetree.Node) []*Node {
	ks := kids(n)
	if len(ks) == 0 {
		return nil
	}
	var out []*Node
	if len(ks) >= 2 {
		iks := kids(ks[1])
		name := "?"
		if len(iks) >= 2 {
			name = tokText(iks[1])
		}
		var arr []string
		if len(iks) >= 3 {
			arr = astArraySuffixOpt(iks[2])
		}
		var init *Node
		if len(iks) >= 4 {
			init = astInitOpt(iks[3])
		}
		v := newValue("Var", name)
		if len(arr) > 0 {
			v.add(dimsNode(arr))
		}
		if init != nil {
			v.add(newNode("Init").add(init))
		}
		out = append(out, v)
	}
	if len(ks) >= 3 {
		out = append(out, astVarDeclMore(ks[2])...)
	}
	return out
}
