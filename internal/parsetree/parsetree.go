// Package parsetree defines the concrete parse tree shape built by the
// table-driven parser, following spec.md §3 and tooling/parsetree's node
// layout from the teacher repo.
package parsetree

import (
	"strings"

	"github.com/shadowCow/llc-go/internal/grammar"
	"github.com/shadowCow/llc-go/internal/token"
)

// Node is one concrete parse tree node. Every node carries the grammar
// symbol it stands for. Leaves that came from the token stream also carry
// the matched Token; a leaf for an epsilon production carries neither a
// token nor children.
type Node struct {
	Symbol   grammar.Symbol
	Token    *token.Token
	Children []*Node
}

// NewNonterminal creates an interior node for a nonterminal, with
// children to be appended as the parser reduces its production.
func NewNonterminal(sym grammar.Symbol) *Node {
	return &Node{Symbol: sym}
}

// NewLeaf creates a leaf node for a matched terminal token.
func NewLeaf(sym grammar.Symbol, tok token.Token) *Node {
	t := tok
	return &Node{Symbol: sym, Token: &t}
}

// NewEpsilon creates a leaf node standing for an epsilon production.
func NewEpsilon() *Node {
	return &Node{Symbol: grammar.Epsilon}
}

// IsLeaf reports whether n has no children (a terminal or epsilon leaf).
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// IsEpsilon reports whether n stands for an epsilon production.
func (n *Node) IsEpsilon() bool {
	return n.Symbol == grammar.Epsilon
}

// Lexeme returns the node's token lexeme, or "" if it has none.
func (n *Node) Lexeme() string {
	if n.Token == nil {
		return ""
	}
	return n.Token.Lexeme
}

// AddChild appends a child node, in left-to-right production order.
func (n *Node) AddChild(child *Node) {
	n.Children = append(n.Children, child)
}

// Lines renders the tree using the box-drawing connectors ("`- " for the
// last child, "|- " otherwise) described by spec.md §6/main.py's
// render_tree_lines.
func (n *Node) Lines() []string {
	var out []string
	n.render("", true, &out, true)
	return out
}

func (n *Node) render(prefix string, isLast bool, out *[]string, isRoot bool) {
	label := string(n.Symbol)
	if n.Token != nil {
		label += " (" + n.Token.Lexeme + ")"
	}
	if isRoot {
		*out = append(*out, label)
	} else {
		connector := "|- "
		if isLast {
			connector = "`- "
		}
		*out = append(*out, prefix+connector+label)
	}

	childPrefix := prefix
	if !isRoot {
		if isLast {
			childPrefix += "   "
		} else {
			childPrefix += "|  "
		}
	}
	for i, c := range n.Children {
		c.render(childPrefix, i == len(n.Children)-1, out, false)
	}
}

// String renders the tree as a single newline-joined block, handy for
// tests and quick debugging.
func (n *Node) String() string {
	return strings.Join(n.Lines(), "\n")
}
