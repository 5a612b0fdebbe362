// Package ast defines the parsed pattern tree and the recursive-descent
// parser that produces it.
package ast

import "github.com/coregx/scanrx/literal"

// NodeKind identifies which AST variant a Node carries. Node is a tagged
// union (a Kind tag plus the payload fields relevant to that kind) rather
// than one Go type per variant, since the graph compiler's lowering is a
// single dispatch-on-kind switch over every node shape.
type NodeKind uint8

const (
	// Root wraps the top-level sequence; every parse produces exactly one.
	Root NodeKind = iota
	// CharNode matches a single Literal.
	CharNode
	// Seq is an ordered sequence of children.
	Seq
	// Alt is a parenthesized group: an ordered list of alternative branches
	// sharing one capture-group id. Every parenthesized subexpression
	// becomes an Alt, even with a single branch, because parens both group
	// and capture.
	Alt
	// RepeatNode applies a {min,max} bound to a single child.
	RepeatNode
	// StartNode anchors to the Start sentinel.
	StartNode
	// EndNode anchors to the End sentinel.
	EndNode
	// AnyCharNode matches any non-sentinel token ('.').
	AnyCharNode
	// CharGroupNode is a character class, optionally negated.
	CharGroupNode
	// CaptureRefNode is a backreference to a capture group.
	CaptureRefNode
)

// Node is a single AST tree node. Only the fields relevant to Kind are
// populated; the rest hold their zero value.
type Node struct {
	Kind NodeKind

	// Root, RepeatNode (single child)
	Child *Node

	// Seq, Alt
	Children []Node

	// CharNode
	Lit literal.Literal

	// Alt: unique group id assigned at parse time, source order, starting
	// at 1.
	GroupID uint64

	// RepeatNode
	Min, Max *uint64

	// CharGroupNode
	Negated bool
	Chars   []literal.Literal

	// CaptureRefNode
	RefID uint64
}

// NewRoot wraps child (always the parsed top-level Seq) in a Root node.
func NewRoot(child Node) Node {
	return Node{Kind: Root, Child: &child}
}

// NewChar builds a CharNode carrying lit.
func NewChar(lit literal.Literal) Node {
	return Node{Kind: CharNode, Lit: lit}
}

// NewSeq builds a Seq over children in order.
func NewSeq(children []Node) Node {
	return Node{Kind: Seq, Children: children}
}

// NewAlt builds an Alt with the given group id and branches.
func NewAlt(groupID uint64, branches []Node) Node {
	return Node{Kind: Alt, GroupID: groupID, Children: branches}
}

// NewRepeat builds a RepeatNode over child with the given bounds. Either
// bound may be nil to mean "unbounded".
func NewRepeat(min, max *uint64, child Node) Node {
	return Node{Kind: RepeatNode, Min: min, Max: max, Child: &child}
}

// NewCharGroup builds a character-class node.
func NewCharGroup(negated bool, chars []literal.Literal) Node {
	return Node{Kind: CharGroupNode, Negated: negated, Chars: chars}
}

// NewCaptureRef builds a backreference node targeting groupID.
func NewCaptureRef(groupID uint64) Node {
	return Node{Kind: CaptureRefNode, RefID: groupID}
}

// U64 is a small convenience for building *uint64 bound literals in tests
// and call sites that don't otherwise need to take an address.
func U64(v uint64) *uint64 { return &v }
