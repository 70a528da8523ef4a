// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package calc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bufbuild/descent/source"
	"github.com/bufbuild/descent/token"
)

// Op is a binary operator.
type Op int8

const (
	Add Op = iota + 1
	Sub
	Mul
	Div
)

var ops = [...]struct{ punct, name string }{
	Add: {"+", "add"},
	Sub: {"-", "sub"},
	Mul: {"*", "mul"},
	Div: {"/", "div"},
}

// String implements [fmt.Stringer], returning the operator's punctuation.
func (o Op) String() string {
	if o <= 0 || int(o) >= len(ops) {
		return fmt.Sprintf("Op(%d)", int(o))
	}
	return ops[o].punct
}

// Name returns a lowercase name for this operator, such as "add".
func (o Op) Name() string {
	if o <= 0 || int(o) >= len(ops) {
		return o.String()
	}
	return ops[o].name
}

// Expr is an expression: one of [*Int], [*Binary] or [*Group].
type Expr interface {
	source.Spanner
	fmt.Stringer

	// Unparse converts this expression back into tokens.
	Unparse() *token.Buffer

	node() *Node
}

// Node holds the information common to every expression.
type Node struct {
	At source.Span

	// Unique among the nodes of a single parse, and increasing in the order
	// nodes were completed. Zero for nodes that were not produced by a parser.
	ID int
}

// Span implements [source.Spanner].
func (n *Node) Span() source.Span {
	return n.At
}

func (n *Node) node() *Node {
	return n
}

// GetNode returns the [Node] of an expression.
func GetNode(e Expr) *Node {
	return e.node()
}

// Int is an integer literal.
type Int struct {
	Node
	Lit token.IntLiteral

	// The value of Lit, truncated to 64 bits.
	Value uint64
}

// Binary is a binary operation, such as 1 + 2.
type Binary struct {
	Node
	Op          Op
	OpSpan      source.Span
	Left, Right Expr
}

// Group is a parenthesized expression.
type Group struct {
	Node
	Open, Close source.Span
	Inner       Expr
}

// NewInt returns a synthetic integer expression.
func NewInt(v uint64) *Int {
	return &Int{Lit: token.NewInt(source.Span{}, v, token.UnknownInt), Value: v}
}

// NewBinary returns a synthetic binary expression.
func NewBinary(op Op, left, right Expr) *Binary {
	return &Binary{
		Node:  Node{At: source.Join(left, right)},
		Op:    op,
		Left:  left,
		Right: right,
	}
}

// NewGroup returns a synthetic parenthesized expression.
func NewGroup(inner Expr) *Group {
	return &Group{Node: Node{At: inner.Span()}, Inner: inner}
}

func (e *Int) String() string {
	return e.Lit.String()
}

func (e *Binary) String() string {
	return e.Left.String() + " " + e.Op.String() + " " + e.Right.String()
}

func (e *Group) String() string {
	return "(" + e.Inner.String() + ")"
}

func (e *Int) Unparse() *token.Buffer {
	return e.Lit.Unparse()
}

func (e *Binary) Unparse() *token.Buffer {
	return e.Left.Unparse().
		Extend(unparsePunct(e.Op.String(), e.OpSpan)).
		Extend(e.Right.Unparse())
}

func (e *Group) Unparse() *token.Buffer {
	return unparsePunct("(", e.Open).
		Extend(e.Inner.Unparse()).
		Extend(unparsePunct(")", e.Close))
}

// Walk calls yield on e and then on each of its subexpressions, in
// depth-first pre-order. If yield returns false, e's children are skipped.
func Walk(e Expr, yield func(Expr) bool) {
	if !yield(e) {
		return
	}
	switch e := e.(type) {
	case *Binary:
		Walk(e.Left, yield)
		Walk(e.Right, yield)
	case *Group:
		Walk(e.Inner, yield)
	}
}

// Unparen strips any number of enclosing parentheses from e.
func Unparen(e Expr) Expr {
	for {
		g, ok := e.(*Group)
		if !ok {
			return e
		}
		e = g.Inner
	}
}

// Sexpr renders e as a prefix expression that shows its structure, such as
// Add(2, Mul(3, Group(Sub(4, 1)))).
func Sexpr(e Expr) string {
	switch e := e.(type) {
	case *Int:
		return strconv.FormatUint(e.Value, 10)
	case *Binary:
		name := e.Op.Name()
		return fmt.Sprintf("%s%s(%s, %s)", strings.ToUpper(name[:1]), name[1:], Sexpr(e.Left), Sexpr(e.Right))
	case *Group:
		return fmt.Sprintf("Group(%s)", Sexpr(e.Inner))
	default:
		return fmt.Sprintf("%T", e)
	}
}
