// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package tree

import "go/token"

// Kind is the syntactic category of a [Node].
type Kind uint8

//go:generate go tool stringer -type Kind,Variant -linecomment
const (
	// Other is any node without a dedicated category.
	Other Kind = iota // other

	// Loop is a loop statement, see [Variant] for the loop form.
	Loop // loop

	// Branch is a conditional construct, see [Variant] for the branch form.
	Branch // branch

	// Ident is a free-standing identifier reference.
	Ident // ident

	// Call is a method or function invocation. Its [Node.Target] names the callee.
	Call // call

	// Select is a qualified member access used as an invocation target.
	Select // select

	// Method is a method or function declaration.
	Method // method

	// Param is a declared parameter of a [Method].
	Param // param
)

// Variant refines [Loop] and [Branch] nodes.
type Variant uint8

const (
	// NoVariant is used for nodes that are neither loops nor branches.
	NoVariant Variant = iota // -

	// For is a classic three-clause loop.
	For // for

	// While is a loop with only a condition.
	While // while

	// Forever is a loop without condition.
	Forever // forever

	// DoWhile is a loop with a trailing condition.
	DoWhile // do-while

	// ForEach is a loop over the elements of a collection.
	ForEach // for-each

	// If is a single if statement. Else-if chains consist of nested If nodes.
	If // if

	// Ternary is a conditional expression.
	Ternary // ternary

	// Switch is a multi-way branch with [Node.Cases] labels.
	Switch // switch

	// SelectCase is a multi-way communication branch with [Node.Cases] labels.
	SelectCase // select

	// Catch is an exception handler.
	Catch // catch
)

// Node is a read-only view of one syntax tree node.
//
// Trees are built once by a front end and never mutated afterwards, so they can be
// shared between concurrent analyses.
type Node struct {
	Kind    Kind
	Variant Variant

	// Name is the identifier text for Ident, Select, Method and Param nodes.
	Name string

	// Cases is the number of case labels of a Switch or SelectCase branch.
	Cases int

	// Target is the invocation target of a Call node: an Ident for unqualified calls,
	// a Select for qualified calls and anything else for malformed input.
	Target *Node

	// Params are the declared parameters of a Method node, in declaration order.
	Params []*Node

	// Body is the body of a Method node, nil when the method has none.
	Body *Node

	Children []*Node

	pos, end token.Pos
}

// New creates a [Node] spanning pos to end.
func New(kind Kind, pos, end token.Pos) *Node {
	return &Node{Kind: kind, pos: pos, end: end}
}

// Pos returns the start position of the node.
func (n *Node) Pos() token.Pos { return n.pos }

// End returns the position of the first character after the node.
func (n *Node) End() token.Pos { return n.end }

// IsLoop reports whether n is a loop of any form.
func (n *Node) IsLoop() bool { return n != nil && n.Kind == Loop }

// IsBranch reports whether n is a branch of the given variant.
func (n *Node) IsBranch(v Variant) bool { return n != nil && n.Kind == Branch && n.Variant == v }

// Describe returns a short human-readable description, used in error messages.
func (n *Node) Describe() string {
	if n == nil {
		return "<nil>"
	}

	s := n.Kind.String()
	if n.Variant != NoVariant {
		s += "(" + n.Variant.String() + ")"
	}

	if n.Name != "" {
		s += " " + n.Name
	}

	return s
}
