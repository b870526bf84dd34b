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

// The constructors below are used by front ends and tests to assemble trees.

// NewLoop creates a loop node of the given variant.
func NewLoop(v Variant, pos, end token.Pos, children ...*Node) *Node {
	n := New(Loop, pos, end)
	n.Variant, n.Children = v, children

	return n
}

// NewBranch creates a branch node of the given variant.
func NewBranch(v Variant, pos, end token.Pos, children ...*Node) *Node {
	n := New(Branch, pos, end)
	n.Variant, n.Children = v, children

	return n
}

// NewSwitch creates a multi-way branch with the given number of case labels.
func NewSwitch(v Variant, cases int, pos, end token.Pos, children ...*Node) *Node {
	n := NewBranch(v, pos, end, children...)
	n.Cases = cases

	return n
}

// NewIdent creates an identifier reference.
func NewIdent(name string, pos, end token.Pos) *Node {
	n := New(Ident, pos, end)
	n.Name = name

	return n
}

// NewSelect creates a qualified member access of name on the receiver expressions.
func NewSelect(name string, pos, end token.Pos, receiver ...*Node) *Node {
	n := New(Select, pos, end)
	n.Name, n.Children = name, receiver

	return n
}

// NewCall creates an invocation of target with the given argument subtrees.
func NewCall(target *Node, pos, end token.Pos, args ...*Node) *Node {
	n := New(Call, pos, end)
	n.Target, n.Children = target, args

	return n
}

// NewParam creates a parameter declaration.
func NewParam(name string, pos, end token.Pos) *Node {
	n := New(Param, pos, end)
	n.Name = name

	return n
}

// NewMethod creates a method declaration. body may be nil.
func NewMethod(name string, pos, end token.Pos, params []*Node, body *Node) *Node {
	n := New(Method, pos, end)
	n.Name, n.Params, n.Body = name, params, body

	return n
}

// NewOther creates a node without dedicated category.
func NewOther(pos, end token.Pos, children ...*Node) *Node {
	n := New(Other, pos, end)
	n.Children = children

	return n
}
