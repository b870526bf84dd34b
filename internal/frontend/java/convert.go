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

package java

import (
	"go/token"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/jvc-nc/pAnalysisProject/internal/tree"
)

// constructorName is the name the Java compiler gives constructors.
const constructorName = "<init>"

type converter struct {
	src  []byte
	file *token.File
}

func (c converter) span(n *sitter.Node) (token.Pos, token.Pos) {
	return c.file.Pos(int(n.StartByte())), c.file.Pos(int(n.EndByte()))
}

func (c converter) text(n *sitter.Node) string {
	return n.Content(c.src)
}

// methods collects method declarations outside of method bodies.
func (c converter) methods(n *sitter.Node) []*tree.Node {
	switch n.Type() {
	case "method_declaration", "constructor_declaration":
		return one(c.method(n))
	}

	var ms []*tree.Node
	for i := range int(n.NamedChildCount()) {
		ms = append(ms, c.methods(n.NamedChild(i))...)
	}

	return ms
}

func (c converter) method(n *sitter.Node) *tree.Node {
	name := constructorName
	if n.Type() == "method_declaration" {
		if id := field(n, "name"); id != nil {
			name = c.text(id)
		}
	}

	var body *tree.Node
	if b := field(n, "body"); b != nil {
		pos, end := c.span(b)
		body = tree.NewOther(pos, end, c.children(b)...)
	}

	pos, end := c.span(n)

	return tree.NewMethod(name, pos, end, c.params(field(n, "parameters")), body)
}

// params returns the declared parameters in order. Receiver parameters are skipped.
func (c converter) params(list *sitter.Node) []*tree.Node {
	if list == nil {
		return nil
	}

	var ps []*tree.Node
	for i := range int(list.NamedChildCount()) {
		var id *sitter.Node

		switch p := list.NamedChild(i); p.Type() {
		case "formal_parameter":
			id = field(p, "name")

		case "spread_parameter":
			for j := range int(p.NamedChildCount()) {
				if d := p.NamedChild(j); d.Type() == "variable_declarator" {
					id = field(d, "name")
				}
			}
		}

		if id == nil {
			continue
		}

		pos, end := c.span(id)
		ps = append(ps, tree.NewParam(c.text(id), pos, end))
	}

	return ps
}

// nodes returns the tree nodes for n. Syntax without a dedicated node kind is
// flattened into its children.
func (c converter) nodes(n *sitter.Node) []*tree.Node {
	pos, end := c.span(n)

	switch n.Type() {
	case "for_statement":
		return one(tree.NewLoop(tree.For, pos, end, c.children(n)...))

	case "enhanced_for_statement":
		return one(tree.NewLoop(tree.ForEach, pos, end, c.children(n)...))

	case "while_statement":
		return one(tree.NewLoop(tree.While, pos, end, c.children(n)...))

	case "do_statement":
		return one(tree.NewLoop(tree.DoWhile, pos, end, c.children(n)...))

	case "if_statement":
		return one(tree.NewBranch(tree.If, pos, end, c.children(n)...))

	case "ternary_expression":
		return one(tree.NewBranch(tree.Ternary, pos, end, c.children(n)...))

	case "switch_expression":
		if !statement(n) {
			return c.children(n)
		}

		return one(tree.NewSwitch(tree.Switch, caseLabels(n), pos, end, c.children(n)...))

	case "catch_clause":
		return one(tree.NewBranch(tree.Catch, pos, end, c.children(n)...))

	case "method_invocation":
		return one(c.call(n))

	case "method_declaration", "constructor_declaration":
		return one(c.method(n))

	case "identifier", "type_identifier":
		return one(tree.NewIdent(c.text(n), pos, end))

	default:
		return c.children(n)
	}
}

func (c converter) children(n *sitter.Node) []*tree.Node {
	var nodes []*tree.Node
	for i := range int(n.NamedChildCount()) {
		child := n.NamedChild(i)
		if declaration(n, child) {
			continue
		}

		nodes = append(nodes, c.nodes(child)...)
	}

	return nodes
}

// call converts a method invocation. A missing method name yields a malformed target.
func (c converter) call(n *sitter.Node) *tree.Node {
	pos, end := c.span(n)
	name, object := field(n, "name"), field(n, "object")

	var target *tree.Node
	switch {
	case name == nil:
		target = tree.NewOther(pos, end)

	case object != nil:
		tpos, _ := c.span(object)
		_, tend := c.span(name)
		target = tree.NewSelect(c.text(name), tpos, tend, c.nodes(object)...)

	default:
		npos, nend := c.span(name)
		target = tree.NewIdent(c.text(name), npos, nend)
	}

	var args []*tree.Node
	if a := field(n, "arguments"); a != nil {
		args = c.children(a)
	}

	return tree.NewCall(target, pos, end, args...)
}

// caseLabels counts the case and default labels of a switch.
func caseLabels(n *sitter.Node) int {
	body := field(n, "body")
	if body == nil {
		return 0
	}

	labels := 0
	for i := range int(body.NamedChildCount()) {
		group := body.NamedChild(i)
		for j := range int(group.NamedChildCount()) {
			if group.NamedChild(j).Type() == "switch_label" {
				labels++
			}
		}
	}

	return labels
}

// statement reports whether the switch n stands in statement position. The
// grammar parses switch statements and switch expressions alike.
func statement(n *sitter.Node) bool {
	parent := n.Parent()
	if parent == nil {
		return true
	}

	switch parent.Type() {
	case "block", "constructor_body", "switch_block_statement_group", "labeled_statement", "program":
		return true

	case "if_statement":
		return same(field(parent, "consequence"), n) || same(field(parent, "alternative"), n)

	case "for_statement", "enhanced_for_statement", "while_statement", "do_statement":
		return same(field(parent, "body"), n)
	}

	return false
}

// declaration reports whether child is a declared name or member name of parent,
// as opposed to an identifier reference.
func declaration(parent, child *sitter.Node) bool {
	if child.Type() == "type_identifier" {
		return parent.Type() == "type_parameter"
	}

	if child.Type() != "identifier" {
		return false
	}

	switch parent.Type() {
	case "labeled_statement", "break_statement", "continue_statement", "inferred_parameters":
		return true

	case "field_access":
		return same(field(parent, "field"), child)

	case "lambda_expression":
		return same(field(parent, "parameters"), child)
	}

	return same(field(parent, "name"), child)
}

// field returns the named field child of n, treating missing nodes as absent.
func field(n *sitter.Node, name string) *sitter.Node {
	f := n.ChildByFieldName(name)
	if f == nil || f.IsMissing() {
		return nil
	}

	return f
}

func same(a, b *sitter.Node) bool {
	return a != nil && b != nil &&
		a.StartByte() == b.StartByte() && a.EndByte() == b.EndByte() && a.Type() == b.Type()
}

func one(n *tree.Node) []*tree.Node { return []*tree.Node{n} }
