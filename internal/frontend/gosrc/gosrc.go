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

// Package gosrc builds method trees from Go syntax and type information.
package gosrc

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/jvc-nc/pAnalysisProject/internal/astutil"
	"github.com/jvc-nc/pAnalysisProject/internal/tree"
)

// Build returns the method tree of the function declaration at c.
//
// info must record identifier uses; references are only modelled for identifiers found in info.Uses.
func Build(info *types.Info, c inspector.Cursor) *tree.Node {
	fn, ok := c.Node().(*ast.FuncDecl)
	if !ok {
		return nil
	}

	b := builder{info: info}

	var body *tree.Node
	if fn.Body != nil {
		bc := c.ChildAt(edge.FuncDecl_Body, -1)
		body = tree.NewOther(fn.Body.Pos(), fn.Body.End(), b.children(bc)...)
	}

	return tree.NewMethod(fn.Name.Name, fn.Pos(), fn.End(), params(fn.Type.Params), body)
}

// params returns the named parameters in declaration order.
func params(list *ast.FieldList) []*tree.Node {
	var ps []*tree.Node
	for id := range astutil.AllParams(list) {
		ps = append(ps, tree.NewParam(id.Name, id.Pos(), id.End()))
	}

	return ps
}

type builder struct {
	info *types.Info
}

func (b builder) children(c inspector.Cursor) []*tree.Node {
	var nodes []*tree.Node
	for child := range c.Children() {
		nodes = append(nodes, b.nodes(child)...)
	}

	return nodes
}

// nodes returns the tree nodes for the syntax at c. Syntax without a dedicated
// node kind is flattened into its children.
func (b builder) nodes(c inspector.Cursor) []*tree.Node {
	switch n := c.Node().(type) {
	case *ast.ForStmt:
		return one(tree.NewLoop(loopVariant(n), n.Pos(), n.End(), b.children(c)...))

	case *ast.RangeStmt:
		return one(tree.NewLoop(tree.ForEach, n.Pos(), n.End(), b.children(c)...))

	case *ast.IfStmt:
		return one(tree.NewBranch(tree.If, n.Pos(), n.End(), b.children(c)...))

	case *ast.SwitchStmt:
		return one(tree.NewSwitch(tree.Switch, len(n.Body.List), n.Pos(), n.End(), b.children(c)...))

	case *ast.TypeSwitchStmt:
		return one(tree.NewSwitch(tree.Switch, len(n.Body.List), n.Pos(), n.End(), b.children(c)...))

	case *ast.SelectStmt:
		return one(tree.NewSwitch(tree.SelectCase, len(n.Body.List), n.Pos(), n.End(), b.children(c)...))

	case *ast.CallExpr:
		return b.call(c, n)

	case *ast.SelectorExpr:
		// Member names are not references
		return b.nodes(c.ChildAt(edge.SelectorExpr_X, -1))

	case *ast.Ident:
		if b.reference(n) {
			return one(tree.NewIdent(n.Name, n.Pos(), n.End()))
		}

		return nil

	default:
		return b.children(c)
	}
}

func loopVariant(n *ast.ForStmt) tree.Variant {
	switch {
	case n.Init != nil || n.Post != nil:
		return tree.For

	case n.Cond != nil:
		return tree.While

	default:
		return tree.Forever
	}
}

// reference reports whether id is a free-standing identifier reference.
func (b builder) reference(id *ast.Ident) bool {
	if b.info == nil {
		return false
	}

	switch obj := b.info.Uses[id].(type) {
	case nil, *types.Label:
		return false

	case *types.Var:
		// Keys of composite literals
		return !obj.IsField()

	default:
		return true
	}
}

func (b builder) call(c inspector.Cursor, n *ast.CallExpr) []*tree.Node {
	fun := c.ChildAt(edge.CallExpr_Fun, -1)

	var args []*tree.Node
	for child := range c.Children() {
		if k, _ := child.ParentEdge(); k == edge.CallExpr_Fun {
			continue
		}

		args = append(args, b.nodes(child)...)
	}

	target := b.target(fun)
	if target == nil {
		// Conversions and calls of function values without a name
		return append(b.nodes(fun), args...)
	}

	call := tree.NewCall(target, n.Pos(), n.End(), args...)

	if b.isRecover(target, fun) {
		return one(tree.NewBranch(tree.Catch, n.Pos(), n.End(), call))
	}

	return one(call)
}

// target returns the named invocation target at c, or nil for anonymous targets.
func (b builder) target(c inspector.Cursor) *tree.Node {
	switch n := c.Node().(type) {
	case *ast.ParenExpr:
		return b.target(c.ChildAt(edge.ParenExpr_X, -1))

	case *ast.IndexListExpr:
		return b.target(c.ChildAt(edge.IndexListExpr_X, -1))

	case *ast.IndexExpr:
		// Instantiation of a generic function, not an element of a function slice or map
		if _, ok := b.typeOf(n.X).(*types.Signature); !ok {
			return nil
		}

		return b.target(c.ChildAt(edge.IndexExpr_X, -1))

	case *ast.Ident:
		if b.isType(n) {
			return nil
		}

		return tree.NewIdent(n.Name, n.Pos(), n.End())

	case *ast.SelectorExpr:
		if b.isType(n.Sel) {
			return nil
		}

		return tree.NewSelect(n.Sel.Name, n.Pos(), n.End(), b.nodes(c.ChildAt(edge.SelectorExpr_X, -1))...)

	default:
		return nil
	}
}

func (b builder) typeOf(e ast.Expr) types.Type {
	if b.info == nil {
		return nil
	}

	if t := b.info.TypeOf(e); t != nil {
		return t.Underlying()
	}

	return nil
}

func (b builder) isType(id *ast.Ident) bool {
	if b.info == nil {
		return false
	}

	_, ok := b.info.Uses[id].(*types.TypeName)

	return ok
}

// isRecover reports whether the call target is the builtin recover, Go's exception handler.
func (b builder) isRecover(target *tree.Node, fun inspector.Cursor) bool {
	if target.Kind != tree.Ident || b.info == nil {
		return false
	}

	id, ok := ast.Unparen(fun.Node().(ast.Expr)).(*ast.Ident)
	if !ok {
		return false
	}

	builtin, ok := b.info.Uses[id].(*types.Builtin)

	return ok && builtin.Name() == "recover"
}

func one(n *tree.Node) []*tree.Node { return []*tree.Node{n} }
