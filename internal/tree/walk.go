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

import "iter"

// Edges yields the direct descendants of n: the call target, the parameters,
// the body and the remaining children, in this order.
func (n *Node) Edges() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		if n == nil {
			return
		}

		if n.Target != nil && !yield(n.Target) {
			return
		}

		for _, p := range n.Params {
			if !yield(p) {
				return
			}
		}

		if n.Body != nil && !yield(n.Body) {
			return
		}

		for _, c := range n.Children {
			if c != nil && !yield(c) {
				return
			}
		}
	}
}

// All yields n and all its descendants in preorder.
func (n *Node) All() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		n.preorder(yield)
	}
}

func (n *Node) preorder(yield func(*Node) bool) bool {
	if n == nil {
		return true
	}

	if !yield(n) {
		return false
	}

	for c := range n.Edges() {
		if !c.preorder(yield) {
			return false
		}
	}

	return true
}

// Fold returns the sum of f over n and all its descendants.
func Fold(n *Node, f func(*Node) int) int {
	if n == nil {
		return 0
	}

	sum := f(n)
	for c := range n.Edges() {
		sum += Fold(c, f)
	}

	return sum
}

// Methods yields every [Method] node in the given trees, nested methods included, in preorder.
func Methods(roots ...*Node) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for _, root := range roots {
			for n := range root.All() {
				if n.Kind == Method && !yield(n) {
					return
				}
			}
		}
	}
}
