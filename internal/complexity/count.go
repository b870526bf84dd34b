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

// Package complexity counts control-flow constructs of a method and classifies
// the counts against fixed severity thresholds.
package complexity

import "github.com/jvc-nc/pAnalysisProject/internal/tree"

// Loops returns the number of loop nodes in the tree, at any nesting depth.
func Loops(n *tree.Node) int {
	return tree.Fold(n, loopWeight)
}

// Branches returns the number of branches in the tree.
//
// Each if, conditional expression and catch clause counts once; a switch counts
// with the number of its case labels.
func Branches(n *tree.Node) int {
	return tree.Fold(n, branchWeight)
}

// Total returns the sum of [Loops] and [Branches].
func Total(n *tree.Node) int {
	return Loops(n) + Branches(n)
}

func loopWeight(n *tree.Node) int {
	if n.IsLoop() {
		return 1
	}

	return 0
}

func branchWeight(n *tree.Node) int {
	if n.Kind != tree.Branch {
		return 0
	}

	switch n.Variant {
	case tree.If, tree.Ternary, tree.Catch:
		return 1

	case tree.Switch, tree.SelectCase:
		return n.Cases

	default:
		return 0
	}
}
