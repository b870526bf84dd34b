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

package complexity_test

import (
	"strings"
	"testing"

	. "github.com/jvc-nc/pAnalysisProject/internal/complexity"
	"github.com/jvc-nc/pAnalysisProject/internal/diag"
	"github.com/jvc-nc/pAnalysisProject/internal/tree"
)

func loops(n int) []*tree.Node {
	nodes := make([]*tree.Node, n)
	for i := range nodes {
		nodes[i] = tree.NewLoop(tree.For, 0, 0)
	}

	return nodes
}

func ifs(n int) []*tree.Node {
	nodes := make([]*tree.Node, n)
	for i := range nodes {
		nodes[i] = tree.NewBranch(tree.If, 0, 0)
	}

	return nodes
}

func method(children ...*tree.Node) *tree.Node {
	return tree.NewMethod("process", 0, 0, nil, tree.NewOther(0, 0, children...))
}

func TestCounts(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name           string
		body           *tree.Node
		loops, branchs int
	}{
		{"empty", tree.NewOther(0, 0), 0, 0},
		{"nil", nil, 0, 0},
		{
			"nested_loops",
			tree.NewLoop(tree.For, 0, 0,
				tree.NewLoop(tree.While, 0, 0,
					tree.NewLoop(tree.DoWhile, 0, 0,
						tree.NewLoop(tree.ForEach, 0, 0)))),
			4, 0,
		},
		{
			"loop_in_branch",
			tree.NewBranch(tree.If, 0, 0, tree.NewLoop(tree.Forever, 0, 0)),
			1, 1,
		},
		{
			"else_if_chain",
			tree.NewBranch(tree.If, 0, 0, tree.NewBranch(tree.If, 0, 0, tree.NewBranch(tree.If, 0, 0))),
			0, 3,
		},
		{
			"switch_counts_labels",
			tree.NewSwitch(tree.Switch, 4, 0, 0, tree.NewOther(0, 0), tree.NewOther(0, 0)),
			0, 4,
		},
		{
			"select_counts_labels",
			tree.NewSwitch(tree.SelectCase, 2, 0, 0),
			0, 2,
		},
		{
			"ternary_and_catch",
			tree.NewOther(0, 0, tree.NewBranch(tree.Ternary, 0, 0), tree.NewBranch(tree.Catch, 0, 0), tree.NewBranch(tree.Catch, 0, 0)),
			0, 3,
		},
		{
			"call_arguments",
			tree.NewCall(tree.NewIdent("run", 0, 0), 0, 0, tree.NewBranch(tree.Ternary, 0, 0)),
			0, 1,
		},
		{
			"nested_method",
			tree.NewMethod("inner", 0, 0, nil, tree.NewLoop(tree.For, 0, 0)),
			1, 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Loops(tt.body); got != tt.loops {
				t.Errorf("Loops() = %d, want %d", got, tt.loops)
			}

			if got := Branches(tt.body); got != tt.branchs {
				t.Errorf("Branches() = %d, want %d", got, tt.branchs)
			}

			if got, want := Total(tt.body), tt.loops+tt.branchs; got != want {
				t.Errorf("Total() = %d, want %d", got, want)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name     string
		method   *tree.Node
		contains []string
		absent   []string
		severity diag.Severity
	}{
		{
			name:   "none",
			method: method(),
			absent: []string{"loops", "branches", "complexity"},
		},
		{
			name:   "five_loops",
			method: method(loops(5)...),
			absent: []string{"loops"},
		},
		{
			name:     "six_loops",
			method:   method(loops(6)...),
			contains: []string{"Method 'process' has a moderately high number of loops:\n  Loop count        : 6"},
			absent:   []string{"too many loops"},
			severity: diag.Warning,
		},
		{
			name:     "eight_loops",
			method:   method(loops(8)...),
			contains: []string{"moderately high number of loops"},
			absent:   []string{"too many loops"},
			severity: diag.Warning,
		},
		{
			name:     "nine_loops",
			method:   method(loops(9)...),
			contains: []string{"too many loops", "Suggestion        : Consider refactoring to reduce loops."},
			absent:   []string{"moderately high number of loops"},
			severity: diag.Error,
		},
		{
			name:   "eight_branches",
			method: method(ifs(8)...),
			absent: []string{"branches"},
		},
		{
			name:     "nine_branches",
			method:   method(ifs(9)...),
			contains: []string{"moderately high number of branches", "Branch count      : 9"},
			severity: diag.Warning,
		},
		{
			name:     "thirteen_branches",
			method:   method(tree.NewSwitch(tree.Switch, 13, 0, 0)),
			contains: []string{"too many branches"},
			severity: diag.Error,
		},
		{
			name:     "total_fifteen",
			method:   method(append(loops(5), ifs(10)...)...),
			contains: []string{"moderately high number of branches"},
			absent:   []string{"total", "loops"},
			severity: diag.Warning,
		},
		{
			name:     "total_sixteen",
			method:   method(append(loops(6), ifs(10)...)...),
			contains: []string{"high total cyclomatic complexity", "Combined complexity: 16"},
			severity: diag.Error,
		},
		{
			name:     "all_three",
			method:   method(append(loops(9), ifs(13)...)...),
			contains: []string{"too many loops", "too many branches", "Combined complexity: 22"},
			severity: diag.Error,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := Classify(tt.method)
			msg := f.Message()

			if len(tt.contains) == 0 && f.Found() {
				t.Errorf("Unexpected finding %q", msg)
			}

			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("Message %q does not contain %q", msg, s)
				}
			}

			for _, s := range tt.absent {
				if strings.Contains(msg, s) {
					t.Errorf("Message %q contains %q", msg, s)
				}
			}

			if f.Found() && f.Severity != tt.severity {
				t.Errorf("Severity = %s, want %s", f.Severity, tt.severity)
			}
		})
	}
}
