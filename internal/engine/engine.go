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

// Package engine runs the complexity and naming rules over method trees and
// produces diagnostics.
//
// Complexity findings of a method are merged into one diagnostic. Naming
// violations are reported one per offending node.
package engine

import (
	"errors"
	"iter"

	"github.com/jvc-nc/pAnalysisProject/internal/complexity"
	"github.com/jvc-nc/pAnalysisProject/internal/diag"
	"github.com/jvc-nc/pAnalysisProject/internal/naming"
	"github.com/jvc-nc/pAnalysisProject/internal/tree"
)

// Complexity returns the combined complexity diagnostic of a method, if any threshold is exceeded.
func Complexity(method *tree.Node) (diag.Diagnostic, bool) {
	f := complexity.Classify(method)
	if !f.Found() {
		return diag.Diagnostic{}, false
	}

	return diag.Diagnostic{
		Node:     method,
		Check:    diag.Complexity,
		Severity: f.Severity,
		Message:  f.Message(),
	}, true
}

// Names checks the method declaration, then every identifier reference and call
// target of its body in preorder. Nested methods are not entered.
//
// A malformed invocation does not stop the other checks; all such failures are
// returned joined.
func Names(method *tree.Node) ([]diag.Diagnostic, error) {
	var (
		diagnostics []diag.Diagnostic
		errs        []error
	)

	if d, ok := naming.Method(method); ok {
		diagnostics = append(diagnostics, d)
	}

	for n := range references(method.Body) {
		switch n.Kind {
		case tree.Ident:
			if d, ok := naming.Identifier(n); ok {
				diagnostics = append(diagnostics, d)
			}

		case tree.Call:
			d, ok, err := naming.Call(n)
			if err != nil {
				errs = append(errs, err)

				continue
			}

			if ok {
				diagnostics = append(diagnostics, d)
			}
		}
	}

	return diagnostics, errors.Join(errs...)
}

// references yields identifier and call nodes below n, skipping nested methods
// and the names of call targets.
func references(n *tree.Node) iter.Seq[*tree.Node] {
	return func(yield func(*tree.Node) bool) {
		visit(n, yield)
	}
}

func visit(n *tree.Node, yield func(*tree.Node) bool) bool {
	if n == nil {
		return true
	}

	switch n.Kind {
	case tree.Method:
		return true

	case tree.Ident:
		return yield(n)

	case tree.Call:
		if !yield(n) {
			return false
		}

		// The receiver of a qualified call holds references, the selected name does not.
		if t := n.Target; t != nil && t.Kind != tree.Ident {
			for _, c := range t.Children {
				if !visit(c, yield) {
					return false
				}
			}
		}

		for _, c := range n.Children {
			if !visit(c, yield) {
				return false
			}
		}

		return true
	}

	for c := range n.Edges() {
		if !visit(c, yield) {
			return false
		}
	}

	return true
}

// Method runs all enabled checks on a single method.
func Method(method *tree.Node, checks Checks) ([]diag.Diagnostic, error) {
	var diagnostics []diag.Diagnostic

	if checks.Complexity {
		if d, ok := Complexity(method); ok {
			diagnostics = append(diagnostics, d)
		}
	}

	if !checks.Naming {
		return diagnostics, nil
	}

	names, err := Names(method)

	return append(diagnostics, names...), err
}

// All runs the enabled checks on every method of the given trees, nested methods included.
func All(roots []*tree.Node, checks Checks) ([]diag.Diagnostic, error) {
	var (
		diagnostics []diag.Diagnostic
		errs        []error
	)

	for method := range tree.Methods(roots...) {
		ds, err := Method(method, checks)
		diagnostics = append(diagnostics, ds...)

		if err != nil {
			errs = append(errs, err)
		}
	}

	return diagnostics, errors.Join(errs...)
}

// Checks selects the analyses to run.
type Checks struct {
	Complexity bool
	Naming     bool
}

// AllChecks enables every analysis.
var AllChecks = Checks{Complexity: true, Naming: true}
