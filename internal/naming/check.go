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

package naming

import (
	"errors"
	"fmt"

	"github.com/jvc-nc/pAnalysisProject/internal/diag"
	"github.com/jvc-nc/pAnalysisProject/internal/tree"
)

// ErrMalformedCall is returned for invocations whose target is neither a
// simple name nor a qualified member access.
var ErrMalformedCall = errors.New("malformed method invocation")

// MalformedCallError reports an invocation that violates the tree model's input contract.
type MalformedCallError struct {
	Call *tree.Node
}

func (e *MalformedCallError) Error() string {
	return fmt.Sprintf("Method name %s is malformed.", describeCall(e.Call))
}

func (e *MalformedCallError) Unwrap() error { return ErrMalformedCall }

func describeCall(call *tree.Node) string {
	if call == nil {
		return "<nil>"
	}

	return call.Target.Describe()
}

// Identifier checks a free-standing identifier reference.
func Identifier(n *tree.Node) (diag.Diagnostic, bool) {
	return check(n, IdentifierRules, n.Name)
}

// CallTarget returns the name an invocation selects: the member name of a qualified
// call or the bare name of an unqualified call.
func CallTarget(call *tree.Node) (string, error) {
	switch target := call.Target; {
	case target == nil:
		return "", &MalformedCallError{Call: call}

	case target.Kind == tree.Select, target.Kind == tree.Ident:
		return target.Name, nil

	default:
		return "", &MalformedCallError{Call: call}
	}
}

// Call checks the target name of an invocation.
//
// The diagnostic is attached to the invocation. Malformed targets return
// a [*MalformedCallError].
func Call(call *tree.Node) (diag.Diagnostic, bool, error) {
	name, err := CallTarget(call)
	if err != nil {
		return diag.Diagnostic{}, false, err
	}

	d, ok := check(call, IdentifierRules, name)

	return d, ok, nil
}

// Method checks a method declaration: first the method's name, then each
// parameter in declaration order. Only the first violation is reported.
func Method(method *tree.Node) (diag.Diagnostic, bool) {
	if d, ok := check(method, MethodRules, method.Name); ok {
		return d, true
	}

	for _, p := range method.Params {
		if d, ok := check(method, ParamRules, p.Name); ok {
			return d, true
		}
	}

	return diag.Diagnostic{}, false
}

func check(n *tree.Node, rules Rules, name string) (diag.Diagnostic, bool) {
	r, ok := rules.First(name)
	if !ok {
		return diag.Diagnostic{}, false
	}

	return diag.Diagnostic{
		Node:     n,
		Check:    diag.Naming,
		Severity: diag.Warning,
		Message:  r.Message(name),
	}, true
}
