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

// Package diag defines the diagnostic records produced by the rule engine.
package diag

import "github.com/jvc-nc/pAnalysisProject/internal/tree"

// Severity is the graded classification of a [Diagnostic].
type Severity uint8

//go:generate go tool stringer -type Severity -linecomment
const (
	// Warning is a moderate quality issue.
	Warning Severity = iota // warning

	// Error is a strong quality issue.
	Error // error
)

// Check names the analysis that produced a [Diagnostic].
type Check string

const (
	// Complexity is the control-flow density check.
	Complexity Check = "complexity"

	// Naming is the identifier quality check.
	Naming Check = "naming"
)

// Diagnostic is a rule violation attached to a syntax tree node.
//
// Diagnostics are immutable after creation.
type Diagnostic struct {
	Node     *tree.Node
	Check    Check
	Severity Severity
	Message  string
}

// MarshalText implements [encoding.TextMarshaler].
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
