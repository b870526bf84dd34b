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

// Package javalint runs the rule engine over Java source files in parallel.
package javalint

import (
	"cmp"
	"slices"

	"github.com/jvc-nc/pAnalysisProject/internal/diag"
)

// Finding is a diagnostic located in a source file.
type Finding struct {
	Path     string        `json:"path"     yaml:"path"`
	Line     int           `json:"line"     yaml:"line"`
	Column   int           `json:"column"   yaml:"column"`
	Check    diag.Check    `json:"check"    yaml:"check"`
	Severity diag.Severity `json:"severity" yaml:"severity"`
	Message  string        `json:"message"  yaml:"message"`
}

// Failure is a file that could not be linted completely.
type Failure struct {
	Path    string `json:"path"           yaml:"path"`
	Line    int    `json:"line,omitempty" yaml:"line,omitempty"`
	Message string `json:"message"        yaml:"message"`
}

// Report holds the results of a lint run.
type Report struct {
	Files    int       `json:"files"              yaml:"files"`
	Findings []Finding `json:"findings"           yaml:"findings"`
	Failures []Failure `json:"failures,omitempty" yaml:"failures,omitempty"`
}

// Count returns the number of findings with the given severity.
func (r *Report) Count(severity diag.Severity) int {
	n := 0

	for _, f := range r.Findings {
		if f.Severity == severity {
			n++
		}
	}

	return n
}

// Sort orders findings and failures by file and position.
func (r *Report) Sort() {
	slices.SortStableFunc(r.Findings, func(a, b Finding) int {
		return cmp.Or(
			cmp.Compare(a.Path, b.Path),
			cmp.Compare(a.Line, b.Line),
			cmp.Compare(a.Column, b.Column),
			cmp.Compare(a.Check, b.Check),
		)
	})

	slices.SortStableFunc(r.Failures, func(a, b Failure) int {
		return cmp.Or(
			cmp.Compare(a.Path, b.Path),
			cmp.Compare(a.Line, b.Line),
		)
	})
}

func (r *Report) add(res fileResult) {
	r.Findings = append(r.Findings, res.findings...)
	r.Failures = append(r.Failures, res.failures...)
}
