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

package complexity

import (
	"fmt"
	"strings"

	"github.com/jvc-nc/pAnalysisProject/internal/diag"
	"github.com/jvc-nc/pAnalysisProject/internal/tree"
)

// Threshold is one severity tier of a metric.
type Threshold struct {
	// Bound is exceeded when the metric is strictly greater.
	Bound    int
	Severity diag.Severity
	// Format is formatted with the method name and the metric value.
	Format string
}

// Exceeded reports whether count lies above the tier's bound.
func (t Threshold) Exceeded(count int) bool { return count > t.Bound }

// Message formats the tier message for a method.
func (t Threshold) Message(method string, count int) string {
	return fmt.Sprintf(t.Format, method, count)
}

// Tiers is a threshold table, ordered from the highest bound to the lowest.
type Tiers []Threshold

// Classify returns the first, most severe tier exceeded by count.
func (ts Tiers) Classify(count int) (Threshold, bool) {
	for _, t := range ts {
		if t.Exceeded(count) {
			return t, true
		}
	}

	return Threshold{}, false
}

// Fixed threshold tables.
var (
	LoopTiers = Tiers{
		{
			Bound:    8,
			Severity: diag.Error,
			Format: "Method '%s' has too many loops:\n" +
				"  Loop count        : %d\n" +
				"  Recommended max   : 5\n" +
				"  Suggestion        : Consider refactoring to reduce loops.",
		},
		{
			Bound:    5,
			Severity: diag.Warning,
			Format: "Method '%s' has a moderately high number of loops:\n" +
				"  Loop count        : %d\n" +
				"  Recommended max   : 5",
		},
	}

	BranchTiers = Tiers{
		{
			Bound:    12,
			Severity: diag.Error,
			Format: "Method '%s' has too many branches:\n" +
				"  Branch count      : %d\n" +
				"  Recommended max   : 8\n" +
				"  Suggestion        : Consider refactoring to reduce branches.",
		},
		{
			Bound:    8,
			Severity: diag.Warning,
			Format: "Method '%s' has a moderately high number of branches:\n" +
				"  Branch count      : %d\n" +
				"  Recommended max   : 8",
		},
	}

	TotalTiers = Tiers{
		{
			Bound:    15,
			Severity: diag.Error,
			Format: "Method '%s' has high total cyclomatic complexity:\n" +
				"  Combined complexity: %d\n" +
				"  Recommended max    : 15\n" +
				"  Suggestion         : Consider refactoring to simplify control flow.",
		},
	}
)

// Metric ties a counting function to its threshold table.
type Metric struct {
	Count func(*tree.Node) int
	Tiers Tiers
}

// Metrics are evaluated in this order; their messages appear in the same order.
var Metrics = [...]Metric{
	{Loops, LoopTiers},
	{Branches, BranchTiers},
	{Total, TotalTiers},
}

// Finding is the classification of a method's body against all [Metrics].
type Finding struct {
	Messages []string
	Severity diag.Severity
}

// Found reports whether any threshold was exceeded.
func (f Finding) Found() bool { return len(f.Messages) > 0 }

// Message returns all messages, newline separated.
func (f Finding) Message() string {
	return strings.TrimSpace(strings.Join(f.Messages, "\n"))
}

// Classify evaluates every metric on the method and collects the messages of
// the exceeded tiers. Each metric contributes at most one message.
func Classify(method *tree.Node) Finding {
	var f Finding
	if method == nil || method.Body == nil {
		return f
	}

	for _, m := range Metrics {
		count := m.Count(method.Body)

		t, ok := m.Tiers.Classify(count)
		if !ok {
			continue
		}

		f.Messages = append(f.Messages, t.Message(method.Name, count))
		f.Severity = max(f.Severity, t.Severity)
	}

	return f
}
