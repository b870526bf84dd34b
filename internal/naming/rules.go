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

// Package naming implements lexical quality rules for identifiers, method names
// and parameter names.
//
// Rules are kept in ordered lists. The first violated rule of a list wins, its
// message is the only one reported for the checked name.
package naming

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"
)

// Rule is a named predicate over identifier text.
type Rule struct {
	// Name identifies the rule in tests and logs.
	Name string
	// Violated reports whether the identifier breaks the rule.
	Violated func(name string) bool
	// Format is formatted with the identifier.
	Format string
}

// Message formats the violation message for name.
func (r Rule) Message(name string) string {
	return fmt.Sprintf(r.Format, name)
}

// Rules is an ordered rule list, evaluated first to last.
type Rules []Rule

// First returns the first rule that name violates.
func (rs Rules) First(name string) (Rule, bool) {
	for _, r := range rs {
		if r.Violated(name) {
			return r, true
		}
	}

	return Rule{}, false
}

const (
	// maxLength is the longest acceptable identifier.
	maxLength = 30

	// minMethodLength is the shortest acceptable method name.
	minMethodLength = 4

	// minParamLength is the shortest acceptable parameter name.
	minParamLength = 3
)

// banned placeholder names.
var banned = [...]string{"foo"}

// loopCounters are single-letter names accepted by convention.
var loopCounters = [...]string{"i", "j", "k"}

// IdentifierRules apply to identifier references and call targets.
var IdentifierRules = Rules{
	{
		Name:     "banned",
		Violated: isBanned,
		Format:   "%s is a bad identifier name",
	},
	{
		// Only single-character names are checked; two-character names pass.
		Name:     "short",
		Violated: func(name string) bool { return length(name) == 1 && !isLoopCounter(name) },
		Format:   "%s is too short to be a good identifier name",
	},
	{
		Name:     "long",
		Violated: func(name string) bool { return length(name) > maxLength },
		Format:   "%s is too long to be a good identifier name",
	},
}

// MethodRules apply to the declared name of a method.
var MethodRules = Rules{
	{
		Name:     "short",
		Violated: func(name string) bool { return length(name) < minMethodLength },
		Format:   "%s is too short to be a good method name",
	},
	{
		Name:     "separator",
		Violated: func(name string) bool { return strings.ContainsAny(name, "_- ") },
		Format:   "%s is not a valid method name",
	},
}

// ParamRules apply to each declared parameter name.
var ParamRules = Rules{
	{
		Name:     "invalid",
		Violated: func(name string) bool { return name == "_" || strings.Contains(name, "1") },
		Format:   "%s is not a valid parameter name",
	},
	{
		Name:     "short",
		Violated: func(name string) bool { return length(name) < minParamLength },
		Format:   "%s is too short to be a good parameter name",
	},
	{
		Name:     "long",
		Violated: func(name string) bool { return length(name) > maxLength },
		Format:   "%s is too long to be a good parameter name",
	},
}

func isBanned(name string) bool { return slices.Contains(banned[:], name) }

func isLoopCounter(name string) bool { return slices.Contains(loopCounters[:], name) }

// length counts characters, not bytes.
func length(name string) int { return utf8.RuneCountInString(name) }
