// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

// Package analyzer implements the methodlint static analysis pass.
//
// # Overview
//
// MethodLint reports functions and methods whose bodies contain too many loops or
// branches, and identifiers with poorly chosen names.
//
// # Complexity
//
// Loops and branches of a body are counted, including those of nested function literals.
// Every case clause of a switch or select statement counts as a branch, as does a
// recover call. Thresholds are fixed:
//
//   - more than 5 loops is a warning, more than 8 an error
//   - more than 8 branches is a warning, more than 12 an error
//   - more than 15 loops and branches combined is an error
//
// All findings of one function are combined into a single diagnostic.
//
// # Naming
//
// The function name and its parameters are checked first; only the first violation
// is reported:
//
//	func do_work(x1 int) {} // do_work is not a valid method name
//
// Every identifier referenced in the body and the name of every called function is
// checked against a small rule list:
//
//	x := compute()
//	return x // x is too short to be a good identifier name
//
// The loop counters i, j and k are accepted.
//
// # Suppression
//
// A `//nolint:methodlint` comment on the line of a finding, in the doc comment of a function,
// or in the package comment suppresses reports.
package analyzer
