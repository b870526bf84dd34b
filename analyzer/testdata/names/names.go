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

package names

import "strings"

func foo() {} // want "foo is too short to be a good method name"

func do_work() {} // want "do_work is not a valid method name"

func compute(x1 int) int { // want "x1 is not a valid parameter name"
	return x1
}

func handle(ab string) { // want "ab is too short to be a good parameter name"
	_ = ab
}

func convert(_ string) {} // want "_ is not a valid parameter name"

func process(value int) int {
	x := value
	return x // want "x is too short to be a good identifier name"
}

func counters(limit int) int {
	total := 0
	for i := 0; i < limit; i++ {
		for j := range limit {
			total += i * j
		}
	}
	return total
}

func calls(input string) string {
	foo := func() {}
	foo() // want "foo is a bad identifier name"

	var holder struct{ foo func() }
	holder.foo() // want "foo is a bad identifier name"

	return strings.ToUpper(input)
}

func lengths() int {
	averyveryveryveryverylongvariablename := 1
	return averyveryveryveryverylongvariablename // want "averyveryveryveryverylongvariablename is too long to be a good identifier name"
}

func suppressed() int {
	y := 1
	return y //nolint:methodlint
}

type server struct{ name string }

func (s *server) rename(name string) {
	s.name = name // want "s is too short to be a good identifier name"
}

func firstOnly(a, bb int) int { // want "a is too short to be a good parameter name"
	return a + bb // want "a is too short to be a good identifier name"
}
