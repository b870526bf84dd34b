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

func fiveLoops(count int) {
	for range count {
	}
	for range count {
	}
	for index := 0; index < count; index++ {
	}
	for count > 0 {
		count--
	}
	for {
		break
	}
}

func sixLoops(count int) { // want "Method 'sixLoops' has a moderately high number of loops"
	for range count {
	}
	for range count {
	}
	for range count {
	}
	for range count {
	}
	for range count {
	}
	for range count {
	}
}

func nineLoops(count int) { // want "Method 'nineLoops' has too many loops"
	for range count {
		for range count {
			for range count {
			}
		}
	}
	for range count {
		for range count {
			for range count {
			}
		}
	}
	for range count {
		for range count {
			for range count {
			}
		}
	}
}

func nineBranches(count int) int { // want "Method 'nineBranches' has a moderately high number of branches"
	if count > 1 {
		return 1
	}
	if count > 2 {
		return 2
	}
	if count > 3 {
		return 3
	}
	if count > 4 {
		return 4
	}
	if count > 5 {
		return 5
	} else if count > 6 {
		return 6
	}
	if count > 7 {
		return 7
	}
	if count > 8 {
		return 8
	}
	if count > 9 {
		return 9
	}
	return 0
}

func manyCases(count int) string { // want "Method 'manyCases' has too many branches"
	switch count {
	case 1:
		return "one"
	case 2:
		return "two"
	case 3:
		return "three"
	case 4:
		return "four"
	case 5:
		return "five"
	case 6:
		return "six"
	case 7:
		return "seven"
	case 8:
		return "eight"
	case 9:
		return "nine"
	case 10:
		return "ten"
	case 11:
		return "eleven"
	case 12:
		return "twelve"
	default:
		return "many"
	}
}

func combined(count int) int { // want "(?s)moderately high number of loops.*moderately high number of branches.*Combined complexity: 16"
	total := 0
	for range count {
		total++
	}
	for range count {
		total++
	}
	for range count {
		total++
	}
	for range count {
		total++
	}
	for range count {
		total++
	}
	for range count {
		total++
	}
	if total > 1 {
		total--
	}
	if total > 2 {
		total--
	}
	if total > 3 {
		total--
	}
	if total > 4 {
		total--
	}
	if total > 5 {
		total--
	}
	if total > 6 {
		total--
	}
	if total > 7 {
		total--
	}
	if total > 8 {
		total--
	}
	if total > 9 {
		total--
	}
	if total > 10 {
		total--
	}
	return total
}

func selects(first, second chan int) int { // want "Method 'selects' has a moderately high number of branches"
	for range 2 {
		select {
		case <-first:
		case <-second:
		default:
		}
		select {
		case <-first:
		case <-second:
		default:
		}
	}
	if first == nil {
		return 1
	}
	defer func() {
		if recovered := recover(); recovered != nil {
			panic(recovered)
		}
	}()
	return 0
}

//nolint:methodlint
func ignored(count int) {
	for range count {
	}
	for range count {
	}
	for range count {
	}
	for range count {
	}
	for range count {
	}
	for range count {
	}
}

type worker struct{ count int }

func (w *worker) busy() { // want "Method 'busy' has a moderately high number of loops"
	for range w.count {
	}
	for range w.count {
	}
	for range w.count {
	}
	for range w.count {
	}
	for range w.count {
	}
	for range w.count {
	}
}
