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

package engine

import (
	"errors"
	"iter"

	"github.com/jvc-nc/pAnalysisProject/internal/naming"
)

// MalformedCalls yields every [*naming.MalformedCallError] in an error tree as
// returned by [Names] and [All].
func MalformedCalls(err error) iter.Seq[*naming.MalformedCallError] {
	return func(yield func(*naming.MalformedCallError) bool) {
		walkErrors(err, yield)
	}
}

func walkErrors(err error, yield func(*naming.MalformedCallError) bool) bool {
	if err == nil {
		return true
	}

	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			if !walkErrors(e, yield) {
				return false
			}
		}

		return true
	}

	var me *naming.MalformedCallError
	if errors.As(err, &me) {
		return yield(me)
	}

	return true
}
