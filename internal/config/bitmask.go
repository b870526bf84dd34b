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

package config

// bits is the underlying type of the check and behavior switches.
type bits interface{ ~uint8 | ~uint16 | ~uint32 | ~uint64 }

// BitMask is a set of switches, such as the checks run on each method.
// The zero value has every switch off.
type BitMask[T bits] struct {
	value T
}

// NewBitMask returns a [BitMask] with exactly the given switches on.
func NewBitMask[T bits](flags ...T) BitMask[T] {
	var b BitMask[T]
	for _, flag := range flags {
		b.Enable(flag)
	}

	return b
}

// Set turns flag on or off, as a command line switch or a plugin setting does.
func (b *BitMask[T]) Set(flag T, on bool) {
	if !on {
		b.Disable(flag)

		return
	}

	b.Enable(flag)
}

// Enable turns flag on.
func (b *BitMask[T]) Enable(flag T) { b.value |= flag }

// Disable turns flag off.
func (b *BitMask[T]) Disable(flag T) { b.value &^= flag }

// Enabled reports whether any switch in flag is on.
func (b BitMask[T]) Enabled(flag T) bool {
	return b.value&flag != 0
}
