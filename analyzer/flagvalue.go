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

package analyzer

import "strconv"

// boolValue is a command line switch such as -naming=false. It turns a single
// check or behavior of the analyzer options on or off.
type boolValue[F any, B switches[F]] struct {
	flags B
	value F
}

// switches is implemented by *config.Checks and *config.Behavior.
type switches[F any] interface {
	comparable
	Set(flag F, value bool)
	Enabled(flag F) bool
}

// Set implements [flag.Value].
func (f boolValue[_, B]) Set(s string) error {
	b, err := parseBool(s)
	if err != nil {
		return err
	}

	f.flags.Set(f.value, b)

	return nil
}

// String implements [flag.Value]. The zero value prints as off, which is what
// the flag package uses to detect a default.
func (f boolValue[_, _]) String() string {
	on, _ := f.Get().(bool)

	return strconv.FormatBool(on)
}

// Get implements [flag.Getter].
func (f boolValue[_, B]) Get() any {
	var unset B

	return f.flags != unset && f.flags.Enabled(f.value)
}

// IsBoolFlag lets the switch be given without a value.
func (f boolValue[_, _]) IsBoolFlag() bool { return true }

// parseBool accepts the spellings of [strconv.ParseBool] plus on and off,
// which golangci-lint settings files commonly use.
func parseBool(str string) (bool, error) {
	switch str {
	case "1", "t", "T", "true", "TRUE", "True", "on", "On":
		return true, nil
	case "0", "f", "F", "false", "FALSE", "False", "off", "Off":
		return false, nil
	}

	return false, &strconv.NumError{Func: "ParseBool", Num: str, Err: strconv.ErrSyntax}
}
