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

package analyzer_test

import (
	"flag"
	"strings"
	"testing"

	. "github.com/jvc-nc/pAnalysisProject/analyzer"
	"github.com/jvc-nc/pAnalysisProject/internal/config"
)

func TestFlagValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		initial config.CheckFlags
		args    []string
		want    bool
	}{
		{
			name:    "Enable",
			initial: config.ComplexityCheck,
			args:    []string{"-naming"},
			want:    true,
		},
		{
			name:    "Disable",
			initial: config.NamingCheck,
			args:    []string{"-naming=false"},
			want:    false,
		},
		{
			name:    "Off",
			initial: config.NamingCheck,
			args:    []string{"-naming=off"},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var flags config.Checks
			flags.Set(tt.initial, true)

			fs := flag.NewFlagSet("test", flag.ContinueOnError)

			const value = config.NamingCheck
			fv := NewCheckValue(&flags, value)
			fs.Var(fv, "naming", "enable naming check")

			if err := fs.Parse(tt.args); err != nil {
				t.Fatalf("Parse failed: %v", err)
			}

			if fv.Get() != tt.want {
				t.Errorf("Flag get = %v, want %v", fv.Get(), tt.want)
			}

			if flags.Enabled(value) != tt.want {
				t.Errorf("NamingCheck enabled = %v, want %v", flags.Enabled(value), tt.want)
			}

			if tt.initial != value && !flags.Enabled(tt.initial) {
				t.Errorf("Flag %v was reset", tt.initial)
			}
		})
	}
}

func TestFlagValueInvalid(t *testing.T) {
	t.Parallel()

	var flags config.Checks

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(&strings.Builder{})
	fs.Var(NewCheckValue(&flags, config.ComplexityCheck), "complexity", "enable complexity check")

	if err := fs.Parse([]string{"-complexity=maybe"}); err == nil {
		t.Error("Expected parse error")
	}
}

func TestUsage(t *testing.T) {
	t.Parallel()

	var flags config.Checks
	flags.Set(config.ComplexityCheck, true)

	fs := flag.NewFlagSet("test", flag.ContinueOnError)

	fv := NewCheckValue(&flags, config.ComplexityCheck)
	fs.Var(fv, "complexity", "enable complexity check")

	const expectedUsage = `
  -complexity
    	enable complexity check (default true)
`

	var out strings.Builder
	fs.SetOutput(&out)
	fs.Usage()

	if got, want := out.String(), expectedUsage; !strings.HasSuffix(got, want) {
		t.Errorf("Usage() = %q, want suffix %q", got, want)
	}
}
