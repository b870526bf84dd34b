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

package output_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/jvc-nc/pAnalysisProject/internal/diag"
	"github.com/jvc-nc/pAnalysisProject/internal/javalint"
	. "github.com/jvc-nc/pAnalysisProject/internal/output"
)

func sampleReport() *javalint.Report {
	return &javalint.Report{
		Files: 2,
		Findings: []javalint.Finding{
			{Path: "A.java", Line: 2, Column: 5, Check: diag.Naming, Severity: diag.Warning, Message: "a is too short to be a good method name"},
			{Path: "B.java", Line: 7, Column: 5, Check: diag.Complexity, Severity: diag.Error, Message: "Method 'run' has too many loops:\n  Loop count        : 9"},
		},
		Failures: []javalint.Failure{
			{Path: "C.java", Message: "permission denied"},
		},
	}
}

func render(t *testing.T, format Format) string {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, NewRenderer(&buf, format, false).Render(sampleReport()))

	return buf.String()
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]Format{"text": Text, "TABLE": Table, "json": JSON, "yaml": YAML, "yml": YAML} {
		got, err := ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseFormat("xml")
	require.ErrorIs(t, err, ErrUnknownFormat)
}

func TestText(t *testing.T) {
	t.Parallel()

	const want = `A.java:2:5: warning: a is too short to be a good method name [naming]
B.java:7:5: error: Method 'run' has too many loops:
  Loop count        : 9 [complexity]
C.java: failure: permission denied
2 problems (1 errors, 1 warnings) in 2 files
`

	assert.Equal(t, want, render(t, Text))
}

func TestTable(t *testing.T) {
	t.Parallel()

	got := render(t, Table)

	for _, s := range []string{"FILE", "SEVERITY", "A.java", "warning", "naming", "too many loops", "failure", "permission denied"} {
		assert.Contains(t, got, s)
	}

	assert.Contains(t, got, "2 problems (1 errors, 1 warnings) in 2 files")
}

func TestJSON(t *testing.T) {
	t.Parallel()

	var got struct {
		Files    int
		Findings []struct {
			Path     string
			Line     int
			Check    string
			Severity string
			Message  string
		}
		Failures []struct{ Path, Message string }
		Summary  struct{ Errors, Warnings int }
	}

	require.NoError(t, json.Unmarshal([]byte(render(t, JSON)), &got))

	assert.Equal(t, 2, got.Files)
	require.Len(t, got.Findings, 2)
	assert.Equal(t, "warning", got.Findings[0].Severity)
	assert.Equal(t, "complexity", got.Findings[1].Check)
	assert.Equal(t, "error", got.Findings[1].Severity)
	assert.Equal(t, 1, got.Summary.Errors)
	assert.Equal(t, 1, got.Summary.Warnings)
	assert.Equal(t, "C.java", got.Failures[0].Path)
}

func TestYAML(t *testing.T) {
	t.Parallel()

	var got map[string]any

	require.NoError(t, yaml.Unmarshal([]byte(render(t, YAML)), &got))

	assert.Equal(t, 2, got["files"])
	assert.Len(t, got["findings"], 2)
	assert.Equal(t, map[string]any{"errors": 1, "warnings": 1}, got["summary"])

	findings, ok := got["findings"].([]any)
	require.True(t, ok)

	first, ok := findings[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "warning", first["severity"])
}

func TestUnknownFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := NewRenderer(&buf, Format("xml"), false).Render(sampleReport())
	require.ErrorIs(t, err, ErrUnknownFormat)
}
