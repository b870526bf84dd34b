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

// Package output renders lint reports.
package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"gopkg.in/yaml.v3"

	"github.com/jvc-nc/pAnalysisProject/internal/diag"
	"github.com/jvc-nc/pAnalysisProject/internal/javalint"
)

// ErrUnknownFormat is returned for unsupported output formats.
var ErrUnknownFormat = errors.New("unknown output format")

// Format is an output format.
type Format string

// Supported output formats.
const (
	Text  Format = "text"
	Table Format = "table"
	JSON  Format = "json"
	YAML  Format = "yaml"
)

// ParseFormat converts a format name into a [Format].
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case Text, Table, JSON, YAML:
		return f, nil

	case "yml":
		return YAML, nil

	default:
		return "", fmt.Errorf("%w %q", ErrUnknownFormat, s)
	}
}

// Renderer writes reports in a fixed format.
type Renderer struct {
	w       io.Writer
	format  Format
	colored bool
}

// NewRenderer creates a [Renderer]. Colors are only used by the text format.
func NewRenderer(w io.Writer, format Format, colored bool) *Renderer {
	return &Renderer{w: w, format: format, colored: colored}
}

// Render writes report.
func (r *Renderer) Render(report *javalint.Report) error {
	switch r.format {
	case Text:
		return r.text(report)

	case Table:
		return r.table(report)

	case JSON:
		return r.json(report)

	case YAML:
		return r.yaml(report)

	default:
		return fmt.Errorf("%w %q", ErrUnknownFormat, r.format)
	}
}

// data is the serialized form of a report.
type data struct {
	javalint.Report `yaml:",inline"`

	Summary summary `json:"summary" yaml:"summary"`
}

type summary struct {
	Errors   int `json:"errors"   yaml:"errors"`
	Warnings int `json:"warnings" yaml:"warnings"`
}

func serializable(report *javalint.Report) data {
	return data{
		Report: *report,
		Summary: summary{
			Errors:   report.Count(diag.Error),
			Warnings: report.Count(diag.Warning),
		},
	}
}

func (r *Renderer) json(report *javalint.Report) error {
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")

	return enc.Encode(serializable(report))
}

func (r *Renderer) yaml(report *javalint.Report) error {
	enc := yaml.NewEncoder(r.w)
	enc.SetIndent(2)

	if err := enc.Encode(serializable(report)); err != nil {
		return err
	}

	return enc.Close()
}

func (r *Renderer) text(report *javalint.Report) error {
	for _, f := range report.Findings {
		location := fmt.Sprintf("%s:%d:%d:", f.Path, f.Line, f.Column)

		if _, err := fmt.Fprintf(r.w, "%s %s %s [%s]\n",
			r.paint(location, color.Bold),
			r.paint(f.Severity.String()+":", severityColor(f.Severity)...),
			f.Message, f.Check); err != nil {
			return err
		}
	}

	for _, f := range report.Failures {
		location := f.Path + ":"
		if f.Line > 0 {
			location = fmt.Sprintf("%s:%d:", f.Path, f.Line)
		}

		if _, err := fmt.Fprintf(r.w, "%s %s %s\n",
			r.paint(location, color.Bold),
			r.paint("failure:", color.FgMagenta),
			f.Message); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(r.w, summaryLine(report))

	return err
}

func (r *Renderer) table(report *javalint.Report) error {
	table := tablewriter.NewTable(r.w,
		tablewriter.WithConfig(tablewriter.Config{
			Header: tw.CellConfig{
				Alignment: tw.CellAlignment{Global: tw.AlignLeft},
				Formatting: tw.CellFormatting{
					AutoFormat: tw.On,
				},
			},
			Row: tw.CellConfig{
				Alignment: tw.CellAlignment{Global: tw.AlignLeft},
			},
		}),
	)

	table.Header("File", "Line", "Severity", "Check", "Message")

	for _, f := range report.Findings {
		row := []string{f.Path, strconv.Itoa(f.Line), f.Severity.String(), string(f.Check), f.Message}
		if err := table.Append(row); err != nil {
			return err
		}
	}

	for _, f := range report.Failures {
		row := []string{f.Path, strconv.Itoa(f.Line), "failure", "", f.Message}
		if err := table.Append(row); err != nil {
			return err
		}
	}

	if err := table.Render(); err != nil {
		return err
	}

	_, err := fmt.Fprintln(r.w, summaryLine(report))

	return err
}

func (r *Renderer) paint(s string, attrs ...color.Attribute) string {
	if !r.colored {
		return s
	}

	return color.New(attrs...).Sprint(s)
}

func severityColor(s diag.Severity) []color.Attribute {
	if s == diag.Error {
		return []color.Attribute{color.FgRed, color.Bold}
	}

	return []color.Attribute{color.FgYellow}
}

func summaryLine(report *javalint.Report) string {
	return fmt.Sprintf("%d problems (%d errors, %d warnings) in %d files",
		len(report.Findings), report.Count(diag.Error), report.Count(diag.Warning), report.Files)
}
