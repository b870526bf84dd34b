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

package javalint

import (
	"context"
	"go/token"
	"log/slog"
	"os"
	"runtime"
	"runtime/trace"

	"github.com/sourcegraph/conc/pool"

	"github.com/jvc-nc/pAnalysisProject/internal/diag"
	"github.com/jvc-nc/pAnalysisProject/internal/engine"
	"github.com/jvc-nc/pAnalysisProject/internal/frontend/java"
)

// DefaultWorkerMultiplier is the multiplier applied to NumCPU for the default worker count.
const DefaultWorkerMultiplier = 2

// Linter lints Java files.
type Linter struct {
	// Checks selects the analyses to run.
	Checks engine.Checks

	// Workers is the number of files linted in parallel. Values <= 0 select 2x NumCPU.
	Workers int

	// Logger receives progress and problem reports. Defaults to [slog.Default].
	Logger *slog.Logger
}

type fileResult struct {
	findings []Finding
	failures []Failure
}

// Lint lints files in parallel and returns the sorted results.
//
// Problems with single files are recorded as failures in the report; an error is
// only returned when ctx is canceled.
func (l *Linter) Lint(ctx context.Context, files []string) (*Report, error) {
	ctx, task := trace.NewTask(ctx, "JavaLint")
	defer task.End()

	logger := l.logger()

	workers := l.Workers
	if workers <= 0 {
		workers = runtime.NumCPU() * DefaultWorkerMultiplier
	}

	logger.Debug("Linting files", slog.Int("files", len(files)), slog.Int("workers", workers))

	// token.FileSet is safe for concurrent use
	fset := token.NewFileSet()

	p := pool.NewWithResults[fileResult]().WithContext(ctx).WithMaxGoroutines(workers)
	for _, path := range files {
		p.Go(func(ctx context.Context) (fileResult, error) {
			psr := java.NewParser()
			defer psr.Close()

			return l.lintFile(ctx, psr, fset, path)
		})
	}

	results, err := p.Wait()
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report := &Report{Files: len(files), Findings: []Finding{}}
	for _, res := range results {
		report.add(res)
	}

	report.Sort()

	return report, nil
}

func (l *Linter) lintFile(ctx context.Context, psr *java.Parser, fset *token.FileSet, path string) (fileResult, error) {
	defer trace.StartRegion(ctx, "LintFile").End()

	logger := l.logger()

	src, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("Can't read file", slog.String("path", path), slog.Any("error", err))

		return fileResult{failures: []Failure{{Path: path, Message: err.Error()}}}, nil
	}

	f, err := psr.Parse(ctx, fset, path, src)
	if err != nil {
		if ctx.Err() != nil {
			return fileResult{}, ctx.Err()
		}

		logger.Warn("Can't parse file", slog.String("path", path), slog.Any("error", err))

		return fileResult{failures: []Failure{{Path: path, Message: err.Error()}}}, nil
	}

	if f.HasErrors {
		logger.Warn("File has syntax errors, results may be incomplete", slog.String("path", path))
	}

	diagnostics, err := engine.All(f.Methods, l.Checks)

	var res fileResult

	for _, d := range diagnostics {
		res.findings = append(res.findings, finding(fset, path, d))
	}

	for me := range engine.MalformedCalls(err) {
		failure := Failure{Path: path, Message: me.Error()}
		if me.Call != nil {
			failure.Line = fset.Position(me.Call.Pos()).Line
		}

		res.failures = append(res.failures, failure)
	}

	logger.Debug("Linted file", slog.String("path", path), slog.Int("methods", len(f.Methods)), slog.Int("findings", len(res.findings)))

	return res, nil
}

func finding(fset *token.FileSet, path string, d diag.Diagnostic) Finding {
	pos := fset.Position(d.Node.Pos())

	return Finding{
		Path:     path,
		Line:     pos.Line,
		Column:   pos.Column,
		Check:    d.Check,
		Severity: d.Severity,
		Message:  d.Message,
	}
}

func (l *Linter) logger() *slog.Logger {
	if l.Logger != nil {
		return l.Logger
	}

	return slog.Default()
}
