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

package report

import (
	"context"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"

	"github.com/jvc-nc/pAnalysisProject/internal/astutil"
	"github.com/jvc-nc/pAnalysisProject/internal/diag"
	"github.com/jvc-nc/pAnalysisProject/internal/engine"
	"github.com/jvc-nc/pAnalysisProject/internal/tree"
)

// Method emits the diagnostics of a single method.
//
// This is the final phase of the analyzer pipeline. Diagnostics on lines carrying a
// `//nolint:methodlint` comment are dropped. Errors of the rule engine indicate
// a tree the engine cannot handle and are reported as internal errors.
func Method(ctx context.Context, p *analysis.Pass, currentFile astutil.CurrentFile, method *tree.Node, diagnostics []diag.Diagnostic, err error) {
	defer trace.StartRegion(ctx, "Report").End()

	for _, d := range diagnostics {
		if currentFile.NoLintComment(d.Node.Pos()) {
			continue
		}

		p.Report(Diagnostic(d))
	}

	reportErrors(p, method, err)
}

// Diagnostic converts a rule engine diagnostic into an [analysis.Diagnostic].
func Diagnostic(d diag.Diagnostic) analysis.Diagnostic {
	return analysis.Diagnostic{
		Pos:      d.Node.Pos(),
		End:      d.Node.End(),
		Category: string(d.Check),
		Message:  d.Message,
	}
}

// reportErrors emits an internal error for every malformed call in err.
func reportErrors(p *analysis.Pass, method *tree.Node, err error) {
	if err == nil {
		return
	}

	reported := false

	for me := range engine.MalformedCalls(err) {
		rng := analysis.Range(method)
		if me.Call != nil {
			rng = me.Call
		}

		astutil.InternalError(p, rng, "%v", me)

		reported = true
	}

	if !reported {
		astutil.InternalError(p, method, "%v", err)
	}
}
