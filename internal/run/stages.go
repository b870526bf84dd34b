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

package run

import (
	"context"
	"go/types"
	"runtime/trace"

	"golang.org/x/tools/go/ast/inspector"

	"github.com/jvc-nc/pAnalysisProject/internal/diag"
	"github.com/jvc-nc/pAnalysisProject/internal/engine"
	"github.com/jvc-nc/pAnalysisProject/internal/frontend/gosrc"
	"github.com/jvc-nc/pAnalysisProject/internal/tree"
)

// buildMethod builds the method tree of a function declaration.
func buildMethod(ctx context.Context, info *types.Info, c inspector.Cursor) *tree.Node {
	defer trace.StartRegion(ctx, "Build").End()

	return gosrc.Build(info, c)
}

// analyzeMethod runs the enabled checks on a method tree.
func analyzeMethod(ctx context.Context, method *tree.Node, checks engine.Checks) ([]diag.Diagnostic, error) {
	defer trace.StartRegion(ctx, "Analyze").End()

	return engine.Method(method, checks)
}
