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

package astutil_test

import (
	"go/ast"
	"go/parser"
	"go/token"
	"slices"
	"testing"

	. "github.com/jvc-nc/pAnalysisProject/internal/astutil"
)

func TestAllParams(t *testing.T) {
	t.Parallel()

	const src = `package test

func f(a, b int, _ string) {}

func u(int, float64) {}

//nolint:methodlint
func g() {}

// g2 is documented.
//
//nolint:gocritic,MethodLint // reason
func g2() {}

// h is documented.
func h() {}
`

	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, "test.go", src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	decls := make(map[string]*ast.FuncDecl)
	for _, d := range f.Decls {
		if fn, ok := d.(*ast.FuncDecl); ok {
			decls[fn.Name.Name] = fn
		}
	}

	var names []string
	for id := range AllParams(decls["f"].Type.Params) {
		names = append(names, id.Name)
	}

	if want := []string{"a", "b", "_"}; !slices.Equal(names, want) {
		t.Errorf("AllParams() = %q, want %q", names, want)
	}

	for name, want := range map[string]bool{"f": false, "u": false, "g": true, "g2": true, "h": false} {
		if got := DocHasNoLint(decls[name].Doc); got != want {
			t.Errorf("DocHasNoLint(%s) = %t, want %t", name, got, want)
		}
	}

	for id := range AllParams(decls["u"].Type.Params) {
		t.Errorf("AllParams(u) yielded %q", id.Name)
	}

	for range AllParams(nil) {
		t.Error("AllParams(nil) yielded a parameter")
	}
}

func TestNoLintComment(t *testing.T) {
	t.Parallel()

	const src = `package test

func f() {
	x := 1 //nolint:methodlint
	y := 2 // nolint:all
	z := 3 //nolint:other
	_, _, _ = x, y, z
}
`

	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, "test.go", src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	cf := NewCurrentFile(fset, f)
	if !cf.Valid() || cf.Generated() {
		t.Fatal("Expected valid non-generated file")
	}

	body := f.Decls[0].(*ast.FuncDecl).Body.List

	for i, want := range []bool{true, true, false, false} {
		pos := body[i].Pos()
		if got := cf.NoLintComment(pos); got != want {
			t.Errorf("NoLintComment(line %d) = %t, want %t", cf.Position(pos).Line, got, want)
		}
	}
}
