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

package astutil

import (
	"go/ast"
	"go/token"
	"regexp"
	"slices"
	"strings"
)

// methodlint is the name of the linter.
const methodlint = "methodlint"

// CurrentFile is the Go file whose methods are being checked. It answers the
// per-file questions of the run: whether to skip the file as generated, and
// which diagnostics a //nolint:methodlint comment suppresses.
type CurrentFile struct {
	file      *ast.File
	handle    *token.File
	generated bool
}

// NewCurrentFile looks up file in fset. The result is invalid when the file is
// unknown to fset.
func NewCurrentFile(fset *token.FileSet, file *ast.File) CurrentFile {
	if file == nil {
		return CurrentFile{}
	}

	handle := fset.File(file.FileStart)
	if handle == nil {
		return CurrentFile{}
	}

	generated := ast.IsGenerated(file)

	return CurrentFile{file, handle, generated}
}

// Valid reports whether the file has position information.
func (c CurrentFile) Valid() bool {
	return c.handle != nil
}

// Generated reports whether the file carries a "Code generated ... DO NOT EDIT." marker.
func (c CurrentFile) Generated() bool {
	return c.generated
}

// Position returns the file position of pos.
func (c CurrentFile) Position(pos token.Pos) token.Position {
	return c.handle.PositionFor(pos, false)
}

func (c CurrentFile) line(pos token.Pos) int {
	return c.handle.PositionFor(pos, false).Line
}

// NoLintComment reports whether a diagnostic at pos is suppressed by a
// //nolint:methodlint comment trailing the same line.
func (c CurrentFile) NoLintComment(pos token.Pos) bool {
	if c.file == nil {
		return false
	}

	comments := c.file.Comments

	// first comment group after pos
	i, _ := slices.BinarySearchFunc(comments, pos,
		func(g *ast.CommentGroup, p token.Pos) int { return int(g.Pos() - p) })
	if i == len(comments) {
		return false
	}

	first := comments[i].List[0]

	return c.line(first.Pos()) == c.line(pos) && CommentHasNoLint(first)
}

// DocHasNoLint reports whether a function or file doc comment ends in a
// //nolint:methodlint directive, which exempts the whole function or file.
func DocHasNoLint(doc *ast.CommentGroup) bool {
	if doc == nil || len(doc.List) == 0 {
		return false
	}

	return CommentHasNoLint(doc.List[len(doc.List)-1])
}

var nolintPattern = regexp.MustCompile(`^//\s*nolint:([a-zA-Z0-9,_-]+)`)

// CommentHasNoLint reports whether comment names methodlint, or all linters,
// in its //nolint list. Linter names are case-insensitive.
func CommentHasNoLint(comment *ast.Comment) bool {
	m := nolintPattern.FindStringSubmatch(comment.Text)
	if m == nil {
		return false
	}

	return slices.ContainsFunc(strings.Split(m[1], ","), func(name string) bool {
		name = strings.ToLower(strings.TrimSpace(name))

		return name == methodlint || name == "all"
	})
}
