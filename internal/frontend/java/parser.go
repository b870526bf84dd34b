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

// Package java builds method trees from Java source using tree-sitter.
package java

import (
	"context"
	"fmt"
	"go/token"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"

	"github.com/jvc-nc/pAnalysisProject/internal/tree"
)

// Parser wraps a tree-sitter parser for Java. It is not safe for concurrent use.
type Parser struct {
	parser *sitter.Parser
}

// File is the result of parsing one Java source file.
type File struct {
	Path string

	// Methods are the methods declared in classes, in source order. Methods
	// declared inside method bodies are nested in their enclosing method's body.
	Methods []*tree.Node

	// HasErrors is set when tree-sitter had to recover from syntax errors.
	HasErrors bool
}

// NewParser creates a new Java parser.
func NewParser() *Parser {
	p := sitter.NewParser()
	p.SetLanguage(java.GetLanguage())

	return &Parser{parser: p}
}

// Close releases the underlying parser.
func (p *Parser) Close() {
	p.parser.Close()
}

// Parse parses src and registers the file with fset for position information.
func (p *Parser) Parse(ctx context.Context, fset *token.FileSet, path string, src []byte) (*File, error) {
	t, err := p.parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("java: parse %s: %w", path, err)
	}
	defer t.Close()

	handle := fset.AddFile(path, -1, len(src))
	handle.SetLinesForContent(src)

	root := t.RootNode()

	c := converter{src: src, file: handle}

	return &File{
		Path:      path,
		Methods:   c.methods(root),
		HasErrors: root.HasError(),
	}, nil
}
