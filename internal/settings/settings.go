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

// Package settings loads the configuration of the Java command-line linter.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/jvc-nc/pAnalysisProject/internal/engine"
)

var (
	// ErrUnsupportedFormat is returned for configuration files with an unknown extension.
	ErrUnsupportedFormat = errors.New("unsupported configuration format")

	// ErrUnknownCheck is returned when selecting a check that does not exist.
	ErrUnknownCheck = errors.New("unknown check")
)

// Config is the linter configuration.
type Config struct {
	// Checks selects the analyses to run.
	Checks ChecksConfig `koanf:"checks"`

	// Exclude lists paths skipped during file discovery.
	Exclude ExcludeConfig `koanf:"exclude"`

	// Output controls result rendering.
	Output OutputConfig `koanf:"output"`

	// Workers is the number of files linted in parallel, 0 selects a default.
	Workers int `koanf:"workers"`
}

// ChecksConfig enables individual checks.
type ChecksConfig struct {
	Complexity bool `koanf:"complexity"`
	Naming     bool `koanf:"naming"`
}

// ExcludeConfig lists excluded directories and file name patterns.
type ExcludeConfig struct {
	// Dirs are directory names skipped at any depth.
	Dirs []string `koanf:"dirs"`

	// Patterns are [filepath.Match] patterns matched against file base names.
	Patterns []string `koanf:"patterns"`
}

// OutputConfig controls result rendering.
type OutputConfig struct {
	Format string `koanf:"format"` // text, table, json, yaml
	Color  bool   `koanf:"color"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Checks: ChecksConfig{Complexity: true, Naming: true},
		Output: OutputConfig{Format: "text", Color: true},
	}
}

// Names are the configuration file names searched by [LoadOrDefault], in order.
var Names = []string{
	"methodlint.yaml",
	"methodlint.yml",
	"methodlint.toml",
	"methodlint.json",
	".methodlint.yaml",
	".methodlint.yml",
	".methodlint.toml",
	".methodlint.json",
}

// Load loads configuration from a file, using defaults for unset values.
func Load(path string) (*Config, error) {
	var parser koanf.Parser

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()

	case ".toml":
		parser = toml.Parser()

	case ".json":
		parser = json.Parser()

	default:
		return nil, fmt.Errorf("%s: %w %q", path, ErrUnsupportedFormat, ext)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, fmt.Errorf("can't load configuration %s: %w", path, err)
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("can't decode configuration %s: %w", path, err)
	}

	return cfg, nil
}

// Find returns the first configuration file of [Names] present in dir.
func Find(dir string) (string, bool) {
	for _, name := range Names {
		path := filepath.Join(dir, name)
		if fi, err := os.Stat(path); err == nil && fi.Mode().IsRegular() {
			return path, true
		}
	}

	return "", false
}

// LoadOrDefault loads the first configuration file found in dir, or returns defaults
// when there is none. The returned path is empty for defaults.
func LoadOrDefault(dir string) (*Config, string, error) {
	path, ok := Find(dir)
	if !ok {
		return Default(), "", nil
	}

	cfg, err := Load(path)
	if err != nil {
		return nil, path, err
	}

	return cfg, path, nil
}

// Engine returns the rule engine selection of the enabled checks.
func (c ChecksConfig) Engine() engine.Checks {
	return engine.Checks{Complexity: c.Complexity, Naming: c.Naming}
}

// Select enables exactly the named checks.
func (c *ChecksConfig) Select(names []string) error {
	var selected ChecksConfig

	for _, name := range names {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "complexity":
			selected.Complexity = true

		case "naming":
			selected.Naming = true

		case "all":
			selected = ChecksConfig{Complexity: true, Naming: true}

		default:
			return fmt.Errorf("%w %q", ErrUnknownCheck, name)
		}
	}

	*c = selected

	return nil
}

// ShouldExclude checks if a path should be excluded from linting.
func (c ExcludeConfig) ShouldExclude(path string, isDir bool) bool {
	base := filepath.Base(path)

	if isDir {
		return slices.Contains(c.Dirs, base)
	}

	for _, pattern := range c.Patterns {
		if matched, _ := filepath.Match(pattern, base); matched {
			return true
		}
	}

	return false
}
