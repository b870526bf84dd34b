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

package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jvc-nc/pAnalysisProject/internal/diag"
	"github.com/jvc-nc/pAnalysisProject/internal/javalint"
	"github.com/jvc-nc/pAnalysisProject/internal/output"
	"github.com/jvc-nc/pAnalysisProject/internal/settings"
)

// errProblemsFound signals a lint run that should exit with a failure status.
var errProblemsFound = errors.New("problems found")

type checkOptions struct {
	config  string
	format  string
	workers int
	checks  []string
	strict  bool
}

func newCheckCommand(global *globalOptions) *cobra.Command {
	var opts checkOptions

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Lint Java files and directories",
		Long: `Lint Java files and directories.

Directories are searched recursively for .java files. Without arguments the
current directory is checked. The configuration is read from --config or the
first methodlint.{yaml,yml,toml,json} or .methodlint.* file in the current directory.

The exit status is 1 when an error-level problem is found, or any problem with --strict.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, global, &opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "configuration file")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "output format (text|table|json|yaml)")
	cmd.Flags().IntVarP(&opts.workers, "workers", "w", 0, "number of files linted in parallel (default 2x CPUs)")
	cmd.Flags().StringSliceVar(&opts.checks, "checks", nil, "checks to run (complexity,naming)")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "fail on warnings")

	return cmd
}

func runCheck(cmd *cobra.Command, global *globalOptions, opts *checkOptions, args []string) error {
	logger := global.logger(cmd)

	cfg, err := loadConfig(logger, opts.config)
	if err != nil {
		return err
	}

	if err := opts.apply(cmd, cfg); err != nil {
		return err
	}

	format, err := output.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		args = []string{"."}
	}

	files, err := javalint.Discover(args, cfg.Exclude)
	if err != nil {
		return err
	}

	linter := javalint.Linter{
		Checks:  cfg.Checks.Engine(),
		Workers: cfg.Workers,
		Logger:  logger,
	}

	report, err := linter.Lint(cmd.Context(), files)
	if err != nil {
		return err
	}

	colored := cfg.Output.Color && !global.noColor
	if err := output.NewRenderer(cmd.OutOrStdout(), format, colored).Render(report); err != nil {
		return err
	}

	if failed(report, opts.strict) {
		return errProblemsFound
	}

	return nil
}

func loadConfig(logger *slog.Logger, path string) (*settings.Config, error) {
	if path != "" {
		return settings.Load(path)
	}

	cfg, path, err := settings.LoadOrDefault(".")
	if err != nil {
		return nil, err
	}

	if path != "" {
		logger.Debug("Using configuration", slog.String("path", path))
	}

	return cfg, nil
}

// apply overrides configuration values with explicitly set flags.
func (o *checkOptions) apply(cmd *cobra.Command, cfg *settings.Config) error {
	flags := cmd.Flags()

	if flags.Changed("format") {
		cfg.Output.Format = o.format
	}

	if flags.Changed("workers") {
		cfg.Workers = o.workers
	}

	if flags.Changed("checks") {
		if err := cfg.Checks.Select(o.checks); err != nil {
			return fmt.Errorf("--checks: %w", err)
		}
	}

	return nil
}

func failed(report *javalint.Report, strict bool) bool {
	if strict {
		return len(report.Findings) > 0
	}

	return report.Count(diag.Error) > 0
}
