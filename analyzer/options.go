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

package analyzer

import (
	"log/slog"

	"github.com/jvc-nc/pAnalysisProject/internal/config"
	"github.com/jvc-nc/pAnalysisProject/internal/run"
)

// Option configures specific behavior of the methodlint [analysis.Analyzer].
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that also implements the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr returns a [slog.Attr] for logging.
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithComplexity is an [Option] to enable or disable the loop and branch density check.
func WithComplexity(complexity bool) Option { return complexityOption{complexity: complexity} }

type complexityOption struct{ complexity bool }

func (o complexityOption) apply(r *run.Options) {
	r.Checks.Set(config.ComplexityCheck, o.complexity)
}

func (o complexityOption) LogAttr() slog.Attr {
	return slog.Bool("complexity", o.complexity)
}

// WithNaming is an [Option] to enable or disable the identifier naming check.
func WithNaming(naming bool) Option { return namingOption{naming: naming} }

type namingOption struct{ naming bool }

func (o namingOption) apply(r *run.Options) {
	r.Checks.Set(config.NamingCheck, o.naming)
}

func (o namingOption) LogAttr() slog.Attr {
	return slog.Bool("naming", o.naming)
}

// WithGenerated is an [Option] to configure diagnostics reporting for generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *run.Options) {
	r.Behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}
