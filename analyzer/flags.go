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
	"flag"

	"github.com/jvc-nc/pAnalysisProject/internal/config"
	"github.com/jvc-nc/pAnalysisProject/internal/run"
)

func registerFlags(r *run.Options, flags *flag.FlagSet) {
	if flags == nil {
		flags = flag.CommandLine
	}

	flags.Var(newCheckValue(&r.Checks, config.ComplexityCheck), "complexity", "report methods with too many loops or branches")
	flags.Var(newCheckValue(&r.Checks, config.NamingCheck), "naming", "report poorly named methods, parameters and identifiers")
	flags.Var(newBehaviorValue(&r.Behavior, config.IncludeGenerated), "generated", "check generated files")
}

func newCheckValue(flags *config.Checks, value config.CheckFlags) boolValue[config.CheckFlags, *config.Checks] {
	return boolValue[config.CheckFlags, *config.Checks]{flags: flags, value: value}
}

func newBehaviorValue(flags *config.Behavior, value config.BehaviorFlags) boolValue[config.BehaviorFlags, *config.Behavior] {
	return boolValue[config.BehaviorFlags, *config.Behavior]{flags: flags, value: value}
}
