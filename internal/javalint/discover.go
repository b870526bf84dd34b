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
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/jvc-nc/pAnalysisProject/internal/settings"
)

// Extension is the file extension of Java source files.
const Extension = ".java"

// Discover returns the Java files below paths, sorted and without duplicates.
//
// Files named explicitly are always included. Directories are walked recursively,
// skipping hidden and excluded directories and files matching an exclude pattern.
func Discover(paths []string, exclude settings.ExcludeConfig) ([]string, error) {
	var files []string

	for _, root := range paths {
		fi, err := os.Stat(root)
		if err != nil {
			return nil, err
		}

		if !fi.IsDir() {
			files = append(files, filepath.Clean(root))

			continue
		}

		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				if path != root && (hidden(d.Name()) || exclude.ShouldExclude(path, true)) {
					return filepath.SkipDir
				}

				return nil
			}

			if filepath.Ext(path) != Extension || exclude.ShouldExclude(path, false) {
				return nil
			}

			files = append(files, path)

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	slices.Sort(files)

	return slices.Compact(files), nil
}

func hidden(name string) bool {
	return len(name) > 1 && strings.HasPrefix(name, ".") && name != ".."
}
