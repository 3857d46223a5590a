/*
 * Copyright 2026 The Verse Authors. All rights reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/verse-press/verse/api/types"
	"github.com/verse-press/verse/server"
	"github.com/verse-press/verse/server/poems"
)

func newImportCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "import [dir]",
		Short: "Import the poems exported as JSON files in a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exports, err := readExports(args[0])
			if err != nil {
				return err
			}

			return withServer(cmd, v, func(ctx context.Context, s *server.Server) error {
				imported, err := poems.Import(ctx, s.Backend(), exports)
				if err != nil {
					return err
				}

				if v.GetString("output") != "" {
					return printPoems(cmd, v.GetString("output"), imported)
				}
				cmd.Printf("imported %d poems\n", len(imported))
				return nil
			})
		},
	}
}

// readExports decodes every .json file of dir in name order.
func readExports(dir string) ([]*types.Poem, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("list exports: %w", err)
	}
	sort.Strings(paths)

	var exports []*types.Poem
	for _, path := range paths {
		data, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			return nil, fmt.Errorf("read export: %w", err)
		}

		decoded, err := poems.DecodeExport(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
		}
		exports = append(exports, decoded...)
	}

	return exports, nil
}
