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
	"encoding/json"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/verse-press/verse/api/types"
	"github.com/verse-press/verse/server"
	"github.com/verse-press/verse/server/poems"
)

const dateLayout = "2006-01-02 15:04"

func newListCmd(v *viper.Viper) *cobra.Command {
	var drafts, all bool

	cmd := &cobra.Command{
		Use:   "ls",
		Short: "List poems, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if drafts && all {
				return fmt.Errorf("--drafts and --all can not be used together")
			}

			return withServer(cmd, v, func(ctx context.Context, s *server.Server) error {
				var list []*types.Poem
				var err error
				switch {
				case drafts:
					list, err = poems.ListDrafts(ctx, s.Backend())
				case all:
					list, err = poems.ListAll(ctx, s.Backend())
				default:
					list, err = poems.ListPublished(ctx, s.Backend())
				}
				if err != nil {
					return err
				}

				return printPoems(cmd, v.GetString("output"), list)
			})
		},
	}

	cmd.Flags().BoolVar(&drafts, "drafts", false, "List drafts only")
	cmd.Flags().BoolVar(&all, "all", false, "List published poems and drafts")
	return cmd
}

func printPoems(cmd *cobra.Command, output string, list []*types.Poem) error {
	switch output {
	case "":
		tw := table.NewWriter()
		tw.Style().Options.DrawBorder = false
		tw.Style().Options.SeparateColumns = false
		tw.Style().Options.SeparateFooter = false
		tw.Style().Options.SeparateHeader = false
		tw.Style().Options.SeparateRows = false
		tw.AppendHeader(table.Row{
			"ID",
			"SLUG",
			"TITLE",
			"DRAFT",
			"LINES",
			"CREATED AT",
		})
		for _, poem := range list {
			tw.AppendRow(table.Row{
				poem.ID,
				poem.Slug,
				poem.Title,
				poem.IsDraft,
				len(poem.Lines()),
				poem.CreatedAt.Local().Format(dateLayout),
			})
		}
		cmd.Printf("%s\n", tw.Render())
	case "json":
		jsonOutput, err := json.MarshalIndent(list, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal JSON: %w", err)
		}
		cmd.Println(string(jsonOutput))
	case "yaml":
		yamlOutput, err := yaml.Marshal(list)
		if err != nil {
			return fmt.Errorf("marshal YAML: %w", err)
		}
		cmd.Println(string(yamlOutput))
	default:
		return fmt.Errorf("unknown output format: %s", output)
	}

	return nil
}
