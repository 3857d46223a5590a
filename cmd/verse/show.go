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

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/verse-press/verse/api/types"
	"github.com/verse-press/verse/pkg/document/convert"
	"github.com/verse-press/verse/server"
	"github.com/verse-press/verse/server/poems"
)

func newShowCmd(v *viper.Viper) *cobra.Command {
	var markup bool

	cmd := &cobra.Command{
		Use:   "show [slug]",
		Short: "Print a poem",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServer(cmd, v, func(ctx context.Context, s *server.Server) error {
				poem, err := poems.GetBySlug(ctx, s.Backend(), args[0])
				if err != nil {
					return err
				}

				return printPoem(cmd, v.GetString("output"), poem, markup)
			})
		},
	}

	cmd.Flags().BoolVar(&markup, "markup", false, "Print the content as markup")
	return cmd
}

func printPoem(cmd *cobra.Command, output string, poem *types.Poem, markup bool) error {
	if markup {
		copied := *poem
		copied.Content = convert.RenderHTML(convert.LoadFromPlainText(poem.Content))
		poem = &copied
	}

	switch output {
	case "":
		if poem.HasTitle {
			cmd.Printf("%s\n\n", poem.Title)
		}
		cmd.Println(poem.Content)
	case "json":
		jsonOutput, err := json.MarshalIndent(poem, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal JSON: %w", err)
		}
		cmd.Println(string(jsonOutput))
	case "yaml":
		yamlOutput, err := yaml.Marshal(poem)
		if err != nil {
			return fmt.Errorf("marshal YAML: %w", err)
		}
		cmd.Println(string(yamlOutput))
	default:
		return fmt.Errorf("unknown output format: %s", output)
	}

	return nil
}
