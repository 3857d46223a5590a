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
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/verse-press/verse/pkg/document/convert"
)

func newConvertCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert between stored plain text and markup",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "to-markup",
			Short: "Convert plain text read from stdin to markup",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				text, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read input: %w", err)
				}

				markup := convert.RenderHTML(convert.LoadFromPlainText(string(text)))
				_, err = fmt.Fprintln(cmd.OutOrStdout(), markup)
				return err
			},
		},
		&cobra.Command{
			Use:   "to-text",
			Short: "Convert markup read from stdin to plain text",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				markup, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read input: %w", err)
				}

				text := convert.SaveToPlainText(convert.LoadMarkup(string(markup)))
				_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
				return err
			},
		},
	)
	return cmd
}
