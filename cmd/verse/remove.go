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

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/verse-press/verse/api/types"
	"github.com/verse-press/verse/server"
	"github.com/verse-press/verse/server/poems"
)

func newRemoveCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "rm [id]",
		Short: "Delete a poem",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := types.ID(args[0])
			if err := id.Validate(); err != nil {
				return err
			}

			return withServer(cmd, v, func(ctx context.Context, s *server.Server) error {
				if err := poems.Delete(ctx, s.Backend(), id); err != nil {
					return err
				}

				cmd.Printf("deleted %s\n", id)
				return nil
			})
		},
	}
}
