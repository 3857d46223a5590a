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
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/verse-press/verse/api/types"
	"github.com/verse-press/verse/server"
	"github.com/verse-press/verse/server/backend/database/mongo"
	"github.com/verse-press/verse/server/logging"
	"github.com/verse-press/verse/server/users"
)

const envPrefix = "VERSE"

// Run executes CLI.
func Run(args []string) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		return 1
	}

	return 0
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:               "verse",
		Short:             "Manage the poems of a verse site",
		SilenceUsage:      true,
		PersistentPreRunE: preload(v),
	}

	flags := cmd.PersistentFlags()
	flags.StringP("config", "c", "", "Config path")
	flags.StringP("log-level", "l", "warn", "Log level: debug, info, warn, error, panic, fatal")
	flags.String("mongo-connection-uri", "", "MongoDB's connection URI; poems are kept in memory without it")
	flags.String("mongo-database", "", "Verse's database name in MongoDB")
	flags.StringSlice("admin-emails", nil, "E-mail addresses allowed to manage poems")
	flags.String("as", "", "E-mail address of the acting user")
	flags.StringP("output", "o", "", "One of 'yaml' or 'json'")

	cmd.AddCommand(
		newImportCmd(v),
		newListCmd(v),
		newShowCmd(v),
		newRemoveCmd(v),
		newConvertCmd(v),
		newVersionCmd(v),
	)
	return cmd
}

// preload binds the flags of the running command to viper so that every
// option can also be given through a VERSE_ environment variable.
func preload(v *viper.Viper) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return fmt.Errorf("bind flags: %w", err)
		}

		if err := logging.SetLogLevel(v.GetString("log-level")); err != nil {
			return err
		}

		return validateOutput(v.GetString("output"))
	}
}

func validateOutput(output string) error {
	if output != "" && output != "yaml" && output != "json" {
		return fmt.Errorf("--output must be 'yaml' or 'json'")
	}
	return nil
}

// newServer creates a server from the config file, overridden by the flags.
func newServer(v *viper.Viper) (*server.Server, error) {
	conf := server.NewConfig()
	if path := v.GetString("config"); path != "" {
		parsed, err := server.NewConfigFromFile(path)
		if err != nil {
			return nil, err
		}
		conf = parsed
	}

	if admins := v.GetStringSlice("admin-emails"); len(admins) > 0 {
		conf.Backend.AdminEmails = admins
	}

	if uri := v.GetString("mongo-connection-uri"); uri != "" {
		if conf.Mongo == nil {
			conf.Mongo = &mongo.Config{}
		}
		conf.Mongo.ConnectionURI = uri
	}
	if conf.Mongo != nil {
		if db := v.GetString("mongo-database"); db != "" {
			conf.Mongo.VerseDatabase = db
		}
		conf.Mongo.EnsureDefaultValue()
	}

	return server.New(conf)
}

// withServer runs fn against a fresh server and shuts it down afterwards.
func withServer(
	cmd *cobra.Command,
	v *viper.Viper,
	fn func(ctx context.Context, s *server.Server) error,
) (err error) {
	s, err := newServer(v)
	if err != nil {
		return err
	}
	defer func() {
		if shutdownErr := s.Shutdown(); shutdownErr != nil && err == nil {
			err = shutdownErr
		}
	}()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.With(ctx, logging.New("cli", logging.NewField("command", cmd.Name())))
	if user := types.NewUser(v.GetString("as")); user != nil {
		ctx = users.With(ctx, user)
	}

	return fn(ctx, s)
}
