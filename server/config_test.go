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

package server_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verse-press/verse/server"
	"github.com/verse-press/verse/server/backend"
	"github.com/verse-press/verse/server/backend/database/mongo"
)

func TestNewConfigFromFile(t *testing.T) {
	t.Run("fail read config file test", func(t *testing.T) {
		conf := server.NewConfig()
		_, err := server.NewConfigFromFile("nowhere.yml")
		assert.Error(t, err)

		assert.Nil(t, conf.Mongo)
		assert.Equal(t, backend.DefaultPoemCacheSize, conf.Backend.PoemCacheSize)
		assert.NoError(t, conf.Validate())
	})

	t.Run("read config file test", func(t *testing.T) {
		conf, err := server.NewConfigFromFile("config.sample.yml")
		require.NoError(t, err)

		assert.Equal(t, []string{"editor@verse.press"}, conf.Backend.AdminEmails)
		assert.Equal(t, backend.DefaultPoemCacheSize, conf.Backend.PoemCacheSize)
		assert.Equal(t, backend.DefaultPoemCacheTTL, conf.Backend.ParsePoemCacheTTL())

		require.NotNil(t, conf.Mongo)
		assert.Equal(t, server.DefaultMongoConnectionURI, conf.Mongo.ConnectionURI)
		assert.Equal(t, mongo.DefaultVerseDatabase, conf.Mongo.VerseDatabase)
		assert.Equal(t, 5*time.Second, conf.Mongo.ParseConnectionTimeout())
		assert.Equal(t, mongo.DefaultPingTimeout, conf.Mongo.ParsePingTimeout())
		assert.NoError(t, conf.Validate())
	})

	t.Run("defaults fill a sparse file test", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "verse.yml")
		require.NoError(t, os.WriteFile(path, []byte("Mongo:\n  VerseDatabase: poems\n"), 0o600))

		conf, err := server.NewConfigFromFile(path)
		require.NoError(t, err)

		require.NotNil(t, conf.Backend)
		assert.Empty(t, conf.Backend.AdminEmails)
		assert.Equal(t, backend.DefaultPoemCacheTTL.String(), conf.Backend.PoemCacheTTL)
		assert.Equal(t, server.DefaultMongoConnectionURI, conf.Mongo.ConnectionURI)
		assert.Equal(t, "poems", conf.Mongo.VerseDatabase)
		assert.Equal(t, mongo.DefaultConnectionTimeout.String(), conf.Mongo.ConnectionTimeout)
		assert.NoError(t, conf.Validate())
	})

	t.Run("malformed file test", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "verse.yml")
		require.NoError(t, os.WriteFile(path, []byte("Backend: [\n"), 0o600))

		_, err := server.NewConfigFromFile(path)
		assert.ErrorContains(t, err, "unmarshal config file")
	})
}

func TestConfigValidate(t *testing.T) {
	t.Run("invalid admin email test", func(t *testing.T) {
		conf := server.NewConfig()
		conf.Backend.AdminEmails = []string{"not an email"}
		assert.ErrorIs(t, conf.Validate(), backend.ErrInvalidAdminEmail)
	})

	t.Run("invalid mongo section test", func(t *testing.T) {
		conf := server.NewConfig()
		conf.Mongo = &mongo.Config{ConnectionTimeout: "5s", PingTimeout: "5s"}
		assert.Error(t, conf.Validate())
	})
}
