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

package mongo_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/verse-press/verse/server/backend/database/mongo"
)

func TestConfig(t *testing.T) {
	t.Run("validate test", func(t *testing.T) {
		config := &mongo.Config{ConnectionURI: "mongodb://localhost:27017"}
		config.EnsureDefaultValue()
		assert.NoError(t, config.Validate())
		assert.Equal(t, mongo.DefaultVerseDatabase, config.VerseDatabase)

		config.ConnectionTimeout = "5"
		assert.Error(t, config.Validate())

		config.ConnectionTimeout = "5s"
		config.PingTimeout = "5"
		assert.Error(t, config.Validate())

		assert.Error(t, (&mongo.Config{}).Validate())
	})

	t.Run("parse timeout test", func(t *testing.T) {
		config := &mongo.Config{ConnectionTimeout: "3s", PingTimeout: "bad"}
		assert.Equal(t, 3*time.Second, config.ParseConnectionTimeout())
		assert.Equal(t, mongo.DefaultPingTimeout, config.ParsePingTimeout())
	})
}
