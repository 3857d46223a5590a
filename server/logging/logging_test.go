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

package logging_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"

	"github.com/verse-press/verse/server/logging"
)

func TestLogging(t *testing.T) {
	t.Run("set log level test", func(t *testing.T) {
		defer func() { assert.NoError(t, logging.SetLogLevel("info")) }()

		assert.NoError(t, logging.SetLogLevel("DEBUG"))
		assert.True(t, logging.Enabled(zapcore.DebugLevel))

		assert.NoError(t, logging.SetLogLevel("error"))
		assert.False(t, logging.Enabled(zapcore.WarnLevel))

		assert.Error(t, logging.SetLogLevel("verbose"))
	})

	t.Run("named logger with fields test", func(t *testing.T) {
		var buf bytes.Buffer
		logging.SetOutput(&buf)
		defer logging.SetOutput(&bytes.Buffer{})

		logger := logging.New("poems", logging.NewField("slug", "fog"))
		logger.Info("saved")
		assert.NoError(t, logger.Sync())

		assert.Contains(t, buf.String(), "poems")
		assert.Contains(t, buf.String(), "saved")
		assert.Contains(t, buf.String(), `"slug": "fog"`)
	})

	t.Run("context logger test", func(t *testing.T) {
		assert.Equal(t, logging.DefaultLogger(), logging.From(context.Background()))

		logger := logging.New("request")
		ctx := logging.With(context.Background(), logger)
		assert.Equal(t, logger, logging.From(ctx))
	})
}
