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

package prometheus_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verse-press/verse/server/profiling/prometheus"
)

func TestMetrics(t *testing.T) {
	t.Run("poem operations test", func(t *testing.T) {
		metrics, err := prometheus.NewMetrics()
		require.NoError(t, err)

		metrics.AddPoemOperation("create", nil)
		metrics.AddPoemOperation("create", nil)
		metrics.AddPoemOperation("update", errors.New("boom"))

		expected := `
# HELP verse_poems_operations_total The total count of poem operations by result.
# TYPE verse_poems_operations_total counter
verse_poems_operations_total{operation="create",result="ok"} 2
verse_poems_operations_total{operation="update",result="error"} 1
`
		assert.NoError(t, testutil.GatherAndCompare(
			metrics.Registry(),
			strings.NewReader(expected),
			"verse_poems_operations_total",
		))
	})

	t.Run("cache requests test", func(t *testing.T) {
		metrics, err := prometheus.NewMetrics()
		require.NoError(t, err)

		metrics.AddCacheRequest("poems", true)
		metrics.AddCacheRequest("poems", false)
		metrics.AddCacheRequest("poems", false)

		expected := `
# HELP verse_cache_requests_total The total count of cache lookups by result.
# TYPE verse_cache_requests_total counter
verse_cache_requests_total{cache="poems",result="hit"} 1
verse_cache_requests_total{cache="poems",result="miss"} 2
`
		assert.NoError(t, testutil.GatherAndCompare(
			metrics.Registry(),
			strings.NewReader(expected),
			"verse_cache_requests_total",
		))
	})

	t.Run("counters test", func(t *testing.T) {
		metrics, err := prometheus.NewMetrics()
		require.NoError(t, err)

		metrics.AddImportedPoems(3)
		metrics.AddMarkupFallback()
		metrics.ObserveEditorSaveSeconds(0.2)

		count, err := testutil.GatherAndCount(
			metrics.Registry(),
			"verse_poems_imported_total",
			"verse_convert_markup_fallbacks_total",
			"verse_editor_save_seconds",
			"verse_server_version",
		)
		require.NoError(t, err)
		assert.Equal(t, 4, count)
	})
}
