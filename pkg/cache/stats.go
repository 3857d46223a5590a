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

package cache

import "sync/atomic"

// Stats holds the hit statistics of a cache.
type Stats struct {
	hits   atomic.Int64
	misses atomic.Int64
}

func (s *Stats) record(hit bool) {
	if hit {
		s.hits.Add(1)
	} else {
		s.misses.Add(1)
	}
}

// Hits returns the number of lookups that found an entry.
func (s *Stats) Hits() int64 {
	return s.hits.Load()
}

// Misses returns the number of lookups that found nothing.
func (s *Stats) Misses() int64 {
	return s.misses.Load()
}

// HitRate returns the ratio of hits to lookups, or 0 without lookups.
func (s *Stats) HitRate() float64 {
	hits, misses := s.Hits(), s.Misses()
	if hits+misses == 0 {
		return 0
	}
	return float64(hits) / float64(hits+misses)
}
