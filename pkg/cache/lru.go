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

// Package cache provides LRU caches that keep hit statistics.
package cache

import (
	"errors"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

var (
	// ErrInvalidMaxSize is returned when the given max size is not positive.
	ErrInvalidMaxSize = errors.New("max size must be > 0")
)

type store[K comparable, V any] interface {
	Get(key K) (V, bool)
	Add(key K, value V) bool
	Remove(key K) bool
	Purge()
	Len() int
}

// LRU is a named least recently used cache with statistics. Entries
// expire after the ttl when it is positive.
type LRU[K comparable, V any] struct {
	name  string
	store store[K, V]
	stats Stats
}

// NewLRU creates a new LRU of the given size.
func NewLRU[K comparable, V any](name string, size int, ttl time.Duration) (*LRU[K, V], error) {
	if size <= 0 {
		return nil, ErrInvalidMaxSize
	}

	var s store[K, V]
	if ttl > 0 {
		s = expirable.NewLRU[K, V](size, nil, ttl)
	} else {
		c, err := lru.New[K, V](size)
		if err != nil {
			return nil, err
		}
		s = c
	}

	return &LRU[K, V]{
		name:  name,
		store: s,
	}, nil
}

// Name returns the name of the cache.
func (c *LRU[K, V]) Name() string {
	return c.name
}

// Get returns the value of the key and records a hit or a miss.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	value, ok := c.store.Get(key)
	c.stats.record(ok)
	return value, ok
}

// Add adds the value at the key. It returns true when an entry was evicted.
func (c *LRU[K, V]) Add(key K, value V) bool {
	return c.store.Add(key, value)
}

// Remove removes the key from the cache.
func (c *LRU[K, V]) Remove(key K) bool {
	return c.store.Remove(key)
}

// Purge clears all entries from the cache.
func (c *LRU[K, V]) Purge() {
	c.store.Purge()
}

// Len returns the number of entries in the cache.
func (c *LRU[K, V]) Len() int {
	return c.store.Len()
}

// Stats returns the statistics of the cache.
func (c *LRU[K, V]) Stats() *Stats {
	return &c.stats
}
