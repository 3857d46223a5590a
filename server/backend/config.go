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

package backend

import (
	"errors"
	"fmt"
	"net/mail"
	"time"
)

var (
	// ErrInvalidAdminEmail is returned when an admin e-mail address is malformed.
	ErrInvalidAdminEmail = errors.New("invalid admin email")
)

const (
	// DefaultPoemCacheSize is the default cache size of poems looked up by slug.
	DefaultPoemCacheSize = 256

	// DefaultPoemCacheTTL is the default TTL of cached poems.
	DefaultPoemCacheTTL = time.Minute
)

// Config is the configuration for creating a Backend instance.
type Config struct {
	// AdminEmails is the allow-list of e-mail addresses allowed to manage
	// poems.
	AdminEmails []string `yaml:"AdminEmails"`

	// PoemCacheSize is the cache size of poems looked up by slug.
	PoemCacheSize int `yaml:"PoemCacheSize"`

	// PoemCacheTTL is the TTL value to set when caching a poem.
	PoemCacheTTL string `yaml:"PoemCacheTTL"`
}

// Validate validates this config.
func (c *Config) Validate() error {
	for _, email := range c.AdminEmails {
		if _, err := mail.ParseAddress(email); err != nil {
			return fmt.Errorf(`"%s": %w`, email, ErrInvalidAdminEmail)
		}
	}

	if c.PoemCacheSize <= 0 {
		return fmt.Errorf(
			`invalid argument "%d" for "--poem-cache-size" flag: must be positive`,
			c.PoemCacheSize,
		)
	}

	if _, err := time.ParseDuration(c.PoemCacheTTL); err != nil {
		return fmt.Errorf(
			`invalid argument "%s" for "--poem-cache-ttl" flag: %w`,
			c.PoemCacheTTL,
			err,
		)
	}

	return nil
}

// ParsePoemCacheTTL returns TTL for the poem cache.
func (c *Config) ParsePoemCacheTTL() time.Duration {
	result, err := time.ParseDuration(c.PoemCacheTTL)
	if err != nil {
		return DefaultPoemCacheTTL
	}
	return result
}
