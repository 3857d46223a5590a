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

package mongo

import (
	"fmt"
	"time"
)

const (
	// DefaultConnectionTimeout is the default timeout for dialing MongoDB.
	DefaultConnectionTimeout = 5 * time.Second

	// DefaultPingTimeout is the default timeout for pinging MongoDB.
	DefaultPingTimeout = 5 * time.Second

	// DefaultVerseDatabase is the default database name of verse.
	DefaultVerseDatabase = "verse"
)

// Config is the configuration for creating a Client instance.
type Config struct {
	ConnectionTimeout string `yaml:"ConnectionTimeout"`
	ConnectionURI     string `yaml:"ConnectionURI"`
	VerseDatabase     string `yaml:"VerseDatabase"`
	PingTimeout       string `yaml:"PingTimeout"`
}

// Validate returns an error if the provided Config is invalidated.
func (c *Config) Validate() error {
	if c.ConnectionURI == "" {
		return fmt.Errorf(`"--mongo-connection-uri" flag is required`)
	}

	if _, err := time.ParseDuration(c.ConnectionTimeout); err != nil {
		return fmt.Errorf(
			`invalid argument "%s" for "--mongo-connection-timeout" flag: %w`,
			c.ConnectionTimeout,
			err,
		)
	}

	if _, err := time.ParseDuration(c.PingTimeout); err != nil {
		return fmt.Errorf(
			`invalid argument "%s" for "--mongo-ping-timeout" flag: %w`,
			c.PingTimeout,
			err,
		)
	}

	return nil
}

// EnsureDefaultValue fills the empty fields with their defaults.
func (c *Config) EnsureDefaultValue() {
	if c.ConnectionTimeout == "" {
		c.ConnectionTimeout = DefaultConnectionTimeout.String()
	}
	if c.PingTimeout == "" {
		c.PingTimeout = DefaultPingTimeout.String()
	}
	if c.VerseDatabase == "" {
		c.VerseDatabase = DefaultVerseDatabase
	}
}

// ParseConnectionTimeout returns connection timeout duration.
func (c *Config) ParseConnectionTimeout() time.Duration {
	return parseDuration(c.ConnectionTimeout, DefaultConnectionTimeout)
}

// ParsePingTimeout returns ping timeout duration.
func (c *Config) ParsePingTimeout() time.Duration {
	return parseDuration(c.PingTimeout, DefaultPingTimeout)
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	result, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return result
}
