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

package server

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/verse-press/verse/server/backend"
	"github.com/verse-press/verse/server/backend/database/mongo"
)

// Below are the values of the default values of verse config.
const (
	DefaultMongoConnectionURI = "mongodb://localhost:27017"
)

// Config is the configuration for creating a Server instance.
type Config struct {
	Backend *backend.Config `yaml:"Backend"`
	Mongo   *mongo.Config   `yaml:"Mongo"`
}

// NewConfig returns a Config struct that contains reasonable defaults
// for most of the configurations. The database is kept in memory.
func NewConfig() *Config {
	return &Config{
		Backend: &backend.Config{
			PoemCacheSize: backend.DefaultPoemCacheSize,
			PoemCacheTTL:  backend.DefaultPoemCacheTTL.String(),
		},
	}
}

// NewConfigFromFile returns a Config struct for the given conf file.
func NewConfigFromFile(path string) (*Config, error) {
	conf := &Config{}
	bytes, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	if err = yaml.Unmarshal(bytes, conf); err != nil {
		return nil, fmt.Errorf("unmarshal config file: %w", err)
	}

	conf.ensureDefaultValue()
	return conf, nil
}

// Validate returns an error if the provided Config is invalidated.
func (c *Config) Validate() error {
	if err := c.Backend.Validate(); err != nil {
		return err
	}

	if c.Mongo != nil {
		if err := c.Mongo.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// ensureDefaultValue sets the value of the option to which the default value
// should be applied when the user does not input it.
func (c *Config) ensureDefaultValue() {
	if c.Backend == nil {
		c.Backend = &backend.Config{}
	}
	if c.Backend.PoemCacheSize == 0 {
		c.Backend.PoemCacheSize = backend.DefaultPoemCacheSize
	}
	if c.Backend.PoemCacheTTL == "" {
		c.Backend.PoemCacheTTL = backend.DefaultPoemCacheTTL.String()
	}

	if c.Mongo != nil {
		if c.Mongo.ConnectionURI == "" {
			c.Mongo.ConnectionURI = DefaultMongoConnectionURI
		}
		c.Mongo.EnsureDefaultValue()
	}
}
