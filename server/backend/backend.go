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

// Package backend provides the backend shared by the business logic of the
// verse server: the database, the poem cache and the metrics.
package backend

import (
	"fmt"

	"github.com/verse-press/verse/pkg/cache"
	"github.com/verse-press/verse/server/backend/database"
	"github.com/verse-press/verse/server/backend/database/memory"
	"github.com/verse-press/verse/server/backend/database/mongo"
	"github.com/verse-press/verse/server/logging"
	"github.com/verse-press/verse/server/profiling/prometheus"
)

// Backend manages the resources used by the business logic.
type Backend struct {
	Config *Config

	// DB is the database instance.
	DB database.Database

	// PoemCache caches poems looked up by slug.
	PoemCache *cache.LRU[string, *database.PoemInfo]

	// Metrics is used to expose metrics.
	Metrics *prometheus.Metrics
}

// New creates a new instance of Backend. Without mongoConf an in-memory
// database is used.
func New(
	conf *Config,
	mongoConf *mongo.Config,
	metrics *prometheus.Metrics,
) (*Backend, error) {
	var db database.Database
	var err error
	if mongoConf != nil {
		db, err = mongo.Dial(mongoConf)
	} else {
		db, err = memory.New()
	}
	if err != nil {
		return nil, err
	}

	poemCache, err := cache.NewLRU[string, *database.PoemInfo](
		"poems",
		conf.PoemCacheSize,
		conf.ParsePoemCacheTTL(),
	)
	if err != nil {
		return nil, fmt.Errorf("initialize poem cache: %w", err)
	}

	dbInfo := "memory"
	if mongoConf != nil {
		dbInfo = mongoConf.ConnectionURI
	}
	logging.DefaultLogger().Infof("backend created: DB: %s, admins: %d", dbInfo, len(conf.AdminEmails))

	return &Backend{
		Config:    conf,
		DB:        db,
		PoemCache: poemCache,
		Metrics:   metrics,
	}, nil
}

// Shutdown closes all resources of this instance.
func (b *Backend) Shutdown() error {
	b.PoemCache.Purge()

	if err := b.DB.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}

	return nil
}
