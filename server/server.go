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

// Package server provides the verse server which owns the backend shared by
// the poem business logic: the database, the poem cache and the metrics.
package server

import (
	gosync "sync"

	"github.com/verse-press/verse/server/backend"
	"github.com/verse-press/verse/server/logging"
	"github.com/verse-press/verse/server/profiling/prometheus"
)

// Server is a server of verse.
type Server struct {
	lock gosync.Mutex

	conf     *Config
	backend  *backend.Backend
	shutdown bool
}

// New creates a new instance of Server.
func New(conf *Config) (*Server, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}

	metrics, err := prometheus.NewMetrics()
	if err != nil {
		return nil, err
	}

	be, err := backend.New(conf.Backend, conf.Mongo, metrics)
	if err != nil {
		return nil, err
	}

	return &Server{
		conf:    conf,
		backend: be,
	}, nil
}

// Backend returns the backend of this server.
func (s *Server) Backend() *backend.Backend {
	return s.backend
}

// Config returns the configuration this server was created with.
func (s *Server) Config() *Config {
	return s.conf
}

// Shutdown shuts down this server. Calling it again is a no-op.
func (s *Server) Shutdown() error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if s.shutdown {
		return nil
	}

	if err := s.backend.Shutdown(); err != nil {
		return err
	}

	logging.DefaultLogger().Info("server shutdown")
	s.shutdown = true
	return nil
}
