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

// Package prometheus provides a Prometheus metrics exporter.
package prometheus

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/verse-press/verse/internal/version"
)

const (
	namespace      = "verse"
	operationLabel = "operation"
	resultLabel    = "result"
	cacheLabel     = "cache"
)

// Below are the values of the result label.
const (
	ResultOK    = "ok"
	ResultError = "error"
	ResultHit   = "hit"
	ResultMiss  = "miss"
)

// Metrics manages the metric information that verse is trying to measure.
type Metrics struct {
	registry *prometheus.Registry

	serverVersion *prometheus.GaugeVec

	poemOperationsTotal  *prometheus.CounterVec
	editorSaveSeconds    prometheus.Histogram
	cacheRequestsTotal   *prometheus.CounterVec
	importedPoemsTotal   prometheus.Counter
	markupFallbacksTotal prometheus.Counter
}

// NewMetrics creates a new instance of Metrics.
func NewMetrics() (*Metrics, error) {
	reg := prometheus.NewRegistry()

	if err := reg.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
		return nil, fmt.Errorf("register process collector: %w", err)
	}
	if err := reg.Register(collectors.NewGoCollector()); err != nil {
		return nil, fmt.Errorf("register go collector: %w", err)
	}

	metrics := &Metrics{
		registry: reg,
		serverVersion: promauto.With(reg).NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "server",
			Name:      "version",
			Help:      "Which version is running. 1 for 'server_version' label with current version.",
		}, []string{"server_version"}),
		poemOperationsTotal: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "poems",
			Name:      "operations_total",
			Help:      "The total count of poem operations by result.",
		}, []string{operationLabel, resultLabel}),
		editorSaveSeconds: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "editor",
			Name:      "save_seconds",
			Help:      "The time taken to save an editor session.",
		}),
		cacheRequestsTotal: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "requests_total",
			Help:      "The total count of cache lookups by result.",
		}, []string{cacheLabel, resultLabel}),
		importedPoemsTotal: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "poems",
			Name:      "imported_total",
			Help:      "The total count of imported poems.",
		}),
		markupFallbacksTotal: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "convert",
			Name:      "markup_fallbacks_total",
			Help:      "The total count of markup that was stripped instead of parsed.",
		}),
	}

	metrics.serverVersion.With(prometheus.Labels{
		"server_version": version.Version,
	}).Set(1)

	return metrics, nil
}

// AddPoemOperation counts a poem operation with its result.
func (m *Metrics) AddPoemOperation(operation string, err error) {
	result := ResultOK
	if err != nil {
		result = ResultError
	}
	m.poemOperationsTotal.With(prometheus.Labels{
		operationLabel: operation,
		resultLabel:    result,
	}).Inc()
}

// ObserveEditorSaveSeconds adds an observation for saving an editor session.
func (m *Metrics) ObserveEditorSaveSeconds(seconds float64) {
	m.editorSaveSeconds.Observe(seconds)
}

// AddCacheRequest counts a cache lookup.
func (m *Metrics) AddCacheRequest(name string, hit bool) {
	result := ResultMiss
	if hit {
		result = ResultHit
	}
	m.cacheRequestsTotal.With(prometheus.Labels{
		cacheLabel:  name,
		resultLabel: result,
	}).Inc()
}

// AddImportedPoems counts imported poems.
func (m *Metrics) AddImportedPoems(count int) {
	m.importedPoemsTotal.Add(float64(count))
}

// AddMarkupFallback counts markup that could not be parsed.
func (m *Metrics) AddMarkupFallback() {
	m.markupFallbacksTotal.Inc()
}

// Registry returns the registry of this metrics.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
