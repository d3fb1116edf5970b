// Larder - Pantry-Aware Recipe Matching and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

// Package metrics provides Prometheus instrumentation for the matching
// engine and the persistence layer.
//
// Exposed metrics:
//
//   - larder_evaluations_total{status}: recipe evaluations by readiness
//     status (ready, ready_with_substitution, missing)
//   - larder_rank_duration_seconds: catalog ranking latency histogram
//   - larder_catalog_recipes: recipe count of the active snapshot
//   - larder_store_operations_total{operation,status}: persistence
//     operations by outcome
//
// Metrics register on the default Prometheus registry via promauto; the
// binary exposes them with promhttp when a listen address is configured.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	evaluationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "larder_evaluations_total",
			Help: "Recipe evaluations by readiness status.",
		},
		[]string{"status"},
	)

	rankDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "larder_rank_duration_seconds",
			Help:    "Catalog ranking latency in seconds.",
			Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1},
		},
	)

	catalogRecipes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "larder_catalog_recipes",
			Help: "Recipe count of the active catalog snapshot.",
		},
	)

	storeOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "larder_store_operations_total",
			Help: "Persistence operations by outcome.",
		},
		[]string{"operation", "status"},
	)
)

// RecordEvaluation counts one recipe evaluation by status.
func RecordEvaluation(status string) {
	evaluationsTotal.WithLabelValues(status).Inc()
}

// ObserveRankDuration records one catalog ranking latency.
func ObserveRankDuration(seconds float64) {
	rankDuration.Observe(seconds)
}

// SetCatalogRecipes records the active snapshot's recipe count.
func SetCatalogRecipes(count int) {
	catalogRecipes.Set(float64(count))
}

// RecordStoreOperation counts one persistence operation.
// status is "ok" or "error".
func RecordStoreOperation(operation string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	storeOperations.WithLabelValues(operation, status).Inc()
}
