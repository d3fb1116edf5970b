// Larder - Pantry-Aware Recipe Matching and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/larder/internal/config"
	"github.com/tomtom215/larder/internal/logging"
)

// startMetrics exposes the Prometheus registry over HTTP when enabled.
// The returned stop function shuts the listener down; it is a no-op when
// metrics are disabled.
func startMetrics(cfg *config.Config) func() {
	if !cfg.Metrics.Enabled {
		return func() {}
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              cfg.Metrics.ListenAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logging.Info().Str("addr", cfg.Metrics.ListenAddr).Msg("Metrics listener started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Error().Err(err).Msg("Metrics listener failed")
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logging.Warn().Err(err).Msg("Metrics listener shutdown")
		}
	}
}
