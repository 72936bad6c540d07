// Solace - Situation-Aware Wellness Activity Recommendations
// Copyright 2026 Solace Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/solace-labs/solace

// Package metrics provides Prometheus instrumentation for the
// recommendation service: API throughput and latency, recommendation
// pass outcomes, catalog load state and synthesized message sizes.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API endpoint metrics.
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "solace_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "solace_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"method", "endpoint"},
	)

	// Recommendation pass metrics.
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "solace_recommendations_total",
			Help: "Total number of recommendation passes",
		},
		[]string{"category"},
	)

	RecommendationMatches = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "solace_recommendation_matches",
			Help:    "Number of matches returned per recommendation pass",
			Buckets: []float64{0, 1, 2, 3, 5, 10, 20},
		},
		[]string{"category"},
	)

	MessageLength = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "solace_message_length_runes",
			Help:    "Length of synthesized messages in runes",
			Buckets: []float64{100, 200, 300, 400, 420, 500},
		},
	)

	// Catalog metrics.
	CatalogEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "solace_catalog_entries",
			Help: "Number of activities in the active catalog snapshot",
		},
	)

	CatalogRejectedEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "solace_catalog_rejected_entries",
			Help: "Malformed entries rejected during the last catalog load",
		},
	)

	CatalogReloadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "solace_catalog_reloads_total",
			Help: "Total number of catalog reloads",
		},
		[]string{"outcome"}, // "success", "error"
	)
)

// ObserveAPIRequest records one finished HTTP request.
func ObserveAPIRequest(method, endpoint string, status int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(status)).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// ObserveRecommendation records one recommendation pass.
func ObserveRecommendation(category string, matches int, messageRunes int) {
	RecommendationsTotal.WithLabelValues(category).Inc()
	RecommendationMatches.WithLabelValues(category).Observe(float64(matches))
	MessageLength.Observe(float64(messageRunes))
}

// ObserveCatalogLoad records the state of a completed catalog load.
func ObserveCatalogLoad(entries, rejected int) {
	CatalogEntries.Set(float64(entries))
	CatalogRejectedEntries.Set(float64(rejected))
	CatalogReloadsTotal.WithLabelValues("success").Inc()
}

// ObserveCatalogLoadError records a failed catalog load.
func ObserveCatalogLoadError() {
	CatalogReloadsTotal.WithLabelValues("error").Inc()
}
