// Copyright (c) 2026 SomaliTag. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package metrics declares the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "somalitag"

var (
	// HTTPRequestDuration observes request latency by route pattern.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request duration",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	// DirectoryQueries counts derived-view computations by view and outcome.
	DirectoryQueries = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "directory_queries_total",
		Help:      "Directory result sets computed, labelled by whether any profile matched",
	}, []string{"view", "outcome"})

	// PreferenceUpdates counts persisted preference changes.
	PreferenceUpdates = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "preference_updates_total",
		Help:      "Preference writes by key and value",
	}, []string{"key", "value"})

	// CatalogEntries reports the size of the loaded catalog.
	CatalogEntries = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "catalog_entries",
		Help:      "Number of entries in the loaded catalog",
	}, []string{"kind"})
)
