// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later
package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var ImportRowsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "appcatalog_import_rows_total",
	Help: "Number of csv rows processed by the importer, by outcome (imported, skipped, rejected, duplicate)",
}, []string{"outcome"})

var ImportDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "appcatalog_import_duration_minutes",
	Help:    "Duration of csv imports in minutes",
	Buckets: prometheus.DefBuckets,
})
