// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later
package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "appcatalog_http_requests_total",
	Help: "Total number of handled http requests",
}, []string{"method", "route", "status"})

var HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "appcatalog_http_request_duration_seconds",
	Help:    "Duration of handled http requests in seconds",
	Buckets: prometheus.DefBuckets,
}, []string{"method", "route"})
