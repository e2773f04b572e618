// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Request metrics are labeled by the registered route pattern, never the raw
// URL path, so unknown paths cannot grow the series count.
var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "multiconf_http_requests_total",
			Help: "HTTP requests served, by route, method and status code.",
		},
		[]string{"route", "method", "code"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "multiconf_http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: []float64{.001, .005, .01, .05, .1, .5, 1, 5, 10},
		},
		[]string{"route"},
	)

	requestsInFlight = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "multiconf_http_requests_in_flight",
			Help: "HTTP requests being served, by route.",
		},
		[]string{"route"},
	)

	requestsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "multiconf_http_requests_rejected_total",
			Help: "HTTP requests answered by middleware instead of the route handler.",
		},
		[]string{"route", "reason"},
	)

	readinessFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "multiconf_readiness_failures_total",
			Help: "Failed readiness checks, by error code.",
		},
		[]string{"code"},
	)
)

// Rejection reasons.
const (
	rejectRateLimit = "rate_limit"
	rejectPanic     = "panic"
)

// instrument wraps next with the request metrics for route.
func instrument(route string, next http.Handler) http.Handler {
	labels := prometheus.Labels{"route": route}
	return promhttp.InstrumentHandlerInFlight(requestsInFlight.With(labels),
		promhttp.InstrumentHandlerDuration(requestDuration.MustCurryWith(labels),
			promhttp.InstrumentHandlerCounter(requestsTotal.MustCurryWith(labels), next),
		),
	)
}
