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

package configurator

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	buildResultSuccess  = "success"
	buildResultFailure  = "instantiation_failure"
	buildResultNotFound = "not_found"
	buildResultInvalid  = "invalid_specification"

	// unknownTypeLabel keeps unrecognized type strings out of label values.
	unknownTypeLabel = "unknown"
)

var (
	configuratorBuilds = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "multiconf_configurator_builds_total",
			Help: "Total number of configurator builds by type and result",
		},
		[]string{"type", "result"},
	)

	configuratorBuildDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "multiconf_configurator_build_duration_seconds",
			Help:    "Duration of configurator construction in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
		},
		[]string{"type"},
	)
)

func recordBuild(t Type, result string, elapsed time.Duration) {
	label := string(t)
	if label == "" {
		label = unknownTypeLabel
	}

	configuratorBuilds.WithLabelValues(label, result).Inc()
	if result == buildResultSuccess || result == buildResultFailure {
		configuratorBuildDuration.WithLabelValues(label).Observe(elapsed.Seconds())
	}
}
