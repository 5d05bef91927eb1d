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

package manifest

import (
	"strings"
	"time"

	cnserrors "github.com/NVIDIA/osgi-version/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const outcomeOK = "ok"

var (
	translationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "osgiver_translations_total",
			Help: "Total number of version translations by outcome",
		},
		[]string{"operation", "outcome"},
	)

	buildDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "osgiver_build_duration_seconds",
			Help:    "Duration of result generation in seconds",
			Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1},
		},
		[]string{"operation"},
	)
)

func observe(operation string, start time.Time, err error) {
	buildDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	outcome := outcomeOK
	if err != nil {
		outcome = strings.ToLower(string(cnserrors.CodeOf(err)))
	}
	translationsTotal.WithLabelValues(operation, outcome).Inc()
}
