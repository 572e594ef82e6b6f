// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Fitchproof Contributors

package check

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics for proof checking.
var (
	// checkDuration tracks the latency of CheckProof calls.
	checkDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "fitchproof_check_duration_seconds",
		Help:    "Histogram of proof check latency in seconds",
		Buckets: prometheus.DefBuckets,
	})

	// proofsChecked counts checked proofs by result.
	proofsChecked = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fitchproof_proofs_checked_total",
		Help: "Total number of proofs checked",
	}, []string{"result"})

	// checkFailures counts individual line failures by code.
	checkFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fitchproof_check_failures_total",
		Help: "Total number of line validation failures",
	}, []string{"code"})
)

// observeCheck records metrics for one completed CheckProof call.
func observeCheck(d time.Duration, errs CheckErrors) {
	checkDuration.Observe(d.Seconds())

	result := "valid"
	if len(errs) > 0 {
		result = "invalid"
	}
	proofsChecked.WithLabelValues(result).Inc()

	for _, v := range errs {
		checkFailures.WithLabelValues(v.Err.String()).Inc()
	}
}
