// SPDX-License-Identifier: MIT
// Package: treetrip/trip

package trip

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// solveTotal counts solves by outcome ("ok" or "error").
	solveTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "treetrip_solve_total",
		Help: "Total trip solves by result",
	}, []string{"result"})

	solveDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "treetrip_solve_duration_seconds",
		Help:    "Trip solve duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.00001, 4, 12), // 10µs to ~40s
	})

	branchesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "treetrip_branches_total",
		Help: "Total proposals explored by the trip search",
	})

	pathQueriesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "treetrip_path_queries_total",
		Help: "Total road resolutions performed by the trip search",
	})

	prunesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "treetrip_prunes_total",
		Help: "Total proposals pruned for exceeding K, by reason",
	}, []string{"reason"}) // "closure" or "path"
)

// recordSolve flushes one solve's counters. Called once per solve so the
// search loop itself never touches shared atomics.
func recordSolve(st Stats, took time.Duration, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	solveTotal.WithLabelValues(result).Inc()
	solveDuration.Observe(took.Seconds())
	branchesTotal.Add(float64(st.Branches))
	pathQueriesTotal.Add(float64(st.PathQueries))
	prunesTotal.WithLabelValues("closure").Add(float64(st.ClosurePrunes))
	prunesTotal.WithLabelValues("path").Add(float64(st.PathPrunes))
}
