// Package metrics holds shared instrumentation helpers.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultBuckets is a common set of latency histogram buckets in seconds.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

//nolint: gochecknoglobals
var (
	// SolveDuration observes how long a full deduction run takes, labeled by
	// the terminal outcome.
	SolveDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "sudoku_solve_duration_seconds",
		Help:    "Duration of deduction loop runs by outcome.",
		Buckets: DefaultBuckets,
	}, []string{"outcome"})

	// SolvePasses observes how many passes the deduction loop ran per board.
	SolvePasses = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "sudoku_solve_passes",
		Help:    "Number of passes per deduction loop run.",
		Buckets: []float64{1, 2, 3, 5, 8, 13, 21, 34, 55, 81},
	})
)
