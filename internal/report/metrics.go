//nolint:gochecknoglobals
package report

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	checksMetric = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "geoconform",
		Name:      "checks_total",
		Help:      "The total number of reference checks executed",
	}, []string{"kind", "status"})

	runDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "geoconform",
		Name:      "run_duration_seconds",
		Help:      "The duration of full conformance runs.",
		Buckets:   prometheus.DefBuckets,
	})
)
