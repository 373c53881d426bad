package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	orgUnitMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "campuskit",
		Subsystem: "orgunit",
		Name:      "mutations_total",
		Help:      "Number of org unit mutating operations by action.",
	}, []string{"action"})

	orgUnitCascadeSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "campuskit",
		Subsystem: "orgunit",
		Name:      "cascade_units",
		Help:      "Number of units touched by a cascading archive or restore.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
	})
)
