package gce

import "github.com/prometheus/client_golang/prometheus"

var (
	// Operation polling metrics
	operationWaitTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gcenode",
			Subsystem: "operations",
			Name:      "wait_total",
			Help:      "Total number of awaited operations by result",
		},
		[]string{"result"},
	)

	operationWaitDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "gcenode",
			Subsystem: "operations",
			Name:      "wait_duration_seconds",
			Help:      "Duration of operation waits in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.1, 2, 12), // 100ms to ~7m
		},
	)
)

func init() {
	prometheus.MustRegister(operationWaitTotal, operationWaitDuration)
}
