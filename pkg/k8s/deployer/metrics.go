package deployer

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	deployTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fxdeploy_deploy_total",
			Help: "Total number of endpoint deploy attempts",
		},
		[]string{"status"}, // success, error, or invalid
	)

	deployDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "fxdeploy_deploy_duration_seconds",
			Help:    "Time taken to render and apply an endpoint deployment",
			Buckets: []float64{0.1, 0.5, 1, 5, 10, 30, 60},
		},
	)
)
