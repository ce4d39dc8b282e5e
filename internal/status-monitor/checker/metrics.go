package checker

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	checksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "status_monitor_checks_total",
		Help: "Number of health checks performed, by service and resulting status.",
	}, []string{"service", "status"})

	checkDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "status_monitor_check_duration_seconds",
		Help:    "Duration of health check probes.",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
	}, []string{"service"})
)
