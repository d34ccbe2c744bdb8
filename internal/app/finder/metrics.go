package finder

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	findsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tubepick_finds_total",
		Help: "Number of find workflow runs started with a non-empty query.",
	})

	upstreamErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tubepick_upstream_errors_total",
		Help: "Upstream API failures by workflow stage.",
	}, []string{"stage"})
)
