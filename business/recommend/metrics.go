package recommend

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RecommendResponsesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommender_responses_total",
			Help: "Count of recommendation responses by mode and status.",
		},
		[]string{"mode", "status"},
	)

	PicksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommender_picks_total",
			Help: "Count of ε-greedy picks by strategy.",
		},
		[]string{"strategy"},
	)

	PoolSize = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommender_pool_size",
			Help:    "Size of exploit and explore pools per exploration request.",
			Buckets: []float64{0, 10, 20, 50, 100, 200, 500, 1000},
		},
		[]string{"pool"},
	)
)

func init() {
	prometheus.MustRegister(RecommendResponsesTotal, PicksTotal, PoolSize)
}
