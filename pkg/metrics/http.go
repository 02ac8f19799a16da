package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of HTTP handlers, by route template
	RequestLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Latency of HTTP handlers",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	// Total number of HTTP requests served
	RequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "route", "code"})

	CatalogSize = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "recommender_catalog_movies",
		Help: "Number of movies in the loaded catalog",
	})
)

func Init() {
	prometheus.MustRegister(
		RequestLatency,
		RequestsTotal,
		CatalogSize,
	)
}
