package service

import "github.com/prometheus/client_golang/prometheus"

var cacheRequests = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "fivcglue_cache_requests_total",
		Help: "Cache operations processed, partitioned by operation and result",
	},
	[]string{"operation", "result"},
)

func init() {
	prometheus.MustRegister(cacheRequests)
}
