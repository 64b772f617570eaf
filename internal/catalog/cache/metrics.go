package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "product_cache_hits_total",
		Help: "Total number of product cache hits",
	})

	cacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "product_cache_misses_total",
		Help: "Total number of product cache misses",
	})

	cacheErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "product_cache_errors_total",
			Help: "Total number of product cache errors by operation",
		},
		[]string{"operation"},
	)
)
