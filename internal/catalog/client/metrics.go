package client

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var upstreamRequests = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "catalog_upstream_requests_total",
		Help: "Total number of product lookups against the external catalog",
	},
	[]string{"outcome"},
)
