package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ProductsCreated counts products inserted through the creation endpoint.
	ProductsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "products_created_total",
		Help: "The total number of products created via the API",
	})

	// ProductsSeeded counts demo products inserted by the seed endpoint.
	ProductsSeeded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "products_seeded_total",
		Help: "The total number of demo products inserted by seeding",
	})
)
