// Package metrics exposes Prometheus instrumentation for dataset loads and
// analysis queries.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Surfaces a query can arrive through.
const (
	SurfaceConsole = "console"
	SurfaceHTTP    = "http"
)

var (
	queriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "movieratings",
		Name:      "queries_total",
		Help:      "Analysis queries answered, by query and surface.",
	}, []string{"query", "surface"})

	datasetMovies = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "movieratings",
		Name:      "dataset_movies",
		Help:      "Number of movie records in the loaded dataset.",
	})

	loadErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "movieratings",
		Name:      "load_errors_total",
		Help:      "Dataset load failures, by error code.",
	}, []string{"code"})
)

// ObserveQuery counts one answered query.
func ObserveQuery(surface, query string) {
	queriesTotal.WithLabelValues(query, surface).Inc()
}

// SetDatasetSize records the number of loaded records.
func SetDatasetSize(n int) {
	datasetMovies.Set(float64(n))
}

// ObserveLoadError counts a failed load under its user-facing error code.
func ObserveLoadError(code string) {
	loadErrorsTotal.WithLabelValues(code).Inc()
}

// Handler serves the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
