package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	globalMetrics *Metrics
	metricsOnce   sync.Once
)

// Metrics holds the Prometheus collectors for the site.
//
// Metrics:
//   - portfolio_http_requests_total{method,route,status}
//   - portfolio_http_request_duration_seconds{method,route}
//   - portfolio_http_rate_limited_total
//   - portfolio_catalog_projects
//   - portfolio_catalog_queries_total{category,search}
//   - portfolio_catalog_query_results
//   - portfolio_asset_resolution_failures_total
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	RateLimitedTotal    prometheus.Counter

	CatalogProjects       prometheus.Gauge
	CatalogQueriesTotal   *prometheus.CounterVec
	CatalogQueryResults   prometheus.Histogram
	AssetResolutionErrors prometheus.Counter
}

// New returns the process-wide metrics, registering them on first use so
// repeated calls never hit duplicate registration.
func New() *Metrics {
	metricsOnce.Do(func() {
		globalMetrics = &Metrics{
			HTTPRequestsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "portfolio_http_requests_total",
					Help: "Total HTTP requests by method, route pattern and status code",
				},
				[]string{"method", "route", "status"},
			),
			HTTPRequestDuration: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "portfolio_http_request_duration_seconds",
					Help:    "HTTP request duration in seconds",
					Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
				},
				[]string{"method", "route"},
			),
			RateLimitedTotal: promauto.NewCounter(prometheus.CounterOpts{
				Name: "portfolio_http_rate_limited_total",
				Help: "Requests rejected by the rate limiter",
			}),
			CatalogProjects: promauto.NewGauge(prometheus.GaugeOpts{
				Name: "portfolio_catalog_projects",
				Help: "Number of projects in the loaded catalog",
			}),
			CatalogQueriesTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "portfolio_catalog_queries_total",
					Help: "Catalog queries by category filter and whether a search term was set",
				},
				[]string{"category", "search"}, // search: "true" or "false"
			),
			CatalogQueryResults: promauto.NewHistogram(prometheus.HistogramOpts{
				Name:    "portfolio_catalog_query_results",
				Help:    "Number of projects returned per catalog query",
				Buckets: []float64{0, 1, 2, 5, 10, 20, 50},
			}),
			AssetResolutionErrors: promauto.NewCounter(prometheus.CounterOpts{
				Name: "portfolio_asset_resolution_failures_total",
				Help: "Cover images that fell back to the placeholder because the asset could not be resolved",
			}),
		}
	})
	return globalMetrics
}
