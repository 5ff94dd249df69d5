package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"

	"github.com/rpgo/coastfire-calculator/internal/domain"
)

const metricsNamespace = "coastfire"

// Metrics owns a private registry so tests and multiple servers never collide.
type Metrics struct {
	registry     *prometheus.Registry
	requests     *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	projections  prometheus.Counter
	invalidCells prometheus.Counter
	undefined    prometheus.Counter
}

// NewMetrics registers the server collectors on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"route", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"route"}),
		projections: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "projections_total",
			Help:      "Projection reports built.",
		}),
		invalidCells: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "grid_invalid_cells_total",
			Help:      "Grid cells whose required assets were undefined.",
		}),
		undefined: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "projections_without_coast_age_total",
			Help:      "Projection reports with no coast age in range.",
		}),
	}
	m.registry.MustRegister(m.requests, m.duration, m.projections, m.invalidCells, m.undefined)
	m.registry.MustRegister(prometheus.NewGoCollector())
	return m
}

// ObserveReport records one built report.
func (m *Metrics) ObserveReport(r *domain.Report) {
	m.projections.Inc()
	if r.CoastAge == nil {
		m.undefined.Inc()
	}
	if r.Grid == nil {
		return
	}
	invalid := 0
	for _, row := range r.Grid.Rows {
		for _, c := range row.Cells {
			if !c.Valid {
				invalid++
			}
		}
	}
	m.invalidCells.Add(float64(invalid))
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() fasthttp.RequestHandler {
	return fasthttpadaptor.NewFastHTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}
