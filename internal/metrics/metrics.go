package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for Horizon
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.GaugeVec

	// Pipeline Metrics
	ReportsSubmittedTotal   prometheus.Counter
	ReportsDecidedTotal     prometheus.CounterVec
	PropagationStepDuration prometheus.HistogramVec
	PropagationStepErrors   prometheus.CounterVec

	// Business Metrics
	CreditMutationsTotal prometheus.CounterVec
	RankPromotionsTotal  prometheus.Counter
	LiveFlightsActive    prometheus.Gauge
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all metrics
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		// HTTP Metrics
		HTTPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "horizon_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "horizon_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "horizon_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		// Pipeline Metrics
		ReportsSubmittedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "horizon_reports_submitted_total",
				Help: "Total flight reports accepted into the review queue",
			},
		),
		ReportsDecidedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "horizon_reports_decided_total",
				Help: "Total review decisions by outcome",
			},
			[]string{"decision"},
		),
		PropagationStepDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "horizon_propagation_step_duration_seconds",
				Help:    "Approval propagation step execution time in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"step"},
		),
		PropagationStepErrors: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "horizon_propagation_step_errors_total",
				Help: "Total propagation step failures by step name",
			},
			[]string{"step"},
		),

		// Business Metrics
		CreditMutationsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "horizon_credit_mutations_total",
				Help: "Total credit ledger mutations by direction",
			},
			[]string{"direction"},
		),
		RankPromotionsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "horizon_rank_promotions_total",
				Help: "Total automatic rank promotions applied",
			},
		),
		LiveFlightsActive: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "horizon_live_flights_active",
				Help: "Current number of flights in the live registry",
			},
		),
	}
}
