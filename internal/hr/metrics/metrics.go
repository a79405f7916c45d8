package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for governed operations.
const (
	OutcomeSuccess  = "success"
	OutcomeDenied   = "denied"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

// Metrics holds Prometheus metrics for governed HR operations.
type Metrics struct {
	Operations  *prometheus.CounterVec
	Rejections  *prometheus.CounterVec
	Duration    *prometheus.HistogramVec
	EventErrors *prometheus.CounterVec
}

// New creates and registers the HR metrics on the default registry.
func New() *Metrics {
	return &Metrics{
		Operations: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "hrms_operations_total",
			Help: "Total number of governed operations, by entity, action and outcome",
		}, []string{"entity", "action", "outcome"}),
		Rejections: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "hrms_rejections_total",
			Help: "Total number of business-rule rejections, by entity and reason",
		}, []string{"entity", "reason"}),
		Duration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "hrms_operation_duration_seconds",
			Help:    "Duration of governed operations through the pipeline",
			Buckets: prometheus.DefBuckets,
		}, []string{"entity", "action"}),
		EventErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "hrms_event_publish_failures_total",
			Help: "Total number of cascade events that could not be published",
		}, []string{"type"}),
	}
}

// ObserveOperation records the outcome and duration of one operation.
func (m *Metrics) ObserveOperation(entity, action, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.Operations.WithLabelValues(entity, action, outcome).Inc()
	m.Duration.WithLabelValues(entity, action).Observe(elapsed.Seconds())
}

func (m *Metrics) IncRejection(entity, reason string) {
	if m == nil {
		return
	}
	m.Rejections.WithLabelValues(entity, reason).Inc()
}

func (m *Metrics) IncEventFailure(eventType string) {
	if m == nil {
		return
	}
	m.EventErrors.WithLabelValues(eventType).Inc()
}
