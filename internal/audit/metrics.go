package audit

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus metrics for audit recording.
type Metrics struct {
	Written       *prometheus.CounterVec
	WriteFailures prometheus.Counter
	Purged        prometheus.Counter
}

// NewMetrics registers the audit metrics on the default registry.
func NewMetrics() *Metrics {
	return &Metrics{
		Written: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "hrms_audit_records_written_total",
			Help: "Total number of audit records persisted, by action",
		}, []string{"action"}),
		WriteFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "hrms_audit_write_failures_total",
			Help: "Total number of audit writes that failed and were dropped",
		}),
		Purged: promauto.NewCounter(prometheus.CounterOpts{
			Name: "hrms_audit_records_purged_total",
			Help: "Total number of audit records removed by retention cleanup",
		}),
	}
}

func (m *Metrics) incWritten(action Action) {
	if m != nil {
		m.Written.WithLabelValues(string(action)).Inc()
	}
}

func (m *Metrics) incWriteFailures() {
	if m != nil {
		m.WriteFailures.Inc()
	}
}

func (m *Metrics) addPurged(n int64) {
	if m != nil {
		m.Purged.Add(float64(n))
	}
}
