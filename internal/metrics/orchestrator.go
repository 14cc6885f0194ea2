package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	orchestratorOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "guardianchain",
		Subsystem: "disbursement",
		Name:      "operations_total",
		Help:      "Count of disbursement operations.",
	}, []string{"operation", "status"})

	orchestratorOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "guardianchain",
		Subsystem: "disbursement",
		Name:      "operation_duration_seconds",
		Help:      "Duration of disbursement operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "status"})
)

// Orchestrator tracks metrics for reward settlement operations.
type Orchestrator struct{}

// NewOrchestrator creates an Orchestrator metrics collector.
func NewOrchestrator() *Orchestrator {
	return &Orchestrator{}
}

// Observe records duration and status of a settlement operation.
func (m Orchestrator) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	orchestratorOperationsTotal.WithLabelValues(operation, status).Inc()
	orchestratorOperationDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}
