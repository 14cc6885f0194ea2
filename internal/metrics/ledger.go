// Package metrics exposes application metrics collectors.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ledgerOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "guardianchain",
		Subsystem: "validator_ledger",
		Name:      "operations_total",
		Help:      "Count of ledger operations.",
	}, []string{"operation", "status"})

	ledgerOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "guardianchain",
		Subsystem: "validator_ledger",
		Name:      "operation_duration_seconds",
		Help:      "Duration of ledger operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "status"})
)

// Ledger tracks metrics for validator ledger operations.
type Ledger struct{}

// NewLedger creates a Ledger metrics collector.
func NewLedger() *Ledger {
	return &Ledger{}
}

// Observe records duration and status of a ledger operation.
func (m Ledger) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	ledgerOperationsTotal.WithLabelValues(operation, status).Inc()
	ledgerOperationDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}
