package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/Guardian-Global/guardianchain-app-sub001/internal/model"
)

var (
	vaultOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "guardianchain",
		Subsystem: "treasury_vault",
		Name:      "operations_total",
		Help:      "Count of treasury vault operations.",
	}, []string{"operation", "status"})

	vaultOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "guardianchain",
		Subsystem: "treasury_vault",
		Name:      "operation_duration_seconds",
		Help:      "Duration of treasury vault operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "status"})

	vaultTotalBalance = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "guardianchain",
		Subsystem: "treasury_vault",
		Name:      "total_balance_gtt",
		Help:      "Current treasury balance in whole GTT.",
	})

	vaultReserveBalance = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "guardianchain",
		Subsystem: "treasury_vault",
		Name:      "reserve_balance_gtt",
		Help:      "Earmarked reserve balance in whole GTT.",
	})

	vaultPendingRewards = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "guardianchain",
		Subsystem: "treasury_vault",
		Name:      "pending_rewards_gtt",
		Help:      "Earned-but-unpaid rewards in whole GTT.",
	})

	vaultHealthScore = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "guardianchain",
		Subsystem: "treasury_vault",
		Name:      "health_score",
		Help:      "Treasury health score, 0 to 100.",
	})
)

// Vault tracks metrics for treasury vault operations and state.
type Vault struct{}

// NewVault creates a Vault metrics collector.
func NewVault() *Vault {
	return &Vault{}
}

// Observe records duration and status of a vault operation.
func (m Vault) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	vaultOperationsTotal.WithLabelValues(operation, status).Inc()
	vaultOperationDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}

// SetState publishes the balance gauges from a vault snapshot.
func (m Vault) SetState(state model.VaultState) {
	vaultTotalBalance.Set(float64(state.TotalBalance))
	vaultReserveBalance.Set(float64(state.ReserveBalance))
	vaultPendingRewards.Set(float64(state.PendingRewards))
}

// SetHealthScore publishes the treasury health gauge.
func (m Vault) SetHealthScore(score int) {
	vaultHealthScore.Set(float64(score))
}
