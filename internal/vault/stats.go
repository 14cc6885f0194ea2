package vault

import (
	"time"

	"github.com/Guardian-Global/guardianchain-app-sub001/internal/model"
)

const recentTransactionCount = 10

// Stats returns a read-only treasury snapshot with the most recent
// transactions (newest first) and distribution-cap consumption.
func (v *Vault) Stats() model.VaultStats {
	started := time.Now()
	defer func() { v.observe("stats", nil, started) }()

	v.mu.Lock()
	defer v.mu.Unlock()

	v.rollCounters(v.clock.Now())

	recent := make([]model.VaultTransaction, 0, recentTransactionCount)
	for i := len(v.txs) - 1; i >= 0 && len(recent) < recentTransactionCount; i-- {
		recent = append(recent, v.txs[i])
	}

	return model.VaultStats{
		State:              v.state,
		Policy:             v.policy,
		RecentTransactions: recent,
		Progress: model.DistributionProgress{
			Daily:   usage(v.state.DistributedToday, v.policy.DailyLimit),
			Weekly:  usage(v.state.DistributedThisWeek, v.policy.WeeklyLimit),
			Monthly: usage(v.state.DistributedThisMonth, v.policy.MonthlyLimit),
		},
	}
}

// RecentRewardTransactions returns the validator's trailing reward payouts,
// newest first. It feeds the earnings projections.
func (v *Vault) RecentRewardTransactions(validator string, limit int) []model.VaultTransaction {
	v.mu.Lock()
	defer v.mu.Unlock()

	if limit <= 0 {
		limit = recentTransactionCount
	}
	matches := make([]model.VaultTransaction, 0, limit)
	for i := len(v.txs) - 1; i >= 0 && len(matches) < limit; i-- {
		tx := v.txs[i]
		if tx.Type == model.TransactionReward && tx.Recipient == validator {
			matches = append(matches, tx)
		}
	}
	return matches
}

// HealthScore grades the treasury 0..100 from balance headroom, daily cap
// pressure and the reserve ratio.
func (v *Vault) HealthScore() int {
	started := time.Now()
	defer func() { v.observe("health_score", nil, started) }()

	v.mu.Lock()
	defer v.mu.Unlock()

	v.rollCounters(v.clock.Now())

	score := 100

	switch {
	case v.state.TotalBalance < v.policy.MinimumBalance:
		score -= 30
	case v.state.TotalBalance < 5*v.policy.MinimumBalance:
		score -= 15
	}

	daily := usage(v.state.DistributedToday, v.policy.DailyLimit)
	switch {
	case daily.Percentage > 90:
		score -= 20
	case daily.Percentage > 70:
		score -= 10
	}

	var reserveRatio float64
	if v.state.TotalBalance > 0 {
		reserveRatio = float64(v.state.ReserveBalance) / float64(v.state.TotalBalance)
	}
	switch {
	case reserveRatio < 0.10:
		score -= 25
	case reserveRatio < 0.20:
		score -= 15
	}

	if score < 0 {
		score = 0
	}
	return score
}

func usage(used, limit uint64) model.LimitUsage {
	u := model.LimitUsage{Used: used, Limit: limit}
	if limit > 0 {
		u.Percentage = float64(used) / float64(limit) * 100
	}
	return u
}
