package ledger

import (
	"time"

	"github.com/Guardian-Global/guardianchain-app-sub001/internal/model"
)

const projectionSampleSize = 30

// Projections estimates future earnings from the validator's trailing reward
// transactions with a naive linear extrapolation (no compounding). daysAhead
// bounds how far back sampled transactions may reach; it defaults to 30.
func (s *Service) Projections(validator string, daysAhead int) model.Projections {
	started := time.Now()
	defer func() { s.observe("projections", nil, started) }()

	if s.txlog == nil {
		return model.Projections{}
	}
	if daysAhead <= 0 {
		daysAhead = 30
	}

	now := s.clock.Now()
	cutoff := now.Add(-time.Duration(daysAhead) * 24 * time.Hour)

	var (
		total          uint64
		oldest, newest time.Time
		sampled        int
	)
	for _, tx := range s.txlog.RecentRewardTransactions(validator, projectionSampleSize) {
		if tx.Timestamp.Before(cutoff) {
			continue
		}
		total += tx.Amount
		if sampled == 0 || tx.Timestamp.Before(oldest) {
			oldest = tx.Timestamp
		}
		if sampled == 0 || tx.Timestamp.After(newest) {
			newest = tx.Timestamp
		}
		sampled++
	}
	if sampled == 0 {
		return model.Projections{}
	}

	spanDays := int64(newest.Sub(oldest).Hours()/24) + 1
	daily := float64(total) / float64(spanDays)

	return model.Projections{
		DailyAverage:     daily,
		ProjectedWeekly:  daily * 7,
		ProjectedMonthly: daily * 30,
		EstimatedAPY:     daily * 365,
	}
}
