package vault

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Guardian-Global/guardianchain-app-sub001/internal/model"
)

// UpdatePolicy merges a governance update onto the active policy. The merged
// result must still be valid: share percentages that do not sum to 100 reject
// the whole update and keep the current policy.
func (v *Vault) UpdatePolicy(update model.PolicyUpdate) (model.DistributionPolicy, error) {
	started := time.Now()
	var err error
	defer func() { v.observe("update_policy", err, started) }()

	v.mu.Lock()
	defer v.mu.Unlock()

	merged := update.Apply(v.policy)
	if err = merged.Validate(); err != nil {
		return v.policy, fmt.Errorf("policy update: %w", err)
	}

	v.policy = merged
	v.logger.Info("distribution policy updated",
		zap.Uint64("daily_limit", merged.DailyLimit),
		zap.Uint64("weekly_limit", merged.WeeklyLimit),
		zap.Uint64("minimum_balance", merged.MinimumBalance))
	return merged, nil
}
