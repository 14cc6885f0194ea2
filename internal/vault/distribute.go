package vault

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Guardian-Global/guardianchain-app-sub001/internal/model"
)

// Capacity rejection reasons. These are business outcomes, not faults:
// callers retry later or escalate to governance.
const (
	ReasonInsufficientVaultBalance = "insufficient vault balance"
	ReasonDailyLimitExceeded       = "daily limit exceeded"
	ReasonNotYetTime               = "not yet time"
	ReasonInsufficientBalance      = "insufficient balance"
)

// DistributionResult reports the outcome of a single validator payout.
type DistributionResult struct {
	Success     bool
	Transaction *model.VaultTransaction
	Reason      string
}

// WeeklyShares breaks down one weekly community distribution by destination.
type WeeklyShares struct {
	ValidatorPool uint64
	CommunityPool uint64
	Reserve       uint64
	Burned        uint64
}

// WeeklyResult reports the outcome of a scheduled weekly distribution.
type WeeklyResult struct {
	Success          bool
	Distributions    *WeeklyShares
	TotalDistributed uint64
	Reason           string
}

// DistributeValidatorRewards pays a single validator from the treasury. The
// capacity check and the debit happen under one critical section: concurrent
// calls can never both pass the check against a stale balance.
func (v *Vault) DistributeValidatorRewards(ctx context.Context, validatorAddress string, amount uint64, capsuleID string) DistributionResult {
	started := time.Now()
	defer func() { v.observe("distribute_rewards", nil, started) }()

	if amount == 0 {
		return DistributionResult{Reason: ErrInvalidAmount.Error()}
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	now := v.clock.Now()
	v.rollCounters(now)

	if v.state.TotalBalance < v.policy.MinimumBalance {
		v.logger.Warn("payout rejected",
			zap.String("validator", validatorAddress),
			zap.Uint64("amount", amount),
			zap.String("reason", ReasonInsufficientVaultBalance))
		return DistributionResult{Reason: ReasonInsufficientVaultBalance}
	}
	if v.state.DistributedToday+amount > v.policy.DailyLimit {
		v.logger.Warn("payout rejected",
			zap.String("validator", validatorAddress),
			zap.Uint64("amount", amount),
			zap.Uint64("distributed_today", v.state.DistributedToday),
			zap.String("reason", ReasonDailyLimitExceeded))
		return DistributionResult{Reason: ReasonDailyLimitExceeded}
	}
	if amount > v.state.TotalBalance {
		return DistributionResult{Reason: ReasonInsufficientVaultBalance}
	}

	v.state.TotalBalance -= amount
	v.state.DistributedToday += amount
	v.state.DistributedThisWeek += amount
	v.state.DistributedThisMonth += amount
	v.state.TotalDistributed += amount
	v.state.LastDistribution = now

	tx := v.append(ctx, model.VaultTransaction{
		Type:      model.TransactionReward,
		Amount:    amount,
		Recipient: validatorAddress,
		Source:    "treasury",
		Timestamp: now,
		Metadata: model.TransactionMetadata{
			CapsuleID:        capsuleID,
			ValidatorAddress: validatorAddress,
			Category:         "validator_rewards",
		},
	})

	v.logger.Info("validator payout",
		zap.String("validator", validatorAddress),
		zap.Uint64("amount", amount),
		zap.Uint64("total_balance", v.state.TotalBalance))
	return DistributionResult{Success: true, Transaction: &tx}
}

// ProcessWeeklyDistribution runs the scheduled community distribution: 5% of
// the treasury capped at the weekly limit, split by the policy percentages.
// Shares are floored; flooring remainders stay in the treasury untracked.
func (v *Vault) ProcessWeeklyDistribution(ctx context.Context) WeeklyResult {
	started := time.Now()
	defer func() { v.observe("weekly_distribution", nil, started) }()

	v.mu.Lock()
	defer v.mu.Unlock()

	now := v.clock.Now()
	v.rollCounters(now)

	if now.Before(v.state.NextDistribution) {
		return WeeklyResult{Reason: ReasonNotYetTime}
	}
	if v.state.TotalBalance < 2*v.policy.MinimumBalance {
		v.logger.Warn("weekly distribution rejected",
			zap.Uint64("total_balance", v.state.TotalBalance),
			zap.Uint64("minimum_balance", v.policy.MinimumBalance))
		return WeeklyResult{Reason: ReasonInsufficientBalance}
	}

	amount := v.state.TotalBalance / 20
	if amount > v.policy.WeeklyLimit {
		amount = v.policy.WeeklyLimit
	}

	shares := WeeklyShares{
		ValidatorPool: amount * v.policy.ValidatorSharePercent / 100,
		CommunityPool: amount * v.policy.CommunitySharePercent / 100,
		Reserve:       amount * v.policy.DAOReservePercent / 100,
		Burned:        amount * v.policy.BurnPercent / 100,
	}
	outflow := shares.ValidatorPool + shares.CommunityPool + shares.Burned

	// The reserve share is earmarked, not spent: it moves to the reserve
	// balance but stays inside the treasury total.
	v.state.TotalBalance -= outflow
	v.state.ReserveBalance += shares.Reserve
	v.state.TotalDistributed += outflow
	v.state.DistributedThisWeek = 0
	v.state.LastDistribution = now
	v.state.NextDistribution = now.Add(distributionInterval)

	if shares.ValidatorPool > 0 {
		v.append(ctx, model.VaultTransaction{
			Type:      model.TransactionReward,
			Amount:    shares.ValidatorPool,
			Recipient: "validator_pool",
			Source:    "treasury",
			Timestamp: now,
			Metadata:  model.TransactionMetadata{Category: "weekly_validator_share"},
		})
	}
	if shares.CommunityPool > 0 {
		v.append(ctx, model.VaultTransaction{
			Type:      model.TransactionWithdrawal,
			Amount:    shares.CommunityPool,
			Recipient: "community_pool",
			Source:    "treasury",
			Timestamp: now,
			Metadata:  model.TransactionMetadata{Category: "weekly_community_share"},
		})
	}
	if shares.Reserve > 0 {
		v.append(ctx, model.VaultTransaction{
			Type:      model.TransactionDeposit,
			Amount:    shares.Reserve,
			Recipient: "dao_reserve",
			Source:    "treasury",
			Timestamp: now,
			Metadata:  model.TransactionMetadata{Category: "weekly_reserve_share"},
		})
	}
	if shares.Burned > 0 {
		v.append(ctx, model.VaultTransaction{
			Type:      model.TransactionBurn,
			Amount:    shares.Burned,
			Source:    "treasury",
			Timestamp: now,
			Metadata:  model.TransactionMetadata{Category: "weekly_burn"},
		})
	}

	v.logger.Info("weekly distribution processed",
		zap.Uint64("validator_pool", shares.ValidatorPool),
		zap.Uint64("community_pool", shares.CommunityPool),
		zap.Uint64("reserve", shares.Reserve),
		zap.Uint64("burned", shares.Burned),
		zap.Uint64("total_balance", v.state.TotalBalance))

	return WeeklyResult{
		Success:          true,
		Distributions:    &shares,
		TotalDistributed: outflow,
	}
}
