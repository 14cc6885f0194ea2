// Package transport exposes the engine over HTTP JSON handlers.
package transport

import (
	"context"

	"github.com/Guardian-Global/guardianchain-app-sub001/internal/model"
	"github.com/Guardian-Global/guardianchain-app-sub001/internal/orchestrator"
	"github.com/Guardian-Global/guardianchain-app-sub001/internal/vault"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Ledger is the validator statistics and reward calculation surface.
	Ledger interface {
		RecordEvent(ctx context.Context, event model.ValidatorEvent) (model.ValidatorEvent, error)
		Stats(validator string) model.ValidatorStats
		TopValidators(limit int) []model.ValidatorStats
		Summary() model.ValidatorSummary
		Projections(validator string, daysAhead int) model.Projections
		CalculateRewards(events []model.ValidatorEvent, rewardRate float64) []model.RewardCalculation
	}

	// EventSource reads back recorded events for calculations and settling.
	EventSource interface {
		Query(filter model.EventFilter) []model.ValidatorEvent
	}

	// Treasury is the vault surface: deposits, payouts, policy, snapshots.
	Treasury interface {
		DepositFromRedemption(ctx context.Context, amount uint64, capsuleID, validatorAddress string) (model.VaultTransaction, error)
		DistributeValidatorRewards(ctx context.Context, validatorAddress string, amount uint64, capsuleID string) vault.DistributionResult
		ProcessWeeklyDistribution(ctx context.Context) vault.WeeklyResult
		Stats() model.VaultStats
		HealthScore() int
		UpdatePolicy(update model.PolicyUpdate) (model.DistributionPolicy, error)
	}

	// Settler turns earned rewards into paid rewards.
	Settler interface {
		SettleValidatorReward(ctx context.Context, validator string, events []model.ValidatorEvent, rewardRate float64) orchestrator.SettleResult
		SettlePending(ctx context.Context, validator string) orchestrator.SettleResult
		SettleAll(ctx context.Context, events []model.ValidatorEvent, rewardRate float64, workers int) ([]orchestrator.SettleResult, error)
	}
)
