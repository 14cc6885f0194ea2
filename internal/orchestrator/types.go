// Package orchestrator coordinates reward calculations against treasury
// capacity. It is the only component allowed to turn a reward calculation
// into an actual vault debit.
package orchestrator

import (
	"context"
	"time"

	"github.com/Guardian-Global/guardianchain-app-sub001/internal/model"
	"github.com/Guardian-Global/guardianchain-app-sub001/internal/vault"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Ledger computes reward calculations and records settled earnings.
	Ledger interface {
		CalculateRewards(events []model.ValidatorEvent, rewardRate float64) []model.RewardCalculation
		AddRewardsEarned(validator string, amount uint64)
	}

	// Treasury is the payout side of the vault.
	Treasury interface {
		DistributeValidatorRewards(ctx context.Context, validatorAddress string, amount uint64, capsuleID string) vault.DistributionResult
		AddPendingRewards(amount uint64)
		ReleasePendingRewards(amount uint64)
	}

	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)
