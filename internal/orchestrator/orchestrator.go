package orchestrator

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Guardian-Global/guardianchain-app-sub001/internal/eventstore"
	"github.com/Guardian-Global/guardianchain-app-sub001/internal/model"
	"github.com/Guardian-Global/guardianchain-app-sub001/pkg/workerpool"
)

const defaultSettleWorkers = 4

// SettleResult reports one settlement attempt. An earned-but-unpaid amount is
// never dropped: it accrues as a pending reward and can be retried later.
type SettleResult struct {
	Validator   string
	Success     bool
	PaidAmount  uint64
	Calculated  uint64
	Transaction *model.VaultTransaction
	Reason      string
}

// Orchestrator decouples "reward earned" (a ledger fact) from "reward paid"
// (a treasury fact). Earned amounts the vault cannot cover yet are tracked
// per validator and settled on a later attempt.
type Orchestrator struct {
	ledger   Ledger
	treasury Treasury
	logger   *zap.Logger
	metrics  Metrics

	mu      sync.Mutex
	pending map[string]uint64
}

func New(ledger Ledger, treasury Treasury, logger *zap.Logger, metrics Metrics) *Orchestrator {
	return &Orchestrator{
		ledger:   ledger,
		treasury: treasury,
		logger:   logger,
		metrics:  metrics,
		pending:  make(map[string]uint64),
	}
}

// SettleValidatorReward computes the reward for the validator's events and
// attempts to pay it from the treasury. A capacity rejection records the
// calculated amount as pending instead of paying it.
func (o *Orchestrator) SettleValidatorReward(ctx context.Context, validator string, events []model.ValidatorEvent, rewardRate float64) SettleResult {
	started := time.Now()
	defer func() { o.observe("settle_reward", nil, started) }()

	own := make([]model.ValidatorEvent, 0, len(events))
	for _, event := range events {
		if event.Validator == validator {
			own = append(own, event)
		}
	}

	calculations := o.ledger.CalculateRewards(own, rewardRate)
	if len(calculations) == 0 || calculations[0].TotalReward == 0 {
		return SettleResult{Validator: validator, Success: true}
	}
	amount := calculations[0].TotalReward

	capsuleID := ""
	for _, event := range own {
		if event.CapsuleID != "" {
			capsuleID = event.CapsuleID
			break
		}
	}

	res := o.treasury.DistributeValidatorRewards(ctx, validator, amount, capsuleID)
	if !res.Success {
		o.deferReward(validator, amount)
		o.logger.Warn("settlement deferred",
			zap.String("validator", validator),
			zap.Uint64("amount", amount),
			zap.String("reason", res.Reason))
		return SettleResult{
			Validator:  validator,
			Calculated: amount,
			Reason:     res.Reason,
		}
	}

	o.ledger.AddRewardsEarned(validator, amount)
	o.logger.Info("reward settled",
		zap.String("validator", validator),
		zap.Uint64("amount", amount))
	return SettleResult{
		Validator:   validator,
		Success:     true,
		PaidAmount:  amount,
		Calculated:  amount,
		Transaction: res.Transaction,
	}
}

// SettlePending retries payout of the validator's accrued pending rewards.
func (o *Orchestrator) SettlePending(ctx context.Context, validator string) SettleResult {
	started := time.Now()
	defer func() { o.observe("settle_pending", nil, started) }()

	o.mu.Lock()
	amount := o.pending[validator]
	o.mu.Unlock()
	if amount == 0 {
		return SettleResult{Validator: validator, Success: true}
	}

	res := o.treasury.DistributeValidatorRewards(ctx, validator, amount, "")
	if !res.Success {
		return SettleResult{
			Validator:  validator,
			Calculated: amount,
			Reason:     res.Reason,
		}
	}

	o.mu.Lock()
	o.pending[validator] -= amount
	if o.pending[validator] == 0 {
		delete(o.pending, validator)
	}
	o.mu.Unlock()

	o.treasury.ReleasePendingRewards(amount)
	o.ledger.AddRewardsEarned(validator, amount)
	o.logger.Info("pending reward settled",
		zap.String("validator", validator),
		zap.Uint64("amount", amount))
	return SettleResult{
		Validator:   validator,
		Success:     true,
		PaidAmount:  amount,
		Calculated:  amount,
		Transaction: res.Transaction,
	}
}

// SettleAll settles every validator present in the event batch concurrently.
// Results are returned in validator order. Capacity rejections are normal
// outcomes, not errors: the only error is context cancellation.
func (o *Orchestrator) SettleAll(ctx context.Context, events []model.ValidatorEvent, rewardRate float64, workers int) ([]SettleResult, error) {
	started := time.Now()
	var err error
	defer func() { o.observe("settle_all", err, started) }()

	if workers <= 0 {
		workers = defaultSettleWorkers
	}

	grouped := eventstore.GroupByValidator(events)
	validators := make([]string, 0, len(grouped))
	for validator := range grouped {
		validators = append(validators, validator)
	}
	sort.Strings(validators)

	var results []SettleResult
	results, err = workerpool.Map(ctx, workers, validators, func(ctx context.Context, validator string) (SettleResult, error) {
		return o.SettleValidatorReward(ctx, validator, grouped[validator], rewardRate), nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// PendingRewards returns the validator's accrued owed-but-unpaid amount.
func (o *Orchestrator) PendingRewards(validator string) uint64 {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.pending[validator]
}

// TotalPending returns the owed-but-unpaid total across all validators.
func (o *Orchestrator) TotalPending() uint64 {
	o.mu.Lock()
	defer o.mu.Unlock()
	var total uint64
	for _, amount := range o.pending {
		total += amount
	}
	return total
}

func (o *Orchestrator) deferReward(validator string, amount uint64) {
	o.mu.Lock()
	o.pending[validator] += amount
	o.mu.Unlock()
	o.treasury.AddPendingRewards(amount)
}

func (o *Orchestrator) observe(operation string, err error, started time.Time) {
	if o.metrics == nil {
		return
	}
	o.metrics.Observe(operation, err, started)
}
