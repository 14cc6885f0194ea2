package vault

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Guardian-Global/guardianchain-app-sub001/internal/clock"
	"github.com/Guardian-Global/guardianchain-app-sub001/internal/model"
)

// ErrInvalidAmount rejects zero-amount deposits and payouts.
var ErrInvalidAmount = errors.New("amount must be positive")

const distributionInterval = 7 * 24 * time.Hour

// Vault owns the singleton treasury state. Every balance mutation goes
// through its single mutex so capacity checks and debits are one atomic step
// and the total balance can never go negative.
type Vault struct {
	sink     TransactionSink
	receipts Receipts
	logger   *zap.Logger
	metrics  Metrics
	clock    clock.Clock

	mu       sync.Mutex
	state    model.VaultState
	policy   model.DistributionPolicy
	txs      []model.VaultTransaction
	lastTick time.Time
}

func New(
	initialBalance uint64,
	policy model.DistributionPolicy,
	sink TransactionSink,
	receipts Receipts,
	logger *zap.Logger,
	metrics Metrics,
	clk clock.Clock,
) (*Vault, error) {
	if err := policy.Validate(); err != nil {
		return nil, fmt.Errorf("distribution policy: %w", err)
	}

	now := clk.Now()
	return &Vault{
		sink:     sink,
		receipts: receipts,
		logger:   logger,
		metrics:  metrics,
		clock:    clk,
		state: model.VaultState{
			TotalBalance:     initialBalance,
			NextDistribution: now.Add(distributionInterval),
		},
		policy:   policy,
		lastTick: now,
	}, nil
}

// DepositFromRedemption credits the treasury from a capsule redemption fee.
// Deposits are unconditional: the only rejection is a zero amount.
func (v *Vault) DepositFromRedemption(ctx context.Context, amount uint64, capsuleID, validatorAddress string) (model.VaultTransaction, error) {
	started := time.Now()
	var err error
	defer func() { v.observe("deposit", err, started) }()

	if amount == 0 {
		err = ErrInvalidAmount
		return model.VaultTransaction{}, err
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	now := v.clock.Now()
	v.rollCounters(now)
	v.state.TotalBalance += amount

	tx := v.append(ctx, model.VaultTransaction{
		Type:      model.TransactionDeposit,
		Amount:    amount,
		Source:    "capsule_redemption",
		Timestamp: now,
		Metadata: model.TransactionMetadata{
			CapsuleID:        capsuleID,
			ValidatorAddress: validatorAddress,
			Category:         "redemption_fee",
		},
	})

	v.logger.Info("treasury deposit",
		zap.Uint64("amount", amount),
		zap.String("capsule_id", capsuleID),
		zap.Uint64("total_balance", v.state.TotalBalance))
	return tx, nil
}

// Policy returns the active distribution policy.
func (v *Vault) Policy() model.DistributionPolicy {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.policy
}

// AddPendingRewards accrues reward amounts that were earned but could not be
// paid out under the current capacity limits.
func (v *Vault) AddPendingRewards(amount uint64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.PendingRewards += amount
}

// ReleasePendingRewards removes settled amounts from the pending balance.
func (v *Vault) ReleasePendingRewards(amount uint64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if amount > v.state.PendingRewards {
		amount = v.state.PendingRewards
	}
	v.state.PendingRewards -= amount
}

// SetActiveValidators updates the advisory active-validator gauge on the
// vault snapshot.
func (v *Vault) SetActiveValidators(n int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.ActiveValidators = n
}

// rollCounters resets the daily and monthly distribution counters when the
// calendar boundary has passed since the last mutation. The weekly counter is
// reset by ProcessWeeklyDistribution only. Callers must hold the mutex.
func (v *Vault) rollCounters(now time.Time) {
	ly, lm, ld := v.lastTick.UTC().Date()
	ny, nm, nd := now.UTC().Date()
	if ly != ny || lm != nm || ld != nd {
		v.state.DistributedToday = 0
	}
	if ly != ny || lm != nm {
		v.state.DistributedThisMonth = 0
	}
	v.lastTick = now
}

// append assigns identity to the transaction, records it on the audit log and
// forwards it to the durable sink. Callers must hold the mutex.
func (v *Vault) append(ctx context.Context, tx model.VaultTransaction) model.VaultTransaction {
	tx.ID = "vtx_" + uuid.NewString()
	if v.receipts != nil {
		tx.TxHash = v.receipts.NewReceipt()
	}
	v.txs = append(v.txs, tx)

	if v.sink != nil {
		if err := v.sink.Add(ctx, tx); err != nil {
			v.logger.Error("persist vault transaction",
				zap.String("tx_id", tx.ID),
				zap.Error(err))
		}
	}
	return tx
}

func (v *Vault) observe(operation string, err error, started time.Time) {
	if v.metrics == nil {
		return
	}
	v.metrics.Observe(operation, err, started)
}
