package model

import (
	"errors"
	"fmt"
	"time"
)

// TransactionType classifies a treasury ledger entry.
type TransactionType string

const (
	TransactionDeposit    TransactionType = "deposit"
	TransactionWithdrawal TransactionType = "withdrawal"
	TransactionReward     TransactionType = "reward"
	TransactionBurn       TransactionType = "burn"
)

// TransactionMetadata carries optional context for a vault transaction.
type TransactionMetadata struct {
	CapsuleID        string
	ValidatorAddress string
	ProposalID       string
	Category         string
}

// VaultTransaction is an immutable treasury ledger entry. The transaction log
// is append-only and serves as the audit trail for every balance change.
type VaultTransaction struct {
	ID        string
	Type      TransactionType
	Amount    uint64
	Recipient string
	Source    string
	Timestamp time.Time
	TxHash    string
	Metadata  TransactionMetadata
}

// VaultState is the mutable treasury aggregate. All amounts are whole GTT.
// Invariant: TotalBalance never goes negative; a debit that would violate
// this is rejected before any mutation.
type VaultState struct {
	TotalBalance         uint64
	ReserveBalance       uint64
	DistributedToday     uint64
	DistributedThisWeek  uint64
	DistributedThisMonth uint64
	TotalDistributed     uint64
	ActiveValidators     int
	PendingRewards       uint64
	LastDistribution     time.Time
	NextDistribution     time.Time
}

// DistributionPolicy is the governance-configured disbursement policy.
// The four share percentages must sum to exactly 100.
type DistributionPolicy struct {
	DailyLimit            uint64
	WeeklyLimit           uint64
	MonthlyLimit          uint64
	ValidatorSharePercent uint64
	DAOReservePercent     uint64
	CommunitySharePercent uint64
	BurnPercent           uint64
	MinimumBalance        uint64
}

// ErrInvalidPolicy rejects a policy whose share percentages do not sum to 100.
var ErrInvalidPolicy = errors.New("distribution policy shares must sum to 100")

// Validate checks the policy constraints.
func (p DistributionPolicy) Validate() error {
	sum := p.ValidatorSharePercent + p.DAOReservePercent + p.CommunitySharePercent + p.BurnPercent
	if sum != 100 {
		return fmt.Errorf("%w: got %d", ErrInvalidPolicy, sum)
	}
	return nil
}

// DefaultDistributionPolicy returns the launch policy.
func DefaultDistributionPolicy() DistributionPolicy {
	return DistributionPolicy{
		DailyLimit:            1000,
		WeeklyLimit:           5000,
		MonthlyLimit:          20000,
		ValidatorSharePercent: 40,
		DAOReservePercent:     20,
		CommunitySharePercent: 30,
		BurnPercent:           10,
		MinimumBalance:        10000,
	}
}

// PolicyUpdate is a governance merge-update of policy fields. Nil fields keep
// their current value.
type PolicyUpdate struct {
	DailyLimit            *uint64
	WeeklyLimit           *uint64
	MonthlyLimit          *uint64
	ValidatorSharePercent *uint64
	DAOReservePercent     *uint64
	CommunitySharePercent *uint64
	BurnPercent           *uint64
	MinimumBalance        *uint64
}

// Apply merges the update onto the policy and returns the result.
func (u PolicyUpdate) Apply(p DistributionPolicy) DistributionPolicy {
	if u.DailyLimit != nil {
		p.DailyLimit = *u.DailyLimit
	}
	if u.WeeklyLimit != nil {
		p.WeeklyLimit = *u.WeeklyLimit
	}
	if u.MonthlyLimit != nil {
		p.MonthlyLimit = *u.MonthlyLimit
	}
	if u.ValidatorSharePercent != nil {
		p.ValidatorSharePercent = *u.ValidatorSharePercent
	}
	if u.DAOReservePercent != nil {
		p.DAOReservePercent = *u.DAOReservePercent
	}
	if u.CommunitySharePercent != nil {
		p.CommunitySharePercent = *u.CommunitySharePercent
	}
	if u.BurnPercent != nil {
		p.BurnPercent = *u.BurnPercent
	}
	if u.MinimumBalance != nil {
		p.MinimumBalance = *u.MinimumBalance
	}
	return p
}

// LimitUsage reports consumption of one distribution cap.
type LimitUsage struct {
	Used       uint64
	Limit      uint64
	Percentage float64
}

// DistributionProgress reports consumption of the daily, weekly and monthly
// distribution caps.
type DistributionProgress struct {
	Daily   LimitUsage
	Weekly  LimitUsage
	Monthly LimitUsage
}

// VaultStats is a read-only snapshot of the treasury.
type VaultStats struct {
	State              VaultState
	Policy             DistributionPolicy
	RecentTransactions []VaultTransaction
	Progress           DistributionProgress
}
