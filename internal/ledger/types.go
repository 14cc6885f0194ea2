// Package ledger derives per-validator statistics, tiers and reward
// calculations from the validator event stream.
package ledger

import (
	"context"
	"time"

	"github.com/Guardian-Global/guardianchain-app-sub001/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// EventStore is the append-only log the ledger folds into stats.
	EventStore interface {
		Append(event model.ValidatorEvent) (model.ValidatorEvent, error)
		Query(filter model.EventFilter) []model.ValidatorEvent
		All() []model.ValidatorEvent
	}

	// EventSink receives recorded events for durable write-behind storage.
	EventSink interface {
		Add(ctx context.Context, event model.ValidatorEvent) error
	}

	// TransactionLog exposes the treasury's reward history for projections.
	TransactionLog interface {
		RecentRewardTransactions(validator string, limit int) []model.VaultTransaction
	}

	// Metrics records duration and status of ledger operations.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)
