// Package vault is the treasury state machine: it holds the shared GTT
// balance, enforces the distribution policy and emits the transaction log.
package vault

import (
	"context"
	"time"

	"github.com/Guardian-Global/guardianchain-app-sub001/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// TransactionSink receives every appended transaction for durable
	// write-behind storage. The in-memory log is the source of truth.
	TransactionSink interface {
		Add(ctx context.Context, tx model.VaultTransaction) error
	}

	// Receipts issues opaque settlement receipts attached to transactions
	// as their tx hash. The vault never inspects or verifies them.
	Receipts interface {
		NewReceipt() string
	}

	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)
