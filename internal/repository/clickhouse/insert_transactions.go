package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/Guardian-Global/guardianchain-app-sub001/internal/model"
)

// InsertTransactions stores treasury transaction rows in ClickHouse.
func (r *Repository) InsertTransactions(ctx context.Context, txs []model.VaultTransaction) error {
	started := time.Now()
	var err error
	defer func() { r.observe("insert_transactions", err, started) }()

	if len(txs) == 0 {
		return nil
	}

	const query = `
INSERT INTO vault_transactions (
	id,
	tx_type,
	amount,
	recipient,
	source,
	timestamp,
	tx_hash,
	capsule_id,
	validator_address,
	proposal_id,
	category
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare transactions batch: %w", err)
	}

	for _, tx := range txs {
		if err = batch.Append(
			tx.ID,
			string(tx.Type),
			tx.Amount,
			tx.Recipient,
			tx.Source,
			tx.Timestamp,
			tx.TxHash,
			tx.Metadata.CapsuleID,
			tx.Metadata.ValidatorAddress,
			tx.Metadata.ProposalID,
			tx.Metadata.Category,
		); err != nil {
			return fmt.Errorf("append transaction: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert transactions: %w", err)
	}
	return nil
}
