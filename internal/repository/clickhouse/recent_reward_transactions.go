package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/Guardian-Global/guardianchain-app-sub001/internal/model"
)

// RecentRewardTransactions returns the validator's trailing reward payouts,
// newest first. It feeds the earnings projections.
func (r *Repository) RecentRewardTransactions(ctx context.Context, validator string, limit int) ([]model.VaultTransaction, error) {
	started := time.Now()
	var err error
	defer func() { r.observe("recent_reward_transactions", err, started) }()

	if limit <= 0 {
		limit = 30
	}

	const query = `
SELECT
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
FROM vault_transactions
WHERE tx_type = 'reward' AND recipient = ?
ORDER BY timestamp DESC
LIMIT ?`

	rows, err := r.conn.Query(ctx, query, validator, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent reward transactions: %w", err)
	}
	defer rows.Close()

	var txs []model.VaultTransaction
	for rows.Next() {
		var (
			tx     model.VaultTransaction
			txType string
		)
		if err = rows.Scan(
			&tx.ID,
			&txType,
			&tx.Amount,
			&tx.Recipient,
			&tx.Source,
			&tx.Timestamp,
			&tx.TxHash,
			&tx.Metadata.CapsuleID,
			&tx.Metadata.ValidatorAddress,
			&tx.Metadata.ProposalID,
			&tx.Metadata.Category,
		); err != nil {
			err = fmt.Errorf("scan transaction: %w", err)
			return nil, err
		}
		tx.Type = model.TransactionType(txType)
		txs = append(txs, tx)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recent reward transactions: %w", err)
	}
	return txs, nil
}
