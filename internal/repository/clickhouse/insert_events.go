package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/Guardian-Global/guardianchain-app-sub001/internal/model"
	"github.com/Guardian-Global/guardianchain-app-sub001/pkg/safe"
)

// InsertEvents stores validator event rows in ClickHouse.
func (r *Repository) InsertEvents(ctx context.Context, events []model.ValidatorEvent) error {
	started := time.Now()
	var err error
	defer func() { r.observe("insert_events", err, started) }()

	if len(events) == 0 {
		return nil
	}

	const query = `
INSERT INTO validator_events (
	id,
	validator,
	event_type,
	timestamp,
	capsule_id,
	grief_score,
	confidence,
	gas_used,
	difficulty,
	network_fee,
	boost_type,
	verification_time_ms,
	quality
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare events batch: %w", err)
	}

	for _, event := range events {
		var verificationMS uint64
		if verificationMS, err = safe.Uint64(event.Metadata.VerificationTime.Milliseconds()); err != nil {
			return fmt.Errorf("event verification time: %w", err)
		}
		if err = batch.Append(
			event.ID,
			event.Validator,
			string(event.Type),
			event.Timestamp,
			event.CapsuleID,
			event.GriefScore,
			event.Confidence,
			event.GasUsed,
			event.Difficulty,
			event.Metadata.NetworkFee,
			event.Metadata.BoostType,
			verificationMS,
			string(event.Metadata.Quality),
		); err != nil {
			return fmt.Errorf("append event: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert events: %w", err)
	}
	return nil
}
