package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/Guardian-Global/guardianchain-app-sub001/internal/model"
)

// EventsByValidator returns the validator's events in append order, bounded
// by the optional time range.
func (r *Repository) EventsByValidator(ctx context.Context, validator string, from, to time.Time) ([]model.ValidatorEvent, error) {
	started := time.Now()
	var err error
	defer func() { r.observe("events_by_validator", err, started) }()

	const query = `
SELECT
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
FROM validator_events
WHERE validator = ?
	AND (? = 0 OR timestamp >= ?)
	AND (? = 0 OR timestamp <= ?)
ORDER BY timestamp ASC`

	rows, err := r.conn.Query(ctx, query,
		validator,
		boolFlag(!from.IsZero()), from,
		boolFlag(!to.IsZero()), to,
	)
	if err != nil {
		return nil, fmt.Errorf("query events by validator: %w", err)
	}
	defer rows.Close()

	var events []model.ValidatorEvent
	for rows.Next() {
		event, scanErr := scanEvent(rows)
		if scanErr != nil {
			err = scanErr
			return nil, err
		}
		events = append(events, event)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events by validator: %w", err)
	}
	return events, nil
}

// AllEvents streams the full event log in append order. It feeds stats
// replay on startup.
func (r *Repository) AllEvents(ctx context.Context) ([]model.ValidatorEvent, error) {
	started := time.Now()
	var err error
	defer func() { r.observe("all_events", err, started) }()

	const query = `
SELECT
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
FROM validator_events
ORDER BY timestamp ASC`

	rows, err := r.conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query all events: %w", err)
	}
	defer rows.Close()

	var events []model.ValidatorEvent
	for rows.Next() {
		event, scanErr := scanEvent(rows)
		if scanErr != nil {
			err = scanErr
			return nil, err
		}
		events = append(events, event)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate all events: %w", err)
	}
	return events, nil
}

func scanEvent(rows Rows) (model.ValidatorEvent, error) {
	var (
		event              model.ValidatorEvent
		eventType, quality string
		verificationMS     uint64
	)
	if err := rows.Scan(
		&event.ID,
		&event.Validator,
		&eventType,
		&event.Timestamp,
		&event.CapsuleID,
		&event.GriefScore,
		&event.Confidence,
		&event.GasUsed,
		&event.Difficulty,
		&event.Metadata.NetworkFee,
		&event.Metadata.BoostType,
		&verificationMS,
		&quality,
	); err != nil {
		return model.ValidatorEvent{}, fmt.Errorf("scan event: %w", err)
	}
	event.Type = model.EventType(eventType)
	event.Metadata.Quality = model.Quality(quality)
	event.Metadata.VerificationTime = time.Duration(verificationMS) * time.Millisecond
	return event, nil
}

func boolFlag(set bool) uint8 {
	if set {
		return 1
	}
	return 0
}
