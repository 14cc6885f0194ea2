// Package model defines domain models for the validator incentive engine.
package model

import (
	"errors"
	"fmt"
	"time"
)

// EventType classifies the kind of work a validator performed.
type EventType string

const (
	// EventCapsuleValidation is a completed capsule validation.
	EventCapsuleValidation EventType = "capsule_validation"
	// EventTruthVerification is a completed truth verification.
	EventTruthVerification EventType = "truth_verification"
	// EventZKProof is a submitted zero-knowledge proof.
	EventZKProof EventType = "zk_proof"
	// EventConsensusParticipation is participation in a consensus round.
	EventConsensusParticipation EventType = "consensus_participation"
	// EventUptimeBonus is a periodic uptime attestation.
	EventUptimeBonus EventType = "uptime_bonus"
)

// Valid reports whether the event type is one of the known kinds.
func (t EventType) Valid() bool {
	switch t {
	case EventCapsuleValidation, EventTruthVerification, EventZKProof,
		EventConsensusParticipation, EventUptimeBonus:
		return true
	default:
		return false
	}
}

// Quality grades the work attached to an event.
type Quality string

const (
	QualityHigh   Quality = "high"
	QualityMedium Quality = "medium"
	QualityLow    Quality = "low"
)

// Valid reports whether the quality grade is known. The empty grade is
// treated as unset, not invalid.
func (q Quality) Valid() bool {
	switch q {
	case "", QualityHigh, QualityMedium, QualityLow:
		return true
	default:
		return false
	}
}

// EventMetadata carries optional attributes supplied by the attestation source.
type EventMetadata struct {
	NetworkFee       uint64
	BoostType        string
	VerificationTime time.Duration
	Quality          Quality
}

// ValidatorEvent is an immutable record of a single unit of validator work.
// Events are append-only facts and are never mutated after being stored.
type ValidatorEvent struct {
	ID         string
	Validator  string
	Type       EventType
	Timestamp  time.Time
	CapsuleID  string
	GriefScore *float64
	Confidence *float64
	GasUsed    uint64
	Difficulty float64
	Metadata   EventMetadata
}

// Validation errors returned before any state mutation takes place.
var (
	ErrUnknownEventType = errors.New("unknown event type")
	ErrMissingValidator = errors.New("validator identity is required")
	ErrGriefScoreRange  = errors.New("grief score out of range [0,10]")
	ErrConfidenceRange  = errors.New("confidence out of range [0,100]")
	ErrUnknownQuality   = errors.New("unknown quality grade")
)

// Validate checks the event against the data model constraints.
func (e ValidatorEvent) Validate() error {
	if e.Validator == "" {
		return ErrMissingValidator
	}
	if !e.Type.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownEventType, e.Type)
	}
	if e.GriefScore != nil && (*e.GriefScore < 0 || *e.GriefScore > 10) {
		return fmt.Errorf("%w: %v", ErrGriefScoreRange, *e.GriefScore)
	}
	if e.Confidence != nil && (*e.Confidence < 0 || *e.Confidence > 100) {
		return fmt.Errorf("%w: %v", ErrConfidenceRange, *e.Confidence)
	}
	if !e.Metadata.Quality.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownQuality, e.Metadata.Quality)
	}
	return nil
}

// HighValue reports whether the event counts as high-value work for the
// performance bonus: a grief score of 8 or more, or confidence of 90 or more.
func (e ValidatorEvent) HighValue() bool {
	if e.GriefScore != nil && *e.GriefScore >= 8 {
		return true
	}
	return e.Confidence != nil && *e.Confidence >= 90
}

// EventFilter selects events from the store. Zero values leave the
// corresponding dimension unbounded.
type EventFilter struct {
	Validator string
	Type      EventType
	From      time.Time
	To        time.Time
}

// Matches reports whether the event satisfies every set filter dimension.
func (f EventFilter) Matches(e ValidatorEvent) bool {
	if f.Validator != "" && e.Validator != f.Validator {
		return false
	}
	if f.Type != "" && e.Type != f.Type {
		return false
	}
	if !f.From.IsZero() && e.Timestamp.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && e.Timestamp.After(f.To) {
		return false
	}
	return true
}
