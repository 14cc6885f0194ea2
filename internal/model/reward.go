package model

// BaseRate returns the base reward rate in GTT for one event of the given type.
func BaseRate(t EventType) float64 {
	switch t {
	case EventCapsuleValidation:
		return 2.5
	case EventTruthVerification:
		return 3.0
	case EventZKProof:
		return 4.0
	case EventConsensusParticipation:
		return 1.5
	case EventUptimeBonus:
		return 0.5
	default:
		return 1.0
	}
}

// QualityMultiplier returns the reward multiplier for a quality grade.
// The empty grade carries no multiplier.
func QualityMultiplier(q Quality) float64 {
	switch q {
	case QualityHigh:
		return 1.5
	case QualityMedium:
		return 1.2
	default:
		return 1.0
	}
}

// RewardBreakdown reports the per-event-type contribution to a base reward.
type RewardBreakdown struct {
	EventType EventType
	Count     int
	Reward    float64
}

// RewardCalculation is the ephemeral output of a reward computation over a
// set of events plus the validator's current stats. It is not persisted; the
// treasury ledger records only the resulting payout.
//
// Invariant: TotalReward == floor((BaseReward+PerformanceBonus+QualityBonus+
// UptimeBonus) * TierMultiplier).
type RewardCalculation struct {
	Validator        string
	BaseReward       float64
	PerformanceBonus float64
	QualityBonus     float64
	UptimeBonus      float64
	TierMultiplier   float64
	TotalReward      uint64
	Breakdown        []RewardBreakdown
}
