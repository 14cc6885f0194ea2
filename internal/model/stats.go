package model

import "time"

// Tier is the coarse performance classification of a validator.
type Tier string

const (
	TierBronze   Tier = "bronze"
	TierSilver   Tier = "silver"
	TierGold     Tier = "gold"
	TierPlatinum Tier = "platinum"
	TierDiamond  Tier = "diamond"
)

// Multiplier returns the reward multiplier applied to a validator's tier.
func (t Tier) Multiplier() float64 {
	switch t {
	case TierSilver:
		return 1.2
	case TierGold:
		return 1.5
	case TierPlatinum:
		return 1.8
	case TierDiamond:
		return 2.2
	default:
		return 1.0
	}
}

// Order returns the tier's position for leaderboard sorting, bronze lowest.
func (t Tier) Order() int {
	switch t {
	case TierSilver:
		return 2
	case TierGold:
		return 3
	case TierPlatinum:
		return 4
	case TierDiamond:
		return 5
	default:
		return 1
	}
}

// Performance holds rolling event counters per period. A counter resets when
// the gap between two consecutive events exceeds its period.
type Performance struct {
	Daily   uint64
	Weekly  uint64
	Monthly uint64
	AllTime uint64
}

// ValidatorStats is the mutable per-validator aggregate derived entirely from
// the event stream. It must be reconstructible by replaying the event log.
type ValidatorStats struct {
	Validator          string
	TotalEvents        uint64
	TotalRewardsEarned uint64
	AverageGriefScore  float64
	SuccessRate        float64
	Uptime             float64
	LastActive         time.Time
	Rank               int
	Tier               Tier
	Specializations    []string
	Performance        Performance
}

// HasSpecialization reports whether the validator already earned the label.
func (s ValidatorStats) HasSpecialization(name string) bool {
	for _, spec := range s.Specializations {
		if spec == name {
			return true
		}
	}
	return false
}

// ValidatorSummary aggregates network-wide validator activity.
type ValidatorSummary struct {
	TotalValidators       int
	ActiveValidators      int
	TotalEvents           uint64
	TotalRewardsEarned    uint64
	AverageRewardPerEvent float64
	TierDistribution      map[Tier]int
}

// Projections is a naive linear forward-estimate of validator earnings,
// derived from recent reward transactions.
type Projections struct {
	DailyAverage     float64
	ProjectedWeekly  float64
	ProjectedMonthly float64
	EstimatedAPY     float64
}
