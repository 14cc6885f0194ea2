package ledger

import (
	"math"
	"sort"
	"time"

	"github.com/Guardian-Global/guardianchain-app-sub001/internal/eventstore"
	"github.com/Guardian-Global/guardianchain-app-sub001/internal/model"
)

// CalculateRewards computes tiered, bonus-adjusted rewards for the given
// events. The result is deterministic for identical inputs: validators are
// emitted in lexical order and the breakdown follows first occurrence.
func (s *Service) CalculateRewards(events []model.ValidatorEvent, rewardRate float64) []model.RewardCalculation {
	started := time.Now()
	defer func() { s.observe("calculate_rewards", nil, started) }()

	grouped := eventstore.GroupByValidator(events)
	validators := make([]string, 0, len(grouped))
	for validator := range grouped {
		validators = append(validators, validator)
	}
	sort.Strings(validators)

	now := s.clock.Now()
	calculations := make([]model.RewardCalculation, 0, len(validators))
	for _, validator := range validators {
		validatorEvents := grouped[validator]
		stats := s.Stats(validator)

		breakdown := eventBreakdown(validatorEvents, rewardRate)
		var base float64
		for _, item := range breakdown {
			base += item.Reward
		}

		performance := performanceBonus(validatorEvents, now)
		quality := qualityBonus(validatorEvents)
		uptime := uptimeBonus(stats.Uptime)
		multiplier := stats.Tier.Multiplier()

		calculations = append(calculations, model.RewardCalculation{
			Validator:        validator,
			BaseReward:       base,
			PerformanceBonus: performance,
			QualityBonus:     quality,
			UptimeBonus:      uptime,
			TierMultiplier:   multiplier,
			TotalReward:      uint64(math.Floor((base + performance + quality + uptime) * multiplier)),
			Breakdown:        breakdown,
		})
	}
	return calculations
}

// eventBreakdown sums base-rate rewards per event type, in first-seen order.
func eventBreakdown(events []model.ValidatorEvent, rewardRate float64) []model.RewardBreakdown {
	index := make(map[model.EventType]int)
	breakdown := make([]model.RewardBreakdown, 0, 4)

	for _, event := range events {
		i, ok := index[event.Type]
		if !ok {
			i = len(breakdown)
			index[event.Type] = i
			breakdown = append(breakdown, model.RewardBreakdown{EventType: event.Type})
		}
		breakdown[i].Count++
		breakdown[i].Reward += model.BaseRate(event.Type) * rewardRate
	}
	return breakdown
}

// performanceBonus rewards consistency, volume and high-value work over the
// trailing seven days.
func performanceBonus(events []model.ValidatorEvent, now time.Time) float64 {
	recent := make([]model.ValidatorEvent, 0, len(events))
	for _, event := range events {
		if now.Sub(event.Timestamp) < 7*24*time.Hour {
			recent = append(recent, event)
		}
	}

	var bonus float64

	days := make(map[int64]struct{}, len(recent))
	highValue := 0
	for _, event := range recent {
		days[event.Timestamp.Unix()/86400] = struct{}{}
		if event.HighValue() {
			highValue++
		}
	}

	switch {
	case len(days) >= 7:
		bonus += 5
	case len(days) >= 5:
		bonus += 3
	case len(days) >= 3:
		bonus += 1
	}

	switch {
	case len(recent) >= 50:
		bonus += 10
	case len(recent) >= 25:
		bonus += 5
	case len(recent) >= 10:
		bonus += 2
	}

	bonus += math.Floor(float64(highValue) * 0.5)

	return bonus
}

// qualityBonus rewards graded work, fast verification and high confidence.
func qualityBonus(events []model.ValidatorEvent) float64 {
	var bonus float64
	for _, event := range events {
		if event.Metadata.Quality != "" {
			bonus += (model.QualityMultiplier(event.Metadata.Quality) - 1) * model.BaseRate(event.Type)
		}
		if vt := event.Metadata.VerificationTime; vt > 0 && vt < time.Second {
			bonus += 0.5
		}
		if event.Confidence != nil && *event.Confidence >= 95 {
			bonus += 1.0
		}
	}
	return bonus
}

func uptimeBonus(uptime float64) float64 {
	switch {
	case uptime >= 99:
		return 5
	case uptime >= 95:
		return 3
	case uptime >= 90:
		return 1
	default:
		return 0
	}
}
