package ledger

import "github.com/Guardian-Global/guardianchain-app-sub001/internal/model"

// tierScore accumulates points from four independent bands: event volume,
// average grief score, success rate and uptime.
func tierScore(st model.ValidatorStats) int {
	score := 0

	switch {
	case st.TotalEvents >= 1000:
		score += 40
	case st.TotalEvents >= 500:
		score += 30
	case st.TotalEvents >= 100:
		score += 20
	case st.TotalEvents >= 50:
		score += 10
	}

	switch {
	case st.AverageGriefScore >= 9:
		score += 25
	case st.AverageGriefScore >= 8:
		score += 20
	case st.AverageGriefScore >= 7:
		score += 15
	case st.AverageGriefScore >= 6:
		score += 10
	}

	switch {
	case st.SuccessRate >= 99:
		score += 20
	case st.SuccessRate >= 95:
		score += 15
	case st.SuccessRate >= 90:
		score += 10
	}

	switch {
	case st.Uptime >= 99:
		score += 15
	case st.Uptime >= 95:
		score += 10
	case st.Uptime >= 90:
		score += 5
	}

	return score
}

// tierFor maps a validator's current stats to its tier. The tier is always
// recomputed from the stats, never set independently.
func tierFor(st model.ValidatorStats) model.Tier {
	switch score := tierScore(st); {
	case score >= 90:
		return model.TierDiamond
	case score >= 75:
		return model.TierPlatinum
	case score >= 60:
		return model.TierGold
	case score >= 40:
		return model.TierSilver
	default:
		return model.TierBronze
	}
}
