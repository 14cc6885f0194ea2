package transport

import (
	"time"

	"github.com/Guardian-Global/guardianchain-app-sub001/internal/model"
	"github.com/Guardian-Global/guardianchain-app-sub001/internal/orchestrator"
	"github.com/Guardian-Global/guardianchain-app-sub001/internal/vault"
)

type eventMetadataDTO struct {
	NetworkFee         uint64 `json:"networkFee,omitempty"`
	BoostType          string `json:"boostType,omitempty"`
	VerificationTimeMS int64  `json:"verificationTimeMs,omitempty"`
	Quality            string `json:"quality,omitempty"`
}

type eventRequest struct {
	Validator  string           `json:"validator"`
	EventType  string           `json:"eventType"`
	CapsuleID  string           `json:"capsuleId,omitempty"`
	GriefScore *float64         `json:"griefScore,omitempty"`
	Confidence *float64         `json:"confidence,omitempty"`
	GasUsed    uint64           `json:"gasUsed,omitempty"`
	Difficulty float64          `json:"difficulty,omitempty"`
	Metadata   eventMetadataDTO `json:"metadata"`
}

func (r eventRequest) toModel() model.ValidatorEvent {
	return model.ValidatorEvent{
		Validator:  r.Validator,
		Type:       model.EventType(r.EventType),
		CapsuleID:  r.CapsuleID,
		GriefScore: r.GriefScore,
		Confidence: r.Confidence,
		GasUsed:    r.GasUsed,
		Difficulty: r.Difficulty,
		Metadata: model.EventMetadata{
			NetworkFee:       r.Metadata.NetworkFee,
			BoostType:        r.Metadata.BoostType,
			VerificationTime: time.Duration(r.Metadata.VerificationTimeMS) * time.Millisecond,
			Quality:          model.Quality(r.Metadata.Quality),
		},
	}
}

type eventResponse struct {
	ID         string           `json:"id"`
	Validator  string           `json:"validator"`
	EventType  string           `json:"eventType"`
	Timestamp  time.Time        `json:"timestamp"`
	CapsuleID  string           `json:"capsuleId,omitempty"`
	GriefScore *float64         `json:"griefScore,omitempty"`
	Confidence *float64         `json:"confidence,omitempty"`
	GasUsed    uint64           `json:"gasUsed,omitempty"`
	Difficulty float64          `json:"difficulty,omitempty"`
	Metadata   eventMetadataDTO `json:"metadata"`
}

func eventToDTO(event model.ValidatorEvent) eventResponse {
	return eventResponse{
		ID:         event.ID,
		Validator:  event.Validator,
		EventType:  string(event.Type),
		Timestamp:  event.Timestamp,
		CapsuleID:  event.CapsuleID,
		GriefScore: event.GriefScore,
		Confidence: event.Confidence,
		GasUsed:    event.GasUsed,
		Difficulty: event.Difficulty,
		Metadata: eventMetadataDTO{
			NetworkFee:         event.Metadata.NetworkFee,
			BoostType:          event.Metadata.BoostType,
			VerificationTimeMS: event.Metadata.VerificationTime.Milliseconds(),
			Quality:            string(event.Metadata.Quality),
		},
	}
}

type performanceDTO struct {
	Daily   uint64 `json:"daily"`
	Weekly  uint64 `json:"weekly"`
	Monthly uint64 `json:"monthly"`
	AllTime uint64 `json:"allTime"`
}

type statsResponse struct {
	Validator          string         `json:"validator"`
	TotalEvents        uint64         `json:"totalEvents"`
	TotalRewardsEarned uint64         `json:"totalRewardsEarned"`
	AverageGriefScore  float64        `json:"averageGriefScore"`
	SuccessRate        float64        `json:"successRate"`
	Uptime             float64        `json:"uptime"`
	LastActive         time.Time      `json:"lastActive"`
	Rank               int            `json:"rank,omitempty"`
	Tier               string         `json:"tier"`
	Specializations    []string       `json:"specializations,omitempty"`
	Performance        performanceDTO `json:"performance"`
}

func statsToDTO(stats model.ValidatorStats) statsResponse {
	return statsResponse{
		Validator:          stats.Validator,
		TotalEvents:        stats.TotalEvents,
		TotalRewardsEarned: stats.TotalRewardsEarned,
		AverageGriefScore:  stats.AverageGriefScore,
		SuccessRate:        stats.SuccessRate,
		Uptime:             stats.Uptime,
		LastActive:         stats.LastActive,
		Rank:               stats.Rank,
		Tier:               string(stats.Tier),
		Specializations:    stats.Specializations,
		Performance: performanceDTO{
			Daily:   stats.Performance.Daily,
			Weekly:  stats.Performance.Weekly,
			Monthly: stats.Performance.Monthly,
			AllTime: stats.Performance.AllTime,
		},
	}
}

type summaryResponse struct {
	TotalValidators       int            `json:"totalValidators"`
	ActiveValidators      int            `json:"activeValidators"`
	TotalEvents           uint64         `json:"totalEvents"`
	TotalRewardsEarned    uint64         `json:"totalRewardsEarned"`
	AverageRewardPerEvent float64        `json:"averageRewardPerEvent"`
	TierDistribution      map[string]int `json:"tierDistribution"`
}

type projectionsResponse struct {
	DailyAverage     float64 `json:"dailyAverage"`
	ProjectedWeekly  float64 `json:"projectedWeekly"`
	ProjectedMonthly float64 `json:"projectedMonthly"`
	EstimatedAPY     float64 `json:"estimatedApy"`
}

type rewardBreakdownDTO struct {
	EventType string  `json:"eventType"`
	Count     int     `json:"count"`
	Reward    float64 `json:"reward"`
}

type rewardCalculationDTO struct {
	Validator        string               `json:"validator"`
	BaseReward       float64              `json:"baseReward"`
	PerformanceBonus float64              `json:"performanceBonus"`
	QualityBonus     float64              `json:"qualityBonus"`
	UptimeBonus      float64              `json:"uptimeBonus"`
	TierMultiplier   float64              `json:"tierMultiplier"`
	TotalReward      uint64               `json:"totalReward"`
	Breakdown        []rewardBreakdownDTO `json:"breakdown"`
}

func calculationToDTO(calc model.RewardCalculation) rewardCalculationDTO {
	breakdown := make([]rewardBreakdownDTO, 0, len(calc.Breakdown))
	for _, item := range calc.Breakdown {
		breakdown = append(breakdown, rewardBreakdownDTO{
			EventType: string(item.EventType),
			Count:     item.Count,
			Reward:    item.Reward,
		})
	}
	return rewardCalculationDTO{
		Validator:        calc.Validator,
		BaseReward:       calc.BaseReward,
		PerformanceBonus: calc.PerformanceBonus,
		QualityBonus:     calc.QualityBonus,
		UptimeBonus:      calc.UptimeBonus,
		TierMultiplier:   calc.TierMultiplier,
		TotalReward:      calc.TotalReward,
		Breakdown:        breakdown,
	}
}

type transactionMetadataDTO struct {
	CapsuleID        string `json:"capsuleId,omitempty"`
	ValidatorAddress string `json:"validatorAddress,omitempty"`
	ProposalID       string `json:"proposalId,omitempty"`
	Category         string `json:"category,omitempty"`
}

type transactionDTO struct {
	ID        string                 `json:"id"`
	Type      string                 `json:"type"`
	Amount    uint64                 `json:"amount"`
	Recipient string                 `json:"recipient,omitempty"`
	Source    string                 `json:"source,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
	TxHash    string                 `json:"txHash,omitempty"`
	Metadata  transactionMetadataDTO `json:"metadata"`
}

func transactionToDTO(tx model.VaultTransaction) transactionDTO {
	return transactionDTO{
		ID:        tx.ID,
		Type:      string(tx.Type),
		Amount:    tx.Amount,
		Recipient: tx.Recipient,
		Source:    tx.Source,
		Timestamp: tx.Timestamp,
		TxHash:    tx.TxHash,
		Metadata: transactionMetadataDTO{
			CapsuleID:        tx.Metadata.CapsuleID,
			ValidatorAddress: tx.Metadata.ValidatorAddress,
			ProposalID:       tx.Metadata.ProposalID,
			Category:         tx.Metadata.Category,
		},
	}
}

type limitUsageDTO struct {
	Used       uint64  `json:"used"`
	Limit      uint64  `json:"limit"`
	Percentage float64 `json:"percentage"`
}

type vaultStateDTO struct {
	TotalBalance         uint64    `json:"totalBalance"`
	ReserveBalance       uint64    `json:"reserveBalance"`
	DistributedToday     uint64    `json:"distributedToday"`
	DistributedThisWeek  uint64    `json:"distributedThisWeek"`
	DistributedThisMonth uint64    `json:"distributedThisMonth"`
	TotalDistributed     uint64    `json:"totalDistributed"`
	ActiveValidators     int       `json:"activeValidators"`
	PendingRewards       uint64    `json:"pendingRewards"`
	LastDistribution     time.Time `json:"lastDistribution"`
	NextDistribution     time.Time `json:"nextDistribution"`
}

type policyDTO struct {
	DailyLimit            uint64 `json:"dailyLimit"`
	WeeklyLimit           uint64 `json:"weeklyLimit"`
	MonthlyLimit          uint64 `json:"monthlyLimit"`
	ValidatorSharePercent uint64 `json:"validatorSharePercent"`
	DAOReservePercent     uint64 `json:"daoReservePercent"`
	CommunitySharePercent uint64 `json:"communitySharePercent"`
	BurnPercent           uint64 `json:"burnPercent"`
	MinimumBalance        uint64 `json:"minimumBalance"`
}

type vaultStatsResponse struct {
	State              vaultStateDTO    `json:"state"`
	Policy             policyDTO        `json:"policy"`
	RecentTransactions []transactionDTO `json:"recentTransactions"`
	Progress           struct {
		Daily   limitUsageDTO `json:"daily"`
		Weekly  limitUsageDTO `json:"weekly"`
		Monthly limitUsageDTO `json:"monthly"`
	} `json:"distributionProgress"`
}

func vaultStatsToDTO(stats model.VaultStats) vaultStatsResponse {
	resp := vaultStatsResponse{
		State: vaultStateDTO{
			TotalBalance:         stats.State.TotalBalance,
			ReserveBalance:       stats.State.ReserveBalance,
			DistributedToday:     stats.State.DistributedToday,
			DistributedThisWeek:  stats.State.DistributedThisWeek,
			DistributedThisMonth: stats.State.DistributedThisMonth,
			TotalDistributed:     stats.State.TotalDistributed,
			ActiveValidators:     stats.State.ActiveValidators,
			PendingRewards:       stats.State.PendingRewards,
			LastDistribution:     stats.State.LastDistribution,
			NextDistribution:     stats.State.NextDistribution,
		},
		Policy: policyDTO{
			DailyLimit:            stats.Policy.DailyLimit,
			WeeklyLimit:           stats.Policy.WeeklyLimit,
			MonthlyLimit:          stats.Policy.MonthlyLimit,
			ValidatorSharePercent: stats.Policy.ValidatorSharePercent,
			DAOReservePercent:     stats.Policy.DAOReservePercent,
			CommunitySharePercent: stats.Policy.CommunitySharePercent,
			BurnPercent:           stats.Policy.BurnPercent,
			MinimumBalance:        stats.Policy.MinimumBalance,
		},
	}
	resp.RecentTransactions = make([]transactionDTO, 0, len(stats.RecentTransactions))
	for _, tx := range stats.RecentTransactions {
		resp.RecentTransactions = append(resp.RecentTransactions, transactionToDTO(tx))
	}
	resp.Progress.Daily = usageToDTO(stats.Progress.Daily)
	resp.Progress.Weekly = usageToDTO(stats.Progress.Weekly)
	resp.Progress.Monthly = usageToDTO(stats.Progress.Monthly)
	return resp
}

func usageToDTO(u model.LimitUsage) limitUsageDTO {
	return limitUsageDTO{Used: u.Used, Limit: u.Limit, Percentage: u.Percentage}
}

type distributionResultDTO struct {
	Success     bool            `json:"success"`
	Transaction *transactionDTO `json:"transaction,omitempty"`
	Reason      string          `json:"reason,omitempty"`
}

func distributionResultToDTO(res vault.DistributionResult) distributionResultDTO {
	dto := distributionResultDTO{Success: res.Success, Reason: res.Reason}
	if res.Transaction != nil {
		tx := transactionToDTO(*res.Transaction)
		dto.Transaction = &tx
	}
	return dto
}

type weeklySharesDTO struct {
	ValidatorPool uint64 `json:"validatorPool"`
	CommunityPool uint64 `json:"communityPool"`
	Reserve       uint64 `json:"reserve"`
	Burned        uint64 `json:"burned"`
}

type weeklyResultDTO struct {
	Success          bool             `json:"success"`
	Distributions    *weeklySharesDTO `json:"distributions,omitempty"`
	TotalDistributed uint64           `json:"totalDistributed,omitempty"`
	Reason           string           `json:"reason,omitempty"`
}

func weeklyResultToDTO(res vault.WeeklyResult) weeklyResultDTO {
	dto := weeklyResultDTO{
		Success:          res.Success,
		TotalDistributed: res.TotalDistributed,
		Reason:           res.Reason,
	}
	if res.Distributions != nil {
		dto.Distributions = &weeklySharesDTO{
			ValidatorPool: res.Distributions.ValidatorPool,
			CommunityPool: res.Distributions.CommunityPool,
			Reserve:       res.Distributions.Reserve,
			Burned:        res.Distributions.Burned,
		}
	}
	return dto
}

type settleResultDTO struct {
	Validator   string          `json:"validator"`
	Success     bool            `json:"success"`
	PaidAmount  uint64          `json:"paidAmount"`
	Calculated  uint64          `json:"calculatedAmount"`
	Transaction *transactionDTO `json:"transaction,omitempty"`
	Reason      string          `json:"reason,omitempty"`
}

func settleResultToDTO(res orchestrator.SettleResult) settleResultDTO {
	dto := settleResultDTO{
		Validator:  res.Validator,
		Success:    res.Success,
		PaidAmount: res.PaidAmount,
		Calculated: res.Calculated,
		Reason:     res.Reason,
	}
	if res.Transaction != nil {
		tx := transactionToDTO(*res.Transaction)
		dto.Transaction = &tx
	}
	return dto
}
