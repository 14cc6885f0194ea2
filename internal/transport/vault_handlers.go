package transport

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/Guardian-Global/guardianchain-app-sub001/internal/model"
)

func (h *Handler) vaultStats(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, vaultStatsToDTO(h.treasury.Stats()))
}

func (h *Handler) vaultHealth(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]int{"score": h.treasury.HealthScore()})
}

type depositRequest struct {
	Amount           uint64 `json:"amount"`
	CapsuleID        string `json:"capsuleId,omitempty"`
	ValidatorAddress string `json:"validatorAddress,omitempty"`
}

func (h *Handler) deposit(w http.ResponseWriter, r *http.Request) {
	var req depositRequest
	if !h.readJSON(w, r, &req) {
		return
	}

	tx, err := h.treasury.DepositFromRedemption(r.Context(), req.Amount, req.CapsuleID, req.ValidatorAddress)
	if err != nil {
		status := statusFor(err)
		if status >= http.StatusInternalServerError {
			h.logger.Error("deposit", zap.Error(err))
		}
		h.writeError(w, status, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, transactionToDTO(tx))
}

type distributeRequest struct {
	ValidatorAddress string `json:"validatorAddress"`
	Amount           uint64 `json:"amount"`
	CapsuleID        string `json:"capsuleId,omitempty"`
}

func (h *Handler) distribute(w http.ResponseWriter, r *http.Request) {
	var req distributeRequest
	if !h.readJSON(w, r, &req) {
		return
	}

	result := h.treasury.DistributeValidatorRewards(r.Context(), req.ValidatorAddress, req.Amount, req.CapsuleID)
	h.writeJSON(w, http.StatusOK, distributionResultToDTO(result))
}

func (h *Handler) weeklyDistribution(w http.ResponseWriter, r *http.Request) {
	result := h.treasury.ProcessWeeklyDistribution(r.Context())
	h.writeJSON(w, http.StatusOK, weeklyResultToDTO(result))
}

type policyUpdateRequest struct {
	DailyLimit            *uint64 `json:"dailyLimit,omitempty"`
	WeeklyLimit           *uint64 `json:"weeklyLimit,omitempty"`
	MonthlyLimit          *uint64 `json:"monthlyLimit,omitempty"`
	ValidatorSharePercent *uint64 `json:"validatorSharePercent,omitempty"`
	DAOReservePercent     *uint64 `json:"daoReservePercent,omitempty"`
	CommunitySharePercent *uint64 `json:"communitySharePercent,omitempty"`
	BurnPercent           *uint64 `json:"burnPercent,omitempty"`
	MinimumBalance        *uint64 `json:"minimumBalance,omitempty"`
}

func (h *Handler) updatePolicy(w http.ResponseWriter, r *http.Request) {
	var req policyUpdateRequest
	if !h.readJSON(w, r, &req) {
		return
	}

	policy, err := h.treasury.UpdatePolicy(model.PolicyUpdate{
		DailyLimit:            req.DailyLimit,
		WeeklyLimit:           req.WeeklyLimit,
		MonthlyLimit:          req.MonthlyLimit,
		ValidatorSharePercent: req.ValidatorSharePercent,
		DAOReservePercent:     req.DAOReservePercent,
		CommunitySharePercent: req.CommunitySharePercent,
		BurnPercent:           req.BurnPercent,
		MinimumBalance:        req.MinimumBalance,
	})
	if err != nil {
		h.writeError(w, statusFor(err), err)
		return
	}

	h.writeJSON(w, http.StatusOK, policyDTO{
		DailyLimit:            policy.DailyLimit,
		WeeklyLimit:           policy.WeeklyLimit,
		MonthlyLimit:          policy.MonthlyLimit,
		ValidatorSharePercent: policy.ValidatorSharePercent,
		DAOReservePercent:     policy.DAOReservePercent,
		CommunitySharePercent: policy.CommunitySharePercent,
		BurnPercent:           policy.BurnPercent,
		MinimumBalance:        policy.MinimumBalance,
	})
}
