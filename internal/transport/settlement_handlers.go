package transport

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/Guardian-Global/guardianchain-app-sub001/internal/model"
)

type settleRequest struct {
	Validator  string  `json:"validator"`
	RewardRate float64 `json:"rewardRate,omitempty"`
}

func (h *Handler) settle(w http.ResponseWriter, r *http.Request) {
	var req settleRequest
	if !h.readJSON(w, r, &req) {
		return
	}
	if req.Validator == "" {
		h.writeError(w, http.StatusBadRequest, model.ErrMissingValidator)
		return
	}
	rate := req.RewardRate
	if rate <= 0 {
		rate = defaultRewardRate
	}

	events := h.events.Query(model.EventFilter{Validator: req.Validator})
	result := h.settler.SettleValidatorReward(r.Context(), req.Validator, events, rate)
	h.writeJSON(w, http.StatusOK, settleResultToDTO(result))
}

type settlePendingRequest struct {
	Validator string `json:"validator"`
}

func (h *Handler) settlePending(w http.ResponseWriter, r *http.Request) {
	var req settlePendingRequest
	if !h.readJSON(w, r, &req) {
		return
	}
	if req.Validator == "" {
		h.writeError(w, http.StatusBadRequest, model.ErrMissingValidator)
		return
	}

	result := h.settler.SettlePending(r.Context(), req.Validator)
	h.writeJSON(w, http.StatusOK, settleResultToDTO(result))
}

type settleAllRequest struct {
	RewardRate float64 `json:"rewardRate,omitempty"`
	Workers    int     `json:"workers,omitempty"`
}

func (h *Handler) settleAll(w http.ResponseWriter, r *http.Request) {
	var req settleAllRequest
	if !h.readJSON(w, r, &req) {
		return
	}
	if req.Workers < 0 {
		h.writeError(w, http.StatusBadRequest, errors.New("workers must not be negative"))
		return
	}
	rate := req.RewardRate
	if rate <= 0 {
		rate = defaultRewardRate
	}

	events := h.events.Query(model.EventFilter{})
	results, err := h.settler.SettleAll(r.Context(), events, rate, req.Workers)
	if err != nil {
		h.logger.Error("settle all", zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, err)
		return
	}

	out := make([]settleResultDTO, 0, len(results))
	for _, result := range results {
		out = append(out, settleResultToDTO(result))
	}
	h.writeJSON(w, http.StatusOK, out)
}
