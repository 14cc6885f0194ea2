package transport

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/Guardian-Global/guardianchain-app-sub001/internal/model"
)

const (
	defaultTopLimit   = 10
	defaultDaysAhead  = 30
	defaultRewardRate = 1.0
)

func (h *Handler) recordEvent(w http.ResponseWriter, r *http.Request) {
	var req eventRequest
	if !h.readJSON(w, r, &req) {
		return
	}

	stored, err := h.ledger.RecordEvent(r.Context(), req.toModel())
	if err != nil {
		status := statusFor(err)
		if status >= http.StatusInternalServerError {
			h.logger.Error("record event", zap.Error(err))
		}
		h.writeError(w, status, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, eventToDTO(stored))
}

func (h *Handler) validatorStats(w http.ResponseWriter, r *http.Request) {
	validator := r.PathValue("validator")
	h.writeJSON(w, http.StatusOK, statsToDTO(h.ledger.Stats(validator)))
}

func (h *Handler) validatorProjections(w http.ResponseWriter, r *http.Request) {
	daysAhead := defaultDaysAhead
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			h.writeError(w, http.StatusBadRequest, errors.New("days must be a positive integer"))
			return
		}
		daysAhead = parsed
	}

	validator := r.PathValue("validator")
	projections := h.ledger.Projections(validator, daysAhead)
	h.writeJSON(w, http.StatusOK, projectionsResponse{
		DailyAverage:     projections.DailyAverage,
		ProjectedWeekly:  projections.ProjectedWeekly,
		ProjectedMonthly: projections.ProjectedMonthly,
		EstimatedAPY:     projections.EstimatedAPY,
	})
}

func (h *Handler) topValidators(w http.ResponseWriter, r *http.Request) {
	limit := defaultTopLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			h.writeError(w, http.StatusBadRequest, errors.New("limit must be a positive integer"))
			return
		}
		limit = parsed
	}

	top := h.ledger.TopValidators(limit)
	out := make([]statsResponse, 0, len(top))
	for _, stats := range top {
		out = append(out, statsToDTO(stats))
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *Handler) validatorSummary(w http.ResponseWriter, _ *http.Request) {
	summary := h.ledger.Summary()
	tiers := make(map[string]int, len(summary.TierDistribution))
	for tier, count := range summary.TierDistribution {
		tiers[string(tier)] = count
	}
	h.writeJSON(w, http.StatusOK, summaryResponse{
		TotalValidators:       summary.TotalValidators,
		ActiveValidators:      summary.ActiveValidators,
		TotalEvents:           summary.TotalEvents,
		TotalRewardsEarned:    summary.TotalRewardsEarned,
		AverageRewardPerEvent: summary.AverageRewardPerEvent,
		TierDistribution:      tiers,
	})
}

type calculateRequest struct {
	Validator  string     `json:"validator,omitempty"`
	RewardRate float64    `json:"rewardRate,omitempty"`
	From       *time.Time `json:"from,omitempty"`
	To         *time.Time `json:"to,omitempty"`
}

func (r calculateRequest) filter() model.EventFilter {
	filter := model.EventFilter{Validator: r.Validator}
	if r.From != nil {
		filter.From = *r.From
	}
	if r.To != nil {
		filter.To = *r.To
	}
	return filter
}

func (h *Handler) calculateRewards(w http.ResponseWriter, r *http.Request) {
	var req calculateRequest
	if !h.readJSON(w, r, &req) {
		return
	}
	rate := req.RewardRate
	if rate <= 0 {
		rate = defaultRewardRate
	}

	events := h.events.Query(req.filter())
	calculations := h.ledger.CalculateRewards(events, rate)
	out := make([]rewardCalculationDTO, 0, len(calculations))
	for _, calc := range calculations {
		out = append(out, calculationToDTO(calc))
	}
	h.writeJSON(w, http.StatusOK, out)
}
