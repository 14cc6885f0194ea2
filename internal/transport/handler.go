package transport

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/Guardian-Global/guardianchain-app-sub001/internal/model"
	"github.com/Guardian-Global/guardianchain-app-sub001/internal/vault"
)

// Handler routes engine operations over HTTP JSON.
type Handler struct {
	ledger   Ledger
	events   EventSource
	treasury Treasury
	settler  Settler
	logger   *zap.Logger
}

func NewHandler(ledger Ledger, events EventSource, treasury Treasury, settler Settler, logger *zap.Logger) *Handler {
	return &Handler{
		ledger:   ledger,
		events:   events,
		treasury: treasury,
		settler:  settler,
		logger:   logger,
	}
}

// Register mounts every route on the mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", h.health)

	mux.HandleFunc("POST /v1/events", h.recordEvent)
	mux.HandleFunc("GET /v1/validators/summary", h.validatorSummary)
	mux.HandleFunc("GET /v1/validators/top", h.topValidators)
	mux.HandleFunc("GET /v1/validators/{validator}/stats", h.validatorStats)
	mux.HandleFunc("GET /v1/validators/{validator}/projections", h.validatorProjections)
	mux.HandleFunc("POST /v1/rewards/calculate", h.calculateRewards)

	mux.HandleFunc("GET /v1/vault/stats", h.vaultStats)
	mux.HandleFunc("GET /v1/vault/health", h.vaultHealth)
	mux.HandleFunc("POST /v1/vault/deposits", h.deposit)
	mux.HandleFunc("POST /v1/vault/distributions", h.distribute)
	mux.HandleFunc("POST /v1/vault/distributions/weekly", h.weeklyDistribution)
	mux.HandleFunc("PATCH /v1/vault/policy", h.updatePolicy)

	mux.HandleFunc("POST /v1/settlements", h.settle)
	mux.HandleFunc("POST /v1/settlements/pending", h.settlePending)
	mux.HandleFunc("POST /v1/settlements/all", h.settleAll)
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("encode response", zap.Error(err))
	}
}

func (h *Handler) readJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return false
	}
	return true
}

func (h *Handler) writeError(w http.ResponseWriter, status int, err error) {
	h.writeJSON(w, status, map[string]string{"error": err.Error()})
}

// statusFor maps engine errors to HTTP statuses. Validation failures are the
// caller's fault; anything else is ours.
func statusFor(err error) int {
	switch {
	case errors.Is(err, model.ErrUnknownEventType),
		errors.Is(err, model.ErrMissingValidator),
		errors.Is(err, model.ErrGriefScoreRange),
		errors.Is(err, model.ErrConfidenceRange),
		errors.Is(err, model.ErrUnknownQuality),
		errors.Is(err, model.ErrInvalidPolicy),
		errors.Is(err, vault.ErrInvalidAmount):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
