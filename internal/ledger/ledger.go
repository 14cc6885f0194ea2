package ledger

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Guardian-Global/guardianchain-app-sub001/internal/clock"
	"github.com/Guardian-Global/guardianchain-app-sub001/internal/model"
)

const activeWindow = 7 * 24 * time.Hour

// Service maintains per-validator statistics derived from the event stream.
// All mutations for one validator run under that validator's lock, so the
// running average and tier recomputation never race.
type Service struct {
	store   EventStore
	sink    EventSink
	txlog   TransactionLog
	logger  *zap.Logger
	metrics Metrics
	clock   clock.Clock

	mu    sync.Mutex
	stats map[string]*model.ValidatorStats
	locks map[string]*sync.Mutex
}

// NewService builds the ledger. sink and txlog may be nil when durable
// write-behind or projections are not wired.
func NewService(
	store EventStore,
	sink EventSink,
	txlog TransactionLog,
	logger *zap.Logger,
	metrics Metrics,
	clk clock.Clock,
) *Service {
	return &Service{
		store:   store,
		sink:    sink,
		txlog:   txlog,
		logger:  logger,
		metrics: metrics,
		clock:   clk,
		stats:   make(map[string]*model.ValidatorStats),
		locks:   make(map[string]*sync.Mutex),
	}
}

// RecordEvent appends the event to the store and atomically folds it into
// the validator's stats. Missing ID and timestamp are assigned here; a
// malformed event is rejected before any state mutation.
func (s *Service) RecordEvent(ctx context.Context, event model.ValidatorEvent) (model.ValidatorEvent, error) {
	started := time.Now()
	var err error
	defer func() { s.observe("record_event", err, started) }()

	if event.ID == "" {
		event.ID = "evt_" + uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = s.clock.Now()
	}
	if err = event.Validate(); err != nil {
		return model.ValidatorEvent{}, err
	}

	lock := s.validatorLock(event.Validator)
	lock.Lock()
	defer lock.Unlock()

	stored, err := s.store.Append(event)
	if err != nil {
		return model.ValidatorEvent{}, err
	}

	applyEvent(s.statsRef(stored.Validator), stored)

	if s.sink != nil {
		if sinkErr := s.sink.Add(ctx, stored); sinkErr != nil {
			s.logger.Error("event not queued for durable storage",
				zap.String("event_id", stored.ID),
				zap.Error(sinkErr))
		}
	}

	s.logger.Debug("validator event recorded",
		zap.String("event_id", stored.ID),
		zap.String("validator", stored.Validator),
		zap.String("event_type", string(stored.Type)))

	return stored, nil
}

// Stats returns a copy of the validator's current statistics. Unknown
// validators get a fresh record; this never errors.
func (s *Service) Stats(validator string) model.ValidatorStats {
	lock := s.validatorLock(validator)
	lock.Lock()
	defer lock.Unlock()

	return copyStats(s.statsRef(validator))
}

// AddRewardsEarned accumulates a settled payout onto the validator's
// lifetime earnings. TotalRewardsEarned only ever grows.
func (s *Service) AddRewardsEarned(validator string, amount uint64) {
	lock := s.validatorLock(validator)
	lock.Lock()
	defer lock.Unlock()

	s.statsRef(validator).TotalRewardsEarned += amount
}

// TopValidators returns up to limit validators ordered by tier then event
// volume, with Rank assigned 1..N on the returned copies only.
func (s *Service) TopValidators(limit int) []model.ValidatorStats {
	started := time.Now()
	defer func() { s.observe("top_validators", nil, started) }()

	if limit <= 0 {
		limit = 10
	}

	all := s.snapshotAll()
	sort.Slice(all, func(i, j int) bool {
		if oi, oj := all[i].Tier.Order(), all[j].Tier.Order(); oi != oj {
			return oi > oj
		}
		if all[i].TotalEvents != all[j].TotalEvents {
			return all[i].TotalEvents > all[j].TotalEvents
		}
		return all[i].Validator < all[j].Validator
	})

	if len(all) > limit {
		all = all[:limit]
	}
	for i := range all {
		all[i].Rank = i + 1
	}
	return all
}

// Summary aggregates network-wide validator activity. A validator counts as
// active when it produced an event within the trailing seven days.
func (s *Service) Summary() model.ValidatorSummary {
	now := s.clock.Now()
	all := s.snapshotAll()

	summary := model.ValidatorSummary{
		TotalValidators:  len(all),
		TierDistribution: make(map[model.Tier]int),
	}
	for _, st := range all {
		if now.Sub(st.LastActive) < activeWindow {
			summary.ActiveValidators++
		}
		summary.TotalEvents += st.TotalEvents
		summary.TotalRewardsEarned += st.TotalRewardsEarned
		summary.TierDistribution[st.Tier]++
	}
	if summary.TotalEvents > 0 {
		summary.AverageRewardPerEvent = float64(summary.TotalRewardsEarned) / float64(summary.TotalEvents)
	}
	return summary
}

// Rebuild replaces all derived statistics by folding the given event log
// from scratch. Events must be ordered per validator as they were appended.
func (s *Service) Rebuild(events []model.ValidatorEvent) error {
	rebuilt := make(map[string]*model.ValidatorStats)
	for _, event := range events {
		if err := event.Validate(); err != nil {
			return fmt.Errorf("rebuild stats from event %s: %w", event.ID, err)
		}
		st, ok := rebuilt[event.Validator]
		if !ok {
			st = newStats(event.Validator, event.Timestamp)
			rebuilt[event.Validator] = st
		}
		applyEvent(st, event)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats = rebuilt
	return nil
}

func (s *Service) validatorLock(validator string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[validator]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[validator] = lock
	}
	return lock
}

// statsRef returns the live stats record, creating a fresh one for an
// unseen validator. Callers must hold the validator's lock.
func (s *Service) statsRef(validator string) *model.ValidatorStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.stats[validator]
	if !ok {
		st = newStats(validator, s.clock.Now())
		s.stats[validator] = st
	}
	return st
}

func (s *Service) snapshotAll() []model.ValidatorStats {
	s.mu.Lock()
	validators := make([]string, 0, len(s.stats))
	for validator := range s.stats {
		validators = append(validators, validator)
	}
	s.mu.Unlock()

	sort.Strings(validators)
	out := make([]model.ValidatorStats, 0, len(validators))
	for _, validator := range validators {
		out = append(out, s.Stats(validator))
	}
	return out
}

func (s *Service) observe(operation string, err error, started time.Time) {
	if s.metrics != nil {
		s.metrics.Observe(operation, err, started)
	}
}

func newStats(validator string, lastActive time.Time) *model.ValidatorStats {
	return &model.ValidatorStats{
		Validator:   validator,
		SuccessRate: 100,
		Uptime:      100,
		LastActive:  lastActive,
		Tier:        model.TierBronze,
	}
}

func copyStats(st *model.ValidatorStats) model.ValidatorStats {
	out := *st
	out.Specializations = append([]string(nil), st.Specializations...)
	return out
}

// applyEvent folds one event into the stats record. The same fold runs in
// the live path and in Rebuild, so replaying the log always reproduces the
// incrementally-maintained state.
func applyEvent(st *model.ValidatorStats, event model.ValidatorEvent) {
	prevActive := st.LastActive
	if st.TotalEvents == 0 {
		prevActive = event.Timestamp
	}

	st.TotalEvents++
	st.LastActive = event.Timestamp

	if event.GriefScore != nil {
		total := st.AverageGriefScore*float64(st.TotalEvents-1) + *event.GriefScore
		st.AverageGriefScore = total / float64(st.TotalEvents)
	}

	rollPerformance(st, event.Timestamp, prevActive)
	addSpecializations(st, event)
	st.Tier = tierFor(*st)
}

// rollPerformance resets a period counter when the gap since the previous
// event exceeds its period, then counts the new event.
func rollPerformance(st *model.ValidatorStats, ts, prevActive time.Time) {
	gap := ts.Sub(prevActive)
	if gap > 24*time.Hour {
		st.Performance.Daily = 0
	}
	if gap > 7*24*time.Hour {
		st.Performance.Weekly = 0
	}
	if gap > 30*24*time.Hour {
		st.Performance.Monthly = 0
	}
	st.Performance.Daily++
	st.Performance.Weekly++
	st.Performance.Monthly++
	st.Performance.AllTime++
}

func addSpecializations(st *model.ValidatorStats, event model.ValidatorEvent) {
	add := func(name string) {
		if !st.HasSpecialization(name) {
			st.Specializations = append(st.Specializations, name)
		}
	}

	switch event.Type {
	case model.EventZKProof:
		if event.Confidence != nil && *event.Confidence >= 90 {
			add("zk_specialist")
		}
	case model.EventTruthVerification:
		if event.GriefScore != nil && *event.GriefScore >= 8 {
			add("truth_expert")
		}
	case model.EventCapsuleValidation:
		if event.Metadata.Quality == model.QualityHigh {
			add("capsule_expert")
		}
	}
}
