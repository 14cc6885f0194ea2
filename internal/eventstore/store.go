// Package eventstore holds the append-only log of validator work events.
//
// The store exposes no update or delete operations: events are immutable
// facts and the full log can always be replayed to rebuild derived state.
package eventstore

import (
	"fmt"
	"sync"

	"github.com/Guardian-Global/guardianchain-app-sub001/internal/model"
)

// Store is an in-memory append-only event log. Appends are serialized by a
// single writer lock, which gives every validator's sub-stream a stable
// order; reads take a shared lock and return copies.
type Store struct {
	mu          sync.RWMutex
	events      []model.ValidatorEvent
	byValidator map[string][]int
}

// New returns an empty Store.
func New() *Store {
	return &Store{byValidator: make(map[string][]int)}
}

// Append validates the event and adds it to the log. The stored event is
// returned unchanged; a validation failure leaves the log untouched.
func (s *Store) Append(event model.ValidatorEvent) (model.ValidatorEvent, error) {
	if err := event.Validate(); err != nil {
		return model.ValidatorEvent{}, fmt.Errorf("append event: %w", err)
	}
	if event.ID == "" {
		return model.ValidatorEvent{}, fmt.Errorf("append event: missing id")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = append(s.events, event)
	s.byValidator[event.Validator] = append(s.byValidator[event.Validator], len(s.events)-1)
	return event, nil
}

// Query returns every event matching the filter, in append order.
func (s *Store) Query(filter model.EventFilter) []model.ValidatorEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if filter.Validator != "" {
		indexes := s.byValidator[filter.Validator]
		matched := make([]model.ValidatorEvent, 0, len(indexes))
		for _, i := range indexes {
			if filter.Matches(s.events[i]) {
				matched = append(matched, s.events[i])
			}
		}
		return matched
	}

	var matched []model.ValidatorEvent
	for _, event := range s.events {
		if filter.Matches(event) {
			matched = append(matched, event)
		}
	}
	return matched
}

// All returns the full log in append order.
func (s *Store) All() []model.ValidatorEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.ValidatorEvent, len(s.events))
	copy(out, s.events)
	return out
}

// Len returns the number of stored events.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.events)
}

// GroupByValidator buckets events by validator identity, preserving the
// relative order within each bucket.
func GroupByValidator(events []model.ValidatorEvent) map[string][]model.ValidatorEvent {
	grouped := make(map[string][]model.ValidatorEvent)
	for _, event := range events {
		grouped[event.Validator] = append(grouped[event.Validator], event)
	}
	return grouped
}
