// Package registry provides the in-memory activity table backing the service.
//
// The table lives for the process lifetime and is seeded once at startup;
// activities are never created or deleted at runtime, only their rosters
// change. All methods are safe for concurrent use.
package registry

import (
	"context"
	"sort"
	"sync"

	"example.com/signup/internal/domain"
	"example.com/signup/internal/observability"
)

// Memory is an RWMutex-guarded in-memory implementation of
// domain.ActivityRepository.
type Memory struct {
	mu         sync.RWMutex
	activities map[string]*domain.Activity
}

// NewMemory builds a registry seeded with copies of the given activities.
func NewMemory(seed []domain.Activity) *Memory {
	m := &Memory{activities: make(map[string]*domain.Activity, len(seed))}
	for _, act := range seed {
		clone := act.Clone()
		m.activities[clone.Name] = &clone
		observability.SetRosterSize(clone.Name, len(clone.Participants))
	}
	return m
}

// List returns a snapshot of every activity, sorted by name. Rosters are
// copied so callers can never mutate the table through a response.
func (m *Memory) List(ctx context.Context) ([]domain.Activity, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.Activity, 0, len(m.activities))
	for _, act := range m.activities {
		out = append(out, act.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Get returns a snapshot of one activity, or nil when the name is unknown.
func (m *Memory) Get(ctx context.Context, name string) (*domain.Activity, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	act, ok := m.activities[name]
	if !ok {
		return nil, nil
	}
	clone := act.Clone()
	return &clone, nil
}

// AddParticipant appends the email to the roster. Duplicates and capacity are
// not checked here; those are service-level rules.
func (m *Memory) AddParticipant(ctx context.Context, name, email string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	act, ok := m.activities[name]
	if !ok {
		return domain.ErrActivityNotFound
	}
	act.Participants = append(act.Participants, email)
	observability.SetRosterSize(name, len(act.Participants))
	return nil
}

// RemoveParticipant removes the first occurrence of the email from the roster.
func (m *Memory) RemoveParticipant(ctx context.Context, name, email string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	act, ok := m.activities[name]
	if !ok {
		return domain.ErrActivityNotFound
	}
	for i, p := range act.Participants {
		if p == email {
			act.Participants = append(act.Participants[:i], act.Participants[i+1:]...)
			observability.SetRosterSize(name, len(act.Participants))
			return nil
		}
	}
	return domain.ErrNotRegistered
}
