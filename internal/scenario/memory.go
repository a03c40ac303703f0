package scenario

import (
	"context"
	"sync"

	"github.com/futurefunds/retirement-planner/internal/domain"
)

// MemoryStore keeps scenarios in process memory
type MemoryStore struct {
	mu        sync.RWMutex
	scenarios map[string]domain.Scenario
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{scenarios: make(map[string]domain.Scenario)}
}

// Verify interface compliance
var _ Store = (*MemoryStore)(nil)

func (m *MemoryStore) Create(_ context.Context, s domain.Scenario) (domain.Scenario, error) {
	s, err := prepare(s)
	if err != nil {
		return domain.Scenario{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scenarios[s.ID] = s
	return s, nil
}

func (m *MemoryStore) List(_ context.Context, userID string) ([]domain.Scenario, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Scenario, 0)
	for _, s := range m.scenarios {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (m *MemoryStore) Delete(_ context.Context, id, userID string) error {
	if err := checkDelete(id, userID); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.scenarios[id]
	if !ok || s.UserID != userID {
		return ErrNotFound
	}
	delete(m.scenarios, id)
	return nil
}
