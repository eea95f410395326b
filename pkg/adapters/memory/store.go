package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/aretw0/weft/pkg/domain"
)

// Store implements ports.AutomatonStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]*domain.Automaton
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]*domain.Automaton),
	}
}

// Save registers the automaton under the given ID.
// Automata are immutable after construction, so storing the pointer is safe.
func (s *Store) Save(ctx context.Context, id string, automaton *domain.Automaton) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[id] = automaton
	return nil
}

// Load retrieves the automaton from memory.
func (s *Store) Load(ctx context.Context, id string) (*domain.Automaton, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	automaton, ok := s.data[id]
	if !ok {
		return nil, domain.ErrAutomatonNotFound
	}
	return automaton, nil
}

// Delete removes the automaton.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
	return nil
}

// List returns the registered IDs in sorted order.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.data))
	for id := range s.data {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}
