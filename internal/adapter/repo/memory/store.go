package memory

import (
	"sync"

	"nursery/internal/domain/nursery"
)

// Store keeps the journal in process. Events are held in append order.
type Store struct {
	mu     sync.RWMutex
	txMu   sync.Mutex
	events []nursery.Event
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.events)
}
