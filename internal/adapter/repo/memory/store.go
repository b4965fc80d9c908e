package memory

import (
	"context"
	"sync"

	"infernocorp/internal/app/ports"
	"infernocorp/internal/domain/game"
)

type Store struct {
	mu      sync.RWMutex
	saves   map[string]ports.SaveRecord
	journal map[string][]game.Event
}

func NewStore() *Store {
	return &Store{
		saves:   make(map[string]ports.SaveRecord),
		journal: make(map[string][]game.Event),
	}
}

type txKey struct{}

// read and write take the store lock unless TxManager already holds it.
func (s *Store) read(ctx context.Context, fn func()) {
	if ctx.Value(txKey{}) == nil {
		s.mu.RLock()
		defer s.mu.RUnlock()
	}
	fn()
}

func (s *Store) write(ctx context.Context, fn func()) {
	if ctx.Value(txKey{}) == nil {
		s.mu.Lock()
		defer s.mu.Unlock()
	}
	fn()
}
