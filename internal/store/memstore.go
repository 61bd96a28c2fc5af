package store

import (
	"sync"

	"eterra/internal/game"
)

// MemoryStore keeps live games in a mutex-guarded map.
type MemoryStore struct {
	mu    sync.RWMutex
	games map[uint64]*game.Game
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		games: map[uint64]*game.Game{},
	}
}

func (m *MemoryStore) Get(id uint64) (*game.Game, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	return g, ok
}

func (m *MemoryStore) Save(g *game.Game) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[g.ID] = g
}
