package storage

import (
	"context"
	"slices"
	"sync"

	"github.com/Hariz09/game-hub-sub001/internal/game"
)

type memoryProgressStore struct {
	mu   sync.RWMutex
	data map[string]game.Progress
}

// NewMemoryProgressStore returns a process-local store. Progress is lost on
// restart.
func NewMemoryProgressStore() ProgressStore {
	return &memoryProgressStore{data: make(map[string]game.Progress)}
}

func (m *memoryProgressStore) Load(_ context.Context, profileKey string) (*game.Progress, error) {
	if profileKey == "" {
		return nil, ErrEmptyProfileKey
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.data[profileKey]
	if !ok {
		return &game.Progress{ProfileKey: profileKey}, nil
	}
	out := copyProgress(p)
	return &out, nil
}

func (m *memoryProgressStore) Save(_ context.Context, p *game.Progress) error {
	if p == nil || p.ProfileKey == "" {
		return ErrEmptyProfileKey
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[p.ProfileKey] = copyProgress(*p)
	return nil
}

func (m *memoryProgressStore) Update(_ context.Context, profileKey string, fn func(*game.Progress) error) (*game.Progress, error) {
	if profileKey == "" {
		return nil, ErrEmptyProfileKey
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.data[profileKey]
	if ok {
		p = copyProgress(p)
	} else {
		p = game.Progress{ProfileKey: profileKey}
	}
	if err := fn(&p); err != nil {
		return nil, err
	}
	p.ProfileKey = profileKey
	m.data[profileKey] = copyProgress(p)
	return &p, nil
}

func copyProgress(p game.Progress) game.Progress {
	p.OwnedCards = slices.Clone(p.OwnedCards)
	p.CompletedStages = slices.Clone(p.CompletedStages)
	return p
}
