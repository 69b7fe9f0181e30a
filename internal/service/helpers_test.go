package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Hariz09/game-hub-sub001/internal/config"
	"github.com/Hariz09/game-hub-sub001/internal/game"
)

const testCatalogYAML = `
rules:
  starting_hp: 30
  starting_resources: 5
  resource_regen: 3
  hand_size: 5
card_list:
  - {name: Giant, type: commoner, strength: 20, cost: 0, loyalty: 5}
  - {name: Baron, type: nobility, strength: 4, cost: 3, loyalty: 5}
  - {name: Court Healer, type: support, strength: 0, cost: 2, loyalty: 3, ability_type: heal}
  - {name: Pikeman, type: commoner, strength: 2, cost: 1, loyalty: 3}
  - {name: Peasant, type: commoner, strength: 1, cost: 0, loyalty: 2}
starter_deck:
  - {name: Giant}
  - {name: Baron}
  - {name: Court Healer}
  - {name: Pikeman, count: 3}
  - {name: Peasant}
stages:
  - number: 1
    name: Skirmish
    enemy_name: Bandit
    enemy_hp: 10
    reward: 15
    reward_card: Court Healer
    enemy_deck: [Peasant, Peasant, Peasant, Peasant, Peasant, Peasant]
  - number: 2
    name: Siege
    enemy_name: Black Baron
    enemy_hp: 50
    enemy_deck: [Pikeman, Pikeman, Pikeman, Pikeman, Pikeman, Pikeman, Pikeman, Pikeman]
`

func testCatalog(t *testing.T) *config.Catalog {
	t.Helper()
	c, err := config.ParseCatalog([]byte(testCatalogYAML), "test.yaml")
	require.NoError(t, err)
	return c
}

func noShuffle([]game.Card) {}

type mockStore struct {
	mu      sync.Mutex
	data    map[string]game.Progress
	loads   int
	saves   int
	saveErr error
}

func newMockStore() *mockStore {
	return &mockStore{data: make(map[string]game.Progress)}
}

func (m *mockStore) Load(ctx context.Context, key string) (*game.Progress, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loads++
	p, ok := m.data[key]
	if !ok {
		return &game.Progress{ProfileKey: key}, nil
	}
	p.OwnedCards = append([]string(nil), p.OwnedCards...)
	p.CompletedStages = append([]int(nil), p.CompletedStages...)
	return &p, nil
}

func (m *mockStore) Save(ctx context.Context, p *game.Progress) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.data[p.ProfileKey] = *p
	return nil
}

func (m *mockStore) Update(ctx context.Context, key string, fn func(*game.Progress) error) (*game.Progress, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.data[key]
	if !ok {
		p = game.Progress{ProfileKey: key}
	}
	p.OwnedCards = append([]string(nil), p.OwnedCards...)
	p.CompletedStages = append([]int(nil), p.CompletedStages...)
	if err := fn(&p); err != nil {
		return nil, err
	}
	if m.saveErr != nil {
		return nil, m.saveErr
	}
	m.saves++
	m.data[key] = p
	out := p
	out.OwnedCards = append([]string(nil), p.OwnedCards...)
	out.CompletedStages = append([]int(nil), p.CompletedStages...)
	return &out, nil
}

func (m *mockStore) get(key string) (game.Progress, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.data[key]
	return p, ok
}

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

// newTestSession starts a session on stage with a fixed deck order.
func newTestSession(t *testing.T, store *mockStore, stage int) *Session {
	t.Helper()
	cat := testCatalog(t)
	st, ok := cat.Stage(stage)
	require.True(t, ok)
	s := NewSession("s-1", "card-battle-progress:arthur", "Arthur", st, cat, store, WithShuffle(noShuffle))
	require.NoError(t, s.StartSession(context.Background()))
	return s
}
