package service

import (
	"context"
	"sync"
	"time"

	"github.com/Hariz09/game-hub-sub001/internal/config"
	"github.com/Hariz09/game-hub-sub001/internal/constants"
	"github.com/Hariz09/game-hub-sub001/internal/game"
	"github.com/Hariz09/game-hub-sub001/internal/keys"
	"github.com/Hariz09/game-hub-sub001/internal/logging"
	"github.com/Hariz09/game-hub-sub001/internal/storage"

	"github.com/google/uuid"
)

// subscriberBuffer is how many snapshots a slow stream may lag behind
// before newer ones are dropped for it.
const subscriberBuffer = 8

// Manager owns the live sessions of the process.
type Manager struct {
	mu        sync.RWMutex
	sessions  map[string]*Session
	subs      map[string]map[chan Snapshot]struct{}
	published map[string]uint64 // newest snapshot version sent per session

	catalog *config.Catalog
	store   storage.ProgressStore
	ttl     time.Duration
	opts    []Option
}

func NewManager(catalog *config.Catalog, store storage.ProgressStore, ttl time.Duration, opts ...Option) *Manager {
	return &Manager{
		sessions:  make(map[string]*Session),
		subs:      make(map[string]map[chan Snapshot]struct{}),
		published: make(map[string]uint64),
		catalog:   catalog,
		store:     sharedLoads{ProgressStore: store},
		ttl:       ttl,
		opts:      opts,
	}
}

// Catalog returns the catalog sessions are dealt from.
func (m *Manager) Catalog() *config.Catalog { return m.catalog }

// Create starts a new session for profile against the given stage.
func (m *Manager) Create(ctx context.Context, profile string, stageNumber int) (*Session, error) {
	stage, ok := m.catalog.Stage(stageNumber)
	if !ok {
		return nil, ErrUnknownStage
	}
	id := uuid.NewString()
	s := NewSession(id, keys.ProfileKey(constants.ProgressNamespace, profile), profile, stage, m.catalog, m.store, m.opts...)
	s.onChange = func(snap Snapshot) { m.publish(id, snap) }
	if err := s.StartSession(ctx); err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.sessions[id] = s
	m.mu.Unlock()
	return s, nil
}

// Get returns the live session with id.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Delete ends a session and closes its streams.
func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	m.removeLocked(id)
	return nil
}

func (m *Manager) removeLocked(id string) {
	delete(m.sessions, id)
	for ch := range m.subs[id] {
		close(ch)
	}
	delete(m.subs, id)
	delete(m.published, id)
}

// Len reports how many sessions are live.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Progress loads the meta progress of profile.
func (m *Manager) Progress(ctx context.Context, profile string) (*game.Progress, error) {
	return m.store.Load(ctx, keys.ProfileKey(constants.ProgressNamespace, profile))
}

// Subscribe registers for snapshots of session id. The returned channel is
// closed when the session goes away or cancel is called.
func (m *Manager) Subscribe(id string) (<-chan Snapshot, func(), error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return nil, nil, ErrSessionNotFound
	}
	ch := make(chan Snapshot, subscriberBuffer)
	if m.subs[id] == nil {
		m.subs[id] = make(map[chan Snapshot]struct{})
	}
	m.subs[id][ch] = struct{}{}

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			m.mu.Lock()
			defer m.mu.Unlock()
			if _, ok := m.subs[id][ch]; ok {
				delete(m.subs[id], ch)
				close(ch)
			}
		})
	}
	return ch, cancel, nil
}

func (m *Manager) publish(id string, snap Snapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return
	}
	// Sessions notify after releasing their lock, so two changes may race
	// here out of order.
	if snap.Version <= m.published[id] {
		return
	}
	m.published[id] = snap.Version
	for ch := range m.subs[id] {
		select {
		case ch <- snap:
		default:
			logging.Warn("dropping snapshot for slow subscriber", nil, logging.Fields{constants.LogFieldSessionID: id})
		}
	}
}
