package service

import (
	"context"
	"time"

	"github.com/Hariz09/game-hub-sub001/internal/constants"
	"github.com/Hariz09/game-hub-sub001/internal/logging"
)

// EvictIdle removes sessions that have been idle longer than the manager
// TTL as of now. It returns how many were removed.
func (m *Manager) EvictIdle(now time.Time) int {
	m.mu.RLock()
	var stale []string
	for id, s := range m.sessions {
		if now.Sub(s.LastActive()) > m.ttl {
			stale = append(stale, id)
		}
	}
	m.mu.RUnlock()
	if len(stale) == 0 {
		return 0
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, id := range stale {
		// The session may have been used since the first pass.
		s, ok := m.sessions[id]
		if !ok || now.Sub(s.LastActive()) <= m.ttl {
			continue
		}
		m.removeLocked(id)
		n++
		logging.Info("session expired", logging.Fields{constants.LogFieldSessionID: id})
	}
	return n
}

// RunJanitor evicts idle sessions every interval until ctx is done.
func (m *Manager) RunJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if n := m.EvictIdle(now); n > 0 {
				logging.Debug("janitor pass", logging.Fields{constants.LogFieldCount: n})
			}
		}
	}
}
