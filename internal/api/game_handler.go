package api

import (
	"github.com/Hariz09/game-hub-sub001/internal/service"
)

// GameHandler groups all battle-related HTTP handlers.
type GameHandler struct {
	sessions *service.Manager
}

// NewGameHandler creates a new GameHandler serving the sessions owned by m.
func NewGameHandler(m *service.Manager) *GameHandler {
	return &GameHandler{sessions: m}
}
