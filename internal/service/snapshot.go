package service

import (
	"github.com/Hariz09/game-hub-sub001/internal/constants"
	"github.com/Hariz09/game-hub-sub001/internal/engine"
	"github.com/Hariz09/game-hub-sub001/internal/game"
)

// Snapshot is a point-in-time copy of a session for rendering. It shares
// no memory with the live session. Version grows with every state change.
type Snapshot struct {
	ID               string               `json:"id"`
	Version          uint64               `json:"version"`
	ProfileKey       string               `json:"profile_key"`
	Stage            game.Stage           `json:"stage"`
	Phase            game.GamePhase       `json:"phase"`
	Turn             int                  `json:"turn"`
	Player           *game.Player         `json:"player"`
	Enemy            *game.Player         `json:"enemy"`
	EnemySelection   *game.EnemySelection `json:"enemy_selection"`
	PendingSelection game.Selection       `json:"pending_selection"`
	PlayerStrength   int                  `json:"player_strength"`
	EnemyStrength    int                  `json:"enemy_strength"`
	Winner           string               `json:"winner,omitempty"`
	BattleLog        []string             `json:"battle_log"`
	LastReport       *engine.TurnReport   `json:"last_report,omitempty"`
	Progress         *game.Progress       `json:"progress,omitempty"`
}

// Snapshot copies the session state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// changedLocked marks a state change and returns the snapshot to publish
// for it.
func (s *Session) changedLocked() Snapshot {
	s.version++
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() Snapshot {
	snap := Snapshot{
		ID:               s.ID,
		Version:          s.version,
		ProfileKey:       s.ProfileKey,
		Stage:            s.Stage,
		Phase:            s.Phase,
		Turn:             s.Turn,
		Player:           s.Player.Clone(),
		Enemy:            s.Enemy.Clone(),
		PendingSelection: copySelection(s.PendingSelection),
		Winner:           s.Winner,
		BattleLog:        tail(s.BattleLog, constants.BattleLogTail),
	}
	if s.Player != nil {
		snap.PlayerStrength = engine.CalculateStrength(s.Player)
	}
	if s.Enemy != nil {
		snap.EnemyStrength = engine.CalculateStrength(s.Enemy)
	}
	if s.EnemySelection != nil {
		es := *s.EnemySelection
		es.Selection = copySelection(es.Selection)
		snap.EnemySelection = &es
	}
	if s.LastReport != nil {
		r := *s.LastReport
		r.Log = append([]string(nil), r.Log...)
		snap.LastReport = &r
	}
	if s.progress != nil {
		p := *s.progress
		p.OwnedCards = append([]string(nil), p.OwnedCards...)
		p.CompletedStages = append([]int(nil), p.CompletedStages...)
		snap.Progress = &p
	}
	return snap
}

func copySelection(sel game.Selection) game.Selection {
	out := game.Selection{NormalCards: append([]game.Card(nil), sel.NormalCards...)}
	if sel.KingCard != nil {
		k := *sel.KingCard
		out.KingCard = &k
	}
	if sel.SupportCard != nil {
		sp := *sel.SupportCard
		out.SupportCard = &sp
	}
	return out
}

// tail returns a copy of the last n lines.
func tail(lines []string, n int) []string {
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return append([]string(nil), lines...)
}
