package engine

import (
	"strings"

	"github.com/Hariz09/game-hub-sub001/internal/game"
)

// --- Turn context and helpers -----------------------------------------
type turnContext struct {
	player *game.Player
	enemy  *game.Player
	log    []string
}

func newTurnContext(player, enemy *game.Player) *turnContext {
	return &turnContext{player: player, enemy: enemy, log: make([]string, 0, 16)}
}

func (tc *turnContext) add(lines ...string) { tc.log = append(tc.log, lines...) }

// opponentOf returns the other side of the battle.
func (tc *turnContext) opponentOf(p *game.Player) *game.Player {
	if p == tc.player {
		return tc.enemy
	}
	return tc.player
}

// joinLog returns the accumulated log as a single string.
func (tc *turnContext) joinLog() string {
	return strings.Join(tc.log, "\n")
}
