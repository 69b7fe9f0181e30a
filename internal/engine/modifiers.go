package engine

import (
	"strings"

	"github.com/Hariz09/game-hub-sub001/internal/game"
)

// --- Strength modifiers ------------------------------------------------

// supportBoost is the per-card bonus granted by a boost-type Support card.
func supportBoost(p *game.Player) int {
	s := p.Support
	if s == nil || s.AbilityType != game.AbilityBoost {
		return 0
	}
	if s.Magnitude > 0 {
		return s.Magnitude
	}
	if strings.Contains(s.Name, "3") {
		return 3
	}
	return 2
}

// kingRally is the per-card bonus granted by a rally-type King.
func kingRally(p *game.Player) int {
	k := p.King
	if k == nil || k.AbilityType != game.AbilityRally {
		return 0
	}
	if k.Magnitude > 0 {
		return k.Magnitude
	}
	return 1
}

// CalculateStrength returns the army's effective combat strength. Support
// boost and King rally stack on every Army card; the King's own strength
// is added once without bonuses.
func CalculateStrength(p *game.Player) int {
	bonus := supportBoost(p) + kingRally(p)
	total := 0
	for _, c := range p.PlayedCards {
		total += c.Strength + bonus
	}
	if p.King != nil {
		total += p.King.Strength
	}
	return total
}
