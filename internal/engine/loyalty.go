package engine

import (
	"strconv"

	"github.com/Hariz09/game-hub-sub001/internal/game"
)

// ProcessLoyalty runs the end-of-turn loyalty pass for owner. Every Army
// card and the Support card lose one loyalty; cards reaching zero betray
// owner and are appended to opponent's deck with their loyalty restored.
// The King never decays.
func ProcessLoyalty(owner, opponent *game.Player) []string {
	var (
		lines    []string
		betrayed []game.Card
	)

	kept := owner.PlayedCards[:0]
	for _, c := range owner.PlayedCards {
		c.Loyalty--
		if c.Loyalty <= 0 {
			betrayed = append(betrayed, c)
			lines = append(lines, c.Name+" betrays "+owner.Name+" and joins "+opponent.Name+"'s deck!")
			continue
		}
		kept = append(kept, c)
	}
	owner.PlayedCards = kept

	if owner.King != nil {
		lines = append(lines, owner.King.Name+" remains loyal to "+owner.Name)
	}

	if owner.Support != nil {
		s := *owner.Support
		s.Loyalty--
		if s.Loyalty <= 0 {
			betrayed = append(betrayed, s)
			owner.Support = nil
			lines = append(lines, s.Name+" betrays "+owner.Name+" and joins "+opponent.Name+"'s deck!")
		} else {
			owner.Support = &s
			lines = append(lines, s.Name+" loyalty falls to "+strconv.Itoa(s.Loyalty))
		}
	}

	for _, c := range betrayed {
		c.Loyalty = c.BaseLoyalty
		opponent.Deck = append(opponent.Deck, c)
	}
	return lines
}
