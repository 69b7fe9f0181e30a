package engine

import "github.com/Hariz09/game-hub-sub001/internal/game"

// indexOfCard returns the position of the card with id in cards, or -1.
func indexOfCard(cards []game.Card, id string) int {
	for i := range cards {
		if cards[i].ID == id {
			return i
		}
	}
	return -1
}

// removeCardAt deletes cards[i] preserving order.
func removeCardAt(cards []game.Card, i int) []game.Card {
	return append(cards[:i], cards[i+1:]...)
}

// FindInHand returns the hand card with the given id.
func FindInHand(p *game.Player, id string) (game.Card, bool) {
	if i := indexOfCard(p.Hand, id); i >= 0 {
		return p.Hand[i], true
	}
	return game.Card{}, false
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// isDeployed reports whether the card with id still sits in one of p's
// zones.
func isDeployed(p *game.Player, id string) bool {
	if p.King != nil && p.King.ID == id {
		return true
	}
	if p.Support != nil && p.Support.ID == id {
		return true
	}
	return indexOfCard(p.PlayedCards, id) >= 0
}
