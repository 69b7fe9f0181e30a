package engine

import "github.com/Hariz09/game-hub-sub001/internal/game"

// Deploy validates sel against p and then moves the selected cards from
// hand into their zones, paying their cost. On error p is left untouched.
// The returned cards are in deployment order: King, Support, Army.
func Deploy(p *game.Player, sel game.Selection) ([]game.Card, error) {
	if err := ValidateSelection(p, sel); err != nil {
		return nil, err
	}

	deployed := make([]game.Card, 0, len(sel.NormalCards)+2)
	take := func(id string) game.Card {
		i := indexOfCard(p.Hand, id)
		c := p.Hand[i]
		p.Hand = removeCardAt(p.Hand, i)
		p.Resources -= c.Cost
		deployed = append(deployed, c)
		return c
	}

	if sel.KingCard != nil {
		k := take(sel.KingCard.ID)
		p.King = &k
	}
	if sel.SupportCard != nil {
		s := take(sel.SupportCard.ID)
		p.Support = &s
	}
	for _, c := range sel.NormalCards {
		p.PlayedCards = append(p.PlayedCards, take(c.ID))
	}
	p.ClampResources()
	return deployed, nil
}

// Retrieve returns the King or Support card to p's hand, freeing the slot.
// It reports false when the zone is empty or is not a single-card slot.
func Retrieve(p *game.Player, zone game.Zone) (game.Card, bool) {
	var slot **game.Card
	switch zone {
	case game.ZoneKing:
		slot = &p.King
	case game.ZoneSupport:
		slot = &p.Support
	default:
		return game.Card{}, false
	}
	if *slot == nil {
		return game.Card{}, false
	}
	c := **slot
	*slot = nil
	p.Hand = append(p.Hand, c)
	return c, true
}

// Regenerate adds the per-turn resource income, capped at MaxResources.
func Regenerate(p *game.Player, amount int) {
	p.Resources += amount
	p.ClampResources()
}

// DrawUpTo draws from the front of the deck until the available hand holds
// n cards or the deck runs out. It returns how many cards were drawn; an
// empty deck is not an error.
func DrawUpTo(p *game.Player, n int) int {
	drawn := 0
	for len(AvailableHand(p)) < n && len(p.Deck) > 0 {
		p.Hand = append(p.Hand, p.Deck[0])
		p.Deck = p.Deck[1:]
		drawn++
	}
	return drawn
}
