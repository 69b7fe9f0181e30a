package engine

import (
	"errors"
	"fmt"

	"github.com/Hariz09/game-hub-sub001/internal/game"
)

const (
	// MaxArmySize caps the Army zone.
	MaxArmySize = 4
	MaxResources = game.MaxResources
)

// ErrIllegalSelection is returned when a deployment plan breaks a legality
// rule. The wrapped message names the offending card.
var ErrIllegalSelection = errors.New("illegal selection")

// IsDeployed reports whether card occupies one of p's zones.
func IsDeployed(card game.Card, p *game.Player) bool {
	if indexOfCard(p.PlayedCards, card.ID) >= 0 {
		return true
	}
	if p.King != nil && p.King.ID == card.ID {
		return true
	}
	return p.Support != nil && p.Support.ID == card.ID
}

// AvailableHand returns the hand cards that are not deployed. It is the
// only legal source of cards to deploy.
func AvailableHand(p *game.Player) []game.Card {
	out := make([]game.Card, 0, len(p.Hand))
	for _, c := range p.Hand {
		if !IsDeployed(c, p) {
			out = append(out, c)
		}
	}
	return out
}

func CanAfford(card game.Card, p *game.Player) bool {
	return card.Cost <= p.Resources
}

func CanOccupyKing(card game.Card) bool {
	return card.Type == game.CardTypeNobility || card.Type == game.CardTypeLegendary
}

func CanOccupySupport(card game.Card) bool {
	return card.Type == game.CardTypeSupport || card.Type == game.CardTypeLegendary
}

// CanOccupyArmy rejects support-only cards.
func CanOccupyArmy(card game.Card) bool {
	return card.Type != game.CardTypeSupport
}

// ValidateSelection checks a plan against p without mutating anything.
// Costs are checked cumulatively against p.Resources.
func ValidateSelection(p *game.Player, sel game.Selection) error {
	available := AvailableHand(p)
	seen := make(map[string]struct{}, len(sel.NormalCards)+2)
	total := 0

	check := func(c game.Card) error {
		if _, dup := seen[c.ID]; dup {
			return fmt.Errorf("%w: card %s selected twice", ErrIllegalSelection, c.ID)
		}
		seen[c.ID] = struct{}{}
		if indexOfCard(available, c.ID) < 0 {
			return fmt.Errorf("%w: card %s is not in the available hand", ErrIllegalSelection, c.ID)
		}
		if !CanAfford(c, p) {
			return fmt.Errorf("%w: card %s costs %d, only %d resources", ErrIllegalSelection, c.ID, c.Cost, p.Resources)
		}
		total += c.Cost
		return nil
	}

	if len(sel.NormalCards) > MaxArmySize {
		return fmt.Errorf("%w: at most %d army cards, got %d", ErrIllegalSelection, MaxArmySize, len(sel.NormalCards))
	}
	if sel.KingCard != nil {
		if p.King != nil {
			return fmt.Errorf("%w: king zone is occupied by %s", ErrIllegalSelection, p.King.Name)
		}
		if !CanOccupyKing(*sel.KingCard) {
			return fmt.Errorf("%w: %s cannot occupy the king zone", ErrIllegalSelection, sel.KingCard.Name)
		}
		if err := check(*sel.KingCard); err != nil {
			return err
		}
	}
	if sel.SupportCard != nil {
		if p.Support != nil {
			return fmt.Errorf("%w: support zone is occupied by %s", ErrIllegalSelection, p.Support.Name)
		}
		if !CanOccupySupport(*sel.SupportCard) {
			return fmt.Errorf("%w: %s cannot occupy the support zone", ErrIllegalSelection, sel.SupportCard.Name)
		}
		if err := check(*sel.SupportCard); err != nil {
			return err
		}
	}
	if len(p.PlayedCards)+len(sel.NormalCards) > MaxArmySize {
		return fmt.Errorf("%w: army zone holds %d of %d cards", ErrIllegalSelection, len(p.PlayedCards), MaxArmySize)
	}
	for _, c := range sel.NormalCards {
		if !CanOccupyArmy(c) {
			return fmt.Errorf("%w: %s cannot join the army", ErrIllegalSelection, c.Name)
		}
		if err := check(c); err != nil {
			return err
		}
	}
	if total > p.Resources {
		return fmt.Errorf("%w: selection costs %d, only %d resources", ErrIllegalSelection, total, p.Resources)
	}
	return nil
}
