package engine

import (
	"strconv"
	"strings"

	"github.com/Hariz09/game-hub-sub001/internal/game"
)

// Effect is the closed set of ability effects a card can carry. The
// unexported method keeps implementations inside this package so the
// switch in ResolveAbility covers every case.
type Effect interface {
	effect()
}

// HealEffect restores caster HP up to MaxHP.
type HealEffect struct{ Amount int }

// DirectDamageEffect hits the target, shield first.
type DirectDamageEffect struct{ Amount int }

// ShieldEffect adds to the caster's shield.
type ShieldEffect struct{ Amount int }

// ResourceGainEffect adds caster resources up to MaxResources.
type ResourceGainEffect struct{ Amount int }

// AssassinateEffect removes the weakest card of the target's army.
type AssassinateEffect struct{}

// PassiveEffect covers boost and rally. Both act through CalculateStrength
// while the card stays deployed, never as a one-shot mutation.
type PassiveEffect struct{ Kind game.AbilityType }

func (HealEffect) effect()         {}
func (DirectDamageEffect) effect() {}
func (ShieldEffect) effect()       {}
func (ResourceGainEffect) effect() {}
func (AssassinateEffect) effect()  {}
func (PassiveEffect) effect()      {}

// magnitudeRule maps a digit found in a card name to an effect size. Rules
// are checked in order; the first match wins.
type magnitudeRule struct {
	digit  string
	amount int
}

var (
	healMagnitudes     = []magnitudeRule{{"5", 5}, {"3", 3}}
	damageMagnitudes   = []magnitudeRule{{"5", 5}, {"4", 4}}
	shieldMagnitudes   = []magnitudeRule{{"3", 3}, {"2", 2}}
	resourceMagnitudes = []magnitudeRule{{"3", 3}, {"2", 2}}
)

const (
	defaultHeal     = 2
	defaultDamage   = 3
	defaultShield   = 1
	defaultResource = 1
)

// magnitude returns the explicit card magnitude when set, otherwise the
// value encoded in the card name.
func magnitude(card game.Card, rules []magnitudeRule, fallback int) int {
	if card.Magnitude > 0 {
		return card.Magnitude
	}
	for _, r := range rules {
		if strings.Contains(card.Name, r.digit) {
			return r.amount
		}
	}
	return fallback
}

// EffectFor maps a card to its effect. Cards with no ability, or with an
// ability type this engine does not know, have no effect.
func EffectFor(card game.Card) (Effect, bool) {
	switch card.AbilityType {
	case game.AbilityHeal:
		return HealEffect{Amount: magnitude(card, healMagnitudes, defaultHeal)}, true
	case game.AbilityDirectDamage:
		return DirectDamageEffect{Amount: magnitude(card, damageMagnitudes, defaultDamage)}, true
	case game.AbilityShield:
		return ShieldEffect{Amount: magnitude(card, shieldMagnitudes, defaultShield)}, true
	case game.AbilityResourceGain:
		return ResourceGainEffect{Amount: magnitude(card, resourceMagnitudes, defaultResource)}, true
	case game.AbilityAssassinate:
		return AssassinateEffect{}, true
	case game.AbilityBoost, game.AbilityRally:
		return PassiveEffect{Kind: card.AbilityType}, true
	default:
		return nil, false
	}
}

// ResolveAbility applies card's effect. The caster is the card's owner and
// target its opponent; they may be the same player. The returned lines
// describe what happened.
func ResolveAbility(card game.Card, caster, target *game.Player) []string {
	eff, ok := EffectFor(card)
	if !ok {
		return nil
	}
	switch e := eff.(type) {
	case HealEffect:
		caster.HP = clamp(caster.HP+e.Amount, 0, caster.MaxHP)
		return []string{card.Name + " heals " + caster.Name + " for " + strconv.Itoa(e.Amount) + " HP"}
	case DirectDamageEffect:
		return []string{applyDirectDamage(card, target, e.Amount)}
	case ShieldEffect:
		caster.Shield += e.Amount
		return []string{card.Name + " grants " + caster.Name + " " + strconv.Itoa(e.Amount) + " shield"}
	case ResourceGainEffect:
		caster.Resources = clamp(caster.Resources+e.Amount, 0, MaxResources)
		return []string{card.Name + " grants " + caster.Name + " " + strconv.Itoa(e.Amount) + " resources"}
	case AssassinateEffect:
		return []string{assassinate(card, target)}
	case PassiveEffect:
		return []string{card.Name + " inspires " + caster.Name + "'s army (" + string(e.Kind) + ")"}
	default:
		return nil
	}
}

// applyDirectDamage lets the shield absorb first: HP drops by
// max(0, amount-shield) and the shield by min(shield, amount).
func applyDirectDamage(card game.Card, target *game.Player, amount int) string {
	absorbed := min(target.Shield, amount)
	dealt := amount - absorbed
	target.Shield = max(0, target.Shield-amount)
	target.HP = clamp(target.HP-dealt, 0, target.MaxHP)

	msg := card.Name + " deals " + strconv.Itoa(dealt) + " damage to " + target.Name
	if absorbed > 0 {
		msg += " (" + strconv.Itoa(absorbed) + " absorbed by shield)"
	}
	return msg
}

// assassinate removes the lowest-strength army card of target. Ties go to
// the first card found.
func assassinate(card game.Card, target *game.Player) string {
	if len(target.PlayedCards) == 0 {
		return card.Name + " finds no one to assassinate in " + target.Name + "'s army"
	}
	weakest := 0
	for i := 1; i < len(target.PlayedCards); i++ {
		if target.PlayedCards[i].Strength < target.PlayedCards[weakest].Strength {
			weakest = i
		}
	}
	victim := target.PlayedCards[weakest]
	target.PlayedCards = removeCardAt(target.PlayedCards, weakest)
	return card.Name + " assassinates " + victim.Name + " from " + target.Name + "'s army"
}

// resolveDeployed runs the ability of every newly deployed card of owner in
// deployment order. A card removed earlier in the turn (assassinated by the
// side that acted first) never acts.
func (tc *turnContext) resolveDeployed(owner *game.Player, deployed []game.Card) {
	target := tc.opponentOf(owner)
	for _, c := range deployed {
		if !isDeployed(owner, c.ID) {
			if _, ok := EffectFor(c); ok {
				tc.add(c.Name + " falls before acting")
			}
			continue
		}
		tc.add(ResolveAbility(c, owner, target)...)
	}
}
