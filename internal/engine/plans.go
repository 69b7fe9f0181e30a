package engine

import (
	"sort"

	"github.com/Hariz09/game-hub-sub001/internal/game"
)

// SelectEnemyCards builds the enemy's deployment plan for this turn. It is
// a greedy pass over affordable cards sorted by strength+cost (descending,
// ties by card ID) that fills King, then Support, then the Army. The same
// snapshot always yields the same plan.
func SelectEnemyCards(enemy *game.Player) game.EnemySelection {
	candidates := make([]game.Card, 0, len(enemy.Hand))
	for _, c := range AvailableHand(enemy) {
		if CanAfford(c, enemy) {
			candidates = append(candidates, c)
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		vi := candidates[i].Strength + candidates[i].Cost
		vj := candidates[j].Strength + candidates[j].Cost
		if vi == vj {
			return candidates[i].ID < candidates[j].ID
		}
		return vi > vj
	})

	sel := game.EnemySelection{RemainingResources: enemy.Resources}
	armyRoom := MaxArmySize - len(enemy.PlayedCards)
	for i := range candidates {
		c := candidates[i]
		if c.Cost > sel.RemainingResources {
			continue
		}
		switch {
		case sel.KingCard == nil && enemy.King == nil && CanOccupyKing(c):
			sel.KingCard = &c
		case sel.SupportCard == nil && enemy.Support == nil && CanOccupySupport(c):
			sel.SupportCard = &c
		case CanOccupyArmy(c) && len(sel.NormalCards) < armyRoom:
			sel.NormalCards = append(sel.NormalCards, c)
		default:
			continue
		}
		sel.RemainingResources -= c.Cost
	}
	return sel
}
