package engine

import (
	"strconv"

	"github.com/Hariz09/game-hub-sub001/internal/game"
)

// BattleOutcome is the result of comparing both armies.
type BattleOutcome struct {
	PlayerStrength int
	EnemyStrength  int
	// Damage is the HP lost by the weaker side; zero on a tie.
	Damage int
	// Loser is nil on a tie.
	Loser *game.Player
}

// ResolveBattle compares both sides' strength. The weaker side loses HP
// equal to the difference. Battle damage is not absorbed by shields.
func ResolveBattle(player, enemy *game.Player) BattleOutcome {
	out := BattleOutcome{
		PlayerStrength: CalculateStrength(player),
		EnemyStrength:  CalculateStrength(enemy),
	}
	diff := out.PlayerStrength - out.EnemyStrength
	switch {
	case diff > 0:
		out.Damage, out.Loser = diff, enemy
	case diff < 0:
		out.Damage, out.Loser = -diff, player
	default:
		return out
	}
	out.Loser.HP = clamp(out.Loser.HP-out.Damage, 0, out.Loser.MaxHP)
	return out
}

func (tc *turnContext) execBattle() BattleOutcome {
	out := ResolveBattle(tc.player, tc.enemy)
	tc.add(tc.player.Name + " army strength " + strconv.Itoa(out.PlayerStrength) +
		" vs " + tc.enemy.Name + " army strength " + strconv.Itoa(out.EnemyStrength))
	if out.Loser == nil {
		tc.add("The armies clash to a standstill")
		return out
	}
	winner := tc.opponentOf(out.Loser)
	tc.add(winner.Name + " wins the clash: " + out.Loser.Name + " takes " + strconv.Itoa(out.Damage) + " damage")
	return out
}
