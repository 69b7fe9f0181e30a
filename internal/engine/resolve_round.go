package engine

import (
	"fmt"

	"github.com/Hariz09/game-hub-sub001/internal/game"
)

// TurnReport summarizes one battle phase.
type TurnReport struct {
	Log            []string `json:"log"`
	Summary        string   `json:"summary"`
	PlayerStrength int      `json:"player_strength"`
	EnemyStrength  int      `json:"enemy_strength"`
	Damage         int      `json:"damage"`
	// Winner is set only when the turn ended the game.
	Winner   string `json:"winner,omitempty"`
	GameOver bool   `json:"game_over"`
}

// ResolveTurn runs the battle phase. Both plans are deployed (player
// first), abilities fire for every newly deployed card, strengths are
// compared and battle damage applied. If either side is out of HP the game
// ends there; otherwise both sides go through the loyalty pass.
//
// Plans are validated before anything is mutated: an illegal plan returns
// an error and leaves both players unchanged.
func ResolveTurn(player, enemy *game.Player, playerPlan, enemyPlan game.Selection) (TurnReport, error) {
	if err := ValidateSelection(player, playerPlan); err != nil {
		return TurnReport{}, fmt.Errorf("%s: %w", player.Name, err)
	}
	if err := ValidateSelection(enemy, enemyPlan); err != nil {
		return TurnReport{}, fmt.Errorf("%s: %w", enemy.Name, err)
	}

	tc := newTurnContext(player, enemy)

	// Validated above; Deploy cannot fail here.
	playerDeployed, _ := Deploy(player, playerPlan)
	enemyDeployed, _ := Deploy(enemy, enemyPlan)
	tc.logDeployment(player, playerDeployed)
	tc.logDeployment(enemy, enemyDeployed)

	tc.resolveDeployed(player, playerDeployed)
	tc.resolveDeployed(enemy, enemyDeployed)

	out := tc.execBattle()
	report := TurnReport{
		PlayerStrength: out.PlayerStrength,
		EnemyStrength:  out.EnemyStrength,
		Damage:         out.Damage,
	}

	if winner, over := decideWinner(player, enemy); over {
		report.Winner, report.GameOver = winner, true
		tc.logGameOver(winner)
	} else {
		tc.add(ProcessLoyalty(player, enemy)...)
		tc.add(ProcessLoyalty(enemy, player)...)
	}

	report.Log = tc.log
	report.Summary = tc.joinLog()
	return report, nil
}

// decideWinner reports the winner once either side has no HP left. Both
// sides falling together is a draw.
func decideWinner(player, enemy *game.Player) (string, bool) {
	switch {
	case player.Defeated() && enemy.Defeated():
		return game.WinnerDraw, true
	case enemy.Defeated():
		return game.WinnerPlayer, true
	case player.Defeated():
		return game.WinnerEnemy, true
	}
	return "", false
}

func (tc *turnContext) logDeployment(p *game.Player, deployed []game.Card) {
	if len(deployed) == 0 {
		tc.add(p.Name + " deploys nothing")
		return
	}
	for _, c := range deployed {
		zone := "the army"
		switch {
		case p.King != nil && p.King.ID == c.ID:
			zone = "the king zone"
		case p.Support != nil && p.Support.ID == c.ID:
			zone = "the support zone"
		}
		tc.add(fmt.Sprintf("%s deploys %s to %s", p.Name, c.Name, zone))
	}
}

func (tc *turnContext) logGameOver(winner string) {
	switch winner {
	case game.WinnerPlayer:
		tc.add("Victory for " + tc.player.Name)
	case game.WinnerEnemy:
		tc.add("Victory for " + tc.enemy.Name)
	default:
		tc.add("Both sides fall. The battle ends in a draw")
	}
}
