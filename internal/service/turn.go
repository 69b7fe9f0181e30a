package service

import (
	"context"
	"fmt"

	"github.com/Hariz09/game-hub-sub001/internal/constants"
	"github.com/Hariz09/game-hub-sub001/internal/engine"
	"github.com/Hariz09/game-hub-sub001/internal/game"
	"github.com/Hariz09/game-hub-sub001/internal/logging"
)

// requirePlayerTurn must be called with s.mu held.
func (s *Session) requirePlayerTurn() error {
	switch s.Phase {
	case game.PhasePlayerTurn:
		return nil
	case game.PhaseGameOver:
		return ErrSessionOver
	default:
		return ErrWrongPhase
	}
}

// SelectPlayerCards records the player's plan for this turn. Cards are
// named by ID; kingID and supportID may be empty. The plan is validated
// against the current hand and resources and nothing changes on error.
func (s *Session) SelectPlayerCards(cardIDs []string, kingID, supportID string) error {
	s.mu.Lock()
	s.touch()
	if err := s.requirePlayerTurn(); err != nil {
		s.mu.Unlock()
		return err
	}
	sel, err := s.buildSelection(cardIDs, kingID, supportID)
	if err == nil {
		err = engine.ValidateSelection(s.Player, sel)
	}
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.PendingSelection = sel
	snap := s.changedLocked()
	s.mu.Unlock()

	s.notify(snap)
	return nil
}

func (s *Session) buildSelection(cardIDs []string, kingID, supportID string) (game.Selection, error) {
	var sel game.Selection
	lookup := func(id string) (*game.Card, error) {
		c, ok := engine.FindInHand(s.Player, id)
		if !ok {
			return nil, fmt.Errorf("%w: card %s is not in hand", ErrIllegalSelection, id)
		}
		return &c, nil
	}
	if kingID != "" {
		c, err := lookup(kingID)
		if err != nil {
			return sel, err
		}
		sel.KingCard = c
	}
	if supportID != "" {
		c, err := lookup(supportID)
		if err != nil {
			return sel, err
		}
		sel.SupportCard = c
	}
	for _, id := range cardIDs {
		c, err := lookup(id)
		if err != nil {
			return sel, err
		}
		sel.NormalCards = append(sel.NormalCards, *c)
	}
	return sel, nil
}

// RetrieveCard returns the King or Support card to the player's hand so the
// slot can be filled again. The pending plan is cleared.
func (s *Session) RetrieveCard(zone game.Zone) (game.Card, error) {
	s.mu.Lock()
	s.touch()
	if err := s.requirePlayerTurn(); err != nil {
		s.mu.Unlock()
		return game.Card{}, err
	}
	if zone != game.ZoneKing && zone != game.ZoneSupport {
		s.mu.Unlock()
		return game.Card{}, ErrUnknownZone
	}
	c, ok := engine.Retrieve(s.Player, zone)
	if !ok {
		s.mu.Unlock()
		return game.Card{}, ErrZoneEmpty
	}
	s.PendingSelection = game.Selection{}
	s.appendLog(fmt.Sprintf("%s retrieves %s from the %s zone", s.Player.Name, c.Name, zone))
	snap := s.changedLocked()
	s.mu.Unlock()

	s.notify(snap)
	return c, nil
}

// ConfirmTurn commits the pending plan and runs the battle phase. When the
// battle does not end the game the next turn is prepared: resources
// regenerate, both sides draw and the enemy picks its next plan.
func (s *Session) ConfirmTurn(ctx context.Context) (engine.TurnReport, error) {
	s.mu.Lock()
	s.touch()
	if err := s.requirePlayerTurn(); err != nil {
		s.mu.Unlock()
		return engine.TurnReport{}, err
	}

	var enemyPlan game.Selection
	if s.EnemySelection != nil {
		enemyPlan = s.EnemySelection.Selection
	}
	s.Phase = game.PhaseBattle
	report, err := engine.ResolveTurn(s.Player, s.Enemy, s.PendingSelection, enemyPlan)
	if err != nil {
		s.Phase = game.PhasePlayerTurn
		s.mu.Unlock()
		return engine.TurnReport{}, err
	}
	s.LastReport = &report
	s.EnemySelection = nil
	s.PendingSelection = game.Selection{}
	s.appendLog(report.Log...)

	fields := logging.Fields{
		constants.LogFieldSessionID: s.ID,
		constants.LogFieldTurn:      s.Turn,
	}
	var saveErr error
	if report.GameOver {
		s.Phase = game.PhaseGameOver
		s.Winner = report.Winner
		fields[constants.LogFieldWinner] = report.Winner
		logging.Info("session finished", fields)
		if report.Winner == game.WinnerPlayer {
			saveErr = s.recordVictory(ctx)
		}
	} else {
		rules := s.catalog.Rules
		s.Turn++
		engine.Regenerate(s.Player, rules.ResourceRegen)
		engine.Regenerate(s.Enemy, rules.ResourceRegen)
		engine.DrawUpTo(s.Player, rules.HandSize)
		engine.DrawUpTo(s.Enemy, rules.HandSize)
		s.beginTurn()
		logging.Debug("turn resolved", fields)
	}
	snap := s.changedLocked()
	s.mu.Unlock()

	s.notify(snap)
	if saveErr != nil {
		return report, saveErr
	}
	return report, nil
}
