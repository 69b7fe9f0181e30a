package service

import (
	"context"
	"fmt"

	"github.com/Hariz09/game-hub-sub001/internal/constants"
	"github.com/Hariz09/game-hub-sub001/internal/dedupe"
	"github.com/Hariz09/game-hub-sub001/internal/game"
	"github.com/Hariz09/game-hub-sub001/internal/logging"
	"github.com/Hariz09/game-hub-sub001/internal/storage"
)

// recordVictory credits the stage reward to the stored progress. Gold is
// paid for every win; the reward card only on the first clear. The reward
// is applied to the latest stored record, not the copy loaded at start, so
// other sessions of the same profile keep theirs.
func (s *Session) recordVictory(ctx context.Context) error {
	var first bool
	p, err := s.store.Update(ctx, s.ProfileKey, func(p *game.Progress) error {
		first = p.CompleteStage(s.Stage.Number)
		p.Gold += s.Stage.Reward
		if first {
			p.AddCard(s.Stage.RewardCard)
		}
		return nil
	})
	if err != nil {
		logging.Error("failed to save progress", err, logging.Fields{
			constants.LogFieldSessionID: s.ID,
			constants.LogFieldProfile:   s.ProfileKey,
		})
		return fmt.Errorf("save progress %s: %w", s.ProfileKey, err)
	}
	s.progress = p

	msg := fmt.Sprintf("%s earns %d gold", s.Player.Name, s.Stage.Reward)
	if first && s.Stage.RewardCard != "" {
		if tpl, ok := s.catalog.Template(s.Stage.RewardCard); ok {
			msg += " and recruits " + tpl.Name
		}
	}
	s.appendLog(msg)
	return nil
}

// sharedLoads collapses concurrent loads of the same profile into one
// store call. Every caller receives its own copy. The shared call is
// detached from the first caller's cancellation so one aborted request
// does not fail the others waiting on it.
type sharedLoads struct {
	storage.ProgressStore
}

func (l sharedLoads) Load(ctx context.Context, profileKey string) (*game.Progress, error) {
	v, err, _ := dedupe.ProgressGroup.Do(profileKey, func() (interface{}, error) {
		return l.ProgressStore.Load(context.WithoutCancel(ctx), profileKey)
	})
	if err != nil {
		return nil, err
	}
	p := *v.(*game.Progress)
	p.OwnedCards = append([]string(nil), p.OwnedCards...)
	p.CompletedStages = append([]int(nil), p.CompletedStages...)
	return &p, nil
}
