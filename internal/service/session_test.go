package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hariz09/game-hub-sub001/internal/game"
)

func TestStartSession(t *testing.T) {
	s := newTestSession(t, newMockStore(), 1)
	snap := s.Snapshot()

	assert.Equal(t, game.PhasePlayerTurn, snap.Phase)
	assert.Equal(t, 1, snap.Turn)
	assert.Equal(t, "Arthur", snap.Player.Name)
	assert.Equal(t, "Bandit", snap.Enemy.Name)
	assert.Equal(t, 30, snap.Player.HP)
	assert.Equal(t, 10, snap.Enemy.HP)
	require.Len(t, snap.Player.Hand, 5)
	assert.Equal(t, "giant-player-1", snap.Player.Hand[0].ID)
	assert.Len(t, snap.Player.Deck, 2)
	require.NotNil(t, snap.EnemySelection)
	assert.Len(t, snap.EnemySelection.NormalCards, 4, "enemy fills the army with free peasants")
	assert.NotEmpty(t, snap.BattleLog)
}

func TestStartSessionAddsOwnedCards(t *testing.T) {
	store := newMockStore()
	store.data["card-battle-progress:arthur"] = game.Progress{ProfileKey: "card-battle-progress:arthur", OwnedCards: []string{"court_healer"}}

	s := newTestSession(t, store, 1)
	assert.Equal(t, 8, s.Snapshot().Player.CardCount())
}

func TestStartSessionLoadError(t *testing.T) {
	cat := testCatalog(t)
	st, _ := cat.Stage(1)
	boom := errors.New("disk on fire")
	s := NewSession("s-1", "k", "Arthur", st, cat, failingStore{err: boom}, WithShuffle(noShuffle))

	err := s.StartSession(context.Background())
	assert.ErrorIs(t, err, boom)
}

type failingStore struct{ err error }

func (f failingStore) Load(context.Context, string) (*game.Progress, error) { return nil, f.err }
func (f failingStore) Save(context.Context, *game.Progress) error           { return f.err }
func (f failingStore) Update(context.Context, string, func(*game.Progress) error) (*game.Progress, error) {
	return nil, f.err
}

func TestSelectPlayerCards(t *testing.T) {
	tests := []struct {
		name      string
		cards     []string
		king      string
		support   string
		wantErr   error
		wantCards int
	}{
		{name: "king and support", king: "baron-player-2", support: "court_healer-player-3"},
		{name: "army only", cards: []string{"giant-player-1", "pikeman-player-4"}, wantCards: 2},
		{name: "over budget", cards: []string{"pikeman-player-4"}, king: "baron-player-2", support: "court_healer-player-3", wantErr: ErrIllegalSelection},
		{name: "unknown card", cards: []string{"dragon-player-99"}, wantErr: ErrIllegalSelection},
		{name: "support as king", king: "court_healer-player-3", wantErr: ErrIllegalSelection},
		{name: "same card twice", cards: []string{"pikeman-player-4", "pikeman-player-4"}, wantErr: ErrIllegalSelection},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(t, newMockStore(), 1)
			err := s.SelectPlayerCards(tt.cards, tt.king, tt.support)
			snap := s.Snapshot()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.True(t, snap.PendingSelection.Empty(), "no partial selection")
				assert.Equal(t, 5, snap.Player.Resources)
				return
			}
			require.NoError(t, err)
			assert.Len(t, snap.PendingSelection.NormalCards, tt.wantCards)
			assert.Equal(t, 5, snap.Player.Resources, "selection does not spend")
		})
	}
}

func TestConfirmTurnContinues(t *testing.T) {
	s := newTestSession(t, newMockStore(), 2)
	require.NoError(t, s.SelectPlayerCards([]string{"pikeman-player-4"}, "baron-player-2", ""))

	report, err := s.ConfirmTurn(context.Background())
	require.NoError(t, err)
	assert.False(t, report.GameOver)
	assert.Equal(t, 6, report.PlayerStrength)
	assert.Equal(t, 8, report.EnemyStrength)

	snap := s.Snapshot()
	assert.Equal(t, game.PhasePlayerTurn, snap.Phase)
	assert.Equal(t, 2, snap.Turn)
	assert.Equal(t, 28, snap.Player.HP)
	assert.Equal(t, 4, snap.Player.Resources)
	require.NotNil(t, snap.Player.King)
	assert.Equal(t, "baron-player-2", snap.Player.King.ID)
	require.Len(t, snap.Player.PlayedCards, 1)
	assert.Equal(t, 2, snap.Player.PlayedCards[0].Loyalty)
	assert.Len(t, snap.Player.Hand, 5)
	assert.Empty(t, snap.Player.Deck)
	require.NotNil(t, snap.EnemySelection, "enemy already chose for the next turn")
	assert.True(t, snap.PendingSelection.Empty())
	assert.Equal(t, 6, snap.PlayerStrength)
}

func TestConfirmTurnVictoryRecordsProgress(t *testing.T) {
	store := newMockStore()
	s := newTestSession(t, store, 1)
	require.NoError(t, s.SelectPlayerCards([]string{"giant-player-1"}, "", ""))

	report, err := s.ConfirmTurn(context.Background())
	require.NoError(t, err)
	assert.True(t, report.GameOver)
	assert.Equal(t, game.WinnerPlayer, report.Winner)

	snap := s.Snapshot()
	assert.Equal(t, game.PhaseGameOver, snap.Phase)
	assert.Equal(t, game.WinnerPlayer, snap.Winner)
	assert.Contains(t, snap.BattleLog, "Arthur earns 15 gold and recruits Court Healer")

	p, ok := store.get("card-battle-progress:arthur")
	require.True(t, ok)
	assert.Equal(t, []int{1}, p.CompletedStages)
	assert.Equal(t, 15, p.Gold)
	assert.Equal(t, []string{"court_healer"}, p.OwnedCards)

	assert.ErrorIs(t, s.SelectPlayerCards(nil, "", ""), ErrSessionOver)
	_, err = s.ConfirmTurn(context.Background())
	assert.ErrorIs(t, err, ErrSessionOver)
	_, err = s.RetrieveCard(game.ZoneKing)
	assert.ErrorIs(t, err, ErrSessionOver)
}

func TestRepeatVictoryPaysGoldOnly(t *testing.T) {
	store := newMockStore()
	s := newTestSession(t, store, 1)
	for i := 0; i < 2; i++ {
		require.NoError(t, s.SelectPlayerCards([]string{"giant-player-1"}, "", ""))
		_, err := s.ConfirmTurn(context.Background())
		require.NoError(t, err)
		require.NoError(t, s.ResetSession(context.Background()))
	}

	p, _ := store.get("card-battle-progress:arthur")
	assert.Equal(t, 30, p.Gold)
	assert.Equal(t, []string{"court_healer"}, p.OwnedCards)
	assert.Equal(t, 2, store.saves)
}

func TestConfirmTurnSaveFailure(t *testing.T) {
	store := newMockStore()
	s := newTestSession(t, store, 1)
	store.saveErr = errors.New("read-only")
	require.NoError(t, s.SelectPlayerCards([]string{"giant-player-1"}, "", ""))

	report, err := s.ConfirmTurn(context.Background())
	require.Error(t, err)
	assert.True(t, report.GameOver)
	assert.Equal(t, game.PhaseGameOver, s.Snapshot().Phase, "the battle result stands")
}

func TestRetrieveCard(t *testing.T) {
	s := newTestSession(t, newMockStore(), 2)
	require.NoError(t, s.SelectPlayerCards(nil, "baron-player-2", ""))
	_, err := s.ConfirmTurn(context.Background())
	require.NoError(t, err)

	c, err := s.RetrieveCard(game.ZoneKing)
	require.NoError(t, err)
	assert.Equal(t, "baron-player-2", c.ID)
	snap := s.Snapshot()
	assert.Nil(t, snap.Player.King)
	assert.Equal(t, "baron-player-2", snap.Player.Hand[len(snap.Player.Hand)-1].ID)

	_, err = s.RetrieveCard(game.ZoneKing)
	assert.ErrorIs(t, err, ErrZoneEmpty)
	_, err = s.RetrieveCard(game.ZoneArmy)
	assert.ErrorIs(t, err, ErrUnknownZone)
}

func TestResetSession(t *testing.T) {
	s := newTestSession(t, newMockStore(), 1)
	require.NoError(t, s.SelectPlayerCards([]string{"giant-player-1"}, "", ""))
	_, err := s.ConfirmTurn(context.Background())
	require.NoError(t, err)
	require.Equal(t, game.PhaseGameOver, s.Snapshot().Phase)

	require.NoError(t, s.ResetSession(context.Background()))
	snap := s.Snapshot()
	assert.Equal(t, game.PhasePlayerTurn, snap.Phase)
	assert.Equal(t, 1, snap.Turn)
	assert.Empty(t, snap.Winner)
	assert.Equal(t, 10, snap.Enemy.HP)
	assert.Contains(t, snap.BattleLog, "The battle is reset")
	// The reward card won in the first battle is now part of the deck.
	assert.Equal(t, 8, snap.Player.CardCount())
}

func TestSnapshotIsIsolated(t *testing.T) {
	s := newTestSession(t, newMockStore(), 1)
	snap := s.Snapshot()
	snap.Player.Hand[0].Name = "Tampered"
	snap.Player.HP = 1

	again := s.Snapshot()
	assert.Equal(t, "Giant", again.Player.Hand[0].Name)
	assert.Equal(t, 30, again.Player.HP)
}

func TestTail(t *testing.T) {
	lines := make([]string, 60)
	for i := range lines {
		lines[i] = string(rune('a' + i%26))
	}
	got := tail(lines, 50)
	assert.Len(t, got, 50)
	assert.Equal(t, lines[10], got[0])
	assert.Equal(t, []string{"x"}, tail([]string{"x"}, 50))
}

func TestConcurrentSessionsOfOneProfileKeepBothRewards(t *testing.T) {
	store := newMockStore()
	cat := testCatalog(t)
	st, ok := cat.Stage(1)
	require.True(t, ok)

	a := NewSession("s-a", "card-battle-progress:arthur", "Arthur", st, cat, store, WithShuffle(noShuffle))
	b := NewSession("s-b", "card-battle-progress:arthur", "Arthur", st, cat, store, WithShuffle(noShuffle))
	require.NoError(t, a.StartSession(context.Background()))
	require.NoError(t, b.StartSession(context.Background()))

	for _, s := range []*Session{a, b} {
		require.NoError(t, s.SelectPlayerCards([]string{"giant-player-1"}, "", ""))
		report, err := s.ConfirmTurn(context.Background())
		require.NoError(t, err)
		require.Equal(t, game.WinnerPlayer, report.Winner)
	}

	p, ok := store.get("card-battle-progress:arthur")
	require.True(t, ok)
	assert.Equal(t, 30, p.Gold)
	assert.Equal(t, []int{1}, p.CompletedStages)
	assert.Equal(t, []string{"court_healer"}, p.OwnedCards, "the reward card is granted once")
	assert.Contains(t, b.Snapshot().BattleLog, "Arthur earns 15 gold")
	assert.Equal(t, 30, b.Snapshot().Progress.Gold)
}

func TestSnapshotVersionGrowsWithChanges(t *testing.T) {
	s := newTestSession(t, newMockStore(), 1)
	v0 := s.Snapshot().Version
	assert.Equal(t, v0, s.Snapshot().Version, "reading does not bump the version")

	require.NoError(t, s.SelectPlayerCards([]string{"giant-player-1"}, "", ""))
	assert.Greater(t, s.Snapshot().Version, v0)
}
