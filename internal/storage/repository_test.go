package storage

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hariz09/game-hub-sub001/internal/game"
)

func stores(t *testing.T) map[string]ProgressStore {
	t.Helper()
	db, err := OpenAndMigrate(filepath.Join(t.TempDir(), "data", "progress.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return map[string]ProgressStore{
		"sqlite": NewSQLiteProgressStore(db),
		"memory": NewMemoryProgressStore(),
	}
}

func TestProgressStore_LoadUnknownProfile(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			p, err := s.Load(context.Background(), "card-battle-progress:nobody")
			require.NoError(t, err)
			assert.Equal(t, "card-battle-progress:nobody", p.ProfileKey)
			assert.Empty(t, p.OwnedCards)
			assert.Zero(t, p.Gold)
		})
	}
}

func TestProgressStore_SaveAndUpsert(t *testing.T) {
	ctx := context.Background()
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			key := "card-battle-progress:arthur"
			p := &game.Progress{ProfileKey: key, Gold: 10}
			p.AddCard("royal_guard")
			p.CompleteStage(1)
			require.NoError(t, s.Save(ctx, p))

			got, err := s.Load(ctx, key)
			require.NoError(t, err)
			assert.Equal(t, 10, got.Gold)
			assert.Equal(t, []string{"royal_guard"}, got.OwnedCards)
			assert.Equal(t, []int{1}, got.CompletedStages)

			got.Gold = 25
			got.CompleteStage(2)
			require.NoError(t, s.Save(ctx, got))

			again, err := s.Load(ctx, key)
			require.NoError(t, err)
			assert.Equal(t, 25, again.Gold)
			assert.Equal(t, []int{1, 2}, again.CompletedStages)
		})
	}
}

func TestProgressStore_EmptyKey(t *testing.T) {
	ctx := context.Background()
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			_, err := s.Load(ctx, "")
			assert.ErrorIs(t, err, ErrEmptyProfileKey)
			assert.ErrorIs(t, s.Save(ctx, &game.Progress{}), ErrEmptyProfileKey)
		})
	}
}

func TestMemoryStoreCopiesOnSave(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryProgressStore()
	p := &game.Progress{ProfileKey: "k", OwnedCards: []string{"a"}}
	require.NoError(t, s.Save(ctx, p))
	p.OwnedCards[0] = "mutated"

	got, err := s.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, got.OwnedCards)
}

func TestProgressStore_ConcurrentUpdates(t *testing.T) {
	ctx := context.Background()
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			const key = "card-battle-progress:gawain"
			var wg sync.WaitGroup
			for i := 0; i < 10; i++ {
				wg.Add(1)
				go func(stage int) {
					defer wg.Done()
					_, err := s.Update(ctx, key, func(p *game.Progress) error {
						p.Gold += 15
						p.CompleteStage(stage%3 + 1)
						return nil
					})
					assert.NoError(t, err)
				}(i)
			}
			wg.Wait()

			got, err := s.Load(ctx, key)
			require.NoError(t, err)
			assert.Equal(t, 150, got.Gold)
			assert.Equal(t, []int{1, 2, 3}, got.CompletedStages)
		})
	}
}

func TestProgressStore_UpdateErrorSavesNothing(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			const key = "card-battle-progress:kay"
			_, err := s.Update(ctx, key, func(p *game.Progress) error {
				p.Gold = 99
				return boom
			})
			assert.ErrorIs(t, err, boom)

			got, err := s.Load(ctx, key)
			require.NoError(t, err)
			assert.Zero(t, got.Gold)

			_, err = s.Update(ctx, "", func(*game.Progress) error { return nil })
			assert.ErrorIs(t, err, ErrEmptyProfileKey)
		})
	}
}
