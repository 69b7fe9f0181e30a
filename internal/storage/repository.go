package storage

import (
	"context"
	"errors"

	"github.com/Hariz09/game-hub-sub001/internal/game"
)

// ErrEmptyProfileKey is returned when a load or save names no profile.
var ErrEmptyProfileKey = errors.New("empty profile key")

// ProgressStore persists cross-session meta progress. Load never fails for
// an unknown profile; it returns empty progress for that key instead.
type ProgressStore interface {
	Load(ctx context.Context, profileKey string) (*game.Progress, error)
	Save(ctx context.Context, p *game.Progress) error
	// Update applies fn to the stored progress of profileKey and saves the
	// result. Concurrent updates of one profile are serialized, so none is
	// lost. Nothing is saved when fn returns an error.
	Update(ctx context.Context, profileKey string, fn func(*game.Progress) error) (*game.Progress, error)
}
