package storage

import (
	"context"
	"errors"
	"sync"

	"github.com/Hariz09/game-hub-sub001/internal/game"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type sqliteProgressStore struct {
	db *gorm.DB
	// sqlite allows one writer; updates queue here instead of failing
	// with SQLITE_BUSY inside the transaction.
	mu sync.Mutex
}

func NewSQLiteProgressStore(db *gorm.DB) ProgressStore {
	return &sqliteProgressStore{db: db}
}

func (r *sqliteProgressStore) Load(ctx context.Context, profileKey string) (*game.Progress, error) {
	if profileKey == "" {
		return nil, ErrEmptyProfileKey
	}
	return loadProgress(r.db.WithContext(ctx), profileKey)
}

// Save upserts on profile_key so callers never need to know whether the
// profile was stored before.
func (r *sqliteProgressStore) Save(ctx context.Context, p *game.Progress) error {
	if p == nil || p.ProfileKey == "" {
		return ErrEmptyProfileKey
	}
	return upsertProgress(r.db.WithContext(ctx), p)
}

func (r *sqliteProgressStore) Update(ctx context.Context, profileKey string, fn func(*game.Progress) error) (*game.Progress, error) {
	if profileKey == "" {
		return nil, ErrEmptyProfileKey
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	var out *game.Progress
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		p, err := loadProgress(tx, profileKey)
		if err != nil {
			return err
		}
		if err := fn(p); err != nil {
			return err
		}
		p.ProfileKey = profileKey
		if err := upsertProgress(tx, p); err != nil {
			return err
		}
		out = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func loadProgress(db *gorm.DB, profileKey string) (*game.Progress, error) {
	var p game.Progress
	if err := db.Where("profile_key = ?", profileKey).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &game.Progress{ProfileKey: profileKey}, nil
		}
		return nil, err
	}
	return &p, nil
}

func upsertProgress(db *gorm.DB, p *game.Progress) error {
	rec := game.Progress{
		ProfileKey:      p.ProfileKey,
		OwnedCards:      p.OwnedCards,
		CompletedStages: p.CompletedStages,
		Gold:            p.Gold,
	}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "profile_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"owned_cards", "completed_stages", "gold", "updated_at"}),
	}).Create(&rec).Error
	if err != nil {
		return err
	}
	if p.ID == 0 {
		p.ID = rec.ID
	}
	return nil
}
