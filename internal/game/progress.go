package game

import (
	"slices"
	"time"

	"gorm.io/gorm"
)

// Progress is the cross-session meta progress of one profile: which card
// templates were earned, which stages were cleared and the gold balance.
type Progress struct {
	ID        uint           `json:"id" gorm:"primarykey"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// ProfileKey is the namespaced key the progress is stored under
	// (e.g. "card-battle-progress:alice").
	ProfileKey      string   `json:"profile_key" gorm:"uniqueIndex"`
	OwnedCards      []string `json:"owned_cards" gorm:"serializer:json"`
	CompletedStages []int    `json:"completed_stages" gorm:"serializer:json"`
	Gold            int      `json:"gold"`
}

// Keep the table name stable regardless of gorm's pluralization rules.
func (Progress) TableName() string { return "battle_progress" }

// HasCompleted reports whether the stage number was already cleared.
func (p *Progress) HasCompleted(stage int) bool {
	return slices.Contains(p.CompletedStages, stage)
}

// CompleteStage marks a stage cleared. It returns false when the stage was
// already recorded.
func (p *Progress) CompleteStage(stage int) bool {
	if p.HasCompleted(stage) {
		return false
	}
	p.CompletedStages = append(p.CompletedStages, stage)
	slices.Sort(p.CompletedStages)
	return true
}

// AddCard records an owned template key. Owning several copies of a
// template is allowed.
func (p *Progress) AddCard(templateKey string) {
	if templateKey == "" {
		return
	}
	p.OwnedCards = append(p.OwnedCards, templateKey)
}
