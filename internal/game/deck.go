package game

import (
	"fmt"
	"strings"
)

// CardTemplate is the catalog definition a Card is minted from.
type CardTemplate struct {
	Key         string      `json:"key" yaml:"-"`
	Name        string      `json:"name" yaml:"name"`
	Type        CardType    `json:"type" yaml:"type"`
	Strength    int         `json:"strength" yaml:"strength"`
	Cost        int         `json:"cost" yaml:"cost"`
	Loyalty     int         `json:"loyalty" yaml:"loyalty"`
	Ability     string      `json:"ability" yaml:"ability"`
	AbilityType AbilityType `json:"ability_type" yaml:"ability_type"`
	Magnitude   int         `json:"magnitude,omitempty" yaml:"magnitude"`
}

// NewCard mints the seq-th instance of tpl for owner. The resulting ID is
// unique as long as (owner, seq) is unique within a session.
func NewCard(tpl CardTemplate, owner string, seq int) Card {
	abilityType := tpl.AbilityType
	if abilityType == "" {
		abilityType = AbilityNone
	}
	return Card{
		ID:          fmt.Sprintf("%s-%s-%d", tpl.Key, strings.ToLower(owner), seq),
		TemplateKey: tpl.Key,
		Name:        tpl.Name,
		Type:        tpl.Type,
		Strength:    tpl.Strength,
		Cost:        tpl.Cost,
		Loyalty:     tpl.Loyalty,
		BaseLoyalty: tpl.Loyalty,
		Ability:     tpl.Ability,
		AbilityType: abilityType,
		Magnitude:   tpl.Magnitude,
	}
}

// BuildDeck mints one card per template in order. Sequence numbers start at
// 1 so card IDs read naturally in the battle log.
func BuildDeck(owner string, templates []CardTemplate) []Card {
	deck := make([]Card, 0, len(templates))
	for i, tpl := range templates {
		deck = append(deck, NewCard(tpl, owner, i+1))
	}
	return deck
}

// Stage is one campaign battle: the enemy the player faces and what a win
// is worth.
type Stage struct {
	Number     int      `json:"number" yaml:"number"`
	Name       string   `json:"name" yaml:"name"`
	EnemyName  string   `json:"enemy_name" yaml:"enemy_name"`
	EnemyHP    int      `json:"enemy_hp" yaml:"enemy_hp"`
	EnemyDeck  []string `json:"enemy_deck" yaml:"enemy_deck"`
	Reward     int      `json:"reward" yaml:"reward"`
	RewardCard string   `json:"reward_card,omitempty" yaml:"reward_card"`
}

// Rules holds the numeric knobs of a battle.
type Rules struct {
	StartingHP        int `json:"starting_hp" yaml:"starting_hp"`
	StartingResources int `json:"starting_resources" yaml:"starting_resources"`
	ResourceRegen     int `json:"resource_regen" yaml:"resource_regen"`
	HandSize          int `json:"hand_size" yaml:"hand_size"`
}

// DefaultRules returns the rules used when the catalog does not override them.
func DefaultRules() Rules {
	return Rules{
		StartingHP:        30,
		StartingResources: 5,
		ResourceRegen:     3,
		HandSize:          5,
	}
}
