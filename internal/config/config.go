package config

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/Hariz09/game-hub-sub001/internal/game"
	"github.com/Hariz09/game-hub-sub001/internal/keys"

	"gopkg.in/yaml.v3"
)

//go:embed default_catalog.yaml
var defaultCatalog []byte

type deckEntry struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

type rawCatalog struct {
	CardList    []game.CardTemplate `yaml:"card_list"`
	StarterDeck []deckEntry         `yaml:"starter_deck"`
	Stages      []game.Stage        `yaml:"stages"`
	Rules       *game.Rules         `yaml:"rules"`
}

// Catalog holds every card template, the player's starter deck, the
// campaign stages and the battle rules.
type Catalog struct {
	Cards  []game.CardTemplate `json:"cards"`
	Stages []game.Stage        `json:"stages"`
	Rules  game.Rules          `json:"rules"`
	// StarterDeck lists template keys, one entry per copy.
	StarterDeck []string `json:"starter_deck"`

	byKey map[string]game.CardTemplate
}

// LoadCatalog reads the YAML catalog at path. It requires the key
// `card_list` (snake_case).
func LoadCatalog(path string) (*Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return ParseCatalog(b, path)
}

// DefaultCatalog returns the built-in catalog.
func DefaultCatalog() *Catalog {
	c, err := ParseCatalog(defaultCatalog, "default_catalog.yaml")
	if err != nil {
		panic(fmt.Sprintf("built-in catalog is invalid: %v", err))
	}
	return c
}

// ParseCatalog decodes and validates catalog YAML. source names the input
// in error messages.
func ParseCatalog(b []byte, source string) (*Catalog, error) {
	var rc rawCatalog
	if err := yaml.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", source, err)
	}
	if len(rc.CardList) == 0 {
		return nil, fmt.Errorf("config file %s: card_list is empty (provide 'card_list' array)", source)
	}

	c := &Catalog{
		Cards: make([]game.CardTemplate, 0, len(rc.CardList)),
		byKey: make(map[string]game.CardTemplate, len(rc.CardList)),
		Rules: game.DefaultRules(),
	}
	for _, tpl := range rc.CardList {
		if strings.TrimSpace(tpl.Name) == "" {
			return nil, fmt.Errorf("config file %s: card entry missing 'name'", source)
		}
		tpl.Key = keys.TemplateKey(tpl.Name)
		if _, exists := c.byKey[tpl.Key]; exists {
			return nil, fmt.Errorf("config file %s: duplicate card name '%s'", source, tpl.Name)
		}
		if !tpl.Type.Valid() {
			return nil, fmt.Errorf("config file %s: card '%s' has unknown type '%s'", source, tpl.Name, tpl.Type)
		}
		if !tpl.AbilityType.Valid() {
			return nil, fmt.Errorf("config file %s: card '%s' has unknown ability_type '%s'", source, tpl.Name, tpl.AbilityType)
		}
		if tpl.AbilityType == "" {
			tpl.AbilityType = game.AbilityNone
		}
		if tpl.Strength < 0 || tpl.Cost < 0 || tpl.Loyalty <= 0 || tpl.Magnitude < 0 {
			return nil, fmt.Errorf("config file %s: card '%s' needs non-negative strength/cost/magnitude and positive loyalty", source, tpl.Name)
		}
		c.byKey[tpl.Key] = tpl
		c.Cards = append(c.Cards, tpl)
	}

	for _, e := range rc.StarterDeck {
		key, err := c.resolve(e.Name, source)
		if err != nil {
			return nil, err
		}
		count := max(e.Count, 1)
		for i := 0; i < count; i++ {
			c.StarterDeck = append(c.StarterDeck, key)
		}
	}
	if len(c.StarterDeck) == 0 {
		for _, tpl := range c.Cards {
			c.StarterDeck = append(c.StarterDeck, tpl.Key)
		}
	}

	stageSet := make(map[int]struct{}, len(rc.Stages))
	for _, st := range rc.Stages {
		if st.Number <= 0 {
			return nil, fmt.Errorf("config file %s: stage '%s' needs a positive number", source, st.Name)
		}
		if _, exists := stageSet[st.Number]; exists {
			return nil, fmt.Errorf("config file %s: duplicate stage number %d", source, st.Number)
		}
		stageSet[st.Number] = struct{}{}
		if len(st.EnemyDeck) == 0 {
			return nil, fmt.Errorf("config file %s: stage %d has an empty enemy_deck", source, st.Number)
		}
		deck := make([]string, 0, len(st.EnemyDeck))
		for _, name := range st.EnemyDeck {
			key, err := c.resolve(name, source)
			if err != nil {
				return nil, err
			}
			deck = append(deck, key)
		}
		st.EnemyDeck = deck
		if st.RewardCard != "" {
			key, err := c.resolve(st.RewardCard, source)
			if err != nil {
				return nil, err
			}
			st.RewardCard = key
		}
		if st.EnemyName == "" {
			st.EnemyName = "Enemy"
		}
		c.Stages = append(c.Stages, st)
	}

	if rc.Rules != nil {
		c.Rules = mergeRules(c.Rules, *rc.Rules)
	}
	return c, nil
}

func (c *Catalog) resolve(name, source string) (string, error) {
	key := keys.TemplateKey(name)
	if _, ok := c.byKey[key]; !ok {
		return "", fmt.Errorf("config file %s: unknown card '%s'", source, name)
	}
	return key, nil
}

// mergeRules keeps defaults for every rule the catalog leaves at zero.
func mergeRules(def, r game.Rules) game.Rules {
	if r.StartingHP > 0 {
		def.StartingHP = r.StartingHP
	}
	if r.StartingResources > 0 {
		def.StartingResources = min(r.StartingResources, game.MaxResources)
	}
	if r.ResourceRegen > 0 {
		def.ResourceRegen = r.ResourceRegen
	}
	if r.HandSize > 0 {
		def.HandSize = r.HandSize
	}
	return def
}

// Template returns the card template for key.
func (c *Catalog) Template(key string) (game.CardTemplate, bool) {
	tpl, ok := c.byKey[key]
	return tpl, ok
}

// Templates maps keys to templates, skipping unknown keys.
func (c *Catalog) Templates(keyList []string) []game.CardTemplate {
	out := make([]game.CardTemplate, 0, len(keyList))
	for _, k := range keyList {
		if tpl, ok := c.byKey[k]; ok {
			out = append(out, tpl)
		}
	}
	return out
}

// Stage returns the stage with the given number.
func (c *Catalog) Stage(number int) (game.Stage, bool) {
	for _, st := range c.Stages {
		if st.Number == number {
			return st, true
		}
	}
	return game.Stage{}, false
}
