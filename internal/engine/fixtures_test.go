package engine

import "github.com/Hariz09/game-hub-sub001/internal/game"

func card(id string, typ game.CardType, strength, cost, loyalty int) game.Card {
	return game.Card{
		ID:          id,
		Name:        id,
		Type:        typ,
		Strength:    strength,
		Cost:        cost,
		Loyalty:     loyalty,
		BaseLoyalty: loyalty,
		AbilityType: game.AbilityNone,
	}
}

func withAbility(c game.Card, name string, at game.AbilityType) game.Card {
	c.Name = name
	c.AbilityType = at
	return c
}

func newPlayer(name string, hp, resources int, hand ...game.Card) *game.Player {
	return &game.Player{Name: name, HP: hp, MaxHP: hp, Resources: resources, Hand: hand}
}

func ptr(c game.Card) *game.Card { return &c }
