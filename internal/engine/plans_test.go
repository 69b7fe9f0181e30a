package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hariz09/game-hub-sub001/internal/game"
)

func TestSelectEnemyCardsZonePriority(t *testing.T) {
	enemy := newPlayer("Black Knight", 30, 10,
		card("c1", game.CardTypeCommoner, 3, 1, 3),
		card("noble", game.CardTypeNobility, 2, 2, 5),
		card("c2", game.CardTypeCommoner, 2, 1, 3),
		card("support", game.CardTypeSupport, 1, 1, 3),
		card("c3", game.CardTypeCommoner, 1, 1, 3),
	)

	sel := SelectEnemyCards(enemy)
	require.NotNil(t, sel.KingCard)
	require.NotNil(t, sel.SupportCard)
	assert.Equal(t, "noble", sel.KingCard.ID)
	assert.Equal(t, "support", sel.SupportCard.ID)
	require.Len(t, sel.NormalCards, 3)
	assert.Equal(t, []string{"c1", "c2", "c3"}, ids(sel.NormalCards))
	assert.Equal(t, 4, sel.RemainingResources)
}

func TestSelectEnemyCardsRespectsBudgetAndRoom(t *testing.T) {
	enemy := newPlayer("E", 30, 4,
		card("big", game.CardTypeCommoner, 6, 3, 3),
		card("mid", game.CardTypeCommoner, 3, 2, 3),
		card("low", game.CardTypeCommoner, 1, 1, 3),
		card("free", game.CardTypeCommoner, 1, 0, 3),
	)
	enemy.PlayedCards = []game.Card{
		card("p1", game.CardTypeCommoner, 1, 0, 3),
		card("p2", game.CardTypeCommoner, 1, 0, 3),
	}

	sel := SelectEnemyCards(enemy)
	// big (3) leaves 1; mid no longer fits; low fills the last army slot.
	assert.Equal(t, []string{"big", "low"}, ids(sel.NormalCards))
	assert.Equal(t, 0, sel.RemainingResources)
	assert.LessOrEqual(t, len(enemy.PlayedCards)+len(sel.NormalCards), MaxArmySize)
	require.NoError(t, ValidateSelection(enemy, sel.Selection))
}

func TestSelectEnemyCardsSkipsFilledSlots(t *testing.T) {
	enemy := newPlayer("E", 30, 10,
		card("noble", game.CardTypeNobility, 5, 2, 5),
		card("legend", game.CardTypeLegendary, 6, 3, 5),
	)
	enemy.King = ptr(card("old-king", game.CardTypeNobility, 3, 0, 5))

	sel := SelectEnemyCards(enemy)
	assert.Nil(t, sel.KingCard)
	require.NotNil(t, sel.SupportCard)
	assert.Equal(t, "legend", sel.SupportCard.ID)
	assert.Equal(t, []string{"noble"}, ids(sel.NormalCards))
}

func TestSelectEnemyCardsDeterministic(t *testing.T) {
	hand := []game.Card{
		card("b", game.CardTypeCommoner, 2, 1, 3),
		card("a", game.CardTypeCommoner, 2, 1, 3),
		card("c", game.CardTypeCommoner, 1, 2, 3),
		card("d", game.CardTypeCommoner, 3, 0, 3),
		card("e", game.CardTypeCommoner, 2, 1, 3),
	}
	enemy := newPlayer("E", 30, 10, hand...)

	first := SelectEnemyCards(enemy)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, SelectEnemyCards(enemy.Clone()))
	}
	// Equal strength+cost falls back to card ID order.
	assert.Equal(t, []string{"a", "b", "c", "d"}, ids(first.NormalCards))
}

func TestSelectEnemyCardsIgnoresUnaffordable(t *testing.T) {
	enemy := newPlayer("E", 30, 1, card("dear", game.CardTypeNobility, 9, 5, 5))
	sel := SelectEnemyCards(enemy)
	assert.True(t, sel.Empty())
	assert.Equal(t, 1, sel.RemainingResources)
}

func ids(cards []game.Card) []string {
	out := make([]string, 0, len(cards))
	for _, c := range cards {
		out = append(out, c.ID)
	}
	return out
}
