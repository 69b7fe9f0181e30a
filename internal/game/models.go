package game

// CardType is the rank of a card. It decides which zones the card may occupy.
type CardType string

const (
	CardTypeNobility  CardType = "nobility"
	CardTypeSupport   CardType = "support"
	CardTypeCommoner  CardType = "commoner"
	CardTypeLegendary CardType = "legendary"
)

// Valid reports whether t is one of the known card types.
func (t CardType) Valid() bool {
	switch t {
	case CardTypeNobility, CardTypeSupport, CardTypeCommoner, CardTypeLegendary:
		return true
	}
	return false
}

// AbilityType names the effect a card applies when it is deployed.
type AbilityType string

const (
	AbilityNone         AbilityType = "none"
	AbilityHeal         AbilityType = "heal"
	AbilityBoost        AbilityType = "boost"
	AbilityDirectDamage AbilityType = "direct_damage"
	AbilityShield       AbilityType = "shield"
	AbilityRally        AbilityType = "rally"
	AbilityAssassinate  AbilityType = "assassinate"
	AbilityResourceGain AbilityType = "resource_gain"
)

// Valid reports whether a is one of the known ability types. The empty
// string is accepted and treated as AbilityNone.
func (a AbilityType) Valid() bool {
	switch a {
	case "", AbilityNone, AbilityHeal, AbilityBoost, AbilityDirectDamage,
		AbilityShield, AbilityRally, AbilityAssassinate, AbilityResourceGain:
		return true
	}
	return false
}

// Card is a single drawn instance of a CardTemplate. Identity (ID), not
// Name, is used for every zone membership check.
type Card struct {
	ID          string      `json:"id"`
	TemplateKey string      `json:"template_key"`
	Name        string      `json:"name"`
	Type        CardType    `json:"type"`
	Strength    int         `json:"strength"`
	Cost        int         `json:"cost"`
	Loyalty     int         `json:"loyalty"`
	BaseLoyalty int         `json:"base_loyalty"`
	Ability     string      `json:"ability"`
	AbilityType AbilityType `json:"ability_type"`
	// Magnitude overrides the name-derived ability magnitude when positive.
	Magnitude int `json:"magnitude,omitempty"`
}

// Player is one side of a battle. A session owns exactly two of them and
// mutates them from a single goroutine at a time.
type Player struct {
	Name        string   `json:"name"`
	HP          int      `json:"hp"`
	MaxHP       int      `json:"max_hp"`
	Resources   int      `json:"resources"`
	Deck        []Card   `json:"deck"`
	Hand        []Card   `json:"hand"`
	PlayedCards []Card   `json:"played_cards"`
	King        *Card    `json:"king"`
	Support     *Card    `json:"support"`
	Shield      int      `json:"shield"`
	Effects     []string `json:"effects"`
}

// CardCount returns how many cards the player holds across deck, hand and
// every deployed zone.
func (p *Player) CardCount() int {
	n := len(p.Deck) + len(p.Hand) + len(p.PlayedCards)
	if p.King != nil {
		n++
	}
	if p.Support != nil {
		n++
	}
	return n
}

// Clone returns a deep copy so callers can inspect state without sharing
// slices with the live session.
func (p *Player) Clone() *Player {
	if p == nil {
		return nil
	}
	out := *p
	out.Deck = cloneCards(p.Deck)
	out.Hand = cloneCards(p.Hand)
	out.PlayedCards = cloneCards(p.PlayedCards)
	out.Effects = append([]string(nil), p.Effects...)
	if p.King != nil {
		k := *p.King
		out.King = &k
	}
	if p.Support != nil {
		s := *p.Support
		out.Support = &s
	}
	return &out
}

// Defeated reports whether the player has no HP left.
func (p *Player) Defeated() bool { return p.HP <= 0 }

// MaxResources caps a player's resource pool.
const MaxResources = 10

// ClampHP forces HP into [0, MaxHP].
func (p *Player) ClampHP() {
	p.HP = min(max(p.HP, 0), p.MaxHP)
}

// ClampResources forces Resources into [0, MaxResources].
func (p *Player) ClampResources() {
	p.Resources = min(max(p.Resources, 0), MaxResources)
}

func cloneCards(cards []Card) []Card {
	if cards == nil {
		return nil
	}
	out := make([]Card, len(cards))
	copy(out, cards)
	return out
}

// Selection is a deployment plan for one side: up to four Army cards plus
// an optional King and Support.
type Selection struct {
	NormalCards []Card `json:"normal_cards"`
	KingCard    *Card  `json:"king_card"`
	SupportCard *Card  `json:"support_card"`
}

// Empty reports whether the plan deploys nothing.
func (s Selection) Empty() bool {
	return len(s.NormalCards) == 0 && s.KingCard == nil && s.SupportCard == nil
}

// Cards lists the planned cards in deployment order: King, Support, Army.
func (s Selection) Cards() []Card {
	out := make([]Card, 0, len(s.NormalCards)+2)
	if s.KingCard != nil {
		out = append(out, *s.KingCard)
	}
	if s.SupportCard != nil {
		out = append(out, *s.SupportCard)
	}
	return append(out, s.NormalCards...)
}

// EnemySelection is the enemy's deployment plan for one turn. It lives
// only until the battle phase consumes it.
type EnemySelection struct {
	Selection
	RemainingResources int `json:"remaining_resources"`
}

// TotalCost sums the cost of every card in the selection.
func (s Selection) TotalCost() int {
	total := 0
	for _, c := range s.NormalCards {
		total += c.Cost
	}
	if s.KingCard != nil {
		total += s.KingCard.Cost
	}
	if s.SupportCard != nil {
		total += s.SupportCard.Cost
	}
	return total
}

// GamePhase is the turn orchestrator state.
type GamePhase string

const (
	PhaseEnemySelection GamePhase = "enemySelection"
	PhasePlayerTurn     GamePhase = "playerTurn"
	PhaseBattle         GamePhase = "battle"
	PhaseGameOver       GamePhase = "gameOver"
)

// Winner values recorded when a session reaches PhaseGameOver.
const (
	WinnerPlayer = "player"
	WinnerEnemy  = "enemy"
	WinnerDraw   = "draw"
)

// Zone names a deployment slot.
type Zone string

const (
	ZoneKing    Zone = "king"
	ZoneSupport Zone = "support"
	ZoneArmy    Zone = "army"
)
