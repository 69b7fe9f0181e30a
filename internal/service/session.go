package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/Hariz09/game-hub-sub001/internal/config"
	"github.com/Hariz09/game-hub-sub001/internal/constants"
	"github.com/Hariz09/game-hub-sub001/internal/engine"
	"github.com/Hariz09/game-hub-sub001/internal/game"
	"github.com/Hariz09/game-hub-sub001/internal/logging"
	"github.com/Hariz09/game-hub-sub001/internal/storage"
)

var (
	ErrWrongPhase       = errors.New("action not allowed in the current phase")
	ErrSessionOver      = errors.New("session is over")
	ErrSessionNotFound  = errors.New("session not found")
	ErrUnknownStage     = errors.New("unknown stage")
	ErrUnknownZone      = errors.New("zone must be king or support")
	ErrZoneEmpty        = errors.New("zone is empty")
	ErrIllegalSelection = engine.ErrIllegalSelection
)

// Owner labels used in card IDs.
const (
	ownerPlayer = "player"
	ownerEnemy  = "enemy"
)

// Session is one battle between the human player and a stage enemy. All
// exported methods are safe for concurrent use; a session has a single
// writer at a time.
type Session struct {
	mu sync.Mutex

	ID         string
	ProfileKey string
	PlayerName string
	Stage      game.Stage

	Player           *game.Player
	Enemy            *game.Player
	Phase            game.GamePhase
	Turn             int
	EnemySelection   *game.EnemySelection
	PendingSelection game.Selection
	BattleLog        []string
	Winner           string
	LastReport       *engine.TurnReport

	progress   *game.Progress
	catalog    *config.Catalog
	store      storage.ProgressStore
	shuffle    func([]game.Card)
	now        func() time.Time
	lastActive time.Time
	onChange   func(Snapshot)
	version    uint64
}

// Option customizes a Session.
type Option func(*Session)

// WithShuffle replaces the deck shuffler. Tests pass a no-op to get
// predictable hands.
func WithShuffle(fn func([]game.Card)) Option {
	return func(s *Session) { s.shuffle = fn }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

func shuffleCards(cards []game.Card) {
	rand.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })
}

// NewSession prepares a session for stage. Call StartSession before
// playing.
func NewSession(id, profileKey, playerName string, stage game.Stage, catalog *config.Catalog, store storage.ProgressStore, opts ...Option) *Session {
	s := &Session{
		ID:         id,
		ProfileKey: profileKey,
		PlayerName: playerName,
		Stage:      stage,
		catalog:    catalog,
		store:      store,
		shuffle:    shuffleCards,
		now:        time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	if s.PlayerName == "" {
		s.PlayerName = "Player"
	}
	s.lastActive = s.now()
	return s
}

// StartSession loads meta progress, deals both decks and runs the first
// enemy selection. It may be called again to start over.
func (s *Session) StartSession(ctx context.Context) error {
	s.mu.Lock()
	err := s.start(ctx)
	snap := s.changedLocked()
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.notify(snap)
	return nil
}

// ResetSession discards the current battle and deals a fresh one for the
// same stage.
func (s *Session) ResetSession(ctx context.Context) error {
	s.mu.Lock()
	err := s.start(ctx)
	if err == nil {
		s.appendLog("The battle is reset")
	}
	snap := s.changedLocked()
	s.mu.Unlock()
	if err != nil {
		return err
	}
	logging.Info("session reset", logging.Fields{constants.LogFieldSessionID: s.ID})
	s.notify(snap)
	return nil
}

func (s *Session) start(ctx context.Context) error {
	s.touch()
	progress, err := s.store.Load(ctx, s.ProfileKey)
	if err != nil {
		return fmt.Errorf("load progress %s: %w", s.ProfileKey, err)
	}
	s.progress = progress

	rules := s.catalog.Rules
	playerKeys := append(append([]string(nil), s.catalog.StarterDeck...), progress.OwnedCards...)
	playerDeck := game.BuildDeck(ownerPlayer, s.catalog.Templates(playerKeys))
	enemyDeck := game.BuildDeck(ownerEnemy, s.catalog.Templates(s.Stage.EnemyDeck))
	s.shuffle(playerDeck)
	s.shuffle(enemyDeck)

	enemyHP := s.Stage.EnemyHP
	if enemyHP <= 0 {
		enemyHP = rules.StartingHP
	}
	s.Player = &game.Player{
		Name:      s.PlayerName,
		HP:        rules.StartingHP,
		MaxHP:     rules.StartingHP,
		Resources: rules.StartingResources,
		Deck:      playerDeck,
	}
	s.Enemy = &game.Player{
		Name:      s.Stage.EnemyName,
		HP:        enemyHP,
		MaxHP:     enemyHP,
		Resources: rules.StartingResources,
		Deck:      enemyDeck,
	}
	engine.DrawUpTo(s.Player, rules.HandSize)
	engine.DrawUpTo(s.Enemy, rules.HandSize)

	s.Turn = 1
	s.Winner = ""
	s.BattleLog = nil
	s.LastReport = nil
	s.PendingSelection = game.Selection{}
	s.appendLog(fmt.Sprintf("Stage %d: %s. %s faces %s", s.Stage.Number, s.Stage.Name, s.Player.Name, s.Enemy.Name))
	s.beginTurn()

	logging.Info("session started", logging.Fields{
		constants.LogFieldSessionID: s.ID,
		constants.LogFieldProfile:   s.ProfileKey,
		constants.LogFieldStage:     s.Stage.Number,
	})
	return nil
}

// beginTurn runs the enemySelection phase and hands control to the player.
func (s *Session) beginTurn() {
	s.Phase = game.PhaseEnemySelection
	sel := engine.SelectEnemyCards(s.Enemy)
	s.EnemySelection = &sel
	s.appendLog(fmt.Sprintf("Turn %d: %s", s.Turn, describePlan(s.Enemy.Name, sel.Selection)))
	s.PendingSelection = game.Selection{}
	s.Phase = game.PhasePlayerTurn
}

func (s *Session) appendLog(lines ...string) {
	s.BattleLog = append(s.BattleLog, lines...)
}

func (s *Session) touch() {
	s.lastActive = s.now()
}

// LastActive reports when the session last handled an operation.
func (s *Session) LastActive() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

func (s *Session) notify(snap Snapshot) {
	if s.onChange != nil {
		s.onChange(snap)
	}
}

func describePlan(name string, sel game.Selection) string {
	if sel.Empty() {
		return name + " holds back this turn"
	}
	out := name + " prepares"
	if sel.KingCard != nil {
		out += " king " + sel.KingCard.Name + ","
	}
	if sel.SupportCard != nil {
		out += " support " + sel.SupportCard.Name + ","
	}
	out += fmt.Sprintf(" %d army card(s)", len(sel.NormalCards))
	return out
}
