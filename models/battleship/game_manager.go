package battleship

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
	cerr "github.com/saeidalz13/battleship-engine/internal/error"
)

type GameManager interface {
	CreateGame(cfg GameConfig) (*Game, error)
	GetGame(gameUuid string) (*Game, error)
	TerminateGame(gameUuid string)
	CleanupPeriodically(ctx context.Context)
}

type BattleshipGameManager struct {
	games           map[string]*Game
	maxGameAge      time.Duration
	cleanupInterval time.Duration
	logger          zerolog.Logger
	mu              sync.RWMutex
}

var _ GameManager = (*BattleshipGameManager)(nil)

type GameManagerOption func(*BattleshipGameManager)

func WithMaxGameAge(age time.Duration) GameManagerOption {
	return func(bgm *BattleshipGameManager) {
		bgm.maxGameAge = age
	}
}

func WithCleanupInterval(interval time.Duration) GameManagerOption {
	return func(bgm *BattleshipGameManager) {
		bgm.cleanupInterval = interval
	}
}

func WithLogger(logger zerolog.Logger) GameManagerOption {
	return func(bgm *BattleshipGameManager) {
		bgm.logger = logger
	}
}

func NewBattleshipGameManager(opts ...GameManagerOption) *BattleshipGameManager {
	bgm := &BattleshipGameManager{
		games:           make(map[string]*Game, 10),
		maxGameAge:      time.Minute * 30,
		cleanupInterval: time.Minute * 5,
		logger:          zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(bgm)
	}
	return bgm
}

func (bgm *BattleshipGameManager) CreateGame(cfg GameConfig) (*Game, error) {
	game, err := NewGame(cfg)
	if err != nil {
		return nil, err
	}

	bgm.mu.Lock()
	bgm.games[game.Uuid()] = game
	bgm.mu.Unlock()

	bgm.logger.Debug().Str("game", game.Uuid()).Msg("game created")
	return game, nil
}

func (bgm *BattleshipGameManager) GetGame(gameUuid string) (*Game, error) {
	bgm.mu.RLock()
	game, prs := bgm.games[gameUuid]
	bgm.mu.RUnlock()
	if !prs {
		return nil, cerr.ErrGameNotFound(gameUuid)
	}

	return game, nil
}

func (bgm *BattleshipGameManager) TerminateGame(gameUuid string) {
	bgm.mu.Lock()
	delete(bgm.games, gameUuid)
	bgm.mu.Unlock()

	bgm.logger.Debug().Str("game", gameUuid).Msg("game terminated")
}

// Count is the number of games currently registered.
func (bgm *BattleshipGameManager) Count() int {
	bgm.mu.RLock()
	defer bgm.mu.RUnlock()
	return len(bgm.games)
}

// CleanupPeriodically drops games older than the max game age until ctx is done.
func (bgm *BattleshipGameManager) CleanupPeriodically(ctx context.Context) {
	ticker := time.NewTicker(bgm.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			bgm.removeStaleGames(time.Now())
		}
	}
}

func (bgm *BattleshipGameManager) removeStaleGames(now time.Time) int {
	bgm.mu.Lock()
	defer bgm.mu.Unlock()

	removed := 0
	for id, game := range bgm.games {
		if now.Sub(game.CreatedAt()) > bgm.maxGameAge {
			delete(bgm.games, id)
			removed++
			bgm.logger.Info().Str("game", id).Msg("removed stale game")
		}
	}
	return removed
}
