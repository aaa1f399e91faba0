package service

import (
	"context"
	"time"

	"github.com/landrush/landrush/game/engine"
)

// GameService defines all game-related operations
type GameService interface {
	// Session Management
	CreateSession(ctx context.Context, configName string) (*SessionInfo, error)
	GetSession(ctx context.Context, sessionID string) (*SessionInfo, error)
	ListSessions(ctx context.Context) ([]*SessionInfo, error)
	DeleteSession(ctx context.Context, sessionID string) error

	// Game Operations
	TakeTurn(ctx context.Context, sessionID, player string, roll int, autoBuy bool) (*TurnResult, error)
	PlayRound(ctx context.Context, sessionID string) (*RoundResult, error)
	RunGame(ctx context.Context, sessionID string) (*RunResult, error)
	Buy(ctx context.Context, sessionID, player string) (*BuyResult, error)
	Forfeit(ctx context.Context, sessionID, player string) (*engine.GameState, error)
	Reset(ctx context.Context, sessionID string) (*engine.GameState, error)

	// Game State
	GetGameState(ctx context.Context, sessionID string) (*engine.GameState, error)
	Standings(ctx context.Context, sessionID string) ([]PlayerStanding, error)
	Winner(ctx context.Context, sessionID string) (*WinnerInfo, error)
	GetHistory(ctx context.Context, sessionID string, opts HistoryOptions) (*HistoryResponse, error)

	// Configuration
	ListConfigs(ctx context.Context) ([]*ConfigInfo, error)
	LoadConfig(ctx context.Context, configName string) (*engine.GameConfig, error)
	SaveConfig(ctx context.Context, configName string, config *engine.GameConfig) error
}

// SessionManager defines session storage operations
type SessionManager interface {
	Create(id string, config *engine.GameConfig) (*Session, error)
	Get(id string) (*Session, error)
	GetOrCreate(id string, config *engine.GameConfig) (*Session, error)
	List() []*Session
	Delete(id string) error
	UpdateLastAccessed(id string) error
	Save(id string) error
}

// ConfigManager handles game configuration loading
type ConfigManager interface {
	LoadConfig(name string) (*engine.GameConfig, error)
	ListConfigs() ([]*ConfigInfo, error)
	GetDefault() *engine.GameConfig
	SaveConfig(name string, config *engine.GameConfig) error
}

// Session represents an active game session. Each session owns its own
// roller and history recorder so concurrent sessions never share
// randomness or telemetry.
type Session struct {
	ID             string
	Engine         *engine.GameEngine
	Config         *engine.GameConfig
	History        *engine.HistoryRecorder
	Roller         engine.Roller
	CreatedAt      time.Time
	LastAccessedAt time.Time
}
