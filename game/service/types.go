package service

import (
	"time"

	"github.com/landrush/landrush/game/engine"
)

// SessionInfo provides information about a game session
type SessionInfo struct {
	ID             string             `json:"id"`
	ConfigName     string             `json:"config_name"`
	CreatedAt      time.Time          `json:"created_at"`
	LastAccessedAt time.Time          `json:"last_accessed_at"`
	GameState      *engine.GameState  `json:"game_state"`
	GameConfig     *engine.GameConfig `json:"game_config"`
}

// TurnResult contains the result of a single turn
type TurnResult struct {
	Outcome   engine.TurnOutcome `json:"outcome"`
	GameState *engine.GameState  `json:"game_state"`
	Events    []GameEvent        `json:"events,omitempty"`
	Winner    string             `json:"winner,omitempty"`
	Status    engine.WinStatus   `json:"status"`
}

// RoundResult contains the result of one full round over the roster
type RoundResult struct {
	Report    *engine.RoundReport `json:"report"`
	GameState *engine.GameState   `json:"game_state"`
	Events    []GameEvent         `json:"events,omitempty"`
}

// RunResult contains the result of playing a game to completion
type RunResult struct {
	Winner    string            `json:"winner,omitempty"`
	Status    engine.WinStatus  `json:"status"`
	Rounds    int               `json:"rounds"`
	GameState *engine.GameState `json:"game_state"`
}

// BuyResult contains the result of a purchase attempt
type BuyResult struct {
	Success   bool              `json:"success"`
	Player    string            `json:"player"`
	Space     string            `json:"space,omitempty"`
	Position  int               `json:"position"`
	Price     int               `json:"price,omitempty"`
	GameState *engine.GameState `json:"game_state"`
}

// PlayerStanding is one row of the standings query
type PlayerStanding struct {
	Name     string `json:"name"`
	Cash     int    `json:"cash"`
	Position int    `json:"position"`
	Space    string `json:"space"`
	Holdings []int  `json:"holdings"`
}

// WinnerInfo reports the current win status
type WinnerInfo struct {
	Status engine.WinStatus `json:"status"`
	Winner string           `json:"winner,omitempty"`
}

// GameEvent represents an event that occurred during gameplay
type GameEvent struct {
	Type      string    `json:"type"` // "turn", "passed_go", "purchase", "rent", "elimination", "winner", "forfeit", "reset"
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Player    string    `json:"player,omitempty"`
	Space     string    `json:"space,omitempty"`
	Amount    int       `json:"amount,omitempty"`
}

// HistoryOptions configures round history retrieval
type HistoryOptions struct {
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
	Order string `json:"order"` // "asc" or "desc"
}

// RoundSnapshot groups the balance samples of one round
type RoundSnapshot struct {
	Round    int                    `json:"round"`
	Balances []engine.BalanceSample `json:"balances"`
}

// HistoryResponse contains paginated round history
type HistoryResponse struct {
	Rounds      []RoundSnapshot `json:"rounds"`
	TotalRounds int             `json:"total_rounds"`
	Page        int             `json:"page"`
	PageSize    int             `json:"page_size"`
	TotalPages  int             `json:"total_pages"`
	HasNext     bool            `json:"has_next"`
	HasPrevious bool            `json:"has_previous"`
}

// ConfigInfo provides information about a game configuration
type ConfigInfo struct {
	Filename    string `json:"filename"`
	ConfigID    string `json:"config_id"` // The identifier to use for session creation
	Name        string `json:"name"`      // Display name
	Description string `json:"description"`
	Players     int    `json:"players"`
	GoIncome    int    `json:"go_income"`
}
