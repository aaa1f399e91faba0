package engine

const (
	// RequiredBoardSize is the number of spaces a playable board must have,
	// including the start space at index 0.
	RequiredBoardSize = 25

	// PriceMultiplier derives a space's purchase price from its rent.
	PriceMultiplier = 5

	// MinRoll and MaxRoll bound a valid die roll. Anything outside the
	// range makes the turn a no-op.
	MinRoll = 1
	MaxRoll = 6

	// StartName is the required name of the space at index 0.
	StartName = "Go"

	// DefaultGoIncome is paid each time a player passes or lands on the
	// start space.
	DefaultGoIncome = 50

	// DefaultStartingCash is the classic starting balance.
	DefaultStartingCash = 1000

	// MaxRunRounds caps a single automated run so a misbehaving roller
	// cannot spin the controller forever.
	MaxRunRounds = 100000
)

// WinStatus classifies the result of a win check.
type WinStatus string

const (
	// WinStatusNotStarted means fewer than two players have ever
	// registered, so the win condition is not meaningful yet.
	WinStatusNotStarted WinStatus = "not_started"

	// WinStatusUndecided means two or more players are still active.
	WinStatusUndecided WinStatus = "undecided"

	// WinStatusWon means exactly one player remains.
	WinStatusWon WinStatus = "won"

	// WinStatusNoWinner means every player has been eliminated or
	// withdrew, leaving nobody to win.
	WinStatusNoWinner WinStatus = "no_winner"
)

// SettlementKind identifies what happened at the destination space of a
// turn.
type SettlementKind string

const (
	// SettleNone covers skipped turns and landing on the start space.
	SettleNone SettlementKind = "none"

	// SettleOwnSpace means the player landed on their own property.
	SettleOwnSpace SettlementKind = "own_space"

	// SettleAvailable means the destination is unowned and purchasable.
	SettleAvailable SettlementKind = "available"

	// SettleRentPaid means rent was transferred to the owner.
	SettleRentPaid SettlementKind = "rent_paid"

	// SettleEliminated means the player could not cover the rent, handed
	// over everything they had left, and is out of the game.
	SettleEliminated SettlementKind = "eliminated"
)

// TurnOutcome reports everything that happened during one turn. Invalid
// turns are reported as skips, never as errors.
type TurnOutcome struct {
	Player     string         `json:"player"`
	Roll       int            `json:"roll"`
	Skipped    bool           `json:"skipped,omitempty"`
	SkipReason string         `json:"skip_reason,omitempty"`
	From       int            `json:"from"`
	To         int            `json:"to"`
	PassedGo   bool           `json:"passed_go,omitempty"`
	Settlement SettlementKind `json:"settlement"`
	RentPaid   int            `json:"rent_paid,omitempty"`
	Landlord   string         `json:"landlord,omitempty"`
	Eliminated bool           `json:"eliminated,omitempty"`
	Bought     bool           `json:"bought,omitempty"`
}

// RoundReport summarizes one full pass over the active roster.
type RoundReport struct {
	Round    int             `json:"round"`
	Outcomes []TurnOutcome   `json:"outcomes"`
	Snapshot []BalanceSample `json:"snapshot,omitempty"`
	Winner   string          `json:"winner,omitempty"`
	Status   WinStatus       `json:"status"`
}

// GameState is a serializable snapshot of a game. Restoring it rebuilds
// the board, the owners and the roster exactly.
type GameState struct {
	Round      int      `json:"round"`
	GameOver   bool     `json:"game_over"`
	GoIncome   int      `json:"go_income"`
	Spaces     []Space  `json:"spaces"`
	Players    []Player `json:"players"`
	Registered int      `json:"registered"`
	ConfigName string   `json:"config_name,omitempty"`
}
