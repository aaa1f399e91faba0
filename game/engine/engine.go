package engine

import (
	"errors"
	"fmt"
	"time"
)

// Engine is the main interface for driving a game from a transport or a
// batch simulation.
type Engine interface {
	GetState() *GameState
	SetState(state *GameState) error
	Reset() *GameState
	ResetToConfig() (*GameState, error)
	Validate() error
	TakeTurn(player string, roll int) TurnOutcome
	TryBuy(player string) bool
	PlayRound(roller Roller, decider DecisionProvider, recorders ...Recorder) *RoundReport
	Run(roller Roller, decider DecisionProvider, recorders ...Recorder) (string, WinStatus, error)
	Winner() (string, WinStatus)
	Forfeit(player string) bool
	AddPlayer(name string, cash int) error
	Balance(player string) (int, bool)
	Position(player string) (int, bool)
	PositionName(player string) (string, bool)
	PlayerView(player string) (Player, bool)
	ActiveNames() []string
	Round() int
	IsGameOver() bool
	GetConfig() *GameConfig
	SetConfig(config *GameConfig) error
	Board() *Board
}

// GameEngine drives one game built from a GameConfig.
type GameEngine struct {
	game   *Game
	config *GameConfig
}

// NewEngine validates the config, builds the board and registers the
// configured roster.
func NewEngine(config *GameConfig) (*GameEngine, error) {
	if err := ValidateGameConfig(config); err != nil {
		return nil, err
	}
	game, err := newGameFromConfig(config)
	if err != nil {
		return nil, err
	}
	return &GameEngine{game: game, config: config}, nil
}

// NewEngineWithDefaults builds an engine on the classic board.
func NewEngineWithDefaults() *GameEngine {
	eng, err := NewEngine(DefaultConfig())
	if err != nil {
		// The default config is validated by tests; this is unreachable.
		panic(fmt.Sprintf("engine: default config rejected: %v", err))
	}
	return eng
}

func newGameFromConfig(config *GameConfig) (*Game, error) {
	board := NewBoard()
	if len(config.SpaceNames) > 0 {
		board.SetPlaceNames(config.SpaceNames)
	}
	if err := board.Configure(config.GoIncome, config.Rents); err != nil {
		return nil, err
	}
	game := NewGame(board)
	for _, setup := range config.Players {
		if err := game.AddPlayer(setup.Name, setup.Cash); err != nil {
			return nil, err
		}
	}
	return game, nil
}

// Validate re-checks the live game against the start conditions: enough
// active players, the exact board size, the named start space, positive
// rents and balances that can survive the cheapest space.
func (e *GameEngine) Validate() error {
	g := e.game
	if g.ActiveCount() < 2 {
		return errors.New("engine: at least 2 active players are required to start")
	}
	if g.board.Len() != RequiredBoardSize {
		return fmt.Errorf("engine: board must have exactly %d spaces, got %d", RequiredBoardSize, g.board.Len())
	}
	if start, ok := g.board.Get(0); !ok || start.Name != StartName {
		return fmt.Errorf("engine: the first space must be named %q", StartName)
	}
	minRent, ok := g.board.MinRent()
	if !ok {
		return errors.New("engine: board has no ownable spaces")
	}
	for i, rent := range g.board.Rents() {
		if rent <= 0 {
			return fmt.Errorf("engine: space %d has non-positive rent %d", i+1, rent)
		}
	}
	for _, name := range g.ActiveNames() {
		cash, _ := g.Balance(name)
		if cash <= 0 {
			return fmt.Errorf("engine: player %q has no cash to start with", name)
		}
		if cash <= minRent {
			return fmt.Errorf("engine: player %q cash %d does not clear the minimum rent %d", name, cash, minRent)
		}
	}
	return nil
}

// TakeTurn plays a single turn for one player.
func (e *GameEngine) TakeTurn(player string, roll int) TurnOutcome {
	return e.game.AdvanceTurn(player, roll)
}

// TryBuy attempts to buy the space the player stands on.
func (e *GameEngine) TryBuy(player string) bool {
	return e.game.TryBuy(player)
}

// PlayRound drives one full pass over the active roster in registration
// order. The roller supplies dice, the decider answers the manual-mode
// questions, and every recorder receives the end-of-round balance
// snapshot. The round counter advances only when the game is still
// undecided after the pass, which keeps the recorded round numbers dense.
func (e *GameEngine) PlayRound(roller Roller, decider DecisionProvider, recorders ...Recorder) *RoundReport {
	if roller == nil {
		roller = defaultRoller
	}
	if decider == nil {
		decider = AutoDecider{}
	}

	report := &RoundReport{Round: e.game.round + 1}
	for _, name := range e.game.ActiveNames() {
		if _, status := e.game.Winner(); status == WinStatusWon || status == WinStatusNoWinner {
			break
		}
		if decider.KeepPlaying(name) == DecisionQuit {
			e.game.RemovePlayer(name)
			report.Outcomes = append(report.Outcomes, TurnOutcome{
				Player:     name,
				Skipped:    true,
				SkipReason: "quit",
				Settlement: SettleNone,
			})
			continue
		}
		outcome := e.game.AdvanceTurn(name, roller.Roll())
		if outcome.Settlement == SettleAvailable {
			if space, ok := e.game.board.Get(outcome.To); ok && decider.BuyProperty(name, *space) {
				outcome.Bought = e.game.TryBuy(name)
			}
		}
		report.Outcomes = append(report.Outcomes, outcome)
	}

	winner, status := e.game.Winner()
	report.Winner = winner
	report.Status = status
	if status == WinStatusUndecided {
		e.game.round++
		report.Round = e.game.round
		report.Snapshot = e.snapshotBalances()
		for _, recorder := range recorders {
			recorder.RecordRound(e.game.round, report.Snapshot)
		}
	}
	return report
}

// Run validates the game and plays rounds until a terminal state. The
// starting balances are recorded as round 0 on a fresh game.
func (e *GameEngine) Run(roller Roller, decider DecisionProvider, recorders ...Recorder) (string, WinStatus, error) {
	if err := e.Validate(); err != nil {
		return "", WinStatusNotStarted, err
	}
	if e.game.round == 0 {
		samples := e.snapshotBalances()
		for _, recorder := range recorders {
			recorder.RecordRound(0, samples)
		}
	}
	for i := 0; i < MaxRunRounds; i++ {
		report := e.PlayRound(roller, decider, recorders...)
		if report.Status == WinStatusWon || report.Status == WinStatusNoWinner {
			return report.Winner, report.Status, nil
		}
	}
	return "", WinStatusUndecided, fmt.Errorf("engine: no winner after %d rounds", MaxRunRounds)
}

// Winner evaluates the win condition.
func (e *GameEngine) Winner() (string, WinStatus) {
	return e.game.Winner()
}

// Forfeit withdraws a player, releasing their holdings.
func (e *GameEngine) Forfeit(player string) bool {
	return e.game.RemovePlayer(player)
}

// AddPlayer registers an extra player at the start space.
func (e *GameEngine) AddPlayer(name string, cash int) error {
	return e.game.AddPlayer(name, cash)
}

// Balance returns a player's cash.
func (e *GameEngine) Balance(player string) (int, bool) {
	return e.game.Balance(player)
}

// Position returns a player's board index.
func (e *GameEngine) Position(player string) (int, bool) {
	return e.game.Position(player)
}

// PositionName returns the name of the space a player stands on.
func (e *GameEngine) PositionName(player string) (string, bool) {
	return e.game.PositionName(player)
}

// PlayerView returns a copy of a player's account.
func (e *GameEngine) PlayerView(player string) (Player, bool) {
	return e.game.PlayerView(player)
}

// ActiveNames returns the still-active players in registration order.
func (e *GameEngine) ActiveNames() []string {
	return e.game.ActiveNames()
}

// Round returns the number of completed rounds.
func (e *GameEngine) Round() int {
	return e.game.Round()
}

// IsGameOver reports whether a win check reached a terminal state.
func (e *GameEngine) IsGameOver() bool {
	return e.game.GameOver()
}

// Board exposes the position registry for read access.
func (e *GameEngine) Board() *Board {
	return e.game.Board()
}

// GetConfig returns the config the engine was built from.
func (e *GameEngine) GetConfig() *GameConfig {
	return e.config
}

// SetConfig validates a new config and rebuilds the game from it.
func (e *GameEngine) SetConfig(config *GameConfig) error {
	if err := ValidateGameConfig(config); err != nil {
		return err
	}
	game, err := newGameFromConfig(config)
	if err != nil {
		return err
	}
	e.game = game
	e.config = config
	return nil
}

// GetState captures a serializable snapshot of the game.
func (e *GameEngine) GetState() *GameState {
	state := e.game.State()
	if e.config != nil {
		state.ConfigName = e.config.Name
	}
	return state
}

// SetState restores the game from a snapshot.
func (e *GameEngine) SetState(state *GameState) error {
	return e.game.Restore(state)
}

// Reset clears the roster, every owner and the round counter, keeping
// the configured board. The returned snapshot has an empty roster; the
// caller registers new players before the next run.
func (e *GameEngine) Reset() *GameState {
	e.game.Reset()
	return e.GetState()
}

// ResetToConfig resets and re-registers the configured roster so the
// same setup can immediately play another game.
func (e *GameEngine) ResetToConfig() (*GameState, error) {
	e.game.Reset()
	for _, setup := range e.config.Players {
		if err := e.game.AddPlayer(setup.Name, setup.Cash); err != nil {
			return nil, err
		}
	}
	return e.GetState(), nil
}

func (e *GameEngine) snapshotBalances() []BalanceSample {
	names := e.game.ActiveNames()
	samples := make([]BalanceSample, 0, len(names))
	for _, name := range names {
		cash, _ := e.game.Balance(name)
		samples = append(samples, BalanceSample{
			Round:  e.game.round,
			Player: name,
			Cash:   cash,
		})
	}
	return samples
}

var defaultRoller = NewRoller(time.Now().UnixNano())
