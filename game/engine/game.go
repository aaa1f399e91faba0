package engine

import (
	"errors"
	"fmt"
)

// Game is the aggregate state of one property game: the board registry,
// the active roster and the round counter. All mutation goes through the
// turn, purchase and lifecycle methods.
type Game struct {
	board      *Board
	players    map[string]*Player
	order      []string
	registered int
	round      int
	gameOver   bool
}

// NewGame wraps a configured board with an empty roster.
func NewGame(board *Board) *Game {
	return &Game{
		board:   board,
		players: make(map[string]*Player),
	}
}

// Board exposes the position registry for read access.
func (g *Game) Board() *Board {
	return g.board
}

// Round returns the number of completed rounds.
func (g *Game) Round() int {
	return g.round
}

// GameOver reports whether a win check has reached a terminal state.
func (g *Game) GameOver() bool {
	return g.gameOver
}

// Registered returns the number of players ever registered. Eliminations
// and withdrawals do not decrease it.
func (g *Game) Registered() int {
	return g.registered
}

// AddPlayer registers a new player at the start space. Starting cash must
// be positive and strictly greater than the cheapest rent, otherwise the
// player could be unable to survive a single landing.
func (g *Game) AddPlayer(name string, startCash int) error {
	if name == "" {
		return errors.New("game: player name must not be empty")
	}
	if _, exists := g.players[name]; exists {
		return fmt.Errorf("game: player %q already registered", name)
	}
	if startCash <= 0 {
		return fmt.Errorf("game: player %q needs positive starting cash, got %d", name, startCash)
	}
	if min, ok := g.board.MinRent(); ok && startCash <= min {
		return fmt.Errorf("game: player %q starting cash %d does not clear the cheapest rent %d", name, startCash, min)
	}
	g.registered++
	g.players[name] = &Player{
		Name:     name,
		Cash:     startCash,
		Holdings: []int{},
		Seq:      g.registered,
	}
	g.order = append(g.order, name)
	return nil
}

// Balance returns a player's cash. ok is false for names that are unknown
// or no longer active.
func (g *Game) Balance(name string) (int, bool) {
	player, ok := g.players[name]
	if !ok {
		return 0, false
	}
	return player.Cash, true
}

// Position returns a player's board index.
func (g *Game) Position(name string) (int, bool) {
	player, ok := g.players[name]
	if !ok {
		return 0, false
	}
	return player.Position, true
}

// PositionName returns the name of the space a player stands on.
func (g *Game) PositionName(name string) (string, bool) {
	player, ok := g.players[name]
	if !ok {
		return "", false
	}
	space, ok := g.board.Get(player.Position)
	if !ok {
		return "", false
	}
	return space.Name, true
}

// PlayerView returns a copy of a player's account.
func (g *Game) PlayerView(name string) (Player, bool) {
	player, ok := g.players[name]
	if !ok {
		return Player{}, false
	}
	return copyPlayer(player), true
}

// ActiveNames returns the still-active players in registration order.
func (g *Game) ActiveNames() []string {
	names := make([]string, 0, len(g.players))
	for _, name := range g.order {
		if _, ok := g.players[name]; ok {
			names = append(names, name)
		}
	}
	return names
}

// ActiveCount returns the number of players still in the game.
func (g *Game) ActiveCount() int {
	return len(g.players)
}

// Winner evaluates the win condition. Before two players have ever
// registered the check is neutral; with exactly one survivor that player
// has won, and with none the game ends without a winner. Terminal results
// latch the game-over flag.
func (g *Game) Winner() (string, WinStatus) {
	if g.registered < 2 {
		return "", WinStatusNotStarted
	}
	switch len(g.players) {
	case 0:
		g.gameOver = true
		return "", WinStatusNoWinner
	case 1:
		g.gameOver = true
		for name := range g.players {
			return name, WinStatusWon
		}
	}
	return "", WinStatusUndecided
}

// RemovePlayer withdraws a player from the game, releasing their
// holdings. It reports whether the player was active.
func (g *Game) RemovePlayer(name string) bool {
	player, ok := g.players[name]
	if !ok {
		return false
	}
	player.Eliminate(g.board)
	delete(g.players, name)
	return true
}

// Reset clears the roster, every owner and the round counter so the
// configured board can host a fresh game.
func (g *Game) Reset() {
	g.players = make(map[string]*Player)
	g.order = nil
	g.registered = 0
	g.round = 0
	g.gameOver = false
	g.board.ClearOwners()
}

// State captures a serializable snapshot of the game.
func (g *Game) State() *GameState {
	state := &GameState{
		Round:      g.round,
		GameOver:   g.gameOver,
		GoIncome:   g.board.GoIncome(),
		Spaces:     g.board.Spaces(),
		Registered: g.registered,
		Players:    make([]Player, 0, len(g.players)),
	}
	for _, name := range g.order {
		if player, ok := g.players[name]; ok {
			state.Players = append(state.Players, copyPlayer(player))
		}
	}
	return state
}

// Restore rebuilds the game from a snapshot, replacing the board, the
// owners and the roster.
func (g *Game) Restore(state *GameState) error {
	if state == nil {
		return errors.New("game: state must not be nil")
	}
	if len(state.Spaces) == 0 || state.Spaces[0].Rent != 0 {
		return errors.New("game: state is missing the start space")
	}

	names := make([]string, 0, len(state.Spaces))
	rents := make([]int, 0, len(state.Spaces)-1)
	for i, space := range state.Spaces {
		names = append(names, space.Name)
		if i > 0 {
			rents = append(rents, space.Rent)
		}
	}
	board := NewBoard()
	board.SetPlaceNames(names)
	if err := board.Configure(state.GoIncome, rents); err != nil {
		return err
	}
	for _, space := range state.Spaces {
		if space.Owner == "" {
			continue
		}
		if live, ok := board.Get(space.Position); ok {
			live.Owner = space.Owner
		}
	}

	players := make(map[string]*Player, len(state.Players))
	order := make([]string, 0, len(state.Players))
	for i := range state.Players {
		src := state.Players[i]
		if _, exists := players[src.Name]; exists {
			return fmt.Errorf("game: duplicate player %q in state", src.Name)
		}
		restored := copyPlayer(&src)
		players[src.Name] = &restored
		order = append(order, src.Name)
	}

	registered := state.Registered
	if registered < len(players) {
		registered = len(players)
	}

	g.board = board
	g.players = players
	g.order = order
	g.registered = registered
	g.round = state.Round
	g.gameOver = state.GameOver
	return nil
}

func copyPlayer(p *Player) Player {
	out := *p
	if p.Holdings != nil {
		out.Holdings = make([]int, len(p.Holdings))
		copy(out.Holdings, p.Holdings)
	}
	return out
}
