package engine

import "math/rand"

// Roller supplies die rolls. The engine never generates randomness on its
// own; whoever drives the game owns the roller, which keeps simulations
// reproducible under a fixed seed.
type Roller interface {
	Roll() int
}

// RollFunc adapts a plain function to the Roller interface.
type RollFunc func() int

// Roll calls f.
func (f RollFunc) Roll() int {
	return f()
}

// NewRoller returns a seeded pseudo-random roller producing values in
// [MinRoll, MaxRoll].
func NewRoller(seed int64) Roller {
	rng := rand.New(rand.NewSource(seed))
	return RollFunc(func() int {
		return rng.Intn(MaxRoll-MinRoll+1) + MinRoll
	})
}

// Decision answers the keep-playing question in manual mode.
type Decision int

const (
	// DecisionRoll means the player takes their turn.
	DecisionRoll Decision = iota
	// DecisionQuit withdraws the player from the game.
	DecisionQuit
)

// DecisionProvider is the manual-mode collaborator. The engine asks it
// whether a player keeps rolling and whether to buy an offered space; it
// never reads input itself.
type DecisionProvider interface {
	KeepPlaying(player string) Decision
	BuyProperty(player string, space Space) bool
}

// AutoDecider always rolls and always attempts an affordable purchase.
// Batch simulations and the service layer use it.
type AutoDecider struct{}

// KeepPlaying always answers roll.
func (AutoDecider) KeepPlaying(string) Decision {
	return DecisionRoll
}

// BuyProperty always answers yes.
func (AutoDecider) BuyProperty(string, Space) bool {
	return true
}
