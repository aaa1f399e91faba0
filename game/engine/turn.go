package engine

import "fmt"

// AdvanceTurn runs one player's turn: movement with wraparound income
// followed by settlement at the destination. Turns that cannot be played
// (unknown player, too few active players, roll outside the die range,
// zero cash) are reported as skips, not errors, so a driver can feed
// turns blindly.
func (g *Game) AdvanceTurn(name string, roll int) TurnOutcome {
	outcome := TurnOutcome{Player: name, Roll: roll, Settlement: SettleNone}

	player, ok := g.players[name]
	if !ok {
		outcome.Skipped = true
		outcome.SkipReason = "unknown or eliminated player"
		return outcome
	}
	if len(g.players) < 2 {
		outcome.Skipped = true
		outcome.SkipReason = "not enough active players"
		return outcome
	}
	if roll < MinRoll || roll > MaxRoll {
		outcome.Skipped = true
		outcome.SkipReason = fmt.Sprintf("roll %d outside %d..%d", roll, MinRoll, MaxRoll)
		return outcome
	}
	if player.Cash == 0 {
		outcome.Skipped = true
		outcome.SkipReason = "no cash to play"
		return outcome
	}

	outcome.From = player.Position

	// Wrapping past the start space pays the income exactly once; landing
	// on it exactly wraps to index 0 and still pays.
	next := player.Position + roll
	if next >= g.board.Len() {
		next -= g.board.Len()
		player.AdjustCash(g.board.GoIncome())
		outcome.PassedGo = true
	}
	player.Relocate(next)
	outcome.To = next

	space, _ := g.board.Get(next)
	switch {
	case space.Owner == player.Name:
		outcome.Settlement = SettleOwnSpace
	case space.Owner == "":
		if space.Rent > 0 {
			outcome.Settlement = SettleAvailable
		}
	default:
		landlord := g.players[space.Owner]
		outcome.Landlord = landlord.Name
		if player.Cash > space.Rent {
			player.AdjustCash(-space.Rent)
			landlord.AdjustCash(space.Rent)
			outcome.Settlement = SettleRentPaid
			outcome.RentPaid = space.Rent
		} else {
			// The landlord takes everything the player has left, not the
			// nominal rent.
			outcome.RentPaid = player.Cash
			landlord.AdjustCash(player.Cash)
			player.AdjustCash(-player.Cash)
			player.Eliminate(g.board)
			delete(g.players, name)
			outcome.Settlement = SettleEliminated
			outcome.Eliminated = true
		}
	}
	return outcome
}
