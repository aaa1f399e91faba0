package engine

// TryBuy applies the acquisition rule for the space the player currently
// occupies. It reports false, with no state change, when the space is the
// start space, already owned, or the player's cash is not strictly
// greater than the price. Spending down to exactly zero is rejected
// because a player with no cash can no longer take turns.
func (g *Game) TryBuy(name string) bool {
	player, ok := g.players[name]
	if !ok {
		return false
	}
	space, ok := g.board.Get(player.Position)
	if !ok {
		return false
	}
	if space.Rent == 0 {
		return false
	}
	if space.Owner != "" {
		return false
	}
	if player.Cash <= space.Price {
		return false
	}

	player.AdjustCash(-space.Price)
	player.Acquire(space.Position)
	space.Owner = player.Name
	return true
}
