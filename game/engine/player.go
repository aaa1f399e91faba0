package engine

// Player is one account in the game: a cash balance, a board position and
// the spaces it owns. Holdings hold space indices in purchase order. A
// fresh player has an empty non-nil slice; elimination sets Holdings to
// nil so a bankrupt account can be told apart from one that never bought
// anything.
type Player struct {
	Name     string `json:"name"`
	Cash     int    `json:"cash"`
	Position int    `json:"position"`
	Holdings []int  `json:"holdings"`
	Seq      int    `json:"seq"`
}

// AdjustCash adds delta to the balance. Guard conditions are the caller's
// responsibility; the balance itself never rejects a change.
func (p *Player) AdjustCash(delta int) {
	p.Cash += delta
}

// Relocate moves the player to the given board index.
func (p *Player) Relocate(position int) {
	p.Position = position
}

// Acquire records ownership of a space index. The caller updates the
// space's owner field.
func (p *Player) Acquire(position int) {
	p.Holdings = append(p.Holdings, position)
}

// Eliminate releases every held space back to unowned and drops the
// holdings to the bankrupt sentinel.
func (p *Player) Eliminate(board *Board) {
	for _, index := range p.Holdings {
		if space, ok := board.Get(index); ok {
			space.Owner = ""
		}
	}
	p.Holdings = nil
}

// Bankrupt reports whether the player has been eliminated.
func (p *Player) Bankrupt() bool {
	return p.Holdings == nil
}
