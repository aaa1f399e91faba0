package engine

import "fmt"

// Space is a single board position. Ownership is tracked by player name;
// an empty Owner means the space is unowned. The start space has rent 0
// and can never be owned.
type Space struct {
	Name     string `json:"name"`
	Position int    `json:"position"`
	Rent     int    `json:"rent"`
	Price    int    `json:"price"`
	Owner    string `json:"owner,omitempty"`
}

// DefaultPlaceNames returns the standard name list for a board with n
// ownable spaces: the start space followed by "Place 1".."Place n".
func DefaultPlaceNames(n int) []string {
	names := make([]string, 0, n+1)
	names = append(names, StartName)
	for i := 1; i <= n; i++ {
		names = append(names, fmt.Sprintf("Place %d", i))
	}
	return names
}

// Board is the position registry. It owns every Space; players refer to
// spaces by index and spaces refer to players by name, so the two sides
// never hold pointers into each other.
type Board struct {
	spaces   []Space
	goIncome int
	names    []string
}

// NewBoard returns a board holding only the start space. Configure builds
// the ownable spaces.
func NewBoard() *Board {
	return &Board{spaces: []Space{{Name: StartName, Position: 0}}}
}

// SetPlaceNames overrides the default space names. The list must start
// with the start space name and is checked during Configure.
func (b *Board) SetPlaceNames(names []string) {
	b.names = names
}

// Configure builds spaces 1..len(rents), deriving each price as
// PriceMultiplier times the rent. On any failure the board keeps its
// previous spaces untouched.
func (b *Board) Configure(goIncome int, rents []int) error {
	if goIncome <= 0 {
		return fmt.Errorf("board: go income must be positive, got %d", goIncome)
	}
	for i, rent := range rents {
		if rent <= 0 {
			return fmt.Errorf("board: rent for space %d must be positive, got %d", i+1, rent)
		}
	}
	names := b.names
	if len(names) == 0 {
		names = DefaultPlaceNames(len(rents))
	}
	if len(names) != len(rents)+1 {
		return fmt.Errorf("board: %d names provided for %d spaces", len(names), len(rents)+1)
	}
	if names[0] != StartName {
		return fmt.Errorf("board: the first space must be named %q, got %q", StartName, names[0])
	}

	spaces := make([]Space, 0, len(rents)+1)
	spaces = append(spaces, Space{Name: names[0], Position: 0})
	seen := map[string]bool{names[0]: true}
	for i, rent := range rents {
		name := names[i+1]
		if seen[name] {
			return fmt.Errorf("board: duplicate space name %q", name)
		}
		seen[name] = true
		spaces = append(spaces, Space{
			Name:     name,
			Position: i + 1,
			Rent:     rent,
			Price:    PriceMultiplier * rent,
		})
	}

	b.spaces = spaces
	b.goIncome = goIncome
	return nil
}

// Get returns the space at the given index, or false when the index is
// outside the configured board.
func (b *Board) Get(index int) (*Space, bool) {
	if index < 0 || index >= len(b.spaces) {
		return nil, false
	}
	return &b.spaces[index], true
}

// Len returns the number of spaces including the start space.
func (b *Board) Len() int {
	return len(b.spaces)
}

// GoIncome returns the amount paid for passing or landing on the start
// space.
func (b *Board) GoIncome() int {
	return b.goIncome
}

// Rents returns the rent of every ownable space in board order.
func (b *Board) Rents() []int {
	rents := make([]int, 0, len(b.spaces)-1)
	for _, sp := range b.spaces[1:] {
		rents = append(rents, sp.Rent)
	}
	return rents
}

// MinRent returns the cheapest rent on the board. ok is false when no
// ownable spaces have been configured.
func (b *Board) MinRent() (int, bool) {
	if len(b.spaces) < 2 {
		return 0, false
	}
	min := b.spaces[1].Rent
	for _, sp := range b.spaces[2:] {
		if sp.Rent < min {
			min = sp.Rent
		}
	}
	return min, true
}

// ClearOwners releases every space back to unowned.
func (b *Board) ClearOwners() {
	for i := range b.spaces {
		b.spaces[i].Owner = ""
	}
}

// Spaces returns a copy of every space in board order.
func (b *Board) Spaces() []Space {
	out := make([]Space, len(b.spaces))
	copy(out, b.spaces)
	return out
}
