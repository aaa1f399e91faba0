package engine

import "testing"

func testBoard(t *testing.T) *Board {
	t.Helper()
	board := NewBoard()
	if err := board.Configure(DefaultGoIncome, DefaultRents()); err != nil {
		t.Fatalf("Configure failed: %v", err)
	}
	return board
}

func TestBoardConfigure(t *testing.T) {
	board := testBoard(t)

	if board.Len() != RequiredBoardSize {
		t.Errorf("Expected %d spaces, got %d", RequiredBoardSize, board.Len())
	}
	if board.GoIncome() != DefaultGoIncome {
		t.Errorf("Expected go income %d, got %d", DefaultGoIncome, board.GoIncome())
	}

	start, ok := board.Get(0)
	if !ok {
		t.Fatal("Expected start space at index 0")
	}
	if start.Name != StartName {
		t.Errorf("Expected start space named %q, got %q", StartName, start.Name)
	}
	if start.Rent != 0 || start.Price != 0 {
		t.Errorf("Start space must have no rent or price, got rent=%d price=%d", start.Rent, start.Price)
	}

	first, ok := board.Get(1)
	if !ok {
		t.Fatal("Expected space at index 1")
	}
	if first.Name != "Place 1" {
		t.Errorf("Expected default name \"Place 1\", got %q", first.Name)
	}
	if first.Rent != 50 {
		t.Errorf("Expected rent 50 at index 1, got %d", first.Rent)
	}
	if first.Price != 250 {
		t.Errorf("Expected price 250 (5x rent) at index 1, got %d", first.Price)
	}
	if first.Owner != "" {
		t.Errorf("Expected new space to be unowned, got owner %q", first.Owner)
	}

	last, ok := board.Get(24)
	if !ok {
		t.Fatal("Expected space at index 24")
	}
	if last.Rent != 350 || last.Price != 1750 {
		t.Errorf("Expected rent 350 price 1750 at index 24, got rent=%d price=%d", last.Rent, last.Price)
	}
}

func TestBoardConfigureRejectsBadInput(t *testing.T) {
	board := NewBoard()
	if err := board.Configure(0, []int{50, 75}); err == nil {
		t.Error("Expected error for non-positive go income")
	}
	if err := board.Configure(50, []int{50, 0, 75}); err == nil {
		t.Error("Expected error for non-positive rent")
	}
	if board.Len() != 1 {
		t.Errorf("Failed Configure must leave the board untouched, got %d spaces", board.Len())
	}
}

func TestBoardConfigureIsAtomic(t *testing.T) {
	board := testBoard(t)
	if err := board.Configure(50, []int{100, -1}); err == nil {
		t.Fatal("Expected error for negative rent")
	}
	// The previous configuration survives a failed one.
	if board.Len() != RequiredBoardSize {
		t.Errorf("Expected %d spaces after failed reconfigure, got %d", RequiredBoardSize, board.Len())
	}
	if sp, _ := board.Get(1); sp.Rent != 50 {
		t.Errorf("Expected original rent 50 to survive, got %d", sp.Rent)
	}
}

func TestBoardConfigureCustomNames(t *testing.T) {
	board := NewBoard()
	board.SetPlaceNames([]string{StartName, "Elm Street", "Oak Avenue"})
	if err := board.Configure(25, []int{10, 20}); err != nil {
		t.Fatalf("Configure with custom names failed: %v", err)
	}
	if sp, _ := board.Get(2); sp.Name != "Oak Avenue" {
		t.Errorf("Expected custom name \"Oak Avenue\", got %q", sp.Name)
	}

	board = NewBoard()
	board.SetPlaceNames([]string{StartName, "Twin", "Twin"})
	if err := board.Configure(25, []int{10, 20}); err == nil {
		t.Error("Expected error for duplicate space names")
	}

	board = NewBoard()
	board.SetPlaceNames([]string{"Start", "A", "B"})
	if err := board.Configure(25, []int{10, 20}); err == nil {
		t.Errorf("Expected error when the first space is not named %q", StartName)
	}
}

func TestBoardGetOutOfRange(t *testing.T) {
	board := testBoard(t)
	if _, ok := board.Get(-1); ok {
		t.Error("Expected no space at index -1")
	}
	if _, ok := board.Get(RequiredBoardSize); ok {
		t.Errorf("Expected no space at index %d", RequiredBoardSize)
	}
}

func TestBoardMinRent(t *testing.T) {
	board := testBoard(t)
	min, ok := board.MinRent()
	if !ok {
		t.Fatal("Expected a minimum rent on a configured board")
	}
	if min != 50 {
		t.Errorf("Expected minimum rent 50, got %d", min)
	}

	empty := NewBoard()
	if _, ok := empty.MinRent(); ok {
		t.Error("Expected no minimum rent on an unconfigured board")
	}
}

func TestBoardClearOwners(t *testing.T) {
	board := testBoard(t)
	sp, _ := board.Get(3)
	sp.Owner = "Alice"
	board.ClearOwners()
	if sp, _ := board.Get(3); sp.Owner != "" {
		t.Errorf("Expected owner cleared, got %q", sp.Owner)
	}
}

func TestBoardSpacesReturnsCopy(t *testing.T) {
	board := testBoard(t)
	spaces := board.Spaces()
	spaces[1].Owner = "Mallory"
	if sp, _ := board.Get(1); sp.Owner != "" {
		t.Error("Mutating the copy must not touch the board")
	}
}
