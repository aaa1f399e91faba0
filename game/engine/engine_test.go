package engine

import "testing"

func createTestConfig() *GameConfig {
	config := DefaultConfig()
	config.Players = []PlayerSetup{
		{Name: "Alice", Cash: DefaultStartingCash},
		{Name: "Bob", Cash: DefaultStartingCash},
	}
	return config
}

// scriptedRolls returns a roller that replays the given rolls in order
// and then repeats the last one.
func scriptedRolls(rolls ...int) Roller {
	i := 0
	return RollFunc(func() int {
		if i < len(rolls) {
			roll := rolls[i]
			i++
			return roll
		}
		return rolls[len(rolls)-1]
	})
}

type quitAfter struct {
	player string
	turns  int
	seen   int
}

func (q *quitAfter) KeepPlaying(player string) Decision {
	if player == q.player {
		q.seen++
		if q.seen > q.turns {
			return DecisionQuit
		}
	}
	return DecisionRoll
}

func (q *quitAfter) BuyProperty(string, Space) bool {
	return true
}

func TestNewEngine(t *testing.T) {
	eng, err := NewEngine(createTestConfig())
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	if err := eng.Validate(); err != nil {
		t.Errorf("Expected a fresh engine to validate: %v", err)
	}
	if eng.Round() != 0 {
		t.Errorf("Expected round 0, got %d", eng.Round())
	}
	if eng.IsGameOver() {
		t.Error("Expected a fresh game to be running")
	}
	names := eng.ActiveNames()
	if len(names) != 2 || names[0] != "Alice" || names[1] != "Bob" {
		t.Errorf("Expected roster [Alice Bob] in registration order, got %v", names)
	}
}

func TestNewEngineRejectsBadConfig(t *testing.T) {
	config := createTestConfig()
	config.Rents = config.Rents[:10]
	if _, err := NewEngine(config); err == nil {
		t.Error("Expected error for a short rent list")
	}

	config = createTestConfig()
	config.Players = config.Players[:1]
	if _, err := NewEngine(config); err == nil {
		t.Error("Expected error for a single-player roster")
	}
}

func TestNewEngineWithDefaults(t *testing.T) {
	eng := NewEngineWithDefaults()
	if err := eng.Validate(); err != nil {
		t.Errorf("Expected the default engine to validate: %v", err)
	}
	if len(eng.ActiveNames()) != 4 {
		t.Errorf("Expected 4 default players, got %d", len(eng.ActiveNames()))
	}
}

func TestValidateAfterForfeits(t *testing.T) {
	eng, err := NewEngine(createTestConfig())
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	if !eng.Forfeit("Bob") {
		t.Fatal("Expected forfeit to succeed")
	}
	if err := eng.Validate(); err == nil {
		t.Error("Expected validation to fail with one active player")
	}
}

func TestPlayRoundTakesOneTurnPerPlayer(t *testing.T) {
	eng, err := NewEngine(createTestConfig())
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}

	report := eng.PlayRound(scriptedRolls(3, 5), AutoDecider{})
	if len(report.Outcomes) != 2 {
		t.Fatalf("Expected 2 outcomes, got %d", len(report.Outcomes))
	}
	if report.Round != 1 {
		t.Errorf("Expected round 1, got %d", report.Round)
	}
	if report.Status != WinStatusUndecided {
		t.Errorf("Expected undecided, got %q", report.Status)
	}
	if eng.Round() != 1 {
		t.Errorf("Expected the round counter to advance, got %d", eng.Round())
	}

	// AutoDecider buys every affordable unowned space.
	if !report.Outcomes[0].Bought {
		t.Error("Expected Alice to buy the space she landed on")
	}
	if pos, _ := eng.Position("Alice"); pos != 3 {
		t.Errorf("Expected Alice at 3, got %d", pos)
	}
	if pos, _ := eng.Position("Bob"); pos != 5 {
		t.Errorf("Expected Bob at 5, got %d", pos)
	}
	if len(report.Snapshot) != 2 {
		t.Errorf("Expected a balance sample per active player, got %d", len(report.Snapshot))
	}
}

func TestPlayRoundQuitForfeitsPlayer(t *testing.T) {
	eng, err := NewEngine(createTestConfig())
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}

	report := eng.PlayRound(scriptedRolls(3), &quitAfter{player: "Bob", turns: 0})
	if report.Status != WinStatusWon || report.Winner != "Alice" {
		t.Errorf("Expected Alice to win after Bob quits, got %q (%q)", report.Winner, report.Status)
	}
	if _, ok := eng.Balance("Bob"); ok {
		t.Error("Expected Bob to be removed after quitting")
	}
	// A decided round does not advance the counter or record a snapshot.
	if eng.Round() != 0 {
		t.Errorf("Expected round counter to stay at 0, got %d", eng.Round())
	}
	if report.Snapshot != nil {
		t.Error("Expected no snapshot for a decided round")
	}
}

func TestRunRecordsHistory(t *testing.T) {
	eng, err := NewEngine(createTestConfig())
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	history := NewHistoryRecorder()

	winner, status, err := eng.Run(NewRoller(42), AutoDecider{}, history)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if status != WinStatusWon {
		t.Fatalf("Expected a won game, got %q", status)
	}
	if winner == "" {
		t.Fatal("Expected a winner name")
	}
	if !eng.IsGameOver() {
		t.Error("Expected the game-over flag after a run")
	}

	samples := history.Samples()
	if len(samples) == 0 {
		t.Fatal("Expected recorded history")
	}
	// Round 0 captures the starting balances before any turn.
	if samples[0].Round != 0 || samples[0].Cash != DefaultStartingCash {
		t.Errorf("Expected a round-0 sample at %d cash, got round %d cash %d",
			DefaultStartingCash, samples[0].Round, samples[0].Cash)
	}
	// Round numbers are dense: every completed round appears exactly once
	// per then-active player, in order.
	lastRound := 0
	for _, sample := range samples {
		if sample.Round < lastRound {
			t.Fatalf("Expected non-decreasing rounds, got %d after %d", sample.Round, lastRound)
		}
		if sample.Round > lastRound+1 {
			t.Fatalf("Expected dense round numbers, jumped from %d to %d", lastRound, sample.Round)
		}
		lastRound = sample.Round
	}
	if history.Rounds() != eng.Round() {
		t.Errorf("Expected recorded rounds %d to match the engine, got %d", eng.Round(), history.Rounds())
	}

	// The winner holds everything that was ever paid in: total cash is
	// conserved up to go income, so the winner's balance is positive.
	if cash, ok := eng.Balance(winner); !ok || cash <= 0 {
		t.Errorf("Expected the winner to hold positive cash, got %d", cash)
	}
}

func TestRunIsReproducibleUnderSeed(t *testing.T) {
	first, err := NewEngine(createTestConfig())
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	second, err := NewEngine(createTestConfig())
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}

	winnerA, _, err := first.Run(NewRoller(7), AutoDecider{})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	winnerB, _, err := second.Run(NewRoller(7), AutoDecider{})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if winnerA != winnerB {
		t.Errorf("Expected identical winners under the same seed, got %q and %q", winnerA, winnerB)
	}
	if first.Round() != second.Round() {
		t.Errorf("Expected identical round counts under the same seed, got %d and %d", first.Round(), second.Round())
	}
}

func TestRunRejectsInvalidGame(t *testing.T) {
	eng, err := NewEngine(createTestConfig())
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	eng.Forfeit("Alice")
	if _, _, err := eng.Run(NewRoller(1), AutoDecider{}); err == nil {
		t.Error("Expected Run to refuse an invalid game")
	}
}

func TestEngineResetKeepsBoard(t *testing.T) {
	eng, err := NewEngine(createTestConfig())
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	if _, _, err := eng.Run(NewRoller(3), AutoDecider{}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	state := eng.Reset()
	if len(state.Players) != 0 {
		t.Errorf("Expected empty roster after reset, got %d players", len(state.Players))
	}
	for _, space := range state.Spaces {
		if space.Owner != "" {
			t.Errorf("Expected no owners after reset, space %d owned by %q", space.Position, space.Owner)
		}
	}
	if len(state.Spaces) != RequiredBoardSize {
		t.Errorf("Expected the board to survive reset, got %d spaces", len(state.Spaces))
	}

	// ResetToConfig re-registers the configured roster for another run.
	state, err = eng.ResetToConfig()
	if err != nil {
		t.Fatalf("ResetToConfig failed: %v", err)
	}
	if len(state.Players) != 2 {
		t.Errorf("Expected the configured roster back, got %d players", len(state.Players))
	}
	if _, _, err := eng.Run(NewRoller(9), AutoDecider{}); err != nil {
		t.Errorf("Expected a fresh run after reset: %v", err)
	}
}

func TestEngineStateRoundTrip(t *testing.T) {
	eng, err := NewEngine(createTestConfig())
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	eng.PlayRound(scriptedRolls(3, 5), AutoDecider{})

	state := eng.GetState()
	if state.ConfigName != "classic" {
		t.Errorf("Expected config name in the snapshot, got %q", state.ConfigName)
	}

	restored := NewEngineWithDefaults()
	if err := restored.SetState(state); err != nil {
		t.Fatalf("SetState failed: %v", err)
	}
	if restored.Round() != eng.Round() {
		t.Errorf("Expected round %d, got %d", eng.Round(), restored.Round())
	}
	posA, _ := eng.Position("Alice")
	posB, _ := restored.Position("Alice")
	if posA != posB {
		t.Errorf("Expected Alice at %d after restore, got %d", posA, posB)
	}
}

func TestSetConfigRebuildsGame(t *testing.T) {
	eng, err := NewEngine(createTestConfig())
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	eng.PlayRound(scriptedRolls(3, 5), AutoDecider{})

	next := createTestConfig()
	next.Name = "rematch"
	next.Players = []PlayerSetup{
		{Name: "Carol", Cash: 500},
		{Name: "Dave", Cash: 500},
	}
	if err := eng.SetConfig(next); err != nil {
		t.Fatalf("SetConfig failed: %v", err)
	}
	names := eng.ActiveNames()
	if len(names) != 2 || names[0] != "Carol" {
		t.Errorf("Expected the new roster, got %v", names)
	}
	if eng.Round() != 0 {
		t.Errorf("Expected a fresh round counter, got %d", eng.Round())
	}

	bad := createTestConfig()
	bad.GoIncome = 0
	if err := eng.SetConfig(bad); err == nil {
		t.Error("Expected SetConfig to reject an invalid config")
	}
}

func TestHistoryRecorder(t *testing.T) {
	history := NewHistoryRecorder()
	history.RecordRound(1, []BalanceSample{{Round: 1, Player: "Alice", Cash: 900}})
	history.RecordRound(2, []BalanceSample{{Round: 2, Player: "Alice", Cash: 950}})

	if history.Rounds() != 2 {
		t.Errorf("Expected 2 rounds, got %d", history.Rounds())
	}
	samples := history.Samples()
	if len(samples) != 2 {
		t.Fatalf("Expected 2 samples, got %d", len(samples))
	}

	history.SetSamples(samples[:1])
	if history.Rounds() != 1 {
		t.Errorf("Expected 1 round after SetSamples, got %d", history.Rounds())
	}

	history.Reset()
	if len(history.Samples()) != 0 {
		t.Error("Expected empty history after reset")
	}
}
