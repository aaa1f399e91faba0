package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/landrush/landrush/game/engine"
)

// gameServiceImpl implements the GameService interface
type gameServiceImpl struct {
	sessions SessionManager
	configs  ConfigManager
	mu       sync.RWMutex
}

// NewGameService creates a new game service instance
func NewGameService(sessions SessionManager, configs ConfigManager) GameService {
	return &gameServiceImpl{
		sessions: sessions,
		configs:  configs,
	}
}

// getConfigID returns the config_id for a given config name, used for consistent API responses
func (s *gameServiceImpl) getConfigID(configName string) string {
	availableConfigs, err := s.configs.ListConfigs()
	if err == nil {
		for _, cfg := range availableConfigs {
			if cfg.Name == configName {
				return cfg.ConfigID
			}
		}
	}
	if configName == "" {
		return "default"
	}
	return configName
}

// CreateSession creates a new game session
func (s *gameServiceImpl) CreateSession(ctx context.Context, configName string) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var config *engine.GameConfig
	var err error
	if configName != "" {
		config, err = s.configs.LoadConfig(configName)
		if err != nil {
			if strings.Contains(err.Error(), "configuration not found") {
				availableConfigs, listErr := s.configs.ListConfigs()
				if listErr == nil && len(availableConfigs) > 0 {
					var configIDs []string
					for _, cfg := range availableConfigs {
						configIDs = append(configIDs, cfg.ConfigID)
					}
					return nil, fmt.Errorf("config '%s' not found. Available configs: %v", configName, configIDs)
				}
				return nil, fmt.Errorf("config '%s' not found. Use /api/configs to list available configurations", configName)
			}
			return nil, fmt.Errorf("failed to load config %s: %w", configName, err)
		}
	} else {
		config = s.configs.GetDefault()
	}

	// Let session manager generate a proper 4-character ID
	session, err := s.sessions.Create("", config)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	configID := configName
	if configID == "" {
		configID = s.getConfigID(config.Name)
	}

	return &SessionInfo{
		ID:             session.ID,
		ConfigName:     configID,
		CreatedAt:      session.CreatedAt,
		LastAccessedAt: session.LastAccessedAt,
		GameState:      session.Engine.GetState(),
		GameConfig:     session.Config,
	}, nil
}

// GetSession retrieves session information
func (s *gameServiceImpl) GetSession(ctx context.Context, sessionID string) (*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)

	return &SessionInfo{
		ID:             session.ID,
		ConfigName:     s.getConfigID(session.Config.Name),
		CreatedAt:      session.CreatedAt,
		LastAccessedAt: session.LastAccessedAt,
		GameState:      session.Engine.GetState(),
		GameConfig:     session.Config,
	}, nil
}

// ListSessions returns all active sessions
func (s *gameServiceImpl) ListSessions(ctx context.Context) ([]*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := s.sessions.List()
	result := make([]*SessionInfo, 0, len(sessions))

	for _, sess := range sessions {
		result = append(result, &SessionInfo{
			ID:             sess.ID,
			ConfigName:     s.getConfigID(sess.Config.Name),
			CreatedAt:      sess.CreatedAt,
			LastAccessedAt: sess.LastAccessedAt,
			GameState:      sess.Engine.GetState(),
			GameConfig:     sess.Config,
		})
	}

	return result, nil
}

// DeleteSession removes a session
func (s *gameServiceImpl) DeleteSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sessions.Delete(sessionID)
}

// TakeTurn plays a single turn for one player. A zero roll asks the
// session's roller for one; autoBuy attempts a purchase when the turn
// ends on an unowned space.
func (s *gameServiceImpl) TakeTurn(ctx context.Context, sessionID, player string, roll int, autoBuy bool) (*TurnResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	if roll == 0 {
		roll = sess.Roller.Roll()
	}

	outcome := sess.Engine.TakeTurn(player, roll)
	if autoBuy && outcome.Settlement == engine.SettleAvailable {
		outcome.Bought = sess.Engine.TryBuy(player)
	}

	winner, status := sess.Engine.Winner()
	result := &TurnResult{
		Outcome:   outcome,
		GameState: sess.Engine.GetState(),
		Events:    s.turnEvents(sess, outcome),
		Winner:    winner,
		Status:    status,
	}
	if status == engine.WinStatusWon {
		result.Events = append(result.Events, GameEvent{
			Type:      "winner",
			Message:   fmt.Sprintf(messageOr(sess.Config.Messages.Winner, "%s wins the game!"), winner),
			Timestamp: time.Now(),
			Player:    winner,
		})
	}

	if err := s.sessions.Save(sessionID); err != nil {
		fmt.Printf("Warning: Failed to persist session %s after turn: %v\n", sessionID, err)
	}

	return result, nil
}

// PlayRound drives one full round over the active roster using the
// session's roller and automated decisions, recording the round snapshot.
func (s *gameServiceImpl) PlayRound(ctx context.Context, sessionID string) (*RoundResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	if err := sess.Engine.Validate(); err != nil {
		return nil, err
	}
	if sess.Engine.Round() == 0 && len(sess.History.Samples()) == 0 {
		sess.History.RecordRound(0, startingBalances(sess.Engine))
	}

	report := sess.Engine.PlayRound(sess.Roller, engine.AutoDecider{}, sess.History)

	result := &RoundResult{
		Report:    report,
		GameState: sess.Engine.GetState(),
	}
	for _, outcome := range report.Outcomes {
		result.Events = append(result.Events, s.turnEvents(sess, outcome)...)
	}
	if report.Status == engine.WinStatusWon {
		result.Events = append(result.Events, GameEvent{
			Type:      "winner",
			Message:   fmt.Sprintf(messageOr(sess.Config.Messages.Winner, "%s wins the game!"), report.Winner),
			Timestamp: time.Now(),
			Player:    report.Winner,
		})
	}

	if err := s.sessions.Save(sessionID); err != nil {
		fmt.Printf("Warning: Failed to persist session %s after round: %v\n", sessionID, err)
	}

	return result, nil
}

// RunGame plays the session's game to completion with automated players.
func (s *gameServiceImpl) RunGame(ctx context.Context, sessionID string) (*RunResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	winner, status, err := sess.Engine.Run(sess.Roller, engine.AutoDecider{}, sess.History)
	if err != nil {
		return nil, err
	}

	result := &RunResult{
		Winner:    winner,
		Status:    status,
		Rounds:    sess.Engine.Round(),
		GameState: sess.Engine.GetState(),
	}

	if err := s.sessions.Save(sessionID); err != nil {
		fmt.Printf("Warning: Failed to persist session %s after run: %v\n", sessionID, err)
	}

	return result, nil
}

// Buy attempts to purchase the space the player currently stands on.
func (s *gameServiceImpl) Buy(ctx context.Context, sessionID, player string) (*BuyResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	result := &BuyResult{Player: player}
	if pos, ok := sess.Engine.Position(player); ok {
		result.Position = pos
		if space, ok := sess.Engine.Board().Get(pos); ok {
			result.Space = space.Name
			result.Price = space.Price
		}
	}
	result.Success = sess.Engine.TryBuy(player)
	result.GameState = sess.Engine.GetState()

	if result.Success {
		if err := s.sessions.Save(sessionID); err != nil {
			fmt.Printf("Warning: Failed to persist session %s after purchase: %v\n", sessionID, err)
		}
	}

	return result, nil
}

// Forfeit withdraws a player from the session's game.
func (s *gameServiceImpl) Forfeit(ctx context.Context, sessionID, player string) (*engine.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	if !sess.Engine.Forfeit(player) {
		return nil, fmt.Errorf("player %q is not active in session %s", player, sessionID)
	}
	state := sess.Engine.GetState()

	if err := s.sessions.Save(sessionID); err != nil {
		fmt.Printf("Warning: Failed to persist session %s after forfeit: %v\n", sessionID, err)
	}

	return state, nil
}

// Reset rebuilds the session's game from its config and clears the
// recorded history.
func (s *gameServiceImpl) Reset(ctx context.Context, sessionID string) (*engine.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	state, err := sess.Engine.ResetToConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to reset session %s: %w", sessionID, err)
	}
	sess.History.Reset()

	if err := s.sessions.Save(sessionID); err != nil {
		fmt.Printf("Warning: Failed to persist session %s after reset: %v\n", sessionID, err)
	}

	return state, nil
}

// GetGameState retrieves the current game state
func (s *gameServiceImpl) GetGameState(ctx context.Context, sessionID string) (*engine.GameState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	return sess.Engine.GetState(), nil
}

// Standings returns each active player's cash, position and holdings in
// registration order.
func (s *gameServiceImpl) Standings(ctx context.Context, sessionID string) ([]PlayerStanding, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	names := sess.Engine.ActiveNames()
	standings := make([]PlayerStanding, 0, len(names))
	for _, name := range names {
		view, ok := sess.Engine.PlayerView(name)
		if !ok {
			continue
		}
		spaceName, _ := sess.Engine.PositionName(name)
		standings = append(standings, PlayerStanding{
			Name:     view.Name,
			Cash:     view.Cash,
			Position: view.Position,
			Space:    spaceName,
			Holdings: view.Holdings,
		})
	}
	return standings, nil
}

// Winner reports the current win status of a session.
func (s *gameServiceImpl) Winner(ctx context.Context, sessionID string) (*WinnerInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	winner, status := sess.Engine.Winner()
	return &WinnerInfo{Status: status, Winner: winner}, nil
}

// GetHistory returns paginated round snapshots
func (s *gameServiceImpl) GetHistory(ctx context.Context, sessionID string, opts HistoryOptions) (*HistoryResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	rounds := groupByRound(sess.History.Samples())
	total := len(rounds)

	// Apply defaults
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit <= 0 {
		opts.Limit = 20
	}
	if opts.Limit > 100 {
		opts.Limit = 100
	}
	if opts.Order == "" {
		opts.Order = "asc"
	}

	totalPages := (total + opts.Limit - 1) / opts.Limit
	if totalPages == 0 {
		totalPages = 1
	}

	start := (opts.Page - 1) * opts.Limit
	end := start + opts.Limit
	if end > total {
		end = total
	}

	var page []RoundSnapshot
	if opts.Order == "desc" {
		for i := total - 1 - start; i >= 0 && i >= total-end; i-- {
			page = append(page, rounds[i])
		}
	} else {
		if start < total {
			page = rounds[start:end]
		}
	}
	if page == nil {
		page = []RoundSnapshot{}
	}

	return &HistoryResponse{
		Rounds:      page,
		TotalRounds: total,
		Page:        opts.Page,
		PageSize:    opts.Limit,
		TotalPages:  totalPages,
		HasNext:     opts.Page < totalPages,
		HasPrevious: opts.Page > 1,
	}, nil
}

// ListConfigs returns available game configurations
func (s *gameServiceImpl) ListConfigs(ctx context.Context) ([]*ConfigInfo, error) {
	return s.configs.ListConfigs()
}

// LoadConfig loads a specific game configuration
func (s *gameServiceImpl) LoadConfig(ctx context.Context, configName string) (*engine.GameConfig, error) {
	return s.configs.LoadConfig(configName)
}

// SaveConfig saves a game configuration to disk
func (s *gameServiceImpl) SaveConfig(ctx context.Context, configName string, config *engine.GameConfig) error {
	return s.configs.SaveConfig(configName, config)
}

// turnEvents generates events from a turn outcome
func (s *gameServiceImpl) turnEvents(sess *Session, outcome engine.TurnOutcome) []GameEvent {
	events := []GameEvent{}
	if outcome.Skipped {
		return events
	}

	spaceName := ""
	if space, ok := sess.Engine.Board().Get(outcome.To); ok {
		spaceName = space.Name
	}

	events = append(events, GameEvent{
		Type:      "turn",
		Message:   fmt.Sprintf("%s rolled %d and moved to %s", outcome.Player, outcome.Roll, spaceName),
		Timestamp: time.Now(),
		Player:    outcome.Player,
		Space:     spaceName,
	})

	if outcome.PassedGo {
		events = append(events, GameEvent{
			Type:      "passed_go",
			Message:   fmt.Sprintf("%s collected $%d for passing %s", outcome.Player, sess.Engine.Board().GoIncome(), engine.StartName),
			Timestamp: time.Now(),
			Player:    outcome.Player,
			Amount:    sess.Engine.Board().GoIncome(),
		})
	}

	switch outcome.Settlement {
	case engine.SettleAvailable:
		if outcome.Bought {
			price := 0
			if space, ok := sess.Engine.Board().Get(outcome.To); ok {
				price = space.Price
			}
			events = append(events, GameEvent{
				Type:      "purchase",
				Message:   fmt.Sprintf(messageOr(sess.Config.Messages.Purchase, "%s bought %s for $%d"), outcome.Player, spaceName, price),
				Timestamp: time.Now(),
				Player:    outcome.Player,
				Space:     spaceName,
				Amount:    price,
			})
		}
	case engine.SettleRentPaid:
		events = append(events, GameEvent{
			Type:      "rent",
			Message:   fmt.Sprintf(messageOr(sess.Config.Messages.RentPaid, "%s paid $%d rent to %s"), outcome.Player, outcome.RentPaid, outcome.Landlord),
			Timestamp: time.Now(),
			Player:    outcome.Player,
			Space:     spaceName,
			Amount:    outcome.RentPaid,
		})
	case engine.SettleEliminated:
		events = append(events, GameEvent{
			Type:      "elimination",
			Message:   fmt.Sprintf(messageOr(sess.Config.Messages.Eliminated, "%s is bankrupt and out of the game"), outcome.Player),
			Timestamp: time.Now(),
			Player:    outcome.Player,
			Space:     spaceName,
			Amount:    outcome.RentPaid,
		})
	}

	return events
}

func messageOr(template, fallback string) string {
	if template == "" {
		return fallback
	}
	return template
}

func startingBalances(eng *engine.GameEngine) []engine.BalanceSample {
	names := eng.ActiveNames()
	samples := make([]engine.BalanceSample, 0, len(names))
	for _, name := range names {
		cash, _ := eng.Balance(name)
		samples = append(samples, engine.BalanceSample{Round: 0, Player: name, Cash: cash})
	}
	return samples
}

// groupByRound folds the flat sample list into per-round snapshots,
// preserving round order.
func groupByRound(samples []engine.BalanceSample) []RoundSnapshot {
	var rounds []RoundSnapshot
	index := map[int]int{}
	for _, sample := range samples {
		i, ok := index[sample.Round]
		if !ok {
			i = len(rounds)
			index[sample.Round] = i
			rounds = append(rounds, RoundSnapshot{Round: sample.Round})
		}
		rounds[i].Balances = append(rounds[i].Balances, sample)
	}
	return rounds
}
