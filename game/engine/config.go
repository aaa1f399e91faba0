package engine

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// PlayerSetup pairs a roster name with its starting cash.
type PlayerSetup struct {
	Name string `json:"name"`
	Cash int    `json:"cash"`
}

// GameMessages holds the transport-facing message templates. Purchase
// takes (player, space, price), RentPaid takes (player, amount, landlord),
// Eliminated and Winner take the player name.
type GameMessages struct {
	Welcome    string `json:"welcome"`
	Purchase   string `json:"purchase"`
	RentPaid   string `json:"rent_paid"`
	Eliminated string `json:"eliminated"`
	Winner     string `json:"winner"`
}

// GameConfig describes a complete game setup, loadable from JSON.
type GameConfig struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	GoIncome    int           `json:"go_income"`
	Rents       []int         `json:"rents"`
	SpaceNames  []string      `json:"space_names,omitempty"`
	Players     []PlayerSetup `json:"players"`
	Messages    GameMessages  `json:"messages"`
}

// ValidateGameConfig checks a config against the setup rules. Each
// failure returns a specific reason so config authors can fix their
// files.
func ValidateGameConfig(config *GameConfig) error {
	if config == nil {
		return fmt.Errorf("config validation: config is required")
	}
	if config.Name == "" {
		return fmt.Errorf("config validation: name is required")
	}
	if config.Description == "" {
		return fmt.Errorf("config validation: description is required")
	}
	if config.GoIncome <= 0 {
		return fmt.Errorf("config validation: go_income must be positive, got %d", config.GoIncome)
	}
	if len(config.Rents) != RequiredBoardSize-1 {
		return fmt.Errorf("config validation: exactly %d rents are required for a %d-space board, got %d",
			RequiredBoardSize-1, RequiredBoardSize, len(config.Rents))
	}
	minRent := config.Rents[0]
	for i, rent := range config.Rents {
		if rent <= 0 {
			return fmt.Errorf("config validation: rents[%d] must be positive, got %d", i, rent)
		}
		if rent < minRent {
			minRent = rent
		}
	}
	if len(config.SpaceNames) > 0 {
		if len(config.SpaceNames) != RequiredBoardSize {
			return fmt.Errorf("config validation: space_names must list all %d spaces, got %d",
				RequiredBoardSize, len(config.SpaceNames))
		}
		if config.SpaceNames[0] != StartName {
			return fmt.Errorf("config validation: space_names[0] must be %q, got %q", StartName, config.SpaceNames[0])
		}
		seen := make(map[string]bool, len(config.SpaceNames))
		for i, name := range config.SpaceNames {
			if name == "" {
				return fmt.Errorf("config validation: space_names[%d] must not be empty", i)
			}
			if seen[name] {
				return fmt.Errorf("config validation: duplicate space name %q", name)
			}
			seen[name] = true
		}
	}
	if len(config.Players) < 2 {
		return fmt.Errorf("config validation: at least 2 players are required, got %d", len(config.Players))
	}
	names := make(map[string]bool, len(config.Players))
	for i, player := range config.Players {
		if strings.TrimSpace(player.Name) == "" {
			return fmt.Errorf("config validation: players[%d] name must not be empty", i)
		}
		if names[player.Name] {
			return fmt.Errorf("config validation: duplicate player name %q", player.Name)
		}
		names[player.Name] = true
		if player.Cash <= 0 {
			return fmt.Errorf("config validation: player %q cash must be positive, got %d", player.Name, player.Cash)
		}
		if player.Cash <= minRent {
			return fmt.Errorf("config validation: player %q cash %d does not clear the minimum rent %d",
				player.Name, player.Cash, minRent)
		}
	}
	if config.Messages.Welcome == "" {
		return fmt.Errorf("config validation: messages.welcome is required")
	}
	if config.Messages.Winner == "" {
		return fmt.Errorf("config validation: messages.winner is required")
	}
	if !strings.Contains(config.Messages.Winner, "%s") {
		return fmt.Errorf("config validation: messages.winner must contain a %%s placeholder for the player name")
	}
	return nil
}

// DefaultRents mirrors the classic board: rents climb from 50 to 350 in
// blocks of three.
func DefaultRents() []int {
	rents := make([]int, 0, RequiredBoardSize-1)
	for _, rent := range []int{50, 75, 100, 150, 200, 250, 300, 350} {
		rents = append(rents, rent, rent, rent)
	}
	return rents
}

// DefaultMessages returns the stock message templates.
func DefaultMessages() GameMessages {
	return GameMessages{
		Welcome:    "Welcome to Land Rush! Last player holding cash wins.",
		Purchase:   "%s bought %s for $%d",
		RentPaid:   "%s paid $%d rent to %s",
		Eliminated: "%s is bankrupt and out of the game",
		Winner:     "%s wins the game!",
	}
}

// DefaultConfig returns a playable four-player setup on the classic
// 25-space board.
func DefaultConfig() *GameConfig {
	config := &GameConfig{
		Name:        "classic",
		Description: "Classic 25-space board with four players and standard rents",
		GoIncome:    DefaultGoIncome,
		Rents:       DefaultRents(),
		Messages:    DefaultMessages(),
	}
	for i := 1; i <= 4; i++ {
		config.Players = append(config.Players, PlayerSetup{
			Name: fmt.Sprintf("Player %d", i),
			Cash: DefaultStartingCash,
		})
	}
	return config
}

// RosterConfig returns the default board with a generated roster of n
// players, used by batch simulations.
func RosterConfig(n int) *GameConfig {
	config := DefaultConfig()
	config.Players = config.Players[:0]
	for i := 1; i <= n; i++ {
		config.Players = append(config.Players, PlayerSetup{
			Name: fmt.Sprintf("Player %d", i),
			Cash: DefaultStartingCash,
		})
	}
	return config
}

// LoadGameConfig reads and validates a config file.
func LoadGameConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var config GameConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err := ValidateGameConfig(&config); err != nil {
		return nil, err
	}
	return &config, nil
}
