// Command validate checks the game configuration JSON files in the configs
// directory. It checks:
//   - JSON structure and required fields
//   - Rent table size (24 rents for the 25-space board) and positive values
//   - Optional space names: 25 entries, unique, index 0 must be "Go"
//   - Roster rules: at least 2 players, unique names, positive cash that
//     clears the cheapest rent on the board
//   - Required message templates (welcome, winner with a %s placeholder)
//   - Affordability: how much of the board each starting stack can buy
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config mirrors the JSON schema for a game configuration.
type Config struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	GoIncome    int            `json:"go_income"`
	Rents       []int          `json:"rents"`
	SpaceNames  []string       `json:"space_names"`
	Players     []PlayerEntry  `json:"players"`
	Messages    MessageEntries `json:"messages"`
}

// PlayerEntry is one roster row.
type PlayerEntry struct {
	Name string `json:"name"`
	Cash int    `json:"cash"`
}

// MessageEntries holds the transport-facing message templates.
type MessageEntries struct {
	Welcome    string `json:"welcome"`
	Purchase   string `json:"purchase"`
	RentPaid   string `json:"rent_paid"`
	Eliminated string `json:"eliminated"`
	Winner     string `json:"winner"`
}

// boardSize is the fixed board length; index 0 is the Go space and the
// remaining spaces each need a rent.
const boardSize = 25

// priceMultiplier turns a rent into a purchase price.
const priceMultiplier = 5

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

// validateConfig loads and validates a single configuration JSON file.
func validateConfig(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to read file: %v", err))
		return result
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Invalid JSON: %v", err))
		return result
	}

	if config.Name == "" {
		result.Valid = false
		result.Errors = append(result.Errors, "Missing required field: name")
	}
	if config.Description == "" {
		result.Valid = false
		result.Errors = append(result.Errors, "Missing required field: description")
	}

	if config.GoIncome <= 0 {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("go_income must be positive, got %d", config.GoIncome))
	}

	// Validate the rent table
	minRent := 0
	maxRent := 0
	if len(config.Rents) != boardSize-1 {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Expected %d rents for a %d-space board, got %d",
			boardSize-1, boardSize, len(config.Rents)))
	} else {
		minRent = config.Rents[0]
		for i, rent := range config.Rents {
			if rent <= 0 {
				result.Valid = false
				result.Errors = append(result.Errors, fmt.Sprintf("rents[%d] must be positive, got %d", i, rent))
			}
			if rent < minRent {
				minRent = rent
			}
			if rent > maxRent {
				maxRent = rent
			}
		}
	}

	// Validate optional space names
	if len(config.SpaceNames) > 0 {
		if len(config.SpaceNames) != boardSize {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("space_names must list all %d spaces, got %d",
				boardSize, len(config.SpaceNames)))
		} else {
			if config.SpaceNames[0] != "Go" {
				result.Valid = false
				result.Errors = append(result.Errors, fmt.Sprintf("space_names[0] must be \"Go\", got %q", config.SpaceNames[0]))
			}
			seen := map[string]bool{}
			for i, name := range config.SpaceNames {
				if name == "" {
					result.Valid = false
					result.Errors = append(result.Errors, fmt.Sprintf("space_names[%d] must not be empty", i))
				}
				if seen[name] {
					result.Valid = false
					result.Errors = append(result.Errors, fmt.Sprintf("Duplicate space name %q", name))
				}
				seen[name] = true
			}
		}
	}

	// Validate the roster
	if len(config.Players) < 2 {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("At least 2 players are required, got %d", len(config.Players)))
	}
	names := map[string]bool{}
	for i, player := range config.Players {
		if strings.TrimSpace(player.Name) == "" {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("players[%d] name must not be empty", i))
			continue
		}
		if names[player.Name] {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("Duplicate player name %q", player.Name))
		}
		names[player.Name] = true
		if player.Cash <= 0 {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("Player %q cash must be positive, got %d", player.Name, player.Cash))
		} else if minRent > 0 && player.Cash <= minRent {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("Player %q cash %d does not clear the minimum rent %d",
				player.Name, player.Cash, minRent))
		}
	}

	// Validate messages
	if config.Messages.Welcome == "" {
		result.Valid = false
		result.Errors = append(result.Errors, "Missing required message: welcome")
	}
	if config.Messages.Winner == "" {
		result.Valid = false
		result.Errors = append(result.Errors, "Missing required message: winner")
	} else if !strings.Contains(config.Messages.Winner, "%s") {
		result.Valid = false
		result.Errors = append(result.Errors, "Message winner must contain a %s placeholder for the player name")
	}

	// Add informational data
	if result.Valid {
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Name: %s", config.Name))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Players: %d", len(config.Players)))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Go income: $%d", config.GoIncome))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Rents: $%d-$%d", minRent, maxRent))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Prices: $%d-$%d", minRent*priceMultiplier, maxRent*priceMultiplier))
		result.Errors = append(result.Errors, affordabilityInfo(config.Rents, config.Players))
	}

	return result
}

// affordabilityInfo reports how much of the board the poorest starting
// stack can buy outright. A purchase needs cash strictly above the price,
// so a player who never clears any price can only ever pay rent.
func affordabilityInfo(rents []int, players []PlayerEntry) string {
	if len(rents) == 0 || len(players) == 0 {
		return "✓ Affordability: n/a"
	}

	poorest := players[0].Cash
	for _, player := range players {
		if player.Cash < poorest {
			poorest = player.Cash
		}
	}

	affordable := 0
	for _, rent := range rents {
		if poorest > rent*priceMultiplier {
			affordable++
		}
	}

	if affordable == 0 {
		return fmt.Sprintf("✓ Affordability: poorest stack $%d cannot buy any space at game start", poorest)
	}
	return fmt.Sprintf("✓ Affordability: poorest stack $%d can open by buying %d/%d spaces", poorest, affordable, len(rents))
}

// main scans the configs directory (first argument, default "configs") for
// *.json files and validates each one, printing a concise report and
// exiting with non-zero status if any are invalid.
func main() {
	configDir := "configs"
	if len(os.Args) > 1 {
		configDir = os.Args[1]
	}

	files, err := filepath.Glob(filepath.Join(configDir, "*.json"))
	if err != nil {
		fmt.Printf("Error finding config files: %v\n", err)
		os.Exit(1)
	}

	if len(files) == 0 {
		fmt.Printf("No config files found in %s\n", configDir)
		os.Exit(1)
	}

	allValid := true
	for _, file := range files {
		result := validateConfig(file)

		fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Println("✅ VALID")
			for _, info := range result.Errors {
				fmt.Println("  " + info)
			}
		} else {
			fmt.Println("❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				if !strings.HasPrefix(err, "✓") {
					fmt.Println("  ❌ " + err)
				}
			}
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Println("✅ All configurations are valid!")
	} else {
		fmt.Println("❌ Some configurations have errors")
		os.Exit(1)
	}
}
