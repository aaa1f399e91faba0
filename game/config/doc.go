// Package config provides configuration management for the Land Rush game.
//
// The config package handles:
//   - Loading board configurations from JSON files
//   - Configuration validation and verification
//   - Default configuration management
//   - Configuration discovery and listing
//
// Configuration Format:
//
// Game configurations are stored as JSON files in the configs directory.
// Each configuration defines:
//   - The rent schedule for the 24 ownable spaces
//   - Optional custom space names (25 entries, starting with "Go")
//   - The income paid for passing Go
//   - The player roster with starting cash
//   - Message templates for purchases, rent, eliminations and the winner
//
// Available Configurations:
//
// The package ships with a classic board and supports any number of
// custom boards dropped into the directory:
//   - classic: the standard 25-space board with four players
//   - duel: a two-player head-to-head roster
//   - generous: higher Go income for longer games
//
// Usage:
//
//	manager, err := config.NewManager("configs")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Load specific configuration
//	gameConfig, err := manager.LoadConfig("duel")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Get default configuration
//	defaultConfig := manager.GetDefault()
//
//	// List available configurations
//	configs, err := manager.ListConfigs()
//
// Validation:
//
// All configurations are validated for:
//   - Exactly 24 positive rents (a 25-space board)
//   - Unique space names with "Go" in the first slot
//   - A positive Go income
//   - At least two uniquely named players who can afford the cheapest rent
//   - Required message templates
package config
