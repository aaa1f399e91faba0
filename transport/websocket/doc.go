// Package websocket provides WebSocket transport for the Land Rush game.
//
// The websocket package implements:
//   - Real-time push of game state and round reports to spectators
//   - Session-aware WebSocket connections
//   - Connection lifecycle management
//   - Message routing and fan-out
//
// Architecture:
//
// The package uses a hub-and-spoke model where a central Hub manages all
// WebSocket connections. Each client connection is handled by a dedicated
// goroutine that manages reading, writing, and cleanup.
//
// Message Protocol:
//
// Messages are JSON-encoded. Outgoing messages carry an event name plus
// the relevant payload:
//   - state_update: full GameState snapshot after a state change
//   - round_played: a RoundReport with per-turn outcomes and balances
//   - game_over: the final round report once a winner is decided
//
// Connections are read-only on the client side; gameplay actions go
// through the REST API, and the hub pushes the results.
//
// Session Integration:
//
// WebSocket connections are session-aware. Clients specify their session ID
// via query parameter (?session=abc1) when establishing the connection.
// Updates are broadcast only to clients connected to the same session.
//
// Usage:
//
//	hub := websocket.NewHub()
//	go hub.Run()
//
//	// after each round
//	hub.BroadcastRound(sessionID, report, state)
//
// Concurrency:
//
// The hub and client handlers are designed for concurrent operation.
// Multiple clients can connect, disconnect, and receive messages
// simultaneously without blocking each other.
package websocket
