// Package api provides the REST API server for the Land Rush game.
//
// The api package implements:
//   - RESTful endpoints for session and game management
//   - Request validation and error handling
//   - JSON serialization of game states and round reports
//   - WebSocket upgrade for live spectating
//
// Endpoints:
//
// Session management:
//   - POST   /api/sessions           Create a session (optional config_id)
//   - GET    /api/sessions           List sessions (sort, order, limit)
//   - GET    /api/sessions/{id}      Session details
//   - DELETE /api/sessions/{id}      Delete a session
//
// Game operations:
//   - GET  /api/sessions/{id}/state      Full game state snapshot
//   - POST /api/sessions/{id}/turn       One turn for a player (roll optional)
//   - POST /api/sessions/{id}/round      One round over the active roster
//   - POST /api/sessions/{id}/run        Play the game to completion
//   - POST /api/sessions/{id}/buy        Buy the space under a player
//   - POST /api/sessions/{id}/forfeit    Withdraw a player
//   - POST /api/sessions/{id}/reset      Reset to the configured roster
//   - GET  /api/sessions/{id}/winner     Current win status
//   - GET  /api/sessions/{id}/standings  Cash and holdings per player
//   - GET  /api/sessions/{id}/history    Paginated balance history by round
//
// Configuration:
//   - GET  /api/configs          List available configurations
//   - POST /api/configs          Save a new configuration
//   - GET  /api/configs/{name}   Fetch one configuration
//
// WebSocket:
//   - GET /ws?session={id}       Upgrade to a live update stream
//
// Errors are returned as {"error": "message"} with an appropriate HTTP
// status code.
package api
