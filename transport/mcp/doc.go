// Package mcp provides the Model Context Protocol interface for the
// Land Rush game.
//
// The package implements a thin MCP client that proxies every tool call
// to the REST API server, so MCP agents and HTTP clients always observe
// the same sessions and state.
//
// Tools:
//
// Session management: create_session, get_session, list_sessions.
//
// Gameplay: take_turn (one player, optional auto-buy), play_round
// (everyone takes an automated turn), run_game (simulate to completion),
// buy_property, forfeit_player, reset_game.
//
// Queries: game_state, winner, standings, round_history, list_configs,
// game_instructions.
//
// Responses are formatted as human-readable text: the board listing with
// owners and player markers, per-turn narration, and round-by-round
// balance history.
//
// Usage:
//
//	client := mcp.NewClient("http://localhost:8080")
//	server.ServeStdio(client.GetMCPServer())
package mcp
