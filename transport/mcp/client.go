package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/landrush/landrush/game/engine"
	"github.com/landrush/landrush/game/service"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Client is a thin MCP client that proxies to the REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	mcpServer  *server.MCPServer
}

// NewClient creates a new MCP client that calls the REST API
func NewClient(baseURL string) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	c.initMCPServer()
	return c
}

// initMCPServer initializes the MCP server with all tools
func (c *Client) initMCPServer() {
	c.mcpServer = server.NewMCPServer(
		"Land Rush",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`Land Rush - MCP Interface

This is a thin client that proxies all requests to the REST API server.

GAME OBJECTIVE:
Players take turns around a 25-space circular board, buying spaces and
collecting rent. The last player with cash wins.

AVAILABLE TOOLS:
- create_session: Create a new game session
- get_session: Get session details
- list_sessions: List all active sessions
- game_state: Get current board, owners and balances
- take_turn: Roll and move one player (optionally auto-buy)
- play_round: Give every active player one turn
- run_game: Simulate rounds until a winner is decided
- buy_property: Buy the space the player stands on
- forfeit_player: Withdraw a player from the game
- winner: Check the current win status
- standings: Cash, position and holdings per player
- round_history: Per-round balance history
- reset_game: Reset to the configured roster
- list_configs: List available board configurations
- game_instructions: Get comprehensive game rules`),
	)

	// Register all tools
	c.registerTools()
}

// registerTools registers all MCP tools
func (c *Client) registerTools() {
	// Session management
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "create_session",
		Description: "Create a new game session with optional config selection",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"config_id": map[string]interface{}{
					"type":        "string",
					"description": "Identifier of the config to use (optional)",
				},
			},
		},
	}, c.handleCreateSession)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_sessions",
		Description: "List all active game sessions",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListSessions)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "get_session",
		Description: "Get details of a specific session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID to retrieve",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleGetSession)

	// Game operations
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_state",
		Description: "Get the current game state: board spaces, owners, player balances and positions",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleGameState)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "take_turn",
		Description: "Take one turn for a player: roll the die, move, pay or collect. Omit roll to use the session die.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"player": map[string]interface{}{
					"type":        "string",
					"description": "Name of the player taking the turn",
				},
				"roll": map[string]interface{}{
					"type":        "integer",
					"description": "Die roll 1-6; omit or 0 to roll the session die",
				},
				"auto_buy": map[string]interface{}{
					"type":        "boolean",
					"description": "Buy the destination space automatically when it is available and affordable",
				},
			},
			Required: []string{"session_id", "player"},
		},
	}, c.handleTakeTurn)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "play_round",
		Description: "Give every active player one automated turn (roll and auto-buy)",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handlePlayRound)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "run_game",
		Description: "Simulate rounds until a winner is decided and report the result",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleRunGame)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "buy_property",
		Description: "Buy the space the player currently stands on",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"player": map[string]interface{}{
					"type":        "string",
					"description": "Name of the buying player",
				},
			},
			Required: []string{"session_id", "player"},
		},
	}, c.handleBuyProperty)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "forfeit_player",
		Description: "Withdraw a player from the game, releasing their properties",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"player": map[string]interface{}{
					"type":        "string",
					"description": "Name of the forfeiting player",
				},
			},
			Required: []string{"session_id", "player"},
		},
	}, c.handleForfeitPlayer)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "winner",
		Description: "Check the current win status of a session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleWinner)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "standings",
		Description: "Get cash, position and holdings for every active player",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleStandings)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "reset_game",
		Description: "Reset the game to its configured roster and board",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleReset)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "round_history",
		Description: "Get per-round balance history for a session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"page": map[string]interface{}{
					"type":        "integer",
					"description": "Page number",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Rounds per page",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleRoundHistory)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_configs",
		Description: "List available game configurations",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListConfigs)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_instructions",
		Description: "Get comprehensive game instructions and rules",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleGameInstructions)
}

// GetMCPServer returns the underlying MCP server for serving
func (c *Client) GetMCPServer() *server.MCPServer {
	return c.mcpServer
}

// Helper methods for API calls

func (c *Client) apiCall(method, path string, body interface{}, result interface{}) error {
	url := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp map[string]string
		json.NewDecoder(resp.Body).Decode(&errResp)
		if msg, ok := errResp["error"]; ok {
			return fmt.Errorf("%s", msg)
		}
		return fmt.Errorf("API error: %d", resp.StatusCode)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}

	return nil
}

// Tool handlers

func (c *Client) handleCreateSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	configID, _ := args["config_id"].(string)

	body := map[string]string{}
	if configID != "" {
		body["config_id"] = configID
	}

	var session service.SessionInfo
	err := c.apiCall("POST", "/api/sessions", body, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Created session: %s\nConfig: %s\n", session.ID, session.ConfigName)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListSessions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var response struct {
		Count    int                   `json:"count"`
		Sessions []service.SessionInfo `json:"sessions"`
	}

	err := c.apiCall("GET", "/api/sessions", nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Active Sessions (%d):\n\n", response.Count)
	for _, s := range response.Sessions {
		result += fmt.Sprintf("- %s (Config: %s, Created: %s)\n",
			s.ID, s.ConfigName, s.CreatedAt.Format("15:04:05"))
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGetSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var session service.SessionInfo
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s", sessionID), nil, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatSessionInfo(&session)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGameState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var state engine.GameState
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/state", sessionID), nil, &state)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatGameState(&state)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleTakeTurn(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	player, _ := args["player"].(string)
	autoBuy, _ := args["auto_buy"].(bool)

	roll := 0
	if r, ok := args["roll"].(float64); ok {
		roll = int(r)
	}

	body := map[string]interface{}{
		"player":   player,
		"roll":     roll,
		"auto_buy": autoBuy,
	}

	var result service.TurnResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/turn", sessionID), body, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := formatTurnResult(&result)
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handlePlayRound(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var result service.RoundResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/round", sessionID), nil, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := formatRoundResult(&result)
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handleRunGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var result service.RunResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/run", sessionID), nil, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var b strings.Builder
	switch result.Status {
	case engine.WinStatusWon:
		b.WriteString(fmt.Sprintf("🏆 %s wins after %d rounds!\n\n", result.Winner, result.Rounds))
	case engine.WinStatusNoWinner:
		b.WriteString(fmt.Sprintf("Everyone is out after %d rounds. No winner.\n\n", result.Rounds))
	default:
		b.WriteString(fmt.Sprintf("Game still undecided after %d rounds.\n\n", result.Rounds))
	}
	b.WriteString(formatGameState(result.GameState))

	return mcp.NewToolResultText(b.String()), nil
}

func (c *Client) handleBuyProperty(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	player, _ := args["player"].(string)

	body := map[string]string{"player": player}

	var result service.BuyResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/buy", sessionID), body, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var response string
	if result.Success {
		response = fmt.Sprintf("✓ %s bought %s (space %d) for $%d\n",
			result.Player, result.Space, result.Position, result.Price)
	} else {
		response = fmt.Sprintf("✗ %s could not buy %s (space %d)\n",
			result.Player, result.Space, result.Position)
	}

	response += "\n" + formatGameState(result.GameState)
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handleForfeitPlayer(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	player, _ := args["player"].(string)

	body := map[string]string{"player": player}

	var response struct {
		Message string            `json:"message"`
		State   *engine.GameState `json:"state"`
	}

	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/forfeit", sessionID), body, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("%s\n\n%s", response.Message, formatGameState(response.State))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleWinner(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var winner service.WinnerInfo
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/winner", sessionID), nil, &winner)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var result string
	switch winner.Status {
	case engine.WinStatusWon:
		result = fmt.Sprintf("🏆 Winner: %s", winner.Winner)
	case engine.WinStatusNoWinner:
		result = "No winner: every player is out of the game."
	case engine.WinStatusNotStarted:
		result = "Game not started: fewer than two players have registered."
	default:
		result = "Undecided: two or more players are still in the game."
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleStandings(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var response struct {
		Count     int                      `json:"count"`
		Standings []service.PlayerStanding `json:"standings"`
	}

	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/standings", sessionID), nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Standings (%d players):\n\n", response.Count))
	for i, s := range response.Standings {
		b.WriteString(fmt.Sprintf("%d. %s: $%d at %s (space %d), %d properties\n",
			i+1, s.Name, s.Cash, s.Space, s.Position, len(s.Holdings)))
	}

	return mcp.NewToolResultText(b.String()), nil
}

func (c *Client) handleReset(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var response struct {
		Message string            `json:"message"`
		State   *engine.GameState `json:"state"`
	}

	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/reset", sessionID), nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("%s\n\n%s", response.Message, formatGameState(response.State))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleRoundHistory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	params := "?"
	if page, ok := args["page"].(float64); ok {
		params += fmt.Sprintf("page=%d&", int(page))
	}
	if limit, ok := args["limit"].(float64); ok {
		params += fmt.Sprintf("limit=%d&", int(limit))
	}

	var history service.HistoryResponse
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/history%s", sessionID, params), nil, &history)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatHistory(&history)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListConfigs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var configs []service.ConfigInfo
	err := c.apiCall("GET", "/api/configs", nil, &configs)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := "Available Configurations:\n\n"
	for _, config := range configs {
		result += fmt.Sprintf("• %s (%s)\n  %s\n  Players: %d, Go income: $%d\n\n",
			config.Name, config.ConfigID, config.Description, config.Players, config.GoIncome)
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGameInstructions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instructions := `🎲 Land Rush - Complete Instructions

GAME OBJECTIVE:
Be the last player with cash. Buy spaces, collect rent from visitors,
and outlast everyone else.

THE BOARD:
• 25 spaces arranged in a circle, indexed 0-24
• Space 0 is "Go": it has no rent and can never be owned
• Every other space has a rent and a price (price = 5 × rent)
• Passing or landing on Go pays the Go income to the moving player

TAKING A TURN:
• Roll a die (1-6) and move clockwise, wrapping past space 24 to 0
• Land on your own space: nothing happens
• Land on an unowned space: you may buy it if your cash is strictly
  greater than the price
• Land on someone else's space: you pay them the rent

ELIMINATION:
• If you cannot cover the rent, you hand the owner everything you have
  left, your properties return to the market, and you are out
• A player with zero cash skips their turns

WINNING:
• won: exactly one player remains
• no_winner: everyone was eliminated or forfeited
• undecided: two or more players still standing
• not_started: fewer than two players ever registered

ROUNDS:
• A round gives every active player one turn, in registration order
• The round counter only advances while the game is undecided
• Balance history records every player's cash at the end of each round

SESSION MANAGEMENT:
• Multiple games can run simultaneously, each with a 4-character ID
• Sessions keep independent boards, rosters, dice and histories
• reset_game restores the configured roster on the same board

TOOLS FOR PLAY:
• take_turn: one player's turn; set auto_buy to purchase on arrival
• play_round: everyone takes one automated turn
• run_game: simulate to completion and report the winner
• buy_property: buy the space you stand on after a manual turn
• standings / round_history: track who is ahead and how it got there

Good luck in the rush! 🏁`

	return mcp.NewToolResultText(instructions), nil
}

// Formatting helpers

func formatSessionInfo(session *service.SessionInfo) string {
	return fmt.Sprintf("Session: %s\nConfig: %s\nCreated: %s\n\n%s",
		session.ID, session.ConfigName,
		session.CreatedAt.Format("2006-01-02 15:04:05"),
		formatGameState(session.GameState))
}

func formatGameState(state *engine.GameState) string {
	if state == nil {
		return "No game state available"
	}

	var result strings.Builder

	status := "in progress"
	if state.GameOver {
		status = "over"
	}
	result.WriteString(fmt.Sprintf("Round: %d | Go income: $%d | Players: %d/%d | Game: %s\n\n",
		state.Round, state.GoIncome, len(state.Players), state.Registered, status))

	// Player positions keyed by space for the board listing
	at := make(map[int][]string)
	for _, p := range state.Players {
		at[p.Position] = append(at[p.Position], p.Name)
	}

	result.WriteString("Board:\n")
	for _, sp := range state.Spaces {
		line := fmt.Sprintf("%3d %-10s", sp.Position, sp.Name)
		if sp.Rent > 0 {
			line += fmt.Sprintf(" rent=$%-4d price=$%-5d", sp.Rent, sp.Price)
		} else {
			line += strings.Repeat(" ", 23)
		}
		if sp.Owner != "" {
			line += fmt.Sprintf(" owner=%s", sp.Owner)
		}
		if names, ok := at[sp.Position]; ok {
			line += fmt.Sprintf(" <- %s", strings.Join(names, ", "))
		}
		result.WriteString(line + "\n")
	}

	result.WriteString("\nPlayers:\n")
	for _, p := range state.Players {
		result.WriteString(fmt.Sprintf("- %s: $%d at space %d, %d properties\n",
			p.Name, p.Cash, p.Position, len(p.Holdings)))
	}

	return result.String()
}

func formatTurnResult(result *service.TurnResult) string {
	o := result.Outcome

	var b strings.Builder
	if o.Skipped {
		b.WriteString(fmt.Sprintf("⏭ %s's turn skipped: %s\n", o.Player, o.SkipReason))
	} else {
		b.WriteString(fmt.Sprintf("🎲 %s rolled %d: %d → %d\n", o.Player, o.Roll, o.From, o.To))
		if o.PassedGo {
			b.WriteString("💰 Passed Go and collected the income\n")
		}
		switch o.Settlement {
		case engine.SettleOwnSpace:
			b.WriteString("🏠 Landed on their own space\n")
		case engine.SettleAvailable:
			if o.Bought {
				b.WriteString("🏷 Bought the space on arrival\n")
			} else {
				b.WriteString("🏷 The space is available for purchase\n")
			}
		case engine.SettleRentPaid:
			b.WriteString(fmt.Sprintf("💸 Paid $%d rent to %s\n", o.RentPaid, o.Landlord))
		case engine.SettleEliminated:
			b.WriteString(fmt.Sprintf("💀 Could not cover the rent: handed $%d to %s and is out\n",
				o.RentPaid, o.Landlord))
		}
	}

	if len(result.Events) > 0 {
		b.WriteString("Events:\n")
		for _, event := range result.Events {
			b.WriteString(fmt.Sprintf("- %s: %s\n", event.Type, event.Message))
		}
	}

	if result.Winner != "" {
		b.WriteString(fmt.Sprintf("\n🏆 Winner: %s\n", result.Winner))
	}

	b.WriteString("\n" + formatGameState(result.GameState))
	return b.String()
}

func formatRoundResult(result *service.RoundResult) string {
	var b strings.Builder

	r := result.Report
	b.WriteString(fmt.Sprintf("Round %d (%s)\n\n", r.Round, r.Status))

	for _, o := range r.Outcomes {
		if o.Skipped {
			b.WriteString(fmt.Sprintf("- %s skipped (%s)\n", o.Player, o.SkipReason))
			continue
		}
		line := fmt.Sprintf("- %s rolled %d: %d→%d", o.Player, o.Roll, o.From, o.To)
		if o.PassedGo {
			line += ", passed Go"
		}
		switch o.Settlement {
		case engine.SettleAvailable:
			if o.Bought {
				line += ", bought the space"
			} else {
				line += ", space available"
			}
		case engine.SettleRentPaid:
			line += fmt.Sprintf(", paid $%d to %s", o.RentPaid, o.Landlord)
		case engine.SettleEliminated:
			line += fmt.Sprintf(", ELIMINATED (gave $%d to %s)", o.RentPaid, o.Landlord)
		case engine.SettleOwnSpace:
			line += ", own space"
		}
		b.WriteString(line + "\n")
	}

	if r.Winner != "" {
		b.WriteString(fmt.Sprintf("\n🏆 Winner: %s\n", r.Winner))
	}

	if len(result.Events) > 0 {
		b.WriteString("\nEvents:\n")
		for _, event := range result.Events {
			b.WriteString(fmt.Sprintf("- %s: %s\n", event.Type, event.Message))
		}
	}

	b.WriteString("\n" + formatGameState(result.GameState))
	return b.String()
}

func formatHistory(history *service.HistoryResponse) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Round History (Page %d/%d), rounds recorded: %d\n\n",
		history.Page, history.TotalPages, history.TotalRounds))

	for _, round := range history.Rounds {
		b.WriteString(fmt.Sprintf("Round %d:\n", round.Round))
		for _, sample := range round.Balances {
			b.WriteString(fmt.Sprintf("  %s: $%d\n", sample.Player, sample.Cash))
		}
	}

	return b.String()
}
