package mcp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/landrush/landrush/game/engine"
	"github.com/landrush/landrush/game/service"
	"github.com/mark3labs/mcp-go/mcp"
)

func testState() *engine.GameState {
	return &engine.GameState{
		Round:      2,
		GoIncome:   50,
		Registered: 2,
		Spaces: []engine.Space{
			{Name: "Go", Position: 0},
			{Name: "Place 1", Position: 1, Rent: 50, Price: 250, Owner: "Alice"},
			{Name: "Place 2", Position: 2, Rent: 75, Price: 375},
		},
		Players: []engine.Player{
			{Name: "Alice", Cash: 950, Position: 1, Holdings: []int{1}},
			{Name: "Bob", Cash: 1100, Position: 2, Holdings: []int{}},
		},
	}
}

func TestNewClient(t *testing.T) {
	baseURL := "http://localhost:8080"
	client := NewClient(baseURL)

	if client == nil {
		t.Fatal("Expected client to be created")
	}

	if client.baseURL != baseURL {
		t.Errorf("Expected baseURL %s, got %s", baseURL, client.baseURL)
	}

	if client.httpClient == nil {
		t.Error("Expected HTTP client to be initialized")
	}

	if client.mcpServer == nil {
		t.Error("Expected MCP server to be initialized")
	}
}

func TestClient_apiCall(t *testing.T) {
	expectedResponse := map[string]interface{}{
		"id":     "ab12",
		"round":  float64(3),
		"status": "undecided",
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(expectedResponse)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	var response map[string]interface{}
	err := client.apiCall("GET", "/api", nil, &response)
	if err != nil {
		t.Fatalf("apiCall failed: %v", err)
	}

	if response["id"] != expectedResponse["id"] {
		t.Errorf("Expected id %v, got %v", expectedResponse["id"], response["id"])
	}
}

func TestClient_apiCall_Error(t *testing.T) {
	client := NewClient("http://invalid-url-that-does-not-exist:9999")

	err := client.apiCall("GET", "/api", nil, nil)
	if err == nil {
		t.Error("Expected error for invalid URL")
	}
}

func TestClient_apiCall_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("Internal Server Error"))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	err := client.apiCall("GET", "/api", nil, nil)
	if err == nil {
		t.Error("Expected error for HTTP 500 response")
	}

	if !strings.Contains(err.Error(), "API error") {
		t.Errorf("Expected 'API error' in error message, got: %v", err)
	}
}

func TestClient_apiCall_ErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "session not found"})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	err := client.apiCall("GET", "/api/sessions/zzzz", nil, nil)
	if err == nil || err.Error() != "session not found" {
		t.Errorf("Expected the API error message to surface, got: %v", err)
	}
}

func TestClient_createSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" || r.URL.Path != "/api/sessions" {
			t.Errorf("Expected POST /api/sessions, got %s %s", r.Method, r.URL.Path)
		}

		resp := service.SessionInfo{
			ID:         "ab12",
			ConfigName: "classic",
			GameState:  testState(),
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	ctx := context.Background()

	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      "create_session",
			Arguments: map[string]interface{}{},
		},
	}

	result, err := client.handleCreateSession(ctx, request)
	if err != nil {
		t.Fatalf("createSession failed: %v", err)
	}

	if result == nil {
		t.Fatal("Expected result, got nil")
	}

	resultStr, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatal("Expected text content in result")
	}

	if !strings.Contains(resultStr.Text, "ab12") {
		t.Errorf("Expected session ID in result, got: %s", resultStr.Text)
	}
}

func TestClient_takeTurn(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" || r.URL.Path != "/api/sessions/ab12/turn" {
			t.Errorf("Expected POST /api/sessions/ab12/turn, got %s %s", r.Method, r.URL.Path)
		}

		var body map[string]interface{}
		json.NewDecoder(r.Body).Decode(&body)
		if body["player"] != "Alice" {
			t.Errorf("Expected player Alice, got %v", body["player"])
		}

		resp := service.TurnResult{
			Outcome: engine.TurnOutcome{
				Player: "Alice", Roll: 4, From: 1, To: 5,
				Settlement: engine.SettleRentPaid, RentPaid: 100, Landlord: "Bob",
			},
			GameState: testState(),
			Status:    engine.WinStatusUndecided,
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name: "take_turn",
			Arguments: map[string]interface{}{
				"session_id": "ab12",
				"player":     "Alice",
				"roll":       float64(4),
			},
		},
	}

	result, err := client.handleTakeTurn(context.Background(), request)
	if err != nil {
		t.Fatalf("handleTakeTurn failed: %v", err)
	}

	text := result.Content[0].(mcp.TextContent).Text
	if !strings.Contains(text, "Alice rolled 4") {
		t.Errorf("Expected roll narration, got: %s", text)
	}
	if !strings.Contains(text, "Paid $100 rent to Bob") {
		t.Errorf("Expected rent narration, got: %s", text)
	}
}

func TestFormatGameState(t *testing.T) {
	result := formatGameState(testState())

	expectedFields := []string{
		"Round: 2",
		"Go income: $50",
		"owner=Alice",
		"Alice: $950 at space 1, 1 properties",
		"Bob: $1100 at space 2, 0 properties",
	}

	for _, field := range expectedFields {
		if !strings.Contains(result, field) {
			t.Errorf("Expected field '%s' in formatted output, got: %s", field, result)
		}
	}
}

func TestFormatGameState_Nil(t *testing.T) {
	if got := formatGameState(nil); got != "No game state available" {
		t.Errorf("Unexpected nil formatting: %s", got)
	}
}

func TestFormatTurnResult_Skipped(t *testing.T) {
	result := formatTurnResult(&service.TurnResult{
		Outcome: engine.TurnOutcome{
			Player: "Bob", Skipped: true, SkipReason: "no cash",
			Settlement: engine.SettleNone,
		},
		GameState: testState(),
		Status:    engine.WinStatusUndecided,
	})

	if !strings.Contains(result, "Bob's turn skipped: no cash") {
		t.Errorf("Expected skip narration, got: %s", result)
	}
}

func TestFormatTurnResult_Elimination(t *testing.T) {
	result := formatTurnResult(&service.TurnResult{
		Outcome: engine.TurnOutcome{
			Player: "Bob", Roll: 2, From: 3, To: 5,
			Settlement: engine.SettleEliminated,
			RentPaid:   40, Landlord: "Alice", Eliminated: true,
		},
		GameState: testState(),
		Winner:    "Alice",
		Status:    engine.WinStatusWon,
	})

	if !strings.Contains(result, "handed $40 to Alice") {
		t.Errorf("Expected elimination narration, got: %s", result)
	}
	if !strings.Contains(result, "Winner: Alice") {
		t.Errorf("Expected winner narration, got: %s", result)
	}
}

func TestFormatRoundResult(t *testing.T) {
	result := formatRoundResult(&service.RoundResult{
		Report: &engine.RoundReport{
			Round:  5,
			Status: engine.WinStatusUndecided,
			Outcomes: []engine.TurnOutcome{
				{Player: "Alice", Roll: 6, From: 20, To: 1, PassedGo: true, Settlement: engine.SettleAvailable, Bought: true},
				{Player: "Bob", Roll: 1, From: 2, To: 3, Settlement: engine.SettleOwnSpace},
			},
		},
		GameState: testState(),
	})

	expectedFields := []string{
		"Round 5 (undecided)",
		"Alice rolled 6: 20→1, passed Go, bought the space",
		"Bob rolled 1: 2→3, own space",
	}
	for _, field := range expectedFields {
		if !strings.Contains(result, field) {
			t.Errorf("Expected '%s' in formatted output, got: %s", field, result)
		}
	}
}

func TestFormatHistory(t *testing.T) {
	result := formatHistory(&service.HistoryResponse{
		Rounds: []service.RoundSnapshot{
			{Round: 0, Balances: []engine.BalanceSample{
				{Round: 0, Player: "Alice", Cash: 1000},
				{Round: 0, Player: "Bob", Cash: 1000},
			}},
			{Round: 1, Balances: []engine.BalanceSample{
				{Round: 1, Player: "Alice", Cash: 850},
			}},
		},
		TotalRounds: 2,
		Page:        1,
		TotalPages:  1,
	})

	if !strings.Contains(result, "Round 0:") || !strings.Contains(result, "Alice: $850") {
		t.Errorf("Unexpected history formatting: %s", result)
	}
}

func TestClient_handleGameInstructions(t *testing.T) {
	client := NewClient("http://localhost:8080")
	ctx := context.Background()

	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      "game_instructions",
			Arguments: map[string]interface{}{},
		},
	}

	result, err := client.handleGameInstructions(ctx, request)
	if err != nil {
		t.Fatalf("handleGameInstructions failed: %v", err)
	}

	if result == nil {
		t.Fatal("Expected result, got nil")
	}

	resultStr, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatal("Expected text content in result")
	}

	expectedContent := []string{
		"Land Rush - Complete Instructions",
		"GAME OBJECTIVE:",
		"THE BOARD:",
		"TAKING A TURN:",
		"ELIMINATION:",
		"WINNING:",
		"ROUNDS:",
		"SESSION MANAGEMENT:",
	}

	for _, content := range expectedContent {
		if !strings.Contains(resultStr.Text, content) {
			t.Errorf("Expected '%s' in instructions, got: %s", content, resultStr.Text)
		}
	}
}

func TestClient_Integration(t *testing.T) {
	client := NewClient("http://localhost:8080")

	if client == nil {
		t.Fatal("Failed to create client")
	}

	if client.mcpServer == nil {
		t.Fatal("MCP server not initialized")
	}

	if client.baseURL == "" {
		t.Error("Base URL not set")
	}

	if client.httpClient == nil {
		t.Error("HTTP client not initialized")
	}
}
