package server

import (
	"encoding/json"
	"time"

	"github.com/lox/hooky/internal/game"
)

// Message represents the base WebSocket message structure
type Message struct {
	Type      MessageType     `json:"type"`
	Data      json.RawMessage `json:"data,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
	RequestID string          `json:"requestId,omitempty"`
}

// NewMessage creates a new message with the current timestamp
func NewMessage(messageType MessageType, data interface{}) (*Message, error) {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	return &Message{
		Type:      messageType,
		Data:      dataBytes,
		Timestamp: time.Now(),
	}, nil
}

// Client → Server Messages

type CreateGameData struct {
	PlayerName   string `json:"playerName"`
	SinglePlayer bool   `json:"singlePlayer"`
}

type JoinByCodeData struct {
	RoomCode   string `json:"roomCode"`
	PlayerName string `json:"playerName"`
}

type StartGameData struct {
	GameID string `json:"gameId"`
}

type JoinGameData struct {
	GameID   string `json:"gameId"`
	PlayerID string `json:"playerId"`
}

type SubmitWordData struct {
	Word string `json:"word"`
}

type SubmitClueData struct {
	Word           string `json:"word"`
	TargetPlayerID string `json:"targetPlayerId"`
}

type RespondToClueData struct {
	ClueID   string `json:"clueId"`
	Response int    `json:"response"`
}

type SubmitHookyGuessData struct {
	Letters []string `json:"letters"`
}

type SubmitHandGuessesData struct {
	Guesses map[string][]string `json:"guesses"`
}

// Server → Client Messages

type ErrorData struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type GameCreatedData struct {
	Game     *game.Game `json:"game"`
	PlayerID string     `json:"playerId"`
}

type GameJoinedData struct {
	Game     *game.Game `json:"game"`
	PlayerID string     `json:"playerId"`
}

type GameStartedData struct {
	Game *game.Game `json:"game"`
}

type GameUpdatedData struct {
	Game *game.Game `json:"game"`
}

// CluePromptData is sent privately to a clue's target to prompt a response.
type CluePromptData struct {
	Clue *game.Clue `json:"clue"`
}
