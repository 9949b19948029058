package server

// MessageType represents a WebSocket message type with type safety. The set
// is closed: a tag outside it is a malformed message.
type MessageType string

const (
	// Client to server messages
	MessageTypeCreateGame         MessageType = "createGame"
	MessageTypeJoinByCode         MessageType = "joinByCode"
	MessageTypeStartGame          MessageType = "startGame"
	MessageTypeJoinGame           MessageType = "joinGame"
	MessageTypeSubmitPreRoundWord MessageType = "submitPreRoundWord"
	MessageTypeSubmitClue         MessageType = "submitClue"
	MessageTypeRespondToClue      MessageType = "respondToClue"
	MessageTypeSubmitHookyGuess   MessageType = "submitHookyGuess"
	MessageTypeSubmitHandGuesses  MessageType = "submitHandGuesses"

	// Server to client messages
	MessageTypeGameCreated          MessageType = "gameCreated"
	MessageTypeGameJoined           MessageType = "gameJoined"
	MessageTypeGameStarted          MessageType = "gameStarted"
	MessageTypeGameUpdated          MessageType = "gameUpdated"
	MessageTypeHookyGuessSubmitted  MessageType = "hookyGuessSubmitted"
	MessageTypeHandGuessesSubmitted MessageType = "handGuessesSubmitted"
	MessageTypeError                MessageType = "error"
	// MessageTypeRespondToClue doubles as the private prompt sent to a
	// clue's target.
)

// String returns the string representation of the message type
func (mt MessageType) String() string {
	return string(mt)
}
