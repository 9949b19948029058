package server

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/lox/hooky/internal/game"
	"github.com/lox/hooky/internal/store"
	"github.com/lox/hooky/internal/words"
)

// Connection represents a WebSocket connection to a client
type Connection struct {
	conn        *websocket.Conn
	send        chan *Message
	playerID    string
	gameID      string
	lastVersion uint64
	logger      *log.Logger
	ctx         context.Context
	cancel      context.CancelFunc
	mu          sync.RWMutex
	closeOnce   sync.Once
	gameService *GameService
}

// NewConnection creates a new connection wrapper
func NewConnection(conn *websocket.Conn, logger *log.Logger, gameService *GameService) *Connection {
	ctx, cancel := context.WithCancel(context.Background())

	return &Connection{
		conn:        conn,
		send:        make(chan *Message, 256),
		logger:      logger.WithPrefix("conn"),
		ctx:         ctx,
		cancel:      cancel,
		gameService: gameService,
	}
}

// Start begins handling the connection
func (c *Connection) Start() {
	go c.writePump()
	go c.readPump()
}

// Close closes the connection
func (c *Connection) Close() error {
	var err error
	c.closeOnce.Do(func() {
		c.cancel()
		close(c.send)
		err = c.conn.Close()
	})
	return err
}

// SendMessage sends a message to the client
func (c *Connection) SendMessage(msg *Message) error {
	defer func() {
		if r := recover(); r != nil {
			// Channel was closed, expected during shutdown
			c.logger.Debug("Attempted to send message on closed connection", "error", r)
		}
	}()

	select {
	case c.send <- msg:
		return nil
	case <-c.ctx.Done():
		return c.ctx.Err()
	default:
		c.logger.Warn("Connection send buffer full, closing connection")
		_ = c.Close()
		return ErrConnectionClosed
	}
}

// deliverGame sends a game-bearing message, enforcing that this recipient
// only ever sees a strictly increasing sequence of committed versions. The
// lock is held across the enqueue so concurrent deliveries cannot reorder
// between the version check and the send.
func (c *Connection) deliverGame(msg *Message, version uint64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if version <= c.lastVersion {
		return nil
	}
	c.lastVersion = version
	return c.SendMessage(msg)
}

// bind associates this connection with a (game, player) pair.
func (c *Connection) bind(gameID, playerID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gameID = gameID
	c.playerID = playerID
}

// GetPlayer returns the associated player ID
func (c *Connection) GetPlayer() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.playerID
}

// GetGame returns the associated game ID
func (c *Connection) GetGame() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.gameID
}

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 8192
)

var (
	ErrConnectionClosed = websocket.ErrCloseSent
)

// readPump handles incoming messages from the client
func (c *Connection) readPump() {
	defer func() { _ = c.Close() }()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		select {
		case <-c.ctx.Done():
			return
		default:
		}

		var msg Message
		err := c.conn.ReadJSON(&msg)
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Error("WebSocket error", "error", err)
			}
			break
		}

		c.handleMessage(&msg)
	}
}

// writePump handles outgoing messages to the client
func (c *Connection) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteJSON(message); err != nil {
				c.logger.Error("Failed to write message", "error", err)
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.ctx.Done():
			return
		}
	}
}

// handleMessage dispatches an incoming command. The tag set is closed;
// anything else is a malformed message and the connection stays open.
func (c *Connection) handleMessage(msg *Message) {
	c.logger.Debug("Received message", "type", msg.Type, "player", c.GetPlayer())

	switch msg.Type {
	case MessageTypeCreateGame:
		var data CreateGameData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			c.sendError("invalid_message", "Failed to parse create game data")
			return
		}
		c.handleCreateGame(data, msg.RequestID)

	case MessageTypeJoinByCode:
		var data JoinByCodeData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			c.sendError("invalid_message", "Failed to parse join data")
			return
		}
		c.handleJoinByCode(data, msg.RequestID)

	case MessageTypeStartGame:
		var data StartGameData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			c.sendError("invalid_message", "Failed to parse start game data")
			return
		}
		c.handleStartGame(data, msg.RequestID)

	case MessageTypeJoinGame:
		var data JoinGameData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			c.sendError("invalid_message", "Failed to parse join game data")
			return
		}
		c.handleJoinGame(data)

	case MessageTypeSubmitPreRoundWord:
		var data SubmitWordData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			c.sendError("invalid_message", "Failed to parse word data")
			return
		}
		c.handleSubmitPreRoundWord(data)

	case MessageTypeSubmitClue:
		var data SubmitClueData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			c.sendError("invalid_message", "Failed to parse clue data")
			return
		}
		c.handleSubmitClue(data)

	case MessageTypeRespondToClue:
		var data RespondToClueData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			c.sendError("invalid_message", "Failed to parse response data")
			return
		}
		c.handleRespondToClue(data)

	case MessageTypeSubmitHookyGuess:
		var data SubmitHookyGuessData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			c.sendError("invalid_message", "Failed to parse hooky guess data")
			return
		}
		c.handleSubmitHookyGuess(data)

	case MessageTypeSubmitHandGuesses:
		var data SubmitHandGuessesData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			c.sendError("invalid_message", "Failed to parse hand guesses data")
			return
		}
		c.handleSubmitHandGuesses(data)

	default:
		c.sendError("unknown_message_type", "Unknown message type: "+msg.Type.String())
	}
}

// sendError sends an error message to the client
func (c *Connection) sendError(code, message string) {
	errorMsg, err := NewMessage(MessageTypeError, ErrorData{
		Code:    code,
		Message: message,
	})
	if err != nil {
		c.logger.Error("Failed to create error message", "error", err)
		return
	}

	_ = c.SendMessage(errorMsg)
}

// reportError maps a service failure onto the error taxonomy and reports it
// to this client only.
func (c *Connection) reportError(err error) {
	c.sendError(errorCode(err), err.Error())
}

func errorCode(err error) string {
	switch {
	case errors.Is(err, words.ErrLength),
		errors.Is(err, words.ErrNonLetter),
		errors.Is(err, words.ErrDictionary),
		errors.Is(err, game.ErrNoHandLetter),
		errors.Is(err, game.ErrInvalidGuess),
		errors.Is(err, game.ErrInvalidResponse),
		errors.Is(err, game.ErrInvalidTarget):
		return "validation_error"
	case errors.Is(err, game.ErrNotYourTurn),
		errors.Is(err, game.ErrNotClueTarget),
		errors.Is(err, game.ErrAlreadySubmitted),
		errors.Is(err, game.ErrWrongPhase):
		return "turn_violation"
	case errors.Is(err, store.ErrGameNotFound),
		errors.Is(err, game.ErrClueNotFound),
		errors.Is(err, game.ErrPlayerNotFound):
		return "not_found"
	case errors.Is(err, game.ErrNotJoinable),
		errors.Is(err, game.ErrGameFull),
		errors.Is(err, game.ErrNotEnoughPlayers):
		return "capacity_error"
	default:
		return "internal_error"
	}
}

// session returns the bound (game, player) pair, reporting an error to the
// client when the connection has not joined a game yet.
func (c *Connection) session() (gameID, playerID string, ok bool) {
	gameID, playerID = c.GetGame(), c.GetPlayer()
	if gameID == "" || playerID == "" {
		c.sendError("not_joined", "Must join a game first")
		return "", "", false
	}
	return gameID, playerID, true
}

func (c *Connection) handleCreateGame(data CreateGameData, requestID string) {
	if data.PlayerName == "" {
		c.sendError("validation_error", "Player name required")
		return
	}

	g, playerID, err := c.gameService.CreateGame(data.PlayerName, data.SinglePlayer)
	if err != nil {
		c.reportError(err)
		return
	}
	c.bind(g.ID, playerID)

	response, _ := NewMessage(MessageTypeGameCreated, GameCreatedData{
		Game:     RedactFor(g, playerID),
		PlayerID: playerID,
	})
	response.RequestID = requestID
	_ = c.SendMessage(response)
}

func (c *Connection) handleJoinByCode(data JoinByCodeData, requestID string) {
	if data.PlayerName == "" {
		c.sendError("validation_error", "Player name required")
		return
	}

	g, playerID, err := c.gameService.JoinGame(data.RoomCode, data.PlayerName)
	if err != nil {
		c.reportError(err)
		return
	}
	c.bind(g.ID, playerID)

	response, _ := NewMessage(MessageTypeGameJoined, GameJoinedData{
		Game:     RedactFor(g, playerID),
		PlayerID: playerID,
	})
	response.RequestID = requestID
	_ = c.SendMessage(response)
}

func (c *Connection) handleStartGame(data StartGameData, requestID string) {
	g, err := c.gameService.StartGame(data.GameID)
	if err != nil {
		c.reportError(err)
		return
	}

	response, _ := NewMessage(MessageTypeGameStarted, GameStartedData{
		Game: RedactFor(g, c.GetPlayer()),
	})
	response.RequestID = requestID
	_ = c.SendMessage(response)
}

func (c *Connection) handleJoinGame(data JoinGameData) {
	// Bind only once the player is known to belong to the game, so a failed
	// attach never leaves the connection receiving another game's broadcasts.
	if _, _, err := c.gameService.AttachPlayer(data.GameID, data.PlayerID); err != nil {
		c.reportError(err)
		return
	}
	c.bind(data.GameID, data.PlayerID)

	// Deliver the current state directly so the client renders without
	// waiting for the next broadcast.
	snap, version, err := c.gameService.Game(data.GameID)
	if err != nil {
		c.reportError(err)
		return
	}
	msg, _ := NewMessage(MessageTypeGameUpdated, GameUpdatedData{Game: RedactFor(snap, data.PlayerID)})
	_ = c.deliverGame(msg, version)
}

func (c *Connection) handleSubmitPreRoundWord(data SubmitWordData) {
	gameID, playerID, ok := c.session()
	if !ok {
		return
	}
	if err := c.gameService.SubmitPreRoundWord(gameID, playerID, data.Word); err != nil {
		c.reportError(err)
	}
}

func (c *Connection) handleSubmitClue(data SubmitClueData) {
	gameID, playerID, ok := c.session()
	if !ok {
		return
	}
	if err := c.gameService.SubmitClue(gameID, playerID, data.TargetPlayerID, data.Word); err != nil {
		c.reportError(err)
	}
}

func (c *Connection) handleRespondToClue(data RespondToClueData) {
	gameID, playerID, ok := c.session()
	if !ok {
		return
	}
	if err := c.gameService.RespondToClue(gameID, data.ClueID, playerID, data.Response); err != nil {
		c.reportError(err)
	}
}

func (c *Connection) handleSubmitHookyGuess(data SubmitHookyGuessData) {
	gameID, playerID, ok := c.session()
	if !ok {
		return
	}
	if err := c.gameService.SubmitHookyGuess(gameID, playerID, data.Letters); err != nil {
		c.reportError(err)
		return
	}

	// Guesses stay secret: ack the submitter, broadcast nothing.
	ack, _ := NewMessage(MessageTypeHookyGuessSubmitted, struct{}{})
	_ = c.SendMessage(ack)
}

func (c *Connection) handleSubmitHandGuesses(data SubmitHandGuessesData) {
	gameID, playerID, ok := c.session()
	if !ok {
		return
	}
	finished, err := c.gameService.SubmitHandGuesses(gameID, playerID, data.Guesses)
	if err != nil {
		c.reportError(err)
		return
	}

	if !finished {
		ack, _ := NewMessage(MessageTypeHandGuessesSubmitted, struct{}{})
		_ = c.SendMessage(ack)
	}
}
