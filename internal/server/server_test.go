package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/hooky/internal/bot"
	"github.com/lox/hooky/internal/letters"
	"github.com/lox/hooky/internal/randutil"
	"github.com/lox/hooky/internal/store"
)

func startWSServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{})
	srv := NewServer("127.0.0.1:0", logger)
	st := store.New(logger)
	svc := NewGameService(st, srv, logger, randutil.NewLocked(42), bot.DefaultRoster(), quartz.NewReal())
	srv.SetGameService(svc)

	go srv.run()
	ts := httptest.NewServer(http.HandlerFunc(srv.handleWebSocket))
	t.Cleanup(func() {
		ts.Close()
		_ = srv.Stop()
	})
	return srv, ts
}

func dial(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http")
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ws.Close() })
	return ws
}

func send(t *testing.T, ws *websocket.Conn, msgType MessageType, data interface{}) {
	t.Helper()
	msg, err := NewMessage(msgType, data)
	require.NoError(t, err)
	require.NoError(t, ws.WriteJSON(msg))
}

func receive(t *testing.T, ws *websocket.Conn) *Message {
	t.Helper()
	var msg Message
	require.NoError(t, ws.ReadJSON(&msg))
	return &msg
}

func TestWebSocketCreateGame(t *testing.T) {
	_, ts := startWSServer(t)
	ws := dial(t, ts)

	send(t, ws, MessageTypeCreateGame, CreateGameData{PlayerName: "Alice"})

	reply := receive(t, ws)
	require.Equal(t, MessageTypeGameCreated, reply.Type)

	var data GameCreatedData
	require.NoError(t, json.Unmarshal(reply.Data, &data))
	assert.NotEmpty(t, data.PlayerID)
	require.NotNil(t, data.Game)
	assert.Len(t, data.Game.RoomCode, 6)
	assert.Nil(t, data.Game.HookyLetters, "hooky letters must be redacted until the game finishes")
}

func TestWebSocketJoinByCode(t *testing.T) {
	_, ts := startWSServer(t)

	host := dial(t, ts)
	send(t, host, MessageTypeCreateGame, CreateGameData{PlayerName: "Alice"})
	created := receive(t, host)
	var createdData GameCreatedData
	require.NoError(t, json.Unmarshal(created.Data, &createdData))

	joiner := dial(t, ts)
	send(t, joiner, MessageTypeJoinByCode, JoinByCodeData{
		RoomCode:   createdData.Game.RoomCode,
		PlayerName: "Bob",
	})

	reply := receive(t, joiner)
	require.Equal(t, MessageTypeGameJoined, reply.Type)

	var joined GameJoinedData
	require.NoError(t, json.Unmarshal(reply.Data, &joined))
	assert.Len(t, joined.Game.Players, 2)

	// Bob sees his own letters; Alice's hand arrives blanked but keeps its
	// size so the client can render it.
	for _, p := range joined.Game.Players {
		if p.ID == joined.PlayerID {
			assert.NotEmpty(t, p.Hand)
			continue
		}
		require.Len(t, p.Hand, letters.HandSize(len(joined.Game.Players)))
		for _, l := range p.Hand {
			assert.Empty(t, l)
		}
	}

	// The host is told about the join
	update := receive(t, host)
	assert.Equal(t, MessageTypeGameUpdated, update.Type)
}

func TestWebSocketUnknownTagKeepsConnectionOpen(t *testing.T) {
	_, ts := startWSServer(t)
	ws := dial(t, ts)

	send(t, ws, MessageType("teleport"), struct{}{})
	reply := receive(t, ws)
	require.Equal(t, MessageTypeError, reply.Type)

	// The connection still serves commands afterwards
	send(t, ws, MessageTypeCreateGame, CreateGameData{PlayerName: "Alice"})
	reply = receive(t, ws)
	assert.Equal(t, MessageTypeGameCreated, reply.Type)
}

func TestHealthEndpoint(t *testing.T) {
	logger := log.NewWithOptions(io.Discard, log.Options{})
	srv := NewServer("127.0.0.1:0", logger)

	rec := httptest.NewRecorder()
	srv.handleHealth(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}
