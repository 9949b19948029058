package server

import (
	"context"
	"io"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/hooky/internal/bot"
	"github.com/lox/hooky/internal/game"
	"github.com/lox/hooky/internal/randutil"
	"github.com/lox/hooky/internal/store"
	"github.com/lox/hooky/internal/words"
)

type broadcast struct {
	game    *game.Game
	version uint64
}

// fakeGateway records outbound traffic instead of delivering it.
type fakeGateway struct {
	mu         sync.Mutex
	broadcasts []broadcast
	private    map[string][]*Message
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{private: make(map[string][]*Message)}
}

func (f *fakeGateway) BroadcastGame(g *game.Game, version uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.broadcasts = append(f.broadcasts, broadcast{game: g, version: version})
}

func (f *fakeGateway) SendToPlayer(playerID string, msg *Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.private[playerID] = append(f.private[playerID], msg)
	return nil
}

func (f *fakeGateway) broadcastCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.broadcasts)
}

func (f *fakeGateway) lastBroadcast() (broadcast, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.broadcasts) == 0 {
		return broadcast{}, false
	}
	return f.broadcasts[len(f.broadcasts)-1], true
}

func newTestService(t *testing.T) (*GameService, *store.Store, *fakeGateway, *quartz.Mock) {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{})
	st := store.New(logger)
	gateway := newFakeGateway()
	clock := quartz.NewMock(t)
	svc := NewGameService(st, gateway, logger, randutil.NewLocked(42), bot.DefaultRoster(), clock)
	return svc, st, gateway, clock
}

func TestCreateGameMultiplayer(t *testing.T) {
	svc, st, _, _ := newTestService(t)

	g, playerID, err := svc.CreateGame("Alice", false)
	require.NoError(t, err)
	assert.Equal(t, game.PhaseWaiting, g.Phase)
	require.Len(t, g.Players, 1)
	assert.Equal(t, playerID, g.Players[0].ID)
	assert.Equal(t, "Alice", g.Players[0].Name)
	assert.Len(t, g.RoomCode, 6)

	stored, version, err := st.Get(g.ID)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), version)
	assert.Equal(t, g.ID, stored.ID)
}

func TestCreateGameSinglePlayer(t *testing.T) {
	svc, _, _, clock := newTestService(t)

	g, playerID, err := svc.CreateGame("Alice", true)
	require.NoError(t, err)
	assert.Equal(t, game.PhasePreRound, g.Phase)
	require.Len(t, g.Players, 3)

	host := g.Player(playerID)
	require.NotNil(t, host)
	assert.False(t, host.IsBot)

	// Two stock bots in roster order
	assert.True(t, g.Players[1].IsBot)
	assert.True(t, g.Players[2].IsBot)
	assert.Equal(t, "Dr. Wordsworth", g.Players[1].Name)
	assert.Equal(t, "Lexie", g.Players[2].Name)

	// Both bots have a pre-round word timer pending
	_, ok := clock.Peek()
	assert.True(t, ok)
}

// advanceBy moves the mock clock forward by total, stepping through each
// pending timer/ticker event since quartz refuses to jump past one.
func advanceBy(t *testing.T, ctx context.Context, clock *quartz.Mock, total time.Duration) {
	t.Helper()
	for total > 0 {
		d, ok := clock.Peek()
		if !ok || d > total {
			clock.Advance(total).MustWait(ctx)
			return
		}
		clock.Advance(d).MustWait(ctx)
		total -= d
	}
}

func TestJoinGame(t *testing.T) {
	svc, _, gateway, _ := newTestService(t)

	g, _, err := svc.CreateGame("Alice", false)
	require.NoError(t, err)

	// Codes are normalized before lookup
	joined, bobID, err := svc.JoinGame(strings.ToLower(g.RoomCode), "Bob")
	require.NoError(t, err)
	require.Len(t, joined.Players, 2)
	assert.Equal(t, "Bob", joined.Player(bobID).Name)

	last, ok := gateway.lastBroadcast()
	require.True(t, ok)
	assert.Equal(t, uint64(2), last.version)
	assert.Len(t, last.game.Players, 2)

	_, _, err = svc.JoinGame("ZZZZZZ", "Mallory")
	assert.ErrorIs(t, err, store.ErrGameNotFound)
}

func TestJoinGameAfterStart(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	g, _, err := svc.CreateGame("Alice", false)
	require.NoError(t, err)
	_, _, err = svc.JoinGame(g.RoomCode, "Bob")
	require.NoError(t, err)
	_, _, err = svc.JoinGame(g.RoomCode, "Carol")
	require.NoError(t, err)

	_, err = svc.StartGame(g.ID)
	require.NoError(t, err)

	_, _, err = svc.JoinGame(g.RoomCode, "Dave")
	assert.ErrorIs(t, err, game.ErrNotJoinable)
}

func TestStartGameNotEnoughPlayers(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	g, _, err := svc.CreateGame("Alice", false)
	require.NoError(t, err)

	_, err = svc.StartGame(g.ID)
	assert.ErrorIs(t, err, game.ErrNotEnoughPlayers)
}

func TestSubmitPreRoundWordRejectsNonDictionaryWord(t *testing.T) {
	svc, _, gateway, _ := newTestService(t)

	g, playerID, err := svc.CreateGame("Alice", true)
	require.NoError(t, err)

	before := gateway.broadcastCount()
	err = svc.SubmitPreRoundWord(g.ID, playerID, "QQQQQ")
	assert.ErrorIs(t, err, words.ErrDictionary)
	assert.Equal(t, before, gateway.broadcastCount(), "rejected command must not broadcast")
}

func TestBotsSubmitPreRoundWords(t *testing.T) {
	svc, st, _, clock := newTestService(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	g, playerID, err := svc.CreateGame("Alice", true)
	require.NoError(t, err)

	// Worst case think time for a pre-round word is three seconds
	advanceBy(t, ctx, clock, 3*time.Second)

	snap, _, err := st.Get(g.ID)
	require.NoError(t, err)
	assert.Equal(t, game.PhasePreRound, snap.Phase, "host has not submitted yet")

	submitted := 0
	for _, p := range snap.Players {
		if p.IsBot {
			if w := snap.PreRoundWordBy(p.ID); w != nil {
				submitted++
			}
		}
	}
	assert.Equal(t, 2, submitted)
	assert.Nil(t, snap.PreRoundWordBy(playerID))
}

func TestStaleBotActionNoOps(t *testing.T) {
	svc, st, _, clock := newTestService(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	g, _, err := svc.CreateGame("Alice", true)
	require.NoError(t, err)

	// Submit for the bots out of band, before their timers fire
	for _, p := range g.Players {
		if !p.IsBot {
			continue
		}
		botID := p.ID
		_, _, err := st.Update(g.ID, func(g *game.Game) error {
			b := g.Player(botID)
			return g.SubmitPreRoundWord(botID, strings.Repeat(b.Hand[0], 5))
		})
		require.NoError(t, err)
	}

	advanceBy(t, ctx, clock, 3*time.Second)

	snap, _, err := st.Get(g.ID)
	require.NoError(t, err)
	for _, p := range snap.Players {
		if p.IsBot {
			count := 0
			for _, w := range snap.PreRoundWords {
				if w.PlayerID == p.ID {
					count++
				}
			}
			assert.Equal(t, 1, count, "stale timer must not double-submit")
		}
	}
}

func TestScheduleIsIdempotent(t *testing.T) {
	svc, st, _, _ := newTestService(t)

	g, _, err := svc.CreateGame("Alice", true)
	require.NoError(t, err)

	snap, _, err := st.Get(g.ID)
	require.NoError(t, err)
	svc.sched.Schedule(snap)
	svc.sched.Schedule(snap)

	svc.sched.mu.Lock()
	pending := len(svc.sched.pending)
	svc.sched.mu.Unlock()
	assert.Equal(t, 2, pending, "one timer per bot pre-round word")
}

func TestPendingActionsByPhase(t *testing.T) {
	rng := randutil.New(42)
	g := game.New("g1", "ABC123", rng)
	for _, p := range []struct {
		id    string
		isBot bool
	}{{"human", false}, {"bot1", true}, {"bot2", true}} {
		_, err := g.AddPlayer(p.id, p.id, p.isBot, rng)
		require.NoError(t, err)
	}
	require.NoError(t, g.Start())

	keys := pendingActions(g)
	require.Len(t, keys, 2)
	for _, k := range keys {
		assert.Equal(t, actionPreRoundWord, k.kind)
	}

	// Guessing phase: bot clue turn, bot clue response and bot hooky guesses
	g.Phase = game.PhaseGuessing
	g.Round = 4
	g.CurrentPlayerIndex = 1 // bot1
	g.Clues = []*game.Clue{
		{ID: "c1", PlayerID: "human", TargetPlayerID: "bot2", Word: "APPLE", Round: 4},
	}

	keys = pendingActions(g)
	kinds := make(map[actionKind]int)
	for _, k := range keys {
		kinds[k.kind]++
	}
	assert.Equal(t, 1, kinds[actionClue])
	assert.Equal(t, 1, kinds[actionRespond])
	assert.Equal(t, 2, kinds[actionHookyGuess])

	// Hand deduction: every bot owes a guess set
	g.Phase = game.PhaseHandDeduction
	keys = pendingActions(g)
	require.Len(t, keys, 2)
	for _, k := range keys {
		assert.Equal(t, actionHandGuesses, k.kind)
	}

	g.Phase = game.PhaseFinished
	assert.Empty(t, pendingActions(g))
}

// TestSinglePlayerGameRunsToCompletion drives a full single-player game: the
// clock is advanced whenever a bot timer is pending, and the host acts
// whenever the game is blocked on them.
func TestSinglePlayerGameRunsToCompletion(t *testing.T) {
	svc, st, gateway, clock := newTestService(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	rng := randutil.New(7)
	g, hostID, err := svc.CreateGame("Alice", true)
	require.NoError(t, err)
	gameID := g.ID

	var snap *game.Game
	for i := 0; i < 1000; i++ {
		snap, _, err = st.Get(gameID)
		require.NoError(t, err)
		if snap.Finished() {
			break
		}

		if d, ok := clock.Peek(); ok {
			clock.Advance(d).MustWait(ctx)
			continue
		}

		host := snap.Player(hostID)
		switch {
		case snap.Phase == game.PhasePreRound && snap.PreRoundWordBy(hostID) == nil:
			w, ok := words.RandomContainingAny(rng, host.Hand)
			require.True(t, ok)
			require.NoError(t, svc.SubmitPreRoundWord(gameID, hostID, w))

		case unansweredClueFor(snap, hostID) != nil:
			clue := unansweredClueFor(snap, hostID)
			count := bot.CountHandLetters(host.Hand, clue.Word)
			require.NoError(t, svc.RespondToClue(gameID, clue.ID, hostID, count))

		case snap.CurrentPlayer() != nil && snap.CurrentPlayer().ID == hostID && snap.ClueBy(hostID, snap.Round) == nil:
			w, ok := words.RandomContainingAny(rng, host.Hand)
			require.True(t, ok)
			target := snap.Players[1]
			require.NoError(t, svc.SubmitClue(gameID, hostID, target.ID, w))

		case snap.Phase == game.PhaseGuessing && !hasHookyGuess(host, snap.Round):
			require.NoError(t, svc.SubmitHookyGuess(gameID, hostID, []string{"A", "B", "C"}))

		case snap.Phase == game.PhaseHandDeduction && len(host.HandGuesses) == 0:
			guesses := make(map[string][]string)
			for _, p := range snap.Players {
				if p.ID != hostID {
					guesses[p.ID] = []string{"A", "B", "C"}
				}
			}
			_, err := svc.SubmitHandGuesses(gameID, hostID, guesses)
			require.NoError(t, err)

		default:
			t.Fatalf("game stuck: phase=%s round=%d", snap.Phase, snap.Round)
		}
	}

	require.True(t, snap.Finished(), "game did not finish: phase=%s round=%d", snap.Phase, snap.Round)
	assert.Equal(t, game.FinalRound, snap.Round)
	for _, p := range snap.Players {
		assert.Equal(t, p.Score.Hooky+p.Score.Hand, p.Score.Total, "player %s", p.Name)
	}

	last, ok := gateway.lastBroadcast()
	require.True(t, ok)
	assert.True(t, last.game.Finished(), "final broadcast carries the finished game")
}

func unansweredClueFor(g *game.Game, playerID string) *game.Clue {
	for _, c := range g.Clues {
		if c.TargetPlayerID == playerID && !c.Answered() {
			return c
		}
	}
	return nil
}

func hasHookyGuess(p *game.Player, round int) bool {
	_, ok := p.HookyGuesses[strconv.Itoa(round)]
	return ok
}
