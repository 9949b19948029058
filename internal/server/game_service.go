package server

import (
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"

	"github.com/lox/hooky/internal/bot"
	"github.com/lox/hooky/internal/game"
	"github.com/lox/hooky/internal/randutil"
	"github.com/lox/hooky/internal/roomcode"
	"github.com/lox/hooky/internal/store"
	"github.com/lox/hooky/internal/words"
)

// Gateway fans committed state out to connected players. The server
// implements it; tests substitute a recorder.
type Gateway interface {
	// BroadcastGame delivers a committed snapshot to every connection bound
	// to the game. Deliveries to one recipient are monotonic in version.
	BroadcastGame(g *game.Game, version uint64)
	// SendToPlayer delivers a private message to one player's connection.
	SendToPlayer(playerID string, msg *Message) error
}

// singlePlayerBots is how many stock opponents a single-player game seats.
const singlePlayerBots = 2

// GameService owns the command side of the protocol: it validates inbound
// commands, applies them through the store's per-game serialization point,
// broadcasts the committed result and schedules any bot actions the new
// state calls for. Human commands never wait on a pending bot delay.
type GameService struct {
	store   *store.Store
	gateway Gateway
	logger  *log.Logger
	rng     randutil.Rand
	roster  []bot.Profile
	sched   *Scheduler

	mu           sync.Mutex
	difficulties map[string]bot.Difficulty // bot playerID -> tier
}

// NewGameService creates a game service. The clock drives bot action delays;
// pass a mock in tests.
func NewGameService(st *store.Store, gateway Gateway, logger *log.Logger, rng randutil.Rand, roster []bot.Profile, clock quartz.Clock) *GameService {
	svc := &GameService{
		store:        st,
		gateway:      gateway,
		logger:       logger.WithPrefix("games"),
		rng:          rng,
		roster:       roster,
		difficulties: make(map[string]bot.Difficulty),
	}
	svc.sched = NewScheduler(svc, logger, rng, clock)
	return svc
}

// CreateGame allocates a new game hosted by playerName. Multiplayer games
// open a waiting lobby; single-player games seat two stock bots and go
// straight to pre-round.
func (s *GameService) CreateGame(playerName string, singlePlayer bool) (*game.Game, string, error) {
	g := game.New(uuid.NewString(), roomcode.Generate(), s.rng)

	host, err := g.AddPlayer(uuid.NewString(), playerName, false, s.rng)
	if err != nil {
		return nil, "", err
	}

	if singlePlayer {
		if len(s.roster) < singlePlayerBots {
			return nil, "", fmt.Errorf("bot roster too small: %d", len(s.roster))
		}
		for _, profile := range s.roster[:singlePlayerBots] {
			p, err := g.AddPlayer(uuid.NewString(), profile.Name, true, s.rng)
			if err != nil {
				return nil, "", err
			}
			s.setDifficulty(p.ID, profile.Difficulty)
		}
		if err := g.Start(); err != nil {
			return nil, "", err
		}
	}

	if err := s.store.Create(g); err != nil {
		return nil, "", err
	}

	s.logger.Info("Created game",
		"gameId", g.ID, "roomCode", g.RoomCode,
		"host", playerName, "singlePlayer", singlePlayer)

	snap, _, err := s.store.Get(g.ID)
	if err != nil {
		return nil, "", err
	}
	s.sched.Schedule(snap)
	return snap, host.ID, nil
}

// JoinGame adds a named player to the waiting game with the given room code.
// Every existing hand is redistributed for the new player count.
func (s *GameService) JoinGame(code, playerName string) (*game.Game, string, error) {
	g, _, err := s.store.GetByRoomCode(roomcode.Normalize(code))
	if err != nil {
		return nil, "", err
	}

	playerID := uuid.NewString()
	snap, version, err := s.store.Update(g.ID, func(g *game.Game) error {
		_, err := g.AddPlayer(playerID, playerName, false, s.rng)
		return err
	})
	if err != nil {
		return nil, "", err
	}

	s.logger.Info("Player joined", "gameId", g.ID, "player", playerName, "count", len(snap.Players))
	s.gateway.BroadcastGame(snap, version)
	return snap, playerID, nil
}

// StartGame moves a waiting lobby into pre-round.
func (s *GameService) StartGame(gameID string) (*game.Game, error) {
	snap, version, err := s.store.Update(gameID, func(g *game.Game) error {
		return g.Start()
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Game started", "gameId", gameID, "players", len(snap.Players))
	s.gateway.BroadcastGame(snap, version)
	s.sched.Schedule(snap)
	return snap, nil
}

// AttachPlayer marks a player connected again and returns the latest state
// for the joining connection.
func (s *GameService) AttachPlayer(gameID, playerID string) (*game.Game, uint64, error) {
	snap, version, err := s.store.Update(gameID, func(g *game.Game) error {
		p := g.Player(playerID)
		if p == nil {
			return game.ErrPlayerNotFound
		}
		p.Connected = true
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	s.gateway.BroadcastGame(snap, version)
	return snap, version, nil
}

// Disconnect marks a player disconnected. The player keeps their seat and
// hand; turn order never changes on disconnect.
func (s *GameService) Disconnect(gameID, playerID string) {
	snap, version, err := s.store.Update(gameID, func(g *game.Game) error {
		p := g.Player(playerID)
		if p == nil {
			return game.ErrPlayerNotFound
		}
		p.Connected = false
		return nil
	})
	if err != nil {
		s.logger.Debug("Disconnect cleanup skipped", "gameId", gameID, "player", playerID, "error", err)
		return
	}
	s.gateway.BroadcastGame(snap, version)
}

// SubmitPreRoundWord validates and records a player's pre-round word.
func (s *GameService) SubmitPreRoundWord(gameID, playerID, word string) error {
	canonical, err := words.Validate(word)
	if err != nil {
		return err
	}

	snap, version, err := s.store.Update(gameID, func(g *game.Game) error {
		return g.SubmitPreRoundWord(playerID, canonical)
	})
	if err != nil {
		return err
	}

	s.gateway.BroadcastGame(snap, version)
	s.sched.Schedule(snap)
	return nil
}

// SubmitClue validates and records a clue, then privately prompts a human
// target to respond.
func (s *GameService) SubmitClue(gameID, playerID, targetPlayerID, word string) error {
	canonical, err := words.Validate(word)
	if err != nil {
		return err
	}

	clueID := uuid.NewString()
	snap, version, err := s.store.Update(gameID, func(g *game.Game) error {
		_, err := g.SubmitClue(clueID, playerID, targetPlayerID, canonical, time.Now())
		return err
	})
	if err != nil {
		return err
	}

	s.gateway.BroadcastGame(snap, version)
	s.promptTarget(snap, snap.Clue(clueID))
	s.sched.Schedule(snap)
	return nil
}

// RespondToClue records a clue response and advances the turn, possibly
// completing the round.
func (s *GameService) RespondToClue(gameID, clueID, playerID string, response int) error {
	snap, version, err := s.store.Update(gameID, func(g *game.Game) error {
		return g.RespondToClue(clueID, playerID, response, s.rng)
	})
	if err != nil {
		return err
	}

	s.gateway.BroadcastGame(snap, version)
	s.sched.Schedule(snap)
	return nil
}

// SubmitHookyGuess records a hooky guess for the current round. Guesses are
// never broadcast; the submitter gets a private ack.
func (s *GameService) SubmitHookyGuess(gameID, playerID string, guess []string) error {
	snap, _, err := s.store.Update(gameID, func(g *game.Game) error {
		return g.SubmitHookyGuess(playerID, g.Round, guess)
	})
	if err != nil {
		return err
	}

	s.sched.Schedule(snap)
	return nil
}

// SubmitHandGuesses records a player's hand-deduction guesses. The last
// submission finishes the game and broadcasts the final, fully revealed
// state with scores.
func (s *GameService) SubmitHandGuesses(gameID, playerID string, guesses map[string][]string) (finished bool, err error) {
	snap, version, err := s.store.Update(gameID, func(g *game.Game) error {
		done, err := g.SubmitHandGuesses(playerID, guesses)
		finished = done
		return err
	})
	if err != nil {
		return false, err
	}

	if finished {
		s.logger.Info("Game finished", "gameId", gameID)
		s.gateway.BroadcastGame(snap, version)
	}
	s.sched.Schedule(snap)
	return finished, nil
}

// Game returns the latest committed snapshot.
func (s *GameService) Game(gameID string) (*game.Game, uint64, error) {
	return s.store.Get(gameID)
}

// promptTarget privately asks a human clue target to respond. Bot targets
// answer through the scheduler instead.
func (s *GameService) promptTarget(g *game.Game, clue *game.Clue) {
	if clue == nil {
		return
	}
	target := g.Player(clue.TargetPlayerID)
	if target == nil || target.IsBot {
		return
	}
	msg, err := NewMessage(MessageTypeRespondToClue, CluePromptData{Clue: clue})
	if err != nil {
		s.logger.Error("Failed to create clue prompt", "error", err)
		return
	}
	if err := s.gateway.SendToPlayer(target.ID, msg); err != nil {
		s.logger.Debug("Clue target not reachable", "player", target.ID, "error", err)
	}
}

func (s *GameService) setDifficulty(playerID string, d bot.Difficulty) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.difficulties[playerID] = d
}

func (s *GameService) difficultyOf(playerID string) bot.Difficulty {
	s.mu.Lock()
	defer s.mu.Unlock()
	if d, ok := s.difficulties[playerID]; ok {
		return d
	}
	return bot.Medium
}

// errStaleAction aborts a bot mutation whose decision window has passed.
var errStaleAction = errors.New("bot action no longer applicable")

// runBotAction executes one scheduled bot decision against the latest
// committed state. The guard re-checks that the action is still needed under
// the game lock; a stale action silently no-ops.
func (s *GameService) runBotAction(key actionKey) {
	var clueID string
	snap, version, err := s.store.Update(key.gameID, func(g *game.Game) error {
		if g.Finished() {
			return errStaleAction
		}
		strategist := bot.NewStrategist(g, key.playerID, s.difficultyOf(key.playerID), s.rng)

		switch key.kind {
		case actionPreRoundWord:
			if g.Phase != game.PhasePreRound || g.PreRoundWordBy(key.playerID) != nil {
				return errStaleAction
			}
			return g.SubmitPreRoundWord(key.playerID, strategist.PreRoundWord())

		case actionClue:
			cp := g.CurrentPlayer()
			if cp == nil || cp.ID != key.playerID || g.ClueBy(key.playerID, g.Round) != nil {
				return errStaleAction
			}
			word, targetID := strategist.Clue()
			clueID = uuid.NewString()
			_, err := g.SubmitClue(clueID, key.playerID, targetID, word, time.Now())
			return err

		case actionRespond:
			clue := g.Clue(key.slot)
			if clue == nil || clue.Answered() || clue.TargetPlayerID != key.playerID {
				return errStaleAction
			}
			return g.RespondToClue(clue.ID, key.playerID, strategist.RespondToClue(clue), s.rng)

		case actionHookyGuess:
			if g.Phase != game.PhaseGuessing || strconv.Itoa(g.Round) != key.slot {
				return errStaleAction
			}
			p := g.Player(key.playerID)
			if p == nil {
				return errStaleAction
			}
			if _, ok := p.HookyGuesses[key.slot]; ok {
				return errStaleAction
			}
			return g.SubmitHookyGuess(key.playerID, g.Round, strategist.HookyGuess(g.Round))

		case actionHandGuesses:
			p := g.Player(key.playerID)
			if g.Phase != game.PhaseHandDeduction || p == nil || len(p.HandGuesses) > 0 {
				return errStaleAction
			}
			_, err := g.SubmitHandGuesses(key.playerID, strategist.HandGuesses())
			return err

		default:
			return errStaleAction
		}
	})
	if errors.Is(err, errStaleAction) {
		return
	}
	if err != nil {
		s.logger.Warn("Bot action failed", "gameId", key.gameID, "player", key.playerID, "kind", key.kind, "error", err)
		return
	}

	if key.kind == actionClue && clueID != "" {
		s.promptTarget(snap, snap.Clue(clueID))
	}
	// Hooky and hand guesses stay secret; everything else is public state.
	secret := key.kind == actionHookyGuess || key.kind == actionHandGuesses
	if !secret || snap.Finished() {
		s.gateway.BroadcastGame(snap, version)
	}
	s.sched.Schedule(snap)
}
