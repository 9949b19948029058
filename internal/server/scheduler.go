package server

import (
	"strconv"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/hooky/internal/game"
	"github.com/lox/hooky/internal/randutil"
)

// actionKind identifies the kind of pending bot decision.
type actionKind string

const (
	actionPreRoundWord actionKind = "preRoundWord"
	actionClue         actionKind = "clue"
	actionRespond      actionKind = "respond"
	actionHookyGuess   actionKind = "hookyGuess"
	actionHandGuesses  actionKind = "handGuesses"
)

// actionKey uniquely identifies one pending bot action. slot carries the
// clue id for responses and the round for hooky guesses, so re-scheduling
// the same decision is a no-op while a timer is pending.
type actionKey struct {
	gameID   string
	playerID string
	kind     actionKind
	slot     string
}

// Artificial think-time per action kind, to pace bots like humans. Human
// mutations never wait on these; a fired action re-validates against the
// latest committed state and silently no-ops when stale.
var actionDelays = map[actionKind][2]time.Duration{
	actionPreRoundWord: {1 * time.Second, 3 * time.Second},
	actionClue:         {1 * time.Second, 3 * time.Second},
	actionRespond:      {500 * time.Millisecond, 2 * time.Second},
	actionHookyGuess:   {1 * time.Second, 4 * time.Second},
	actionHandGuesses:  {2 * time.Second, 6 * time.Second},
}

// Scheduler turns committed game snapshots into delayed bot actions. Each
// pending (game, player, kind, slot) gets at most one timer.
type Scheduler struct {
	svc    *GameService
	logger *log.Logger
	rng    randutil.Rand
	clock  quartz.Clock

	mu      sync.Mutex
	pending map[actionKey]bool
}

// NewScheduler creates a scheduler firing bot actions on the given clock.
func NewScheduler(svc *GameService, logger *log.Logger, rng randutil.Rand, clock quartz.Clock) *Scheduler {
	return &Scheduler{
		svc:     svc,
		logger:  logger.WithPrefix("scheduler"),
		rng:     rng,
		clock:   clock,
		pending: make(map[actionKey]bool),
	}
}

// Schedule inspects a committed snapshot and queues a delayed action for
// every bot decision the state is waiting on.
func (s *Scheduler) Schedule(g *game.Game) {
	for _, key := range pendingActions(g) {
		s.schedule(key)
	}
}

// pendingActions lists the bot decisions the given state is blocked on.
func pendingActions(g *game.Game) []actionKey {
	var keys []actionKey

	switch g.Phase {
	case game.PhasePreRound:
		for _, p := range g.Players {
			if p.IsBot && g.PreRoundWordBy(p.ID) == nil {
				keys = append(keys, actionKey{gameID: g.ID, playerID: p.ID, kind: actionPreRoundWord})
			}
		}

	case game.PhaseWordFeedback, game.PhaseGuessing:
		if cp := g.CurrentPlayer(); cp != nil && cp.IsBot && g.ClueBy(cp.ID, g.Round) == nil {
			keys = append(keys, actionKey{gameID: g.ID, playerID: cp.ID, kind: actionClue, slot: strconv.Itoa(g.Round)})
		}
		for _, c := range g.Clues {
			if c.Answered() {
				continue
			}
			if target := g.Player(c.TargetPlayerID); target != nil && target.IsBot {
				keys = append(keys, actionKey{gameID: g.ID, playerID: target.ID, kind: actionRespond, slot: c.ID})
			}
		}
		if g.Phase == game.PhaseGuessing {
			round := strconv.Itoa(g.Round)
			for _, p := range g.Players {
				if !p.IsBot {
					continue
				}
				if _, ok := p.HookyGuesses[round]; !ok {
					keys = append(keys, actionKey{gameID: g.ID, playerID: p.ID, kind: actionHookyGuess, slot: round})
				}
			}
		}

	case game.PhaseHandDeduction:
		for _, p := range g.Players {
			if p.IsBot && len(p.HandGuesses) == 0 {
				keys = append(keys, actionKey{gameID: g.ID, playerID: p.ID, kind: actionHandGuesses})
			}
		}
	}
	return keys
}

func (s *Scheduler) schedule(key actionKey) {
	s.mu.Lock()
	if s.pending[key] {
		s.mu.Unlock()
		return
	}
	s.pending[key] = true
	s.mu.Unlock()

	bounds := actionDelays[key.kind]
	delay := randutil.DurationBetween(s.rng, bounds[0], bounds[1])
	s.logger.Debug("Scheduled bot action",
		"gameId", key.gameID, "player", key.playerID, "kind", key.kind, "delay", delay)

	s.clock.AfterFunc(delay, func() {
		s.mu.Lock()
		delete(s.pending, key)
		s.mu.Unlock()
		s.svc.runBotAction(key)
	})
}
