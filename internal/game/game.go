package game

import (
	"time"
)

// Phase identifies where a game is in its lifecycle. Phases only ever move
// forward.
type Phase string

const (
	PhaseWaiting       Phase = "waiting"
	PhasePreRound      Phase = "pre-round"
	PhaseWordFeedback  Phase = "word-feedback"
	PhaseGuessing      Phase = "guessing"
	PhaseHandDeduction Phase = "hand-deduction"
	PhaseFinished      Phase = "finished"
)

// cluePhase reports whether clues are exchanged during this phase.
func (p Phase) cluePhase() bool {
	return p == PhaseWordFeedback || p == PhaseGuessing
}

// Rounds 1-3 are word-feedback rounds, 4-6 are guessing rounds.
const (
	FirstGuessingRound = 4
	FinalRound         = 6
)

// MinPlayers is the minimum player count to start a game.
const MinPlayers = 3

// Score holds a player's final score, computed once on finish.
type Score struct {
	Hooky int `json:"hooky"`
	Hand  int `json:"hand"`
	Total int `json:"total"`
}

// Player is one participant, human or bot. The wire field for bots is "isAI"
// for client compatibility; bot difficulty is tracked by the caller, not here.
type Player struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	Hand         []string            `json:"hand"`
	HookyGuesses map[string][]string `json:"hookyGuesses"`
	HandGuesses  map[string][]string `json:"handGuesses"`
	Score        Score               `json:"score"`
	Connected    bool                `json:"connected"`
	IsBot        bool                `json:"isAI"`
}

// Clue is a five-letter word posed by one player to another. Response stays
// nil until the target answers.
type Clue struct {
	ID             string    `json:"id"`
	PlayerID       string    `json:"playerId"`
	TargetPlayerID string    `json:"targetPlayerId"`
	Word           string    `json:"word"`
	Round          int       `json:"round"`
	Response       *int      `json:"response,omitempty"`
	Timestamp      time.Time `json:"timestamp"`
}

// Answered reports whether the clue's target has responded.
func (c *Clue) Answered() bool {
	return c.Response != nil
}

// PreRoundWord is a player's one-time word submission before scored rounds.
type PreRoundWord struct {
	PlayerID string `json:"playerId"`
	Word     string `json:"word"`
}

// Game is the root aggregate. It is the sole owner of its players, clues and
// pre-round words; none of them are referenced outside their game.
type Game struct {
	ID                 string         `json:"id"`
	RoomCode           string         `json:"roomCode"`
	Phase              Phase          `json:"phase"`
	Round              int            `json:"round"`
	CurrentPlayerIndex int            `json:"currentPlayerIndex"`
	Players            []*Player      `json:"players"`
	HookyLetters       []string       `json:"hookyLetters"`
	RevealedLetters    []string       `json:"revealedLetters"`
	Unrevealed         []string       `json:"unrevealed"`
	Clues              []*Clue        `json:"clues"`
	PreRoundWords      []PreRoundWord `json:"preRoundWords"`
	CreatedAt          time.Time      `json:"createdAt"`
	UpdatedAt          time.Time      `json:"updatedAt"`
}

// Player returns the player with the given id, or nil.
func (g *Game) Player(id string) *Player {
	for _, p := range g.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// CurrentPlayer returns the player whose turn it is to issue a clue, or nil
// outside the clue phases.
func (g *Game) CurrentPlayer() *Player {
	if !g.Phase.cluePhase() {
		return nil
	}
	if g.CurrentPlayerIndex < 0 || g.CurrentPlayerIndex >= len(g.Players) {
		return nil
	}
	return g.Players[g.CurrentPlayerIndex]
}

// Clue returns the clue with the given id, or nil.
func (g *Game) Clue(id string) *Clue {
	for _, c := range g.Clues {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// ClueBy returns the clue issued by the given player in the given round, or
// nil. A player issues at most one clue per round.
func (g *Game) ClueBy(playerID string, round int) *Clue {
	for _, c := range g.Clues {
		if c.PlayerID == playerID && c.Round == round {
			return c
		}
	}
	return nil
}

// PreRoundWordBy returns the pre-round word submitted by the given player,
// or nil.
func (g *Game) PreRoundWordBy(playerID string) *PreRoundWord {
	for i := range g.PreRoundWords {
		if g.PreRoundWords[i].PlayerID == playerID {
			return &g.PreRoundWords[i]
		}
	}
	return nil
}

// answeredClues counts answered clues in the given round.
func (g *Game) answeredClues(round int) int {
	count := 0
	for _, c := range g.Clues {
		if c.Round == round && c.Answered() {
			count++
		}
	}
	return count
}

// Finished reports whether the game is terminal.
func (g *Game) Finished() bool {
	return g.Phase == PhaseFinished
}

// Clone returns a deep copy. The store hands out clones so readers never
// observe an in-progress mutation.
func (g *Game) Clone() *Game {
	out := *g
	out.HookyLetters = append([]string(nil), g.HookyLetters...)
	out.RevealedLetters = append([]string(nil), g.RevealedLetters...)
	out.Unrevealed = append([]string(nil), g.Unrevealed...)
	out.PreRoundWords = append([]PreRoundWord(nil), g.PreRoundWords...)

	out.Players = make([]*Player, len(g.Players))
	for i, p := range g.Players {
		cp := *p
		cp.Hand = append([]string(nil), p.Hand...)
		cp.HookyGuesses = cloneGuessMap(p.HookyGuesses)
		cp.HandGuesses = cloneGuessMap(p.HandGuesses)
		out.Players[i] = &cp
	}

	out.Clues = make([]*Clue, len(g.Clues))
	for i, c := range g.Clues {
		cc := *c
		if c.Response != nil {
			r := *c.Response
			cc.Response = &r
		}
		out.Clues[i] = &cc
	}
	return &out
}

func cloneGuessMap(m map[string][]string) map[string][]string {
	out := make(map[string][]string, len(m))
	for k, v := range m {
		out[k] = append([]string(nil), v...)
	}
	return out
}
