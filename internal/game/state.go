package game

import (
	"strconv"
	"strings"
	"time"

	"github.com/lox/hooky/internal/letters"
	"github.com/lox/hooky/internal/randutil"
	"github.com/lox/hooky/internal/words"
)

// New creates a game in the waiting phase with freshly drawn hooky letters.
// The hooky letters are fixed for the life of the game and never redrawn.
func New(id, roomCode string, rng randutil.Rand) *Game {
	now := time.Now()
	return &Game{
		ID:              id,
		RoomCode:        roomCode,
		Phase:           PhaseWaiting,
		Round:           0,
		Players:         []*Player{},
		HookyLetters:    letters.PickHooky(rng),
		RevealedLetters: []string{},
		Unrevealed:      []string{},
		Clues:           []*Clue{},
		PreRoundWords:   []PreRoundWord{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// AddPlayer appends a player and redistributes the 23 non-hooky letters for
// the new player count. Every existing hand is replaced; the allocation rule
// trades hand stability for uniformity.
func (g *Game) AddPlayer(id, name string, isBot bool, rng randutil.Rand) (*Player, error) {
	if g.Phase != PhaseWaiting {
		return nil, ErrNotJoinable
	}
	if len(g.Players) >= letters.MaxPlayers {
		return nil, ErrGameFull
	}

	p := &Player{
		ID:           id,
		Name:         name,
		HookyGuesses: map[string][]string{},
		HandGuesses:  map[string][]string{},
		Connected:    true,
		IsBot:        isBot,
	}
	g.Players = append(g.Players, p)

	hands, unrevealed, err := letters.Distribute(rng, g.HookyLetters, len(g.Players))
	if err != nil {
		g.Players = g.Players[:len(g.Players)-1]
		return nil, err
	}
	for i, player := range g.Players {
		player.Hand = hands[i]
	}
	g.Unrevealed = unrevealed
	return p, nil
}

// Start moves a waiting game with at least three players into pre-round.
func (g *Game) Start() error {
	if g.Phase != PhaseWaiting {
		return ErrWrongPhase
	}
	if len(g.Players) < MinPlayers {
		return ErrNotEnoughPlayers
	}
	g.Phase = PhasePreRound
	return nil
}

// SubmitPreRoundWord records a player's one-time pre-round word. The word is
// assumed to have passed the word oracle; this checks only game rules: the
// word must share a letter with the player's hand and each player submits at
// most once. When the last player submits, play advances to word-feedback
// round 1.
func (g *Game) SubmitPreRoundWord(playerID, word string) error {
	if g.Phase != PhasePreRound {
		return ErrWrongPhase
	}
	p := g.Player(playerID)
	if p == nil {
		return ErrPlayerNotFound
	}
	if g.PreRoundWordBy(playerID) != nil {
		return ErrAlreadySubmitted
	}
	if !words.ContainsAny(word, p.Hand) {
		return ErrNoHandLetter
	}

	g.PreRoundWords = append(g.PreRoundWords, PreRoundWord{PlayerID: playerID, Word: word})
	g.advancePhase()
	return nil
}

// SubmitClue records a clue from the current player to a target. The turn
// does not advance until the target responds.
func (g *Game) SubmitClue(clueID, playerID, targetID, word string, now time.Time) (*Clue, error) {
	if !g.Phase.cluePhase() {
		return nil, ErrWrongPhase
	}
	asker := g.CurrentPlayer()
	if asker == nil || asker.ID != playerID {
		return nil, ErrNotYourTurn
	}
	if g.ClueBy(playerID, g.Round) != nil {
		return nil, ErrAlreadySubmitted
	}
	if targetID == playerID || g.Player(targetID) == nil {
		return nil, ErrInvalidTarget
	}
	if !words.ContainsAny(word, asker.Hand) {
		return nil, ErrNoHandLetter
	}

	clue := &Clue{
		ID:             clueID,
		PlayerID:       playerID,
		TargetPlayerID: targetID,
		Word:           word,
		Round:          g.Round,
		Timestamp:      now,
	}
	g.Clues = append(g.Clues, clue)
	return clue, nil
}

// RespondToClue records the target's 0-5 answer and advances the turn. When
// the response completes the round (one answered clue per player), a letter
// is revealed from the unrevealed pool, the round advances (capped at the
// final round) and the phase-advance rule runs.
func (g *Game) RespondToClue(clueID, responderID string, response int, rng randutil.Rand) error {
	clue := g.Clue(clueID)
	if clue == nil {
		return ErrClueNotFound
	}
	if clue.TargetPlayerID != responderID {
		return ErrNotClueTarget
	}
	if clue.Answered() {
		return ErrAlreadySubmitted
	}
	if response < 0 || response > 5 {
		return ErrInvalidResponse
	}

	clue.Response = &response
	g.CurrentPlayerIndex = (g.CurrentPlayerIndex + 1) % len(g.Players)

	if g.answeredClues(g.Round) == len(g.Players) {
		g.revealLetter(rng)
		if g.Round < FinalRound {
			g.Round++
		}
		g.advancePhase()
	}
	return nil
}

// SubmitHookyGuess records a three-letter hooky guess keyed by the current
// round. Guesses are accepted only during the guessing phase and each round's
// slot is written at most once. Correctness is not checked here; scoring
// happens at game end.
func (g *Game) SubmitHookyGuess(playerID string, round int, guess []string) error {
	if g.Phase != PhaseGuessing {
		return ErrWrongPhase
	}
	if round != g.Round {
		return ErrInvalidGuess
	}
	p := g.Player(playerID)
	if p == nil {
		return ErrPlayerNotFound
	}
	key := strconv.Itoa(round)
	if _, ok := p.HookyGuesses[key]; ok {
		return ErrAlreadySubmitted
	}
	normalized, err := normalizeLetters(guess, letters.HookyCount)
	if err != nil {
		return err
	}

	p.HookyGuesses[key] = normalized
	return nil
}

// SubmitHandGuesses records a player's all-or-nothing guesses of every other
// player's hand. Once every player has submitted, the game finishes and final
// scores are computed. The returned bool reports whether this submission
// finished the game.
func (g *Game) SubmitHandGuesses(playerID string, guesses map[string][]string) (bool, error) {
	if g.Phase != PhaseHandDeduction {
		return false, ErrWrongPhase
	}
	p := g.Player(playerID)
	if p == nil {
		return false, ErrPlayerNotFound
	}
	if len(p.HandGuesses) > 0 {
		return false, ErrAlreadySubmitted
	}
	if len(guesses) == 0 {
		return false, ErrInvalidGuess
	}

	normalized := make(map[string][]string, len(guesses))
	for targetID, guess := range guesses {
		if targetID == playerID || g.Player(targetID) == nil {
			return false, ErrInvalidTarget
		}
		guessed, err := normalizeLetters(guess, len(guess))
		if err != nil {
			return false, err
		}
		normalized[targetID] = guessed
	}

	p.HandGuesses = normalized

	for _, player := range g.Players {
		if len(player.HandGuesses) == 0 {
			return false, nil
		}
	}
	g.Phase = PhaseFinished
	g.ComputeFinalScores()
	return true, nil
}

// advancePhase applies the phase-advance rule. It is idempotent: calling it
// when no rule matches is a no-op.
func (g *Game) advancePhase() {
	switch {
	case g.Phase == PhasePreRound && len(g.PreRoundWords) == len(g.Players):
		g.Phase = PhaseWordFeedback
		g.Round = 1
	case g.Phase == PhaseWordFeedback && g.Round == FirstGuessingRound:
		g.Phase = PhaseGuessing
	case g.Phase == PhaseGuessing && g.Round == FinalRound && g.answeredClues(FinalRound) == len(g.Players):
		g.Phase = PhaseHandDeduction
	}
}

// revealLetter migrates one uniformly chosen letter from the unrevealed pool
// into public view.
func (g *Game) revealLetter(rng randutil.Rand) {
	if len(g.Unrevealed) == 0 {
		return
	}
	i := rng.IntN(len(g.Unrevealed))
	g.RevealedLetters = append(g.RevealedLetters, g.Unrevealed[i])
	g.Unrevealed = append(g.Unrevealed[:i], g.Unrevealed[i+1:]...)
}

func normalizeLetters(guess []string, want int) ([]string, error) {
	if len(guess) != want {
		return nil, ErrInvalidGuess
	}
	out := make([]string, len(guess))
	for i, l := range guess {
		u := strings.ToUpper(l)
		if len(u) != 1 || u[0] < 'A' || u[0] > 'Z' {
			return nil, ErrInvalidGuess
		}
		out[i] = u
	}
	return out, nil
}
