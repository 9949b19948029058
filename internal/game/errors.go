package game

import "errors"

// Failure classes. The gateway maps these onto its error taxonomy: turn
// violations and validation failures are reported to the originating client
// only; none of them mutate state.
var (
	// ErrNotJoinable means the game already left the waiting phase.
	ErrNotJoinable = errors.New("game has already started")
	// ErrGameFull means the game is at the five-player cap.
	ErrGameFull = errors.New("game is full")
	// ErrNotEnoughPlayers means fewer than three players are present.
	ErrNotEnoughPlayers = errors.New("need at least 3 players to start")
	// ErrWrongPhase means the operation is not valid in the current phase.
	ErrWrongPhase = errors.New("operation not valid in current phase")
	// ErrPlayerNotFound means the player id is not part of this game.
	ErrPlayerNotFound = errors.New("player not found")
	// ErrClueNotFound means the clue id does not exist.
	ErrClueNotFound = errors.New("clue not found")
	// ErrNotYourTurn means a clue came from someone other than the current player.
	ErrNotYourTurn = errors.New("not your turn")
	// ErrNotClueTarget means a response came from someone other than the clue's target.
	ErrNotClueTarget = errors.New("only the clue's target may respond")
	// ErrAlreadySubmitted means the per-player, per-slot write already happened.
	ErrAlreadySubmitted = errors.New("already submitted")
	// ErrNoHandLetter means the word shares no letter with the sender's hand.
	ErrNoHandLetter = errors.New("word must contain at least one of your letters")
	// ErrInvalidTarget means the clue targets the asker or a stranger.
	ErrInvalidTarget = errors.New("invalid target player")
	// ErrInvalidResponse means a clue response outside 0-5.
	ErrInvalidResponse = errors.New("response must be between 0 and 5")
	// ErrInvalidGuess means a malformed hooky or hand guess.
	ErrInvalidGuess = errors.New("invalid guess")
)
