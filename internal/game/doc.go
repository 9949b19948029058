// Package game implements the core state machine for a game of Hooky.
//
// The main type is Game, which owns the players, the letter partition, the
// clue log and the phase/round/turn bookkeeping. Games move strictly forward
// through the phases waiting → pre-round → word-feedback → guessing →
// hand-deduction → finished; no operation ever regresses a phase.
//
// # Mutation protocol
//
// Every exported mutation validates against the current state and either
// fully applies or returns an error leaving the Game untouched. Callers are
// expected to serialize mutations per game (see internal/store); the methods
// themselves are not safe for concurrent use.
//
// # Deterministic testing
//
// Operations that draw randomness (hooky selection, letter distribution,
// letter reveals) accept a randutil.Rand so tests can inject a fixed seed:
//
//	rng := randutil.New(42)
//	g := game.New("g1", "ABC123", rng)
package game
