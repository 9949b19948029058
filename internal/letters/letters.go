// Package letters partitions the alphabet for a game: three hooky letters
// are fixed at creation, and the remaining 23 letters are split into player
// hands plus an unrevealed pool. For every valid player count n,
// n*HandSize(n) + UnrevealedSize(n) == 23.
package letters

import (
	"fmt"

	"github.com/lox/hooky/internal/randutil"
)

// Alphabet is the 26 uppercase letters, in order.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// HookyCount is the number of hooky letters chosen at game creation.
const HookyCount = 3

// MaxPlayers is the hard cap on players per game.
const MaxPlayers = 5

// HandSize returns the letters per hand for the given player count. Lobbies
// with one or two players are dealt at the three-player size; they cannot
// start until a third player joins.
func HandSize(players int) int {
	switch {
	case players <= 3:
		return 7
	case players == 4:
		return 5
	default:
		return 4
	}
}

// UnrevealedSize returns the size of the unrevealed pool for the given
// player count.
func UnrevealedSize(players int) int {
	if players <= 3 {
		return 2
	}
	return 3
}

// All returns the alphabet as single-letter strings.
func All() []string {
	out := make([]string, len(Alphabet))
	for i := range Alphabet {
		out[i] = string(Alphabet[i])
	}
	return out
}

// PickHooky chooses three distinct letters uniformly from the alphabet.
func PickHooky(rng randutil.Rand) []string {
	letters := All()
	rng.Shuffle(len(letters), func(i, j int) {
		letters[i], letters[j] = letters[j], letters[i]
	})
	return letters[:HookyCount]
}

// Distribute shuffles the 23 non-hooky letters and splits them into one hand
// per player plus the unrevealed pool. It is re-run from scratch on every
// join, replacing all existing hands; hand stability across joins is
// deliberately not provided.
func Distribute(rng randutil.Rand, hooky []string, players int) (hands [][]string, unrevealed []string, err error) {
	if players < 1 || players > MaxPlayers {
		return nil, nil, fmt.Errorf("invalid player count %d", players)
	}
	if len(hooky) != HookyCount {
		return nil, nil, fmt.Errorf("expected %d hooky letters, got %d", HookyCount, len(hooky))
	}

	isHooky := make(map[string]bool, HookyCount)
	for _, l := range hooky {
		isHooky[l] = true
	}

	pool := make([]string, 0, len(Alphabet)-HookyCount)
	for _, l := range All() {
		if !isHooky[l] {
			pool = append(pool, l)
		}
	}
	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	size := HandSize(players)
	hands = make([][]string, players)
	for i := 0; i < players; i++ {
		hand := make([]string, size)
		copy(hand, pool[i*size:(i+1)*size])
		hands[i] = hand
	}

	unrevealed = make([]string, UnrevealedSize(players))
	copy(unrevealed, pool[players*size:players*size+len(unrevealed)])
	return hands, unrevealed, nil
}
