package letters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/hooky/internal/randutil"
)

func TestHandSizes(t *testing.T) {
	// One- and two-player lobbies deal at the three-player size.
	assert.Equal(t, 7, HandSize(1))
	assert.Equal(t, 7, HandSize(2))
	assert.Equal(t, 7, HandSize(3))
	assert.Equal(t, 5, HandSize(4))
	assert.Equal(t, 4, HandSize(5))

	assert.Equal(t, 2, UnrevealedSize(3))
	assert.Equal(t, 3, UnrevealedSize(4))
	assert.Equal(t, 3, UnrevealedSize(5))
}

func TestLetterConservation(t *testing.T) {
	for players := 3; players <= MaxPlayers; players++ {
		total := players*HandSize(players) + UnrevealedSize(players)
		assert.Equal(t, len(Alphabet)-HookyCount, total, "players=%d", players)
	}
}

func TestPickHooky(t *testing.T) {
	rng := randutil.New(42)
	hooky := PickHooky(rng)
	require.Len(t, hooky, HookyCount)

	seen := make(map[string]bool)
	for _, l := range hooky {
		assert.Len(t, l, 1)
		assert.False(t, seen[l], "hooky letters must be distinct")
		seen[l] = true
	}
}

func TestDistributePartitionsAlphabet(t *testing.T) {
	rng := randutil.New(42)
	hooky := PickHooky(rng)

	for players := 1; players <= MaxPlayers; players++ {
		hands, unrevealed, err := Distribute(rng, hooky, players)
		require.NoError(t, err)
		require.Len(t, hands, players)
		assert.Len(t, unrevealed, UnrevealedSize(players))

		// Dealt letters are distinct and never hooky. Lobbies below three
		// players leave part of the pool undealt.
		seen := make(map[string]int)
		for _, hand := range hands {
			assert.Len(t, hand, HandSize(players))
			for _, l := range hand {
				seen[l]++
			}
		}
		for _, l := range unrevealed {
			seen[l]++
		}

		assert.Len(t, seen, players*HandSize(players)+UnrevealedSize(players), "players=%d", players)
		if players >= 3 {
			assert.Len(t, seen, len(Alphabet)-HookyCount, "players=%d", players)
		}
		for l, count := range seen {
			assert.Equal(t, 1, count, "letter %s players=%d", l, players)
			assert.NotContains(t, hooky, l)
		}
	}
}

func TestDistributeRejectsBadInput(t *testing.T) {
	rng := randutil.New(42)
	hooky := PickHooky(rng)

	_, _, err := Distribute(rng, hooky, 0)
	assert.Error(t, err)

	_, _, err = Distribute(rng, hooky, MaxPlayers+1)
	assert.Error(t, err)

	_, _, err = Distribute(rng, []string{"A"}, 3)
	assert.Error(t, err)
}
