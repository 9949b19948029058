package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/hooky/internal/game"
	"github.com/lox/hooky/internal/randutil"
)

func viewGame(t *testing.T) *game.Game {
	t.Helper()
	rng := randutil.New(42)
	g := game.New("g1", "ABC123", rng)
	for _, id := range []string{"p1", "p2", "p3"} {
		_, err := g.AddPlayer(id, "Player "+id, false, rng)
		require.NoError(t, err)
	}
	g.Players[0].HookyGuesses["4"] = []string{"A", "B", "C"}
	g.Players[1].HandGuesses["p1"] = []string{"D", "E"}
	return g
}

func TestRedactForHidesSecrets(t *testing.T) {
	g := viewGame(t)
	view := RedactFor(g, "p1")

	assert.Nil(t, view.HookyLetters)

	me := view.Player("p1")
	require.NotNil(t, me)
	assert.Equal(t, g.Player("p1").Hand, me.Hand)
	assert.Equal(t, []string{"A", "B", "C"}, me.HookyGuesses["4"])

	for _, id := range []string{"p2", "p3"} {
		other := view.Player(id)
		require.NotNil(t, other)
		require.Len(t, other.Hand, len(g.Player(id).Hand), "player %s hand size stays visible", id)
		for _, l := range other.Hand {
			assert.Empty(t, l, "player %s hand letters must be blanked", id)
		}
		assert.Empty(t, other.HookyGuesses)
		assert.Empty(t, other.HandGuesses)
	}
}

func TestRedactForDoesNotMutateOriginal(t *testing.T) {
	g := viewGame(t)
	_ = RedactFor(g, "p1")

	assert.NotNil(t, g.HookyLetters)
	assert.NotEmpty(t, g.Player("p2").Hand)
	assert.NotEmpty(t, g.Player("p2").HandGuesses)
}

func TestRedactForSpectator(t *testing.T) {
	g := viewGame(t)
	view := RedactFor(g, "nobody")

	assert.Nil(t, view.HookyLetters)
	for _, p := range view.Players {
		require.Len(t, p.Hand, len(g.Player(p.ID).Hand))
		for _, l := range p.Hand {
			assert.Empty(t, l)
		}
	}
}

func TestRedactForFinishedGameIsFullyVisible(t *testing.T) {
	g := viewGame(t)
	g.Phase = game.PhaseFinished

	view := RedactFor(g, "p1")
	assert.Equal(t, g.HookyLetters, view.HookyLetters)
	for _, p := range view.Players {
		assert.Equal(t, g.Player(p.ID).Hand, p.Hand)
	}
	assert.Equal(t, []string{"D", "E"}, view.Player("p2").HandGuesses["p1"])
}
