package server

import "github.com/lox/hooky/internal/game"

// RedactFor returns the view of a game a particular player may see. Until
// the game finishes, the hooky letters, other players' hand letters and
// everyone else's guesses are withheld; a finished game is fully visible.
// Other players' hands keep their length, with the letters blanked, so
// clients can still render opponent hand sizes. Clue words and responses
// are public throughout.
func RedactFor(g *game.Game, viewerID string) *game.Game {
	if g.Finished() {
		return g
	}

	out := g.Clone()
	out.HookyLetters = nil
	for _, p := range out.Players {
		if p.ID == viewerID {
			continue
		}
		p.Hand = make([]string, len(p.Hand))
		p.HookyGuesses = map[string][]string{}
		p.HandGuesses = map[string][]string{}
	}
	return out
}
