package game

// Hooky guess values: rounds 4 and 5 pay 5 points per correct letter, the
// final round pays 10.
const (
	earlyHookyValue = 5
	finalHookyValue = 10
)

// ComputeFinalScores recomputes every player's score from the final state.
// It is idempotent and reads nothing outside the game, so re-running it on
// the same snapshot reproduces identical scores.
func (g *Game) ComputeFinalScores() {
	for _, p := range g.Players {
		hooky := g.hookyScore(p)
		hand := g.handScore(p)
		p.Score = Score{Hooky: hooky, Hand: hand, Total: hooky + hand}
	}
}

func (g *Game) hookyScore(p *Player) int {
	score := 0
	for round, guess := range p.HookyGuesses {
		correct := 0
		for _, l := range guess {
			if contains(g.HookyLetters, l) {
				correct++
			}
		}
		switch round {
		case "4", "5":
			score += correct * earlyHookyValue
		case "6":
			score += correct * finalHookyValue
		}
	}
	return score
}

func (g *Game) handScore(p *Player) int {
	score := 0
	for targetID, guess := range p.HandGuesses {
		target := g.Player(targetID)
		if target == nil {
			continue
		}
		correct := 0
		for _, l := range guess {
			if contains(target.Hand, l) {
				correct++
			}
		}
		score += correct
		// Exact-hand bonus: every letter right with no extras.
		if correct == len(target.Hand) && len(guess) == len(target.Hand) {
			score++
		}
	}
	return score
}

func contains(letters []string, l string) bool {
	for _, x := range letters {
		if x == l {
			return true
		}
	}
	return false
}
