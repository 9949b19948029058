package bot

// Profile names a stock bot opponent and its difficulty.
type Profile struct {
	Name       string
	Difficulty Difficulty
}

// DefaultRoster returns the stock opponents, in pick order. Single-player
// games seat the first two.
func DefaultRoster() []Profile {
	return []Profile{
		{Name: "Dr. Wordsworth", Difficulty: Hard},
		{Name: "Lexie", Difficulty: Medium},
		{Name: "Puzzle Pete", Difficulty: Medium},
		{Name: "Clue Bot", Difficulty: Easy},
	}
}
