package bot

import "fmt"

// Difficulty is a bot's skill tier. It lives beside the player record, not
// on it: difficulty only affects the strategist, never the game state.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// String returns the config-file spelling of the difficulty.
func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return fmt.Sprintf("Difficulty(%d)", int(d))
	}
}

// ParseDifficulty parses the config-file spelling of a difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch s {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	default:
		return 0, fmt.Errorf("unknown difficulty %q", s)
	}
}

// mistakeChance is the probability a clue response is perturbed by one.
func (d Difficulty) mistakeChance() float64 {
	switch d {
	case Easy:
		return 0.2
	case Medium:
		return 0.1
	default:
		return 0
	}
}
