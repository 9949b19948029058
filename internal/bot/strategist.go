// Package bot implements the decision logic for computer opponents.
//
// A Strategist reads a game snapshot and produces decisions; it never
// mutates the game itself. Callers persist decisions through the state
// machine, re-validating against the latest committed state first, so a
// strategist computed against stale state is harmless.
//
// The heuristics are deliberately best-effort: guesses may be wrong, and the
// lower tiers inject noise into clue responses to mimic imperfect play.
package bot

import (
	"strings"

	"github.com/lox/hooky/internal/game"
	"github.com/lox/hooky/internal/letters"
	"github.com/lox/hooky/internal/randutil"
	"github.com/lox/hooky/internal/words"
)

const vowels = "AEIOU"

// Strategist makes decisions for one bot player against a game snapshot.
type Strategist struct {
	game       *game.Game
	playerID   string
	difficulty Difficulty
	rng        randutil.Rand
}

// NewStrategist creates a strategist for the given bot player.
func NewStrategist(g *game.Game, playerID string, difficulty Difficulty, rng randutil.Rand) *Strategist {
	return &Strategist{game: g, playerID: playerID, difficulty: difficulty, rng: rng}
}

func (s *Strategist) player() *game.Player {
	return s.game.Player(s.playerID)
}

// PreRoundWord picks a dictionary word sharing a letter with the bot's hand,
// falling back to a synthesized token when no dictionary word qualifies.
func (s *Strategist) PreRoundWord() string {
	p := s.player()
	if w, ok := words.RandomContainingAny(s.rng, p.Hand); ok {
		return w
	}
	return s.synthesizeWord(p.Hand)
}

// Clue picks a target and a clue word. Human opponents are preferred as
// targets; the hard tier additionally steers toward words with a small
// (1-3 letter) overlap with the last three clues, staying informative
// without repeating them.
func (s *Strategist) Clue() (word, targetPlayerID string) {
	p := s.player()

	var humans, others []*game.Player
	for _, other := range s.game.Players {
		if other.ID == s.playerID {
			continue
		}
		others = append(others, other)
		if !other.IsBot {
			humans = append(humans, other)
		}
	}
	pool := humans
	if len(pool) == 0 {
		pool = others
	}
	target := pool[s.rng.IntN(len(pool))]

	return s.clueWord(p), target.ID
}

func (s *Strategist) clueWord(p *game.Player) string {
	if s.difficulty == Hard {
		if w, ok := s.strategicWord(p); ok {
			return w
		}
	}
	if w, ok := words.RandomContainingAny(s.rng, p.Hand); ok {
		return w
	}
	return s.synthesizeWord(p.Hand)
}

// strategicWord looks for a hand-overlapping word that shares 1-3 letters
// with one of the last three clues issued.
func (s *Strategist) strategicWord(p *game.Player) (string, bool) {
	recent := s.game.Clues
	if len(recent) > 3 {
		recent = recent[len(recent)-3:]
	}
	if len(recent) == 0 {
		return "", false
	}

	var candidates []string
	for _, w := range words.All() {
		if !words.ContainsAny(w, p.Hand) {
			continue
		}
		for _, c := range recent {
			overlap := 0
			for _, l := range w {
				if strings.ContainsRune(c.Word, l) {
					overlap++
				}
			}
			if overlap >= 1 && overlap <= 3 {
				candidates = append(candidates, w)
				break
			}
		}
	}
	if len(candidates) == 0 {
		return "", false
	}
	return candidates[s.rng.IntN(len(candidates))], true
}

// RespondToClue counts the clue word's letters present in the bot's hand,
// each occurrence checked independently against the hand as a set. Easier
// tiers sometimes mis-report by one; the result is always clamped to 0-5.
func (s *Strategist) RespondToClue(clue *game.Clue) int {
	count := CountHandLetters(s.player().Hand, clue.Word)

	if s.rng.Float64() < s.difficulty.mistakeChance() {
		if s.rng.Float64() < 0.5 {
			count--
		} else {
			count++
		}
	}
	if count < 0 {
		count = 0
	}
	if count > words.Length {
		count = words.Length
	}
	return count
}

// CountHandLetters returns how many of the word's letters are in the hand,
// duplicates in the word counting once per occurrence.
func CountHandLetters(hand []string, word string) int {
	set := make(map[byte]bool, len(hand))
	for _, l := range hand {
		set[l[0]] = true
	}
	count := 0
	for i := 0; i < len(word); i++ {
		if set[word[i]] {
			count++
		}
	}
	return count
}

// HookyGuess guesses three letters never seen in any hand or among the
// revealed letters. From round five the hard tier prefers letters that
// showed up in at least two clue words, a suspicion heuristic rather than a
// proof.
func (s *Strategist) HookyGuess(round int) []string {
	seen := make(map[string]bool)
	for _, p := range s.game.Players {
		for _, l := range p.Hand {
			seen[l] = true
		}
	}
	for _, l := range s.game.RevealedLetters {
		seen[l] = true
	}

	var unseen []string
	for _, l := range letters.All() {
		if !seen[l] {
			unseen = append(unseen, l)
		}
	}
	s.rng.Shuffle(len(unseen), func(i, j int) {
		unseen[i], unseen[j] = unseen[j], unseen[i]
	})

	if s.difficulty == Hard && round >= 5 {
		return s.suspiciousLetters(unseen)
	}
	return unseen[:letters.HookyCount]
}

func (s *Strategist) suspiciousLetters(unseen []string) []string {
	freq := make(map[string]int)
	for _, c := range s.game.Clues {
		distinct := make(map[string]bool)
		for i := 0; i < len(c.Word); i++ {
			distinct[string(c.Word[i])] = true
		}
		for l := range distinct {
			freq[l]++
		}
	}

	var guess []string
	for _, l := range unseen {
		if freq[l] >= 2 && len(guess) < letters.HookyCount {
			guess = append(guess, l)
		}
	}
	for _, l := range unseen {
		if len(guess) == letters.HookyCount {
			break
		}
		if !contains(guess, l) {
			guess = append(guess, l)
		}
	}
	return guess
}

// HandGuesses builds a guess for every other player's hand, sized to that
// player's hand length. Letters from clues the target answered positively
// are preferred; the rest is padded with unused letters.
func (s *Strategist) HandGuesses() map[string][]string {
	guesses := make(map[string][]string)
	for _, target := range s.game.Players {
		if target.ID == s.playerID {
			continue
		}
		guesses[target.ID] = s.guessHand(target)
	}
	return guesses
}

func (s *Strategist) guessHand(target *game.Player) []string {
	known := make(map[string]bool)
	for _, l := range s.game.HookyLetters {
		known[l] = true
	}
	for _, l := range s.game.RevealedLetters {
		known[l] = true
	}
	for _, p := range s.game.Players {
		if p.ID == target.ID {
			continue
		}
		for _, l := range p.Hand {
			known[l] = true
		}
	}

	var possible []string
	for _, l := range letters.All() {
		if !known[l] {
			possible = append(possible, l)
		}
	}

	var guess []string
	for _, c := range s.game.Clues {
		if c.TargetPlayerID != target.ID || !c.Answered() || *c.Response <= 0 {
			continue
		}
		for i := 0; i < len(c.Word); i++ {
			l := string(c.Word[i])
			if !contains(guess, l) && contains(possible, l) {
				guess = append(guess, l)
			}
		}
	}

	want := len(target.Hand)
	for len(guess) < want && len(possible) > len(guess) {
		l := possible[s.rng.IntN(len(possible))]
		if !contains(guess, l) {
			guess = append(guess, l)
		}
	}
	if len(guess) > want {
		guess = guess[:want]
	}
	return guess
}

// synthesizeWord builds a plausible five-letter token from hand letters,
// alternating consonants and vowels where the hand allows it.
func (s *Strategist) synthesizeWord(hand []string) string {
	var vs, cs []string
	for _, l := range hand {
		if strings.Contains(vowels, l) {
			vs = append(vs, l)
		} else {
			cs = append(cs, l)
		}
	}

	var b strings.Builder
	for i := 0; i < words.Length; i++ {
		switch {
		case i%2 == 0 && len(cs) > 0:
			b.WriteString(cs[s.rng.IntN(len(cs))])
		case len(vs) > 0:
			b.WriteString(vs[s.rng.IntN(len(vs))])
		case len(cs) > 0:
			b.WriteString(cs[s.rng.IntN(len(cs))])
		default:
			b.WriteString(hand[s.rng.IntN(len(hand))])
		}
	}
	return b.String()
}

func contains(list []string, l string) bool {
	for _, x := range list {
		if x == l {
			return true
		}
	}
	return false
}
