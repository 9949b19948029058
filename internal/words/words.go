// Package words is the accepted-word oracle for five-letter game words.
//
// Validation is side-effect-free and checks rules in a fixed order: length,
// character set, then dictionary membership. The first failing rule wins.
package words

import (
	"errors"
	"strings"

	"github.com/lox/hooky/internal/randutil"
)

// Length is the required word length for every clue and pre-round word.
const Length = 5

var (
	ErrLength     = errors.New("word must be exactly 5 letters long")
	ErrNonLetter  = errors.New("word must contain only letters")
	ErrDictionary = errors.New("word not found in dictionary")
)

var dictionarySet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(dictionary))
	for _, w := range dictionary {
		set[w] = struct{}{}
	}
	return set
}()

// Validate canonicalizes word to uppercase and checks it against the
// accepted-word rules. It returns the canonical form on success.
func Validate(word string) (string, error) {
	w := strings.ToUpper(word)

	if len(w) != Length {
		return "", ErrLength
	}
	for _, r := range w {
		if r < 'A' || r > 'Z' {
			return "", ErrNonLetter
		}
	}
	if _, ok := dictionarySet[w]; !ok {
		return "", ErrDictionary
	}
	return w, nil
}

// IsValid reports whether word passes Validate.
func IsValid(word string) bool {
	_, err := Validate(word)
	return err == nil
}

// ContainsAny reports whether word contains at least one of the given
// single-letter strings.
func ContainsAny(word string, letters []string) bool {
	for _, l := range letters {
		if strings.Contains(word, l) {
			return true
		}
	}
	return false
}

// Random returns a uniformly chosen dictionary word.
func Random(rng randutil.Rand) string {
	return dictionary[rng.IntN(len(dictionary))]
}

// RandomContainingAny returns a uniformly chosen dictionary word that shares
// at least one letter with the given set. The second result is false when no
// dictionary word qualifies.
func RandomContainingAny(rng randutil.Rand, letters []string) (string, bool) {
	var candidates []string
	for _, w := range dictionary {
		if ContainsAny(w, letters) {
			candidates = append(candidates, w)
		}
	}
	if len(candidates) == 0 {
		return "", false
	}
	return candidates[rng.IntN(len(candidates))], true
}

// All returns the dictionary in sorted order. The returned slice must not be
// mutated.
func All() []string {
	return dictionary
}
