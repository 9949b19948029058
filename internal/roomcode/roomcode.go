// Package roomcode generates the short codes players type to join a game.
package roomcode

import (
	"crypto/rand"
	"fmt"
	"strings"
)

// Codes are 6 characters drawn from uppercase letters and digits.
const (
	Length   = 6
	alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// RandSource interface for dependency injection of randomness
type RandSource interface {
	IntN(n int) int
}

// Generate creates a new room code using crypto/rand.
func Generate() string {
	return GenerateWithRandSource(nil)
}

// GenerateWithRandSource creates a new room code using the provided
// RandSource, or crypto/rand when nil.
func GenerateWithRandSource(randSource RandSource) string {
	code := make([]byte, Length)
	if randSource != nil {
		for i := range code {
			code[i] = alphabet[randSource.IntN(len(alphabet))]
		}
		return string(code)
	}

	// Rejection sampling: bytes at or above the largest multiple of the
	// alphabet size are discarded, otherwise the modulo skews toward the
	// start of the alphabet.
	limit := 256 - 256%len(alphabet)
	buf := make([]byte, Length)
	for i := 0; i < Length; {
		if _, err := rand.Read(buf); err != nil {
			panic("failed to generate random bytes: " + err.Error())
		}
		for _, b := range buf {
			if i == Length {
				break
			}
			if int(b) >= limit {
				continue
			}
			code[i] = alphabet[int(b)%len(alphabet)]
			i++
		}
	}
	return string(code)
}

// Normalize uppercases a user-supplied code.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Validate checks that a code is 6 characters from the code alphabet.
func Validate(code string) error {
	if len(code) != Length {
		return fmt.Errorf("room code must be exactly %d characters, got %d", Length, len(code))
	}
	for i, c := range code {
		if !strings.ContainsRune(alphabet, c) {
			return fmt.Errorf("invalid character %c at position %d", c, i)
		}
	}
	return nil
}
