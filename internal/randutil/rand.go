package randutil

import (
	rand "math/rand/v2"
	"sync"
	"time"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// Rand is the subset of *math/rand/v2.Rand the game logic needs. Both
// *rand.Rand and *Locked satisfy it, so call sites can take a deterministic
// source in tests and a shared locked source in the server.
type Rand interface {
	IntN(n int) int
	Float64() float64
	Shuffle(n int, swap func(i, j int))
}

// New returns a *rand.Rand seeded deterministically from the provided int64.
// The helper centralises how we derive the two 64-bit seeds required by rand/v2
// so that all call sites get reproducible sequences.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// Locked wraps a seeded source behind a mutex so it can be shared by
// goroutines mutating different games concurrently.
type Locked struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewLocked returns a mutex-guarded source seeded from seed.
func NewLocked(seed int64) *Locked {
	return &Locked{rng: New(seed)}
}

// NewLockedFromTime returns a mutex-guarded source seeded from the current time.
func NewLockedFromTime() *Locked {
	return NewLocked(time.Now().UnixNano())
}

func (l *Locked) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rng.IntN(n)
}

func (l *Locked) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rng.Float64()
}

func (l *Locked) Shuffle(n int, swap func(i, j int)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.rng.Shuffle(n, swap)
}

// DurationBetween returns a uniformly chosen duration in [min, max].
func DurationBetween(rng Rand, min, max time.Duration) time.Duration {
	if max <= min {
		return min
	}
	return min + time.Duration(rng.IntN(int(max-min)+1))
}
