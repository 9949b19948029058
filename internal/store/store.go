// Package store keeps game records in memory and serializes mutations so at
// most one writer touches a given game at a time. Mutations to different
// games never block each other.
package store

import (
	"errors"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lox/hooky/internal/game"
)

var (
	ErrGameNotFound  = errors.New("game not found")
	ErrRoomCodeTaken = errors.New("room code already in use")
)

// entry pairs a game with its own mutation lock and a monotonically
// increasing version, bumped on every committed update.
type entry struct {
	mu      sync.Mutex
	game    *game.Game
	version uint64
}

// Store is the single point of truth for live games. The outer lock guards
// only the maps; per-game serialization happens on the entry locks.
type Store struct {
	logger     *log.Logger
	mu         sync.RWMutex
	games      map[string]*entry
	byRoomCode map[string]string
}

// New creates an empty store.
func New(logger *log.Logger) *Store {
	return &Store{
		logger:     logger.WithPrefix("store"),
		games:      make(map[string]*entry),
		byRoomCode: make(map[string]string),
	}
}

// Create registers a new game and its room code.
func (s *Store) Create(g *game.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byRoomCode[g.RoomCode]; ok {
		return ErrRoomCodeTaken
	}
	s.games[g.ID] = &entry{game: g.Clone(), version: 1}
	s.byRoomCode[g.RoomCode] = g.ID
	s.logger.Debug("Created game", "gameId", g.ID, "roomCode", g.RoomCode)
	return nil
}

// Get returns a snapshot of the game and its version.
func (s *Store) Get(id string) (*game.Game, uint64, error) {
	e, ok := s.lookup(id)
	if !ok {
		return nil, 0, ErrGameNotFound
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.game.Clone(), e.version, nil
}

// GetByRoomCode returns a snapshot of the game with the given room code.
func (s *Store) GetByRoomCode(code string) (*game.Game, uint64, error) {
	s.mu.RLock()
	id, ok := s.byRoomCode[code]
	s.mu.RUnlock()
	if !ok {
		return nil, 0, ErrGameNotFound
	}
	return s.Get(id)
}

// Update runs fn against the latest committed state of the game, holding the
// game's lock for the duration. fn mutates a working copy; if it returns an
// error nothing is committed and the error is returned unchanged. On success
// the copy is swapped in, the version is bumped, and a snapshot of the new
// state is returned.
func (s *Store) Update(id string, fn func(*game.Game) error) (*game.Game, uint64, error) {
	e, ok := s.lookup(id)
	if !ok {
		return nil, 0, ErrGameNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	work := e.game.Clone()
	if err := fn(work); err != nil {
		return nil, 0, err
	}
	work.UpdatedAt = time.Now()
	e.game = work
	e.version++
	return work.Clone(), e.version, nil
}

// GameIDs returns the ids of all stored games.
func (s *Store) GameIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.games))
	for id := range s.games {
		ids = append(ids, id)
	}
	return ids
}

func (s *Store) lookup(id string) (*entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.games[id]
	return e, ok
}
