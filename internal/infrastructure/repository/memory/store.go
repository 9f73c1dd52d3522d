package memory

import (
	"sync"

	"github.com/difaziotennis-rgb/Ladder/internal/domain/auth"
	"github.com/difaziotennis-rgb/Ladder/internal/domain/club"
	"github.com/difaziotennis-rgb/Ladder/internal/domain/match"
	"github.com/difaziotennis-rgb/Ladder/internal/domain/player"
)

// Store holds every table behind one lock so deletes can cascade the way
// foreign keys do in postgres.
type Store struct {
	mu       sync.RWMutex
	clubs    map[string]club.Club
	players  map[string]player.Player
	matches  map[string]match.Match
	admins   map[string]auth.SiteAdmin
	sessions map[string]auth.Session
}

func NewStore() *Store {
	return &Store{
		clubs:    make(map[string]club.Club),
		players:  make(map[string]player.Player),
		matches:  make(map[string]match.Match),
		admins:   make(map[string]auth.SiteAdmin),
		sessions: make(map[string]auth.Session),
	}
}

// deletePlayerLocked removes a player and its matches. Caller holds mu.
func (s *Store) deletePlayerLocked(playerID string) {
	delete(s.players, playerID)
	for id, m := range s.matches {
		if m.WinnerID == playerID || m.LoserID == playerID {
			delete(s.matches, id)
		}
	}
}
