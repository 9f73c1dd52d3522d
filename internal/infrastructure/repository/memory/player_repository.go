package memory

import (
	"context"
	"fmt"

	"github.com/difaziotennis-rgb/Ladder/internal/domain/player"
)

type PlayerRepository struct {
	db *Store
}

func NewPlayerRepository(db *Store) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) ListByClub(_ context.Context, clubID string) ([]player.Player, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]player.Player, 0)
	for _, item := range r.db.players {
		if item.ClubID == clubID {
			out = append(out, item)
		}
	}
	player.SortByPosition(out)
	return out, nil
}

func (r *PlayerRepository) GetByID(_ context.Context, playerID string) (player.Player, bool, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	item, ok := r.db.players[playerID]
	return item, ok, nil
}

func (r *PlayerRepository) GetByEmail(_ context.Context, clubID, email string) (player.Player, bool, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	return r.findByEmailLocked(clubID, email)
}

func (r *PlayerRepository) CreateAtBottom(_ context.Context, item player.Player) (player.Player, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, exists := r.db.players[item.ID]; exists {
		return player.Player{}, fmt.Errorf("player %s already exists", item.ID)
	}
	if _, taken, _ := r.findByEmailLocked(item.ClubID, item.Email); taken {
		return player.Player{}, player.ErrEmailTaken
	}

	maxPosition := 0
	for _, p := range r.db.players {
		if p.ClubID == item.ClubID && p.Position > maxPosition {
			maxPosition = p.Position
		}
	}
	item.Position = maxPosition + 1
	r.db.players[item.ID] = item
	return item, nil
}

func (r *PlayerRepository) Update(_ context.Context, item player.Player) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.players[item.ID]; !ok {
		return fmt.Errorf("player %s not found", item.ID)
	}
	if other, taken, _ := r.findByEmailLocked(item.ClubID, item.Email); taken && other.ID != item.ID {
		return player.ErrEmailTaken
	}
	r.db.players[item.ID] = item
	return nil
}

func (r *PlayerRepository) UpdatePositions(_ context.Context, clubID string, updates []player.PositionUpdate) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, u := range updates {
		item, ok := r.db.players[u.PlayerID]
		if !ok || item.ClubID != clubID {
			return fmt.Errorf("player %s not found in club %s", u.PlayerID, clubID)
		}
	}
	for _, u := range updates {
		item := r.db.players[u.PlayerID]
		item.Position = u.Position
		r.db.players[u.PlayerID] = item
	}
	return nil
}

func (r *PlayerRepository) UpdateRankingPoints(_ context.Context, updates []player.PointsUpdate) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, u := range updates {
		if _, ok := r.db.players[u.PlayerID]; !ok {
			return fmt.Errorf("player %s not found", u.PlayerID)
		}
	}
	for _, u := range updates {
		item := r.db.players[u.PlayerID]
		item.RankingPoints = u.RankingPoints
		r.db.players[u.PlayerID] = item
	}
	return nil
}

func (r *PlayerRepository) Delete(_ context.Context, playerID string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.deletePlayerLocked(playerID)
	return nil
}

func (r *PlayerRepository) findByEmailLocked(clubID, email string) (player.Player, bool, error) {
	email = player.NormalizeEmail(email)
	if email == "" {
		return player.Player{}, false, nil
	}
	for _, item := range r.db.players {
		if item.ClubID == clubID && player.NormalizeEmail(item.Email) == email {
			return item, true, nil
		}
	}
	return player.Player{}, false, nil
}
