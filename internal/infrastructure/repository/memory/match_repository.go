package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/difaziotennis-rgb/Ladder/internal/domain/match"
	"github.com/difaziotennis-rgb/Ladder/internal/domain/player"
)

type MatchRepository struct {
	db *Store
}

func NewMatchRepository(db *Store) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) ListByClub(_ context.Context, clubID string) ([]match.WithPlayers, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]match.WithPlayers, 0)
	for _, m := range r.db.matches {
		if m.ClubID != clubID {
			continue
		}
		out = append(out, match.WithPlayers{
			Match:  m,
			Winner: r.db.players[m.WinnerID],
			Loser:  r.db.players[m.LoserID],
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].DatePlayed.Equal(out[j].DatePlayed) {
			return out[i].DatePlayed.After(out[j].DatePlayed)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *MatchRepository) GetByID(_ context.Context, matchID string) (match.Match, bool, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	item, ok := r.db.matches[matchID]
	return item, ok, nil
}

func (r *MatchRepository) Create(_ context.Context, item match.Match) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, exists := r.db.matches[item.ID]; exists {
		return fmt.Errorf("match %s already exists", item.ID)
	}
	if err := r.checkPlayersLocked(item); err != nil {
		return err
	}
	r.db.matches[item.ID] = item
	return nil
}

func (r *MatchRepository) CreateWithPoints(_ context.Context, item match.Match, updates []player.PointsUpdate) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, exists := r.db.matches[item.ID]; exists {
		return fmt.Errorf("match %s already exists", item.ID)
	}
	if err := r.checkPlayersLocked(item); err != nil {
		return err
	}
	for _, u := range updates {
		if _, ok := r.db.players[u.PlayerID]; !ok {
			return fmt.Errorf("player %s not found", u.PlayerID)
		}
	}

	r.db.matches[item.ID] = item
	for _, u := range updates {
		p := r.db.players[u.PlayerID]
		p.RankingPoints = u.RankingPoints
		r.db.players[u.PlayerID] = p
	}
	return nil
}

func (r *MatchRepository) Update(_ context.Context, item match.Match) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.matches[item.ID]; !ok {
		return fmt.Errorf("match %s not found", item.ID)
	}
	if err := r.checkPlayersLocked(item); err != nil {
		return err
	}
	r.db.matches[item.ID] = item
	return nil
}

func (r *MatchRepository) Delete(_ context.Context, matchID string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	delete(r.db.matches, matchID)
	return nil
}

// checkPlayersLocked mirrors the foreign keys on winner_id and loser_id.
func (r *MatchRepository) checkPlayersLocked(item match.Match) error {
	for _, playerID := range []string{item.WinnerID, item.LoserID} {
		if _, ok := r.db.players[playerID]; !ok {
			return fmt.Errorf("player %s not found", playerID)
		}
	}
	return nil
}
