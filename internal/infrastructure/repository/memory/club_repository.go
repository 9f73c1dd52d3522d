package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/difaziotennis-rgb/Ladder/internal/domain/club"
)

type ClubRepository struct {
	db *Store
}

func NewClubRepository(db *Store) *ClubRepository {
	return &ClubRepository{db: db}
}

// List returns clubs ordered by name.
func (r *ClubRepository) List(_ context.Context) ([]club.Club, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]club.Club, 0, len(r.db.clubs))
	for _, item := range r.db.clubs {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *ClubRepository) GetByID(_ context.Context, clubID string) (club.Club, bool, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	item, ok := r.db.clubs[clubID]
	return item, ok, nil
}

func (r *ClubRepository) GetBySlug(_ context.Context, slug string) (club.Club, bool, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	return findBySlugLocked(r.db.clubs, slug)
}

func (r *ClubRepository) Create(_ context.Context, item club.Club) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, exists := r.db.clubs[item.ID]; exists {
		return fmt.Errorf("club %s already exists", item.ID)
	}
	if _, taken, _ := findBySlugLocked(r.db.clubs, item.EffectiveSlug()); taken {
		return club.ErrSlugTaken
	}
	r.db.clubs[item.ID] = item
	return nil
}

func (r *ClubRepository) UpdateAdminPassword(_ context.Context, clubID, passwordHash string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	item, ok := r.db.clubs[clubID]
	if !ok {
		return fmt.Errorf("club %s not found", clubID)
	}
	item.AdminPasswordHash = passwordHash
	r.db.clubs[clubID] = item
	return nil
}

func (r *ClubRepository) Delete(_ context.Context, clubID string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	delete(r.db.clubs, clubID)
	for id, p := range r.db.players {
		if p.ClubID == clubID {
			r.db.deletePlayerLocked(id)
		}
	}
	for id, m := range r.db.matches {
		if m.ClubID == clubID {
			delete(r.db.matches, id)
		}
	}
	return nil
}

func findBySlugLocked(clubs map[string]club.Club, slug string) (club.Club, bool, error) {
	for _, item := range clubs {
		if item.MatchesSlug(slug) {
			return item, true, nil
		}
	}
	return club.Club{}, false, nil
}
