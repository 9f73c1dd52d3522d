package cache

import (
	"context"
	"strings"

	"github.com/difaziotennis-rgb/Ladder/internal/domain/club"
	basecache "github.com/difaziotennis-rgb/Ladder/internal/platform/cache"
)

const (
	keyClubList   = "club:list"
	keyClubID     = "club:id:"
	keyClubSlug   = "club:slug:"
	keyClubPrefix = "club:"
)

type ClubRepository struct {
	next  club.Repository
	cache *basecache.Store
}

func NewClubRepository(next club.Repository, cache *basecache.Store) *ClubRepository {
	return &ClubRepository{next: next, cache: cache}
}

func (r *ClubRepository) List(ctx context.Context) ([]club.Club, error) {
	v, err := r.cache.GetOrLoad(ctx, keyClubList, func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]club.Club(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]club.Club)
	return append([]club.Club(nil), items...), nil
}

func (r *ClubRepository) GetByID(ctx context.Context, clubID string) (club.Club, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, keyClubID+clubID, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, clubID)
		if err != nil {
			return nil, err
		}
		return cachedClub{value: item, exists: exists}, nil
	})
	if err != nil {
		return club.Club{}, false, err
	}

	cached, _ := v.(cachedClub)
	return cached.value, cached.exists, nil
}

func (r *ClubRepository) GetBySlug(ctx context.Context, slug string) (club.Club, bool, error) {
	key := keyClubSlug + strings.ToLower(strings.TrimSpace(slug))
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetBySlug(ctx, slug)
		if err != nil {
			return nil, err
		}
		return cachedClub{value: item, exists: exists}, nil
	})
	if err != nil {
		return club.Club{}, false, err
	}

	cached, _ := v.(cachedClub)
	return cached.value, cached.exists, nil
}

func (r *ClubRepository) Create(ctx context.Context, item club.Club) error {
	if err := r.next.Create(ctx, item); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, keyClubPrefix)
	return nil
}

func (r *ClubRepository) UpdateAdminPassword(ctx context.Context, clubID, passwordHash string) error {
	if err := r.next.UpdateAdminPassword(ctx, clubID, passwordHash); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, keyClubPrefix)
	return nil
}

// Delete also drops cached player lists since players cascade with the club.
func (r *ClubRepository) Delete(ctx context.Context, clubID string) error {
	if err := r.next.Delete(ctx, clubID); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, keyClubPrefix)
	r.cache.Delete(ctx, keyPlayerList+clubID)
	return nil
}

type cachedClub struct {
	value  club.Club
	exists bool
}
