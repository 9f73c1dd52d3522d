package cache

import (
	"context"

	"github.com/difaziotennis-rgb/Ladder/internal/domain/match"
	"github.com/difaziotennis-rgb/Ladder/internal/domain/player"
	basecache "github.com/difaziotennis-rgb/Ladder/internal/platform/cache"
)

// MatchRepository leaves match reads uncached. It only drops the club roster
// when a match write also moves ranking points.
type MatchRepository struct {
	match.Repository
	cache *basecache.Store
}

func NewMatchRepository(next match.Repository, cache *basecache.Store) *MatchRepository {
	return &MatchRepository{Repository: next, cache: cache}
}

func (r *MatchRepository) CreateWithPoints(ctx context.Context, item match.Match, updates []player.PointsUpdate) error {
	err := r.Repository.CreateWithPoints(ctx, item, updates)
	r.cache.Delete(ctx, keyPlayerList+item.ClubID)
	return err
}
