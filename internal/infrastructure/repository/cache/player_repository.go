package cache

import (
	"context"

	"github.com/difaziotennis-rgb/Ladder/internal/domain/player"
	basecache "github.com/difaziotennis-rgb/Ladder/internal/platform/cache"
)

const keyPlayerList = "player:list:"

// PlayerRepository caches club rosters. Point-level writes drop every roster
// because updates do not carry the club id.
type PlayerRepository struct {
	next  player.Repository
	cache *basecache.Store
}

func NewPlayerRepository(next player.Repository, cache *basecache.Store) *PlayerRepository {
	return &PlayerRepository{next: next, cache: cache}
}

func (r *PlayerRepository) ListByClub(ctx context.Context, clubID string) ([]player.Player, error) {
	v, err := r.cache.GetOrLoad(ctx, keyPlayerList+clubID, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByClub(ctx, clubID)
		if err != nil {
			return nil, err
		}
		return append([]player.Player(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]player.Player)
	return append([]player.Player(nil), items...), nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (player.Player, bool, error) {
	return r.next.GetByID(ctx, playerID)
}

func (r *PlayerRepository) GetByEmail(ctx context.Context, clubID, email string) (player.Player, bool, error) {
	return r.next.GetByEmail(ctx, clubID, email)
}

func (r *PlayerRepository) CreateAtBottom(ctx context.Context, item player.Player) (player.Player, error) {
	created, err := r.next.CreateAtBottom(ctx, item)
	if err != nil {
		return player.Player{}, err
	}
	r.cache.Delete(ctx, keyPlayerList+item.ClubID)
	return created, nil
}

func (r *PlayerRepository) Update(ctx context.Context, item player.Player) error {
	if err := r.next.Update(ctx, item); err != nil {
		return err
	}
	r.cache.Delete(ctx, keyPlayerList+item.ClubID)
	return nil
}

func (r *PlayerRepository) UpdatePositions(ctx context.Context, clubID string, updates []player.PositionUpdate) error {
	if err := r.next.UpdatePositions(ctx, clubID, updates); err != nil {
		return err
	}
	r.cache.Delete(ctx, keyPlayerList+clubID)
	return nil
}

func (r *PlayerRepository) UpdateRankingPoints(ctx context.Context, updates []player.PointsUpdate) error {
	err := r.next.UpdateRankingPoints(ctx, updates)
	r.cache.DeletePrefix(ctx, keyPlayerList)
	return err
}

func (r *PlayerRepository) Delete(ctx context.Context, playerID string) error {
	err := r.next.Delete(ctx, playerID)
	r.cache.DeletePrefix(ctx, keyPlayerList)
	return err
}
