package match

import (
	"context"

	"github.com/difaziotennis-rgb/Ladder/internal/domain/player"
)

// Repository describes match persistence needs from use cases.
type Repository interface {
	// ListByClub returns matches joined with player records, newest first.
	ListByClub(ctx context.Context, clubID string) ([]WithPlayers, error)
	GetByID(ctx context.Context, matchID string) (Match, bool, error)
	Create(ctx context.Context, item Match) error
	// CreateWithPoints stores the match and the players' new ranking points
	// together. Nothing is written when any part fails.
	CreateWithPoints(ctx context.Context, item Match, updates []player.PointsUpdate) error
	Update(ctx context.Context, item Match) error
	Delete(ctx context.Context, matchID string) error
}
