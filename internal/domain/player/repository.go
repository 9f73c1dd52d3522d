package player

import "context"

// Repository describes player persistence needs from use cases.
type Repository interface {
	ListByClub(ctx context.Context, clubID string) ([]Player, error)
	GetByID(ctx context.Context, playerID string) (Player, bool, error)
	GetByEmail(ctx context.Context, clubID, email string) (Player, bool, error)
	// CreateAtBottom stores the player with position max(position)+1 and
	// returns the persisted record.
	CreateAtBottom(ctx context.Context, item Player) (Player, error)
	Update(ctx context.Context, item Player) error
	UpdatePositions(ctx context.Context, clubID string, updates []PositionUpdate) error
	UpdateRankingPoints(ctx context.Context, updates []PointsUpdate) error
	Delete(ctx context.Context, playerID string) error
}
