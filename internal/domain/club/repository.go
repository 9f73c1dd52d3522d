package club

import "context"

// Repository describes club persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Club, error)
	GetByID(ctx context.Context, clubID string) (Club, bool, error)
	GetBySlug(ctx context.Context, slug string) (Club, bool, error)
	Create(ctx context.Context, item Club) error
	UpdateAdminPassword(ctx context.Context, clubID, passwordHash string) error
	Delete(ctx context.Context, clubID string) error
}
