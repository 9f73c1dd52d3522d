package auth

import "context"

// Repository describes admin and session persistence needs from use cases.
type Repository interface {
	GetSiteAdminByUsername(ctx context.Context, username string) (SiteAdmin, bool, error)
	CreateSession(ctx context.Context, session Session) error
	GetSession(ctx context.Context, tokenHash string) (Session, bool, error)
	DeleteSession(ctx context.Context, tokenHash string) error
}
