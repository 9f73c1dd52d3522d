package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/difaziotennis-rgb/Ladder/internal/domain/auth"
	qb "github.com/difaziotennis-rgb/Ladder/internal/platform/querybuilder"
)

type AuthRepository struct {
	db *sqlx.DB
}

func NewAuthRepository(db *sqlx.DB) *AuthRepository {
	return &AuthRepository{db: db}
}

func (r *AuthRepository) GetSiteAdminByUsername(ctx context.Context, username string) (auth.SiteAdmin, bool, error) {
	query, args, err := qb.Select("id", "username", "password_hash", "created_at").From("site_admins").
		Where(qb.Expr("lower(username) = ?", strings.ToLower(strings.TrimSpace(username)))).
		Limit(1).
		ToSQL()
	if err != nil {
		return auth.SiteAdmin{}, false, fmt.Errorf("build get site admin query: %w", err)
	}

	var row siteAdminTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return auth.SiteAdmin{}, false, nil
		}
		return auth.SiteAdmin{}, false, fmt.Errorf("get site admin: %w", err)
	}
	return auth.SiteAdmin{
		ID:           row.ID,
		Username:     row.Username,
		PasswordHash: row.PasswordHash,
		CreatedAt:    row.CreatedAt,
	}, true, nil
}

// UpsertSiteAdmin stores the configured site admin, replacing its hash.
func (r *AuthRepository) UpsertSiteAdmin(ctx context.Context, admin auth.SiteAdmin) error {
	query, args, err := qb.InsertModel("site_admins", siteAdminTableModel{
		ID:           admin.ID,
		Username:     admin.Username,
		PasswordHash: admin.PasswordHash,
		CreatedAt:    admin.CreatedAt,
	}, "ON CONFLICT (id) DO UPDATE SET username = EXCLUDED.username, password_hash = EXCLUDED.password_hash")
	if err != nil {
		return fmt.Errorf("build upsert site admin query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert site admin: %w", err)
	}
	return nil
}

func (r *AuthRepository) CreateSession(ctx context.Context, session auth.Session) error {
	query, args, err := qb.InsertModel("admin_sessions", sessionTableModel{
		TokenHash: session.TokenHash,
		Kind:      string(session.Kind),
		SubjectID: session.SubjectID,
		ExpiresAt: session.ExpiresAt,
		CreatedAt: session.CreatedAt,
	}, "")
	if err != nil {
		return fmt.Errorf("build insert session query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

func (r *AuthRepository) GetSession(ctx context.Context, tokenHash string) (auth.Session, bool, error) {
	query, args, err := qb.Select("token_hash", "kind", "subject_id", "expires_at", "created_at").From("admin_sessions").
		Where(qb.Eq("token_hash", tokenHash)).
		Limit(1).
		ToSQL()
	if err != nil {
		return auth.Session{}, false, fmt.Errorf("build get session query: %w", err)
	}

	var row sessionTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return auth.Session{}, false, nil
		}
		return auth.Session{}, false, fmt.Errorf("get session: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *AuthRepository) DeleteSession(ctx context.Context, tokenHash string) error {
	query, args, err := qb.DeleteFrom("admin_sessions").Where(qb.Eq("token_hash", tokenHash)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete session query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
