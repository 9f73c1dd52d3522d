package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/difaziotennis-rgb/Ladder/internal/domain/club"
	qb "github.com/difaziotennis-rgb/Ladder/internal/platform/querybuilder"
)

var clubSelectColumns = []string{
	"id",
	"name",
	"slug",
	"admin_password_hash",
	"created_at",
	"updated_at",
}

type ClubRepository struct {
	db *sqlx.DB
}

func NewClubRepository(db *sqlx.DB) *ClubRepository {
	return &ClubRepository{db: db}
}

func (r *ClubRepository) List(ctx context.Context) ([]club.Club, error) {
	query, args, err := qb.Select(clubSelectColumns...).From("clubs").
		OrderBy("name", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select clubs query: %w", err)
	}

	var rows []clubTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select clubs: %w", err)
	}

	out := make([]club.Club, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *ClubRepository) GetByID(ctx context.Context, clubID string) (club.Club, bool, error) {
	return r.getOne(ctx, "get club by id", qb.Eq("id", clubID))
}

// GetBySlug matches the stored slug case-insensitively.
func (r *ClubRepository) GetBySlug(ctx context.Context, slug string) (club.Club, bool, error) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	if slug == "" {
		return club.Club{}, false, nil
	}
	return r.getOne(ctx, "get club by slug", qb.Expr("lower(slug) = ?", slug))
}

func (r *ClubRepository) Create(ctx context.Context, item club.Club) error {
	now := time.Now().UTC()
	if item.CreatedAt.IsZero() {
		item.CreatedAt = now
	}
	if item.UpdatedAt.IsZero() {
		item.UpdatedAt = item.CreatedAt
	}

	query, args, err := qb.InsertModel("clubs", clubTableModel{
		ID:                item.ID,
		Name:              item.Name,
		Slug:              item.EffectiveSlug(),
		AdminPasswordHash: toNullString(item.AdminPasswordHash),
		CreatedAt:         item.CreatedAt,
		UpdatedAt:         item.UpdatedAt,
	}, "")
	if err != nil {
		return fmt.Errorf("build insert club query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if constraint, ok := uniqueViolation(err); ok && constraint == "clubs_slug_key" {
			return club.ErrSlugTaken
		}
		return fmt.Errorf("insert club: %w", err)
	}
	return nil
}

func (r *ClubRepository) UpdateAdminPassword(ctx context.Context, clubID, passwordHash string) error {
	query, args, err := qb.Update("clubs").
		Set("admin_password_hash", toNullString(passwordHash)).
		SetExpr("updated_at", "now()").
		Where(qb.Eq("id", clubID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update club password query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update club password: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("club %s not found", clubID)
	}
	return nil
}

func (r *ClubRepository) Delete(ctx context.Context, clubID string) error {
	query, args, err := qb.DeleteFrom("clubs").Where(qb.Eq("id", clubID)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete club query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete club: %w", err)
	}
	return nil
}

func (r *ClubRepository) getOne(ctx context.Context, op string, cond qb.Condition) (club.Club, bool, error) {
	query, args, err := qb.Select(clubSelectColumns...).From("clubs").
		Where(cond).
		Limit(1).
		ToSQL()
	if err != nil {
		return club.Club{}, false, fmt.Errorf("build %s query: %w", op, err)
	}

	var row clubTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return club.Club{}, false, nil
		}
		return club.Club{}, false, fmt.Errorf("%s: %w", op, err)
	}
	return row.toDomain(), true, nil
}
