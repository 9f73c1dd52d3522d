package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/difaziotennis-rgb/Ladder/internal/domain/player"
	qb "github.com/difaziotennis-rgb/Ladder/internal/platform/querybuilder"
)

const playerEmailConstraint = "players_club_email_key"

var playerSelectColumns = []string{
	"id",
	"club_id",
	"name",
	"email",
	"phone_number",
	"position",
	"ranking_points",
	"created_at",
	"updated_at",
}

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) ListByClub(ctx context.Context, clubID string) ([]player.Player, error) {
	query, args, err := qb.Select(playerSelectColumns...).From("players").
		Where(qb.Eq("club_id", clubID)).
		OrderBy("position ASC NULLS LAST", "created_at ASC", "id ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players by club query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players by club: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (player.Player, bool, error) {
	return r.getOne(ctx, "get player by id", qb.Eq("id", playerID))
}

func (r *PlayerRepository) GetByEmail(ctx context.Context, clubID, email string) (player.Player, bool, error) {
	email = player.NormalizeEmail(email)
	if email == "" {
		return player.Player{}, false, nil
	}
	return r.getOne(ctx, "get player by email",
		qb.Eq("club_id", clubID),
		qb.Expr("lower(email) = ?", email),
	)
}

// CreateAtBottom serializes inserts per club with an advisory lock so two
// new players never share a position.
func (r *PlayerRepository) CreateAtBottom(ctx context.Context, item player.Player) (player.Player, error) {
	now := time.Now().UTC()
	if item.CreatedAt.IsZero() {
		item.CreatedAt = now
	}
	if item.UpdatedAt.IsZero() {
		item.UpdatedAt = item.CreatedAt
	}

	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, item.ClubID); err != nil {
			return fmt.Errorf("lock club roster: %w", err)
		}

		maxQuery, maxArgs, err := qb.Select("COALESCE(MAX(position), 0)").From("players").
			Where(qb.Eq("club_id", item.ClubID)).
			ToSQL()
		if err != nil {
			return fmt.Errorf("build max position query: %w", err)
		}
		var maxPosition int
		if err := tx.GetContext(ctx, &maxPosition, maxQuery, maxArgs...); err != nil {
			return fmt.Errorf("select max position: %w", err)
		}
		item.Position = maxPosition + 1

		query, args, err := qb.InsertModel("players", newPlayerTableModel(item), "")
		if err != nil {
			return fmt.Errorf("build insert player query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			if constraint, ok := uniqueViolation(err); ok && constraint == playerEmailConstraint {
				return player.ErrEmailTaken
			}
			return fmt.Errorf("insert player: %w", err)
		}
		return nil
	})
	if err != nil {
		return player.Player{}, err
	}
	return item, nil
}

func (r *PlayerRepository) Update(ctx context.Context, item player.Player) error {
	row := newPlayerTableModel(item)
	query, args, err := qb.Update("players").
		Set("name", row.Name).
		Set("email", row.Email).
		Set("phone_number", row.PhoneNumber).
		Set("position", row.Position).
		Set("ranking_points", row.RankingPoints).
		SetExpr("updated_at", "now()").
		Where(qb.Eq("id", item.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update player query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if constraint, ok := uniqueViolation(err); ok && constraint == playerEmailConstraint {
			return player.ErrEmailTaken
		}
		return fmt.Errorf("update player: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("player %s not found", item.ID)
	}
	return nil
}

func (r *PlayerRepository) UpdatePositions(ctx context.Context, clubID string, updates []player.PositionUpdate) error {
	if len(updates) == 0 {
		return nil
	}
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		for _, u := range updates {
			query, args, err := qb.Update("players").
				Set("position", toNullInt64(u.Position)).
				SetExpr("updated_at", "now()").
				Where(qb.Eq("id", u.PlayerID), qb.Eq("club_id", clubID)).
				ToSQL()
			if err != nil {
				return fmt.Errorf("build update player position query: %w", err)
			}
			res, err := tx.ExecContext(ctx, query, args...)
			if err != nil {
				return fmt.Errorf("update player position: %w", err)
			}
			if n, err := res.RowsAffected(); err == nil && n == 0 {
				return fmt.Errorf("player %s not found in club %s", u.PlayerID, clubID)
			}
		}
		return nil
	})
}

func (r *PlayerRepository) UpdateRankingPoints(ctx context.Context, updates []player.PointsUpdate) error {
	if len(updates) == 0 {
		return nil
	}
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		return updateRankingPointsTx(ctx, tx, updates)
	})
}

// updateRankingPointsTx fails when a player row is missing so the caller's
// transaction rolls back.
func updateRankingPointsTx(ctx context.Context, tx *sqlx.Tx, updates []player.PointsUpdate) error {
	for _, u := range updates {
		query, args, err := qb.Update("players").
			Set("ranking_points", u.RankingPoints).
			SetExpr("updated_at", "now()").
			Where(qb.Eq("id", u.PlayerID)).
			ToSQL()
		if err != nil {
			return fmt.Errorf("build update ranking points query: %w", err)
		}
		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("update ranking points for %s: %w", u.PlayerID, err)
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return fmt.Errorf("player %s not found", u.PlayerID)
		}
	}
	return nil
}

func (r *PlayerRepository) Delete(ctx context.Context, playerID string) error {
	query, args, err := qb.DeleteFrom("players").Where(qb.Eq("id", playerID)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete player query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete player: %w", err)
	}
	return nil
}

func (r *PlayerRepository) getOne(ctx context.Context, op string, conds ...qb.Condition) (player.Player, bool, error) {
	query, args, err := qb.Select(playerSelectColumns...).From("players").
		Where(conds...).
		Limit(1).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build %s query: %w", op, err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("%s: %w", op, err)
	}
	return row.toDomain(), true, nil
}
