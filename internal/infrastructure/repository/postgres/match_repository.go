package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/difaziotennis-rgb/Ladder/internal/domain/match"
	"github.com/difaziotennis-rgb/Ladder/internal/domain/player"
	qb "github.com/difaziotennis-rgb/Ladder/internal/platform/querybuilder"
)

var matchSelectColumns = []string{
	"id",
	"club_id",
	"winner_id",
	"loser_id",
	"score",
	"date_played",
	"created_at",
	"updated_at",
}

var matchWithPlayersColumns = []string{
	"m.id",
	"m.club_id",
	"m.winner_id",
	"m.loser_id",
	"m.score",
	"m.date_played",
	"m.created_at",
	"m.updated_at",
	"w.name AS w_name",
	"w.email AS w_email",
	"w.phone_number AS w_phone_number",
	"w.position AS w_position",
	"w.ranking_points AS w_ranking_points",
	"w.created_at AS w_created_at",
	"w.updated_at AS w_updated_at",
	"l.name AS l_name",
	"l.email AS l_email",
	"l.phone_number AS l_phone_number",
	"l.position AS l_position",
	"l.ranking_points AS l_ranking_points",
	"l.created_at AS l_created_at",
	"l.updated_at AS l_updated_at",
}

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) ListByClub(ctx context.Context, clubID string) ([]match.WithPlayers, error) {
	query, args, err := qb.Select(matchWithPlayersColumns...).From("matches m").
		Join("JOIN players w ON w.id = m.winner_id").
		Join("JOIN players l ON l.id = m.loser_id").
		Where(qb.Eq("m.club_id", clubID)).
		OrderBy("m.date_played DESC", "m.created_at DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches by club query: %w", err)
	}

	var rows []matchWithPlayersRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matches by club: %w", err)
	}

	out := make([]match.WithPlayers, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID string) (match.Match, bool, error) {
	query, args, err := qb.Select(matchSelectColumns...).From("matches").
		Where(qb.Eq("id", matchID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build get match by id query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("get match by id: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *MatchRepository) Create(ctx context.Context, item match.Match) error {
	query, args, err := insertMatchQuery(item)
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert match: %w", err)
	}
	return nil
}

// CreateWithPoints inserts the match and writes the new ranking points in one
// transaction.
func (r *MatchRepository) CreateWithPoints(ctx context.Context, item match.Match, updates []player.PointsUpdate) error {
	query, args, err := insertMatchQuery(item)
	if err != nil {
		return err
	}
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert match: %w", err)
		}
		return updateRankingPointsTx(ctx, tx, updates)
	})
}

func insertMatchQuery(item match.Match) (string, []any, error) {
	now := time.Now().UTC()
	if item.CreatedAt.IsZero() {
		item.CreatedAt = now
	}
	if item.UpdatedAt.IsZero() {
		item.UpdatedAt = item.CreatedAt
	}

	query, args, err := qb.InsertModel("matches", matchTableModel{
		ID:         item.ID,
		ClubID:     item.ClubID,
		WinnerID:   item.WinnerID,
		LoserID:    item.LoserID,
		Score:      item.Score,
		DatePlayed: item.DatePlayed,
		CreatedAt:  item.CreatedAt,
		UpdatedAt:  item.UpdatedAt,
	}, "")
	if err != nil {
		return "", nil, fmt.Errorf("build insert match query: %w", err)
	}
	return query, args, nil
}

func (r *MatchRepository) Update(ctx context.Context, item match.Match) error {
	query, args, err := qb.Update("matches").
		Set("winner_id", item.WinnerID).
		Set("loser_id", item.LoserID).
		Set("score", item.Score).
		Set("date_played", item.DatePlayed).
		SetExpr("updated_at", "now()").
		Where(qb.Eq("id", item.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update match query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update match: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("match %s not found", item.ID)
	}
	return nil
}

func (r *MatchRepository) Delete(ctx context.Context, matchID string) error {
	query, args, err := qb.DeleteFrom("matches").Where(qb.Eq("id", matchID)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete match query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete match: %w", err)
	}
	return nil
}
