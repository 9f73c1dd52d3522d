package postgres

import (
	"database/sql"
	"time"

	"github.com/difaziotennis-rgb/Ladder/internal/domain/auth"
	"github.com/difaziotennis-rgb/Ladder/internal/domain/club"
	"github.com/difaziotennis-rgb/Ladder/internal/domain/match"
	"github.com/difaziotennis-rgb/Ladder/internal/domain/player"
)

type clubTableModel struct {
	ID                string         `db:"id"`
	Name              string         `db:"name"`
	Slug              string         `db:"slug"`
	AdminPasswordHash sql.NullString `db:"admin_password_hash"`
	CreatedAt         time.Time      `db:"created_at"`
	UpdatedAt         time.Time      `db:"updated_at"`
}

func (m clubTableModel) toDomain() club.Club {
	return club.Club{
		ID:                m.ID,
		Name:              m.Name,
		Slug:              m.Slug,
		AdminPasswordHash: m.AdminPasswordHash.String,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

type playerTableModel struct {
	ID            string         `db:"id"`
	ClubID        string         `db:"club_id"`
	Name          string         `db:"name"`
	Email         sql.NullString `db:"email"`
	PhoneNumber   sql.NullString `db:"phone_number"`
	Position      sql.NullInt64  `db:"position"`
	RankingPoints float64        `db:"ranking_points"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
}

func newPlayerTableModel(item player.Player) playerTableModel {
	return playerTableModel{
		ID:            item.ID,
		ClubID:        item.ClubID,
		Name:          item.Name,
		Email:         toNullString(player.NormalizeEmail(item.Email)),
		PhoneNumber:   toNullString(item.PhoneNumber),
		Position:      toNullInt64(item.Position),
		RankingPoints: item.RankingPoints,
		CreatedAt:     item.CreatedAt,
		UpdatedAt:     item.UpdatedAt,
	}
}

func (m playerTableModel) toDomain() player.Player {
	return player.Player{
		ID:            m.ID,
		ClubID:        m.ClubID,
		Name:          m.Name,
		Email:         m.Email.String,
		PhoneNumber:   m.PhoneNumber.String,
		Position:      nullInt64ToInt(m.Position),
		RankingPoints: m.RankingPoints,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

type matchTableModel struct {
	ID         string    `db:"id"`
	ClubID     string    `db:"club_id"`
	WinnerID   string    `db:"winner_id"`
	LoserID    string    `db:"loser_id"`
	Score      string    `db:"score"`
	DatePlayed time.Time `db:"date_played"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

func (m matchTableModel) toDomain() match.Match {
	return match.Match{
		ID:         m.ID,
		ClubID:     m.ClubID,
		WinnerID:   m.WinnerID,
		LoserID:    m.LoserID,
		Score:      m.Score,
		DatePlayed: m.DatePlayed,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// matchWithPlayersRow is one row of the match/player join. Player columns are
// prefixed w_ and l_.
type matchWithPlayersRow struct {
	matchTableModel
	WinnerName          string         `db:"w_name"`
	WinnerEmail         sql.NullString `db:"w_email"`
	WinnerPhoneNumber   sql.NullString `db:"w_phone_number"`
	WinnerPosition      sql.NullInt64  `db:"w_position"`
	WinnerRankingPoints float64        `db:"w_ranking_points"`
	WinnerCreatedAt     time.Time      `db:"w_created_at"`
	WinnerUpdatedAt     time.Time      `db:"w_updated_at"`
	LoserName           string         `db:"l_name"`
	LoserEmail          sql.NullString `db:"l_email"`
	LoserPhoneNumber    sql.NullString `db:"l_phone_number"`
	LoserPosition       sql.NullInt64  `db:"l_position"`
	LoserRankingPoints  float64        `db:"l_ranking_points"`
	LoserCreatedAt      time.Time      `db:"l_created_at"`
	LoserUpdatedAt      time.Time      `db:"l_updated_at"`
}

func (r matchWithPlayersRow) toDomain() match.WithPlayers {
	return match.WithPlayers{
		Match: r.matchTableModel.toDomain(),
		Winner: playerTableModel{
			ID:            r.WinnerID,
			ClubID:        r.ClubID,
			Name:          r.WinnerName,
			Email:         r.WinnerEmail,
			PhoneNumber:   r.WinnerPhoneNumber,
			Position:      r.WinnerPosition,
			RankingPoints: r.WinnerRankingPoints,
			CreatedAt:     r.WinnerCreatedAt,
			UpdatedAt:     r.WinnerUpdatedAt,
		}.toDomain(),
		Loser: playerTableModel{
			ID:            r.LoserID,
			ClubID:        r.ClubID,
			Name:          r.LoserName,
			Email:         r.LoserEmail,
			PhoneNumber:   r.LoserPhoneNumber,
			Position:      r.LoserPosition,
			RankingPoints: r.LoserRankingPoints,
			CreatedAt:     r.LoserCreatedAt,
			UpdatedAt:     r.LoserUpdatedAt,
		}.toDomain(),
	}
}

type siteAdminTableModel struct {
	ID           string    `db:"id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

type sessionTableModel struct {
	TokenHash string    `db:"token_hash"`
	Kind      string    `db:"kind"`
	SubjectID string    `db:"subject_id"`
	ExpiresAt time.Time `db:"expires_at"`
	CreatedAt time.Time `db:"created_at"`
}

func (m sessionTableModel) toDomain() auth.Session {
	return auth.Session{
		TokenHash: m.TokenHash,
		Kind:      auth.SessionKind(m.Kind),
		SubjectID: m.SubjectID,
		ExpiresAt: m.ExpiresAt,
		CreatedAt: m.CreatedAt,
	}
}
