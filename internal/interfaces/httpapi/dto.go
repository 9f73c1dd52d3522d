package httpapi

import (
	"time"

	"github.com/difaziotennis-rgb/Ladder/internal/domain/club"
	"github.com/difaziotennis-rgb/Ladder/internal/domain/match"
	"github.com/difaziotennis-rgb/Ladder/internal/domain/player"
	"github.com/difaziotennis-rgb/Ladder/internal/usecase"
)

type createClubRequest struct {
	Name          string `json:"name" validate:"required,max=100"`
	AdminPassword string `json:"admin_password" validate:"omitempty,min=8,max=72"`
}

type setClubPasswordRequest struct {
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type createPlayerRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Email       string `json:"email" validate:"omitempty,email"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,max=50"`
}

type updatePlayerRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=100"`
	Email       *string `json:"email"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,max=50"`
	Position    *int    `json:"position" validate:"omitempty,min=1"`
}

type positionItemRequest struct {
	PlayerID string `json:"player_id" validate:"required"`
	Position int    `json:"position" validate:"required,min=1"`
}

type reorderPlayersRequest struct {
	Positions []positionItemRequest `json:"positions" validate:"required,min=1,dive"`
}

type createMatchRequest struct {
	WinnerID   string `json:"winner_id" validate:"required"`
	LoserID    string `json:"loser_id" validate:"required"`
	Score      string `json:"score" validate:"required,max=50"`
	DatePlayed string `json:"date_played"`
}

type updateMatchRequest struct {
	WinnerID   *string `json:"winner_id"`
	LoserID    *string `json:"loser_id"`
	Score      *string `json:"score" validate:"omitempty,max=50"`
	DatePlayed *string `json:"date_played"`
}

type siteAdminLoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type clubAdminLoginRequest struct {
	ClubID   string `json:"club_id" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type clubAdminLogoutRequest struct {
	ClubID string `json:"club_id" validate:"required"`
}

type clubDTO struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Slug             string    `json:"slug"`
	HasAdminPassword bool      `json:"has_admin_password"`
	CreatedAt        time.Time `json:"created_at"`
}

type playerDTO struct {
	ID            string    `json:"id"`
	ClubID        string    `json:"club_id"`
	Name          string    `json:"name"`
	Email         string    `json:"email,omitempty"`
	PhoneNumber   string    `json:"phone_number,omitempty"`
	Position      *int      `json:"position"`
	RankingPoints float64   `json:"ranking_points"`
	CreatedAt     time.Time `json:"created_at"`
}

type ladderEntryDTO struct {
	playerDTO
	Rank int `json:"rank"`
}

type matchPlayerDTO struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	RankingPoints float64 `json:"ranking_points"`
}

type matchDTO struct {
	ID         string         `json:"id"`
	ClubID     string         `json:"club_id"`
	Winner     matchPlayerDTO `json:"winner"`
	Loser      matchPlayerDTO `json:"loser"`
	Score      string         `json:"score"`
	DatePlayed time.Time      `json:"date_played"`
	CreatedAt  time.Time      `json:"created_at"`
}

type clubSnapshotDTO struct {
	Club          clubDTO          `json:"club"`
	Ladder        []ladderEntryDTO `json:"ladder"`
	Leaderboard   []playerDTO      `json:"leaderboard"`
	RecentMatches []matchDTO       `json:"recent_matches"`
}

type playerProfileDTO struct {
	Player  playerDTO  `json:"player"`
	Wins    int        `json:"wins"`
	Losses  int        `json:"losses"`
	Matches []matchDTO `json:"matches"`
}

type recalculateResultDTO struct {
	ClubCount    int      `json:"club_count"`
	PlayerCount  int      `json:"player_count"`
	SuccessClubs []string `json:"success_clubs"`
	FailedClubs  []string `json:"failed_clubs"`
}

type sessionDTO struct {
	Authenticated bool       `json:"authenticated"`
	SubjectID     string     `json:"subject_id,omitempty"`
	Name          string     `json:"name,omitempty"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
}

func clubToDTO(item club.Club) clubDTO {
	return clubDTO{
		ID:               item.ID,
		Name:             item.Name,
		Slug:             item.EffectiveSlug(),
		HasAdminPassword: item.HasAdminPassword(),
		CreatedAt:        item.CreatedAt,
	}
}

func playerToDTO(item player.Player) playerDTO {
	out := playerDTO{
		ID:            item.ID,
		ClubID:        item.ClubID,
		Name:          item.Name,
		Email:         item.Email,
		PhoneNumber:   item.PhoneNumber,
		RankingPoints: item.RankingPoints,
		CreatedAt:     item.CreatedAt,
	}
	if item.Position > 0 {
		position := item.Position
		out.Position = &position
	}
	return out
}

func playersToDTO(items []player.Player) []playerDTO {
	out := make([]playerDTO, 0, len(items))
	for _, item := range items {
		out = append(out, playerToDTO(item))
	}
	return out
}

func ladderToDTO(entries []usecase.LadderEntry) []ladderEntryDTO {
	out := make([]ladderEntryDTO, 0, len(entries))
	for _, entry := range entries {
		out = append(out, ladderEntryDTO{playerDTO: playerToDTO(entry.Player), Rank: entry.Rank})
	}
	return out
}

func matchToDTO(item match.WithPlayers) matchDTO {
	return matchDTO{
		ID:     item.ID,
		ClubID: item.ClubID,
		Winner: matchPlayerDTO{
			ID:            item.WinnerID,
			Name:          item.Winner.Name,
			RankingPoints: item.Winner.RankingPoints,
		},
		Loser: matchPlayerDTO{
			ID:            item.LoserID,
			Name:          item.Loser.Name,
			RankingPoints: item.Loser.RankingPoints,
		},
		Score:      item.Score,
		DatePlayed: item.DatePlayed,
		CreatedAt:  item.CreatedAt,
	}
}

func matchesToDTO(items []match.WithPlayers) []matchDTO {
	out := make([]matchDTO, 0, len(items))
	for _, item := range items {
		out = append(out, matchToDTO(item))
	}
	return out
}

func loginToDTO(result usecase.LoginResult) sessionDTO {
	expiresAt := result.ExpiresAt
	return sessionDTO{
		Authenticated: true,
		SubjectID:     result.SubjectID,
		Name:          result.Name,
		ExpiresAt:     &expiresAt,
	}
}
