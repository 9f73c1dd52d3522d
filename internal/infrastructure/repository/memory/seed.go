package memory

import (
	"time"

	"github.com/difaziotennis-rgb/Ladder/internal/domain/auth"
	"github.com/difaziotennis-rgb/Ladder/internal/domain/club"
	"github.com/difaziotennis-rgb/Ladder/internal/domain/match"
	"github.com/difaziotennis-rgb/Ladder/internal/domain/player"
)

const (
	ClubIDDemo   = "club-demo"
	seedPlayerID = "player-demo-"
)

// Seed loads records into the store, replacing ones with the same id.
func (s *Store) Seed(clubs []club.Club, players []player.Player, matches []match.Match, admins []auth.SiteAdmin) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range clubs {
		s.clubs[item.ID] = item
	}
	for _, item := range players {
		s.players[item.ID] = item
	}
	for _, item := range matches {
		s.matches[item.ID] = item
	}
	for _, item := range admins {
		s.admins[item.ID] = item
	}
}

// SeedDemoClub returns a small club for local development.
func SeedDemoClub(now time.Time) ([]club.Club, []player.Player, []match.Match) {
	now = now.UTC()
	clubs := []club.Club{
		{ID: ClubIDDemo, Name: "Demo Tennis Club", Slug: "demo-tennis-club", CreatedAt: now, UpdatedAt: now},
	}

	names := []string{"Alex Morgan", "Blair Chen", "Casey Diaz", "Devon Patel"}
	players := make([]player.Player, 0, len(names))
	for i, name := range names {
		created := now.Add(time.Duration(i) * time.Minute)
		players = append(players, player.Player{
			ID:            seedPlayerID + string(rune('a'+i)),
			ClubID:        ClubIDDemo,
			Name:          name,
			Position:      i + 1,
			RankingPoints: player.InitialRankingPoints,
			CreatedAt:     created,
			UpdatedAt:     created,
		})
	}

	played := now.Add(-24 * time.Hour)
	matches := []match.Match{
		{
			ID:         "match-demo-1",
			ClubID:     ClubIDDemo,
			WinnerID:   players[1].ID,
			LoserID:    players[0].ID,
			Score:      "6-4, 3-6, 10-7",
			DatePlayed: played,
			CreatedAt:  played,
			UpdatedAt:  played,
		},
	}
	return clubs, players, matches
}

func SeedSiteAdmin(username, passwordHash string, now time.Time) []auth.SiteAdmin {
	if username == "" || passwordHash == "" {
		return nil
	}
	return []auth.SiteAdmin{
		{ID: "site-admin-1", Username: username, PasswordHash: passwordHash, CreatedAt: now.UTC()},
	}
}
