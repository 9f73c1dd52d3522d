package usecase

import (
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/difaziotennis-rgb/Ladder/internal/domain/auth"
	"github.com/difaziotennis-rgb/Ladder/internal/domain/club"
	"github.com/difaziotennis-rgb/Ladder/internal/domain/player"
	"github.com/difaziotennis-rgb/Ladder/internal/infrastructure/repository/memory"
)

const testClubID = "club-1"

var (
	testNow   = time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	siteAdmin = auth.Identity{SiteAdminID: "admin-1"}
	anonymous = auth.Identity{}
)

func clubAdmin(clubID string) auth.Identity {
	return auth.Identity{}.WithClub(clubID)
}

func newTestHasher() *BcryptHasher {
	return NewBcryptHasher(bcrypt.MinCost)
}

type testRepos struct {
	store   *memory.Store
	clubs   *memory.ClubRepository
	players *memory.PlayerRepository
	matches *memory.MatchRepository
	auth    *memory.AuthRepository
}

// newTestRepos returns a store with one club and the named players at
// positions 1..n, all on InitialRankingPoints.
func newTestRepos(t *testing.T, playerIDs ...string) testRepos {
	t.Helper()

	store := memory.NewStore()
	players := make([]player.Player, 0, len(playerIDs))
	for i, playerID := range playerIDs {
		players = append(players, player.Player{
			ID:            playerID,
			ClubID:        testClubID,
			Name:          "Player " + playerID,
			Position:      i + 1,
			RankingPoints: player.InitialRankingPoints,
			CreatedAt:     testNow.Add(time.Duration(i) * time.Second),
		})
	}
	store.Seed(
		[]club.Club{{ID: testClubID, Name: "Riverside Tennis", Slug: "riverside-tennis", CreatedAt: testNow}},
		players,
		nil,
		nil,
	)

	return testRepos{
		store:   store,
		clubs:   memory.NewClubRepository(store),
		players: memory.NewPlayerRepository(store),
		matches: memory.NewMatchRepository(store),
		auth:    memory.NewAuthRepository(store),
	}
}

func fixedClock(now time.Time) func() time.Time {
	return func() time.Time { return now }
}
