package cache

import (
	"context"
	"testing"
	"time"

	"github.com/difaziotennis-rgb/Ladder/internal/domain/club"
	"github.com/difaziotennis-rgb/Ladder/internal/domain/match"
	"github.com/difaziotennis-rgb/Ladder/internal/domain/player"
	"github.com/difaziotennis-rgb/Ladder/internal/infrastructure/repository/memory"
	basecache "github.com/difaziotennis-rgb/Ladder/internal/platform/cache"
)

type countingClubRepository struct {
	club.Repository
	listCalls int
}

func (r *countingClubRepository) List(ctx context.Context) ([]club.Club, error) {
	r.listCalls++
	return r.Repository.List(ctx)
}

func TestClubRepository_ListIsCachedUntilWrite(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	next := &countingClubRepository{Repository: memory.NewClubRepository(store)}
	repo := NewClubRepository(next, basecache.NewStore(time.Minute))

	for i := 0; i < 3; i++ {
		if _, err := repo.List(ctx); err != nil {
			t.Fatalf("list clubs: %v", err)
		}
	}
	if next.listCalls != 1 {
		t.Fatalf("expected 1 underlying call, got %d", next.listCalls)
	}

	if err := repo.Create(ctx, club.Club{ID: "c1", Name: "Hillside"}); err != nil {
		t.Fatalf("create club: %v", err)
	}
	items, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list clubs: %v", err)
	}
	if len(items) != 1 || next.listCalls != 2 {
		t.Fatalf("expected refreshed list, got %d items after %d calls", len(items), next.listCalls)
	}

	if _, ok, _ := repo.GetBySlug(ctx, "Hillside"); !ok {
		t.Fatalf("expected club by slug")
	}
}

func TestPlayerRepository_RankingUpdateInvalidatesRoster(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	clubs, players, matches := memory.SeedDemoClub(time.Now())
	store.Seed(clubs, players, matches, nil)
	repo := NewPlayerRepository(memory.NewPlayerRepository(store), basecache.NewStore(time.Minute))

	before, err := repo.ListByClub(ctx, memory.ClubIDDemo)
	if err != nil {
		t.Fatalf("list players: %v", err)
	}
	if err := repo.UpdateRankingPoints(ctx, []player.PointsUpdate{{PlayerID: before[0].ID, RankingPoints: 1234}}); err != nil {
		t.Fatalf("update points: %v", err)
	}

	after, err := repo.ListByClub(ctx, memory.ClubIDDemo)
	if err != nil {
		t.Fatalf("list players: %v", err)
	}
	if after[0].RankingPoints != 1234 {
		t.Fatalf("expected fresh roster, got %v", after[0].RankingPoints)
	}
}

func TestMatchRepository_CreateWithPointsInvalidatesRoster(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	clubs, players, matches := memory.SeedDemoClub(time.Now())
	store.Seed(clubs, players, matches, nil)
	entries := basecache.NewStore(time.Minute)
	roster := NewPlayerRepository(memory.NewPlayerRepository(store), entries)
	repo := NewMatchRepository(memory.NewMatchRepository(store), entries)

	before, err := roster.ListByClub(ctx, memory.ClubIDDemo)
	if err != nil {
		t.Fatalf("list players: %v", err)
	}

	err = repo.CreateWithPoints(ctx, match.Match{
		ID:         "match-2",
		ClubID:     memory.ClubIDDemo,
		WinnerID:   before[2].ID,
		LoserID:    before[0].ID,
		Score:      "6-2, 6-2",
		DatePlayed: time.Now(),
	}, []player.PointsUpdate{
		{PlayerID: before[2].ID, RankingPoints: 1020},
		{PlayerID: before[0].ID, RankingPoints: 990},
	})
	if err != nil {
		t.Fatalf("create with points: %v", err)
	}

	after, err := roster.ListByClub(ctx, memory.ClubIDDemo)
	if err != nil {
		t.Fatalf("list players: %v", err)
	}
	if after[0].RankingPoints != 990 || after[2].RankingPoints != 1020 {
		t.Fatalf("expected fresh roster, got %v and %v", after[0].RankingPoints, after[2].RankingPoints)
	}
}
