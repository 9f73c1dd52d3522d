package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/difaziotennis-rgb/Ladder/internal/domain/club"
	"github.com/difaziotennis-rgb/Ladder/internal/domain/player"
	clubmock "github.com/difaziotennis-rgb/Ladder/internal/mocks/domain/club"
	playermock "github.com/difaziotennis-rgb/Ladder/internal/mocks/domain/player"
	"github.com/difaziotennis-rgb/Ladder/internal/platform/id"
)

func TestPlayerService_CreateAppendsToBottom(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repos := newTestRepos(t, "a", "b")
	service := NewPlayerService(repos.clubs, repos.players, id.NewSequenceGenerator("player"), nil)

	created, err := service.Create(ctx, clubAdmin(testClubID), CreatePlayerInput{
		ClubID: testClubID,
		Name:   "  Casey Diaz ",
		Email:  "Casey@Example.com",
	})
	if err != nil {
		t.Fatalf("create player: %v", err)
	}
	if created.Position != 3 {
		t.Fatalf("expected position 3, got %d", created.Position)
	}
	if created.RankingPoints != player.InitialRankingPoints {
		t.Fatalf("expected initial points, got %v", created.RankingPoints)
	}
	if created.Name != "Casey Diaz" || created.Email != "casey@example.com" {
		t.Fatalf("expected trimmed fields, got %+v", created)
	}

	items, err := service.ListByClub(ctx, testClubID)
	if err != nil {
		t.Fatalf("list players: %v", err)
	}
	if len(items) != 3 || items[2].ID != created.ID {
		t.Fatalf("expected new player last, got %+v", items)
	}
}

func TestPlayerService_CreateFirstPlayerGetsPositionOne(t *testing.T) {
	t.Parallel()

	repos := newTestRepos(t)
	service := NewPlayerService(repos.clubs, repos.players, id.NewSequenceGenerator("player"), nil)

	created, err := service.Create(context.Background(), siteAdmin, CreatePlayerInput{ClubID: testClubID, Name: "Solo"})
	if err != nil {
		t.Fatalf("create player: %v", err)
	}
	if created.Position != 1 {
		t.Fatalf("expected position 1, got %d", created.Position)
	}
}

func TestPlayerService_CreateErrors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repos := newTestRepos(t, "a")
	service := NewPlayerService(repos.clubs, repos.players, id.NewSequenceGenerator("player"), nil)
	if _, err := service.Create(ctx, siteAdmin, CreatePlayerInput{ClubID: testClubID, Name: "Taken", Email: "taken@example.com"}); err != nil {
		t.Fatalf("seed player: %v", err)
	}

	tests := []struct {
		name     string
		input    CreatePlayerInput
		wantErr  error
	}{
		{name: "anonymous", input: CreatePlayerInput{ClubID: testClubID, Name: "X"}, wantErr: ErrUnauthorized},
		{name: "admin of other club", input: CreatePlayerInput{ClubID: testClubID, Name: "X"}, wantErr: ErrUnauthorized},
		{name: "unknown club", input: CreatePlayerInput{ClubID: "nope", Name: "X"}, wantErr: ErrNotFound},
		{name: "missing name", input: CreatePlayerInput{ClubID: testClubID}, wantErr: ErrInvalidInput},
		{name: "bad email", input: CreatePlayerInput{ClubID: testClubID, Name: "X", Email: "not-an-email"}, wantErr: ErrInvalidInput},
		{name: "duplicate email", input: CreatePlayerInput{ClubID: testClubID, Name: "X", Email: " TAKEN@example.com"}, wantErr: ErrConflict},
	}

	for _, tc := range tests {
		identity := siteAdmin
		switch tc.name {
		case "anonymous":
			identity = anonymous
		case "admin of other club":
			identity = clubAdmin("club-2")
		}

		_, err := service.Create(ctx, identity, tc.input)
		if !errors.Is(err, tc.wantErr) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.wantErr, err)
		}
	}
}

func TestPlayerService_CreateMapsEmailRaceUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	clubRepo := clubmock.NewRepository(t)
	playerRepo := playermock.NewRepository(t)
	service := NewPlayerService(clubRepo, playerRepo, id.NewSequenceGenerator("player"), nil)

	clubRepo.On("GetByID", mock.Anything, testClubID).Return(club.Club{ID: testClubID}, true, nil).Once()
	playerRepo.On("GetByEmail", mock.Anything, testClubID, "dup@example.com").Return(player.Player{}, false, nil).Once()
	playerRepo.On("CreateAtBottom", mock.Anything, mock.AnythingOfType("player.Player")).Return(player.Player{}, player.ErrEmailTaken).Once()

	_, err := service.Create(ctx, siteAdmin, CreatePlayerInput{ClubID: testClubID, Name: "Dup", Email: "dup@example.com"})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestPlayerService_UpdatePartialFields(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repos := newTestRepos(t, "a", "b")
	service := NewPlayerService(repos.clubs, repos.players, id.NewSequenceGenerator("player"), nil)
	if _, err := service.Update(ctx, siteAdmin, "b", UpdatePlayerInput{Email: strPtr("b@example.com")}); err != nil {
		t.Fatalf("set email on b: %v", err)
	}

	updated, err := service.Update(ctx, clubAdmin(testClubID), "a", UpdatePlayerInput{
		PhoneNumber: strPtr(" 555-0100 "),
		Position:    intPtr(7),
	})
	if err != nil {
		t.Fatalf("update player: %v", err)
	}
	if updated.Name != "Player a" || updated.PhoneNumber != "555-0100" || updated.Position != 7 {
		t.Fatalf("unexpected player: %+v", updated)
	}

	_, err = service.Update(ctx, siteAdmin, "a", UpdatePlayerInput{Email: strPtr("B@example.com")})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
	_, err = service.Update(ctx, siteAdmin, "a", UpdatePlayerInput{Position: intPtr(0)})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	_, err = service.Update(ctx, siteAdmin, "missing", UpdatePlayerInput{Name: strPtr("x")})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPlayerService_Reorder(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repos := newTestRepos(t, "a", "b", "c")
	repos.store.Seed(nil, []player.Player{{ID: "x", ClubID: "club-2", Name: "Outsider"}}, nil, nil)
	service := NewPlayerService(repos.clubs, repos.players, id.NewSequenceGenerator("player"), nil)

	invalid := []struct {
		name    string
		updates []player.PositionUpdate
	}{
		{name: "empty", updates: nil},
		{name: "foreign player", updates: []player.PositionUpdate{{PlayerID: "x", Position: 1}}},
		{name: "duplicate player", updates: []player.PositionUpdate{{PlayerID: "a", Position: 1}, {PlayerID: "a", Position: 2}}},
		{name: "zero position", updates: []player.PositionUpdate{{PlayerID: "a", Position: 0}}},
	}
	for _, tc := range invalid {
		if _, err := service.Reorder(ctx, siteAdmin, testClubID, tc.updates); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%s: expected ErrInvalidInput, got %v", tc.name, err)
		}
	}

	if _, err := service.Reorder(ctx, clubAdmin("club-2"), testClubID, []player.PositionUpdate{{PlayerID: "a", Position: 3}}); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}

	got, err := service.Reorder(ctx, clubAdmin(testClubID), testClubID, []player.PositionUpdate{
		{PlayerID: "a", Position: 3},
		{PlayerID: "c", Position: 1},
	})
	if err != nil {
		t.Fatalf("reorder: %v", err)
	}
	order := []string{got[0].ID, got[1].ID, got[2].ID}
	if order[0] != "c" || order[1] != "b" || order[2] != "a" {
		t.Fatalf("unexpected order: %v", order)
	}
}

func TestPlayerService_DeleteRemovesMatches(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repos := newTestRepos(t, "a", "b")
	matches := NewMatchService(repos.clubs, repos.players, repos.matches, nil, id.NewSequenceGenerator("match"), nil)
	if _, err := matches.Create(ctx, siteAdmin, CreateMatchInput{ClubID: testClubID, WinnerID: "a", LoserID: "b", Score: "6-1, 6-1"}); err != nil {
		t.Fatalf("create match: %v", err)
	}

	service := NewPlayerService(repos.clubs, repos.players, id.NewSequenceGenerator("player"), nil)
	if err := service.Delete(ctx, anonymous, "a"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if err := service.Delete(ctx, clubAdmin(testClubID), "a"); err != nil {
		t.Fatalf("delete player: %v", err)
	}

	history, err := matches.ListByClub(ctx, testClubID)
	if err != nil {
		t.Fatalf("list matches: %v", err)
	}
	if len(history) != 0 {
		t.Fatalf("expected matches removed with player, got %d", len(history))
	}
}

func strPtr(v string) *string { return &v }

func intPtr(v int) *int { return &v }
