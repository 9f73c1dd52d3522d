package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/difaziotennis-rgb/Ladder/internal/domain/club"
	clubmock "github.com/difaziotennis-rgb/Ladder/internal/mocks/domain/club"
	"github.com/difaziotennis-rgb/Ladder/internal/platform/id"
)

func TestClubService_CreateRequiresSiteAdmin(t *testing.T) {
	t.Parallel()

	clubRepo := clubmock.NewRepository(t)
	service := NewClubService(clubRepo, id.NewSequenceGenerator("club"), newTestHasher(), nil)

	_, err := service.Create(context.Background(), clubAdmin(testClubID), CreateClubInput{Name: "Hillside"})
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestClubService_CreateSlugTakenUsingMockery(t *testing.T) {
	t.Parallel()

	clubRepo := clubmock.NewRepository(t)
	service := NewClubService(clubRepo, id.NewSequenceGenerator("club"), newTestHasher(), nil)

	clubRepo.
		On("GetBySlug", mock.Anything, "hillside-tc").
		Return(club.Club{ID: "existing", Name: "Hillside TC"}, true, nil).
		Once()

	_, err := service.Create(context.Background(), siteAdmin, CreateClubInput{Name: "Hillside  TC!"})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestClubService_CreateMapsRepositorySlugRace(t *testing.T) {
	t.Parallel()

	clubRepo := clubmock.NewRepository(t)
	service := NewClubService(clubRepo, id.NewSequenceGenerator("club"), newTestHasher(), nil)

	clubRepo.On("GetBySlug", mock.Anything, "hillside").Return(club.Club{}, false, nil).Once()
	clubRepo.On("Create", mock.Anything, mock.AnythingOfType("club.Club")).Return(club.ErrSlugTaken).Once()

	_, err := service.Create(context.Background(), siteAdmin, CreateClubInput{Name: "Hillside"})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestClubService_CreateHashesAdminPassword(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repos := newTestRepos(t)
	hasher := newTestHasher()
	service := NewClubService(repos.clubs, id.NewSequenceGenerator("club"), hasher, nil)

	created, err := service.Create(ctx, siteAdmin, CreateClubInput{Name: "Hillside", AdminPassword: "s3cret-pass"})
	if err != nil {
		t.Fatalf("create club: %v", err)
	}
	if created.Slug != "hillside" {
		t.Fatalf("unexpected slug: %s", created.Slug)
	}
	if created.AdminPasswordHash == "" || created.AdminPasswordHash == "s3cret-pass" {
		t.Fatalf("expected hashed password, got %q", created.AdminPasswordHash)
	}
	if err := hasher.Compare(created.AdminPasswordHash, "s3cret-pass"); err != nil {
		t.Fatalf("compare password: %v", err)
	}

	got, err := service.GetBySlug(ctx, "HILLSIDE")
	if err != nil {
		t.Fatalf("get by slug: %v", err)
	}
	if got.ID != created.ID {
		t.Fatalf("unexpected club: %+v", got)
	}
}

func TestClubService_CreateValidation(t *testing.T) {
	t.Parallel()

	repos := newTestRepos(t)
	service := NewClubService(repos.clubs, id.NewSequenceGenerator("club"), newTestHasher(), nil)

	tests := []struct {
		name  string
		input CreateClubInput
	}{
		{name: "empty name", input: CreateClubInput{Name: "  "}},
		{name: "no slug characters", input: CreateClubInput{Name: "!!!"}},
		{name: "short password", input: CreateClubInput{Name: "Valid", AdminPassword: "short"}},
		{name: "password over bcrypt limit", input: CreateClubInput{Name: "Valid", AdminPassword: strings.Repeat("p", MaxPasswordBytes+1)}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.Create(context.Background(), siteAdmin, tc.input)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestClubService_DeleteCascadesToPlayers(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repos := newTestRepos(t, "a", "b")
	service := NewClubService(repos.clubs, id.NewSequenceGenerator("club"), newTestHasher(), nil)

	if err := service.Delete(ctx, siteAdmin, "riverside-tennis"); err != nil {
		t.Fatalf("delete club: %v", err)
	}
	if _, err := service.GetByID(ctx, testClubID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if _, ok, _ := repos.players.GetByID(ctx, "a"); ok {
		t.Fatalf("expected players removed with club")
	}
}

func TestClubService_SetAdminPassword(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repos := newTestRepos(t)
	hasher := newTestHasher()
	service := NewClubService(repos.clubs, id.NewSequenceGenerator("club"), hasher, nil)

	if err := service.SetAdminPassword(ctx, anonymous, "riverside-tennis", "long-enough"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if err := service.SetAdminPassword(ctx, siteAdmin, "riverside-tennis", "short"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if err := service.SetAdminPassword(ctx, siteAdmin, "riverside-tennis", strings.Repeat("é", 40)); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for 80-byte password, got %v", err)
	}
	if err := service.SetAdminPassword(ctx, siteAdmin, "missing", "long-enough"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := service.SetAdminPassword(ctx, siteAdmin, "riverside-tennis", "long-enough"); err != nil {
		t.Fatalf("set admin password: %v", err)
	}

	item, err := service.GetByID(ctx, testClubID)
	if err != nil {
		t.Fatalf("get club: %v", err)
	}
	if err := hasher.Compare(item.AdminPasswordHash, "long-enough"); err != nil {
		t.Fatalf("expected stored hash to match: %v", err)
	}
}

func TestBcryptHasher_HashRejectsOverlongPassword(t *testing.T) {
	t.Parallel()

	_, err := newTestHasher().Hash(strings.Repeat("x", MaxPasswordBytes+1))
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := newTestHasher().Hash(strings.Repeat("x", MaxPasswordBytes)); err != nil {
		t.Fatalf("hash %d-byte password: %v", MaxPasswordBytes, err)
	}
}
