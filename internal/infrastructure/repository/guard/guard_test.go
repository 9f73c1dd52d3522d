package guard

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/difaziotennis-rgb/Ladder/internal/domain/club"
	"github.com/difaziotennis-rgb/Ladder/internal/domain/player"
	"github.com/difaziotennis-rgb/Ladder/internal/infrastructure/repository/memory"
	"github.com/difaziotennis-rgb/Ladder/internal/platform/resilience"
)

type flakyClubRepository struct {
	club.Repository
	err   error
	calls int
}

func (r *flakyClubRepository) List(ctx context.Context) ([]club.Club, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	return r.Repository.List(ctx)
}

func newBreaker() *resilience.CircuitBreaker {
	return resilience.NewCircuitBreaker(resilience.CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 2,
		OpenTimeout:      time.Minute,
		HalfOpenMaxReq:   1,
	}, IsStorageFailure)
}

func TestClubRepository_OpensAfterStorageFailures(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	clubs, players, matches := memory.SeedDemoClub(time.Now())
	store.Seed(clubs, players, matches, nil)

	flaky := &flakyClubRepository{Repository: memory.NewClubRepository(store), err: errors.New("dial tcp: connection refused")}
	repo := NewClubRepository(flaky, newBreaker())

	for i := 0; i < 2; i++ {
		if _, err := repo.List(ctx); err == nil {
			t.Fatalf("call %d: expected storage error", i)
		}
	}

	flaky.err = nil
	if _, err := repo.List(ctx); !errors.Is(err, resilience.ErrCircuitOpen) {
		t.Fatalf("expected open circuit, got %v", err)
	}
	if flaky.calls != 2 {
		t.Fatalf("open breaker must not reach storage, calls=%d", flaky.calls)
	}
}

func TestClubRepository_PassesThroughResults(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	clubs, players, matches := memory.SeedDemoClub(time.Now())
	store.Seed(clubs, players, matches, nil)

	repo := NewClubRepository(memory.NewClubRepository(store), newBreaker())

	item, exists, err := repo.GetBySlug(ctx, "demo-tennis-club")
	if err != nil || !exists {
		t.Fatalf("GetBySlug: exists=%v err=%v", exists, err)
	}
	if item.ID != memory.ClubIDDemo {
		t.Fatalf("unexpected club %s", item.ID)
	}

	for i := 0; i < 3; i++ {
		err := repo.Create(ctx, club.Club{ID: fmt.Sprintf("dup-%d", i), Name: "Demo Tennis Club", Slug: "demo-tennis-club"})
		if !errors.Is(err, club.ErrSlugTaken) {
			t.Fatalf("expected slug conflict, got %v", err)
		}
	}
	if _, err := repo.List(ctx); err != nil {
		t.Fatalf("conflicts must not open the breaker: %v", err)
	}
}

func TestIsStorageFailure(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{err: nil, want: false},
		{err: context.Canceled, want: false},
		{err: fmt.Errorf("insert club: %w", club.ErrSlugTaken), want: false},
		{err: fmt.Errorf("insert player: %w", player.ErrEmailTaken), want: false},
		{err: context.DeadlineExceeded, want: true},
		{err: errors.New("pq: too many connections"), want: true},
	}

	for _, tc := range tests {
		if got := IsStorageFailure(tc.err); got != tc.want {
			t.Fatalf("IsStorageFailure(%v)=%v want=%v", tc.err, got, tc.want)
		}
	}
}
