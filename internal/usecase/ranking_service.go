package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	crerr "github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"

	"github.com/difaziotennis-rgb/Ladder/internal/domain/auth"
	"github.com/difaziotennis-rgb/Ladder/internal/domain/club"
	"github.com/difaziotennis-rgb/Ladder/internal/domain/match"
	"github.com/difaziotennis-rgb/Ladder/internal/domain/player"
	"github.com/difaziotennis-rgb/Ladder/internal/domain/ranking"
	"github.com/difaziotennis-rgb/Ladder/internal/platform/logging"
)

type RecalculateResult struct {
	ClubCount    int
	PlayerCount  int
	FailedClubs  []string
	SuccessClubs []string
}

// RankingService rebuilds ranking points from match history with the
// leapfrog rule. It is only ever invoked explicitly by an admin.
type RankingService struct {
	clubRepo   club.Repository
	playerRepo player.Repository
	matchRepo  match.Repository
	workers    int
	logger     *logging.Logger
}

func NewRankingService(
	clubRepo club.Repository,
	playerRepo player.Repository,
	matchRepo match.Repository,
	workers int,
	logger *logging.Logger,
) *RankingService {
	if workers < 1 {
		workers = 1
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &RankingService{
		clubRepo:   clubRepo,
		playerRepo: playerRepo,
		matchRepo:  matchRepo,
		workers:    workers,
		logger:     logger,
	}
}

// RecalculateClub replays the club's match history and returns the new
// points leaderboard.
func (s *RankingService) RecalculateClub(ctx context.Context, identity auth.Identity, clubID string) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RankingService.RecalculateClub")
	defer span.End()

	clubID = strings.TrimSpace(clubID)
	if err := ensureClubExists(ctx, s.clubRepo, clubID); err != nil {
		return nil, err
	}
	if err := requireClubAdmin(identity, clubID); err != nil {
		return nil, err
	}

	players, err := s.recalculate(ctx, clubID)
	if err != nil {
		return nil, err
	}
	return ranking.SortByRankingPointsDescending(players), nil
}

// RecalculateAll replays every club on a bounded worker pool. A failing
// club does not stop the others; the combined error lists all failures.
func (s *RankingService) RecalculateAll(ctx context.Context, identity auth.Identity) (RecalculateResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RankingService.RecalculateAll")
	defer span.End()

	if err := requireSiteAdmin(identity); err != nil {
		return RecalculateResult{}, err
	}

	clubs, err := s.clubRepo.List(ctx)
	if err != nil {
		return RecalculateResult{}, fmt.Errorf("list clubs: %w", err)
	}
	result := RecalculateResult{ClubCount: len(clubs)}
	if len(clubs) == 0 {
		return result, nil
	}

	workerCount := s.workers
	if workerCount > len(clubs) {
		workerCount = len(clubs)
	}
	wp, err := ants.NewPool(workerCount)
	if err != nil {
		return RecalculateResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer wp.Release()

	var (
		mu       sync.Mutex
		combined error
		workers  sync.WaitGroup
	)
	for _, item := range clubs {
		item := item
		workers.Add(1)
		if err := wp.Submit(func() {
			defer workers.Done()

			players, err := s.recalculate(ctx, item.ID)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.FailedClubs = append(result.FailedClubs, item.ID)
				combined = crerr.CombineErrors(combined, crerr.Wrapf(err, "club %s", item.ID))
				return
			}
			result.SuccessClubs = append(result.SuccessClubs, item.ID)
			result.PlayerCount += len(players)
		}); err != nil {
			workers.Done()
			return RecalculateResult{}, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}
	workers.Wait()

	sort.Strings(result.FailedClubs)
	sort.Strings(result.SuccessClubs)

	s.logger.InfoContext(ctx, "ranking recalculation finished",
		"clubs", result.ClubCount,
		"failed", len(result.FailedClubs),
		"players", result.PlayerCount,
	)
	if combined != nil {
		return result, fmt.Errorf("recalculate rankings: %w", combined)
	}
	return result, nil
}

func (s *RankingService) recalculate(ctx context.Context, clubID string) ([]player.Player, error) {
	players, err := s.playerRepo.ListByClub(ctx, clubID)
	if err != nil {
		return nil, fmt.Errorf("list players by club: %w", err)
	}
	player.SortByPosition(players)

	joined, err := s.matchRepo.ListByClub(ctx, clubID)
	if err != nil {
		return nil, fmt.Errorf("list matches by club: %w", err)
	}
	matches := make([]match.Match, 0, len(joined))
	for _, item := range joined {
		matches = append(matches, item.Match)
	}

	updates := ranking.Replay(players, matches, ranking.LeapfrogPolicy{})
	if len(updates) > 0 {
		if err := s.playerRepo.UpdateRankingPoints(ctx, updates); err != nil {
			return nil, fmt.Errorf("update ranking points: %w", err)
		}
	}

	for i := range players {
		players[i].RankingPoints = updates[i].RankingPoints
	}

	s.logger.DebugContext(ctx, "club rankings recalculated", "club_id", clubID, "players", len(players), "matches", len(matches))
	return players, nil
}
