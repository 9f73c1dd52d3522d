package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/sourcegraph/conc/pool"

	"github.com/difaziotennis-rgb/Ladder/internal/domain/club"
	"github.com/difaziotennis-rgb/Ladder/internal/domain/match"
	"github.com/difaziotennis-rgb/Ladder/internal/domain/player"
	"github.com/difaziotennis-rgb/Ladder/internal/domain/ranking"
)

const DefaultRecentMatchLimit = 10

// LadderEntry is a player with its displayed rank.
type LadderEntry struct {
	player.Player
	Rank int
}

type ClubSnapshot struct {
	Club          club.Club
	Ladder        []LadderEntry
	Leaderboard   []player.Player
	RecentMatches []match.WithPlayers
}

type PlayerProfile struct {
	Player  player.Player
	Wins    int
	Losses  int
	Matches []match.WithPlayers
}

// LadderService serves the read-only views of a club.
type LadderService struct {
	clubRepo   club.Repository
	playerRepo player.Repository
	matchRepo  match.Repository
}

func NewLadderService(clubRepo club.Repository, playerRepo player.Repository, matchRepo match.Repository) *LadderService {
	return &LadderService{
		clubRepo:   clubRepo,
		playerRepo: playerRepo,
		matchRepo:  matchRepo,
	}
}

func (s *LadderService) GetLadder(ctx context.Context, clubID string) ([]LadderEntry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LadderService.GetLadder")
	defer span.End()

	clubID = strings.TrimSpace(clubID)
	if err := ensureClubExists(ctx, s.clubRepo, clubID); err != nil {
		return nil, err
	}

	players, err := s.playerRepo.ListByClub(ctx, clubID)
	if err != nil {
		return nil, fmt.Errorf("list players by club: %w", err)
	}
	return BuildLadder(players), nil
}

// GetPointsLeaderboard orders the club by ranking points, highest first.
func (s *LadderService) GetPointsLeaderboard(ctx context.Context, clubID string) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LadderService.GetPointsLeaderboard")
	defer span.End()

	clubID = strings.TrimSpace(clubID)
	if err := ensureClubExists(ctx, s.clubRepo, clubID); err != nil {
		return nil, err
	}

	players, err := s.playerRepo.ListByClub(ctx, clubID)
	if err != nil {
		return nil, fmt.Errorf("list players by club: %w", err)
	}
	player.SortByPosition(players)
	return ranking.SortByRankingPointsDescending(players), nil
}

// GetClubSnapshot resolves the club by slug and loads its ladder and
// recent matches concurrently.
func (s *LadderService) GetClubSnapshot(ctx context.Context, slug string, recentLimit int) (ClubSnapshot, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LadderService.GetClubSnapshot")
	defer span.End()

	slug = strings.ToLower(strings.TrimSpace(slug))
	if slug == "" {
		return ClubSnapshot{}, fmt.Errorf("%w: club slug is required", ErrInvalidInput)
	}
	if recentLimit <= 0 {
		recentLimit = DefaultRecentMatchLimit
	}

	item, exists, err := s.clubRepo.GetBySlug(ctx, slug)
	if err != nil {
		return ClubSnapshot{}, fmt.Errorf("get club by slug: %w", err)
	}
	if !exists {
		return ClubSnapshot{}, fmt.Errorf("%w: club slug=%s", ErrNotFound, slug)
	}

	var (
		players []player.Player
		matches []match.WithPlayers
	)
	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		out, err := s.playerRepo.ListByClub(ctx, item.ID)
		if err != nil {
			return fmt.Errorf("list players by club: %w", err)
		}
		players = out
		return nil
	})
	p.Go(func(ctx context.Context) error {
		out, err := s.matchRepo.ListByClub(ctx, item.ID)
		if err != nil {
			return fmt.Errorf("list matches by club: %w", err)
		}
		matches = out
		return nil
	})
	if err := p.Wait(); err != nil {
		return ClubSnapshot{}, err
	}

	if len(matches) > recentLimit {
		matches = matches[:recentLimit]
	}
	ladder := BuildLadder(players)
	ordered := make([]player.Player, 0, len(ladder))
	for _, entry := range ladder {
		ordered = append(ordered, entry.Player)
	}

	return ClubSnapshot{
		Club:          item,
		Ladder:        ladder,
		Leaderboard:   ranking.SortByRankingPointsDescending(ordered),
		RecentMatches: matches,
	}, nil
}

// GetPlayerProfile returns a player with its match record.
func (s *LadderService) GetPlayerProfile(ctx context.Context, playerID string) (PlayerProfile, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LadderService.GetPlayerProfile")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return PlayerProfile{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	item, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return PlayerProfile{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return PlayerProfile{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	clubMatches, err := s.matchRepo.ListByClub(ctx, item.ClubID)
	if err != nil {
		return PlayerProfile{}, fmt.Errorf("list matches by club: %w", err)
	}

	profile := PlayerProfile{Player: item, Matches: make([]match.WithPlayers, 0)}
	for _, m := range clubMatches {
		switch playerID {
		case m.WinnerID:
			profile.Wins++
		case m.LoserID:
			profile.Losses++
		default:
			continue
		}
		profile.Matches = append(profile.Matches, m)
	}
	return profile, nil
}

// BuildLadder orders players by position and numbers them. A player without
// a position is ranked by its place in the list.
func BuildLadder(players []player.Player) []LadderEntry {
	ordered := make([]player.Player, len(players))
	copy(ordered, players)
	player.SortByPosition(ordered)

	out := make([]LadderEntry, 0, len(ordered))
	for i, item := range ordered {
		rank := item.Position
		if rank == 0 {
			rank = i + 1
		}
		out = append(out, LadderEntry{Player: item, Rank: rank})
	}
	return out
}
