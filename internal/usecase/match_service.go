package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/difaziotennis-rgb/Ladder/internal/domain/auth"
	"github.com/difaziotennis-rgb/Ladder/internal/domain/club"
	"github.com/difaziotennis-rgb/Ladder/internal/domain/match"
	"github.com/difaziotennis-rgb/Ladder/internal/domain/player"
	"github.com/difaziotennis-rgb/Ladder/internal/domain/ranking"
	"github.com/difaziotennis-rgb/Ladder/internal/platform/id"
	"github.com/difaziotennis-rgb/Ladder/internal/platform/logging"
)

type CreateMatchInput struct {
	ClubID   string
	WinnerID string
	LoserID  string
	Score    string
	// DatePlayed defaults to the current time when nil.
	DatePlayed *time.Time
}

type UpdateMatchInput struct {
	WinnerID   *string
	LoserID    *string
	Score      *string
	DatePlayed *time.Time
}

type MatchService struct {
	clubRepo   club.Repository
	playerRepo player.Repository
	matchRepo  match.Repository
	policy     ranking.Policy
	idGen      id.Generator
	logger     *logging.Logger
	now        func() time.Time
}

// NewMatchService records matches and hands each new result to policy.
// A nil policy means ranking.ManualPolicy.
func NewMatchService(
	clubRepo club.Repository,
	playerRepo player.Repository,
	matchRepo match.Repository,
	policy ranking.Policy,
	idGen id.Generator,
	logger *logging.Logger,
) *MatchService {
	if policy == nil {
		policy = ranking.ManualPolicy{}
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &MatchService{
		clubRepo:   clubRepo,
		playerRepo: playerRepo,
		matchRepo:  matchRepo,
		policy:     policy,
		idGen:      idGen,
		logger:     logger,
		now:        time.Now,
	}
}

// ListByClub returns the club's matches joined with players, newest first.
func (s *MatchService) ListByClub(ctx context.Context, clubID string) ([]match.WithPlayers, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListByClub")
	defer span.End()

	clubID = strings.TrimSpace(clubID)
	if err := ensureClubExists(ctx, s.clubRepo, clubID); err != nil {
		return nil, err
	}

	items, err := s.matchRepo.ListByClub(ctx, clubID)
	if err != nil {
		return nil, fmt.Errorf("list matches by club: %w", err)
	}
	return items, nil
}

func (s *MatchService) Create(ctx context.Context, identity auth.Identity, input CreateMatchInput) (match.WithPlayers, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Create")
	defer span.End()

	clubID := strings.TrimSpace(input.ClubID)
	if err := ensureClubExists(ctx, s.clubRepo, clubID); err != nil {
		return match.WithPlayers{}, err
	}
	if err := requireClubAdmin(identity, clubID); err != nil {
		return match.WithPlayers{}, err
	}

	matchID, err := s.idGen.NewID()
	if err != nil {
		return match.WithPlayers{}, fmt.Errorf("generate match id: %w", err)
	}

	now := s.now().UTC()
	item := match.Match{
		ID:         matchID,
		ClubID:     clubID,
		WinnerID:   strings.TrimSpace(input.WinnerID),
		LoserID:    strings.TrimSpace(input.LoserID),
		Score:      strings.TrimSpace(input.Score),
		DatePlayed: now,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if input.DatePlayed != nil {
		item.DatePlayed = input.DatePlayed.UTC()
	}

	winner, loser, err := s.validateMatch(ctx, item)
	if err != nil {
		return match.WithPlayers{}, err
	}

	updates, err := s.rankingUpdates(ctx, winner, loser)
	if err != nil {
		return match.WithPlayers{}, err
	}

	if len(updates) == 0 {
		err = s.matchRepo.Create(ctx, item)
	} else {
		err = s.matchRepo.CreateWithPoints(ctx, item, updates)
	}
	if err != nil {
		return match.WithPlayers{}, fmt.Errorf("create match: %w", err)
	}
	s.logger.InfoContext(ctx, "match recorded",
		"club_id", clubID,
		"match_id", item.ID,
		"winner_id", item.WinnerID,
		"loser_id", item.LoserID,
	)

	if len(updates) > 0 {
		winner.RankingPoints = updates[0].RankingPoints
		loser.RankingPoints = updates[1].RankingPoints
		s.logger.InfoContext(ctx, "ranking points updated",
			"policy", s.policy.Name(),
			"winner_id", winner.ID,
			"winner_points", winner.RankingPoints,
			"loser_id", loser.ID,
			"loser_points", loser.RankingPoints,
		)
	}

	return match.WithPlayers{Match: item, Winner: winner, Loser: loser}, nil
}

// Update edits a recorded match. Ranking points are never touched.
func (s *MatchService) Update(ctx context.Context, identity auth.Identity, matchID string, input UpdateMatchInput) (match.WithPlayers, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Update")
	defer span.End()

	item, err := s.getMatch(ctx, matchID)
	if err != nil {
		return match.WithPlayers{}, err
	}
	if err := requireClubAdmin(identity, item.ClubID); err != nil {
		return match.WithPlayers{}, err
	}

	if input.WinnerID != nil {
		item.WinnerID = strings.TrimSpace(*input.WinnerID)
	}
	if input.LoserID != nil {
		item.LoserID = strings.TrimSpace(*input.LoserID)
	}
	if input.Score != nil {
		item.Score = strings.TrimSpace(*input.Score)
	}
	if input.DatePlayed != nil {
		item.DatePlayed = input.DatePlayed.UTC()
	}
	item.UpdatedAt = s.now().UTC()

	winner, loser, err := s.validateMatch(ctx, item)
	if err != nil {
		return match.WithPlayers{}, err
	}

	if err := s.matchRepo.Update(ctx, item); err != nil {
		return match.WithPlayers{}, fmt.Errorf("update match: %w", err)
	}

	s.logger.InfoContext(ctx, "match updated", "club_id", item.ClubID, "match_id", item.ID)
	return match.WithPlayers{Match: item, Winner: winner, Loser: loser}, nil
}

// Delete removes a recorded match. Ranking points are never touched.
func (s *MatchService) Delete(ctx context.Context, identity auth.Identity, matchID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Delete")
	defer span.End()

	item, err := s.getMatch(ctx, matchID)
	if err != nil {
		return err
	}
	if err := requireClubAdmin(identity, item.ClubID); err != nil {
		return err
	}

	if err := s.matchRepo.Delete(ctx, item.ID); err != nil {
		return fmt.Errorf("delete match: %w", err)
	}

	s.logger.InfoContext(ctx, "match deleted", "club_id", item.ClubID, "match_id", item.ID)
	return nil
}

// validateMatch checks the match fields and that both players exist and
// belong to the match's club.
func (s *MatchService) validateMatch(ctx context.Context, item match.Match) (player.Player, player.Player, error) {
	if err := item.Validate(); err != nil {
		return player.Player{}, player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	winner, winnerExists, err := s.playerRepo.GetByID(ctx, item.WinnerID)
	if err != nil {
		return player.Player{}, player.Player{}, fmt.Errorf("get winner: %w", err)
	}
	loser, loserExists, err := s.playerRepo.GetByID(ctx, item.LoserID)
	if err != nil {
		return player.Player{}, player.Player{}, fmt.Errorf("get loser: %w", err)
	}
	if !winnerExists || !loserExists {
		return player.Player{}, player.Player{}, fmt.Errorf("%w: winner and loser must belong to the same club", ErrInvalidInput)
	}
	if err := item.ValidateParticipants(winner, loser); err != nil {
		return player.Player{}, player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return winner, loser, nil
}

// rankingUpdates returns the winner's and loser's new points, in that order,
// or nil when the policy leaves points alone.
func (s *MatchService) rankingUpdates(ctx context.Context, winner, loser player.Player) ([]player.PointsUpdate, error) {
	if _, manual := s.policy.(ranking.ManualPolicy); manual {
		return nil, nil
	}

	players, err := s.playerRepo.ListByClub(ctx, winner.ClubID)
	if err != nil {
		return nil, fmt.Errorf("list players for ranking: %w", err)
	}
	standings := ranking.SortByRankingPointsDescending(players)

	update, changed := s.policy.Apply(winner, loser, standings)
	if !changed {
		return nil, nil
	}
	return []player.PointsUpdate{
		{PlayerID: winner.ID, RankingPoints: update.WinnerPoints},
		{PlayerID: loser.ID, RankingPoints: update.LoserPoints},
	}, nil
}

func (s *MatchService) getMatch(ctx context.Context, matchID string) (match.Match, error) {
	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return match.Match{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	item, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}
	return item, nil
}
