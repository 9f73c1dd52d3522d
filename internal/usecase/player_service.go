package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/difaziotennis-rgb/Ladder/internal/domain/auth"
	"github.com/difaziotennis-rgb/Ladder/internal/domain/club"
	"github.com/difaziotennis-rgb/Ladder/internal/domain/player"
	"github.com/difaziotennis-rgb/Ladder/internal/platform/id"
	"github.com/difaziotennis-rgb/Ladder/internal/platform/logging"
)

type CreatePlayerInput struct {
	ClubID      string
	Name        string
	Email       string
	PhoneNumber string
}

// UpdatePlayerInput is a partial update; nil fields stay unchanged and an
// empty Email or PhoneNumber clears the value.
type UpdatePlayerInput struct {
	Name        *string
	Email       *string
	PhoneNumber *string
	Position    *int
}

type PlayerService struct {
	clubRepo   club.Repository
	playerRepo player.Repository
	idGen      id.Generator
	logger     *logging.Logger
	now        func() time.Time
}

func NewPlayerService(clubRepo club.Repository, playerRepo player.Repository, idGen id.Generator, logger *logging.Logger) *PlayerService {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &PlayerService{
		clubRepo:   clubRepo,
		playerRepo: playerRepo,
		idGen:      idGen,
		logger:     logger,
		now:        time.Now,
	}
}

// ListByClub returns the club's players in ladder order.
func (s *PlayerService) ListByClub(ctx context.Context, clubID string) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListByClub")
	defer span.End()

	clubID = strings.TrimSpace(clubID)
	if err := ensureClubExists(ctx, s.clubRepo, clubID); err != nil {
		return nil, err
	}

	items, err := s.playerRepo.ListByClub(ctx, clubID)
	if err != nil {
		return nil, fmt.Errorf("list players by club: %w", err)
	}
	player.SortByPosition(items)
	return items, nil
}

func (s *PlayerService) Get(ctx context.Context, playerID string) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Get")
	defer span.End()

	return s.getPlayer(ctx, playerID)
}

// Create adds a player at the bottom of the club ladder.
func (s *PlayerService) Create(ctx context.Context, identity auth.Identity, input CreatePlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Create")
	defer span.End()

	clubID := strings.TrimSpace(input.ClubID)
	if err := ensureClubExists(ctx, s.clubRepo, clubID); err != nil {
		return player.Player{}, err
	}
	if err := requireClubAdmin(identity, clubID); err != nil {
		return player.Player{}, err
	}

	email := player.NormalizeEmail(input.Email)
	if err := s.ensureEmailAvailable(ctx, clubID, email, ""); err != nil {
		return player.Player{}, err
	}

	playerID, err := s.idGen.NewID()
	if err != nil {
		return player.Player{}, fmt.Errorf("generate player id: %w", err)
	}

	now := s.now().UTC()
	item := player.Player{
		ID:            playerID,
		ClubID:        clubID,
		Name:          strings.TrimSpace(input.Name),
		Email:         email,
		PhoneNumber:   strings.TrimSpace(input.PhoneNumber),
		RankingPoints: player.InitialRankingPoints,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := item.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.playerRepo.CreateAtBottom(ctx, item)
	if err != nil {
		if errors.Is(err, player.ErrEmailTaken) {
			return player.Player{}, fmt.Errorf("%w: a player with email %s already exists in this club", ErrConflict, email)
		}
		return player.Player{}, fmt.Errorf("create player: %w", err)
	}

	s.logger.InfoContext(ctx, "player created", "club_id", clubID, "player_id", created.ID, "position", created.Position)
	return created, nil
}

func (s *PlayerService) Update(ctx context.Context, identity auth.Identity, playerID string, input UpdatePlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Update")
	defer span.End()

	item, err := s.getPlayer(ctx, playerID)
	if err != nil {
		return player.Player{}, err
	}
	if err := requireClubAdmin(identity, item.ClubID); err != nil {
		return player.Player{}, err
	}

	if input.Name != nil {
		item.Name = strings.TrimSpace(*input.Name)
	}
	if input.Email != nil {
		email := player.NormalizeEmail(*input.Email)
		if email != item.Email {
			if err := s.ensureEmailAvailable(ctx, item.ClubID, email, item.ID); err != nil {
				return player.Player{}, err
			}
		}
		item.Email = email
	}
	if input.PhoneNumber != nil {
		item.PhoneNumber = strings.TrimSpace(*input.PhoneNumber)
	}
	if input.Position != nil {
		if *input.Position < 1 {
			return player.Player{}, fmt.Errorf("%w: position must be >= 1", ErrInvalidInput)
		}
		item.Position = *input.Position
	}
	item.UpdatedAt = s.now().UTC()
	if err := item.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.playerRepo.Update(ctx, item); err != nil {
		if errors.Is(err, player.ErrEmailTaken) {
			return player.Player{}, fmt.Errorf("%w: a player with email %s already exists in this club", ErrConflict, item.Email)
		}
		return player.Player{}, fmt.Errorf("update player: %w", err)
	}

	s.logger.InfoContext(ctx, "player updated", "club_id", item.ClubID, "player_id", item.ID)
	return item, nil
}

// Delete removes the player and every match that references it.
func (s *PlayerService) Delete(ctx context.Context, identity auth.Identity, playerID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Delete")
	defer span.End()

	item, err := s.getPlayer(ctx, playerID)
	if err != nil {
		return err
	}
	if err := requireClubAdmin(identity, item.ClubID); err != nil {
		return err
	}

	if err := s.playerRepo.Delete(ctx, item.ID); err != nil {
		return fmt.Errorf("delete player: %w", err)
	}

	s.logger.InfoContext(ctx, "player deleted", "club_id", item.ClubID, "player_id", item.ID)
	return nil
}

// Reorder assigns manual ladder positions in one step. Every player must
// belong to clubID.
func (s *PlayerService) Reorder(ctx context.Context, identity auth.Identity, clubID string, updates []player.PositionUpdate) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Reorder")
	defer span.End()

	clubID = strings.TrimSpace(clubID)
	if err := ensureClubExists(ctx, s.clubRepo, clubID); err != nil {
		return nil, err
	}
	if err := requireClubAdmin(identity, clubID); err != nil {
		return nil, err
	}
	if len(updates) == 0 {
		return nil, fmt.Errorf("%w: at least one position update is required", ErrInvalidInput)
	}

	current, err := s.playerRepo.ListByClub(ctx, clubID)
	if err != nil {
		return nil, fmt.Errorf("list players by club: %w", err)
	}
	members := make(map[string]struct{}, len(current))
	for _, item := range current {
		members[item.ID] = struct{}{}
	}

	seen := make(map[string]struct{}, len(updates))
	for _, update := range updates {
		if _, ok := members[update.PlayerID]; !ok {
			return nil, fmt.Errorf("%w: player %s does not belong to club %s", ErrInvalidInput, update.PlayerID, clubID)
		}
		if _, dup := seen[update.PlayerID]; dup {
			return nil, fmt.Errorf("%w: duplicate player %s in position updates", ErrInvalidInput, update.PlayerID)
		}
		seen[update.PlayerID] = struct{}{}
		if update.Position < 1 {
			return nil, fmt.Errorf("%w: position must be >= 1 for player %s", ErrInvalidInput, update.PlayerID)
		}
	}

	if err := s.playerRepo.UpdatePositions(ctx, clubID, updates); err != nil {
		return nil, fmt.Errorf("update player positions: %w", err)
	}

	s.logger.InfoContext(ctx, "ladder reordered", "club_id", clubID, "players", len(updates))

	items, err := s.playerRepo.ListByClub(ctx, clubID)
	if err != nil {
		return nil, fmt.Errorf("list players by club: %w", err)
	}
	player.SortByPosition(items)
	return items, nil
}

func (s *PlayerService) getPlayer(ctx context.Context, playerID string) (player.Player, error) {
	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return player.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	item, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}
	return item, nil
}

// ensureEmailAvailable rejects an email already used by another player of
// the club. An empty email is always available.
func (s *PlayerService) ensureEmailAvailable(ctx context.Context, clubID, email, selfID string) error {
	if email == "" {
		return nil
	}
	existing, exists, err := s.playerRepo.GetByEmail(ctx, clubID, email)
	if err != nil {
		return fmt.Errorf("get player by email: %w", err)
	}
	if exists && existing.ID != selfID {
		return fmt.Errorf("%w: a player with email %s already exists in this club", ErrConflict, email)
	}
	return nil
}
