package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/difaziotennis-rgb/Ladder/internal/domain/auth"
	"github.com/difaziotennis-rgb/Ladder/internal/domain/club"
	"github.com/difaziotennis-rgb/Ladder/internal/platform/id"
	"github.com/difaziotennis-rgb/Ladder/internal/platform/logging"
)

type CreateClubInput struct {
	Name          string
	AdminPassword string
}

type ClubService struct {
	clubRepo club.Repository
	idGen    id.Generator
	hasher   PasswordHasher
	logger   *logging.Logger
	now      func() time.Time
}

func NewClubService(clubRepo club.Repository, idGen id.Generator, hasher PasswordHasher, logger *logging.Logger) *ClubService {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &ClubService{
		clubRepo: clubRepo,
		idGen:    idGen,
		hasher:   hasher,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *ClubService) List(ctx context.Context) ([]club.Club, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ClubService.List")
	defer span.End()

	items, err := s.clubRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list clubs: %w", err)
	}
	return items, nil
}

func (s *ClubService) GetByID(ctx context.Context, clubID string) (club.Club, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ClubService.GetByID")
	defer span.End()

	clubID = strings.TrimSpace(clubID)
	if clubID == "" {
		return club.Club{}, fmt.Errorf("%w: club id is required", ErrInvalidInput)
	}

	item, exists, err := s.clubRepo.GetByID(ctx, clubID)
	if err != nil {
		return club.Club{}, fmt.Errorf("get club: %w", err)
	}
	if !exists {
		return club.Club{}, fmt.Errorf("%w: club=%s", ErrNotFound, clubID)
	}
	return item, nil
}

// GetBySlug resolves a slug case-insensitively against the club's effective
// slug.
func (s *ClubService) GetBySlug(ctx context.Context, slug string) (club.Club, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ClubService.GetBySlug")
	defer span.End()

	slug = strings.ToLower(strings.TrimSpace(slug))
	if slug == "" {
		return club.Club{}, fmt.Errorf("%w: club slug is required", ErrInvalidInput)
	}

	item, exists, err := s.clubRepo.GetBySlug(ctx, slug)
	if err != nil {
		return club.Club{}, fmt.Errorf("get club by slug: %w", err)
	}
	if !exists {
		return club.Club{}, fmt.Errorf("%w: club slug=%s", ErrNotFound, slug)
	}
	return item, nil
}

func (s *ClubService) Create(ctx context.Context, identity auth.Identity, input CreateClubInput) (club.Club, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ClubService.Create")
	defer span.End()

	if err := requireSiteAdmin(identity); err != nil {
		return club.Club{}, err
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return club.Club{}, fmt.Errorf("%w: club name is required", ErrInvalidInput)
	}
	slug := club.CreateSlug(name)

	_, exists, err := s.clubRepo.GetBySlug(ctx, slug)
	if err != nil {
		return club.Club{}, fmt.Errorf("check club slug: %w", err)
	}
	if exists {
		return club.Club{}, fmt.Errorf("%w: a club with slug %q already exists", ErrConflict, slug)
	}

	clubID, err := s.idGen.NewID()
	if err != nil {
		return club.Club{}, fmt.Errorf("generate club id: %w", err)
	}

	now := s.now().UTC()
	item := club.Club{
		ID:        clubID,
		Name:      name,
		Slug:      slug,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if input.AdminPassword != "" {
		if err := validatePassword(input.AdminPassword); err != nil {
			return club.Club{}, err
		}
		hash, err := s.hasher.Hash(input.AdminPassword)
		if err != nil {
			return club.Club{}, err
		}
		item.AdminPasswordHash = hash
	}
	if err := item.Validate(); err != nil {
		return club.Club{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.clubRepo.Create(ctx, item); err != nil {
		if errors.Is(err, club.ErrSlugTaken) {
			return club.Club{}, fmt.Errorf("%w: a club with slug %q already exists", ErrConflict, slug)
		}
		return club.Club{}, fmt.Errorf("create club: %w", err)
	}

	s.logger.InfoContext(ctx, "club created", "club_id", item.ID, "slug", item.Slug, "site_admin_id", identity.SiteAdminID)
	return item, nil
}

// Delete removes the club together with its players and matches.
func (s *ClubService) Delete(ctx context.Context, identity auth.Identity, slug string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.ClubService.Delete")
	defer span.End()

	if err := requireSiteAdmin(identity); err != nil {
		return err
	}

	item, err := s.GetBySlug(ctx, slug)
	if err != nil {
		return err
	}
	if err := s.clubRepo.Delete(ctx, item.ID); err != nil {
		return fmt.Errorf("delete club: %w", err)
	}

	s.logger.InfoContext(ctx, "club deleted", "club_id", item.ID, "slug", item.EffectiveSlug(), "site_admin_id", identity.SiteAdminID)
	return nil
}

func (s *ClubService) SetAdminPassword(ctx context.Context, identity auth.Identity, slug, password string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.ClubService.SetAdminPassword")
	defer span.End()

	if err := requireSiteAdmin(identity); err != nil {
		return err
	}
	if err := validatePassword(password); err != nil {
		return err
	}

	item, err := s.GetBySlug(ctx, slug)
	if err != nil {
		return err
	}
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return err
	}
	if err := s.clubRepo.UpdateAdminPassword(ctx, item.ID, hash); err != nil {
		return fmt.Errorf("update club admin password: %w", err)
	}

	s.logger.InfoContext(ctx, "club admin password updated", "club_id", item.ID)
	return nil
}
