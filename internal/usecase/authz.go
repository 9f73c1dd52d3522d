package usecase

import (
	"context"
	"fmt"

	"github.com/difaziotennis-rgb/Ladder/internal/domain/auth"
	"github.com/difaziotennis-rgb/Ladder/internal/domain/club"
)

func requireSiteAdmin(identity auth.Identity) error {
	if !identity.IsSiteAdmin() {
		return fmt.Errorf("%w: site admin access required", ErrUnauthorized)
	}
	return nil
}

func requireClubAdmin(identity auth.Identity, clubID string) error {
	if !identity.CanManageClub(clubID) {
		return fmt.Errorf("%w: club admin access required for club=%s", ErrUnauthorized, clubID)
	}
	return nil
}

func ensureClubExists(ctx context.Context, clubRepo club.Repository, clubID string) error {
	if clubID == "" {
		return fmt.Errorf("%w: club id is required", ErrInvalidInput)
	}
	_, exists, err := clubRepo.GetByID(ctx, clubID)
	if err != nil {
		return fmt.Errorf("get club: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: club=%s", ErrNotFound, clubID)
	}
	return nil
}
