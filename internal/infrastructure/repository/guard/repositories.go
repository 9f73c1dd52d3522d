package guard

import (
	"context"

	"github.com/difaziotennis-rgb/Ladder/internal/domain/auth"
	"github.com/difaziotennis-rgb/Ladder/internal/domain/club"
	"github.com/difaziotennis-rgb/Ladder/internal/domain/match"
	"github.com/difaziotennis-rgb/Ladder/internal/domain/player"
	"github.com/difaziotennis-rgb/Ladder/internal/platform/resilience"
)

type ClubRepository struct {
	next    club.Repository
	breaker *resilience.CircuitBreaker
}

func NewClubRepository(next club.Repository, breaker *resilience.CircuitBreaker) *ClubRepository {
	return &ClubRepository{next: next, breaker: breaker}
}

func (r *ClubRepository) List(ctx context.Context) ([]club.Club, error) {
	return get(r.breaker, func() ([]club.Club, error) { return r.next.List(ctx) })
}

func (r *ClubRepository) GetByID(ctx context.Context, clubID string) (club.Club, bool, error) {
	return lookup(r.breaker, func() (club.Club, bool, error) { return r.next.GetByID(ctx, clubID) })
}

func (r *ClubRepository) GetBySlug(ctx context.Context, slug string) (club.Club, bool, error) {
	return lookup(r.breaker, func() (club.Club, bool, error) { return r.next.GetBySlug(ctx, slug) })
}

func (r *ClubRepository) Create(ctx context.Context, item club.Club) error {
	return run(r.breaker, func() error { return r.next.Create(ctx, item) })
}

func (r *ClubRepository) UpdateAdminPassword(ctx context.Context, clubID, passwordHash string) error {
	return run(r.breaker, func() error { return r.next.UpdateAdminPassword(ctx, clubID, passwordHash) })
}

func (r *ClubRepository) Delete(ctx context.Context, clubID string) error {
	return run(r.breaker, func() error { return r.next.Delete(ctx, clubID) })
}

type PlayerRepository struct {
	next    player.Repository
	breaker *resilience.CircuitBreaker
}

func NewPlayerRepository(next player.Repository, breaker *resilience.CircuitBreaker) *PlayerRepository {
	return &PlayerRepository{next: next, breaker: breaker}
}

func (r *PlayerRepository) ListByClub(ctx context.Context, clubID string) ([]player.Player, error) {
	return get(r.breaker, func() ([]player.Player, error) { return r.next.ListByClub(ctx, clubID) })
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (player.Player, bool, error) {
	return lookup(r.breaker, func() (player.Player, bool, error) { return r.next.GetByID(ctx, playerID) })
}

func (r *PlayerRepository) GetByEmail(ctx context.Context, clubID, email string) (player.Player, bool, error) {
	return lookup(r.breaker, func() (player.Player, bool, error) { return r.next.GetByEmail(ctx, clubID, email) })
}

func (r *PlayerRepository) CreateAtBottom(ctx context.Context, item player.Player) (player.Player, error) {
	return get(r.breaker, func() (player.Player, error) { return r.next.CreateAtBottom(ctx, item) })
}

func (r *PlayerRepository) Update(ctx context.Context, item player.Player) error {
	return run(r.breaker, func() error { return r.next.Update(ctx, item) })
}

func (r *PlayerRepository) UpdatePositions(ctx context.Context, clubID string, updates []player.PositionUpdate) error {
	return run(r.breaker, func() error { return r.next.UpdatePositions(ctx, clubID, updates) })
}

func (r *PlayerRepository) UpdateRankingPoints(ctx context.Context, updates []player.PointsUpdate) error {
	return run(r.breaker, func() error { return r.next.UpdateRankingPoints(ctx, updates) })
}

func (r *PlayerRepository) Delete(ctx context.Context, playerID string) error {
	return run(r.breaker, func() error { return r.next.Delete(ctx, playerID) })
}

type MatchRepository struct {
	next    match.Repository
	breaker *resilience.CircuitBreaker
}

func NewMatchRepository(next match.Repository, breaker *resilience.CircuitBreaker) *MatchRepository {
	return &MatchRepository{next: next, breaker: breaker}
}

func (r *MatchRepository) ListByClub(ctx context.Context, clubID string) ([]match.WithPlayers, error) {
	return get(r.breaker, func() ([]match.WithPlayers, error) { return r.next.ListByClub(ctx, clubID) })
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID string) (match.Match, bool, error) {
	return lookup(r.breaker, func() (match.Match, bool, error) { return r.next.GetByID(ctx, matchID) })
}

func (r *MatchRepository) Create(ctx context.Context, item match.Match) error {
	return run(r.breaker, func() error { return r.next.Create(ctx, item) })
}

func (r *MatchRepository) CreateWithPoints(ctx context.Context, item match.Match, updates []player.PointsUpdate) error {
	return run(r.breaker, func() error { return r.next.CreateWithPoints(ctx, item, updates) })
}

func (r *MatchRepository) Update(ctx context.Context, item match.Match) error {
	return run(r.breaker, func() error { return r.next.Update(ctx, item) })
}

func (r *MatchRepository) Delete(ctx context.Context, matchID string) error {
	return run(r.breaker, func() error { return r.next.Delete(ctx, matchID) })
}

type AuthRepository struct {
	next    auth.Repository
	breaker *resilience.CircuitBreaker
}

func NewAuthRepository(next auth.Repository, breaker *resilience.CircuitBreaker) *AuthRepository {
	return &AuthRepository{next: next, breaker: breaker}
}

func (r *AuthRepository) GetSiteAdminByUsername(ctx context.Context, username string) (auth.SiteAdmin, bool, error) {
	return lookup(r.breaker, func() (auth.SiteAdmin, bool, error) { return r.next.GetSiteAdminByUsername(ctx, username) })
}

func (r *AuthRepository) CreateSession(ctx context.Context, session auth.Session) error {
	return run(r.breaker, func() error { return r.next.CreateSession(ctx, session) })
}

func (r *AuthRepository) GetSession(ctx context.Context, tokenHash string) (auth.Session, bool, error) {
	return lookup(r.breaker, func() (auth.Session, bool, error) { return r.next.GetSession(ctx, tokenHash) })
}

func (r *AuthRepository) DeleteSession(ctx context.Context, tokenHash string) error {
	return run(r.breaker, func() error { return r.next.DeleteSession(ctx, tokenHash) })
}
