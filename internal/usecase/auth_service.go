package usecase

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/difaziotennis-rgb/Ladder/internal/domain/auth"
	"github.com/difaziotennis-rgb/Ladder/internal/domain/club"
	"github.com/difaziotennis-rgb/Ladder/internal/platform/logging"
)

const (
	DefaultSessionTTL = 7 * 24 * time.Hour
	sessionTokenBytes = 32
)

// LoginResult carries the opaque token handed to the client.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	SubjectID string
	Name      string
}

// AuthService issues and verifies admin sessions. Tokens are random and
// only their SHA-256 digest is persisted.
type AuthService struct {
	authRepo auth.Repository
	clubRepo club.Repository
	hasher   PasswordHasher
	ttl      time.Duration
	logger   *logging.Logger
	now      func() time.Time
}

func NewAuthService(authRepo auth.Repository, clubRepo club.Repository, hasher PasswordHasher, ttl time.Duration, logger *logging.Logger) *AuthService {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &AuthService{
		authRepo: authRepo,
		clubRepo: clubRepo,
		hasher:   hasher,
		ttl:      ttl,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *AuthService) SessionTTL() time.Duration {
	return s.ttl
}

func (s *AuthService) LoginSiteAdmin(ctx context.Context, username, password string) (LoginResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.LoginSiteAdmin")
	defer span.End()

	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return LoginResult{}, fmt.Errorf("%w: username and password are required", ErrInvalidInput)
	}

	admin, exists, err := s.authRepo.GetSiteAdminByUsername(ctx, username)
	if err != nil {
		return LoginResult{}, fmt.Errorf("get site admin: %w", err)
	}
	if !exists {
		return LoginResult{}, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}
	if err := s.hasher.Compare(admin.PasswordHash, password); err != nil {
		s.logger.WarnContext(ctx, "site admin login rejected", "username", username)
		return LoginResult{}, err
	}

	result, err := s.issueSession(ctx, auth.SessionSiteAdmin, admin.ID)
	if err != nil {
		return LoginResult{}, err
	}
	result.Name = admin.Username

	s.logger.InfoContext(ctx, "site admin logged in", "site_admin_id", admin.ID)
	return result, nil
}

func (s *AuthService) LoginClubAdmin(ctx context.Context, clubID, password string) (LoginResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.LoginClubAdmin")
	defer span.End()

	clubID = strings.TrimSpace(clubID)
	if clubID == "" || password == "" {
		return LoginResult{}, fmt.Errorf("%w: club id and password are required", ErrInvalidInput)
	}

	item, exists, err := s.clubRepo.GetByID(ctx, clubID)
	if err != nil {
		return LoginResult{}, fmt.Errorf("get club: %w", err)
	}
	if !exists {
		return LoginResult{}, fmt.Errorf("%w: club=%s", ErrNotFound, clubID)
	}
	if !item.HasAdminPassword() {
		return LoginResult{}, fmt.Errorf("%w: club admin password not set", ErrInvalidInput)
	}
	if err := s.hasher.Compare(item.AdminPasswordHash, password); err != nil {
		s.logger.WarnContext(ctx, "club admin login rejected", "club_id", clubID)
		return LoginResult{}, err
	}

	result, err := s.issueSession(ctx, auth.SessionClubAdmin, item.ID)
	if err != nil {
		return LoginResult{}, err
	}
	result.Name = item.Name

	s.logger.InfoContext(ctx, "club admin logged in", "club_id", item.ID)
	return result, nil
}

// Verify returns the subject of a live session of the given kind.
// Unknown, expired or mismatched tokens report false without error.
func (s *AuthService) Verify(ctx context.Context, kind auth.SessionKind, token string) (string, bool, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", false, nil
	}

	session, exists, err := s.authRepo.GetSession(ctx, hashToken(token))
	if err != nil {
		return "", false, fmt.Errorf("get session: %w", err)
	}
	if !exists || session.Kind != kind {
		return "", false, nil
	}
	if session.Expired(s.now()) {
		if err := s.authRepo.DeleteSession(ctx, session.TokenHash); err != nil {
			s.logger.WarnContext(ctx, "drop expired session failed", "error", err)
		}
		return "", false, nil
	}
	return session.SubjectID, true, nil
}

// ResolveIdentity builds the request identity from a site admin token and
// per-club tokens keyed by club id.
func (s *AuthService) ResolveIdentity(ctx context.Context, siteAdminToken string, clubTokens map[string]string) (auth.Identity, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.ResolveIdentity")
	defer span.End()

	var identity auth.Identity
	if siteAdminToken != "" {
		adminID, ok, err := s.Verify(ctx, auth.SessionSiteAdmin, siteAdminToken)
		if err != nil {
			return auth.Identity{}, err
		}
		if ok {
			identity.SiteAdminID = adminID
		}
	}

	for clubID, token := range clubTokens {
		subject, ok, err := s.Verify(ctx, auth.SessionClubAdmin, token)
		if err != nil {
			return auth.Identity{}, err
		}
		if ok && subject == clubID {
			identity = identity.WithClub(clubID)
		}
	}
	return identity, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.Logout")
	defer span.End()

	token = strings.TrimSpace(token)
	if token == "" {
		return nil
	}
	if err := s.authRepo.DeleteSession(ctx, hashToken(token)); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (s *AuthService) issueSession(ctx context.Context, kind auth.SessionKind, subjectID string) (LoginResult, error) {
	token, err := newSessionToken()
	if err != nil {
		return LoginResult{}, err
	}

	now := s.now().UTC()
	session := auth.Session{
		TokenHash: hashToken(token),
		Kind:      kind,
		SubjectID: subjectID,
		ExpiresAt: now.Add(s.ttl),
		CreatedAt: now,
	}
	if err := session.Validate(); err != nil {
		return LoginResult{}, fmt.Errorf("build session: %w", err)
	}
	if err := s.authRepo.CreateSession(ctx, session); err != nil {
		return LoginResult{}, fmt.Errorf("create session: %w", err)
	}

	return LoginResult{Token: token, ExpiresAt: session.ExpiresAt, SubjectID: subjectID}, nil
}

func newSessionToken() (string, error) {
	buf := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
