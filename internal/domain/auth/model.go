package auth

import (
	"fmt"
	"time"
)

// SessionKind distinguishes the two admin roles.
type SessionKind string

const (
	SessionSiteAdmin SessionKind = "site_admin"
	SessionClubAdmin SessionKind = "club_admin"
)

// SiteAdmin may manage every club.
type SiteAdmin struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// Session is a persisted login. Only the hash of the opaque token is stored.
// SubjectID is the site admin id or the club id, depending on Kind.
type Session struct {
	TokenHash string
	Kind      SessionKind
	SubjectID string
	ExpiresAt time.Time
	CreatedAt time.Time
}

func (s Session) Validate() error {
	if s.TokenHash == "" {
		return fmt.Errorf("session token hash is required")
	}
	if s.Kind != SessionSiteAdmin && s.Kind != SessionClubAdmin {
		return fmt.Errorf("invalid session kind: %s", s.Kind)
	}
	if s.SubjectID == "" {
		return fmt.Errorf("session subject id is required")
	}
	if s.ExpiresAt.IsZero() {
		return fmt.Errorf("session expiry is required")
	}
	return nil
}

func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
