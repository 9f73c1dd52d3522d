package memory

import (
	"context"
	"fmt"
	"strings"

	"github.com/difaziotennis-rgb/Ladder/internal/domain/auth"
)

type AuthRepository struct {
	db *Store
}

func NewAuthRepository(db *Store) *AuthRepository {
	return &AuthRepository{db: db}
}

func (r *AuthRepository) GetSiteAdminByUsername(_ context.Context, username string) (auth.SiteAdmin, bool, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	for _, admin := range r.db.admins {
		if strings.EqualFold(admin.Username, username) {
			return admin, true, nil
		}
	}
	return auth.SiteAdmin{}, false, nil
}

func (r *AuthRepository) CreateSession(_ context.Context, session auth.Session) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, exists := r.db.sessions[session.TokenHash]; exists {
		return fmt.Errorf("session already exists")
	}
	r.db.sessions[session.TokenHash] = session
	return nil
}

func (r *AuthRepository) GetSession(_ context.Context, tokenHash string) (auth.Session, bool, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	session, ok := r.db.sessions[tokenHash]
	return session, ok, nil
}

func (r *AuthRepository) DeleteSession(_ context.Context, tokenHash string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	delete(r.db.sessions, tokenHash)
	return nil
}
