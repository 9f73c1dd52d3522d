package httpapi

import (
	"context"

	"github.com/difaziotennis-rgb/Ladder/internal/domain/auth"
)

type contextKey string

const identityContextKey contextKey = "auth_identity"

func withIdentity(ctx context.Context, identity auth.Identity) context.Context {
	return context.WithValue(ctx, identityContextKey, identity)
}

// identityFromContext returns the anonymous identity when none was attached.
func identityFromContext(ctx context.Context) auth.Identity {
	identity, _ := ctx.Value(identityContextKey).(auth.Identity)
	return identity
}
