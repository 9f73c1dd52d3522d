package httpapi

import (
	"context"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/difaziotennis-rgb/Ladder/internal/domain/auth"
	"github.com/difaziotennis-rgb/Ladder/internal/platform/logging"
)

const (
	siteAdminCookieName       = "site_admin_session"
	clubAdminCookieNamePrefix = "club_admin_"
	// maxClubAdminCookies bounds session lookups per request; further club
	// cookies are ignored.
	maxClubAdminCookies = 16
)

// IdentityResolver turns session tokens into the caller's admin rights.
type IdentityResolver interface {
	ResolveIdentity(ctx context.Context, siteAdminToken string, clubTokens map[string]string) (auth.Identity, error)
}

// ResolveIdentity attaches an auth.Identity built from the session cookies.
// Requests without valid cookies continue as anonymous.
func ResolveIdentity(resolver IdentityResolver, logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.ResolveIdentity")
		defer span.End()

		var siteToken string
		clubTokens := make(map[string]string)
		for _, cookie := range r.Cookies() {
			switch {
			case cookie.Name == siteAdminCookieName:
				siteToken = cookie.Value
			case strings.HasPrefix(cookie.Name, clubAdminCookieNamePrefix):
				clubID := strings.TrimPrefix(cookie.Name, clubAdminCookieNamePrefix)
				if clubID == "" || cookie.Value == "" {
					continue
				}
				if _, seen := clubTokens[clubID]; !seen && len(clubTokens) >= maxClubAdminCookies {
					continue
				}
				clubTokens[clubID] = cookie.Value
			}
		}

		identity := auth.Identity{}
		if siteToken != "" || len(clubTokens) > 0 {
			resolved, err := resolver.ResolveIdentity(ctx, siteToken, clubTokens)
			if err != nil {
				logger.WarnContext(ctx, "resolve identity failed", "error", err)
			} else {
				identity = resolved
			}
		}

		next.ServeHTTP(w, r.WithContext(withIdentity(ctx, identity)))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func RequestLogging(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.RequestLogging")
		defer span.End()

		started := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r.WithContext(ctx))

		logger.InfoContext(ctx, "http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"remote_addr", r.RemoteAddr,
			"duration_ms", time.Since(started).Milliseconds(),
		)
	})
}

func RequestTracing(next http.Handler) http.Handler {
	return otelhttp.NewHandler(next, "ladder-http",
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}),
		otelhttp.WithFilter(func(r *http.Request) bool {
			return shouldTraceRequest(r.URL.Path)
		}),
	)
}

func shouldTraceRequest(path string) bool {
	normalized := strings.ToLower(strings.TrimSpace(path))
	switch normalized {
	case "/healthz", "/health", "/livez", "/readyz":
		return false
	default:
		return true
	}
}

// CORS allows credentialed requests from configured origins. A "*" entry
// allows any origin without credentials.
func CORS(allowedOrigins []string, next http.Handler) http.Handler {
	allowAll := false
	allowMap := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		candidate := strings.TrimSpace(origin)
		if candidate == "" {
			continue
		}
		if candidate == "*" {
			allowAll = true
			continue
		}
		allowMap[candidate] = struct{}{}
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.CORS")
		defer span.End()

		origin := strings.TrimSpace(r.Header.Get("Origin"))
		if origin == "" {
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		_, listed := allowMap[origin]
		if listed || allowAll {
			if listed {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Credentials", "true")
				w.Header().Add("Vary", "Origin")
			} else {
				w.Header().Set("Access-Control-Allow-Origin", "*")
			}
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,PUT,PATCH,DELETE,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type,Accept")
			w.Header().Set("Access-Control-Max-Age", "600")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
