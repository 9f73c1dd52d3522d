package httpapi

import (
	"net/http"

	"github.com/difaziotennis-rgb/Ladder/internal/platform/logging"
)

func NewRouter(
	handler *Handler,
	resolver IdentityResolver,
	logger *logging.Logger,
	corsAllowedOrigins []string,
) http.Handler {
	if logger == nil {
		logger = logging.NewNop()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler)
	registerClubRoutes(mux, handler)
	registerClubIDRoutes(mux, handler)
	registerPlayerMatchRoutes(mux, handler)
	registerAdminRoutes(mux, handler)
	registerAuthRoutes(mux, handler)

	return RequestTracing(RequestLogging(logger, CORS(corsAllowedOrigins, recoverPanic(logger, ResolveIdentity(resolver, logger, mux)))))
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.recoverPanic")
		defer span.End()

		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(ctx, "panic recovered", "panic", rec)
				writeInternalError(ctx, w)
			}
		}()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
