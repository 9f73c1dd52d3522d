package httpapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/difaziotennis-rgb/Ladder/internal/platform/logging"
	"github.com/difaziotennis-rgb/Ladder/internal/usecase"
)

const maxRequestBodyBytes = 1 << 20

// CookieConfig controls the session cookies issued on login.
type CookieConfig struct {
	Secure bool
	TTL    time.Duration
}

type Handler struct {
	clubService    *usecase.ClubService
	playerService  *usecase.PlayerService
	matchService   *usecase.MatchService
	ladderService  *usecase.LadderService
	rankingService *usecase.RankingService
	authService    *usecase.AuthService
	cookies        CookieConfig
	logger         *logging.Logger
	validator      *validator.Validate
}

func NewHandler(
	clubService *usecase.ClubService,
	playerService *usecase.PlayerService,
	matchService *usecase.MatchService,
	ladderService *usecase.LadderService,
	rankingService *usecase.RankingService,
	authService *usecase.AuthService,
	cookies CookieConfig,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.NewNop()
	}
	if cookies.TTL <= 0 {
		cookies.TTL = usecase.DefaultSessionTTL
	}

	return &Handler{
		clubService:    clubService,
		playerService:  playerService,
		matchService:   matchService,
		ladderService:  ladderService,
		rankingService: rankingService,
		authService:    authService,
		cookies:        cookies,
		logger:         logger,
		validator:      validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// decodeRequest reads a JSON body into dst, rejecting unknown fields, and
// validates it.
func (h *Handler) decodeRequest(ctx context.Context, r *http.Request, dst any) error {
	decoder := sonic.ConfigDefault.NewDecoder(io.LimitReader(r.Body, maxRequestBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return h.validateRequest(ctx, dst)
}

func pathValue(r *http.Request, name string) string {
	return strings.TrimSpace(r.PathValue(name))
}

// parseDatePlayed accepts RFC 3339 timestamps or plain YYYY-MM-DD dates.
func parseDatePlayed(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(time.DateOnly, raw); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, invalidInput("date_played must be RFC 3339 or YYYY-MM-DD")
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, name, token string, expiresAt time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		MaxAge:   int(h.cookies.TTL / time.Second),
		HttpOnly: true,
		Secure:   h.cookies.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookies.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func clubAdminCookieName(clubID string) string {
	return clubAdminCookieNamePrefix + clubID
}

func invalidInput(message string) error {
	return fmt.Errorf("%w: %s", usecase.ErrInvalidInput, message)
}
