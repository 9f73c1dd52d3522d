package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) LoginSiteAdmin(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.LoginSiteAdmin")
	defer span.End()

	var req siteAdminLoginRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.authService.LoginSiteAdmin(ctx, req.Username, req.Password)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	h.setSessionCookie(w, siteAdminCookieName, result.Token, result.ExpiresAt)
	writeSuccess(ctx, w, http.StatusOK, loginToDTO(result))
}

func (h *Handler) LogoutSiteAdmin(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.LogoutSiteAdmin")
	defer span.End()

	if cookie, err := r.Cookie(siteAdminCookieName); err == nil && cookie.Value != "" {
		if err := h.authService.Logout(ctx, cookie.Value); err != nil {
			writeError(ctx, w, err)
			return
		}
	}

	h.clearSessionCookie(w, siteAdminCookieName)
	writeSuccess(ctx, w, http.StatusOK, sessionDTO{Authenticated: false})
}

func (h *Handler) CheckSiteAdmin(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.CheckSiteAdmin")
	defer span.End()

	identity := identityFromContext(ctx)
	writeSuccess(ctx, w, http.StatusOK, sessionDTO{
		Authenticated: identity.IsSiteAdmin(),
		SubjectID:     identity.SiteAdminID,
	})
}

func (h *Handler) LoginClubAdmin(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.LoginClubAdmin")
	defer span.End()

	var req clubAdminLoginRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.authService.LoginClubAdmin(ctx, req.ClubID, req.Password)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	h.setSessionCookie(w, clubAdminCookieName(result.SubjectID), result.Token, result.ExpiresAt)
	writeSuccess(ctx, w, http.StatusOK, loginToDTO(result))
}

func (h *Handler) LogoutClubAdmin(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.LogoutClubAdmin")
	defer span.End()

	var req clubAdminLogoutRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	name := clubAdminCookieName(strings.TrimSpace(req.ClubID))
	if cookie, err := r.Cookie(name); err == nil && cookie.Value != "" {
		if err := h.authService.Logout(ctx, cookie.Value); err != nil {
			writeError(ctx, w, err)
			return
		}
	}

	h.clearSessionCookie(w, name)
	writeSuccess(ctx, w, http.StatusOK, sessionDTO{Authenticated: false})
}

// CheckClubAdmin reports whether the caller may manage ?club_id=.
// A site admin session counts.
func (h *Handler) CheckClubAdmin(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.CheckClubAdmin")
	defer span.End()

	clubID := strings.TrimSpace(r.URL.Query().Get("club_id"))
	if clubID == "" {
		writeError(ctx, w, invalidInput("club_id is required"))
		return
	}

	identity := identityFromContext(ctx)
	writeSuccess(ctx, w, http.StatusOK, sessionDTO{
		Authenticated: identity.CanManageClub(clubID),
		SubjectID:     clubID,
	})
}
