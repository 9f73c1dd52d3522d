package httpapi

import (
	"net/http"
	"strconv"

	"github.com/difaziotennis-rgb/Ladder/internal/usecase"
)

func (h *Handler) ListClubs(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.ListClubs")
	defer span.End()

	items, err := h.clubService.List(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	out := make([]clubDTO, 0, len(items))
	for _, item := range items {
		out = append(out, clubToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) CreateClub(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.CreateClub")
	defer span.End()

	var req createClubRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.clubService.Create(ctx, identityFromContext(ctx), usecase.CreateClubInput{
		Name:          req.Name,
		AdminPassword: req.AdminPassword,
	})
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, clubToDTO(item))
}

func (h *Handler) GetClubBySlug(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.GetClubBySlug")
	defer span.End()

	item, err := h.clubService.GetBySlug(ctx, pathValue(r, "slug"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, clubToDTO(item))
}

func (h *Handler) DeleteClub(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.DeleteClub")
	defer span.End()

	if err := h.clubService.Delete(ctx, identityFromContext(ctx), pathValue(r, "slug")); err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]bool{"deleted": true})
}

func (h *Handler) SetClubAdminPassword(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.SetClubAdminPassword")
	defer span.End()

	var req setClubPasswordRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.clubService.SetAdminPassword(ctx, identityFromContext(ctx), pathValue(r, "slug"), req.Password); err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]bool{"updated": true})
}

// GetClubSnapshot serves everything a club page renders in one response.
// ?recent=N bounds the recent match list.
func (h *Handler) GetClubSnapshot(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.GetClubSnapshot")
	defer span.End()

	recent := 0
	if raw := r.URL.Query().Get("recent"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			writeError(ctx, w, invalidInput("recent must be a positive integer"))
			return
		}
		recent = parsed
	}

	snapshot, err := h.ladderService.GetClubSnapshot(ctx, pathValue(r, "slug"), recent)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, clubSnapshotDTO{
		Club:          clubToDTO(snapshot.Club),
		Ladder:        ladderToDTO(snapshot.Ladder),
		Leaderboard:   playersToDTO(snapshot.Leaderboard),
		RecentMatches: matchesToDTO(snapshot.RecentMatches),
	})
}
