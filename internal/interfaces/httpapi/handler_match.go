package httpapi

import (
	"net/http"

	"github.com/difaziotennis-rgb/Ladder/internal/usecase"
)

func (h *Handler) ListMatchesByClub(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.ListMatchesByClub")
	defer span.End()

	items, err := h.matchService.ListByClub(ctx, pathValue(r, "clubID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchesToDTO(items))
}

func (h *Handler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.CreateMatch")
	defer span.End()

	var req createMatchRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	input := usecase.CreateMatchInput{
		ClubID:   pathValue(r, "clubID"),
		WinnerID: req.WinnerID,
		LoserID:  req.LoserID,
		Score:    req.Score,
	}
	if req.DatePlayed != "" {
		played, err := parseDatePlayed(req.DatePlayed)
		if err != nil {
			writeError(ctx, w, err)
			return
		}
		input.DatePlayed = &played
	}

	item, err := h.matchService.Create(ctx, identityFromContext(ctx), input)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, matchToDTO(item))
}

func (h *Handler) UpdateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.UpdateMatch")
	defer span.End()

	var req updateMatchRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	input := usecase.UpdateMatchInput{
		WinnerID: req.WinnerID,
		LoserID:  req.LoserID,
		Score:    req.Score,
	}
	if req.DatePlayed != nil {
		played, err := parseDatePlayed(*req.DatePlayed)
		if err != nil {
			writeError(ctx, w, err)
			return
		}
		input.DatePlayed = &played
	}

	item, err := h.matchService.Update(ctx, identityFromContext(ctx), pathValue(r, "matchID"), input)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(item))
}

func (h *Handler) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.DeleteMatch")
	defer span.End()

	if err := h.matchService.Delete(ctx, identityFromContext(ctx), pathValue(r, "matchID")); err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]bool{"deleted": true})
}
