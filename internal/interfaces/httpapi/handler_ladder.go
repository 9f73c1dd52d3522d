package httpapi

import "net/http"

func (h *Handler) GetLadder(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.GetLadder")
	defer span.End()

	entries, err := h.ladderService.GetLadder(ctx, pathValue(r, "clubID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, ladderToDTO(entries))
}

func (h *Handler) GetPointsLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.GetPointsLeaderboard")
	defer span.End()

	items, err := h.ladderService.GetPointsLeaderboard(ctx, pathValue(r, "clubID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playersToDTO(items))
}
