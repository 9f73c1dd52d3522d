package httpapi

import "net/http"

func (h *Handler) RecalculateClubRankings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.RecalculateClubRankings")
	defer span.End()

	items, err := h.rankingService.RecalculateClub(ctx, identityFromContext(ctx), pathValue(r, "clubID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playersToDTO(items))
}

// RecalculateAllRankings replays every club. Per-club failures are
// reported in the body instead of failing the whole request.
func (h *Handler) RecalculateAllRankings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.RecalculateAllRankings")
	defer span.End()

	result, err := h.rankingService.RecalculateAll(ctx, identityFromContext(ctx))
	if err != nil && len(result.FailedClubs) == 0 {
		writeError(ctx, w, err)
		return
	}
	if err != nil {
		h.logger.WarnContext(ctx, "ranking recalculation partially failed", "error", err)
	}

	out := recalculateResultDTO{
		ClubCount:    result.ClubCount,
		PlayerCount:  result.PlayerCount,
		SuccessClubs: result.SuccessClubs,
		FailedClubs:  result.FailedClubs,
	}
	if out.SuccessClubs == nil {
		out.SuccessClubs = []string{}
	}
	if out.FailedClubs == nil {
		out.FailedClubs = []string{}
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}
