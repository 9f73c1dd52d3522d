package httpapi

import (
	"net/http"

	"github.com/difaziotennis-rgb/Ladder/internal/domain/player"
	"github.com/difaziotennis-rgb/Ladder/internal/usecase"
)

func (h *Handler) ListPlayersByClub(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.ListPlayersByClub")
	defer span.End()

	items, err := h.playerService.ListByClub(ctx, pathValue(r, "clubID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playersToDTO(items))
}

func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.CreatePlayer")
	defer span.End()

	var req createPlayerRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.playerService.Create(ctx, identityFromContext(ctx), usecase.CreatePlayerInput{
		ClubID:      pathValue(r, "clubID"),
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, playerToDTO(item))
}

func (h *Handler) ReorderPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.ReorderPlayers")
	defer span.End()

	var req reorderPlayersRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updates := make([]player.PositionUpdate, 0, len(req.Positions))
	for _, item := range req.Positions {
		updates = append(updates, player.PositionUpdate{PlayerID: item.PlayerID, Position: item.Position})
	}

	items, err := h.playerService.Reorder(ctx, identityFromContext(ctx), pathValue(r, "clubID"), updates)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playersToDTO(items))
}

func (h *Handler) GetPlayerProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.GetPlayerProfile")
	defer span.End()

	profile, err := h.ladderService.GetPlayerProfile(ctx, pathValue(r, "playerID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerProfileDTO{
		Player:  playerToDTO(profile.Player),
		Wins:    profile.Wins,
		Losses:  profile.Losses,
		Matches: matchesToDTO(profile.Matches),
	})
}

func (h *Handler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.UpdatePlayer")
	defer span.End()

	var req updatePlayerRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.playerService.Update(ctx, identityFromContext(ctx), pathValue(r, "playerID"), usecase.UpdatePlayerInput{
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Position:    req.Position,
	})
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(item))
}

func (h *Handler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.DeletePlayer")
	defer span.End()

	if err := h.playerService.Delete(ctx, identityFromContext(ctx), pathValue(r, "playerID")); err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]bool{"deleted": true})
}
