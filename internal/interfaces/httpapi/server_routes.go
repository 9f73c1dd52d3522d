package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerClubRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/clubs", handler.ListClubs)
	mux.HandleFunc("POST /v1/clubs", handler.CreateClub)
	mux.HandleFunc("GET /v1/clubs/{slug}", handler.GetClubBySlug)
	mux.HandleFunc("DELETE /v1/clubs/{slug}", handler.DeleteClub)
	mux.HandleFunc("PUT /v1/clubs/{slug}/admin-password", handler.SetClubAdminPassword)
	mux.HandleFunc("GET /v1/clubs/{slug}/snapshot", handler.GetClubSnapshot)
}

func registerClubIDRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/club-ids/{clubID}/players", handler.ListPlayersByClub)
	mux.HandleFunc("POST /v1/club-ids/{clubID}/players", handler.CreatePlayer)
	mux.HandleFunc("PUT /v1/club-ids/{clubID}/players/positions", handler.ReorderPlayers)
	mux.HandleFunc("GET /v1/club-ids/{clubID}/ladder", handler.GetLadder)
	mux.HandleFunc("GET /v1/club-ids/{clubID}/leaderboard", handler.GetPointsLeaderboard)
	mux.HandleFunc("GET /v1/club-ids/{clubID}/matches", handler.ListMatchesByClub)
	mux.HandleFunc("POST /v1/club-ids/{clubID}/matches", handler.CreateMatch)
	mux.HandleFunc("POST /v1/club-ids/{clubID}/rankings/recalculate", handler.RecalculateClubRankings)
}

func registerPlayerMatchRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/players/{playerID}", handler.GetPlayerProfile)
	mux.HandleFunc("PATCH /v1/players/{playerID}", handler.UpdatePlayer)
	mux.HandleFunc("DELETE /v1/players/{playerID}", handler.DeletePlayer)
	mux.HandleFunc("PATCH /v1/matches/{matchID}", handler.UpdateMatch)
	mux.HandleFunc("DELETE /v1/matches/{matchID}", handler.DeleteMatch)
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/admin/rankings/recalculate", handler.RecalculateAllRankings)
}

func registerAuthRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/auth/site-admin/login", handler.LoginSiteAdmin)
	mux.HandleFunc("POST /v1/auth/site-admin/logout", handler.LogoutSiteAdmin)
	mux.HandleFunc("GET /v1/auth/site-admin/check", handler.CheckSiteAdmin)
	mux.HandleFunc("POST /v1/auth/club-admin/login", handler.LoginClubAdmin)
	mux.HandleFunc("POST /v1/auth/club-admin/logout", handler.LogoutClubAdmin)
	mux.HandleFunc("GET /v1/auth/club-admin/check", handler.CheckClubAdmin)
}
