package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPlayerRoutes(mux *http.ServeMux, handler *Handler, adminToken string) {
	mux.HandleFunc("POST /v1/players", handler.RegisterPlayer)
	mux.HandleFunc("GET /v1/players/count", handler.CountPlayers)
	mux.HandleFunc("DELETE /v1/players/{playerID}", handler.DeletePlayer)
	mux.Handle("DELETE /v1/players", RequireAdminToken(adminToken, http.HandlerFunc(handler.DeleteAllPlayers)))
}

func registerTournamentRoutes(mux *http.ServeMux, handler *Handler, adminToken string) {
	mux.HandleFunc("POST /v1/tournaments", handler.RegisterTournament)
	mux.HandleFunc("GET /v1/tournaments/{tournamentID}", handler.GetTournament)
	mux.HandleFunc("DELETE /v1/tournaments/{tournamentID}", handler.DeleteTournament)
	mux.Handle("DELETE /v1/tournaments", RequireAdminToken(adminToken, http.HandlerFunc(handler.DeleteAllTournaments)))
	mux.HandleFunc("POST /v1/tournaments/{tournamentID}/participants", handler.RegisterParticipant)
	mux.HandleFunc("GET /v1/tournaments/{tournamentID}/participants/count", handler.CountParticipants)
	mux.HandleFunc("GET /v1/tournaments/{tournamentID}/standings", handler.GetStandings)
	mux.HandleFunc("GET /v1/tournaments/{tournamentID}/pairings", handler.GetPairings)
}

func registerMatchRoutes(mux *http.ServeMux, handler *Handler, adminToken string) {
	mux.HandleFunc("POST /v1/tournaments/{tournamentID}/matches", handler.ReportMatch)
	mux.HandleFunc("GET /v1/tournaments/{tournamentID}/matches", handler.ListTournamentMatches)
	mux.HandleFunc("DELETE /v1/tournaments/{tournamentID}/matches", handler.DeleteTournamentMatches)
	mux.Handle("DELETE /v1/matches", RequireAdminToken(adminToken, http.HandlerFunc(handler.DeleteAllMatches)))
}
