package httpapi

import "net/http"

func (h *Handler) RegisterTournament(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RegisterTournament")
	defer span.End()

	var req registerTournamentRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.tournamentService.RegisterTournament(ctx, req.Name)
	if err != nil {
		h.logger.WarnContext(ctx, "register tournament failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, tournamentToDTO(item))
}

func (h *Handler) GetTournament(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTournament")
	defer span.End()

	tournamentID, err := pathID(ctx, r, "tournamentID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.tournamentService.GetTournament(ctx, tournamentID)
	if err != nil {
		h.logger.WarnContext(ctx, "get tournament failed", "tournament_id", tournamentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, tournamentToDTO(item))
}

func (h *Handler) DeleteTournament(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteTournament")
	defer span.End()

	tournamentID, err := pathID(ctx, r, "tournamentID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.tournamentService.DeleteTournament(ctx, tournamentID); err != nil {
		h.logger.WarnContext(ctx, "delete tournament failed", "tournament_id", tournamentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeNoContent(ctx, w)
}

func (h *Handler) DeleteAllTournaments(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteAllTournaments")
	defer span.End()

	if err := h.tournamentService.DeleteAllTournaments(ctx); err != nil {
		h.logger.ErrorContext(ctx, "delete all tournaments failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "all tournaments deleted")
	writeNoContent(ctx, w)
}

func (h *Handler) RegisterParticipant(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RegisterParticipant")
	defer span.End()

	tournamentID, err := pathID(ctx, r, "tournamentID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req registerParticipantRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.tournamentService.RegisterPlayerInTournament(ctx, tournamentID, req.PlayerID); err != nil {
		h.logger.WarnContext(ctx, "register participant failed", "tournament_id", tournamentID, "player_id", req.PlayerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, map[string]int64{
		"tournament_id": tournamentID,
		"player_id":     req.PlayerID,
	})
}

func (h *Handler) CountParticipants(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CountParticipants")
	defer span.End()

	tournamentID, err := pathID(ctx, r, "tournamentID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	total, err := h.tournamentService.CountParticipants(ctx, tournamentID)
	if err != nil {
		h.logger.WarnContext(ctx, "count participants failed", "tournament_id", tournamentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, countDTO{Count: total})
}
