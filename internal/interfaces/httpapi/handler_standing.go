package httpapi

import "net/http"

func (h *Handler) GetStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStandings")
	defer span.End()

	tournamentID, err := pathID(ctx, r, "tournamentID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	rows, err := h.standingService.GetStandings(ctx, tournamentID)
	if err != nil {
		h.logger.WarnContext(ctx, "get standings failed", "tournament_id", tournamentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, standingsToDTO(rows))
}

func (h *Handler) GetPairings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPairings")
	defer span.End()

	tournamentID, err := pathID(ctx, r, "tournamentID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	pairs, err := h.standingService.GetNextRoundPairings(ctx, tournamentID)
	if err != nil {
		h.logger.WarnContext(ctx, "get pairings failed", "tournament_id", tournamentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, pairingsToDTO(h.standingService.OddPolicy(), pairs))
}
