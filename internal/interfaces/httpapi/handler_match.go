package httpapi

import (
	"net/http"

	"github.com/riskibarqy/swiss-tournament/internal/usecase"
)

func (h *Handler) ReportMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ReportMatch")
	defer span.End()

	tournamentID, err := pathID(ctx, r, "tournamentID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req reportMatchRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.matchService.ReportMatch(ctx, usecase.ReportMatchInput{
		TournamentID: tournamentID,
		WinnerID:     req.WinnerID,
		LoserID:      req.LoserID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "report match failed",
			"tournament_id", tournamentID,
			"winner_id", req.WinnerID,
			"loser_id", req.LoserID,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, matchToDTO(item))
}

func (h *Handler) ListTournamentMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTournamentMatches")
	defer span.End()

	tournamentID, err := pathID(ctx, r, "tournamentID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.matchService.ListMatches(ctx, tournamentID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchesToDTO(items))
}

func (h *Handler) DeleteTournamentMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteTournamentMatches")
	defer span.End()

	tournamentID, err := pathID(ctx, r, "tournamentID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.matchService.DeleteMatches(ctx, tournamentID); err != nil {
		h.logger.WarnContext(ctx, "delete tournament matches failed", "tournament_id", tournamentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeNoContent(ctx, w)
}

func (h *Handler) DeleteAllMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteAllMatches")
	defer span.End()

	if err := h.matchService.DeleteAllMatches(ctx); err != nil {
		h.logger.ErrorContext(ctx, "delete all matches failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "all matches deleted")
	writeNoContent(ctx, w)
}
