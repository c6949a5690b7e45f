package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/swiss-tournament/internal/domain/standing"
	qb "github.com/riskibarqy/swiss-tournament/internal/platform/querybuilder"
)

// StandingRepository reads the matches_summary view, which folds the match
// log into one row per registered participant.
type StandingRepository struct {
	db *sqlx.DB
}

func NewStandingRepository(db *sqlx.DB) *StandingRepository {
	return &StandingRepository{db: db}
}

func (r *StandingRepository) MatchSummary(ctx context.Context, tournamentID int64) ([]standing.Standing, error) {
	query, args, err := qb.Select("tournament_id", "player_id", "name", "wins", "matches").
		From("matches_summary").
		Where(qb.Eq("tournament_id", tournamentID)).
		OrderBy("wins DESC", "player_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build match summary query: %w", err)
	}

	var rows []matchSummaryViewModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select match summary tournament=%d: %w", tournamentID, err)
	}

	out := make([]standing.Standing, 0, len(rows))
	for _, row := range rows {
		out = append(out, standing.Standing{
			PlayerID: row.PlayerID,
			Name:     row.Name,
			Wins:     row.Wins,
			Matches:  row.Matches,
		})
	}
	return out, nil
}
