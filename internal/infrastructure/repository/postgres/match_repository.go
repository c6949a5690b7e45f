package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/swiss-tournament/internal/domain/match"
	qb "github.com/riskibarqy/swiss-tournament/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) Create(ctx context.Context, item match.Match) (match.Match, error) {
	query, args, err := qb.InsertModel("matches", matchTableModel{
		TournamentID: item.TournamentID,
		WinnerID:     item.WinnerID,
		LoserID:      item.LoserID,
	}, "RETURNING id, tournament_id, winner_id, loser_id, created_at")
	if err != nil {
		return match.Match{}, fmt.Errorf("build insert match query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isCheckViolation(err) || isForeignKeyViolation(err) {
			return match.Match{}, fmt.Errorf("insert match tournament=%d: %w: %w", item.TournamentID, match.ErrInvalidParticipants, err)
		}
		return match.Match{}, fmt.Errorf("insert match tournament=%d: %w", item.TournamentID, err)
	}

	return matchFromRow(row), nil
}

func (r *MatchRepository) ListByTournament(ctx context.Context, tournamentID int64) ([]match.Match, error) {
	query, args, err := qb.Select("id", "tournament_id", "winner_id", "loser_id", "created_at").
		From("matches").
		Where(qb.Eq("tournament_id", tournamentID)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list matches query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list matches tournament=%d: %w", tournamentID, err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchFromRow(row))
	}
	return out, nil
}

func (r *MatchRepository) DeleteByTournament(ctx context.Context, tournamentID int64) error {
	query, args, err := qb.DeleteFrom("matches").Where(qb.Eq("tournament_id", tournamentID)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete matches query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete matches tournament=%d: %w", tournamentID, err)
	}
	return nil
}

func (r *MatchRepository) DeleteAll(ctx context.Context) error {
	query, args, err := qb.DeleteFrom("matches").ToSQL()
	if err != nil {
		return fmt.Errorf("build delete all matches query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete all matches: %w", err)
	}
	return nil
}

func matchFromRow(row matchTableModel) match.Match {
	return match.Match{
		ID:           row.ID,
		TournamentID: row.TournamentID,
		WinnerID:     row.WinnerID,
		LoserID:      row.LoserID,
	}
}
