package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/swiss-tournament/internal/domain/tournament"
	qb "github.com/riskibarqy/swiss-tournament/internal/platform/querybuilder"
)

type TournamentRepository struct {
	db *sqlx.DB
}

func NewTournamentRepository(db *sqlx.DB) *TournamentRepository {
	return &TournamentRepository{db: db}
}

func (r *TournamentRepository) Create(ctx context.Context, name string) (tournament.Tournament, error) {
	query, args, err := qb.InsertModel("tournaments", tournamentTableModel{Name: name}, "RETURNING id, name, created_at")
	if err != nil {
		return tournament.Tournament{}, fmt.Errorf("build insert tournament query: %w", err)
	}

	var row tournamentTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return tournament.Tournament{}, fmt.Errorf("insert tournament: %w", err)
	}

	return tournament.Tournament{ID: row.ID, Name: row.Name}, nil
}

func (r *TournamentRepository) GetByID(ctx context.Context, tournamentID int64) (tournament.Tournament, bool, error) {
	query, args, err := qb.Select("id", "name", "created_at").From("tournaments").
		Where(qb.Eq("id", tournamentID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return tournament.Tournament{}, false, fmt.Errorf("build select tournament query: %w", err)
	}

	var row tournamentTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return tournament.Tournament{}, false, nil
		}
		return tournament.Tournament{}, false, fmt.Errorf("select tournament id=%d: %w", tournamentID, err)
	}

	return tournament.Tournament{ID: row.ID, Name: row.Name}, true, nil
}

func (r *TournamentRepository) Delete(ctx context.Context, tournamentID int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx delete tournament: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, table := range []string{"matches", "tournament_participants"} {
		query, args, err := qb.DeleteFrom(table).Where(qb.Eq("tournament_id", tournamentID)).ToSQL()
		if err != nil {
			return fmt.Errorf("build delete %s query: %w", table, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("delete %s of tournament=%d: %w", table, tournamentID, err)
		}
	}

	query, args, err := qb.DeleteFrom("tournaments").Where(qb.Eq("id", tournamentID)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete tournament query: %w", err)
	}
	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete tournament=%d: %w", tournamentID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected delete tournament=%d: %w", tournamentID, err)
	}
	if affected == 0 {
		return tournament.ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete tournament tx: %w", err)
	}
	return nil
}

func (r *TournamentRepository) DeleteAll(ctx context.Context) error {
	return deleteTablesInOrder(ctx, r.db, "delete all tournaments", "matches", "tournament_participants", "tournaments")
}

func (r *TournamentRepository) AddParticipant(ctx context.Context, tournamentID, playerID int64) error {
	query, args, err := qb.InsertModel("tournament_participants", participantInsertModel{
		TournamentID: tournamentID,
		PlayerID:     playerID,
	}, "")
	if err != nil {
		return fmt.Errorf("build insert participant query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return tournament.ErrAlreadyRegistered
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("insert participant tournament=%d player=%d: unknown reference: %w", tournamentID, playerID, err)
		}
		return fmt.Errorf("insert participant tournament=%d player=%d: %w", tournamentID, playerID, err)
	}

	return nil
}

func (r *TournamentRepository) IsParticipant(ctx context.Context, tournamentID, playerID int64) (bool, error) {
	query, args, err := qb.Count("tournament_participants").
		Where(qb.Eq("tournament_id", tournamentID), qb.Eq("player_id", playerID)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build participant lookup query: %w", err)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, query, args...); err != nil {
		return false, fmt.Errorf("lookup participant tournament=%d player=%d: %w", tournamentID, playerID, err)
	}

	return total > 0, nil
}

func (r *TournamentRepository) CountParticipants(ctx context.Context, tournamentID int64) (int, error) {
	query, args, err := qb.Count("tournament_participants").
		Where(qb.Eq("tournament_id", tournamentID)).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count participants query: %w", err)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, query, args...); err != nil {
		return 0, fmt.Errorf("count participants tournament=%d: %w", tournamentID, err)
	}

	return total, nil
}
