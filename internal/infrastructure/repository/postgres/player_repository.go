package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/swiss-tournament/internal/domain/player"
	qb "github.com/riskibarqy/swiss-tournament/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

var playerSelectColumns = []string{"id", "name", "created_at"}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) Create(ctx context.Context, name string) (player.Player, error) {
	query, args, err := qb.InsertModel("players", playerTableModel{Name: name}, "RETURNING id, name, created_at")
	if err != nil {
		return player.Player{}, fmt.Errorf("build insert player query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return player.Player{}, fmt.Errorf("insert player: %w", err)
	}

	return player.Player{ID: row.ID, Name: row.Name}, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID int64) (player.Player, bool, error) {
	query, args, err := qb.Select(playerSelectColumns...).From("players").
		Where(qb.Eq("id", playerID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build select player query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("select player id=%d: %w", playerID, err)
	}

	return player.Player{ID: row.ID, Name: row.Name}, true, nil
}

func (r *PlayerRepository) Count(ctx context.Context) (int, error) {
	query, args, err := qb.Count("players").ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count players query: %w", err)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, query, args...); err != nil {
		return 0, fmt.Errorf("count players: %w", err)
	}

	return total, nil
}

func (r *PlayerRepository) Delete(ctx context.Context, playerID int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx delete player: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	matchesQuery, matchesArgs, err := qb.DeleteFrom("matches").
		Where(qb.Or(qb.Eq("winner_id", playerID), qb.Eq("loser_id", playerID))).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete player matches query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, matchesQuery, matchesArgs...); err != nil {
		return fmt.Errorf("delete matches of player=%d: %w", playerID, err)
	}

	participantsQuery, participantsArgs, err := qb.DeleteFrom("tournament_participants").
		Where(qb.Eq("player_id", playerID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete player participation query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, participantsQuery, participantsArgs...); err != nil {
		return fmt.Errorf("delete participation of player=%d: %w", playerID, err)
	}

	query, args, err := qb.DeleteFrom("players").Where(qb.Eq("id", playerID)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete player query: %w", err)
	}
	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete player=%d: %w", playerID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected delete player=%d: %w", playerID, err)
	}
	if affected == 0 {
		return player.ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete player tx: %w", err)
	}
	return nil
}

func (r *PlayerRepository) DeleteAll(ctx context.Context) error {
	return deleteTablesInOrder(ctx, r.db, "delete all players", "matches", "tournament_participants", "players")
}

// deleteTablesInOrder empties the given tables inside one transaction,
// children first.
func deleteTablesInOrder(ctx context.Context, db *sqlx.DB, op string, tables ...string) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx %s: %w", op, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, table := range tables {
		query, args, err := qb.DeleteFrom(table).ToSQL()
		if err != nil {
			return fmt.Errorf("build %s query: %w", op, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%s table=%s: %w", op, table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit %s tx: %w", op, err)
	}
	return nil
}
