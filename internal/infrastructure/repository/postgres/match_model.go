package postgres

import "time"

type matchTableModel struct {
	ID           int64     `db:"id,auto"`
	TournamentID int64     `db:"tournament_id"`
	WinnerID     int64     `db:"winner_id"`
	LoserID      int64     `db:"loser_id"`
	CreatedAt    time.Time `db:"created_at,auto"`
}
