package postgres

import "time"

type tournamentTableModel struct {
	ID        int64     `db:"id,auto"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at,auto"`
}

type participantInsertModel struct {
	TournamentID int64 `db:"tournament_id"`
	PlayerID     int64 `db:"player_id"`
}
