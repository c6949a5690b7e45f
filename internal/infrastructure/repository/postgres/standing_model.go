package postgres

type matchSummaryViewModel struct {
	TournamentID int64  `db:"tournament_id"`
	PlayerID     int64  `db:"player_id"`
	Name         string `db:"name"`
	Wins         int    `db:"wins"`
	Matches      int    `db:"matches"`
}
