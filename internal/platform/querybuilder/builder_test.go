package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("player_id", "name", "wins", "matches").
		From("matches_summary").
		Where(Eq("tournament_id", int64(7))).
		OrderBy("wins DESC", "player_id").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT player_id, name, wins, matches FROM matches_summary WHERE tournament_id = $1 ORDER BY wins DESC, player_id LIMIT 10"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != int64(7) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestCountBuilder(t *testing.T) {
	query, args, err := Count("tournament_participants").
		Where(Eq("tournament_id", int64(3))).
		ToSQL()
	if err != nil {
		t.Fatalf("build count query: %v", err)
	}

	wantQuery := "SELECT COUNT(*) FROM tournament_participants WHERE tournament_id = $1"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("players").
		Columns("name").
		Values("Bruno Walton").
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO players (name) VALUES ($1) RETURNING id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != "Bruno Walton" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder_RowWidthMismatch(t *testing.T) {
	_, _, err := InsertInto("tournament_participants").
		Columns("tournament_id", "player_id").
		Values(int64(1)).
		ToSQL()
	if err == nil {
		t.Fatalf("expected error for short row")
	}
}

func TestDeleteBuilder(t *testing.T) {
	query, args, err := DeleteFrom("matches").
		Where(Or(Eq("winner_id", int64(4)), Eq("loser_id", int64(4)))).
		ToSQL()
	if err != nil {
		t.Fatalf("build delete query: %v", err)
	}

	wantQuery := "DELETE FROM matches WHERE (winner_id = $1 OR loser_id = $2)"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != int64(4) || args[1] != int64(4) {
		t.Fatalf("unexpected args: %+v", args)
	}

	query, args, err = DeleteFrom("players").ToSQL()
	if err != nil {
		t.Fatalf("build delete-all query: %v", err)
	}
	if query != "DELETE FROM players" || len(args) != 0 {
		t.Fatalf("unexpected delete-all query: %s %+v", query, args)
	}
}

func TestSelectBuilder_AndConditions(t *testing.T) {
	query, args, err := Select("1").
		From("tournament_participants").
		Where(Eq("tournament_id", int64(2)), Eq("player_id", int64(9))).
		ToSQL()
	if err != nil {
		t.Fatalf("build query: %v", err)
	}

	wantQuery := "SELECT 1 FROM tournament_participants WHERE tournament_id = $1 AND player_id = $2"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertModel_SkipsAutoColumns(t *testing.T) {
	type row struct {
		ID           int64  `db:"id,auto"`
		TournamentID int64  `db:"tournament_id"`
		WinnerID     int64  `db:"winner_id"`
		LoserID      int64  `db:"loser_id"`
		note         string `db:"note"`
	}

	query, args, err := InsertModel("matches", row{ID: 99, TournamentID: 1, WinnerID: 2, LoserID: 3, note: "x"}, "RETURNING id")
	if err != nil {
		t.Fatalf("build insert model: %v", err)
	}

	wantQuery := "INSERT INTO matches (tournament_id, winner_id, loser_id) VALUES ($1, $2, $3) RETURNING id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[0] != int64(1) || args[2] != int64(3) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertModel_RejectsNonStruct(t *testing.T) {
	if _, _, err := InsertModel("matches", 5, ""); err == nil {
		t.Fatalf("expected error for non-struct model")
	}
	var nilRow *struct{}
	if _, _, err := InsertModel("matches", nilRow, ""); err == nil {
		t.Fatalf("expected error for nil model")
	}
}
