package postgres

import "time"

type playerTableModel struct {
	ID        int64     `db:"id,auto"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at,auto"`
}
