package app

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/swiss-tournament/internal/config"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
)

func openPostgres(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	dbName := DBNameFromURL(cfg.DBURL)
	db, err := otelsqlx.Open("postgres", NormalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary),
		otelsql.WithDBName(dbName),
		otelsql.WithQueryFormatter(traceQuery),
	)
	if err != nil {
		return nil, errors.Wrap(err, "open postgres")
	}
	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxOpenConns)
	otelsql.ReportDBStatsMetrics(db.DB, otelsql.WithDBName(dbName))

	pingCtx, cancel := context.WithTimeout(ctx, cfg.DBPingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, errors.Wrapf(err, "ping postgres %q", dbName)
	}

	return db, nil
}

const maxTracedQueryLength = 512

// traceQuery puts a statement on one line and caps its length for the
// db.statement span attribute.
func traceQuery(query string) string {
	query = strings.Join(strings.Fields(query), " ")
	if len(query) > maxTracedQueryLength {
		query = query[:maxTracedQueryLength] + "..."
	}
	return query
}
