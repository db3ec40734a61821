package dbtest

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure go sqlite driver
)

const sqliteDriver = "sqlite"

//nolint:gochecknoinits
func init() {
	sqlx.BindDriver(sqliteDriver, sqlx.QUESTION)
}

// NewSQLite opens an in-memory database with the given schema files applied.
// The database is closed when the test ends.
func NewSQLite(tb testing.TB, schemaFiles ...string) *sqlx.DB {
	tb.Helper()

	db, err := sqlx.Open(sqliteDriver, ":memory:")
	if err != nil {
		tb.Fatalf("sqlx.Open: %v", err)
	}

	// each connection to :memory: gets its own database
	db.SetMaxOpenConns(1)

	tb.Cleanup(func() { _ = db.Close() })

	if err := MigrateFromFile(context.Background(), db, schemaFiles...); err != nil {
		tb.Fatalf("MigrateFromFile: %v", err)
	}

	return db
}
