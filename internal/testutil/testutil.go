// Package testutil provides a migrated in-memory database for tests.
package testutil

import (
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"wanderlist/migrations"
)

// SetupTestDB opens a fresh in-memory SQLite database with all migrations
// applied. The pool is capped at one connection so the in-memory database
// is not duplicated per connection. Closed automatically with the test.
func SetupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := sqlx.Connect("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	db.SetMaxOpenConns(1)

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("sqlite3"); err != nil {
		db.Close()
		t.Fatalf("set dialect: %v", err)
	}
	if err := goose.Up(db.DB, "."); err != nil {
		db.Close()
		t.Fatalf("apply migrations: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return db
}
