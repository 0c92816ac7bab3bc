package testutil

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"taskboard-service/internal/database"
	"taskboard-service/migrations"
)

// SetupTestDB opens a migrated SQLite store in a per-test temp dir.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "taskboard.db")
	db, err := database.Open(context.Background(), "sqlite", path, 1)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := migrations.AutoMigrate(0, db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}
