package database

import (
	"path/filepath"
	"testing"
)

// openTestDB opens a fresh database in a temp directory
func openTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := Open(Config{Path: filepath.Join(t.TempDir(), "test.db")})
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}

func TestOpen_MigrationsAreIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	db, err := Open(Config{Path: path})
	if err != nil {
		t.Fatalf("first Open returned error: %v", err)
	}
	db.Close()

	// Reopening must not re-run applied migrations
	db, err = Open(Config{Path: path})
	if err != nil {
		t.Fatalf("second Open returned error: %v", err)
	}
	db.Close()
}
