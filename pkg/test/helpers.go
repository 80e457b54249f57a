// Package test holds shared helpers for the repository and handler
// suites. Everything runs against an in-memory sqlite database.
package test

import (
	"database/sql"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"todoapi/internal/adapter/database/sqlite"

	_ "github.com/mattn/go-sqlite3"
)

// findProjectRoot walks up from this file until it sees go.mod, so the
// suites can locate db/migrations regardless of the package under test.
func findProjectRoot() string {
	_, filename, _, _ := runtime.Caller(0)
	dir := filepath.Dir(filename)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)

		if parent == dir {
			break
		}

		dir = parent
	}

	if wd, err := os.Getwd(); err == nil {
		return wd
	}

	return ""
}

func InitTestDB(t *testing.T) *sqlite.DB {
	t.Helper()

	sqlDB, err := sql.Open("sqlite3", ":memory:")

	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if _, err := sqlDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	migrationsPath := filepath.Join(findProjectRoot(), "db", "migrations")

	if err := sqlite.RunMigrations(sqlDB, migrationsPath); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return sqlite.New(sqlDB)
}

// CleanDB wipes data between tests. Todos go first to respect the
// foreign key on user_id.
func CleanDB(t *testing.T, db *sqlite.DB) {
	t.Helper()

	for _, table := range []string{"todos", "users"} {
		if _, err := db.Exec("DELETE FROM " + table); err != nil {
			t.Fatalf("Failed to clean table %s: %v", table, err)
		}
	}
}
