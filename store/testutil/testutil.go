// Package testutil provides SQLite fixtures for store tests.
package testutil

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

// SetupTestDB creates an in-memory SQLite database with the cities table
// used across store tests.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	createTableSQL := `
	CREATE TABLE cities (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		city TEXT NOT NULL,
		country TEXT,
		population INTEGER
	)`

	if _, err := db.Exec(createTableSQL); err != nil {
		t.Fatalf("Failed to create test table: %v", err)
	}

	return db
}

// InsertCity inserts one row into the cities table. A nil country is stored
// as NULL.
func InsertCity(t *testing.T, db *sql.DB, city string, country *string, population int) {
	t.Helper()

	_, err := db.Exec(
		"INSERT INTO cities (city, country, population) VALUES (?, ?, ?)",
		city, country, population,
	)
	if err != nil {
		t.Fatalf("Failed to insert fixture %s: %v", city, err)
	}
}

// Country is a convenience for InsertCity's nullable country column.
func Country(name string) *string {
	return &name
}
