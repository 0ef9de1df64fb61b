package database

import (
	"database/sql"
	"path/filepath"
	"testing"
)

func tempDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("new db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrateIsRepeatable(t *testing.T) {
	db := tempDB(t)
	if err := Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("second migrate: %v", err)
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	db := tempDB(t)
	if err := Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	// Seeding twice simulates an application restart.
	if err := Seed(db); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := Seed(db); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM books").Scan(&count); err != nil {
		t.Fatalf("count books: %v", err)
	}
	if count != 3 {
		t.Fatalf("want 3 seed books, got %d", count)
	}
}

func TestSeedSkipsNonEmptyCatalogue(t *testing.T) {
	db := tempDB(t)
	if err := Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if _, err := db.Exec("INSERT INTO books (title, author) VALUES ('Existing', 'Author')"); err != nil {
		t.Fatalf("insert: %v", err)
	}

	if err := Seed(db); err != nil {
		t.Fatalf("seed: %v", err)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM books").Scan(&count); err != nil {
		t.Fatalf("count books: %v", err)
	}
	if count != 1 {
		t.Fatalf("seed should not touch a non-empty catalogue, got %d books", count)
	}
}

func TestForeignKeysEnforced(t *testing.T) {
	db := tempDB(t)
	if err := Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	_, err := db.Exec("INSERT INTO borrows (reference, user_id, book_id, borrow_date) VALUES ('r1', 999, 999, '2024-01-01')")
	if err == nil {
		t.Fatalf("expected foreign key violation for dangling references")
	}
}
