// store_test.go provides a shared test database helper for all store
// integration tests. Tests are skipped if PostgreSQL is not available.
package store

import (
	"database/sql"
	"os"
	"testing"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"dealerpress/internal/database"
	"dealerpress/internal/models"
)

// testDSN returns the PostgreSQL connection string for testing.
// Uses environment variables with development defaults.
func testDSN() string {
	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "dealerpress")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "dealerpress")
	return "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test database and runs migrations.
// If the database is unavailable, the test is skipped. A cleanup
// function is registered to close the connection when the test finishes.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := testDSN()
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping integration test: cannot open DB: %v", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping integration test: DB not reachable: %v", err)
	}

	// Run migrations to ensure the schema is current.
	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	// Reset goose's global base FS so other packages are unaffected.
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// createTestDealer inserts a dealer for the test and removes it (and its
// customizations, via ON DELETE CASCADE) in t.Cleanup().
func createTestDealer(t *testing.T, db *sql.DB, slug, hostname string) *models.Dealer {
	t.Helper()

	ds := NewDealerStore(db)
	db.Exec("DELETE FROM dealers WHERE slug = $1", slug)
	d, err := ds.Create(&models.Dealer{
		Slug:     slug,
		Name:     "Test " + slug,
		Hostname: hostname,
		ThemeKey: "base",
		Locale:   "en-US",
	})
	if err != nil {
		t.Fatalf("create test dealer: %v", err)
	}
	t.Cleanup(func() {
		db.Exec("DELETE FROM dealers WHERE id = $1", d.ID)
	})
	return d
}
