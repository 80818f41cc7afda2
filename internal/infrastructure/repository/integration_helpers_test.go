package repository_test

import (
	"context"
	"os"
	"testing"

	dbschema "github.com/mohammadpnp/travel-booking/internal/infrastructure/db"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// openIntegrationDB connects to TEST_DATABASE_URL, applies the schema and
// empties every table touched by the tests.
func openIntegrationDB(t *testing.T) (*gorm.DB, string) {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL is not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect db: %v", err)
	}
	if err := dbschema.Migrate(context.Background(), db); err != nil {
		t.Fatalf("failed schema setup: %v", err)
	}

	cleanupSQL := `
    DELETE FROM reviews;
    DELETE FROM bookings;
    DELETE FROM listings;
    DELETE FROM users;
    DELETE FROM import_jobs;
    DELETE FROM stg_users;
    `
	if err := db.Exec(cleanupSQL).Error; err != nil {
		t.Fatalf("failed cleanup: %v", err)
	}

	return db, dsn
}
