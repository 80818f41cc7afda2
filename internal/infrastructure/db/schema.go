package db

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Statements creates the relational schema. Uniqueness, range checks and
// cascading foreign keys live here so they hold under concurrent writers;
// repositories additionally delete dependents explicitly.
var Statements = []string{
	`CREATE TABLE IF NOT EXISTS users (
      id UUID PRIMARY KEY,
      first_name VARCHAR(100) NOT NULL,
      last_name VARCHAR(100) NOT NULL,
      email VARCHAR(100) NOT NULL,
      password_hash VARCHAR(255) NOT NULL DEFAULT '',
      phone_number VARCHAR(15) NOT NULL,
      created_at TIMESTAMPTZ NOT NULL,
      updated_at TIMESTAMPTZ NOT NULL,
      CONSTRAINT users_email_key UNIQUE (email),
      CONSTRAINT users_phone_number_check CHECK (phone_number ~ '^[0-9]{8,}$')
    )`,
	`CREATE TABLE IF NOT EXISTS listings (
      id UUID PRIMARY KEY,
      host_id UUID NOT NULL,
      name VARCHAR(100) NOT NULL,
      description TEXT NOT NULL DEFAULT '',
      location VARCHAR(255) NOT NULL,
      price_per_night DOUBLE PRECISION NOT NULL DEFAULT 0,
      created_at TIMESTAMPTZ NOT NULL,
      updated_at TIMESTAMPTZ NOT NULL,
      CONSTRAINT listings_host_id_fkey FOREIGN KEY (host_id) REFERENCES users(id) ON DELETE CASCADE,
      CONSTRAINT listings_price_per_night_check CHECK (price_per_night >= 0)
    )`,
	`CREATE INDEX IF NOT EXISTS listings_host_id_idx ON listings (host_id)`,
	`CREATE INDEX IF NOT EXISTS listings_name_idx ON listings (name)`,
	`CREATE TABLE IF NOT EXISTS bookings (
      id UUID PRIMARY KEY,
      listing_id UUID NOT NULL,
      user_id UUID NOT NULL,
      start_date DATE NOT NULL,
      end_date DATE NOT NULL,
      total_price DOUBLE PRECISION NOT NULL DEFAULT 0,
      status VARCHAR(20) NOT NULL DEFAULT 'pending',
      created_at TIMESTAMPTZ NOT NULL,
      updated_at TIMESTAMPTZ NOT NULL,
      CONSTRAINT bookings_listing_id_fkey FOREIGN KEY (listing_id) REFERENCES listings(id) ON DELETE CASCADE,
      CONSTRAINT bookings_user_id_fkey FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE,
      CONSTRAINT bookings_status_check CHECK (status IN ('pending', 'confirmed', 'cancelled')),
      CONSTRAINT bookings_total_price_check CHECK (total_price >= 0)
    )`,
	`CREATE INDEX IF NOT EXISTS bookings_listing_id_start_date_idx ON bookings (listing_id, start_date)`,
	`CREATE INDEX IF NOT EXISTS bookings_user_id_idx ON bookings (user_id)`,
	`CREATE TABLE IF NOT EXISTS reviews (
      id UUID PRIMARY KEY,
      listing_id UUID NOT NULL,
      user_id UUID NOT NULL,
      rating INT NOT NULL,
      comment TEXT NOT NULL,
      created_at TIMESTAMPTZ NOT NULL,
      updated_at TIMESTAMPTZ NOT NULL,
      CONSTRAINT reviews_listing_id_fkey FOREIGN KEY (listing_id) REFERENCES listings(id) ON DELETE CASCADE,
      CONSTRAINT reviews_user_id_fkey FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE,
      CONSTRAINT reviews_rating_check CHECK (rating BETWEEN 1 AND 5)
    )`,
	`CREATE INDEX IF NOT EXISTS reviews_listing_id_created_at_idx ON reviews (listing_id, created_at)`,
	`CREATE INDEX IF NOT EXISTS reviews_user_id_idx ON reviews (user_id)`,
	`CREATE TABLE IF NOT EXISTS import_jobs (
      id UUID PRIMARY KEY,
      source_path TEXT NOT NULL,
      status TEXT NOT NULL,
      progress_processed BIGINT NOT NULL DEFAULT 0,
      imported_count BIGINT NOT NULL DEFAULT 0,
      updated_count BIGINT NOT NULL DEFAULT 0,
      skipped_count BIGINT NOT NULL DEFAULT 0,
      failed_count BIGINT NOT NULL DEFAULT 0,
      attempts INT NOT NULL DEFAULT 0,
      max_attempts INT NOT NULL DEFAULT 5,
      error_message TEXT,
      failures JSONB,
      heartbeat_at TIMESTAMPTZ,
      lease_expires_at TIMESTAMPTZ,
      started_at TIMESTAMPTZ,
      finished_at TIMESTAMPTZ,
      created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
      updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
      CHECK (status IN ('queued','running','succeeded','failed'))
    )`,
	`CREATE TABLE IF NOT EXISTS stg_users (
      job_id UUID NOT NULL,
      row_index BIGINT NOT NULL,
      id UUID NOT NULL,
      first_name VARCHAR(100) NOT NULL,
      last_name VARCHAR(100) NOT NULL,
      email VARCHAR(100) NOT NULL,
      phone_number VARCHAR(15) NOT NULL
    )`,
	`CREATE INDEX IF NOT EXISTS stg_users_job_id_idx ON stg_users (job_id)`,
}

func Migrate(ctx context.Context, db *gorm.DB) error {
	for i, stmt := range Statements {
		if err := db.WithContext(ctx).Exec(stmt).Error; err != nil {
			return fmt.Errorf("migrate statement %d: %w", i, err)
		}
	}
	return nil
}
