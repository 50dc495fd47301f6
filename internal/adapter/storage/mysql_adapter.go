// Package storage holds the MySQL entity stores and the Redis report cache.
//
// Monetary amounts are rounded to 2 decimal places, half away from zero,
// before they reach the DECIMAL(10,2) column. MySQL applies the same rounding
// to DECIMAL inserts, so the value returned from a write and the value read
// back later always agree.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

const moneyScale = 2

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS transactions (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		customer_name VARCHAR(255) NOT NULL,
		loan_amount DECIMAL(10,2) NOT NULL,
		created_at DATETIME(6) NOT NULL,
		updated_at DATETIME(6) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS inventory_items (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		item_name VARCHAR(255) NOT NULL,
		quantity BIGINT NOT NULL,
		created_at DATETIME(6) NOT NULL,
		updated_at DATETIME(6) NOT NULL
	)`,
}

// Migrate creates the entity tables when they do not exist yet.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range migrations {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// now returns the timestamp written into created_at/updated_at. Truncated to
// microseconds so the Go value matches the DATETIME(6) column exactly.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
