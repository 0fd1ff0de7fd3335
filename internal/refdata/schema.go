// Package refdata persists the engine's reference data in SQLite:
// securities, conventions, currency pairs, regions with their holiday
// calendars, and historical fixings. The stores implement the lookup
// interfaces the converters and resolvers consume.
package refdata

import (
	"fmt"

	"github.com/quantforge/instrdef/internal/database"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS securities (
		external_id   TEXT PRIMARY KEY,
		security_type TEXT NOT NULL,
		data          BLOB NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS conventions (
		key                TEXT PRIMARY KEY,
		day_count          TEXT NOT NULL,
		business_day       TEXT NOT NULL,
		pay_freq_never     INTEGER NOT NULL DEFAULT 0,
		pay_freq_months    INTEGER NOT NULL DEFAULT 0,
		spot_lag           INTEGER NOT NULL DEFAULT 0,
		eom                INTEGER NOT NULL DEFAULT 0,
		index_tenor_months INTEGER NOT NULL DEFAULT 0,
		index_tenor_days   INTEGER NOT NULL DEFAULT 0,
		region_id          TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS currency_pairs (
		base  TEXT NOT NULL,
		quote TEXT NOT NULL,
		PRIMARY KEY (base, quote)
	)`,
	`CREATE TABLE IF NOT EXISTS regions (
		id       TEXT PRIMARY KEY,
		name     TEXT NOT NULL,
		currency TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS holidays (
		region_id TEXT NOT NULL,
		day       TEXT NOT NULL,
		PRIMARY KEY (region_id, day)
	)`,
	`CREATE TABLE IF NOT EXISTS fixings (
		external_id TEXT NOT NULL,
		ts          INTEGER NOT NULL,
		value       REAL NOT NULL,
		PRIMARY KEY (external_id, ts)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_fixings_external_id ON fixings(external_id)`,
}

// Migrate creates the reference data schema. Statements are idempotent, so
// running against an existing database is safe.
func Migrate(db *database.DB) error {
	for _, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to run refdata migration: %w", err)
		}
	}
	return nil
}
