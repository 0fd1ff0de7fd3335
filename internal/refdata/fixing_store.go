package refdata

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/quantforge/instrdef/internal/database"
	"github.com/quantforge/instrdef/internal/domain"
	"github.com/quantforge/instrdef/internal/instrument"
	"github.com/rs/zerolog"
)

// FixingStore persists historical fixings and margin prices, one row per
// published point, keyed by the instrument's external identifier.
type FixingStore struct {
	db  *database.DB
	log zerolog.Logger
}

// NewFixingStore creates a new fixing store
func NewFixingStore(db *database.DB, log zerolog.Logger) *FixingStore {
	return &FixingStore{
		db:  db,
		log: log.With().Str("store", "fixings").Logger(),
	}
}

// Append records fixing points for an identifier. Re-publishing a point at
// an existing timestamp replaces it.
func (s *FixingStore) Append(externalID string, points *instrument.FixingSeries) error {
	if externalID == "" {
		return &domain.InvalidFieldError{Field: "externalID", Value: "(empty)"}
	}
	if points == nil || len(points.Times) != len(points.Values) {
		return &domain.InvalidFieldError{Field: "fixings", Value: "times and values differ in length"}
	}

	return database.WithTransaction(s.db.Conn(), func(tx *sql.Tx) error {
		for i, ts := range points.Times {
			_, err := tx.Exec(
				`INSERT OR REPLACE INTO fixings (external_id, ts, value) VALUES (?, ?, ?)`,
				externalID, ts.UTC().UnixMilli(), points.Values[i],
			)
			if err != nil {
				return fmt.Errorf("failed to save fixing for %s: %w", externalID, err)
			}
		}
		return nil
	})
}

// Series loads the full fixing series for an identifier, ascending by
// timestamp. An identifier with no points yields an empty series, not an
// error; the materialization layer decides whether that is fatal.
func (s *FixingStore) Series(externalID string) (*instrument.FixingSeries, error) {
	rows, err := s.db.Query(
		`SELECT ts, value FROM fixings WHERE external_id = ? ORDER BY ts`, externalID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load fixings for %s: %w", externalID, err)
	}
	defer rows.Close()

	series := &instrument.FixingSeries{}
	for rows.Next() {
		var ts int64
		var value float64
		if err := rows.Scan(&ts, &value); err != nil {
			return nil, fmt.Errorf("failed to scan fixing for %s: %w", externalID, err)
		}
		series.Times = append(series.Times, time.UnixMilli(ts).UTC())
		series.Values = append(series.Values, value)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read fixings for %s: %w", externalID, err)
	}
	return series, nil
}
