package refdata

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/quantforge/instrdef/internal/database"
	"github.com/quantforge/instrdef/internal/domain"
	"github.com/rs/zerolog"
)

const holidayDateLayout = "2006-01-02"

// CalendarStore persists regions and their holiday dates. It implements both
// lookup sides the calendar resolver needs.
type CalendarStore struct {
	db  *database.DB
	log zerolog.Logger
}

// NewCalendarStore creates a new calendar store
func NewCalendarStore(db *database.DB, log zerolog.Logger) *CalendarStore {
	return &CalendarStore{
		db:  db,
		log: log.With().Str("store", "calendars").Logger(),
	}
}

// SaveRegion inserts or replaces a region.
func (s *CalendarStore) SaveRegion(region domain.Region) error {
	if region.ID == "" {
		return &domain.InvalidFieldError{Field: "regionID", Value: "(empty)"}
	}
	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO regions (id, name, currency) VALUES (?, ?, ?)`,
		region.ID, region.Name, region.Currency,
	)
	if err != nil {
		return fmt.Errorf("failed to save region %s: %w", region.ID, err)
	}
	return nil
}

// Region loads a single region. Unknown identifiers are a
// ReferenceNotFoundError.
func (s *CalendarStore) Region(id string) (*domain.Region, error) {
	var region domain.Region
	err := s.db.QueryRow(
		`SELECT id, name, currency FROM regions WHERE id = ?`, id,
	).Scan(&region.ID, &region.Name, &region.Currency)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.ReferenceNotFoundError{ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load region %s: %w", id, err)
	}
	return &region, nil
}

// SaveHolidays records holiday dates for a region. Duplicate dates are
// ignored.
func (s *CalendarStore) SaveHolidays(regionID string, days []time.Time) error {
	if regionID == "" {
		return &domain.InvalidFieldError{Field: "regionID", Value: "(empty)"}
	}
	return database.WithTransaction(s.db.Conn(), func(tx *sql.Tx) error {
		for _, day := range days {
			_, err := tx.Exec(
				`INSERT OR IGNORE INTO holidays (region_id, day) VALUES (?, ?)`,
				regionID, day.UTC().Format(holidayDateLayout),
			)
			if err != nil {
				return fmt.Errorf("failed to save holiday for %s: %w", regionID, err)
			}
		}
		return nil
	})
}

// Holidays returns the holiday dates recorded for a region, midnight UTC,
// ascending. A region with no recorded holidays yields an empty slice.
func (s *CalendarStore) Holidays(regionID string) ([]time.Time, error) {
	rows, err := s.db.Query(
		`SELECT day FROM holidays WHERE region_id = ? ORDER BY day`, regionID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load holidays for %s: %w", regionID, err)
	}
	defer rows.Close()

	var days []time.Time
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("failed to scan holiday for %s: %w", regionID, err)
		}
		day, err := time.ParseInLocation(holidayDateLayout, raw, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("failed to parse holiday %q for %s: %w", raw, regionID, err)
		}
		days = append(days, day)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read holidays for %s: %w", regionID, err)
	}
	return days, nil
}
