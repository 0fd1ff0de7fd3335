package refdata

import (
	"context"
	"fmt"
	"time"

	"github.com/quantforge/instrdef/internal/config"
	"github.com/quantforge/instrdef/internal/database"
	"github.com/rs/zerolog"
)

// Stores bundles the reference data stores over their two databases:
// read-mostly reference data and the append-heavy fixings history.
type Stores struct {
	Securities  *SecurityStore
	Conventions *ConventionStore
	Calendars   *CalendarStore
	Fixings     *FixingStore

	refdataDB *database.DB
	fixingsDB *database.DB
}

// Open opens the configured databases, migrates them and builds the stores.
func Open(cfg *config.Config, log zerolog.Logger) (*Stores, error) {
	refdataDB, err := database.New(database.Config{
		Path:    cfg.RefDataDBPath,
		Profile: database.ProfileReference,
		Name:    "refdata",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open refdata database: %w", err)
	}
	if err := Migrate(refdataDB); err != nil {
		_ = refdataDB.Close()
		return nil, err
	}

	fixingsDB, err := database.New(database.Config{
		Path:    cfg.FixingsDBPath,
		Profile: database.ProfileTimeSeries,
		Name:    "fixings",
	})
	if err != nil {
		_ = refdataDB.Close()
		return nil, fmt.Errorf("failed to open fixings database: %w", err)
	}
	if err := Migrate(fixingsDB); err != nil {
		_ = refdataDB.Close()
		_ = fixingsDB.Close()
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	for _, db := range []*database.DB{refdataDB, fixingsDB} {
		if err := db.HealthCheck(ctx); err != nil {
			_ = refdataDB.Close()
			_ = fixingsDB.Close()
			return nil, fmt.Errorf("database health check failed: %w", err)
		}
	}

	return &Stores{
		Securities:  NewSecurityStore(refdataDB, log),
		Conventions: NewConventionStore(refdataDB, log),
		Calendars:   NewCalendarStore(refdataDB, log),
		Fixings:     NewFixingStore(fixingsDB, log),
		refdataDB:   refdataDB,
		fixingsDB:   fixingsDB,
	}, nil
}

// Close closes both databases.
func (s *Stores) Close() error {
	var firstErr error
	if err := s.refdataDB.Close(); err != nil {
		firstErr = err
	}
	if err := s.fixingsDB.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}
