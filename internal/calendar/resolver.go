package calendar

import (
	"strings"
	"time"

	"github.com/quantforge/instrdef/internal/domain"
	"github.com/rs/zerolog"
)

// RegionLookup resolves a single region identifier. Implementations return
// ReferenceNotFoundError for unknown regions.
type RegionLookup interface {
	Region(id string) (*domain.Region, error)
}

// HolidayLookup supplies the holiday dates for a single region.
type HolidayLookup interface {
	Holidays(regionID string) ([]time.Time, error)
}

// Resolver builds business-day calendars from region identifiers. An
// identifier may name several regions joined by '+' or ',' ("GB+US"), in
// which case the result is the union of all named regions' holiday
// calendars. Resolution is order-independent and duplicates are harmless.
type Resolver struct {
	regions  RegionLookup
	holidays HolidayLookup
	log      zerolog.Logger
}

// NewResolver creates a new calendar resolver
func NewResolver(regions RegionLookup, holidays HolidayLookup, log zerolog.Logger) *Resolver {
	return &Resolver{
		regions:  regions,
		holidays: holidays,
		log:      log.With().Str("resolver", "calendar").Logger(),
	}
}

// Resolve builds the calendar for a possibly composite region identifier.
// Any unresolvable member region fails the whole resolution.
func (r *Resolver) Resolve(regionID string) (*Calendar, error) {
	ids := SplitRegionID(regionID)
	if len(ids) == 0 {
		return nil, &domain.InvalidFieldError{Field: "regionID", Value: regionID}
	}

	cals := make([]*Calendar, 0, len(ids))
	for _, id := range ids {
		if _, err := r.regions.Region(id); err != nil {
			return nil, err
		}
		holidays, err := r.holidays.Holidays(id)
		if err != nil {
			return nil, err
		}
		cals = append(cals, New(id, holidays))
	}

	if len(cals) == 1 {
		return cals[0], nil
	}
	return Union(regionID, cals...), nil
}

// SplitRegionID splits a composite region identifier on '+' and ','. Empty
// members and surrounding whitespace are dropped, duplicates removed.
func SplitRegionID(regionID string) []string {
	parts := strings.FieldsFunc(regionID, func(r rune) bool {
		return r == '+' || r == ','
	})
	seen := make(map[string]struct{}, len(parts))
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
