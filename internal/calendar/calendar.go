// Package calendar provides business-day calendars built from holiday
// reference data, including union calendars over composite region
// identifiers.
package calendar

import (
	"sort"
	"time"

	"github.com/quantforge/instrdef/internal/domain"
)

// Calendar is an immutable business-day calendar: weekends plus a holiday
// set. Dates are compared by civil date only.
type Calendar struct {
	name     string
	holidays map[string]struct{} // keyed "2006-01-02"
}

const dateKey = "2006-01-02"

// New builds a calendar from a holiday list.
func New(name string, holidays []time.Time) *Calendar {
	set := make(map[string]struct{}, len(holidays))
	for _, h := range holidays {
		set[h.Format(dateKey)] = struct{}{}
	}
	return &Calendar{name: name, holidays: set}
}

// Union merges calendars into one whose holiday set is the union of all
// inputs. Merging is order-independent.
func Union(name string, cals ...*Calendar) *Calendar {
	set := make(map[string]struct{})
	for _, c := range cals {
		for k := range c.holidays {
			set[k] = struct{}{}
		}
	}
	return &Calendar{name: name, holidays: set}
}

// Name returns the calendar name.
func (c *Calendar) Name() string {
	return c.name
}

// Holidays returns the holiday dates in ascending order.
func (c *Calendar) Holidays() []time.Time {
	out := make([]time.Time, 0, len(c.holidays))
	for k := range c.holidays {
		t, err := time.Parse(dateKey, k)
		if err != nil {
			continue
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// IsBusinessDay checks weekends and the holiday set.
func (c *Calendar) IsBusinessDay(t time.Time) bool {
	if t.Weekday() == time.Saturday || t.Weekday() == time.Sunday {
		return false
	}
	_, holiday := c.holidays[t.Format(dateKey)]
	return !holiday
}

// Adjust rolls a date onto a business day under the given convention.
func (c *Calendar) Adjust(t time.Time, bdc domain.BusinessDayConvention) (time.Time, error) {
	switch bdc {
	case domain.NoAdjust:
		return t, nil

	case domain.Following:
		for !c.IsBusinessDay(t) {
			t = t.AddDate(0, 0, 1)
		}
		return t, nil

	case domain.Preceding:
		for !c.IsBusinessDay(t) {
			t = t.AddDate(0, 0, -1)
		}
		return t, nil

	case domain.ModifiedFollowing:
		origMonth := t.Month()
		adj := t
		for !c.IsBusinessDay(adj) {
			adj = adj.AddDate(0, 0, 1)
		}
		if adj.Month() != origMonth {
			adj = t
			for !c.IsBusinessDay(adj) {
				adj = adj.AddDate(0, 0, -1)
			}
		}
		return adj, nil

	default:
		return time.Time{}, &domain.InvalidFieldError{Field: "businessDayConvention", Value: string(bdc)}
	}
}

// AddBusinessDays advances n business days (n can be negative).
func (c *Calendar) AddBusinessDays(t time.Time, n int) time.Time {
	step := 1
	if n < 0 {
		step = -1
	}
	for n != 0 {
		t = t.AddDate(0, 0, step)
		if c.IsBusinessDay(t) {
			n -= step
		}
	}
	return t
}
