package converters

import (
	"time"

	"github.com/quantforge/instrdef/internal/calendar"
	"github.com/quantforge/instrdef/internal/conventions"
	"github.com/quantforge/instrdef/internal/domain"
)

// accrualPeriod is one generated accrual period. Payment dates are
// business-day adjusted; accrual boundaries stay unadjusted except the
// final one, which is capped at the schedule end.
type accrualPeriod struct {
	Start         time.Time
	End           time.Time
	PaymentDate   time.Time
	AccrualFactor float64
}

// buildSchedule generates the accrual periods between start and end for a
// canonical period. A zero-length period produces a single period covering
// the whole span (the canonical form of "never"). Start stubs generate the
// regular periods backward from the end so the irregular period sits at the
// front; end stubs (and no stub) generate forward.
func buildSchedule(
	start, end time.Time,
	period domain.Period,
	stub domain.StubType,
	dc domain.DayCount,
	bdc domain.BusinessDayConvention,
	cal *calendar.Calendar,
) ([]accrualPeriod, error) {
	if !start.Before(end) {
		return nil, &domain.InvalidFieldError{Field: "scheduleDates", Value: start.Format("2006-01-02") + ">=" + end.Format("2006-01-02")}
	}

	var boundaries []time.Time
	if period.IsZero() {
		boundaries = []time.Time{start, end}
	} else {
		months := period.TotalMonths()
		if months <= 0 {
			return nil, &domain.InvalidFieldError{Field: "period", Value: period.String()}
		}
		switch stub {
		case domain.StubShortStart, domain.StubLongStart:
			boundaries = rollBackward(start, end, months)
			if stub == domain.StubLongStart && len(boundaries) > 2 {
				// Merge the irregular front period into the first regular one
				if boundaries[1].Sub(boundaries[0]) < boundaries[2].Sub(boundaries[1]) {
					boundaries = append(boundaries[:1], boundaries[2:]...)
				}
			}
		default:
			boundaries = rollForward(start, end, months)
			if stub == domain.StubLongEnd && len(boundaries) > 2 {
				n := len(boundaries)
				if boundaries[n-1].Sub(boundaries[n-2]) < boundaries[n-2].Sub(boundaries[n-3]) {
					boundaries = append(boundaries[:n-2], boundaries[n-1])
				}
			}
		}
	}

	periods := make([]accrualPeriod, 0, len(boundaries)-1)
	for i := 0; i < len(boundaries)-1; i++ {
		ps, pe := boundaries[i], boundaries[i+1]
		payDate, err := cal.Adjust(pe, bdc)
		if err != nil {
			return nil, err
		}
		factor, err := conventions.YearFraction(dc, ps, pe)
		if err != nil {
			return nil, err
		}
		periods = append(periods, accrualPeriod{
			Start:         ps,
			End:           pe,
			PaymentDate:   payDate,
			AccrualFactor: factor,
		})
	}
	return periods, nil
}

// rollForward steps from start by the month count until end, capping the
// final boundary at end.
func rollForward(start, end time.Time, months int) []time.Time {
	boundaries := []time.Time{start}
	for i := 1; ; i++ {
		next := start.AddDate(0, months*i, 0)
		if !next.Before(end) {
			boundaries = append(boundaries, end)
			break
		}
		boundaries = append(boundaries, next)
	}
	return boundaries
}

// firstOfMonth returns midnight UTC on the first day of the month.
func firstOfMonth(year int, month time.Month) time.Time {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
}

// rollBackward steps from end by the month count back to start, capping the
// first boundary at start.
func rollBackward(start, end time.Time, months int) []time.Time {
	var reversed []time.Time
	reversed = append(reversed, end)
	for i := 1; ; i++ {
		prev := end.AddDate(0, -months*i, 0)
		if !prev.After(start) {
			reversed = append(reversed, start)
			break
		}
		reversed = append(reversed, prev)
	}
	boundaries := make([]time.Time, len(reversed))
	for i, t := range reversed {
		boundaries[len(reversed)-1-i] = t
	}
	return boundaries
}
