// Package conventions implements day-count arithmetic, frequency
// normalization and convention resolution over externally supplied reference
// data.
package conventions

import (
	"time"

	"github.com/quantforge/instrdef/internal/domain"
)

// YearFraction computes the day-count fraction between two dates under the
// named convention. An unrecognized convention is an InvalidFieldError, not a
// silent ACT/365 fallback: a wrong accrual basis corrupts every number
// downstream.
func YearFraction(dc domain.DayCount, start, end time.Time) (float64, error) {
	switch dc {
	case domain.DayCountAct360:
		return daysBetween(start, end) / 360.0, nil

	case domain.DayCountAct365F:
		return daysBetween(start, end) / 365.0, nil

	case domain.DayCountActAct:
		// ACT/ACT ISDA: split the span at year boundaries, leap years count 366
		if !start.Before(end) {
			return 0, nil
		}
		frac := 0.0
		y1, y2 := start.Year(), end.Year()
		if y1 == y2 {
			return daysBetween(start, end) / yearBasis(y1), nil
		}
		firstYearEnd := time.Date(y1+1, 1, 1, 0, 0, 0, 0, time.UTC)
		frac += daysBetween(start, firstYearEnd) / yearBasis(y1)
		frac += float64(y2 - y1 - 1)
		lastYearStart := time.Date(y2, 1, 1, 0, 0, 0, 0, time.UTC)
		frac += daysBetween(lastYearStart, end) / yearBasis(y2)
		return frac, nil

	case domain.DayCount30U360, domain.DayCount30E360:
		// 30E/360 Eurobond basis: day counts capped at 30
		d1 := start.Day()
		if d1 > 30 {
			d1 = 30
		}
		d2 := end.Day()
		if d2 > 30 {
			d2 = 30
		}
		y1, m1 := start.Year(), int(start.Month())
		y2, m2 := end.Year(), int(end.Month())
		return float64(360*(y2-y1)+30*(m2-m1)+(d2-d1)) / 360.0, nil

	default:
		return 0, &domain.InvalidFieldError{Field: "dayCount", Value: string(dc)}
	}
}

func daysBetween(start, end time.Time) float64 {
	return end.Sub(start).Hours() / 24
}

func yearBasis(year int) float64 {
	if isLeapYear(year) {
		return 366
	}
	return 365
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
