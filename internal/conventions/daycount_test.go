package conventions

import (
	"errors"
	"testing"
	"time"

	"github.com/quantforge/instrdef/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestYearFraction_Act360(t *testing.T) {
	// 90 actual days over a 360 basis
	yf, err := YearFraction(domain.DayCountAct360, date(2024, time.January, 1), date(2024, time.March, 31))
	require.NoError(t, err)
	assert.InDelta(t, 90.0/360.0, yf, 1e-12)
}

func TestYearFraction_Act365Fixed(t *testing.T) {
	yf, err := YearFraction(domain.DayCountAct365F, date(2023, time.January, 1), date(2024, time.January, 1))
	require.NoError(t, err)
	assert.InDelta(t, 365.0/365.0, yf, 1e-12)
}

func TestYearFraction_ActAct_LeapYearSplit(t *testing.T) {
	// Six months of 2023 (365 basis) plus six months of 2024 (366 basis)
	yf, err := YearFraction(domain.DayCountActAct, date(2023, time.July, 1), date(2024, time.July, 1))
	require.NoError(t, err)

	days2023 := date(2024, time.January, 1).Sub(date(2023, time.July, 1)).Hours() / 24
	days2024 := date(2024, time.July, 1).Sub(date(2024, time.January, 1)).Hours() / 24
	expected := days2023/365.0 + days2024/366.0
	assert.InDelta(t, expected, yf, 1e-12)
}

func TestYearFraction_Thirty360_CapsThirtyFirst(t *testing.T) {
	// Both month-end 31sts count as 30
	yf, err := YearFraction(domain.DayCount30U360, date(2024, time.January, 31), date(2024, time.July, 31))
	require.NoError(t, err)
	assert.InDelta(t, 0.5, yf, 1e-12)
}

func TestYearFraction_SameDate(t *testing.T) {
	yf, err := YearFraction(domain.DayCountAct360, date(2024, time.March, 15), date(2024, time.March, 15))
	require.NoError(t, err)
	assert.Zero(t, yf)
}

func TestYearFraction_UnknownConvention(t *testing.T) {
	_, err := YearFraction(domain.DayCount("BUS/252"), date(2024, time.January, 1), date(2024, time.June, 1))
	require.Error(t, err)

	var invalid *domain.InvalidFieldError
	assert.True(t, errors.As(err, &invalid))
}
