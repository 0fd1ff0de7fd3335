package instrument

import "time"

// VarianceSwap pays realized variance against a variance strike. The strike
// and notional are converted from the volatility-quoted security terms:
// varStrike = volStrike^2, varNotional = volNotional / (2 * volStrike).
type VarianceSwap struct {
	definition
	Currency            string
	SpotUnderlyingID    string
	VarStrike           float64
	VarNotional         float64
	ObservationStart    time.Time
	ObservationEnd      time.Time
	Settlement          time.Time
	AnnualizationFactor float64
	CalendarName        string
}

func (VarianceSwap) Kind() string { return KindVarianceSwap }

// VolatilitySwap pays realized volatility against a volatility strike.
type VolatilitySwap struct {
	definition
	Currency            string
	VolStrike           float64
	VolNotional         float64
	Start               time.Time
	End                 time.Time
	Settlement          time.Time
	AnnualizationFactor float64
}

func (VolatilitySwap) Kind() string { return KindVolatilitySwap }

// ZeroDeposit is a zero-coupon deposit under a per-currency convention.
// PaymentsPerYear of zero means continuous compounding.
type ZeroDeposit struct {
	definition
	Currency        string
	Start           time.Time
	Maturity        time.Time
	Rate            float64
	PaymentsPerYear int
	AccrualFactor   float64
	ConventionKey   string
}

func (ZeroDeposit) Kind() string { return KindZeroDeposit }
