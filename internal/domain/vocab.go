package domain

import "fmt"

// OptionType distinguishes calls from puts.
type OptionType string

const (
	Call OptionType = "CALL"
	Put  OptionType = "PUT"
)

// Validate returns an InvalidFieldError for anything other than call or put.
func (o OptionType) Validate() error {
	switch o {
	case Call, Put:
		return nil
	default:
		return &InvalidFieldError{Field: "optionType", Value: string(o)}
	}
}

// IsCall is a convenience for the common branch.
func (o OptionType) IsCall() bool {
	return o == Call
}

// ExerciseType is the option exercise style.
type ExerciseType string

const (
	European ExerciseType = "EUROPEAN"
	American ExerciseType = "AMERICAN"
)

// Validate returns an InvalidFieldError for unrecognized exercise styles.
func (e ExerciseType) Validate() error {
	switch e {
	case European, American:
		return nil
	default:
		return &InvalidFieldError{Field: "exerciseType", Value: string(e)}
	}
}

// PayReceive is the direction of a cash flow from the holder's perspective.
type PayReceive string

const (
	Pay     PayReceive = "PAY"
	Receive PayReceive = "RECEIVE"
)

// Sign returns -1 for pay and +1 for receive.
func (p PayReceive) Sign() (float64, error) {
	switch p {
	case Pay:
		return -1, nil
	case Receive:
		return 1, nil
	default:
		return 0, &InvalidFieldError{Field: "payReceive", Value: string(p)}
	}
}

// DayCount names a day-count convention. The year-fraction arithmetic lives in
// the conventions package; securities only carry the name.
type DayCount string

const (
	DayCountAct360  DayCount = "ACT/360"
	DayCountAct365F DayCount = "ACT/365F"
	DayCountActAct  DayCount = "ACT/ACT"
	DayCount30U360  DayCount = "30/360"
	DayCount30E360  DayCount = "30E/360"
)

// BusinessDayConvention names a date-rolling rule.
type BusinessDayConvention string

const (
	Following         BusinessDayConvention = "FOLLOWING"
	ModifiedFollowing BusinessDayConvention = "MODIFIED_FOLLOWING"
	Preceding         BusinessDayConvention = "PRECEDING"
	NoAdjust          BusinessDayConvention = "NONE"
)

// StubType describes how a schedule handles a period that does not divide
// evenly into the accrual span.
type StubType string

const (
	StubNone       StubType = "NONE"
	StubShortStart StubType = "SHORT_START"
	StubLongStart  StubType = "LONG_START"
	StubShortEnd   StubType = "SHORT_END"
	StubLongEnd    StubType = "LONG_END"
)

// Period is a calendar period in years, months and days. Canonical periods
// produced by the frequency normalizer are month-based.
type Period struct {
	Years  int
	Months int
	Days   int
}

// IsZero reports a zero-length period (the canonical form of "never").
func (p Period) IsZero() bool {
	return p.Years == 0 && p.Months == 0 && p.Days == 0
}

// TotalMonths collapses years into months. Day components do not contribute.
func (p Period) TotalMonths() int {
	return p.Years*12 + p.Months
}

func (p Period) String() string {
	return fmt.Sprintf("P%dY%dM%dD", p.Years, p.Months, p.Days)
}

// Frequency is either the named "never" frequency or a periodic one. The
// zero value is an unset frequency, which no conversion rule accepts.
type Frequency struct {
	Never  bool
	Period Period
}

// FrequencyNever is the named non-periodic frequency.
func FrequencyNever() Frequency {
	return Frequency{Never: true}
}

// FrequencyOfMonths builds a periodic frequency from a month count.
func FrequencyOfMonths(months int) Frequency {
	return Frequency{Period: Period{Months: months}}
}

// FrequencyOfYears builds a periodic frequency from a year count.
func FrequencyOfYears(years int) Frequency {
	return Frequency{Period: Period{Years: years}}
}

// Compounding distinguishes the zero-coupon deposit flavours.
type Compounding string

const (
	CompoundingContinuous Compounding = "CONTINUOUS"
	CompoundingPeriodic   Compounding = "PERIODIC"
	CompoundingSimple     Compounding = "SIMPLE"
)

// Region is resolved reference data for a region identifier.
type Region struct {
	ID       string
	Name     string
	Currency string
}

// CurrencyPair is the market base/quote ordering convention for two
// currencies. FX option conversion needs it to orient the definition.
type CurrencyPair struct {
	Base  string
	Quote string
}

// Contains reports whether both currencies belong to the pair.
func (p CurrencyPair) Contains(ccy1, ccy2 string) bool {
	return (p.Base == ccy1 && p.Quote == ccy2) || (p.Base == ccy2 && p.Quote == ccy1)
}
