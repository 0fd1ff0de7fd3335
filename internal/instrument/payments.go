package instrument

import "time"

// Cash is a resolved cash deposit: notional accruing at a fixed rate over a
// day-count fraction computed against the security's region calendar.
type Cash struct {
	definition
	Currency      string
	Start         time.Time
	End           time.Time
	Notional      float64
	Rate          float64
	AccrualFactor float64
	CalendarName  string
}

func (Cash) Kind() string { return KindCash }

// PaymentFixed is a single known cash flow. Negative amounts are payments
// out, positive amounts are receipts.
type PaymentFixed struct {
	definition
	Currency string
	Date     time.Time
	Amount   float64
}

func (PaymentFixed) Kind() string { return KindPaymentFixed }

// Annuity is an ordered sequence of fixed payments.
type Annuity struct {
	definition
	Payments []PaymentFixed
}

func (Annuity) Kind() string { return KindAnnuity }
