package instrument

import (
	"time"

	"github.com/quantforge/instrdef/internal/domain"
)

// CouponFixed is one fixed coupon accrual period of a bond or schedule.
type CouponFixed struct {
	Currency      string
	AccrualStart  time.Time
	AccrualEnd    time.Time
	PaymentDate   time.Time
	AccrualFactor float64
	Rate          float64
	Notional      float64
}

// Amount is the coupon cash amount.
func (c CouponFixed) Amount() float64 {
	return c.Rate * c.Notional * c.AccrualFactor
}

// Bond is a fixed-coupon bond with its coupon schedule fully resolved.
type Bond struct {
	definition
	Currency     string
	Issuer       string
	Settlement   time.Time
	Maturity     time.Time
	Notional     float64
	DayCount     domain.DayCount
	Coupons      []CouponFixed
	CalendarName string
}

func (Bond) Kind() string { return KindBond }

// BondFuture is a future over a deliverable basket of bonds. Deliverables
// and ConversionFactors are parallel arrays, one entry per basket member.
type BondFuture struct {
	definition
	Currency          string
	TradingLastDate   time.Time
	NoticeFirstDate   time.Time
	NoticeLastDate    time.Time
	Notional          float64
	Deliverables      []*Bond
	ConversionFactors []float64
}

func (BondFuture) Kind() string { return KindBondFuture }
