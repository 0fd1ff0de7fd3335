package instrument

import (
	"time"

	"github.com/quantforge/instrdef/internal/domain"
)

// InterestRateFuture is an STIR future with its index convention resolved.
type InterestRateFuture struct {
	definition
	Currency          string
	LastTradingDate   time.Time
	FixingPeriodStart time.Time
	FixingPeriodEnd   time.Time
	Notional          float64
	AccrualFactor     float64
	IndexName         string
	IndexTenor        domain.Period
	IndexDayCount     domain.DayCount
}

func (InterestRateFuture) Kind() string { return KindInterestRateFuture }

// FederalFundsFuture is a future on the overnight fed funds rate.
type FederalFundsFuture struct {
	definition
	Currency        string
	LastTradingDate time.Time
	PeriodStart     time.Time
	PeriodEnd       time.Time
	Notional        float64
	AccrualFactor   float64
	IndexName       string
}

func (FederalFundsFuture) Kind() string { return KindFederalFundsFuture }

// Swap is a fixed-for-floating interest rate swap with both leg conventions
// resolved.
type Swap struct {
	definition
	Currency       string
	Effective      time.Time
	Maturity       time.Time
	Notional       float64
	PayFixed       bool
	FixedRate      float64
	FixedPeriod    domain.Period
	FixedDayCount  domain.DayCount
	FloatIndexName string
	FloatPeriod    domain.Period
	FloatDayCount  domain.DayCount
	Spread         float64
	CalendarName   string
}

func (Swap) Kind() string { return KindSwap }

// SwapFuture is a deliverable swap future: a future settling into the
// underlying swap.
type SwapFuture struct {
	definition
	Underlying      *Swap
	LastTradingDate time.Time
	DeliveryDate    time.Time
	Notional        float64
}

func (SwapFuture) Kind() string { return KindSwapFuture }

// CommodityClass is the commodity future classification.
type CommodityClass string

const (
	CommodityAgriculture CommodityClass = "AGRICULTURE"
	CommodityEnergy      CommodityClass = "ENERGY"
	CommodityMetal       CommodityClass = "METAL"
)

// CommodityFuture is a commodity future. ReferencePrice is an explicit
// conversion-time parameter; callers that do not supply one get zero, which
// is documented and visible in the API rather than implied.
type CommodityFuture struct {
	definition
	Class          CommodityClass
	Currency       string
	Expiry         time.Time
	UnitAmount     float64
	UnitName       string
	ReferencePrice float64
}

func (CommodityFuture) Kind() string { return KindCommodityFuture }
