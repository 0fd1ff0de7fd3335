package domain

import "time"

// Security is the closed set of security variants the engine can be asked to
// convert. Concrete variants embed SecurityInfo and are routed by type switch;
// a variant without a conversion rule fails with UnsupportedVariantError, it
// is never silently defaulted.
//
// Securities are owned by the calling context. The engine reads them and
// never mutates them.
type Security interface {
	ExternalID() string
	TypeName() string
	isSecurity()
}

// SecurityInfo carries the identity fields every variant shares.
type SecurityInfo struct {
	ID   string // external identifier, the key other securities reference
	Name string // display name, informational only
	Type string
}

func (s SecurityInfo) ExternalID() string { return s.ID }
func (s SecurityInfo) TypeName() string   { return s.Type }
func (s SecurityInfo) isSecurity()        {}

// Variant type names, used in error messages and by the refdata store to
// round-trip heterogeneous securities.
const (
	TypeCash                  = "CASH"
	TypeBond                  = "BOND"
	TypeBondFuture            = "BOND_FUTURE"
	TypeBondFutureOption      = "BOND_FUTURE_OPTION"
	TypeInterestRateFuture    = "INTEREST_RATE_FUTURE"
	TypeIRFutureOption        = "IR_FUTURE_OPTION"
	TypeFederalFundsFuture    = "FEDERAL_FUNDS_FUTURE"
	TypeDeliverableSwapFuture = "DELIVERABLE_SWAP_FUTURE"
	TypeSwap                  = "SWAP"
	TypeFXForward             = "FX_FORWARD"
	TypeNonDeliverableFXFwd   = "NON_DELIVERABLE_FX_FORWARD"
	TypeFXOption              = "FX_OPTION"
	TypeEquityOption          = "EQUITY_OPTION"
	TypeEquityIndexOption     = "EQUITY_INDEX_OPTION"
	TypeEquityVarianceSwap    = "EQUITY_VARIANCE_SWAP"
	TypeVolatilitySwap        = "VOLATILITY_SWAP"
	TypeAgricultureFuture     = "AGRICULTURE_FUTURE"
	TypeEnergyFuture          = "ENERGY_FUTURE"
	TypeMetalFuture           = "METAL_FUTURE"
	TypeStockFuture           = "STOCK_FUTURE"
	TypeCommodityFutureOption = "COMMODITY_FUTURE_OPTION"
	TypeCDS                   = "CDS"
	TypeZeroDeposit           = "ZERO_DEPOSIT"
	TypeCashFlow              = "CASH_FLOW"
)

// CashSecurity is a money-market cash deposit. RegionID may name several
// regions joined by '+' or ','; the calendar is the union of all of them.
type CashSecurity struct {
	SecurityInfo
	Currency string
	RegionID string
	Start    time.Time
	Maturity time.Time
	DayCount DayCount
	Rate     float64
	Amount   float64
}

// BondSecurity is a fixed-coupon bond. Bond futures reference these as
// deliverable basket members.
type BondSecurity struct {
	SecurityInfo
	Currency            string
	Issuer              string
	Coupon              float64 // annual coupon rate, fractional
	CouponFrequency     Frequency
	DayCount            DayCount
	BusinessDay         BusinessDayConvention
	RegionID            string
	InterestAccrualDate time.Time // start of the first accrual period
	SettlementDate      time.Time
	MaturityDate        time.Time
}

// BondFutureDeliverable is one member of a bond future's deliverable basket.
type BondFutureDeliverable struct {
	SecurityID       string
	ConversionFactor float64
}

// BondFutureSecurity is a future on a basket of deliverable bonds.
type BondFutureSecurity struct {
	SecurityInfo
	Currency        string
	TradingLastDate time.Time
	NoticeFirstDate time.Time
	NoticeLastDate  time.Time
	Notional        float64
	Basket          []BondFutureDeliverable
}

// BondFutureOptionSecurity is an option on a bond future. Margined is a
// variant flag on the security, never inferred.
type BondFutureOptionSecurity struct {
	SecurityInfo
	Currency     string
	UnderlyingID string
	Strike       float64
	Expiry       time.Time
	OptionType   OptionType
	ExerciseType ExerciseType
	Margined     bool
}

// InterestRateFutureSecurity is an STIR future referencing an ibor index
// convention by key (e.g. "USD_LIBOR_3M").
type InterestRateFutureSecurity struct {
	SecurityInfo
	Currency      string
	Expiry        time.Time
	Notional      float64
	IndexKey      string
	AccrualFactor float64 // payment accrual factor, e.g. 0.25 for quarterly
}

// IRFutureOptionSecurity is an option on an interest rate future.
type IRFutureOptionSecurity struct {
	SecurityInfo
	Currency     string
	UnderlyingID string
	Strike       float64
	Expiry       time.Time
	OptionType   OptionType
	ExerciseType ExerciseType
	Margined     bool
}

// FederalFundsFutureSecurity is a future on the fed funds overnight rate.
type FederalFundsFutureSecurity struct {
	SecurityInfo
	Currency string
	Expiry   time.Time
	Notional float64
	IndexKey string
}

// DeliverableSwapFutureSecurity is a future settling into an underlying swap.
type DeliverableSwapFutureSecurity struct {
	SecurityInfo
	Currency         string
	UnderlyingSwapID string
	Expiry           time.Time
	Notional         float64
}

// SwapSecurity is a fixed-for-floating interest rate swap.
type SwapSecurity struct {
	SecurityInfo
	Currency      string
	EffectiveDate time.Time
	MaturityDate  time.Time
	Notional      float64
	PayFixed      bool
	FixedRate     float64
	FixedLegKey   string // per-currency fixed leg convention key, e.g. "USD_IRS_FIXED_LEG"
	FloatIndexKey string // ibor leg convention key, e.g. "USD_LIBOR_3M"
	Spread        float64
}

// FXForwardSecurity exchanges a pay amount for a receive amount at the
// forward date. Amounts are stored positive; the conversion negates the pay
// side.
type FXForwardSecurity struct {
	SecurityInfo
	PayCurrency     string
	PayAmount       float64
	ReceiveCurrency string
	ReceiveAmount   float64
	ForwardDate     time.Time
}

// NonDeliverableFXForwardSecurity is an FX forward cash-settled in one of the
// two currencies.
type NonDeliverableFXForwardSecurity struct {
	SecurityInfo
	PayCurrency        string
	PayAmount          float64
	ReceiveCurrency    string
	ReceiveAmount      float64
	ForwardDate        time.Time
	DeliverInReceiveCy bool // true: settles in the receive currency
}

// FXOptionSecurity is a vanilla FX option quoted as put-amount/call-amount.
// The produced definition is always oriented base-against-quote per the
// currency pair convention, which may flip the recorded call flag.
type FXOptionSecurity struct {
	SecurityInfo
	PutCurrency    string
	PutAmount      float64
	CallCurrency   string
	CallAmount     float64
	Expiry         time.Time
	SettlementDate time.Time
	ExerciseType   ExerciseType
	IsLong         bool
}

// EquityOptionSecurity is an option on a single-name equity.
type EquityOptionSecurity struct {
	SecurityInfo
	Currency     string
	UnderlyingID string
	Strike       float64
	Expiry       time.Time
	OptionType   OptionType
	ExerciseType ExerciseType
	PointValue   float64
}

// EquityIndexOptionSecurity is an option on an equity index.
type EquityIndexOptionSecurity struct {
	SecurityInfo
	Currency     string
	UnderlyingID string
	Strike       float64
	Expiry       time.Time
	OptionType   OptionType
	ExerciseType ExerciseType
	PointValue   float64
}

// EquityVarianceSwapSecurity pays realized variance against a strike quoted
// in volatility terms.
type EquityVarianceSwapSecurity struct {
	SecurityInfo
	Currency             string
	SpotUnderlyingID     string
	VolStrike            float64
	VolNotional          float64
	FirstObservationDate time.Time
	LastObservationDate  time.Time
	SettlementDate       time.Time
	AnnualizationFactor  float64
	RegionID             string
}

// VolatilitySwapSecurity pays realized volatility against a strike.
type VolatilitySwapSecurity struct {
	SecurityInfo
	Currency            string
	VolStrike           float64
	VolNotional         float64
	StartDate           time.Time
	EndDate             time.Time
	SettlementDate      time.Time
	AnnualizationFactor float64
}

// CommodityFutureFields is shared by the commodity future variants. The
// variant itself (agriculture, energy, metal, stock) stays a distinct type so
// dispatch can route them separately.
type CommodityFutureFields struct {
	Currency   string
	Expiry     time.Time
	UnitAmount float64
	UnitName   string
}

// AgricultureFutureSecurity is a future on an agricultural commodity.
type AgricultureFutureSecurity struct {
	SecurityInfo
	CommodityFutureFields
}

// EnergyFutureSecurity is a future on an energy commodity.
type EnergyFutureSecurity struct {
	SecurityInfo
	CommodityFutureFields
}

// MetalFutureSecurity is a future on a metal.
type MetalFutureSecurity struct {
	SecurityInfo
	CommodityFutureFields
}

// StockFutureSecurity is a single-stock future. It has no commodity
// conversion rule and must fail rather than dispatch to the wrong one.
type StockFutureSecurity struct {
	SecurityInfo
	CommodityFutureFields
	UnderlyingID string
}

// CommodityFutureOptionSecurity is an option on a commodity future.
type CommodityFutureOptionSecurity struct {
	SecurityInfo
	Currency     string
	UnderlyingID string
	Strike       float64
	Expiry       time.Time
	OptionType   OptionType
	ExerciseType ExerciseType
}

// CDSSecurity is a standard vanilla credit default swap.
type CDSSecurity struct {
	SecurityInfo
	Currency        string
	Notional        float64
	BuyProtection   bool
	ReferenceEntity string
	StartDate       time.Time
	MaturityDate    time.Time
	Spread          float64 // premium leg coupon, fractional
	RecoveryRate    float64
	CouponFrequency Frequency
	DayCount        DayCount
	BusinessDay     BusinessDayConvention
	StubType        StubType
	RegionID        string
}

// ZeroDepositSecurity is a zero-coupon deposit. The compounding flavour
// selects the conversion rule; simple compounding has no supported mapping.
type ZeroDepositSecurity struct {
	SecurityInfo
	Currency       string
	StartDate      time.Time
	MaturityDate   time.Time
	Rate           float64
	Compounding    Compounding
	PeriodsPerYear int // periodic compounding only
}

// CashFlowSecurity is a single known cash flow.
type CashFlowSecurity struct {
	SecurityInfo
	Currency   string
	Amount     float64
	Settlement time.Time
}
