// Package instrument defines the canonical instrument definition vocabulary
// produced by the conversion engine and consumed by the valuation layer.
// Dates are absolute time.Time values, periods are canonical, and every
// convention is resolved to a concrete object. Definitions hold no reference
// back to the security they were projected from.
package instrument

// Definition is the closed set of instrument definition variants.
type Definition interface {
	Kind() string
	isDefinition()
}

// Definition kind names.
const (
	KindCash                   = "CASH"
	KindPaymentFixed           = "PAYMENT_FIXED"
	KindAnnuity                = "ANNUITY"
	KindBond                   = "BOND"
	KindBondFuture             = "BOND_FUTURE"
	KindBondFutureOptionPrem   = "BOND_FUTURE_OPTION_PREMIUM"
	KindBondFutureOptionMargin = "BOND_FUTURE_OPTION_MARGINED"
	KindInterestRateFuture     = "INTEREST_RATE_FUTURE"
	KindIRFutureOptionPremium  = "IR_FUTURE_OPTION_PREMIUM"
	KindIRFutureOptionMargined = "IR_FUTURE_OPTION_MARGINED"
	KindFederalFundsFuture     = "FEDERAL_FUNDS_FUTURE"
	KindSwap                   = "SWAP"
	KindSwapFuture             = "SWAP_FUTURE"
	KindFXForward              = "FX_FORWARD"
	KindNonDeliverableFXFwd    = "NON_DELIVERABLE_FX_FORWARD"
	KindFXOption               = "FX_OPTION"
	KindEquityOption           = "EQUITY_OPTION"
	KindEquityIndexOption      = "EQUITY_INDEX_OPTION"
	KindVarianceSwap           = "VARIANCE_SWAP"
	KindVolatilitySwap         = "VOLATILITY_SWAP"
	KindCommodityFuture        = "COMMODITY_FUTURE"
	KindCommodityFutureOption  = "COMMODITY_FUTURE_OPTION"
	KindCDS                    = "CDS"
	KindZeroDeposit            = "ZERO_DEPOSIT"
)

// definition is embedded by every variant to close the set.
type definition struct{}

func (definition) isDefinition() {}
