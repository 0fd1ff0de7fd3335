package converters

import (
	"time"

	"github.com/quantforge/instrdef/internal/domain"
	"github.com/quantforge/instrdef/internal/instrument"
	"github.com/rs/zerolog"
)

// TradeConverter turns trades into transactions: the security is converted
// and the trade facts (quantity, instant, price) are attached. Quantity is
// always the trade's real signed quantity; it is never forced to one.
type TradeConverter struct {
	securities *SecurityConverter
	log        zerolog.Logger
}

// NewTradeConverter creates a new trade converter
func NewTradeConverter(securities *SecurityConverter, log zerolog.Logger) *TradeConverter {
	return &TradeConverter{
		securities: securities,
		log:        log.With().Str("converter", "trade").Logger(),
	}
}

// Convert converts the trade's security and wraps it in a transaction. The
// trade date is required. Price-bearing instrument kinds require a premium
// on the trade; an absent premium fails with MissingTradeFieldError rather
// than defaulting to zero.
func (c *TradeConverter) Convert(trade *domain.Trade) (*instrument.Transaction, error) {
	if trade == nil {
		return nil, &domain.InvalidFieldError{Field: "trade", Value: "<nil>"}
	}

	defn, err := c.securities.Convert(trade.Security)
	if err != nil {
		return nil, err
	}
	return c.wrap(trade, defn)
}

// ConvertCommodityFutureTrade converts a commodity future trade with an
// explicit reference price on the produced future. Trades in any other
// security fail with WrongSecurityTypeError.
func (c *TradeConverter) ConvertCommodityFutureTrade(trade *domain.Trade, referencePrice float64) (*instrument.Transaction, error) {
	if trade == nil {
		return nil, &domain.InvalidFieldError{Field: "trade", Value: "<nil>"}
	}
	if trade.Security == nil {
		return nil, &domain.InvalidFieldError{Field: "security", Value: "<nil>"}
	}

	defn, err := c.securities.ConvertCommodityFuture(trade.Security, referencePrice)
	if err != nil {
		return nil, err
	}
	return c.wrap(trade, defn)
}

func (c *TradeConverter) wrap(trade *domain.Trade, defn instrument.Definition) (*instrument.Transaction, error) {
	if trade.TradeDate.IsZero() {
		return nil, &domain.MissingTradeFieldError{Field: "tradeDate"}
	}

	priceType, needsPrice := priceTypeFor(defn.Kind())
	price := 0.0
	if needsPrice {
		if trade.Premium == nil {
			return nil, &domain.MissingTradeFieldError{Field: "premium"}
		}
		if priceType == instrument.PricePremium {
			if err := checkPremiumCurrency(trade.PremiumCurrency, defn); err != nil {
				return nil, err
			}
		}
		price = *trade.Premium
	} else if trade.Premium != nil {
		price = *trade.Premium
	}

	txn, err := instrument.NewTransaction(defn, trade.Quantity, c.tradeInstant(trade), price, priceType)
	if err != nil {
		return nil, err
	}
	txn.Counterparty = trade.Counterparty
	return txn, nil
}

// checkPremiumCurrency rejects a trade whose stated premium currency does
// not match the settlement currency of a premium-settled instrument. An
// unstated premium currency is accepted. FX option premia may settle in
// either leg's currency.
func checkPremiumCurrency(premiumCurrency string, defn instrument.Definition) error {
	if premiumCurrency == "" {
		return nil
	}

	var want string
	switch d := defn.(type) {
	case *instrument.IRFutureOptionPremium:
		want = d.Currency
	case *instrument.BondFutureOptionPremium:
		want = d.Currency
	case *instrument.EquityOption:
		want = d.Currency
	case *instrument.EquityIndexOption:
		want = d.Currency
	case *instrument.CommodityFutureOption:
		want = d.Currency
	case *instrument.FXOption:
		if premiumCurrency == d.BaseCurrency || premiumCurrency == d.QuoteCurrency {
			return nil
		}
		return &domain.InvalidFieldError{Field: "premiumCurrency", Value: premiumCurrency}
	default:
		return nil
	}

	if premiumCurrency != want {
		return &domain.InvalidFieldError{Field: "premiumCurrency", Value: premiumCurrency}
	}
	return nil
}

// tradeInstant combines the trade date with the optional time of day. The
// time of day's own date part is ignored. Absent a time of day the instant
// is midnight UTC on the trade date.
func (c *TradeConverter) tradeInstant(trade *domain.Trade) time.Time {
	d := trade.TradeDate.UTC()
	if trade.TradeTime == nil {
		c.log.Debug().
			Str("trade_id", trade.ID).
			Msg("Trade has no time of day, defaulting to midnight UTC")
		return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	}
	clk := trade.TradeTime.UTC()
	return time.Date(d.Year(), d.Month(), d.Day(), clk.Hour(), clk.Minute(), clk.Second(), clk.Nanosecond(), time.UTC)
}

// priceTypeFor maps an instrument kind to its price convention and reports
// whether a trade price is required at all. Futures and margined options
// trade on a quoted market price; premium-settled options carry an upfront
// premium. Everything else prices off its own cash flows.
func priceTypeFor(kind string) (instrument.PriceType, bool) {
	switch kind {
	case instrument.KindInterestRateFuture,
		instrument.KindFederalFundsFuture,
		instrument.KindBondFuture,
		instrument.KindSwapFuture,
		instrument.KindCommodityFuture,
		instrument.KindIRFutureOptionMargined,
		instrument.KindBondFutureOptionMargin:
		return instrument.PriceMarket, true
	case instrument.KindIRFutureOptionPremium,
		instrument.KindBondFutureOptionPrem,
		instrument.KindEquityOption,
		instrument.KindEquityIndexOption,
		instrument.KindCommodityFutureOption,
		instrument.KindFXOption:
		return instrument.PricePremium, true
	default:
		return instrument.PriceMarket, false
	}
}
