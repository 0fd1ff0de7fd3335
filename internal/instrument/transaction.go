package instrument

import (
	"time"

	"github.com/quantforge/instrdef/internal/domain"
)

// PriceType fixes the unit convention of a transaction price per instrument
// type: an upfront premium amount versus a quoted market price.
type PriceType string

const (
	PriceMarket  PriceType = "MARKET_PRICE"
	PricePremium PriceType = "PREMIUM"
)

// Transaction wraps a definition with trade facts. It can only be built from
// a successfully produced definition; quantity keeps the trade's sign
// convention and TradeTime is an absolute UTC instant.
type Transaction struct {
	Definition   Definition
	Quantity     int64
	TradeTime    time.Time
	Price        float64
	PriceType    PriceType
	Counterparty string
}

// NewTransaction validates the construction invariant: a present definition
// and a price type. Price presence is validated upstream against the trade
// record, where the offending field can be named.
func NewTransaction(defn Definition, quantity int64, tradeTime time.Time, price float64, priceType PriceType) (*Transaction, error) {
	if defn == nil {
		return nil, &domain.InvalidFieldError{Field: "definition", Value: "<nil>"}
	}
	if priceType != PriceMarket && priceType != PricePremium {
		return nil, &domain.InvalidFieldError{Field: "priceType", Value: string(priceType)}
	}
	return &Transaction{
		Definition: defn,
		Quantity:   quantity,
		TradeTime:  tradeTime.UTC(),
		Price:      price,
		PriceType:  priceType,
	}, nil
}
