package domain

import (
	"time"

	"github.com/google/uuid"
)

// Trade is a transaction in a security. Quantity keeps the sign convention of
// the trade record (negative for sells). Premium is a pointer because absence
// must be distinguishable from zero: for price-bearing variants an absent
// premium is a hard MissingTradeFieldError, never a default.
type Trade struct {
	ID              string
	Security        Security
	Quantity        int64
	TradeDate       time.Time  // civil date of the trade; required
	TradeTime       *time.Time // optional time of day; date part is ignored
	Premium         *float64
	PremiumCurrency string // optional; checked against the instrument's settlement currency when set
	Counterparty    string // carried through onto the transaction
	Attributes      map[string]string // free-form upstream key/value data (fee records live here)
}

// NewTrade builds a trade with a generated identifier for upstream systems
// that do not supply one.
func NewTrade(security Security, quantity int64, tradeDate time.Time) *Trade {
	return &Trade{
		ID:        uuid.NewString(),
		Security:  security,
		Quantity:  quantity,
		TradeDate: tradeDate,
	}
}

// Attribute returns the named attribute and whether it is present.
func (t *Trade) Attribute(key string) (string, bool) {
	if t.Attributes == nil {
		return "", false
	}
	v, ok := t.Attributes[key]
	return v, ok
}
