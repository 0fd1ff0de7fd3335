package instrument

import "time"

// FXForward exchanges a pay-currency outflow for a receive-currency inflow
// at the exchange date. PayAmount is negative by construction.
type FXForward struct {
	definition
	PayCurrency     string
	PayAmount       float64 // negative
	ReceiveCurrency string
	ReceiveAmount   float64 // positive
	ExchangeDate    time.Time
}

func (FXForward) Kind() string { return KindFXForward }

// NonDeliverableFXForward is an FX forward cash-settled in the settlement
// currency.
type NonDeliverableFXForward struct {
	definition
	PayCurrency        string
	PayAmount          float64 // negative
	ReceiveCurrency    string
	ReceiveAmount      float64 // positive
	ExchangeDate       time.Time
	SettlementCurrency string
}

func (NonDeliverableFXForward) Kind() string { return KindNonDeliverableFXFwd }

// FXOption is a vanilla FX option expressed base-against-quote per the
// currency pair convention, regardless of which currency the trade natively
// quoted put or call in. IsCall records whether the option is a call on the
// base currency; BaseAmount carries the sign of the base-currency exchange
// (negative when the base amount is paid away on exercise).
type FXOption struct {
	definition
	BaseCurrency  string
	QuoteCurrency string
	BaseAmount    float64
	QuoteAmount   float64
	Expiry        time.Time
	Settlement    time.Time
	IsCall        bool
	IsLong        bool
}

func (FXOption) Kind() string { return KindFXOption }
