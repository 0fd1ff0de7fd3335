package conventions

import (
	"github.com/quantforge/instrdef/internal/domain"
	"github.com/rs/zerolog"
)

// Convention is externally supplied reference data keyed by currency or
// identifier. The engine requests and validates conventions, it never
// constructs them.
type Convention struct {
	Key              string
	DayCount         domain.DayCount
	BusinessDay      domain.BusinessDayConvention
	PaymentFrequency domain.Frequency
	SpotLag          int           // settlement days
	EOM              bool          // end-of-month roll
	IndexTenor       domain.Period // ibor index tenor, zero for non-index conventions
	RegionID         string        // calendar region for date rolling
}

// Lookup supplies conventions by key. Implementations return
// ReferenceNotFoundError when the key is unknown; they never return a nil
// convention with a nil error.
type Lookup interface {
	ConventionByKey(key string) (*Convention, error)
}

// PairLookup supplies the market base/quote ordering for a currency pair.
type PairLookup interface {
	Pair(ccy1, ccy2 string) (*domain.CurrencyPair, error)
}

// Resolver looks conventions up by key or by per-currency naming rules and
// fails loudly when one is absent.
type Resolver struct {
	lookup Lookup
	log    zerolog.Logger
}

// NewResolver creates a new convention resolver
func NewResolver(lookup Lookup, log zerolog.Logger) *Resolver {
	return &Resolver{
		lookup: lookup,
		log:    log.With().Str("resolver", "conventions").Logger(),
	}
}

// ByKey resolves a convention by its exact key.
func (r *Resolver) ByKey(key string) (*Convention, error) {
	conv, err := r.lookup.ConventionByKey(key)
	if err != nil {
		return nil, err
	}
	if conv == nil {
		// A lookup that signals absence with nil/nil violates its contract;
		// normalize to the typed error so callers see one failure mode.
		return nil, &domain.ReferenceNotFoundError{ID: key}
	}
	return conv, nil
}

// ZeroDeposit resolves the per-currency zero deposit convention using the
// fixed "<CCY>_ZERO_DEPOSIT" naming rule.
func (r *Resolver) ZeroDeposit(currency string) (*Convention, error) {
	return r.ByKey(currency + "_ZERO_DEPOSIT")
}
