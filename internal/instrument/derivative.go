package instrument

import (
	"fmt"
	"sort"
	"time"

	"github.com/quantforge/instrdef/internal/domain"
)

// FixingSeries is a time-ordered series of published prices or fixings.
type FixingSeries struct {
	Times  []time.Time
	Values []float64
}

// Empty reports whether the series has no points.
func (s *FixingSeries) Empty() bool {
	return s == nil || len(s.Times) == 0
}

// Latest returns the most recent value at or before the given instant.
func (s *FixingSeries) Latest(at time.Time) (float64, bool) {
	if s.Empty() {
		return 0, false
	}
	// Times are ascending; find the last index at or before `at`
	idx := sort.Search(len(s.Times), func(i int) bool {
		return s.Times[i].After(at)
	})
	if idx == 0 {
		return 0, false
	}
	return s.Values[idx-1], true
}

// Derivative is a transaction materialized at an evaluation instant, ready
// for the valuation layer. For margin-priced instruments ReferencePrice is
// the last margin price; otherwise it is the trade price.
type Derivative struct {
	Definition     Definition
	ValuationTime  time.Time
	Quantity       int64
	ReferencePrice float64
}

// marginPriced reports the definition kinds that settle against a daily
// margin price.
func marginPriced(kind string) bool {
	switch kind {
	case KindInterestRateFuture, KindFederalFundsFuture, KindBondFuture,
		KindSwapFuture, KindCommodityFuture,
		KindIRFutureOptionMargined, KindBondFutureOptionMargin:
		return true
	default:
		return false
	}
}

// ToDerivative materializes a transaction at an evaluation timestamp. For
// margin-priced instruments evaluated after the trade date, the reference
// price is the most recent published margin price from the fixing series; an
// empty or insufficient series is a hard failure. On the trade date itself
// the trade price is the margin reference.
func ToDerivative(txn *Transaction, valuationTime time.Time, fixings *FixingSeries) (*Derivative, error) {
	if txn == nil || txn.Definition == nil {
		return nil, &domain.InvalidFieldError{Field: "transaction", Value: "<nil>"}
	}

	refPrice := txn.Price
	kind := txn.Definition.Kind()

	if marginPriced(kind) && valuationTime.After(endOfDay(txn.TradeTime)) {
		if fixings.Empty() {
			return nil, &domain.ReferenceNotFoundError{
				ID: fmt.Sprintf("margin price series for %s", kind),
			}
		}
		last, ok := fixings.Latest(valuationTime)
		if !ok {
			return nil, &domain.ReferenceNotFoundError{
				ID: fmt.Sprintf("margin price for %s at %s", kind, valuationTime.Format(time.RFC3339)),
			}
		}
		refPrice = last
	}

	return &Derivative{
		Definition:     txn.Definition,
		ValuationTime:  valuationTime.UTC(),
		Quantity:       txn.Quantity,
		ReferencePrice: refPrice,
	}, nil
}

func endOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC)
}
