package converters

import (
	"fmt"
	"time"

	"github.com/quantforge/instrdef/internal/domain"
	"github.com/quantforge/instrdef/internal/instrument"
	"github.com/shopspring/decimal"
)

// Fee attribute key templates. Records are numbered from one and read until
// the first index with no date attribute.
const (
	feeDateKey      = "FEE_%d_DATE"
	feeCurrencyKey  = "FEE_%d_CURRENCY"
	feeAmountKey    = "FEE_%d_AMOUNT"
	feeDirectionKey = "FEE_%d_DIRECTION"
)

const feeDateLayout = "2006-01-02"

// FeeAnnuity reads the numbered fee records from the trade's attributes and
// builds an annuity of fixed payments in the given currency. The second
// return is false when the trade carries no fee records at all. A fee in any
// other currency is a hard failure, not a skipped record.
func FeeAnnuity(trade *domain.Trade, currency string) (*instrument.Annuity, bool, error) {
	if trade == nil {
		return nil, false, &domain.InvalidFieldError{Field: "trade", Value: "<nil>"}
	}

	var payments []instrument.PaymentFixed
	for i := 1; ; i++ {
		rawDate, ok := trade.Attribute(fmt.Sprintf(feeDateKey, i))
		if !ok {
			break
		}
		payment, err := feePayment(trade, i, rawDate, currency)
		if err != nil {
			return nil, false, err
		}
		payments = append(payments, payment)
	}

	if len(payments) == 0 {
		return nil, false, nil
	}
	return &instrument.Annuity{Payments: payments}, true, nil
}

func feePayment(trade *domain.Trade, i int, rawDate, currency string) (instrument.PaymentFixed, error) {
	var zero instrument.PaymentFixed

	date, err := time.ParseInLocation(feeDateLayout, rawDate, time.UTC)
	if err != nil {
		return zero, &domain.InvalidFieldError{Field: fmt.Sprintf(feeDateKey, i), Value: rawDate}
	}

	feeCcy, ok := trade.Attribute(fmt.Sprintf(feeCurrencyKey, i))
	if !ok {
		return zero, &domain.MissingTradeFieldError{Field: fmt.Sprintf(feeCurrencyKey, i)}
	}
	if feeCcy != currency {
		return zero, &domain.InvalidFieldError{Field: fmt.Sprintf(feeCurrencyKey, i), Value: feeCcy}
	}

	rawAmount, ok := trade.Attribute(fmt.Sprintf(feeAmountKey, i))
	if !ok {
		return zero, &domain.MissingTradeFieldError{Field: fmt.Sprintf(feeAmountKey, i)}
	}
	amount, err := decimal.NewFromString(rawAmount)
	if err != nil {
		return zero, &domain.InvalidFieldError{Field: fmt.Sprintf(feeAmountKey, i), Value: rawAmount}
	}

	rawDirection, ok := trade.Attribute(fmt.Sprintf(feeDirectionKey, i))
	if !ok {
		return zero, &domain.MissingTradeFieldError{Field: fmt.Sprintf(feeDirectionKey, i)}
	}
	sign, err := domain.PayReceive(rawDirection).Sign()
	if err != nil {
		return zero, err
	}

	return instrument.PaymentFixed{
		Currency: currency,
		Date:     date,
		Amount:   sign * amount.InexactFloat64(),
	}, nil
}
