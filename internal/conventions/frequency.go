package conventions

import "github.com/quantforge/instrdef/internal/domain"

// NormalizePeriod maps a frequency to its canonical period:
//
//   - "never" becomes the zero-length period
//   - an annual period becomes twelve months
//   - any other periodic frequency passes through unchanged
//
// The zero-value (unset) frequency has no canonical form and fails with
// UnsupportedVariantError.
func NormalizePeriod(f domain.Frequency) (domain.Period, error) {
	if f.Never {
		return domain.Period{}, nil
	}
	p := f.Period
	if p.IsZero() {
		return domain.Period{}, &domain.UnsupportedVariantError{Variant: "frequency (unset)"}
	}
	if p.Years == 1 && p.Months == 0 && p.Days == 0 {
		return domain.Period{Months: 12}, nil
	}
	return p, nil
}
