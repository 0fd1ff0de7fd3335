// Package converters implements the security and trade conversion engine:
// typed dispatch from the security model to canonical instrument
// definitions, trade-level transaction assembly, and the fee annuity
// builder.
package converters

import (
	"github.com/quantforge/instrdef/internal/calendar"
	"github.com/quantforge/instrdef/internal/conventions"
	"github.com/quantforge/instrdef/internal/domain"
	"github.com/quantforge/instrdef/internal/instrument"
	"github.com/rs/zerolog"
)

// SecurityLookup resolves referenced securities (underlying futures, swaps,
// deliverable basket members) by external identifier. Implementations return
// ReferenceNotFoundError for unknown identifiers; absence is never signalled
// with a nil security and nil error.
type SecurityLookup interface {
	SecurityByExternalID(id string) (domain.Security, error)
}

// SecurityConverter is the typed dispatch engine: exactly one conversion
// rule fires per security variant. It is stateless between calls; all I/O
// happens through the injected lookups, and every lookup miss terminates the
// conversion.
type SecurityConverter struct {
	securities  SecurityLookup
	conventions *conventions.Resolver
	pairs       conventions.PairLookup
	calendars   *calendar.Resolver
	log         zerolog.Logger
}

// NewSecurityConverter creates a new security converter
func NewSecurityConverter(
	securities SecurityLookup,
	convResolver *conventions.Resolver,
	pairs conventions.PairLookup,
	calendars *calendar.Resolver,
	log zerolog.Logger,
) *SecurityConverter {
	return &SecurityConverter{
		securities:  securities,
		conventions: convResolver,
		pairs:       pairs,
		calendars:   calendars,
		log:         log.With().Str("converter", "security").Logger(),
	}
}

// Convert produces the instrument definition for a security. A variant with
// no rule fails with UnsupportedVariantError; explicitly unbuilt mappings
// (simple zero deposit, stock future) fail with NotImplementedError.
// Commodity futures convert with a zero reference price here; use
// ConvertCommodityFuture to supply one.
func (c *SecurityConverter) Convert(sec domain.Security) (instrument.Definition, error) {
	if sec == nil {
		return nil, &domain.InvalidFieldError{Field: "security", Value: "<nil>"}
	}

	switch s := sec.(type) {
	case *domain.CashSecurity:
		return c.convertCash(s)
	case *domain.BondSecurity:
		return c.convertBond(s)
	case *domain.BondFutureSecurity:
		return c.convertBondFuture(s)
	case *domain.BondFutureOptionSecurity:
		return c.convertBondFutureOption(s)
	case *domain.InterestRateFutureSecurity:
		return c.convertInterestRateFuture(s)
	case *domain.IRFutureOptionSecurity:
		return c.convertIRFutureOption(s)
	case *domain.FederalFundsFutureSecurity:
		return c.convertFederalFundsFuture(s)
	case *domain.DeliverableSwapFutureSecurity:
		return c.convertDeliverableSwapFuture(s)
	case *domain.SwapSecurity:
		return c.convertSwap(s)
	case *domain.FXForwardSecurity:
		return c.convertFXForward(s)
	case *domain.NonDeliverableFXForwardSecurity:
		return c.convertNonDeliverableFXForward(s)
	case *domain.FXOptionSecurity:
		return c.convertFXOption(s)
	case *domain.EquityOptionSecurity:
		return c.convertEquityOption(s)
	case *domain.EquityIndexOptionSecurity:
		return c.convertEquityIndexOption(s)
	case *domain.EquityVarianceSwapSecurity:
		return c.convertEquityVarianceSwap(s)
	case *domain.VolatilitySwapSecurity:
		return c.convertVolatilitySwap(s)
	case *domain.AgricultureFutureSecurity:
		return c.convertCommodityFuture(instrument.CommodityAgriculture, s.CommodityFutureFields, 0)
	case *domain.EnergyFutureSecurity:
		return c.convertCommodityFuture(instrument.CommodityEnergy, s.CommodityFutureFields, 0)
	case *domain.MetalFutureSecurity:
		return c.convertCommodityFuture(instrument.CommodityMetal, s.CommodityFutureFields, 0)
	case *domain.StockFutureSecurity:
		// A stock future is not a commodity future; failing beats silently
		// dispatching to the wrong rule.
		return nil, &domain.NotImplementedError{Variant: s.TypeName(), Reason: "stock futures have no commodity mapping"}
	case *domain.CommodityFutureOptionSecurity:
		return c.convertCommodityFutureOption(s)
	case *domain.CDSSecurity:
		return c.convertCDS(s)
	case *domain.ZeroDepositSecurity:
		return c.convertZeroDeposit(s)
	case *domain.CashFlowSecurity:
		return c.convertCashFlow(s)
	default:
		return nil, &domain.UnsupportedVariantError{Variant: sec.TypeName()}
	}
}

// ConvertCommodityFuture converts a commodity future with an explicit
// reference price. The plain Convert path uses zero, which is the documented
// default for callers that have no price at conversion time.
func (c *SecurityConverter) ConvertCommodityFuture(sec domain.Security, referencePrice float64) (instrument.Definition, error) {
	switch s := sec.(type) {
	case *domain.AgricultureFutureSecurity:
		return c.convertCommodityFuture(instrument.CommodityAgriculture, s.CommodityFutureFields, referencePrice)
	case *domain.EnergyFutureSecurity:
		return c.convertCommodityFuture(instrument.CommodityEnergy, s.CommodityFutureFields, referencePrice)
	case *domain.MetalFutureSecurity:
		return c.convertCommodityFuture(instrument.CommodityMetal, s.CommodityFutureFields, referencePrice)
	default:
		return nil, &domain.WrongSecurityTypeError{Want: "commodity future", Got: sec.TypeName()}
	}
}

// resolve fetches a referenced security, failing the conversion on any miss.
func (c *SecurityConverter) resolve(id string) (domain.Security, error) {
	if id == "" {
		return nil, &domain.ReferenceNotFoundError{ID: "(empty identifier)"}
	}
	sec, err := c.securities.SecurityByExternalID(id)
	if err != nil {
		return nil, err
	}
	if sec == nil {
		return nil, &domain.ReferenceNotFoundError{ID: id}
	}
	return sec, nil
}

func (c *SecurityConverter) convertCash(s *domain.CashSecurity) (instrument.Definition, error) {
	cal, err := c.calendars.Resolve(s.RegionID)
	if err != nil {
		return nil, err
	}
	accrual, err := conventions.YearFraction(s.DayCount, s.Start, s.Maturity)
	if err != nil {
		return nil, err
	}
	return &instrument.Cash{
		Currency:      s.Currency,
		Start:         s.Start,
		End:           s.Maturity,
		Notional:      s.Amount,
		Rate:          s.Rate,
		AccrualFactor: accrual,
		CalendarName:  cal.Name(),
	}, nil
}

func (c *SecurityConverter) convertBond(s *domain.BondSecurity) (*instrument.Bond, error) {
	cal, err := c.calendars.Resolve(s.RegionID)
	if err != nil {
		return nil, err
	}
	period, err := conventions.NormalizePeriod(s.CouponFrequency)
	if err != nil {
		return nil, err
	}
	schedule, err := buildSchedule(s.InterestAccrualDate, s.MaturityDate, period, domain.StubShortEnd, s.DayCount, s.BusinessDay, cal)
	if err != nil {
		return nil, err
	}

	coupons := make([]instrument.CouponFixed, 0, len(schedule))
	for _, p := range schedule {
		coupons = append(coupons, instrument.CouponFixed{
			Currency:      s.Currency,
			AccrualStart:  p.Start,
			AccrualEnd:    p.End,
			PaymentDate:   p.PaymentDate,
			AccrualFactor: p.AccrualFactor,
			Rate:          s.Coupon,
			Notional:      1, // unit notional, scaled by position quantity downstream
		})
	}

	return &instrument.Bond{
		Currency:     s.Currency,
		Issuer:       s.Issuer,
		Settlement:   s.SettlementDate,
		Maturity:     s.MaturityDate,
		Notional:     1,
		DayCount:     s.DayCount,
		Coupons:      coupons,
		CalendarName: cal.Name(),
	}, nil
}

func (c *SecurityConverter) convertBondFuture(s *domain.BondFutureSecurity) (*instrument.BondFuture, error) {
	if len(s.Basket) == 0 {
		return nil, &domain.InvalidFieldError{Field: "basket", Value: "(empty)"}
	}

	deliverables := make([]*instrument.Bond, 0, len(s.Basket))
	factors := make([]float64, 0, len(s.Basket))
	for _, member := range s.Basket {
		ref, err := c.resolve(member.SecurityID)
		if err != nil {
			return nil, err
		}
		bondSec, ok := ref.(*domain.BondSecurity)
		if !ok {
			return nil, &domain.WrongSecurityTypeError{Want: domain.TypeBond, Got: ref.TypeName()}
		}
		bond, err := c.convertBond(bondSec)
		if err != nil {
			return nil, err
		}
		deliverables = append(deliverables, bond)
		factors = append(factors, member.ConversionFactor)
	}

	return &instrument.BondFuture{
		Currency:          s.Currency,
		TradingLastDate:   s.TradingLastDate,
		NoticeFirstDate:   s.NoticeFirstDate,
		NoticeLastDate:    s.NoticeLastDate,
		Notional:          s.Notional,
		Deliverables:      deliverables,
		ConversionFactors: factors,
	}, nil
}

func (c *SecurityConverter) convertBondFutureOption(s *domain.BondFutureOptionSecurity) (instrument.Definition, error) {
	if err := s.OptionType.Validate(); err != nil {
		return nil, err
	}
	if err := s.ExerciseType.Validate(); err != nil {
		return nil, err
	}

	ref, err := c.resolve(s.UnderlyingID)
	if err != nil {
		return nil, err
	}
	futSec, ok := ref.(*domain.BondFutureSecurity)
	if !ok {
		return nil, &domain.WrongSecurityTypeError{Want: domain.TypeBondFuture, Got: ref.TypeName()}
	}
	underlying, err := c.convertBondFuture(futSec)
	if err != nil {
		return nil, err
	}

	if s.Margined {
		return &instrument.BondFutureOptionMargined{
			Underlying: underlying,
			Currency:   s.Currency,
			Strike:     s.Strike,
			Expiry:     s.Expiry,
			IsCall:     s.OptionType.IsCall(),
		}, nil
	}
	return &instrument.BondFutureOptionPremium{
		Underlying: underlying,
		Currency:   s.Currency,
		Strike:     s.Strike,
		Expiry:     s.Expiry,
		IsCall:     s.OptionType.IsCall(),
	}, nil
}

func (c *SecurityConverter) convertInterestRateFuture(s *domain.InterestRateFutureSecurity) (*instrument.InterestRateFuture, error) {
	conv, err := c.conventions.ByKey(s.IndexKey)
	if err != nil {
		return nil, err
	}
	cal, err := c.calendars.Resolve(conv.RegionID)
	if err != nil {
		return nil, err
	}

	fixingStart := s.Expiry
	fixingEnd, err := cal.Adjust(fixingStart.AddDate(0, conv.IndexTenor.TotalMonths(), conv.IndexTenor.Days), conv.BusinessDay)
	if err != nil {
		return nil, err
	}

	accrual := s.AccrualFactor
	if accrual == 0 {
		accrual, err = conventions.YearFraction(conv.DayCount, fixingStart, fixingEnd)
		if err != nil {
			return nil, err
		}
	}

	return &instrument.InterestRateFuture{
		Currency:          s.Currency,
		LastTradingDate:   s.Expiry,
		FixingPeriodStart: fixingStart,
		FixingPeriodEnd:   fixingEnd,
		Notional:          s.Notional,
		AccrualFactor:     accrual,
		IndexName:         conv.Key,
		IndexTenor:        conv.IndexTenor,
		IndexDayCount:     conv.DayCount,
	}, nil
}

func (c *SecurityConverter) convertIRFutureOption(s *domain.IRFutureOptionSecurity) (instrument.Definition, error) {
	if err := s.OptionType.Validate(); err != nil {
		return nil, err
	}
	if err := s.ExerciseType.Validate(); err != nil {
		return nil, err
	}

	ref, err := c.resolve(s.UnderlyingID)
	if err != nil {
		return nil, err
	}
	futSec, ok := ref.(*domain.InterestRateFutureSecurity)
	if !ok {
		return nil, &domain.WrongSecurityTypeError{Want: domain.TypeInterestRateFuture, Got: ref.TypeName()}
	}
	underlying, err := c.convertInterestRateFuture(futSec)
	if err != nil {
		return nil, err
	}

	// Margined vs premium settlement is a flag on the security, not inferred
	if s.Margined {
		return &instrument.IRFutureOptionMargined{
			Underlying: underlying,
			Currency:   s.Currency,
			Strike:     s.Strike,
			Expiry:     s.Expiry,
			IsCall:     s.OptionType.IsCall(),
		}, nil
	}
	return &instrument.IRFutureOptionPremium{
		Underlying: underlying,
		Currency:   s.Currency,
		Strike:     s.Strike,
		Expiry:     s.Expiry,
		IsCall:     s.OptionType.IsCall(),
	}, nil
}

func (c *SecurityConverter) convertFederalFundsFuture(s *domain.FederalFundsFutureSecurity) (*instrument.FederalFundsFuture, error) {
	conv, err := c.conventions.ByKey(s.IndexKey)
	if err != nil {
		return nil, err
	}

	// Fed funds futures settle on the average overnight rate over the
	// delivery month
	year, month, _ := s.Expiry.UTC().Date()
	periodStart := firstOfMonth(year, month)
	periodEnd := periodStart.AddDate(0, 1, 0)

	accrual, err := conventions.YearFraction(conv.DayCount, periodStart, periodEnd)
	if err != nil {
		return nil, err
	}

	return &instrument.FederalFundsFuture{
		Currency:        s.Currency,
		LastTradingDate: s.Expiry,
		PeriodStart:     periodStart,
		PeriodEnd:       periodEnd,
		Notional:        s.Notional,
		AccrualFactor:   accrual,
		IndexName:       conv.Key,
	}, nil
}

func (c *SecurityConverter) convertDeliverableSwapFuture(s *domain.DeliverableSwapFutureSecurity) (*instrument.SwapFuture, error) {
	ref, err := c.resolve(s.UnderlyingSwapID)
	if err != nil {
		return nil, err
	}
	swapSec, ok := ref.(*domain.SwapSecurity)
	if !ok {
		return nil, &domain.WrongSecurityTypeError{Want: domain.TypeSwap, Got: ref.TypeName()}
	}
	underlying, err := c.convertSwap(swapSec)
	if err != nil {
		return nil, err
	}

	return &instrument.SwapFuture{
		Underlying:      underlying,
		LastTradingDate: s.Expiry,
		DeliveryDate:    s.Expiry,
		Notional:        s.Notional,
	}, nil
}

func (c *SecurityConverter) convertSwap(s *domain.SwapSecurity) (*instrument.Swap, error) {
	fixedConv, err := c.conventions.ByKey(s.FixedLegKey)
	if err != nil {
		return nil, err
	}
	floatConv, err := c.conventions.ByKey(s.FloatIndexKey)
	if err != nil {
		return nil, err
	}

	fixedPeriod, err := conventions.NormalizePeriod(fixedConv.PaymentFrequency)
	if err != nil {
		return nil, err
	}
	floatPeriod, err := conventions.NormalizePeriod(floatConv.PaymentFrequency)
	if err != nil {
		return nil, err
	}

	cal, err := c.calendars.Resolve(fixedConv.RegionID)
	if err != nil {
		return nil, err
	}

	return &instrument.Swap{
		Currency:       s.Currency,
		Effective:      s.EffectiveDate,
		Maturity:       s.MaturityDate,
		Notional:       s.Notional,
		PayFixed:       s.PayFixed,
		FixedRate:      s.FixedRate,
		FixedPeriod:    fixedPeriod,
		FixedDayCount:  fixedConv.DayCount,
		FloatIndexName: floatConv.Key,
		FloatPeriod:    floatPeriod,
		FloatDayCount:  floatConv.DayCount,
		Spread:         s.Spread,
		CalendarName:   cal.Name(),
	}, nil
}

func (c *SecurityConverter) convertFXForward(s *domain.FXForwardSecurity) (instrument.Definition, error) {
	if s.PayAmount < 0 || s.ReceiveAmount < 0 {
		return nil, &domain.InvalidFieldError{Field: "amount", Value: "negative input amount"}
	}
	// The definition encodes pay-currency outflow for receive-currency
	// inflow: the pay side is negated, the receive side is not
	return &instrument.FXForward{
		PayCurrency:     s.PayCurrency,
		PayAmount:       -s.PayAmount,
		ReceiveCurrency: s.ReceiveCurrency,
		ReceiveAmount:   s.ReceiveAmount,
		ExchangeDate:    s.ForwardDate,
	}, nil
}

func (c *SecurityConverter) convertNonDeliverableFXForward(s *domain.NonDeliverableFXForwardSecurity) (instrument.Definition, error) {
	if s.PayAmount < 0 || s.ReceiveAmount < 0 {
		return nil, &domain.InvalidFieldError{Field: "amount", Value: "negative input amount"}
	}
	settlementCcy := s.PayCurrency
	if s.DeliverInReceiveCy {
		settlementCcy = s.ReceiveCurrency
	}
	return &instrument.NonDeliverableFXForward{
		PayCurrency:        s.PayCurrency,
		PayAmount:          -s.PayAmount,
		ReceiveCurrency:    s.ReceiveCurrency,
		ReceiveAmount:      s.ReceiveAmount,
		ExchangeDate:       s.ForwardDate,
		SettlementCurrency: settlementCcy,
	}, nil
}

func (c *SecurityConverter) convertFXOption(s *domain.FXOptionSecurity) (instrument.Definition, error) {
	if err := s.ExerciseType.Validate(); err != nil {
		return nil, err
	}
	if s.PutAmount <= 0 || s.CallAmount <= 0 {
		return nil, &domain.InvalidFieldError{Field: "amount", Value: "non-positive option amount"}
	}

	pair, err := c.pairs.Pair(s.PutCurrency, s.CallCurrency)
	if err != nil {
		return nil, err
	}
	if pair == nil || !pair.Contains(s.PutCurrency, s.CallCurrency) {
		return nil, &domain.ReferenceNotFoundError{ID: s.PutCurrency + "/" + s.CallCurrency + " pair convention"}
	}

	// The definition is always oriented base-against-quote. When the call
	// currency is the base, the holder receives base on exercise: a call on
	// base, quote side negated. When the put currency is the base, the
	// holder delivers base: a put on base, base side negated.
	if pair.Base == s.CallCurrency {
		return &instrument.FXOption{
			BaseCurrency:  pair.Base,
			QuoteCurrency: pair.Quote,
			BaseAmount:    s.CallAmount,
			QuoteAmount:   -s.PutAmount,
			Expiry:        s.Expiry,
			Settlement:    s.SettlementDate,
			IsCall:        true,
			IsLong:        s.IsLong,
		}, nil
	}
	return &instrument.FXOption{
		BaseCurrency:  pair.Base,
		QuoteCurrency: pair.Quote,
		BaseAmount:    -s.PutAmount,
		QuoteAmount:   s.CallAmount,
		Expiry:        s.Expiry,
		Settlement:    s.SettlementDate,
		IsCall:        false,
		IsLong:        s.IsLong,
	}, nil
}

func (c *SecurityConverter) convertEquityOption(s *domain.EquityOptionSecurity) (instrument.Definition, error) {
	if err := s.OptionType.Validate(); err != nil {
		return nil, err
	}
	if err := s.ExerciseType.Validate(); err != nil {
		return nil, err
	}
	return &instrument.EquityOption{
		UnderlyingID: s.UnderlyingID,
		Currency:     s.Currency,
		Strike:       s.Strike,
		Expiry:       s.Expiry,
		IsCall:       s.OptionType.IsCall(),
		PointValue:   s.PointValue,
	}, nil
}

func (c *SecurityConverter) convertEquityIndexOption(s *domain.EquityIndexOptionSecurity) (instrument.Definition, error) {
	if err := s.OptionType.Validate(); err != nil {
		return nil, err
	}
	if err := s.ExerciseType.Validate(); err != nil {
		return nil, err
	}
	return &instrument.EquityIndexOption{
		UnderlyingID: s.UnderlyingID,
		Currency:     s.Currency,
		Strike:       s.Strike,
		Expiry:       s.Expiry,
		IsCall:       s.OptionType.IsCall(),
		PointValue:   s.PointValue,
	}, nil
}

func (c *SecurityConverter) convertEquityVarianceSwap(s *domain.EquityVarianceSwapSecurity) (instrument.Definition, error) {
	if s.VolStrike <= 0 {
		return nil, &domain.InvalidFieldError{Field: "volStrike", Value: "non-positive"}
	}
	cal, err := c.calendars.Resolve(s.RegionID)
	if err != nil {
		return nil, err
	}

	return &instrument.VarianceSwap{
		Currency:            s.Currency,
		SpotUnderlyingID:    s.SpotUnderlyingID,
		VarStrike:           s.VolStrike * s.VolStrike,
		VarNotional:         s.VolNotional / (2 * s.VolStrike),
		ObservationStart:    s.FirstObservationDate,
		ObservationEnd:      s.LastObservationDate,
		Settlement:          s.SettlementDate,
		AnnualizationFactor: s.AnnualizationFactor,
		CalendarName:        cal.Name(),
	}, nil
}

func (c *SecurityConverter) convertVolatilitySwap(s *domain.VolatilitySwapSecurity) (instrument.Definition, error) {
	return &instrument.VolatilitySwap{
		Currency:            s.Currency,
		VolStrike:           s.VolStrike,
		VolNotional:         s.VolNotional,
		Start:               s.StartDate,
		End:                 s.EndDate,
		Settlement:          s.SettlementDate,
		AnnualizationFactor: s.AnnualizationFactor,
	}, nil
}

func (c *SecurityConverter) convertCommodityFuture(class instrument.CommodityClass, f domain.CommodityFutureFields, referencePrice float64) (*instrument.CommodityFuture, error) {
	return &instrument.CommodityFuture{
		Class:          class,
		Currency:       f.Currency,
		Expiry:         f.Expiry,
		UnitAmount:     f.UnitAmount,
		UnitName:       f.UnitName,
		ReferencePrice: referencePrice,
	}, nil
}

func (c *SecurityConverter) convertCommodityFutureOption(s *domain.CommodityFutureOptionSecurity) (instrument.Definition, error) {
	if err := s.OptionType.Validate(); err != nil {
		return nil, err
	}
	if err := s.ExerciseType.Validate(); err != nil {
		return nil, err
	}

	ref, err := c.resolve(s.UnderlyingID)
	if err != nil {
		return nil, err
	}
	underlying, err := c.ConvertCommodityFuture(ref, 0)
	if err != nil {
		return nil, err
	}

	return &instrument.CommodityFutureOption{
		Underlying: underlying.(*instrument.CommodityFuture),
		Currency:   s.Currency,
		Strike:     s.Strike,
		Expiry:     s.Expiry,
		IsCall:     s.OptionType.IsCall(),
	}, nil
}

func (c *SecurityConverter) convertCDS(s *domain.CDSSecurity) (instrument.Definition, error) {
	cal, err := c.calendars.Resolve(s.RegionID)
	if err != nil {
		return nil, err
	}
	period, err := conventions.NormalizePeriod(s.CouponFrequency)
	if err != nil {
		return nil, err
	}
	schedule, err := buildSchedule(s.StartDate, s.MaturityDate, period, s.StubType, s.DayCount, s.BusinessDay, cal)
	if err != nil {
		return nil, err
	}

	premium := make([]instrument.CDSPremiumPeriod, 0, len(schedule))
	for _, p := range schedule {
		premium = append(premium, instrument.CDSPremiumPeriod{
			AccrualStart:  p.Start,
			AccrualEnd:    p.End,
			PaymentDate:   p.PaymentDate,
			AccrualFactor: p.AccrualFactor,
		})
	}

	return &instrument.CDS{
		Currency:         s.Currency,
		ReferenceEntity:  s.ReferenceEntity,
		Notional:         s.Notional,
		Spread:           s.Spread,
		RecoveryRate:     s.RecoveryRate,
		BuyProtection:    s.BuyProtection,
		ProtectionStart:  s.StartDate,
		ProtectionEnd:    s.MaturityDate,
		PremiumSchedule:  premium,
		AccrualOnDefault: instrument.CDSAccrualOnDefault,
		PayOnDefault:     instrument.CDSPayOnDefault,
		ProtectStart:     instrument.CDSProtectStart,
	}, nil
}

func (c *SecurityConverter) convertZeroDeposit(s *domain.ZeroDepositSecurity) (instrument.Definition, error) {
	switch s.Compounding {
	case domain.CompoundingContinuous, domain.CompoundingPeriodic:
		// fall through to the shared mapping below
	case domain.CompoundingSimple:
		return nil, &domain.NotImplementedError{Variant: s.TypeName(), Reason: "simple compounding has no supported mapping"}
	default:
		return nil, &domain.InvalidFieldError{Field: "compounding", Value: string(s.Compounding)}
	}

	conv, err := c.conventions.ZeroDeposit(s.Currency)
	if err != nil {
		return nil, err
	}
	accrual, err := conventions.YearFraction(conv.DayCount, s.StartDate, s.MaturityDate)
	if err != nil {
		return nil, err
	}

	paymentsPerYear := 0
	if s.Compounding == domain.CompoundingPeriodic {
		if s.PeriodsPerYear <= 0 {
			return nil, &domain.InvalidFieldError{Field: "periodsPerYear", Value: "non-positive"}
		}
		paymentsPerYear = s.PeriodsPerYear
	}

	return &instrument.ZeroDeposit{
		Currency:        s.Currency,
		Start:           s.StartDate,
		Maturity:        s.MaturityDate,
		Rate:            s.Rate,
		PaymentsPerYear: paymentsPerYear,
		AccrualFactor:   accrual,
		ConventionKey:   conv.Key,
	}, nil
}

func (c *SecurityConverter) convertCashFlow(s *domain.CashFlowSecurity) (instrument.Definition, error) {
	return &instrument.PaymentFixed{
		Currency: s.Currency,
		Date:     s.Settlement,
		Amount:   s.Amount,
	}, nil
}
