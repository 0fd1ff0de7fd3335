package refdata

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/quantforge/instrdef/internal/conventions"
	"github.com/quantforge/instrdef/internal/database"
	"github.com/quantforge/instrdef/internal/domain"
	"github.com/rs/zerolog"
)

// ConventionStore persists index and leg conventions plus the market
// base/quote ordering for currency pairs.
type ConventionStore struct {
	db  *database.DB
	log zerolog.Logger
}

// NewConventionStore creates a new convention store
func NewConventionStore(db *database.DB, log zerolog.Logger) *ConventionStore {
	return &ConventionStore{
		db:  db,
		log: log.With().Str("store", "conventions").Logger(),
	}
}

// Save inserts or replaces a convention.
func (s *ConventionStore) Save(conv *conventions.Convention) error {
	if conv == nil || conv.Key == "" {
		return &domain.InvalidFieldError{Field: "convention", Value: "missing key"}
	}

	payNever := 0
	if conv.PaymentFrequency.Never {
		payNever = 1
	}
	eom := 0
	if conv.EOM {
		eom = 1
	}

	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO conventions
		 (key, day_count, business_day, pay_freq_never, pay_freq_months, spot_lag, eom, index_tenor_months, index_tenor_days, region_id)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		conv.Key,
		string(conv.DayCount),
		string(conv.BusinessDay),
		payNever,
		conv.PaymentFrequency.Period.TotalMonths(),
		conv.SpotLag,
		eom,
		conv.IndexTenor.TotalMonths(),
		conv.IndexTenor.Days,
		conv.RegionID,
	)
	if err != nil {
		return fmt.Errorf("failed to save convention %s: %w", conv.Key, err)
	}
	return nil
}

// ConventionByKey loads a convention. Unknown keys are a
// ReferenceNotFoundError.
func (s *ConventionStore) ConventionByKey(key string) (*conventions.Convention, error) {
	var (
		conv             conventions.Convention
		dayCount         string
		businessDay      string
		payNever         int
		payMonths        int
		eom              int
		indexTenorMonths int
		indexTenorDays   int
	)
	err := s.db.QueryRow(
		`SELECT key, day_count, business_day, pay_freq_never, pay_freq_months, spot_lag, eom, index_tenor_months, index_tenor_days, region_id
		 FROM conventions WHERE key = ?`, key,
	).Scan(&conv.Key, &dayCount, &businessDay, &payNever, &payMonths, &conv.SpotLag, &eom, &indexTenorMonths, &indexTenorDays, &conv.RegionID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.ReferenceNotFoundError{ID: key}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load convention %s: %w", key, err)
	}

	conv.DayCount = domain.DayCount(dayCount)
	conv.BusinessDay = domain.BusinessDayConvention(businessDay)
	conv.EOM = eom != 0
	if payNever != 0 {
		conv.PaymentFrequency = domain.FrequencyNever()
	} else if payMonths != 0 {
		conv.PaymentFrequency = domain.FrequencyOfMonths(payMonths)
	}
	conv.IndexTenor = domain.Period{Months: indexTenorMonths, Days: indexTenorDays}
	return &conv, nil
}

// SavePair records the market ordering for a currency pair.
func (s *ConventionStore) SavePair(pair domain.CurrencyPair) error {
	if pair.Base == "" || pair.Quote == "" {
		return &domain.InvalidFieldError{Field: "currencyPair", Value: pair.Base + "/" + pair.Quote}
	}
	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO currency_pairs (base, quote) VALUES (?, ?)`,
		pair.Base, pair.Quote,
	)
	if err != nil {
		return fmt.Errorf("failed to save currency pair %s/%s: %w", pair.Base, pair.Quote, err)
	}
	return nil
}

// Pair returns the market base/quote ordering for two currencies, whichever
// way round the caller names them.
func (s *ConventionStore) Pair(ccy1, ccy2 string) (*domain.CurrencyPair, error) {
	var pair domain.CurrencyPair
	err := s.db.QueryRow(
		`SELECT base, quote FROM currency_pairs
		 WHERE (base = ? AND quote = ?) OR (base = ? AND quote = ?)`,
		ccy1, ccy2, ccy2, ccy1,
	).Scan(&pair.Base, &pair.Quote)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.ReferenceNotFoundError{ID: ccy1 + "/" + ccy2 + " pair convention"}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load currency pair %s/%s: %w", ccy1, ccy2, err)
	}
	return &pair, nil
}
