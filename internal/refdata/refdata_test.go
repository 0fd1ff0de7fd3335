package refdata

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/quantforge/instrdef/internal/conventions"
	"github.com/quantforge/instrdef/internal/database"
	"github.com/quantforge/instrdef/internal/domain"
	"github.com/quantforge/instrdef/internal/instrument"
	"github.com/quantforge/instrdef/pkg/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testDB(t *testing.T) (*database.DB, zerolog.Logger) {
	t.Helper()
	db, err := database.New(database.Config{
		Path:    filepath.Join(t.TempDir(), "refdata.db"),
		Profile: database.ProfileReference,
		Name:    "refdata-test",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, Migrate(db))
	return db, logger.New(logger.Config{Level: "error", Pretty: false})
}

func TestSecurityStore_RoundTripsVariant(t *testing.T) {
	db, log := testDB(t)
	store := NewSecurityStore(db, log)

	bond := &domain.BondSecurity{
		SecurityInfo:        domain.SecurityInfo{ID: "BOND1", Name: "T 2.5 2026", Type: domain.TypeBond},
		Currency:            "USD",
		Issuer:              "US TREASURY",
		Coupon:              0.025,
		CouponFrequency:     domain.FrequencyOfMonths(6),
		DayCount:            domain.DayCountAct365F,
		BusinessDay:         domain.Following,
		RegionID:            "US",
		InterestAccrualDate: date(2024, time.January, 15),
		SettlementDate:      date(2024, time.January, 17),
		MaturityDate:        date(2026, time.January, 15),
	}
	require.NoError(t, store.Save(bond))

	loaded, err := store.SecurityByExternalID("BOND1")
	require.NoError(t, err)

	got, ok := loaded.(*domain.BondSecurity)
	require.True(t, ok, "variant must be restored as its concrete type")
	assert.Equal(t, bond.Issuer, got.Issuer)
	assert.Equal(t, bond.CouponFrequency, got.CouponFrequency)
	assert.True(t, bond.MaturityDate.Equal(got.MaturityDate))
}

func TestSecurityStore_UnknownIDIsNotFound(t *testing.T) {
	db, log := testDB(t)
	store := NewSecurityStore(db, log)

	_, err := store.SecurityByExternalID("NOPE")
	require.Error(t, err)

	var notFound *domain.ReferenceNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "NOPE", notFound.ID)
}

func TestSecurityStore_SaveReplaces(t *testing.T) {
	db, log := testDB(t)
	store := NewSecurityStore(db, log)

	cash := &domain.CashSecurity{
		SecurityInfo: domain.SecurityInfo{ID: "CASH1", Type: domain.TypeCash},
		Currency:     "USD",
		Rate:         0.05,
	}
	require.NoError(t, store.Save(cash))

	cash.Rate = 0.055
	require.NoError(t, store.Save(cash))

	loaded, err := store.SecurityByExternalID("CASH1")
	require.NoError(t, err)
	assert.Equal(t, 0.055, loaded.(*domain.CashSecurity).Rate)
}

func TestConventionStore_RoundTrip(t *testing.T) {
	db, log := testDB(t)
	store := NewConventionStore(db, log)

	conv := &conventions.Convention{
		Key:              "USD_LIBOR_3M",
		DayCount:         domain.DayCountAct360,
		BusinessDay:      domain.ModifiedFollowing,
		PaymentFrequency: domain.FrequencyOfMonths(3),
		SpotLag:          2,
		EOM:              true,
		IndexTenor:       domain.Period{Months: 3},
		RegionID:         "US",
	}
	require.NoError(t, store.Save(conv))

	got, err := store.ConventionByKey("USD_LIBOR_3M")
	require.NoError(t, err)
	assert.Equal(t, conv.DayCount, got.DayCount)
	assert.Equal(t, conv.BusinessDay, got.BusinessDay)
	assert.Equal(t, conv.PaymentFrequency, got.PaymentFrequency)
	assert.Equal(t, 2, got.SpotLag)
	assert.True(t, got.EOM)
	assert.Equal(t, domain.Period{Months: 3}, got.IndexTenor)
	assert.Equal(t, "US", got.RegionID)
}

func TestConventionStore_NeverFrequencySurvives(t *testing.T) {
	db, log := testDB(t)
	store := NewConventionStore(db, log)

	require.NoError(t, store.Save(&conventions.Convention{
		Key:              "USD_ZERO_DEPOSIT",
		DayCount:         domain.DayCountAct365F,
		BusinessDay:      domain.Following,
		PaymentFrequency: domain.FrequencyNever(),
	}))

	got, err := store.ConventionByKey("USD_ZERO_DEPOSIT")
	require.NoError(t, err)
	assert.True(t, got.PaymentFrequency.Never)
}

func TestConventionStore_UnknownKeyIsNotFound(t *testing.T) {
	db, log := testDB(t)
	store := NewConventionStore(db, log)

	_, err := store.ConventionByKey("EUR_EURIBOR_6M")
	require.Error(t, err)

	var notFound *domain.ReferenceNotFoundError
	assert.True(t, errors.As(err, &notFound))
}

func TestConventionStore_PairEitherWayRound(t *testing.T) {
	db, log := testDB(t)
	store := NewConventionStore(db, log)

	require.NoError(t, store.SavePair(domain.CurrencyPair{Base: "EUR", Quote: "USD"}))

	pair, err := store.Pair("USD", "EUR")
	require.NoError(t, err)
	assert.Equal(t, "EUR", pair.Base)
	assert.Equal(t, "USD", pair.Quote)

	pair, err = store.Pair("EUR", "USD")
	require.NoError(t, err)
	assert.Equal(t, "EUR", pair.Base)

	_, err = store.Pair("CHF", "JPY")
	require.Error(t, err)

	var notFound *domain.ReferenceNotFoundError
	assert.True(t, errors.As(err, &notFound))
}

func TestCalendarStore_RegionsAndHolidays(t *testing.T) {
	db, log := testDB(t)
	store := NewCalendarStore(db, log)

	require.NoError(t, store.SaveRegion(domain.Region{ID: "US", Name: "United States", Currency: "USD"}))
	require.NoError(t, store.SaveHolidays("US", []time.Time{
		date(2024, time.July, 4),
		date(2024, time.January, 1),
		date(2024, time.July, 4), // duplicate, must be ignored
	}))

	region, err := store.Region("US")
	require.NoError(t, err)
	assert.Equal(t, "USD", region.Currency)

	days, err := store.Holidays("US")
	require.NoError(t, err)
	require.Len(t, days, 2)
	assert.True(t, days[0].Before(days[1]), "holidays come back ascending")

	_, err = store.Region("XX")
	require.Error(t, err)

	var notFound *domain.ReferenceNotFoundError
	assert.True(t, errors.As(err, &notFound))
}

func TestCalendarStore_NoHolidaysIsEmptyNotError(t *testing.T) {
	db, log := testDB(t)
	store := NewCalendarStore(db, log)

	days, err := store.Holidays("GB")
	require.NoError(t, err)
	assert.Empty(t, days)
}

func TestFixingStore_AppendAndLoadAscending(t *testing.T) {
	db, log := testDB(t)
	store := NewFixingStore(db, log)

	require.NoError(t, store.Append("IRF1", &instrument.FixingSeries{
		Times:  []time.Time{date(2024, time.May, 2), date(2024, time.May, 1)},
		Values: []float64{97.15, 97.10},
	}))

	series, err := store.Series("IRF1")
	require.NoError(t, err)
	require.Len(t, series.Times, 2)
	assert.True(t, series.Times[0].Before(series.Times[1]))
	assert.Equal(t, 97.10, series.Values[0])

	v, ok := series.Latest(date(2024, time.May, 3))
	require.True(t, ok)
	assert.Equal(t, 97.15, v)
}

func TestFixingStore_RepublishReplaces(t *testing.T) {
	db, log := testDB(t)
	store := NewFixingStore(db, log)

	ts := date(2024, time.May, 1)
	require.NoError(t, store.Append("IRF2", &instrument.FixingSeries{Times: []time.Time{ts}, Values: []float64{97.10}}))
	require.NoError(t, store.Append("IRF2", &instrument.FixingSeries{Times: []time.Time{ts}, Values: []float64{97.40}}))

	series, err := store.Series("IRF2")
	require.NoError(t, err)
	require.Len(t, series.Values, 1)
	assert.Equal(t, 97.40, series.Values[0])
}

func TestFixingStore_EmptyIdentifierYieldsEmptySeries(t *testing.T) {
	db, log := testDB(t)
	store := NewFixingStore(db, log)

	series, err := store.Series("NOTHING")
	require.NoError(t, err)
	assert.True(t, series.Empty())
}

func TestFixingStore_MismatchedLengthsRejected(t *testing.T) {
	db, log := testDB(t)
	store := NewFixingStore(db, log)

	err := store.Append("IRF3", &instrument.FixingSeries{
		Times:  []time.Time{date(2024, time.May, 1)},
		Values: []float64{97.10, 97.20},
	})
	require.Error(t, err)

	var invalid *domain.InvalidFieldError
	assert.True(t, errors.As(err, &invalid))
}
