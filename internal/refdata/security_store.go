package refdata

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/quantforge/instrdef/internal/database"
	"github.com/quantforge/instrdef/internal/domain"
	"github.com/rs/zerolog"
	"github.com/vmihailenco/msgpack/v5"
)

// SecurityStore persists the heterogeneous security variants. Each row keeps
// the variant's type name alongside a msgpack blob of the concrete struct, so
// decoding restores the exact variant and the converter's type switch keeps
// working.
type SecurityStore struct {
	db  *database.DB
	log zerolog.Logger
}

// NewSecurityStore creates a new security store
func NewSecurityStore(db *database.DB, log zerolog.Logger) *SecurityStore {
	return &SecurityStore{
		db:  db,
		log: log.With().Str("store", "securities").Logger(),
	}
}

// Save inserts or replaces a security by its external identifier.
func (s *SecurityStore) Save(sec domain.Security) error {
	if sec == nil {
		return &domain.InvalidFieldError{Field: "security", Value: "<nil>"}
	}
	if sec.ExternalID() == "" {
		return &domain.InvalidFieldError{Field: "externalID", Value: "(empty)"}
	}

	data, err := msgpack.Marshal(sec)
	if err != nil {
		return fmt.Errorf("failed to encode security %s: %w", sec.ExternalID(), err)
	}

	_, err = s.db.Exec(
		`INSERT OR REPLACE INTO securities (external_id, security_type, data) VALUES (?, ?, ?)`,
		sec.ExternalID(), sec.TypeName(), data,
	)
	if err != nil {
		return fmt.Errorf("failed to save security %s: %w", sec.ExternalID(), err)
	}
	return nil
}

// SecurityByExternalID loads a security, restoring its concrete variant. An
// unknown identifier is a ReferenceNotFoundError.
func (s *SecurityStore) SecurityByExternalID(id string) (domain.Security, error) {
	var typeName string
	var data []byte
	err := s.db.QueryRow(
		`SELECT security_type, data FROM securities WHERE external_id = ?`, id,
	).Scan(&typeName, &data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.ReferenceNotFoundError{ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load security %s: %w", id, err)
	}

	sec, err := emptySecurity(typeName)
	if err != nil {
		return nil, err
	}
	if err := msgpack.Unmarshal(data, sec); err != nil {
		return nil, fmt.Errorf("failed to decode security %s: %w", id, err)
	}
	return sec, nil
}

// emptySecurity returns a zero value of the concrete variant for a type name.
func emptySecurity(typeName string) (domain.Security, error) {
	switch typeName {
	case domain.TypeCash:
		return &domain.CashSecurity{}, nil
	case domain.TypeBond:
		return &domain.BondSecurity{}, nil
	case domain.TypeBondFuture:
		return &domain.BondFutureSecurity{}, nil
	case domain.TypeBondFutureOption:
		return &domain.BondFutureOptionSecurity{}, nil
	case domain.TypeInterestRateFuture:
		return &domain.InterestRateFutureSecurity{}, nil
	case domain.TypeIRFutureOption:
		return &domain.IRFutureOptionSecurity{}, nil
	case domain.TypeFederalFundsFuture:
		return &domain.FederalFundsFutureSecurity{}, nil
	case domain.TypeDeliverableSwapFuture:
		return &domain.DeliverableSwapFutureSecurity{}, nil
	case domain.TypeSwap:
		return &domain.SwapSecurity{}, nil
	case domain.TypeFXForward:
		return &domain.FXForwardSecurity{}, nil
	case domain.TypeNonDeliverableFXFwd:
		return &domain.NonDeliverableFXForwardSecurity{}, nil
	case domain.TypeFXOption:
		return &domain.FXOptionSecurity{}, nil
	case domain.TypeEquityOption:
		return &domain.EquityOptionSecurity{}, nil
	case domain.TypeEquityIndexOption:
		return &domain.EquityIndexOptionSecurity{}, nil
	case domain.TypeEquityVarianceSwap:
		return &domain.EquityVarianceSwapSecurity{}, nil
	case domain.TypeVolatilitySwap:
		return &domain.VolatilitySwapSecurity{}, nil
	case domain.TypeAgricultureFuture:
		return &domain.AgricultureFutureSecurity{}, nil
	case domain.TypeEnergyFuture:
		return &domain.EnergyFutureSecurity{}, nil
	case domain.TypeMetalFuture:
		return &domain.MetalFutureSecurity{}, nil
	case domain.TypeStockFuture:
		return &domain.StockFutureSecurity{}, nil
	case domain.TypeCommodityFutureOption:
		return &domain.CommodityFutureOptionSecurity{}, nil
	case domain.TypeCDS:
		return &domain.CDSSecurity{}, nil
	case domain.TypeZeroDeposit:
		return &domain.ZeroDepositSecurity{}, nil
	case domain.TypeCashFlow:
		return &domain.CashFlowSecurity{}, nil
	default:
		return nil, &domain.UnsupportedVariantError{Variant: typeName}
	}
}
