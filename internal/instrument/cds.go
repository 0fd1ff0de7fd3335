package instrument

import "time"

// Engine-level CDS constants. These are properties of the conversion, not
// fields on the security.
const (
	CDSAccrualOnDefault = true
	CDSPayOnDefault     = true
	CDSProtectStart     = true
)

// CDSPremiumPeriod is one accrual period of the premium leg schedule.
type CDSPremiumPeriod struct {
	AccrualStart  time.Time
	AccrualEnd    time.Time
	PaymentDate   time.Time
	AccrualFactor float64
}

// CDS is a standard vanilla credit default swap with its premium schedule
// fully generated.
type CDS struct {
	definition
	Currency         string
	ReferenceEntity  string
	Notional         float64
	Spread           float64
	RecoveryRate     float64
	BuyProtection    bool
	ProtectionStart  time.Time
	ProtectionEnd    time.Time
	PremiumSchedule  []CDSPremiumPeriod
	AccrualOnDefault bool
	PayOnDefault     bool
	ProtectStart     bool
}

func (CDS) Kind() string { return KindCDS }
