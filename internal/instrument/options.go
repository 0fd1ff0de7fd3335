package instrument

import "time"

// BondFutureOptionPremium is a premium-settled option on a bond future.
type BondFutureOptionPremium struct {
	definition
	Underlying *BondFuture
	Currency   string
	Strike     float64
	Expiry     time.Time
	IsCall     bool
}

func (BondFutureOptionPremium) Kind() string { return KindBondFutureOptionPrem }

// BondFutureOptionMargined is a daily-margined option on a bond future.
type BondFutureOptionMargined struct {
	definition
	Underlying *BondFuture
	Currency   string
	Strike     float64
	Expiry     time.Time
	IsCall     bool
}

func (BondFutureOptionMargined) Kind() string { return KindBondFutureOptionMargin }

// IRFutureOptionPremium is a premium-settled option on an interest rate
// future.
type IRFutureOptionPremium struct {
	definition
	Underlying *InterestRateFuture
	Currency   string
	Strike     float64
	Expiry     time.Time
	IsCall     bool
}

func (IRFutureOptionPremium) Kind() string { return KindIRFutureOptionPremium }

// IRFutureOptionMargined is a daily-margined option on an interest rate
// future.
type IRFutureOptionMargined struct {
	definition
	Underlying *InterestRateFuture
	Currency   string
	Strike     float64
	Expiry     time.Time
	IsCall     bool
}

func (IRFutureOptionMargined) Kind() string { return KindIRFutureOptionMargined }

// EquityOption is an option on a single-name equity.
type EquityOption struct {
	definition
	UnderlyingID string
	Currency     string
	Strike       float64
	Expiry       time.Time
	IsCall       bool
	PointValue   float64
}

func (EquityOption) Kind() string { return KindEquityOption }

// EquityIndexOption is an option on an equity index.
type EquityIndexOption struct {
	definition
	UnderlyingID string
	Currency     string
	Strike       float64
	Expiry       time.Time
	IsCall       bool
	PointValue   float64
}

func (EquityIndexOption) Kind() string { return KindEquityIndexOption }

// CommodityFutureOption is an option on a commodity future.
type CommodityFutureOption struct {
	definition
	Underlying *CommodityFuture
	Currency   string
	Strike     float64
	Expiry     time.Time
	IsCall     bool
}

func (CommodityFutureOption) Kind() string { return KindCommodityFutureOption }
