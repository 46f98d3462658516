package tier

import (
	"maps"
	"slices"
)

// Money represents a monetary amount in the smallest currency unit.
// For example, $10.99 USD is Amount: 1099, Currency: "USD". Pricing on a
// tier definition is informational; the engine never enforces billing.
type Money struct {
	Amount   int64  // amount in smallest currency unit (cents for USD)
	Currency string // ISO 4217 currency code
}

// BillingInterval represents the billing frequency for a tier.
type BillingInterval string

const (
	BillingIntervalNone    BillingInterval = "none" // free tiers with no billing
	BillingIntervalMonthly BillingInterval = "monthly"
	BillingIntervalAnnual  BillingInterval = "annual"
)

// Definition describes one subscription tier: its per-feature settings,
// named numeric limits, capability list, and pricing metadata.
type Definition struct {
	Level        Level
	Name         string
	Description  string
	Features     map[string]FeatureSetting // feature id -> tier-specific setting
	Limits       map[string]int64          // named limits, e.g. "monthly-submissions"; -1 unlimited
	Capabilities []string
	Price        Money
	Interval     BillingInterval
}

// clone returns a deep copy so catalog consumers cannot mutate shared state.
func (d Definition) clone() Definition {
	out := d
	out.Features = maps.Clone(d.Features)
	out.Limits = maps.Clone(d.Limits)
	out.Capabilities = slices.Clone(d.Capabilities)
	return out
}
