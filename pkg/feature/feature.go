package feature

import (
	"github.com/formforge/govern/pkg/tier"
)

// Category groups features by the product surface they belong to.
type Category string

const (
	CategoryCore       Category = "core"
	CategoryAdvanced   Category = "advanced"
	CategoryPremium    Category = "premium"
	CategoryEnterprise Category = "enterprise"
)

// Definition declares a single gated capability: the minimum tier that
// unlocks it, the features it depends on, and its lifecycle flags.
type Definition struct {
	ID           string
	Name         string
	Description  string
	Category     Category
	RequiredTier tier.Level
	Dependencies []string // feature ids that must also be accessible
	Beta         bool     // requires an explicit beta grant below enterprise
	Deprecated   bool     // denied for everyone
	ReplacedBy   string   // suggested replacement for deprecated features
}
