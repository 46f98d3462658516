package access

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/formforge/govern/pkg/configstore"
	"github.com/formforge/govern/pkg/feature"
	"github.com/formforge/govern/pkg/tier"
)

// FeatureToggleKey returns the configuration key holding the global
// kill-switch for a feature. Setting it to the boolean false disables the
// feature for everyone without touching the registry.
func FeatureToggleKey(featureID string) string {
	return fmt.Sprintf("features.%s.enabled", featureID)
}

// Controller decides, for any actor and feature id, whether access is
// granted and why not otherwise. It reads the feature registry and tier
// catalog (both immutable), optionally the configuration store for global
// overrides, and the usage oracle for consumption counters. Decisions are
// pure: no state changes, safe to evaluate repeatedly.
type Controller struct {
	registry *feature.Registry
	catalog  *tier.Catalog
	config   *configstore.Store
	oracle   UsageOracle
	log      *slog.Logger
}

// ControllerOption configures optional controller collaborators.
type ControllerOption func(*Controller)

// WithConfigStore wires the runtime configuration store, enabling global
// feature kill-switches and the configurable upgrade threshold.
func WithConfigStore(store *configstore.Store) ControllerOption {
	return func(c *Controller) { c.config = store }
}

// WithUsageOracle wires the hosting application's metering query. Without
// one, limit-bearing features fail closed.
func WithUsageOracle(oracle UsageOracle) ControllerOption {
	return func(c *Controller) { c.oracle = oracle }
}

// WithLogger sets the logger for oracle failures. Nil loggers are ignored.
func WithLogger(log *slog.Logger) ControllerOption {
	return func(c *Controller) {
		if log != nil {
			c.log = log
		}
	}
}

// NewController creates a Controller. Panics if registry or catalog is
// nil: both are required and a misconfigured engine should not start.
func NewController(registry *feature.Registry, catalog *tier.Catalog, opts ...ControllerOption) *Controller {
	if registry == nil {
		panic("access: feature registry is required")
	}
	if catalog == nil {
		panic("access: tier catalog is required")
	}

	c := &Controller{
		registry: registry,
		catalog:  catalog,
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CheckAccess evaluates the fixed check sequence for one feature and
// actor; the first failing check wins. The sequence: feature existence,
// deprecation, tier sufficiency, subscription status, global config
// kill-switch, beta gating, dependencies (recursive), tier-catalog
// toggle, usage ceiling.
func (c *Controller) CheckAccess(ctx context.Context, featureID string, actor Actor) Decision {
	return c.check(ctx, featureID, actor)
}

func (c *Controller) check(ctx context.Context, featureID string, actor Actor) Decision {
	def, exists := c.registry.Get(featureID)
	if !exists {
		return denied(featureID, ReasonUnknownFeature,
			fmt.Sprintf("feature %q is not defined", featureID),
			"check the feature id for typos")
	}

	if def.Deprecated {
		suggestion := "this feature has been retired"
		if def.ReplacedBy != "" {
			suggestion = fmt.Sprintf("use %q instead", def.ReplacedBy)
		}
		return denied(featureID, ReasonFeatureDisabled,
			fmt.Sprintf("feature %q is deprecated", featureID), suggestion)
	}

	if !actor.Tier.AtLeast(def.RequiredTier) {
		dec := denied(featureID, ReasonTierInsufficient,
			fmt.Sprintf("feature %q requires the %s tier", featureID, def.RequiredTier),
			fmt.Sprintf("upgrade to %s", def.RequiredTier))
		dec.UpgradeTo = def.RequiredTier
		return dec
	}

	if actor.Status.Lapsed() {
		return denied(featureID, ReasonTierInsufficient,
			fmt.Sprintf("subscription is %s; tier benefits are suspended", actor.Status),
			"renew your subscription to restore access")
	}

	if c.config != nil {
		enabled := c.config.GetForTier(FeatureToggleKey(featureID), actor.Tier, configstore.Bool(true))
		if on, ok := enabled.AsBool(); ok && !on {
			return denied(featureID, ReasonFeatureDisabled,
				fmt.Sprintf("feature %q is disabled by configuration", featureID),
				"the feature is temporarily switched off; contact support if this persists")
		}
	}

	if def.Beta && !c.hasBetaAccess(featureID, actor) {
		return denied(featureID, ReasonBetaRequired,
			fmt.Sprintf("feature %q is in beta", featureID),
			"request beta access or upgrade to enterprise")
	}

	for _, dep := range def.Dependencies {
		if depDec := c.check(ctx, dep, actor); !depDec.Granted {
			dec := denied(featureID, ReasonDependencyMissing,
				fmt.Sprintf("feature %q requires %q, which is not available", featureID, dep),
				fmt.Sprintf("enable dependency %q first", dep))
			dec.Dependency = dep
			return dec
		}
	}

	setting, declared := c.catalog.Setting(actor.Tier, featureID)
	if declared {
		if setting.IsDisabled() {
			dec := denied(featureID, ReasonTierInsufficient,
				fmt.Sprintf("feature %q is not included in the %s tier", featureID, actor.Tier))
			if upgradeTo, ok := c.catalog.LowestWith(featureID); ok && upgradeTo != actor.Tier {
				dec.UpgradeTo = upgradeTo
				dec.Suggestions = []string{fmt.Sprintf("upgrade to %s", upgradeTo)}
			} else {
				dec.Suggestions = []string{"contact support about enabling this feature"}
			}
			return dec
		}

		if ceiling, ok := setting.Limit(); ok && ceiling != tier.Unlimited {
			return c.checkCeiling(ctx, featureID, actor, ceiling)
		}
	}

	return granted(featureID)
}

// checkCeiling compares the actor's consumption against a numeric ceiling.
// An unanswered oracle fails closed: a limit-bearing feature is never
// granted while its usage is unknown.
func (c *Controller) checkCeiling(ctx context.Context, featureID string, actor Actor, ceiling int64) Decision {
	if c.oracle == nil {
		c.log.Warn("no usage oracle configured for limit-bearing feature",
			slog.String("feature", featureID))
		return c.usageUnknown(featureID, ceiling)
	}

	usage, err := c.oracle.CurrentUsage(ctx, featureID, actor)
	if err != nil {
		c.log.Warn("usage oracle failed",
			slog.String("feature", featureID),
			slog.String("actor", actor.ID),
			slog.Any("error", err))
		return c.usageUnknown(featureID, ceiling)
	}

	if usage >= ceiling {
		dec := denied(featureID, ReasonLimitExceeded,
			fmt.Sprintf("usage %d has reached the %s tier limit of %d", usage, actor.Tier, ceiling),
			"upgrade to raise this limit")
		dec.CurrentUsage = usage
		dec.Limit = ceiling
		return dec
	}

	dec := granted(featureID)
	dec.CurrentUsage = usage
	dec.Limit = ceiling
	return dec
}

func (c *Controller) usageUnknown(featureID string, ceiling int64) Decision {
	dec := denied(featureID, ReasonLimitExceeded,
		fmt.Sprintf("current usage for %q is unknown; access denied until usage can be verified", featureID),
		"retry shortly or contact support")
	dec.CurrentUsage = -1
	dec.Limit = ceiling
	return dec
}

// hasBetaAccess applies the beta gate: an explicit grant, beta-program
// metadata, or the enterprise tier (which always has implicit beta access).
func (c *Controller) hasBetaAccess(featureID string, actor Actor) bool {
	return actor.HasGrant(featureID) ||
		actor.IsBetaParticipant() ||
		actor.Tier == tier.Enterprise
}

// GetAvailableFeatures returns every feature id the actor can use right
// now, computed by running CheckAccess over the whole registry so the two
// can never disagree.
func (c *Controller) GetAvailableFeatures(ctx context.Context, actor Actor) []string {
	var out []string
	for _, id := range c.registry.IDs() {
		if c.check(ctx, id, actor).Granted {
			out = append(out, id)
		}
	}
	return out
}
