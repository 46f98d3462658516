package access

import (
	"context"
	"fmt"
	"slices"

	"github.com/formforge/govern/pkg/tier"
)

const (
	// ConfigKeyUpgradeThreshold overrides the usage ratio above which an
	// upgrade is recommended.
	ConfigKeyUpgradeThreshold = "advisor.upgrade.threshold"

	// DefaultUpgradeThreshold applies when the configuration store has no
	// override for the ratio.
	DefaultUpgradeThreshold = 0.8
)

// Recommendation proposes the next tier for an actor approaching their
// current tier's limits, with a rationale and the benefits of moving.
type Recommendation struct {
	From     tier.Level `json:"from"`
	To       tier.Level `json:"to"`
	Reasons  []string   `json:"reasons"`
	Benefits []string   `json:"benefits"`
}

// RecommendUpgrade inspects the usage snapshot against every named
// numeric limit of the actor's tier. When any usage ratio exceeds the
// threshold (advisor.upgrade.threshold in the config store, default 0.8)
// it recommends the next tier, listing the capabilities gained and every
// limit that grows or becomes unlimited. Returns nil when no limit is
// under pressure or the actor is already on the top tier.
func (c *Controller) RecommendUpgrade(ctx context.Context, actor Actor, usage map[string]int64) *Recommendation {
	current, ok := c.catalog.Get(actor.Tier)
	if !ok {
		return nil
	}

	next, ok := actor.Tier.Next()
	if !ok {
		return nil
	}

	threshold := DefaultUpgradeThreshold
	if c.config != nil {
		threshold = c.config.NumberVal(ConfigKeyUpgradeThreshold, DefaultUpgradeThreshold)
	}

	var reasons []string
	for _, name := range sortedLimitNames(current.Limits) {
		limit := current.Limits[name]
		if limit == tier.Unlimited || limit == 0 {
			continue
		}
		used, tracked := usage[name]
		if !tracked {
			continue
		}
		if ratio := float64(used) / float64(limit); ratio > threshold {
			reasons = append(reasons,
				fmt.Sprintf("%s at %d of %d (%.0f%%)", name, used, limit, ratio*100))
		}
	}

	if len(reasons) == 0 {
		return nil
	}

	return &Recommendation{
		From:     actor.Tier,
		To:       next,
		Reasons:  reasons,
		Benefits: c.upgradeBenefits(actor.Tier, next),
	}
}

// upgradeBenefits phrases what the target tier adds over the current one:
// new capabilities, then every named limit that increases.
func (c *Controller) upgradeBenefits(current, next tier.Level) []string {
	cmp := c.catalog.Compare(current, next)
	if cmp == nil {
		return nil
	}

	benefits := make([]string, 0, len(cmp.NewCapabilities)+len(cmp.IncreasedLimits)+len(cmp.NewLimits))
	for _, capability := range cmp.NewCapabilities {
		benefits = append(benefits, fmt.Sprintf("adds %s", capability))
	}

	for _, name := range sortedLimitNames(cmp.IncreasedLimits) {
		change := cmp.IncreasedLimits[name]
		if change.To == tier.Unlimited {
			benefits = append(benefits, fmt.Sprintf("%s becomes unlimited", name))
			continue
		}
		benefits = append(benefits, fmt.Sprintf("%s limit grows from %d to %d", name, change.From, change.To))
	}

	for _, name := range sortedLimitNames(cmp.NewLimits) {
		limit := cmp.NewLimits[name]
		if limit == tier.Unlimited {
			benefits = append(benefits, fmt.Sprintf("%s becomes unlimited", name))
			continue
		}
		benefits = append(benefits, fmt.Sprintf("%s allowance of %d", name, limit))
	}

	return benefits
}

func sortedLimitNames[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
