package tier

import (
	"errors"
	"fmt"
)

// Catalog is an immutable lookup of tier definitions. Build it once at
// process start and share it; there is no mutation after construction.
type Catalog struct {
	tiers map[Level]Definition
}

// NewCatalog validates and indexes the given tier definitions.
// Each definition must carry a known, unique level; negative limits other
// than Unlimited are rejected.
func NewCatalog(defs ...Definition) (*Catalog, error) {
	tiers := make(map[Level]Definition, len(defs))

	for _, def := range defs {
		if !def.Level.Known() {
			return nil, errors.Join(ErrUnknownLevel, fmt.Errorf("tier %q", def.Level))
		}
		if _, exists := tiers[def.Level]; exists {
			return nil, errors.Join(ErrDuplicateLevel, fmt.Errorf("tier %q declared twice", def.Level))
		}
		for name, limit := range def.Limits {
			if limit < Unlimited {
				return nil, errors.Join(ErrInvalidLimit,
					fmt.Errorf("tier %q limit %q is %d", def.Level, name, limit))
			}
		}
		tiers[def.Level] = def.clone()
	}

	return &Catalog{tiers: tiers}, nil
}

// Get returns the definition for a level.
func (c *Catalog) Get(level Level) (Definition, bool) {
	def, ok := c.tiers[level]
	if !ok {
		return Definition{}, false
	}
	return def.clone(), true
}

// Setting returns the per-feature setting for a level, if declared.
func (c *Catalog) Setting(level Level, featureID string) (FeatureSetting, bool) {
	def, ok := c.tiers[level]
	if !ok {
		return FeatureSetting{}, false
	}
	setting, ok := def.Features[featureID]
	return setting, ok
}

// Limit returns the named numeric limit for a level, if declared.
func (c *Catalog) Limit(level Level, name string) (int64, bool) {
	def, ok := c.tiers[level]
	if !ok {
		return 0, false
	}
	limit, ok := def.Limits[name]
	return limit, ok
}

// LowestWith returns the lowest level at which the feature's setting is
// not a hard disable. A level that declares no setting for the feature
// counts as not disabling it. Returns false when every declared tier
// disables the feature.
func (c *Catalog) LowestWith(featureID string) (Level, bool) {
	for _, level := range levelOrder {
		def, ok := c.tiers[level]
		if !ok {
			continue
		}
		if setting, declared := def.Features[featureID]; declared && setting.IsDisabled() {
			continue
		}
		return level, true
	}
	return "", false
}
