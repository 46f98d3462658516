package tier

import "slices"

// Comparison contains the differences between two tier definitions.
// Used by the upgrade advisor to phrase what the target tier adds, and
// to flag what a downgrade would take away.
type Comparison struct {
	NewCapabilities  []string
	LostCapabilities []string
	IncreasedLimits  map[string]LimitChange
	DecreasedLimits  map[string]LimitChange
	NewLimits        map[string]int64
	RemovedLimits    map[string]int64
}

// LimitChange represents a change in a named numeric limit.
type LimitChange struct {
	From int64 `json:"from"`
	To   int64 `json:"to"`
}

// HasDecreases returns true if any limits shrink or disappear in the target.
func (c *Comparison) HasDecreases() bool {
	return len(c.DecreasedLimits) > 0 || len(c.RemovedLimits) > 0
}

// Compare returns the differences between the current and target tiers.
// Returns nil when either level is not in the catalog.
func (c *Catalog) Compare(current, target Level) *Comparison {
	cur, ok := c.tiers[current]
	if !ok {
		return nil
	}
	tgt, ok := c.tiers[target]
	if !ok {
		return nil
	}

	cmp := &Comparison{
		NewCapabilities:  make([]string, 0),
		LostCapabilities: make([]string, 0),
		IncreasedLimits:  make(map[string]LimitChange),
		DecreasedLimits:  make(map[string]LimitChange),
		NewLimits:        make(map[string]int64),
		RemovedLimits:    make(map[string]int64),
	}

	for _, capability := range tgt.Capabilities {
		if !slices.Contains(cur.Capabilities, capability) {
			cmp.NewCapabilities = append(cmp.NewCapabilities, capability)
		}
	}
	for _, capability := range cur.Capabilities {
		if !slices.Contains(tgt.Capabilities, capability) {
			cmp.LostCapabilities = append(cmp.LostCapabilities, capability)
		}
	}

	for name, targetLimit := range tgt.Limits {
		currentLimit, exists := cur.Limits[name]
		if !exists {
			cmp.NewLimits[name] = targetLimit
			continue
		}

		if targetLimit == currentLimit {
			continue
		}

		change := LimitChange{From: currentLimit, To: targetLimit}

		// Leaving unlimited is always a decrease, reaching it an increase.
		switch {
		case currentLimit == Unlimited:
			cmp.DecreasedLimits[name] = change
		case targetLimit == Unlimited:
			cmp.IncreasedLimits[name] = change
		case targetLimit > currentLimit:
			cmp.IncreasedLimits[name] = change
		default:
			cmp.DecreasedLimits[name] = change
		}
	}

	for name, currentLimit := range cur.Limits {
		if _, exists := tgt.Limits[name]; !exists {
			cmp.RemovedLimits[name] = currentLimit
		}
	}

	return cmp
}
