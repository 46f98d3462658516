package tier

import "fmt"

// Unlimited indicates no ceiling for a numeric setting or limit.
const Unlimited int64 = -1

// settingKind discriminates the FeatureSetting union.
type settingKind uint8

const (
	kindToggle settingKind = iota
	kindCeiling
	kindOption
)

// FeatureSetting is a per-tier feature override: a boolean toggle, a
// numeric ceiling, or a string option. Tier definitions map feature ids
// to settings; the access controller interprets a false toggle as a
// denial and a positive ceiling as a usage limit.
type FeatureSetting struct {
	kind    settingKind
	toggle  bool
	ceiling int64
	option  string
}

// Toggle returns a boolean feature setting.
func Toggle(enabled bool) FeatureSetting {
	return FeatureSetting{kind: kindToggle, toggle: enabled}
}

// Ceiling returns a numeric feature setting. Use Unlimited (-1) for no cap.
func Ceiling(n int64) FeatureSetting {
	return FeatureSetting{kind: kindCeiling, ceiling: n}
}

// Option returns a string feature setting (e.g. a support level name).
func Option(s string) FeatureSetting {
	return FeatureSetting{kind: kindOption, option: s}
}

// IsDisabled reports whether the setting is the boolean false toggle.
// Any other setting, including a zero ceiling, is not a hard disable.
func (s FeatureSetting) IsDisabled() bool {
	return s.kind == kindToggle && !s.toggle
}

// Limit returns the numeric ceiling and true when the setting is numeric.
func (s FeatureSetting) Limit() (int64, bool) {
	if s.kind != kindCeiling {
		return 0, false
	}
	return s.ceiling, true
}

// Value returns the setting's payload as an untyped value, useful for
// serialization and diagnostics.
func (s FeatureSetting) Value() any {
	switch s.kind {
	case kindToggle:
		return s.toggle
	case kindCeiling:
		return s.ceiling
	default:
		return s.option
	}
}

func (s FeatureSetting) String() string {
	return fmt.Sprintf("%v", s.Value())
}
