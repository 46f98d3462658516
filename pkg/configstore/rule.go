package configstore

import (
	"fmt"
	"regexp"
)

// RuleKind names the specific validation rule a rejected value violated.
type RuleKind string

const (
	RuleRequired RuleKind = "required"
	RuleMin      RuleKind = "min"
	RuleMax      RuleKind = "max"
	RulePattern  RuleKind = "pattern"
	RuleEnum     RuleKind = "enum"
	RuleType     RuleKind = "type"
)

// Rule is the optional validation set attached to a configuration entry.
// Min/Max apply to numbers, Pattern to strings, Enum to any type.
type Rule struct {
	Required bool     `json:"required,omitempty"`
	Min      *float64 `json:"min,omitempty"`
	Max      *float64 `json:"max,omitempty"`
	Pattern  string   `json:"pattern,omitempty"`
	Enum     []Value  `json:"enum,omitempty"`
}

// Float is a convenience for building Min/Max pointers inline.
func Float(f float64) *float64 { return &f }

func (r *Rule) clone() *Rule {
	if r == nil {
		return nil
	}
	out := *r
	if r.Min != nil {
		m := *r.Min
		out.Min = &m
	}
	if r.Max != nil {
		m := *r.Max
		out.Max = &m
	}
	if r.Enum != nil {
		out.Enum = make([]Value, len(r.Enum))
		for i, v := range r.Enum {
			out.Enum[i] = v.Clone()
		}
	}
	return &out
}

// validate checks the proposed value against the rule set. A nil return
// means the value is acceptable.
func (r *Rule) validate(key string, v Value) *ValidationError {
	if r == nil {
		return nil
	}

	if r.Required && isEmpty(v) {
		return newValidationError(key, RuleRequired, v, "value is required")
	}

	if n, ok := v.AsNumber(); ok {
		if r.Min != nil && n < *r.Min {
			return newValidationError(key, RuleMin, v,
				fmt.Sprintf("value %v is below minimum %v", n, *r.Min))
		}
		if r.Max != nil && n > *r.Max {
			return newValidationError(key, RuleMax, v,
				fmt.Sprintf("value %v is above maximum %v", n, *r.Max))
		}
	}

	if s, ok := v.AsString(); ok && r.Pattern != "" {
		re, err := regexp.Compile(r.Pattern)
		if err != nil {
			return newValidationError(key, RulePattern, v,
				fmt.Sprintf("invalid pattern %q: %v", r.Pattern, err))
		}
		if !re.MatchString(s) {
			return newValidationError(key, RulePattern, v,
				fmt.Sprintf("value %q does not match pattern %q", s, r.Pattern))
		}
	}

	if len(r.Enum) > 0 {
		for _, allowed := range r.Enum {
			if v.Equal(allowed) {
				return nil
			}
		}
		return newValidationError(key, RuleEnum, v,
			fmt.Sprintf("value %v is not in the allowed set", v))
	}

	return nil
}

func isEmpty(v Value) bool {
	if v.IsZero() {
		return true
	}
	if s, ok := v.AsString(); ok {
		return s == ""
	}
	return false
}
