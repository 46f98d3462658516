package configstore

import (
	"time"

	"github.com/formforge/govern/pkg/environment"
	"github.com/formforge/govern/pkg/tier"
)

// CategoryCustom is assigned to entries created ad hoc through Set rather
// than seeded at process start.
const CategoryCustom = "custom"

// Entry is one versioned configuration key with its metadata, validation
// rules, and one-step rollback state.
type Entry struct {
	Key         string
	Value       Value
	Category    string
	Environment environment.Environment // empty or "all" applies everywhere
	Tier        tier.Level              // empty applies to every tier
	Validation  *Rule

	Version       int
	LastModified  time.Time
	ModifiedBy    string
	PreviousValue *Value // value before the last accepted mutation
}

func (e Entry) clone() Entry {
	out := e
	out.Value = e.Value.Clone()
	out.Validation = e.Validation.clone()
	if e.PreviousValue != nil {
		prev := e.PreviousValue.Clone()
		out.PreviousValue = &prev
	}
	return out
}

// appliesTo reports whether the entry is in scope for the given
// environment and tier. Entries without restrictions apply everywhere.
func (e Entry) appliesTo(env environment.Environment, level tier.Level) bool {
	if !env.Matches(e.Environment) {
		return false
	}
	if e.Tier != "" && e.Tier != level {
		return false
	}
	return true
}
