package access

import (
	"slices"

	"github.com/formforge/govern/pkg/tier"
)

// Status represents the state of an actor's subscription.
type Status string

const (
	StatusActive    Status = "active"
	StatusTrial     Status = "trial"
	StatusExpired   Status = "expired"
	StatusCancelled Status = "cancelled"
)

// Lapsed reports whether the subscription no longer grants access.
func (s Status) Lapsed() bool {
	return s == StatusExpired || s == StatusCancelled
}

// MetadataBetaParticipant marks an actor as enrolled in the beta program;
// any value other than "true" is ignored.
const MetadataBetaParticipant = "beta_participant"

// Actor is the identity, tier, and subscription bundle presented for a
// single access check. The controller never mutates it.
type Actor struct {
	ID       string
	Tier     tier.Level
	OrgID    string
	Grants   []string // explicit per-feature grants (e.g. beta opt-in)
	Status   Status
	Metadata map[string]string
}

// HasGrant reports whether the actor holds an explicit grant for the feature.
func (a Actor) HasGrant(featureID string) bool {
	return slices.Contains(a.Grants, featureID)
}

// IsBetaParticipant reports whether the actor is enrolled in the beta
// program via metadata.
func (a Actor) IsBetaParticipant() bool {
	return a.Metadata[MetadataBetaParticipant] == "true"
}

// Reason is a machine-readable denial code. Every denied decision carries
// one, plus at least one human-readable suggestion.
type Reason string

const (
	ReasonUnknownFeature    Reason = "unknown_feature"
	ReasonFeatureDisabled   Reason = "feature_disabled"
	ReasonTierInsufficient  Reason = "tier_insufficient"
	ReasonBetaRequired      Reason = "beta_access_required"
	ReasonDependencyMissing Reason = "dependency_missing"
	ReasonLimitExceeded     Reason = "limit_exceeded"
)

// Decision is the structured outcome of one access check. Denial is a
// first-class result, never an error: checks run often and must stay
// cheap and side-effect-free.
type Decision struct {
	FeatureID string `json:"feature_id"`
	Granted   bool   `json:"granted"`

	Reason  Reason `json:"reason,omitempty"`
	Message string `json:"message,omitempty"`

	// UpgradeTo is the lowest tier that would lift a tier-based denial.
	UpgradeTo tier.Level `json:"upgrade_to,omitempty"`

	// Dependency names the first failing dependency for dependency denials.
	Dependency string `json:"dependency,omitempty"`

	// CurrentUsage and Limit are populated for limit denials.
	CurrentUsage int64 `json:"current_usage,omitempty"`
	Limit        int64 `json:"limit,omitempty"`

	Suggestions []string `json:"suggestions,omitempty"`
}

func granted(featureID string) Decision {
	return Decision{FeatureID: featureID, Granted: true}
}

func denied(featureID string, reason Reason, message string, suggestions ...string) Decision {
	return Decision{
		FeatureID:   featureID,
		Reason:      reason,
		Message:     message,
		Suggestions: suggestions,
	}
}
