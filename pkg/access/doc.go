// Package access is the tier-based access controller of the governance
// engine. Given an actor (identity, tier, subscription status, grants) and
// a feature id, it produces a structured Decision explaining whether the
// feature is available and, on denial, why and what would change that.
//
// Checks run in a fixed short-circuit order: feature existence,
// deprecation, tier sufficiency, subscription status, the configuration
// store's global kill-switch, beta gating, recursive dependency checks,
// the tier catalog's per-feature toggle, and finally the usage ceiling
// against the host-supplied UsageOracle. The first failing check decides.
//
//	controller := access.NewController(registry, catalog,
//		access.WithConfigStore(store),
//		access.WithUsageOracle(meter),
//	)
//
//	dec := controller.CheckAccess(ctx, "sso-integration", actor)
//	if !dec.Granted {
//		// dec.Reason, dec.UpgradeTo, dec.Suggestions drive the UI
//	}
//
// Denials are ordinary return values, never errors: callers evaluate them
// constantly (for example to render disabled UI state), so the check must
// be cheap and side-effect-free. When the usage oracle cannot answer, a
// limit-bearing feature is denied; the engine never fails open.
//
// RecommendUpgrade is the derived advisor: it compares a usage snapshot
// against the current tier's named limits and, past a configurable
// pressure threshold, proposes the next tier with its concrete benefits.
package access
