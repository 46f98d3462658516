// Package environment identifies the deployment environment a process runs in
// and decides whether environment-scoped configuration applies to it.
//
// The governance engine restricts configuration entries and preset bundles to
// a single environment (or "all"); this package owns the Environment type,
// its parsing rules, and context propagation.
//
//	env := environment.Current() // reads APP_ENV, defaults to development
//	if env.Matches(entry.Environment) {
//		// entry applies here
//	}
package environment
