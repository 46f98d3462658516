package environment

import (
	"context"
	"os"
	"strings"
)

// Environment represents a deployment environment.
type Environment string

const (
	// Development for local development.
	Development Environment = "development"
	// Staging for pre-production environments.
	Staging Environment = "staging"
	// Production for production deployments.
	Production Environment = "production"

	// All matches every environment. Used by configuration entries
	// that are not restricted to a single deployment target.
	All Environment = "all"
)

// Parse normalizes an environment name, accepting common short forms.
// Unknown values fall back to Development.
func Parse(s string) Environment {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(Production), "prod":
		return Production
	case string(Staging), "stage":
		return Staging
	case string(All), "*":
		return All
	default:
		return Development
	}
}

// Current reads the deployment environment from the APP_ENV variable.
// Falls back to Development when unset, so a bare process behaves like
// a developer machine rather than a misconfigured production node.
func Current() Environment {
	return Parse(os.Getenv("APP_ENV"))
}

// Matches reports whether a configuration scope applies in the given
// environment. An "all" scope (or empty scope) applies everywhere.
func (e Environment) Matches(scope Environment) bool {
	return scope == "" || scope == All || scope == e
}

// IsProduction reports whether e is the production environment.
func (e Environment) IsProduction() bool { return e == Production }

// IsDevelopment reports whether e is the development environment.
func (e Environment) IsDevelopment() bool { return e == Development }

// IsStaging reports whether e is the staging environment.
func (e Environment) IsStaging() bool { return e == Staging }

type contextKey struct{}

// WithContext stores the environment in the context.
func WithContext(ctx context.Context, env Environment) context.Context {
	return context.WithValue(ctx, contextKey{}, env)
}

// FromContext retrieves the environment from the context.
// Returns Development if none was stored.
func FromContext(ctx context.Context) Environment {
	if ctx == nil {
		return Development
	}
	if env, ok := ctx.Value(contextKey{}).(Environment); ok {
		return env
	}
	return Development
}
