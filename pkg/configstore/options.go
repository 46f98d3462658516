package configstore

import (
	"log/slog"
	"time"

	"github.com/formforge/govern/pkg/environment"
)

// Option configures store construction.
type Option func(*Store)

// WithLogger sets the logger used for subscriber panics and rejected
// import entries. Nil loggers are ignored.
func WithLogger(log *slog.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// WithEnvironment pins the deployment environment the store serves.
// Entries restricted to other environments are invisible to Get.
// Defaults to environment.Current().
func WithEnvironment(env environment.Environment) Option {
	return func(s *Store) { s.env = env }
}

// WithClock overrides the time source, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// MutateOption annotates a single Set/Delete/Rollback call.
type MutateOption func(*mutation)

// WithReason attaches a human-readable reason to the audit event.
func WithReason(reason string) MutateOption {
	return func(m *mutation) { m.reason = reason }
}

// WithCategory overrides the category assigned when Set creates a new key.
// Pre-existing entries keep their category.
func WithCategory(category string) MutateOption {
	return func(m *mutation) {
		if category != "" {
			m.category = category
		}
	}
}

type mutation struct {
	reason   string
	category string
}

func newMutation(opts []MutateOption) mutation {
	m := mutation{category: CategoryCustom}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}
