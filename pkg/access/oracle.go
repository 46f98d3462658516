package access

import (
	"context"
	"errors"
)

// ErrUsageUnavailable is what a UsageOracle should return when it cannot
// answer. The controller fails closed on it: a limit-bearing feature is
// denied rather than silently granted.
var ErrUsageUnavailable = errors.New("access.errors.usage_unavailable")

// UsageOracle answers how much of a feature an actor has consumed so far.
// Implementations must be pure queries: fast, side-effect-free, and they
// must either return a value or a definite error rather than block the
// decision indefinitely. The hosting application wires this to its
// metering subsystem.
type UsageOracle interface {
	CurrentUsage(ctx context.Context, featureID string, actor Actor) (int64, error)
}

// OracleFunc adapts a function to the UsageOracle interface.
type OracleFunc func(ctx context.Context, featureID string, actor Actor) (int64, error)

func (f OracleFunc) CurrentUsage(ctx context.Context, featureID string, actor Actor) (int64, error) {
	return f(ctx, featureID, actor)
}

// StaticOracle serves fixed usage numbers keyed by feature id, falling
// back to zero for unlisted features. Useful for tests and for hosts
// without a metering subsystem yet.
type StaticOracle map[string]int64

func (o StaticOracle) CurrentUsage(_ context.Context, featureID string, _ Actor) (int64, error) {
	return o[featureID], nil
}
