// Package logger provides a factory for configured slog.Logger instances.
//
// The governance engine passes loggers into its stores and controllers via
// options; this package centralizes format (json/text), level, and static
// attribute configuration, including environment-variable driven construction:
//
//	log, err := logger.NewFromEnv(
//		logger.WithAttr(slog.String("service", "governance")),
//	)
package logger
