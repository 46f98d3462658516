package configstore

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is the sentinel all ValidationError values match via errors.Is.
	ErrValidation = errors.New("configstore.errors.validation_failed")

	// ErrUnsupportedValue indicates a value that cannot be represented in the
	// tagged union (nil, channels, custom structs, ...).
	ErrUnsupportedValue = errors.New("configstore.errors.unsupported_value")

	// ErrInvalidDefaults indicates the seed entries passed to New are malformed.
	ErrInvalidDefaults = errors.New("configstore.errors.invalid_defaults")

	// ErrMalformedImport indicates an import payload that could not be decoded at all.
	// Individually invalid entries inside a well-formed payload are skipped, not fatal.
	ErrMalformedImport = errors.New("configstore.errors.malformed_import")

	// ErrMalformedPreset indicates an environment preset document that could not be decoded.
	ErrMalformedPreset = errors.New("configstore.errors.malformed_preset")
)

// ValidationError reports which rule a rejected Set violated. It never
// leaves the store partially applied.
type ValidationError struct {
	Key      string
	Kind     RuleKind
	Rejected Value
	Message  string
}

func newValidationError(key string, kind RuleKind, rejected Value, msg string) *ValidationError {
	return &ValidationError{Key: key, Kind: kind, Rejected: rejected.Clone(), Message: msg}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config key %q: %s rule violated: %s", e.Key, e.Kind, e.Message)
}

// Is makes errors.Is(err, ErrValidation) match every ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
