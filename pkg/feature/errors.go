package feature

import "errors"

var (
	ErrInvalidDefinition = errors.New("feature.errors.invalid_definition")
	ErrDuplicateFeature  = errors.New("feature.errors.duplicate_feature")
	ErrUnknownDependency = errors.New("feature.errors.unknown_dependency")
	ErrDependencyCycle   = errors.New("feature.errors.dependency_cycle")
)
