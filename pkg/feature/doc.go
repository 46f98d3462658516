// Package feature declares the registry of gated capabilities: which tier
// unlocks each feature, what other features it depends on, and whether it is
// in beta or deprecated.
//
// The registry is built once at process start and validated eagerly:
// duplicate ids, dependencies on undeclared features, and dependency cycles
// are all construction errors. The access package walks this registry
// recursively, so acyclicity is a hard requirement rather than a convention.
//
//	registry, err := feature.NewRegistry(
//		feature.Definition{
//			ID:           "basic-forms",
//			Name:         "Form Builder",
//			Category:     feature.CategoryCore,
//			RequiredTier: tier.Starter,
//		},
//		feature.Definition{
//			ID:           "conditional-logic",
//			Name:         "Conditional Logic",
//			Category:     feature.CategoryAdvanced,
//			RequiredTier: tier.Pro,
//			Dependencies: []string{"basic-forms", "advanced-validation"},
//		},
//	)
package feature
