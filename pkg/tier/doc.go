// Package tier declares the subscription tier catalog: the fixed level
// ordering (starter < pro < advanced < enterprise), per-feature settings,
// named numeric limits, capability lists, and informational pricing.
//
// The catalog is immutable after construction and validated up front, so a
// bad tier table stops the process at startup rather than corrupting access
// decisions at runtime.
//
//	catalog, err := tier.NewCatalog(
//		tier.Definition{
//			Level: tier.Starter,
//			Name:  "Starter",
//			Features: map[string]tier.FeatureSetting{
//				"api-access": tier.Toggle(false),
//				"form-count": tier.Ceiling(10),
//			},
//			Limits:       map[string]int64{"monthly-submissions": 100},
//			Capabilities: []string{"basic-forms"},
//		},
//		// ... pro, advanced, enterprise
//	)
//
// Catalog.Compare reports what a tier change gains and loses; the access
// package uses it to phrase upgrade recommendations.
package tier
